package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hubble-workspace/internal/billing/client"
	"hubble-workspace/internal/logger"
	"hubble-workspace/internal/workspace/catalog"
	"hubble-workspace/internal/workspace/usecases"

	"github.com/spf13/cobra"
)

// app carries what every subcommand needs once the persistent flags are parsed.
type app struct {
	server   string
	timeout  time.Duration
	logLevel string

	out     io.Writer
	log     logger.Logger
	records *client.RecordClient
	catalog usecases.Catalog
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand(os.Stdout).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCommand(out io.Writer) *cobra.Command {
	a := &app{out: out}

	root := &cobra.Command{
		Use:   "hubblectl",
		Short: "Terminal client for the hubble workspace",
		Long: `hubblectl talks to a running workspace server.

It lists, reads and writes billing records, renders catalog views
as tables, exports them to spreadsheets and browses them interactively.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(out)

	flags := root.PersistentFlags()
	flags.StringVarP(&a.server, "server", "s", envOr("HUBBLE_WORKSPACE_SERVER", "http://localhost:3000"), "workspace server base URL")
	flags.DurationVar(&a.timeout, "timeout", 10*time.Second, "request timeout")
	flags.StringVar(&a.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(
		a.viewsCommand(),
		a.listCommand(),
		a.getCommand(),
		a.createCommand(),
		a.updateCommand(),
		a.exportCommand(),
		a.browseCommand(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	log, err := logger.New(logger.Options{Level: a.logLevel, Format: logger.FormatConsole, Name: "hubblectl"})
	if err != nil {
		return err
	}
	a.log = log

	config := client.DefaultConfig(a.server)
	config.Timeout = a.timeout
	a.records = client.NewRecordClient(config)

	views, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("loading view catalog: %w", err)
	}
	a.catalog = views

	a.log.Debugw("client ready", "server", a.server, "timeout", a.timeout.String())
	return nil
}

func (a *app) views() *usecases.SimpleViewService {
	return usecases.NewViewService(a.catalog, a.records)
}

func envOr(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
