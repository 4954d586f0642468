package main

import (
	"hubble-workspace/cmd/hubblectl/ui"
	"hubble-workspace/internal/workspace/usecases"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func (a *app) browseCommand() *cobra.Command {
	var params []string

	cmd := &cobra.Command{
		Use:   "browse VIEW",
		Short: "Browse a view interactively",
		Long: `Browse a view page by page.

Keys: n/p next and previous page, s cycle the sort column, o flip the
order, space toggle the row selection, a select all, r reload, q quit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := a.catalog.View(args[0])
			if err != nil {
				return err
			}
			values, err := parseParams(params)
			if err != nil {
				return err
			}

			session := usecases.NewViewSession(view, a.records)
			session.Restore(values)

			program := tea.NewProgram(
				ui.NewBrowser(cmd.Context(), session),
				tea.WithContext(cmd.Context()),
				tea.WithAltScreen(),
				tea.WithOutput(a.out),
			)
			final, err := program.Run()
			if err != nil {
				return err
			}

			if browser, ok := final.(*ui.Browser); ok && browser.Err() != nil {
				return browser.Err()
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&params, "param", "p", nil, "initial view parameter as key=value, repeatable")
	return cmd
}
