package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"

	"hubble-workspace/cmd/api/wire"
	"hubble-workspace/cmd/config"
	"hubble-workspace/internal/infra/async"
	"hubble-workspace/internal/infra/httpserver"
	"hubble-workspace/internal/infra/node"
	"hubble-workspace/internal/infra/pubsub"
)

var (
	logLevelMapping = map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
)

func main() {
	config := config.LoadConfig()

	level := logLevelMapping[config.General.LogLevel]
	baseHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{AddSource: true, Level: level, ReplaceAttr: slogReplaceAttr})
	handler := baseHandler.WithAttrs([]slog.Attr{slog.String("version", node.Version)})
	slog.SetDefault(slog.New(handler))
	slog.Info("hubble workspace is initializing", node.Current().LogValues()...)
	slog.Debug("config loaded", "data", config)

	providers, err := startTelemetry(context.Background())
	if err != nil {
		panic(err)
	}

	internalBroker := async.NewLocalBroker()
	eventBroker := pubsub.NewMemoryBroker()

	repository, closeRepository := handleCleanupInjector(wire.InitializeRecordRepository())
	factory := handleWireInjector(wire.InitializePubSubFactory(eventBroker))
	recordService := handleWireInjector(wire.InitializeRecordService(repository, factory))
	analyticsService, closeCache := handleCleanupInjector(wire.InitializeAnalyticsService(repository))

	appCtx, cancelFn := context.WithCancel(context.Background())

	if config.Seed.Enabled {
		seeder := handleWireInjector(wire.InitializeSeeder(repository))
		if err := seeder.Seed(appCtx); err != nil {
			slog.Error("seeding records", slog.String("error", err.Error()))
			panic(err)
		}
	}

	notificationController := handleWireInjector(wire.InitializeNotificationController(internalBroker))

	httpServer := httpserver.NewServer(
		httpserver.ServerConfig{Addr: config.HTTP.Addr, AllowedOrigins: config.HTTP.AllowedOrigins},
		handleWireInjector(wire.InitializeRecordController(recordService)),
		handleWireInjector(wire.InitializeAnalyticsController(analyticsService)),
		handleWireInjector(wire.InitializeViewController(recordService)),
		handleWireInjector(wire.InitializeFormController(recordService, internalBroker)),
		notificationController,
	)
	go httpServer.Run()
	slog.Info("http server listening", slog.String("addr", config.HTTP.Addr))

	workers := []async.Worker{
		handleWireInjector(wire.InitializeAnalyticsRefreshWorker(analyticsService)),
		handleWireInjector(wire.InitializeRecordEventWorker(factory, analyticsService)),
	}
	var wg sync.WaitGroup
	async.Start(appCtx, &wg, workers...)

	signalChannel := make(chan os.Signal, 2)
	signal.Notify(signalChannel, os.Interrupt, syscall.SIGTERM)

	<-signalChannel
	slog.Info("shutting down")

	httpServer.Shutdown()
	notificationController.Shutdown()
	cancelFn()
	async.ShutdownAll(workers...)
	wg.Wait()

	closeCache()
	closeRepository()
	if err := providers.Shutdown(context.Background()); err != nil {
		slog.Error("shutting down telemetry", slog.String("error", err.Error()))
	}
	slog.Info("good bye!!!")
	os.Exit(0)
}

func slogReplaceAttr(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.SourceKey {
		source := a.Value.Any().(*slog.Source)
		source.File = filepath.Base(source.File)
		return slog.Any(a.Key, source)
	}
	return a
}

func handleWireInjector[T any](value T, err error) T {
	if err != nil {
		panic(err)
	}

	return value
}

func handleCleanupInjector[T any](value T, cleanup func(), err error) (T, func()) {
	if err != nil {
		panic(err)
	}

	return value, cleanup
}
