//go:build wireinject
// +build wireinject

package wire

import (
	"hubble-workspace/internal/billing/httpapi"
	"hubble-workspace/internal/billing/usecases"
	"hubble-workspace/internal/infra/pubsub"

	"github.com/google/wire"
)

func InitializeRecordRepository() (usecases.RecordRepository, func(), error) {
	wire.Build(
		provideAppConfig,
		provideRecordRepository,
	)
	return nil, nil, nil
}

func InitializePubSubFactory(broker *pubsub.MemoryBroker) (*pubsub.Factory, error) {
	wire.Build(
		provideAppConfig,
		providePubSubFactory,
	)
	return nil, nil
}

func InitializeRecordService(repository usecases.RecordRepository, factory *pubsub.Factory) (*usecases.SimpleRecordService, error) {
	wire.Build(
		provideRecordEventPublisher,
		usecases.NewRecordService,
	)
	return nil, nil
}

func InitializeAnalyticsService(repository usecases.RecordRepository) (*usecases.SimpleAnalyticsService, func(), error) {
	wire.Build(
		provideAppConfig,
		provideCache,
		provideAnalyticsTTL,
		usecases.NewAnalyticsService,
	)
	return nil, nil, nil
}

func InitializeRecordController(service usecases.RecordService) (*httpapi.RecordController, error) {
	wire.Build(
		httpapi.NewRecordController,
	)
	return nil, nil
}

func InitializeAnalyticsController(service usecases.AnalyticsService) (*httpapi.AnalyticsController, error) {
	wire.Build(
		httpapi.NewAnalyticsController,
	)
	return nil, nil
}

func InitializeAnalyticsRefreshWorker(service usecases.AnalyticsService) (*usecases.AnalyticsRefreshWorker, error) {
	wire.Build(
		provideAppConfig,
		provideTicker,
		provideRefreshSchedule,
		usecases.NewAnalyticsRefreshWorker,
	)
	return nil, nil
}

func InitializeRecordEventWorker(factory *pubsub.Factory, service usecases.AnalyticsService) (*usecases.RecordEventWorker, error) {
	wire.Build(
		provideRecordEventConsumer,
		usecases.NewRecordEventWorker,
	)
	return nil, nil
}

func InitializeSeeder(repository usecases.RecordRepository) (*usecases.Seeder, error) {
	wire.Build(
		provideAppConfig,
		provideSeederLogger,
		provideSeed,
		provideSeedCounts,
		provideNow,
		usecases.NewSeeder,
	)
	return nil, nil
}
