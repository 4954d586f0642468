package wire

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"hubble-workspace/cmd/config"
	billingpersistence "hubble-workspace/internal/billing/persistence"
	billingusecases "hubble-workspace/internal/billing/usecases"
	"hubble-workspace/internal/infra/cache"
	"hubble-workspace/internal/infra/pubsub"
	"hubble-workspace/internal/infra/sql"
	"hubble-workspace/internal/logger"
	"hubble-workspace/internal/workspace/catalog"
	"hubble-workspace/internal/workspace/usecases"
)

const defaultConsumerGroup = "hubble-workspace"

func provideAppConfig() config.AppConfig {
	return config.LoadConfig()
}

func provideTicker() *time.Ticker {
	return time.NewTicker(30 * time.Second)
}

func provideNow() time.Time {
	return time.Now()
}

func provideRecordRepository(config config.AppConfig) (billingusecases.RecordRepository, func(), error) {
	var (
		orm *sql.DB
		err error
	)

	switch config.Storage.Driver {
	case "", "memory":
		return billingpersistence.NewMemoryRecordRepository(), func() {}, nil
	case "sqlite":
		if config.Database.DSN == "" {
			orm, err = sql.NewMemoryORM()
		} else {
			orm, err = sql.NewSQLiteORM(config.Database.DSN)
		}
	case "postgres":
		orm, err = sql.NewPostgresORM(config.Database.DSN)
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", config.Storage.Driver)
	}
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		if err := orm.Close(); err != nil {
			slog.Error("closing database", slog.String("error", err.Error()))
		}
	}

	repository, err := billingpersistence.NewORMRecordRepository(orm)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return repository, cleanup, nil
}

func provideCache(config config.AppConfig) (cache.Cache, func(), error) {
	if config.Cache.Driver == "redis" {
		redisConfig := cache.DefaultRedisConfig()
		redisConfig.Addr = config.Redis.Addr
		redisConfig.Password = config.Redis.Password
		redisConfig.DB = config.Redis.DB
		if config.Redis.PoolSize > 0 {
			redisConfig.PoolSize = config.Redis.PoolSize
		}

		client, err := cache.NewRedisClient(context.Background(), redisConfig)
		if err != nil {
			return nil, nil, err
		}
		return cache.NewRedisCache(client, redisConfig), func() { _ = client.Close() }, nil
	}

	ristretto, err := cache.New(cache.DefaultConfig())
	if err != nil {
		return nil, nil, err
	}
	return ristretto, ristretto.Close, nil
}

func provideAnalyticsTTL(config config.AppConfig) time.Duration {
	return config.Cache.AnalyticsTTL
}

func provideRefreshSchedule(config config.AppConfig) string {
	return config.Analytics.RefreshSchedule
}

// Schemas fetched from the registry are kept in a private in-process cache.
func providePubSubFactory(config config.AppConfig, broker *pubsub.MemoryBroker) (*pubsub.Factory, error) {
	schemas, err := cache.New(&cache.Config{MaxCost: 1 << 20, NumCounters: 1e3, BufferItems: 64})
	if err != nil {
		return nil, err
	}

	group := config.Kafka.Group
	if group == "" {
		group = defaultConsumerGroup
	}

	return pubsub.NewFactory(pubsub.FactoryOptions{
		Environment:       config.Events.Environment,
		KafkaBrokers:      config.Kafka.Brokers,
		SchemaRegistryURL: config.Kafka.SchemaRegistry,
		ConsumerGroup:     group,
		Broker:            broker,
		Schemas:           schemas,
	}), nil
}

func provideRecordEventPublisher(factory *pubsub.Factory) (pubsub.Publisher, error) {
	return factory.GetPublisherFactory().New(pubsub.RecordEventsTopic)
}

func provideRecordEventConsumer(factory *pubsub.Factory) pubsub.Consumer {
	return factory.GetConsumerFactory().New()
}

func provideCatalog() (usecases.Catalog, error) {
	return catalog.Load()
}

func provideSeederLogger(config config.AppConfig) (logger.Logger, error) {
	return logger.New(logger.Options{Level: config.General.LogLevel, Name: "seeder"})
}

func provideSeed(config config.AppConfig) int64 {
	return config.Seed.Value
}

func provideSeedCounts(config config.AppConfig) billingusecases.SeedCounts {
	counts := config.Seed.Counts
	return billingusecases.SeedCounts{
		Plans:         counts.Plans,
		Accounts:      counts.Accounts,
		Subscriptions: counts.Subscriptions,
		Transactions:  counts.Transactions,
		Invoices:      counts.Invoices,
	}
}
