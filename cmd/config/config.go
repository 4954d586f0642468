package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	StorageMemory   = "memory"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"

	CacheRistretto = "ristretto"
	CacheRedis     = "redis"
)

var loadConfigOnce sync.Once
var configInstance AppConfig

// LoadConfig parses the process flags and loads server.yaml once per process.
func LoadConfig() AppConfig {
	loadConfigOnce.Do(func() {
		flags := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
		RegisterFlags(flags)
		_ = flags.Parse(os.Args[1:])

		config, err := Load(flags)
		if err != nil {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
		configInstance = config
	})

	return configInstance
}

func RegisterFlags(flags *pflag.FlagSet) {
	flags.String("config-path", "", "directory holding server.yaml")
	flags.Int64("seed", 0, "seed for the fake record generator")
	flags.Bool("no-seed", false, "start with empty collections")
}

// Load reads server.yaml, environment variables prefixed with HUBBLE_WORKSPACE_
// and the given flags, in increasing order of precedence.
func Load(flags *pflag.FlagSet) (AppConfig, error) {
	v := viper.New()
	v.SetEnvPrefix("hubble_workspace")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetConfigName("server")
	v.SetConfigType("yaml")
	setDefaults(v)

	if flags != nil {
		if path, err := flags.GetString("config-path"); err == nil && path != "" {
			v.AddConfigPath(path)
		}
		if flag := flags.Lookup("seed"); flag != nil && flag.Changed {
			if err := v.BindPFlag("seed.value", flag); err != nil {
				return AppConfig{}, err
			}
		}
		if disabled, err := flags.GetBool("no-seed"); err == nil && disabled {
			v.Set("seed.enabled", false)
		}
	}
	v.AddConfigPath("config")
	v.AddConfigPath("/config")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return AppConfig{}, err
		}
	}

	config := AppConfig{
		General: GeneralConfig{
			LogLevel: v.GetString("general.log_level"),
		},
		HTTP: HTTPConfig{
			Addr:           v.GetString("http.addr"),
			AllowedOrigins: v.GetStringSlice("http.allowed_origins"),
		},
		Storage: StorageConfig{
			Driver: v.GetString("storage.driver"),
		},
		Database: DatabaseConfig{
			DSN: v.GetString("database.dsn"),
		},
		Seed: SeedConfig{
			Enabled: v.GetBool("seed.enabled"),
			Value:   v.GetInt64("seed.value"),
			Counts: SeedCounts{
				Plans:         v.GetInt("seed.counts.plans"),
				Accounts:      v.GetInt("seed.counts.accounts"),
				Subscriptions: v.GetInt("seed.counts.subscriptions"),
				Transactions:  v.GetInt("seed.counts.transactions"),
				Invoices:      v.GetInt("seed.counts.invoices"),
			},
		},
		Cache: CacheConfig{
			Driver:       v.GetString("cache.driver"),
			AnalyticsTTL: v.GetDuration("cache.analytics_ttl"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("redis.addr"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
			PoolSize: v.GetInt("redis.pool_size"),
		},
		Analytics: AnalyticsConfig{
			RefreshSchedule: v.GetString("analytics.refresh_schedule"),
		},
		Events: EventsConfig{
			Environment: v.GetString("events.environment"),
		},
		Kafka: KafkaConfig{
			Brokers:        v.GetStringSlice("kafka.brokers"),
			Group:          v.GetString("kafka.group"),
			SchemaRegistry: v.GetString("kafka.schema_registry"),
		},
	}

	if err := config.validate(); err != nil {
		return AppConfig{}, err
	}
	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("general.log_level", "info")
	v.SetDefault("http.addr", ":3000")
	v.SetDefault("http.allowed_origins", []string{"*"})
	v.SetDefault("storage.driver", StorageMemory)
	v.SetDefault("seed.enabled", true)
	v.SetDefault("seed.value", 42)
	v.SetDefault("seed.counts.plans", 10)
	v.SetDefault("seed.counts.accounts", 100)
	v.SetDefault("seed.counts.subscriptions", 500)
	v.SetDefault("seed.counts.transactions", 100)
	v.SetDefault("seed.counts.invoices", 100)
	v.SetDefault("cache.driver", CacheRistretto)
	v.SetDefault("cache.analytics_ttl", 5*time.Minute)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("analytics.refresh_schedule", "0 * * * *")
	v.SetDefault("events.environment", "local")
	v.SetDefault("kafka.group", "hubble-workspace")
}

func (c AppConfig) validate() error {
	switch c.Storage.Driver {
	case StorageMemory, StorageSQLite:
	case StoragePostgres:
		if c.Database.DSN == "" {
			return errors.New("database.dsn is required for the postgres storage driver")
		}
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}

	switch c.Cache.Driver {
	case CacheRistretto, CacheRedis:
	default:
		return fmt.Errorf("unknown cache driver %q", c.Cache.Driver)
	}

	if c.Events.Environment != "local" && len(c.Kafka.Brokers) == 0 {
		return errors.New("kafka.brokers is required outside the local events environment")
	}
	return nil
}

type AppConfig struct {
	General   GeneralConfig
	HTTP      HTTPConfig
	Storage   StorageConfig
	Database  DatabaseConfig
	Seed      SeedConfig
	Cache     CacheConfig
	Redis     RedisConfig
	Analytics AnalyticsConfig
	Events    EventsConfig
	Kafka     KafkaConfig
}

type GeneralConfig struct {
	LogLevel string
}

type HTTPConfig struct {
	Addr           string
	AllowedOrigins []string
}

type StorageConfig struct {
	Driver string
}

type DatabaseConfig struct {
	DSN string
}

type SeedConfig struct {
	Enabled bool
	Value   int64
	Counts  SeedCounts
}

type SeedCounts struct {
	Plans         int
	Accounts      int
	Subscriptions int
	Transactions  int
	Invoices      int
}

type CacheConfig struct {
	Driver       string
	AnalyticsTTL time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	PoolSize int
}

type AnalyticsConfig struct {
	RefreshSchedule string
}

type EventsConfig struct {
	Environment string
}

type KafkaConfig struct {
	Brokers        []string
	Group          string
	SchemaRegistry string
}
