package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App     AppConfig
	Redis   RedisConfig
	GCP     GCPConfig
	PubSub  PubSubConfig
	GenAI   GenAIConfig
	History HistoryConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"ECOMVOYAGE_APP_ENV" required:"true"`
	Port         string `envconfig:"ECOMVOYAGE_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"ECOMVOYAGE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"ECOMVOYAGE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type RedisConfig struct {
	URL          string        `envconfig:"ECOMVOYAGE_REDIS_URL" required:"true"`
	Address      string        `envconfig:"ECOMVOYAGE_REDIS_ADDR"`
	Password     string        `envconfig:"ECOMVOYAGE_REDIS_PASSWORD"`
	DB           int           `envconfig:"ECOMVOYAGE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"ECOMVOYAGE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"ECOMVOYAGE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"ECOMVOYAGE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"ECOMVOYAGE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"ECOMVOYAGE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type GCPConfig struct {
	ProjectID       string `envconfig:"ECOMVOYAGE_GCP_PROJECT_ID" required:"true"`
	CredentialsFile string `envconfig:"ECOMVOYAGE_GOOGLE_APPLICATION_CREDENTIALS"`
}

type PubSubConfig struct {
	OrdersTopic string `envconfig:"ECOMVOYAGE_PUBSUB_ORDERS_TOPIC" default:"ecv-order-events"`
}

type GenAIConfig struct {
	APIKey  string        `envconfig:"ECOMVOYAGE_GENAI_API_KEY"`
	Model   string        `envconfig:"ECOMVOYAGE_GENAI_MODEL" default:"gemini-2.0-flash"`
	Timeout time.Duration `envconfig:"ECOMVOYAGE_GENAI_TIMEOUT" default:"15s"`
}

type HistoryConfig struct {
	TTL time.Duration `envconfig:"ECOMVOYAGE_HISTORY_TTL" default:"720h"`
}
