package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"reflect"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the service settings.
// Tags used:
// - mapstructure: environment variable name
// - default: value used when the variable is unset
type Config struct {
	Environment string `mapstructure:"APP_ENV" default:"development"`
	LogLevel    string `mapstructure:"LOG_LEVEL" default:"info"`
	HTTPPort    string `mapstructure:"HTTP_PORT" default:"8080"`

	// DBHost selects the storage: empty keeps everything in memory.
	DBHost     string `mapstructure:"DB_HOST"`
	DBPort     string `mapstructure:"DB_PORT" default:"5432"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME"`
	DBSslMode  string `mapstructure:"DB_SSLMODE" default:"disable"`

	// RedisURL, when set, fans realtime events out across instances.
	RedisURL string `mapstructure:"REDIS_URL"`

	// KafkaHost, when set, mirrors status changes to KafkaOrderChangedTopic.
	KafkaHost              string `mapstructure:"KAFKA_HOST"`
	KafkaOrderChangedTopic string `mapstructure:"KAFKA_ORDER_CHANGED_TOPIC" default:"order.status.changed"`

	// RendererURL, when set, turns slip documents into PDF.
	RendererURL     string        `mapstructure:"RENDERER_URL"`
	RendererTimeout time.Duration `mapstructure:"RENDERER_TIMEOUT" default:"30s"`

	StatusCatalogPath     string `mapstructure:"STATUS_CATALOG_PATH"`
	BacklogReportSchedule string `mapstructure:"BACKLOG_REPORT_SCHEDULE" default:"0 */5 * * * *"`
}

// LoadConfig reads dir/.env when present, then the environment. Variables
// already set in the environment win over the file.
func LoadConfig(dir string) (Config, error) {
	if err := godotenv.Load(filepath.Join(dir, ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()
	v.AutomaticEnv()

	var config Config
	if err := processTags(v, &config); err != nil {
		return Config{}, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := config.validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

// UsesPostgres reports whether a database is configured.
func (c Config) UsesPostgres() bool {
	return c.DBHost != ""
}

// DSN is the Postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func (c Config) validate() error {
	if !c.UsesPostgres() {
		return nil
	}
	var missing []error
	if c.DBUser == "" {
		missing = append(missing, errors.New("missing required configuration: DB_USER"))
	}
	if c.DBName == "" {
		missing = append(missing, errors.New("missing required configuration: DB_NAME"))
	}
	return errors.Join(missing...)
}

// processTags binds every field to its environment variable and registers
// its default.
func processTags(v *viper.Viper, config any) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		key := field.Tag.Get("mapstructure")
		if key == "" {
			continue
		}

		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("bind %s: %w", key, err)
		}

		if def := field.Tag.Get("default"); def != "" {
			v.SetDefault(key, def)
		}
	}
	return nil
}
