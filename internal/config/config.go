package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Auth       AuthConfig       `mapstructure:"auth"`
	Scheduler  SchedulerConfig  `mapstructure:"scheduler"`
	Statistics StatisticsConfig `mapstructure:"statistics"`
}

type ServerConfig struct {
	Port        int        `mapstructure:"port" validate:"min=1,max=65535"`
	TLSCertFile string     `mapstructure:"tls_cert_file" validate:"omitempty,file"`
	TLSKeyFile  string     `mapstructure:"tls_key_file" validate:"omitempty,file"`
	CORS        CORSConfig `mapstructure:"cors"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type DatabaseConfig struct {
	Host            string            `mapstructure:"host" validate:"required"`
	Port            int               `mapstructure:"port" validate:"min=1,max=65535"`
	Database        string            `mapstructure:"database" validate:"required"`
	Username        string            `mapstructure:"username" validate:"required"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns" validate:"gte=0"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds" validate:"gte=0"`
	TxRetryAttempts uint              `mapstructure:"tx_retry_attempts" validate:"gte=1"`
}

type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
	Issuer    string `mapstructure:"issuer"`
}

// SchedulerConfig holds the tunable parameters of the review scheduler.
type SchedulerConfig struct {
	InitialInterval   time.Duration `mapstructure:"initial_interval" validate:"gt=0"`
	ReviewMinInterval time.Duration `mapstructure:"review_min_interval" validate:"gt=0"`
	MaxInterval       time.Duration `mapstructure:"max_interval" validate:"gt=0"`
	DefaultEase       float64       `mapstructure:"default_ease" validate:"gtefield=EaseFloor"`
	EaseFloor         float64       `mapstructure:"ease_floor" validate:"gt=0"`
	PassThreshold     int           `mapstructure:"pass_threshold" validate:"gte=1,ltefield=MaxRating"`
	MaxRating         int           `mapstructure:"max_rating" validate:"gte=1"`
	MaxPenaltyPoints  int           `mapstructure:"max_penalty_points" validate:"gte=0"`
	PenaltyShrink     float64       `mapstructure:"penalty_shrink" validate:"gte=0,lt=1"`
	RelearnPasses     int           `mapstructure:"relearn_passes" validate:"gte=1"`
	GraduationPasses  int           `mapstructure:"graduation_passes" validate:"gte=1"`
}

type StatisticsConfig struct {
	OutputDirectory string `mapstructure:"output_directory"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/memorizer")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "memorizer")
	v.SetDefault("database.username", "memorizer")
	v.SetDefault("database.tx_retry_attempts", 3)
	v.SetDefault("auth.issuer", "memorizer")
	v.SetDefault("scheduler.initial_interval", "24h")
	v.SetDefault("scheduler.review_min_interval", "24h")
	v.SetDefault("scheduler.max_interval", "87600h")
	v.SetDefault("scheduler.default_ease", 2.5)
	v.SetDefault("scheduler.ease_floor", 1.3)
	v.SetDefault("scheduler.pass_threshold", 3)
	v.SetDefault("scheduler.max_rating", 5)
	v.SetDefault("scheduler.max_penalty_points", 10)
	v.SetDefault("scheduler.penalty_shrink", 0.25)
	v.SetDefault("scheduler.relearn_passes", 3)
	v.SetDefault("scheduler.graduation_passes", 1)
	v.SetDefault("statistics.output_directory", filepath.Join("outputs", "statistics"))

	// Secrets are bound to environment variables only
	if err := v.BindEnv("database.password", "DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_PASSWORD environment variable: %w", err)
	}
	if err := v.BindEnv("auth.jwt_secret", "MEMORIZER_JWT_SECRET"); err != nil {
		return nil, fmt.Errorf("failed to bind MEMORIZER_JWT_SECRET environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
