package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

const DefaultSourceURL = "https://srijandubey.github.io/campus-api-mock/SRM-C1-25.json"

type Config struct {
	App     AppConfig
	Source  SourceConfig
	DB      DBConfig
	Session SessionConfig
	Redis   RedisConfig
	Log     LogConfig
}

type AppConfig struct {
	Port string
	Env  string
}

// SourceConfig selects where doctor records come from and how
// availability is assigned when they are admitted.
type SourceConfig struct {
	Type               string // http | postgres
	URL                string
	Timeout            time.Duration
	AvailabilityPolicy string // source | random
	AvailabilitySeed   uint64
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type SessionConfig struct {
	Store string // memory | redis
	TTL   time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type LogConfig struct {
	Level string
}

func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("SOURCE_TYPE", "http")
	v.SetDefault("SOURCE_URL", DefaultSourceURL)
	v.SetDefault("AVAILABILITY_POLICY", "source")
	v.SetDefault("SESSION_STORE", "memory")
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("LOG_LEVEL", "info")

	// The .env file is optional, every key has a default.
	if err := v.ReadInConfig(); err != nil {
		var pathErr *fs.PathError
		if !errors.As(err, &pathErr) {
			return nil, err
		}
	}

	sourceTimeout, err := time.ParseDuration(v.GetString("SOURCE_TIMEOUT"))
	if err != nil {
		sourceTimeout = 10 * time.Second
	}

	sessionTTL, err := time.ParseDuration(v.GetString("SESSION_TTL"))
	if err != nil {
		sessionTTL = 24 * time.Hour
	}

	config := &Config{
		App: AppConfig{
			Port: v.GetString("APP_PORT"),
			Env:  v.GetString("APP_ENV"),
		},
		Source: SourceConfig{
			Type:               v.GetString("SOURCE_TYPE"),
			URL:                v.GetString("SOURCE_URL"),
			Timeout:            sourceTimeout,
			AvailabilityPolicy: v.GetString("AVAILABILITY_POLICY"),
			AvailabilitySeed:   v.GetUint64("AVAILABILITY_SEED"),
		},
		DB: DBConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
		},
		Session: SessionConfig{
			Store: v.GetString("SESSION_STORE"),
			TTL:   sessionTTL,
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
	}

	return config, nil
}
