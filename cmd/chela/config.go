package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/chela-orm/chela/logger"
)

// Config chela.yml, every value can be overridden by the environment
type Config struct {
	Dialect       string        `yaml:"dialect"`
	DSN           string        `yaml:"dsn"`
	LogLevel      string        `yaml:"log_level"`
	Logger        string        `yaml:"logger"`
	SlowThreshold time.Duration `yaml:"slow_threshold"`
	Concurrency   int           `yaml:"concurrency"`
}

func defaultConfig() Config {
	return Config{
		Dialect:       "postgres",
		LogLevel:      "warn",
		Logger:        "zerolog",
		SlowThreshold: 200 * time.Millisecond,
		// one statement at a time unless asked otherwise, 0 is unbounded
		Concurrency: 1,
	}
}

// loadConfig reads .env files, then the YAML file at path when it exists, then
// CHELA_* environment variables
func loadConfig(path string, envFiles ...string) (Config, error) {
	config := defaultConfig()

	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return config, fmt.Errorf("load env: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return config, err
		default:
			if err := yaml.Unmarshal(data, &config); err != nil {
				return config, fmt.Errorf("parse %s: %w", path, err)
			}
		}
	}

	if v, ok := os.LookupEnv("CHELA_DIALECT"); ok {
		config.Dialect = v
	}
	if v, ok := os.LookupEnv("CHELA_DSN"); ok {
		config.DSN = v
	}
	if v, ok := os.LookupEnv("CHELA_LOG_LEVEL"); ok {
		config.LogLevel = v
	}
	if v, ok := os.LookupEnv("CHELA_LOGGER"); ok {
		config.Logger = v
	}
	return config, nil
}

// newLogger builds the configured logger adapter
func (c Config) newLogger() (logger.Interface, error) {
	level, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	config := logger.Config{LogLevel: level, SlowThreshold: c.SlowThreshold}

	switch c.Logger {
	case "", "zerolog":
		return logger.NewZerologLoggerWithConfig(config), nil
	case "zap":
		return logger.NewZapLoggerWithConfig(config), nil
	case "logrus":
		return logger.NewLogrusLogger(logrus.StandardLogger(), config), nil
	case "slog":
		return logger.NewSlogLogger(slog.Default(), config), nil
	}
	return nil, fmt.Errorf("unknown logger %q", c.Logger)
}
