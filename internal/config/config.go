// Package config содержит логику чтения конфигурации сервиса проверки номеров.
package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config содержит параметры конфигурации сервиса проверки номеров.
type Config struct {
	RunAddress     string `env:"RUN_ADDRESS"`
	DatabaseURI    string `env:"DATABASE_URI"`
	LogLevel       string `env:"LOG_LEVEL"`
	CleanStrategy  string `env:"CLEAN_STRATEGY"`
	DoubleStrategy string `env:"DOUBLE_STRATEGY"`
	SumStrategy    string `env:"SUM_STRATEGY"`
}

const (
	defaultRunAddress = "localhost:8080"
	defaultLogLevel   = "info"
	defaultStrategy   = "canonical"
)

// Parse считывает конфигурацию из флагов командной строки и переменных окружения.
// Переменные окружения имеют приоритет над флагами.
func Parse() (*Config, error) {
	envCfg := Config{}
	if err := env.Parse(&envCfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg := &Config{}

	flag.StringVar(&cfg.RunAddress, "a", defaultRunAddress, "address and port for HTTP server")
	flag.StringVar(&cfg.DatabaseURI, "d", "", "database URI")
	flag.StringVar(&cfg.LogLevel, "l", defaultLogLevel, "log level")
	flag.StringVar(&cfg.CleanStrategy, "clean", defaultStrategy, "digit cleaning strategy")
	flag.StringVar(&cfg.DoubleStrategy, "double", defaultStrategy, "alternate doubling strategy")
	flag.StringVar(&cfg.SumStrategy, "sum", defaultStrategy, "luhn sum strategy")

	flag.Parse()

	override(&cfg.RunAddress, envCfg.RunAddress)
	override(&cfg.DatabaseURI, envCfg.DatabaseURI)
	override(&cfg.LogLevel, envCfg.LogLevel)
	override(&cfg.CleanStrategy, envCfg.CleanStrategy)
	override(&cfg.DoubleStrategy, envCfg.DoubleStrategy)
	override(&cfg.SumStrategy, envCfg.SumStrategy)

	if cfg.RunAddress == "" {
		cfg.RunAddress = defaultRunAddress
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}

	return cfg, nil
}

func override(dst *string, envValue string) {
	if envValue != "" {
		*dst = envValue
	}
}
