// Package config loads server configuration from a yaml file and
// environment variables.
package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds the configuration values for the application.
type Config struct {
	// Env selects the deployment environment.
	Env string `yaml:"env" env:"APP_ENV" env-default:"local" env-description:"Environment" env-choices:"local,dev,prod"`
	// Address is the ip:port the server listens on.
	Address string `yaml:"address" env:"SERVER_ADDRESS" env-default:"localhost:8080"`
	// DatabaseDSN is the PostgreSQL connection string.
	DatabaseDSN string `yaml:"database_dsn" env:"DATABASE_DSN" env-required:"true"`
	// Token configures bearer-token signing.
	Token Token `yaml:"token"`
}

// Token holds token-signing configuration. The secret is resolved once at
// startup from configuration and is never embedded in code.
type Token struct {
	Secret string        `yaml:"secret" env:"TOKEN_SECRET" env-required:"true"`
	TTL    time.Duration `yaml:"ttl" env:"TOKEN_TTL" env-default:"24h"`
}

// MustLoad reads configuration from the file named by the -config flag or
// the CONFIG_PATH environment variable, with environment variables taking
// precedence. Without a config file it reads the environment alone.
// It panics on any load failure.
func MustLoad() *Config {
	path := fetchConfigPath()

	var cfg Config
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			panic("config file does not exist: " + path)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			panic("failed to read config: " + err.Error())
		}
		return &cfg
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		panic("failed to read config from environment: " + err.Error())
	}
	return &cfg
}

func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
