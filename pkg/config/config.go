package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
)

type Config struct {
	DatabaseConnectRetryCount int
	DatabaseConnectRetryDelay time.Duration
	DatabaseBusyTimeout       time.Duration
	DatabaseDebug             bool
	DatabaseFilePath          string
	Environment               string
	FrontendURL               string
	Hostname                  string
	JWTSecret                 string
	ServerHost                string
	ServerPort                int
}

const (
	environmentENV = "ENVIRONMENT"
	jwtSecretENV   = "JWT_SECRET"
)

func New() (*Config, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	cfg := &Config{
		DatabaseConnectRetryCount: 5,
		DatabaseConnectRetryDelay: 2 * time.Second,
		DatabaseBusyTimeout:       5 * time.Second,
		Hostname:                  hostname,
		ServerPort:                8000,
	}

	cfg.Environment = os.Getenv(environmentENV)
	switch cfg.Environment {
	case "development", "":
		cfg.Environment = "development"
		loadDevelopmentConfig(cfg)
	case "test":
		loadTestConfig(cfg)
	case "production":
		loadProductionConfig(cfg)
	}

	if secret := os.Getenv(jwtSecretENV); secret != "" {
		cfg.JWTSecret = secret
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET must be set")
	}

	return cfg, nil
}
