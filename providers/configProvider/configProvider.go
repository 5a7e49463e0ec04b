package configprovider

import (
	"errors"
	"fmt"

	"assetflow/providers"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"
)

type EnvConfigProvider struct {
	cfg providers.AppConfig
}

func NewConfigProvider() providers.ConfigProvider {
	return &EnvConfigProvider{}
}

func (e *EnvConfigProvider) LoadEnv() error {
	if err := godotenv.Load(); err != nil {
		zap.L().Warn(".env file not loaded, using system envs")
	}
	if err := envconfig.Process("", &e.cfg); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if e.cfg.JWTSecret == "" || e.cfg.JWTRefreshSecret == "" {
		return errors.New("JWT_SECRET and JWT_REFRESH_SECRET must be provided")
	}
	return nil
}

func (e *EnvConfigProvider) GetServerPort() string {
	return e.cfg.ServerPort
}

func (e *EnvConfigProvider) GetDatabaseString() string {
	return fmt.Sprintf("user=%s password=%s host=%s port=%s dbname=%s sslmode=%s",
		e.cfg.DBUser, e.cfg.DBPassword, e.cfg.DBHost, e.cfg.DBPort, e.cfg.DBName, e.cfg.DBSSLMode)
}

func (e *EnvConfigProvider) GetRedisAddr() string {
	return e.cfg.RedisAddr
}

func (e *EnvConfigProvider) Get() providers.AppConfig {
	return e.cfg
}
