// Package config loads application configuration from the environment, with
// an optional env file for local development.
package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"

	"github.com/sgcab/dispatch/internal/pkg/models"
)

// InitConfig loads configuration from environment variables, optionally
// seeded from the given file when running locally.
func InitConfig(configPath string) *models.Config {
	v := viper.New()

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			log.Println("config file not loaded, using environment:", err)
		}
	}

	return &models.Config{
		App: models.AppConfig{
			Name:        v.GetString("APP_NAME"),
			Environment: v.GetString("APP_ENV"),
			Version:     v.GetString("APP_VERSION"),
			Debug:       v.GetBool("APP_DEBUG"),
		},
		Server: models.ServerConfig{
			Host:            v.GetString("SERVER_HOST"),
			Port:            v.GetInt("SERVER_PORT"),
			ReadTimeout:     v.GetInt("SERVER_READ_TIMEOUT"),
			WriteTimeout:    v.GetInt("SERVER_WRITE_TIMEOUT"),
			ShutdownTimeout: v.GetInt("SERVER_SHUTDOWN_TIMEOUT"),
			StoreTimeout:    v.GetInt("SERVER_STORE_TIMEOUT"),
		},
		Database: models.DatabaseConfig{
			Host:      v.GetString("DB_HOST"),
			Port:      v.GetInt("DB_PORT"),
			Username:  v.GetString("DB_USERNAME"),
			Password:  v.GetString("DB_PASSWORD"),
			Database:  v.GetString("DB_DATABASE"),
			SSLMode:   v.GetString("DB_SSL_MODE"),
			MaxConns:  v.GetInt("DB_MAX_CONNS"),
			IdleConns: v.GetInt("DB_IDLE_CONNS"),
		},
		Redis: models.RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
			PoolSize: v.GetInt("REDIS_POOL_SIZE"),
		},
		NSQ: models.NSQConfig{
			Address:        v.GetString("NSQ_ADDRESS"),
			LookupdAddress: v.GetString("NSQ_LOOKUPD_ADDRESS"),
			Channel:        v.GetString("NSQ_CHANNEL"),
		},
		JWT: models.JWTConfig{
			Secret:     v.GetString("JWT_SECRET"),
			Expiration: v.GetInt("JWT_EXPIRATION"),
			Issuer:     v.GetString("JWT_ISSUER"),
		},
		Logger: models.LoggerConfig{
			Level:    v.GetString("LOG_LEVEL"),
			FilePath: v.GetString("LOG_FILE_PATH"),
		},
		Accounts: models.AccountsConfig{
			EmailDomain: v.GetString("ORG_EMAIL_DOMAIN"),
		},
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "dispatch")
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_DEBUG", true)

	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 9990)
	v.SetDefault("SERVER_READ_TIMEOUT", 10)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 10)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 10)
	v.SetDefault("SERVER_STORE_TIMEOUT", 5)

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_IDLE_CONNS", 2)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)

	v.SetDefault("NSQ_ADDRESS", "localhost:4150")
	v.SetDefault("NSQ_LOOKUPD_ADDRESS", "localhost:4161")
	v.SetDefault("NSQ_CHANNEL", "dispatch")

	v.SetDefault("JWT_EXPIRATION", 60)
	v.SetDefault("JWT_ISSUER", "dispatch")

	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("ORG_EMAIL_DOMAIN", "sc.local")
}
