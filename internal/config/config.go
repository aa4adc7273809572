package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	ServerAddress   string        `mapstructure:"SERVER_ADDRESS"`
	LogLevel        string        `mapstructure:"LOG_LEVEL"`
	StorageBackend  string        `mapstructure:"STORAGE_BACKEND"`
	StorageDir      string        `mapstructure:"STORAGE_DIR"`
	StorageKey      string        `mapstructure:"STORAGE_KEY"`
	DBSource        string        `mapstructure:"DB_SOURCE"`
	ViaCEPBaseURL   string        `mapstructure:"VIACEP_BASE_URL"`
	LookupTimeout   time.Duration `mapstructure:"LOOKUP_TIMEOUT"`
	LookupCacheSize int64         `mapstructure:"LOOKUP_CACHE_SIZE"`
	LookupCacheTTL  time.Duration `mapstructure:"LOOKUP_CACHE_TTL"`
}

const (
	BackendFile     = "file"
	BackendPostgres = "postgres"
)

// LoadConfig reads configuration from app.env in path, overridden by environment variables.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STORAGE_BACKEND", BackendFile)
	v.SetDefault("STORAGE_DIR", "./data")
	v.SetDefault("STORAGE_KEY", "address_book")
	v.SetDefault("DB_SOURCE", "")
	v.SetDefault("VIACEP_BASE_URL", "https://viacep.com.br")
	v.SetDefault("LOOKUP_TIMEOUT", 10*time.Second)
	v.SetDefault("LOOKUP_CACHE_SIZE", 1000)
	v.SetDefault("LOOKUP_CACHE_TTL", time.Hour)

	v.AutomaticEnv()

	if err = v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
		err = nil
	}

	err = v.Unmarshal(&config)
	return
}
