package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Storage backend names.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	Service   ServiceConfig
	Storage   StorageConfig
	Redis     RedisConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// ServiceConfig is the service identity: the collection this instance
// serves and the metadata block merged into every response.
type ServiceConfig struct {
	Collection string
	Title      string
	Author     string
	Release    string
}

type StorageConfig struct {
	Backend string
	DataDir string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type CacheConfig struct {
	Enabled bool
	Size    int
}

// RateLimitConfig caps requests per minute; 0 disables the limiter.
type RateLimitConfig struct {
	PerMinute int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Service.Collection = viper.GetString("service.collection")
	cfg.Service.Title = viper.GetString("service.title")
	cfg.Service.Author = viper.GetString("service.author")
	cfg.Service.Release = viper.GetString("service.release")

	cfg.Storage.Backend = viper.GetString("storage.backend")
	cfg.Storage.DataDir = viper.GetString("storage.data_dir")

	cfg.Redis.Addr = viper.GetString("redis.addr")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")

	cfg.Cache.Enabled = viper.GetBool("cache.enabled")
	cfg.Cache.Size = viper.GetInt("cache.size")

	cfg.RateLimit.PerMinute = viper.GetInt("rate_limit.per_minute")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	switch cfg.Storage.Backend {
	case BackendFile:
		if cfg.Storage.DataDir == "" {
			return fmt.Errorf("storage.data_dir is required for the file backend")
		}
	case BackendRedis:
		if cfg.Redis.Addr == "" {
			return fmt.Errorf("redis.addr is required for the redis backend")
		}
	default:
		return fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
	if cfg.Cache.Enabled && cfg.Cache.Size <= 0 {
		return fmt.Errorf("cache.size must be positive when the cache is enabled")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("service.collection", "api")
	viper.SetDefault("service.title", "BigCo Activity Records")
	viper.SetDefault("service.author", "BigCo, Inc.")
	viper.SetDefault("service.release", "1.0.0")

	viper.SetDefault("storage.backend", BackendFile)
	viper.SetDefault("storage.data_dir", "./data")
	viper.SetDefault("redis.addr", "")
	viper.SetDefault("redis.db", 0)

	viper.SetDefault("cache.enabled", false)
	viper.SetDefault("cache.size", 256)

	viper.SetDefault("rate_limit.per_minute", 0)
}
