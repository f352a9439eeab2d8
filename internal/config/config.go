package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultPath - used when CONFIG_PATH is not set, relative to the working directory.
const DefaultPath = "config.yml"

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Redis    Redis  `yaml:"redis"`
	Cache    Cache  `yaml:"cache"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// Cache - settings of the solved positions cache. When disabled, solutions are kept in process memory.
type Cache struct {
	Enabled bool          `yaml:"enabled" env:"CACHE_ENABLED"`
	TTL     time.Duration `yaml:"ttl" env:"CACHE_TTL" env-default:"24h"`
	Prefix  string        `yaml:"prefix" env:"CACHE_PREFIX" env-default:"solution"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Path - the config file named by CONFIG_PATH, or DefaultPath.
func Path() string {
	if path, ok := os.LookupEnv("CONFIG_PATH"); ok && path != "" {
		return path
	}

	return DefaultPath
}

// SlogLevel - log-level as a slog level. Unknown names fall back to info.
func (that *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(that.LogLevel)); err != nil {
		return slog.LevelInfo
	}

	return level
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
