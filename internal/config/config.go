package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Game     Game   `yaml:"game"`
	Redis    Redis  `yaml:"redis"`
}

// Game holds the defaults used when the command line does not name a board.
// A Size of 0 keeps the variant's own default.
type Game struct {
	Variant string `yaml:"variant" env:"SOLITAIRE_VARIANT" env-default:"english"`
	Size    int    `yaml:"size" env:"SOLITAIRE_SIZE" env-default:"0"`
}

// Redis is only used to record finished games; it is off unless Enabled is set.
type Redis struct {
	Enabled     bool   `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host        string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port        string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	HistorySize int    `yaml:"history-size" env:"REDIS_HISTORY_SIZE" env-default:"100"`
}

// Load - reads the YAML file at path, falling back to environment variables and
// defaults when the file does not exist.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

// MustLoad - same as Load but panics on error.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
