package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel    string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort    string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	ServerURL   string `yaml:"server-url" env:"SERVER_URL" env-default:"ws://localhost:3490/cycles"`
	PlayerName  string `yaml:"player-name" env:"PLAYER_NAME"`
	Strategy    string `yaml:"strategy" env:"STRATEGY" env-default:"minimax"`
	SearchDepth int    `yaml:"search-depth" env:"SEARCH_DEPTH" env-default:"3"`
	Redis       Redis  `yaml:"redis"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:""`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// GetRedisAddr returns host:port, or an empty string when redis is not
// configured.
func (that *Redis) GetRedisAddr() string {
	if that.Host == "" {
		return ""
	}
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
