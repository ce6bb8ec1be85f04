package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Players  Players `yaml:"players"`
}

// Players selects the move strategy for each side: "human", "minimax" or
// "alphabeta".
type Players struct {
	X string `yaml:"x" env:"PLAYER_X" env-default:"human"`
	O string `yaml:"o" env:"PLAYER_O" env-default:"alphabeta"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}
