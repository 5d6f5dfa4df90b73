package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel        string `yaml:"log-level" env-default:"info"`
	Mode            string `yaml:"mode" env-default:"bot_smart"`
	BotDelayMS      int    `yaml:"bot-delay-ms" env-default:"500"`
	Board           Board  `yaml:"board"`
	LeaderboardPath string `yaml:"leaderboard-path"`
	SQLitePath      string `yaml:"sqlite-path"`
	Redis           Redis  `yaml:"redis"`
}

type Board struct {
	Width  int `yaml:"width" env-default:"30"`
	Height int `yaml:"height" env-default:"33"`
}

// Redis configures the shared leaderboard backend. An empty address keeps
// the leaderboard in the local JSON file.
type Redis struct {
	Addr string `yaml:"addr"`
}

// MustLoad - load all configurations in config.yml file. A missing file is
// fine for a local game; defaults apply.
func MustLoad(path string) *Config {
	config := &Config{}

	if _, err := os.Stat(path); err == nil {
		if err = cleanenv.ReadConfig(path, config); err != nil {
			panic(fmt.Errorf("unable to load config file: %w", err))
		}
		return config
	}

	if err := cleanenv.ReadEnv(config); err != nil {
		panic(fmt.Errorf("unable to load config defaults: %w", err))
	}

	return config
}
