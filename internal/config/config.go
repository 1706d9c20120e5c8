package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"blackjack/internal/game"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

var ErrNoBotToken = errors.New("BOT_TOKEN is not set")

type Rules struct {
	DealerStandsOn int `toml:"dealer_stands_on"`
	ReshuffleBelow int `toml:"reshuffle_below"`
}

type Config struct {
	BotToken     string `toml:"-"`
	DatabasePath string `toml:"database_path"`
	LogLevel     string `toml:"log_level"`
	LogFormat    string `toml:"log_format"`
	Rules        Rules  `toml:"rules"`
}

func Default() *Config {
	rules := game.DefaultRules()
	return &Config{
		DatabasePath: "./blackjack.db",
		LogLevel:     "info",
		LogFormat:    "text",
		Rules: Rules{
			DealerStandsOn: rules.DealerStandsOn,
			ReshuffleBelow: rules.ReshuffleBelow,
		},
	}
}

// Load layers defaults, the optional TOML file and the environment (a .env
// file in the working directory is read first). An empty file falls back to
// BLACKJACK_CONFIG.
func Load(file string) (*Config, error) {
	godotenv.Load()

	cfg := Default()

	if file == "" {
		file = os.Getenv("BLACKJACK_CONFIG")
	}
	if file != "" {
		if _, err := toml.DecodeFile(file, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode config file %s: %w", file, err)
		}
	}

	cfg.BotToken = os.Getenv("BOT_TOKEN")

	if dbPath := os.Getenv("DATABASE_PATH"); dbPath != "" {
		cfg.DatabasePath = dbPath
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}
	if format := os.Getenv("LOG_FORMAT"); format != "" {
		cfg.LogFormat = format
	}

	var err error
	if cfg.Rules.DealerStandsOn, err = envInt("DEALER_STANDS_ON", cfg.Rules.DealerStandsOn); err != nil {
		return nil, err
	}
	if cfg.Rules.ReshuffleBelow, err = envInt("RESHUFFLE_BELOW", cfg.Rules.ReshuffleBelow); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func envInt(key string, def int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func (c *Config) Validate() error {
	if c.Rules.DealerStandsOn < 2 || c.Rules.DealerStandsOn > game.Blackjack {
		return fmt.Errorf("dealer_stands_on must be between 2 and %d, got %d", game.Blackjack, c.Rules.DealerStandsOn)
	}
	if c.Rules.ReshuffleBelow < 0 || c.Rules.ReshuffleBelow > game.DeckSize {
		return fmt.Errorf("reshuffle_below must be between 0 and %d, got %d", game.DeckSize, c.Rules.ReshuffleBelow)
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("database_path is empty")
	}
	return nil
}

// RequireBotToken is checked only by the Telegram shell.
func (c *Config) RequireBotToken() error {
	if c.BotToken == "" {
		return ErrNoBotToken
	}
	return nil
}

func (c *Config) GameRules() game.Rules {
	return game.Rules{
		DealerStandsOn: c.Rules.DealerStandsOn,
		ReshuffleBelow: c.Rules.ReshuffleBelow,
	}
}
