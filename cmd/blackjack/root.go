package main

import (
	"os"

	"blackjack/internal/config"
	"blackjack/internal/database"
	"blackjack/internal/logging"
	"blackjack/internal/player"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	cfg    *config.Config
	logger *logrus.Logger
)

var rootCmd = &cobra.Command{
	Use:   "blackjack",
	Short: "Single-player blackjack against the dealer",
	Long: `Blackjack deals a shuffled 52-card deck to you and a dealer.
Hit to take cards, stand to let the dealer draw to 17, closest to 21 wins.

Play in the terminal with 'blackjack play' or serve Telegram chats with
'blackjack bot'. Settings come from a .env file, the environment and an
optional TOML file (--config or BLACKJACK_CONFIG).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("config")

		var err error
		cfg, err = config.Load(file)
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("db") {
			cfg.DatabasePath, _ = cmd.Flags().GetString("db")
		}
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
		}

		logger, err = logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "path to a TOML config file")
	rootCmd.PersistentFlags().String("db", "", "path to the SQLite scoreboard")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(playCmd, botCmd, statsCmd)
}

func openPlayers() (*database.DB, player.Repository, error) {
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		return nil, nil, err
	}
	logger.WithField("path", cfg.DatabasePath).Debug("Database connected")
	return db, player.NewRepository(db.DB), nil
}
