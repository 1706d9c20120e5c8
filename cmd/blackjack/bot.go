package main

import (
	"os"
	"os/signal"
	"syscall"

	"blackjack/internal/bot"
	"blackjack/internal/game"

	"github.com/spf13/cobra"
)

var botCmd = &cobra.Command{
	Use:   "bot",
	Short: "Serve blackjack to Telegram chats",
	Long: `Bot runs a Telegram bot. Every chat plays its own single-player game
against the dealer. BOT_TOKEN must be set.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.RequireBotToken(); err != nil {
			return err
		}

		db, players, err := openPlayers()
		if err != nil {
			return err
		}
		defer db.Close()

		rules := cfg.GameRules()
		games := game.NewManager(func() *game.Engine {
			return game.NewEngine(game.NewDeck(nil), rules, logger)
		})

		b, err := bot.New(cfg.BotToken, games, players, logger)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return b.Run(ctx)
	},
}
