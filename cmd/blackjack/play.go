package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"blackjack/internal/console"
	"blackjack/internal/game"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play rounds in the terminal",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, players, err := openPlayers()
		if err != nil {
			return err
		}
		defer db.Close()

		engine := game.NewEngine(game.NewDeck(nil), cfg.GameRules(), logger)

		sh := console.New(engine, players, os.Stdin, os.Stdout, logger)
		sh.Prompt = term.IsTerminal(int(os.Stdin.Fd()))

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		if err := sh.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	},
}
