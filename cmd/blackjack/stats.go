package main

import (
	"fmt"

	"blackjack/internal/console"
	"blackjack/internal/view"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show your terminal results and the best players",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		db, players, err := openPlayers()
		if err != nil {
			return err
		}
		defer db.Close()

		p, err := players.GetOrCreate(console.LocalPlayer)
		if err != nil {
			return err
		}
		top, err := players.GetTopByWins(limit)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, view.Stats(p))
		fmt.Fprintln(out)
		fmt.Fprintln(out, view.Top(top))
		return nil
	},
}

func init() {
	statsCmd.Flags().IntP("limit", "n", 10, "number of players to list")
}
