// Package view renders game state as plain text for the shells.
package view

import (
	"fmt"
	"strings"

	"blackjack/internal/game"
	"blackjack/internal/player"
)

const hidden = "?"

// Hand lists cards as "Ace of Spades, 10 of Hearts".
func Hand(cards []game.Card) string {
	names := make([]string, len(cards))
	for i, c := range cards {
		names[i] = c.String()
	}
	return strings.Join(names, ", ")
}

// Dealer shows only the up card until reveal is set.
func Dealer(cards []game.Card, reveal bool) string {
	if len(cards) == 0 {
		return ""
	}
	if reveal {
		return fmt.Sprintf("%s (%d)", Hand(cards), game.CalculateScore(cards))
	}
	return fmt.Sprintf("%s, %s (%d)", cards[0], hidden, cards[0].Rank.Value())
}

func Player(cards []game.Card) string {
	if len(cards) == 0 {
		return ""
	}
	value := game.CalculateScore(cards)
	switch {
	case game.IsBlackjack(cards):
		return fmt.Sprintf("%s (%d) Blackjack!", Hand(cards), value)
	case game.IsSoft(cards):
		return fmt.Sprintf("%s (soft %d)", Hand(cards), value)
	default:
		return fmt.Sprintf("%s (%d)", Hand(cards), value)
	}
}

func Table(playerCards, dealerCards []game.Card, reveal bool) string {
	return fmt.Sprintf("Player Hand: %s\nDealer Hand: %s", Player(playerCards), Dealer(dealerCards, reveal))
}

// Message is the text shown once a round is settled.
func Message(r game.Resolution) string {
	switch {
	case r.Reason == game.PlayerBust:
		return "Bust! You lose."
	case r.Reason == game.DealerBust:
		return "Dealer busts! You win!"
	case r.Outcome == game.Win:
		return "You win!"
	case r.Outcome == game.Lose:
		return "You lose."
	default:
		return "It's a tie!"
	}
}

// Resolution shows both final hands, the dealer's face down card included.
func Resolution(r game.Resolution) string {
	return fmt.Sprintf("%s\n\n%s", Table(r.PlayerHand, r.DealerHand, true), Message(r))
}

func Stats(p *player.Player) string {
	return fmt.Sprintf("Rounds: %d\nWins: %d (%.1f%%)\nLosses: %d\nTies: %d",
		p.Rounds, p.Wins, p.WinRate(), p.Losses, p.Ties)
}

func Top(stats []player.Stats) string {
	if len(stats) == 0 {
		return "Nobody has played yet."
	}

	var sb strings.Builder
	sb.WriteString("Top players:\n")
	for i, s := range stats {
		sb.WriteString(fmt.Sprintf("%d. %d: %d wins in %d rounds (%.0f%%)\n",
			i+1, s.ChatID, s.Wins, s.Rounds, s.WinRate))
	}
	return strings.TrimRight(sb.String(), "\n")
}
