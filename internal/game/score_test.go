package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateScore(t *testing.T) {
	tests := []struct {
		name  string
		cards []string
		want  int
	}{
		{"empty", nil, 0},
		{"pair of tens", []string{"10h", "10s"}, 20},
		{"blackjack", []string{"Ah", "Ks"}, 21},
		{"two aces", []string{"Ah", "As"}, 12},
		{"bust without aces", []string{"10h", "9s", "5d"}, 24},
		{"soft 17", []string{"Ac", "6d"}, 17},
		{"ace rescues bust", []string{"Ac", "5d", "8s"}, 14},
		{"three aces", []string{"Ac", "Ad", "Ah"}, 13},
		{"four aces and a seven", []string{"Ac", "Ad", "Ah", "As", "7c"}, 21},
		{"bust with softened ace", []string{"Ac", "Kd", "Qh", "2s"}, 23},
		{"faces", []string{"Jc", "Qd"}, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateScore(MustParseCards(tt.cards...)))
		})
	}
}

func permutations(cards []Card) [][]Card {
	if len(cards) <= 1 {
		return [][]Card{append([]Card(nil), cards...)}
	}
	var out [][]Card
	for i := range cards {
		rest := append(append([]Card(nil), cards[:i]...), cards[i+1:]...)
		for _, p := range permutations(rest) {
			out = append(out, append([]Card{cards[i]}, p...))
		}
	}
	return out
}

func TestCalculateScore_OrderIndependent(t *testing.T) {
	hands := [][]string{
		{"Ac", "5d", "8s", "Ah"},
		{"Kc", "Ad", "9s", "2h"},
		{"Ac", "Ad", "Ah", "9c"},
		{"3c", "4d", "Qs", "Ah"},
	}

	for _, h := range hands {
		cards := MustParseCards(h...)
		want := CalculateScore(cards)
		for _, p := range permutations(cards) {
			assert.Equal(t, want, CalculateScore(p), "hand %v", p)
		}
	}
}

func TestIsBlackjack(t *testing.T) {
	assert.True(t, IsBlackjack(MustParseCards("Ah", "Ks")))
	assert.True(t, IsBlackjack(MustParseCards("10d", "As")))
	assert.False(t, IsBlackjack(MustParseCards("7h", "7s", "7d")))
	assert.False(t, IsBlackjack(MustParseCards("Ah", "9s")))
}

func TestIsBustAndSoft(t *testing.T) {
	assert.True(t, IsBust(MustParseCards("10h", "9s", "5d")))
	assert.False(t, IsBust(MustParseCards("Ah", "Ks", "Qd")))

	assert.True(t, IsSoft(MustParseCards("Ah", "6s")))
	assert.False(t, IsSoft(MustParseCards("Ah", "6s", "9d")))
	assert.False(t, IsSoft(MustParseCards("10h", "6s")))
}
