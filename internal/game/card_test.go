package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCard(t *testing.T) {
	tests := []struct {
		in   string
		want Card
	}{
		{"As", Card{Rank: Ace, Suit: Spades}},
		{"10h", Card{Rank: Ten, Suit: Hearts}},
		{"Td", Card{Rank: Ten, Suit: Diamonds}},
		{"kc", Card{Rank: King, Suit: Clubs}},
		{"Q♥", Card{Rank: Queen, Suit: Hearts}},
		{"Jack of Diamonds", Card{Rank: Jack, Suit: Diamonds}},
		{"7 of Spades", Card{Rank: Seven, Suit: Spades}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCard(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCard_Invalid(t *testing.T) {
	_, err := ParseCard("1s")
	assert.ErrorIs(t, err, ErrInvalidRank)

	_, err = ParseCard("Ax")
	assert.ErrorIs(t, err, ErrInvalidSuit)

	_, err = ParseCard("A")
	assert.ErrorIs(t, err, ErrInvalidRank)

	assert.Panics(t, func() { MustParseCard("Zz") })
}

func TestCard_String(t *testing.T) {
	c := Card{Rank: Ace, Suit: Spades}
	assert.Equal(t, "Ace of Spades", c.String())
	assert.Equal(t, "A♠", c.Short())

	c = Card{Rank: Ten, Suit: Hearts}
	assert.Equal(t, "10 of Hearts", c.String())
	assert.Equal(t, "10♥", c.Short())
}

func TestShortHand(t *testing.T) {
	assert.Equal(t, "A♠ 10♥ K♦", ShortHand(MustParseCards("As", "10h", "Kd")))
	assert.Empty(t, ShortHand(nil))
}

func TestRank_Value(t *testing.T) {
	assert.Equal(t, 2, Two.Value())
	assert.Equal(t, 10, Ten.Value())
	assert.Equal(t, 10, Jack.Value())
	assert.Equal(t, 10, Queen.Value())
	assert.Equal(t, 10, King.Value())
	assert.Equal(t, 11, Ace.Value())
	assert.Len(t, CardValues, 13)
}
