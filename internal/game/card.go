package game

import (
	"fmt"
	"strings"
)

type Suit byte

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

var suits = []Suit{Hearts, Diamonds, Clubs, Spades}

var suitNames = map[Suit]string{
	Hearts: "Hearts", Diamonds: "Diamonds", Clubs: "Clubs", Spades: "Spades",
}

var suitSymbols = map[Suit]string{
	Hearts: "♥", Diamonds: "♦", Clubs: "♣", Spades: "♠",
}

func (s Suit) String() string {
	if name, ok := suitNames[s]; ok {
		return name
	}
	return fmt.Sprintf("suit(%d)", int(s))
}

type Rank byte

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

var ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

// CardValues is the blackjack value of each rank. Ace counts 11 until softened.
var CardValues = map[Rank]int{
	Two: 2, Three: 3, Four: 4, Five: 5, Six: 6, Seven: 7, Eight: 8, Nine: 9, Ten: 10,
	Jack: 10, Queen: 10, King: 10, Ace: 11,
}

var rankNames = map[Rank]string{
	Two: "2", Three: "3", Four: "4", Five: "5", Six: "6", Seven: "7", Eight: "8",
	Nine: "9", Ten: "10", Jack: "Jack", Queen: "Queen", King: "King", Ace: "Ace",
}

var rankShort = map[Rank]string{
	Jack: "J", Queen: "Q", King: "K", Ace: "A",
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return fmt.Sprintf("rank(%d)", int(r))
}

// Value returns the hard value of the rank, 11 for an Ace.
func (r Rank) Value() int {
	return CardValues[r]
}

type Card struct {
	Rank Rank
	Suit Suit
}

func (c Card) String() string {
	return c.Rank.String() + " of " + c.Suit.String()
}

// Short renders the card as rank plus suit symbol, e.g. "A♠" or "10♥".
func (c Card) Short() string {
	r, ok := rankShort[c.Rank]
	if !ok {
		r = c.Rank.String()
	}
	return r + suitSymbols[c.Suit]
}

// ShortHand joins the short forms of the cards, e.g. "A♠ 10♥".
func ShortHand(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.Short()
	}
	return strings.Join(parts, " ")
}

// ParseRank accepts "2".."10", "J", "Q", "K", "A" and the full names.
func ParseRank(s string) (Rank, error) {
	token := strings.ToLower(strings.TrimSpace(s))
	for _, r := range ranks {
		if token == strings.ToLower(r.String()) {
			return r, nil
		}
		if short, ok := rankShort[r]; ok && token == strings.ToLower(short) {
			return r, nil
		}
	}
	if token == "t" {
		return Ten, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidRank, s)
}

// ParseSuit accepts the suit name, its first letter or its symbol.
func ParseSuit(s string) (Suit, error) {
	token := strings.ToLower(strings.TrimSpace(s))
	for _, st := range suits {
		name := strings.ToLower(st.String())
		if token == name || token == name[:1] || token == suitSymbols[st] {
			return st, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidSuit, s)
}

// ParseCard reads "As", "10h", "Kd" or "Queen of Clubs".
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if rank, suit, ok := strings.Cut(s, " of "); ok {
		r, err := ParseRank(rank)
		if err != nil {
			return Card{}, err
		}
		st, err := ParseSuit(suit)
		if err != nil {
			return Card{}, err
		}
		return Card{Rank: r, Suit: st}, nil
	}

	runes := []rune(s)
	if len(runes) < 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidRank, s)
	}
	r, err := ParseRank(string(runes[:len(runes)-1]))
	if err != nil {
		return Card{}, err
	}
	st, err := ParseSuit(string(runes[len(runes)-1:]))
	if err != nil {
		return Card{}, err
	}
	return Card{Rank: r, Suit: st}, nil
}

// MustParseCard is ParseCard for literals known to be valid. It panics otherwise.
func MustParseCard(s string) Card {
	c, err := ParseCard(s)
	if err != nil {
		panic(err)
	}
	return c
}

// MustParseCards parses a list of card literals.
func MustParseCards(ss ...string) []Card {
	cards := make([]Card, 0, len(ss))
	for _, s := range ss {
		cards = append(cards, MustParseCard(s))
	}
	return cards
}
