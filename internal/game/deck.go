package game

import (
	"math/rand"
	"time"
)

const DeckSize = 52

type Deck struct {
	cards []Card
	rnd   *rand.Rand
}

// NewDeck builds the 52-card standard deck and shuffles it with r.
// A nil r uses a time-seeded source.
func NewDeck(r *rand.Rand) *Deck {
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	d := &Deck{rnd: r}
	d.Reset()
	return d
}

// NewOrderedDeck returns a deck that yields cards in the given order.
// Reset on such a deck rebuilds a shuffled standard deck.
func NewOrderedDeck(cards ...Card) *Deck {
	return &Deck{
		cards: append(make([]Card, 0, len(cards)), cards...),
		rnd:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// StandardCards returns the 52 cards in suit-major, rank-minor order.
func StandardCards() []Card {
	cards := make([]Card, 0, DeckSize)
	for _, s := range suits {
		for _, r := range ranks {
			cards = append(cards, Card{Rank: r, Suit: s})
		}
	}
	return cards
}

// Reset discards whatever is left and rebuilds a freshly shuffled deck.
func (d *Deck) Reset() {
	d.cards = StandardCards()
	d.Shuffle()
}

func (d *Deck) Shuffle() {
	d.rnd.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw removes and returns the top card.
func (d *Deck) Draw() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmptyDeck
	}

	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, nil
}

func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Cards returns a copy of the undrawn cards, top first.
func (d *Deck) Cards() []Card {
	return append([]Card(nil), d.cards...)
}
