package deck

import (
	"math/rand"
	"time"
)

// Size is the number of cards in a standard deck.
const Size = 52

// Deck holds one physical card per rank and suit pair and serves them
// through a cursor. Dealing never removes cards: once the cursor reaches
// the end of the deck it reshuffles in place and rewinds, so a Deck is
// never exhausted.
type Deck struct {
	cards     []Card
	cursor    int
	shuffling bool
	rng       *rand.Rand
}

type option func(Deck) Deck

// New builds a full 52-card deck and shuffles it unless configured
// otherwise.
func New(opts ...option) *Deck {
	d := Deck{
		shuffling: true,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		d = opt(d)
	}
	for _, rank := range Ranks {
		for _, suit := range Suits {
			d.cards = append(d.cards, NewCard(rank, suit))
		}
	}
	d.shuffle()
	return &d
}

// WithoutShuffling keeps the deck in its construction order and makes
// every reshuffle a no-op. Deals become deterministic, which only makes
// sense for tests.
func WithoutShuffling() option {
	return func(d Deck) Deck {
		d.shuffling = false
		return d
	}
}

// WithSource replaces the default time-seeded randomness.
func WithSource(src rand.Source) option {
	return func(d Deck) Deck {
		d.rng = rand.New(src)
		return d
	}
}

// shuffle permutes the cards with the Fisher-Yates algorithm.
func (d *Deck) shuffle() {
	if !d.shuffling {
		return
	}
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.Intn(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// NextCard returns the card at the cursor and advances it. When every
// card has been dealt the deck reshuffles and the cursor rewinds, so
// NextCard always succeeds.
func (d *Deck) NextCard() Card {
	if d.cursor == len(d.cards) {
		d.shuffle()
		d.cursor = 0
	}
	card := d.cards[d.cursor]
	d.cursor++
	return card
}

// Len returns the number of cards the deck holds, dealt or not.
func (d *Deck) Len() int {
	return len(d.cards)
}
