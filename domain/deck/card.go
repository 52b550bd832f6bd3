package deck

import "fmt"

type Suit string

const (
	Hearts   Suit = "Hearts"
	Spades   Suit = "Spades"
	Diamonds Suit = "Diamonds"
	Clubs    Suit = "Clubs"
)

type Rank string

const (
	Two   Rank = "2"
	Three Rank = "3"
	Four  Rank = "4"
	Five  Rank = "5"
	Six   Rank = "6"
	Seven Rank = "7"
	Eight Rank = "8"
	Nine  Rank = "9"
	Ten   Rank = "10"
	Jack  Rank = "Jack"
	Queen Rank = "Queen"
	King  Rank = "King"
	Ace   Rank = "Ace"
)

// Suits and Ranks enumerate every valid suit and rank in deck order.
var (
	Suits = []Suit{Hearts, Spades, Diamonds, Clubs}
	Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}
)

// Card is an immutable rank and suit pair. Two cards with the same rank
// and suit are interchangeable.
type Card struct {
	rank Rank
	suit Suit
}

func NewCard(rank Rank, suit Suit) Card {
	return Card{rank: rank, suit: suit}
}

// Rank returns the rank of the Card.
func (c Card) Rank() Rank {
	return c.rank
}

// Suit returns the suit of the Card.
func (c Card) Suit() Suit {
	return c.suit
}

// Equals reports whether other has the same rank and suit as c.
func (c Card) Equals(other Card) bool {
	return c.rank == other.rank && c.suit == other.suit
}

// String returns a human-readable representation such as "Queen of Hearts".
func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.rank, c.suit)
}
