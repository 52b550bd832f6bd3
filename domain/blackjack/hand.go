package blackjack

import (
	"strings"

	"twentyone/domain/deck"
)

// Hand is one betting unit of cards. It keeps a running value with ace
// re-scoring, the bet riding on it and whether it is a blackjack.
//
// hasAce tracks the single ace currently counted as eleven. When the
// value passes 21 that ace is re-scored to one, exactly once per hand.
type Hand struct {
	cards      []deck.Card
	value      int
	currentBet int
	hasAce     bool
	blackjack  bool
}

func NewHand() *Hand {
	return &Hand{}
}

// AddCard appends card and updates the running value. A two-card 21
// holding an ace marks the hand as blackjack; the flag is never cleared
// afterwards.
func (h *Hand) AddCard(card deck.Card) {
	h.cards = append(h.cards, card)
	h.value += PointValue(card.Rank())
	if card.Rank() == deck.Ace {
		h.hasAce = true
	}
	if len(h.cards) == 2 && h.value == 21 && h.hasAce {
		h.blackjack = true
	}
	if h.value > 21 && h.hasAce {
		h.value -= 10
		h.hasAce = false
	}
}

// Value returns the current point value of the hand.
func (h *Hand) Value() int {
	return h.value
}

// Blackjack reports whether the hand was a two-card 21 with an ace.
func (h *Hand) Blackjack() bool {
	return h.blackjack
}

// CurrentBet returns the bet riding on this hand.
func (h *Hand) CurrentBet() int {
	return h.currentBet
}

// MakeBet sets the bet on this hand. Validation is the owner's job.
func (h *Hand) MakeBet(bet int) {
	h.currentBet = bet
}

// ClearBet removes the bet from this hand.
func (h *Hand) ClearBet() {
	h.currentBet = 0
}

// Len returns the number of cards in the hand.
func (h *Hand) Len() int {
	return len(h.cards)
}

// Cards returns a copy of the cards dealt so far.
func (h *Hand) Cards() []deck.Card {
	cards := make([]deck.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

// IsBusted reports whether the hand's value is over 21.
func (h *Hand) IsBusted() bool {
	return h.value > 21
}

// Splittable reports whether the hand is exactly two cards of the same
// rank.
func (h *Hand) Splittable() bool {
	return len(h.cards) == 2 && h.cards[0].Rank() == h.cards[1].Rank()
}

// Split removes the second card and returns it, dropping its point
// value from the hand. The caller is responsible for checking
// Splittable first and for seeding the sibling hand with the card.
func (h *Hand) Split() deck.Card {
	card := h.cards[1]
	h.cards = h.cards[:1]
	h.value -= PointValue(card.Rank())
	return card
}

// String joins the card descriptions with commas.
func (h *Hand) String() string {
	descriptions := make([]string, len(h.cards))
	for i, card := range h.cards {
		descriptions[i] = card.String()
	}
	return strings.Join(descriptions, ", ")
}
