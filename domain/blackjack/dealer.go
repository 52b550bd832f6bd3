package blackjack

import (
	"fmt"

	"twentyone/domain/deck"
)

// dealerStand is the house threshold: the dealer hits below it and
// passes at or above it.
const dealerStand = 17

// Dealer is the house participant. It holds exactly one hand, never
// bets, never splits, and decides its moves by fixed house rules
// instead of asking the console.
type Dealer struct {
	hand    *Hand
	console Console
}

func NewDealer(console Console) *Dealer {
	return &Dealer{hand: NewHand(), console: console}
}

// Hand returns the dealer's only hand regardless of handIndex.
func (d *Dealer) Hand(handIndex int) *Hand {
	return d.hand
}

// NumHands is always one for the dealer.
func (d *Dealer) NumHands() int {
	return 1
}

// Cash is always zero: the dealer's balance plays no part in outcomes.
func (d *Dealer) Cash() int {
	return 0
}

// PlaceBet always fails, the dealer has no stake in the round.
func (d *Dealer) PlaceBet(amount, handIndex int) error {
	return ErrDealerBet
}

// DealCard adds card to the dealer's hand. Only the first card is
// announced; the hole card and every later draw stay unremarked.
func (d *Dealer) DealCard(card deck.Card, handIndex int, announce bool) {
	d.hand.AddCard(card)
	if d.hand.Len() == 1 {
		d.console.Announce(fmt.Sprintf("The dealer has a %s showing.", card))
	}
}

// DecideMove applies the house rule: hit below the stand threshold,
// pass otherwise.
func (d *Dealer) DecideMove(playerIndex, handIndex int) Move {
	if d.hand.Value() >= dealerStand {
		return MovePass
	}
	return MoveHit
}

// Split always fails. Asking the dealer to split is a programming
// error, not a refused gameplay move.
func (d *Dealer) Split(handIndex int) error {
	return ErrDealerSplit
}

// DoubleDown always fails, the dealer has nothing to double.
func (d *Dealer) DoubleDown(handIndex int) error {
	return ErrDealerBet
}

// Settle resets the dealer's hand. The dealer never collects a payout.
func (d *Dealer) Settle(dealerScore, playerIndex int, dealerBlackjack bool) {
	d.ClearHand()
}

// IsBusted reports whether the dealer's hand is over 21.
func (d *Dealer) IsBusted(handIndex int) bool {
	return d.hand.IsBusted()
}

// Value returns the current value of the dealer's hand.
func (d *Dealer) Value() int {
	return d.hand.Value()
}

// Blackjack reports whether the dealer's hand is a blackjack.
func (d *Dealer) Blackjack() bool {
	return d.hand.Blackjack()
}

// ClearHand gives the dealer a fresh empty hand between rounds.
func (d *Dealer) ClearHand() {
	d.hand = NewHand()
}
