package blackjack

import (
	"fmt"

	"twentyone/domain/deck"
)

const (
	startingCash = 1000
	maxHands     = 4
)

// Participant is one seat at the table: it bets, receives cards,
// decides moves and settles against the dealer's final score. Player
// and Dealer are the two variants.
type Participant interface {
	PlaceBet(amount, handIndex int) error
	DealCard(card deck.Card, handIndex int, announce bool)
	DecideMove(playerIndex, handIndex int) Move
	Split(handIndex int) error
	DoubleDown(handIndex int) error
	Settle(dealerScore, playerIndex int, dealerBlackjack bool)
	Hand(handIndex int) *Hand
	NumHands() int
	Cash() int
	IsBusted(handIndex int) bool
}

// Player is a human participant. It owns up to four hands (splitting
// grows the list), a cash balance and the console its moves come from.
type Player struct {
	hands   []*Hand
	cash    int
	playing bool
	console Console
}

func NewPlayer(console Console) *Player {
	return &Player{
		hands:   []*Hand{NewHand()},
		cash:    startingCash,
		playing: true,
		console: console,
	}
}

// Hand returns the hand at handIndex.
func (p *Player) Hand(handIndex int) *Hand {
	return p.hands[handIndex]
}

// NumHands returns how many hands the player currently holds.
func (p *Player) NumHands() int {
	return len(p.hands)
}

// Cash returns the player's remaining balance.
func (p *Player) Cash() int {
	return p.cash
}

// Playing reports whether the player still has cash to bet with. It is
// informational only and never folds a hand.
func (p *Player) Playing() bool {
	return p.playing
}

// PlaceBet deducts amount from the player's cash and puts it on the
// hand at handIndex. It fails without any state change when the player
// cannot cover the bet.
func (p *Player) PlaceBet(amount, handIndex int) error {
	if amount > p.cash {
		return ErrInsufficientCash
	}
	p.cash -= amount
	if p.cash <= 0 {
		p.playing = false
	}
	p.hands[handIndex].MakeBet(amount)
	return nil
}

// DealCard adds card to the hand at handIndex and, when announce is
// set, comments on the draw.
func (p *Player) DealCard(card deck.Card, handIndex int, announce bool) {
	hand := p.hands[handIndex]
	hand.AddCard(card)
	if announce {
		p.describe(card, hand)
	}
}

func (p *Player) describe(card deck.Card, hand *Hand) {
	p.console.Announce(fmt.Sprintf("You drew a %s.", card))
	p.console.Announce(fmt.Sprintf("Your hand is now %s.", hand))
	if hand.IsBusted() {
		p.console.Announce("You've busted.")
	}
}

// DecideMove blocks on the console until it returns a move token for
// the hand at handIndex.
func (p *Player) DecideMove(playerIndex, handIndex int) Move {
	return p.console.RequestMove(playerIndex, p.hands[handIndex])
}

// Split moves the paired card of the hand at handIndex into a new
// sibling hand carrying an equal bet. It fails without mutation when
// the hand is not a pair, the player already holds four hands, or the
// extra bet is not covered.
func (p *Player) Split(handIndex int) error {
	hand := p.hands[handIndex]
	switch {
	case !hand.Splittable():
		return ErrNotSplittable
	case len(p.hands) >= maxHands:
		return ErrTooManyHands
	case hand.CurrentBet() > p.cash:
		return ErrInsufficientCash
	}
	sibling := NewHand()
	sibling.AddCard(hand.Split())
	p.hands = append(p.hands, sibling)
	p.PlaceBet(hand.CurrentBet(), len(p.hands)-1)
	p.console.Announce("Your bet has been doubled. You can hit one more time.")
	return nil
}

// DoubleDown doubles the bet on the hand at handIndex, charging the
// original bet again. It fails when the player cannot cover it.
func (p *Player) DoubleDown(handIndex int) error {
	hand := p.hands[handIndex]
	bet := hand.CurrentBet()
	if bet > p.cash {
		p.console.Announce("You do not have enough money to double down.")
		return ErrInsufficientCash
	}
	hand.MakeBet(2 * bet)
	p.cash -= bet
	p.console.Announce(fmt.Sprintf("Your bet is now %d.", hand.CurrentBet()))
	return nil
}

// IsBusted reports whether the hand at handIndex is over 21.
func (p *Player) IsBusted(handIndex int) bool {
	return p.hands[handIndex].IsBusted()
}

// Settle resolves every hand against the dealer's final score, paying
// out wins and ties, then clears all bets and resets the player to a
// single fresh hand. Blackjack wins pay 2.5 times the bet, ordinary
// wins twice the bet, ties return the stake.
func (p *Player) Settle(dealerScore, playerIndex int, dealerBlackjack bool) {
	for _, hand := range p.hands {
		switch {
		case isWin(hand, dealerScore, dealerBlackjack):
			if hand.Blackjack() {
				p.cash += hand.CurrentBet() * 5 / 2
			} else {
				p.cash += 2 * hand.CurrentBet()
			}
			p.console.Announce(fmt.Sprintf("Player %d you beat the dealer's hand! You won $%d.", playerIndex, hand.CurrentBet()))
		case isTie(hand, dealerScore, dealerBlackjack):
			p.cash += hand.CurrentBet()
			p.console.Announce(fmt.Sprintf("Player %d you tied the dealer's hand. You won your bet back.", playerIndex))
		default:
			p.console.Announce(fmt.Sprintf("Player %d you lost your bet.", playerIndex))
		}
		hand.ClearBet()
	}
	p.hands = []*Hand{NewHand()}
}

func isWin(hand *Hand, dealerScore int, dealerBlackjack bool) bool {
	if dealerBlackjack {
		return false
	}
	return hand.Blackjack() ||
		((hand.Value() > dealerScore || dealerScore > 21) && hand.Value() <= 21)
}

func isTie(hand *Hand, dealerScore int, dealerBlackjack bool) bool {
	if hand.Value() == dealerScore && hand.Blackjack() == dealerBlackjack {
		return true
	}
	// Both busting counts as a tie and the bet comes back.
	return hand.Value() > 21 && dealerScore > 21
}
