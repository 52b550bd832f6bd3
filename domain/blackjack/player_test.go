package blackjack

import (
	"errors"
	"testing"

	"twentyone/domain/deck"
)

var (
	fiveOfHearts = deck.NewCard(deck.Five, deck.Hearts)
	fiveOfClubs  = deck.NewCard(deck.Five, deck.Clubs)
)

func TestNewPlayer(t *testing.T) {
	p := NewPlayer(&scriptConsole{})
	if p.NumHands() != 1 {
		t.Fatalf("player should start with one hand, got %d", p.NumHands())
	}
	if p.Hand(0).Len() != 0 {
		t.Fatalf("starting hand should be empty, got %d cards", p.Hand(0).Len())
	}
	if p.Cash() != 1000 {
		t.Fatalf("player should start with $1000, got %d", p.Cash())
	}
}

func TestPlayerDealing(t *testing.T) {
	p := NewPlayer(&scriptConsole{})
	p.DealCard(fiveOfHearts, 0, false)
	if p.Hand(0).Len() != 1 || p.Hand(0).Value() != 5 {
		t.Fatalf("card was not added correctly: %s", p.Hand(0))
	}
	p.DealCard(fiveOfClubs, 0, true)
	if p.Hand(0).Len() != 2 {
		t.Fatalf("second card was not added correctly: %s", p.Hand(0))
	}
	if p.IsBusted(0) {
		t.Fatal("a ten-value hand should not be busted")
	}
}

func TestPlayerBetting(t *testing.T) {
	console := &scriptConsole{}
	p := NewPlayer(console)

	if err := p.PlaceBet(1001, 0); !errors.Is(err, ErrInsufficientCash) {
		t.Fatalf("expected ErrInsufficientCash, got %v", err)
	}
	if p.Cash() != 1000 || p.Hand(0).CurrentBet() != 0 {
		t.Fatal("failed bet must leave cash and hand unchanged")
	}

	if err := p.PlaceBet(100, 0); err != nil {
		t.Fatalf("affordable bet refused: %v", err)
	}
	if p.Cash() != 900 {
		t.Fatalf("betting did not deduct cash, got %d", p.Cash())
	}
	if p.Hand(0).CurrentBet() != 100 {
		t.Fatalf("bet not set on hand, got %d", p.Hand(0).CurrentBet())
	}

	p.DealCard(fiveOfHearts, 0, false)
	p.DealCard(fiveOfClubs, 0, false)

	// Winning case: 10 beats a dealer 9.
	p.Settle(9, 1, false)
	if p.Cash() != 1100 {
		t.Fatalf("win should pay twice the bet, cash is %d", p.Cash())
	}
	if p.Hand(0).Len() != 0 || p.Hand(0).CurrentBet() != 0 {
		t.Fatal("settling must reset the player to a fresh empty hand")
	}

	// Losing case: 10 loses to a dealer 11.
	p.DealCard(fiveOfHearts, 0, false)
	p.DealCard(fiveOfClubs, 0, false)
	p.PlaceBet(100, 0)
	prevCash := p.Cash()
	p.Settle(11, 1, false)
	if p.Cash() != prevCash {
		t.Fatalf("loss must not pay out, cash is %d", p.Cash())
	}
}

func TestPlayerBlackjackPayout(t *testing.T) {
	p := NewPlayer(&scriptConsole{})
	p.DealCard(deck.NewCard(deck.Ace, deck.Spades), 0, false)
	p.DealCard(deck.NewCard(deck.Jack, deck.Hearts), 0, false)
	if !p.Hand(0).Blackjack() {
		t.Fatal("ace and jack should be a blackjack")
	}
	p.PlaceBet(100, 0)

	// A blackjack beats a dealer 21 without one and pays 2.5x.
	p.Settle(21, 1, false)
	if p.Cash() != 1150 {
		t.Fatalf("blackjack should pay 2.5 times the bet, cash is %d", p.Cash())
	}
}

func TestPlayerLosesToDealerBlackjack(t *testing.T) {
	p := NewPlayer(&scriptConsole{})
	p.DealCard(deck.NewCard(deck.Ten, deck.Hearts), 0, false)
	p.DealCard(deck.NewCard(deck.Nine, deck.Spades), 0, false)
	p.PlaceBet(100, 0)
	p.Settle(21, 1, true)
	if p.Cash() != 900 {
		t.Fatalf("dealer blackjack should win, cash is %d", p.Cash())
	}
}

func TestPlayerBothBustedIsTie(t *testing.T) {
	p := NewPlayer(&scriptConsole{})
	p.DealCard(deck.NewCard(deck.Jack, deck.Hearts), 0, false)
	p.DealCard(deck.NewCard(deck.Queen, deck.Spades), 0, false)
	p.DealCard(deck.NewCard(deck.Two, deck.Clubs), 0, false)
	p.PlaceBet(100, 0)

	// Player 22 against a busted dealer 23 returns the bet.
	p.Settle(23, 1, false)
	if p.Cash() != 1000 {
		t.Fatalf("both busting should return the stake, cash is %d", p.Cash())
	}
}

func TestPlayerSplitting(t *testing.T) {
	console := &scriptConsole{}
	p := NewPlayer(console)
	p.DealCard(fiveOfHearts, 0, false)
	p.DealCard(fiveOfClubs, 0, false)
	p.PlaceBet(300, 0)

	if err := p.Split(0); err != nil {
		t.Fatalf("split refused: %v", err)
	}
	if p.NumHands() != 2 {
		t.Fatalf("split should create a sibling hand, got %d hands", p.NumHands())
	}
	first, second := p.Hand(0), p.Hand(1)
	if first.Value() != second.Value() {
		t.Fatalf("split hands should hold equal values, got %d and %d", first.Value(), second.Value())
	}
	if first.CurrentBet() != second.CurrentBet() {
		t.Fatalf("split should carry the bet over, got %d and %d", first.CurrentBet(), second.CurrentBet())
	}
	if p.Cash() != 400 {
		t.Fatalf("split should charge the bet again, cash is %d", p.Cash())
	}
}

func TestPlayerSplitRefusals(t *testing.T) {
	p := NewPlayer(&scriptConsole{})
	p.DealCard(fiveOfHearts, 0, false)
	p.DealCard(deck.NewCard(deck.Six, deck.Spades), 0, false)
	if err := p.Split(0); !errors.Is(err, ErrNotSplittable) {
		t.Fatalf("expected ErrNotSplittable, got %v", err)
	}

	p = NewPlayer(&scriptConsole{})
	p.DealCard(fiveOfHearts, 0, false)
	p.DealCard(fiveOfClubs, 0, false)
	p.PlaceBet(600, 0)
	if err := p.Split(0); !errors.Is(err, ErrInsufficientCash) {
		t.Fatalf("expected ErrInsufficientCash, got %v", err)
	}
	if p.NumHands() != 1 || p.Cash() != 400 {
		t.Fatal("refused split must not mutate the player")
	}
}

func TestPlayerSplitCapsAtFourHands(t *testing.T) {
	p := NewPlayer(&scriptConsole{})
	p.DealCard(fiveOfHearts, 0, false)
	p.DealCard(fiveOfClubs, 0, false)
	p.PlaceBet(10, 0)

	for i := 0; i < 3; i++ {
		if err := p.Split(0); err != nil {
			t.Fatalf("split %d refused: %v", i, err)
		}
		// Re-pair the first hand to make it splittable again.
		p.DealCard(fiveOfHearts, 0, false)
	}
	if p.NumHands() != 4 {
		t.Fatalf("expected four hands, got %d", p.NumHands())
	}
	if err := p.Split(0); !errors.Is(err, ErrTooManyHands) {
		t.Fatalf("expected ErrTooManyHands, got %v", err)
	}
}

func TestPlayerDoubleDown(t *testing.T) {
	p := NewPlayer(&scriptConsole{})
	p.DealCard(fiveOfClubs, 0, false)
	p.DealCard(fiveOfHearts, 0, false)
	p.PlaceBet(100, 0)

	if err := p.DoubleDown(0); err != nil {
		t.Fatalf("double down refused: %v", err)
	}
	if p.Cash() != 800 {
		t.Fatalf("double down should charge the bet again, cash is %d", p.Cash())
	}
	if p.Hand(0).CurrentBet() != 200 {
		t.Fatalf("double down should double the bet, got %d", p.Hand(0).CurrentBet())
	}

	p.Settle(9, 1, false)
	if p.Cash() != 1200 {
		t.Fatalf("doubled win should pay back double, cash is %d", p.Cash())
	}
}

func TestPlayerDoubleDownInsufficientCash(t *testing.T) {
	p := NewPlayer(&scriptConsole{})
	p.DealCard(fiveOfClubs, 0, false)
	p.DealCard(fiveOfHearts, 0, false)
	p.PlaceBet(600, 0)

	if err := p.DoubleDown(0); !errors.Is(err, ErrInsufficientCash) {
		t.Fatalf("expected ErrInsufficientCash, got %v", err)
	}
	if p.Cash() != 400 || p.Hand(0).CurrentBet() != 600 {
		t.Fatal("refused double down must not mutate the player")
	}
}
