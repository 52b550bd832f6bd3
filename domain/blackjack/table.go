package blackjack

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"twentyone/domain/deck"
)

// dealerIndex is the reserved seat of the dealer in the participant
// list.
const dealerIndex = 0

// turnState tracks the one deferred continuation of a turn: after a
// successful split, the next stay moves control to the new hand instead
// of ending the turn.
type turnState int

const (
	turnNormal turnState = iota
	turnSplitPending
)

// Table coordinates full betting rounds: it collects bets, deals the
// initial cards, drives every participant's turn and settles payouts
// against the dealer's final hand, looping until a player quits.
type Table struct {
	deck       *deck.Deck
	players    []Participant
	numPlayers int
	playing    bool
	console    Console
	logger     *slog.Logger
	roundID    string
}

type option func(*Table)

// WithDeck replaces the table's shuffled deck, mainly to make deals
// deterministic in tests.
func WithDeck(d *deck.Deck) option {
	return func(t *Table) {
		t.deck = d
	}
}

// WithLogger sets the structured logger for round events.
func WithLogger(logger *slog.Logger) option {
	return func(t *Table) {
		t.logger = logger
	}
}

// NewTable seats a dealer at index zero and numPlayers players after
// it, all wired to the same console.
func NewTable(numPlayers int, console Console, opts ...option) *Table {
	t := &Table{
		numPlayers: numPlayers,
		playing:    true,
		console:    console,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.deck == nil {
		t.deck = deck.New()
	}
	t.players = append(t.players, NewDealer(console))
	for i := 0; i < numPlayers; i++ {
		t.players = append(t.players, NewPlayer(console))
	}
	return t
}

// Player returns the participant at playerIndex. Index zero is the
// dealer.
func (t *Table) Player(playerIndex int) Participant {
	return t.players[playerIndex]
}

// Dealer returns the house participant.
func (t *Table) Dealer() *Dealer {
	return t.players[dealerIndex].(*Dealer)
}

// NumPlayers returns the number of human players at the table.
func (t *Table) NumPlayers() int {
	return t.numPlayers
}

// Playing reports whether the round loop keeps going.
func (t *Table) Playing() bool {
	return t.playing
}

// GetBets solicits a bet from every player until each has placed one it
// can cover.
func (t *Table) GetBets() {
	for playerIndex, player := range t.players {
		if playerIndex != dealerIndex {
			t.getBet(player, playerIndex)
		}
	}
}

func (t *Table) getBet(player Participant, playerIndex int) {
	for {
		amount := t.console.RequestBet(playerIndex, player.Cash())
		if err := player.PlaceBet(amount, 0); err != nil {
			t.console.Announce("Please enter a valid amount to bet.")
			continue
		}
		t.console.Announce("Your bet has been counted. Good luck!")
		t.logger.Info("bet placed", "round_id", t.roundID, "player", playerIndex, "amount", amount)
		return
	}
}

// DealInitialCards gives every participant two cards. Player draws are
// announced by the table; the dealer only shows its first card.
func (t *Table) DealInitialCards() {
	for playerIndex, player := range t.players {
		for i := 0; i < 2; i++ {
			card := t.deck.NextCard()
			player.DealCard(card, 0, false)
			if playerIndex != dealerIndex {
				t.console.Announce(fmt.Sprintf("Player %d drew a %s.", playerIndex, card))
			}
		}
	}
}

// MakeMoves drives every participant's turn, one hand at a time. The
// hand count is re-read every iteration so a hand split mid-turn gets
// its own turn too. A quit abandons all remaining turns.
func (t *Table) MakeMoves() {
	for playerIndex, player := range t.players {
		for handIndex := 0; handIndex < player.NumHands(); handIndex++ {
			t.makeMove(player, handIndex, playerIndex)
			if !t.playing {
				return
			}
		}
	}
}

// makeMove prompts player for moves on the hand at handIndex and
// applies them until the turn ends.
func (t *Table) makeMove(player Participant, handIndex, playerIndex int) {
	state := turnNormal
	doubled := false
	for {
		move := player.DecideMove(playerIndex, handIndex)
		t.logger.Debug("move", "round_id", t.roundID, "player", playerIndex, "hand", handIndex, "move", move)
		switch move {
		case MoveHit:
			if t.hit(player, handIndex, doubled) {
				return
			}
		case MoveSplit:
			if err := player.Split(handIndex); err != nil {
				t.logger.Debug("split refused", "round_id", t.roundID, "player", playerIndex, "err", err)
			} else {
				state = turnSplitPending
			}
		case MoveDoubleDown:
			if err := player.DoubleDown(handIndex); err == nil {
				doubled = true
				t.hit(player, handIndex, doubled)
				return
			}
		case MoveStay:
			if state == turnSplitPending {
				handIndex = player.NumHands() - 1
				state = turnNormal
				continue
			}
			return
		case MoveQuit:
			t.playing = false
			t.logger.Info("player quit", "round_id", t.roundID, "player", playerIndex)
			return
		default:
			// Unrecognized tokens, including the dealer's pass, end the
			// turn. Re-prompting on malformed input is the console's
			// job, not the table's.
			t.console.Announce("Please enter a valid command.")
			return
		}
	}
}

// hit deals one card to the hand at handIndex and reports whether the
// turn is over for that hand: after a double down or a bust no further
// moves are allowed.
func (t *Table) hit(player Participant, handIndex int, doubled bool) bool {
	player.DealCard(t.deck.NextCard(), handIndex, true)
	return doubled || player.IsBusted(handIndex)
}

// CollectBets settles every player against dealerScore, reveals the
// dealer's hand and clears it for the next round.
func (t *Table) CollectBets(dealerScore int) {
	dealer := t.Dealer()
	dealerBlackjack := dealer.Blackjack()
	t.console.Announce(fmt.Sprintf("The dealer's hand was %s.", dealer.Hand(0)))
	for playerIndex, player := range t.players {
		if playerIndex == dealerIndex {
			continue
		}
		player.Settle(dealerScore, playerIndex, dealerBlackjack)
		t.logger.Info("settled", "round_id", t.roundID, "player", playerIndex, "cash", player.Cash())
	}
	dealer.ClearHand()
}

// Play runs betting rounds until a player quits. The quitting round's
// payouts are abandoned along with its remaining turns.
func (t *Table) Play() {
	for t.playing {
		t.roundID = uuid.NewString()
		t.logger.Info("round started", "round_id", t.roundID, "players", t.numPlayers)
		t.GetBets()
		t.DealInitialCards()
		t.MakeMoves()
		if !t.playing {
			break
		}
		t.CollectBets(t.Dealer().Value())
	}
	t.console.Announce("Thank you for playing.")
}
