package blackjack

// Console is the blocking request/response collaborator the engine
// talks to. Implementations validate input syntactically before handing
// control back: RequestBet only ever returns a number and RequestMove
// only ever returns one of the move tokens, re-prompting on anything
// malformed. The engine still re-checks legality and asks again when an
// action fails.
type Console interface {
	// RequestBet asks the player for this round's bet. cash is the
	// player's remaining balance, for display.
	RequestBet(playerIndex, cash int) int

	// RequestMove asks the player for the next move on hand. The hand
	// lets the prompt advertise only the currently legal subset, which
	// is advisory: the engine tolerates any token.
	RequestMove(playerIndex int, hand *Hand) Move

	// Announce emits descriptive commentary: cards drawn, busts,
	// outcomes, the dealer's revealed hand.
	Announce(message string)
}
