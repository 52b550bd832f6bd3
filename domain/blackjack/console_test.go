package blackjack

// scriptConsole substitutes the terminal in tests: it replays queued
// bets and moves and records every announcement.
type scriptConsole struct {
	bets     []int
	moves    []Move
	messages []string
}

func (c *scriptConsole) RequestBet(playerIndex, cash int) int {
	bet := c.bets[0]
	c.bets = c.bets[1:]
	return bet
}

func (c *scriptConsole) RequestMove(playerIndex int, hand *Hand) Move {
	move := c.moves[0]
	c.moves = c.moves[1:]
	return move
}

func (c *scriptConsole) Announce(message string) {
	c.messages = append(c.messages, message)
}

func (c *scriptConsole) count(message string) int {
	n := 0
	for _, m := range c.messages {
		if m == message {
			n++
		}
	}
	return n
}
