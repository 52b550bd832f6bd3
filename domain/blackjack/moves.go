package blackjack

// Move is an action a participant takes on one of its hands.
type Move string

const (
	MoveHit        Move = "hit"
	MoveSplit      Move = "split"
	MoveStay       Move = "stay"
	MoveDoubleDown Move = "double down"
	MoveQuit       Move = "quit"

	// MovePass is only ever produced by the dealer once its hand
	// reaches the house threshold. The table has no case for it, so it
	// ends the turn through the fallback branch.
	MovePass Move = "pass"
)
