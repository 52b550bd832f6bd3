package blackjack

import (
	"strconv"

	"twentyone/domain/deck"
)

// PointValue returns the blackjack value of a rank. Numeric ranks are
// worth their number and face cards ten. An ace is worth eleven until
// its hand re-scores it to one.
func PointValue(rank deck.Rank) int {
	if value, err := strconv.Atoi(string(rank)); err == nil {
		return value
	}
	if rank == deck.Ace {
		return 11
	}
	return 10
}
