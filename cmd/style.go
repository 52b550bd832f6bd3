package main

import (
	"github.com/pterm/pterm"

	"twentyone/domain/blackjack"
)

func renderHand(hand *blackjack.Hand) string {
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	value := pterm.Sprintf("Value: %d", hand.Value())
	if hand.IsBusted() {
		value = pterm.LightRed(value)
	}
	return pbox.WithTitle("Your hand").WithTitleTopLeft().Sprintf("%s\n%s", hand, value)
}
