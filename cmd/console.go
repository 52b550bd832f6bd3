package main

import (
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"twentyone/domain/blackjack"
)

// terminalConsole implements blackjack.Console on top of pterm. It
// validates every input syntactically before handing control back to
// the engine, re-prompting on anything malformed.
type terminalConsole struct{}

func (terminalConsole) RequestBet(playerIndex, cash int) int {
	prompt := pterm.Sprintf("Player %d, you have $%d left. How much do you want to bet this round?", playerIndex, cash)
	for {
		response, _ := pterm.DefaultInteractiveTextInput.
			WithDefaultText(prompt).
			Show()
		amount, err := strconv.Atoi(strings.TrimSpace(response))
		if err != nil || amount < 0 {
			pterm.Error.Println("Please enter a valid amount to bet.")
			continue
		}
		return amount
	}
}

func (terminalConsole) RequestMove(playerIndex int, hand *blackjack.Hand) blackjack.Move {
	pterm.Info.Printfln("Player %d it's your turn.", playerIndex)
	pterm.Println(renderHand(hand))

	options := []string{string(blackjack.MoveHit)}
	if hand.Splittable() {
		options = append(options, string(blackjack.MoveSplit))
	}
	options = append(options,
		string(blackjack.MoveDoubleDown),
		string(blackjack.MoveStay),
		string(blackjack.MoveQuit),
	)
	selected, _ := pterm.DefaultInteractiveSelect.
		WithDefaultText("What would you like to do?").
		WithOptions(options).
		Show()
	return blackjack.Move(selected)
}

func (terminalConsole) Announce(message string) {
	pterm.Println(message)
}
