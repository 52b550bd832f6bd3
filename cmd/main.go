package main

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"twentyone/domain/blackjack"
)

func main() {
	// Create a new slog logger backed by the default PTerm logger
	handler := pterm.NewSlogHandler(&pterm.DefaultLogger)
	logger := slog.New(handler)

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Black", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("jack", pterm.FgRed.ToStyle()),
	).Render()

	pterm.Println("Welcome to blackjack. Everyone starts with $1000.")
	pterm.Println("You can decide to end the game at any time by choosing 'quit' when prompted for a move.")
	pterm.Println()

	numPlayers := askNumPlayers()
	logger.Info("starting game", "players", numPlayers)

	table := blackjack.NewTable(numPlayers, terminalConsole{}, blackjack.WithLogger(logger))
	table.Play()
}

func askNumPlayers() int {
	for {
		response, _ := pterm.DefaultInteractiveTextInput.
			WithDefaultText("How many players are interested in playing?").
			Show()
		n, err := strconv.Atoi(strings.TrimSpace(response))
		if err != nil || n < 1 {
			pterm.Error.Println("Please enter a valid number.")
			continue
		}
		return n
	}
}
