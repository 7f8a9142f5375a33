// Package ui renders the interactive human-versus-computer match in the
// terminal.
package ui

import (
	"fmt"

	"othello/game"

	"github.com/gdamore/tcell/v2"
)

// Difficulty pairs a menu entry with a search depth.
type Difficulty struct {
	Label       string
	Depth       int
	Description string
}

// Difficulties are the selectable opponent strengths.
var Difficulties = []Difficulty{
	{Label: "Easy", Depth: 1, Description: "Depth 1 / quick replies"},
	{Label: "Medium", Depth: 2, Description: "Depth 2 / casual play"},
	{Label: "Hard", Depth: 5, Description: "Depth 5 / strong opponent"},
}

// action is what the user chose on the game-over screen.
type action int

const (
	actionPlayAgain action = iota
	actionChangeDifficulty
	actionQuit
)

// UI owns the terminal screen. The human plays Black and always moves
// first; the computer plays White.
type UI struct {
	screen tcell.Screen
	style  tcell.Style
	cursor game.Location
}

// New constructs the terminal screen. Callers must Shutdown when done so
// the terminal is restored.
func New() (*UI, error) {
	tcell.SetEncodingFallback(tcell.EncodingFallbackASCII)

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("new screen: %w", err)
	}

	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("screen init: %w", err)
	}
	screen.EnableMouse()

	style := tcell.StyleDefault
	style = style.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)

	return &UI{
		screen: screen,
		style:  style,
		cursor: game.Location{Row: 2, Col: 3},
	}, nil
}

// Shutdown tears down the screen.
func (u *UI) Shutdown() {
	u.screen.Fini()
}

// Run drives the difficulty menu, the match, and the game-over screen until
// the user quits.
func (u *UI) Run() error {
	for {
		difficulty, ok := u.selectDifficulty()
		if !ok {
			return nil
		}

		for {
			act, err := u.playMatch(difficulty)
			if err != nil {
				return err
			}

			switch act {
			case actionQuit:
				return nil
			case actionChangeDifficulty:
			case actionPlayAgain:
				continue
			}
			break
		}
	}
}

func sideLabel(s game.Side) string {
	if s == game.Black {
		return "You (Black)"
	}
	return "Computer (White)"
}
