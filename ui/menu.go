package ui

import (
	"fmt"

	"othello/game"
	"othello/utils"

	"github.com/gdamore/tcell/v2"
)

// selectDifficulty shows the start screen and blocks until the user picks a
// difficulty or quits. ok is false on quit.
func (u *UI) selectDifficulty() (Difficulty, bool) {
	selected := 0

	draw := func() {
		u.screen.Clear()

		u.print(padLeft+8, 1, "T E R M I N A L   O T H E L L O")
		u.print(padLeft+6, 3, "Choose your challenge level")
		u.print(padLeft+6, 4, "You play Black and make the first move.")

		for i, d := range Difficulties {
			marker := "  "
			if i == selected {
				marker = "> "
			}
			u.print(padLeft+8, 6+2*i, fmt.Sprintf("%s%-8s %s", marker, d.Label, d.Description))
		}

		u.print(padLeft+6, 13, "up/down select, enter confirm, <q> quit")
		u.screen.Show()
	}
	draw()

	for {
		switch ev := u.screen.PollEvent().(type) {
		case *tcell.EventResize:
			u.screen.Sync()
			draw()

		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape:
				return Difficulty{}, false
			case tcell.KeyUp:
				selected = utils.Clamp(selected-1, 0, len(Difficulties)-1)
				draw()
			case tcell.KeyDown:
				selected = utils.Clamp(selected+1, 0, len(Difficulties)-1)
				draw()
			case tcell.KeyEnter:
				return Difficulties[selected], true
			case tcell.KeyRune:
				switch r := ev.Rune(); r {
				case 'q':
					return Difficulty{}, false
				case 'k':
					selected = utils.Clamp(selected-1, 0, len(Difficulties)-1)
					draw()
				case 'j':
					selected = utils.Clamp(selected+1, 0, len(Difficulties)-1)
					draw()
				case '1', '2', '3':
					return Difficulties[r-'1'], true
				}
			}
		}
	}
}

// showGameOver renders the final position under a result dialog and waits
// for the user's next choice.
func (u *UI) showGameOver(board game.Board, last *game.Location, difficulty Difficulty) (action, error) {
	black := board.Count(game.Black)
	white := board.Count(game.White)

	var title, detail string
	switch winner := game.Winner(board); winner {
	case game.Black:
		title = "You win!"
		detail = "Great job controlling the board."
	case game.White:
		title = "Computer wins!"
		detail = "Try a new strategy or drop the difficulty."
	default:
		title = "It's a tie."
		detail = "Balanced play from both sides."
	}

	draw := func() {
		u.drawMatch(board, nil, last, game.White, difficulty, "Game over")

		boxLeft := padLeft + 4
		boxTop := padTop + 3
		boxWidth := boardWidth - 8
		u.drawBox(boxLeft, boxTop, boxWidth, 9)

		u.print(boxLeft+3, boxTop+1, title)
		u.print(boxLeft+3, boxTop+2, detail)
		u.print(boxLeft+3, boxTop+4, fmt.Sprintf("Final score: you %d, computer %d", black, white))
		u.print(boxLeft+3, boxTop+6, "<enter> play again  <d> change difficulty")
		u.print(boxLeft+3, boxTop+7, "<q> quit")
		u.screen.Show()
	}
	draw()

	for {
		switch ev := u.screen.PollEvent().(type) {
		case *tcell.EventResize:
			u.screen.Sync()
			draw()

		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape:
				return actionQuit, nil
			case tcell.KeyEnter:
				return actionPlayAgain, nil
			case tcell.KeyRune:
				switch ev.Rune() {
				case 'q':
					return actionQuit, nil
				case 'n':
					return actionPlayAgain, nil
				case 'd':
					return actionChangeDifficulty, nil
				}
			}
		}
	}
}
