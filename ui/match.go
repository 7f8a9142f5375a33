package ui

import (
	"fmt"
	"time"

	"othello/game"
	"othello/searcher"
	"othello/utils"

	"github.com/gdamore/tcell/v2"
)

// passPause is how long pass announcements stay on screen before play
// continues.
const passPause = 900 * time.Millisecond

// playMatch runs one full game at the given difficulty and returns the
// user's choice from the game-over screen.
func (u *UI) playMatch(difficulty Difficulty) (action, error) {
	board := game.InitialPosition()
	turn := game.Black
	minimax := searcher.NewMinimax(difficulty.Depth)

	var last *game.Location
	status := "You have the first move."

	for {
		moves := board.LegalMoves(turn)
		if len(moves) == 0 {
			return u.showGameOver(board, last, difficulty)
		}

		if moves[0].Pass {
			u.drawMatch(board, nil, last, turn, difficulty,
				fmt.Sprintf("%s has no moves and passes.", sideLabel(turn)))
			time.Sleep(passPause)
			turn = turn.Opposite()
			status = ""
			continue
		}

		if turn == game.Black {
			u.drawMatch(board, moves, last, turn, difficulty, orDefault(status, "Your turn."))

			move, act := u.humanMove(board, moves, last, turn, difficulty)
			if act != actionPlayAgain {
				return act, nil
			}
			board = board.Apply(turn, move)
			loc := move.Loc
			last = &loc
			turn = game.White
			status = ""
			continue
		}

		// The search blocks for the whole tree walk, so show the status
		// before it starts.
		u.drawMatch(board, nil, last, turn, difficulty, "Computer thinking...")
		move, _, ok := minimax.BestMove(board, game.White)
		if !ok {
			// LegalMoves above guarantees a move exists.
			panic("search found no move in a live position")
		}
		board = board.Apply(game.White, move)
		if !move.Pass {
			loc := move.Loc
			last = &loc
		}
		turn = game.Black
		status = "Your turn."
	}
}

// humanMove blocks on terminal events until the user picks a legal square,
// or asks to leave the match. The second return is actionPlayAgain when a
// move was made, otherwise the requested exit action.
func (u *UI) humanMove(board game.Board, legal []game.Move, last *game.Location, turn game.Side, difficulty Difficulty) (game.Move, action) {
	redraw := func() {
		u.drawMatch(board, legal, last, turn, difficulty, "Your turn.")
	}

	for {
		switch ev := u.screen.PollEvent().(type) {
		case *tcell.EventResize:
			u.screen.Sync()
			redraw()

		case *tcell.EventMouse:
			if ev.Buttons()&tcell.Button1 == 0 {
				continue
			}
			loc, ok := boardLocationAt(ev.Position())
			if !ok {
				continue
			}
			u.cursor = loc
			if utils.FindIndex(legal, game.Move{Loc: loc}) >= 0 {
				return game.Move{Loc: loc}, actionPlayAgain
			}
			redraw()

		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape:
				return game.Move{}, actionQuit
			case tcell.KeyUp:
				u.moveCursor(-1, 0, redraw)
			case tcell.KeyDown:
				u.moveCursor(1, 0, redraw)
			case tcell.KeyLeft:
				u.moveCursor(0, -1, redraw)
			case tcell.KeyRight:
				u.moveCursor(0, 1, redraw)
			case tcell.KeyEnter:
				if utils.FindIndex(legal, game.Move{Loc: u.cursor}) >= 0 {
					return game.Move{Loc: u.cursor}, actionPlayAgain
				}
				u.screen.Beep()
			case tcell.KeyRune:
				switch ev.Rune() {
				case 'q':
					return game.Move{}, actionQuit
				case 'k':
					u.moveCursor(-1, 0, redraw)
				case 'j':
					u.moveCursor(1, 0, redraw)
				case 'h':
					u.moveCursor(0, -1, redraw)
				case 'l':
					u.moveCursor(0, 1, redraw)
				case ' ':
					if utils.FindIndex(legal, game.Move{Loc: u.cursor}) >= 0 {
						return game.Move{Loc: u.cursor}, actionPlayAgain
					}
					u.screen.Beep()
				}
			}
		}
	}
}

func (u *UI) moveCursor(dr, dc int, redraw func()) {
	u.cursor.Row = utils.Clamp(u.cursor.Row+dr, 0, game.BoardSize-1)
	u.cursor.Col = utils.Clamp(u.cursor.Col+dc, 0, game.BoardSize-1)
	redraw()
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
