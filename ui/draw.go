package ui

import (
	"fmt"

	"othello/game"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const (
	cellWidth   = 4
	cellHeight  = 2
	padTop      = 3
	padLeft     = 2
	boardWidth  = game.BoardSize*cellWidth + 1
	boardHeight = game.BoardSize * cellHeight
)

const (
	hozRune   = '━'
	verRune   = '┃'
	blackDisc = '●'
	whiteDisc = '○'
	hintDot   = '·'
	space     = ' '
)

// drawMatch renders the whole match screen: grid, discs, hints, side panel,
// and status bar.
func (u *UI) drawMatch(board game.Board, hints []game.Move, last *game.Location, turn game.Side, difficulty Difficulty, status string) {
	u.screen.Clear()

	u.print(padLeft+8, 1, "T E R M I N A L   O T H E L L O")
	u.drawGrid()
	u.drawDiscs(board, last)
	if turn == game.Black {
		u.drawHints(hints)
		u.drawCursor()
	}
	u.drawPanel(board, turn, difficulty)
	u.drawStatus(status)

	u.screen.Show()
}

func (u *UI) drawGrid() {
	style := u.style.Foreground(tcell.ColorGrey)

	for h := 0; h <= boardHeight; h++ {
		for w := 0; w < boardWidth; w++ {
			u.screen.SetContent(w+padLeft, h+padTop, space, nil, style)

			if h%cellHeight == 0 {
				u.screen.SetContent(w+padLeft, h+padTop, hozRune, nil, style)
			}
			if w%cellWidth == 0 {
				u.screen.SetContent(w+padLeft, h+padTop, verRune, nil, style)
			}
		}
	}

	// Column and row indices, matching the console rendering.
	for c := 0; c < game.BoardSize; c++ {
		u.print(padLeft+c*cellWidth+cellWidth/2, padTop-1, fmt.Sprintf("%d", c))
	}
	for r := 0; r < game.BoardSize; r++ {
		u.print(padLeft-2, padTop+r*cellHeight+1, fmt.Sprintf("%d", r))
	}
}

func (u *UI) drawDiscs(board game.Board, last *game.Location) {
	for r := 0; r < game.BoardSize; r++ {
		for c := 0; c < game.BoardSize; c++ {
			x, y := cellCenter(r, c)
			switch board.Cell(game.Location{Row: r, Col: c}) {
			case game.Black:
				u.screen.SetContent(x, y, blackDisc, nil, u.style.Foreground(tcell.ColorAqua))
			case game.White:
				u.screen.SetContent(x, y, whiteDisc, nil, u.style.Foreground(tcell.ColorWhite))
			}
		}
	}

	if last != nil {
		// Mark the most recent move with brackets around its square.
		x, y := cellCenter(last.Row, last.Col)
		style := u.style.Foreground(tcell.ColorYellow)
		u.screen.SetContent(x-1, y, '[', nil, style)
		u.screen.SetContent(x+1, y, ']', nil, style)
	}
}

func (u *UI) drawHints(hints []game.Move) {
	style := u.style.Foreground(tcell.ColorYellow)
	for _, move := range hints {
		if move.Pass {
			continue
		}
		x, y := cellCenter(move.Loc.Row, move.Loc.Col)
		u.screen.SetContent(x, y, hintDot, nil, style)
	}
}

func (u *UI) drawCursor() {
	x, y := cellCenter(u.cursor.Row, u.cursor.Col)
	current, _, _, _ := u.screen.GetContent(x, y)
	u.screen.SetContent(x, y, current, nil, u.style.Reverse(true))
}

func (u *UI) drawPanel(board game.Board, turn game.Side, difficulty Difficulty) {
	left := padLeft + boardWidth + 4

	u.print(left, padTop, "MATCH")
	u.print(left, padTop+2, fmt.Sprintf("Difficulty: %s", difficulty.Label))
	u.print(left, padTop+3, fmt.Sprintf("Turn:       %s", sideLabel(turn)))

	u.print(left, padTop+5, "SCORE")
	u.print(left, padTop+7, fmt.Sprintf("%c %2d  You", blackDisc, board.Count(game.Black)))
	u.print(left, padTop+8, fmt.Sprintf("%c %2d  Computer", whiteDisc, board.Count(game.White)))

	u.print(left, padTop+11, "arrows/hjkl move the cursor")
	u.print(left, padTop+12, "enter/space play the square")
	u.print(left, padTop+13, "<q> quit")
}

func (u *UI) drawStatus(status string) {
	y := padTop + boardHeight + 2
	for x := padLeft; x < padLeft+boardWidth; x++ {
		u.screen.SetContent(x, y, space, nil, u.style)
	}
	u.print(padLeft, y, status)
}

// cellCenter returns the screen coordinates of the middle of square (r, c).
func cellCenter(r, c int) (x, y int) {
	return padLeft + c*cellWidth + cellWidth/2, padTop + r*cellHeight + 1
}

// boardLocationAt maps a screen position to a board square.
func boardLocationAt(x, y int) (game.Location, bool) {
	if x <= padLeft || x >= padLeft+boardWidth || y <= padTop || y >= padTop+boardHeight {
		return game.Location{}, false
	}
	loc := game.Location{
		Row: (y - padTop - 1) / cellHeight,
		Col: (x - padLeft - 1) / cellWidth,
	}
	if loc.Row >= game.BoardSize || loc.Col >= game.BoardSize {
		return game.Location{}, false
	}
	return loc, true
}

// drawBox draws an empty box on the screen.
func (u *UI) drawBox(x int, y int, width int, height int) {
	style := u.style.Foreground(tcell.ColorGray)

	for h := y; h < y+height; h++ {
		for w := x; w < x+width; w++ {
			u.screen.SetContent(w, h, space, nil, u.style)
		}
	}

	for h := y; h < y+height; h++ {
		for w := x; w < x+width; w++ {
			if h == y {
				u.screen.SetContent(w, h, '▀', nil, style)
			}
			if h == y+height-1 {
				u.screen.SetContent(w, h, '▄', nil, style)
			}
			if w == x || w == x+width-1 {
				u.screen.SetContent(w, h, '█', nil, style)
			}
		}
	}
}

func (u *UI) print(x, y int, str string) {
	for _, c := range str {
		var comb []rune
		w := runewidth.RuneWidth(c)
		if w == 0 {
			comb = []rune{c}
			c = ' '
			w = 1
		}
		u.screen.SetContent(x, y, c, comb, u.style)
		x += w
	}
}
