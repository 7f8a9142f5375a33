package game

// Side is the content of one board square: Empty, or the disc color of one
// of the two players. The zero value is Empty so a zero Board is an empty
// board.
type Side uint8

const (
	Empty Side = iota
	Black
	White
)

// Opposite returns the other color. It is total and involutive over
// {Black, White}; calling it on Empty is a programming error.
func (s Side) Opposite() Side {
	switch s {
	case Black:
		return White
	case White:
		return Black
	}
	panic("opposite of an empty square")
}

func (s Side) String() string {
	switch s {
	case Black:
		return "Black"
	case White:
		return "White"
	}
	return "Empty"
}
