package game

import (
	"fmt"
	"unicode"
)

// Shape is one of the three throws a player can make
type Shape int

const (
	Rock Shape = iota
	Paper
	Scissors
)

// NUM_SHAPES is the size of the draw range for a computer throw
const NUM_SHAPES = 3

// Source is anything that can produce a uniform int in [0, n).
// *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

var shapeNames = map[Shape]string{
	Rock:     "Rock",
	Paper:    "Paper",
	Scissors: "Scissors",
}

// ParseShape maps a single input character to a Shape, ignoring case.
// ok is false for anything that isn't r, p or s.
func ParseShape(ch rune) (Shape, bool) {
	switch unicode.ToLower(ch) {
	case 'r':
		return Rock, true
	case 'p':
		return Paper, true
	case 's':
		return Scissors, true
	}
	return 0, false
}

// ValidShape returns true only if the character selects a shape
func ValidShape(ch rune) bool {
	_, ok := ParseShape(ch)
	return ok
}

// Valid reports whether s is one of Rock, Paper or Scissors
func (s Shape) Valid() bool {
	return s >= Rock && s <= Scissors
}

func (s Shape) String() string {
	if name, ok := shapeNames[s]; ok {
		return name
	}
	return "Unknown Type"
}

// RandomShape maps a draw in [0, NUM_SHAPES) to a shape.
func RandomShape(draw int) Shape {
	if draw < 0 || draw >= NUM_SHAPES {
		panic(fmt.Sprintf("game: draw %d outside [0, %d)", draw, NUM_SHAPES))
	}
	return Shape(draw)
}

// Draw picks the computer's shape from src
func Draw(src Source) Shape {
	return RandomShape(src.Intn(NUM_SHAPES))
}
