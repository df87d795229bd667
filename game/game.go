// package game implements the core logic of rock paper scissors
package game

import (
	"crypto/rand"
	"fmt"
	"strings"
)

var (
	winnermap map[Shape]Shape
	verbs     map[Shape]string
)

const SESSIONID_LENGTH = 5

// Outcome is the result of a round from the human player's side
type Outcome int

const (
	Tie Outcome = iota
	Win
	Loss
)

func (o Outcome) String() string {
	switch o {
	case Tie:
		return "tie"
	case Win:
		return "win"
	case Loss:
		return "loss"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Message is the line shown to the player for the outcome
func (o Outcome) Message() string {
	switch o {
	case Win:
		return "You won the game!"
	case Loss:
		return "You lost the game."
	case Tie:
		return "This game is a tie."
	default:
		return fmt.Sprintf("Unknown outcome %d.", int(o))
	}
}

// Round is a single completed throw between the player and the computer
type Round struct {
	Number   int
	Player   Shape
	Computer Shape
	Outcome  Outcome
	Summary  string
}

// Beats returns if first would beat second
// also returns the verb needed <first> breaks <second>
// In the case of a tie, returns "ties" as the verb
func Beats(first, second Shape) (bool, string) {
	if first == second {
		return false, "ties"
	}
	if loser, ok := winnermap[first]; ok && loser == second {
		return true, verbs[first]
	}
	return false, ""
}

// WinningShape returns whichever of the two shapes wins.
// For a tie that is simply the shared shape.
func WinningShape(a, b Shape) Shape {
	if beats, _ := Beats(b, a); beats {
		return b
	}
	return a
}

// Resolve decides the outcome for the player.
// Both shapes must be valid; anything else is a caller bug and panics.
func Resolve(player, computer Shape) Outcome {
	if !player.Valid() || !computer.Valid() {
		panic(fmt.Sprintf("game: resolve called with invalid shape (player=%d computer=%d)", int(player), int(computer)))
	}
	if player == computer {
		return Tie
	}
	if WinningShape(player, computer) == player {
		return Win
	}
	return Loss
}

// Play resolves a round and fills in its summary
func Play(number int, player, computer Shape) Round {
	r := Round{
		Number:   number,
		Player:   player,
		Computer: computer,
		Outcome:  Resolve(player, computer),
	}

	switch r.Outcome {
	case Tie:
		r.Summary = fmt.Sprintf("Both played %s, tie", player)
	case Win:
		_, how := Beats(player, computer)
		r.Summary = fmt.Sprintf("%s %s %s", player, how, computer)
	case Loss:
		_, how := Beats(computer, player)
		r.Summary = fmt.Sprintf("%s %s %s", computer, how, player)
	}
	return r
}

// NewSessionID returns a short random id used to tag a session's log lines.
// Falls back to all zeros if the system's random source fails.
func NewSessionID() string {
	const letters = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	b := make([]byte, SESSIONID_LENGTH)
	if _, err := rand.Read(b); err != nil {
		return strings.Repeat("0", SESSIONID_LENGTH)
	}
	for i := range b {
		b[i] = letters[int(b[i])%len(letters)]
	}
	return string(b)
}

func init() {
	winnermap = map[Shape]Shape{
		Rock:     Scissors,
		Paper:    Rock,
		Scissors: Paper,
	}
	verbs = map[Shape]string{
		Rock:     "breaks",
		Paper:    "covers",
		Scissors: "cuts",
	}
}
