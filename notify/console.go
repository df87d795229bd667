package notify

import (
	"fmt"
	"io"

	"github.com/jbarratt/rps/game"
)

// Notifier is everything the session tells the player
type Notifier interface {
	Rules() error
	Prompt(msg string) error
	Newline() error
	Round(r game.Round) error
	Stats(t game.Tally) error
}

// Console writes plain text to w, usually stdout
type Console struct {
	w io.Writer
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

const rules = `Welcome to the game of Rock, Paper, and Scissors.
  This is a single-player game against to computer. For each 
  game the player and computer each select one of the objects,
  Rock, Paper or Scissors.
The rules for winning the game are:
  1. If both players selects the same object, it is a tie.
  2. Rock breaks Scissors: So player who selects Rock wins.
  3. Paper covers Rock: So player who selects Paper wins.
  4. Scissors cuts Paper: So player who selects Scissors wins.

Enter R or r to select Rock, P or p to select Paper, and S or s to select Scissors.
`

// Rules prints the welcome text and how to pick a shape
func (c *Console) Rules() error {
	_, err := io.WriteString(c.w, rules)
	return err
}

// Prompt prints msg without a trailing newline
func (c *Console) Prompt(msg string) error {
	_, err := io.WriteString(c.w, msg)
	return err
}

func (c *Console) Newline() error {
	_, err := io.WriteString(c.w, "\n")
	return err
}

// Round prints what was thrown, who won, then a blank line
func (c *Console) Round(r game.Round) error {
	var err error
	if r.Outcome == game.Tie {
		_, err = fmt.Fprintf(c.w, "Both players selected %s.\n", r.Player)
	} else {
		_, err = fmt.Fprintf(c.w, "The player selected %s and the computer selected %s.\n", r.Player, r.Computer)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(c.w, "%s\n\n", r.Outcome.Message())
	return err
}

// Stats prints the end of session totals
func (c *Console) Stats(t game.Tally) error {
	_, err := fmt.Fprintf(c.w,
		"The total number of games: %d\nThe number of games won:   %d\nThe number of games lost:  %d\n",
		t.Games, t.Wins, t.Losses)
	return err
}
