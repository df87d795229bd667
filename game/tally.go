package game

import (
	"errors"
	"fmt"
)

// ErrUnknownOutcome is returned when recording an outcome that isn't Tie, Win or Loss
var ErrUnknownOutcome = errors.New("unknown outcome")

// Tally is the running score for one session
type Tally struct {
	Games  int
	Wins   int
	Losses int
}

// Record counts one finished round
func (t *Tally) Record(o Outcome) error {
	switch o {
	case Tie, Win, Loss:
	default:
		return fmt.Errorf("%w: %d", ErrUnknownOutcome, int(o))
	}

	t.Games++
	switch o {
	case Win:
		t.Wins++
	case Loss:
		t.Losses++
	}
	return nil
}

// Ties is whatever wasn't a win or a loss
func (t Tally) Ties() int {
	return t.Games - t.Wins - t.Losses
}
