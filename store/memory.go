// Package store keeps the rounds played in a session
package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/jbarratt/rps/game"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

// ErrRoundOutOfOrder is returned when a round doesn't follow the last stored one
var ErrRoundOutOfOrder = errors.New("round out of order")

// GameStore interface declares what the session loop needs to keep score
type GameStore interface {
	StoreRound(*game.Round) error
	Rounds() []game.Round
	Tally() game.Tally
}

// Memory holds a session's rounds and tally. Nothing is written anywhere,
// it all goes away with the process.
type Memory struct {
	mu     sync.RWMutex
	rounds []game.Round
	tally  game.Tally
}

// New creates an empty memory store
func New() *Memory {
	return &Memory{}
}

// StoreRound records a finished round and counts it in the tally
func (m *Memory) StoreRound(r *game.Round) error {
	if r == nil {
		return errors.New("cannot store a nil round")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if want := len(m.rounds) + 1; r.Number != want {
		return fmt.Errorf("%w: got round %d, expected %d", ErrRoundOutOfOrder, r.Number, want)
	}
	if err := m.tally.Record(r.Outcome); err != nil {
		return err
	}
	m.rounds = append(m.rounds, *r)

	log.Debug().
		Int("round", r.Number).
		Int("games", m.tally.Games).
		Int("wins", m.tally.Wins).
		Int("losses", m.tally.Losses).
		Msg("stored round")
	return nil
}

// Rounds returns a copy of every stored round, oldest first
func (m *Memory) Rounds() []game.Round {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]game.Round, 0, len(m.rounds))
	if err := copier.Copy(&out, &m.rounds); err != nil {
		log.Error().Err(err).Msg("unable to copy rounds")
		return nil
	}
	return out
}

// Tally returns the current score
func (m *Memory) Tally() game.Tally {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.tally
}
