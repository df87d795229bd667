package service

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"unicode"

	"github.com/jbarratt/rps/game"
	"github.com/jbarratt/rps/notify"
	"github.com/jbarratt/rps/store"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	startPrompt  = "Enter Y/y to play the game: "
	choicePrompt = "Enter your choice (r, p, or s): "
	againPrompt  = "Enter Y/y to play another game: "
)

// errQuit ends the session early, it never reaches the caller
var errQuit = errors.New("player quit")

// typed is one rune (or the error that ended input) from the reader goroutine
type typed struct {
	ch  rune
	err error
}

// ConsoleSvc runs one interactive session against the computer
type ConsoleSvc struct {
	in     *bufio.Reader
	keys   chan typed
	ws     notify.Notifier
	store  store.GameStore
	src    game.Source
	id     string
	logger zerolog.Logger
}

// NewConsoleSvc returns a session reading from in and talking through ws.
// src must already be seeded.
func NewConsoleSvc(in io.Reader, ws notify.Notifier, st store.GameStore, src game.Source) *ConsoleSvc {
	id := game.NewSessionID()
	return &ConsoleSvc{
		in:     bufio.NewReader(in),
		ws:     ws,
		store:  st,
		src:    src,
		id:     id,
		logger: log.With().Str("session", id).Logger(),
	}
}

// Run plays rounds until the player declines to continue, then prints the
// totals. Running out of input or cancelling ctx counts as declining.
func (s *ConsoleSvc) Run(ctx context.Context) (GameState, error) {
	s.logger.Info().Msg("session started")

	if err := s.ws.Rules(); err != nil {
		return s.State(), err
	}

	again, err := s.ask(ctx, startPrompt)
	for err == nil && again {
		if err = s.turn(ctx); err != nil {
			break
		}
		again, err = s.ask(ctx, againPrompt)
	}
	if err != nil && !errors.Is(err, errQuit) {
		s.logger.Error().Err(err).Msg("session ended with error")
		return s.State(), err
	}

	tally := s.store.Tally()
	if err := s.ws.Stats(tally); err != nil {
		return s.State(), err
	}

	st := s.State()
	s.logger.Info().
		Int("games", st.Games).
		Int("wins", st.Wins).
		Int("losses", st.Losses).
		Msg("session finished")
	return st, nil
}

// turn asks for a shape until one is valid, then plays it
func (s *ConsoleSvc) turn(ctx context.Context) error {
	for {
		ch, err := s.prompt(ctx, choicePrompt)
		if err != nil {
			return err
		}
		player, ok := game.ParseShape(ch)
		if !ok {
			s.logger.Debug().Str("input", string(ch)).Msg("invalid shape, re-prompting")
			continue
		}
		_, err = s.PlayRound(player)
		return err
	}
}

// PlayRound draws the computer's shape, resolves it against player, stores
// the round and reports it.
func (s *ConsoleSvc) PlayRound(player game.Shape) (*game.Round, error) {
	computer := game.Draw(s.src)
	number := s.store.Tally().Games + 1
	r := game.Play(number, player, computer)

	s.logger.Debug().
		Int("round", r.Number).
		Stringer("player", r.Player).
		Stringer("computer", r.Computer).
		Stringer("outcome", r.Outcome).
		Msg(r.Summary)

	if err := s.store.StoreRound(&r); err != nil {
		return nil, fmt.Errorf("unable to store round %d: %w", r.Number, err)
	}
	if err := s.ws.Round(r); err != nil {
		return &r, err
	}
	return &r, nil
}

// State is the session's score plus the latest round, if any
func (s *ConsoleSvc) State() GameState {
	st := GameState{Session: s.id}
	tally := s.store.Tally()
	if err := copier.Copy(&st, &tally); err != nil {
		s.logger.Error().Err(err).Msg("unable to copy tally")
	}

	rounds := s.store.Rounds()
	if len(rounds) == 0 {
		return st
	}
	last := rounds[len(rounds)-1]
	st.Round = last.Number
	st.YourPlay = last.Player.String()
	st.TheirPlay = last.Computer.String()
	st.Outcome = last.Outcome.String()
	st.Summary = last.Summary
	return st
}

// ask prompts for a yes/no answer. Only Y or y means yes.
func (s *ConsoleSvc) ask(ctx context.Context, msg string) (bool, error) {
	ch, err := s.prompt(ctx, msg)
	if err != nil {
		return false, err
	}
	return ch == 'Y' || ch == 'y', nil
}

// prompt writes msg, reads one character, then ends the line
func (s *ConsoleSvc) prompt(ctx context.Context, msg string) (rune, error) {
	if err := ctx.Err(); err != nil {
		s.logger.Info().Err(err).Msg("session cancelled")
		return 0, errQuit
	}
	if err := s.ws.Prompt(msg); err != nil {
		return 0, err
	}
	ch, err := s.readChar(ctx)
	if err != nil && !errors.Is(err, errQuit) {
		return 0, err
	}
	if nerr := s.ws.Newline(); nerr != nil {
		return 0, nerr
	}
	return ch, err
}

// readChar skips leading whitespace and returns the next character.
// Anything after it on the line is left for the next read. A blocked read
// gives up as soon as ctx is done.
func (s *ConsoleSvc) readChar(ctx context.Context) (rune, error) {
	if s.keys == nil {
		s.keys = make(chan typed)
		go s.pump()
	}
	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Err(ctx.Err()).Msg("session cancelled")
			return 0, errQuit
		case k, ok := <-s.keys:
			if !ok || k.err == io.EOF {
				s.logger.Debug().Msg("end of input")
				return 0, errQuit
			}
			if k.err != nil {
				return 0, k.err
			}
			if !unicode.IsSpace(k.ch) {
				return k.ch, nil
			}
		}
	}
}

// pump feeds runes from the input to readChar until the input ends.
// Once the session is over it may stay parked on a read or a send; the
// process exits right after.
func (s *ConsoleSvc) pump() {
	defer close(s.keys)
	for {
		ch, _, err := s.in.ReadRune()
		s.keys <- typed{ch: ch, err: err}
		if err != nil {
			return
		}
	}
}
