package game

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"hangman/internal/domain"
	"hangman/internal/domain/errs"
)

// Client owns a session's display state and its rendering surface.
//
// Operations hold a single lock from request to display update, so at most
// one call is in flight and the state always reflects the call that settled
// last. Transport failures are reported to the user and returned, but never
// change the state.
type Client struct {
	api     domain.GameAPI
	surface domain.Surface
	log     zerolog.Logger

	mu    sync.Mutex
	state domain.DisplayState
}

// New constructs a Client. Nothing is called until StartNewGame.
func New(api domain.GameAPI, surface domain.Surface, log zerolog.Logger) *Client {
	return &Client{
		api:     api,
		surface: surface,
		log:     log.With().Str("component", "game").Logger(),
		state:   domain.NewDisplayState(),
	}
}

// State returns a copy of the current display state.
func (c *Client) State() domain.DisplayState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Phase returns the current game phase.
func (c *Client) Phase() domain.Phase {
	return c.State().Phase()
}

// StartNewGame asks the service for a fresh game and shows it.
func (c *Client) StartNewGame(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, err := c.api.NewGame(ctx)
	if err != nil {
		return c.transient("new game", err)
	}

	c.state.Begin(p)
	c.log.Debug().Str("output", p.Output).Int("attempts", p.Attempts).Msg("game started")
	c.surface.Render(c.state)
	return nil
}

// SubmitGuess sends one letter. Input that is not exactly one ASCII letter
// is rejected with errs.ErrInvalidGuess before any call is made. Once the
// guess control is disabled the call is ignored.
func (c *Client) SubmitGuess(ctx context.Context, input string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.state.GuessEnabled {
		c.log.Debug().Str("input", input).Msg("guess ignored, control disabled")
		return nil
	}

	c.state.Pending = input
	if !ValidLetter(input) {
		c.state.Pending = ""
		c.surface.Notify(domain.NoticeInvalidInput)
		c.surface.Render(c.state)
		return errs.ErrInvalidGuess
	}

	p, err := c.api.Guess(ctx, input)
	if err != nil {
		return c.transient("guess", err)
	}

	c.state.Apply(p)
	if !p.Solved() {
		c.state.Pending = ""
		c.surface.Render(c.state)
		c.surface.Focus()
		return nil
	}

	c.state.GameOver = true
	c.state.GuessEnabled = false
	c.log.Debug().Str("output", p.Output).Msg("game won")
	c.surface.Render(c.state)
	c.surface.Notify(domain.NoticeWon)
	return nil
}

// RevealSolution concedes the game and shows the full word. Once the reveal
// control is disabled the call is ignored.
func (c *Client) RevealSolution(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.state.RevealEnabled {
		c.log.Debug().Msg("reveal ignored, control disabled")
		return nil
	}

	s, err := c.api.Solution(ctx)
	if err != nil {
		return c.transient("reveal", err)
	}

	c.state.MaskedWord = s.Solution
	c.state.Revealed = true
	c.state.GuessEnabled = false
	c.state.RevealEnabled = false
	c.log.Debug().Str("solution", s.Solution).Msg("game conceded")
	c.surface.Render(c.state)
	c.surface.Notify(domain.NoticeConceded)
	return nil
}

// RefreshAttempts re-reads the attempts counter from the service.
func (c *Client) RefreshAttempts(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	a, err := c.api.Attempts(ctx)
	if err != nil {
		return c.transient("attempts", err)
	}

	c.state.AttemptsRemaining = a.Attempts
	c.surface.Render(c.state)
	return nil
}

func (c *Client) transient(op string, err error) error {
	// a canceled session is not something to tell the user about
	if errors.Is(err, context.Canceled) {
		return err
	}
	c.log.Debug().Err(err).Str("op", op).Msg("service call failed")
	c.surface.Notify(domain.NoticeTransient)
	return err
}

// ValidLetter reports whether input is exactly one character in [A-Za-z].
func ValidLetter(input string) bool {
	if len(input) != 1 {
		return false
	}
	b := input[0]
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}
