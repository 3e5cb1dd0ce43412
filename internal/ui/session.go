package ui

import (
	"bufio"
	"context"
	"io"
	"strings"

	"hangman/internal/domain"
	"hangman/internal/domain/errs"
)

// Player is the part of game.Client a session drives.
type Player interface {
	StartNewGame(ctx context.Context) error
	SubmitGuess(ctx context.Context, input string) error
	RevealSolution(ctx context.Context) error
	RefreshAttempts(ctx context.Context) error
	State() domain.DisplayState
}

const help = `commands:
  <letter>    guess a letter
  :reveal     give up and show the solution
  :attempts   refresh the attempts counter
  :new        start another game
  :help       show this help
  :quit       leave
`

// Session reads commands from in until :quit, EOF or ctx is done.
type Session struct {
	player Player
	term   *Terminal
	in     io.Reader
}

func NewSession(p Player, term *Terminal, in io.Reader) *Session {
	return &Session{player: p, term: term, in: in}
}

// Run starts a game, then dispatches one line at a time. Invalid guesses and
// service failures have already been shown to the player, so they do not end
// the session.
func (s *Session) Run(ctx context.Context) error {
	s.term.printf("%s", help)
	if err := s.player.StartNewGame(ctx); err != nil && !errs.Shown(err) {
		return err
	}
	s.term.Prompt()

	sc := bufio.NewScanner(s.in)
	for sc.Scan() {
		s.term.Inputted()
		if ctx.Err() != nil {
			return nil
		}

		line := strings.TrimRight(sc.Text(), "\r")
		quit, err := s.dispatch(ctx, line)
		if err != nil && !errs.Shown(err) {
			return err
		}
		if quit {
			return nil
		}
		s.term.Prompt()
	}
	return sc.Err()
}

func (s *Session) dispatch(ctx context.Context, line string) (quit bool, err error) {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case ":quit", ":q", ":exit":
		return true, nil
	case ":help", ":h":
		s.term.printf("%s", help)
		return false, nil
	case ":reveal", ":solution":
		return false, s.player.RevealSolution(ctx)
	case ":attempts":
		return false, s.player.RefreshAttempts(ctx)
	case ":new":
		return false, s.player.StartNewGame(ctx)
	}

	return false, s.player.SubmitGuess(ctx, line)
}
