package ui

import (
	"fmt"
	"io"
	"strings"

	"hangman/internal/domain"
)

const (
	guessPrompt = "guess> "
	idlePrompt  = "> "
)

// Terminal is a domain.Surface that writes to out. Notices are printed as
// framed alerts; focusing the input means printing a fresh prompt.
type Terminal struct {
	out      io.Writer
	prompted bool
	guessing bool
}

func NewTerminal(out io.Writer) *Terminal {
	return &Terminal{out: out}
}

var _ domain.Surface = (*Terminal)(nil)

func (t *Terminal) Render(s domain.DisplayState) {
	t.guessing = s.Started() && s.GuessEnabled
	t.printf("\n  %s\n", s.MaskedWord)
	if txt := s.AttemptsText(); txt != "" {
		t.printf("  %s\n", txt)
	}

	var off []string
	if !s.GuessEnabled {
		off = append(off, "guess")
	}
	if !s.RevealEnabled {
		off = append(off, "reveal")
	}
	if len(off) > 0 {
		t.printf("  (disabled: %s)\n", strings.Join(off, ", "))
	}
}

func (t *Terminal) Notify(n domain.Notice) {
	msg := n.Message()
	bar := strings.Repeat("-", len(msg)+4)
	t.printf("%s\n| %s |\n%s\n", bar, msg, bar)
}

func (t *Terminal) Focus() { t.Prompt() }

// Prompt prints the input prompt unless it is already the last thing shown.
func (t *Terminal) Prompt() {
	if t.prompted {
		return
	}
	p := idlePrompt
	if t.guessing {
		p = guessPrompt
	}
	fmt.Fprint(t.out, p)
	t.prompted = true
}

// Inputted records that the user finished a line, so the next prompt is
// printed again.
func (t *Terminal) Inputted() { t.prompted = false }

func (t *Terminal) printf(format string, a ...any) {
	if t.prompted {
		// the prompt line is still open
		fmt.Fprintln(t.out)
		t.prompted = false
	}
	fmt.Fprintf(t.out, format, a...)
}
