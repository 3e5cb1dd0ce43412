package ui_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hangman/internal/api"
	"hangman/internal/domain"
	"hangman/internal/services/game"
	"hangman/internal/ui"
)

// scriptedService answers each path with the next queued body, in order.
type scriptedService struct {
	mu      sync.Mutex
	replies map[string][]string
	calls   []string
}

func (s *scriptedService) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := r.Method + " " + r.URL.Path
	s.calls = append(s.calls, key)
	queue := s.replies[key]
	if len(queue) == 0 {
		http.Error(w, `{"detail":"unexpected"}`, http.StatusBadRequest)
		return
	}
	s.replies[key] = queue[1:]
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(queue[0]))
}

func (s *scriptedService) called() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

type harness struct {
	svc    *scriptedService
	client *game.Client
	term   *ui.Terminal
	out    *bytes.Buffer
}

func newHarness(t *testing.T, replies map[string][]string) *harness {
	t.Helper()

	svc := &scriptedService{replies: replies}
	srv := httptest.NewServer(svc)
	t.Cleanup(srv.Close)

	out := &bytes.Buffer{}
	term := ui.NewTerminal(out)
	client := game.New(api.NewHTTP(srv.URL, srv.Client(), zerolog.Nop()), term, zerolog.Nop())
	return &harness{svc: svc, client: client, term: term, out: out}
}

func (h *harness) run(t *testing.T, input string) {
	t.Helper()
	err := ui.NewSession(h.client, h.term, strings.NewReader(input)).Run(context.Background())
	require.NoError(t, err)
}

func TestSession_PlayToWin(t *testing.T) {
	// Given: a service that will be guessed to "seven"
	h := newHarness(t, map[string][]string{
		"POST /hangman/new":     {`{"output":"_____","attempts":6}`},
		"POST /hangman/guess/e": {`{"output":"_e___","attempts":6}`},
		"POST /hangman/guess/z": {`{"output":"_e___","attempts":5}`},
		"POST /hangman/guess/s": {`{"output":"seven","attempts":5}`},
	})

	// When: the player guesses e, z, s and then keeps typing
	h.run(t, "e\nz\ns\nq\n")

	// Then: the game is won and the last guess never reached the service
	st := h.client.State()
	assert.Equal(t, "seven", st.MaskedWord)
	assert.Equal(t, "Attempts left: 5", st.AttemptsText())
	assert.False(t, st.GuessEnabled)
	assert.True(t, st.RevealEnabled)
	assert.Equal(t, domain.PhaseWon, st.Phase())

	assert.Equal(t, []string{
		"POST /hangman/new",
		"POST /hangman/guess/e",
		"POST /hangman/guess/z",
		"POST /hangman/guess/s",
	}, h.svc.called())

	out := h.out.String()
	assert.Contains(t, out, "_____")
	assert.Contains(t, out, "Attempts left: 6")
	assert.Contains(t, out, "Attempts left: 5")
	assert.Contains(t, out, domain.NoticeWon.Message())
	assert.Contains(t, out, "(disabled: guess)")
}

func TestSession_Reveal(t *testing.T) {
	h := newHarness(t, map[string][]string{
		"POST /hangman/new":     {`{"output":"______","attempts":6}`},
		"GET /hangman/solution": {`{"solution":"banana"}`},
	})

	h.run(t, ":reveal\n:reveal\na\n")

	st := h.client.State()
	assert.Equal(t, "banana", st.MaskedWord)
	assert.False(t, st.GuessEnabled)
	assert.False(t, st.RevealEnabled)
	assert.Equal(t, domain.PhaseRevealed, st.Phase())
	assert.Equal(t, []string{"POST /hangman/new", "GET /hangman/solution"}, h.svc.called())
	assert.Equal(t, 1, strings.Count(h.out.String(), domain.NoticeConceded.Message()))
}

func TestSession_InvalidInputAndFailures(t *testing.T) {
	// Given: a service whose guess endpoint fails once
	h := newHarness(t, map[string][]string{
		"POST /hangman/new": {`{"output":"___","attempts":6}`},
	})

	// When: the player types junk and then a letter the service rejects
	h.run(t, "ab\n7\nx\n:quit\n")

	// Then: junk never reached the service and the failure changed nothing
	assert.Equal(t, []string{"POST /hangman/new", "POST /hangman/guess/x"}, h.svc.called())
	out := h.out.String()
	assert.Equal(t, 2, strings.Count(out, domain.NoticeInvalidInput.Message()))
	assert.Equal(t, 1, strings.Count(out, domain.NoticeTransient.Message()))

	st := h.client.State()
	assert.Equal(t, "___", st.MaskedWord)
	assert.Equal(t, 6, st.AttemptsRemaining)
	assert.True(t, st.GuessEnabled)
	assert.True(t, st.RevealEnabled)
}

func TestSession_NewAndAttempts(t *testing.T) {
	h := newHarness(t, map[string][]string{
		"POST /hangman/new":     {`{"output":"____","attempts":6}`, `{"output":"_____","attempts":6}`},
		"GET /hangman/solution": {`{"solution":"kiwi"}`},
		"GET /hangman/attempts": {`{"attempts":6}`},
	})

	h.run(t, ":solution\n:new\n:attempts\n")

	st := h.client.State()
	assert.Equal(t, "_____", st.MaskedWord)
	assert.Equal(t, domain.PhaseInProgress, st.Phase())
	assert.True(t, st.GuessEnabled)
	assert.Equal(t, []string{
		"POST /hangman/new",
		"GET /hangman/solution",
		"POST /hangman/new",
		"GET /hangman/attempts",
	}, h.svc.called())
}

func TestSession_StartFailureKeepsSessionOpen(t *testing.T) {
	h := newHarness(t, map[string][]string{})

	h.run(t, ":help\n")

	assert.Equal(t, domain.PhaseNotStarted, h.client.Phase())
	assert.Contains(t, h.out.String(), domain.NoticeTransient.Message())
	assert.Equal(t, 2, strings.Count(h.out.String(), ":reveal"))
}

func TestTerminal_Render(t *testing.T) {
	out := &bytes.Buffer{}
	term := ui.NewTerminal(out)

	st := domain.NewDisplayState()
	st.Begin(domain.Progress{Output: "_ _ _ ", Attempts: 6})
	term.Render(st)
	term.Focus()
	term.Focus()

	assert.Equal(t, "\n  _ _ _ \n  Attempts left: 6\nguess> ", out.String())
}

func TestTerminal_Notify(t *testing.T) {
	out := &bytes.Buffer{}
	ui.NewTerminal(out).Notify(domain.NoticeWon)

	assert.Equal(t, "-----------------------------\n| You won! Congratulations! |\n-----------------------------\n", out.String())
}
