package domain

import "strconv"

// DisplayState is everything the rendering surface shows. Apart from
// Pending, which holds what the user typed, it is written only from
// service responses.
type DisplayState struct {
	MaskedWord        string
	AttemptsRemaining int
	GameOver          bool
	Revealed          bool

	Pending       string
	GuessEnabled  bool
	RevealEnabled bool

	started bool
}

// NewDisplayState returns the state of a session before the first game starts.
func NewDisplayState() DisplayState {
	return DisplayState{GuessEnabled: true, RevealEnabled: true}
}

// Started reports whether a new-game response has been applied.
func (s DisplayState) Started() bool { return s.started }

// AttemptsText is the counter as shown on screen.
func (s DisplayState) AttemptsText() string {
	if !s.started {
		return ""
	}
	return AttemptsLabel + strconv.Itoa(s.AttemptsRemaining)
}

// Begin applies a new-game response.
func (s *DisplayState) Begin(p Progress) {
	s.MaskedWord = p.Output
	s.AttemptsRemaining = p.Attempts
	s.GameOver = false
	s.Revealed = false
	s.GuessEnabled = true
	s.RevealEnabled = true
	s.started = true
}

// Apply copies a guess response into the state. The service holds the game,
// so a guess answered without a prior new-game response still counts.
func (s *DisplayState) Apply(p Progress) {
	s.MaskedWord = p.Output
	s.AttemptsRemaining = p.Attempts
	s.started = true
}

// Phase is the position of a session in the game flow.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseInProgress
	PhaseWon
	PhaseRevealed
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not-started"
	case PhaseInProgress:
		return "in-progress"
	case PhaseWon:
		return "won"
	case PhaseRevealed:
		return "revealed"
	}
	return "unknown"
}

// Phase derives the game phase. Won takes precedence over Revealed so a
// finished game stays finished.
func (s DisplayState) Phase() Phase {
	switch {
	case !s.started:
		return PhaseNotStarted
	case s.GameOver:
		return PhaseWon
	case s.Revealed:
		return PhaseRevealed
	}
	return PhaseInProgress
}

// Terminal reports whether the session is Won or Revealed.
func (s DisplayState) Terminal() bool {
	p := s.Phase()
	return p == PhaseWon || p == PhaseRevealed
}
