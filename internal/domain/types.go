package domain

import "strings"

// Placeholder stands in for an unguessed letter in a masked word.
const Placeholder = '_'

// AttemptsLabel prefixes the remaining-attempts counter on screen.
const AttemptsLabel = "Attempts left: "

// Progress is returned by the new-game and guess endpoints.
type Progress struct {
	Output   string `json:"output"`
	Attempts int    `json:"attempts"`
}

// Solved reports whether the masked word has no placeholder left.
// This is the only win signal the client consumes.
func (p Progress) Solved() bool {
	return !strings.ContainsRune(p.Output, Placeholder)
}

// Solution is returned by the solution endpoint.
type Solution struct {
	Solution string `json:"solution"`
}

// AttemptsLeft is returned by the attempts endpoint.
type AttemptsLeft struct {
	Attempts int `json:"attempts"`
}

// Liveness is returned by the service health endpoint.
type Liveness struct {
	Status string `json:"status"`
}
