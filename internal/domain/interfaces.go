package domain

import "context"

// GameAPI is how we talk to the remote hangman service, all with context.
type GameAPI interface {
	NewGame(ctx context.Context) (Progress, error)
	Guess(ctx context.Context, letter string) (Progress, error)
	Solution(ctx context.Context) (Solution, error)
	Attempts(ctx context.Context) (AttemptsLeft, error)
	Health(ctx context.Context) error
}

// Surface renders a session. Render receives a full copy of the state after
// every change; Notify blocks until the user has seen the notice.
type Surface interface {
	Render(state DisplayState)
	Notify(n Notice)
	Focus()
}
