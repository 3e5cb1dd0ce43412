package game

import (
	"context"

	"github.com/stretchr/testify/mock"

	"hangman/internal/domain"
)

type mockGameAPI struct {
	mock.Mock
}

func (m *mockGameAPI) NewGame(ctx context.Context) (domain.Progress, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Progress), args.Error(1)
}

func (m *mockGameAPI) Guess(ctx context.Context, letter string) (domain.Progress, error) {
	args := m.Called(ctx, letter)
	return args.Get(0).(domain.Progress), args.Error(1)
}

func (m *mockGameAPI) Solution(ctx context.Context) (domain.Solution, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Solution), args.Error(1)
}

func (m *mockGameAPI) Attempts(ctx context.Context) (domain.AttemptsLeft, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.AttemptsLeft), args.Error(1)
}

func (m *mockGameAPI) Health(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// fakeSurface records what a session showed.
type fakeSurface struct {
	renders []domain.DisplayState
	notices []domain.Notice
	focused int
}

func (f *fakeSurface) Render(state domain.DisplayState) { f.renders = append(f.renders, state) }
func (f *fakeSurface) Notify(n domain.Notice)           { f.notices = append(f.notices, n) }
func (f *fakeSurface) Focus()                           { f.focused++ }

func (f *fakeSurface) last() domain.DisplayState {
	if len(f.renders) == 0 {
		return domain.DisplayState{}
	}
	return f.renders[len(f.renders)-1]
}
