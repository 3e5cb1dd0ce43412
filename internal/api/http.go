package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"hangman/internal/domain"
	"hangman/internal/domain/errs"
)

type HTTP struct {
	Base string
	HTTP *http.Client
	Log  zerolog.Logger
}

func NewHTTP(base string, client *http.Client, log zerolog.Logger) *HTTP {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTP{
		Base: strings.TrimRight(base, "/"),
		HTTP: client,
		Log:  log.With().Str("component", "api").Logger(),
	}
}

var _ domain.GameAPI = (*HTTP)(nil)

func (c *HTTP) NewGame(ctx context.Context) (domain.Progress, error) {
	return c.progress(ctx, http.MethodPost, "/hangman/new")
}

func (c *HTTP) Guess(ctx context.Context, letter string) (domain.Progress, error) {
	return c.progress(ctx, http.MethodPost, "/hangman/guess/"+url.PathEscape(letter))
}

func (c *HTTP) Solution(ctx context.Context) (domain.Solution, error) {
	var out struct {
		Solution *string `json:"solution"`
	}
	const path = "/hangman/solution"
	if err := c.do(ctx, http.MethodGet, path, &out); err != nil {
		return domain.Solution{}, err
	}
	if out.Solution == nil {
		return domain.Solution{}, c.fail(http.MethodGet, path, fmt.Errorf("%w: missing solution", errs.ErrBadResponse))
	}
	return domain.Solution{Solution: *out.Solution}, nil
}

func (c *HTTP) Attempts(ctx context.Context) (domain.AttemptsLeft, error) {
	var out struct {
		Attempts *int `json:"attempts"`
	}
	const path = "/hangman/attempts"
	if err := c.do(ctx, http.MethodGet, path, &out); err != nil {
		return domain.AttemptsLeft{}, err
	}
	if out.Attempts == nil {
		return domain.AttemptsLeft{}, c.fail(http.MethodGet, path, fmt.Errorf("%w: missing attempts", errs.ErrBadResponse))
	}
	return domain.AttemptsLeft{Attempts: *out.Attempts}, nil
}

func (c *HTTP) Health(ctx context.Context) error {
	var out domain.Liveness
	const path = "/liveness"
	if err := c.do(ctx, http.MethodGet, path, &out); err != nil {
		return err
	}
	if out.Status != "ok" {
		return c.fail(http.MethodGet, path, fmt.Errorf("%w: status %q", errs.ErrBadResponse, out.Status))
	}
	return nil
}

// progress calls an endpoint answering {output, attempts}. Both fields are
// required; a body lacking either is not a game response.
func (c *HTTP) progress(ctx context.Context, method, path string) (domain.Progress, error) {
	var out struct {
		Output   *string `json:"output"`
		Attempts *int    `json:"attempts"`
	}
	if err := c.do(ctx, method, path, &out); err != nil {
		return domain.Progress{}, err
	}
	if out.Output == nil || out.Attempts == nil {
		return domain.Progress{}, c.fail(method, path, fmt.Errorf("%w: missing output or attempts", errs.ErrBadResponse))
	}
	return domain.Progress{Output: *out.Output, Attempts: *out.Attempts}, nil
}

func (c *HTTP) do(ctx context.Context, method, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.Base+path, nil)
	if err != nil {
		return c.fail(method, path, err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return c.fail(method, path, err)
	}
	defer resp.Body.Close()

	c.Log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("took", time.Since(start)).
		Msg("hangman call")

	if resp.StatusCode/100 != 2 {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return c.fail(method, path, fmt.Errorf("%w: %s", errs.ErrBadResponse, resp.Status))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return c.fail(method, path, fmt.Errorf("%w: %v", errs.ErrBadResponse, err))
	}
	return nil
}

func (c *HTTP) fail(method, path string, err error) error {
	c.Log.Warn().Err(err).Str("method", method).Str("path", path).Msg("hangman call failed")
	return &errs.TransportError{Method: method, Path: path, Err: err}
}
