package app

import (
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"hangman/internal/api"
	"hangman/internal/config"
	"hangman/internal/domain"
	"hangman/internal/services/game"
)

// Wire bundles the clients and logger shared by commands.
type Wire struct {
	Config  *config.Config
	Logger  zerolog.Logger
	HTTP    *http.Client
	API     domain.GameAPI
	Session string
}

// NewWire constructs the dependency graph from conf. Logs go to logOut.
func NewWire(conf *config.Config, logOut io.Writer) (*Wire, error) {
	logger, err := NewLogger(conf.LogLevel, logOut)
	if err != nil {
		return nil, err
	}

	// Every log line of one run carries the same session id.
	session := uuid.NewString()
	logger = logger.With().Str("session", session).Logger()

	httpClient := &http.Client{Timeout: conf.Timeout}

	return &Wire{
		Config:  conf,
		Logger:  logger,
		HTTP:    httpClient,
		API:     api.NewHTTP(conf.APIURL, httpClient, logger),
		Session: session,
	}, nil
}

// Game builds a session client rendering to surface.
func (w *Wire) Game(surface domain.Surface) *game.Client {
	return game.New(w.API, surface, w.Logger)
}

// NewLogger returns a console logger at the named level.
func NewLogger(level string, out io.Writer) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}).
		Level(lvl).
		With().Timestamp().Logger(), nil
}
