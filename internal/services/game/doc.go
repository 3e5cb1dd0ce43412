// Package game drives one hangman session against the remote service.
//
// It turns user intents (new game, guess, reveal) into service calls and
// copies every successful response into the display state. The service is
// the only source of truth: the client never infers the word, the attempts
// or the outcome, except that a masked word without placeholders means the
// game is won.
package game
