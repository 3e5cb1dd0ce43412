// Package api provides an HTTP implementation of the domain.GameAPI
// interface used by the hangman client.
//
// The service owns the secret word, the attempts counter and the outcome of
// every guess. This package only translates the client's intents into calls:
//
//	POST /hangman/new              start a game        -> {output, attempts}
//	POST /hangman/guess/{letter}   guess one letter    -> {output, attempts}
//	GET  /hangman/solution         concede             -> {solution}
//	GET  /hangman/attempts         attempts remaining  -> {attempts}
//	GET  /liveness                 health              -> {status}
//
// All requests accept a context for cancellation and deadlines. Network
// errors, non-2xx statuses and bodies that are not the expected JSON are all
// returned as *errs.TransportError, carrying the method and path.
package api
