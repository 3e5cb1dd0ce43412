// Package commands defines the hangman CLI and wires dependencies for subcommands.
//
// Commands
//
//   - play       Interactive game; a new game starts automatically
//   - new        Start a game on the service and print it
//   - guess      Guess one letter in the service's current game
//   - solution   Give up and print the solution
//   - attempts   Print the attempts left
//   - ping       Check the service is alive
//
// # Implementation
//
// The root command loads configuration (YAML file, HANGMAN_* environment,
// then flags) and builds the logger and service client before any
// subcommand runs. The service keeps one game at a time, so the one-shot
// commands act on whatever game play or new last started.
package commands
