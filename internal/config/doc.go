// Package config loads client settings from an optional YAML file and
// HANGMAN_* environment variables.
package config
