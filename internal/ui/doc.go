// Package ui renders a hangman session in a terminal and reads the player's
// input line by line.
package ui
