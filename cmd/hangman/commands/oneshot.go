package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"hangman/internal/domain"
	"hangman/internal/ui"
)

func newCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Start a new game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := appCtx.Game(ui.NewTerminal(cmd.OutOrStdout()))
			return c.StartNewGame(cmd.Context())
		},
	}
}

// guess <letter>: one guess against the service's current game.
func guessCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guess <letter>",
		Short: "Guess a single letter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := appCtx.Game(ui.NewTerminal(cmd.OutOrStdout()))
			return c.SubmitGuess(cmd.Context(), args[0])
		},
	}
}

func solutionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "solution",
		Aliases: []string{"reveal"},
		Short:   "Give up and show the solution",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := appCtx.Game(ui.NewTerminal(cmd.OutOrStdout()))
			return c.RevealSolution(cmd.Context())
		},
	}
}

func attemptsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "attempts",
		Short: "Show the attempts left in the current game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := appCtx.API.Attempts(cmd.Context())
			if err != nil {
				ui.NewTerminal(cmd.OutOrStdout()).Notify(domain.NoticeTransient)
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s%d\n", domain.AttemptsLabel, a.Attempts)
			return nil
		},
	}
}

func pingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check the service is alive",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.API.Health(cmd.Context()); err != nil {
				return fmt.Errorf("%s is not healthy: %w", appCtx.Config.APIURL, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
}
