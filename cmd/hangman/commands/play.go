package commands

import (
	"github.com/spf13/cobra"

	"hangman/internal/ui"
)

func playCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play an interactive game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			term := ui.NewTerminal(cmd.OutOrStdout())
			session := ui.NewSession(appCtx.Game(term), term, cmd.InOrStdin())

			appCtx.Logger.Debug().Str("api", appCtx.Config.APIURL).Msg("session started")
			return session.Run(cmd.Context())
		},
	}
}
