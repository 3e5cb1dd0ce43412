package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"hangman/internal/app"
	"hangman/internal/config"
	"hangman/internal/domain/errs"
)

var (
	configPath string
	apiURL     string
	logLevel   string
	timeout    time.Duration

	appCtx *app.Wire
)

// Execute runs the CLI. Errors the player has already seen as a notice are
// not printed again.
func Execute() error {
	return execute(newRoot())
}

func execute(root *cobra.Command) error {
	err := root.Execute()
	if err != nil && !errs.Shown(err) {
		fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
	}
	return err
}

func newRoot() *cobra.Command {
	root := &cobra.Command{
		Use:           "hangman",
		Short:         "Play hangman against a remote word-guessing service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			conf, err := config.Load(configPath)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("api") {
				conf.APIURL = apiURL
			}
			if flags.Changed("log-level") {
				conf.LogLevel = logLevel
			}
			if flags.Changed("timeout") {
				conf.Timeout = timeout
			}
			if err := conf.Validate(); err != nil {
				return err
			}

			appCtx, err = app.NewWire(conf, cmd.ErrOrStderr())
			return err
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&configPath, "config", "config.yml", "config file, read if it exists")
	pf.StringVar(&apiURL, "api", "", "service base URL (e.g. http://127.0.0.1:8000)")
	pf.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.DurationVar(&timeout, "timeout", 0, "per-request timeout, 0 for none")

	root.SetUsageTemplate(root.UsageTemplate() + "\nEnvironment:\n" + config.Usage())
	root.SetOut(os.Stdout)

	root.AddCommand(playCmd(), newCmd(), guessCmd(), solutionCmd(), attemptsCmd(), pingCmd())
	return root
}
