package cmd

import (
	"github.com/abhisek/mathlab/internal/app"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the practice menu",
	RunE: func(cmd *cobra.Command, args []string) error {
		skip, _ := cmd.Flags().GetBool("skip-welcome")
		return runApp(cmd, skip)
	},
}

func init() {
	playCmd.Flags().Bool("skip-welcome", false, "Go straight to the menu")
}

// runApp resolves settings and launches the TUI. Logs are discarded unless
// --log-file is set so they cannot corrupt the screen.
func runApp(cmd *cobra.Command, skipWelcome bool) error {
	rt, err := loadRuntime(cmd, nil)
	if err != nil {
		return err
	}
	defer rt.Close()

	return app.Run(app.Options{
		Settings:    rt.cfg.Exercises,
		Rand:        rt.rng,
		Logger:      rt.logger,
		SkipWelcome: skipWelcome,
	})
}
