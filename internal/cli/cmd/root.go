// Package cmd provides Cobra CLI commands for findpopup.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/findpopup/internal/cli"
	"github.com/bnema/findpopup/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	configDir string
	rootCmd   = &cobra.Command{
		Use:   "findpopup",
		Short: "A find-in-files popup that gets out of your way",
		Long: `findpopup - an overlay search popup with outside-interaction dismissal.

The popup hides when focus moves to an unrelated window, when the pointer
leaves it after having entered, or on a click outside. Escape hides it from
either keyboard pipeline and Alt+Enter opens the previewed item.

Use 'findpopup run' to start the GTK popup, 'findpopup sim' to drive the
same controller from the terminal, and 'findpopup replay' to check recorded
event traces.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion":
				return nil
			}

			var err error
			if configDir != "" {
				app, err = cli.NewAppForDir(configDir)
			} else {
				app, err = cli.NewApp()
			}
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "override the configuration directory")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
	rootCmd.Version = info.String()
}
