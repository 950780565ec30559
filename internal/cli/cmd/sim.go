package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/findpopup/internal/bootstrap"
	"github.com/bnema/findpopup/internal/cli/model"
)

var simPreview string

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Drive the popup controller from the terminal",
	Long: `Run the popup controller on an in-memory window host rendered in the
terminal. The mouse moves a pointer over the simulated desktop and keys go
through the host or the content key pipeline.

Dismissal switches come from the configuration file.`,
	RunE: runSim,
}

func init() {
	rootCmd.AddCommand(simCmd)
	simCmd.Flags().StringVar(&simPreview, "preview", "Main.java:42", "title of the previewed item; empty disables previews")
}

func runSim(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	m, err := model.NewSimModel(app.Ctx(), model.SimConfig{
		Dismiss:      bootstrap.DismissOptions(app.Config),
		PreviewTitle: simPreview,
		Theme:        app.Theme,
	})
	if err != nil {
		return err
	}
	defer m.Controller().Dispose()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("simulator: %w", err)
	}
	return nil
}
