package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/findpopup/internal/application/port"
	"github.com/bnema/findpopup/internal/infrastructure/desktop"
	"github.com/bnema/findpopup/internal/infrastructure/preview"
	"github.com/bnema/findpopup/internal/ui"
)

var (
	runPreview string
	runShow    bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the GTK popup",
	Long: `Start the GTK application hosting the find popup.

Alt+A toggles the popup. A second 'findpopup run' toggles the popup of the
running instance instead of starting another one.

Examples:
  findpopup run
  findpopup run --show --preview ./main.go:42`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVar(&runPreview, "preview", "", "file (FILE or FILE:LINE) shown in the preview pane")
	runCmd.Flags().BoolVar(&runShow, "show", false, "show the popup on start")
}

func runRun(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	var item port.PreviewItem
	if runPreview != "" {
		path, line, err := preview.ParseFileArg(runPreview)
		if err != nil {
			return err
		}
		item = preview.NewFileItem(desktop.New(desktop.Options{}), path, line)
	}

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	code := ui.Run(ctx, ui.Options{
		Config:      app.Manager,
		Preview:     item,
		ShowOnStart: runShow,
	})
	if code != 0 {
		return fmt.Errorf("popup exited with status %d", code)
	}
	return nil
}
