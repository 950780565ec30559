package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/findpopup/internal/cli/styles"
	"github.com/bnema/findpopup/internal/infrastructure/replay"
)

var replayVerbose bool

var replayCmd = &cobra.Command{
	Use:   "replay FILE|DIR...",
	Short: "Replay recorded event traces against the popup controller",
	Long: `Replay YAML or TOML event traces on an in-memory window host and check
their expectations. Directories are searched for *.yaml, *.yml and *.toml
files. The command fails when any trace fails.

Examples:
  findpopup replay traces/pointer_leave.yaml
  findpopup replay -v traces/`,
	Args: cobra.MinimumNArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().BoolVarP(&replayVerbose, "verbose", "v", false, "print every dismissal decision")
}

func runReplay(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	paths, err := replay.Collect(args)
	if err != nil {
		return err
	}

	runner := replay.NewRunner(app.Ctx())
	reports := make([]styles.ReplayReport, 0, len(paths))
	failed := 0
	for _, path := range paths {
		rep := replayOne(runner, path)
		if rep.Err != nil || len(rep.Failures) > 0 {
			failed++
		}
		reports = append(reports, rep)
	}

	fmt.Println(styles.NewReplayRenderer(app.Theme).Render(reports, replayVerbose))
	if failed > 0 {
		return fmt.Errorf("%d of %d traces failed", failed, len(reports))
	}
	return nil
}

func replayOne(runner *replay.Runner, path string) styles.ReplayReport {
	rep := styles.ReplayReport{Path: path}

	tr, err := replay.Load(path)
	if err != nil {
		rep.Err = err
		return rep
	}
	rep.Name = tr.Name

	res, err := runner.Run(tr)
	if err != nil {
		rep.Err = err
		return rep
	}

	rep.Steps = res.Steps
	rep.Final = fmt.Sprintf("%s/%s", res.Final.State, res.Final.Phase)
	for _, f := range res.Failures {
		rep.Failures = append(rep.Failures, f.String())
	}
	for _, d := range res.Decisions {
		rep.Decisions = append(rep.Decisions, styles.ReplayDecision{
			Event:     d.Event.Kind.String(),
			From:      d.Before.String(),
			To:        d.After.String(),
			Dismissed: d.Dismissed,
			Reason:    string(d.Reason),
		})
	}
	return rep
}
