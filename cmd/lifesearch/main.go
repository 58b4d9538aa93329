// Command lifesearch searches Life-like cellular automata for still
// lifes, oscillators, and spaceships.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rdiggins/lifesearch/internal/tui"
	"github.com/rdiggins/lifesearch/pkg/lifesearch"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "lifesearch",
		Short: "Search Life-like cellular automata for still lifes, oscillators, and spaceships",
	}
	root.AddCommand(newSearchCmd(), newResumeCmd(), newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), version)
			return nil
		},
	}
}

type searchFlags struct {
	rule          string
	width, height int
	period        int
	dx, dy        int
	transform     string
	symmetry      string
	searchOrder   string
	newState      string
	maxCellCount  int
	randomSeed    int64
	reduceMax     bool
	nonEmptyFront bool
	maxStep       uint64
	snapshotOut   string
	stats         bool
}

func newSearchCmd() *cobra.Command {
	var f searchFlags
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search for a pattern",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.toConfig()
			if err != nil {
				return err
			}
			return runSearch(cmd, cfg, f.maxStep, f.snapshotOut, f.stats)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&f.rule, "rule", "B3/S23", "rule string, e.g. B3/S23 or B3/S23/3")
	flags.IntVar(&f.width, "width", 8, "world width")
	flags.IntVar(&f.height, "height", 8, "world height")
	flags.IntVar(&f.period, "period", 1, "period")
	flags.IntVar(&f.dx, "dx", 0, "horizontal translation per period")
	flags.IntVar(&f.dy, "dy", 0, "vertical translation per period")
	flags.StringVar(&f.transform, "transform", "id", "transform applied at the period boundary")
	flags.StringVar(&f.symmetry, "symmetry", "C1", "symmetry group")
	flags.StringVar(&f.searchOrder, "search-order", "auto", "row, column, diagonal, or auto")
	flags.StringVar(&f.newState, "new-state", "dead", "dead, alive, or random")
	flags.IntVar(&f.maxCellCount, "max-cells", 0, "live-cell ceiling, 0 for unbounded")
	flags.Int64Var(&f.randomSeed, "seed", 0, "random seed for new-state=random")
	flags.BoolVar(&f.reduceMax, "reduce-max", false, "shrink the cell ceiling after each find")
	flags.BoolVar(&f.nonEmptyFront, "non-empty-front", false, "require a live cell on the search front")
	flags.Uint64Var(&f.maxStep, "max-step", 0, "stop after this many steps, 0 for unbounded")
	flags.StringVar(&f.snapshotOut, "save", "", "write a resumable snapshot to this path on pause")
	flags.BoolVar(&f.stats, "stats", false, "print step/backtrack/trail-size counters after the search stops")
	return cmd
}

func newResumeCmd() *cobra.Command {
	var maxStep uint64
	var snapshotOut string
	var stats bool
	cmd := &cobra.Command{
		Use:   "resume <snapshot>",
		Short: "Resume a paused search from a snapshot file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			w, err := lifesearch.LoadSnapshot(data)
			if err != nil {
				return err
			}
			return runTUI(cmd, w, maxStep, snapshotOut, stats)
		},
	}
	flags := cmd.Flags()
	flags.Uint64Var(&maxStep, "max-step", 0, "stop after this many steps, 0 for unbounded")
	flags.StringVar(&snapshotOut, "save", "", "write a resumable snapshot to this path on pause")
	flags.BoolVar(&stats, "stats", false, "print step/backtrack/trail-size counters after the search stops")
	return cmd
}

func runSearch(cmd *cobra.Command, cfg lifesearch.Config, maxStep uint64, snapshotOut string, stats bool) error {
	w, err := lifesearch.Build(cfg)
	if err != nil {
		return err
	}
	return runTUI(cmd, w, maxStep, snapshotOut, stats)
}

func runTUI(cmd *cobra.Command, w *lifesearch.World, maxStep uint64, snapshotOut string, stats bool) error {
	var maxStepPtr *uint64
	if maxStep > 0 {
		maxStepPtr = &maxStep
	}
	status, err := tui.Run(w, maxStepPtr)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), status)
	if status == lifesearch.StatusFound {
		for t := 0; t < w.Config().Period; t++ {
			fmt.Fprintln(cmd.OutOrStdout(), w.RLEGen(t))
		}
	}
	if stats {
		s := w.Stats()
		fmt.Fprintf(cmd.OutOrStdout(), "steps=%d backtracks=%d max-trail=%d conflicts=%d\n",
			s.Steps, s.Backtracks, s.MaxTrailSize, w.Conflicts())
	}
	if snapshotOut != "" && status == lifesearch.StatusPaused {
		data, err := w.Save().Marshal()
		if err != nil {
			return err
		}
		if err := os.WriteFile(snapshotOut, data, 0o644); err != nil {
			return err
		}
	}
	return nil
}

func (f searchFlags) toConfig() (lifesearch.Config, error) {
	rule, err := parseRule(f.rule)
	if err != nil {
		return lifesearch.Config{}, err
	}
	transform, err := parseTransform(f.transform)
	if err != nil {
		return lifesearch.Config{}, err
	}
	symmetry, err := parseSymmetry(f.symmetry)
	if err != nil {
		return lifesearch.Config{}, err
	}
	order, err := parseSearchOrder(f.searchOrder)
	if err != nil {
		return lifesearch.Config{}, err
	}
	newState, err := parseNewState(f.newState)
	if err != nil {
		return lifesearch.Config{}, err
	}
	cfg := lifesearch.Config{
		Width:         f.width,
		Height:        f.height,
		Period:        f.period,
		Dx:            f.dx,
		Dy:            f.dy,
		Transform:     transform,
		Symmetry:      symmetry,
		SearchOrder:   order,
		NewState:      newState,
		RandomSeed:    f.randomSeed,
		ReduceMax:     f.reduceMax,
		NonEmptyFront: f.nonEmptyFront,
		Rule:          rule,
	}
	if f.maxCellCount > 0 {
		cfg.MaxCellCount = &f.maxCellCount
	}
	return cfg, nil
}
