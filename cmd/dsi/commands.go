package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/zetadsi/internal/analysis"
	"github.com/san-kum/zetadsi/internal/config"
	"github.com/san-kum/zetadsi/internal/report"
	"github.com/san-kum/zetadsi/internal/storage"
)

// resolveConfig layers defaults, preset, config file and explicit flags, in
// that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		slog.Debug("using preset", "name", preset)
	}

	if configFile != "" {
		if err := cfg.LoadFile(configFile); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		slog.Debug("loaded config", "path", configFile)
	}

	flags := cmd.Flags()
	if flags.Changed("data") || os.Getenv("DSI_DATA_DIR") != "" || cfg.DataDir == "" {
		cfg.DataDir = dataDir
	}
	if flags.Changed("sizes") {
		cfg.Convergence.Sizes = sizes
	}
	if flags.Changed("workers") {
		cfg.Convergence.Workers = workers
	}
	if flags.Changed("deltas") {
		cfg.Perturbation.Deltas = deltas
	}
	if flags.Changed("shift") {
		cfg.Perturbation.ShiftFactor = shift
	}
	if flags.Changed("base") {
		cfg.Perturbation.BaseSize = baseSize
	}
	if flags.Changed("selection") {
		cfg.Perturbation.Selection = selection
	}
	if flags.Changed("seed") {
		cfg.Perturbation.Seed = seed
		cfg.Reference.Seed = seed
	}
	if flags.Changed("samples") {
		cfg.Reference.Samples = samples
	}
	return cfg, nil
}

func computeSequence(cmd *cobra.Command, args []string) error {
	var in io.Reader = os.Stdin
	name := "stdin"
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in, name = f, args[0]
	}

	values, err := storage.ReadValues(in)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	slog.Debug("read sequence", "source", name, "count", len(values))

	summary, err := analysis.Describe(values)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return report.WriteSummary(os.Stdout, summary)
}

func runConvergence(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	start := time.Now()
	rows, err := analysis.ConvergenceTableParallel(cmd.Context(), cfg.Convergence.Workers, cfg.Convergence.Sizes...)
	if err != nil {
		return err
	}
	slog.Debug("convergence table", "rows", len(rows), "workers", cfg.Convergence.Workers, "elapsed", time.Since(start))

	if err := report.WriteConvergenceTable(os.Stdout, rows); err != nil {
		return err
	}
	if plot {
		fmt.Println()
		fmt.Println(report.PlotConvergence(rows))
	}
	if !save {
		return nil
	}

	metrics := map[string]float64{}
	if len(rows) > 0 {
		metrics["final_abs_deviation"] = rows[len(rows)-1].AbsDeviation
	}
	params := map[string]any{
		"sizes":   cfg.Convergence.Sizes,
		"workers": cfg.Convergence.Workers,
	}
	return saveRun(cfg, "convergence", params, metrics, storage.ConvergenceTable(rows))
}

func runPerturbation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	p, err := cfg.PerturbationParams()
	if err != nil {
		return err
	}

	start := time.Now()
	rows, err := analysis.PerturbationTable(p)
	if err != nil {
		return err
	}
	slog.Debug("perturbation table", "rows", len(rows), "selection", p.Selection, "elapsed", time.Since(start))

	if err := report.WritePerturbationTable(os.Stdout, rows, p.ShiftFactor); err != nil {
		return err
	}
	if plot {
		fmt.Println()
		fmt.Println(report.PlotPerturbation(rows))
	}
	if !save {
		return nil
	}

	metrics := map[string]float64{}
	if len(rows) > 0 {
		metrics["max_relative_deviation_pct"] = maxDeviation(rows)
	}
	params := map[string]any{
		"deltas":       p.Deltas,
		"shift_factor": p.ShiftFactor,
		"base_size":    p.BaseSize,
		"selection":    string(p.Selection),
		"seed":         p.Seed,
	}
	return saveRun(cfg, "perturbation", params, metrics, storage.PerturbationTable(rows))
}

func runVerify(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	p, err := cfg.PerturbationParams()
	if err != nil {
		return err
	}
	out := os.Stdout

	if err := report.Title(out, "REPRODUCIBILITY VERIFICATION"); err != nil {
		return err
	}

	refs, err := analysis.ReferenceCheck(cfg.Reference.Seed, cfg.Reference.Samples)
	if err != nil {
		return err
	}
	if err := report.WriteReferenceCheck(out, refs, cfg.Reference.Samples); err != nil {
		return err
	}
	fmt.Fprintln(out)

	formula, err := analysis.FormulaCheck()
	if err != nil {
		return err
	}
	if err := report.WriteFormulaCheck(out, formula); err != nil {
		return err
	}
	fmt.Fprintln(out)

	conv, err := analysis.ConvergenceTableParallel(cmd.Context(), cfg.Convergence.Workers, cfg.Convergence.Sizes...)
	if err != nil {
		return err
	}
	if err := report.WriteConvergenceTable(out, conv); err != nil {
		return err
	}
	fmt.Fprintln(out)

	pert, err := analysis.PerturbationTable(p)
	if err != nil {
		return err
	}
	if err := report.WritePerturbationTable(out, pert, p.ShiftFactor); err != nil {
		return err
	}
	fmt.Fprintln(out)

	checks := []struct {
		name string
		ok   bool
	}{
		{"closed form matches at every size", formulaMatches(formula)},
		{"convergence deviations strictly decrease", strictlyDecreasing(conv)},
		{"perturbation deviation is non-decreasing in δ", nonDecreasing(pert)},
	}
	failed := 0
	for _, c := range checks {
		if !c.ok {
			failed++
		}
		if err := report.Status(out, c.ok, c.name); err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d checks failed", failed, len(checks))
	}
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSIZES\tDELTAS\tSHIFT\tBASE\tSELECTION")
	for _, name := range config.ListPresets() {
		cfg := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%v\t%v\t%.2f\t%d\t%s\n",
			name,
			cfg.Convergence.Sizes,
			cfg.Perturbation.Deltas,
			cfg.Perturbation.ShiftFactor,
			cfg.Perturbation.BaseSize,
			cfg.Perturbation.Selection,
		)
	}
	return w.Flush()
}

// openStore returns the run store in the resolved data directory, the same
// one saveRun writes to.
func openStore(cmd *cobra.Command) (*storage.Store, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, err
	}
	return storage.New(cfg.DataDir), nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tKIND\tTIME\tROWS")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n",
			run.ID,
			run.Kind,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Rows,
		)
	}
	return w.Flush()
}

func exportRun(cmd *cobra.Command, args []string) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	if err := st.Export(os.Stdout, args[0]); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("run not found: %s", args[0])
		}
		return err
	}
	return nil
}

func saveRun(cfg *config.Config, kind string, params map[string]any, metrics map[string]float64, table storage.Table) error {
	st := storage.New(cfg.DataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(kind, params, metrics, table)
	if err != nil {
		return fmt.Errorf("save %s run: %w", kind, err)
	}
	slog.Info("saved run", "id", runID, "dir", cfg.DataDir)
	return nil
}

func maxDeviation(rows []analysis.PerturbationRow) float64 {
	m := rows[0].RelativeDeviationPct
	for _, r := range rows[1:] {
		if r.RelativeDeviationPct > m {
			m = r.RelativeDeviationPct
		}
	}
	return m
}

func formulaMatches(rows []analysis.FormulaRow) bool {
	for _, r := range rows {
		if !r.Match {
			return false
		}
	}
	return true
}

func strictlyDecreasing(rows []analysis.ConvergenceRow) bool {
	for i := 1; i < len(rows); i++ {
		if rows[i].AbsDeviation >= rows[i-1].AbsDeviation {
			return false
		}
	}
	return true
}

func nonDecreasing(rows []analysis.PerturbationRow) bool {
	for i := 1; i < len(rows); i++ {
		if rows[i].RelativeDeviationPct < rows[i-1].RelativeDeviationPct {
			return false
		}
	}
	return true
}
