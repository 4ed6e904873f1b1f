package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/san-kum/zetadsi/internal/config"
)

var (
	dataDir    string
	configFile string
	preset     string
	verbose    bool
	plot       bool
	save       bool
	// convergence
	sizes   []int
	workers int
	// perturbation
	deltas    []float64
	shift     float64
	baseSize  int
	selection string
	seed      int64
	// verify
	samples int

	envErr error
)

// main loads .env and executes the root command. It exits with status 1 if
// a command returns an error.
func main() {
	envErr = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		setupLogging(verbose)
		slog.Error("command failed", "err", err)
		os.Exit(1)
	}
}

// newRootCmd registers the dsi commands and their flags. Flag variables are
// reset to their defaults on every call.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "dsi",
		Short:         "distributional stability index of zeta zero ordinates",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(verbose)
			if envErr != nil {
				slog.Debug("no .env file loaded", "err", envErr)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", envOr("DSI_DATA_DIR", config.DefaultDataDir), "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", os.Getenv("DSI_CONFIG"), "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	computeCmd := &cobra.Command{
		Use:   "compute [file|-]",
		Short: "compute the index of a sequence of numbers",
		Args:  cobra.MaximumNArgs(1),
		RunE:  computeSequence,
	}

	convergenceCmd := &cobra.Command{
		Use:   "convergence",
		Short: "convergence table for R_k = k (Table 5.1)",
		Args:  cobra.NoArgs,
		RunE:  runConvergence,
	}
	convergenceCmd.Flags().IntSliceVar(&sizes, "sizes", nil, "sample sizes (default 100,1000,10000,100000,1000000)")
	convergenceCmd.Flags().IntVar(&workers, "workers", config.DefaultWorkers, "parallel rows (0 = GOMAXPROCS)")
	convergenceCmd.Flags().BoolVar(&plot, "plot", false, "plot the deviation")
	convergenceCmd.Flags().BoolVar(&save, "save", false, "save the table to the data directory")

	perturbationCmd := &cobra.Command{
		Use:   "perturbation",
		Short: "sensitivity to zeros off the critical line (Table 5.2)",
		Args:  cobra.NoArgs,
		RunE:  runPerturbation,
	}
	perturbationCmd.Flags().Float64SliceVar(&deltas, "deltas", nil, "perturbed fractions (default 0,0.01,0.05,0.1)")
	perturbationCmd.Flags().Float64Var(&shift, "shift", 1.2, "shift factor (σ/0.5)")
	perturbationCmd.Flags().IntVar(&baseSize, "base", 10_000, "base sequence size")
	perturbationCmd.Flags().StringVar(&selection, "selection", "tail", "perturbed elements: tail, head, random")
	perturbationCmd.Flags().Int64Var(&seed, "seed", 42, "random seed (random selection)")
	perturbationCmd.Flags().BoolVar(&plot, "plot", false, "plot the deviation")
	perturbationCmd.Flags().BoolVar(&save, "save", false, "save the table to the data directory")

	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "reproduce the reference values and both tables",
		Args:  cobra.NoArgs,
		RunE:  runVerify,
	}
	verifyCmd.Flags().IntVar(&samples, "samples", 1_000_000, "samples per reference distribution")
	verifyCmd.Flags().Int64Var(&seed, "seed", 42, "random seed")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a saved run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	rootCmd.AddCommand(computeCmd, convergenceCmd, perturbationCmd, verifyCmd, presetsCmd, listCmd, exportCmd)
	return rootCmd
}

func setupLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: "15:04:05",
		}),
	))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
