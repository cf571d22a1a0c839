// Command sbessel evaluates spherical Bessel integrals and transforms of
// tabulated functions read from two-column text files.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	sphbessel "github.com/tphakala/go-spherical-bessel"
)

var (
	// Global flags
	verbose bool
	timeout time.Duration

	// Shared job flags
	tablePath string
	order     int
	power     int
	method    string
	threshold float64
	workers   int
	ks        []float64

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "sbessel",
	Short: "Spherical Bessel integrals of tabulated functions",
	Long: `sbessel computes ∫ j_l(x) f(x) x^n dx for l = 0..4 and spherical
Hankel transforms 4π (-i)^l ∫ r^n j_l(kr) f(r) dr, with f read from a
two-column "x f(x)" table.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		l, err := config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

var integrateCmd = &cobra.Command{
	Use:   "integrate",
	Short: "Integrate j_l(x) f(x) x^n over a table",
	Args:  cobra.NoArgs,
	RunE:  runIntegrate,
}

var transformCmd = &cobra.Command{
	Use:   "transform",
	Short: "Evaluate the spherical Hankel transform at one or more k",
	Args:  cobra.NoArgs,
	RunE:  runTransform,
}

var batchCmd = &cobra.Command{
	Use:   "batch JOBFILE",
	Short: "Run the integrals and transforms listed in a YAML job file",
	Args:  cobra.ExactArgs(1),
	RunE:  runBatch,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", defaultTimeout, "Operation timeout")

	for _, c := range []*cobra.Command{integrateCmd, transformCmd} {
		c.Flags().StringVarP(&tablePath, "table", "t", "", "Two-column table of x and f(x) (required)")
		c.Flags().IntVarP(&order, "order", "l", defaultOrder, "Spherical Bessel order l (0-4)")
		c.Flags().IntVarP(&power, "power", "n", defaultPower, "Power n of x")
		c.Flags().StringVar(&method, "method", defaultMethod, "Integration method: auto, direct")
		c.Flags().Float64Var(&threshold, "threshold", sphbessel.DefaultThreshold, "Samples per cycle below which auto hands off to the analytic tail")
		_ = c.MarkFlagRequired("table")
	}
	transformCmd.Flags().Float64SliceVar(&ks, "k", nil, "Comma-separated wavenumbers (required)")
	transformCmd.Flags().IntVar(&workers, "workers", 0, "Parallel workers (0 = GOMAXPROCS)")
	_ = transformCmd.MarkFlagRequired("k")
	batchCmd.Flags().IntVar(&workers, "workers", 0, "Parallel workers per transform (0 = GOMAXPROCS)")

	rootCmd.AddCommand(integrateCmd, transformCmd, batchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// commandContext returns a context bounded by --timeout and cancelled on
// SIGINT or SIGTERM.
func commandContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	ctx, cancel := context.WithTimeout(ctx, timeout)
	return ctx, func() {
		cancel()
		stop()
	}
}

// flagJob builds a job from the integrate/transform flags.
func flagJob(kind string) job {
	return job{
		Name:      tablePath,
		Kind:      kind,
		Table:     tablePath,
		L:         order,
		N:         power,
		Method:    method,
		Threshold: threshold,
		K:         ks,
	}
}

func runIntegrate(cmd *cobra.Command, args []string) error {
	return runSingle(cmd, flagJob(jobIntegrate))
}

func runTransform(cmd *cobra.Command, args []string) error {
	return runSingle(cmd, flagJob(jobTransform))
}

// runSingle evaluates one flag-defined job.
func runSingle(cmd *cobra.Command, j job) error {
	if err := j.validate(); err != nil {
		return err
	}
	ctx, cancel := commandContext(cmd.Context())
	defer cancel()

	res, err := runJob(ctx, j, workers)
	if err != nil {
		return err
	}
	return writeResult(cmd.OutOrStdout(), res)
}

func runBatch(cmd *cobra.Command, args []string) error {
	jf, err := loadJobs(args[0])
	if err != nil {
		return err
	}
	w := workers
	if w == 0 {
		w = jf.Workers
	}

	ctx, cancel := commandContext(cmd.Context())
	defer cancel()

	logger.Info("Running batch", zap.String("file", args[0]), zap.Int("jobs", len(jf.Jobs)))
	start := time.Now()
	for _, j := range jf.Jobs {
		res, err := runJob(ctx, j, w)
		if err != nil {
			return err
		}
		if err := writeResult(cmd.OutOrStdout(), res); err != nil {
			return err
		}
	}
	logger.Info("Batch complete", zap.Int("jobs", len(jf.Jobs)), zap.Duration("elapsed", time.Since(start)))
	return nil
}
