package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/msto63/sso/internal/corpus"
	"github.com/msto63/sso/internal/diffcheck"
	"github.com/msto63/sso/internal/report"
	coreerror "github.com/msto63/sso/pkg/core/error"
	"github.com/msto63/sso/pkg/core/log"
)

var (
	checkIterations int
	checkSeed       uint64
	checkWorkers    int
	checkMaxLength  int
	checkProperties []string
	checkCorpus     string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run the differential properties",
	Long: `Runs every property (or the ones named with --property) against a
plain byte slice reference and prints a report. The exit status is non-zero
when any property fails.

Examples:
  sso check
  sso check --iterations 1000 --seed 42
  sso check --property insert --property erase
  sso check --corpus ~/.sso/corpus.db`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().IntVarP(&checkIterations, "iterations", "n", 0, "cases per property")
	checkCmd.Flags().Uint64Var(&checkSeed, "seed", 0, "run seed (0 picks a time based seed)")
	checkCmd.Flags().IntVarP(&checkWorkers, "workers", "w", 0, "properties checked concurrently")
	checkCmd.Flags().IntVar(&checkMaxLength, "max-length", 0, "upper bound for generated lengths")
	checkCmd.Flags().StringSliceVarP(&checkProperties, "property", "p", nil, "property to check (repeatable)")
	checkCmd.Flags().StringVar(&checkCorpus, "corpus", "", "SQLite corpus that stores the run")
}

// checkOptions merges flags over the configuration
func checkOptions(cmd *cobra.Command) diffcheck.Options {
	opts := diffcheck.Options{
		Iterations: cfg.GetInt("check.iterations"),
		Seed:       uint64(cfg.GetInt64("check.seed")),
		MaxLength:  cfg.GetInt("check.max_length"),
		Workers:    cfg.GetInt("check.workers"),
	}
	flags := cmd.Flags()
	if flags.Changed("iterations") {
		opts.Iterations = checkIterations
	}
	if flags.Changed("seed") {
		opts.Seed = checkSeed
	}
	if flags.Changed("max-length") {
		opts.MaxLength = checkMaxLength
	}
	if flags.Changed("workers") {
		opts.Workers = checkWorkers
	}
	return opts
}

func runCheck(cmd *cobra.Command, args []string) error {
	names := checkProperties
	if !cmd.Flags().Changed("property") {
		names = cfg.GetStringSlice("check.properties")
	}
	props, err := diffcheck.Select(names)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runner := diffcheck.NewRunner(checkOptions(cmd), logger)
	rep, err := runner.Run(ctx, props)
	if err != nil {
		return err
	}

	if err := report.Check(cmd.OutOrStdout(), rep); err != nil {
		return err
	}

	path := checkCorpus
	if path == "" {
		path = cfg.GetString("corpus.path")
	}
	if path != "" {
		if err := saveRun(ctx, path, rep); err != nil {
			return err
		}
	}

	if !rep.OK() {
		return coreerror.Newf("%d of %d properties failed", rep.Failed(), len(rep.Results)).
			WithCode(coreerror.CodeMismatch).
			WithOperation("check")
	}
	return nil
}

func saveRun(ctx context.Context, path string, rep *diffcheck.Report) error {
	store, err := corpus.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.SaveReport(ctx, rep); err != nil {
		return err
	}
	logger.Info("run stored", log.Fields{"run_id": rep.RunID, "corpus": path})
	return nil
}
