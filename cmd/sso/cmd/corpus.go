package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/msto63/sso/internal/corpus"
	"github.com/msto63/sso/internal/report"
	coreerror "github.com/msto63/sso/pkg/core/error"
)

var (
	corpusPath  string
	corpusLimit int
)

var corpusCmd = &cobra.Command{
	Use:   "corpus",
	Short: "Inspect stored check runs",
	Long: `Lists runs stored by check --corpus and the failing cases of a run.

Examples:
  sso corpus runs --limit 10
  sso corpus failures 2c6f0e1a-...`,
}

var corpusRunsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List stored runs, newest first",
	Args:  cobra.NoArgs,
	RunE:  runCorpusRuns,
}

var corpusFailuresCmd = &cobra.Command{
	Use:   "failures <run-id>",
	Short: "Show the failing cases of a run",
	Args:  cobra.ExactArgs(1),
	RunE:  runCorpusFailures,
}

func init() {
	rootCmd.AddCommand(corpusCmd)
	corpusCmd.AddCommand(corpusRunsCmd)
	corpusCmd.AddCommand(corpusFailuresCmd)

	corpusCmd.PersistentFlags().StringVar(&corpusPath, "corpus", "", "SQLite corpus (default: corpus.path)")
	corpusRunsCmd.Flags().IntVar(&corpusLimit, "limit", 20, "maximum number of runs (0 = all)")
}

func openCorpus() (*corpus.Store, error) {
	path := corpusPath
	if path == "" {
		path = cfg.GetString("corpus.path")
	}
	if path == "" {
		return nil, coreerror.New("no corpus configured; pass --corpus or set corpus.path").
			WithCode(coreerror.CodeInvalidConfig).
			WithOperation("corpus")
	}
	return corpus.Open(path)
}

func runCorpusRuns(cmd *cobra.Command, args []string) error {
	store, err := openCorpus()
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.Runs(context.Background(), corpusLimit)
	if err != nil {
		return err
	}
	return report.Runs(cmd.OutOrStdout(), runs)
}

func runCorpusFailures(cmd *cobra.Command, args []string) error {
	store, err := openCorpus()
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	run, err := store.Run(ctx, args[0])
	if err != nil {
		return err
	}
	failures, err := store.Failures(ctx, args[0])
	if err != nil {
		return err
	}
	return report.Failures(cmd.OutOrStdout(), run, failures)
}
