package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/msto63/sso/internal/diffcheck"
	coreerror "github.com/msto63/sso/pkg/core/error"
)

var replayMaxLength int

var replayCmd = &cobra.Command{
	Use:   "replay <property> <case-seed>",
	Short: "Rerun one case of a property",
	Long: `Reruns a single case deterministically. The property name and case
seed are printed by check and stored in the corpus. Pass the same
--max-length the run used.

Examples:
  sso replay substr 1234567890 --max-length 96`,
	Args: cobra.ExactArgs(2),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)

	replayCmd.Flags().IntVar(&replayMaxLength, "max-length", 0, "max length of the original run")
}

func runReplay(cmd *cobra.Command, args []string) error {
	seed, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		return coreerror.Wrap(err, "invalid case seed").
			WithCode(coreerror.CodeInvalidInput).
			WithOperation("replay").
			WithDetail("seed", args[1])
	}

	maxLength := replayMaxLength
	if maxLength == 0 {
		maxLength = cfg.GetInt("check.max_length")
	}

	timer := logger.StartTimer("replay").WithField("property", args[0])
	if err := diffcheck.Replay(args[0], seed, maxLength); err != nil {
		timer.StopWithError(err)
		return err
	}
	timer.Stop()

	fmt.Fprintf(cmd.OutOrStdout(), "%s: case %d passed\n", args[0], seed)
	return nil
}
