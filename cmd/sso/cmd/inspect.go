package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/sso/internal/report"
	"github.com/msto63/sso/pkg/sso"
)

var (
	inspectReserve int
	inspectShrink  bool
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <text>",
	Short: "Show the representation of a string",
	Long: `Builds a string from text and shows its size, capacity, variant and
terminator. --reserve is applied before --shrink.

Examples:
  sso inspect "hello"
  sso inspect --reserve 100 "hello"
  sso inspect --reserve 100 --shrink "hello"`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().IntVar(&inspectReserve, "reserve", 0, "reserve capacity before inspecting")
	inspectCmd.Flags().BoolVar(&inspectShrink, "shrink", false, "shrink to fit before inspecting")
}

func runInspect(cmd *cobra.Command, args []string) error {
	s := sso.FromString(args[0])
	if inspectReserve > 0 {
		s.Reserve(inspectReserve)
	}
	if inspectShrink {
		s.ShrinkToFit()
	}
	return report.Representation(cmd.OutOrStdout(), report.Inspect(s))
}
