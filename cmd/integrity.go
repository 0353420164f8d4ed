package cmd

import (
	"fmt"

	"catalog-sync/feature/integrity/checks"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity [check]",
	Short: "Probe the backends the sync engines depend on",
	Long: `Checks the report bucket, run history, DataZone glossary and admin profile, and Collibra.

Examples:
  # Run every check
  integrity

  # Create the report bucket when it is missing
  integrity storage --fix`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		rt, err := loadRuntime(ctx)
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		svc := rt.integrityService()
		if len(args) == 1 {
			res, err := svc.Check(ctx, args[0], fixFlag)
			if err != nil {
				return fmt.Errorf("%w: %s", err, args[0])
			}
			if err := writeJSON(cmd.OutOrStdout(), res); err != nil {
				return err
			}
			return unhealthy(res)
		}

		report := svc.CheckAll(ctx, fixFlag)
		if err := writeJSON(cmd.OutOrStdout(), report); err != nil {
			return err
		}
		if !report.Healthy {
			return fmt.Errorf("integrity checks failed")
		}
		rt.logger.Info("All integrity checks passed", zap.Int("checks", len(report.Checks)))
		return nil
	},
}

func unhealthy(res checks.Result) error {
	if res.Healthy() {
		return nil
	}
	return fmt.Errorf("check %s: %s", res.Status, res.Detail)
}

func init() {
	integrityCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create a missing bucket or glossary")
	RootCmd.AddCommand(integrityCmd)
}
