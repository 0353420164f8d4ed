package cmd

import (
	"fmt"
	"io"
	"os"

	"catalog-sync/feature/subscription"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var subscriptionEvent string

// subscriptionsCmd groups the subscription relay commands.
var subscriptionsCmd = &cobra.Command{
	Use:   "subscriptions",
	Short: "Relay subscriptions between DataZone and Collibra",
	Long: `Relay subscriptions between DataZone and Collibra.

Examples:
  # Start a Collibra access workflow for a DataZone subscription event
  subscriptions forward --event event.json

  # Read the event from stdin
  cat event.json | subscriptions forward --event -

  # Grant approved Collibra access requests in DataZone
  subscriptions reverse`,
}

var subscriptionsForwardCmd = &cobra.Command{
	Use:   "forward",
	Short: "Handle one DataZone subscription-request-created event",
	RunE:  runSubscriptionsForward,
}

var subscriptionsReverseCmd = &cobra.Command{
	Use:   "reverse",
	Short: "Grant approved Collibra access requests in DataZone",
	RunE:  runSubscriptionsReverse,
}

func init() {
	subscriptionsForwardCmd.Flags().StringVar(&subscriptionEvent, "event", "", "Event file, or - for stdin")
	_ = subscriptionsForwardCmd.MarkFlagRequired("event")

	subscriptionsCmd.AddCommand(subscriptionsForwardCmd, subscriptionsReverseCmd)
	RootCmd.AddCommand(subscriptionsCmd)
}

func readEvent(cmd *cobra.Command, name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	body, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read event: %w", err)
	}
	return body, nil
}

func runSubscriptionsForward(cmd *cobra.Command, args []string) error {
	body, err := readEvent(cmd, subscriptionEvent)
	if err != nil {
		return err
	}
	ev, err := subscription.ParseEvent(body)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	rt, err := loadRuntime(ctx)
	if err != nil {
		return err
	}
	defer rt.logger.Sync()

	result, run, err := rt.subscriptionService().Forward(ctx, ev)
	if err != nil {
		return err
	}
	rt.logger.Info("Subscription forward finished", zap.String("run_id", run.ID), zap.String("status", result.Status))
	return writeJSON(cmd.OutOrStdout(), result)
}

func runSubscriptionsReverse(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	rt, err := loadRuntime(ctx)
	if err != nil {
		return err
	}
	defer rt.logger.Sync()

	report, run, err := rt.subscriptionService().Reverse(ctx)
	if err != nil {
		return err
	}
	rt.logger.Info("Subscription reverse finished",
		zap.String("run_id", run.ID),
		zap.Int("granted", len(report.Granted)),
		zap.Int("rejected", len(report.Rejected)),
	)
	return writeJSON(cmd.OutOrStdout(), report)
}
