package cmd

import (
	"catalog-sync/core/payload"

	"github.com/spf13/cobra"
	"github.com/tidwall/sjson"
	"go.uber.org/zap"
)

var (
	// Flags for the sync commands
	syncCursor   string
	syncDryRun   bool
	projectToken string
)

// syncCmd is the parent command for one-shot engine invocations.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run a single sync engine invocation",
	Long: `Run one invocation of a sync engine and print the resulting payload.

The printed payload carries the cursor for the next invocation.

Examples:
  # Push table documentation from the start
  sync assets

  # Resume after a cursor, compute the revisions without writing them
  sync assets --cursor 0190f1a2-... --dry-run

  # Push glossary terms, then propagate the term hierarchy
  sync glossary
  sync hierarchy

  # Next page of DataZone projects
  sync projects --token AAEAA...`,
}

var syncAssetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Push Collibra table documentation to DataZone assets",
	RunE:  runSyncAssets,
}

var syncGlossaryCmd = &cobra.Command{
	Use:   "glossary",
	Short: "Push Collibra business terms to the DataZone glossary",
	RunE:  runSyncGlossary,
}

var syncHierarchyCmd = &cobra.Command{
	Use:   "hierarchy",
	Short: "Propagate the Collibra term hierarchy to DataZone",
	RunE:  runSyncHierarchy,
}

var syncProjectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Mirror DataZone projects and members into Collibra",
	RunE:  runSyncProjects,
}

func init() {
	syncAssetsCmd.Flags().StringVar(&syncCursor, "cursor", "", "Resume after this Collibra asset id")
	syncAssetsCmd.Flags().BoolVar(&syncDryRun, "dry-run", false, "Compute revisions without writing them")
	syncGlossaryCmd.Flags().StringVar(&syncCursor, "cursor", "", "Resume after this Collibra term id")
	syncProjectsCmd.Flags().StringVar(&projectToken, "token", "", "DataZone project page token")

	syncCmd.AddCommand(syncAssetsCmd, syncGlossaryCmd, syncHierarchyCmd, syncProjectsCmd)
	RootCmd.AddCommand(syncCmd)
}

// optional turns an empty flag into a nil cursor.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func runSyncAssets(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	rt, err := loadRuntime(ctx)
	if err != nil {
		return err
	}
	defer rt.logger.Sync()

	next, plan, run, err := rt.assetService().Sync(ctx, optional(syncCursor), syncDryRun)
	if err != nil {
		return err
	}
	rt.logger.Info("Asset sync finished", zap.String("run_id", run.ID), zap.Int("planned", len(plan.Actions)))

	out, err := payload.WithCursor(nil, payload.AssetCursor, next)
	if err == nil && syncDryRun {
		out, err = sjson.SetBytes(out, "plan", plan)
	}
	if err != nil {
		return err
	}
	return writeRaw(cmd.OutOrStdout(), out)
}

func runSyncGlossary(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	rt, err := loadRuntime(ctx)
	if err != nil {
		return err
	}
	defer rt.logger.Sync()

	next, run, err := rt.glossaryService().SyncTerms(ctx, optional(syncCursor))
	if err != nil {
		return err
	}
	rt.logger.Info("Glossary sync finished", zap.String("run_id", run.ID))

	out, err := payload.WithCursor(nil, payload.GlossaryTermCursor, next)
	if err != nil {
		return err
	}
	return writeRaw(cmd.OutOrStdout(), out)
}

func runSyncHierarchy(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	rt, err := loadRuntime(ctx)
	if err != nil {
		return err
	}
	defer rt.logger.Sync()

	run, err := rt.glossaryService().PropagateHierarchy(ctx)
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), run)
}

func runSyncProjects(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	rt, err := loadRuntime(ctx)
	if err != nil {
		return err
	}
	defer rt.logger.Sync()

	next, run, err := rt.projectService().Sync(ctx, optional(projectToken))
	if err != nil {
		return err
	}
	rt.logger.Info("Project sync finished", zap.String("run_id", run.ID))

	out, err := payload.WithCursor(nil, payload.ProjectToken, next)
	if err != nil {
		return err
	}
	return writeRaw(cmd.OutOrStdout(), out)
}
