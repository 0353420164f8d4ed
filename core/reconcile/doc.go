// Package reconcile records the mutations a sync engine decides on and executes them.
//
// Engines compute the desired state of a Catalog-B entity, describe the write as an
// Action and hand it to a Recorder. Outside dry-run the Recorder applies the action
// immediately through a Mutator; in dry-run it only records it. Either way the resulting
// Plan (actions plus summary) is returned to the caller and archived with the run report.
//
// # Usage
//
//	rec := reconcile.NewRecorder(reconcile.MutatorFunc(apply), reconcile.Options{DryRun: true})
//	err := rec.Execute(ctx, reconcile.Action{Type: reconcile.ActionCreateRevision, Key: assetID})
//	plan := rec.Plan()
//
// A dry-run plan can be replayed later with ApplyPlan.
package reconcile
