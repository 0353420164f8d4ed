// Package runs exposes the recorded run history and archived run reports to operators.
package runs
