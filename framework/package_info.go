// Package framework contains the generic machinery for running an ordered
// suite of named checks against a deployed system.
//
// The model is:
//
// 1. Each check runs inside its own Context, which plays a role similar to
// Go's *testing.T: it accumulates failures, captures debug output, and
// reports progress through a CheckLogger.
//
// 2. A check that fails, or even crashes, never stops the suite; the failure
// is recorded against that check's name and the remaining checks still run.
//
// 3. When all checks have run, the aggregate Results decide the process exit
// code.
//
// Everything specific to the service being validated lives in the checks
// package, which builds its own scope type on top of Context.
package framework
