// Package banker provides the core deadlock-handling engine for the railway
// simulator: the resource-allocation ledger and the algorithms that operate
// on it.
//
// # Reading Guide
//
// Start with these three files to understand the engine:
//   - state.go: the State ledger (available, maximum, allocation, need) and its invariants
//   - safety.go: the Banker's safety algorithm (deadlock avoidance)
//   - cycle.go: wait-for-graph cycle detection (deadlock detection)
//
// # Architecture
//
// The engine is a set of pure-ish operations over a single mutable State:
//   - Request (arbiter.go): tentative-allocate / safety-check / commit-or-rollback
//   - BuildWaitForGraph (wfg.go): derive the waiting relation from a State
//   - FindCycle (cycle.go): DFS cycle search over a wait-for graph
//   - CheckpointStore (checkpoint.go): bounded pool of single-use snapshots
//   - Terminate, Preempt (recovery.go): forced-release recovery mutators
//
// Scenario construction lives in banker/scenario; Graphviz export in
// banker/dot. Both are thin collaborators that never mutate a State.
//
// # Concurrency
//
// The engine is single-threaded by design. All operations on a given State
// assume exclusive access: Request's tentative mutation and rollback are not
// atomic with respect to concurrent readers, so a concurrent host must
// serialize every call that shares a State.
package banker
