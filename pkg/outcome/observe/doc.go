// Package observe decorates Result-returning operations with the two
// post-hoc observers: rollback marking and event emission.
//
// Both are plain higher-order wrappers. A wrapper takes the real operation
// as a value and returns a new one that invokes it, inspects the completed
// Result exactly once, performs its side effect and hands the unmodified
// Result back. The operation's own code never learns the observers exist.
//
// Ordering within one invocation is fixed: the operation runs to
// completion, the rollback observer inspects the Result, the event
// observer inspects it, the caller receives it. Wrap composes the two in
// that order; applying them manually, RollbackOnFailure goes innermost.
//
// The ambient unit-of-work is an explicit handle, either passed to
// RollbackTo or carried as a context value via WithUnitOfWork. Opening and
// concluding the scope stays with the environment that owns it.
package observe
