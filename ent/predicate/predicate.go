// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Agent is the predicate function for agent builders.
type Agent func(*sql.Selector)

// AuditLog is the predicate function for auditlog builders.
type AuditLog func(*sql.Selector)

// Blocker is the predicate function for blocker builders.
type Blocker func(*sql.Selector)

// ContextCheckpoint is the predicate function for contextcheckpoint builders.
type ContextCheckpoint func(*sql.Selector)

// ContextItem is the predicate function for contextitem builders.
type ContextItem func(*sql.Selector)

// CorrectionAttempt is the predicate function for correctionattempt builders.
type CorrectionAttempt func(*sql.Selector)

// Evidence is the predicate function for evidence builders.
type Evidence func(*sql.Selector)

// Issue is the predicate function for issue builders.
type Issue func(*sql.Selector)

// Project is the predicate function for project builders.
type Project func(*sql.Selector)

// ProjectAgent is the predicate function for projectagent builders.
type ProjectAgent func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)

// TestResult is the predicate function for testresult builders.
type TestResult func(*sql.Selector)

// TokenUsage is the predicate function for tokenusage builders.
type TokenUsage func(*sql.Selector)
