// Code generated by ent, DO NOT EDIT.

package testresult

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the testresult type in the database.
	Label = "test_result"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "result_id"
	// FieldTaskID holds the string denoting the task_id field in the database.
	FieldTaskID = "task_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldPassed holds the string denoting the passed field in the database.
	FieldPassed = "passed"
	// FieldFailed holds the string denoting the failed field in the database.
	FieldFailed = "failed"
	// FieldErrors holds the string denoting the errors field in the database.
	FieldErrors = "errors"
	// FieldSkipped holds the string denoting the skipped field in the database.
	FieldSkipped = "skipped"
	// FieldDurationSeconds holds the string denoting the duration_seconds field in the database.
	FieldDurationSeconds = "duration_seconds"
	// FieldOutput holds the string denoting the output field in the database.
	FieldOutput = "output"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeTask holds the string denoting the task edge name in mutations.
	EdgeTask = "task"
	// TaskFieldID holds the string denoting the ID field of the Task.
	TaskFieldID = "task_id"
	// Table holds the table name of the testresult in the database.
	Table = "test_results"
	// TaskTable is the table that holds the task relation/edge.
	TaskTable = "test_results"
	// TaskInverseTable is the table name for the Task entity.
	// It exists in this package in order to avoid circular dependency with the "task" package.
	TaskInverseTable = "tasks"
	// TaskColumn is the table column denoting the task relation/edge.
	TaskColumn = "task_id"
)

// Columns holds all SQL columns for testresult fields.
var Columns = []string{
	FieldID,
	FieldTaskID,
	FieldStatus,
	FieldPassed,
	FieldFailed,
	FieldErrors,
	FieldSkipped,
	FieldDurationSeconds,
	FieldOutput,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultPassed holds the default value on creation for the "passed" field.
	DefaultPassed int
	// PassedValidator is a validator for the "passed" field. It is called by the builders before save.
	PassedValidator func(int) error
	// DefaultFailed holds the default value on creation for the "failed" field.
	DefaultFailed int
	// FailedValidator is a validator for the "failed" field. It is called by the builders before save.
	FailedValidator func(int) error
	// DefaultErrors holds the default value on creation for the "errors" field.
	DefaultErrors int
	// ErrorsValidator is a validator for the "errors" field. It is called by the builders before save.
	ErrorsValidator func(int) error
	// DefaultSkipped holds the default value on creation for the "skipped" field.
	DefaultSkipped int
	// SkippedValidator is a validator for the "skipped" field. It is called by the builders before save.
	SkippedValidator func(int) error
	// DefaultDurationSeconds holds the default value on creation for the "duration_seconds" field.
	DefaultDurationSeconds float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// Status values.
const (
	StatusPassed  Status = "passed"
	StatusFailed  Status = "failed"
	StatusError   Status = "error"
	StatusTimeout Status = "timeout"
	StatusNoTests Status = "no_tests"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPassed, StatusFailed, StatusError, StatusTimeout, StatusNoTests:
		return nil
	default:
		return fmt.Errorf("testresult: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the TestResult queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTaskID orders the results by the task_id field.
func ByTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByPassed orders the results by the passed field.
func ByPassed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPassed, opts...).ToFunc()
}

// ByFailed orders the results by the failed field.
func ByFailed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailed, opts...).ToFunc()
}

// ByErrors orders the results by the errors field.
func ByErrors(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrors, opts...).ToFunc()
}

// BySkipped orders the results by the skipped field.
func BySkipped(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkipped, opts...).ToFunc()
}

// ByDurationSeconds orders the results by the duration_seconds field.
func ByDurationSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationSeconds, opts...).ToFunc()
}

// ByOutput orders the results by the output field.
func ByOutput(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutput, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByTaskField orders the results by task field.
func ByTaskField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTaskStep(), sql.OrderByField(field, opts...))
	}
}
func newTaskStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TaskInverseTable, TaskFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TaskTable, TaskColumn),
	)
}
