// Code generated by ent, DO NOT EDIT.

package correctionattempt

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the correctionattempt type in the database.
	Label = "correction_attempt"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "attempt_id"
	// FieldTaskID holds the string denoting the task_id field in the database.
	FieldTaskID = "task_id"
	// FieldAttemptNumber holds the string denoting the attempt_number field in the database.
	FieldAttemptNumber = "attempt_number"
	// FieldErrorAnalysis holds the string denoting the error_analysis field in the database.
	FieldErrorAnalysis = "error_analysis"
	// FieldFixDescription holds the string denoting the fix_description field in the database.
	FieldFixDescription = "fix_description"
	// FieldCodeChanges holds the string denoting the code_changes field in the database.
	FieldCodeChanges = "code_changes"
	// FieldTestResultID holds the string denoting the test_result_id field in the database.
	FieldTestResultID = "test_result_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeTask holds the string denoting the task edge name in mutations.
	EdgeTask = "task"
	// TaskFieldID holds the string denoting the ID field of the Task.
	TaskFieldID = "task_id"
	// Table holds the table name of the correctionattempt in the database.
	Table = "correction_attempts"
	// TaskTable is the table that holds the task relation/edge.
	TaskTable = "correction_attempts"
	// TaskInverseTable is the table name for the Task entity.
	// It exists in this package in order to avoid circular dependency with the "task" package.
	TaskInverseTable = "tasks"
	// TaskColumn is the table column denoting the task relation/edge.
	TaskColumn = "task_id"
)

// Columns holds all SQL columns for correctionattempt fields.
var Columns = []string{
	FieldID,
	FieldTaskID,
	FieldAttemptNumber,
	FieldErrorAnalysis,
	FieldFixDescription,
	FieldCodeChanges,
	FieldTestResultID,
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
	// AttemptNumberValidator is a validator for the "attempt_number" field. It is called by the builders before save.
	AttemptNumberValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the CorrectionAttempt queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTaskID orders the results by the task_id field.
func ByTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskID, opts...).ToFunc()
}

// ByAttemptNumber orders the results by the attempt_number field.
func ByAttemptNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttemptNumber, opts...).ToFunc()
}

// ByErrorAnalysis orders the results by the error_analysis field.
func ByErrorAnalysis(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorAnalysis, opts...).ToFunc()
}

// ByFixDescription orders the results by the fix_description field.
func ByFixDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFixDescription, opts...).ToFunc()
}

// ByCodeChanges orders the results by the code_changes field.
func ByCodeChanges(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCodeChanges, opts...).ToFunc()
}

// ByTestResultID orders the results by the test_result_id field.
func ByTestResultID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTestResultID, opts...).ToFunc()
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
