// Code generated by ent, DO NOT EDIT.

package evidence

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the evidence type in the database.
	Label = "evidence"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "evidence_id"
	// FieldTaskID holds the string denoting the task_id field in the database.
	FieldTaskID = "task_id"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// FieldTaskDescription holds the string denoting the task_description field in the database.
	FieldTaskDescription = "task_description"
	// FieldVerified holds the string denoting the verified field in the database.
	FieldVerified = "verified"
	// FieldTestResult holds the string denoting the test_result field in the database.
	FieldTestResult = "test_result"
	// FieldSkipViolations holds the string denoting the skip_violations field in the database.
	FieldSkipViolations = "skip_violations"
	// FieldCoverage holds the string denoting the coverage field in the database.
	FieldCoverage = "coverage"
	// FieldQualityMetrics holds the string denoting the quality_metrics field in the database.
	FieldQualityMetrics = "quality_metrics"
	// FieldVerificationErrors holds the string denoting the verification_errors field in the database.
	FieldVerificationErrors = "verification_errors"
	// FieldLanguage holds the string denoting the language field in the database.
	FieldLanguage = "language"
	// FieldFramework holds the string denoting the framework field in the database.
	FieldFramework = "framework"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the evidence in the database.
	Table = "evidence"
)

// Columns holds all SQL columns for evidence fields.
var Columns = []string{
	FieldID,
	FieldTaskID,
	FieldAgentID,
	FieldTaskDescription,
	FieldVerified,
	FieldTestResult,
	FieldSkipViolations,
	FieldCoverage,
	FieldQualityMetrics,
	FieldVerificationErrors,
	FieldLanguage,
	FieldFramework,
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
	// DefaultVerified holds the default value on creation for the "verified" field.
	DefaultVerified bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Evidence queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTaskID orders the results by the task_id field.
func ByTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskID, opts...).ToFunc()
}

// ByAgentID orders the results by the agent_id field.
func ByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentID, opts...).ToFunc()
}

// ByTaskDescription orders the results by the task_description field.
func ByTaskDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskDescription, opts...).ToFunc()
}

// ByVerified orders the results by the verified field.
func ByVerified(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVerified, opts...).ToFunc()
}

// ByCoverage orders the results by the coverage field.
func ByCoverage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCoverage, opts...).ToFunc()
}

// ByLanguage orders the results by the language field.
func ByLanguage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLanguage, opts...).ToFunc()
}

// ByFramework orders the results by the framework field.
func ByFramework(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFramework, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
