// Code generated by ent, DO NOT EDIT.

package task

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the task type in the database.
	Label = "task"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "task_id"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldIssueID holds the string denoting the issue_id field in the database.
	FieldIssueID = "issue_id"
	// FieldTaskNumber holds the string denoting the task_number field in the database.
	FieldTaskNumber = "task_number"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldAssignedTo holds the string denoting the assigned_to field in the database.
	FieldAssignedTo = "assigned_to"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldQualityGateStatus holds the string denoting the quality_gate_status field in the database.
	FieldQualityGateStatus = "quality_gate_status"
	// FieldQualityGateFailures holds the string denoting the quality_gate_failures field in the database.
	FieldQualityGateFailures = "quality_gate_failures"
	// FieldRequiresHumanApproval holds the string denoting the requires_human_approval field in the database.
	FieldRequiresHumanApproval = "requires_human_approval"
	// FieldCommitSha holds the string denoting the commit_sha field in the database.
	FieldCommitSha = "commit_sha"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// EdgeProject holds the string denoting the project edge name in mutations.
	EdgeProject = "project"
	// EdgeIssue holds the string denoting the issue edge name in mutations.
	EdgeIssue = "issue"
	// EdgeTestResults holds the string denoting the test_results edge name in mutations.
	EdgeTestResults = "test_results"
	// EdgeCorrectionAttempts holds the string denoting the correction_attempts edge name in mutations.
	EdgeCorrectionAttempts = "correction_attempts"
	// ProjectFieldID holds the string denoting the ID field of the Project.
	ProjectFieldID = "project_id"
	// IssueFieldID holds the string denoting the ID field of the Issue.
	IssueFieldID = "issue_id"
	// TestResultFieldID holds the string denoting the ID field of the TestResult.
	TestResultFieldID = "result_id"
	// CorrectionAttemptFieldID holds the string denoting the ID field of the CorrectionAttempt.
	CorrectionAttemptFieldID = "attempt_id"
	// Table holds the table name of the task in the database.
	Table = "tasks"
	// ProjectTable is the table that holds the project relation/edge.
	ProjectTable = "tasks"
	// ProjectInverseTable is the table name for the Project entity.
	// It exists in this package in order to avoid circular dependency with the "project" package.
	ProjectInverseTable = "projects"
	// ProjectColumn is the table column denoting the project relation/edge.
	ProjectColumn = "project_id"
	// IssueTable is the table that holds the issue relation/edge.
	IssueTable = "tasks"
	// IssueInverseTable is the table name for the Issue entity.
	// It exists in this package in order to avoid circular dependency with the "issue" package.
	IssueInverseTable = "issues"
	// IssueColumn is the table column denoting the issue relation/edge.
	IssueColumn = "issue_id"
	// TestResultsTable is the table that holds the test_results relation/edge.
	TestResultsTable = "test_results"
	// TestResultsInverseTable is the table name for the TestResult entity.
	// It exists in this package in order to avoid circular dependency with the "testresult" package.
	TestResultsInverseTable = "test_results"
	// TestResultsColumn is the table column denoting the test_results relation/edge.
	TestResultsColumn = "task_id"
	// CorrectionAttemptsTable is the table that holds the correction_attempts relation/edge.
	CorrectionAttemptsTable = "correction_attempts"
	// CorrectionAttemptsInverseTable is the table name for the CorrectionAttempt entity.
	// It exists in this package in order to avoid circular dependency with the "correctionattempt" package.
	CorrectionAttemptsInverseTable = "correction_attempts"
	// CorrectionAttemptsColumn is the table column denoting the correction_attempts relation/edge.
	CorrectionAttemptsColumn = "task_id"
)

// Columns holds all SQL columns for task fields.
var Columns = []string{
	FieldID,
	FieldProjectID,
	FieldIssueID,
	FieldTaskNumber,
	FieldTitle,
	FieldDescription,
	FieldStatus,
	FieldAssignedTo,
	FieldPriority,
	FieldQualityGateStatus,
	FieldQualityGateFailures,
	FieldRequiresHumanApproval,
	FieldCommitSha,
	FieldCreatedAt,
	FieldStartedAt,
	FieldCompletedAt,
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
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// DefaultPriority holds the default value on creation for the "priority" field.
	DefaultPriority int
	// PriorityValidator is a validator for the "priority" field. It is called by the builders before save.
	PriorityValidator func(int) error
	// DefaultRequiresHumanApproval holds the default value on creation for the "requires_human_approval" field.
	DefaultRequiresHumanApproval bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending    Status = "pending"
	StatusAssigned   Status = "assigned"
	StatusInProgress Status = "in_progress"
	StatusBlocked    Status = "blocked"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusAssigned, StatusInProgress, StatusBlocked, StatusCompleted, StatusFailed:
		return nil
	default:
		return fmt.Errorf("task: invalid enum value for status field: %q", s)
	}
}

// QualityGateStatus defines the type for the "quality_gate_status" enum field.
type QualityGateStatus string

// QualityGateStatusPending is the default value of the QualityGateStatus enum.
const DefaultQualityGateStatus = QualityGateStatusPending

// QualityGateStatus values.
const (
	QualityGateStatusPending QualityGateStatus = "pending"
	QualityGateStatusRunning QualityGateStatus = "running"
	QualityGateStatusPassed  QualityGateStatus = "passed"
	QualityGateStatusFailed  QualityGateStatus = "failed"
)

func (qgs QualityGateStatus) String() string {
	return string(qgs)
}

// QualityGateStatusValidator is a validator for the "quality_gate_status" field enum values. It is called by the builders before save.
func QualityGateStatusValidator(qgs QualityGateStatus) error {
	switch qgs {
	case QualityGateStatusPending, QualityGateStatusRunning, QualityGateStatusPassed, QualityGateStatusFailed:
		return nil
	default:
		return fmt.Errorf("task: invalid enum value for quality_gate_status field: %q", qgs)
	}
}

// OrderOption defines the ordering options for the Task queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// ByIssueID orders the results by the issue_id field.
func ByIssueID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIssueID, opts...).ToFunc()
}

// ByTaskNumber orders the results by the task_number field.
func ByTaskNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskNumber, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByAssignedTo orders the results by the assigned_to field.
func ByAssignedTo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssignedTo, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByQualityGateStatus orders the results by the quality_gate_status field.
func ByQualityGateStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQualityGateStatus, opts...).ToFunc()
}

// ByQualityGateFailures orders the results by the quality_gate_failures field.
func ByQualityGateFailures(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQualityGateFailures, opts...).ToFunc()
}

// ByRequiresHumanApproval orders the results by the requires_human_approval field.
func ByRequiresHumanApproval(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequiresHumanApproval, opts...).ToFunc()
}

// ByCommitSha orders the results by the commit_sha field.
func ByCommitSha(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommitSha, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByProjectField orders the results by project field.
func ByProjectField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProjectStep(), sql.OrderByField(field, opts...))
	}
}

// ByIssueField orders the results by issue field.
func ByIssueField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newIssueStep(), sql.OrderByField(field, opts...))
	}
}

// ByTestResultsCount orders the results by test_results count.
func ByTestResultsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTestResultsStep(), opts...)
	}
}

// ByTestResults orders the results by test_results terms.
func ByTestResults(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTestResultsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByCorrectionAttemptsCount orders the results by correction_attempts count.
func ByCorrectionAttemptsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCorrectionAttemptsStep(), opts...)
	}
}

// ByCorrectionAttempts orders the results by correction_attempts terms.
func ByCorrectionAttempts(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCorrectionAttemptsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newProjectStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProjectInverseTable, ProjectFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
	)
}
func newIssueStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(IssueInverseTable, IssueFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, IssueTable, IssueColumn),
	)
}
func newTestResultsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TestResultsInverseTable, TestResultFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TestResultsTable, TestResultsColumn),
	)
}
func newCorrectionAttemptsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CorrectionAttemptsInverseTable, CorrectionAttemptFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CorrectionAttemptsTable, CorrectionAttemptsColumn),
	)
}
