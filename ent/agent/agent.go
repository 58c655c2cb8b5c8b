// Code generated by ent, DO NOT EDIT.

package agent

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the agent type in the database.
	Label = "agent"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "agent_id"
	// FieldAgentType holds the string denoting the agent_type field in the database.
	FieldAgentType = "agent_type"
	// FieldMaturity holds the string denoting the maturity field in the database.
	FieldMaturity = "maturity"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldMetrics holds the string denoting the metrics field in the database.
	FieldMetrics = "metrics"
	// FieldMaturityScore holds the string denoting the maturity_score field in the database.
	FieldMaturityScore = "maturity_score"
	// FieldCompletedCount holds the string denoting the completed_count field in the database.
	FieldCompletedCount = "completed_count"
	// FieldLastAssessedAt holds the string denoting the last_assessed_at field in the database.
	FieldLastAssessedAt = "last_assessed_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the agent in the database.
	Table = "agents"
)

// Columns holds all SQL columns for agent fields.
var Columns = []string{
	FieldID,
	FieldAgentType,
	FieldMaturity,
	FieldStatus,
	FieldMetrics,
	FieldMaturityScore,
	FieldCompletedCount,
	FieldLastAssessedAt,
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
	// DefaultMaturityScore holds the default value on creation for the "maturity_score" field.
	DefaultMaturityScore float64
	// DefaultCompletedCount holds the default value on creation for the "completed_count" field.
	DefaultCompletedCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// AgentType defines the type for the "agent_type" enum field.
type AgentType string

// AgentType values.
const (
	AgentTypeLead     AgentType = "lead"
	AgentTypeBackend  AgentType = "backend"
	AgentTypeFrontend AgentType = "frontend"
	AgentTypeTest     AgentType = "test"
	AgentTypeReview   AgentType = "review"
)

func (at AgentType) String() string {
	return string(at)
}

// AgentTypeValidator is a validator for the "agent_type" field enum values. It is called by the builders before save.
func AgentTypeValidator(at AgentType) error {
	switch at {
	case AgentTypeLead, AgentTypeBackend, AgentTypeFrontend, AgentTypeTest, AgentTypeReview:
		return nil
	default:
		return fmt.Errorf("agent: invalid enum value for agent_type field: %q", at)
	}
}

// Maturity defines the type for the "maturity" enum field.
type Maturity string

// MaturityD1 is the default value of the Maturity enum.
const DefaultMaturity = MaturityD1

// Maturity values.
const (
	MaturityD1 Maturity = "D1"
	MaturityD2 Maturity = "D2"
	MaturityD3 Maturity = "D3"
	MaturityD4 Maturity = "D4"
)

func (m Maturity) String() string {
	return string(m)
}

// MaturityValidator is a validator for the "maturity" field enum values. It is called by the builders before save.
func MaturityValidator(m Maturity) error {
	switch m {
	case MaturityD1, MaturityD2, MaturityD3, MaturityD4:
		return nil
	default:
		return fmt.Errorf("agent: invalid enum value for maturity field: %q", m)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusIdle is the default value of the Status enum.
const DefaultStatus = StatusIdle

// Status values.
const (
	StatusIdle    Status = "idle"
	StatusWorking Status = "working"
	StatusBlocked Status = "blocked"
	StatusOffline Status = "offline"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusIdle, StatusWorking, StatusBlocked, StatusOffline:
		return nil
	default:
		return fmt.Errorf("agent: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Agent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAgentType orders the results by the agent_type field.
func ByAgentType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentType, opts...).ToFunc()
}

// ByMaturity orders the results by the maturity field.
func ByMaturity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaturity, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByMetrics orders the results by the metrics field.
func ByMetrics(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMetrics, opts...).ToFunc()
}

// ByMaturityScore orders the results by the maturity_score field.
func ByMaturityScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaturityScore, opts...).ToFunc()
}

// ByCompletedCount orders the results by the completed_count field.
func ByCompletedCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedCount, opts...).ToFunc()
}

// ByLastAssessedAt orders the results by the last_assessed_at field.
func ByLastAssessedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastAssessedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
