// Code generated by ent, DO NOT EDIT.

package tokenusage

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the tokenusage type in the database.
	Label = "token_usage"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "usage_id"
	// FieldTaskID holds the string denoting the task_id field in the database.
	FieldTaskID = "task_id"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldModel holds the string denoting the model field in the database.
	FieldModel = "model"
	// FieldInputTokens holds the string denoting the input_tokens field in the database.
	FieldInputTokens = "input_tokens"
	// FieldOutputTokens holds the string denoting the output_tokens field in the database.
	FieldOutputTokens = "output_tokens"
	// FieldEstimatedCostUsd holds the string denoting the estimated_cost_usd field in the database.
	FieldEstimatedCostUsd = "estimated_cost_usd"
	// FieldCallType holds the string denoting the call_type field in the database.
	FieldCallType = "call_type"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the tokenusage in the database.
	Table = "token_usage"
)

// Columns holds all SQL columns for tokenusage fields.
var Columns = []string{
	FieldID,
	FieldTaskID,
	FieldAgentID,
	FieldProjectID,
	FieldModel,
	FieldInputTokens,
	FieldOutputTokens,
	FieldEstimatedCostUsd,
	FieldCallType,
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
	// DefaultInputTokens holds the default value on creation for the "input_tokens" field.
	DefaultInputTokens int
	// InputTokensValidator is a validator for the "input_tokens" field. It is called by the builders before save.
	InputTokensValidator func(int) error
	// DefaultOutputTokens holds the default value on creation for the "output_tokens" field.
	DefaultOutputTokens int
	// OutputTokensValidator is a validator for the "output_tokens" field. It is called by the builders before save.
	OutputTokensValidator func(int) error
	// DefaultEstimatedCostUsd holds the default value on creation for the "estimated_cost_usd" field.
	DefaultEstimatedCostUsd float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// CallType defines the type for the "call_type" enum field.
type CallType string

// CallTypeTaskExecution is the default value of the CallType enum.
const DefaultCallType = CallTypeTaskExecution

// CallType values.
const (
	CallTypeTaskExecution CallType = "task_execution"
	CallTypeCodeReview    CallType = "code_review"
	CallTypeCoordination  CallType = "coordination"
	CallTypeOther         CallType = "other"
)

func (ct CallType) String() string {
	return string(ct)
}

// CallTypeValidator is a validator for the "call_type" field enum values. It is called by the builders before save.
func CallTypeValidator(ct CallType) error {
	switch ct {
	case CallTypeTaskExecution, CallTypeCodeReview, CallTypeCoordination, CallTypeOther:
		return nil
	default:
		return fmt.Errorf("tokenusage: invalid enum value for call_type field: %q", ct)
	}
}

// OrderOption defines the ordering options for the TokenUsage queries.
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

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// ByModel orders the results by the model field.
func ByModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModel, opts...).ToFunc()
}

// ByInputTokens orders the results by the input_tokens field.
func ByInputTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInputTokens, opts...).ToFunc()
}

// ByOutputTokens orders the results by the output_tokens field.
func ByOutputTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutputTokens, opts...).ToFunc()
}

// ByEstimatedCostUsd orders the results by the estimated_cost_usd field.
func ByEstimatedCostUsd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstimatedCostUsd, opts...).ToFunc()
}

// ByCallType orders the results by the call_type field.
func ByCallType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCallType, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
