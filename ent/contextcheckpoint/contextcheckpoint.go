// Code generated by ent, DO NOT EDIT.

package contextcheckpoint

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the contextcheckpoint type in the database.
	Label = "context_checkpoint"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "checkpoint_id"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// FieldItems holds the string denoting the items field in the database.
	FieldItems = "items"
	// FieldItemsCount holds the string denoting the items_count field in the database.
	FieldItemsCount = "items_count"
	// FieldItemsArchived holds the string denoting the items_archived field in the database.
	FieldItemsArchived = "items_archived"
	// FieldHotItemsRetained holds the string denoting the hot_items_retained field in the database.
	FieldHotItemsRetained = "hot_items_retained"
	// FieldTokenCount holds the string denoting the token_count field in the database.
	FieldTokenCount = "token_count"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the contextcheckpoint in the database.
	Table = "context_checkpoints"
)

// Columns holds all SQL columns for contextcheckpoint fields.
var Columns = []string{
	FieldID,
	FieldProjectID,
	FieldAgentID,
	FieldItems,
	FieldItemsCount,
	FieldItemsArchived,
	FieldHotItemsRetained,
	FieldTokenCount,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the ContextCheckpoint queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// ByAgentID orders the results by the agent_id field.
func ByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentID, opts...).ToFunc()
}

// ByItemsCount orders the results by the items_count field.
func ByItemsCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemsCount, opts...).ToFunc()
}

// ByItemsArchived orders the results by the items_archived field.
func ByItemsArchived(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemsArchived, opts...).ToFunc()
}

// ByHotItemsRetained orders the results by the hot_items_retained field.
func ByHotItemsRetained(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHotItemsRetained, opts...).ToFunc()
}

// ByTokenCount orders the results by the token_count field.
func ByTokenCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokenCount, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
