// Code generated by ent, DO NOT EDIT.

package contextitem

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the contextitem type in the database.
	Label = "context_item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "item_id"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// FieldItemType holds the string denoting the item_type field in the database.
	FieldItemType = "item_type"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldImportanceScore holds the string denoting the importance_score field in the database.
	FieldImportanceScore = "importance_score"
	// FieldTier holds the string denoting the tier field in the database.
	FieldTier = "tier"
	// FieldAccessCount holds the string denoting the access_count field in the database.
	FieldAccessCount = "access_count"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldLastAccessed holds the string denoting the last_accessed field in the database.
	FieldLastAccessed = "last_accessed"
	// EdgeProject holds the string denoting the project edge name in mutations.
	EdgeProject = "project"
	// ProjectFieldID holds the string denoting the ID field of the Project.
	ProjectFieldID = "project_id"
	// Table holds the table name of the contextitem in the database.
	Table = "context_items"
	// ProjectTable is the table that holds the project relation/edge.
	ProjectTable = "context_items"
	// ProjectInverseTable is the table name for the Project entity.
	// It exists in this package in order to avoid circular dependency with the "project" package.
	ProjectInverseTable = "projects"
	// ProjectColumn is the table column denoting the project relation/edge.
	ProjectColumn = "project_id"
)

// Columns holds all SQL columns for contextitem fields.
var Columns = []string{
	FieldID,
	FieldProjectID,
	FieldAgentID,
	FieldItemType,
	FieldContent,
	FieldImportanceScore,
	FieldTier,
	FieldAccessCount,
	FieldCreatedAt,
	FieldLastAccessed,
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
	// DefaultImportanceScore holds the default value on creation for the "importance_score" field.
	DefaultImportanceScore float64
	// DefaultAccessCount holds the default value on creation for the "access_count" field.
	DefaultAccessCount int
	// AccessCountValidator is a validator for the "access_count" field. It is called by the builders before save.
	AccessCountValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultLastAccessed holds the default value on creation for the "last_accessed" field.
	DefaultLastAccessed func() time.Time
)

// ItemType defines the type for the "item_type" enum field.
type ItemType string

// ItemType values.
const (
	ItemTypeTASK        ItemType = "TASK"
	ItemTypeCODE        ItemType = "CODE"
	ItemTypeERROR       ItemType = "ERROR"
	ItemTypeTEST_RESULT ItemType = "TEST_RESULT"
	ItemTypePRD_SECTION ItemType = "PRD_SECTION"
)

func (it ItemType) String() string {
	return string(it)
}

// ItemTypeValidator is a validator for the "item_type" field enum values. It is called by the builders before save.
func ItemTypeValidator(it ItemType) error {
	switch it {
	case ItemTypeTASK, ItemTypeCODE, ItemTypeERROR, ItemTypeTEST_RESULT, ItemTypePRD_SECTION:
		return nil
	default:
		return fmt.Errorf("contextitem: invalid enum value for item_type field: %q", it)
	}
}

// Tier defines the type for the "tier" enum field.
type Tier string

// TierWARM is the default value of the Tier enum.
const DefaultTier = TierWARM

// Tier values.
const (
	TierHOT  Tier = "HOT"
	TierWARM Tier = "WARM"
	TierCOLD Tier = "COLD"
)

func (t Tier) String() string {
	return string(t)
}

// TierValidator is a validator for the "tier" field enum values. It is called by the builders before save.
func TierValidator(t Tier) error {
	switch t {
	case TierHOT, TierWARM, TierCOLD:
		return nil
	default:
		return fmt.Errorf("contextitem: invalid enum value for tier field: %q", t)
	}
}

// OrderOption defines the ordering options for the ContextItem queries.
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

// ByItemType orders the results by the item_type field.
func ByItemType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemType, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByImportanceScore orders the results by the importance_score field.
func ByImportanceScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImportanceScore, opts...).ToFunc()
}

// ByTier orders the results by the tier field.
func ByTier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTier, opts...).ToFunc()
}

// ByAccessCount orders the results by the access_count field.
func ByAccessCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccessCount, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByLastAccessed orders the results by the last_accessed field.
func ByLastAccessed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastAccessed, opts...).ToFunc()
}

// ByProjectField orders the results by project field.
func ByProjectField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProjectStep(), sql.OrderByField(field, opts...))
	}
}
func newProjectStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProjectInverseTable, ProjectFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
	)
}
