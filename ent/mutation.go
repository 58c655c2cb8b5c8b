// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codeframe-hq/codeframe/ent/agent"
	"github.com/codeframe-hq/codeframe/ent/auditlog"
	"github.com/codeframe-hq/codeframe/ent/blocker"
	"github.com/codeframe-hq/codeframe/ent/contextcheckpoint"
	"github.com/codeframe-hq/codeframe/ent/contextitem"
	"github.com/codeframe-hq/codeframe/ent/correctionattempt"
	"github.com/codeframe-hq/codeframe/ent/evidence"
	"github.com/codeframe-hq/codeframe/ent/issue"
	"github.com/codeframe-hq/codeframe/ent/predicate"
	"github.com/codeframe-hq/codeframe/ent/project"
	"github.com/codeframe-hq/codeframe/ent/projectagent"
	"github.com/codeframe-hq/codeframe/ent/task"
	"github.com/codeframe-hq/codeframe/ent/testresult"
	"github.com/codeframe-hq/codeframe/ent/tokenusage"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgent             = "Agent"
	TypeAuditLog          = "AuditLog"
	TypeBlocker           = "Blocker"
	TypeContextCheckpoint = "ContextCheckpoint"
	TypeContextItem       = "ContextItem"
	TypeCorrectionAttempt = "CorrectionAttempt"
	TypeEvidence          = "Evidence"
	TypeIssue             = "Issue"
	TypeProject           = "Project"
	TypeProjectAgent      = "ProjectAgent"
	TypeTask              = "Task"
	TypeTestResult        = "TestResult"
	TypeTokenUsage        = "TokenUsage"
)

// AgentMutation represents an operation that mutates the Agent nodes in the graph.
type AgentMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	agent_type         *agent.AgentType
	maturity           *agent.Maturity
	status             *agent.Status
	metrics            *string
	maturity_score     *float64
	addmaturity_score  *float64
	completed_count    *int
	addcompleted_count *int
	last_assessed_at   *time.Time
	created_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*Agent, error)
	predicates         []predicate.Agent
}

var _ ent.Mutation = (*AgentMutation)(nil)

// agentOption allows management of the mutation configuration using functional options.
type agentOption func(*AgentMutation)

// newAgentMutation creates new mutation for the Agent entity.
func newAgentMutation(c config, op Op, opts ...agentOption) *AgentMutation {
	m := &AgentMutation{
		config:        c,
		op:            op,
		typ:           TypeAgent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentID sets the ID field of the mutation.
func withAgentID(id string) agentOption {
	return func(m *AgentMutation) {
		var (
			err   error
			once  sync.Once
			value *Agent
		)
		m.oldValue = func(ctx context.Context) (*Agent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Agent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgent sets the old Agent of the mutation.
func withAgent(node *Agent) agentOption {
	return func(m *AgentMutation) {
		m.oldValue = func(context.Context) (*Agent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Agent entities.
func (m *AgentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Agent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentType sets the "agent_type" field.
func (m *AgentMutation) SetAgentType(at agent.AgentType) {
	m.agent_type = &at
}

// AgentType returns the value of the "agent_type" field in the mutation.
func (m *AgentMutation) AgentType() (r agent.AgentType, exists bool) {
	v := m.agent_type
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentType returns the old "agent_type" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldAgentType(ctx context.Context) (v agent.AgentType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentType: %w", err)
	}
	return oldValue.AgentType, nil
}

// ResetAgentType resets all changes to the "agent_type" field.
func (m *AgentMutation) ResetAgentType() {
	m.agent_type = nil
}

// SetMaturity sets the "maturity" field.
func (m *AgentMutation) SetMaturity(a agent.Maturity) {
	m.maturity = &a
}

// Maturity returns the value of the "maturity" field in the mutation.
func (m *AgentMutation) Maturity() (r agent.Maturity, exists bool) {
	v := m.maturity
	if v == nil {
		return
	}
	return *v, true
}

// OldMaturity returns the old "maturity" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldMaturity(ctx context.Context) (v agent.Maturity, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaturity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaturity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaturity: %w", err)
	}
	return oldValue.Maturity, nil
}

// ResetMaturity resets all changes to the "maturity" field.
func (m *AgentMutation) ResetMaturity() {
	m.maturity = nil
}

// SetStatus sets the "status" field.
func (m *AgentMutation) SetStatus(a agent.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AgentMutation) Status() (r agent.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldStatus(ctx context.Context) (v agent.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AgentMutation) ResetStatus() {
	m.status = nil
}

// SetMetrics sets the "metrics" field.
func (m *AgentMutation) SetMetrics(s string) {
	m.metrics = &s
}

// Metrics returns the value of the "metrics" field in the mutation.
func (m *AgentMutation) Metrics() (r string, exists bool) {
	v := m.metrics
	if v == nil {
		return
	}
	return *v, true
}

// OldMetrics returns the old "metrics" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldMetrics(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetrics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetrics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetrics: %w", err)
	}
	return oldValue.Metrics, nil
}

// ClearMetrics clears the value of the "metrics" field.
func (m *AgentMutation) ClearMetrics() {
	m.metrics = nil
	m.clearedFields[agent.FieldMetrics] = struct{}{}
}

// MetricsCleared returns if the "metrics" field was cleared in this mutation.
func (m *AgentMutation) MetricsCleared() bool {
	_, ok := m.clearedFields[agent.FieldMetrics]
	return ok
}

// ResetMetrics resets all changes to the "metrics" field.
func (m *AgentMutation) ResetMetrics() {
	m.metrics = nil
	delete(m.clearedFields, agent.FieldMetrics)
}

// SetMaturityScore sets the "maturity_score" field.
func (m *AgentMutation) SetMaturityScore(f float64) {
	m.maturity_score = &f
	m.addmaturity_score = nil
}

// MaturityScore returns the value of the "maturity_score" field in the mutation.
func (m *AgentMutation) MaturityScore() (r float64, exists bool) {
	v := m.maturity_score
	if v == nil {
		return
	}
	return *v, true
}

// OldMaturityScore returns the old "maturity_score" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldMaturityScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaturityScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaturityScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaturityScore: %w", err)
	}
	return oldValue.MaturityScore, nil
}

// AddMaturityScore adds f to the "maturity_score" field.
func (m *AgentMutation) AddMaturityScore(f float64) {
	if m.addmaturity_score != nil {
		*m.addmaturity_score += f
	} else {
		m.addmaturity_score = &f
	}
}

// AddedMaturityScore returns the value that was added to the "maturity_score" field in this mutation.
func (m *AgentMutation) AddedMaturityScore() (r float64, exists bool) {
	v := m.addmaturity_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearMaturityScore clears the value of the "maturity_score" field.
func (m *AgentMutation) ClearMaturityScore() {
	m.maturity_score = nil
	m.addmaturity_score = nil
	m.clearedFields[agent.FieldMaturityScore] = struct{}{}
}

// MaturityScoreCleared returns if the "maturity_score" field was cleared in this mutation.
func (m *AgentMutation) MaturityScoreCleared() bool {
	_, ok := m.clearedFields[agent.FieldMaturityScore]
	return ok
}

// ResetMaturityScore resets all changes to the "maturity_score" field.
func (m *AgentMutation) ResetMaturityScore() {
	m.maturity_score = nil
	m.addmaturity_score = nil
	delete(m.clearedFields, agent.FieldMaturityScore)
}

// SetCompletedCount sets the "completed_count" field.
func (m *AgentMutation) SetCompletedCount(i int) {
	m.completed_count = &i
	m.addcompleted_count = nil
}

// CompletedCount returns the value of the "completed_count" field in the mutation.
func (m *AgentMutation) CompletedCount() (r int, exists bool) {
	v := m.completed_count
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedCount returns the old "completed_count" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldCompletedCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedCount: %w", err)
	}
	return oldValue.CompletedCount, nil
}

// AddCompletedCount adds i to the "completed_count" field.
func (m *AgentMutation) AddCompletedCount(i int) {
	if m.addcompleted_count != nil {
		*m.addcompleted_count += i
	} else {
		m.addcompleted_count = &i
	}
}

// AddedCompletedCount returns the value that was added to the "completed_count" field in this mutation.
func (m *AgentMutation) AddedCompletedCount() (r int, exists bool) {
	v := m.addcompleted_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompletedCount resets all changes to the "completed_count" field.
func (m *AgentMutation) ResetCompletedCount() {
	m.completed_count = nil
	m.addcompleted_count = nil
}

// SetLastAssessedAt sets the "last_assessed_at" field.
func (m *AgentMutation) SetLastAssessedAt(t time.Time) {
	m.last_assessed_at = &t
}

// LastAssessedAt returns the value of the "last_assessed_at" field in the mutation.
func (m *AgentMutation) LastAssessedAt() (r time.Time, exists bool) {
	v := m.last_assessed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastAssessedAt returns the old "last_assessed_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldLastAssessedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastAssessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastAssessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastAssessedAt: %w", err)
	}
	return oldValue.LastAssessedAt, nil
}

// ClearLastAssessedAt clears the value of the "last_assessed_at" field.
func (m *AgentMutation) ClearLastAssessedAt() {
	m.last_assessed_at = nil
	m.clearedFields[agent.FieldLastAssessedAt] = struct{}{}
}

// LastAssessedAtCleared returns if the "last_assessed_at" field was cleared in this mutation.
func (m *AgentMutation) LastAssessedAtCleared() bool {
	_, ok := m.clearedFields[agent.FieldLastAssessedAt]
	return ok
}

// ResetLastAssessedAt resets all changes to the "last_assessed_at" field.
func (m *AgentMutation) ResetLastAssessedAt() {
	m.last_assessed_at = nil
	delete(m.clearedFields, agent.FieldLastAssessedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the AgentMutation builder.
func (m *AgentMutation) Where(ps ...predicate.Agent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Agent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Agent).
func (m *AgentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.agent_type != nil {
		fields = append(fields, agent.FieldAgentType)
	}
	if m.maturity != nil {
		fields = append(fields, agent.FieldMaturity)
	}
	if m.status != nil {
		fields = append(fields, agent.FieldStatus)
	}
	if m.metrics != nil {
		fields = append(fields, agent.FieldMetrics)
	}
	if m.maturity_score != nil {
		fields = append(fields, agent.FieldMaturityScore)
	}
	if m.completed_count != nil {
		fields = append(fields, agent.FieldCompletedCount)
	}
	if m.last_assessed_at != nil {
		fields = append(fields, agent.FieldLastAssessedAt)
	}
	if m.created_at != nil {
		fields = append(fields, agent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agent.FieldAgentType:
		return m.AgentType()
	case agent.FieldMaturity:
		return m.Maturity()
	case agent.FieldStatus:
		return m.Status()
	case agent.FieldMetrics:
		return m.Metrics()
	case agent.FieldMaturityScore:
		return m.MaturityScore()
	case agent.FieldCompletedCount:
		return m.CompletedCount()
	case agent.FieldLastAssessedAt:
		return m.LastAssessedAt()
	case agent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agent.FieldAgentType:
		return m.OldAgentType(ctx)
	case agent.FieldMaturity:
		return m.OldMaturity(ctx)
	case agent.FieldStatus:
		return m.OldStatus(ctx)
	case agent.FieldMetrics:
		return m.OldMetrics(ctx)
	case agent.FieldMaturityScore:
		return m.OldMaturityScore(ctx)
	case agent.FieldCompletedCount:
		return m.OldCompletedCount(ctx)
	case agent.FieldLastAssessedAt:
		return m.OldLastAssessedAt(ctx)
	case agent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Agent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agent.FieldAgentType:
		v, ok := value.(agent.AgentType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentType(v)
		return nil
	case agent.FieldMaturity:
		v, ok := value.(agent.Maturity)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaturity(v)
		return nil
	case agent.FieldStatus:
		v, ok := value.(agent.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case agent.FieldMetrics:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetrics(v)
		return nil
	case agent.FieldMaturityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaturityScore(v)
		return nil
	case agent.FieldCompletedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedCount(v)
		return nil
	case agent.FieldLastAssessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastAssessedAt(v)
		return nil
	case agent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Agent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentMutation) AddedFields() []string {
	var fields []string
	if m.addmaturity_score != nil {
		fields = append(fields, agent.FieldMaturityScore)
	}
	if m.addcompleted_count != nil {
		fields = append(fields, agent.FieldCompletedCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agent.FieldMaturityScore:
		return m.AddedMaturityScore()
	case agent.FieldCompletedCount:
		return m.AddedCompletedCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agent.FieldMaturityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaturityScore(v)
		return nil
	case agent.FieldCompletedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompletedCount(v)
		return nil
	}
	return fmt.Errorf("unknown Agent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agent.FieldMetrics) {
		fields = append(fields, agent.FieldMetrics)
	}
	if m.FieldCleared(agent.FieldMaturityScore) {
		fields = append(fields, agent.FieldMaturityScore)
	}
	if m.FieldCleared(agent.FieldLastAssessedAt) {
		fields = append(fields, agent.FieldLastAssessedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentMutation) ClearField(name string) error {
	switch name {
	case agent.FieldMetrics:
		m.ClearMetrics()
		return nil
	case agent.FieldMaturityScore:
		m.ClearMaturityScore()
		return nil
	case agent.FieldLastAssessedAt:
		m.ClearLastAssessedAt()
		return nil
	}
	return fmt.Errorf("unknown Agent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentMutation) ResetField(name string) error {
	switch name {
	case agent.FieldAgentType:
		m.ResetAgentType()
		return nil
	case agent.FieldMaturity:
		m.ResetMaturity()
		return nil
	case agent.FieldStatus:
		m.ResetStatus()
		return nil
	case agent.FieldMetrics:
		m.ResetMetrics()
		return nil
	case agent.FieldMaturityScore:
		m.ResetMaturityScore()
		return nil
	case agent.FieldCompletedCount:
		m.ResetCompletedCount()
		return nil
	case agent.FieldLastAssessedAt:
		m.ResetLastAssessedAt()
		return nil
	case agent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Agent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Agent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Agent edge %s", name)
}

// AuditLogMutation represents an operation that mutates the AuditLog nodes in the graph.
type AuditLogMutation struct {
	config
	op            Op
	typ           string
	id            *string
	event_type    *string
	user_id       *string
	resource_type *string
	resource_id   *string
	ip_address    *string
	metadata      *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*AuditLog, error)
	predicates    []predicate.AuditLog
}

var _ ent.Mutation = (*AuditLogMutation)(nil)

// auditlogOption allows management of the mutation configuration using functional options.
type auditlogOption func(*AuditLogMutation)

// newAuditLogMutation creates new mutation for the AuditLog entity.
func newAuditLogMutation(c config, op Op, opts ...auditlogOption) *AuditLogMutation {
	m := &AuditLogMutation{
		config:        c,
		op:            op,
		typ:           TypeAuditLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditLogID sets the ID field of the mutation.
func withAuditLogID(id string) auditlogOption {
	return func(m *AuditLogMutation) {
		var (
			err   error
			once  sync.Once
			value *AuditLog
		)
		m.oldValue = func(ctx context.Context) (*AuditLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuditLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuditLog sets the old AuditLog of the mutation.
func withAuditLog(node *AuditLog) auditlogOption {
	return func(m *AuditLogMutation) {
		m.oldValue = func(context.Context) (*AuditLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AuditLog entities.
func (m *AuditLogMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditLogMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditLogMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuditLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEventType sets the "event_type" field.
func (m *AuditLogMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *AuditLogMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *AuditLogMutation) ResetEventType() {
	m.event_type = nil
}

// SetUserID sets the "user_id" field.
func (m *AuditLogMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *AuditLogMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldUserID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ClearUserID clears the value of the "user_id" field.
func (m *AuditLogMutation) ClearUserID() {
	m.user_id = nil
	m.clearedFields[auditlog.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *AuditLogMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *AuditLogMutation) ResetUserID() {
	m.user_id = nil
	delete(m.clearedFields, auditlog.FieldUserID)
}

// SetResourceType sets the "resource_type" field.
func (m *AuditLogMutation) SetResourceType(s string) {
	m.resource_type = &s
}

// ResourceType returns the value of the "resource_type" field in the mutation.
func (m *AuditLogMutation) ResourceType() (r string, exists bool) {
	v := m.resource_type
	if v == nil {
		return
	}
	return *v, true
}

// OldResourceType returns the old "resource_type" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldResourceType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResourceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResourceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResourceType: %w", err)
	}
	return oldValue.ResourceType, nil
}

// ClearResourceType clears the value of the "resource_type" field.
func (m *AuditLogMutation) ClearResourceType() {
	m.resource_type = nil
	m.clearedFields[auditlog.FieldResourceType] = struct{}{}
}

// ResourceTypeCleared returns if the "resource_type" field was cleared in this mutation.
func (m *AuditLogMutation) ResourceTypeCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldResourceType]
	return ok
}

// ResetResourceType resets all changes to the "resource_type" field.
func (m *AuditLogMutation) ResetResourceType() {
	m.resource_type = nil
	delete(m.clearedFields, auditlog.FieldResourceType)
}

// SetResourceID sets the "resource_id" field.
func (m *AuditLogMutation) SetResourceID(s string) {
	m.resource_id = &s
}

// ResourceID returns the value of the "resource_id" field in the mutation.
func (m *AuditLogMutation) ResourceID() (r string, exists bool) {
	v := m.resource_id
	if v == nil {
		return
	}
	return *v, true
}

// OldResourceID returns the old "resource_id" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldResourceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResourceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResourceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResourceID: %w", err)
	}
	return oldValue.ResourceID, nil
}

// ClearResourceID clears the value of the "resource_id" field.
func (m *AuditLogMutation) ClearResourceID() {
	m.resource_id = nil
	m.clearedFields[auditlog.FieldResourceID] = struct{}{}
}

// ResourceIDCleared returns if the "resource_id" field was cleared in this mutation.
func (m *AuditLogMutation) ResourceIDCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldResourceID]
	return ok
}

// ResetResourceID resets all changes to the "resource_id" field.
func (m *AuditLogMutation) ResetResourceID() {
	m.resource_id = nil
	delete(m.clearedFields, auditlog.FieldResourceID)
}

// SetIPAddress sets the "ip_address" field.
func (m *AuditLogMutation) SetIPAddress(s string) {
	m.ip_address = &s
}

// IPAddress returns the value of the "ip_address" field in the mutation.
func (m *AuditLogMutation) IPAddress() (r string, exists bool) {
	v := m.ip_address
	if v == nil {
		return
	}
	return *v, true
}

// OldIPAddress returns the old "ip_address" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldIPAddress(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIPAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIPAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIPAddress: %w", err)
	}
	return oldValue.IPAddress, nil
}

// ClearIPAddress clears the value of the "ip_address" field.
func (m *AuditLogMutation) ClearIPAddress() {
	m.ip_address = nil
	m.clearedFields[auditlog.FieldIPAddress] = struct{}{}
}

// IPAddressCleared returns if the "ip_address" field was cleared in this mutation.
func (m *AuditLogMutation) IPAddressCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldIPAddress]
	return ok
}

// ResetIPAddress resets all changes to the "ip_address" field.
func (m *AuditLogMutation) ResetIPAddress() {
	m.ip_address = nil
	delete(m.clearedFields, auditlog.FieldIPAddress)
}

// SetMetadata sets the "metadata" field.
func (m *AuditLogMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *AuditLogMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *AuditLogMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[auditlog.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *AuditLogMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *AuditLogMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, auditlog.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *AuditLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AuditLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AuditLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the AuditLogMutation builder.
func (m *AuditLogMutation) Where(ps ...predicate.AuditLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuditLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuditLog).
func (m *AuditLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditLogMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.event_type != nil {
		fields = append(fields, auditlog.FieldEventType)
	}
	if m.user_id != nil {
		fields = append(fields, auditlog.FieldUserID)
	}
	if m.resource_type != nil {
		fields = append(fields, auditlog.FieldResourceType)
	}
	if m.resource_id != nil {
		fields = append(fields, auditlog.FieldResourceID)
	}
	if m.ip_address != nil {
		fields = append(fields, auditlog.FieldIPAddress)
	}
	if m.metadata != nil {
		fields = append(fields, auditlog.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, auditlog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case auditlog.FieldEventType:
		return m.EventType()
	case auditlog.FieldUserID:
		return m.UserID()
	case auditlog.FieldResourceType:
		return m.ResourceType()
	case auditlog.FieldResourceID:
		return m.ResourceID()
	case auditlog.FieldIPAddress:
		return m.IPAddress()
	case auditlog.FieldMetadata:
		return m.Metadata()
	case auditlog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case auditlog.FieldEventType:
		return m.OldEventType(ctx)
	case auditlog.FieldUserID:
		return m.OldUserID(ctx)
	case auditlog.FieldResourceType:
		return m.OldResourceType(ctx)
	case auditlog.FieldResourceID:
		return m.OldResourceID(ctx)
	case auditlog.FieldIPAddress:
		return m.OldIPAddress(ctx)
	case auditlog.FieldMetadata:
		return m.OldMetadata(ctx)
	case auditlog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AuditLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case auditlog.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case auditlog.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case auditlog.FieldResourceType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResourceType(v)
		return nil
	case auditlog.FieldResourceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResourceID(v)
		return nil
	case auditlog.FieldIPAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIPAddress(v)
		return nil
	case auditlog.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case auditlog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AuditLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditLogMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditLogMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AuditLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(auditlog.FieldUserID) {
		fields = append(fields, auditlog.FieldUserID)
	}
	if m.FieldCleared(auditlog.FieldResourceType) {
		fields = append(fields, auditlog.FieldResourceType)
	}
	if m.FieldCleared(auditlog.FieldResourceID) {
		fields = append(fields, auditlog.FieldResourceID)
	}
	if m.FieldCleared(auditlog.FieldIPAddress) {
		fields = append(fields, auditlog.FieldIPAddress)
	}
	if m.FieldCleared(auditlog.FieldMetadata) {
		fields = append(fields, auditlog.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditLogMutation) ClearField(name string) error {
	switch name {
	case auditlog.FieldUserID:
		m.ClearUserID()
		return nil
	case auditlog.FieldResourceType:
		m.ClearResourceType()
		return nil
	case auditlog.FieldResourceID:
		m.ClearResourceID()
		return nil
	case auditlog.FieldIPAddress:
		m.ClearIPAddress()
		return nil
	case auditlog.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown AuditLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditLogMutation) ResetField(name string) error {
	switch name {
	case auditlog.FieldEventType:
		m.ResetEventType()
		return nil
	case auditlog.FieldUserID:
		m.ResetUserID()
		return nil
	case auditlog.FieldResourceType:
		m.ResetResourceType()
		return nil
	case auditlog.FieldResourceID:
		m.ResetResourceID()
		return nil
	case auditlog.FieldIPAddress:
		m.ResetIPAddress()
		return nil
	case auditlog.FieldMetadata:
		m.ResetMetadata()
		return nil
	case auditlog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AuditLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AuditLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AuditLog edge %s", name)
}

// BlockerMutation represents an operation that mutates the Blocker nodes in the graph.
type BlockerMutation struct {
	config
	op            Op
	typ           string
	id            *string
	agent_id      *string
	project_id    *string
	task_id       *string
	blocker_type  *blocker.BlockerType
	question      *string
	answer        *string
	status        *blocker.Status
	created_at    *time.Time
	resolved_at   *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Blocker, error)
	predicates    []predicate.Blocker
}

var _ ent.Mutation = (*BlockerMutation)(nil)

// blockerOption allows management of the mutation configuration using functional options.
type blockerOption func(*BlockerMutation)

// newBlockerMutation creates new mutation for the Blocker entity.
func newBlockerMutation(c config, op Op, opts ...blockerOption) *BlockerMutation {
	m := &BlockerMutation{
		config:        c,
		op:            op,
		typ:           TypeBlocker,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBlockerID sets the ID field of the mutation.
func withBlockerID(id string) blockerOption {
	return func(m *BlockerMutation) {
		var (
			err   error
			once  sync.Once
			value *Blocker
		)
		m.oldValue = func(ctx context.Context) (*Blocker, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Blocker.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBlocker sets the old Blocker of the mutation.
func withBlocker(node *Blocker) blockerOption {
	return func(m *BlockerMutation) {
		m.oldValue = func(context.Context) (*Blocker, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BlockerMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BlockerMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Blocker entities.
func (m *BlockerMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BlockerMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BlockerMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Blocker.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentID sets the "agent_id" field.
func (m *BlockerMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *BlockerMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the Blocker entity.
// If the Blocker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlockerMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *BlockerMutation) ResetAgentID() {
	m.agent_id = nil
}

// SetProjectID sets the "project_id" field.
func (m *BlockerMutation) SetProjectID(s string) {
	m.project_id = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *BlockerMutation) ProjectID() (r string, exists bool) {
	v := m.project_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Blocker entity.
// If the Blocker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlockerMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *BlockerMutation) ResetProjectID() {
	m.project_id = nil
}

// SetTaskID sets the "task_id" field.
func (m *BlockerMutation) SetTaskID(s string) {
	m.task_id = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *BlockerMutation) TaskID() (r string, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the Blocker entity.
// If the Blocker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlockerMutation) OldTaskID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ClearTaskID clears the value of the "task_id" field.
func (m *BlockerMutation) ClearTaskID() {
	m.task_id = nil
	m.clearedFields[blocker.FieldTaskID] = struct{}{}
}

// TaskIDCleared returns if the "task_id" field was cleared in this mutation.
func (m *BlockerMutation) TaskIDCleared() bool {
	_, ok := m.clearedFields[blocker.FieldTaskID]
	return ok
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *BlockerMutation) ResetTaskID() {
	m.task_id = nil
	delete(m.clearedFields, blocker.FieldTaskID)
}

// SetBlockerType sets the "blocker_type" field.
func (m *BlockerMutation) SetBlockerType(bt blocker.BlockerType) {
	m.blocker_type = &bt
}

// BlockerType returns the value of the "blocker_type" field in the mutation.
func (m *BlockerMutation) BlockerType() (r blocker.BlockerType, exists bool) {
	v := m.blocker_type
	if v == nil {
		return
	}
	return *v, true
}

// OldBlockerType returns the old "blocker_type" field's value of the Blocker entity.
// If the Blocker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlockerMutation) OldBlockerType(ctx context.Context) (v blocker.BlockerType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlockerType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlockerType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlockerType: %w", err)
	}
	return oldValue.BlockerType, nil
}

// ResetBlockerType resets all changes to the "blocker_type" field.
func (m *BlockerMutation) ResetBlockerType() {
	m.blocker_type = nil
}

// SetQuestion sets the "question" field.
func (m *BlockerMutation) SetQuestion(s string) {
	m.question = &s
}

// Question returns the value of the "question" field in the mutation.
func (m *BlockerMutation) Question() (r string, exists bool) {
	v := m.question
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestion returns the old "question" field's value of the Blocker entity.
// If the Blocker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlockerMutation) OldQuestion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestion: %w", err)
	}
	return oldValue.Question, nil
}

// ResetQuestion resets all changes to the "question" field.
func (m *BlockerMutation) ResetQuestion() {
	m.question = nil
}

// SetAnswer sets the "answer" field.
func (m *BlockerMutation) SetAnswer(s string) {
	m.answer = &s
}

// Answer returns the value of the "answer" field in the mutation.
func (m *BlockerMutation) Answer() (r string, exists bool) {
	v := m.answer
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswer returns the old "answer" field's value of the Blocker entity.
// If the Blocker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlockerMutation) OldAnswer(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswer: %w", err)
	}
	return oldValue.Answer, nil
}

// ClearAnswer clears the value of the "answer" field.
func (m *BlockerMutation) ClearAnswer() {
	m.answer = nil
	m.clearedFields[blocker.FieldAnswer] = struct{}{}
}

// AnswerCleared returns if the "answer" field was cleared in this mutation.
func (m *BlockerMutation) AnswerCleared() bool {
	_, ok := m.clearedFields[blocker.FieldAnswer]
	return ok
}

// ResetAnswer resets all changes to the "answer" field.
func (m *BlockerMutation) ResetAnswer() {
	m.answer = nil
	delete(m.clearedFields, blocker.FieldAnswer)
}

// SetStatus sets the "status" field.
func (m *BlockerMutation) SetStatus(b blocker.Status) {
	m.status = &b
}

// Status returns the value of the "status" field in the mutation.
func (m *BlockerMutation) Status() (r blocker.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Blocker entity.
// If the Blocker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlockerMutation) OldStatus(ctx context.Context) (v blocker.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *BlockerMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *BlockerMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BlockerMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Blocker entity.
// If the Blocker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlockerMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BlockerMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetResolvedAt sets the "resolved_at" field.
func (m *BlockerMutation) SetResolvedAt(t time.Time) {
	m.resolved_at = &t
}

// ResolvedAt returns the value of the "resolved_at" field in the mutation.
func (m *BlockerMutation) ResolvedAt() (r time.Time, exists bool) {
	v := m.resolved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldResolvedAt returns the old "resolved_at" field's value of the Blocker entity.
// If the Blocker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlockerMutation) OldResolvedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolvedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolvedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolvedAt: %w", err)
	}
	return oldValue.ResolvedAt, nil
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (m *BlockerMutation) ClearResolvedAt() {
	m.resolved_at = nil
	m.clearedFields[blocker.FieldResolvedAt] = struct{}{}
}

// ResolvedAtCleared returns if the "resolved_at" field was cleared in this mutation.
func (m *BlockerMutation) ResolvedAtCleared() bool {
	_, ok := m.clearedFields[blocker.FieldResolvedAt]
	return ok
}

// ResetResolvedAt resets all changes to the "resolved_at" field.
func (m *BlockerMutation) ResetResolvedAt() {
	m.resolved_at = nil
	delete(m.clearedFields, blocker.FieldResolvedAt)
}

// Where appends a list predicates to the BlockerMutation builder.
func (m *BlockerMutation) Where(ps ...predicate.Blocker) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BlockerMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BlockerMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Blocker, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BlockerMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BlockerMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Blocker).
func (m *BlockerMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BlockerMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.agent_id != nil {
		fields = append(fields, blocker.FieldAgentID)
	}
	if m.project_id != nil {
		fields = append(fields, blocker.FieldProjectID)
	}
	if m.task_id != nil {
		fields = append(fields, blocker.FieldTaskID)
	}
	if m.blocker_type != nil {
		fields = append(fields, blocker.FieldBlockerType)
	}
	if m.question != nil {
		fields = append(fields, blocker.FieldQuestion)
	}
	if m.answer != nil {
		fields = append(fields, blocker.FieldAnswer)
	}
	if m.status != nil {
		fields = append(fields, blocker.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, blocker.FieldCreatedAt)
	}
	if m.resolved_at != nil {
		fields = append(fields, blocker.FieldResolvedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BlockerMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case blocker.FieldAgentID:
		return m.AgentID()
	case blocker.FieldProjectID:
		return m.ProjectID()
	case blocker.FieldTaskID:
		return m.TaskID()
	case blocker.FieldBlockerType:
		return m.BlockerType()
	case blocker.FieldQuestion:
		return m.Question()
	case blocker.FieldAnswer:
		return m.Answer()
	case blocker.FieldStatus:
		return m.Status()
	case blocker.FieldCreatedAt:
		return m.CreatedAt()
	case blocker.FieldResolvedAt:
		return m.ResolvedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BlockerMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case blocker.FieldAgentID:
		return m.OldAgentID(ctx)
	case blocker.FieldProjectID:
		return m.OldProjectID(ctx)
	case blocker.FieldTaskID:
		return m.OldTaskID(ctx)
	case blocker.FieldBlockerType:
		return m.OldBlockerType(ctx)
	case blocker.FieldQuestion:
		return m.OldQuestion(ctx)
	case blocker.FieldAnswer:
		return m.OldAnswer(ctx)
	case blocker.FieldStatus:
		return m.OldStatus(ctx)
	case blocker.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case blocker.FieldResolvedAt:
		return m.OldResolvedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Blocker field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BlockerMutation) SetField(name string, value ent.Value) error {
	switch name {
	case blocker.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case blocker.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case blocker.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case blocker.FieldBlockerType:
		v, ok := value.(blocker.BlockerType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlockerType(v)
		return nil
	case blocker.FieldQuestion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestion(v)
		return nil
	case blocker.FieldAnswer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswer(v)
		return nil
	case blocker.FieldStatus:
		v, ok := value.(blocker.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case blocker.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case blocker.FieldResolvedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolvedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Blocker field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BlockerMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BlockerMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BlockerMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Blocker numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BlockerMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(blocker.FieldTaskID) {
		fields = append(fields, blocker.FieldTaskID)
	}
	if m.FieldCleared(blocker.FieldAnswer) {
		fields = append(fields, blocker.FieldAnswer)
	}
	if m.FieldCleared(blocker.FieldResolvedAt) {
		fields = append(fields, blocker.FieldResolvedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BlockerMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BlockerMutation) ClearField(name string) error {
	switch name {
	case blocker.FieldTaskID:
		m.ClearTaskID()
		return nil
	case blocker.FieldAnswer:
		m.ClearAnswer()
		return nil
	case blocker.FieldResolvedAt:
		m.ClearResolvedAt()
		return nil
	}
	return fmt.Errorf("unknown Blocker nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BlockerMutation) ResetField(name string) error {
	switch name {
	case blocker.FieldAgentID:
		m.ResetAgentID()
		return nil
	case blocker.FieldProjectID:
		m.ResetProjectID()
		return nil
	case blocker.FieldTaskID:
		m.ResetTaskID()
		return nil
	case blocker.FieldBlockerType:
		m.ResetBlockerType()
		return nil
	case blocker.FieldQuestion:
		m.ResetQuestion()
		return nil
	case blocker.FieldAnswer:
		m.ResetAnswer()
		return nil
	case blocker.FieldStatus:
		m.ResetStatus()
		return nil
	case blocker.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case blocker.FieldResolvedAt:
		m.ResetResolvedAt()
		return nil
	}
	return fmt.Errorf("unknown Blocker field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BlockerMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BlockerMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BlockerMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BlockerMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BlockerMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BlockerMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BlockerMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Blocker unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BlockerMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Blocker edge %s", name)
}

// ContextCheckpointMutation represents an operation that mutates the ContextCheckpoint nodes in the graph.
type ContextCheckpointMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	project_id            *string
	agent_id              *string
	items                 *[]map[string]interface{}
	appenditems           []map[string]interface{}
	items_count           *int
	additems_count        *int
	items_archived        *int
	additems_archived     *int
	hot_items_retained    *int
	addhot_items_retained *int
	token_count           *int
	addtoken_count        *int
	created_at            *time.Time
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*ContextCheckpoint, error)
	predicates            []predicate.ContextCheckpoint
}

var _ ent.Mutation = (*ContextCheckpointMutation)(nil)

// contextcheckpointOption allows management of the mutation configuration using functional options.
type contextcheckpointOption func(*ContextCheckpointMutation)

// newContextCheckpointMutation creates new mutation for the ContextCheckpoint entity.
func newContextCheckpointMutation(c config, op Op, opts ...contextcheckpointOption) *ContextCheckpointMutation {
	m := &ContextCheckpointMutation{
		config:        c,
		op:            op,
		typ:           TypeContextCheckpoint,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withContextCheckpointID sets the ID field of the mutation.
func withContextCheckpointID(id string) contextcheckpointOption {
	return func(m *ContextCheckpointMutation) {
		var (
			err   error
			once  sync.Once
			value *ContextCheckpoint
		)
		m.oldValue = func(ctx context.Context) (*ContextCheckpoint, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ContextCheckpoint.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withContextCheckpoint sets the old ContextCheckpoint of the mutation.
func withContextCheckpoint(node *ContextCheckpoint) contextcheckpointOption {
	return func(m *ContextCheckpointMutation) {
		m.oldValue = func(context.Context) (*ContextCheckpoint, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ContextCheckpointMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ContextCheckpointMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ContextCheckpoint entities.
func (m *ContextCheckpointMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ContextCheckpointMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ContextCheckpointMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ContextCheckpoint.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *ContextCheckpointMutation) SetProjectID(s string) {
	m.project_id = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *ContextCheckpointMutation) ProjectID() (r string, exists bool) {
	v := m.project_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the ContextCheckpoint entity.
// If the ContextCheckpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextCheckpointMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *ContextCheckpointMutation) ResetProjectID() {
	m.project_id = nil
}

// SetAgentID sets the "agent_id" field.
func (m *ContextCheckpointMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *ContextCheckpointMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the ContextCheckpoint entity.
// If the ContextCheckpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextCheckpointMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *ContextCheckpointMutation) ResetAgentID() {
	m.agent_id = nil
}

// SetItems sets the "items" field.
func (m *ContextCheckpointMutation) SetItems(value []map[string]interface{}) {
	m.items = &value
	m.appenditems = nil
}

// Items returns the value of the "items" field in the mutation.
func (m *ContextCheckpointMutation) Items() (r []map[string]interface{}, exists bool) {
	v := m.items
	if v == nil {
		return
	}
	return *v, true
}

// OldItems returns the old "items" field's value of the ContextCheckpoint entity.
// If the ContextCheckpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextCheckpointMutation) OldItems(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItems is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItems requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItems: %w", err)
	}
	return oldValue.Items, nil
}

// AppendItems adds value to the "items" field.
func (m *ContextCheckpointMutation) AppendItems(value []map[string]interface{}) {
	m.appenditems = append(m.appenditems, value...)
}

// AppendedItems returns the list of values that were appended to the "items" field in this mutation.
func (m *ContextCheckpointMutation) AppendedItems() ([]map[string]interface{}, bool) {
	if len(m.appenditems) == 0 {
		return nil, false
	}
	return m.appenditems, true
}

// ResetItems resets all changes to the "items" field.
func (m *ContextCheckpointMutation) ResetItems() {
	m.items = nil
	m.appenditems = nil
}

// SetItemsCount sets the "items_count" field.
func (m *ContextCheckpointMutation) SetItemsCount(i int) {
	m.items_count = &i
	m.additems_count = nil
}

// ItemsCount returns the value of the "items_count" field in the mutation.
func (m *ContextCheckpointMutation) ItemsCount() (r int, exists bool) {
	v := m.items_count
	if v == nil {
		return
	}
	return *v, true
}

// OldItemsCount returns the old "items_count" field's value of the ContextCheckpoint entity.
// If the ContextCheckpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextCheckpointMutation) OldItemsCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemsCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemsCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemsCount: %w", err)
	}
	return oldValue.ItemsCount, nil
}

// AddItemsCount adds i to the "items_count" field.
func (m *ContextCheckpointMutation) AddItemsCount(i int) {
	if m.additems_count != nil {
		*m.additems_count += i
	} else {
		m.additems_count = &i
	}
}

// AddedItemsCount returns the value that was added to the "items_count" field in this mutation.
func (m *ContextCheckpointMutation) AddedItemsCount() (r int, exists bool) {
	v := m.additems_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetItemsCount resets all changes to the "items_count" field.
func (m *ContextCheckpointMutation) ResetItemsCount() {
	m.items_count = nil
	m.additems_count = nil
}

// SetItemsArchived sets the "items_archived" field.
func (m *ContextCheckpointMutation) SetItemsArchived(i int) {
	m.items_archived = &i
	m.additems_archived = nil
}

// ItemsArchived returns the value of the "items_archived" field in the mutation.
func (m *ContextCheckpointMutation) ItemsArchived() (r int, exists bool) {
	v := m.items_archived
	if v == nil {
		return
	}
	return *v, true
}

// OldItemsArchived returns the old "items_archived" field's value of the ContextCheckpoint entity.
// If the ContextCheckpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextCheckpointMutation) OldItemsArchived(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemsArchived is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemsArchived requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemsArchived: %w", err)
	}
	return oldValue.ItemsArchived, nil
}

// AddItemsArchived adds i to the "items_archived" field.
func (m *ContextCheckpointMutation) AddItemsArchived(i int) {
	if m.additems_archived != nil {
		*m.additems_archived += i
	} else {
		m.additems_archived = &i
	}
}

// AddedItemsArchived returns the value that was added to the "items_archived" field in this mutation.
func (m *ContextCheckpointMutation) AddedItemsArchived() (r int, exists bool) {
	v := m.additems_archived
	if v == nil {
		return
	}
	return *v, true
}

// ResetItemsArchived resets all changes to the "items_archived" field.
func (m *ContextCheckpointMutation) ResetItemsArchived() {
	m.items_archived = nil
	m.additems_archived = nil
}

// SetHotItemsRetained sets the "hot_items_retained" field.
func (m *ContextCheckpointMutation) SetHotItemsRetained(i int) {
	m.hot_items_retained = &i
	m.addhot_items_retained = nil
}

// HotItemsRetained returns the value of the "hot_items_retained" field in the mutation.
func (m *ContextCheckpointMutation) HotItemsRetained() (r int, exists bool) {
	v := m.hot_items_retained
	if v == nil {
		return
	}
	return *v, true
}

// OldHotItemsRetained returns the old "hot_items_retained" field's value of the ContextCheckpoint entity.
// If the ContextCheckpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextCheckpointMutation) OldHotItemsRetained(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHotItemsRetained is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHotItemsRetained requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHotItemsRetained: %w", err)
	}
	return oldValue.HotItemsRetained, nil
}

// AddHotItemsRetained adds i to the "hot_items_retained" field.
func (m *ContextCheckpointMutation) AddHotItemsRetained(i int) {
	if m.addhot_items_retained != nil {
		*m.addhot_items_retained += i
	} else {
		m.addhot_items_retained = &i
	}
}

// AddedHotItemsRetained returns the value that was added to the "hot_items_retained" field in this mutation.
func (m *ContextCheckpointMutation) AddedHotItemsRetained() (r int, exists bool) {
	v := m.addhot_items_retained
	if v == nil {
		return
	}
	return *v, true
}

// ResetHotItemsRetained resets all changes to the "hot_items_retained" field.
func (m *ContextCheckpointMutation) ResetHotItemsRetained() {
	m.hot_items_retained = nil
	m.addhot_items_retained = nil
}

// SetTokenCount sets the "token_count" field.
func (m *ContextCheckpointMutation) SetTokenCount(i int) {
	m.token_count = &i
	m.addtoken_count = nil
}

// TokenCount returns the value of the "token_count" field in the mutation.
func (m *ContextCheckpointMutation) TokenCount() (r int, exists bool) {
	v := m.token_count
	if v == nil {
		return
	}
	return *v, true
}

// OldTokenCount returns the old "token_count" field's value of the ContextCheckpoint entity.
// If the ContextCheckpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextCheckpointMutation) OldTokenCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokenCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokenCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokenCount: %w", err)
	}
	return oldValue.TokenCount, nil
}

// AddTokenCount adds i to the "token_count" field.
func (m *ContextCheckpointMutation) AddTokenCount(i int) {
	if m.addtoken_count != nil {
		*m.addtoken_count += i
	} else {
		m.addtoken_count = &i
	}
}

// AddedTokenCount returns the value that was added to the "token_count" field in this mutation.
func (m *ContextCheckpointMutation) AddedTokenCount() (r int, exists bool) {
	v := m.addtoken_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokenCount resets all changes to the "token_count" field.
func (m *ContextCheckpointMutation) ResetTokenCount() {
	m.token_count = nil
	m.addtoken_count = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ContextCheckpointMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ContextCheckpointMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ContextCheckpoint entity.
// If the ContextCheckpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextCheckpointMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ContextCheckpointMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ContextCheckpointMutation builder.
func (m *ContextCheckpointMutation) Where(ps ...predicate.ContextCheckpoint) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ContextCheckpointMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ContextCheckpointMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ContextCheckpoint, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ContextCheckpointMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ContextCheckpointMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ContextCheckpoint).
func (m *ContextCheckpointMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ContextCheckpointMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.project_id != nil {
		fields = append(fields, contextcheckpoint.FieldProjectID)
	}
	if m.agent_id != nil {
		fields = append(fields, contextcheckpoint.FieldAgentID)
	}
	if m.items != nil {
		fields = append(fields, contextcheckpoint.FieldItems)
	}
	if m.items_count != nil {
		fields = append(fields, contextcheckpoint.FieldItemsCount)
	}
	if m.items_archived != nil {
		fields = append(fields, contextcheckpoint.FieldItemsArchived)
	}
	if m.hot_items_retained != nil {
		fields = append(fields, contextcheckpoint.FieldHotItemsRetained)
	}
	if m.token_count != nil {
		fields = append(fields, contextcheckpoint.FieldTokenCount)
	}
	if m.created_at != nil {
		fields = append(fields, contextcheckpoint.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ContextCheckpointMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case contextcheckpoint.FieldProjectID:
		return m.ProjectID()
	case contextcheckpoint.FieldAgentID:
		return m.AgentID()
	case contextcheckpoint.FieldItems:
		return m.Items()
	case contextcheckpoint.FieldItemsCount:
		return m.ItemsCount()
	case contextcheckpoint.FieldItemsArchived:
		return m.ItemsArchived()
	case contextcheckpoint.FieldHotItemsRetained:
		return m.HotItemsRetained()
	case contextcheckpoint.FieldTokenCount:
		return m.TokenCount()
	case contextcheckpoint.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ContextCheckpointMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case contextcheckpoint.FieldProjectID:
		return m.OldProjectID(ctx)
	case contextcheckpoint.FieldAgentID:
		return m.OldAgentID(ctx)
	case contextcheckpoint.FieldItems:
		return m.OldItems(ctx)
	case contextcheckpoint.FieldItemsCount:
		return m.OldItemsCount(ctx)
	case contextcheckpoint.FieldItemsArchived:
		return m.OldItemsArchived(ctx)
	case contextcheckpoint.FieldHotItemsRetained:
		return m.OldHotItemsRetained(ctx)
	case contextcheckpoint.FieldTokenCount:
		return m.OldTokenCount(ctx)
	case contextcheckpoint.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ContextCheckpoint field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContextCheckpointMutation) SetField(name string, value ent.Value) error {
	switch name {
	case contextcheckpoint.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case contextcheckpoint.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case contextcheckpoint.FieldItems:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItems(v)
		return nil
	case contextcheckpoint.FieldItemsCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemsCount(v)
		return nil
	case contextcheckpoint.FieldItemsArchived:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemsArchived(v)
		return nil
	case contextcheckpoint.FieldHotItemsRetained:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHotItemsRetained(v)
		return nil
	case contextcheckpoint.FieldTokenCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokenCount(v)
		return nil
	case contextcheckpoint.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ContextCheckpoint field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ContextCheckpointMutation) AddedFields() []string {
	var fields []string
	if m.additems_count != nil {
		fields = append(fields, contextcheckpoint.FieldItemsCount)
	}
	if m.additems_archived != nil {
		fields = append(fields, contextcheckpoint.FieldItemsArchived)
	}
	if m.addhot_items_retained != nil {
		fields = append(fields, contextcheckpoint.FieldHotItemsRetained)
	}
	if m.addtoken_count != nil {
		fields = append(fields, contextcheckpoint.FieldTokenCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ContextCheckpointMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case contextcheckpoint.FieldItemsCount:
		return m.AddedItemsCount()
	case contextcheckpoint.FieldItemsArchived:
		return m.AddedItemsArchived()
	case contextcheckpoint.FieldHotItemsRetained:
		return m.AddedHotItemsRetained()
	case contextcheckpoint.FieldTokenCount:
		return m.AddedTokenCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContextCheckpointMutation) AddField(name string, value ent.Value) error {
	switch name {
	case contextcheckpoint.FieldItemsCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddItemsCount(v)
		return nil
	case contextcheckpoint.FieldItemsArchived:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddItemsArchived(v)
		return nil
	case contextcheckpoint.FieldHotItemsRetained:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHotItemsRetained(v)
		return nil
	case contextcheckpoint.FieldTokenCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokenCount(v)
		return nil
	}
	return fmt.Errorf("unknown ContextCheckpoint numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ContextCheckpointMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ContextCheckpointMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ContextCheckpointMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ContextCheckpoint nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ContextCheckpointMutation) ResetField(name string) error {
	switch name {
	case contextcheckpoint.FieldProjectID:
		m.ResetProjectID()
		return nil
	case contextcheckpoint.FieldAgentID:
		m.ResetAgentID()
		return nil
	case contextcheckpoint.FieldItems:
		m.ResetItems()
		return nil
	case contextcheckpoint.FieldItemsCount:
		m.ResetItemsCount()
		return nil
	case contextcheckpoint.FieldItemsArchived:
		m.ResetItemsArchived()
		return nil
	case contextcheckpoint.FieldHotItemsRetained:
		m.ResetHotItemsRetained()
		return nil
	case contextcheckpoint.FieldTokenCount:
		m.ResetTokenCount()
		return nil
	case contextcheckpoint.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ContextCheckpoint field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ContextCheckpointMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ContextCheckpointMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ContextCheckpointMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ContextCheckpointMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ContextCheckpointMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ContextCheckpointMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ContextCheckpointMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ContextCheckpoint unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ContextCheckpointMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ContextCheckpoint edge %s", name)
}

// ContextItemMutation represents an operation that mutates the ContextItem nodes in the graph.
type ContextItemMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	agent_id            *string
	item_type           *contextitem.ItemType
	content             *string
	importance_score    *float64
	addimportance_score *float64
	tier                *contextitem.Tier
	access_count        *int
	addaccess_count     *int
	created_at          *time.Time
	last_accessed       *time.Time
	clearedFields       map[string]struct{}
	project             *string
	clearedproject      bool
	done                bool
	oldValue            func(context.Context) (*ContextItem, error)
	predicates          []predicate.ContextItem
}

var _ ent.Mutation = (*ContextItemMutation)(nil)

// contextitemOption allows management of the mutation configuration using functional options.
type contextitemOption func(*ContextItemMutation)

// newContextItemMutation creates new mutation for the ContextItem entity.
func newContextItemMutation(c config, op Op, opts ...contextitemOption) *ContextItemMutation {
	m := &ContextItemMutation{
		config:        c,
		op:            op,
		typ:           TypeContextItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withContextItemID sets the ID field of the mutation.
func withContextItemID(id string) contextitemOption {
	return func(m *ContextItemMutation) {
		var (
			err   error
			once  sync.Once
			value *ContextItem
		)
		m.oldValue = func(ctx context.Context) (*ContextItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ContextItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withContextItem sets the old ContextItem of the mutation.
func withContextItem(node *ContextItem) contextitemOption {
	return func(m *ContextItemMutation) {
		m.oldValue = func(context.Context) (*ContextItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ContextItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ContextItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ContextItem entities.
func (m *ContextItemMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ContextItemMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ContextItemMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ContextItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *ContextItemMutation) SetProjectID(s string) {
	m.project = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *ContextItemMutation) ProjectID() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the ContextItem entity.
// If the ContextItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextItemMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *ContextItemMutation) ResetProjectID() {
	m.project = nil
}

// SetAgentID sets the "agent_id" field.
func (m *ContextItemMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *ContextItemMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the ContextItem entity.
// If the ContextItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextItemMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *ContextItemMutation) ResetAgentID() {
	m.agent_id = nil
}

// SetItemType sets the "item_type" field.
func (m *ContextItemMutation) SetItemType(ct contextitem.ItemType) {
	m.item_type = &ct
}

// ItemType returns the value of the "item_type" field in the mutation.
func (m *ContextItemMutation) ItemType() (r contextitem.ItemType, exists bool) {
	v := m.item_type
	if v == nil {
		return
	}
	return *v, true
}

// OldItemType returns the old "item_type" field's value of the ContextItem entity.
// If the ContextItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextItemMutation) OldItemType(ctx context.Context) (v contextitem.ItemType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemType: %w", err)
	}
	return oldValue.ItemType, nil
}

// ResetItemType resets all changes to the "item_type" field.
func (m *ContextItemMutation) ResetItemType() {
	m.item_type = nil
}

// SetContent sets the "content" field.
func (m *ContextItemMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *ContextItemMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the ContextItem entity.
// If the ContextItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextItemMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *ContextItemMutation) ResetContent() {
	m.content = nil
}

// SetImportanceScore sets the "importance_score" field.
func (m *ContextItemMutation) SetImportanceScore(f float64) {
	m.importance_score = &f
	m.addimportance_score = nil
}

// ImportanceScore returns the value of the "importance_score" field in the mutation.
func (m *ContextItemMutation) ImportanceScore() (r float64, exists bool) {
	v := m.importance_score
	if v == nil {
		return
	}
	return *v, true
}

// OldImportanceScore returns the old "importance_score" field's value of the ContextItem entity.
// If the ContextItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextItemMutation) OldImportanceScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImportanceScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImportanceScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImportanceScore: %w", err)
	}
	return oldValue.ImportanceScore, nil
}

// AddImportanceScore adds f to the "importance_score" field.
func (m *ContextItemMutation) AddImportanceScore(f float64) {
	if m.addimportance_score != nil {
		*m.addimportance_score += f
	} else {
		m.addimportance_score = &f
	}
}

// AddedImportanceScore returns the value that was added to the "importance_score" field in this mutation.
func (m *ContextItemMutation) AddedImportanceScore() (r float64, exists bool) {
	v := m.addimportance_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetImportanceScore resets all changes to the "importance_score" field.
func (m *ContextItemMutation) ResetImportanceScore() {
	m.importance_score = nil
	m.addimportance_score = nil
}

// SetTier sets the "tier" field.
func (m *ContextItemMutation) SetTier(c contextitem.Tier) {
	m.tier = &c
}

// Tier returns the value of the "tier" field in the mutation.
func (m *ContextItemMutation) Tier() (r contextitem.Tier, exists bool) {
	v := m.tier
	if v == nil {
		return
	}
	return *v, true
}

// OldTier returns the old "tier" field's value of the ContextItem entity.
// If the ContextItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextItemMutation) OldTier(ctx context.Context) (v contextitem.Tier, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTier: %w", err)
	}
	return oldValue.Tier, nil
}

// ResetTier resets all changes to the "tier" field.
func (m *ContextItemMutation) ResetTier() {
	m.tier = nil
}

// SetAccessCount sets the "access_count" field.
func (m *ContextItemMutation) SetAccessCount(i int) {
	m.access_count = &i
	m.addaccess_count = nil
}

// AccessCount returns the value of the "access_count" field in the mutation.
func (m *ContextItemMutation) AccessCount() (r int, exists bool) {
	v := m.access_count
	if v == nil {
		return
	}
	return *v, true
}

// OldAccessCount returns the old "access_count" field's value of the ContextItem entity.
// If the ContextItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextItemMutation) OldAccessCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccessCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccessCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccessCount: %w", err)
	}
	return oldValue.AccessCount, nil
}

// AddAccessCount adds i to the "access_count" field.
func (m *ContextItemMutation) AddAccessCount(i int) {
	if m.addaccess_count != nil {
		*m.addaccess_count += i
	} else {
		m.addaccess_count = &i
	}
}

// AddedAccessCount returns the value that was added to the "access_count" field in this mutation.
func (m *ContextItemMutation) AddedAccessCount() (r int, exists bool) {
	v := m.addaccess_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetAccessCount resets all changes to the "access_count" field.
func (m *ContextItemMutation) ResetAccessCount() {
	m.access_count = nil
	m.addaccess_count = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ContextItemMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ContextItemMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ContextItem entity.
// If the ContextItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextItemMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ContextItemMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetLastAccessed sets the "last_accessed" field.
func (m *ContextItemMutation) SetLastAccessed(t time.Time) {
	m.last_accessed = &t
}

// LastAccessed returns the value of the "last_accessed" field in the mutation.
func (m *ContextItemMutation) LastAccessed() (r time.Time, exists bool) {
	v := m.last_accessed
	if v == nil {
		return
	}
	return *v, true
}

// OldLastAccessed returns the old "last_accessed" field's value of the ContextItem entity.
// If the ContextItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextItemMutation) OldLastAccessed(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastAccessed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastAccessed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastAccessed: %w", err)
	}
	return oldValue.LastAccessed, nil
}

// ResetLastAccessed resets all changes to the "last_accessed" field.
func (m *ContextItemMutation) ResetLastAccessed() {
	m.last_accessed = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *ContextItemMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[contextitem.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *ContextItemMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *ContextItemMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *ContextItemMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// Where appends a list predicates to the ContextItemMutation builder.
func (m *ContextItemMutation) Where(ps ...predicate.ContextItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ContextItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ContextItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ContextItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ContextItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ContextItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ContextItem).
func (m *ContextItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ContextItemMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.project != nil {
		fields = append(fields, contextitem.FieldProjectID)
	}
	if m.agent_id != nil {
		fields = append(fields, contextitem.FieldAgentID)
	}
	if m.item_type != nil {
		fields = append(fields, contextitem.FieldItemType)
	}
	if m.content != nil {
		fields = append(fields, contextitem.FieldContent)
	}
	if m.importance_score != nil {
		fields = append(fields, contextitem.FieldImportanceScore)
	}
	if m.tier != nil {
		fields = append(fields, contextitem.FieldTier)
	}
	if m.access_count != nil {
		fields = append(fields, contextitem.FieldAccessCount)
	}
	if m.created_at != nil {
		fields = append(fields, contextitem.FieldCreatedAt)
	}
	if m.last_accessed != nil {
		fields = append(fields, contextitem.FieldLastAccessed)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ContextItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case contextitem.FieldProjectID:
		return m.ProjectID()
	case contextitem.FieldAgentID:
		return m.AgentID()
	case contextitem.FieldItemType:
		return m.ItemType()
	case contextitem.FieldContent:
		return m.Content()
	case contextitem.FieldImportanceScore:
		return m.ImportanceScore()
	case contextitem.FieldTier:
		return m.Tier()
	case contextitem.FieldAccessCount:
		return m.AccessCount()
	case contextitem.FieldCreatedAt:
		return m.CreatedAt()
	case contextitem.FieldLastAccessed:
		return m.LastAccessed()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ContextItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case contextitem.FieldProjectID:
		return m.OldProjectID(ctx)
	case contextitem.FieldAgentID:
		return m.OldAgentID(ctx)
	case contextitem.FieldItemType:
		return m.OldItemType(ctx)
	case contextitem.FieldContent:
		return m.OldContent(ctx)
	case contextitem.FieldImportanceScore:
		return m.OldImportanceScore(ctx)
	case contextitem.FieldTier:
		return m.OldTier(ctx)
	case contextitem.FieldAccessCount:
		return m.OldAccessCount(ctx)
	case contextitem.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case contextitem.FieldLastAccessed:
		return m.OldLastAccessed(ctx)
	}
	return nil, fmt.Errorf("unknown ContextItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContextItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case contextitem.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case contextitem.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case contextitem.FieldItemType:
		v, ok := value.(contextitem.ItemType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemType(v)
		return nil
	case contextitem.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case contextitem.FieldImportanceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImportanceScore(v)
		return nil
	case contextitem.FieldTier:
		v, ok := value.(contextitem.Tier)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTier(v)
		return nil
	case contextitem.FieldAccessCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccessCount(v)
		return nil
	case contextitem.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case contextitem.FieldLastAccessed:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastAccessed(v)
		return nil
	}
	return fmt.Errorf("unknown ContextItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ContextItemMutation) AddedFields() []string {
	var fields []string
	if m.addimportance_score != nil {
		fields = append(fields, contextitem.FieldImportanceScore)
	}
	if m.addaccess_count != nil {
		fields = append(fields, contextitem.FieldAccessCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ContextItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case contextitem.FieldImportanceScore:
		return m.AddedImportanceScore()
	case contextitem.FieldAccessCount:
		return m.AddedAccessCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContextItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case contextitem.FieldImportanceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddImportanceScore(v)
		return nil
	case contextitem.FieldAccessCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAccessCount(v)
		return nil
	}
	return fmt.Errorf("unknown ContextItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ContextItemMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ContextItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ContextItemMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ContextItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ContextItemMutation) ResetField(name string) error {
	switch name {
	case contextitem.FieldProjectID:
		m.ResetProjectID()
		return nil
	case contextitem.FieldAgentID:
		m.ResetAgentID()
		return nil
	case contextitem.FieldItemType:
		m.ResetItemType()
		return nil
	case contextitem.FieldContent:
		m.ResetContent()
		return nil
	case contextitem.FieldImportanceScore:
		m.ResetImportanceScore()
		return nil
	case contextitem.FieldTier:
		m.ResetTier()
		return nil
	case contextitem.FieldAccessCount:
		m.ResetAccessCount()
		return nil
	case contextitem.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case contextitem.FieldLastAccessed:
		m.ResetLastAccessed()
		return nil
	}
	return fmt.Errorf("unknown ContextItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ContextItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.project != nil {
		edges = append(edges, contextitem.EdgeProject)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ContextItemMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case contextitem.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ContextItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ContextItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ContextItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedproject {
		edges = append(edges, contextitem.EdgeProject)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ContextItemMutation) EdgeCleared(name string) bool {
	switch name {
	case contextitem.EdgeProject:
		return m.clearedproject
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ContextItemMutation) ClearEdge(name string) error {
	switch name {
	case contextitem.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown ContextItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ContextItemMutation) ResetEdge(name string) error {
	switch name {
	case contextitem.EdgeProject:
		m.ResetProject()
		return nil
	}
	return fmt.Errorf("unknown ContextItem edge %s", name)
}

// CorrectionAttemptMutation represents an operation that mutates the CorrectionAttempt nodes in the graph.
type CorrectionAttemptMutation struct {
	config
	op                Op
	typ               string
	id                *string
	attempt_number    *int
	addattempt_number *int
	error_analysis    *string
	fix_description   *string
	code_changes      *string
	test_result_id    *string
	created_at        *time.Time
	clearedFields     map[string]struct{}
	task              *string
	clearedtask       bool
	done              bool
	oldValue          func(context.Context) (*CorrectionAttempt, error)
	predicates        []predicate.CorrectionAttempt
}

var _ ent.Mutation = (*CorrectionAttemptMutation)(nil)

// correctionattemptOption allows management of the mutation configuration using functional options.
type correctionattemptOption func(*CorrectionAttemptMutation)

// newCorrectionAttemptMutation creates new mutation for the CorrectionAttempt entity.
func newCorrectionAttemptMutation(c config, op Op, opts ...correctionattemptOption) *CorrectionAttemptMutation {
	m := &CorrectionAttemptMutation{
		config:        c,
		op:            op,
		typ:           TypeCorrectionAttempt,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCorrectionAttemptID sets the ID field of the mutation.
func withCorrectionAttemptID(id string) correctionattemptOption {
	return func(m *CorrectionAttemptMutation) {
		var (
			err   error
			once  sync.Once
			value *CorrectionAttempt
		)
		m.oldValue = func(ctx context.Context) (*CorrectionAttempt, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CorrectionAttempt.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCorrectionAttempt sets the old CorrectionAttempt of the mutation.
func withCorrectionAttempt(node *CorrectionAttempt) correctionattemptOption {
	return func(m *CorrectionAttemptMutation) {
		m.oldValue = func(context.Context) (*CorrectionAttempt, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CorrectionAttemptMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CorrectionAttemptMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CorrectionAttempt entities.
func (m *CorrectionAttemptMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CorrectionAttemptMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CorrectionAttemptMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CorrectionAttempt.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *CorrectionAttemptMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *CorrectionAttemptMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the CorrectionAttempt entity.
// If the CorrectionAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CorrectionAttemptMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *CorrectionAttemptMutation) ResetTaskID() {
	m.task = nil
}

// SetAttemptNumber sets the "attempt_number" field.
func (m *CorrectionAttemptMutation) SetAttemptNumber(i int) {
	m.attempt_number = &i
	m.addattempt_number = nil
}

// AttemptNumber returns the value of the "attempt_number" field in the mutation.
func (m *CorrectionAttemptMutation) AttemptNumber() (r int, exists bool) {
	v := m.attempt_number
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptNumber returns the old "attempt_number" field's value of the CorrectionAttempt entity.
// If the CorrectionAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CorrectionAttemptMutation) OldAttemptNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptNumber: %w", err)
	}
	return oldValue.AttemptNumber, nil
}

// AddAttemptNumber adds i to the "attempt_number" field.
func (m *CorrectionAttemptMutation) AddAttemptNumber(i int) {
	if m.addattempt_number != nil {
		*m.addattempt_number += i
	} else {
		m.addattempt_number = &i
	}
}

// AddedAttemptNumber returns the value that was added to the "attempt_number" field in this mutation.
func (m *CorrectionAttemptMutation) AddedAttemptNumber() (r int, exists bool) {
	v := m.addattempt_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttemptNumber resets all changes to the "attempt_number" field.
func (m *CorrectionAttemptMutation) ResetAttemptNumber() {
	m.attempt_number = nil
	m.addattempt_number = nil
}

// SetErrorAnalysis sets the "error_analysis" field.
func (m *CorrectionAttemptMutation) SetErrorAnalysis(s string) {
	m.error_analysis = &s
}

// ErrorAnalysis returns the value of the "error_analysis" field in the mutation.
func (m *CorrectionAttemptMutation) ErrorAnalysis() (r string, exists bool) {
	v := m.error_analysis
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorAnalysis returns the old "error_analysis" field's value of the CorrectionAttempt entity.
// If the CorrectionAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CorrectionAttemptMutation) OldErrorAnalysis(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorAnalysis is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorAnalysis requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorAnalysis: %w", err)
	}
	return oldValue.ErrorAnalysis, nil
}

// ResetErrorAnalysis resets all changes to the "error_analysis" field.
func (m *CorrectionAttemptMutation) ResetErrorAnalysis() {
	m.error_analysis = nil
}

// SetFixDescription sets the "fix_description" field.
func (m *CorrectionAttemptMutation) SetFixDescription(s string) {
	m.fix_description = &s
}

// FixDescription returns the value of the "fix_description" field in the mutation.
func (m *CorrectionAttemptMutation) FixDescription() (r string, exists bool) {
	v := m.fix_description
	if v == nil {
		return
	}
	return *v, true
}

// OldFixDescription returns the old "fix_description" field's value of the CorrectionAttempt entity.
// If the CorrectionAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CorrectionAttemptMutation) OldFixDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFixDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFixDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFixDescription: %w", err)
	}
	return oldValue.FixDescription, nil
}

// ResetFixDescription resets all changes to the "fix_description" field.
func (m *CorrectionAttemptMutation) ResetFixDescription() {
	m.fix_description = nil
}

// SetCodeChanges sets the "code_changes" field.
func (m *CorrectionAttemptMutation) SetCodeChanges(s string) {
	m.code_changes = &s
}

// CodeChanges returns the value of the "code_changes" field in the mutation.
func (m *CorrectionAttemptMutation) CodeChanges() (r string, exists bool) {
	v := m.code_changes
	if v == nil {
		return
	}
	return *v, true
}

// OldCodeChanges returns the old "code_changes" field's value of the CorrectionAttempt entity.
// If the CorrectionAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CorrectionAttemptMutation) OldCodeChanges(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCodeChanges is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCodeChanges requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCodeChanges: %w", err)
	}
	return oldValue.CodeChanges, nil
}

// ClearCodeChanges clears the value of the "code_changes" field.
func (m *CorrectionAttemptMutation) ClearCodeChanges() {
	m.code_changes = nil
	m.clearedFields[correctionattempt.FieldCodeChanges] = struct{}{}
}

// CodeChangesCleared returns if the "code_changes" field was cleared in this mutation.
func (m *CorrectionAttemptMutation) CodeChangesCleared() bool {
	_, ok := m.clearedFields[correctionattempt.FieldCodeChanges]
	return ok
}

// ResetCodeChanges resets all changes to the "code_changes" field.
func (m *CorrectionAttemptMutation) ResetCodeChanges() {
	m.code_changes = nil
	delete(m.clearedFields, correctionattempt.FieldCodeChanges)
}

// SetTestResultID sets the "test_result_id" field.
func (m *CorrectionAttemptMutation) SetTestResultID(s string) {
	m.test_result_id = &s
}

// TestResultID returns the value of the "test_result_id" field in the mutation.
func (m *CorrectionAttemptMutation) TestResultID() (r string, exists bool) {
	v := m.test_result_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTestResultID returns the old "test_result_id" field's value of the CorrectionAttempt entity.
// If the CorrectionAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CorrectionAttemptMutation) OldTestResultID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTestResultID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTestResultID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTestResultID: %w", err)
	}
	return oldValue.TestResultID, nil
}

// ClearTestResultID clears the value of the "test_result_id" field.
func (m *CorrectionAttemptMutation) ClearTestResultID() {
	m.test_result_id = nil
	m.clearedFields[correctionattempt.FieldTestResultID] = struct{}{}
}

// TestResultIDCleared returns if the "test_result_id" field was cleared in this mutation.
func (m *CorrectionAttemptMutation) TestResultIDCleared() bool {
	_, ok := m.clearedFields[correctionattempt.FieldTestResultID]
	return ok
}

// ResetTestResultID resets all changes to the "test_result_id" field.
func (m *CorrectionAttemptMutation) ResetTestResultID() {
	m.test_result_id = nil
	delete(m.clearedFields, correctionattempt.FieldTestResultID)
}

// SetCreatedAt sets the "created_at" field.
func (m *CorrectionAttemptMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CorrectionAttemptMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CorrectionAttempt entity.
// If the CorrectionAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CorrectionAttemptMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CorrectionAttemptMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTask clears the "task" edge to the Task entity.
func (m *CorrectionAttemptMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[correctionattempt.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *CorrectionAttemptMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *CorrectionAttemptMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *CorrectionAttemptMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the CorrectionAttemptMutation builder.
func (m *CorrectionAttemptMutation) Where(ps ...predicate.CorrectionAttempt) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CorrectionAttemptMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CorrectionAttemptMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CorrectionAttempt, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CorrectionAttemptMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CorrectionAttemptMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CorrectionAttempt).
func (m *CorrectionAttemptMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CorrectionAttemptMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.task != nil {
		fields = append(fields, correctionattempt.FieldTaskID)
	}
	if m.attempt_number != nil {
		fields = append(fields, correctionattempt.FieldAttemptNumber)
	}
	if m.error_analysis != nil {
		fields = append(fields, correctionattempt.FieldErrorAnalysis)
	}
	if m.fix_description != nil {
		fields = append(fields, correctionattempt.FieldFixDescription)
	}
	if m.code_changes != nil {
		fields = append(fields, correctionattempt.FieldCodeChanges)
	}
	if m.test_result_id != nil {
		fields = append(fields, correctionattempt.FieldTestResultID)
	}
	if m.created_at != nil {
		fields = append(fields, correctionattempt.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CorrectionAttemptMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case correctionattempt.FieldTaskID:
		return m.TaskID()
	case correctionattempt.FieldAttemptNumber:
		return m.AttemptNumber()
	case correctionattempt.FieldErrorAnalysis:
		return m.ErrorAnalysis()
	case correctionattempt.FieldFixDescription:
		return m.FixDescription()
	case correctionattempt.FieldCodeChanges:
		return m.CodeChanges()
	case correctionattempt.FieldTestResultID:
		return m.TestResultID()
	case correctionattempt.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CorrectionAttemptMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case correctionattempt.FieldTaskID:
		return m.OldTaskID(ctx)
	case correctionattempt.FieldAttemptNumber:
		return m.OldAttemptNumber(ctx)
	case correctionattempt.FieldErrorAnalysis:
		return m.OldErrorAnalysis(ctx)
	case correctionattempt.FieldFixDescription:
		return m.OldFixDescription(ctx)
	case correctionattempt.FieldCodeChanges:
		return m.OldCodeChanges(ctx)
	case correctionattempt.FieldTestResultID:
		return m.OldTestResultID(ctx)
	case correctionattempt.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CorrectionAttempt field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CorrectionAttemptMutation) SetField(name string, value ent.Value) error {
	switch name {
	case correctionattempt.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case correctionattempt.FieldAttemptNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptNumber(v)
		return nil
	case correctionattempt.FieldErrorAnalysis:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorAnalysis(v)
		return nil
	case correctionattempt.FieldFixDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFixDescription(v)
		return nil
	case correctionattempt.FieldCodeChanges:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCodeChanges(v)
		return nil
	case correctionattempt.FieldTestResultID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTestResultID(v)
		return nil
	case correctionattempt.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CorrectionAttempt field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CorrectionAttemptMutation) AddedFields() []string {
	var fields []string
	if m.addattempt_number != nil {
		fields = append(fields, correctionattempt.FieldAttemptNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CorrectionAttemptMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case correctionattempt.FieldAttemptNumber:
		return m.AddedAttemptNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CorrectionAttemptMutation) AddField(name string, value ent.Value) error {
	switch name {
	case correctionattempt.FieldAttemptNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttemptNumber(v)
		return nil
	}
	return fmt.Errorf("unknown CorrectionAttempt numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CorrectionAttemptMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(correctionattempt.FieldCodeChanges) {
		fields = append(fields, correctionattempt.FieldCodeChanges)
	}
	if m.FieldCleared(correctionattempt.FieldTestResultID) {
		fields = append(fields, correctionattempt.FieldTestResultID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CorrectionAttemptMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CorrectionAttemptMutation) ClearField(name string) error {
	switch name {
	case correctionattempt.FieldCodeChanges:
		m.ClearCodeChanges()
		return nil
	case correctionattempt.FieldTestResultID:
		m.ClearTestResultID()
		return nil
	}
	return fmt.Errorf("unknown CorrectionAttempt nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CorrectionAttemptMutation) ResetField(name string) error {
	switch name {
	case correctionattempt.FieldTaskID:
		m.ResetTaskID()
		return nil
	case correctionattempt.FieldAttemptNumber:
		m.ResetAttemptNumber()
		return nil
	case correctionattempt.FieldErrorAnalysis:
		m.ResetErrorAnalysis()
		return nil
	case correctionattempt.FieldFixDescription:
		m.ResetFixDescription()
		return nil
	case correctionattempt.FieldCodeChanges:
		m.ResetCodeChanges()
		return nil
	case correctionattempt.FieldTestResultID:
		m.ResetTestResultID()
		return nil
	case correctionattempt.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown CorrectionAttempt field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CorrectionAttemptMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, correctionattempt.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CorrectionAttemptMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case correctionattempt.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CorrectionAttemptMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CorrectionAttemptMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CorrectionAttemptMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, correctionattempt.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CorrectionAttemptMutation) EdgeCleared(name string) bool {
	switch name {
	case correctionattempt.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CorrectionAttemptMutation) ClearEdge(name string) error {
	switch name {
	case correctionattempt.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown CorrectionAttempt unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CorrectionAttemptMutation) ResetEdge(name string) error {
	switch name {
	case correctionattempt.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown CorrectionAttempt edge %s", name)
}

// EvidenceMutation represents an operation that mutates the Evidence nodes in the graph.
type EvidenceMutation struct {
	config
	op                        Op
	typ                       string
	id                        *string
	task_id                   *string
	agent_id                  *string
	task_description          *string
	verified                  *bool
	test_result               *map[string]interface{}
	skip_violations           *[]map[string]interface{}
	appendskip_violations     []map[string]interface{}
	coverage                  *float64
	addcoverage               *float64
	quality_metrics           *map[string]interface{}
	verification_errors       *[]string
	appendverification_errors []string
	language                  *string
	framework                 *string
	created_at                *time.Time
	clearedFields             map[string]struct{}
	done                      bool
	oldValue                  func(context.Context) (*Evidence, error)
	predicates                []predicate.Evidence
}

var _ ent.Mutation = (*EvidenceMutation)(nil)

// evidenceOption allows management of the mutation configuration using functional options.
type evidenceOption func(*EvidenceMutation)

// newEvidenceMutation creates new mutation for the Evidence entity.
func newEvidenceMutation(c config, op Op, opts ...evidenceOption) *EvidenceMutation {
	m := &EvidenceMutation{
		config:        c,
		op:            op,
		typ:           TypeEvidence,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEvidenceID sets the ID field of the mutation.
func withEvidenceID(id string) evidenceOption {
	return func(m *EvidenceMutation) {
		var (
			err   error
			once  sync.Once
			value *Evidence
		)
		m.oldValue = func(ctx context.Context) (*Evidence, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Evidence.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvidence sets the old Evidence of the mutation.
func withEvidence(node *Evidence) evidenceOption {
	return func(m *EvidenceMutation) {
		m.oldValue = func(context.Context) (*Evidence, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EvidenceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EvidenceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Evidence entities.
func (m *EvidenceMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EvidenceMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EvidenceMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Evidence.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *EvidenceMutation) SetTaskID(s string) {
	m.task_id = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *EvidenceMutation) TaskID() (r string, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *EvidenceMutation) ResetTaskID() {
	m.task_id = nil
}

// SetAgentID sets the "agent_id" field.
func (m *EvidenceMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *EvidenceMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *EvidenceMutation) ResetAgentID() {
	m.agent_id = nil
}

// SetTaskDescription sets the "task_description" field.
func (m *EvidenceMutation) SetTaskDescription(s string) {
	m.task_description = &s
}

// TaskDescription returns the value of the "task_description" field in the mutation.
func (m *EvidenceMutation) TaskDescription() (r string, exists bool) {
	v := m.task_description
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskDescription returns the old "task_description" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldTaskDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskDescription: %w", err)
	}
	return oldValue.TaskDescription, nil
}

// ClearTaskDescription clears the value of the "task_description" field.
func (m *EvidenceMutation) ClearTaskDescription() {
	m.task_description = nil
	m.clearedFields[evidence.FieldTaskDescription] = struct{}{}
}

// TaskDescriptionCleared returns if the "task_description" field was cleared in this mutation.
func (m *EvidenceMutation) TaskDescriptionCleared() bool {
	_, ok := m.clearedFields[evidence.FieldTaskDescription]
	return ok
}

// ResetTaskDescription resets all changes to the "task_description" field.
func (m *EvidenceMutation) ResetTaskDescription() {
	m.task_description = nil
	delete(m.clearedFields, evidence.FieldTaskDescription)
}

// SetVerified sets the "verified" field.
func (m *EvidenceMutation) SetVerified(b bool) {
	m.verified = &b
}

// Verified returns the value of the "verified" field in the mutation.
func (m *EvidenceMutation) Verified() (r bool, exists bool) {
	v := m.verified
	if v == nil {
		return
	}
	return *v, true
}

// OldVerified returns the old "verified" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldVerified(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerified is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerified requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerified: %w", err)
	}
	return oldValue.Verified, nil
}

// ResetVerified resets all changes to the "verified" field.
func (m *EvidenceMutation) ResetVerified() {
	m.verified = nil
}

// SetTestResult sets the "test_result" field.
func (m *EvidenceMutation) SetTestResult(value map[string]interface{}) {
	m.test_result = &value
}

// TestResult returns the value of the "test_result" field in the mutation.
func (m *EvidenceMutation) TestResult() (r map[string]interface{}, exists bool) {
	v := m.test_result
	if v == nil {
		return
	}
	return *v, true
}

// OldTestResult returns the old "test_result" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldTestResult(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTestResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTestResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTestResult: %w", err)
	}
	return oldValue.TestResult, nil
}

// ClearTestResult clears the value of the "test_result" field.
func (m *EvidenceMutation) ClearTestResult() {
	m.test_result = nil
	m.clearedFields[evidence.FieldTestResult] = struct{}{}
}

// TestResultCleared returns if the "test_result" field was cleared in this mutation.
func (m *EvidenceMutation) TestResultCleared() bool {
	_, ok := m.clearedFields[evidence.FieldTestResult]
	return ok
}

// ResetTestResult resets all changes to the "test_result" field.
func (m *EvidenceMutation) ResetTestResult() {
	m.test_result = nil
	delete(m.clearedFields, evidence.FieldTestResult)
}

// SetSkipViolations sets the "skip_violations" field.
func (m *EvidenceMutation) SetSkipViolations(value []map[string]interface{}) {
	m.skip_violations = &value
	m.appendskip_violations = nil
}

// SkipViolations returns the value of the "skip_violations" field in the mutation.
func (m *EvidenceMutation) SkipViolations() (r []map[string]interface{}, exists bool) {
	v := m.skip_violations
	if v == nil {
		return
	}
	return *v, true
}

// OldSkipViolations returns the old "skip_violations" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldSkipViolations(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkipViolations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkipViolations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkipViolations: %w", err)
	}
	return oldValue.SkipViolations, nil
}

// AppendSkipViolations adds value to the "skip_violations" field.
func (m *EvidenceMutation) AppendSkipViolations(value []map[string]interface{}) {
	m.appendskip_violations = append(m.appendskip_violations, value...)
}

// AppendedSkipViolations returns the list of values that were appended to the "skip_violations" field in this mutation.
func (m *EvidenceMutation) AppendedSkipViolations() ([]map[string]interface{}, bool) {
	if len(m.appendskip_violations) == 0 {
		return nil, false
	}
	return m.appendskip_violations, true
}

// ClearSkipViolations clears the value of the "skip_violations" field.
func (m *EvidenceMutation) ClearSkipViolations() {
	m.skip_violations = nil
	m.appendskip_violations = nil
	m.clearedFields[evidence.FieldSkipViolations] = struct{}{}
}

// SkipViolationsCleared returns if the "skip_violations" field was cleared in this mutation.
func (m *EvidenceMutation) SkipViolationsCleared() bool {
	_, ok := m.clearedFields[evidence.FieldSkipViolations]
	return ok
}

// ResetSkipViolations resets all changes to the "skip_violations" field.
func (m *EvidenceMutation) ResetSkipViolations() {
	m.skip_violations = nil
	m.appendskip_violations = nil
	delete(m.clearedFields, evidence.FieldSkipViolations)
}

// SetCoverage sets the "coverage" field.
func (m *EvidenceMutation) SetCoverage(f float64) {
	m.coverage = &f
	m.addcoverage = nil
}

// Coverage returns the value of the "coverage" field in the mutation.
func (m *EvidenceMutation) Coverage() (r float64, exists bool) {
	v := m.coverage
	if v == nil {
		return
	}
	return *v, true
}

// OldCoverage returns the old "coverage" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldCoverage(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCoverage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCoverage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCoverage: %w", err)
	}
	return oldValue.Coverage, nil
}

// AddCoverage adds f to the "coverage" field.
func (m *EvidenceMutation) AddCoverage(f float64) {
	if m.addcoverage != nil {
		*m.addcoverage += f
	} else {
		m.addcoverage = &f
	}
}

// AddedCoverage returns the value that was added to the "coverage" field in this mutation.
func (m *EvidenceMutation) AddedCoverage() (r float64, exists bool) {
	v := m.addcoverage
	if v == nil {
		return
	}
	return *v, true
}

// ClearCoverage clears the value of the "coverage" field.
func (m *EvidenceMutation) ClearCoverage() {
	m.coverage = nil
	m.addcoverage = nil
	m.clearedFields[evidence.FieldCoverage] = struct{}{}
}

// CoverageCleared returns if the "coverage" field was cleared in this mutation.
func (m *EvidenceMutation) CoverageCleared() bool {
	_, ok := m.clearedFields[evidence.FieldCoverage]
	return ok
}

// ResetCoverage resets all changes to the "coverage" field.
func (m *EvidenceMutation) ResetCoverage() {
	m.coverage = nil
	m.addcoverage = nil
	delete(m.clearedFields, evidence.FieldCoverage)
}

// SetQualityMetrics sets the "quality_metrics" field.
func (m *EvidenceMutation) SetQualityMetrics(value map[string]interface{}) {
	m.quality_metrics = &value
}

// QualityMetrics returns the value of the "quality_metrics" field in the mutation.
func (m *EvidenceMutation) QualityMetrics() (r map[string]interface{}, exists bool) {
	v := m.quality_metrics
	if v == nil {
		return
	}
	return *v, true
}

// OldQualityMetrics returns the old "quality_metrics" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldQualityMetrics(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQualityMetrics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQualityMetrics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQualityMetrics: %w", err)
	}
	return oldValue.QualityMetrics, nil
}

// ClearQualityMetrics clears the value of the "quality_metrics" field.
func (m *EvidenceMutation) ClearQualityMetrics() {
	m.quality_metrics = nil
	m.clearedFields[evidence.FieldQualityMetrics] = struct{}{}
}

// QualityMetricsCleared returns if the "quality_metrics" field was cleared in this mutation.
func (m *EvidenceMutation) QualityMetricsCleared() bool {
	_, ok := m.clearedFields[evidence.FieldQualityMetrics]
	return ok
}

// ResetQualityMetrics resets all changes to the "quality_metrics" field.
func (m *EvidenceMutation) ResetQualityMetrics() {
	m.quality_metrics = nil
	delete(m.clearedFields, evidence.FieldQualityMetrics)
}

// SetVerificationErrors sets the "verification_errors" field.
func (m *EvidenceMutation) SetVerificationErrors(s []string) {
	m.verification_errors = &s
	m.appendverification_errors = nil
}

// VerificationErrors returns the value of the "verification_errors" field in the mutation.
func (m *EvidenceMutation) VerificationErrors() (r []string, exists bool) {
	v := m.verification_errors
	if v == nil {
		return
	}
	return *v, true
}

// OldVerificationErrors returns the old "verification_errors" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldVerificationErrors(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerificationErrors is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerificationErrors requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerificationErrors: %w", err)
	}
	return oldValue.VerificationErrors, nil
}

// AppendVerificationErrors adds s to the "verification_errors" field.
func (m *EvidenceMutation) AppendVerificationErrors(s []string) {
	m.appendverification_errors = append(m.appendverification_errors, s...)
}

// AppendedVerificationErrors returns the list of values that were appended to the "verification_errors" field in this mutation.
func (m *EvidenceMutation) AppendedVerificationErrors() ([]string, bool) {
	if len(m.appendverification_errors) == 0 {
		return nil, false
	}
	return m.appendverification_errors, true
}

// ClearVerificationErrors clears the value of the "verification_errors" field.
func (m *EvidenceMutation) ClearVerificationErrors() {
	m.verification_errors = nil
	m.appendverification_errors = nil
	m.clearedFields[evidence.FieldVerificationErrors] = struct{}{}
}

// VerificationErrorsCleared returns if the "verification_errors" field was cleared in this mutation.
func (m *EvidenceMutation) VerificationErrorsCleared() bool {
	_, ok := m.clearedFields[evidence.FieldVerificationErrors]
	return ok
}

// ResetVerificationErrors resets all changes to the "verification_errors" field.
func (m *EvidenceMutation) ResetVerificationErrors() {
	m.verification_errors = nil
	m.appendverification_errors = nil
	delete(m.clearedFields, evidence.FieldVerificationErrors)
}

// SetLanguage sets the "language" field.
func (m *EvidenceMutation) SetLanguage(s string) {
	m.language = &s
}

// Language returns the value of the "language" field in the mutation.
func (m *EvidenceMutation) Language() (r string, exists bool) {
	v := m.language
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguage returns the old "language" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldLanguage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguage: %w", err)
	}
	return oldValue.Language, nil
}

// ClearLanguage clears the value of the "language" field.
func (m *EvidenceMutation) ClearLanguage() {
	m.language = nil
	m.clearedFields[evidence.FieldLanguage] = struct{}{}
}

// LanguageCleared returns if the "language" field was cleared in this mutation.
func (m *EvidenceMutation) LanguageCleared() bool {
	_, ok := m.clearedFields[evidence.FieldLanguage]
	return ok
}

// ResetLanguage resets all changes to the "language" field.
func (m *EvidenceMutation) ResetLanguage() {
	m.language = nil
	delete(m.clearedFields, evidence.FieldLanguage)
}

// SetFramework sets the "framework" field.
func (m *EvidenceMutation) SetFramework(s string) {
	m.framework = &s
}

// Framework returns the value of the "framework" field in the mutation.
func (m *EvidenceMutation) Framework() (r string, exists bool) {
	v := m.framework
	if v == nil {
		return
	}
	return *v, true
}

// OldFramework returns the old "framework" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldFramework(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFramework is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFramework requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFramework: %w", err)
	}
	return oldValue.Framework, nil
}

// ClearFramework clears the value of the "framework" field.
func (m *EvidenceMutation) ClearFramework() {
	m.framework = nil
	m.clearedFields[evidence.FieldFramework] = struct{}{}
}

// FrameworkCleared returns if the "framework" field was cleared in this mutation.
func (m *EvidenceMutation) FrameworkCleared() bool {
	_, ok := m.clearedFields[evidence.FieldFramework]
	return ok
}

// ResetFramework resets all changes to the "framework" field.
func (m *EvidenceMutation) ResetFramework() {
	m.framework = nil
	delete(m.clearedFields, evidence.FieldFramework)
}

// SetCreatedAt sets the "created_at" field.
func (m *EvidenceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EvidenceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EvidenceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the EvidenceMutation builder.
func (m *EvidenceMutation) Where(ps ...predicate.Evidence) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EvidenceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EvidenceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Evidence, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EvidenceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EvidenceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Evidence).
func (m *EvidenceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EvidenceMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.task_id != nil {
		fields = append(fields, evidence.FieldTaskID)
	}
	if m.agent_id != nil {
		fields = append(fields, evidence.FieldAgentID)
	}
	if m.task_description != nil {
		fields = append(fields, evidence.FieldTaskDescription)
	}
	if m.verified != nil {
		fields = append(fields, evidence.FieldVerified)
	}
	if m.test_result != nil {
		fields = append(fields, evidence.FieldTestResult)
	}
	if m.skip_violations != nil {
		fields = append(fields, evidence.FieldSkipViolations)
	}
	if m.coverage != nil {
		fields = append(fields, evidence.FieldCoverage)
	}
	if m.quality_metrics != nil {
		fields = append(fields, evidence.FieldQualityMetrics)
	}
	if m.verification_errors != nil {
		fields = append(fields, evidence.FieldVerificationErrors)
	}
	if m.language != nil {
		fields = append(fields, evidence.FieldLanguage)
	}
	if m.framework != nil {
		fields = append(fields, evidence.FieldFramework)
	}
	if m.created_at != nil {
		fields = append(fields, evidence.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EvidenceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case evidence.FieldTaskID:
		return m.TaskID()
	case evidence.FieldAgentID:
		return m.AgentID()
	case evidence.FieldTaskDescription:
		return m.TaskDescription()
	case evidence.FieldVerified:
		return m.Verified()
	case evidence.FieldTestResult:
		return m.TestResult()
	case evidence.FieldSkipViolations:
		return m.SkipViolations()
	case evidence.FieldCoverage:
		return m.Coverage()
	case evidence.FieldQualityMetrics:
		return m.QualityMetrics()
	case evidence.FieldVerificationErrors:
		return m.VerificationErrors()
	case evidence.FieldLanguage:
		return m.Language()
	case evidence.FieldFramework:
		return m.Framework()
	case evidence.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EvidenceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case evidence.FieldTaskID:
		return m.OldTaskID(ctx)
	case evidence.FieldAgentID:
		return m.OldAgentID(ctx)
	case evidence.FieldTaskDescription:
		return m.OldTaskDescription(ctx)
	case evidence.FieldVerified:
		return m.OldVerified(ctx)
	case evidence.FieldTestResult:
		return m.OldTestResult(ctx)
	case evidence.FieldSkipViolations:
		return m.OldSkipViolations(ctx)
	case evidence.FieldCoverage:
		return m.OldCoverage(ctx)
	case evidence.FieldQualityMetrics:
		return m.OldQualityMetrics(ctx)
	case evidence.FieldVerificationErrors:
		return m.OldVerificationErrors(ctx)
	case evidence.FieldLanguage:
		return m.OldLanguage(ctx)
	case evidence.FieldFramework:
		return m.OldFramework(ctx)
	case evidence.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Evidence field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvidenceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case evidence.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case evidence.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case evidence.FieldTaskDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskDescription(v)
		return nil
	case evidence.FieldVerified:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerified(v)
		return nil
	case evidence.FieldTestResult:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTestResult(v)
		return nil
	case evidence.FieldSkipViolations:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkipViolations(v)
		return nil
	case evidence.FieldCoverage:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCoverage(v)
		return nil
	case evidence.FieldQualityMetrics:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQualityMetrics(v)
		return nil
	case evidence.FieldVerificationErrors:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerificationErrors(v)
		return nil
	case evidence.FieldLanguage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguage(v)
		return nil
	case evidence.FieldFramework:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFramework(v)
		return nil
	case evidence.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Evidence field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EvidenceMutation) AddedFields() []string {
	var fields []string
	if m.addcoverage != nil {
		fields = append(fields, evidence.FieldCoverage)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EvidenceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case evidence.FieldCoverage:
		return m.AddedCoverage()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvidenceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case evidence.FieldCoverage:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCoverage(v)
		return nil
	}
	return fmt.Errorf("unknown Evidence numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EvidenceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(evidence.FieldTaskDescription) {
		fields = append(fields, evidence.FieldTaskDescription)
	}
	if m.FieldCleared(evidence.FieldTestResult) {
		fields = append(fields, evidence.FieldTestResult)
	}
	if m.FieldCleared(evidence.FieldSkipViolations) {
		fields = append(fields, evidence.FieldSkipViolations)
	}
	if m.FieldCleared(evidence.FieldCoverage) {
		fields = append(fields, evidence.FieldCoverage)
	}
	if m.FieldCleared(evidence.FieldQualityMetrics) {
		fields = append(fields, evidence.FieldQualityMetrics)
	}
	if m.FieldCleared(evidence.FieldVerificationErrors) {
		fields = append(fields, evidence.FieldVerificationErrors)
	}
	if m.FieldCleared(evidence.FieldLanguage) {
		fields = append(fields, evidence.FieldLanguage)
	}
	if m.FieldCleared(evidence.FieldFramework) {
		fields = append(fields, evidence.FieldFramework)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EvidenceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EvidenceMutation) ClearField(name string) error {
	switch name {
	case evidence.FieldTaskDescription:
		m.ClearTaskDescription()
		return nil
	case evidence.FieldTestResult:
		m.ClearTestResult()
		return nil
	case evidence.FieldSkipViolations:
		m.ClearSkipViolations()
		return nil
	case evidence.FieldCoverage:
		m.ClearCoverage()
		return nil
	case evidence.FieldQualityMetrics:
		m.ClearQualityMetrics()
		return nil
	case evidence.FieldVerificationErrors:
		m.ClearVerificationErrors()
		return nil
	case evidence.FieldLanguage:
		m.ClearLanguage()
		return nil
	case evidence.FieldFramework:
		m.ClearFramework()
		return nil
	}
	return fmt.Errorf("unknown Evidence nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EvidenceMutation) ResetField(name string) error {
	switch name {
	case evidence.FieldTaskID:
		m.ResetTaskID()
		return nil
	case evidence.FieldAgentID:
		m.ResetAgentID()
		return nil
	case evidence.FieldTaskDescription:
		m.ResetTaskDescription()
		return nil
	case evidence.FieldVerified:
		m.ResetVerified()
		return nil
	case evidence.FieldTestResult:
		m.ResetTestResult()
		return nil
	case evidence.FieldSkipViolations:
		m.ResetSkipViolations()
		return nil
	case evidence.FieldCoverage:
		m.ResetCoverage()
		return nil
	case evidence.FieldQualityMetrics:
		m.ResetQualityMetrics()
		return nil
	case evidence.FieldVerificationErrors:
		m.ResetVerificationErrors()
		return nil
	case evidence.FieldLanguage:
		m.ResetLanguage()
		return nil
	case evidence.FieldFramework:
		m.ResetFramework()
		return nil
	case evidence.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Evidence field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EvidenceMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EvidenceMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EvidenceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EvidenceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EvidenceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EvidenceMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EvidenceMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Evidence unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EvidenceMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Evidence edge %s", name)
}

// IssueMutation represents an operation that mutates the Issue nodes in the graph.
type IssueMutation struct {
	config
	op               Op
	typ              string
	id               *string
	title            *string
	description      *string
	priority         *int
	addpriority      *int
	workflow_step    *int
	addworkflow_step *int
	created_at       *time.Time
	clearedFields    map[string]struct{}
	project          *string
	clearedproject   bool
	tasks            map[string]struct{}
	removedtasks     map[string]struct{}
	clearedtasks     bool
	done             bool
	oldValue         func(context.Context) (*Issue, error)
	predicates       []predicate.Issue
}

var _ ent.Mutation = (*IssueMutation)(nil)

// issueOption allows management of the mutation configuration using functional options.
type issueOption func(*IssueMutation)

// newIssueMutation creates new mutation for the Issue entity.
func newIssueMutation(c config, op Op, opts ...issueOption) *IssueMutation {
	m := &IssueMutation{
		config:        c,
		op:            op,
		typ:           TypeIssue,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withIssueID sets the ID field of the mutation.
func withIssueID(id string) issueOption {
	return func(m *IssueMutation) {
		var (
			err   error
			once  sync.Once
			value *Issue
		)
		m.oldValue = func(ctx context.Context) (*Issue, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Issue.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withIssue sets the old Issue of the mutation.
func withIssue(node *Issue) issueOption {
	return func(m *IssueMutation) {
		m.oldValue = func(context.Context) (*Issue, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m IssueMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m IssueMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Issue entities.
func (m *IssueMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *IssueMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *IssueMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Issue.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *IssueMutation) SetProjectID(s string) {
	m.project = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *IssueMutation) ProjectID() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Issue entity.
// If the Issue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IssueMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *IssueMutation) ResetProjectID() {
	m.project = nil
}

// SetTitle sets the "title" field.
func (m *IssueMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *IssueMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Issue entity.
// If the Issue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IssueMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *IssueMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *IssueMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *IssueMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Issue entity.
// If the Issue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IssueMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *IssueMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[issue.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *IssueMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[issue.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *IssueMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, issue.FieldDescription)
}

// SetPriority sets the "priority" field.
func (m *IssueMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *IssueMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Issue entity.
// If the Issue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IssueMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *IssueMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *IssueMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *IssueMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetWorkflowStep sets the "workflow_step" field.
func (m *IssueMutation) SetWorkflowStep(i int) {
	m.workflow_step = &i
	m.addworkflow_step = nil
}

// WorkflowStep returns the value of the "workflow_step" field in the mutation.
func (m *IssueMutation) WorkflowStep() (r int, exists bool) {
	v := m.workflow_step
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkflowStep returns the old "workflow_step" field's value of the Issue entity.
// If the Issue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IssueMutation) OldWorkflowStep(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkflowStep is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkflowStep requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkflowStep: %w", err)
	}
	return oldValue.WorkflowStep, nil
}

// AddWorkflowStep adds i to the "workflow_step" field.
func (m *IssueMutation) AddWorkflowStep(i int) {
	if m.addworkflow_step != nil {
		*m.addworkflow_step += i
	} else {
		m.addworkflow_step = &i
	}
}

// AddedWorkflowStep returns the value that was added to the "workflow_step" field in this mutation.
func (m *IssueMutation) AddedWorkflowStep() (r int, exists bool) {
	v := m.addworkflow_step
	if v == nil {
		return
	}
	return *v, true
}

// ResetWorkflowStep resets all changes to the "workflow_step" field.
func (m *IssueMutation) ResetWorkflowStep() {
	m.workflow_step = nil
	m.addworkflow_step = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *IssueMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *IssueMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Issue entity.
// If the Issue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IssueMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *IssueMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *IssueMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[issue.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *IssueMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *IssueMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *IssueMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// AddTaskIDs adds the "tasks" edge to the Task entity by ids.
func (m *IssueMutation) AddTaskIDs(ids ...string) {
	if m.tasks == nil {
		m.tasks = make(map[string]struct{})
	}
	for i := range ids {
		m.tasks[ids[i]] = struct{}{}
	}
}

// ClearTasks clears the "tasks" edge to the Task entity.
func (m *IssueMutation) ClearTasks() {
	m.clearedtasks = true
}

// TasksCleared reports if the "tasks" edge to the Task entity was cleared.
func (m *IssueMutation) TasksCleared() bool {
	return m.clearedtasks
}

// RemoveTaskIDs removes the "tasks" edge to the Task entity by IDs.
func (m *IssueMutation) RemoveTaskIDs(ids ...string) {
	if m.removedtasks == nil {
		m.removedtasks = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.tasks, ids[i])
		m.removedtasks[ids[i]] = struct{}{}
	}
}

// RemovedTasks returns the removed IDs of the "tasks" edge to the Task entity.
func (m *IssueMutation) RemovedTasksIDs() (ids []string) {
	for id := range m.removedtasks {
		ids = append(ids, id)
	}
	return
}

// TasksIDs returns the "tasks" edge IDs in the mutation.
func (m *IssueMutation) TasksIDs() (ids []string) {
	for id := range m.tasks {
		ids = append(ids, id)
	}
	return
}

// ResetTasks resets all changes to the "tasks" edge.
func (m *IssueMutation) ResetTasks() {
	m.tasks = nil
	m.clearedtasks = false
	m.removedtasks = nil
}

// Where appends a list predicates to the IssueMutation builder.
func (m *IssueMutation) Where(ps ...predicate.Issue) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the IssueMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *IssueMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Issue, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *IssueMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *IssueMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Issue).
func (m *IssueMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *IssueMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.project != nil {
		fields = append(fields, issue.FieldProjectID)
	}
	if m.title != nil {
		fields = append(fields, issue.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, issue.FieldDescription)
	}
	if m.priority != nil {
		fields = append(fields, issue.FieldPriority)
	}
	if m.workflow_step != nil {
		fields = append(fields, issue.FieldWorkflowStep)
	}
	if m.created_at != nil {
		fields = append(fields, issue.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *IssueMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case issue.FieldProjectID:
		return m.ProjectID()
	case issue.FieldTitle:
		return m.Title()
	case issue.FieldDescription:
		return m.Description()
	case issue.FieldPriority:
		return m.Priority()
	case issue.FieldWorkflowStep:
		return m.WorkflowStep()
	case issue.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *IssueMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case issue.FieldProjectID:
		return m.OldProjectID(ctx)
	case issue.FieldTitle:
		return m.OldTitle(ctx)
	case issue.FieldDescription:
		return m.OldDescription(ctx)
	case issue.FieldPriority:
		return m.OldPriority(ctx)
	case issue.FieldWorkflowStep:
		return m.OldWorkflowStep(ctx)
	case issue.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Issue field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IssueMutation) SetField(name string, value ent.Value) error {
	switch name {
	case issue.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case issue.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case issue.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case issue.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case issue.FieldWorkflowStep:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkflowStep(v)
		return nil
	case issue.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Issue field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *IssueMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, issue.FieldPriority)
	}
	if m.addworkflow_step != nil {
		fields = append(fields, issue.FieldWorkflowStep)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *IssueMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case issue.FieldPriority:
		return m.AddedPriority()
	case issue.FieldWorkflowStep:
		return m.AddedWorkflowStep()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IssueMutation) AddField(name string, value ent.Value) error {
	switch name {
	case issue.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	case issue.FieldWorkflowStep:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWorkflowStep(v)
		return nil
	}
	return fmt.Errorf("unknown Issue numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *IssueMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(issue.FieldDescription) {
		fields = append(fields, issue.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *IssueMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *IssueMutation) ClearField(name string) error {
	switch name {
	case issue.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown Issue nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *IssueMutation) ResetField(name string) error {
	switch name {
	case issue.FieldProjectID:
		m.ResetProjectID()
		return nil
	case issue.FieldTitle:
		m.ResetTitle()
		return nil
	case issue.FieldDescription:
		m.ResetDescription()
		return nil
	case issue.FieldPriority:
		m.ResetPriority()
		return nil
	case issue.FieldWorkflowStep:
		m.ResetWorkflowStep()
		return nil
	case issue.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Issue field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *IssueMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.project != nil {
		edges = append(edges, issue.EdgeProject)
	}
	if m.tasks != nil {
		edges = append(edges, issue.EdgeTasks)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *IssueMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case issue.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case issue.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.tasks))
		for id := range m.tasks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *IssueMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedtasks != nil {
		edges = append(edges, issue.EdgeTasks)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *IssueMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case issue.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.removedtasks))
		for id := range m.removedtasks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *IssueMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedproject {
		edges = append(edges, issue.EdgeProject)
	}
	if m.clearedtasks {
		edges = append(edges, issue.EdgeTasks)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *IssueMutation) EdgeCleared(name string) bool {
	switch name {
	case issue.EdgeProject:
		return m.clearedproject
	case issue.EdgeTasks:
		return m.clearedtasks
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *IssueMutation) ClearEdge(name string) error {
	switch name {
	case issue.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown Issue unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *IssueMutation) ResetEdge(name string) error {
	switch name {
	case issue.EdgeProject:
		m.ResetProject()
		return nil
	case issue.EdgeTasks:
		m.ResetTasks()
		return nil
	}
	return fmt.Errorf("unknown Issue edge %s", name)
}

// ProjectMutation represents an operation that mutates the Project nodes in the graph.
type ProjectMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	name                 *string
	workspace_path       *string
	status               *project.Status
	phase                *project.Phase
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	issues               map[string]struct{}
	removedissues        map[string]struct{}
	clearedissues        bool
	tasks                map[string]struct{}
	removedtasks         map[string]struct{}
	clearedtasks         bool
	context_items        map[string]struct{}
	removedcontext_items map[string]struct{}
	clearedcontext_items bool
	done                 bool
	oldValue             func(context.Context) (*Project, error)
	predicates           []predicate.Project
}

var _ ent.Mutation = (*ProjectMutation)(nil)

// projectOption allows management of the mutation configuration using functional options.
type projectOption func(*ProjectMutation)

// newProjectMutation creates new mutation for the Project entity.
func newProjectMutation(c config, op Op, opts ...projectOption) *ProjectMutation {
	m := &ProjectMutation{
		config:        c,
		op:            op,
		typ:           TypeProject,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProjectID sets the ID field of the mutation.
func withProjectID(id string) projectOption {
	return func(m *ProjectMutation) {
		var (
			err   error
			once  sync.Once
			value *Project
		)
		m.oldValue = func(ctx context.Context) (*Project, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Project.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProject sets the old Project of the mutation.
func withProject(node *Project) projectOption {
	return func(m *ProjectMutation) {
		m.oldValue = func(context.Context) (*Project, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProjectMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProjectMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Project entities.
func (m *ProjectMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProjectMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProjectMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Project.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ProjectMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ProjectMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ProjectMutation) ResetName() {
	m.name = nil
}

// SetWorkspacePath sets the "workspace_path" field.
func (m *ProjectMutation) SetWorkspacePath(s string) {
	m.workspace_path = &s
}

// WorkspacePath returns the value of the "workspace_path" field in the mutation.
func (m *ProjectMutation) WorkspacePath() (r string, exists bool) {
	v := m.workspace_path
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspacePath returns the old "workspace_path" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldWorkspacePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspacePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspacePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspacePath: %w", err)
	}
	return oldValue.WorkspacePath, nil
}

// ResetWorkspacePath resets all changes to the "workspace_path" field.
func (m *ProjectMutation) ResetWorkspacePath() {
	m.workspace_path = nil
}

// SetStatus sets the "status" field.
func (m *ProjectMutation) SetStatus(pr project.Status) {
	m.status = &pr
}

// Status returns the value of the "status" field in the mutation.
func (m *ProjectMutation) Status() (r project.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldStatus(ctx context.Context) (v project.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ProjectMutation) ResetStatus() {
	m.status = nil
}

// SetPhase sets the "phase" field.
func (m *ProjectMutation) SetPhase(pr project.Phase) {
	m.phase = &pr
}

// Phase returns the value of the "phase" field in the mutation.
func (m *ProjectMutation) Phase() (r project.Phase, exists bool) {
	v := m.phase
	if v == nil {
		return
	}
	return *v, true
}

// OldPhase returns the old "phase" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldPhase(ctx context.Context) (v project.Phase, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhase: %w", err)
	}
	return oldValue.Phase, nil
}

// ResetPhase resets all changes to the "phase" field.
func (m *ProjectMutation) ResetPhase() {
	m.phase = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ProjectMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProjectMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProjectMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProjectMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProjectMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProjectMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddIssueIDs adds the "issues" edge to the Issue entity by ids.
func (m *ProjectMutation) AddIssueIDs(ids ...string) {
	if m.issues == nil {
		m.issues = make(map[string]struct{})
	}
	for i := range ids {
		m.issues[ids[i]] = struct{}{}
	}
}

// ClearIssues clears the "issues" edge to the Issue entity.
func (m *ProjectMutation) ClearIssues() {
	m.clearedissues = true
}

// IssuesCleared reports if the "issues" edge to the Issue entity was cleared.
func (m *ProjectMutation) IssuesCleared() bool {
	return m.clearedissues
}

// RemoveIssueIDs removes the "issues" edge to the Issue entity by IDs.
func (m *ProjectMutation) RemoveIssueIDs(ids ...string) {
	if m.removedissues == nil {
		m.removedissues = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.issues, ids[i])
		m.removedissues[ids[i]] = struct{}{}
	}
}

// RemovedIssues returns the removed IDs of the "issues" edge to the Issue entity.
func (m *ProjectMutation) RemovedIssuesIDs() (ids []string) {
	for id := range m.removedissues {
		ids = append(ids, id)
	}
	return
}

// IssuesIDs returns the "issues" edge IDs in the mutation.
func (m *ProjectMutation) IssuesIDs() (ids []string) {
	for id := range m.issues {
		ids = append(ids, id)
	}
	return
}

// ResetIssues resets all changes to the "issues" edge.
func (m *ProjectMutation) ResetIssues() {
	m.issues = nil
	m.clearedissues = false
	m.removedissues = nil
}

// AddTaskIDs adds the "tasks" edge to the Task entity by ids.
func (m *ProjectMutation) AddTaskIDs(ids ...string) {
	if m.tasks == nil {
		m.tasks = make(map[string]struct{})
	}
	for i := range ids {
		m.tasks[ids[i]] = struct{}{}
	}
}

// ClearTasks clears the "tasks" edge to the Task entity.
func (m *ProjectMutation) ClearTasks() {
	m.clearedtasks = true
}

// TasksCleared reports if the "tasks" edge to the Task entity was cleared.
func (m *ProjectMutation) TasksCleared() bool {
	return m.clearedtasks
}

// RemoveTaskIDs removes the "tasks" edge to the Task entity by IDs.
func (m *ProjectMutation) RemoveTaskIDs(ids ...string) {
	if m.removedtasks == nil {
		m.removedtasks = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.tasks, ids[i])
		m.removedtasks[ids[i]] = struct{}{}
	}
}

// RemovedTasks returns the removed IDs of the "tasks" edge to the Task entity.
func (m *ProjectMutation) RemovedTasksIDs() (ids []string) {
	for id := range m.removedtasks {
		ids = append(ids, id)
	}
	return
}

// TasksIDs returns the "tasks" edge IDs in the mutation.
func (m *ProjectMutation) TasksIDs() (ids []string) {
	for id := range m.tasks {
		ids = append(ids, id)
	}
	return
}

// ResetTasks resets all changes to the "tasks" edge.
func (m *ProjectMutation) ResetTasks() {
	m.tasks = nil
	m.clearedtasks = false
	m.removedtasks = nil
}

// AddContextItemIDs adds the "context_items" edge to the ContextItem entity by ids.
func (m *ProjectMutation) AddContextItemIDs(ids ...string) {
	if m.context_items == nil {
		m.context_items = make(map[string]struct{})
	}
	for i := range ids {
		m.context_items[ids[i]] = struct{}{}
	}
}

// ClearContextItems clears the "context_items" edge to the ContextItem entity.
func (m *ProjectMutation) ClearContextItems() {
	m.clearedcontext_items = true
}

// ContextItemsCleared reports if the "context_items" edge to the ContextItem entity was cleared.
func (m *ProjectMutation) ContextItemsCleared() bool {
	return m.clearedcontext_items
}

// RemoveContextItemIDs removes the "context_items" edge to the ContextItem entity by IDs.
func (m *ProjectMutation) RemoveContextItemIDs(ids ...string) {
	if m.removedcontext_items == nil {
		m.removedcontext_items = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.context_items, ids[i])
		m.removedcontext_items[ids[i]] = struct{}{}
	}
}

// RemovedContextItems returns the removed IDs of the "context_items" edge to the ContextItem entity.
func (m *ProjectMutation) RemovedContextItemsIDs() (ids []string) {
	for id := range m.removedcontext_items {
		ids = append(ids, id)
	}
	return
}

// ContextItemsIDs returns the "context_items" edge IDs in the mutation.
func (m *ProjectMutation) ContextItemsIDs() (ids []string) {
	for id := range m.context_items {
		ids = append(ids, id)
	}
	return
}

// ResetContextItems resets all changes to the "context_items" edge.
func (m *ProjectMutation) ResetContextItems() {
	m.context_items = nil
	m.clearedcontext_items = false
	m.removedcontext_items = nil
}

// Where appends a list predicates to the ProjectMutation builder.
func (m *ProjectMutation) Where(ps ...predicate.Project) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProjectMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProjectMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Project, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProjectMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProjectMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Project).
func (m *ProjectMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProjectMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.name != nil {
		fields = append(fields, project.FieldName)
	}
	if m.workspace_path != nil {
		fields = append(fields, project.FieldWorkspacePath)
	}
	if m.status != nil {
		fields = append(fields, project.FieldStatus)
	}
	if m.phase != nil {
		fields = append(fields, project.FieldPhase)
	}
	if m.created_at != nil {
		fields = append(fields, project.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, project.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProjectMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case project.FieldName:
		return m.Name()
	case project.FieldWorkspacePath:
		return m.WorkspacePath()
	case project.FieldStatus:
		return m.Status()
	case project.FieldPhase:
		return m.Phase()
	case project.FieldCreatedAt:
		return m.CreatedAt()
	case project.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProjectMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case project.FieldName:
		return m.OldName(ctx)
	case project.FieldWorkspacePath:
		return m.OldWorkspacePath(ctx)
	case project.FieldStatus:
		return m.OldStatus(ctx)
	case project.FieldPhase:
		return m.OldPhase(ctx)
	case project.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case project.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Project field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) SetField(name string, value ent.Value) error {
	switch name {
	case project.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case project.FieldWorkspacePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspacePath(v)
		return nil
	case project.FieldStatus:
		v, ok := value.(project.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case project.FieldPhase:
		v, ok := value.(project.Phase)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhase(v)
		return nil
	case project.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case project.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProjectMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProjectMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Project numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProjectMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProjectMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProjectMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Project nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProjectMutation) ResetField(name string) error {
	switch name {
	case project.FieldName:
		m.ResetName()
		return nil
	case project.FieldWorkspacePath:
		m.ResetWorkspacePath()
		return nil
	case project.FieldStatus:
		m.ResetStatus()
		return nil
	case project.FieldPhase:
		m.ResetPhase()
		return nil
	case project.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case project.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProjectMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.issues != nil {
		edges = append(edges, project.EdgeIssues)
	}
	if m.tasks != nil {
		edges = append(edges, project.EdgeTasks)
	}
	if m.context_items != nil {
		edges = append(edges, project.EdgeContextItems)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProjectMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeIssues:
		ids := make([]ent.Value, 0, len(m.issues))
		for id := range m.issues {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.tasks))
		for id := range m.tasks {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeContextItems:
		ids := make([]ent.Value, 0, len(m.context_items))
		for id := range m.context_items {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProjectMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedissues != nil {
		edges = append(edges, project.EdgeIssues)
	}
	if m.removedtasks != nil {
		edges = append(edges, project.EdgeTasks)
	}
	if m.removedcontext_items != nil {
		edges = append(edges, project.EdgeContextItems)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProjectMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeIssues:
		ids := make([]ent.Value, 0, len(m.removedissues))
		for id := range m.removedissues {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.removedtasks))
		for id := range m.removedtasks {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeContextItems:
		ids := make([]ent.Value, 0, len(m.removedcontext_items))
		for id := range m.removedcontext_items {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProjectMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedissues {
		edges = append(edges, project.EdgeIssues)
	}
	if m.clearedtasks {
		edges = append(edges, project.EdgeTasks)
	}
	if m.clearedcontext_items {
		edges = append(edges, project.EdgeContextItems)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProjectMutation) EdgeCleared(name string) bool {
	switch name {
	case project.EdgeIssues:
		return m.clearedissues
	case project.EdgeTasks:
		return m.clearedtasks
	case project.EdgeContextItems:
		return m.clearedcontext_items
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProjectMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Project unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProjectMutation) ResetEdge(name string) error {
	switch name {
	case project.EdgeIssues:
		m.ResetIssues()
		return nil
	case project.EdgeTasks:
		m.ResetTasks()
		return nil
	case project.EdgeContextItems:
		m.ResetContextItems()
		return nil
	}
	return fmt.Errorf("unknown Project edge %s", name)
}

// ProjectAgentMutation represents an operation that mutates the ProjectAgent nodes in the graph.
type ProjectAgentMutation struct {
	config
	op            Op
	typ           string
	id            *string
	project_id    *string
	agent_id      *string
	is_active     *bool
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ProjectAgent, error)
	predicates    []predicate.ProjectAgent
}

var _ ent.Mutation = (*ProjectAgentMutation)(nil)

// projectagentOption allows management of the mutation configuration using functional options.
type projectagentOption func(*ProjectAgentMutation)

// newProjectAgentMutation creates new mutation for the ProjectAgent entity.
func newProjectAgentMutation(c config, op Op, opts ...projectagentOption) *ProjectAgentMutation {
	m := &ProjectAgentMutation{
		config:        c,
		op:            op,
		typ:           TypeProjectAgent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProjectAgentID sets the ID field of the mutation.
func withProjectAgentID(id string) projectagentOption {
	return func(m *ProjectAgentMutation) {
		var (
			err   error
			once  sync.Once
			value *ProjectAgent
		)
		m.oldValue = func(ctx context.Context) (*ProjectAgent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProjectAgent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProjectAgent sets the old ProjectAgent of the mutation.
func withProjectAgent(node *ProjectAgent) projectagentOption {
	return func(m *ProjectAgentMutation) {
		m.oldValue = func(context.Context) (*ProjectAgent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProjectAgentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProjectAgentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ProjectAgent entities.
func (m *ProjectAgentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProjectAgentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProjectAgentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProjectAgent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *ProjectAgentMutation) SetProjectID(s string) {
	m.project_id = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *ProjectAgentMutation) ProjectID() (r string, exists bool) {
	v := m.project_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the ProjectAgent entity.
// If the ProjectAgent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectAgentMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *ProjectAgentMutation) ResetProjectID() {
	m.project_id = nil
}

// SetAgentID sets the "agent_id" field.
func (m *ProjectAgentMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *ProjectAgentMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the ProjectAgent entity.
// If the ProjectAgent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectAgentMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *ProjectAgentMutation) ResetAgentID() {
	m.agent_id = nil
}

// SetIsActive sets the "is_active" field.
func (m *ProjectAgentMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *ProjectAgentMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the ProjectAgent entity.
// If the ProjectAgent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectAgentMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *ProjectAgentMutation) ResetIsActive() {
	m.is_active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ProjectAgentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProjectAgentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ProjectAgent entity.
// If the ProjectAgent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectAgentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProjectAgentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ProjectAgentMutation builder.
func (m *ProjectAgentMutation) Where(ps ...predicate.ProjectAgent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProjectAgentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProjectAgentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProjectAgent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProjectAgentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProjectAgentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProjectAgent).
func (m *ProjectAgentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProjectAgentMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.project_id != nil {
		fields = append(fields, projectagent.FieldProjectID)
	}
	if m.agent_id != nil {
		fields = append(fields, projectagent.FieldAgentID)
	}
	if m.is_active != nil {
		fields = append(fields, projectagent.FieldIsActive)
	}
	if m.created_at != nil {
		fields = append(fields, projectagent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProjectAgentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case projectagent.FieldProjectID:
		return m.ProjectID()
	case projectagent.FieldAgentID:
		return m.AgentID()
	case projectagent.FieldIsActive:
		return m.IsActive()
	case projectagent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProjectAgentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case projectagent.FieldProjectID:
		return m.OldProjectID(ctx)
	case projectagent.FieldAgentID:
		return m.OldAgentID(ctx)
	case projectagent.FieldIsActive:
		return m.OldIsActive(ctx)
	case projectagent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ProjectAgent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectAgentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case projectagent.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case projectagent.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case projectagent.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case projectagent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ProjectAgent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProjectAgentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProjectAgentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectAgentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ProjectAgent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProjectAgentMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProjectAgentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProjectAgentMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ProjectAgent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProjectAgentMutation) ResetField(name string) error {
	switch name {
	case projectagent.FieldProjectID:
		m.ResetProjectID()
		return nil
	case projectagent.FieldAgentID:
		m.ResetAgentID()
		return nil
	case projectagent.FieldIsActive:
		m.ResetIsActive()
		return nil
	case projectagent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ProjectAgent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProjectAgentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProjectAgentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProjectAgentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProjectAgentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProjectAgentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProjectAgentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProjectAgentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ProjectAgent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProjectAgentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ProjectAgent edge %s", name)
}

// TaskMutation represents an operation that mutates the Task nodes in the graph.
type TaskMutation struct {
	config
	op                         Op
	typ                        string
	id                         *string
	task_number                *string
	title                      *string
	description                *string
	status                     *task.Status
	assigned_to                *string
	priority                   *int
	addpriority                *int
	quality_gate_status        *task.QualityGateStatus
	quality_gate_failures      *string
	requires_human_approval    *bool
	commit_sha                 *string
	created_at                 *time.Time
	started_at                 *time.Time
	completed_at               *time.Time
	clearedFields              map[string]struct{}
	project                    *string
	clearedproject             bool
	issue                      *string
	clearedissue               bool
	test_results               map[string]struct{}
	removedtest_results        map[string]struct{}
	clearedtest_results        bool
	correction_attempts        map[string]struct{}
	removedcorrection_attempts map[string]struct{}
	clearedcorrection_attempts bool
	done                       bool
	oldValue                   func(context.Context) (*Task, error)
	predicates                 []predicate.Task
}

var _ ent.Mutation = (*TaskMutation)(nil)

// taskOption allows management of the mutation configuration using functional options.
type taskOption func(*TaskMutation)

// newTaskMutation creates new mutation for the Task entity.
func newTaskMutation(c config, op Op, opts ...taskOption) *TaskMutation {
	m := &TaskMutation{
		config:        c,
		op:            op,
		typ:           TypeTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskID sets the ID field of the mutation.
func withTaskID(id string) taskOption {
	return func(m *TaskMutation) {
		var (
			err   error
			once  sync.Once
			value *Task
		)
		m.oldValue = func(ctx context.Context) (*Task, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Task.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTask sets the old Task of the mutation.
func withTask(node *Task) taskOption {
	return func(m *TaskMutation) {
		m.oldValue = func(context.Context) (*Task, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Task entities.
func (m *TaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Task.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *TaskMutation) SetProjectID(s string) {
	m.project = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *TaskMutation) ProjectID() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *TaskMutation) ResetProjectID() {
	m.project = nil
}

// SetIssueID sets the "issue_id" field.
func (m *TaskMutation) SetIssueID(s string) {
	m.issue = &s
}

// IssueID returns the value of the "issue_id" field in the mutation.
func (m *TaskMutation) IssueID() (r string, exists bool) {
	v := m.issue
	if v == nil {
		return
	}
	return *v, true
}

// OldIssueID returns the old "issue_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldIssueID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIssueID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIssueID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIssueID: %w", err)
	}
	return oldValue.IssueID, nil
}

// ClearIssueID clears the value of the "issue_id" field.
func (m *TaskMutation) ClearIssueID() {
	m.issue = nil
	m.clearedFields[task.FieldIssueID] = struct{}{}
}

// IssueIDCleared returns if the "issue_id" field was cleared in this mutation.
func (m *TaskMutation) IssueIDCleared() bool {
	_, ok := m.clearedFields[task.FieldIssueID]
	return ok
}

// ResetIssueID resets all changes to the "issue_id" field.
func (m *TaskMutation) ResetIssueID() {
	m.issue = nil
	delete(m.clearedFields, task.FieldIssueID)
}

// SetTaskNumber sets the "task_number" field.
func (m *TaskMutation) SetTaskNumber(s string) {
	m.task_number = &s
}

// TaskNumber returns the value of the "task_number" field in the mutation.
func (m *TaskMutation) TaskNumber() (r string, exists bool) {
	v := m.task_number
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskNumber returns the old "task_number" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTaskNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskNumber: %w", err)
	}
	return oldValue.TaskNumber, nil
}

// ResetTaskNumber resets all changes to the "task_number" field.
func (m *TaskMutation) ResetTaskNumber() {
	m.task_number = nil
}

// SetTitle sets the "title" field.
func (m *TaskMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *TaskMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *TaskMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *TaskMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TaskMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *TaskMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[task.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *TaskMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[task.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *TaskMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, task.FieldDescription)
}

// SetStatus sets the "status" field.
func (m *TaskMutation) SetStatus(t task.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TaskMutation) Status() (r task.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStatus(ctx context.Context) (v task.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TaskMutation) ResetStatus() {
	m.status = nil
}

// SetAssignedTo sets the "assigned_to" field.
func (m *TaskMutation) SetAssignedTo(s string) {
	m.assigned_to = &s
}

// AssignedTo returns the value of the "assigned_to" field in the mutation.
func (m *TaskMutation) AssignedTo() (r string, exists bool) {
	v := m.assigned_to
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignedTo returns the old "assigned_to" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldAssignedTo(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignedTo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignedTo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignedTo: %w", err)
	}
	return oldValue.AssignedTo, nil
}

// ClearAssignedTo clears the value of the "assigned_to" field.
func (m *TaskMutation) ClearAssignedTo() {
	m.assigned_to = nil
	m.clearedFields[task.FieldAssignedTo] = struct{}{}
}

// AssignedToCleared returns if the "assigned_to" field was cleared in this mutation.
func (m *TaskMutation) AssignedToCleared() bool {
	_, ok := m.clearedFields[task.FieldAssignedTo]
	return ok
}

// ResetAssignedTo resets all changes to the "assigned_to" field.
func (m *TaskMutation) ResetAssignedTo() {
	m.assigned_to = nil
	delete(m.clearedFields, task.FieldAssignedTo)
}

// SetPriority sets the "priority" field.
func (m *TaskMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *TaskMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *TaskMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *TaskMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *TaskMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetQualityGateStatus sets the "quality_gate_status" field.
func (m *TaskMutation) SetQualityGateStatus(tgs task.QualityGateStatus) {
	m.quality_gate_status = &tgs
}

// QualityGateStatus returns the value of the "quality_gate_status" field in the mutation.
func (m *TaskMutation) QualityGateStatus() (r task.QualityGateStatus, exists bool) {
	v := m.quality_gate_status
	if v == nil {
		return
	}
	return *v, true
}

// OldQualityGateStatus returns the old "quality_gate_status" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldQualityGateStatus(ctx context.Context) (v task.QualityGateStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQualityGateStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQualityGateStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQualityGateStatus: %w", err)
	}
	return oldValue.QualityGateStatus, nil
}

// ResetQualityGateStatus resets all changes to the "quality_gate_status" field.
func (m *TaskMutation) ResetQualityGateStatus() {
	m.quality_gate_status = nil
}

// SetQualityGateFailures sets the "quality_gate_failures" field.
func (m *TaskMutation) SetQualityGateFailures(s string) {
	m.quality_gate_failures = &s
}

// QualityGateFailures returns the value of the "quality_gate_failures" field in the mutation.
func (m *TaskMutation) QualityGateFailures() (r string, exists bool) {
	v := m.quality_gate_failures
	if v == nil {
		return
	}
	return *v, true
}

// OldQualityGateFailures returns the old "quality_gate_failures" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldQualityGateFailures(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQualityGateFailures is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQualityGateFailures requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQualityGateFailures: %w", err)
	}
	return oldValue.QualityGateFailures, nil
}

// ClearQualityGateFailures clears the value of the "quality_gate_failures" field.
func (m *TaskMutation) ClearQualityGateFailures() {
	m.quality_gate_failures = nil
	m.clearedFields[task.FieldQualityGateFailures] = struct{}{}
}

// QualityGateFailuresCleared returns if the "quality_gate_failures" field was cleared in this mutation.
func (m *TaskMutation) QualityGateFailuresCleared() bool {
	_, ok := m.clearedFields[task.FieldQualityGateFailures]
	return ok
}

// ResetQualityGateFailures resets all changes to the "quality_gate_failures" field.
func (m *TaskMutation) ResetQualityGateFailures() {
	m.quality_gate_failures = nil
	delete(m.clearedFields, task.FieldQualityGateFailures)
}

// SetRequiresHumanApproval sets the "requires_human_approval" field.
func (m *TaskMutation) SetRequiresHumanApproval(b bool) {
	m.requires_human_approval = &b
}

// RequiresHumanApproval returns the value of the "requires_human_approval" field in the mutation.
func (m *TaskMutation) RequiresHumanApproval() (r bool, exists bool) {
	v := m.requires_human_approval
	if v == nil {
		return
	}
	return *v, true
}

// OldRequiresHumanApproval returns the old "requires_human_approval" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldRequiresHumanApproval(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequiresHumanApproval is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequiresHumanApproval requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequiresHumanApproval: %w", err)
	}
	return oldValue.RequiresHumanApproval, nil
}

// ResetRequiresHumanApproval resets all changes to the "requires_human_approval" field.
func (m *TaskMutation) ResetRequiresHumanApproval() {
	m.requires_human_approval = nil
}

// SetCommitSha sets the "commit_sha" field.
func (m *TaskMutation) SetCommitSha(s string) {
	m.commit_sha = &s
}

// CommitSha returns the value of the "commit_sha" field in the mutation.
func (m *TaskMutation) CommitSha() (r string, exists bool) {
	v := m.commit_sha
	if v == nil {
		return
	}
	return *v, true
}

// OldCommitSha returns the old "commit_sha" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCommitSha(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommitSha is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommitSha requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommitSha: %w", err)
	}
	return oldValue.CommitSha, nil
}

// ClearCommitSha clears the value of the "commit_sha" field.
func (m *TaskMutation) ClearCommitSha() {
	m.commit_sha = nil
	m.clearedFields[task.FieldCommitSha] = struct{}{}
}

// CommitShaCleared returns if the "commit_sha" field was cleared in this mutation.
func (m *TaskMutation) CommitShaCleared() bool {
	_, ok := m.clearedFields[task.FieldCommitSha]
	return ok
}

// ResetCommitSha resets all changes to the "commit_sha" field.
func (m *TaskMutation) ResetCommitSha() {
	m.commit_sha = nil
	delete(m.clearedFields, task.FieldCommitSha)
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *TaskMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *TaskMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *TaskMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[task.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *TaskMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *TaskMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, task.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *TaskMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *TaskMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *TaskMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[task.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *TaskMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *TaskMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, task.FieldCompletedAt)
}

// ClearProject clears the "project" edge to the Project entity.
func (m *TaskMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[task.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *TaskMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *TaskMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *TaskMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// ClearIssue clears the "issue" edge to the Issue entity.
func (m *TaskMutation) ClearIssue() {
	m.clearedissue = true
	m.clearedFields[task.FieldIssueID] = struct{}{}
}

// IssueCleared reports if the "issue" edge to the Issue entity was cleared.
func (m *TaskMutation) IssueCleared() bool {
	return m.IssueIDCleared() || m.clearedissue
}

// IssueIDs returns the "issue" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// IssueID instead. It exists only for internal usage by the builders.
func (m *TaskMutation) IssueIDs() (ids []string) {
	if id := m.issue; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetIssue resets all changes to the "issue" edge.
func (m *TaskMutation) ResetIssue() {
	m.issue = nil
	m.clearedissue = false
}

// AddTestResultIDs adds the "test_results" edge to the TestResult entity by ids.
func (m *TaskMutation) AddTestResultIDs(ids ...string) {
	if m.test_results == nil {
		m.test_results = make(map[string]struct{})
	}
	for i := range ids {
		m.test_results[ids[i]] = struct{}{}
	}
}

// ClearTestResults clears the "test_results" edge to the TestResult entity.
func (m *TaskMutation) ClearTestResults() {
	m.clearedtest_results = true
}

// TestResultsCleared reports if the "test_results" edge to the TestResult entity was cleared.
func (m *TaskMutation) TestResultsCleared() bool {
	return m.clearedtest_results
}

// RemoveTestResultIDs removes the "test_results" edge to the TestResult entity by IDs.
func (m *TaskMutation) RemoveTestResultIDs(ids ...string) {
	if m.removedtest_results == nil {
		m.removedtest_results = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.test_results, ids[i])
		m.removedtest_results[ids[i]] = struct{}{}
	}
}

// RemovedTestResults returns the removed IDs of the "test_results" edge to the TestResult entity.
func (m *TaskMutation) RemovedTestResultsIDs() (ids []string) {
	for id := range m.removedtest_results {
		ids = append(ids, id)
	}
	return
}

// TestResultsIDs returns the "test_results" edge IDs in the mutation.
func (m *TaskMutation) TestResultsIDs() (ids []string) {
	for id := range m.test_results {
		ids = append(ids, id)
	}
	return
}

// ResetTestResults resets all changes to the "test_results" edge.
func (m *TaskMutation) ResetTestResults() {
	m.test_results = nil
	m.clearedtest_results = false
	m.removedtest_results = nil
}

// AddCorrectionAttemptIDs adds the "correction_attempts" edge to the CorrectionAttempt entity by ids.
func (m *TaskMutation) AddCorrectionAttemptIDs(ids ...string) {
	if m.correction_attempts == nil {
		m.correction_attempts = make(map[string]struct{})
	}
	for i := range ids {
		m.correction_attempts[ids[i]] = struct{}{}
	}
}

// ClearCorrectionAttempts clears the "correction_attempts" edge to the CorrectionAttempt entity.
func (m *TaskMutation) ClearCorrectionAttempts() {
	m.clearedcorrection_attempts = true
}

// CorrectionAttemptsCleared reports if the "correction_attempts" edge to the CorrectionAttempt entity was cleared.
func (m *TaskMutation) CorrectionAttemptsCleared() bool {
	return m.clearedcorrection_attempts
}

// RemoveCorrectionAttemptIDs removes the "correction_attempts" edge to the CorrectionAttempt entity by IDs.
func (m *TaskMutation) RemoveCorrectionAttemptIDs(ids ...string) {
	if m.removedcorrection_attempts == nil {
		m.removedcorrection_attempts = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.correction_attempts, ids[i])
		m.removedcorrection_attempts[ids[i]] = struct{}{}
	}
}

// RemovedCorrectionAttempts returns the removed IDs of the "correction_attempts" edge to the CorrectionAttempt entity.
func (m *TaskMutation) RemovedCorrectionAttemptsIDs() (ids []string) {
	for id := range m.removedcorrection_attempts {
		ids = append(ids, id)
	}
	return
}

// CorrectionAttemptsIDs returns the "correction_attempts" edge IDs in the mutation.
func (m *TaskMutation) CorrectionAttemptsIDs() (ids []string) {
	for id := range m.correction_attempts {
		ids = append(ids, id)
	}
	return
}

// ResetCorrectionAttempts resets all changes to the "correction_attempts" edge.
func (m *TaskMutation) ResetCorrectionAttempts() {
	m.correction_attempts = nil
	m.clearedcorrection_attempts = false
	m.removedcorrection_attempts = nil
}

// Where appends a list predicates to the TaskMutation builder.
func (m *TaskMutation) Where(ps ...predicate.Task) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Task, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Task).
func (m *TaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.project != nil {
		fields = append(fields, task.FieldProjectID)
	}
	if m.issue != nil {
		fields = append(fields, task.FieldIssueID)
	}
	if m.task_number != nil {
		fields = append(fields, task.FieldTaskNumber)
	}
	if m.title != nil {
		fields = append(fields, task.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, task.FieldDescription)
	}
	if m.status != nil {
		fields = append(fields, task.FieldStatus)
	}
	if m.assigned_to != nil {
		fields = append(fields, task.FieldAssignedTo)
	}
	if m.priority != nil {
		fields = append(fields, task.FieldPriority)
	}
	if m.quality_gate_status != nil {
		fields = append(fields, task.FieldQualityGateStatus)
	}
	if m.quality_gate_failures != nil {
		fields = append(fields, task.FieldQualityGateFailures)
	}
	if m.requires_human_approval != nil {
		fields = append(fields, task.FieldRequiresHumanApproval)
	}
	if m.commit_sha != nil {
		fields = append(fields, task.FieldCommitSha)
	}
	if m.created_at != nil {
		fields = append(fields, task.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, task.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, task.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case task.FieldProjectID:
		return m.ProjectID()
	case task.FieldIssueID:
		return m.IssueID()
	case task.FieldTaskNumber:
		return m.TaskNumber()
	case task.FieldTitle:
		return m.Title()
	case task.FieldDescription:
		return m.Description()
	case task.FieldStatus:
		return m.Status()
	case task.FieldAssignedTo:
		return m.AssignedTo()
	case task.FieldPriority:
		return m.Priority()
	case task.FieldQualityGateStatus:
		return m.QualityGateStatus()
	case task.FieldQualityGateFailures:
		return m.QualityGateFailures()
	case task.FieldRequiresHumanApproval:
		return m.RequiresHumanApproval()
	case task.FieldCommitSha:
		return m.CommitSha()
	case task.FieldCreatedAt:
		return m.CreatedAt()
	case task.FieldStartedAt:
		return m.StartedAt()
	case task.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case task.FieldProjectID:
		return m.OldProjectID(ctx)
	case task.FieldIssueID:
		return m.OldIssueID(ctx)
	case task.FieldTaskNumber:
		return m.OldTaskNumber(ctx)
	case task.FieldTitle:
		return m.OldTitle(ctx)
	case task.FieldDescription:
		return m.OldDescription(ctx)
	case task.FieldStatus:
		return m.OldStatus(ctx)
	case task.FieldAssignedTo:
		return m.OldAssignedTo(ctx)
	case task.FieldPriority:
		return m.OldPriority(ctx)
	case task.FieldQualityGateStatus:
		return m.OldQualityGateStatus(ctx)
	case task.FieldQualityGateFailures:
		return m.OldQualityGateFailures(ctx)
	case task.FieldRequiresHumanApproval:
		return m.OldRequiresHumanApproval(ctx)
	case task.FieldCommitSha:
		return m.OldCommitSha(ctx)
	case task.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case task.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case task.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Task field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case task.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case task.FieldIssueID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIssueID(v)
		return nil
	case task.FieldTaskNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskNumber(v)
		return nil
	case task.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case task.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case task.FieldStatus:
		v, ok := value.(task.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case task.FieldAssignedTo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignedTo(v)
		return nil
	case task.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case task.FieldQualityGateStatus:
		v, ok := value.(task.QualityGateStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQualityGateStatus(v)
		return nil
	case task.FieldQualityGateFailures:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQualityGateFailures(v)
		return nil
	case task.FieldRequiresHumanApproval:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequiresHumanApproval(v)
		return nil
	case task.FieldCommitSha:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommitSha(v)
		return nil
	case task.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case task.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case task.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, task.FieldPriority)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case task.FieldPriority:
		return m.AddedPriority()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case task.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	}
	return fmt.Errorf("unknown Task numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(task.FieldIssueID) {
		fields = append(fields, task.FieldIssueID)
	}
	if m.FieldCleared(task.FieldDescription) {
		fields = append(fields, task.FieldDescription)
	}
	if m.FieldCleared(task.FieldAssignedTo) {
		fields = append(fields, task.FieldAssignedTo)
	}
	if m.FieldCleared(task.FieldQualityGateFailures) {
		fields = append(fields, task.FieldQualityGateFailures)
	}
	if m.FieldCleared(task.FieldCommitSha) {
		fields = append(fields, task.FieldCommitSha)
	}
	if m.FieldCleared(task.FieldStartedAt) {
		fields = append(fields, task.FieldStartedAt)
	}
	if m.FieldCleared(task.FieldCompletedAt) {
		fields = append(fields, task.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskMutation) ClearField(name string) error {
	switch name {
	case task.FieldIssueID:
		m.ClearIssueID()
		return nil
	case task.FieldDescription:
		m.ClearDescription()
		return nil
	case task.FieldAssignedTo:
		m.ClearAssignedTo()
		return nil
	case task.FieldQualityGateFailures:
		m.ClearQualityGateFailures()
		return nil
	case task.FieldCommitSha:
		m.ClearCommitSha()
		return nil
	case task.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case task.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Task nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskMutation) ResetField(name string) error {
	switch name {
	case task.FieldProjectID:
		m.ResetProjectID()
		return nil
	case task.FieldIssueID:
		m.ResetIssueID()
		return nil
	case task.FieldTaskNumber:
		m.ResetTaskNumber()
		return nil
	case task.FieldTitle:
		m.ResetTitle()
		return nil
	case task.FieldDescription:
		m.ResetDescription()
		return nil
	case task.FieldStatus:
		m.ResetStatus()
		return nil
	case task.FieldAssignedTo:
		m.ResetAssignedTo()
		return nil
	case task.FieldPriority:
		m.ResetPriority()
		return nil
	case task.FieldQualityGateStatus:
		m.ResetQualityGateStatus()
		return nil
	case task.FieldQualityGateFailures:
		m.ResetQualityGateFailures()
		return nil
	case task.FieldRequiresHumanApproval:
		m.ResetRequiresHumanApproval()
		return nil
	case task.FieldCommitSha:
		m.ResetCommitSha()
		return nil
	case task.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case task.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case task.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.project != nil {
		edges = append(edges, task.EdgeProject)
	}
	if m.issue != nil {
		edges = append(edges, task.EdgeIssue)
	}
	if m.test_results != nil {
		edges = append(edges, task.EdgeTestResults)
	}
	if m.correction_attempts != nil {
		edges = append(edges, task.EdgeCorrectionAttempts)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case task.EdgeIssue:
		if id := m.issue; id != nil {
			return []ent.Value{*id}
		}
	case task.EdgeTestResults:
		ids := make([]ent.Value, 0, len(m.test_results))
		for id := range m.test_results {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeCorrectionAttempts:
		ids := make([]ent.Value, 0, len(m.correction_attempts))
		for id := range m.correction_attempts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedtest_results != nil {
		edges = append(edges, task.EdgeTestResults)
	}
	if m.removedcorrection_attempts != nil {
		edges = append(edges, task.EdgeCorrectionAttempts)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeTestResults:
		ids := make([]ent.Value, 0, len(m.removedtest_results))
		for id := range m.removedtest_results {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeCorrectionAttempts:
		ids := make([]ent.Value, 0, len(m.removedcorrection_attempts))
		for id := range m.removedcorrection_attempts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedproject {
		edges = append(edges, task.EdgeProject)
	}
	if m.clearedissue {
		edges = append(edges, task.EdgeIssue)
	}
	if m.clearedtest_results {
		edges = append(edges, task.EdgeTestResults)
	}
	if m.clearedcorrection_attempts {
		edges = append(edges, task.EdgeCorrectionAttempts)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskMutation) EdgeCleared(name string) bool {
	switch name {
	case task.EdgeProject:
		return m.clearedproject
	case task.EdgeIssue:
		return m.clearedissue
	case task.EdgeTestResults:
		return m.clearedtest_results
	case task.EdgeCorrectionAttempts:
		return m.clearedcorrection_attempts
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskMutation) ClearEdge(name string) error {
	switch name {
	case task.EdgeProject:
		m.ClearProject()
		return nil
	case task.EdgeIssue:
		m.ClearIssue()
		return nil
	}
	return fmt.Errorf("unknown Task unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskMutation) ResetEdge(name string) error {
	switch name {
	case task.EdgeProject:
		m.ResetProject()
		return nil
	case task.EdgeIssue:
		m.ResetIssue()
		return nil
	case task.EdgeTestResults:
		m.ResetTestResults()
		return nil
	case task.EdgeCorrectionAttempts:
		m.ResetCorrectionAttempts()
		return nil
	}
	return fmt.Errorf("unknown Task edge %s", name)
}

// TestResultMutation represents an operation that mutates the TestResult nodes in the graph.
type TestResultMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	status              *testresult.Status
	passed              *int
	addpassed           *int
	failed              *int
	addfailed           *int
	errors              *int
	adderrors           *int
	skipped             *int
	addskipped          *int
	duration_seconds    *float64
	addduration_seconds *float64
	output              *string
	created_at          *time.Time
	clearedFields       map[string]struct{}
	task                *string
	clearedtask         bool
	done                bool
	oldValue            func(context.Context) (*TestResult, error)
	predicates          []predicate.TestResult
}

var _ ent.Mutation = (*TestResultMutation)(nil)

// testresultOption allows management of the mutation configuration using functional options.
type testresultOption func(*TestResultMutation)

// newTestResultMutation creates new mutation for the TestResult entity.
func newTestResultMutation(c config, op Op, opts ...testresultOption) *TestResultMutation {
	m := &TestResultMutation{
		config:        c,
		op:            op,
		typ:           TypeTestResult,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTestResultID sets the ID field of the mutation.
func withTestResultID(id string) testresultOption {
	return func(m *TestResultMutation) {
		var (
			err   error
			once  sync.Once
			value *TestResult
		)
		m.oldValue = func(ctx context.Context) (*TestResult, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TestResult.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTestResult sets the old TestResult of the mutation.
func withTestResult(node *TestResult) testresultOption {
	return func(m *TestResultMutation) {
		m.oldValue = func(context.Context) (*TestResult, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TestResultMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TestResultMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TestResult entities.
func (m *TestResultMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TestResultMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TestResultMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TestResult.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *TestResultMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *TestResultMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the TestResult entity.
// If the TestResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestResultMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *TestResultMutation) ResetTaskID() {
	m.task = nil
}

// SetStatus sets the "status" field.
func (m *TestResultMutation) SetStatus(t testresult.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TestResultMutation) Status() (r testresult.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the TestResult entity.
// If the TestResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestResultMutation) OldStatus(ctx context.Context) (v testresult.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TestResultMutation) ResetStatus() {
	m.status = nil
}

// SetPassed sets the "passed" field.
func (m *TestResultMutation) SetPassed(i int) {
	m.passed = &i
	m.addpassed = nil
}

// Passed returns the value of the "passed" field in the mutation.
func (m *TestResultMutation) Passed() (r int, exists bool) {
	v := m.passed
	if v == nil {
		return
	}
	return *v, true
}

// OldPassed returns the old "passed" field's value of the TestResult entity.
// If the TestResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestResultMutation) OldPassed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPassed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPassed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPassed: %w", err)
	}
	return oldValue.Passed, nil
}

// AddPassed adds i to the "passed" field.
func (m *TestResultMutation) AddPassed(i int) {
	if m.addpassed != nil {
		*m.addpassed += i
	} else {
		m.addpassed = &i
	}
}

// AddedPassed returns the value that was added to the "passed" field in this mutation.
func (m *TestResultMutation) AddedPassed() (r int, exists bool) {
	v := m.addpassed
	if v == nil {
		return
	}
	return *v, true
}

// ResetPassed resets all changes to the "passed" field.
func (m *TestResultMutation) ResetPassed() {
	m.passed = nil
	m.addpassed = nil
}

// SetFailed sets the "failed" field.
func (m *TestResultMutation) SetFailed(i int) {
	m.failed = &i
	m.addfailed = nil
}

// Failed returns the value of the "failed" field in the mutation.
func (m *TestResultMutation) Failed() (r int, exists bool) {
	v := m.failed
	if v == nil {
		return
	}
	return *v, true
}

// OldFailed returns the old "failed" field's value of the TestResult entity.
// If the TestResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestResultMutation) OldFailed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailed: %w", err)
	}
	return oldValue.Failed, nil
}

// AddFailed adds i to the "failed" field.
func (m *TestResultMutation) AddFailed(i int) {
	if m.addfailed != nil {
		*m.addfailed += i
	} else {
		m.addfailed = &i
	}
}

// AddedFailed returns the value that was added to the "failed" field in this mutation.
func (m *TestResultMutation) AddedFailed() (r int, exists bool) {
	v := m.addfailed
	if v == nil {
		return
	}
	return *v, true
}

// ResetFailed resets all changes to the "failed" field.
func (m *TestResultMutation) ResetFailed() {
	m.failed = nil
	m.addfailed = nil
}

// SetErrors sets the "errors" field.
func (m *TestResultMutation) SetErrors(i int) {
	m.errors = &i
	m.adderrors = nil
}

// Errors returns the value of the "errors" field in the mutation.
func (m *TestResultMutation) Errors() (r int, exists bool) {
	v := m.errors
	if v == nil {
		return
	}
	return *v, true
}

// OldErrors returns the old "errors" field's value of the TestResult entity.
// If the TestResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestResultMutation) OldErrors(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrors is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrors requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrors: %w", err)
	}
	return oldValue.Errors, nil
}

// AddErrors adds i to the "errors" field.
func (m *TestResultMutation) AddErrors(i int) {
	if m.adderrors != nil {
		*m.adderrors += i
	} else {
		m.adderrors = &i
	}
}

// AddedErrors returns the value that was added to the "errors" field in this mutation.
func (m *TestResultMutation) AddedErrors() (r int, exists bool) {
	v := m.adderrors
	if v == nil {
		return
	}
	return *v, true
}

// ResetErrors resets all changes to the "errors" field.
func (m *TestResultMutation) ResetErrors() {
	m.errors = nil
	m.adderrors = nil
}

// SetSkipped sets the "skipped" field.
func (m *TestResultMutation) SetSkipped(i int) {
	m.skipped = &i
	m.addskipped = nil
}

// Skipped returns the value of the "skipped" field in the mutation.
func (m *TestResultMutation) Skipped() (r int, exists bool) {
	v := m.skipped
	if v == nil {
		return
	}
	return *v, true
}

// OldSkipped returns the old "skipped" field's value of the TestResult entity.
// If the TestResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestResultMutation) OldSkipped(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkipped is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkipped requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkipped: %w", err)
	}
	return oldValue.Skipped, nil
}

// AddSkipped adds i to the "skipped" field.
func (m *TestResultMutation) AddSkipped(i int) {
	if m.addskipped != nil {
		*m.addskipped += i
	} else {
		m.addskipped = &i
	}
}

// AddedSkipped returns the value that was added to the "skipped" field in this mutation.
func (m *TestResultMutation) AddedSkipped() (r int, exists bool) {
	v := m.addskipped
	if v == nil {
		return
	}
	return *v, true
}

// ResetSkipped resets all changes to the "skipped" field.
func (m *TestResultMutation) ResetSkipped() {
	m.skipped = nil
	m.addskipped = nil
}

// SetDurationSeconds sets the "duration_seconds" field.
func (m *TestResultMutation) SetDurationSeconds(f float64) {
	m.duration_seconds = &f
	m.addduration_seconds = nil
}

// DurationSeconds returns the value of the "duration_seconds" field in the mutation.
func (m *TestResultMutation) DurationSeconds() (r float64, exists bool) {
	v := m.duration_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationSeconds returns the old "duration_seconds" field's value of the TestResult entity.
// If the TestResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestResultMutation) OldDurationSeconds(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationSeconds: %w", err)
	}
	return oldValue.DurationSeconds, nil
}

// AddDurationSeconds adds f to the "duration_seconds" field.
func (m *TestResultMutation) AddDurationSeconds(f float64) {
	if m.addduration_seconds != nil {
		*m.addduration_seconds += f
	} else {
		m.addduration_seconds = &f
	}
}

// AddedDurationSeconds returns the value that was added to the "duration_seconds" field in this mutation.
func (m *TestResultMutation) AddedDurationSeconds() (r float64, exists bool) {
	v := m.addduration_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationSeconds resets all changes to the "duration_seconds" field.
func (m *TestResultMutation) ResetDurationSeconds() {
	m.duration_seconds = nil
	m.addduration_seconds = nil
}

// SetOutput sets the "output" field.
func (m *TestResultMutation) SetOutput(s string) {
	m.output = &s
}

// Output returns the value of the "output" field in the mutation.
func (m *TestResultMutation) Output() (r string, exists bool) {
	v := m.output
	if v == nil {
		return
	}
	return *v, true
}

// OldOutput returns the old "output" field's value of the TestResult entity.
// If the TestResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestResultMutation) OldOutput(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutput: %w", err)
	}
	return oldValue.Output, nil
}

// ClearOutput clears the value of the "output" field.
func (m *TestResultMutation) ClearOutput() {
	m.output = nil
	m.clearedFields[testresult.FieldOutput] = struct{}{}
}

// OutputCleared returns if the "output" field was cleared in this mutation.
func (m *TestResultMutation) OutputCleared() bool {
	_, ok := m.clearedFields[testresult.FieldOutput]
	return ok
}

// ResetOutput resets all changes to the "output" field.
func (m *TestResultMutation) ResetOutput() {
	m.output = nil
	delete(m.clearedFields, testresult.FieldOutput)
}

// SetCreatedAt sets the "created_at" field.
func (m *TestResultMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TestResultMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TestResult entity.
// If the TestResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestResultMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TestResultMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTask clears the "task" edge to the Task entity.
func (m *TestResultMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[testresult.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *TestResultMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *TestResultMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *TestResultMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the TestResultMutation builder.
func (m *TestResultMutation) Where(ps ...predicate.TestResult) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TestResultMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TestResultMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TestResult, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TestResultMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TestResultMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TestResult).
func (m *TestResultMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TestResultMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.task != nil {
		fields = append(fields, testresult.FieldTaskID)
	}
	if m.status != nil {
		fields = append(fields, testresult.FieldStatus)
	}
	if m.passed != nil {
		fields = append(fields, testresult.FieldPassed)
	}
	if m.failed != nil {
		fields = append(fields, testresult.FieldFailed)
	}
	if m.errors != nil {
		fields = append(fields, testresult.FieldErrors)
	}
	if m.skipped != nil {
		fields = append(fields, testresult.FieldSkipped)
	}
	if m.duration_seconds != nil {
		fields = append(fields, testresult.FieldDurationSeconds)
	}
	if m.output != nil {
		fields = append(fields, testresult.FieldOutput)
	}
	if m.created_at != nil {
		fields = append(fields, testresult.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TestResultMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case testresult.FieldTaskID:
		return m.TaskID()
	case testresult.FieldStatus:
		return m.Status()
	case testresult.FieldPassed:
		return m.Passed()
	case testresult.FieldFailed:
		return m.Failed()
	case testresult.FieldErrors:
		return m.Errors()
	case testresult.FieldSkipped:
		return m.Skipped()
	case testresult.FieldDurationSeconds:
		return m.DurationSeconds()
	case testresult.FieldOutput:
		return m.Output()
	case testresult.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TestResultMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case testresult.FieldTaskID:
		return m.OldTaskID(ctx)
	case testresult.FieldStatus:
		return m.OldStatus(ctx)
	case testresult.FieldPassed:
		return m.OldPassed(ctx)
	case testresult.FieldFailed:
		return m.OldFailed(ctx)
	case testresult.FieldErrors:
		return m.OldErrors(ctx)
	case testresult.FieldSkipped:
		return m.OldSkipped(ctx)
	case testresult.FieldDurationSeconds:
		return m.OldDurationSeconds(ctx)
	case testresult.FieldOutput:
		return m.OldOutput(ctx)
	case testresult.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TestResult field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TestResultMutation) SetField(name string, value ent.Value) error {
	switch name {
	case testresult.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case testresult.FieldStatus:
		v, ok := value.(testresult.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case testresult.FieldPassed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPassed(v)
		return nil
	case testresult.FieldFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailed(v)
		return nil
	case testresult.FieldErrors:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrors(v)
		return nil
	case testresult.FieldSkipped:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkipped(v)
		return nil
	case testresult.FieldDurationSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationSeconds(v)
		return nil
	case testresult.FieldOutput:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutput(v)
		return nil
	case testresult.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TestResult field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TestResultMutation) AddedFields() []string {
	var fields []string
	if m.addpassed != nil {
		fields = append(fields, testresult.FieldPassed)
	}
	if m.addfailed != nil {
		fields = append(fields, testresult.FieldFailed)
	}
	if m.adderrors != nil {
		fields = append(fields, testresult.FieldErrors)
	}
	if m.addskipped != nil {
		fields = append(fields, testresult.FieldSkipped)
	}
	if m.addduration_seconds != nil {
		fields = append(fields, testresult.FieldDurationSeconds)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TestResultMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case testresult.FieldPassed:
		return m.AddedPassed()
	case testresult.FieldFailed:
		return m.AddedFailed()
	case testresult.FieldErrors:
		return m.AddedErrors()
	case testresult.FieldSkipped:
		return m.AddedSkipped()
	case testresult.FieldDurationSeconds:
		return m.AddedDurationSeconds()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TestResultMutation) AddField(name string, value ent.Value) error {
	switch name {
	case testresult.FieldPassed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPassed(v)
		return nil
	case testresult.FieldFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailed(v)
		return nil
	case testresult.FieldErrors:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddErrors(v)
		return nil
	case testresult.FieldSkipped:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSkipped(v)
		return nil
	case testresult.FieldDurationSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationSeconds(v)
		return nil
	}
	return fmt.Errorf("unknown TestResult numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TestResultMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(testresult.FieldOutput) {
		fields = append(fields, testresult.FieldOutput)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TestResultMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TestResultMutation) ClearField(name string) error {
	switch name {
	case testresult.FieldOutput:
		m.ClearOutput()
		return nil
	}
	return fmt.Errorf("unknown TestResult nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TestResultMutation) ResetField(name string) error {
	switch name {
	case testresult.FieldTaskID:
		m.ResetTaskID()
		return nil
	case testresult.FieldStatus:
		m.ResetStatus()
		return nil
	case testresult.FieldPassed:
		m.ResetPassed()
		return nil
	case testresult.FieldFailed:
		m.ResetFailed()
		return nil
	case testresult.FieldErrors:
		m.ResetErrors()
		return nil
	case testresult.FieldSkipped:
		m.ResetSkipped()
		return nil
	case testresult.FieldDurationSeconds:
		m.ResetDurationSeconds()
		return nil
	case testresult.FieldOutput:
		m.ResetOutput()
		return nil
	case testresult.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TestResult field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TestResultMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, testresult.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TestResultMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case testresult.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TestResultMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TestResultMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TestResultMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, testresult.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TestResultMutation) EdgeCleared(name string) bool {
	switch name {
	case testresult.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TestResultMutation) ClearEdge(name string) error {
	switch name {
	case testresult.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown TestResult unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TestResultMutation) ResetEdge(name string) error {
	switch name {
	case testresult.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown TestResult edge %s", name)
}

// TokenUsageMutation represents an operation that mutates the TokenUsage nodes in the graph.
type TokenUsageMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	task_id               *string
	agent_id              *string
	project_id            *string
	model                 *string
	input_tokens          *int
	addinput_tokens       *int
	output_tokens         *int
	addoutput_tokens      *int
	estimated_cost_usd    *float64
	addestimated_cost_usd *float64
	call_type             *tokenusage.CallType
	created_at            *time.Time
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*TokenUsage, error)
	predicates            []predicate.TokenUsage
}

var _ ent.Mutation = (*TokenUsageMutation)(nil)

// tokenusageOption allows management of the mutation configuration using functional options.
type tokenusageOption func(*TokenUsageMutation)

// newTokenUsageMutation creates new mutation for the TokenUsage entity.
func newTokenUsageMutation(c config, op Op, opts ...tokenusageOption) *TokenUsageMutation {
	m := &TokenUsageMutation{
		config:        c,
		op:            op,
		typ:           TypeTokenUsage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTokenUsageID sets the ID field of the mutation.
func withTokenUsageID(id string) tokenusageOption {
	return func(m *TokenUsageMutation) {
		var (
			err   error
			once  sync.Once
			value *TokenUsage
		)
		m.oldValue = func(ctx context.Context) (*TokenUsage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TokenUsage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTokenUsage sets the old TokenUsage of the mutation.
func withTokenUsage(node *TokenUsage) tokenusageOption {
	return func(m *TokenUsageMutation) {
		m.oldValue = func(context.Context) (*TokenUsage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TokenUsageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TokenUsageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TokenUsage entities.
func (m *TokenUsageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TokenUsageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TokenUsageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TokenUsage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *TokenUsageMutation) SetTaskID(s string) {
	m.task_id = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *TokenUsageMutation) TaskID() (r string, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the TokenUsage entity.
// If the TokenUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenUsageMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ClearTaskID clears the value of the "task_id" field.
func (m *TokenUsageMutation) ClearTaskID() {
	m.task_id = nil
	m.clearedFields[tokenusage.FieldTaskID] = struct{}{}
}

// TaskIDCleared returns if the "task_id" field was cleared in this mutation.
func (m *TokenUsageMutation) TaskIDCleared() bool {
	_, ok := m.clearedFields[tokenusage.FieldTaskID]
	return ok
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *TokenUsageMutation) ResetTaskID() {
	m.task_id = nil
	delete(m.clearedFields, tokenusage.FieldTaskID)
}

// SetAgentID sets the "agent_id" field.
func (m *TokenUsageMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *TokenUsageMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the TokenUsage entity.
// If the TokenUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenUsageMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *TokenUsageMutation) ResetAgentID() {
	m.agent_id = nil
}

// SetProjectID sets the "project_id" field.
func (m *TokenUsageMutation) SetProjectID(s string) {
	m.project_id = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *TokenUsageMutation) ProjectID() (r string, exists bool) {
	v := m.project_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the TokenUsage entity.
// If the TokenUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenUsageMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ClearProjectID clears the value of the "project_id" field.
func (m *TokenUsageMutation) ClearProjectID() {
	m.project_id = nil
	m.clearedFields[tokenusage.FieldProjectID] = struct{}{}
}

// ProjectIDCleared returns if the "project_id" field was cleared in this mutation.
func (m *TokenUsageMutation) ProjectIDCleared() bool {
	_, ok := m.clearedFields[tokenusage.FieldProjectID]
	return ok
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *TokenUsageMutation) ResetProjectID() {
	m.project_id = nil
	delete(m.clearedFields, tokenusage.FieldProjectID)
}

// SetModel sets the "model" field.
func (m *TokenUsageMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *TokenUsageMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the TokenUsage entity.
// If the TokenUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenUsageMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *TokenUsageMutation) ResetModel() {
	m.model = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *TokenUsageMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *TokenUsageMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the TokenUsage entity.
// If the TokenUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenUsageMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *TokenUsageMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *TokenUsageMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *TokenUsageMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *TokenUsageMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *TokenUsageMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the TokenUsage entity.
// If the TokenUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenUsageMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *TokenUsageMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *TokenUsageMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *TokenUsageMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetEstimatedCostUsd sets the "estimated_cost_usd" field.
func (m *TokenUsageMutation) SetEstimatedCostUsd(f float64) {
	m.estimated_cost_usd = &f
	m.addestimated_cost_usd = nil
}

// EstimatedCostUsd returns the value of the "estimated_cost_usd" field in the mutation.
func (m *TokenUsageMutation) EstimatedCostUsd() (r float64, exists bool) {
	v := m.estimated_cost_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldEstimatedCostUsd returns the old "estimated_cost_usd" field's value of the TokenUsage entity.
// If the TokenUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenUsageMutation) OldEstimatedCostUsd(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstimatedCostUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstimatedCostUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstimatedCostUsd: %w", err)
	}
	return oldValue.EstimatedCostUsd, nil
}

// AddEstimatedCostUsd adds f to the "estimated_cost_usd" field.
func (m *TokenUsageMutation) AddEstimatedCostUsd(f float64) {
	if m.addestimated_cost_usd != nil {
		*m.addestimated_cost_usd += f
	} else {
		m.addestimated_cost_usd = &f
	}
}

// AddedEstimatedCostUsd returns the value that was added to the "estimated_cost_usd" field in this mutation.
func (m *TokenUsageMutation) AddedEstimatedCostUsd() (r float64, exists bool) {
	v := m.addestimated_cost_usd
	if v == nil {
		return
	}
	return *v, true
}

// ResetEstimatedCostUsd resets all changes to the "estimated_cost_usd" field.
func (m *TokenUsageMutation) ResetEstimatedCostUsd() {
	m.estimated_cost_usd = nil
	m.addestimated_cost_usd = nil
}

// SetCallType sets the "call_type" field.
func (m *TokenUsageMutation) SetCallType(tt tokenusage.CallType) {
	m.call_type = &tt
}

// CallType returns the value of the "call_type" field in the mutation.
func (m *TokenUsageMutation) CallType() (r tokenusage.CallType, exists bool) {
	v := m.call_type
	if v == nil {
		return
	}
	return *v, true
}

// OldCallType returns the old "call_type" field's value of the TokenUsage entity.
// If the TokenUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenUsageMutation) OldCallType(ctx context.Context) (v tokenusage.CallType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCallType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCallType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCallType: %w", err)
	}
	return oldValue.CallType, nil
}

// ResetCallType resets all changes to the "call_type" field.
func (m *TokenUsageMutation) ResetCallType() {
	m.call_type = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TokenUsageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TokenUsageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TokenUsage entity.
// If the TokenUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenUsageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TokenUsageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the TokenUsageMutation builder.
func (m *TokenUsageMutation) Where(ps ...predicate.TokenUsage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TokenUsageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TokenUsageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TokenUsage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TokenUsageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TokenUsageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TokenUsage).
func (m *TokenUsageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TokenUsageMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.task_id != nil {
		fields = append(fields, tokenusage.FieldTaskID)
	}
	if m.agent_id != nil {
		fields = append(fields, tokenusage.FieldAgentID)
	}
	if m.project_id != nil {
		fields = append(fields, tokenusage.FieldProjectID)
	}
	if m.model != nil {
		fields = append(fields, tokenusage.FieldModel)
	}
	if m.input_tokens != nil {
		fields = append(fields, tokenusage.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, tokenusage.FieldOutputTokens)
	}
	if m.estimated_cost_usd != nil {
		fields = append(fields, tokenusage.FieldEstimatedCostUsd)
	}
	if m.call_type != nil {
		fields = append(fields, tokenusage.FieldCallType)
	}
	if m.created_at != nil {
		fields = append(fields, tokenusage.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TokenUsageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tokenusage.FieldTaskID:
		return m.TaskID()
	case tokenusage.FieldAgentID:
		return m.AgentID()
	case tokenusage.FieldProjectID:
		return m.ProjectID()
	case tokenusage.FieldModel:
		return m.Model()
	case tokenusage.FieldInputTokens:
		return m.InputTokens()
	case tokenusage.FieldOutputTokens:
		return m.OutputTokens()
	case tokenusage.FieldEstimatedCostUsd:
		return m.EstimatedCostUsd()
	case tokenusage.FieldCallType:
		return m.CallType()
	case tokenusage.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TokenUsageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tokenusage.FieldTaskID:
		return m.OldTaskID(ctx)
	case tokenusage.FieldAgentID:
		return m.OldAgentID(ctx)
	case tokenusage.FieldProjectID:
		return m.OldProjectID(ctx)
	case tokenusage.FieldModel:
		return m.OldModel(ctx)
	case tokenusage.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case tokenusage.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case tokenusage.FieldEstimatedCostUsd:
		return m.OldEstimatedCostUsd(ctx)
	case tokenusage.FieldCallType:
		return m.OldCallType(ctx)
	case tokenusage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TokenUsage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TokenUsageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tokenusage.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case tokenusage.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case tokenusage.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case tokenusage.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case tokenusage.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case tokenusage.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case tokenusage.FieldEstimatedCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstimatedCostUsd(v)
		return nil
	case tokenusage.FieldCallType:
		v, ok := value.(tokenusage.CallType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCallType(v)
		return nil
	case tokenusage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TokenUsage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TokenUsageMutation) AddedFields() []string {
	var fields []string
	if m.addinput_tokens != nil {
		fields = append(fields, tokenusage.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, tokenusage.FieldOutputTokens)
	}
	if m.addestimated_cost_usd != nil {
		fields = append(fields, tokenusage.FieldEstimatedCostUsd)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TokenUsageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case tokenusage.FieldInputTokens:
		return m.AddedInputTokens()
	case tokenusage.FieldOutputTokens:
		return m.AddedOutputTokens()
	case tokenusage.FieldEstimatedCostUsd:
		return m.AddedEstimatedCostUsd()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TokenUsageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case tokenusage.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case tokenusage.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case tokenusage.FieldEstimatedCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEstimatedCostUsd(v)
		return nil
	}
	return fmt.Errorf("unknown TokenUsage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TokenUsageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(tokenusage.FieldTaskID) {
		fields = append(fields, tokenusage.FieldTaskID)
	}
	if m.FieldCleared(tokenusage.FieldProjectID) {
		fields = append(fields, tokenusage.FieldProjectID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TokenUsageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TokenUsageMutation) ClearField(name string) error {
	switch name {
	case tokenusage.FieldTaskID:
		m.ClearTaskID()
		return nil
	case tokenusage.FieldProjectID:
		m.ClearProjectID()
		return nil
	}
	return fmt.Errorf("unknown TokenUsage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TokenUsageMutation) ResetField(name string) error {
	switch name {
	case tokenusage.FieldTaskID:
		m.ResetTaskID()
		return nil
	case tokenusage.FieldAgentID:
		m.ResetAgentID()
		return nil
	case tokenusage.FieldProjectID:
		m.ResetProjectID()
		return nil
	case tokenusage.FieldModel:
		m.ResetModel()
		return nil
	case tokenusage.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case tokenusage.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case tokenusage.FieldEstimatedCostUsd:
		m.ResetEstimatedCostUsd()
		return nil
	case tokenusage.FieldCallType:
		m.ResetCallType()
		return nil
	case tokenusage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TokenUsage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TokenUsageMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TokenUsageMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TokenUsageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TokenUsageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TokenUsageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TokenUsageMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TokenUsageMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TokenUsage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TokenUsageMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TokenUsage edge %s", name)
}
