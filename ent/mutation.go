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
	"github.com/ascentlearn/ascent/ent/assessment"
	"github.com/ascentlearn/ascent/ent/chapter"
	"github.com/ascentlearn/ascent/ent/llmrequestevent"
	"github.com/ascentlearn/ascent/ent/mistake"
	"github.com/ascentlearn/ascent/ent/predicate"
	"github.com/ascentlearn/ascent/ent/progressrecord"
	"github.com/ascentlearn/ascent/ent/roadmap"
	"github.com/ascentlearn/ascent/ent/schema"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAssessment      = "Assessment"
	TypeChapter         = "Chapter"
	TypeLLMRequestEvent = "LLMRequestEvent"
	TypeMistake         = "Mistake"
	TypeProgressRecord  = "ProgressRecord"
	TypeRoadmap         = "Roadmap"
)

// AssessmentMutation represents an operation that mutates the Assessment nodes in the graph.
type AssessmentMutation struct {
	config
	op              Op
	typ             string
	id              *int
	session_id      *string
	chapter_key     *string
	level           *int
	addlevel        *int
	questions       *[]schema.Question
	appendquestions []schema.Question
	generated_at    *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*Assessment, error)
	predicates      []predicate.Assessment
}

var _ ent.Mutation = (*AssessmentMutation)(nil)

// assessmentOption allows management of the mutation configuration using functional options.
type assessmentOption func(*AssessmentMutation)

// newAssessmentMutation creates new mutation for the Assessment entity.
func newAssessmentMutation(c config, op Op, opts ...assessmentOption) *AssessmentMutation {
	m := &AssessmentMutation{
		config:        c,
		op:            op,
		typ:           TypeAssessment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAssessmentID sets the ID field of the mutation.
func withAssessmentID(id int) assessmentOption {
	return func(m *AssessmentMutation) {
		var (
			err   error
			once  sync.Once
			value *Assessment
		)
		m.oldValue = func(ctx context.Context) (*Assessment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Assessment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAssessment sets the old Assessment of the mutation.
func withAssessment(node *Assessment) assessmentOption {
	return func(m *AssessmentMutation) {
		m.oldValue = func(context.Context) (*Assessment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AssessmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AssessmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AssessmentMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AssessmentMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Assessment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *AssessmentMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *AssessmentMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Assessment entity.
// If the Assessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *AssessmentMutation) ResetSessionID() {
	m.session_id = nil
}

// SetChapterKey sets the "chapter_key" field.
func (m *AssessmentMutation) SetChapterKey(s string) {
	m.chapter_key = &s
}

// ChapterKey returns the value of the "chapter_key" field in the mutation.
func (m *AssessmentMutation) ChapterKey() (r string, exists bool) {
	v := m.chapter_key
	if v == nil {
		return
	}
	return *v, true
}

// OldChapterKey returns the old "chapter_key" field's value of the Assessment entity.
// If the Assessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentMutation) OldChapterKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChapterKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChapterKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChapterKey: %w", err)
	}
	return oldValue.ChapterKey, nil
}

// ResetChapterKey resets all changes to the "chapter_key" field.
func (m *AssessmentMutation) ResetChapterKey() {
	m.chapter_key = nil
}

// SetLevel sets the "level" field.
func (m *AssessmentMutation) SetLevel(i int) {
	m.level = &i
	m.addlevel = nil
}

// Level returns the value of the "level" field in the mutation.
func (m *AssessmentMutation) Level() (r int, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the Assessment entity.
// If the Assessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentMutation) OldLevel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// AddLevel adds i to the "level" field.
func (m *AssessmentMutation) AddLevel(i int) {
	if m.addlevel != nil {
		*m.addlevel += i
	} else {
		m.addlevel = &i
	}
}

// AddedLevel returns the value that was added to the "level" field in this mutation.
func (m *AssessmentMutation) AddedLevel() (r int, exists bool) {
	v := m.addlevel
	if v == nil {
		return
	}
	return *v, true
}

// ResetLevel resets all changes to the "level" field.
func (m *AssessmentMutation) ResetLevel() {
	m.level = nil
	m.addlevel = nil
}

// SetQuestions sets the "questions" field.
func (m *AssessmentMutation) SetQuestions(s []schema.Question) {
	m.questions = &s
	m.appendquestions = nil
}

// Questions returns the value of the "questions" field in the mutation.
func (m *AssessmentMutation) Questions() (r []schema.Question, exists bool) {
	v := m.questions
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestions returns the old "questions" field's value of the Assessment entity.
// If the Assessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentMutation) OldQuestions(ctx context.Context) (v []schema.Question, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestions: %w", err)
	}
	return oldValue.Questions, nil
}

// AppendQuestions adds s to the "questions" field.
func (m *AssessmentMutation) AppendQuestions(s []schema.Question) {
	m.appendquestions = append(m.appendquestions, s...)
}

// AppendedQuestions returns the list of values that were appended to the "questions" field in this mutation.
func (m *AssessmentMutation) AppendedQuestions() ([]schema.Question, bool) {
	if len(m.appendquestions) == 0 {
		return nil, false
	}
	return m.appendquestions, true
}

// ResetQuestions resets all changes to the "questions" field.
func (m *AssessmentMutation) ResetQuestions() {
	m.questions = nil
	m.appendquestions = nil
}

// SetGeneratedAt sets the "generated_at" field.
func (m *AssessmentMutation) SetGeneratedAt(t time.Time) {
	m.generated_at = &t
}

// GeneratedAt returns the value of the "generated_at" field in the mutation.
func (m *AssessmentMutation) GeneratedAt() (r time.Time, exists bool) {
	v := m.generated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldGeneratedAt returns the old "generated_at" field's value of the Assessment entity.
// If the Assessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentMutation) OldGeneratedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGeneratedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGeneratedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGeneratedAt: %w", err)
	}
	return oldValue.GeneratedAt, nil
}

// ResetGeneratedAt resets all changes to the "generated_at" field.
func (m *AssessmentMutation) ResetGeneratedAt() {
	m.generated_at = nil
}

// Where appends a list predicates to the AssessmentMutation builder.
func (m *AssessmentMutation) Where(ps ...predicate.Assessment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AssessmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AssessmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Assessment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AssessmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AssessmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Assessment).
func (m *AssessmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AssessmentMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.session_id != nil {
		fields = append(fields, assessment.FieldSessionID)
	}
	if m.chapter_key != nil {
		fields = append(fields, assessment.FieldChapterKey)
	}
	if m.level != nil {
		fields = append(fields, assessment.FieldLevel)
	}
	if m.questions != nil {
		fields = append(fields, assessment.FieldQuestions)
	}
	if m.generated_at != nil {
		fields = append(fields, assessment.FieldGeneratedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AssessmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case assessment.FieldSessionID:
		return m.SessionID()
	case assessment.FieldChapterKey:
		return m.ChapterKey()
	case assessment.FieldLevel:
		return m.Level()
	case assessment.FieldQuestions:
		return m.Questions()
	case assessment.FieldGeneratedAt:
		return m.GeneratedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AssessmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case assessment.FieldSessionID:
		return m.OldSessionID(ctx)
	case assessment.FieldChapterKey:
		return m.OldChapterKey(ctx)
	case assessment.FieldLevel:
		return m.OldLevel(ctx)
	case assessment.FieldQuestions:
		return m.OldQuestions(ctx)
	case assessment.FieldGeneratedAt:
		return m.OldGeneratedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Assessment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AssessmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case assessment.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case assessment.FieldChapterKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChapterKey(v)
		return nil
	case assessment.FieldLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	case assessment.FieldQuestions:
		v, ok := value.([]schema.Question)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestions(v)
		return nil
	case assessment.FieldGeneratedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGeneratedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Assessment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AssessmentMutation) AddedFields() []string {
	var fields []string
	if m.addlevel != nil {
		fields = append(fields, assessment.FieldLevel)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AssessmentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case assessment.FieldLevel:
		return m.AddedLevel()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AssessmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case assessment.FieldLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLevel(v)
		return nil
	}
	return fmt.Errorf("unknown Assessment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AssessmentMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AssessmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AssessmentMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Assessment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AssessmentMutation) ResetField(name string) error {
	switch name {
	case assessment.FieldSessionID:
		m.ResetSessionID()
		return nil
	case assessment.FieldChapterKey:
		m.ResetChapterKey()
		return nil
	case assessment.FieldLevel:
		m.ResetLevel()
		return nil
	case assessment.FieldQuestions:
		m.ResetQuestions()
		return nil
	case assessment.FieldGeneratedAt:
		m.ResetGeneratedAt()
		return nil
	}
	return fmt.Errorf("unknown Assessment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AssessmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AssessmentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AssessmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AssessmentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AssessmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AssessmentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AssessmentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Assessment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AssessmentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Assessment edge %s", name)
}

// ChapterMutation represents an operation that mutates the Chapter nodes in the graph.
type ChapterMutation struct {
	config
	op            Op
	typ           string
	id            *int
	session_id    *string
	key           *string
	name          *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Chapter, error)
	predicates    []predicate.Chapter
}

var _ ent.Mutation = (*ChapterMutation)(nil)

// chapterOption allows management of the mutation configuration using functional options.
type chapterOption func(*ChapterMutation)

// newChapterMutation creates new mutation for the Chapter entity.
func newChapterMutation(c config, op Op, opts ...chapterOption) *ChapterMutation {
	m := &ChapterMutation{
		config:        c,
		op:            op,
		typ:           TypeChapter,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChapterID sets the ID field of the mutation.
func withChapterID(id int) chapterOption {
	return func(m *ChapterMutation) {
		var (
			err   error
			once  sync.Once
			value *Chapter
		)
		m.oldValue = func(ctx context.Context) (*Chapter, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Chapter.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChapter sets the old Chapter of the mutation.
func withChapter(node *Chapter) chapterOption {
	return func(m *ChapterMutation) {
		m.oldValue = func(context.Context) (*Chapter, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChapterMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChapterMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChapterMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChapterMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Chapter.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *ChapterMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ChapterMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Chapter entity.
// If the Chapter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChapterMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ChapterMutation) ResetSessionID() {
	m.session_id = nil
}

// SetKey sets the "key" field.
func (m *ChapterMutation) SetKey(s string) {
	m.key = &s
}

// Key returns the value of the "key" field in the mutation.
func (m *ChapterMutation) Key() (r string, exists bool) {
	v := m.key
	if v == nil {
		return
	}
	return *v, true
}

// OldKey returns the old "key" field's value of the Chapter entity.
// If the Chapter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChapterMutation) OldKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKey: %w", err)
	}
	return oldValue.Key, nil
}

// ResetKey resets all changes to the "key" field.
func (m *ChapterMutation) ResetKey() {
	m.key = nil
}

// SetName sets the "name" field.
func (m *ChapterMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ChapterMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Chapter entity.
// If the Chapter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChapterMutation) OldName(ctx context.Context) (v string, err error) {
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
func (m *ChapterMutation) ResetName() {
	m.name = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ChapterMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ChapterMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Chapter entity.
// If the Chapter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChapterMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ChapterMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ChapterMutation builder.
func (m *ChapterMutation) Where(ps ...predicate.Chapter) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChapterMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChapterMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Chapter, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChapterMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChapterMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Chapter).
func (m *ChapterMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChapterMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.session_id != nil {
		fields = append(fields, chapter.FieldSessionID)
	}
	if m.key != nil {
		fields = append(fields, chapter.FieldKey)
	}
	if m.name != nil {
		fields = append(fields, chapter.FieldName)
	}
	if m.created_at != nil {
		fields = append(fields, chapter.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChapterMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case chapter.FieldSessionID:
		return m.SessionID()
	case chapter.FieldKey:
		return m.Key()
	case chapter.FieldName:
		return m.Name()
	case chapter.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChapterMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case chapter.FieldSessionID:
		return m.OldSessionID(ctx)
	case chapter.FieldKey:
		return m.OldKey(ctx)
	case chapter.FieldName:
		return m.OldName(ctx)
	case chapter.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Chapter field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChapterMutation) SetField(name string, value ent.Value) error {
	switch name {
	case chapter.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case chapter.FieldKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKey(v)
		return nil
	case chapter.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case chapter.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Chapter field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChapterMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChapterMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChapterMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Chapter numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChapterMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChapterMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChapterMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Chapter nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChapterMutation) ResetField(name string) error {
	switch name {
	case chapter.FieldSessionID:
		m.ResetSessionID()
		return nil
	case chapter.FieldKey:
		m.ResetKey()
		return nil
	case chapter.FieldName:
		m.ResetName()
		return nil
	case chapter.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Chapter field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChapterMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChapterMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChapterMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChapterMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChapterMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChapterMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChapterMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Chapter unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChapterMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Chapter edge %s", name)
}

// LLMRequestEventMutation represents an operation that mutates the LLMRequestEvent nodes in the graph.
type LLMRequestEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	provider         *string
	model            *string
	purpose          *string
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	latency_ms       *int64
	addlatency_ms    *int64
	success          *bool
	error_message    *string
	timestamp        *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*LLMRequestEvent, error)
	predicates       []predicate.LLMRequestEvent
}

var _ ent.Mutation = (*LLMRequestEventMutation)(nil)

// llmrequesteventOption allows management of the mutation configuration using functional options.
type llmrequesteventOption func(*LLMRequestEventMutation)

// newLLMRequestEventMutation creates new mutation for the LLMRequestEvent entity.
func newLLMRequestEventMutation(c config, op Op, opts ...llmrequesteventOption) *LLMRequestEventMutation {
	m := &LLMRequestEventMutation{
		config:        c,
		op:            op,
		typ:           TypeLLMRequestEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLLMRequestEventID sets the ID field of the mutation.
func withLLMRequestEventID(id int) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		var (
			err   error
			once  sync.Once
			value *LLMRequestEvent
		)
		m.oldValue = func(ctx context.Context) (*LLMRequestEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LLMRequestEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLLMRequestEvent sets the old LLMRequestEvent of the mutation.
func withLLMRequestEvent(node *LLMRequestEvent) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		m.oldValue = func(context.Context) (*LLMRequestEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LLMRequestEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LLMRequestEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LLMRequestEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LLMRequestEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LLMRequestEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProvider sets the "provider" field.
func (m *LLMRequestEventMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *LLMRequestEventMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *LLMRequestEventMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *LLMRequestEventMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *LLMRequestEventMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldModel(ctx context.Context) (v string, err error) {
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
func (m *LLMRequestEventMutation) ResetModel() {
	m.model = nil
}

// SetPurpose sets the "purpose" field.
func (m *LLMRequestEventMutation) SetPurpose(s string) {
	m.purpose = &s
}

// Purpose returns the value of the "purpose" field in the mutation.
func (m *LLMRequestEventMutation) Purpose() (r string, exists bool) {
	v := m.purpose
	if v == nil {
		return
	}
	return *v, true
}

// OldPurpose returns the old "purpose" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldPurpose(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurpose is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurpose requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurpose: %w", err)
	}
	return oldValue.Purpose, nil
}

// ResetPurpose resets all changes to the "purpose" field.
func (m *LLMRequestEventMutation) ResetPurpose() {
	m.purpose = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *LLMRequestEventMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *LLMRequestEventMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldInputTokens(ctx context.Context) (v int, err error) {
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
func (m *LLMRequestEventMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *LLMRequestEventMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *LLMRequestEventMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *LLMRequestEventMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
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
func (m *LLMRequestEventMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *LLMRequestEventMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *LLMRequestEventMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *LLMRequestEventMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *LLMRequestEventMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *LLMRequestEventMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *LLMRequestEventMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetSuccess sets the "success" field.
func (m *LLMRequestEventMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *LLMRequestEventMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *LLMRequestEventMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *LLMRequestEventMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *LLMRequestEventMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *LLMRequestEventMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[llmrequestevent.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *LLMRequestEventMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[llmrequestevent.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *LLMRequestEventMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, llmrequestevent.FieldErrorMessage)
}

// SetTimestamp sets the "timestamp" field.
func (m *LLMRequestEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *LLMRequestEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *LLMRequestEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// Where appends a list predicates to the LLMRequestEventMutation builder.
func (m *LLMRequestEventMutation) Where(ps ...predicate.LLMRequestEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LLMRequestEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LLMRequestEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LLMRequestEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LLMRequestEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LLMRequestEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LLMRequestEvent).
func (m *LLMRequestEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LLMRequestEventMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.provider != nil {
		fields = append(fields, llmrequestevent.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, llmrequestevent.FieldModel)
	}
	if m.purpose != nil {
		fields = append(fields, llmrequestevent.FieldPurpose)
	}
	if m.input_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.latency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	if m.success != nil {
		fields = append(fields, llmrequestevent.FieldSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, llmrequestevent.FieldErrorMessage)
	}
	if m.timestamp != nil {
		fields = append(fields, llmrequestevent.FieldTimestamp)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LLMRequestEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldProvider:
		return m.Provider()
	case llmrequestevent.FieldModel:
		return m.Model()
	case llmrequestevent.FieldPurpose:
		return m.Purpose()
	case llmrequestevent.FieldInputTokens:
		return m.InputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.OutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.LatencyMs()
	case llmrequestevent.FieldSuccess:
		return m.Success()
	case llmrequestevent.FieldErrorMessage:
		return m.ErrorMessage()
	case llmrequestevent.FieldTimestamp:
		return m.Timestamp()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LLMRequestEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case llmrequestevent.FieldProvider:
		return m.OldProvider(ctx)
	case llmrequestevent.FieldModel:
		return m.OldModel(ctx)
	case llmrequestevent.FieldPurpose:
		return m.OldPurpose(ctx)
	case llmrequestevent.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case llmrequestevent.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case llmrequestevent.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case llmrequestevent.FieldSuccess:
		return m.OldSuccess(ctx)
	case llmrequestevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case llmrequestevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	}
	return nil, fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case llmrequestevent.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case llmrequestevent.FieldPurpose:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurpose(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case llmrequestevent.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case llmrequestevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case llmrequestevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LLMRequestEventMutation) AddedFields() []string {
	var fields []string
	if m.addinput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LLMRequestEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldInputTokens:
		return m.AddedInputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.AddedOutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LLMRequestEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(llmrequestevent.FieldErrorMessage) {
		fields = append(fields, llmrequestevent.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LLMRequestEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ClearField(name string) error {
	switch name {
	case llmrequestevent.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ResetField(name string) error {
	switch name {
	case llmrequestevent.FieldProvider:
		m.ResetProvider()
		return nil
	case llmrequestevent.FieldModel:
		m.ResetModel()
		return nil
	case llmrequestevent.FieldPurpose:
		m.ResetPurpose()
		return nil
	case llmrequestevent.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case llmrequestevent.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case llmrequestevent.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case llmrequestevent.FieldSuccess:
		m.ResetSuccess()
		return nil
	case llmrequestevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case llmrequestevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LLMRequestEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LLMRequestEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LLMRequestEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LLMRequestEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LLMRequestEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LLMRequestEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LLMRequestEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LLMRequestEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent edge %s", name)
}

// MistakeMutation represents an operation that mutates the Mistake nodes in the graph.
type MistakeMutation struct {
	config
	op             Op
	typ            string
	id             *int
	session_id     *string
	question       *string
	correct_answer *string
	user_answer    *string
	explanation    *string
	level          *int
	addlevel       *int
	comment        *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*Mistake, error)
	predicates     []predicate.Mistake
}

var _ ent.Mutation = (*MistakeMutation)(nil)

// mistakeOption allows management of the mutation configuration using functional options.
type mistakeOption func(*MistakeMutation)

// newMistakeMutation creates new mutation for the Mistake entity.
func newMistakeMutation(c config, op Op, opts ...mistakeOption) *MistakeMutation {
	m := &MistakeMutation{
		config:        c,
		op:            op,
		typ:           TypeMistake,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMistakeID sets the ID field of the mutation.
func withMistakeID(id int) mistakeOption {
	return func(m *MistakeMutation) {
		var (
			err   error
			once  sync.Once
			value *Mistake
		)
		m.oldValue = func(ctx context.Context) (*Mistake, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Mistake.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMistake sets the old Mistake of the mutation.
func withMistake(node *Mistake) mistakeOption {
	return func(m *MistakeMutation) {
		m.oldValue = func(context.Context) (*Mistake, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MistakeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MistakeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MistakeMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MistakeMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Mistake.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *MistakeMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *MistakeMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Mistake entity.
// If the Mistake object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MistakeMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *MistakeMutation) ResetSessionID() {
	m.session_id = nil
}

// SetQuestion sets the "question" field.
func (m *MistakeMutation) SetQuestion(s string) {
	m.question = &s
}

// Question returns the value of the "question" field in the mutation.
func (m *MistakeMutation) Question() (r string, exists bool) {
	v := m.question
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestion returns the old "question" field's value of the Mistake entity.
// If the Mistake object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MistakeMutation) OldQuestion(ctx context.Context) (v string, err error) {
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
func (m *MistakeMutation) ResetQuestion() {
	m.question = nil
}

// SetCorrectAnswer sets the "correct_answer" field.
func (m *MistakeMutation) SetCorrectAnswer(s string) {
	m.correct_answer = &s
}

// CorrectAnswer returns the value of the "correct_answer" field in the mutation.
func (m *MistakeMutation) CorrectAnswer() (r string, exists bool) {
	v := m.correct_answer
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectAnswer returns the old "correct_answer" field's value of the Mistake entity.
// If the Mistake object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MistakeMutation) OldCorrectAnswer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectAnswer: %w", err)
	}
	return oldValue.CorrectAnswer, nil
}

// ClearCorrectAnswer clears the value of the "correct_answer" field.
func (m *MistakeMutation) ClearCorrectAnswer() {
	m.correct_answer = nil
	m.clearedFields[mistake.FieldCorrectAnswer] = struct{}{}
}

// CorrectAnswerCleared returns if the "correct_answer" field was cleared in this mutation.
func (m *MistakeMutation) CorrectAnswerCleared() bool {
	_, ok := m.clearedFields[mistake.FieldCorrectAnswer]
	return ok
}

// ResetCorrectAnswer resets all changes to the "correct_answer" field.
func (m *MistakeMutation) ResetCorrectAnswer() {
	m.correct_answer = nil
	delete(m.clearedFields, mistake.FieldCorrectAnswer)
}

// SetUserAnswer sets the "user_answer" field.
func (m *MistakeMutation) SetUserAnswer(s string) {
	m.user_answer = &s
}

// UserAnswer returns the value of the "user_answer" field in the mutation.
func (m *MistakeMutation) UserAnswer() (r string, exists bool) {
	v := m.user_answer
	if v == nil {
		return
	}
	return *v, true
}

// OldUserAnswer returns the old "user_answer" field's value of the Mistake entity.
// If the Mistake object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MistakeMutation) OldUserAnswer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserAnswer: %w", err)
	}
	return oldValue.UserAnswer, nil
}

// ClearUserAnswer clears the value of the "user_answer" field.
func (m *MistakeMutation) ClearUserAnswer() {
	m.user_answer = nil
	m.clearedFields[mistake.FieldUserAnswer] = struct{}{}
}

// UserAnswerCleared returns if the "user_answer" field was cleared in this mutation.
func (m *MistakeMutation) UserAnswerCleared() bool {
	_, ok := m.clearedFields[mistake.FieldUserAnswer]
	return ok
}

// ResetUserAnswer resets all changes to the "user_answer" field.
func (m *MistakeMutation) ResetUserAnswer() {
	m.user_answer = nil
	delete(m.clearedFields, mistake.FieldUserAnswer)
}

// SetExplanation sets the "explanation" field.
func (m *MistakeMutation) SetExplanation(s string) {
	m.explanation = &s
}

// Explanation returns the value of the "explanation" field in the mutation.
func (m *MistakeMutation) Explanation() (r string, exists bool) {
	v := m.explanation
	if v == nil {
		return
	}
	return *v, true
}

// OldExplanation returns the old "explanation" field's value of the Mistake entity.
// If the Mistake object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MistakeMutation) OldExplanation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExplanation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExplanation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExplanation: %w", err)
	}
	return oldValue.Explanation, nil
}

// ClearExplanation clears the value of the "explanation" field.
func (m *MistakeMutation) ClearExplanation() {
	m.explanation = nil
	m.clearedFields[mistake.FieldExplanation] = struct{}{}
}

// ExplanationCleared returns if the "explanation" field was cleared in this mutation.
func (m *MistakeMutation) ExplanationCleared() bool {
	_, ok := m.clearedFields[mistake.FieldExplanation]
	return ok
}

// ResetExplanation resets all changes to the "explanation" field.
func (m *MistakeMutation) ResetExplanation() {
	m.explanation = nil
	delete(m.clearedFields, mistake.FieldExplanation)
}

// SetLevel sets the "level" field.
func (m *MistakeMutation) SetLevel(i int) {
	m.level = &i
	m.addlevel = nil
}

// Level returns the value of the "level" field in the mutation.
func (m *MistakeMutation) Level() (r int, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the Mistake entity.
// If the Mistake object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MistakeMutation) OldLevel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// AddLevel adds i to the "level" field.
func (m *MistakeMutation) AddLevel(i int) {
	if m.addlevel != nil {
		*m.addlevel += i
	} else {
		m.addlevel = &i
	}
}

// AddedLevel returns the value that was added to the "level" field in this mutation.
func (m *MistakeMutation) AddedLevel() (r int, exists bool) {
	v := m.addlevel
	if v == nil {
		return
	}
	return *v, true
}

// ResetLevel resets all changes to the "level" field.
func (m *MistakeMutation) ResetLevel() {
	m.level = nil
	m.addlevel = nil
}

// SetComment sets the "comment" field.
func (m *MistakeMutation) SetComment(s string) {
	m.comment = &s
}

// Comment returns the value of the "comment" field in the mutation.
func (m *MistakeMutation) Comment() (r string, exists bool) {
	v := m.comment
	if v == nil {
		return
	}
	return *v, true
}

// OldComment returns the old "comment" field's value of the Mistake entity.
// If the Mistake object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MistakeMutation) OldComment(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComment: %w", err)
	}
	return oldValue.Comment, nil
}

// ResetComment resets all changes to the "comment" field.
func (m *MistakeMutation) ResetComment() {
	m.comment = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *MistakeMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MistakeMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Mistake entity.
// If the Mistake object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MistakeMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *MistakeMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the MistakeMutation builder.
func (m *MistakeMutation) Where(ps ...predicate.Mistake) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MistakeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MistakeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Mistake, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MistakeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MistakeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Mistake).
func (m *MistakeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MistakeMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.session_id != nil {
		fields = append(fields, mistake.FieldSessionID)
	}
	if m.question != nil {
		fields = append(fields, mistake.FieldQuestion)
	}
	if m.correct_answer != nil {
		fields = append(fields, mistake.FieldCorrectAnswer)
	}
	if m.user_answer != nil {
		fields = append(fields, mistake.FieldUserAnswer)
	}
	if m.explanation != nil {
		fields = append(fields, mistake.FieldExplanation)
	}
	if m.level != nil {
		fields = append(fields, mistake.FieldLevel)
	}
	if m.comment != nil {
		fields = append(fields, mistake.FieldComment)
	}
	if m.created_at != nil {
		fields = append(fields, mistake.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MistakeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case mistake.FieldSessionID:
		return m.SessionID()
	case mistake.FieldQuestion:
		return m.Question()
	case mistake.FieldCorrectAnswer:
		return m.CorrectAnswer()
	case mistake.FieldUserAnswer:
		return m.UserAnswer()
	case mistake.FieldExplanation:
		return m.Explanation()
	case mistake.FieldLevel:
		return m.Level()
	case mistake.FieldComment:
		return m.Comment()
	case mistake.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MistakeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case mistake.FieldSessionID:
		return m.OldSessionID(ctx)
	case mistake.FieldQuestion:
		return m.OldQuestion(ctx)
	case mistake.FieldCorrectAnswer:
		return m.OldCorrectAnswer(ctx)
	case mistake.FieldUserAnswer:
		return m.OldUserAnswer(ctx)
	case mistake.FieldExplanation:
		return m.OldExplanation(ctx)
	case mistake.FieldLevel:
		return m.OldLevel(ctx)
	case mistake.FieldComment:
		return m.OldComment(ctx)
	case mistake.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Mistake field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MistakeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case mistake.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case mistake.FieldQuestion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestion(v)
		return nil
	case mistake.FieldCorrectAnswer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectAnswer(v)
		return nil
	case mistake.FieldUserAnswer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserAnswer(v)
		return nil
	case mistake.FieldExplanation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExplanation(v)
		return nil
	case mistake.FieldLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	case mistake.FieldComment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComment(v)
		return nil
	case mistake.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Mistake field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MistakeMutation) AddedFields() []string {
	var fields []string
	if m.addlevel != nil {
		fields = append(fields, mistake.FieldLevel)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MistakeMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case mistake.FieldLevel:
		return m.AddedLevel()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MistakeMutation) AddField(name string, value ent.Value) error {
	switch name {
	case mistake.FieldLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLevel(v)
		return nil
	}
	return fmt.Errorf("unknown Mistake numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MistakeMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(mistake.FieldCorrectAnswer) {
		fields = append(fields, mistake.FieldCorrectAnswer)
	}
	if m.FieldCleared(mistake.FieldUserAnswer) {
		fields = append(fields, mistake.FieldUserAnswer)
	}
	if m.FieldCleared(mistake.FieldExplanation) {
		fields = append(fields, mistake.FieldExplanation)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MistakeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MistakeMutation) ClearField(name string) error {
	switch name {
	case mistake.FieldCorrectAnswer:
		m.ClearCorrectAnswer()
		return nil
	case mistake.FieldUserAnswer:
		m.ClearUserAnswer()
		return nil
	case mistake.FieldExplanation:
		m.ClearExplanation()
		return nil
	}
	return fmt.Errorf("unknown Mistake nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MistakeMutation) ResetField(name string) error {
	switch name {
	case mistake.FieldSessionID:
		m.ResetSessionID()
		return nil
	case mistake.FieldQuestion:
		m.ResetQuestion()
		return nil
	case mistake.FieldCorrectAnswer:
		m.ResetCorrectAnswer()
		return nil
	case mistake.FieldUserAnswer:
		m.ResetUserAnswer()
		return nil
	case mistake.FieldExplanation:
		m.ResetExplanation()
		return nil
	case mistake.FieldLevel:
		m.ResetLevel()
		return nil
	case mistake.FieldComment:
		m.ResetComment()
		return nil
	case mistake.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Mistake field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MistakeMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MistakeMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MistakeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MistakeMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MistakeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MistakeMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MistakeMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Mistake unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MistakeMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Mistake edge %s", name)
}

// ProgressRecordMutation represents an operation that mutates the ProgressRecord nodes in the graph.
type ProgressRecordMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	session_id         *string
	track              *string
	xp                 *int
	addxp              *int
	unlocked_level     *int
	addunlocked_level  *int
	chapter_index      *int
	addchapter_index   *int
	history            *[]schema.Attempt
	appendhistory      []schema.Attempt
	retry_available_at *time.Time
	remedial_plan      **schema.RemedialPlan
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*ProgressRecord, error)
	predicates         []predicate.ProgressRecord
}

var _ ent.Mutation = (*ProgressRecordMutation)(nil)

// progressrecordOption allows management of the mutation configuration using functional options.
type progressrecordOption func(*ProgressRecordMutation)

// newProgressRecordMutation creates new mutation for the ProgressRecord entity.
func newProgressRecordMutation(c config, op Op, opts ...progressrecordOption) *ProgressRecordMutation {
	m := &ProgressRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeProgressRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProgressRecordID sets the ID field of the mutation.
func withProgressRecordID(id int) progressrecordOption {
	return func(m *ProgressRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *ProgressRecord
		)
		m.oldValue = func(ctx context.Context) (*ProgressRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProgressRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProgressRecord sets the old ProgressRecord of the mutation.
func withProgressRecord(node *ProgressRecord) progressrecordOption {
	return func(m *ProgressRecordMutation) {
		m.oldValue = func(context.Context) (*ProgressRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProgressRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProgressRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProgressRecordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProgressRecordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProgressRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *ProgressRecordMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ProgressRecordMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the ProgressRecord entity.
// If the ProgressRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressRecordMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ProgressRecordMutation) ResetSessionID() {
	m.session_id = nil
}

// SetTrack sets the "track" field.
func (m *ProgressRecordMutation) SetTrack(s string) {
	m.track = &s
}

// Track returns the value of the "track" field in the mutation.
func (m *ProgressRecordMutation) Track() (r string, exists bool) {
	v := m.track
	if v == nil {
		return
	}
	return *v, true
}

// OldTrack returns the old "track" field's value of the ProgressRecord entity.
// If the ProgressRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressRecordMutation) OldTrack(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrack is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrack requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrack: %w", err)
	}
	return oldValue.Track, nil
}

// ResetTrack resets all changes to the "track" field.
func (m *ProgressRecordMutation) ResetTrack() {
	m.track = nil
}

// SetXp sets the "xp" field.
func (m *ProgressRecordMutation) SetXp(i int) {
	m.xp = &i
	m.addxp = nil
}

// Xp returns the value of the "xp" field in the mutation.
func (m *ProgressRecordMutation) Xp() (r int, exists bool) {
	v := m.xp
	if v == nil {
		return
	}
	return *v, true
}

// OldXp returns the old "xp" field's value of the ProgressRecord entity.
// If the ProgressRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressRecordMutation) OldXp(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldXp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldXp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldXp: %w", err)
	}
	return oldValue.Xp, nil
}

// AddXp adds i to the "xp" field.
func (m *ProgressRecordMutation) AddXp(i int) {
	if m.addxp != nil {
		*m.addxp += i
	} else {
		m.addxp = &i
	}
}

// AddedXp returns the value that was added to the "xp" field in this mutation.
func (m *ProgressRecordMutation) AddedXp() (r int, exists bool) {
	v := m.addxp
	if v == nil {
		return
	}
	return *v, true
}

// ResetXp resets all changes to the "xp" field.
func (m *ProgressRecordMutation) ResetXp() {
	m.xp = nil
	m.addxp = nil
}

// SetUnlockedLevel sets the "unlocked_level" field.
func (m *ProgressRecordMutation) SetUnlockedLevel(i int) {
	m.unlocked_level = &i
	m.addunlocked_level = nil
}

// UnlockedLevel returns the value of the "unlocked_level" field in the mutation.
func (m *ProgressRecordMutation) UnlockedLevel() (r int, exists bool) {
	v := m.unlocked_level
	if v == nil {
		return
	}
	return *v, true
}

// OldUnlockedLevel returns the old "unlocked_level" field's value of the ProgressRecord entity.
// If the ProgressRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressRecordMutation) OldUnlockedLevel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnlockedLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnlockedLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnlockedLevel: %w", err)
	}
	return oldValue.UnlockedLevel, nil
}

// AddUnlockedLevel adds i to the "unlocked_level" field.
func (m *ProgressRecordMutation) AddUnlockedLevel(i int) {
	if m.addunlocked_level != nil {
		*m.addunlocked_level += i
	} else {
		m.addunlocked_level = &i
	}
}

// AddedUnlockedLevel returns the value that was added to the "unlocked_level" field in this mutation.
func (m *ProgressRecordMutation) AddedUnlockedLevel() (r int, exists bool) {
	v := m.addunlocked_level
	if v == nil {
		return
	}
	return *v, true
}

// ResetUnlockedLevel resets all changes to the "unlocked_level" field.
func (m *ProgressRecordMutation) ResetUnlockedLevel() {
	m.unlocked_level = nil
	m.addunlocked_level = nil
}

// SetChapterIndex sets the "chapter_index" field.
func (m *ProgressRecordMutation) SetChapterIndex(i int) {
	m.chapter_index = &i
	m.addchapter_index = nil
}

// ChapterIndex returns the value of the "chapter_index" field in the mutation.
func (m *ProgressRecordMutation) ChapterIndex() (r int, exists bool) {
	v := m.chapter_index
	if v == nil {
		return
	}
	return *v, true
}

// OldChapterIndex returns the old "chapter_index" field's value of the ProgressRecord entity.
// If the ProgressRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressRecordMutation) OldChapterIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChapterIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChapterIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChapterIndex: %w", err)
	}
	return oldValue.ChapterIndex, nil
}

// AddChapterIndex adds i to the "chapter_index" field.
func (m *ProgressRecordMutation) AddChapterIndex(i int) {
	if m.addchapter_index != nil {
		*m.addchapter_index += i
	} else {
		m.addchapter_index = &i
	}
}

// AddedChapterIndex returns the value that was added to the "chapter_index" field in this mutation.
func (m *ProgressRecordMutation) AddedChapterIndex() (r int, exists bool) {
	v := m.addchapter_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetChapterIndex resets all changes to the "chapter_index" field.
func (m *ProgressRecordMutation) ResetChapterIndex() {
	m.chapter_index = nil
	m.addchapter_index = nil
}

// SetHistory sets the "history" field.
func (m *ProgressRecordMutation) SetHistory(s []schema.Attempt) {
	m.history = &s
	m.appendhistory = nil
}

// History returns the value of the "history" field in the mutation.
func (m *ProgressRecordMutation) History() (r []schema.Attempt, exists bool) {
	v := m.history
	if v == nil {
		return
	}
	return *v, true
}

// OldHistory returns the old "history" field's value of the ProgressRecord entity.
// If the ProgressRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressRecordMutation) OldHistory(ctx context.Context) (v []schema.Attempt, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHistory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHistory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHistory: %w", err)
	}
	return oldValue.History, nil
}

// AppendHistory adds s to the "history" field.
func (m *ProgressRecordMutation) AppendHistory(s []schema.Attempt) {
	m.appendhistory = append(m.appendhistory, s...)
}

// AppendedHistory returns the list of values that were appended to the "history" field in this mutation.
func (m *ProgressRecordMutation) AppendedHistory() ([]schema.Attempt, bool) {
	if len(m.appendhistory) == 0 {
		return nil, false
	}
	return m.appendhistory, true
}

// ClearHistory clears the value of the "history" field.
func (m *ProgressRecordMutation) ClearHistory() {
	m.history = nil
	m.appendhistory = nil
	m.clearedFields[progressrecord.FieldHistory] = struct{}{}
}

// HistoryCleared returns if the "history" field was cleared in this mutation.
func (m *ProgressRecordMutation) HistoryCleared() bool {
	_, ok := m.clearedFields[progressrecord.FieldHistory]
	return ok
}

// ResetHistory resets all changes to the "history" field.
func (m *ProgressRecordMutation) ResetHistory() {
	m.history = nil
	m.appendhistory = nil
	delete(m.clearedFields, progressrecord.FieldHistory)
}

// SetRetryAvailableAt sets the "retry_available_at" field.
func (m *ProgressRecordMutation) SetRetryAvailableAt(t time.Time) {
	m.retry_available_at = &t
}

// RetryAvailableAt returns the value of the "retry_available_at" field in the mutation.
func (m *ProgressRecordMutation) RetryAvailableAt() (r time.Time, exists bool) {
	v := m.retry_available_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryAvailableAt returns the old "retry_available_at" field's value of the ProgressRecord entity.
// If the ProgressRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressRecordMutation) OldRetryAvailableAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryAvailableAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryAvailableAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryAvailableAt: %w", err)
	}
	return oldValue.RetryAvailableAt, nil
}

// ClearRetryAvailableAt clears the value of the "retry_available_at" field.
func (m *ProgressRecordMutation) ClearRetryAvailableAt() {
	m.retry_available_at = nil
	m.clearedFields[progressrecord.FieldRetryAvailableAt] = struct{}{}
}

// RetryAvailableAtCleared returns if the "retry_available_at" field was cleared in this mutation.
func (m *ProgressRecordMutation) RetryAvailableAtCleared() bool {
	_, ok := m.clearedFields[progressrecord.FieldRetryAvailableAt]
	return ok
}

// ResetRetryAvailableAt resets all changes to the "retry_available_at" field.
func (m *ProgressRecordMutation) ResetRetryAvailableAt() {
	m.retry_available_at = nil
	delete(m.clearedFields, progressrecord.FieldRetryAvailableAt)
}

// SetRemedialPlan sets the "remedial_plan" field.
func (m *ProgressRecordMutation) SetRemedialPlan(sp *schema.RemedialPlan) {
	m.remedial_plan = &sp
}

// RemedialPlan returns the value of the "remedial_plan" field in the mutation.
func (m *ProgressRecordMutation) RemedialPlan() (r *schema.RemedialPlan, exists bool) {
	v := m.remedial_plan
	if v == nil {
		return
	}
	return *v, true
}

// OldRemedialPlan returns the old "remedial_plan" field's value of the ProgressRecord entity.
// If the ProgressRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressRecordMutation) OldRemedialPlan(ctx context.Context) (v *schema.RemedialPlan, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRemedialPlan is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRemedialPlan requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRemedialPlan: %w", err)
	}
	return oldValue.RemedialPlan, nil
}

// ClearRemedialPlan clears the value of the "remedial_plan" field.
func (m *ProgressRecordMutation) ClearRemedialPlan() {
	m.remedial_plan = nil
	m.clearedFields[progressrecord.FieldRemedialPlan] = struct{}{}
}

// RemedialPlanCleared returns if the "remedial_plan" field was cleared in this mutation.
func (m *ProgressRecordMutation) RemedialPlanCleared() bool {
	_, ok := m.clearedFields[progressrecord.FieldRemedialPlan]
	return ok
}

// ResetRemedialPlan resets all changes to the "remedial_plan" field.
func (m *ProgressRecordMutation) ResetRemedialPlan() {
	m.remedial_plan = nil
	delete(m.clearedFields, progressrecord.FieldRemedialPlan)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProgressRecordMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProgressRecordMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ProgressRecord entity.
// If the ProgressRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressRecordMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ProgressRecordMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ProgressRecordMutation builder.
func (m *ProgressRecordMutation) Where(ps ...predicate.ProgressRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProgressRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProgressRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProgressRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProgressRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProgressRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProgressRecord).
func (m *ProgressRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProgressRecordMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.session_id != nil {
		fields = append(fields, progressrecord.FieldSessionID)
	}
	if m.track != nil {
		fields = append(fields, progressrecord.FieldTrack)
	}
	if m.xp != nil {
		fields = append(fields, progressrecord.FieldXp)
	}
	if m.unlocked_level != nil {
		fields = append(fields, progressrecord.FieldUnlockedLevel)
	}
	if m.chapter_index != nil {
		fields = append(fields, progressrecord.FieldChapterIndex)
	}
	if m.history != nil {
		fields = append(fields, progressrecord.FieldHistory)
	}
	if m.retry_available_at != nil {
		fields = append(fields, progressrecord.FieldRetryAvailableAt)
	}
	if m.remedial_plan != nil {
		fields = append(fields, progressrecord.FieldRemedialPlan)
	}
	if m.updated_at != nil {
		fields = append(fields, progressrecord.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProgressRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case progressrecord.FieldSessionID:
		return m.SessionID()
	case progressrecord.FieldTrack:
		return m.Track()
	case progressrecord.FieldXp:
		return m.Xp()
	case progressrecord.FieldUnlockedLevel:
		return m.UnlockedLevel()
	case progressrecord.FieldChapterIndex:
		return m.ChapterIndex()
	case progressrecord.FieldHistory:
		return m.History()
	case progressrecord.FieldRetryAvailableAt:
		return m.RetryAvailableAt()
	case progressrecord.FieldRemedialPlan:
		return m.RemedialPlan()
	case progressrecord.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProgressRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case progressrecord.FieldSessionID:
		return m.OldSessionID(ctx)
	case progressrecord.FieldTrack:
		return m.OldTrack(ctx)
	case progressrecord.FieldXp:
		return m.OldXp(ctx)
	case progressrecord.FieldUnlockedLevel:
		return m.OldUnlockedLevel(ctx)
	case progressrecord.FieldChapterIndex:
		return m.OldChapterIndex(ctx)
	case progressrecord.FieldHistory:
		return m.OldHistory(ctx)
	case progressrecord.FieldRetryAvailableAt:
		return m.OldRetryAvailableAt(ctx)
	case progressrecord.FieldRemedialPlan:
		return m.OldRemedialPlan(ctx)
	case progressrecord.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ProgressRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProgressRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case progressrecord.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case progressrecord.FieldTrack:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrack(v)
		return nil
	case progressrecord.FieldXp:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetXp(v)
		return nil
	case progressrecord.FieldUnlockedLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnlockedLevel(v)
		return nil
	case progressrecord.FieldChapterIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChapterIndex(v)
		return nil
	case progressrecord.FieldHistory:
		v, ok := value.([]schema.Attempt)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHistory(v)
		return nil
	case progressrecord.FieldRetryAvailableAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryAvailableAt(v)
		return nil
	case progressrecord.FieldRemedialPlan:
		v, ok := value.(*schema.RemedialPlan)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRemedialPlan(v)
		return nil
	case progressrecord.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ProgressRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProgressRecordMutation) AddedFields() []string {
	var fields []string
	if m.addxp != nil {
		fields = append(fields, progressrecord.FieldXp)
	}
	if m.addunlocked_level != nil {
		fields = append(fields, progressrecord.FieldUnlockedLevel)
	}
	if m.addchapter_index != nil {
		fields = append(fields, progressrecord.FieldChapterIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProgressRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case progressrecord.FieldXp:
		return m.AddedXp()
	case progressrecord.FieldUnlockedLevel:
		return m.AddedUnlockedLevel()
	case progressrecord.FieldChapterIndex:
		return m.AddedChapterIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProgressRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case progressrecord.FieldXp:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddXp(v)
		return nil
	case progressrecord.FieldUnlockedLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUnlockedLevel(v)
		return nil
	case progressrecord.FieldChapterIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddChapterIndex(v)
		return nil
	}
	return fmt.Errorf("unknown ProgressRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProgressRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(progressrecord.FieldHistory) {
		fields = append(fields, progressrecord.FieldHistory)
	}
	if m.FieldCleared(progressrecord.FieldRetryAvailableAt) {
		fields = append(fields, progressrecord.FieldRetryAvailableAt)
	}
	if m.FieldCleared(progressrecord.FieldRemedialPlan) {
		fields = append(fields, progressrecord.FieldRemedialPlan)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProgressRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProgressRecordMutation) ClearField(name string) error {
	switch name {
	case progressrecord.FieldHistory:
		m.ClearHistory()
		return nil
	case progressrecord.FieldRetryAvailableAt:
		m.ClearRetryAvailableAt()
		return nil
	case progressrecord.FieldRemedialPlan:
		m.ClearRemedialPlan()
		return nil
	}
	return fmt.Errorf("unknown ProgressRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProgressRecordMutation) ResetField(name string) error {
	switch name {
	case progressrecord.FieldSessionID:
		m.ResetSessionID()
		return nil
	case progressrecord.FieldTrack:
		m.ResetTrack()
		return nil
	case progressrecord.FieldXp:
		m.ResetXp()
		return nil
	case progressrecord.FieldUnlockedLevel:
		m.ResetUnlockedLevel()
		return nil
	case progressrecord.FieldChapterIndex:
		m.ResetChapterIndex()
		return nil
	case progressrecord.FieldHistory:
		m.ResetHistory()
		return nil
	case progressrecord.FieldRetryAvailableAt:
		m.ResetRetryAvailableAt()
		return nil
	case progressrecord.FieldRemedialPlan:
		m.ResetRemedialPlan()
		return nil
	case progressrecord.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ProgressRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProgressRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProgressRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProgressRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProgressRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProgressRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProgressRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProgressRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ProgressRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProgressRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ProgressRecord edge %s", name)
}

// RoadmapMutation represents an operation that mutates the Roadmap nodes in the graph.
type RoadmapMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	roadmap_id           *string
	session_id           *string
	title                *string
	description          *string
	total_days           *int
	addtotal_days        *int
	days                 *[]schema.RoadmapDay
	appenddays           []schema.RoadmapDay
	completed_days       *[]int
	appendcompleted_days []int
	status               *string
	created_at           *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*Roadmap, error)
	predicates           []predicate.Roadmap
}

var _ ent.Mutation = (*RoadmapMutation)(nil)

// roadmapOption allows management of the mutation configuration using functional options.
type roadmapOption func(*RoadmapMutation)

// newRoadmapMutation creates new mutation for the Roadmap entity.
func newRoadmapMutation(c config, op Op, opts ...roadmapOption) *RoadmapMutation {
	m := &RoadmapMutation{
		config:        c,
		op:            op,
		typ:           TypeRoadmap,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRoadmapID sets the ID field of the mutation.
func withRoadmapID(id int) roadmapOption {
	return func(m *RoadmapMutation) {
		var (
			err   error
			once  sync.Once
			value *Roadmap
		)
		m.oldValue = func(ctx context.Context) (*Roadmap, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Roadmap.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRoadmap sets the old Roadmap of the mutation.
func withRoadmap(node *Roadmap) roadmapOption {
	return func(m *RoadmapMutation) {
		m.oldValue = func(context.Context) (*Roadmap, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RoadmapMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RoadmapMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RoadmapMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RoadmapMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Roadmap.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRoadmapID sets the "roadmap_id" field.
func (m *RoadmapMutation) SetRoadmapID(s string) {
	m.roadmap_id = &s
}

// RoadmapID returns the value of the "roadmap_id" field in the mutation.
func (m *RoadmapMutation) RoadmapID() (r string, exists bool) {
	v := m.roadmap_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRoadmapID returns the old "roadmap_id" field's value of the Roadmap entity.
// If the Roadmap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoadmapMutation) OldRoadmapID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoadmapID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoadmapID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoadmapID: %w", err)
	}
	return oldValue.RoadmapID, nil
}

// ResetRoadmapID resets all changes to the "roadmap_id" field.
func (m *RoadmapMutation) ResetRoadmapID() {
	m.roadmap_id = nil
}

// SetSessionID sets the "session_id" field.
func (m *RoadmapMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *RoadmapMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Roadmap entity.
// If the Roadmap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoadmapMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *RoadmapMutation) ResetSessionID() {
	m.session_id = nil
}

// SetTitle sets the "title" field.
func (m *RoadmapMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *RoadmapMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Roadmap entity.
// If the Roadmap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoadmapMutation) OldTitle(ctx context.Context) (v string, err error) {
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
func (m *RoadmapMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *RoadmapMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *RoadmapMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Roadmap entity.
// If the Roadmap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoadmapMutation) OldDescription(ctx context.Context) (v string, err error) {
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
func (m *RoadmapMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[roadmap.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *RoadmapMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[roadmap.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *RoadmapMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, roadmap.FieldDescription)
}

// SetTotalDays sets the "total_days" field.
func (m *RoadmapMutation) SetTotalDays(i int) {
	m.total_days = &i
	m.addtotal_days = nil
}

// TotalDays returns the value of the "total_days" field in the mutation.
func (m *RoadmapMutation) TotalDays() (r int, exists bool) {
	v := m.total_days
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalDays returns the old "total_days" field's value of the Roadmap entity.
// If the Roadmap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoadmapMutation) OldTotalDays(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalDays: %w", err)
	}
	return oldValue.TotalDays, nil
}

// AddTotalDays adds i to the "total_days" field.
func (m *RoadmapMutation) AddTotalDays(i int) {
	if m.addtotal_days != nil {
		*m.addtotal_days += i
	} else {
		m.addtotal_days = &i
	}
}

// AddedTotalDays returns the value that was added to the "total_days" field in this mutation.
func (m *RoadmapMutation) AddedTotalDays() (r int, exists bool) {
	v := m.addtotal_days
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalDays resets all changes to the "total_days" field.
func (m *RoadmapMutation) ResetTotalDays() {
	m.total_days = nil
	m.addtotal_days = nil
}

// SetDays sets the "days" field.
func (m *RoadmapMutation) SetDays(sd []schema.RoadmapDay) {
	m.days = &sd
	m.appenddays = nil
}

// Days returns the value of the "days" field in the mutation.
func (m *RoadmapMutation) Days() (r []schema.RoadmapDay, exists bool) {
	v := m.days
	if v == nil {
		return
	}
	return *v, true
}

// OldDays returns the old "days" field's value of the Roadmap entity.
// If the Roadmap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoadmapMutation) OldDays(ctx context.Context) (v []schema.RoadmapDay, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDays: %w", err)
	}
	return oldValue.Days, nil
}

// AppendDays adds sd to the "days" field.
func (m *RoadmapMutation) AppendDays(sd []schema.RoadmapDay) {
	m.appenddays = append(m.appenddays, sd...)
}

// AppendedDays returns the list of values that were appended to the "days" field in this mutation.
func (m *RoadmapMutation) AppendedDays() ([]schema.RoadmapDay, bool) {
	if len(m.appenddays) == 0 {
		return nil, false
	}
	return m.appenddays, true
}

// ResetDays resets all changes to the "days" field.
func (m *RoadmapMutation) ResetDays() {
	m.days = nil
	m.appenddays = nil
}

// SetCompletedDays sets the "completed_days" field.
func (m *RoadmapMutation) SetCompletedDays(i []int) {
	m.completed_days = &i
	m.appendcompleted_days = nil
}

// CompletedDays returns the value of the "completed_days" field in the mutation.
func (m *RoadmapMutation) CompletedDays() (r []int, exists bool) {
	v := m.completed_days
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedDays returns the old "completed_days" field's value of the Roadmap entity.
// If the Roadmap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoadmapMutation) OldCompletedDays(ctx context.Context) (v []int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedDays: %w", err)
	}
	return oldValue.CompletedDays, nil
}

// AppendCompletedDays adds i to the "completed_days" field.
func (m *RoadmapMutation) AppendCompletedDays(i []int) {
	m.appendcompleted_days = append(m.appendcompleted_days, i...)
}

// AppendedCompletedDays returns the list of values that were appended to the "completed_days" field in this mutation.
func (m *RoadmapMutation) AppendedCompletedDays() ([]int, bool) {
	if len(m.appendcompleted_days) == 0 {
		return nil, false
	}
	return m.appendcompleted_days, true
}

// ClearCompletedDays clears the value of the "completed_days" field.
func (m *RoadmapMutation) ClearCompletedDays() {
	m.completed_days = nil
	m.appendcompleted_days = nil
	m.clearedFields[roadmap.FieldCompletedDays] = struct{}{}
}

// CompletedDaysCleared returns if the "completed_days" field was cleared in this mutation.
func (m *RoadmapMutation) CompletedDaysCleared() bool {
	_, ok := m.clearedFields[roadmap.FieldCompletedDays]
	return ok
}

// ResetCompletedDays resets all changes to the "completed_days" field.
func (m *RoadmapMutation) ResetCompletedDays() {
	m.completed_days = nil
	m.appendcompleted_days = nil
	delete(m.clearedFields, roadmap.FieldCompletedDays)
}

// SetStatus sets the "status" field.
func (m *RoadmapMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *RoadmapMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Roadmap entity.
// If the Roadmap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoadmapMutation) OldStatus(ctx context.Context) (v string, err error) {
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
func (m *RoadmapMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *RoadmapMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RoadmapMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Roadmap entity.
// If the Roadmap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoadmapMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *RoadmapMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the RoadmapMutation builder.
func (m *RoadmapMutation) Where(ps ...predicate.Roadmap) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RoadmapMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RoadmapMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Roadmap, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RoadmapMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RoadmapMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Roadmap).
func (m *RoadmapMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RoadmapMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.roadmap_id != nil {
		fields = append(fields, roadmap.FieldRoadmapID)
	}
	if m.session_id != nil {
		fields = append(fields, roadmap.FieldSessionID)
	}
	if m.title != nil {
		fields = append(fields, roadmap.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, roadmap.FieldDescription)
	}
	if m.total_days != nil {
		fields = append(fields, roadmap.FieldTotalDays)
	}
	if m.days != nil {
		fields = append(fields, roadmap.FieldDays)
	}
	if m.completed_days != nil {
		fields = append(fields, roadmap.FieldCompletedDays)
	}
	if m.status != nil {
		fields = append(fields, roadmap.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, roadmap.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RoadmapMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case roadmap.FieldRoadmapID:
		return m.RoadmapID()
	case roadmap.FieldSessionID:
		return m.SessionID()
	case roadmap.FieldTitle:
		return m.Title()
	case roadmap.FieldDescription:
		return m.Description()
	case roadmap.FieldTotalDays:
		return m.TotalDays()
	case roadmap.FieldDays:
		return m.Days()
	case roadmap.FieldCompletedDays:
		return m.CompletedDays()
	case roadmap.FieldStatus:
		return m.Status()
	case roadmap.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RoadmapMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case roadmap.FieldRoadmapID:
		return m.OldRoadmapID(ctx)
	case roadmap.FieldSessionID:
		return m.OldSessionID(ctx)
	case roadmap.FieldTitle:
		return m.OldTitle(ctx)
	case roadmap.FieldDescription:
		return m.OldDescription(ctx)
	case roadmap.FieldTotalDays:
		return m.OldTotalDays(ctx)
	case roadmap.FieldDays:
		return m.OldDays(ctx)
	case roadmap.FieldCompletedDays:
		return m.OldCompletedDays(ctx)
	case roadmap.FieldStatus:
		return m.OldStatus(ctx)
	case roadmap.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Roadmap field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RoadmapMutation) SetField(name string, value ent.Value) error {
	switch name {
	case roadmap.FieldRoadmapID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoadmapID(v)
		return nil
	case roadmap.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case roadmap.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case roadmap.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case roadmap.FieldTotalDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalDays(v)
		return nil
	case roadmap.FieldDays:
		v, ok := value.([]schema.RoadmapDay)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDays(v)
		return nil
	case roadmap.FieldCompletedDays:
		v, ok := value.([]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedDays(v)
		return nil
	case roadmap.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case roadmap.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Roadmap field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RoadmapMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_days != nil {
		fields = append(fields, roadmap.FieldTotalDays)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RoadmapMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case roadmap.FieldTotalDays:
		return m.AddedTotalDays()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RoadmapMutation) AddField(name string, value ent.Value) error {
	switch name {
	case roadmap.FieldTotalDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalDays(v)
		return nil
	}
	return fmt.Errorf("unknown Roadmap numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RoadmapMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(roadmap.FieldDescription) {
		fields = append(fields, roadmap.FieldDescription)
	}
	if m.FieldCleared(roadmap.FieldCompletedDays) {
		fields = append(fields, roadmap.FieldCompletedDays)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RoadmapMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RoadmapMutation) ClearField(name string) error {
	switch name {
	case roadmap.FieldDescription:
		m.ClearDescription()
		return nil
	case roadmap.FieldCompletedDays:
		m.ClearCompletedDays()
		return nil
	}
	return fmt.Errorf("unknown Roadmap nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RoadmapMutation) ResetField(name string) error {
	switch name {
	case roadmap.FieldRoadmapID:
		m.ResetRoadmapID()
		return nil
	case roadmap.FieldSessionID:
		m.ResetSessionID()
		return nil
	case roadmap.FieldTitle:
		m.ResetTitle()
		return nil
	case roadmap.FieldDescription:
		m.ResetDescription()
		return nil
	case roadmap.FieldTotalDays:
		m.ResetTotalDays()
		return nil
	case roadmap.FieldDays:
		m.ResetDays()
		return nil
	case roadmap.FieldCompletedDays:
		m.ResetCompletedDays()
		return nil
	case roadmap.FieldStatus:
		m.ResetStatus()
		return nil
	case roadmap.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Roadmap field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RoadmapMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RoadmapMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RoadmapMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RoadmapMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RoadmapMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RoadmapMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RoadmapMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Roadmap unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RoadmapMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Roadmap edge %s", name)
}
