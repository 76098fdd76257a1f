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
	"github.com/danielokoye/invoicescan/gen/ent/job"
	"github.com/danielokoye/invoicescan/gen/ent/ocrbox"
	"github.com/danielokoye/invoicescan/gen/ent/predicate"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeJob    = "Job"
	TypeOCRBox = "OCRBox"
)

// JobMutation represents an operation that mutates the Job nodes in the graph.
type JobMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	status        *string
	file_name     *string
	source_key    *string
	ocr_provider  *string
	llm_provider  *string
	progress      *int
	addprogress   *int
	error_message *string
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	boxes         map[uuid.UUID]struct{}
	removedboxes  map[uuid.UUID]struct{}
	clearedboxes  bool
	done          bool
	oldValue      func(context.Context) (*Job, error)
	predicates    []predicate.Job
}

var _ ent.Mutation = (*JobMutation)(nil)

// jobOption allows management of the mutation configuration using functional options.
type jobOption func(*JobMutation)

// newJobMutation creates new mutation for the Job entity.
func newJobMutation(c config, op Op, opts ...jobOption) *JobMutation {
	m := &JobMutation{
		config:        c,
		op:            op,
		typ:           TypeJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobID sets the ID field of the mutation.
func withJobID(id uuid.UUID) jobOption {
	return func(m *JobMutation) {
		var (
			err   error
			once  sync.Once
			value *Job
		)
		m.oldValue = func(ctx context.Context) (*Job, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Job.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJob sets the old Job of the mutation.
func withJob(node *Job) jobOption {
	return func(m *JobMutation) {
		m.oldValue = func(context.Context) (*Job, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Job entities.
func (m *JobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Job.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStatus sets the "status" field.
func (m *JobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *JobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldStatus(ctx context.Context) (v string, err error) {
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
func (m *JobMutation) ResetStatus() {
	m.status = nil
}

// SetFileName sets the "file_name" field.
func (m *JobMutation) SetFileName(s string) {
	m.file_name = &s
}

// FileName returns the value of the "file_name" field in the mutation.
func (m *JobMutation) FileName() (r string, exists bool) {
	v := m.file_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFileName returns the old "file_name" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldFileName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileName: %w", err)
	}
	return oldValue.FileName, nil
}

// ResetFileName resets all changes to the "file_name" field.
func (m *JobMutation) ResetFileName() {
	m.file_name = nil
}

// SetSourceKey sets the "source_key" field.
func (m *JobMutation) SetSourceKey(s string) {
	m.source_key = &s
}

// SourceKey returns the value of the "source_key" field in the mutation.
func (m *JobMutation) SourceKey() (r string, exists bool) {
	v := m.source_key
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceKey returns the old "source_key" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldSourceKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceKey: %w", err)
	}
	return oldValue.SourceKey, nil
}

// ResetSourceKey resets all changes to the "source_key" field.
func (m *JobMutation) ResetSourceKey() {
	m.source_key = nil
}

// SetOcrProvider sets the "ocr_provider" field.
func (m *JobMutation) SetOcrProvider(s string) {
	m.ocr_provider = &s
}

// OcrProvider returns the value of the "ocr_provider" field in the mutation.
func (m *JobMutation) OcrProvider() (r string, exists bool) {
	v := m.ocr_provider
	if v == nil {
		return
	}
	return *v, true
}

// OldOcrProvider returns the old "ocr_provider" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldOcrProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOcrProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOcrProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOcrProvider: %w", err)
	}
	return oldValue.OcrProvider, nil
}

// ResetOcrProvider resets all changes to the "ocr_provider" field.
func (m *JobMutation) ResetOcrProvider() {
	m.ocr_provider = nil
}

// SetLlmProvider sets the "llm_provider" field.
func (m *JobMutation) SetLlmProvider(s string) {
	m.llm_provider = &s
}

// LlmProvider returns the value of the "llm_provider" field in the mutation.
func (m *JobMutation) LlmProvider() (r string, exists bool) {
	v := m.llm_provider
	if v == nil {
		return
	}
	return *v, true
}

// OldLlmProvider returns the old "llm_provider" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldLlmProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLlmProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLlmProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLlmProvider: %w", err)
	}
	return oldValue.LlmProvider, nil
}

// ResetLlmProvider resets all changes to the "llm_provider" field.
func (m *JobMutation) ResetLlmProvider() {
	m.llm_provider = nil
}

// SetProgress sets the "progress" field.
func (m *JobMutation) SetProgress(i int) {
	m.progress = &i
	m.addprogress = nil
}

// Progress returns the value of the "progress" field in the mutation.
func (m *JobMutation) Progress() (r int, exists bool) {
	v := m.progress
	if v == nil {
		return
	}
	return *v, true
}

// OldProgress returns the old "progress" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldProgress(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgress: %w", err)
	}
	return oldValue.Progress, nil
}

// AddProgress adds i to the "progress" field.
func (m *JobMutation) AddProgress(i int) {
	if m.addprogress != nil {
		*m.addprogress += i
	} else {
		m.addprogress = &i
	}
}

// AddedProgress returns the value that was added to the "progress" field in this mutation.
func (m *JobMutation) AddedProgress() (r int, exists bool) {
	v := m.addprogress
	if v == nil {
		return
	}
	return *v, true
}

// ResetProgress resets all changes to the "progress" field.
func (m *JobMutation) ResetProgress() {
	m.progress = nil
	m.addprogress = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *JobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *JobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
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
func (m *JobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[job.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *JobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[job.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *JobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, job.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *JobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *JobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *JobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *JobMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *JobMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *JobMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddBoxIDs adds the "boxes" edge to the OCRBox entity by ids.
func (m *JobMutation) AddBoxIDs(ids ...uuid.UUID) {
	if m.boxes == nil {
		m.boxes = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.boxes[ids[i]] = struct{}{}
	}
}

// ClearBoxes clears the "boxes" edge to the OCRBox entity.
func (m *JobMutation) ClearBoxes() {
	m.clearedboxes = true
}

// BoxesCleared reports if the "boxes" edge to the OCRBox entity was cleared.
func (m *JobMutation) BoxesCleared() bool {
	return m.clearedboxes
}

// RemoveBoxIDs removes the "boxes" edge to the OCRBox entity by IDs.
func (m *JobMutation) RemoveBoxIDs(ids ...uuid.UUID) {
	if m.removedboxes == nil {
		m.removedboxes = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.boxes, ids[i])
		m.removedboxes[ids[i]] = struct{}{}
	}
}

// RemovedBoxes returns the removed IDs of the "boxes" edge to the OCRBox entity.
func (m *JobMutation) RemovedBoxesIDs() (ids []uuid.UUID) {
	for id := range m.removedboxes {
		ids = append(ids, id)
	}
	return
}

// BoxesIDs returns the "boxes" edge IDs in the mutation.
func (m *JobMutation) BoxesIDs() (ids []uuid.UUID) {
	for id := range m.boxes {
		ids = append(ids, id)
	}
	return
}

// ResetBoxes resets all changes to the "boxes" edge.
func (m *JobMutation) ResetBoxes() {
	m.boxes = nil
	m.clearedboxes = false
	m.removedboxes = nil
}

// Where appends a list predicates to the JobMutation builder.
func (m *JobMutation) Where(ps ...predicate.Job) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Job, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Job).
func (m *JobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.status != nil {
		fields = append(fields, job.FieldStatus)
	}
	if m.file_name != nil {
		fields = append(fields, job.FieldFileName)
	}
	if m.source_key != nil {
		fields = append(fields, job.FieldSourceKey)
	}
	if m.ocr_provider != nil {
		fields = append(fields, job.FieldOcrProvider)
	}
	if m.llm_provider != nil {
		fields = append(fields, job.FieldLlmProvider)
	}
	if m.progress != nil {
		fields = append(fields, job.FieldProgress)
	}
	if m.error_message != nil {
		fields = append(fields, job.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, job.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, job.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case job.FieldStatus:
		return m.Status()
	case job.FieldFileName:
		return m.FileName()
	case job.FieldSourceKey:
		return m.SourceKey()
	case job.FieldOcrProvider:
		return m.OcrProvider()
	case job.FieldLlmProvider:
		return m.LlmProvider()
	case job.FieldProgress:
		return m.Progress()
	case job.FieldErrorMessage:
		return m.ErrorMessage()
	case job.FieldCreatedAt:
		return m.CreatedAt()
	case job.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case job.FieldStatus:
		return m.OldStatus(ctx)
	case job.FieldFileName:
		return m.OldFileName(ctx)
	case job.FieldSourceKey:
		return m.OldSourceKey(ctx)
	case job.FieldOcrProvider:
		return m.OldOcrProvider(ctx)
	case job.FieldLlmProvider:
		return m.OldLlmProvider(ctx)
	case job.FieldProgress:
		return m.OldProgress(ctx)
	case job.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case job.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case job.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Job field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case job.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case job.FieldFileName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileName(v)
		return nil
	case job.FieldSourceKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceKey(v)
		return nil
	case job.FieldOcrProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOcrProvider(v)
		return nil
	case job.FieldLlmProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLlmProvider(v)
		return nil
	case job.FieldProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgress(v)
		return nil
	case job.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case job.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case job.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobMutation) AddedFields() []string {
	var fields []string
	if m.addprogress != nil {
		fields = append(fields, job.FieldProgress)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case job.FieldProgress:
		return m.AddedProgress()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case job.FieldProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProgress(v)
		return nil
	}
	return fmt.Errorf("unknown Job numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(job.FieldErrorMessage) {
		fields = append(fields, job.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobMutation) ClearField(name string) error {
	switch name {
	case job.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown Job nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobMutation) ResetField(name string) error {
	switch name {
	case job.FieldStatus:
		m.ResetStatus()
		return nil
	case job.FieldFileName:
		m.ResetFileName()
		return nil
	case job.FieldSourceKey:
		m.ResetSourceKey()
		return nil
	case job.FieldOcrProvider:
		m.ResetOcrProvider()
		return nil
	case job.FieldLlmProvider:
		m.ResetLlmProvider()
		return nil
	case job.FieldProgress:
		m.ResetProgress()
		return nil
	case job.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case job.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case job.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.boxes != nil {
		edges = append(edges, job.EdgeBoxes)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case job.EdgeBoxes:
		ids := make([]ent.Value, 0, len(m.boxes))
		for id := range m.boxes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedboxes != nil {
		edges = append(edges, job.EdgeBoxes)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case job.EdgeBoxes:
		ids := make([]ent.Value, 0, len(m.removedboxes))
		for id := range m.removedboxes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedboxes {
		edges = append(edges, job.EdgeBoxes)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobMutation) EdgeCleared(name string) bool {
	switch name {
	case job.EdgeBoxes:
		return m.clearedboxes
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Job unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobMutation) ResetEdge(name string) error {
	switch name {
	case job.EdgeBoxes:
		m.ResetBoxes()
		return nil
	}
	return fmt.Errorf("unknown Job edge %s", name)
}

// OCRBoxMutation represents an operation that mutates the OCRBox nodes in the graph.
type OCRBoxMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	page_number    *int
	addpage_number *int
	left           *int
	addleft        *int
	top            *int
	addtop         *int
	width          *int
	addwidth       *int
	height         *int
	addheight      *int
	text           *string
	confidence     *float32
	addconfidence  *float32
	field_name     *string
	clearedFields  map[string]struct{}
	job            *uuid.UUID
	clearedjob     bool
	done           bool
	oldValue       func(context.Context) (*OCRBox, error)
	predicates     []predicate.OCRBox
}

var _ ent.Mutation = (*OCRBoxMutation)(nil)

// ocrboxOption allows management of the mutation configuration using functional options.
type ocrboxOption func(*OCRBoxMutation)

// newOCRBoxMutation creates new mutation for the OCRBox entity.
func newOCRBoxMutation(c config, op Op, opts ...ocrboxOption) *OCRBoxMutation {
	m := &OCRBoxMutation{
		config:        c,
		op:            op,
		typ:           TypeOCRBox,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOCRBoxID sets the ID field of the mutation.
func withOCRBoxID(id uuid.UUID) ocrboxOption {
	return func(m *OCRBoxMutation) {
		var (
			err   error
			once  sync.Once
			value *OCRBox
		)
		m.oldValue = func(ctx context.Context) (*OCRBox, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().OCRBox.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOCRBox sets the old OCRBox of the mutation.
func withOCRBox(node *OCRBox) ocrboxOption {
	return func(m *OCRBoxMutation) {
		m.oldValue = func(context.Context) (*OCRBox, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OCRBoxMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OCRBoxMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of OCRBox entities.
func (m *OCRBoxMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OCRBoxMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OCRBoxMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().OCRBox.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *OCRBoxMutation) SetJobID(u uuid.UUID) {
	m.job = &u
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *OCRBoxMutation) JobID() (r uuid.UUID, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the OCRBox entity.
// If the OCRBox object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OCRBoxMutation) OldJobID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *OCRBoxMutation) ResetJobID() {
	m.job = nil
}

// SetPageNumber sets the "page_number" field.
func (m *OCRBoxMutation) SetPageNumber(i int) {
	m.page_number = &i
	m.addpage_number = nil
}

// PageNumber returns the value of the "page_number" field in the mutation.
func (m *OCRBoxMutation) PageNumber() (r int, exists bool) {
	v := m.page_number
	if v == nil {
		return
	}
	return *v, true
}

// OldPageNumber returns the old "page_number" field's value of the OCRBox entity.
// If the OCRBox object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OCRBoxMutation) OldPageNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPageNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPageNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPageNumber: %w", err)
	}
	return oldValue.PageNumber, nil
}

// AddPageNumber adds i to the "page_number" field.
func (m *OCRBoxMutation) AddPageNumber(i int) {
	if m.addpage_number != nil {
		*m.addpage_number += i
	} else {
		m.addpage_number = &i
	}
}

// AddedPageNumber returns the value that was added to the "page_number" field in this mutation.
func (m *OCRBoxMutation) AddedPageNumber() (r int, exists bool) {
	v := m.addpage_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetPageNumber resets all changes to the "page_number" field.
func (m *OCRBoxMutation) ResetPageNumber() {
	m.page_number = nil
	m.addpage_number = nil
}

// SetLeft sets the "left" field.
func (m *OCRBoxMutation) SetLeft(i int) {
	m.left = &i
	m.addleft = nil
}

// Left returns the value of the "left" field in the mutation.
func (m *OCRBoxMutation) Left() (r int, exists bool) {
	v := m.left
	if v == nil {
		return
	}
	return *v, true
}

// OldLeft returns the old "left" field's value of the OCRBox entity.
// If the OCRBox object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OCRBoxMutation) OldLeft(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeft is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeft requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeft: %w", err)
	}
	return oldValue.Left, nil
}

// AddLeft adds i to the "left" field.
func (m *OCRBoxMutation) AddLeft(i int) {
	if m.addleft != nil {
		*m.addleft += i
	} else {
		m.addleft = &i
	}
}

// AddedLeft returns the value that was added to the "left" field in this mutation.
func (m *OCRBoxMutation) AddedLeft() (r int, exists bool) {
	v := m.addleft
	if v == nil {
		return
	}
	return *v, true
}

// ResetLeft resets all changes to the "left" field.
func (m *OCRBoxMutation) ResetLeft() {
	m.left = nil
	m.addleft = nil
}

// SetTop sets the "top" field.
func (m *OCRBoxMutation) SetTop(i int) {
	m.top = &i
	m.addtop = nil
}

// Top returns the value of the "top" field in the mutation.
func (m *OCRBoxMutation) Top() (r int, exists bool) {
	v := m.top
	if v == nil {
		return
	}
	return *v, true
}

// OldTop returns the old "top" field's value of the OCRBox entity.
// If the OCRBox object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OCRBoxMutation) OldTop(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTop is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTop requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTop: %w", err)
	}
	return oldValue.Top, nil
}

// AddTop adds i to the "top" field.
func (m *OCRBoxMutation) AddTop(i int) {
	if m.addtop != nil {
		*m.addtop += i
	} else {
		m.addtop = &i
	}
}

// AddedTop returns the value that was added to the "top" field in this mutation.
func (m *OCRBoxMutation) AddedTop() (r int, exists bool) {
	v := m.addtop
	if v == nil {
		return
	}
	return *v, true
}

// ResetTop resets all changes to the "top" field.
func (m *OCRBoxMutation) ResetTop() {
	m.top = nil
	m.addtop = nil
}

// SetWidth sets the "width" field.
func (m *OCRBoxMutation) SetWidth(i int) {
	m.width = &i
	m.addwidth = nil
}

// Width returns the value of the "width" field in the mutation.
func (m *OCRBoxMutation) Width() (r int, exists bool) {
	v := m.width
	if v == nil {
		return
	}
	return *v, true
}

// OldWidth returns the old "width" field's value of the OCRBox entity.
// If the OCRBox object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OCRBoxMutation) OldWidth(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWidth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWidth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWidth: %w", err)
	}
	return oldValue.Width, nil
}

// AddWidth adds i to the "width" field.
func (m *OCRBoxMutation) AddWidth(i int) {
	if m.addwidth != nil {
		*m.addwidth += i
	} else {
		m.addwidth = &i
	}
}

// AddedWidth returns the value that was added to the "width" field in this mutation.
func (m *OCRBoxMutation) AddedWidth() (r int, exists bool) {
	v := m.addwidth
	if v == nil {
		return
	}
	return *v, true
}

// ResetWidth resets all changes to the "width" field.
func (m *OCRBoxMutation) ResetWidth() {
	m.width = nil
	m.addwidth = nil
}

// SetHeight sets the "height" field.
func (m *OCRBoxMutation) SetHeight(i int) {
	m.height = &i
	m.addheight = nil
}

// Height returns the value of the "height" field in the mutation.
func (m *OCRBoxMutation) Height() (r int, exists bool) {
	v := m.height
	if v == nil {
		return
	}
	return *v, true
}

// OldHeight returns the old "height" field's value of the OCRBox entity.
// If the OCRBox object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OCRBoxMutation) OldHeight(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeight is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeight requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeight: %w", err)
	}
	return oldValue.Height, nil
}

// AddHeight adds i to the "height" field.
func (m *OCRBoxMutation) AddHeight(i int) {
	if m.addheight != nil {
		*m.addheight += i
	} else {
		m.addheight = &i
	}
}

// AddedHeight returns the value that was added to the "height" field in this mutation.
func (m *OCRBoxMutation) AddedHeight() (r int, exists bool) {
	v := m.addheight
	if v == nil {
		return
	}
	return *v, true
}

// ResetHeight resets all changes to the "height" field.
func (m *OCRBoxMutation) ResetHeight() {
	m.height = nil
	m.addheight = nil
}

// SetText sets the "text" field.
func (m *OCRBoxMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *OCRBoxMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the OCRBox entity.
// If the OCRBox object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OCRBoxMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ResetText resets all changes to the "text" field.
func (m *OCRBoxMutation) ResetText() {
	m.text = nil
}

// SetConfidence sets the "confidence" field.
func (m *OCRBoxMutation) SetConfidence(f float32) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *OCRBoxMutation) Confidence() (r float32, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the OCRBox entity.
// If the OCRBox object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OCRBoxMutation) OldConfidence(ctx context.Context) (v float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *OCRBoxMutation) AddConfidence(f float32) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *OCRBoxMutation) AddedConfidence() (r float32, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *OCRBoxMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetFieldName sets the "field_name" field.
func (m *OCRBoxMutation) SetFieldName(s string) {
	m.field_name = &s
}

// FieldName returns the value of the "field_name" field in the mutation.
func (m *OCRBoxMutation) FieldName() (r string, exists bool) {
	v := m.field_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFieldName returns the old "field_name" field's value of the OCRBox entity.
// If the OCRBox object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OCRBoxMutation) OldFieldName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFieldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFieldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFieldName: %w", err)
	}
	return oldValue.FieldName, nil
}

// ClearFieldName clears the value of the "field_name" field.
func (m *OCRBoxMutation) ClearFieldName() {
	m.field_name = nil
	m.clearedFields[ocrbox.FieldFieldName] = struct{}{}
}

// FieldNameCleared returns if the "field_name" field was cleared in this mutation.
func (m *OCRBoxMutation) FieldNameCleared() bool {
	_, ok := m.clearedFields[ocrbox.FieldFieldName]
	return ok
}

// ResetFieldName resets all changes to the "field_name" field.
func (m *OCRBoxMutation) ResetFieldName() {
	m.field_name = nil
	delete(m.clearedFields, ocrbox.FieldFieldName)
}

// ClearJob clears the "job" edge to the Job entity.
func (m *OCRBoxMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[ocrbox.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the Job entity was cleared.
func (m *OCRBoxMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *OCRBoxMutation) JobIDs() (ids []uuid.UUID) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *OCRBoxMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// Where appends a list predicates to the OCRBoxMutation builder.
func (m *OCRBoxMutation) Where(ps ...predicate.OCRBox) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OCRBoxMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OCRBoxMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.OCRBox, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OCRBoxMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OCRBoxMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (OCRBox).
func (m *OCRBoxMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OCRBoxMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.job != nil {
		fields = append(fields, ocrbox.FieldJobID)
	}
	if m.page_number != nil {
		fields = append(fields, ocrbox.FieldPageNumber)
	}
	if m.left != nil {
		fields = append(fields, ocrbox.FieldLeft)
	}
	if m.top != nil {
		fields = append(fields, ocrbox.FieldTop)
	}
	if m.width != nil {
		fields = append(fields, ocrbox.FieldWidth)
	}
	if m.height != nil {
		fields = append(fields, ocrbox.FieldHeight)
	}
	if m.text != nil {
		fields = append(fields, ocrbox.FieldText)
	}
	if m.confidence != nil {
		fields = append(fields, ocrbox.FieldConfidence)
	}
	if m.field_name != nil {
		fields = append(fields, ocrbox.FieldFieldName)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OCRBoxMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case ocrbox.FieldJobID:
		return m.JobID()
	case ocrbox.FieldPageNumber:
		return m.PageNumber()
	case ocrbox.FieldLeft:
		return m.Left()
	case ocrbox.FieldTop:
		return m.Top()
	case ocrbox.FieldWidth:
		return m.Width()
	case ocrbox.FieldHeight:
		return m.Height()
	case ocrbox.FieldText:
		return m.Text()
	case ocrbox.FieldConfidence:
		return m.Confidence()
	case ocrbox.FieldFieldName:
		return m.FieldName()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OCRBoxMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case ocrbox.FieldJobID:
		return m.OldJobID(ctx)
	case ocrbox.FieldPageNumber:
		return m.OldPageNumber(ctx)
	case ocrbox.FieldLeft:
		return m.OldLeft(ctx)
	case ocrbox.FieldTop:
		return m.OldTop(ctx)
	case ocrbox.FieldWidth:
		return m.OldWidth(ctx)
	case ocrbox.FieldHeight:
		return m.OldHeight(ctx)
	case ocrbox.FieldText:
		return m.OldText(ctx)
	case ocrbox.FieldConfidence:
		return m.OldConfidence(ctx)
	case ocrbox.FieldFieldName:
		return m.OldFieldName(ctx)
	}
	return nil, fmt.Errorf("unknown OCRBox field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OCRBoxMutation) SetField(name string, value ent.Value) error {
	switch name {
	case ocrbox.FieldJobID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case ocrbox.FieldPageNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPageNumber(v)
		return nil
	case ocrbox.FieldLeft:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeft(v)
		return nil
	case ocrbox.FieldTop:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTop(v)
		return nil
	case ocrbox.FieldWidth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWidth(v)
		return nil
	case ocrbox.FieldHeight:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeight(v)
		return nil
	case ocrbox.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	case ocrbox.FieldConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case ocrbox.FieldFieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFieldName(v)
		return nil
	}
	return fmt.Errorf("unknown OCRBox field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OCRBoxMutation) AddedFields() []string {
	var fields []string
	if m.addpage_number != nil {
		fields = append(fields, ocrbox.FieldPageNumber)
	}
	if m.addleft != nil {
		fields = append(fields, ocrbox.FieldLeft)
	}
	if m.addtop != nil {
		fields = append(fields, ocrbox.FieldTop)
	}
	if m.addwidth != nil {
		fields = append(fields, ocrbox.FieldWidth)
	}
	if m.addheight != nil {
		fields = append(fields, ocrbox.FieldHeight)
	}
	if m.addconfidence != nil {
		fields = append(fields, ocrbox.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OCRBoxMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case ocrbox.FieldPageNumber:
		return m.AddedPageNumber()
	case ocrbox.FieldLeft:
		return m.AddedLeft()
	case ocrbox.FieldTop:
		return m.AddedTop()
	case ocrbox.FieldWidth:
		return m.AddedWidth()
	case ocrbox.FieldHeight:
		return m.AddedHeight()
	case ocrbox.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OCRBoxMutation) AddField(name string, value ent.Value) error {
	switch name {
	case ocrbox.FieldPageNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPageNumber(v)
		return nil
	case ocrbox.FieldLeft:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLeft(v)
		return nil
	case ocrbox.FieldTop:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTop(v)
		return nil
	case ocrbox.FieldWidth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWidth(v)
		return nil
	case ocrbox.FieldHeight:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHeight(v)
		return nil
	case ocrbox.FieldConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown OCRBox numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OCRBoxMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(ocrbox.FieldFieldName) {
		fields = append(fields, ocrbox.FieldFieldName)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OCRBoxMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OCRBoxMutation) ClearField(name string) error {
	switch name {
	case ocrbox.FieldFieldName:
		m.ClearFieldName()
		return nil
	}
	return fmt.Errorf("unknown OCRBox nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OCRBoxMutation) ResetField(name string) error {
	switch name {
	case ocrbox.FieldJobID:
		m.ResetJobID()
		return nil
	case ocrbox.FieldPageNumber:
		m.ResetPageNumber()
		return nil
	case ocrbox.FieldLeft:
		m.ResetLeft()
		return nil
	case ocrbox.FieldTop:
		m.ResetTop()
		return nil
	case ocrbox.FieldWidth:
		m.ResetWidth()
		return nil
	case ocrbox.FieldHeight:
		m.ResetHeight()
		return nil
	case ocrbox.FieldText:
		m.ResetText()
		return nil
	case ocrbox.FieldConfidence:
		m.ResetConfidence()
		return nil
	case ocrbox.FieldFieldName:
		m.ResetFieldName()
		return nil
	}
	return fmt.Errorf("unknown OCRBox field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OCRBoxMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.job != nil {
		edges = append(edges, ocrbox.EdgeJob)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OCRBoxMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case ocrbox.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OCRBoxMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OCRBoxMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OCRBoxMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjob {
		edges = append(edges, ocrbox.EdgeJob)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OCRBoxMutation) EdgeCleared(name string) bool {
	switch name {
	case ocrbox.EdgeJob:
		return m.clearedjob
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OCRBoxMutation) ClearEdge(name string) error {
	switch name {
	case ocrbox.EdgeJob:
		m.ClearJob()
		return nil
	}
	return fmt.Errorf("unknown OCRBox unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OCRBoxMutation) ResetEdge(name string) error {
	switch name {
	case ocrbox.EdgeJob:
		m.ResetJob()
		return nil
	}
	return fmt.Errorf("unknown OCRBox edge %s", name)
}
