// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/danielokoye/invoicescan/gen/ent/job"
	"github.com/danielokoye/invoicescan/gen/ent/ocrbox"
	"github.com/danielokoye/invoicescan/gen/ent/predicate"
	"github.com/google/uuid"
)

// OCRBoxUpdate is the builder for updating OCRBox entities.
type OCRBoxUpdate struct {
	config
	hooks    []Hook
	mutation *OCRBoxMutation
}

// Where appends a list predicates to the OCRBoxUpdate builder.
func (_u *OCRBoxUpdate) Where(ps ...predicate.OCRBox) *OCRBoxUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *OCRBoxUpdate) SetJobID(v uuid.UUID) *OCRBoxUpdate {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *OCRBoxUpdate) SetNillableJobID(v *uuid.UUID) *OCRBoxUpdate {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetPageNumber sets the "page_number" field.
func (_u *OCRBoxUpdate) SetPageNumber(v int) *OCRBoxUpdate {
	_u.mutation.ResetPageNumber()
	_u.mutation.SetPageNumber(v)
	return _u
}

// SetNillablePageNumber sets the "page_number" field if the given value is not nil.
func (_u *OCRBoxUpdate) SetNillablePageNumber(v *int) *OCRBoxUpdate {
	if v != nil {
		_u.SetPageNumber(*v)
	}
	return _u
}

// AddPageNumber adds value to the "page_number" field.
func (_u *OCRBoxUpdate) AddPageNumber(v int) *OCRBoxUpdate {
	_u.mutation.AddPageNumber(v)
	return _u
}

// SetLeft sets the "left" field.
func (_u *OCRBoxUpdate) SetLeft(v int) *OCRBoxUpdate {
	_u.mutation.ResetLeft()
	_u.mutation.SetLeft(v)
	return _u
}

// SetNillableLeft sets the "left" field if the given value is not nil.
func (_u *OCRBoxUpdate) SetNillableLeft(v *int) *OCRBoxUpdate {
	if v != nil {
		_u.SetLeft(*v)
	}
	return _u
}

// AddLeft adds value to the "left" field.
func (_u *OCRBoxUpdate) AddLeft(v int) *OCRBoxUpdate {
	_u.mutation.AddLeft(v)
	return _u
}

// SetTop sets the "top" field.
func (_u *OCRBoxUpdate) SetTop(v int) *OCRBoxUpdate {
	_u.mutation.ResetTop()
	_u.mutation.SetTop(v)
	return _u
}

// SetNillableTop sets the "top" field if the given value is not nil.
func (_u *OCRBoxUpdate) SetNillableTop(v *int) *OCRBoxUpdate {
	if v != nil {
		_u.SetTop(*v)
	}
	return _u
}

// AddTop adds value to the "top" field.
func (_u *OCRBoxUpdate) AddTop(v int) *OCRBoxUpdate {
	_u.mutation.AddTop(v)
	return _u
}

// SetWidth sets the "width" field.
func (_u *OCRBoxUpdate) SetWidth(v int) *OCRBoxUpdate {
	_u.mutation.ResetWidth()
	_u.mutation.SetWidth(v)
	return _u
}

// SetNillableWidth sets the "width" field if the given value is not nil.
func (_u *OCRBoxUpdate) SetNillableWidth(v *int) *OCRBoxUpdate {
	if v != nil {
		_u.SetWidth(*v)
	}
	return _u
}

// AddWidth adds value to the "width" field.
func (_u *OCRBoxUpdate) AddWidth(v int) *OCRBoxUpdate {
	_u.mutation.AddWidth(v)
	return _u
}

// SetHeight sets the "height" field.
func (_u *OCRBoxUpdate) SetHeight(v int) *OCRBoxUpdate {
	_u.mutation.ResetHeight()
	_u.mutation.SetHeight(v)
	return _u
}

// SetNillableHeight sets the "height" field if the given value is not nil.
func (_u *OCRBoxUpdate) SetNillableHeight(v *int) *OCRBoxUpdate {
	if v != nil {
		_u.SetHeight(*v)
	}
	return _u
}

// AddHeight adds value to the "height" field.
func (_u *OCRBoxUpdate) AddHeight(v int) *OCRBoxUpdate {
	_u.mutation.AddHeight(v)
	return _u
}

// SetText sets the "text" field.
func (_u *OCRBoxUpdate) SetText(v string) *OCRBoxUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *OCRBoxUpdate) SetNillableText(v *string) *OCRBoxUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *OCRBoxUpdate) SetConfidence(v float32) *OCRBoxUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *OCRBoxUpdate) SetNillableConfidence(v *float32) *OCRBoxUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *OCRBoxUpdate) AddConfidence(v float32) *OCRBoxUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetFieldName sets the "field_name" field.
func (_u *OCRBoxUpdate) SetFieldName(v string) *OCRBoxUpdate {
	_u.mutation.SetFieldName(v)
	return _u
}

// SetNillableFieldName sets the "field_name" field if the given value is not nil.
func (_u *OCRBoxUpdate) SetNillableFieldName(v *string) *OCRBoxUpdate {
	if v != nil {
		_u.SetFieldName(*v)
	}
	return _u
}

// ClearFieldName clears the value of the "field_name" field.
func (_u *OCRBoxUpdate) ClearFieldName() *OCRBoxUpdate {
	_u.mutation.ClearFieldName()
	return _u
}

// SetJob sets the "job" edge to the Job entity.
func (_u *OCRBoxUpdate) SetJob(v *Job) *OCRBoxUpdate {
	return _u.SetJobID(v.ID)
}

// Mutation returns the OCRBoxMutation object of the builder.
func (_u *OCRBoxUpdate) Mutation() *OCRBoxMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the Job entity.
func (_u *OCRBoxUpdate) ClearJob() *OCRBoxUpdate {
	_u.mutation.ClearJob()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OCRBoxUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OCRBoxUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OCRBoxUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OCRBoxUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OCRBoxUpdate) check() error {
	if v, ok := _u.mutation.PageNumber(); ok {
		if err := ocrbox.PageNumberValidator(v); err != nil {
			return &ValidationError{Name: "page_number", err: fmt.Errorf(`ent: validator failed for field "OCRBox.page_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Left(); ok {
		if err := ocrbox.LeftValidator(v); err != nil {
			return &ValidationError{Name: "left", err: fmt.Errorf(`ent: validator failed for field "OCRBox.left": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Top(); ok {
		if err := ocrbox.TopValidator(v); err != nil {
			return &ValidationError{Name: "top", err: fmt.Errorf(`ent: validator failed for field "OCRBox.top": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Width(); ok {
		if err := ocrbox.WidthValidator(v); err != nil {
			return &ValidationError{Name: "width", err: fmt.Errorf(`ent: validator failed for field "OCRBox.width": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Height(); ok {
		if err := ocrbox.HeightValidator(v); err != nil {
			return &ValidationError{Name: "height", err: fmt.Errorf(`ent: validator failed for field "OCRBox.height": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := ocrbox.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "OCRBox.confidence": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FieldName(); ok {
		if err := ocrbox.FieldNameValidator(v); err != nil {
			return &ValidationError{Name: "field_name", err: fmt.Errorf(`ent: validator failed for field "OCRBox.field_name": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "OCRBox.job"`)
	}
	return nil
}

func (_u *OCRBoxUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ocrbox.Table, ocrbox.Columns, sqlgraph.NewFieldSpec(ocrbox.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PageNumber(); ok {
		_spec.SetField(ocrbox.FieldPageNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageNumber(); ok {
		_spec.AddField(ocrbox.FieldPageNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Left(); ok {
		_spec.SetField(ocrbox.FieldLeft, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLeft(); ok {
		_spec.AddField(ocrbox.FieldLeft, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Top(); ok {
		_spec.SetField(ocrbox.FieldTop, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTop(); ok {
		_spec.AddField(ocrbox.FieldTop, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Width(); ok {
		_spec.SetField(ocrbox.FieldWidth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWidth(); ok {
		_spec.AddField(ocrbox.FieldWidth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Height(); ok {
		_spec.SetField(ocrbox.FieldHeight, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHeight(); ok {
		_spec.AddField(ocrbox.FieldHeight, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(ocrbox.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(ocrbox.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(ocrbox.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.FieldName(); ok {
		_spec.SetField(ocrbox.FieldFieldName, field.TypeString, value)
	}
	if _u.mutation.FieldNameCleared() {
		_spec.ClearField(ocrbox.FieldFieldName, field.TypeString)
	}
	if _u.mutation.JobCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   ocrbox.JobTable,
			Columns: []string{ocrbox.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   ocrbox.JobTable,
			Columns: []string{ocrbox.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ocrbox.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OCRBoxUpdateOne is the builder for updating a single OCRBox entity.
type OCRBoxUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OCRBoxMutation
}

// SetJobID sets the "job_id" field.
func (_u *OCRBoxUpdateOne) SetJobID(v uuid.UUID) *OCRBoxUpdateOne {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *OCRBoxUpdateOne) SetNillableJobID(v *uuid.UUID) *OCRBoxUpdateOne {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetPageNumber sets the "page_number" field.
func (_u *OCRBoxUpdateOne) SetPageNumber(v int) *OCRBoxUpdateOne {
	_u.mutation.ResetPageNumber()
	_u.mutation.SetPageNumber(v)
	return _u
}

// SetNillablePageNumber sets the "page_number" field if the given value is not nil.
func (_u *OCRBoxUpdateOne) SetNillablePageNumber(v *int) *OCRBoxUpdateOne {
	if v != nil {
		_u.SetPageNumber(*v)
	}
	return _u
}

// AddPageNumber adds value to the "page_number" field.
func (_u *OCRBoxUpdateOne) AddPageNumber(v int) *OCRBoxUpdateOne {
	_u.mutation.AddPageNumber(v)
	return _u
}

// SetLeft sets the "left" field.
func (_u *OCRBoxUpdateOne) SetLeft(v int) *OCRBoxUpdateOne {
	_u.mutation.ResetLeft()
	_u.mutation.SetLeft(v)
	return _u
}

// SetNillableLeft sets the "left" field if the given value is not nil.
func (_u *OCRBoxUpdateOne) SetNillableLeft(v *int) *OCRBoxUpdateOne {
	if v != nil {
		_u.SetLeft(*v)
	}
	return _u
}

// AddLeft adds value to the "left" field.
func (_u *OCRBoxUpdateOne) AddLeft(v int) *OCRBoxUpdateOne {
	_u.mutation.AddLeft(v)
	return _u
}

// SetTop sets the "top" field.
func (_u *OCRBoxUpdateOne) SetTop(v int) *OCRBoxUpdateOne {
	_u.mutation.ResetTop()
	_u.mutation.SetTop(v)
	return _u
}

// SetNillableTop sets the "top" field if the given value is not nil.
func (_u *OCRBoxUpdateOne) SetNillableTop(v *int) *OCRBoxUpdateOne {
	if v != nil {
		_u.SetTop(*v)
	}
	return _u
}

// AddTop adds value to the "top" field.
func (_u *OCRBoxUpdateOne) AddTop(v int) *OCRBoxUpdateOne {
	_u.mutation.AddTop(v)
	return _u
}

// SetWidth sets the "width" field.
func (_u *OCRBoxUpdateOne) SetWidth(v int) *OCRBoxUpdateOne {
	_u.mutation.ResetWidth()
	_u.mutation.SetWidth(v)
	return _u
}

// SetNillableWidth sets the "width" field if the given value is not nil.
func (_u *OCRBoxUpdateOne) SetNillableWidth(v *int) *OCRBoxUpdateOne {
	if v != nil {
		_u.SetWidth(*v)
	}
	return _u
}

// AddWidth adds value to the "width" field.
func (_u *OCRBoxUpdateOne) AddWidth(v int) *OCRBoxUpdateOne {
	_u.mutation.AddWidth(v)
	return _u
}

// SetHeight sets the "height" field.
func (_u *OCRBoxUpdateOne) SetHeight(v int) *OCRBoxUpdateOne {
	_u.mutation.ResetHeight()
	_u.mutation.SetHeight(v)
	return _u
}

// SetNillableHeight sets the "height" field if the given value is not nil.
func (_u *OCRBoxUpdateOne) SetNillableHeight(v *int) *OCRBoxUpdateOne {
	if v != nil {
		_u.SetHeight(*v)
	}
	return _u
}

// AddHeight adds value to the "height" field.
func (_u *OCRBoxUpdateOne) AddHeight(v int) *OCRBoxUpdateOne {
	_u.mutation.AddHeight(v)
	return _u
}

// SetText sets the "text" field.
func (_u *OCRBoxUpdateOne) SetText(v string) *OCRBoxUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *OCRBoxUpdateOne) SetNillableText(v *string) *OCRBoxUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *OCRBoxUpdateOne) SetConfidence(v float32) *OCRBoxUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *OCRBoxUpdateOne) SetNillableConfidence(v *float32) *OCRBoxUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *OCRBoxUpdateOne) AddConfidence(v float32) *OCRBoxUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetFieldName sets the "field_name" field.
func (_u *OCRBoxUpdateOne) SetFieldName(v string) *OCRBoxUpdateOne {
	_u.mutation.SetFieldName(v)
	return _u
}

// SetNillableFieldName sets the "field_name" field if the given value is not nil.
func (_u *OCRBoxUpdateOne) SetNillableFieldName(v *string) *OCRBoxUpdateOne {
	if v != nil {
		_u.SetFieldName(*v)
	}
	return _u
}

// ClearFieldName clears the value of the "field_name" field.
func (_u *OCRBoxUpdateOne) ClearFieldName() *OCRBoxUpdateOne {
	_u.mutation.ClearFieldName()
	return _u
}

// SetJob sets the "job" edge to the Job entity.
func (_u *OCRBoxUpdateOne) SetJob(v *Job) *OCRBoxUpdateOne {
	return _u.SetJobID(v.ID)
}

// Mutation returns the OCRBoxMutation object of the builder.
func (_u *OCRBoxUpdateOne) Mutation() *OCRBoxMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the Job entity.
func (_u *OCRBoxUpdateOne) ClearJob() *OCRBoxUpdateOne {
	_u.mutation.ClearJob()
	return _u
}

// Where appends a list predicates to the OCRBoxUpdate builder.
func (_u *OCRBoxUpdateOne) Where(ps ...predicate.OCRBox) *OCRBoxUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OCRBoxUpdateOne) Select(field string, fields ...string) *OCRBoxUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated OCRBox entity.
func (_u *OCRBoxUpdateOne) Save(ctx context.Context) (*OCRBox, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OCRBoxUpdateOne) SaveX(ctx context.Context) *OCRBox {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OCRBoxUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OCRBoxUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OCRBoxUpdateOne) check() error {
	if v, ok := _u.mutation.PageNumber(); ok {
		if err := ocrbox.PageNumberValidator(v); err != nil {
			return &ValidationError{Name: "page_number", err: fmt.Errorf(`ent: validator failed for field "OCRBox.page_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Left(); ok {
		if err := ocrbox.LeftValidator(v); err != nil {
			return &ValidationError{Name: "left", err: fmt.Errorf(`ent: validator failed for field "OCRBox.left": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Top(); ok {
		if err := ocrbox.TopValidator(v); err != nil {
			return &ValidationError{Name: "top", err: fmt.Errorf(`ent: validator failed for field "OCRBox.top": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Width(); ok {
		if err := ocrbox.WidthValidator(v); err != nil {
			return &ValidationError{Name: "width", err: fmt.Errorf(`ent: validator failed for field "OCRBox.width": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Height(); ok {
		if err := ocrbox.HeightValidator(v); err != nil {
			return &ValidationError{Name: "height", err: fmt.Errorf(`ent: validator failed for field "OCRBox.height": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := ocrbox.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "OCRBox.confidence": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FieldName(); ok {
		if err := ocrbox.FieldNameValidator(v); err != nil {
			return &ValidationError{Name: "field_name", err: fmt.Errorf(`ent: validator failed for field "OCRBox.field_name": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "OCRBox.job"`)
	}
	return nil
}

func (_u *OCRBoxUpdateOne) sqlSave(ctx context.Context) (_node *OCRBox, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ocrbox.Table, ocrbox.Columns, sqlgraph.NewFieldSpec(ocrbox.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "OCRBox.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ocrbox.FieldID)
		for _, f := range fields {
			if !ocrbox.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ocrbox.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PageNumber(); ok {
		_spec.SetField(ocrbox.FieldPageNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageNumber(); ok {
		_spec.AddField(ocrbox.FieldPageNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Left(); ok {
		_spec.SetField(ocrbox.FieldLeft, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLeft(); ok {
		_spec.AddField(ocrbox.FieldLeft, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Top(); ok {
		_spec.SetField(ocrbox.FieldTop, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTop(); ok {
		_spec.AddField(ocrbox.FieldTop, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Width(); ok {
		_spec.SetField(ocrbox.FieldWidth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWidth(); ok {
		_spec.AddField(ocrbox.FieldWidth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Height(); ok {
		_spec.SetField(ocrbox.FieldHeight, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHeight(); ok {
		_spec.AddField(ocrbox.FieldHeight, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(ocrbox.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(ocrbox.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(ocrbox.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.FieldName(); ok {
		_spec.SetField(ocrbox.FieldFieldName, field.TypeString, value)
	}
	if _u.mutation.FieldNameCleared() {
		_spec.ClearField(ocrbox.FieldFieldName, field.TypeString)
	}
	if _u.mutation.JobCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   ocrbox.JobTable,
			Columns: []string{ocrbox.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   ocrbox.JobTable,
			Columns: []string{ocrbox.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &OCRBox{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ocrbox.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
