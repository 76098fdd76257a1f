// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/danielokoye/invoicescan/gen/ent/job"
	"github.com/danielokoye/invoicescan/gen/ent/ocrbox"
	"github.com/google/uuid"
)

// OCRBoxCreate is the builder for creating a OCRBox entity.
type OCRBoxCreate struct {
	config
	mutation *OCRBoxMutation
	hooks    []Hook
}

// SetJobID sets the "job_id" field.
func (_c *OCRBoxCreate) SetJobID(v uuid.UUID) *OCRBoxCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetPageNumber sets the "page_number" field.
func (_c *OCRBoxCreate) SetPageNumber(v int) *OCRBoxCreate {
	_c.mutation.SetPageNumber(v)
	return _c
}

// SetLeft sets the "left" field.
func (_c *OCRBoxCreate) SetLeft(v int) *OCRBoxCreate {
	_c.mutation.SetLeft(v)
	return _c
}

// SetTop sets the "top" field.
func (_c *OCRBoxCreate) SetTop(v int) *OCRBoxCreate {
	_c.mutation.SetTop(v)
	return _c
}

// SetWidth sets the "width" field.
func (_c *OCRBoxCreate) SetWidth(v int) *OCRBoxCreate {
	_c.mutation.SetWidth(v)
	return _c
}

// SetHeight sets the "height" field.
func (_c *OCRBoxCreate) SetHeight(v int) *OCRBoxCreate {
	_c.mutation.SetHeight(v)
	return _c
}

// SetText sets the "text" field.
func (_c *OCRBoxCreate) SetText(v string) *OCRBoxCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *OCRBoxCreate) SetConfidence(v float32) *OCRBoxCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetFieldName sets the "field_name" field.
func (_c *OCRBoxCreate) SetFieldName(v string) *OCRBoxCreate {
	_c.mutation.SetFieldName(v)
	return _c
}

// SetNillableFieldName sets the "field_name" field if the given value is not nil.
func (_c *OCRBoxCreate) SetNillableFieldName(v *string) *OCRBoxCreate {
	if v != nil {
		_c.SetFieldName(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *OCRBoxCreate) SetID(v uuid.UUID) *OCRBoxCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *OCRBoxCreate) SetNillableID(v *uuid.UUID) *OCRBoxCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetJob sets the "job" edge to the Job entity.
func (_c *OCRBoxCreate) SetJob(v *Job) *OCRBoxCreate {
	return _c.SetJobID(v.ID)
}

// Mutation returns the OCRBoxMutation object of the builder.
func (_c *OCRBoxCreate) Mutation() *OCRBoxMutation {
	return _c.mutation
}

// Save creates the OCRBox in the database.
func (_c *OCRBoxCreate) Save(ctx context.Context) (*OCRBox, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OCRBoxCreate) SaveX(ctx context.Context) *OCRBox {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OCRBoxCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OCRBoxCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OCRBoxCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := ocrbox.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OCRBoxCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "OCRBox.job_id"`)}
	}
	if _, ok := _c.mutation.PageNumber(); !ok {
		return &ValidationError{Name: "page_number", err: errors.New(`ent: missing required field "OCRBox.page_number"`)}
	}
	if v, ok := _c.mutation.PageNumber(); ok {
		if err := ocrbox.PageNumberValidator(v); err != nil {
			return &ValidationError{Name: "page_number", err: fmt.Errorf(`ent: validator failed for field "OCRBox.page_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Left(); !ok {
		return &ValidationError{Name: "left", err: errors.New(`ent: missing required field "OCRBox.left"`)}
	}
	if v, ok := _c.mutation.Left(); ok {
		if err := ocrbox.LeftValidator(v); err != nil {
			return &ValidationError{Name: "left", err: fmt.Errorf(`ent: validator failed for field "OCRBox.left": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Top(); !ok {
		return &ValidationError{Name: "top", err: errors.New(`ent: missing required field "OCRBox.top"`)}
	}
	if v, ok := _c.mutation.Top(); ok {
		if err := ocrbox.TopValidator(v); err != nil {
			return &ValidationError{Name: "top", err: fmt.Errorf(`ent: validator failed for field "OCRBox.top": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Width(); !ok {
		return &ValidationError{Name: "width", err: errors.New(`ent: missing required field "OCRBox.width"`)}
	}
	if v, ok := _c.mutation.Width(); ok {
		if err := ocrbox.WidthValidator(v); err != nil {
			return &ValidationError{Name: "width", err: fmt.Errorf(`ent: validator failed for field "OCRBox.width": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Height(); !ok {
		return &ValidationError{Name: "height", err: errors.New(`ent: missing required field "OCRBox.height"`)}
	}
	if v, ok := _c.mutation.Height(); ok {
		if err := ocrbox.HeightValidator(v); err != nil {
			return &ValidationError{Name: "height", err: fmt.Errorf(`ent: validator failed for field "OCRBox.height": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "OCRBox.text"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "OCRBox.confidence"`)}
	}
	if v, ok := _c.mutation.Confidence(); ok {
		if err := ocrbox.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "OCRBox.confidence": %w`, err)}
		}
	}
	if v, ok := _c.mutation.FieldName(); ok {
		if err := ocrbox.FieldNameValidator(v); err != nil {
			return &ValidationError{Name: "field_name", err: fmt.Errorf(`ent: validator failed for field "OCRBox.field_name": %w`, err)}
		}
	}
	if len(_c.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "OCRBox.job"`)}
	}
	return nil
}

func (_c *OCRBoxCreate) sqlSave(ctx context.Context) (*OCRBox, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *OCRBoxCreate) createSpec() (*OCRBox, *sqlgraph.CreateSpec) {
	var (
		_node = &OCRBox{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(ocrbox.Table, sqlgraph.NewFieldSpec(ocrbox.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.PageNumber(); ok {
		_spec.SetField(ocrbox.FieldPageNumber, field.TypeInt, value)
		_node.PageNumber = value
	}
	if value, ok := _c.mutation.Left(); ok {
		_spec.SetField(ocrbox.FieldLeft, field.TypeInt, value)
		_node.Left = value
	}
	if value, ok := _c.mutation.Top(); ok {
		_spec.SetField(ocrbox.FieldTop, field.TypeInt, value)
		_node.Top = value
	}
	if value, ok := _c.mutation.Width(); ok {
		_spec.SetField(ocrbox.FieldWidth, field.TypeInt, value)
		_node.Width = value
	}
	if value, ok := _c.mutation.Height(); ok {
		_spec.SetField(ocrbox.FieldHeight, field.TypeInt, value)
		_node.Height = value
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(ocrbox.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(ocrbox.FieldConfidence, field.TypeFloat32, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.FieldName(); ok {
		_spec.SetField(ocrbox.FieldFieldName, field.TypeString, value)
		_node.FieldName = &value
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
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
		_node.JobID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OCRBoxCreateBulk is the builder for creating many OCRBox entities in bulk.
type OCRBoxCreateBulk struct {
	config
	err      error
	builders []*OCRBoxCreate
}

// Save creates the OCRBox entities in the database.
func (_c *OCRBoxCreateBulk) Save(ctx context.Context) ([]*OCRBox, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*OCRBox, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OCRBoxMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *OCRBoxCreateBulk) SaveX(ctx context.Context) []*OCRBox {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OCRBoxCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OCRBoxCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
