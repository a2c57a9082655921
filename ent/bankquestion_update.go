// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/conjugo/ent/bankquestion"
	"github.com/abhisek/conjugo/ent/predicate"
)

// BankQuestionUpdate is the builder for updating BankQuestion entities.
type BankQuestionUpdate struct {
	config
	hooks    []Hook
	mutation *BankQuestionMutation
}

// Where appends a list predicates to the BankQuestionUpdate builder.
func (_u *BankQuestionUpdate) Where(ps ...predicate.BankQuestion) *BankQuestionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *BankQuestionUpdate) SetConfidence(v int) *BankQuestionUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *BankQuestionUpdate) SetNillableConfidence(v *int) *BankQuestionUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *BankQuestionUpdate) AddConfidence(v int) *BankQuestionUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// Mutation returns the BankQuestionMutation object of the builder.
func (_u *BankQuestionUpdate) Mutation() *BankQuestionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BankQuestionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BankQuestionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BankQuestionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BankQuestionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BankQuestionUpdate) check() error {
	if _u.mutation.VerbCleared() && len(_u.mutation.VerbIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BankQuestion.verb"`)
	}
	return nil
}

func (_u *BankQuestionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(bankquestion.Table, bankquestion.Columns, sqlgraph.NewFieldSpec(bankquestion.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(bankquestion.FieldConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(bankquestion.FieldConfidence, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bankquestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BankQuestionUpdateOne is the builder for updating a single BankQuestion entity.
type BankQuestionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BankQuestionMutation
}

// SetConfidence sets the "confidence" field.
func (_u *BankQuestionUpdateOne) SetConfidence(v int) *BankQuestionUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *BankQuestionUpdateOne) SetNillableConfidence(v *int) *BankQuestionUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *BankQuestionUpdateOne) AddConfidence(v int) *BankQuestionUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// Mutation returns the BankQuestionMutation object of the builder.
func (_u *BankQuestionUpdateOne) Mutation() *BankQuestionMutation {
	return _u.mutation
}

// Where appends a list predicates to the BankQuestionUpdate builder.
func (_u *BankQuestionUpdateOne) Where(ps ...predicate.BankQuestion) *BankQuestionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BankQuestionUpdateOne) Select(field string, fields ...string) *BankQuestionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BankQuestion entity.
func (_u *BankQuestionUpdateOne) Save(ctx context.Context) (*BankQuestion, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BankQuestionUpdateOne) SaveX(ctx context.Context) *BankQuestion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BankQuestionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BankQuestionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BankQuestionUpdateOne) check() error {
	if _u.mutation.VerbCleared() && len(_u.mutation.VerbIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BankQuestion.verb"`)
	}
	return nil
}

func (_u *BankQuestionUpdateOne) sqlSave(ctx context.Context) (_node *BankQuestion, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(bankquestion.Table, bankquestion.Columns, sqlgraph.NewFieldSpec(bankquestion.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BankQuestion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, bankquestion.FieldID)
		for _, f := range fields {
			if !bankquestion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != bankquestion.FieldID {
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
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(bankquestion.FieldConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(bankquestion.FieldConfidence, field.TypeInt, value)
	}
	_node = &BankQuestion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bankquestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
