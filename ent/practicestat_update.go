// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/conjugo/ent/practicestat"
	"github.com/abhisek/conjugo/ent/predicate"
)

// PracticeStatUpdate is the builder for updating PracticeStat entities.
type PracticeStatUpdate struct {
	config
	hooks    []Hook
	mutation *PracticeStatMutation
}

// Where appends a list predicates to the PracticeStatUpdate builder.
func (_u *PracticeStatUpdate) Where(ps ...predicate.PracticeStat) *PracticeStatUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *PracticeStatUpdate) SetUserID(v string) *PracticeStatUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PracticeStatUpdate) SetNillableUserID(v *string) *PracticeStatUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *PracticeStatUpdate) SetQuestionID(v int) *PracticeStatUpdate {
	_u.mutation.ResetQuestionID()
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *PracticeStatUpdate) SetNillableQuestionID(v *int) *PracticeStatUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// AddQuestionID adds value to the "question_id" field.
func (_u *PracticeStatUpdate) AddQuestionID(v int) *PracticeStatUpdate {
	_u.mutation.AddQuestionID(v)
	return _u
}

// SetPracticeCount sets the "practice_count" field.
func (_u *PracticeStatUpdate) SetPracticeCount(v int) *PracticeStatUpdate {
	_u.mutation.ResetPracticeCount()
	_u.mutation.SetPracticeCount(v)
	return _u
}

// SetNillablePracticeCount sets the "practice_count" field if the given value is not nil.
func (_u *PracticeStatUpdate) SetNillablePracticeCount(v *int) *PracticeStatUpdate {
	if v != nil {
		_u.SetPracticeCount(*v)
	}
	return _u
}

// AddPracticeCount adds value to the "practice_count" field.
func (_u *PracticeStatUpdate) AddPracticeCount(v int) *PracticeStatUpdate {
	_u.mutation.AddPracticeCount(v)
	return _u
}

// SetRating sets the "rating" field.
func (_u *PracticeStatUpdate) SetRating(v int) *PracticeStatUpdate {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *PracticeStatUpdate) SetNillableRating(v *int) *PracticeStatUpdate {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *PracticeStatUpdate) AddRating(v int) *PracticeStatUpdate {
	_u.mutation.AddRating(v)
	return _u
}

// SetFavorite sets the "favorite" field.
func (_u *PracticeStatUpdate) SetFavorite(v bool) *PracticeStatUpdate {
	_u.mutation.SetFavorite(v)
	return _u
}

// SetNillableFavorite sets the "favorite" field if the given value is not nil.
func (_u *PracticeStatUpdate) SetNillableFavorite(v *bool) *PracticeStatUpdate {
	if v != nil {
		_u.SetFavorite(*v)
	}
	return _u
}

// SetLastPracticed sets the "last_practiced" field.
func (_u *PracticeStatUpdate) SetLastPracticed(v time.Time) *PracticeStatUpdate {
	_u.mutation.SetLastPracticed(v)
	return _u
}

// Mutation returns the PracticeStatMutation object of the builder.
func (_u *PracticeStatUpdate) Mutation() *PracticeStatMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PracticeStatUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PracticeStatUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PracticeStatUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PracticeStatUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PracticeStatUpdate) defaults() {
	if _, ok := _u.mutation.LastPracticed(); !ok {
		v := practicestat.UpdateDefaultLastPracticed()
		_u.mutation.SetLastPracticed(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PracticeStatUpdate) check() error {
	if v, ok := _u.mutation.Rating(); ok {
		if err := practicestat.RatingValidator(v); err != nil {
			return &ValidationError{Name: "rating", err: fmt.Errorf(`ent: validator failed for field "PracticeStat.rating": %w`, err)}
		}
	}
	return nil
}

func (_u *PracticeStatUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(practicestat.Table, practicestat.Columns, sqlgraph.NewFieldSpec(practicestat.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(practicestat.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(practicestat.FieldQuestionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionID(); ok {
		_spec.AddField(practicestat.FieldQuestionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PracticeCount(); ok {
		_spec.SetField(practicestat.FieldPracticeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPracticeCount(); ok {
		_spec.AddField(practicestat.FieldPracticeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(practicestat.FieldRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(practicestat.FieldRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Favorite(); ok {
		_spec.SetField(practicestat.FieldFavorite, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastPracticed(); ok {
		_spec.SetField(practicestat.FieldLastPracticed, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{practicestat.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PracticeStatUpdateOne is the builder for updating a single PracticeStat entity.
type PracticeStatUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PracticeStatMutation
}

// SetUserID sets the "user_id" field.
func (_u *PracticeStatUpdateOne) SetUserID(v string) *PracticeStatUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PracticeStatUpdateOne) SetNillableUserID(v *string) *PracticeStatUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *PracticeStatUpdateOne) SetQuestionID(v int) *PracticeStatUpdateOne {
	_u.mutation.ResetQuestionID()
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *PracticeStatUpdateOne) SetNillableQuestionID(v *int) *PracticeStatUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// AddQuestionID adds value to the "question_id" field.
func (_u *PracticeStatUpdateOne) AddQuestionID(v int) *PracticeStatUpdateOne {
	_u.mutation.AddQuestionID(v)
	return _u
}

// SetPracticeCount sets the "practice_count" field.
func (_u *PracticeStatUpdateOne) SetPracticeCount(v int) *PracticeStatUpdateOne {
	_u.mutation.ResetPracticeCount()
	_u.mutation.SetPracticeCount(v)
	return _u
}

// SetNillablePracticeCount sets the "practice_count" field if the given value is not nil.
func (_u *PracticeStatUpdateOne) SetNillablePracticeCount(v *int) *PracticeStatUpdateOne {
	if v != nil {
		_u.SetPracticeCount(*v)
	}
	return _u
}

// AddPracticeCount adds value to the "practice_count" field.
func (_u *PracticeStatUpdateOne) AddPracticeCount(v int) *PracticeStatUpdateOne {
	_u.mutation.AddPracticeCount(v)
	return _u
}

// SetRating sets the "rating" field.
func (_u *PracticeStatUpdateOne) SetRating(v int) *PracticeStatUpdateOne {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *PracticeStatUpdateOne) SetNillableRating(v *int) *PracticeStatUpdateOne {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *PracticeStatUpdateOne) AddRating(v int) *PracticeStatUpdateOne {
	_u.mutation.AddRating(v)
	return _u
}

// SetFavorite sets the "favorite" field.
func (_u *PracticeStatUpdateOne) SetFavorite(v bool) *PracticeStatUpdateOne {
	_u.mutation.SetFavorite(v)
	return _u
}

// SetNillableFavorite sets the "favorite" field if the given value is not nil.
func (_u *PracticeStatUpdateOne) SetNillableFavorite(v *bool) *PracticeStatUpdateOne {
	if v != nil {
		_u.SetFavorite(*v)
	}
	return _u
}

// SetLastPracticed sets the "last_practiced" field.
func (_u *PracticeStatUpdateOne) SetLastPracticed(v time.Time) *PracticeStatUpdateOne {
	_u.mutation.SetLastPracticed(v)
	return _u
}

// Mutation returns the PracticeStatMutation object of the builder.
func (_u *PracticeStatUpdateOne) Mutation() *PracticeStatMutation {
	return _u.mutation
}

// Where appends a list predicates to the PracticeStatUpdate builder.
func (_u *PracticeStatUpdateOne) Where(ps ...predicate.PracticeStat) *PracticeStatUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PracticeStatUpdateOne) Select(field string, fields ...string) *PracticeStatUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PracticeStat entity.
func (_u *PracticeStatUpdateOne) Save(ctx context.Context) (*PracticeStat, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PracticeStatUpdateOne) SaveX(ctx context.Context) *PracticeStat {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PracticeStatUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PracticeStatUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PracticeStatUpdateOne) defaults() {
	if _, ok := _u.mutation.LastPracticed(); !ok {
		v := practicestat.UpdateDefaultLastPracticed()
		_u.mutation.SetLastPracticed(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PracticeStatUpdateOne) check() error {
	if v, ok := _u.mutation.Rating(); ok {
		if err := practicestat.RatingValidator(v); err != nil {
			return &ValidationError{Name: "rating", err: fmt.Errorf(`ent: validator failed for field "PracticeStat.rating": %w`, err)}
		}
	}
	return nil
}

func (_u *PracticeStatUpdateOne) sqlSave(ctx context.Context) (_node *PracticeStat, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(practicestat.Table, practicestat.Columns, sqlgraph.NewFieldSpec(practicestat.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PracticeStat.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, practicestat.FieldID)
		for _, f := range fields {
			if !practicestat.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != practicestat.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(practicestat.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(practicestat.FieldQuestionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionID(); ok {
		_spec.AddField(practicestat.FieldQuestionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PracticeCount(); ok {
		_spec.SetField(practicestat.FieldPracticeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPracticeCount(); ok {
		_spec.AddField(practicestat.FieldPracticeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(practicestat.FieldRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(practicestat.FieldRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Favorite(); ok {
		_spec.SetField(practicestat.FieldFavorite, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastPracticed(); ok {
		_spec.SetField(practicestat.FieldLastPracticed, field.TypeTime, value)
	}
	_node = &PracticeStat{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{practicestat.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
