// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/conjugo/ent/conjugation"
	"github.com/abhisek/conjugo/ent/predicate"
	"github.com/abhisek/conjugo/ent/verb"
)

// ConjugationUpdate is the builder for updating Conjugation entities.
type ConjugationUpdate struct {
	config
	hooks    []Hook
	mutation *ConjugationMutation
}

// Where appends a list predicates to the ConjugationUpdate builder.
func (_u *ConjugationUpdate) Where(ps ...predicate.Conjugation) *ConjugationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetVerbID sets the "verb_id" field.
func (_u *ConjugationUpdate) SetVerbID(v int) *ConjugationUpdate {
	_u.mutation.SetVerbID(v)
	return _u
}

// SetNillableVerbID sets the "verb_id" field if the given value is not nil.
func (_u *ConjugationUpdate) SetNillableVerbID(v *int) *ConjugationUpdate {
	if v != nil {
		_u.SetVerbID(*v)
	}
	return _u
}

// SetMood sets the "mood" field.
func (_u *ConjugationUpdate) SetMood(v string) *ConjugationUpdate {
	_u.mutation.SetMood(v)
	return _u
}

// SetNillableMood sets the "mood" field if the given value is not nil.
func (_u *ConjugationUpdate) SetNillableMood(v *string) *ConjugationUpdate {
	if v != nil {
		_u.SetMood(*v)
	}
	return _u
}

// SetTense sets the "tense" field.
func (_u *ConjugationUpdate) SetTense(v string) *ConjugationUpdate {
	_u.mutation.SetTense(v)
	return _u
}

// SetNillableTense sets the "tense" field if the given value is not nil.
func (_u *ConjugationUpdate) SetNillableTense(v *string) *ConjugationUpdate {
	if v != nil {
		_u.SetTense(*v)
	}
	return _u
}

// SetPerson sets the "person" field.
func (_u *ConjugationUpdate) SetPerson(v string) *ConjugationUpdate {
	_u.mutation.SetPerson(v)
	return _u
}

// SetNillablePerson sets the "person" field if the given value is not nil.
func (_u *ConjugationUpdate) SetNillablePerson(v *string) *ConjugationUpdate {
	if v != nil {
		_u.SetPerson(*v)
	}
	return _u
}

// SetForm sets the "form" field.
func (_u *ConjugationUpdate) SetForm(v string) *ConjugationUpdate {
	_u.mutation.SetForm(v)
	return _u
}

// SetNillableForm sets the "form" field if the given value is not nil.
func (_u *ConjugationUpdate) SetNillableForm(v *string) *ConjugationUpdate {
	if v != nil {
		_u.SetForm(*v)
	}
	return _u
}

// SetVerb sets the "verb" edge to the Verb entity.
func (_u *ConjugationUpdate) SetVerb(v *Verb) *ConjugationUpdate {
	return _u.SetVerbID(v.ID)
}

// Mutation returns the ConjugationMutation object of the builder.
func (_u *ConjugationUpdate) Mutation() *ConjugationMutation {
	return _u.mutation
}

// ClearVerb clears the "verb" edge to the Verb entity.
func (_u *ConjugationUpdate) ClearVerb() *ConjugationUpdate {
	_u.mutation.ClearVerb()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConjugationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConjugationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConjugationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConjugationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConjugationUpdate) check() error {
	if _u.mutation.VerbCleared() && len(_u.mutation.VerbIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Conjugation.verb"`)
	}
	return nil
}

func (_u *ConjugationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conjugation.Table, conjugation.Columns, sqlgraph.NewFieldSpec(conjugation.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Mood(); ok {
		_spec.SetField(conjugation.FieldMood, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tense(); ok {
		_spec.SetField(conjugation.FieldTense, field.TypeString, value)
	}
	if value, ok := _u.mutation.Person(); ok {
		_spec.SetField(conjugation.FieldPerson, field.TypeString, value)
	}
	if value, ok := _u.mutation.Form(); ok {
		_spec.SetField(conjugation.FieldForm, field.TypeString, value)
	}
	if _u.mutation.VerbCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   conjugation.VerbTable,
			Columns: []string{conjugation.VerbColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(verb.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VerbIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   conjugation.VerbTable,
			Columns: []string{conjugation.VerbColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(verb.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conjugation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConjugationUpdateOne is the builder for updating a single Conjugation entity.
type ConjugationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConjugationMutation
}

// SetVerbID sets the "verb_id" field.
func (_u *ConjugationUpdateOne) SetVerbID(v int) *ConjugationUpdateOne {
	_u.mutation.SetVerbID(v)
	return _u
}

// SetNillableVerbID sets the "verb_id" field if the given value is not nil.
func (_u *ConjugationUpdateOne) SetNillableVerbID(v *int) *ConjugationUpdateOne {
	if v != nil {
		_u.SetVerbID(*v)
	}
	return _u
}

// SetMood sets the "mood" field.
func (_u *ConjugationUpdateOne) SetMood(v string) *ConjugationUpdateOne {
	_u.mutation.SetMood(v)
	return _u
}

// SetNillableMood sets the "mood" field if the given value is not nil.
func (_u *ConjugationUpdateOne) SetNillableMood(v *string) *ConjugationUpdateOne {
	if v != nil {
		_u.SetMood(*v)
	}
	return _u
}

// SetTense sets the "tense" field.
func (_u *ConjugationUpdateOne) SetTense(v string) *ConjugationUpdateOne {
	_u.mutation.SetTense(v)
	return _u
}

// SetNillableTense sets the "tense" field if the given value is not nil.
func (_u *ConjugationUpdateOne) SetNillableTense(v *string) *ConjugationUpdateOne {
	if v != nil {
		_u.SetTense(*v)
	}
	return _u
}

// SetPerson sets the "person" field.
func (_u *ConjugationUpdateOne) SetPerson(v string) *ConjugationUpdateOne {
	_u.mutation.SetPerson(v)
	return _u
}

// SetNillablePerson sets the "person" field if the given value is not nil.
func (_u *ConjugationUpdateOne) SetNillablePerson(v *string) *ConjugationUpdateOne {
	if v != nil {
		_u.SetPerson(*v)
	}
	return _u
}

// SetForm sets the "form" field.
func (_u *ConjugationUpdateOne) SetForm(v string) *ConjugationUpdateOne {
	_u.mutation.SetForm(v)
	return _u
}

// SetNillableForm sets the "form" field if the given value is not nil.
func (_u *ConjugationUpdateOne) SetNillableForm(v *string) *ConjugationUpdateOne {
	if v != nil {
		_u.SetForm(*v)
	}
	return _u
}

// SetVerb sets the "verb" edge to the Verb entity.
func (_u *ConjugationUpdateOne) SetVerb(v *Verb) *ConjugationUpdateOne {
	return _u.SetVerbID(v.ID)
}

// Mutation returns the ConjugationMutation object of the builder.
func (_u *ConjugationUpdateOne) Mutation() *ConjugationMutation {
	return _u.mutation
}

// ClearVerb clears the "verb" edge to the Verb entity.
func (_u *ConjugationUpdateOne) ClearVerb() *ConjugationUpdateOne {
	_u.mutation.ClearVerb()
	return _u
}

// Where appends a list predicates to the ConjugationUpdate builder.
func (_u *ConjugationUpdateOne) Where(ps ...predicate.Conjugation) *ConjugationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConjugationUpdateOne) Select(field string, fields ...string) *ConjugationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Conjugation entity.
func (_u *ConjugationUpdateOne) Save(ctx context.Context) (*Conjugation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConjugationUpdateOne) SaveX(ctx context.Context) *Conjugation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConjugationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConjugationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConjugationUpdateOne) check() error {
	if _u.mutation.VerbCleared() && len(_u.mutation.VerbIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Conjugation.verb"`)
	}
	return nil
}

func (_u *ConjugationUpdateOne) sqlSave(ctx context.Context) (_node *Conjugation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conjugation.Table, conjugation.Columns, sqlgraph.NewFieldSpec(conjugation.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Conjugation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, conjugation.FieldID)
		for _, f := range fields {
			if !conjugation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != conjugation.FieldID {
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
	if value, ok := _u.mutation.Mood(); ok {
		_spec.SetField(conjugation.FieldMood, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tense(); ok {
		_spec.SetField(conjugation.FieldTense, field.TypeString, value)
	}
	if value, ok := _u.mutation.Person(); ok {
		_spec.SetField(conjugation.FieldPerson, field.TypeString, value)
	}
	if value, ok := _u.mutation.Form(); ok {
		_spec.SetField(conjugation.FieldForm, field.TypeString, value)
	}
	if _u.mutation.VerbCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   conjugation.VerbTable,
			Columns: []string{conjugation.VerbColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(verb.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VerbIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   conjugation.VerbTable,
			Columns: []string{conjugation.VerbColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(verb.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Conjugation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conjugation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
