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
	"github.com/abhisek/conjugo/ent/verb"
)

// ConjugationCreate is the builder for creating a Conjugation entity.
type ConjugationCreate struct {
	config
	mutation *ConjugationMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetVerbID sets the "verb_id" field.
func (_c *ConjugationCreate) SetVerbID(v int) *ConjugationCreate {
	_c.mutation.SetVerbID(v)
	return _c
}

// SetMood sets the "mood" field.
func (_c *ConjugationCreate) SetMood(v string) *ConjugationCreate {
	_c.mutation.SetMood(v)
	return _c
}

// SetTense sets the "tense" field.
func (_c *ConjugationCreate) SetTense(v string) *ConjugationCreate {
	_c.mutation.SetTense(v)
	return _c
}

// SetPerson sets the "person" field.
func (_c *ConjugationCreate) SetPerson(v string) *ConjugationCreate {
	_c.mutation.SetPerson(v)
	return _c
}

// SetForm sets the "form" field.
func (_c *ConjugationCreate) SetForm(v string) *ConjugationCreate {
	_c.mutation.SetForm(v)
	return _c
}

// SetVerb sets the "verb" edge to the Verb entity.
func (_c *ConjugationCreate) SetVerb(v *Verb) *ConjugationCreate {
	return _c.SetVerbID(v.ID)
}

// Mutation returns the ConjugationMutation object of the builder.
func (_c *ConjugationCreate) Mutation() *ConjugationMutation {
	return _c.mutation
}

// Save creates the Conjugation in the database.
func (_c *ConjugationCreate) Save(ctx context.Context) (*Conjugation, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConjugationCreate) SaveX(ctx context.Context) *Conjugation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConjugationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConjugationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConjugationCreate) check() error {
	if _, ok := _c.mutation.VerbID(); !ok {
		return &ValidationError{Name: "verb_id", err: errors.New(`ent: missing required field "Conjugation.verb_id"`)}
	}
	if _, ok := _c.mutation.Mood(); !ok {
		return &ValidationError{Name: "mood", err: errors.New(`ent: missing required field "Conjugation.mood"`)}
	}
	if _, ok := _c.mutation.Tense(); !ok {
		return &ValidationError{Name: "tense", err: errors.New(`ent: missing required field "Conjugation.tense"`)}
	}
	if _, ok := _c.mutation.Person(); !ok {
		return &ValidationError{Name: "person", err: errors.New(`ent: missing required field "Conjugation.person"`)}
	}
	if _, ok := _c.mutation.Form(); !ok {
		return &ValidationError{Name: "form", err: errors.New(`ent: missing required field "Conjugation.form"`)}
	}
	if len(_c.mutation.VerbIDs()) == 0 {
		return &ValidationError{Name: "verb", err: errors.New(`ent: missing required edge "Conjugation.verb"`)}
	}
	return nil
}

func (_c *ConjugationCreate) sqlSave(ctx context.Context) (*Conjugation, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ConjugationCreate) createSpec() (*Conjugation, *sqlgraph.CreateSpec) {
	var (
		_node = &Conjugation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(conjugation.Table, sqlgraph.NewFieldSpec(conjugation.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Mood(); ok {
		_spec.SetField(conjugation.FieldMood, field.TypeString, value)
		_node.Mood = value
	}
	if value, ok := _c.mutation.Tense(); ok {
		_spec.SetField(conjugation.FieldTense, field.TypeString, value)
		_node.Tense = value
	}
	if value, ok := _c.mutation.Person(); ok {
		_spec.SetField(conjugation.FieldPerson, field.TypeString, value)
		_node.Person = value
	}
	if value, ok := _c.mutation.Form(); ok {
		_spec.SetField(conjugation.FieldForm, field.TypeString, value)
		_node.Form = value
	}
	if nodes := _c.mutation.VerbIDs(); len(nodes) > 0 {
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
		_node.VerbID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Conjugation.Create().
//		SetVerbID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ConjugationUpsert) {
//			SetVerbID(v+v).
//		}).
//		Exec(ctx)
func (_c *ConjugationCreate) OnConflict(opts ...sql.ConflictOption) *ConjugationUpsertOne {
	_c.conflict = opts
	return &ConjugationUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Conjugation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ConjugationCreate) OnConflictColumns(columns ...string) *ConjugationUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ConjugationUpsertOne{
		create: _c,
	}
}

type (
	// ConjugationUpsertOne is the builder for "upsert"-ing
	//  one Conjugation node.
	ConjugationUpsertOne struct {
		create *ConjugationCreate
	}

	// ConjugationUpsert is the "OnConflict" setter.
	ConjugationUpsert struct {
		*sql.UpdateSet
	}
)

// SetVerbID sets the "verb_id" field.
func (u *ConjugationUpsert) SetVerbID(v int) *ConjugationUpsert {
	u.Set(conjugation.FieldVerbID, v)
	return u
}

// UpdateVerbID sets the "verb_id" field to the value that was provided on create.
func (u *ConjugationUpsert) UpdateVerbID() *ConjugationUpsert {
	u.SetExcluded(conjugation.FieldVerbID)
	return u
}

// SetMood sets the "mood" field.
func (u *ConjugationUpsert) SetMood(v string) *ConjugationUpsert {
	u.Set(conjugation.FieldMood, v)
	return u
}

// UpdateMood sets the "mood" field to the value that was provided on create.
func (u *ConjugationUpsert) UpdateMood() *ConjugationUpsert {
	u.SetExcluded(conjugation.FieldMood)
	return u
}

// SetTense sets the "tense" field.
func (u *ConjugationUpsert) SetTense(v string) *ConjugationUpsert {
	u.Set(conjugation.FieldTense, v)
	return u
}

// UpdateTense sets the "tense" field to the value that was provided on create.
func (u *ConjugationUpsert) UpdateTense() *ConjugationUpsert {
	u.SetExcluded(conjugation.FieldTense)
	return u
}

// SetPerson sets the "person" field.
func (u *ConjugationUpsert) SetPerson(v string) *ConjugationUpsert {
	u.Set(conjugation.FieldPerson, v)
	return u
}

// UpdatePerson sets the "person" field to the value that was provided on create.
func (u *ConjugationUpsert) UpdatePerson() *ConjugationUpsert {
	u.SetExcluded(conjugation.FieldPerson)
	return u
}

// SetForm sets the "form" field.
func (u *ConjugationUpsert) SetForm(v string) *ConjugationUpsert {
	u.Set(conjugation.FieldForm, v)
	return u
}

// UpdateForm sets the "form" field to the value that was provided on create.
func (u *ConjugationUpsert) UpdateForm() *ConjugationUpsert {
	u.SetExcluded(conjugation.FieldForm)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Conjugation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ConjugationUpsertOne) UpdateNewValues() *ConjugationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Conjugation.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ConjugationUpsertOne) Ignore() *ConjugationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ConjugationUpsertOne) DoNothing() *ConjugationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ConjugationCreate.OnConflict
// documentation for more info.
func (u *ConjugationUpsertOne) Update(set func(*ConjugationUpsert)) *ConjugationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ConjugationUpsert{UpdateSet: update})
	}))
	return u
}

// SetVerbID sets the "verb_id" field.
func (u *ConjugationUpsertOne) SetVerbID(v int) *ConjugationUpsertOne {
	return u.Update(func(s *ConjugationUpsert) {
		s.SetVerbID(v)
	})
}

// UpdateVerbID sets the "verb_id" field to the value that was provided on create.
func (u *ConjugationUpsertOne) UpdateVerbID() *ConjugationUpsertOne {
	return u.Update(func(s *ConjugationUpsert) {
		s.UpdateVerbID()
	})
}

// SetMood sets the "mood" field.
func (u *ConjugationUpsertOne) SetMood(v string) *ConjugationUpsertOne {
	return u.Update(func(s *ConjugationUpsert) {
		s.SetMood(v)
	})
}

// UpdateMood sets the "mood" field to the value that was provided on create.
func (u *ConjugationUpsertOne) UpdateMood() *ConjugationUpsertOne {
	return u.Update(func(s *ConjugationUpsert) {
		s.UpdateMood()
	})
}

// SetTense sets the "tense" field.
func (u *ConjugationUpsertOne) SetTense(v string) *ConjugationUpsertOne {
	return u.Update(func(s *ConjugationUpsert) {
		s.SetTense(v)
	})
}

// UpdateTense sets the "tense" field to the value that was provided on create.
func (u *ConjugationUpsertOne) UpdateTense() *ConjugationUpsertOne {
	return u.Update(func(s *ConjugationUpsert) {
		s.UpdateTense()
	})
}

// SetPerson sets the "person" field.
func (u *ConjugationUpsertOne) SetPerson(v string) *ConjugationUpsertOne {
	return u.Update(func(s *ConjugationUpsert) {
		s.SetPerson(v)
	})
}

// UpdatePerson sets the "person" field to the value that was provided on create.
func (u *ConjugationUpsertOne) UpdatePerson() *ConjugationUpsertOne {
	return u.Update(func(s *ConjugationUpsert) {
		s.UpdatePerson()
	})
}

// SetForm sets the "form" field.
func (u *ConjugationUpsertOne) SetForm(v string) *ConjugationUpsertOne {
	return u.Update(func(s *ConjugationUpsert) {
		s.SetForm(v)
	})
}

// UpdateForm sets the "form" field to the value that was provided on create.
func (u *ConjugationUpsertOne) UpdateForm() *ConjugationUpsertOne {
	return u.Update(func(s *ConjugationUpsert) {
		s.UpdateForm()
	})
}

// Exec executes the query.
func (u *ConjugationUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ConjugationCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ConjugationUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ConjugationUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ConjugationUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ConjugationCreateBulk is the builder for creating many Conjugation entities in bulk.
type ConjugationCreateBulk struct {
	config
	err      error
	builders []*ConjugationCreate
	conflict []sql.ConflictOption
}

// Save creates the Conjugation entities in the database.
func (_c *ConjugationCreateBulk) Save(ctx context.Context) ([]*Conjugation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Conjugation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConjugationMutation)
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
					spec.OnConflict = _c.conflict
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *ConjugationCreateBulk) SaveX(ctx context.Context) []*Conjugation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConjugationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConjugationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Conjugation.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ConjugationUpsert) {
//			SetVerbID(v+v).
//		}).
//		Exec(ctx)
func (_c *ConjugationCreateBulk) OnConflict(opts ...sql.ConflictOption) *ConjugationUpsertBulk {
	_c.conflict = opts
	return &ConjugationUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Conjugation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ConjugationCreateBulk) OnConflictColumns(columns ...string) *ConjugationUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ConjugationUpsertBulk{
		create: _c,
	}
}

// ConjugationUpsertBulk is the builder for "upsert"-ing
// a bulk of Conjugation nodes.
type ConjugationUpsertBulk struct {
	create *ConjugationCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Conjugation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ConjugationUpsertBulk) UpdateNewValues() *ConjugationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Conjugation.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ConjugationUpsertBulk) Ignore() *ConjugationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ConjugationUpsertBulk) DoNothing() *ConjugationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ConjugationCreateBulk.OnConflict
// documentation for more info.
func (u *ConjugationUpsertBulk) Update(set func(*ConjugationUpsert)) *ConjugationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ConjugationUpsert{UpdateSet: update})
	}))
	return u
}

// SetVerbID sets the "verb_id" field.
func (u *ConjugationUpsertBulk) SetVerbID(v int) *ConjugationUpsertBulk {
	return u.Update(func(s *ConjugationUpsert) {
		s.SetVerbID(v)
	})
}

// UpdateVerbID sets the "verb_id" field to the value that was provided on create.
func (u *ConjugationUpsertBulk) UpdateVerbID() *ConjugationUpsertBulk {
	return u.Update(func(s *ConjugationUpsert) {
		s.UpdateVerbID()
	})
}

// SetMood sets the "mood" field.
func (u *ConjugationUpsertBulk) SetMood(v string) *ConjugationUpsertBulk {
	return u.Update(func(s *ConjugationUpsert) {
		s.SetMood(v)
	})
}

// UpdateMood sets the "mood" field to the value that was provided on create.
func (u *ConjugationUpsertBulk) UpdateMood() *ConjugationUpsertBulk {
	return u.Update(func(s *ConjugationUpsert) {
		s.UpdateMood()
	})
}

// SetTense sets the "tense" field.
func (u *ConjugationUpsertBulk) SetTense(v string) *ConjugationUpsertBulk {
	return u.Update(func(s *ConjugationUpsert) {
		s.SetTense(v)
	})
}

// UpdateTense sets the "tense" field to the value that was provided on create.
func (u *ConjugationUpsertBulk) UpdateTense() *ConjugationUpsertBulk {
	return u.Update(func(s *ConjugationUpsert) {
		s.UpdateTense()
	})
}

// SetPerson sets the "person" field.
func (u *ConjugationUpsertBulk) SetPerson(v string) *ConjugationUpsertBulk {
	return u.Update(func(s *ConjugationUpsert) {
		s.SetPerson(v)
	})
}

// UpdatePerson sets the "person" field to the value that was provided on create.
func (u *ConjugationUpsertBulk) UpdatePerson() *ConjugationUpsertBulk {
	return u.Update(func(s *ConjugationUpsert) {
		s.UpdatePerson()
	})
}

// SetForm sets the "form" field.
func (u *ConjugationUpsertBulk) SetForm(v string) *ConjugationUpsertBulk {
	return u.Update(func(s *ConjugationUpsert) {
		s.SetForm(v)
	})
}

// UpdateForm sets the "form" field to the value that was provided on create.
func (u *ConjugationUpsertBulk) UpdateForm() *ConjugationUpsertBulk {
	return u.Update(func(s *ConjugationUpsert) {
		s.UpdateForm()
	})
}

// Exec executes the query.
func (u *ConjugationUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ConjugationCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ConjugationCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ConjugationUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
