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
	"github.com/abhisek/conjugo/ent/conjugation"
	"github.com/abhisek/conjugo/ent/verb"
)

// VerbCreate is the builder for creating a Verb entity.
type VerbCreate struct {
	config
	mutation *VerbMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetInfinitive sets the "infinitive" field.
func (_c *VerbCreate) SetInfinitive(v string) *VerbCreate {
	_c.mutation.SetInfinitive(v)
	return _c
}

// SetMeaning sets the "meaning" field.
func (_c *VerbCreate) SetMeaning(v string) *VerbCreate {
	_c.mutation.SetMeaning(v)
	return _c
}

// SetConjugationClass sets the "conjugation_class" field.
func (_c *VerbCreate) SetConjugationClass(v int) *VerbCreate {
	_c.mutation.SetConjugationClass(v)
	return _c
}

// SetIrregular sets the "irregular" field.
func (_c *VerbCreate) SetIrregular(v bool) *VerbCreate {
	_c.mutation.SetIrregular(v)
	return _c
}

// SetNillableIrregular sets the "irregular" field if the given value is not nil.
func (_c *VerbCreate) SetNillableIrregular(v *bool) *VerbCreate {
	if v != nil {
		_c.SetIrregular(*v)
	}
	return _c
}

// SetReflexive sets the "reflexive" field.
func (_c *VerbCreate) SetReflexive(v bool) *VerbCreate {
	_c.mutation.SetReflexive(v)
	return _c
}

// SetNillableReflexive sets the "reflexive" field if the given value is not nil.
func (_c *VerbCreate) SetNillableReflexive(v *bool) *VerbCreate {
	if v != nil {
		_c.SetReflexive(*v)
	}
	return _c
}

// SetTransitive sets the "transitive" field.
func (_c *VerbCreate) SetTransitive(v bool) *VerbCreate {
	_c.mutation.SetTransitive(v)
	return _c
}

// SetNillableTransitive sets the "transitive" field if the given value is not nil.
func (_c *VerbCreate) SetNillableTransitive(v *bool) *VerbCreate {
	if v != nil {
		_c.SetTransitive(*v)
	}
	return _c
}

// SetGerund sets the "gerund" field.
func (_c *VerbCreate) SetGerund(v string) *VerbCreate {
	_c.mutation.SetGerund(v)
	return _c
}

// SetNillableGerund sets the "gerund" field if the given value is not nil.
func (_c *VerbCreate) SetNillableGerund(v *string) *VerbCreate {
	if v != nil {
		_c.SetGerund(*v)
	}
	return _c
}

// SetParticiple sets the "participle" field.
func (_c *VerbCreate) SetParticiple(v string) *VerbCreate {
	_c.mutation.SetParticiple(v)
	return _c
}

// SetNillableParticiple sets the "participle" field if the given value is not nil.
func (_c *VerbCreate) SetNillableParticiple(v *string) *VerbCreate {
	if v != nil {
		_c.SetParticiple(*v)
	}
	return _c
}

// AddConjugationIDs adds the "conjugations" edge to the Conjugation entity by IDs.
func (_c *VerbCreate) AddConjugationIDs(ids ...int) *VerbCreate {
	_c.mutation.AddConjugationIDs(ids...)
	return _c
}

// AddConjugations adds the "conjugations" edges to the Conjugation entity.
func (_c *VerbCreate) AddConjugations(v ...*Conjugation) *VerbCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddConjugationIDs(ids...)
}

// AddQuestionIDs adds the "questions" edge to the BankQuestion entity by IDs.
func (_c *VerbCreate) AddQuestionIDs(ids ...int) *VerbCreate {
	_c.mutation.AddQuestionIDs(ids...)
	return _c
}

// AddQuestions adds the "questions" edges to the BankQuestion entity.
func (_c *VerbCreate) AddQuestions(v ...*BankQuestion) *VerbCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddQuestionIDs(ids...)
}

// Mutation returns the VerbMutation object of the builder.
func (_c *VerbCreate) Mutation() *VerbMutation {
	return _c.mutation
}

// Save creates the Verb in the database.
func (_c *VerbCreate) Save(ctx context.Context) (*Verb, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VerbCreate) SaveX(ctx context.Context) *Verb {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VerbCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VerbCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VerbCreate) defaults() {
	if _, ok := _c.mutation.Irregular(); !ok {
		v := verb.DefaultIrregular
		_c.mutation.SetIrregular(v)
	}
	if _, ok := _c.mutation.Reflexive(); !ok {
		v := verb.DefaultReflexive
		_c.mutation.SetReflexive(v)
	}
	if _, ok := _c.mutation.Transitive(); !ok {
		v := verb.DefaultTransitive
		_c.mutation.SetTransitive(v)
	}
	if _, ok := _c.mutation.Gerund(); !ok {
		v := verb.DefaultGerund
		_c.mutation.SetGerund(v)
	}
	if _, ok := _c.mutation.Participle(); !ok {
		v := verb.DefaultParticiple
		_c.mutation.SetParticiple(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VerbCreate) check() error {
	if _, ok := _c.mutation.Infinitive(); !ok {
		return &ValidationError{Name: "infinitive", err: errors.New(`ent: missing required field "Verb.infinitive"`)}
	}
	if _, ok := _c.mutation.Meaning(); !ok {
		return &ValidationError{Name: "meaning", err: errors.New(`ent: missing required field "Verb.meaning"`)}
	}
	if _, ok := _c.mutation.ConjugationClass(); !ok {
		return &ValidationError{Name: "conjugation_class", err: errors.New(`ent: missing required field "Verb.conjugation_class"`)}
	}
	if v, ok := _c.mutation.ConjugationClass(); ok {
		if err := verb.ConjugationClassValidator(v); err != nil {
			return &ValidationError{Name: "conjugation_class", err: fmt.Errorf(`ent: validator failed for field "Verb.conjugation_class": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Irregular(); !ok {
		return &ValidationError{Name: "irregular", err: errors.New(`ent: missing required field "Verb.irregular"`)}
	}
	if _, ok := _c.mutation.Reflexive(); !ok {
		return &ValidationError{Name: "reflexive", err: errors.New(`ent: missing required field "Verb.reflexive"`)}
	}
	if _, ok := _c.mutation.Transitive(); !ok {
		return &ValidationError{Name: "transitive", err: errors.New(`ent: missing required field "Verb.transitive"`)}
	}
	if _, ok := _c.mutation.Gerund(); !ok {
		return &ValidationError{Name: "gerund", err: errors.New(`ent: missing required field "Verb.gerund"`)}
	}
	if _, ok := _c.mutation.Participle(); !ok {
		return &ValidationError{Name: "participle", err: errors.New(`ent: missing required field "Verb.participle"`)}
	}
	return nil
}

func (_c *VerbCreate) sqlSave(ctx context.Context) (*Verb, error) {
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

func (_c *VerbCreate) createSpec() (*Verb, *sqlgraph.CreateSpec) {
	var (
		_node = &Verb{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(verb.Table, sqlgraph.NewFieldSpec(verb.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Infinitive(); ok {
		_spec.SetField(verb.FieldInfinitive, field.TypeString, value)
		_node.Infinitive = value
	}
	if value, ok := _c.mutation.Meaning(); ok {
		_spec.SetField(verb.FieldMeaning, field.TypeString, value)
		_node.Meaning = value
	}
	if value, ok := _c.mutation.ConjugationClass(); ok {
		_spec.SetField(verb.FieldConjugationClass, field.TypeInt, value)
		_node.ConjugationClass = value
	}
	if value, ok := _c.mutation.Irregular(); ok {
		_spec.SetField(verb.FieldIrregular, field.TypeBool, value)
		_node.Irregular = value
	}
	if value, ok := _c.mutation.Reflexive(); ok {
		_spec.SetField(verb.FieldReflexive, field.TypeBool, value)
		_node.Reflexive = value
	}
	if value, ok := _c.mutation.Transitive(); ok {
		_spec.SetField(verb.FieldTransitive, field.TypeBool, value)
		_node.Transitive = value
	}
	if value, ok := _c.mutation.Gerund(); ok {
		_spec.SetField(verb.FieldGerund, field.TypeString, value)
		_node.Gerund = value
	}
	if value, ok := _c.mutation.Participle(); ok {
		_spec.SetField(verb.FieldParticiple, field.TypeString, value)
		_node.Participle = value
	}
	if nodes := _c.mutation.ConjugationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   verb.ConjugationsTable,
			Columns: []string{verb.ConjugationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conjugation.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.QuestionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   verb.QuestionsTable,
			Columns: []string{verb.QuestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bankquestion.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Verb.Create().
//		SetInfinitive(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.VerbUpsert) {
//			SetInfinitive(v+v).
//		}).
//		Exec(ctx)
func (_c *VerbCreate) OnConflict(opts ...sql.ConflictOption) *VerbUpsertOne {
	_c.conflict = opts
	return &VerbUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Verb.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *VerbCreate) OnConflictColumns(columns ...string) *VerbUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &VerbUpsertOne{
		create: _c,
	}
}

type (
	// VerbUpsertOne is the builder for "upsert"-ing
	//  one Verb node.
	VerbUpsertOne struct {
		create *VerbCreate
	}

	// VerbUpsert is the "OnConflict" setter.
	VerbUpsert struct {
		*sql.UpdateSet
	}
)

// SetInfinitive sets the "infinitive" field.
func (u *VerbUpsert) SetInfinitive(v string) *VerbUpsert {
	u.Set(verb.FieldInfinitive, v)
	return u
}

// UpdateInfinitive sets the "infinitive" field to the value that was provided on create.
func (u *VerbUpsert) UpdateInfinitive() *VerbUpsert {
	u.SetExcluded(verb.FieldInfinitive)
	return u
}

// SetMeaning sets the "meaning" field.
func (u *VerbUpsert) SetMeaning(v string) *VerbUpsert {
	u.Set(verb.FieldMeaning, v)
	return u
}

// UpdateMeaning sets the "meaning" field to the value that was provided on create.
func (u *VerbUpsert) UpdateMeaning() *VerbUpsert {
	u.SetExcluded(verb.FieldMeaning)
	return u
}

// SetConjugationClass sets the "conjugation_class" field.
func (u *VerbUpsert) SetConjugationClass(v int) *VerbUpsert {
	u.Set(verb.FieldConjugationClass, v)
	return u
}

// UpdateConjugationClass sets the "conjugation_class" field to the value that was provided on create.
func (u *VerbUpsert) UpdateConjugationClass() *VerbUpsert {
	u.SetExcluded(verb.FieldConjugationClass)
	return u
}

// AddConjugationClass adds v to the "conjugation_class" field.
func (u *VerbUpsert) AddConjugationClass(v int) *VerbUpsert {
	u.Add(verb.FieldConjugationClass, v)
	return u
}

// SetIrregular sets the "irregular" field.
func (u *VerbUpsert) SetIrregular(v bool) *VerbUpsert {
	u.Set(verb.FieldIrregular, v)
	return u
}

// UpdateIrregular sets the "irregular" field to the value that was provided on create.
func (u *VerbUpsert) UpdateIrregular() *VerbUpsert {
	u.SetExcluded(verb.FieldIrregular)
	return u
}

// SetReflexive sets the "reflexive" field.
func (u *VerbUpsert) SetReflexive(v bool) *VerbUpsert {
	u.Set(verb.FieldReflexive, v)
	return u
}

// UpdateReflexive sets the "reflexive" field to the value that was provided on create.
func (u *VerbUpsert) UpdateReflexive() *VerbUpsert {
	u.SetExcluded(verb.FieldReflexive)
	return u
}

// SetTransitive sets the "transitive" field.
func (u *VerbUpsert) SetTransitive(v bool) *VerbUpsert {
	u.Set(verb.FieldTransitive, v)
	return u
}

// UpdateTransitive sets the "transitive" field to the value that was provided on create.
func (u *VerbUpsert) UpdateTransitive() *VerbUpsert {
	u.SetExcluded(verb.FieldTransitive)
	return u
}

// SetGerund sets the "gerund" field.
func (u *VerbUpsert) SetGerund(v string) *VerbUpsert {
	u.Set(verb.FieldGerund, v)
	return u
}

// UpdateGerund sets the "gerund" field to the value that was provided on create.
func (u *VerbUpsert) UpdateGerund() *VerbUpsert {
	u.SetExcluded(verb.FieldGerund)
	return u
}

// SetParticiple sets the "participle" field.
func (u *VerbUpsert) SetParticiple(v string) *VerbUpsert {
	u.Set(verb.FieldParticiple, v)
	return u
}

// UpdateParticiple sets the "participle" field to the value that was provided on create.
func (u *VerbUpsert) UpdateParticiple() *VerbUpsert {
	u.SetExcluded(verb.FieldParticiple)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Verb.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *VerbUpsertOne) UpdateNewValues() *VerbUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Verb.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *VerbUpsertOne) Ignore() *VerbUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *VerbUpsertOne) DoNothing() *VerbUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the VerbCreate.OnConflict
// documentation for more info.
func (u *VerbUpsertOne) Update(set func(*VerbUpsert)) *VerbUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&VerbUpsert{UpdateSet: update})
	}))
	return u
}

// SetInfinitive sets the "infinitive" field.
func (u *VerbUpsertOne) SetInfinitive(v string) *VerbUpsertOne {
	return u.Update(func(s *VerbUpsert) {
		s.SetInfinitive(v)
	})
}

// UpdateInfinitive sets the "infinitive" field to the value that was provided on create.
func (u *VerbUpsertOne) UpdateInfinitive() *VerbUpsertOne {
	return u.Update(func(s *VerbUpsert) {
		s.UpdateInfinitive()
	})
}

// SetMeaning sets the "meaning" field.
func (u *VerbUpsertOne) SetMeaning(v string) *VerbUpsertOne {
	return u.Update(func(s *VerbUpsert) {
		s.SetMeaning(v)
	})
}

// UpdateMeaning sets the "meaning" field to the value that was provided on create.
func (u *VerbUpsertOne) UpdateMeaning() *VerbUpsertOne {
	return u.Update(func(s *VerbUpsert) {
		s.UpdateMeaning()
	})
}

// SetConjugationClass sets the "conjugation_class" field.
func (u *VerbUpsertOne) SetConjugationClass(v int) *VerbUpsertOne {
	return u.Update(func(s *VerbUpsert) {
		s.SetConjugationClass(v)
	})
}

// AddConjugationClass adds v to the "conjugation_class" field.
func (u *VerbUpsertOne) AddConjugationClass(v int) *VerbUpsertOne {
	return u.Update(func(s *VerbUpsert) {
		s.AddConjugationClass(v)
	})
}

// UpdateConjugationClass sets the "conjugation_class" field to the value that was provided on create.
func (u *VerbUpsertOne) UpdateConjugationClass() *VerbUpsertOne {
	return u.Update(func(s *VerbUpsert) {
		s.UpdateConjugationClass()
	})
}

// SetIrregular sets the "irregular" field.
func (u *VerbUpsertOne) SetIrregular(v bool) *VerbUpsertOne {
	return u.Update(func(s *VerbUpsert) {
		s.SetIrregular(v)
	})
}

// UpdateIrregular sets the "irregular" field to the value that was provided on create.
func (u *VerbUpsertOne) UpdateIrregular() *VerbUpsertOne {
	return u.Update(func(s *VerbUpsert) {
		s.UpdateIrregular()
	})
}

// SetReflexive sets the "reflexive" field.
func (u *VerbUpsertOne) SetReflexive(v bool) *VerbUpsertOne {
	return u.Update(func(s *VerbUpsert) {
		s.SetReflexive(v)
	})
}

// UpdateReflexive sets the "reflexive" field to the value that was provided on create.
func (u *VerbUpsertOne) UpdateReflexive() *VerbUpsertOne {
	return u.Update(func(s *VerbUpsert) {
		s.UpdateReflexive()
	})
}

// SetTransitive sets the "transitive" field.
func (u *VerbUpsertOne) SetTransitive(v bool) *VerbUpsertOne {
	return u.Update(func(s *VerbUpsert) {
		s.SetTransitive(v)
	})
}

// UpdateTransitive sets the "transitive" field to the value that was provided on create.
func (u *VerbUpsertOne) UpdateTransitive() *VerbUpsertOne {
	return u.Update(func(s *VerbUpsert) {
		s.UpdateTransitive()
	})
}

// SetGerund sets the "gerund" field.
func (u *VerbUpsertOne) SetGerund(v string) *VerbUpsertOne {
	return u.Update(func(s *VerbUpsert) {
		s.SetGerund(v)
	})
}

// UpdateGerund sets the "gerund" field to the value that was provided on create.
func (u *VerbUpsertOne) UpdateGerund() *VerbUpsertOne {
	return u.Update(func(s *VerbUpsert) {
		s.UpdateGerund()
	})
}

// SetParticiple sets the "participle" field.
func (u *VerbUpsertOne) SetParticiple(v string) *VerbUpsertOne {
	return u.Update(func(s *VerbUpsert) {
		s.SetParticiple(v)
	})
}

// UpdateParticiple sets the "participle" field to the value that was provided on create.
func (u *VerbUpsertOne) UpdateParticiple() *VerbUpsertOne {
	return u.Update(func(s *VerbUpsert) {
		s.UpdateParticiple()
	})
}

// Exec executes the query.
func (u *VerbUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for VerbCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *VerbUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *VerbUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *VerbUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// VerbCreateBulk is the builder for creating many Verb entities in bulk.
type VerbCreateBulk struct {
	config
	err      error
	builders []*VerbCreate
	conflict []sql.ConflictOption
}

// Save creates the Verb entities in the database.
func (_c *VerbCreateBulk) Save(ctx context.Context) ([]*Verb, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Verb, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VerbMutation)
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
func (_c *VerbCreateBulk) SaveX(ctx context.Context) []*Verb {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VerbCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VerbCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Verb.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.VerbUpsert) {
//			SetInfinitive(v+v).
//		}).
//		Exec(ctx)
func (_c *VerbCreateBulk) OnConflict(opts ...sql.ConflictOption) *VerbUpsertBulk {
	_c.conflict = opts
	return &VerbUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Verb.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *VerbCreateBulk) OnConflictColumns(columns ...string) *VerbUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &VerbUpsertBulk{
		create: _c,
	}
}

// VerbUpsertBulk is the builder for "upsert"-ing
// a bulk of Verb nodes.
type VerbUpsertBulk struct {
	create *VerbCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Verb.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *VerbUpsertBulk) UpdateNewValues() *VerbUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Verb.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *VerbUpsertBulk) Ignore() *VerbUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *VerbUpsertBulk) DoNothing() *VerbUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the VerbCreateBulk.OnConflict
// documentation for more info.
func (u *VerbUpsertBulk) Update(set func(*VerbUpsert)) *VerbUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&VerbUpsert{UpdateSet: update})
	}))
	return u
}

// SetInfinitive sets the "infinitive" field.
func (u *VerbUpsertBulk) SetInfinitive(v string) *VerbUpsertBulk {
	return u.Update(func(s *VerbUpsert) {
		s.SetInfinitive(v)
	})
}

// UpdateInfinitive sets the "infinitive" field to the value that was provided on create.
func (u *VerbUpsertBulk) UpdateInfinitive() *VerbUpsertBulk {
	return u.Update(func(s *VerbUpsert) {
		s.UpdateInfinitive()
	})
}

// SetMeaning sets the "meaning" field.
func (u *VerbUpsertBulk) SetMeaning(v string) *VerbUpsertBulk {
	return u.Update(func(s *VerbUpsert) {
		s.SetMeaning(v)
	})
}

// UpdateMeaning sets the "meaning" field to the value that was provided on create.
func (u *VerbUpsertBulk) UpdateMeaning() *VerbUpsertBulk {
	return u.Update(func(s *VerbUpsert) {
		s.UpdateMeaning()
	})
}

// SetConjugationClass sets the "conjugation_class" field.
func (u *VerbUpsertBulk) SetConjugationClass(v int) *VerbUpsertBulk {
	return u.Update(func(s *VerbUpsert) {
		s.SetConjugationClass(v)
	})
}

// AddConjugationClass adds v to the "conjugation_class" field.
func (u *VerbUpsertBulk) AddConjugationClass(v int) *VerbUpsertBulk {
	return u.Update(func(s *VerbUpsert) {
		s.AddConjugationClass(v)
	})
}

// UpdateConjugationClass sets the "conjugation_class" field to the value that was provided on create.
func (u *VerbUpsertBulk) UpdateConjugationClass() *VerbUpsertBulk {
	return u.Update(func(s *VerbUpsert) {
		s.UpdateConjugationClass()
	})
}

// SetIrregular sets the "irregular" field.
func (u *VerbUpsertBulk) SetIrregular(v bool) *VerbUpsertBulk {
	return u.Update(func(s *VerbUpsert) {
		s.SetIrregular(v)
	})
}

// UpdateIrregular sets the "irregular" field to the value that was provided on create.
func (u *VerbUpsertBulk) UpdateIrregular() *VerbUpsertBulk {
	return u.Update(func(s *VerbUpsert) {
		s.UpdateIrregular()
	})
}

// SetReflexive sets the "reflexive" field.
func (u *VerbUpsertBulk) SetReflexive(v bool) *VerbUpsertBulk {
	return u.Update(func(s *VerbUpsert) {
		s.SetReflexive(v)
	})
}

// UpdateReflexive sets the "reflexive" field to the value that was provided on create.
func (u *VerbUpsertBulk) UpdateReflexive() *VerbUpsertBulk {
	return u.Update(func(s *VerbUpsert) {
		s.UpdateReflexive()
	})
}

// SetTransitive sets the "transitive" field.
func (u *VerbUpsertBulk) SetTransitive(v bool) *VerbUpsertBulk {
	return u.Update(func(s *VerbUpsert) {
		s.SetTransitive(v)
	})
}

// UpdateTransitive sets the "transitive" field to the value that was provided on create.
func (u *VerbUpsertBulk) UpdateTransitive() *VerbUpsertBulk {
	return u.Update(func(s *VerbUpsert) {
		s.UpdateTransitive()
	})
}

// SetGerund sets the "gerund" field.
func (u *VerbUpsertBulk) SetGerund(v string) *VerbUpsertBulk {
	return u.Update(func(s *VerbUpsert) {
		s.SetGerund(v)
	})
}

// UpdateGerund sets the "gerund" field to the value that was provided on create.
func (u *VerbUpsertBulk) UpdateGerund() *VerbUpsertBulk {
	return u.Update(func(s *VerbUpsert) {
		s.UpdateGerund()
	})
}

// SetParticiple sets the "participle" field.
func (u *VerbUpsertBulk) SetParticiple(v string) *VerbUpsertBulk {
	return u.Update(func(s *VerbUpsert) {
		s.SetParticiple(v)
	})
}

// UpdateParticiple sets the "participle" field to the value that was provided on create.
func (u *VerbUpsertBulk) UpdateParticiple() *VerbUpsertBulk {
	return u.Update(func(s *VerbUpsert) {
		s.UpdateParticiple()
	})
}

// Exec executes the query.
func (u *VerbUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the VerbCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for VerbCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *VerbUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
