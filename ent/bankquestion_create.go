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
	"github.com/abhisek/conjugo/ent/bankquestion"
	"github.com/abhisek/conjugo/ent/verb"
)

// BankQuestionCreate is the builder for creating a BankQuestion entity.
type BankQuestionCreate struct {
	config
	mutation *BankQuestionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetVerbID sets the "verb_id" field.
func (_c *BankQuestionCreate) SetVerbID(v int) *BankQuestionCreate {
	_c.mutation.SetVerbID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *BankQuestionCreate) SetKind(v string) *BankQuestionCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetMood sets the "mood" field.
func (_c *BankQuestionCreate) SetMood(v string) *BankQuestionCreate {
	_c.mutation.SetMood(v)
	return _c
}

// SetTense sets the "tense" field.
func (_c *BankQuestionCreate) SetTense(v string) *BankQuestionCreate {
	_c.mutation.SetTense(v)
	return _c
}

// SetPerson sets the "person" field.
func (_c *BankQuestionCreate) SetPerson(v string) *BankQuestionCreate {
	_c.mutation.SetPerson(v)
	return _c
}

// SetHostForm sets the "host_form" field.
func (_c *BankQuestionCreate) SetHostForm(v string) *BankQuestionCreate {
	_c.mutation.SetHostForm(v)
	return _c
}

// SetNillableHostForm sets the "host_form" field if the given value is not nil.
func (_c *BankQuestionCreate) SetNillableHostForm(v *string) *BankQuestionCreate {
	if v != nil {
		_c.SetHostForm(*v)
	}
	return _c
}

// SetCliticPattern sets the "clitic_pattern" field.
func (_c *BankQuestionCreate) SetCliticPattern(v string) *BankQuestionCreate {
	_c.mutation.SetCliticPattern(v)
	return _c
}

// SetNillableCliticPattern sets the "clitic_pattern" field if the given value is not nil.
func (_c *BankQuestionCreate) SetNillableCliticPattern(v *string) *BankQuestionCreate {
	if v != nil {
		_c.SetCliticPattern(*v)
	}
	return _c
}

// SetIoClitic sets the "io_clitic" field.
func (_c *BankQuestionCreate) SetIoClitic(v string) *BankQuestionCreate {
	_c.mutation.SetIoClitic(v)
	return _c
}

// SetNillableIoClitic sets the "io_clitic" field if the given value is not nil.
func (_c *BankQuestionCreate) SetNillableIoClitic(v *string) *BankQuestionCreate {
	if v != nil {
		_c.SetIoClitic(*v)
	}
	return _c
}

// SetDoClitic sets the "do_clitic" field.
func (_c *BankQuestionCreate) SetDoClitic(v string) *BankQuestionCreate {
	_c.mutation.SetDoClitic(v)
	return _c
}

// SetNillableDoClitic sets the "do_clitic" field if the given value is not nil.
func (_c *BankQuestionCreate) SetNillableDoClitic(v *string) *BankQuestionCreate {
	if v != nil {
		_c.SetDoClitic(*v)
	}
	return _c
}

// SetSentence sets the "sentence" field.
func (_c *BankQuestionCreate) SetSentence(v string) *BankQuestionCreate {
	_c.mutation.SetSentence(v)
	return _c
}

// SetAnswer sets the "answer" field.
func (_c *BankQuestionCreate) SetAnswer(v string) *BankQuestionCreate {
	_c.mutation.SetAnswer(v)
	return _c
}

// SetTranslation sets the "translation" field.
func (_c *BankQuestionCreate) SetTranslation(v string) *BankQuestionCreate {
	_c.mutation.SetTranslation(v)
	return _c
}

// SetHint sets the "hint" field.
func (_c *BankQuestionCreate) SetHint(v string) *BankQuestionCreate {
	_c.mutation.SetHint(v)
	return _c
}

// SetNillableHint sets the "hint" field if the given value is not nil.
func (_c *BankQuestionCreate) SetNillableHint(v *string) *BankQuestionCreate {
	if v != nil {
		_c.SetHint(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *BankQuestionCreate) SetConfidence(v int) *BankQuestionCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *BankQuestionCreate) SetNillableConfidence(v *int) *BankQuestionCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BankQuestionCreate) SetCreatedAt(v time.Time) *BankQuestionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BankQuestionCreate) SetNillableCreatedAt(v *time.Time) *BankQuestionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetVerb sets the "verb" edge to the Verb entity.
func (_c *BankQuestionCreate) SetVerb(v *Verb) *BankQuestionCreate {
	return _c.SetVerbID(v.ID)
}

// Mutation returns the BankQuestionMutation object of the builder.
func (_c *BankQuestionCreate) Mutation() *BankQuestionMutation {
	return _c.mutation
}

// Save creates the BankQuestion in the database.
func (_c *BankQuestionCreate) Save(ctx context.Context) (*BankQuestion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BankQuestionCreate) SaveX(ctx context.Context) *BankQuestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BankQuestionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BankQuestionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BankQuestionCreate) defaults() {
	if _, ok := _c.mutation.HostForm(); !ok {
		v := bankquestion.DefaultHostForm
		_c.mutation.SetHostForm(v)
	}
	if _, ok := _c.mutation.CliticPattern(); !ok {
		v := bankquestion.DefaultCliticPattern
		_c.mutation.SetCliticPattern(v)
	}
	if _, ok := _c.mutation.IoClitic(); !ok {
		v := bankquestion.DefaultIoClitic
		_c.mutation.SetIoClitic(v)
	}
	if _, ok := _c.mutation.DoClitic(); !ok {
		v := bankquestion.DefaultDoClitic
		_c.mutation.SetDoClitic(v)
	}
	if _, ok := _c.mutation.Hint(); !ok {
		v := bankquestion.DefaultHint
		_c.mutation.SetHint(v)
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		v := bankquestion.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := bankquestion.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BankQuestionCreate) check() error {
	if _, ok := _c.mutation.VerbID(); !ok {
		return &ValidationError{Name: "verb_id", err: errors.New(`ent: missing required field "BankQuestion.verb_id"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "BankQuestion.kind"`)}
	}
	if _, ok := _c.mutation.Mood(); !ok {
		return &ValidationError{Name: "mood", err: errors.New(`ent: missing required field "BankQuestion.mood"`)}
	}
	if _, ok := _c.mutation.Tense(); !ok {
		return &ValidationError{Name: "tense", err: errors.New(`ent: missing required field "BankQuestion.tense"`)}
	}
	if _, ok := _c.mutation.Person(); !ok {
		return &ValidationError{Name: "person", err: errors.New(`ent: missing required field "BankQuestion.person"`)}
	}
	if _, ok := _c.mutation.HostForm(); !ok {
		return &ValidationError{Name: "host_form", err: errors.New(`ent: missing required field "BankQuestion.host_form"`)}
	}
	if _, ok := _c.mutation.CliticPattern(); !ok {
		return &ValidationError{Name: "clitic_pattern", err: errors.New(`ent: missing required field "BankQuestion.clitic_pattern"`)}
	}
	if _, ok := _c.mutation.IoClitic(); !ok {
		return &ValidationError{Name: "io_clitic", err: errors.New(`ent: missing required field "BankQuestion.io_clitic"`)}
	}
	if _, ok := _c.mutation.DoClitic(); !ok {
		return &ValidationError{Name: "do_clitic", err: errors.New(`ent: missing required field "BankQuestion.do_clitic"`)}
	}
	if _, ok := _c.mutation.Sentence(); !ok {
		return &ValidationError{Name: "sentence", err: errors.New(`ent: missing required field "BankQuestion.sentence"`)}
	}
	if _, ok := _c.mutation.Answer(); !ok {
		return &ValidationError{Name: "answer", err: errors.New(`ent: missing required field "BankQuestion.answer"`)}
	}
	if _, ok := _c.mutation.Translation(); !ok {
		return &ValidationError{Name: "translation", err: errors.New(`ent: missing required field "BankQuestion.translation"`)}
	}
	if _, ok := _c.mutation.Hint(); !ok {
		return &ValidationError{Name: "hint", err: errors.New(`ent: missing required field "BankQuestion.hint"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "BankQuestion.confidence"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "BankQuestion.created_at"`)}
	}
	if len(_c.mutation.VerbIDs()) == 0 {
		return &ValidationError{Name: "verb", err: errors.New(`ent: missing required edge "BankQuestion.verb"`)}
	}
	return nil
}

func (_c *BankQuestionCreate) sqlSave(ctx context.Context) (*BankQuestion, error) {
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

func (_c *BankQuestionCreate) createSpec() (*BankQuestion, *sqlgraph.CreateSpec) {
	var (
		_node = &BankQuestion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(bankquestion.Table, sqlgraph.NewFieldSpec(bankquestion.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(bankquestion.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Mood(); ok {
		_spec.SetField(bankquestion.FieldMood, field.TypeString, value)
		_node.Mood = value
	}
	if value, ok := _c.mutation.Tense(); ok {
		_spec.SetField(bankquestion.FieldTense, field.TypeString, value)
		_node.Tense = value
	}
	if value, ok := _c.mutation.Person(); ok {
		_spec.SetField(bankquestion.FieldPerson, field.TypeString, value)
		_node.Person = value
	}
	if value, ok := _c.mutation.HostForm(); ok {
		_spec.SetField(bankquestion.FieldHostForm, field.TypeString, value)
		_node.HostForm = value
	}
	if value, ok := _c.mutation.CliticPattern(); ok {
		_spec.SetField(bankquestion.FieldCliticPattern, field.TypeString, value)
		_node.CliticPattern = value
	}
	if value, ok := _c.mutation.IoClitic(); ok {
		_spec.SetField(bankquestion.FieldIoClitic, field.TypeString, value)
		_node.IoClitic = value
	}
	if value, ok := _c.mutation.DoClitic(); ok {
		_spec.SetField(bankquestion.FieldDoClitic, field.TypeString, value)
		_node.DoClitic = value
	}
	if value, ok := _c.mutation.Sentence(); ok {
		_spec.SetField(bankquestion.FieldSentence, field.TypeString, value)
		_node.Sentence = value
	}
	if value, ok := _c.mutation.Answer(); ok {
		_spec.SetField(bankquestion.FieldAnswer, field.TypeString, value)
		_node.Answer = value
	}
	if value, ok := _c.mutation.Translation(); ok {
		_spec.SetField(bankquestion.FieldTranslation, field.TypeString, value)
		_node.Translation = value
	}
	if value, ok := _c.mutation.Hint(); ok {
		_spec.SetField(bankquestion.FieldHint, field.TypeString, value)
		_node.Hint = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(bankquestion.FieldConfidence, field.TypeInt, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(bankquestion.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.VerbIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   bankquestion.VerbTable,
			Columns: []string{bankquestion.VerbColumn},
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
//	client.BankQuestion.Create().
//		SetVerbID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BankQuestionUpsert) {
//			SetVerbID(v+v).
//		}).
//		Exec(ctx)
func (_c *BankQuestionCreate) OnConflict(opts ...sql.ConflictOption) *BankQuestionUpsertOne {
	_c.conflict = opts
	return &BankQuestionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.BankQuestion.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BankQuestionCreate) OnConflictColumns(columns ...string) *BankQuestionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BankQuestionUpsertOne{
		create: _c,
	}
}

type (
	// BankQuestionUpsertOne is the builder for "upsert"-ing
	//  one BankQuestion node.
	BankQuestionUpsertOne struct {
		create *BankQuestionCreate
	}

	// BankQuestionUpsert is the "OnConflict" setter.
	BankQuestionUpsert struct {
		*sql.UpdateSet
	}
)

// SetConfidence sets the "confidence" field.
func (u *BankQuestionUpsert) SetConfidence(v int) *BankQuestionUpsert {
	u.Set(bankquestion.FieldConfidence, v)
	return u
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *BankQuestionUpsert) UpdateConfidence() *BankQuestionUpsert {
	u.SetExcluded(bankquestion.FieldConfidence)
	return u
}

// AddConfidence adds v to the "confidence" field.
func (u *BankQuestionUpsert) AddConfidence(v int) *BankQuestionUpsert {
	u.Add(bankquestion.FieldConfidence, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.BankQuestion.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *BankQuestionUpsertOne) UpdateNewValues() *BankQuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.VerbID(); exists {
			s.SetIgnore(bankquestion.FieldVerbID)
		}
		if _, exists := u.create.mutation.Kind(); exists {
			s.SetIgnore(bankquestion.FieldKind)
		}
		if _, exists := u.create.mutation.Mood(); exists {
			s.SetIgnore(bankquestion.FieldMood)
		}
		if _, exists := u.create.mutation.Tense(); exists {
			s.SetIgnore(bankquestion.FieldTense)
		}
		if _, exists := u.create.mutation.Person(); exists {
			s.SetIgnore(bankquestion.FieldPerson)
		}
		if _, exists := u.create.mutation.HostForm(); exists {
			s.SetIgnore(bankquestion.FieldHostForm)
		}
		if _, exists := u.create.mutation.CliticPattern(); exists {
			s.SetIgnore(bankquestion.FieldCliticPattern)
		}
		if _, exists := u.create.mutation.IoClitic(); exists {
			s.SetIgnore(bankquestion.FieldIoClitic)
		}
		if _, exists := u.create.mutation.DoClitic(); exists {
			s.SetIgnore(bankquestion.FieldDoClitic)
		}
		if _, exists := u.create.mutation.Sentence(); exists {
			s.SetIgnore(bankquestion.FieldSentence)
		}
		if _, exists := u.create.mutation.Answer(); exists {
			s.SetIgnore(bankquestion.FieldAnswer)
		}
		if _, exists := u.create.mutation.Translation(); exists {
			s.SetIgnore(bankquestion.FieldTranslation)
		}
		if _, exists := u.create.mutation.Hint(); exists {
			s.SetIgnore(bankquestion.FieldHint)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(bankquestion.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.BankQuestion.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *BankQuestionUpsertOne) Ignore() *BankQuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BankQuestionUpsertOne) DoNothing() *BankQuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BankQuestionCreate.OnConflict
// documentation for more info.
func (u *BankQuestionUpsertOne) Update(set func(*BankQuestionUpsert)) *BankQuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BankQuestionUpsert{UpdateSet: update})
	}))
	return u
}

// SetConfidence sets the "confidence" field.
func (u *BankQuestionUpsertOne) SetConfidence(v int) *BankQuestionUpsertOne {
	return u.Update(func(s *BankQuestionUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *BankQuestionUpsertOne) AddConfidence(v int) *BankQuestionUpsertOne {
	return u.Update(func(s *BankQuestionUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *BankQuestionUpsertOne) UpdateConfidence() *BankQuestionUpsertOne {
	return u.Update(func(s *BankQuestionUpsert) {
		s.UpdateConfidence()
	})
}

// Exec executes the query.
func (u *BankQuestionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BankQuestionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BankQuestionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *BankQuestionUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *BankQuestionUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// BankQuestionCreateBulk is the builder for creating many BankQuestion entities in bulk.
type BankQuestionCreateBulk struct {
	config
	err      error
	builders []*BankQuestionCreate
	conflict []sql.ConflictOption
}

// Save creates the BankQuestion entities in the database.
func (_c *BankQuestionCreateBulk) Save(ctx context.Context) ([]*BankQuestion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BankQuestion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BankQuestionMutation)
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
func (_c *BankQuestionCreateBulk) SaveX(ctx context.Context) []*BankQuestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BankQuestionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BankQuestionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.BankQuestion.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BankQuestionUpsert) {
//			SetVerbID(v+v).
//		}).
//		Exec(ctx)
func (_c *BankQuestionCreateBulk) OnConflict(opts ...sql.ConflictOption) *BankQuestionUpsertBulk {
	_c.conflict = opts
	return &BankQuestionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.BankQuestion.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BankQuestionCreateBulk) OnConflictColumns(columns ...string) *BankQuestionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BankQuestionUpsertBulk{
		create: _c,
	}
}

// BankQuestionUpsertBulk is the builder for "upsert"-ing
// a bulk of BankQuestion nodes.
type BankQuestionUpsertBulk struct {
	create *BankQuestionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.BankQuestion.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *BankQuestionUpsertBulk) UpdateNewValues() *BankQuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.VerbID(); exists {
				s.SetIgnore(bankquestion.FieldVerbID)
			}
			if _, exists := b.mutation.Kind(); exists {
				s.SetIgnore(bankquestion.FieldKind)
			}
			if _, exists := b.mutation.Mood(); exists {
				s.SetIgnore(bankquestion.FieldMood)
			}
			if _, exists := b.mutation.Tense(); exists {
				s.SetIgnore(bankquestion.FieldTense)
			}
			if _, exists := b.mutation.Person(); exists {
				s.SetIgnore(bankquestion.FieldPerson)
			}
			if _, exists := b.mutation.HostForm(); exists {
				s.SetIgnore(bankquestion.FieldHostForm)
			}
			if _, exists := b.mutation.CliticPattern(); exists {
				s.SetIgnore(bankquestion.FieldCliticPattern)
			}
			if _, exists := b.mutation.IoClitic(); exists {
				s.SetIgnore(bankquestion.FieldIoClitic)
			}
			if _, exists := b.mutation.DoClitic(); exists {
				s.SetIgnore(bankquestion.FieldDoClitic)
			}
			if _, exists := b.mutation.Sentence(); exists {
				s.SetIgnore(bankquestion.FieldSentence)
			}
			if _, exists := b.mutation.Answer(); exists {
				s.SetIgnore(bankquestion.FieldAnswer)
			}
			if _, exists := b.mutation.Translation(); exists {
				s.SetIgnore(bankquestion.FieldTranslation)
			}
			if _, exists := b.mutation.Hint(); exists {
				s.SetIgnore(bankquestion.FieldHint)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(bankquestion.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.BankQuestion.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *BankQuestionUpsertBulk) Ignore() *BankQuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BankQuestionUpsertBulk) DoNothing() *BankQuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BankQuestionCreateBulk.OnConflict
// documentation for more info.
func (u *BankQuestionUpsertBulk) Update(set func(*BankQuestionUpsert)) *BankQuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BankQuestionUpsert{UpdateSet: update})
	}))
	return u
}

// SetConfidence sets the "confidence" field.
func (u *BankQuestionUpsertBulk) SetConfidence(v int) *BankQuestionUpsertBulk {
	return u.Update(func(s *BankQuestionUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *BankQuestionUpsertBulk) AddConfidence(v int) *BankQuestionUpsertBulk {
	return u.Update(func(s *BankQuestionUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *BankQuestionUpsertBulk) UpdateConfidence() *BankQuestionUpsertBulk {
	return u.Update(func(s *BankQuestionUpsert) {
		s.UpdateConfidence()
	})
}

// Exec executes the query.
func (u *BankQuestionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the BankQuestionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BankQuestionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BankQuestionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
