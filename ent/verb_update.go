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
	"github.com/abhisek/conjugo/ent/predicate"
	"github.com/abhisek/conjugo/ent/verb"
)

// VerbUpdate is the builder for updating Verb entities.
type VerbUpdate struct {
	config
	hooks    []Hook
	mutation *VerbMutation
}

// Where appends a list predicates to the VerbUpdate builder.
func (_u *VerbUpdate) Where(ps ...predicate.Verb) *VerbUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetInfinitive sets the "infinitive" field.
func (_u *VerbUpdate) SetInfinitive(v string) *VerbUpdate {
	_u.mutation.SetInfinitive(v)
	return _u
}

// SetNillableInfinitive sets the "infinitive" field if the given value is not nil.
func (_u *VerbUpdate) SetNillableInfinitive(v *string) *VerbUpdate {
	if v != nil {
		_u.SetInfinitive(*v)
	}
	return _u
}

// SetMeaning sets the "meaning" field.
func (_u *VerbUpdate) SetMeaning(v string) *VerbUpdate {
	_u.mutation.SetMeaning(v)
	return _u
}

// SetNillableMeaning sets the "meaning" field if the given value is not nil.
func (_u *VerbUpdate) SetNillableMeaning(v *string) *VerbUpdate {
	if v != nil {
		_u.SetMeaning(*v)
	}
	return _u
}

// SetConjugationClass sets the "conjugation_class" field.
func (_u *VerbUpdate) SetConjugationClass(v int) *VerbUpdate {
	_u.mutation.ResetConjugationClass()
	_u.mutation.SetConjugationClass(v)
	return _u
}

// SetNillableConjugationClass sets the "conjugation_class" field if the given value is not nil.
func (_u *VerbUpdate) SetNillableConjugationClass(v *int) *VerbUpdate {
	if v != nil {
		_u.SetConjugationClass(*v)
	}
	return _u
}

// AddConjugationClass adds value to the "conjugation_class" field.
func (_u *VerbUpdate) AddConjugationClass(v int) *VerbUpdate {
	_u.mutation.AddConjugationClass(v)
	return _u
}

// SetIrregular sets the "irregular" field.
func (_u *VerbUpdate) SetIrregular(v bool) *VerbUpdate {
	_u.mutation.SetIrregular(v)
	return _u
}

// SetNillableIrregular sets the "irregular" field if the given value is not nil.
func (_u *VerbUpdate) SetNillableIrregular(v *bool) *VerbUpdate {
	if v != nil {
		_u.SetIrregular(*v)
	}
	return _u
}

// SetReflexive sets the "reflexive" field.
func (_u *VerbUpdate) SetReflexive(v bool) *VerbUpdate {
	_u.mutation.SetReflexive(v)
	return _u
}

// SetNillableReflexive sets the "reflexive" field if the given value is not nil.
func (_u *VerbUpdate) SetNillableReflexive(v *bool) *VerbUpdate {
	if v != nil {
		_u.SetReflexive(*v)
	}
	return _u
}

// SetTransitive sets the "transitive" field.
func (_u *VerbUpdate) SetTransitive(v bool) *VerbUpdate {
	_u.mutation.SetTransitive(v)
	return _u
}

// SetNillableTransitive sets the "transitive" field if the given value is not nil.
func (_u *VerbUpdate) SetNillableTransitive(v *bool) *VerbUpdate {
	if v != nil {
		_u.SetTransitive(*v)
	}
	return _u
}

// SetGerund sets the "gerund" field.
func (_u *VerbUpdate) SetGerund(v string) *VerbUpdate {
	_u.mutation.SetGerund(v)
	return _u
}

// SetNillableGerund sets the "gerund" field if the given value is not nil.
func (_u *VerbUpdate) SetNillableGerund(v *string) *VerbUpdate {
	if v != nil {
		_u.SetGerund(*v)
	}
	return _u
}

// SetParticiple sets the "participle" field.
func (_u *VerbUpdate) SetParticiple(v string) *VerbUpdate {
	_u.mutation.SetParticiple(v)
	return _u
}

// SetNillableParticiple sets the "participle" field if the given value is not nil.
func (_u *VerbUpdate) SetNillableParticiple(v *string) *VerbUpdate {
	if v != nil {
		_u.SetParticiple(*v)
	}
	return _u
}

// AddConjugationIDs adds the "conjugations" edge to the Conjugation entity by IDs.
func (_u *VerbUpdate) AddConjugationIDs(ids ...int) *VerbUpdate {
	_u.mutation.AddConjugationIDs(ids...)
	return _u
}

// AddConjugations adds the "conjugations" edges to the Conjugation entity.
func (_u *VerbUpdate) AddConjugations(v ...*Conjugation) *VerbUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddConjugationIDs(ids...)
}

// AddQuestionIDs adds the "questions" edge to the BankQuestion entity by IDs.
func (_u *VerbUpdate) AddQuestionIDs(ids ...int) *VerbUpdate {
	_u.mutation.AddQuestionIDs(ids...)
	return _u
}

// AddQuestions adds the "questions" edges to the BankQuestion entity.
func (_u *VerbUpdate) AddQuestions(v ...*BankQuestion) *VerbUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQuestionIDs(ids...)
}

// Mutation returns the VerbMutation object of the builder.
func (_u *VerbUpdate) Mutation() *VerbMutation {
	return _u.mutation
}

// ClearConjugations clears all "conjugations" edges to the Conjugation entity.
func (_u *VerbUpdate) ClearConjugations() *VerbUpdate {
	_u.mutation.ClearConjugations()
	return _u
}

// RemoveConjugationIDs removes the "conjugations" edge to Conjugation entities by IDs.
func (_u *VerbUpdate) RemoveConjugationIDs(ids ...int) *VerbUpdate {
	_u.mutation.RemoveConjugationIDs(ids...)
	return _u
}

// RemoveConjugations removes "conjugations" edges to Conjugation entities.
func (_u *VerbUpdate) RemoveConjugations(v ...*Conjugation) *VerbUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveConjugationIDs(ids...)
}

// ClearQuestions clears all "questions" edges to the BankQuestion entity.
func (_u *VerbUpdate) ClearQuestions() *VerbUpdate {
	_u.mutation.ClearQuestions()
	return _u
}

// RemoveQuestionIDs removes the "questions" edge to BankQuestion entities by IDs.
func (_u *VerbUpdate) RemoveQuestionIDs(ids ...int) *VerbUpdate {
	_u.mutation.RemoveQuestionIDs(ids...)
	return _u
}

// RemoveQuestions removes "questions" edges to BankQuestion entities.
func (_u *VerbUpdate) RemoveQuestions(v ...*BankQuestion) *VerbUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQuestionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VerbUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VerbUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VerbUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VerbUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VerbUpdate) check() error {
	if v, ok := _u.mutation.ConjugationClass(); ok {
		if err := verb.ConjugationClassValidator(v); err != nil {
			return &ValidationError{Name: "conjugation_class", err: fmt.Errorf(`ent: validator failed for field "Verb.conjugation_class": %w`, err)}
		}
	}
	return nil
}

func (_u *VerbUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(verb.Table, verb.Columns, sqlgraph.NewFieldSpec(verb.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Infinitive(); ok {
		_spec.SetField(verb.FieldInfinitive, field.TypeString, value)
	}
	if value, ok := _u.mutation.Meaning(); ok {
		_spec.SetField(verb.FieldMeaning, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConjugationClass(); ok {
		_spec.SetField(verb.FieldConjugationClass, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConjugationClass(); ok {
		_spec.AddField(verb.FieldConjugationClass, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Irregular(); ok {
		_spec.SetField(verb.FieldIrregular, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Reflexive(); ok {
		_spec.SetField(verb.FieldReflexive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Transitive(); ok {
		_spec.SetField(verb.FieldTransitive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Gerund(); ok {
		_spec.SetField(verb.FieldGerund, field.TypeString, value)
	}
	if value, ok := _u.mutation.Participle(); ok {
		_spec.SetField(verb.FieldParticiple, field.TypeString, value)
	}
	if _u.mutation.ConjugationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedConjugationsIDs(); len(nodes) > 0 && !_u.mutation.ConjugationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConjugationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.QuestionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQuestionsIDs(); len(nodes) > 0 && !_u.mutation.QuestionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{verb.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VerbUpdateOne is the builder for updating a single Verb entity.
type VerbUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VerbMutation
}

// SetInfinitive sets the "infinitive" field.
func (_u *VerbUpdateOne) SetInfinitive(v string) *VerbUpdateOne {
	_u.mutation.SetInfinitive(v)
	return _u
}

// SetNillableInfinitive sets the "infinitive" field if the given value is not nil.
func (_u *VerbUpdateOne) SetNillableInfinitive(v *string) *VerbUpdateOne {
	if v != nil {
		_u.SetInfinitive(*v)
	}
	return _u
}

// SetMeaning sets the "meaning" field.
func (_u *VerbUpdateOne) SetMeaning(v string) *VerbUpdateOne {
	_u.mutation.SetMeaning(v)
	return _u
}

// SetNillableMeaning sets the "meaning" field if the given value is not nil.
func (_u *VerbUpdateOne) SetNillableMeaning(v *string) *VerbUpdateOne {
	if v != nil {
		_u.SetMeaning(*v)
	}
	return _u
}

// SetConjugationClass sets the "conjugation_class" field.
func (_u *VerbUpdateOne) SetConjugationClass(v int) *VerbUpdateOne {
	_u.mutation.ResetConjugationClass()
	_u.mutation.SetConjugationClass(v)
	return _u
}

// SetNillableConjugationClass sets the "conjugation_class" field if the given value is not nil.
func (_u *VerbUpdateOne) SetNillableConjugationClass(v *int) *VerbUpdateOne {
	if v != nil {
		_u.SetConjugationClass(*v)
	}
	return _u
}

// AddConjugationClass adds value to the "conjugation_class" field.
func (_u *VerbUpdateOne) AddConjugationClass(v int) *VerbUpdateOne {
	_u.mutation.AddConjugationClass(v)
	return _u
}

// SetIrregular sets the "irregular" field.
func (_u *VerbUpdateOne) SetIrregular(v bool) *VerbUpdateOne {
	_u.mutation.SetIrregular(v)
	return _u
}

// SetNillableIrregular sets the "irregular" field if the given value is not nil.
func (_u *VerbUpdateOne) SetNillableIrregular(v *bool) *VerbUpdateOne {
	if v != nil {
		_u.SetIrregular(*v)
	}
	return _u
}

// SetReflexive sets the "reflexive" field.
func (_u *VerbUpdateOne) SetReflexive(v bool) *VerbUpdateOne {
	_u.mutation.SetReflexive(v)
	return _u
}

// SetNillableReflexive sets the "reflexive" field if the given value is not nil.
func (_u *VerbUpdateOne) SetNillableReflexive(v *bool) *VerbUpdateOne {
	if v != nil {
		_u.SetReflexive(*v)
	}
	return _u
}

// SetTransitive sets the "transitive" field.
func (_u *VerbUpdateOne) SetTransitive(v bool) *VerbUpdateOne {
	_u.mutation.SetTransitive(v)
	return _u
}

// SetNillableTransitive sets the "transitive" field if the given value is not nil.
func (_u *VerbUpdateOne) SetNillableTransitive(v *bool) *VerbUpdateOne {
	if v != nil {
		_u.SetTransitive(*v)
	}
	return _u
}

// SetGerund sets the "gerund" field.
func (_u *VerbUpdateOne) SetGerund(v string) *VerbUpdateOne {
	_u.mutation.SetGerund(v)
	return _u
}

// SetNillableGerund sets the "gerund" field if the given value is not nil.
func (_u *VerbUpdateOne) SetNillableGerund(v *string) *VerbUpdateOne {
	if v != nil {
		_u.SetGerund(*v)
	}
	return _u
}

// SetParticiple sets the "participle" field.
func (_u *VerbUpdateOne) SetParticiple(v string) *VerbUpdateOne {
	_u.mutation.SetParticiple(v)
	return _u
}

// SetNillableParticiple sets the "participle" field if the given value is not nil.
func (_u *VerbUpdateOne) SetNillableParticiple(v *string) *VerbUpdateOne {
	if v != nil {
		_u.SetParticiple(*v)
	}
	return _u
}

// AddConjugationIDs adds the "conjugations" edge to the Conjugation entity by IDs.
func (_u *VerbUpdateOne) AddConjugationIDs(ids ...int) *VerbUpdateOne {
	_u.mutation.AddConjugationIDs(ids...)
	return _u
}

// AddConjugations adds the "conjugations" edges to the Conjugation entity.
func (_u *VerbUpdateOne) AddConjugations(v ...*Conjugation) *VerbUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddConjugationIDs(ids...)
}

// AddQuestionIDs adds the "questions" edge to the BankQuestion entity by IDs.
func (_u *VerbUpdateOne) AddQuestionIDs(ids ...int) *VerbUpdateOne {
	_u.mutation.AddQuestionIDs(ids...)
	return _u
}

// AddQuestions adds the "questions" edges to the BankQuestion entity.
func (_u *VerbUpdateOne) AddQuestions(v ...*BankQuestion) *VerbUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQuestionIDs(ids...)
}

// Mutation returns the VerbMutation object of the builder.
func (_u *VerbUpdateOne) Mutation() *VerbMutation {
	return _u.mutation
}

// ClearConjugations clears all "conjugations" edges to the Conjugation entity.
func (_u *VerbUpdateOne) ClearConjugations() *VerbUpdateOne {
	_u.mutation.ClearConjugations()
	return _u
}

// RemoveConjugationIDs removes the "conjugations" edge to Conjugation entities by IDs.
func (_u *VerbUpdateOne) RemoveConjugationIDs(ids ...int) *VerbUpdateOne {
	_u.mutation.RemoveConjugationIDs(ids...)
	return _u
}

// RemoveConjugations removes "conjugations" edges to Conjugation entities.
func (_u *VerbUpdateOne) RemoveConjugations(v ...*Conjugation) *VerbUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveConjugationIDs(ids...)
}

// ClearQuestions clears all "questions" edges to the BankQuestion entity.
func (_u *VerbUpdateOne) ClearQuestions() *VerbUpdateOne {
	_u.mutation.ClearQuestions()
	return _u
}

// RemoveQuestionIDs removes the "questions" edge to BankQuestion entities by IDs.
func (_u *VerbUpdateOne) RemoveQuestionIDs(ids ...int) *VerbUpdateOne {
	_u.mutation.RemoveQuestionIDs(ids...)
	return _u
}

// RemoveQuestions removes "questions" edges to BankQuestion entities.
func (_u *VerbUpdateOne) RemoveQuestions(v ...*BankQuestion) *VerbUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQuestionIDs(ids...)
}

// Where appends a list predicates to the VerbUpdate builder.
func (_u *VerbUpdateOne) Where(ps ...predicate.Verb) *VerbUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VerbUpdateOne) Select(field string, fields ...string) *VerbUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Verb entity.
func (_u *VerbUpdateOne) Save(ctx context.Context) (*Verb, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VerbUpdateOne) SaveX(ctx context.Context) *Verb {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VerbUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VerbUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VerbUpdateOne) check() error {
	if v, ok := _u.mutation.ConjugationClass(); ok {
		if err := verb.ConjugationClassValidator(v); err != nil {
			return &ValidationError{Name: "conjugation_class", err: fmt.Errorf(`ent: validator failed for field "Verb.conjugation_class": %w`, err)}
		}
	}
	return nil
}

func (_u *VerbUpdateOne) sqlSave(ctx context.Context) (_node *Verb, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(verb.Table, verb.Columns, sqlgraph.NewFieldSpec(verb.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Verb.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, verb.FieldID)
		for _, f := range fields {
			if !verb.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != verb.FieldID {
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
	if value, ok := _u.mutation.Infinitive(); ok {
		_spec.SetField(verb.FieldInfinitive, field.TypeString, value)
	}
	if value, ok := _u.mutation.Meaning(); ok {
		_spec.SetField(verb.FieldMeaning, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConjugationClass(); ok {
		_spec.SetField(verb.FieldConjugationClass, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConjugationClass(); ok {
		_spec.AddField(verb.FieldConjugationClass, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Irregular(); ok {
		_spec.SetField(verb.FieldIrregular, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Reflexive(); ok {
		_spec.SetField(verb.FieldReflexive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Transitive(); ok {
		_spec.SetField(verb.FieldTransitive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Gerund(); ok {
		_spec.SetField(verb.FieldGerund, field.TypeString, value)
	}
	if value, ok := _u.mutation.Participle(); ok {
		_spec.SetField(verb.FieldParticiple, field.TypeString, value)
	}
	if _u.mutation.ConjugationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedConjugationsIDs(); len(nodes) > 0 && !_u.mutation.ConjugationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConjugationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.QuestionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQuestionsIDs(); len(nodes) > 0 && !_u.mutation.QuestionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Verb{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{verb.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
