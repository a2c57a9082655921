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
)

// PracticeStatCreate is the builder for creating a PracticeStat entity.
type PracticeStatCreate struct {
	config
	mutation *PracticeStatMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *PracticeStatCreate) SetUserID(v string) *PracticeStatCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *PracticeStatCreate) SetQuestionID(v int) *PracticeStatCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetPracticeCount sets the "practice_count" field.
func (_c *PracticeStatCreate) SetPracticeCount(v int) *PracticeStatCreate {
	_c.mutation.SetPracticeCount(v)
	return _c
}

// SetNillablePracticeCount sets the "practice_count" field if the given value is not nil.
func (_c *PracticeStatCreate) SetNillablePracticeCount(v *int) *PracticeStatCreate {
	if v != nil {
		_c.SetPracticeCount(*v)
	}
	return _c
}

// SetRating sets the "rating" field.
func (_c *PracticeStatCreate) SetRating(v int) *PracticeStatCreate {
	_c.mutation.SetRating(v)
	return _c
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_c *PracticeStatCreate) SetNillableRating(v *int) *PracticeStatCreate {
	if v != nil {
		_c.SetRating(*v)
	}
	return _c
}

// SetFavorite sets the "favorite" field.
func (_c *PracticeStatCreate) SetFavorite(v bool) *PracticeStatCreate {
	_c.mutation.SetFavorite(v)
	return _c
}

// SetNillableFavorite sets the "favorite" field if the given value is not nil.
func (_c *PracticeStatCreate) SetNillableFavorite(v *bool) *PracticeStatCreate {
	if v != nil {
		_c.SetFavorite(*v)
	}
	return _c
}

// SetLastPracticed sets the "last_practiced" field.
func (_c *PracticeStatCreate) SetLastPracticed(v time.Time) *PracticeStatCreate {
	_c.mutation.SetLastPracticed(v)
	return _c
}

// SetNillableLastPracticed sets the "last_practiced" field if the given value is not nil.
func (_c *PracticeStatCreate) SetNillableLastPracticed(v *time.Time) *PracticeStatCreate {
	if v != nil {
		_c.SetLastPracticed(*v)
	}
	return _c
}

// Mutation returns the PracticeStatMutation object of the builder.
func (_c *PracticeStatCreate) Mutation() *PracticeStatMutation {
	return _c.mutation
}

// Save creates the PracticeStat in the database.
func (_c *PracticeStatCreate) Save(ctx context.Context) (*PracticeStat, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PracticeStatCreate) SaveX(ctx context.Context) *PracticeStat {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PracticeStatCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PracticeStatCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PracticeStatCreate) defaults() {
	if _, ok := _c.mutation.PracticeCount(); !ok {
		v := practicestat.DefaultPracticeCount
		_c.mutation.SetPracticeCount(v)
	}
	if _, ok := _c.mutation.Rating(); !ok {
		v := practicestat.DefaultRating
		_c.mutation.SetRating(v)
	}
	if _, ok := _c.mutation.Favorite(); !ok {
		v := practicestat.DefaultFavorite
		_c.mutation.SetFavorite(v)
	}
	if _, ok := _c.mutation.LastPracticed(); !ok {
		v := practicestat.DefaultLastPracticed()
		_c.mutation.SetLastPracticed(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PracticeStatCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "PracticeStat.user_id"`)}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "PracticeStat.question_id"`)}
	}
	if _, ok := _c.mutation.PracticeCount(); !ok {
		return &ValidationError{Name: "practice_count", err: errors.New(`ent: missing required field "PracticeStat.practice_count"`)}
	}
	if _, ok := _c.mutation.Rating(); !ok {
		return &ValidationError{Name: "rating", err: errors.New(`ent: missing required field "PracticeStat.rating"`)}
	}
	if v, ok := _c.mutation.Rating(); ok {
		if err := practicestat.RatingValidator(v); err != nil {
			return &ValidationError{Name: "rating", err: fmt.Errorf(`ent: validator failed for field "PracticeStat.rating": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Favorite(); !ok {
		return &ValidationError{Name: "favorite", err: errors.New(`ent: missing required field "PracticeStat.favorite"`)}
	}
	if _, ok := _c.mutation.LastPracticed(); !ok {
		return &ValidationError{Name: "last_practiced", err: errors.New(`ent: missing required field "PracticeStat.last_practiced"`)}
	}
	return nil
}

func (_c *PracticeStatCreate) sqlSave(ctx context.Context) (*PracticeStat, error) {
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

func (_c *PracticeStatCreate) createSpec() (*PracticeStat, *sqlgraph.CreateSpec) {
	var (
		_node = &PracticeStat{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(practicestat.Table, sqlgraph.NewFieldSpec(practicestat.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(practicestat.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(practicestat.FieldQuestionID, field.TypeInt, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.PracticeCount(); ok {
		_spec.SetField(practicestat.FieldPracticeCount, field.TypeInt, value)
		_node.PracticeCount = value
	}
	if value, ok := _c.mutation.Rating(); ok {
		_spec.SetField(practicestat.FieldRating, field.TypeInt, value)
		_node.Rating = value
	}
	if value, ok := _c.mutation.Favorite(); ok {
		_spec.SetField(practicestat.FieldFavorite, field.TypeBool, value)
		_node.Favorite = value
	}
	if value, ok := _c.mutation.LastPracticed(); ok {
		_spec.SetField(practicestat.FieldLastPracticed, field.TypeTime, value)
		_node.LastPracticed = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PracticeStat.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PracticeStatUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *PracticeStatCreate) OnConflict(opts ...sql.ConflictOption) *PracticeStatUpsertOne {
	_c.conflict = opts
	return &PracticeStatUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PracticeStat.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PracticeStatCreate) OnConflictColumns(columns ...string) *PracticeStatUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PracticeStatUpsertOne{
		create: _c,
	}
}

type (
	// PracticeStatUpsertOne is the builder for "upsert"-ing
	//  one PracticeStat node.
	PracticeStatUpsertOne struct {
		create *PracticeStatCreate
	}

	// PracticeStatUpsert is the "OnConflict" setter.
	PracticeStatUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *PracticeStatUpsert) SetUserID(v string) *PracticeStatUpsert {
	u.Set(practicestat.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *PracticeStatUpsert) UpdateUserID() *PracticeStatUpsert {
	u.SetExcluded(practicestat.FieldUserID)
	return u
}

// SetQuestionID sets the "question_id" field.
func (u *PracticeStatUpsert) SetQuestionID(v int) *PracticeStatUpsert {
	u.Set(practicestat.FieldQuestionID, v)
	return u
}

// UpdateQuestionID sets the "question_id" field to the value that was provided on create.
func (u *PracticeStatUpsert) UpdateQuestionID() *PracticeStatUpsert {
	u.SetExcluded(practicestat.FieldQuestionID)
	return u
}

// AddQuestionID adds v to the "question_id" field.
func (u *PracticeStatUpsert) AddQuestionID(v int) *PracticeStatUpsert {
	u.Add(practicestat.FieldQuestionID, v)
	return u
}

// SetPracticeCount sets the "practice_count" field.
func (u *PracticeStatUpsert) SetPracticeCount(v int) *PracticeStatUpsert {
	u.Set(practicestat.FieldPracticeCount, v)
	return u
}

// UpdatePracticeCount sets the "practice_count" field to the value that was provided on create.
func (u *PracticeStatUpsert) UpdatePracticeCount() *PracticeStatUpsert {
	u.SetExcluded(practicestat.FieldPracticeCount)
	return u
}

// AddPracticeCount adds v to the "practice_count" field.
func (u *PracticeStatUpsert) AddPracticeCount(v int) *PracticeStatUpsert {
	u.Add(practicestat.FieldPracticeCount, v)
	return u
}

// SetRating sets the "rating" field.
func (u *PracticeStatUpsert) SetRating(v int) *PracticeStatUpsert {
	u.Set(practicestat.FieldRating, v)
	return u
}

// UpdateRating sets the "rating" field to the value that was provided on create.
func (u *PracticeStatUpsert) UpdateRating() *PracticeStatUpsert {
	u.SetExcluded(practicestat.FieldRating)
	return u
}

// AddRating adds v to the "rating" field.
func (u *PracticeStatUpsert) AddRating(v int) *PracticeStatUpsert {
	u.Add(practicestat.FieldRating, v)
	return u
}

// SetFavorite sets the "favorite" field.
func (u *PracticeStatUpsert) SetFavorite(v bool) *PracticeStatUpsert {
	u.Set(practicestat.FieldFavorite, v)
	return u
}

// UpdateFavorite sets the "favorite" field to the value that was provided on create.
func (u *PracticeStatUpsert) UpdateFavorite() *PracticeStatUpsert {
	u.SetExcluded(practicestat.FieldFavorite)
	return u
}

// SetLastPracticed sets the "last_practiced" field.
func (u *PracticeStatUpsert) SetLastPracticed(v time.Time) *PracticeStatUpsert {
	u.Set(practicestat.FieldLastPracticed, v)
	return u
}

// UpdateLastPracticed sets the "last_practiced" field to the value that was provided on create.
func (u *PracticeStatUpsert) UpdateLastPracticed() *PracticeStatUpsert {
	u.SetExcluded(practicestat.FieldLastPracticed)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.PracticeStat.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *PracticeStatUpsertOne) UpdateNewValues() *PracticeStatUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PracticeStat.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PracticeStatUpsertOne) Ignore() *PracticeStatUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PracticeStatUpsertOne) DoNothing() *PracticeStatUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PracticeStatCreate.OnConflict
// documentation for more info.
func (u *PracticeStatUpsertOne) Update(set func(*PracticeStatUpsert)) *PracticeStatUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PracticeStatUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *PracticeStatUpsertOne) SetUserID(v string) *PracticeStatUpsertOne {
	return u.Update(func(s *PracticeStatUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *PracticeStatUpsertOne) UpdateUserID() *PracticeStatUpsertOne {
	return u.Update(func(s *PracticeStatUpsert) {
		s.UpdateUserID()
	})
}

// SetQuestionID sets the "question_id" field.
func (u *PracticeStatUpsertOne) SetQuestionID(v int) *PracticeStatUpsertOne {
	return u.Update(func(s *PracticeStatUpsert) {
		s.SetQuestionID(v)
	})
}

// AddQuestionID adds v to the "question_id" field.
func (u *PracticeStatUpsertOne) AddQuestionID(v int) *PracticeStatUpsertOne {
	return u.Update(func(s *PracticeStatUpsert) {
		s.AddQuestionID(v)
	})
}

// UpdateQuestionID sets the "question_id" field to the value that was provided on create.
func (u *PracticeStatUpsertOne) UpdateQuestionID() *PracticeStatUpsertOne {
	return u.Update(func(s *PracticeStatUpsert) {
		s.UpdateQuestionID()
	})
}

// SetPracticeCount sets the "practice_count" field.
func (u *PracticeStatUpsertOne) SetPracticeCount(v int) *PracticeStatUpsertOne {
	return u.Update(func(s *PracticeStatUpsert) {
		s.SetPracticeCount(v)
	})
}

// AddPracticeCount adds v to the "practice_count" field.
func (u *PracticeStatUpsertOne) AddPracticeCount(v int) *PracticeStatUpsertOne {
	return u.Update(func(s *PracticeStatUpsert) {
		s.AddPracticeCount(v)
	})
}

// UpdatePracticeCount sets the "practice_count" field to the value that was provided on create.
func (u *PracticeStatUpsertOne) UpdatePracticeCount() *PracticeStatUpsertOne {
	return u.Update(func(s *PracticeStatUpsert) {
		s.UpdatePracticeCount()
	})
}

// SetRating sets the "rating" field.
func (u *PracticeStatUpsertOne) SetRating(v int) *PracticeStatUpsertOne {
	return u.Update(func(s *PracticeStatUpsert) {
		s.SetRating(v)
	})
}

// AddRating adds v to the "rating" field.
func (u *PracticeStatUpsertOne) AddRating(v int) *PracticeStatUpsertOne {
	return u.Update(func(s *PracticeStatUpsert) {
		s.AddRating(v)
	})
}

// UpdateRating sets the "rating" field to the value that was provided on create.
func (u *PracticeStatUpsertOne) UpdateRating() *PracticeStatUpsertOne {
	return u.Update(func(s *PracticeStatUpsert) {
		s.UpdateRating()
	})
}

// SetFavorite sets the "favorite" field.
func (u *PracticeStatUpsertOne) SetFavorite(v bool) *PracticeStatUpsertOne {
	return u.Update(func(s *PracticeStatUpsert) {
		s.SetFavorite(v)
	})
}

// UpdateFavorite sets the "favorite" field to the value that was provided on create.
func (u *PracticeStatUpsertOne) UpdateFavorite() *PracticeStatUpsertOne {
	return u.Update(func(s *PracticeStatUpsert) {
		s.UpdateFavorite()
	})
}

// SetLastPracticed sets the "last_practiced" field.
func (u *PracticeStatUpsertOne) SetLastPracticed(v time.Time) *PracticeStatUpsertOne {
	return u.Update(func(s *PracticeStatUpsert) {
		s.SetLastPracticed(v)
	})
}

// UpdateLastPracticed sets the "last_practiced" field to the value that was provided on create.
func (u *PracticeStatUpsertOne) UpdateLastPracticed() *PracticeStatUpsertOne {
	return u.Update(func(s *PracticeStatUpsert) {
		s.UpdateLastPracticed()
	})
}

// Exec executes the query.
func (u *PracticeStatUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PracticeStatCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PracticeStatUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PracticeStatUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PracticeStatUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PracticeStatCreateBulk is the builder for creating many PracticeStat entities in bulk.
type PracticeStatCreateBulk struct {
	config
	err      error
	builders []*PracticeStatCreate
	conflict []sql.ConflictOption
}

// Save creates the PracticeStat entities in the database.
func (_c *PracticeStatCreateBulk) Save(ctx context.Context) ([]*PracticeStat, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PracticeStat, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PracticeStatMutation)
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
func (_c *PracticeStatCreateBulk) SaveX(ctx context.Context) []*PracticeStat {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PracticeStatCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PracticeStatCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PracticeStat.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PracticeStatUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *PracticeStatCreateBulk) OnConflict(opts ...sql.ConflictOption) *PracticeStatUpsertBulk {
	_c.conflict = opts
	return &PracticeStatUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PracticeStat.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PracticeStatCreateBulk) OnConflictColumns(columns ...string) *PracticeStatUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PracticeStatUpsertBulk{
		create: _c,
	}
}

// PracticeStatUpsertBulk is the builder for "upsert"-ing
// a bulk of PracticeStat nodes.
type PracticeStatUpsertBulk struct {
	create *PracticeStatCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PracticeStat.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *PracticeStatUpsertBulk) UpdateNewValues() *PracticeStatUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PracticeStat.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PracticeStatUpsertBulk) Ignore() *PracticeStatUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PracticeStatUpsertBulk) DoNothing() *PracticeStatUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PracticeStatCreateBulk.OnConflict
// documentation for more info.
func (u *PracticeStatUpsertBulk) Update(set func(*PracticeStatUpsert)) *PracticeStatUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PracticeStatUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *PracticeStatUpsertBulk) SetUserID(v string) *PracticeStatUpsertBulk {
	return u.Update(func(s *PracticeStatUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *PracticeStatUpsertBulk) UpdateUserID() *PracticeStatUpsertBulk {
	return u.Update(func(s *PracticeStatUpsert) {
		s.UpdateUserID()
	})
}

// SetQuestionID sets the "question_id" field.
func (u *PracticeStatUpsertBulk) SetQuestionID(v int) *PracticeStatUpsertBulk {
	return u.Update(func(s *PracticeStatUpsert) {
		s.SetQuestionID(v)
	})
}

// AddQuestionID adds v to the "question_id" field.
func (u *PracticeStatUpsertBulk) AddQuestionID(v int) *PracticeStatUpsertBulk {
	return u.Update(func(s *PracticeStatUpsert) {
		s.AddQuestionID(v)
	})
}

// UpdateQuestionID sets the "question_id" field to the value that was provided on create.
func (u *PracticeStatUpsertBulk) UpdateQuestionID() *PracticeStatUpsertBulk {
	return u.Update(func(s *PracticeStatUpsert) {
		s.UpdateQuestionID()
	})
}

// SetPracticeCount sets the "practice_count" field.
func (u *PracticeStatUpsertBulk) SetPracticeCount(v int) *PracticeStatUpsertBulk {
	return u.Update(func(s *PracticeStatUpsert) {
		s.SetPracticeCount(v)
	})
}

// AddPracticeCount adds v to the "practice_count" field.
func (u *PracticeStatUpsertBulk) AddPracticeCount(v int) *PracticeStatUpsertBulk {
	return u.Update(func(s *PracticeStatUpsert) {
		s.AddPracticeCount(v)
	})
}

// UpdatePracticeCount sets the "practice_count" field to the value that was provided on create.
func (u *PracticeStatUpsertBulk) UpdatePracticeCount() *PracticeStatUpsertBulk {
	return u.Update(func(s *PracticeStatUpsert) {
		s.UpdatePracticeCount()
	})
}

// SetRating sets the "rating" field.
func (u *PracticeStatUpsertBulk) SetRating(v int) *PracticeStatUpsertBulk {
	return u.Update(func(s *PracticeStatUpsert) {
		s.SetRating(v)
	})
}

// AddRating adds v to the "rating" field.
func (u *PracticeStatUpsertBulk) AddRating(v int) *PracticeStatUpsertBulk {
	return u.Update(func(s *PracticeStatUpsert) {
		s.AddRating(v)
	})
}

// UpdateRating sets the "rating" field to the value that was provided on create.
func (u *PracticeStatUpsertBulk) UpdateRating() *PracticeStatUpsertBulk {
	return u.Update(func(s *PracticeStatUpsert) {
		s.UpdateRating()
	})
}

// SetFavorite sets the "favorite" field.
func (u *PracticeStatUpsertBulk) SetFavorite(v bool) *PracticeStatUpsertBulk {
	return u.Update(func(s *PracticeStatUpsert) {
		s.SetFavorite(v)
	})
}

// UpdateFavorite sets the "favorite" field to the value that was provided on create.
func (u *PracticeStatUpsertBulk) UpdateFavorite() *PracticeStatUpsertBulk {
	return u.Update(func(s *PracticeStatUpsert) {
		s.UpdateFavorite()
	})
}

// SetLastPracticed sets the "last_practiced" field.
func (u *PracticeStatUpsertBulk) SetLastPracticed(v time.Time) *PracticeStatUpsertBulk {
	return u.Update(func(s *PracticeStatUpsert) {
		s.SetLastPracticed(v)
	})
}

// UpdateLastPracticed sets the "last_practiced" field to the value that was provided on create.
func (u *PracticeStatUpsertBulk) UpdateLastPracticed() *PracticeStatUpsertBulk {
	return u.Update(func(s *PracticeStatUpsert) {
		s.UpdateLastPracticed()
	})
}

// Exec executes the query.
func (u *PracticeStatUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PracticeStatCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PracticeStatCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PracticeStatUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
