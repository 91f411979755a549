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
	"github.com/audiomint/backend/ent/usagelog"
	"github.com/audiomint/backend/ent/user"
)

// UsageLogCreate is the builder for creating a UsageLog entity.
type UsageLogCreate struct {
	config
	mutation *UsageLogMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *UsageLogCreate) SetUserID(v int) *UsageLogCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetDate sets the "date" field.
func (_c *UsageLogCreate) SetDate(v time.Time) *UsageLogCreate {
	_c.mutation.SetDate(v)
	return _c
}

// SetAudioGenerations sets the "audio_generations" field.
func (_c *UsageLogCreate) SetAudioGenerations(v int) *UsageLogCreate {
	_c.mutation.SetAudioGenerations(v)
	return _c
}

// SetNillableAudioGenerations sets the "audio_generations" field if the given value is not nil.
func (_c *UsageLogCreate) SetNillableAudioGenerations(v *int) *UsageLogCreate {
	if v != nil {
		_c.SetAudioGenerations(*v)
	}
	return _c
}

// SetAPICalls sets the "api_calls" field.
func (_c *UsageLogCreate) SetAPICalls(v int) *UsageLogCreate {
	_c.mutation.SetAPICalls(v)
	return _c
}

// SetNillableAPICalls sets the "api_calls" field if the given value is not nil.
func (_c *UsageLogCreate) SetNillableAPICalls(v *int) *UsageLogCreate {
	if v != nil {
		_c.SetAPICalls(*v)
	}
	return _c
}

// SetTotalDuration sets the "total_duration" field.
func (_c *UsageLogCreate) SetTotalDuration(v int) *UsageLogCreate {
	_c.mutation.SetTotalDuration(v)
	return _c
}

// SetNillableTotalDuration sets the "total_duration" field if the given value is not nil.
func (_c *UsageLogCreate) SetNillableTotalDuration(v *int) *UsageLogCreate {
	if v != nil {
		_c.SetTotalDuration(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *UsageLogCreate) SetCreatedAt(v time.Time) *UsageLogCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UsageLogCreate) SetNillableCreatedAt(v *time.Time) *UsageLogCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *UsageLogCreate) SetUpdatedAt(v time.Time) *UsageLogCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *UsageLogCreate) SetNillableUpdatedAt(v *time.Time) *UsageLogCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *UsageLogCreate) SetUser(v *User) *UsageLogCreate {
	return _c.SetUserID(v.ID)
}

// Mutation returns the UsageLogMutation object of the builder.
func (_c *UsageLogCreate) Mutation() *UsageLogMutation {
	return _c.mutation
}

// Save creates the UsageLog in the database.
func (_c *UsageLogCreate) Save(ctx context.Context) (*UsageLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UsageLogCreate) SaveX(ctx context.Context) *UsageLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UsageLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UsageLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UsageLogCreate) defaults() {
	if _, ok := _c.mutation.AudioGenerations(); !ok {
		v := usagelog.DefaultAudioGenerations
		_c.mutation.SetAudioGenerations(v)
	}
	if _, ok := _c.mutation.APICalls(); !ok {
		v := usagelog.DefaultAPICalls
		_c.mutation.SetAPICalls(v)
	}
	if _, ok := _c.mutation.TotalDuration(); !ok {
		v := usagelog.DefaultTotalDuration
		_c.mutation.SetTotalDuration(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := usagelog.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := usagelog.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UsageLogCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "UsageLog.user_id"`)}
	}
	if _, ok := _c.mutation.Date(); !ok {
		return &ValidationError{Name: "date", err: errors.New(`ent: missing required field "UsageLog.date"`)}
	}
	if _, ok := _c.mutation.AudioGenerations(); !ok {
		return &ValidationError{Name: "audio_generations", err: errors.New(`ent: missing required field "UsageLog.audio_generations"`)}
	}
	if v, ok := _c.mutation.AudioGenerations(); ok {
		if err := usagelog.AudioGenerationsValidator(v); err != nil {
			return &ValidationError{Name: "audio_generations", err: fmt.Errorf(`ent: validator failed for field "UsageLog.audio_generations": %w`, err)}
		}
	}
	if _, ok := _c.mutation.APICalls(); !ok {
		return &ValidationError{Name: "api_calls", err: errors.New(`ent: missing required field "UsageLog.api_calls"`)}
	}
	if v, ok := _c.mutation.APICalls(); ok {
		if err := usagelog.APICallsValidator(v); err != nil {
			return &ValidationError{Name: "api_calls", err: fmt.Errorf(`ent: validator failed for field "UsageLog.api_calls": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalDuration(); !ok {
		return &ValidationError{Name: "total_duration", err: errors.New(`ent: missing required field "UsageLog.total_duration"`)}
	}
	if v, ok := _c.mutation.TotalDuration(); ok {
		if err := usagelog.TotalDurationValidator(v); err != nil {
			return &ValidationError{Name: "total_duration", err: fmt.Errorf(`ent: validator failed for field "UsageLog.total_duration": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "UsageLog.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "UsageLog.updated_at"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "UsageLog.user"`)}
	}
	return nil
}

func (_c *UsageLogCreate) sqlSave(ctx context.Context) (*UsageLog, error) {
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

func (_c *UsageLogCreate) createSpec() (*UsageLog, *sqlgraph.CreateSpec) {
	var (
		_node = &UsageLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(usagelog.Table, sqlgraph.NewFieldSpec(usagelog.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Date(); ok {
		_spec.SetField(usagelog.FieldDate, field.TypeTime, value)
		_node.Date = value
	}
	if value, ok := _c.mutation.AudioGenerations(); ok {
		_spec.SetField(usagelog.FieldAudioGenerations, field.TypeInt, value)
		_node.AudioGenerations = value
	}
	if value, ok := _c.mutation.APICalls(); ok {
		_spec.SetField(usagelog.FieldAPICalls, field.TypeInt, value)
		_node.APICalls = value
	}
	if value, ok := _c.mutation.TotalDuration(); ok {
		_spec.SetField(usagelog.FieldTotalDuration, field.TypeInt, value)
		_node.TotalDuration = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(usagelog.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(usagelog.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   usagelog.UserTable,
			Columns: []string{usagelog.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.UsageLog.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UsageLogUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *UsageLogCreate) OnConflict(opts ...sql.ConflictOption) *UsageLogUpsertOne {
	_c.conflict = opts
	return &UsageLogUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.UsageLog.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UsageLogCreate) OnConflictColumns(columns ...string) *UsageLogUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UsageLogUpsertOne{
		create: _c,
	}
}

type (
	// UsageLogUpsertOne is the builder for "upsert"-ing
	//  one UsageLog node.
	UsageLogUpsertOne struct {
		create *UsageLogCreate
	}

	// UsageLogUpsert is the "OnConflict" setter.
	UsageLogUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *UsageLogUpsert) SetUserID(v int) *UsageLogUpsert {
	u.Set(usagelog.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *UsageLogUpsert) UpdateUserID() *UsageLogUpsert {
	u.SetExcluded(usagelog.FieldUserID)
	return u
}

// SetAudioGenerations sets the "audio_generations" field.
func (u *UsageLogUpsert) SetAudioGenerations(v int) *UsageLogUpsert {
	u.Set(usagelog.FieldAudioGenerations, v)
	return u
}

// UpdateAudioGenerations sets the "audio_generations" field to the value that was provided on create.
func (u *UsageLogUpsert) UpdateAudioGenerations() *UsageLogUpsert {
	u.SetExcluded(usagelog.FieldAudioGenerations)
	return u
}

// AddAudioGenerations adds v to the "audio_generations" field.
func (u *UsageLogUpsert) AddAudioGenerations(v int) *UsageLogUpsert {
	u.Add(usagelog.FieldAudioGenerations, v)
	return u
}

// SetAPICalls sets the "api_calls" field.
func (u *UsageLogUpsert) SetAPICalls(v int) *UsageLogUpsert {
	u.Set(usagelog.FieldAPICalls, v)
	return u
}

// UpdateAPICalls sets the "api_calls" field to the value that was provided on create.
func (u *UsageLogUpsert) UpdateAPICalls() *UsageLogUpsert {
	u.SetExcluded(usagelog.FieldAPICalls)
	return u
}

// AddAPICalls adds v to the "api_calls" field.
func (u *UsageLogUpsert) AddAPICalls(v int) *UsageLogUpsert {
	u.Add(usagelog.FieldAPICalls, v)
	return u
}

// SetTotalDuration sets the "total_duration" field.
func (u *UsageLogUpsert) SetTotalDuration(v int) *UsageLogUpsert {
	u.Set(usagelog.FieldTotalDuration, v)
	return u
}

// UpdateTotalDuration sets the "total_duration" field to the value that was provided on create.
func (u *UsageLogUpsert) UpdateTotalDuration() *UsageLogUpsert {
	u.SetExcluded(usagelog.FieldTotalDuration)
	return u
}

// AddTotalDuration adds v to the "total_duration" field.
func (u *UsageLogUpsert) AddTotalDuration(v int) *UsageLogUpsert {
	u.Add(usagelog.FieldTotalDuration, v)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *UsageLogUpsert) SetUpdatedAt(v time.Time) *UsageLogUpsert {
	u.Set(usagelog.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *UsageLogUpsert) UpdateUpdatedAt() *UsageLogUpsert {
	u.SetExcluded(usagelog.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.UsageLog.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *UsageLogUpsertOne) UpdateNewValues() *UsageLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.Date(); exists {
			s.SetIgnore(usagelog.FieldDate)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(usagelog.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.UsageLog.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *UsageLogUpsertOne) Ignore() *UsageLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UsageLogUpsertOne) DoNothing() *UsageLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UsageLogCreate.OnConflict
// documentation for more info.
func (u *UsageLogUpsertOne) Update(set func(*UsageLogUpsert)) *UsageLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UsageLogUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *UsageLogUpsertOne) SetUserID(v int) *UsageLogUpsertOne {
	return u.Update(func(s *UsageLogUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *UsageLogUpsertOne) UpdateUserID() *UsageLogUpsertOne {
	return u.Update(func(s *UsageLogUpsert) {
		s.UpdateUserID()
	})
}

// SetAudioGenerations sets the "audio_generations" field.
func (u *UsageLogUpsertOne) SetAudioGenerations(v int) *UsageLogUpsertOne {
	return u.Update(func(s *UsageLogUpsert) {
		s.SetAudioGenerations(v)
	})
}

// AddAudioGenerations adds v to the "audio_generations" field.
func (u *UsageLogUpsertOne) AddAudioGenerations(v int) *UsageLogUpsertOne {
	return u.Update(func(s *UsageLogUpsert) {
		s.AddAudioGenerations(v)
	})
}

// UpdateAudioGenerations sets the "audio_generations" field to the value that was provided on create.
func (u *UsageLogUpsertOne) UpdateAudioGenerations() *UsageLogUpsertOne {
	return u.Update(func(s *UsageLogUpsert) {
		s.UpdateAudioGenerations()
	})
}

// SetAPICalls sets the "api_calls" field.
func (u *UsageLogUpsertOne) SetAPICalls(v int) *UsageLogUpsertOne {
	return u.Update(func(s *UsageLogUpsert) {
		s.SetAPICalls(v)
	})
}

// AddAPICalls adds v to the "api_calls" field.
func (u *UsageLogUpsertOne) AddAPICalls(v int) *UsageLogUpsertOne {
	return u.Update(func(s *UsageLogUpsert) {
		s.AddAPICalls(v)
	})
}

// UpdateAPICalls sets the "api_calls" field to the value that was provided on create.
func (u *UsageLogUpsertOne) UpdateAPICalls() *UsageLogUpsertOne {
	return u.Update(func(s *UsageLogUpsert) {
		s.UpdateAPICalls()
	})
}

// SetTotalDuration sets the "total_duration" field.
func (u *UsageLogUpsertOne) SetTotalDuration(v int) *UsageLogUpsertOne {
	return u.Update(func(s *UsageLogUpsert) {
		s.SetTotalDuration(v)
	})
}

// AddTotalDuration adds v to the "total_duration" field.
func (u *UsageLogUpsertOne) AddTotalDuration(v int) *UsageLogUpsertOne {
	return u.Update(func(s *UsageLogUpsert) {
		s.AddTotalDuration(v)
	})
}

// UpdateTotalDuration sets the "total_duration" field to the value that was provided on create.
func (u *UsageLogUpsertOne) UpdateTotalDuration() *UsageLogUpsertOne {
	return u.Update(func(s *UsageLogUpsert) {
		s.UpdateTotalDuration()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *UsageLogUpsertOne) SetUpdatedAt(v time.Time) *UsageLogUpsertOne {
	return u.Update(func(s *UsageLogUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *UsageLogUpsertOne) UpdateUpdatedAt() *UsageLogUpsertOne {
	return u.Update(func(s *UsageLogUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *UsageLogUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UsageLogCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UsageLogUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *UsageLogUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *UsageLogUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// UsageLogCreateBulk is the builder for creating many UsageLog entities in bulk.
type UsageLogCreateBulk struct {
	config
	err      error
	builders []*UsageLogCreate
	conflict []sql.ConflictOption
}

// Save creates the UsageLog entities in the database.
func (_c *UsageLogCreateBulk) Save(ctx context.Context) ([]*UsageLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UsageLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UsageLogMutation)
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
func (_c *UsageLogCreateBulk) SaveX(ctx context.Context) []*UsageLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UsageLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UsageLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.UsageLog.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UsageLogUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *UsageLogCreateBulk) OnConflict(opts ...sql.ConflictOption) *UsageLogUpsertBulk {
	_c.conflict = opts
	return &UsageLogUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.UsageLog.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UsageLogCreateBulk) OnConflictColumns(columns ...string) *UsageLogUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UsageLogUpsertBulk{
		create: _c,
	}
}

// UsageLogUpsertBulk is the builder for "upsert"-ing
// a bulk of UsageLog nodes.
type UsageLogUpsertBulk struct {
	create *UsageLogCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.UsageLog.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *UsageLogUpsertBulk) UpdateNewValues() *UsageLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.Date(); exists {
				s.SetIgnore(usagelog.FieldDate)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(usagelog.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.UsageLog.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *UsageLogUpsertBulk) Ignore() *UsageLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UsageLogUpsertBulk) DoNothing() *UsageLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UsageLogCreateBulk.OnConflict
// documentation for more info.
func (u *UsageLogUpsertBulk) Update(set func(*UsageLogUpsert)) *UsageLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UsageLogUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *UsageLogUpsertBulk) SetUserID(v int) *UsageLogUpsertBulk {
	return u.Update(func(s *UsageLogUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *UsageLogUpsertBulk) UpdateUserID() *UsageLogUpsertBulk {
	return u.Update(func(s *UsageLogUpsert) {
		s.UpdateUserID()
	})
}

// SetAudioGenerations sets the "audio_generations" field.
func (u *UsageLogUpsertBulk) SetAudioGenerations(v int) *UsageLogUpsertBulk {
	return u.Update(func(s *UsageLogUpsert) {
		s.SetAudioGenerations(v)
	})
}

// AddAudioGenerations adds v to the "audio_generations" field.
func (u *UsageLogUpsertBulk) AddAudioGenerations(v int) *UsageLogUpsertBulk {
	return u.Update(func(s *UsageLogUpsert) {
		s.AddAudioGenerations(v)
	})
}

// UpdateAudioGenerations sets the "audio_generations" field to the value that was provided on create.
func (u *UsageLogUpsertBulk) UpdateAudioGenerations() *UsageLogUpsertBulk {
	return u.Update(func(s *UsageLogUpsert) {
		s.UpdateAudioGenerations()
	})
}

// SetAPICalls sets the "api_calls" field.
func (u *UsageLogUpsertBulk) SetAPICalls(v int) *UsageLogUpsertBulk {
	return u.Update(func(s *UsageLogUpsert) {
		s.SetAPICalls(v)
	})
}

// AddAPICalls adds v to the "api_calls" field.
func (u *UsageLogUpsertBulk) AddAPICalls(v int) *UsageLogUpsertBulk {
	return u.Update(func(s *UsageLogUpsert) {
		s.AddAPICalls(v)
	})
}

// UpdateAPICalls sets the "api_calls" field to the value that was provided on create.
func (u *UsageLogUpsertBulk) UpdateAPICalls() *UsageLogUpsertBulk {
	return u.Update(func(s *UsageLogUpsert) {
		s.UpdateAPICalls()
	})
}

// SetTotalDuration sets the "total_duration" field.
func (u *UsageLogUpsertBulk) SetTotalDuration(v int) *UsageLogUpsertBulk {
	return u.Update(func(s *UsageLogUpsert) {
		s.SetTotalDuration(v)
	})
}

// AddTotalDuration adds v to the "total_duration" field.
func (u *UsageLogUpsertBulk) AddTotalDuration(v int) *UsageLogUpsertBulk {
	return u.Update(func(s *UsageLogUpsert) {
		s.AddTotalDuration(v)
	})
}

// UpdateTotalDuration sets the "total_duration" field to the value that was provided on create.
func (u *UsageLogUpsertBulk) UpdateTotalDuration() *UsageLogUpsertBulk {
	return u.Update(func(s *UsageLogUpsert) {
		s.UpdateTotalDuration()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *UsageLogUpsertBulk) SetUpdatedAt(v time.Time) *UsageLogUpsertBulk {
	return u.Update(func(s *UsageLogUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *UsageLogUpsertBulk) UpdateUpdatedAt() *UsageLogUpsertBulk {
	return u.Update(func(s *UsageLogUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *UsageLogUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the UsageLogCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UsageLogCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UsageLogUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
