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
	"github.com/audiomint/backend/ent/predicate"
	"github.com/audiomint/backend/ent/usagelog"
	"github.com/audiomint/backend/ent/user"
)

// UsageLogUpdate is the builder for updating UsageLog entities.
type UsageLogUpdate struct {
	config
	hooks    []Hook
	mutation *UsageLogMutation
}

// Where appends a list predicates to the UsageLogUpdate builder.
func (_u *UsageLogUpdate) Where(ps ...predicate.UsageLog) *UsageLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *UsageLogUpdate) SetUserID(v int) *UsageLogUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *UsageLogUpdate) SetNillableUserID(v *int) *UsageLogUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetAudioGenerations sets the "audio_generations" field.
func (_u *UsageLogUpdate) SetAudioGenerations(v int) *UsageLogUpdate {
	_u.mutation.ResetAudioGenerations()
	_u.mutation.SetAudioGenerations(v)
	return _u
}

// SetNillableAudioGenerations sets the "audio_generations" field if the given value is not nil.
func (_u *UsageLogUpdate) SetNillableAudioGenerations(v *int) *UsageLogUpdate {
	if v != nil {
		_u.SetAudioGenerations(*v)
	}
	return _u
}

// AddAudioGenerations adds value to the "audio_generations" field.
func (_u *UsageLogUpdate) AddAudioGenerations(v int) *UsageLogUpdate {
	_u.mutation.AddAudioGenerations(v)
	return _u
}

// SetAPICalls sets the "api_calls" field.
func (_u *UsageLogUpdate) SetAPICalls(v int) *UsageLogUpdate {
	_u.mutation.ResetAPICalls()
	_u.mutation.SetAPICalls(v)
	return _u
}

// SetNillableAPICalls sets the "api_calls" field if the given value is not nil.
func (_u *UsageLogUpdate) SetNillableAPICalls(v *int) *UsageLogUpdate {
	if v != nil {
		_u.SetAPICalls(*v)
	}
	return _u
}

// AddAPICalls adds value to the "api_calls" field.
func (_u *UsageLogUpdate) AddAPICalls(v int) *UsageLogUpdate {
	_u.mutation.AddAPICalls(v)
	return _u
}

// SetTotalDuration sets the "total_duration" field.
func (_u *UsageLogUpdate) SetTotalDuration(v int) *UsageLogUpdate {
	_u.mutation.ResetTotalDuration()
	_u.mutation.SetTotalDuration(v)
	return _u
}

// SetNillableTotalDuration sets the "total_duration" field if the given value is not nil.
func (_u *UsageLogUpdate) SetNillableTotalDuration(v *int) *UsageLogUpdate {
	if v != nil {
		_u.SetTotalDuration(*v)
	}
	return _u
}

// AddTotalDuration adds value to the "total_duration" field.
func (_u *UsageLogUpdate) AddTotalDuration(v int) *UsageLogUpdate {
	_u.mutation.AddTotalDuration(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UsageLogUpdate) SetUpdatedAt(v time.Time) *UsageLogUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *UsageLogUpdate) SetUser(v *User) *UsageLogUpdate {
	return _u.SetUserID(v.ID)
}

// Mutation returns the UsageLogMutation object of the builder.
func (_u *UsageLogUpdate) Mutation() *UsageLogMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *UsageLogUpdate) ClearUser() *UsageLogUpdate {
	_u.mutation.ClearUser()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UsageLogUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UsageLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UsageLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UsageLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UsageLogUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := usagelog.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UsageLogUpdate) check() error {
	if v, ok := _u.mutation.AudioGenerations(); ok {
		if err := usagelog.AudioGenerationsValidator(v); err != nil {
			return &ValidationError{Name: "audio_generations", err: fmt.Errorf(`ent: validator failed for field "UsageLog.audio_generations": %w`, err)}
		}
	}
	if v, ok := _u.mutation.APICalls(); ok {
		if err := usagelog.APICallsValidator(v); err != nil {
			return &ValidationError{Name: "api_calls", err: fmt.Errorf(`ent: validator failed for field "UsageLog.api_calls": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalDuration(); ok {
		if err := usagelog.TotalDurationValidator(v); err != nil {
			return &ValidationError{Name: "total_duration", err: fmt.Errorf(`ent: validator failed for field "UsageLog.total_duration": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "UsageLog.user"`)
	}
	return nil
}

func (_u *UsageLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(usagelog.Table, usagelog.Columns, sqlgraph.NewFieldSpec(usagelog.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AudioGenerations(); ok {
		_spec.SetField(usagelog.FieldAudioGenerations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAudioGenerations(); ok {
		_spec.AddField(usagelog.FieldAudioGenerations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.APICalls(); ok {
		_spec.SetField(usagelog.FieldAPICalls, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAPICalls(); ok {
		_spec.AddField(usagelog.FieldAPICalls, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalDuration(); ok {
		_spec.SetField(usagelog.FieldTotalDuration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalDuration(); ok {
		_spec.AddField(usagelog.FieldTotalDuration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(usagelog.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UserCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{usagelog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UsageLogUpdateOne is the builder for updating a single UsageLog entity.
type UsageLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UsageLogMutation
}

// SetUserID sets the "user_id" field.
func (_u *UsageLogUpdateOne) SetUserID(v int) *UsageLogUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *UsageLogUpdateOne) SetNillableUserID(v *int) *UsageLogUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetAudioGenerations sets the "audio_generations" field.
func (_u *UsageLogUpdateOne) SetAudioGenerations(v int) *UsageLogUpdateOne {
	_u.mutation.ResetAudioGenerations()
	_u.mutation.SetAudioGenerations(v)
	return _u
}

// SetNillableAudioGenerations sets the "audio_generations" field if the given value is not nil.
func (_u *UsageLogUpdateOne) SetNillableAudioGenerations(v *int) *UsageLogUpdateOne {
	if v != nil {
		_u.SetAudioGenerations(*v)
	}
	return _u
}

// AddAudioGenerations adds value to the "audio_generations" field.
func (_u *UsageLogUpdateOne) AddAudioGenerations(v int) *UsageLogUpdateOne {
	_u.mutation.AddAudioGenerations(v)
	return _u
}

// SetAPICalls sets the "api_calls" field.
func (_u *UsageLogUpdateOne) SetAPICalls(v int) *UsageLogUpdateOne {
	_u.mutation.ResetAPICalls()
	_u.mutation.SetAPICalls(v)
	return _u
}

// SetNillableAPICalls sets the "api_calls" field if the given value is not nil.
func (_u *UsageLogUpdateOne) SetNillableAPICalls(v *int) *UsageLogUpdateOne {
	if v != nil {
		_u.SetAPICalls(*v)
	}
	return _u
}

// AddAPICalls adds value to the "api_calls" field.
func (_u *UsageLogUpdateOne) AddAPICalls(v int) *UsageLogUpdateOne {
	_u.mutation.AddAPICalls(v)
	return _u
}

// SetTotalDuration sets the "total_duration" field.
func (_u *UsageLogUpdateOne) SetTotalDuration(v int) *UsageLogUpdateOne {
	_u.mutation.ResetTotalDuration()
	_u.mutation.SetTotalDuration(v)
	return _u
}

// SetNillableTotalDuration sets the "total_duration" field if the given value is not nil.
func (_u *UsageLogUpdateOne) SetNillableTotalDuration(v *int) *UsageLogUpdateOne {
	if v != nil {
		_u.SetTotalDuration(*v)
	}
	return _u
}

// AddTotalDuration adds value to the "total_duration" field.
func (_u *UsageLogUpdateOne) AddTotalDuration(v int) *UsageLogUpdateOne {
	_u.mutation.AddTotalDuration(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UsageLogUpdateOne) SetUpdatedAt(v time.Time) *UsageLogUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *UsageLogUpdateOne) SetUser(v *User) *UsageLogUpdateOne {
	return _u.SetUserID(v.ID)
}

// Mutation returns the UsageLogMutation object of the builder.
func (_u *UsageLogUpdateOne) Mutation() *UsageLogMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *UsageLogUpdateOne) ClearUser() *UsageLogUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// Where appends a list predicates to the UsageLogUpdate builder.
func (_u *UsageLogUpdateOne) Where(ps ...predicate.UsageLog) *UsageLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UsageLogUpdateOne) Select(field string, fields ...string) *UsageLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UsageLog entity.
func (_u *UsageLogUpdateOne) Save(ctx context.Context) (*UsageLog, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UsageLogUpdateOne) SaveX(ctx context.Context) *UsageLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UsageLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UsageLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UsageLogUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := usagelog.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UsageLogUpdateOne) check() error {
	if v, ok := _u.mutation.AudioGenerations(); ok {
		if err := usagelog.AudioGenerationsValidator(v); err != nil {
			return &ValidationError{Name: "audio_generations", err: fmt.Errorf(`ent: validator failed for field "UsageLog.audio_generations": %w`, err)}
		}
	}
	if v, ok := _u.mutation.APICalls(); ok {
		if err := usagelog.APICallsValidator(v); err != nil {
			return &ValidationError{Name: "api_calls", err: fmt.Errorf(`ent: validator failed for field "UsageLog.api_calls": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalDuration(); ok {
		if err := usagelog.TotalDurationValidator(v); err != nil {
			return &ValidationError{Name: "total_duration", err: fmt.Errorf(`ent: validator failed for field "UsageLog.total_duration": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "UsageLog.user"`)
	}
	return nil
}

func (_u *UsageLogUpdateOne) sqlSave(ctx context.Context) (_node *UsageLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(usagelog.Table, usagelog.Columns, sqlgraph.NewFieldSpec(usagelog.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UsageLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, usagelog.FieldID)
		for _, f := range fields {
			if !usagelog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != usagelog.FieldID {
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
	if value, ok := _u.mutation.AudioGenerations(); ok {
		_spec.SetField(usagelog.FieldAudioGenerations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAudioGenerations(); ok {
		_spec.AddField(usagelog.FieldAudioGenerations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.APICalls(); ok {
		_spec.SetField(usagelog.FieldAPICalls, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAPICalls(); ok {
		_spec.AddField(usagelog.FieldAPICalls, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalDuration(); ok {
		_spec.SetField(usagelog.FieldTotalDuration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalDuration(); ok {
		_spec.AddField(usagelog.FieldTotalDuration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(usagelog.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UserCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &UsageLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{usagelog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
