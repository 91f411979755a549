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
	"github.com/audiomint/backend/ent/plan"
	"github.com/audiomint/backend/ent/subscription"
)

// PlanCreate is the builder for creating a Plan entity.
type PlanCreate struct {
	config
	mutation *PlanMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetName sets the "name" field.
func (_c *PlanCreate) SetName(v string) *PlanCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDisplayName sets the "display_name" field.
func (_c *PlanCreate) SetDisplayName(v string) *PlanCreate {
	_c.mutation.SetDisplayName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *PlanCreate) SetDescription(v string) *PlanCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *PlanCreate) SetNillableDescription(v *string) *PlanCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetPrice sets the "price" field.
func (_c *PlanCreate) SetPrice(v float64) *PlanCreate {
	_c.mutation.SetPrice(v)
	return _c
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_c *PlanCreate) SetNillablePrice(v *float64) *PlanCreate {
	if v != nil {
		_c.SetPrice(*v)
	}
	return _c
}

// SetDailyAudioLimit sets the "daily_audio_limit" field.
func (_c *PlanCreate) SetDailyAudioLimit(v int) *PlanCreate {
	_c.mutation.SetDailyAudioLimit(v)
	return _c
}

// SetNillableDailyAudioLimit sets the "daily_audio_limit" field if the given value is not nil.
func (_c *PlanCreate) SetNillableDailyAudioLimit(v *int) *PlanCreate {
	if v != nil {
		_c.SetDailyAudioLimit(*v)
	}
	return _c
}

// SetMaxAudioDuration sets the "max_audio_duration" field.
func (_c *PlanCreate) SetMaxAudioDuration(v int) *PlanCreate {
	_c.mutation.SetMaxAudioDuration(v)
	return _c
}

// SetNillableMaxAudioDuration sets the "max_audio_duration" field if the given value is not nil.
func (_c *PlanCreate) SetNillableMaxAudioDuration(v *int) *PlanCreate {
	if v != nil {
		_c.SetMaxAudioDuration(*v)
	}
	return _c
}

// SetMaxSteps sets the "max_steps" field.
func (_c *PlanCreate) SetMaxSteps(v int) *PlanCreate {
	_c.mutation.SetMaxSteps(v)
	return _c
}

// SetNillableMaxSteps sets the "max_steps" field if the given value is not nil.
func (_c *PlanCreate) SetNillableMaxSteps(v *int) *PlanCreate {
	if v != nil {
		_c.SetMaxSteps(*v)
	}
	return _c
}

// SetCanUseAPI sets the "can_use_api" field.
func (_c *PlanCreate) SetCanUseAPI(v bool) *PlanCreate {
	_c.mutation.SetCanUseAPI(v)
	return _c
}

// SetNillableCanUseAPI sets the "can_use_api" field if the given value is not nil.
func (_c *PlanCreate) SetNillableCanUseAPI(v *bool) *PlanCreate {
	if v != nil {
		_c.SetCanUseAPI(*v)
	}
	return _c
}

// SetCanDownload sets the "can_download" field.
func (_c *PlanCreate) SetCanDownload(v bool) *PlanCreate {
	_c.mutation.SetCanDownload(v)
	return _c
}

// SetNillableCanDownload sets the "can_download" field if the given value is not nil.
func (_c *PlanCreate) SetNillableCanDownload(v *bool) *PlanCreate {
	if v != nil {
		_c.SetCanDownload(*v)
	}
	return _c
}

// SetCanEditAudio sets the "can_edit_audio" field.
func (_c *PlanCreate) SetCanEditAudio(v bool) *PlanCreate {
	_c.mutation.SetCanEditAudio(v)
	return _c
}

// SetNillableCanEditAudio sets the "can_edit_audio" field if the given value is not nil.
func (_c *PlanCreate) SetNillableCanEditAudio(v *bool) *PlanCreate {
	if v != nil {
		_c.SetCanEditAudio(*v)
	}
	return _c
}

// SetStripePriceID sets the "stripe_price_id" field.
func (_c *PlanCreate) SetStripePriceID(v string) *PlanCreate {
	_c.mutation.SetStripePriceID(v)
	return _c
}

// SetNillableStripePriceID sets the "stripe_price_id" field if the given value is not nil.
func (_c *PlanCreate) SetNillableStripePriceID(v *string) *PlanCreate {
	if v != nil {
		_c.SetStripePriceID(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *PlanCreate) SetIsActive(v bool) *PlanCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *PlanCreate) SetNillableIsActive(v *bool) *PlanCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetIsPopular sets the "is_popular" field.
func (_c *PlanCreate) SetIsPopular(v bool) *PlanCreate {
	_c.mutation.SetIsPopular(v)
	return _c
}

// SetNillableIsPopular sets the "is_popular" field if the given value is not nil.
func (_c *PlanCreate) SetNillableIsPopular(v *bool) *PlanCreate {
	if v != nil {
		_c.SetIsPopular(*v)
	}
	return _c
}

// SetSortOrder sets the "sort_order" field.
func (_c *PlanCreate) SetSortOrder(v int) *PlanCreate {
	_c.mutation.SetSortOrder(v)
	return _c
}

// SetNillableSortOrder sets the "sort_order" field if the given value is not nil.
func (_c *PlanCreate) SetNillableSortOrder(v *int) *PlanCreate {
	if v != nil {
		_c.SetSortOrder(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PlanCreate) SetCreatedAt(v time.Time) *PlanCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PlanCreate) SetNillableCreatedAt(v *time.Time) *PlanCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PlanCreate) SetUpdatedAt(v time.Time) *PlanCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PlanCreate) SetNillableUpdatedAt(v *time.Time) *PlanCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// AddSubscriptionIDs adds the "subscriptions" edge to the Subscription entity by IDs.
func (_c *PlanCreate) AddSubscriptionIDs(ids ...int) *PlanCreate {
	_c.mutation.AddSubscriptionIDs(ids...)
	return _c
}

// AddSubscriptions adds the "subscriptions" edges to the Subscription entity.
func (_c *PlanCreate) AddSubscriptions(v ...*Subscription) *PlanCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSubscriptionIDs(ids...)
}

// Mutation returns the PlanMutation object of the builder.
func (_c *PlanCreate) Mutation() *PlanMutation {
	return _c.mutation
}

// Save creates the Plan in the database.
func (_c *PlanCreate) Save(ctx context.Context) (*Plan, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PlanCreate) SaveX(ctx context.Context) *Plan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlanCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlanCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PlanCreate) defaults() {
	if _, ok := _c.mutation.Description(); !ok {
		v := plan.DefaultDescription
		_c.mutation.SetDescription(v)
	}
	if _, ok := _c.mutation.Price(); !ok {
		v := plan.DefaultPrice
		_c.mutation.SetPrice(v)
	}
	if _, ok := _c.mutation.DailyAudioLimit(); !ok {
		v := plan.DefaultDailyAudioLimit
		_c.mutation.SetDailyAudioLimit(v)
	}
	if _, ok := _c.mutation.MaxAudioDuration(); !ok {
		v := plan.DefaultMaxAudioDuration
		_c.mutation.SetMaxAudioDuration(v)
	}
	if _, ok := _c.mutation.MaxSteps(); !ok {
		v := plan.DefaultMaxSteps
		_c.mutation.SetMaxSteps(v)
	}
	if _, ok := _c.mutation.CanUseAPI(); !ok {
		v := plan.DefaultCanUseAPI
		_c.mutation.SetCanUseAPI(v)
	}
	if _, ok := _c.mutation.CanDownload(); !ok {
		v := plan.DefaultCanDownload
		_c.mutation.SetCanDownload(v)
	}
	if _, ok := _c.mutation.CanEditAudio(); !ok {
		v := plan.DefaultCanEditAudio
		_c.mutation.SetCanEditAudio(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := plan.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.IsPopular(); !ok {
		v := plan.DefaultIsPopular
		_c.mutation.SetIsPopular(v)
	}
	if _, ok := _c.mutation.SortOrder(); !ok {
		v := plan.DefaultSortOrder
		_c.mutation.SetSortOrder(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := plan.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := plan.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PlanCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Plan.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := plan.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Plan.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DisplayName(); !ok {
		return &ValidationError{Name: "display_name", err: errors.New(`ent: missing required field "Plan.display_name"`)}
	}
	if v, ok := _c.mutation.DisplayName(); ok {
		if err := plan.DisplayNameValidator(v); err != nil {
			return &ValidationError{Name: "display_name", err: fmt.Errorf(`ent: validator failed for field "Plan.display_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Plan.description"`)}
	}
	if _, ok := _c.mutation.Price(); !ok {
		return &ValidationError{Name: "price", err: errors.New(`ent: missing required field "Plan.price"`)}
	}
	if v, ok := _c.mutation.Price(); ok {
		if err := plan.PriceValidator(v); err != nil {
			return &ValidationError{Name: "price", err: fmt.Errorf(`ent: validator failed for field "Plan.price": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DailyAudioLimit(); !ok {
		return &ValidationError{Name: "daily_audio_limit", err: errors.New(`ent: missing required field "Plan.daily_audio_limit"`)}
	}
	if v, ok := _c.mutation.DailyAudioLimit(); ok {
		if err := plan.DailyAudioLimitValidator(v); err != nil {
			return &ValidationError{Name: "daily_audio_limit", err: fmt.Errorf(`ent: validator failed for field "Plan.daily_audio_limit": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MaxAudioDuration(); !ok {
		return &ValidationError{Name: "max_audio_duration", err: errors.New(`ent: missing required field "Plan.max_audio_duration"`)}
	}
	if v, ok := _c.mutation.MaxAudioDuration(); ok {
		if err := plan.MaxAudioDurationValidator(v); err != nil {
			return &ValidationError{Name: "max_audio_duration", err: fmt.Errorf(`ent: validator failed for field "Plan.max_audio_duration": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MaxSteps(); !ok {
		return &ValidationError{Name: "max_steps", err: errors.New(`ent: missing required field "Plan.max_steps"`)}
	}
	if v, ok := _c.mutation.MaxSteps(); ok {
		if err := plan.MaxStepsValidator(v); err != nil {
			return &ValidationError{Name: "max_steps", err: fmt.Errorf(`ent: validator failed for field "Plan.max_steps": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CanUseAPI(); !ok {
		return &ValidationError{Name: "can_use_api", err: errors.New(`ent: missing required field "Plan.can_use_api"`)}
	}
	if _, ok := _c.mutation.CanDownload(); !ok {
		return &ValidationError{Name: "can_download", err: errors.New(`ent: missing required field "Plan.can_download"`)}
	}
	if _, ok := _c.mutation.CanEditAudio(); !ok {
		return &ValidationError{Name: "can_edit_audio", err: errors.New(`ent: missing required field "Plan.can_edit_audio"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "Plan.is_active"`)}
	}
	if _, ok := _c.mutation.IsPopular(); !ok {
		return &ValidationError{Name: "is_popular", err: errors.New(`ent: missing required field "Plan.is_popular"`)}
	}
	if _, ok := _c.mutation.SortOrder(); !ok {
		return &ValidationError{Name: "sort_order", err: errors.New(`ent: missing required field "Plan.sort_order"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Plan.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Plan.updated_at"`)}
	}
	return nil
}

func (_c *PlanCreate) sqlSave(ctx context.Context) (*Plan, error) {
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

func (_c *PlanCreate) createSpec() (*Plan, *sqlgraph.CreateSpec) {
	var (
		_node = &Plan{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(plan.Table, sqlgraph.NewFieldSpec(plan.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(plan.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.DisplayName(); ok {
		_spec.SetField(plan.FieldDisplayName, field.TypeString, value)
		_node.DisplayName = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(plan.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Price(); ok {
		_spec.SetField(plan.FieldPrice, field.TypeFloat64, value)
		_node.Price = value
	}
	if value, ok := _c.mutation.DailyAudioLimit(); ok {
		_spec.SetField(plan.FieldDailyAudioLimit, field.TypeInt, value)
		_node.DailyAudioLimit = value
	}
	if value, ok := _c.mutation.MaxAudioDuration(); ok {
		_spec.SetField(plan.FieldMaxAudioDuration, field.TypeInt, value)
		_node.MaxAudioDuration = value
	}
	if value, ok := _c.mutation.MaxSteps(); ok {
		_spec.SetField(plan.FieldMaxSteps, field.TypeInt, value)
		_node.MaxSteps = value
	}
	if value, ok := _c.mutation.CanUseAPI(); ok {
		_spec.SetField(plan.FieldCanUseAPI, field.TypeBool, value)
		_node.CanUseAPI = value
	}
	if value, ok := _c.mutation.CanDownload(); ok {
		_spec.SetField(plan.FieldCanDownload, field.TypeBool, value)
		_node.CanDownload = value
	}
	if value, ok := _c.mutation.CanEditAudio(); ok {
		_spec.SetField(plan.FieldCanEditAudio, field.TypeBool, value)
		_node.CanEditAudio = value
	}
	if value, ok := _c.mutation.StripePriceID(); ok {
		_spec.SetField(plan.FieldStripePriceID, field.TypeString, value)
		_node.StripePriceID = &value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(plan.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.IsPopular(); ok {
		_spec.SetField(plan.FieldIsPopular, field.TypeBool, value)
		_node.IsPopular = value
	}
	if value, ok := _c.mutation.SortOrder(); ok {
		_spec.SetField(plan.FieldSortOrder, field.TypeInt, value)
		_node.SortOrder = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(plan.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(plan.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.SubscriptionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   plan.SubscriptionsTable,
			Columns: []string{plan.SubscriptionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subscription.FieldID, field.TypeInt),
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
//	client.Plan.Create().
//		SetName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PlanUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *PlanCreate) OnConflict(opts ...sql.ConflictOption) *PlanUpsertOne {
	_c.conflict = opts
	return &PlanUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Plan.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PlanCreate) OnConflictColumns(columns ...string) *PlanUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PlanUpsertOne{
		create: _c,
	}
}

type (
	// PlanUpsertOne is the builder for "upsert"-ing
	//  one Plan node.
	PlanUpsertOne struct {
		create *PlanCreate
	}

	// PlanUpsert is the "OnConflict" setter.
	PlanUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *PlanUpsert) SetName(v string) *PlanUpsert {
	u.Set(plan.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PlanUpsert) UpdateName() *PlanUpsert {
	u.SetExcluded(plan.FieldName)
	return u
}

// SetDisplayName sets the "display_name" field.
func (u *PlanUpsert) SetDisplayName(v string) *PlanUpsert {
	u.Set(plan.FieldDisplayName, v)
	return u
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *PlanUpsert) UpdateDisplayName() *PlanUpsert {
	u.SetExcluded(plan.FieldDisplayName)
	return u
}

// SetDescription sets the "description" field.
func (u *PlanUpsert) SetDescription(v string) *PlanUpsert {
	u.Set(plan.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *PlanUpsert) UpdateDescription() *PlanUpsert {
	u.SetExcluded(plan.FieldDescription)
	return u
}

// SetPrice sets the "price" field.
func (u *PlanUpsert) SetPrice(v float64) *PlanUpsert {
	u.Set(plan.FieldPrice, v)
	return u
}

// UpdatePrice sets the "price" field to the value that was provided on create.
func (u *PlanUpsert) UpdatePrice() *PlanUpsert {
	u.SetExcluded(plan.FieldPrice)
	return u
}

// AddPrice adds v to the "price" field.
func (u *PlanUpsert) AddPrice(v float64) *PlanUpsert {
	u.Add(plan.FieldPrice, v)
	return u
}

// SetDailyAudioLimit sets the "daily_audio_limit" field.
func (u *PlanUpsert) SetDailyAudioLimit(v int) *PlanUpsert {
	u.Set(plan.FieldDailyAudioLimit, v)
	return u
}

// UpdateDailyAudioLimit sets the "daily_audio_limit" field to the value that was provided on create.
func (u *PlanUpsert) UpdateDailyAudioLimit() *PlanUpsert {
	u.SetExcluded(plan.FieldDailyAudioLimit)
	return u
}

// AddDailyAudioLimit adds v to the "daily_audio_limit" field.
func (u *PlanUpsert) AddDailyAudioLimit(v int) *PlanUpsert {
	u.Add(plan.FieldDailyAudioLimit, v)
	return u
}

// SetMaxAudioDuration sets the "max_audio_duration" field.
func (u *PlanUpsert) SetMaxAudioDuration(v int) *PlanUpsert {
	u.Set(plan.FieldMaxAudioDuration, v)
	return u
}

// UpdateMaxAudioDuration sets the "max_audio_duration" field to the value that was provided on create.
func (u *PlanUpsert) UpdateMaxAudioDuration() *PlanUpsert {
	u.SetExcluded(plan.FieldMaxAudioDuration)
	return u
}

// AddMaxAudioDuration adds v to the "max_audio_duration" field.
func (u *PlanUpsert) AddMaxAudioDuration(v int) *PlanUpsert {
	u.Add(plan.FieldMaxAudioDuration, v)
	return u
}

// SetMaxSteps sets the "max_steps" field.
func (u *PlanUpsert) SetMaxSteps(v int) *PlanUpsert {
	u.Set(plan.FieldMaxSteps, v)
	return u
}

// UpdateMaxSteps sets the "max_steps" field to the value that was provided on create.
func (u *PlanUpsert) UpdateMaxSteps() *PlanUpsert {
	u.SetExcluded(plan.FieldMaxSteps)
	return u
}

// AddMaxSteps adds v to the "max_steps" field.
func (u *PlanUpsert) AddMaxSteps(v int) *PlanUpsert {
	u.Add(plan.FieldMaxSteps, v)
	return u
}

// SetCanUseAPI sets the "can_use_api" field.
func (u *PlanUpsert) SetCanUseAPI(v bool) *PlanUpsert {
	u.Set(plan.FieldCanUseAPI, v)
	return u
}

// UpdateCanUseAPI sets the "can_use_api" field to the value that was provided on create.
func (u *PlanUpsert) UpdateCanUseAPI() *PlanUpsert {
	u.SetExcluded(plan.FieldCanUseAPI)
	return u
}

// SetCanDownload sets the "can_download" field.
func (u *PlanUpsert) SetCanDownload(v bool) *PlanUpsert {
	u.Set(plan.FieldCanDownload, v)
	return u
}

// UpdateCanDownload sets the "can_download" field to the value that was provided on create.
func (u *PlanUpsert) UpdateCanDownload() *PlanUpsert {
	u.SetExcluded(plan.FieldCanDownload)
	return u
}

// SetCanEditAudio sets the "can_edit_audio" field.
func (u *PlanUpsert) SetCanEditAudio(v bool) *PlanUpsert {
	u.Set(plan.FieldCanEditAudio, v)
	return u
}

// UpdateCanEditAudio sets the "can_edit_audio" field to the value that was provided on create.
func (u *PlanUpsert) UpdateCanEditAudio() *PlanUpsert {
	u.SetExcluded(plan.FieldCanEditAudio)
	return u
}

// SetStripePriceID sets the "stripe_price_id" field.
func (u *PlanUpsert) SetStripePriceID(v string) *PlanUpsert {
	u.Set(plan.FieldStripePriceID, v)
	return u
}

// UpdateStripePriceID sets the "stripe_price_id" field to the value that was provided on create.
func (u *PlanUpsert) UpdateStripePriceID() *PlanUpsert {
	u.SetExcluded(plan.FieldStripePriceID)
	return u
}

// ClearStripePriceID clears the value of the "stripe_price_id" field.
func (u *PlanUpsert) ClearStripePriceID() *PlanUpsert {
	u.SetNull(plan.FieldStripePriceID)
	return u
}

// SetIsActive sets the "is_active" field.
func (u *PlanUpsert) SetIsActive(v bool) *PlanUpsert {
	u.Set(plan.FieldIsActive, v)
	return u
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *PlanUpsert) UpdateIsActive() *PlanUpsert {
	u.SetExcluded(plan.FieldIsActive)
	return u
}

// SetIsPopular sets the "is_popular" field.
func (u *PlanUpsert) SetIsPopular(v bool) *PlanUpsert {
	u.Set(plan.FieldIsPopular, v)
	return u
}

// UpdateIsPopular sets the "is_popular" field to the value that was provided on create.
func (u *PlanUpsert) UpdateIsPopular() *PlanUpsert {
	u.SetExcluded(plan.FieldIsPopular)
	return u
}

// SetSortOrder sets the "sort_order" field.
func (u *PlanUpsert) SetSortOrder(v int) *PlanUpsert {
	u.Set(plan.FieldSortOrder, v)
	return u
}

// UpdateSortOrder sets the "sort_order" field to the value that was provided on create.
func (u *PlanUpsert) UpdateSortOrder() *PlanUpsert {
	u.SetExcluded(plan.FieldSortOrder)
	return u
}

// AddSortOrder adds v to the "sort_order" field.
func (u *PlanUpsert) AddSortOrder(v int) *PlanUpsert {
	u.Add(plan.FieldSortOrder, v)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PlanUpsert) SetUpdatedAt(v time.Time) *PlanUpsert {
	u.Set(plan.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PlanUpsert) UpdateUpdatedAt() *PlanUpsert {
	u.SetExcluded(plan.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Plan.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *PlanUpsertOne) UpdateNewValues() *PlanUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(plan.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Plan.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PlanUpsertOne) Ignore() *PlanUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PlanUpsertOne) DoNothing() *PlanUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PlanCreate.OnConflict
// documentation for more info.
func (u *PlanUpsertOne) Update(set func(*PlanUpsert)) *PlanUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PlanUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *PlanUpsertOne) SetName(v string) *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PlanUpsertOne) UpdateName() *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateName()
	})
}

// SetDisplayName sets the "display_name" field.
func (u *PlanUpsertOne) SetDisplayName(v string) *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.SetDisplayName(v)
	})
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *PlanUpsertOne) UpdateDisplayName() *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateDisplayName()
	})
}

// SetDescription sets the "description" field.
func (u *PlanUpsertOne) SetDescription(v string) *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *PlanUpsertOne) UpdateDescription() *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateDescription()
	})
}

// SetPrice sets the "price" field.
func (u *PlanUpsertOne) SetPrice(v float64) *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.SetPrice(v)
	})
}

// AddPrice adds v to the "price" field.
func (u *PlanUpsertOne) AddPrice(v float64) *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.AddPrice(v)
	})
}

// UpdatePrice sets the "price" field to the value that was provided on create.
func (u *PlanUpsertOne) UpdatePrice() *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.UpdatePrice()
	})
}

// SetDailyAudioLimit sets the "daily_audio_limit" field.
func (u *PlanUpsertOne) SetDailyAudioLimit(v int) *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.SetDailyAudioLimit(v)
	})
}

// AddDailyAudioLimit adds v to the "daily_audio_limit" field.
func (u *PlanUpsertOne) AddDailyAudioLimit(v int) *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.AddDailyAudioLimit(v)
	})
}

// UpdateDailyAudioLimit sets the "daily_audio_limit" field to the value that was provided on create.
func (u *PlanUpsertOne) UpdateDailyAudioLimit() *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateDailyAudioLimit()
	})
}

// SetMaxAudioDuration sets the "max_audio_duration" field.
func (u *PlanUpsertOne) SetMaxAudioDuration(v int) *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.SetMaxAudioDuration(v)
	})
}

// AddMaxAudioDuration adds v to the "max_audio_duration" field.
func (u *PlanUpsertOne) AddMaxAudioDuration(v int) *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.AddMaxAudioDuration(v)
	})
}

// UpdateMaxAudioDuration sets the "max_audio_duration" field to the value that was provided on create.
func (u *PlanUpsertOne) UpdateMaxAudioDuration() *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateMaxAudioDuration()
	})
}

// SetMaxSteps sets the "max_steps" field.
func (u *PlanUpsertOne) SetMaxSteps(v int) *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.SetMaxSteps(v)
	})
}

// AddMaxSteps adds v to the "max_steps" field.
func (u *PlanUpsertOne) AddMaxSteps(v int) *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.AddMaxSteps(v)
	})
}

// UpdateMaxSteps sets the "max_steps" field to the value that was provided on create.
func (u *PlanUpsertOne) UpdateMaxSteps() *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateMaxSteps()
	})
}

// SetCanUseAPI sets the "can_use_api" field.
func (u *PlanUpsertOne) SetCanUseAPI(v bool) *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.SetCanUseAPI(v)
	})
}

// UpdateCanUseAPI sets the "can_use_api" field to the value that was provided on create.
func (u *PlanUpsertOne) UpdateCanUseAPI() *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateCanUseAPI()
	})
}

// SetCanDownload sets the "can_download" field.
func (u *PlanUpsertOne) SetCanDownload(v bool) *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.SetCanDownload(v)
	})
}

// UpdateCanDownload sets the "can_download" field to the value that was provided on create.
func (u *PlanUpsertOne) UpdateCanDownload() *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateCanDownload()
	})
}

// SetCanEditAudio sets the "can_edit_audio" field.
func (u *PlanUpsertOne) SetCanEditAudio(v bool) *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.SetCanEditAudio(v)
	})
}

// UpdateCanEditAudio sets the "can_edit_audio" field to the value that was provided on create.
func (u *PlanUpsertOne) UpdateCanEditAudio() *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateCanEditAudio()
	})
}

// SetStripePriceID sets the "stripe_price_id" field.
func (u *PlanUpsertOne) SetStripePriceID(v string) *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.SetStripePriceID(v)
	})
}

// UpdateStripePriceID sets the "stripe_price_id" field to the value that was provided on create.
func (u *PlanUpsertOne) UpdateStripePriceID() *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateStripePriceID()
	})
}

// ClearStripePriceID clears the value of the "stripe_price_id" field.
func (u *PlanUpsertOne) ClearStripePriceID() *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.ClearStripePriceID()
	})
}

// SetIsActive sets the "is_active" field.
func (u *PlanUpsertOne) SetIsActive(v bool) *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *PlanUpsertOne) UpdateIsActive() *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateIsActive()
	})
}

// SetIsPopular sets the "is_popular" field.
func (u *PlanUpsertOne) SetIsPopular(v bool) *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.SetIsPopular(v)
	})
}

// UpdateIsPopular sets the "is_popular" field to the value that was provided on create.
func (u *PlanUpsertOne) UpdateIsPopular() *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateIsPopular()
	})
}

// SetSortOrder sets the "sort_order" field.
func (u *PlanUpsertOne) SetSortOrder(v int) *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.SetSortOrder(v)
	})
}

// AddSortOrder adds v to the "sort_order" field.
func (u *PlanUpsertOne) AddSortOrder(v int) *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.AddSortOrder(v)
	})
}

// UpdateSortOrder sets the "sort_order" field to the value that was provided on create.
func (u *PlanUpsertOne) UpdateSortOrder() *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateSortOrder()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PlanUpsertOne) SetUpdatedAt(v time.Time) *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PlanUpsertOne) UpdateUpdatedAt() *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *PlanUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PlanCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PlanUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PlanUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PlanUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PlanCreateBulk is the builder for creating many Plan entities in bulk.
type PlanCreateBulk struct {
	config
	err      error
	builders []*PlanCreate
	conflict []sql.ConflictOption
}

// Save creates the Plan entities in the database.
func (_c *PlanCreateBulk) Save(ctx context.Context) ([]*Plan, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Plan, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PlanMutation)
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
func (_c *PlanCreateBulk) SaveX(ctx context.Context) []*Plan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlanCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlanCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Plan.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PlanUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *PlanCreateBulk) OnConflict(opts ...sql.ConflictOption) *PlanUpsertBulk {
	_c.conflict = opts
	return &PlanUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Plan.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PlanCreateBulk) OnConflictColumns(columns ...string) *PlanUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PlanUpsertBulk{
		create: _c,
	}
}

// PlanUpsertBulk is the builder for "upsert"-ing
// a bulk of Plan nodes.
type PlanUpsertBulk struct {
	create *PlanCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Plan.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *PlanUpsertBulk) UpdateNewValues() *PlanUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(plan.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Plan.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PlanUpsertBulk) Ignore() *PlanUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PlanUpsertBulk) DoNothing() *PlanUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PlanCreateBulk.OnConflict
// documentation for more info.
func (u *PlanUpsertBulk) Update(set func(*PlanUpsert)) *PlanUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PlanUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *PlanUpsertBulk) SetName(v string) *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PlanUpsertBulk) UpdateName() *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateName()
	})
}

// SetDisplayName sets the "display_name" field.
func (u *PlanUpsertBulk) SetDisplayName(v string) *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.SetDisplayName(v)
	})
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *PlanUpsertBulk) UpdateDisplayName() *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateDisplayName()
	})
}

// SetDescription sets the "description" field.
func (u *PlanUpsertBulk) SetDescription(v string) *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *PlanUpsertBulk) UpdateDescription() *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateDescription()
	})
}

// SetPrice sets the "price" field.
func (u *PlanUpsertBulk) SetPrice(v float64) *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.SetPrice(v)
	})
}

// AddPrice adds v to the "price" field.
func (u *PlanUpsertBulk) AddPrice(v float64) *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.AddPrice(v)
	})
}

// UpdatePrice sets the "price" field to the value that was provided on create.
func (u *PlanUpsertBulk) UpdatePrice() *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.UpdatePrice()
	})
}

// SetDailyAudioLimit sets the "daily_audio_limit" field.
func (u *PlanUpsertBulk) SetDailyAudioLimit(v int) *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.SetDailyAudioLimit(v)
	})
}

// AddDailyAudioLimit adds v to the "daily_audio_limit" field.
func (u *PlanUpsertBulk) AddDailyAudioLimit(v int) *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.AddDailyAudioLimit(v)
	})
}

// UpdateDailyAudioLimit sets the "daily_audio_limit" field to the value that was provided on create.
func (u *PlanUpsertBulk) UpdateDailyAudioLimit() *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateDailyAudioLimit()
	})
}

// SetMaxAudioDuration sets the "max_audio_duration" field.
func (u *PlanUpsertBulk) SetMaxAudioDuration(v int) *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.SetMaxAudioDuration(v)
	})
}

// AddMaxAudioDuration adds v to the "max_audio_duration" field.
func (u *PlanUpsertBulk) AddMaxAudioDuration(v int) *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.AddMaxAudioDuration(v)
	})
}

// UpdateMaxAudioDuration sets the "max_audio_duration" field to the value that was provided on create.
func (u *PlanUpsertBulk) UpdateMaxAudioDuration() *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateMaxAudioDuration()
	})
}

// SetMaxSteps sets the "max_steps" field.
func (u *PlanUpsertBulk) SetMaxSteps(v int) *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.SetMaxSteps(v)
	})
}

// AddMaxSteps adds v to the "max_steps" field.
func (u *PlanUpsertBulk) AddMaxSteps(v int) *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.AddMaxSteps(v)
	})
}

// UpdateMaxSteps sets the "max_steps" field to the value that was provided on create.
func (u *PlanUpsertBulk) UpdateMaxSteps() *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateMaxSteps()
	})
}

// SetCanUseAPI sets the "can_use_api" field.
func (u *PlanUpsertBulk) SetCanUseAPI(v bool) *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.SetCanUseAPI(v)
	})
}

// UpdateCanUseAPI sets the "can_use_api" field to the value that was provided on create.
func (u *PlanUpsertBulk) UpdateCanUseAPI() *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateCanUseAPI()
	})
}

// SetCanDownload sets the "can_download" field.
func (u *PlanUpsertBulk) SetCanDownload(v bool) *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.SetCanDownload(v)
	})
}

// UpdateCanDownload sets the "can_download" field to the value that was provided on create.
func (u *PlanUpsertBulk) UpdateCanDownload() *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateCanDownload()
	})
}

// SetCanEditAudio sets the "can_edit_audio" field.
func (u *PlanUpsertBulk) SetCanEditAudio(v bool) *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.SetCanEditAudio(v)
	})
}

// UpdateCanEditAudio sets the "can_edit_audio" field to the value that was provided on create.
func (u *PlanUpsertBulk) UpdateCanEditAudio() *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateCanEditAudio()
	})
}

// SetStripePriceID sets the "stripe_price_id" field.
func (u *PlanUpsertBulk) SetStripePriceID(v string) *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.SetStripePriceID(v)
	})
}

// UpdateStripePriceID sets the "stripe_price_id" field to the value that was provided on create.
func (u *PlanUpsertBulk) UpdateStripePriceID() *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateStripePriceID()
	})
}

// ClearStripePriceID clears the value of the "stripe_price_id" field.
func (u *PlanUpsertBulk) ClearStripePriceID() *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.ClearStripePriceID()
	})
}

// SetIsActive sets the "is_active" field.
func (u *PlanUpsertBulk) SetIsActive(v bool) *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *PlanUpsertBulk) UpdateIsActive() *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateIsActive()
	})
}

// SetIsPopular sets the "is_popular" field.
func (u *PlanUpsertBulk) SetIsPopular(v bool) *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.SetIsPopular(v)
	})
}

// UpdateIsPopular sets the "is_popular" field to the value that was provided on create.
func (u *PlanUpsertBulk) UpdateIsPopular() *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateIsPopular()
	})
}

// SetSortOrder sets the "sort_order" field.
func (u *PlanUpsertBulk) SetSortOrder(v int) *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.SetSortOrder(v)
	})
}

// AddSortOrder adds v to the "sort_order" field.
func (u *PlanUpsertBulk) AddSortOrder(v int) *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.AddSortOrder(v)
	})
}

// UpdateSortOrder sets the "sort_order" field to the value that was provided on create.
func (u *PlanUpsertBulk) UpdateSortOrder() *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateSortOrder()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PlanUpsertBulk) SetUpdatedAt(v time.Time) *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PlanUpsertBulk) UpdateUpdatedAt() *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *PlanUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PlanCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PlanCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PlanUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
