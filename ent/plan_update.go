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
	"github.com/audiomint/backend/ent/predicate"
	"github.com/audiomint/backend/ent/subscription"
)

// PlanUpdate is the builder for updating Plan entities.
type PlanUpdate struct {
	config
	hooks    []Hook
	mutation *PlanMutation
}

// Where appends a list predicates to the PlanUpdate builder.
func (_u *PlanUpdate) Where(ps ...predicate.Plan) *PlanUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *PlanUpdate) SetName(v string) *PlanUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PlanUpdate) SetNillableName(v *string) *PlanUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *PlanUpdate) SetDisplayName(v string) *PlanUpdate {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *PlanUpdate) SetNillableDisplayName(v *string) *PlanUpdate {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *PlanUpdate) SetDescription(v string) *PlanUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *PlanUpdate) SetNillableDescription(v *string) *PlanUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetPrice sets the "price" field.
func (_u *PlanUpdate) SetPrice(v float64) *PlanUpdate {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *PlanUpdate) SetNillablePrice(v *float64) *PlanUpdate {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *PlanUpdate) AddPrice(v float64) *PlanUpdate {
	_u.mutation.AddPrice(v)
	return _u
}

// SetDailyAudioLimit sets the "daily_audio_limit" field.
func (_u *PlanUpdate) SetDailyAudioLimit(v int) *PlanUpdate {
	_u.mutation.ResetDailyAudioLimit()
	_u.mutation.SetDailyAudioLimit(v)
	return _u
}

// SetNillableDailyAudioLimit sets the "daily_audio_limit" field if the given value is not nil.
func (_u *PlanUpdate) SetNillableDailyAudioLimit(v *int) *PlanUpdate {
	if v != nil {
		_u.SetDailyAudioLimit(*v)
	}
	return _u
}

// AddDailyAudioLimit adds value to the "daily_audio_limit" field.
func (_u *PlanUpdate) AddDailyAudioLimit(v int) *PlanUpdate {
	_u.mutation.AddDailyAudioLimit(v)
	return _u
}

// SetMaxAudioDuration sets the "max_audio_duration" field.
func (_u *PlanUpdate) SetMaxAudioDuration(v int) *PlanUpdate {
	_u.mutation.ResetMaxAudioDuration()
	_u.mutation.SetMaxAudioDuration(v)
	return _u
}

// SetNillableMaxAudioDuration sets the "max_audio_duration" field if the given value is not nil.
func (_u *PlanUpdate) SetNillableMaxAudioDuration(v *int) *PlanUpdate {
	if v != nil {
		_u.SetMaxAudioDuration(*v)
	}
	return _u
}

// AddMaxAudioDuration adds value to the "max_audio_duration" field.
func (_u *PlanUpdate) AddMaxAudioDuration(v int) *PlanUpdate {
	_u.mutation.AddMaxAudioDuration(v)
	return _u
}

// SetMaxSteps sets the "max_steps" field.
func (_u *PlanUpdate) SetMaxSteps(v int) *PlanUpdate {
	_u.mutation.ResetMaxSteps()
	_u.mutation.SetMaxSteps(v)
	return _u
}

// SetNillableMaxSteps sets the "max_steps" field if the given value is not nil.
func (_u *PlanUpdate) SetNillableMaxSteps(v *int) *PlanUpdate {
	if v != nil {
		_u.SetMaxSteps(*v)
	}
	return _u
}

// AddMaxSteps adds value to the "max_steps" field.
func (_u *PlanUpdate) AddMaxSteps(v int) *PlanUpdate {
	_u.mutation.AddMaxSteps(v)
	return _u
}

// SetCanUseAPI sets the "can_use_api" field.
func (_u *PlanUpdate) SetCanUseAPI(v bool) *PlanUpdate {
	_u.mutation.SetCanUseAPI(v)
	return _u
}

// SetNillableCanUseAPI sets the "can_use_api" field if the given value is not nil.
func (_u *PlanUpdate) SetNillableCanUseAPI(v *bool) *PlanUpdate {
	if v != nil {
		_u.SetCanUseAPI(*v)
	}
	return _u
}

// SetCanDownload sets the "can_download" field.
func (_u *PlanUpdate) SetCanDownload(v bool) *PlanUpdate {
	_u.mutation.SetCanDownload(v)
	return _u
}

// SetNillableCanDownload sets the "can_download" field if the given value is not nil.
func (_u *PlanUpdate) SetNillableCanDownload(v *bool) *PlanUpdate {
	if v != nil {
		_u.SetCanDownload(*v)
	}
	return _u
}

// SetCanEditAudio sets the "can_edit_audio" field.
func (_u *PlanUpdate) SetCanEditAudio(v bool) *PlanUpdate {
	_u.mutation.SetCanEditAudio(v)
	return _u
}

// SetNillableCanEditAudio sets the "can_edit_audio" field if the given value is not nil.
func (_u *PlanUpdate) SetNillableCanEditAudio(v *bool) *PlanUpdate {
	if v != nil {
		_u.SetCanEditAudio(*v)
	}
	return _u
}

// SetStripePriceID sets the "stripe_price_id" field.
func (_u *PlanUpdate) SetStripePriceID(v string) *PlanUpdate {
	_u.mutation.SetStripePriceID(v)
	return _u
}

// SetNillableStripePriceID sets the "stripe_price_id" field if the given value is not nil.
func (_u *PlanUpdate) SetNillableStripePriceID(v *string) *PlanUpdate {
	if v != nil {
		_u.SetStripePriceID(*v)
	}
	return _u
}

// ClearStripePriceID clears the value of the "stripe_price_id" field.
func (_u *PlanUpdate) ClearStripePriceID() *PlanUpdate {
	_u.mutation.ClearStripePriceID()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *PlanUpdate) SetIsActive(v bool) *PlanUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *PlanUpdate) SetNillableIsActive(v *bool) *PlanUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetIsPopular sets the "is_popular" field.
func (_u *PlanUpdate) SetIsPopular(v bool) *PlanUpdate {
	_u.mutation.SetIsPopular(v)
	return _u
}

// SetNillableIsPopular sets the "is_popular" field if the given value is not nil.
func (_u *PlanUpdate) SetNillableIsPopular(v *bool) *PlanUpdate {
	if v != nil {
		_u.SetIsPopular(*v)
	}
	return _u
}

// SetSortOrder sets the "sort_order" field.
func (_u *PlanUpdate) SetSortOrder(v int) *PlanUpdate {
	_u.mutation.ResetSortOrder()
	_u.mutation.SetSortOrder(v)
	return _u
}

// SetNillableSortOrder sets the "sort_order" field if the given value is not nil.
func (_u *PlanUpdate) SetNillableSortOrder(v *int) *PlanUpdate {
	if v != nil {
		_u.SetSortOrder(*v)
	}
	return _u
}

// AddSortOrder adds value to the "sort_order" field.
func (_u *PlanUpdate) AddSortOrder(v int) *PlanUpdate {
	_u.mutation.AddSortOrder(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PlanUpdate) SetUpdatedAt(v time.Time) *PlanUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddSubscriptionIDs adds the "subscriptions" edge to the Subscription entity by IDs.
func (_u *PlanUpdate) AddSubscriptionIDs(ids ...int) *PlanUpdate {
	_u.mutation.AddSubscriptionIDs(ids...)
	return _u
}

// AddSubscriptions adds the "subscriptions" edges to the Subscription entity.
func (_u *PlanUpdate) AddSubscriptions(v ...*Subscription) *PlanUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSubscriptionIDs(ids...)
}

// Mutation returns the PlanMutation object of the builder.
func (_u *PlanUpdate) Mutation() *PlanMutation {
	return _u.mutation
}

// ClearSubscriptions clears all "subscriptions" edges to the Subscription entity.
func (_u *PlanUpdate) ClearSubscriptions() *PlanUpdate {
	_u.mutation.ClearSubscriptions()
	return _u
}

// RemoveSubscriptionIDs removes the "subscriptions" edge to Subscription entities by IDs.
func (_u *PlanUpdate) RemoveSubscriptionIDs(ids ...int) *PlanUpdate {
	_u.mutation.RemoveSubscriptionIDs(ids...)
	return _u
}

// RemoveSubscriptions removes "subscriptions" edges to Subscription entities.
func (_u *PlanUpdate) RemoveSubscriptions(v ...*Subscription) *PlanUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSubscriptionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PlanUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlanUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PlanUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlanUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PlanUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := plan.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlanUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := plan.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Plan.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DisplayName(); ok {
		if err := plan.DisplayNameValidator(v); err != nil {
			return &ValidationError{Name: "display_name", err: fmt.Errorf(`ent: validator failed for field "Plan.display_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Price(); ok {
		if err := plan.PriceValidator(v); err != nil {
			return &ValidationError{Name: "price", err: fmt.Errorf(`ent: validator failed for field "Plan.price": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DailyAudioLimit(); ok {
		if err := plan.DailyAudioLimitValidator(v); err != nil {
			return &ValidationError{Name: "daily_audio_limit", err: fmt.Errorf(`ent: validator failed for field "Plan.daily_audio_limit": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxAudioDuration(); ok {
		if err := plan.MaxAudioDurationValidator(v); err != nil {
			return &ValidationError{Name: "max_audio_duration", err: fmt.Errorf(`ent: validator failed for field "Plan.max_audio_duration": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxSteps(); ok {
		if err := plan.MaxStepsValidator(v); err != nil {
			return &ValidationError{Name: "max_steps", err: fmt.Errorf(`ent: validator failed for field "Plan.max_steps": %w`, err)}
		}
	}
	return nil
}

func (_u *PlanUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(plan.Table, plan.Columns, sqlgraph.NewFieldSpec(plan.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(plan.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(plan.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(plan.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(plan.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(plan.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DailyAudioLimit(); ok {
		_spec.SetField(plan.FieldDailyAudioLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDailyAudioLimit(); ok {
		_spec.AddField(plan.FieldDailyAudioLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxAudioDuration(); ok {
		_spec.SetField(plan.FieldMaxAudioDuration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxAudioDuration(); ok {
		_spec.AddField(plan.FieldMaxAudioDuration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxSteps(); ok {
		_spec.SetField(plan.FieldMaxSteps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxSteps(); ok {
		_spec.AddField(plan.FieldMaxSteps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CanUseAPI(); ok {
		_spec.SetField(plan.FieldCanUseAPI, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CanDownload(); ok {
		_spec.SetField(plan.FieldCanDownload, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CanEditAudio(); ok {
		_spec.SetField(plan.FieldCanEditAudio, field.TypeBool, value)
	}
	if value, ok := _u.mutation.StripePriceID(); ok {
		_spec.SetField(plan.FieldStripePriceID, field.TypeString, value)
	}
	if _u.mutation.StripePriceIDCleared() {
		_spec.ClearField(plan.FieldStripePriceID, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(plan.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsPopular(); ok {
		_spec.SetField(plan.FieldIsPopular, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SortOrder(); ok {
		_spec.SetField(plan.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSortOrder(); ok {
		_spec.AddField(plan.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(plan.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SubscriptionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSubscriptionsIDs(); len(nodes) > 0 && !_u.mutation.SubscriptionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubscriptionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{plan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PlanUpdateOne is the builder for updating a single Plan entity.
type PlanUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PlanMutation
}

// SetName sets the "name" field.
func (_u *PlanUpdateOne) SetName(v string) *PlanUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PlanUpdateOne) SetNillableName(v *string) *PlanUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *PlanUpdateOne) SetDisplayName(v string) *PlanUpdateOne {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *PlanUpdateOne) SetNillableDisplayName(v *string) *PlanUpdateOne {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *PlanUpdateOne) SetDescription(v string) *PlanUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *PlanUpdateOne) SetNillableDescription(v *string) *PlanUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetPrice sets the "price" field.
func (_u *PlanUpdateOne) SetPrice(v float64) *PlanUpdateOne {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *PlanUpdateOne) SetNillablePrice(v *float64) *PlanUpdateOne {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *PlanUpdateOne) AddPrice(v float64) *PlanUpdateOne {
	_u.mutation.AddPrice(v)
	return _u
}

// SetDailyAudioLimit sets the "daily_audio_limit" field.
func (_u *PlanUpdateOne) SetDailyAudioLimit(v int) *PlanUpdateOne {
	_u.mutation.ResetDailyAudioLimit()
	_u.mutation.SetDailyAudioLimit(v)
	return _u
}

// SetNillableDailyAudioLimit sets the "daily_audio_limit" field if the given value is not nil.
func (_u *PlanUpdateOne) SetNillableDailyAudioLimit(v *int) *PlanUpdateOne {
	if v != nil {
		_u.SetDailyAudioLimit(*v)
	}
	return _u
}

// AddDailyAudioLimit adds value to the "daily_audio_limit" field.
func (_u *PlanUpdateOne) AddDailyAudioLimit(v int) *PlanUpdateOne {
	_u.mutation.AddDailyAudioLimit(v)
	return _u
}

// SetMaxAudioDuration sets the "max_audio_duration" field.
func (_u *PlanUpdateOne) SetMaxAudioDuration(v int) *PlanUpdateOne {
	_u.mutation.ResetMaxAudioDuration()
	_u.mutation.SetMaxAudioDuration(v)
	return _u
}

// SetNillableMaxAudioDuration sets the "max_audio_duration" field if the given value is not nil.
func (_u *PlanUpdateOne) SetNillableMaxAudioDuration(v *int) *PlanUpdateOne {
	if v != nil {
		_u.SetMaxAudioDuration(*v)
	}
	return _u
}

// AddMaxAudioDuration adds value to the "max_audio_duration" field.
func (_u *PlanUpdateOne) AddMaxAudioDuration(v int) *PlanUpdateOne {
	_u.mutation.AddMaxAudioDuration(v)
	return _u
}

// SetMaxSteps sets the "max_steps" field.
func (_u *PlanUpdateOne) SetMaxSteps(v int) *PlanUpdateOne {
	_u.mutation.ResetMaxSteps()
	_u.mutation.SetMaxSteps(v)
	return _u
}

// SetNillableMaxSteps sets the "max_steps" field if the given value is not nil.
func (_u *PlanUpdateOne) SetNillableMaxSteps(v *int) *PlanUpdateOne {
	if v != nil {
		_u.SetMaxSteps(*v)
	}
	return _u
}

// AddMaxSteps adds value to the "max_steps" field.
func (_u *PlanUpdateOne) AddMaxSteps(v int) *PlanUpdateOne {
	_u.mutation.AddMaxSteps(v)
	return _u
}

// SetCanUseAPI sets the "can_use_api" field.
func (_u *PlanUpdateOne) SetCanUseAPI(v bool) *PlanUpdateOne {
	_u.mutation.SetCanUseAPI(v)
	return _u
}

// SetNillableCanUseAPI sets the "can_use_api" field if the given value is not nil.
func (_u *PlanUpdateOne) SetNillableCanUseAPI(v *bool) *PlanUpdateOne {
	if v != nil {
		_u.SetCanUseAPI(*v)
	}
	return _u
}

// SetCanDownload sets the "can_download" field.
func (_u *PlanUpdateOne) SetCanDownload(v bool) *PlanUpdateOne {
	_u.mutation.SetCanDownload(v)
	return _u
}

// SetNillableCanDownload sets the "can_download" field if the given value is not nil.
func (_u *PlanUpdateOne) SetNillableCanDownload(v *bool) *PlanUpdateOne {
	if v != nil {
		_u.SetCanDownload(*v)
	}
	return _u
}

// SetCanEditAudio sets the "can_edit_audio" field.
func (_u *PlanUpdateOne) SetCanEditAudio(v bool) *PlanUpdateOne {
	_u.mutation.SetCanEditAudio(v)
	return _u
}

// SetNillableCanEditAudio sets the "can_edit_audio" field if the given value is not nil.
func (_u *PlanUpdateOne) SetNillableCanEditAudio(v *bool) *PlanUpdateOne {
	if v != nil {
		_u.SetCanEditAudio(*v)
	}
	return _u
}

// SetStripePriceID sets the "stripe_price_id" field.
func (_u *PlanUpdateOne) SetStripePriceID(v string) *PlanUpdateOne {
	_u.mutation.SetStripePriceID(v)
	return _u
}

// SetNillableStripePriceID sets the "stripe_price_id" field if the given value is not nil.
func (_u *PlanUpdateOne) SetNillableStripePriceID(v *string) *PlanUpdateOne {
	if v != nil {
		_u.SetStripePriceID(*v)
	}
	return _u
}

// ClearStripePriceID clears the value of the "stripe_price_id" field.
func (_u *PlanUpdateOne) ClearStripePriceID() *PlanUpdateOne {
	_u.mutation.ClearStripePriceID()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *PlanUpdateOne) SetIsActive(v bool) *PlanUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *PlanUpdateOne) SetNillableIsActive(v *bool) *PlanUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetIsPopular sets the "is_popular" field.
func (_u *PlanUpdateOne) SetIsPopular(v bool) *PlanUpdateOne {
	_u.mutation.SetIsPopular(v)
	return _u
}

// SetNillableIsPopular sets the "is_popular" field if the given value is not nil.
func (_u *PlanUpdateOne) SetNillableIsPopular(v *bool) *PlanUpdateOne {
	if v != nil {
		_u.SetIsPopular(*v)
	}
	return _u
}

// SetSortOrder sets the "sort_order" field.
func (_u *PlanUpdateOne) SetSortOrder(v int) *PlanUpdateOne {
	_u.mutation.ResetSortOrder()
	_u.mutation.SetSortOrder(v)
	return _u
}

// SetNillableSortOrder sets the "sort_order" field if the given value is not nil.
func (_u *PlanUpdateOne) SetNillableSortOrder(v *int) *PlanUpdateOne {
	if v != nil {
		_u.SetSortOrder(*v)
	}
	return _u
}

// AddSortOrder adds value to the "sort_order" field.
func (_u *PlanUpdateOne) AddSortOrder(v int) *PlanUpdateOne {
	_u.mutation.AddSortOrder(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PlanUpdateOne) SetUpdatedAt(v time.Time) *PlanUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddSubscriptionIDs adds the "subscriptions" edge to the Subscription entity by IDs.
func (_u *PlanUpdateOne) AddSubscriptionIDs(ids ...int) *PlanUpdateOne {
	_u.mutation.AddSubscriptionIDs(ids...)
	return _u
}

// AddSubscriptions adds the "subscriptions" edges to the Subscription entity.
func (_u *PlanUpdateOne) AddSubscriptions(v ...*Subscription) *PlanUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSubscriptionIDs(ids...)
}

// Mutation returns the PlanMutation object of the builder.
func (_u *PlanUpdateOne) Mutation() *PlanMutation {
	return _u.mutation
}

// ClearSubscriptions clears all "subscriptions" edges to the Subscription entity.
func (_u *PlanUpdateOne) ClearSubscriptions() *PlanUpdateOne {
	_u.mutation.ClearSubscriptions()
	return _u
}

// RemoveSubscriptionIDs removes the "subscriptions" edge to Subscription entities by IDs.
func (_u *PlanUpdateOne) RemoveSubscriptionIDs(ids ...int) *PlanUpdateOne {
	_u.mutation.RemoveSubscriptionIDs(ids...)
	return _u
}

// RemoveSubscriptions removes "subscriptions" edges to Subscription entities.
func (_u *PlanUpdateOne) RemoveSubscriptions(v ...*Subscription) *PlanUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSubscriptionIDs(ids...)
}

// Where appends a list predicates to the PlanUpdate builder.
func (_u *PlanUpdateOne) Where(ps ...predicate.Plan) *PlanUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PlanUpdateOne) Select(field string, fields ...string) *PlanUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Plan entity.
func (_u *PlanUpdateOne) Save(ctx context.Context) (*Plan, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlanUpdateOne) SaveX(ctx context.Context) *Plan {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PlanUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlanUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PlanUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := plan.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlanUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := plan.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Plan.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DisplayName(); ok {
		if err := plan.DisplayNameValidator(v); err != nil {
			return &ValidationError{Name: "display_name", err: fmt.Errorf(`ent: validator failed for field "Plan.display_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Price(); ok {
		if err := plan.PriceValidator(v); err != nil {
			return &ValidationError{Name: "price", err: fmt.Errorf(`ent: validator failed for field "Plan.price": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DailyAudioLimit(); ok {
		if err := plan.DailyAudioLimitValidator(v); err != nil {
			return &ValidationError{Name: "daily_audio_limit", err: fmt.Errorf(`ent: validator failed for field "Plan.daily_audio_limit": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxAudioDuration(); ok {
		if err := plan.MaxAudioDurationValidator(v); err != nil {
			return &ValidationError{Name: "max_audio_duration", err: fmt.Errorf(`ent: validator failed for field "Plan.max_audio_duration": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxSteps(); ok {
		if err := plan.MaxStepsValidator(v); err != nil {
			return &ValidationError{Name: "max_steps", err: fmt.Errorf(`ent: validator failed for field "Plan.max_steps": %w`, err)}
		}
	}
	return nil
}

func (_u *PlanUpdateOne) sqlSave(ctx context.Context) (_node *Plan, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(plan.Table, plan.Columns, sqlgraph.NewFieldSpec(plan.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Plan.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, plan.FieldID)
		for _, f := range fields {
			if !plan.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != plan.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(plan.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(plan.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(plan.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(plan.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(plan.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DailyAudioLimit(); ok {
		_spec.SetField(plan.FieldDailyAudioLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDailyAudioLimit(); ok {
		_spec.AddField(plan.FieldDailyAudioLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxAudioDuration(); ok {
		_spec.SetField(plan.FieldMaxAudioDuration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxAudioDuration(); ok {
		_spec.AddField(plan.FieldMaxAudioDuration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxSteps(); ok {
		_spec.SetField(plan.FieldMaxSteps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxSteps(); ok {
		_spec.AddField(plan.FieldMaxSteps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CanUseAPI(); ok {
		_spec.SetField(plan.FieldCanUseAPI, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CanDownload(); ok {
		_spec.SetField(plan.FieldCanDownload, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CanEditAudio(); ok {
		_spec.SetField(plan.FieldCanEditAudio, field.TypeBool, value)
	}
	if value, ok := _u.mutation.StripePriceID(); ok {
		_spec.SetField(plan.FieldStripePriceID, field.TypeString, value)
	}
	if _u.mutation.StripePriceIDCleared() {
		_spec.ClearField(plan.FieldStripePriceID, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(plan.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsPopular(); ok {
		_spec.SetField(plan.FieldIsPopular, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SortOrder(); ok {
		_spec.SetField(plan.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSortOrder(); ok {
		_spec.AddField(plan.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(plan.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SubscriptionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSubscriptionsIDs(); len(nodes) > 0 && !_u.mutation.SubscriptionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubscriptionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Plan{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{plan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
