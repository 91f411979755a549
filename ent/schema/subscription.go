package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Subscription holds the schema definition for the Subscription entity.
type Subscription struct {
	ent.Schema
}

// Fields of the Subscription.
func (Subscription) Fields() []ent.Field {
	return []ent.Field{
		field.Int("user_id").
			Positive().
			Unique().
			Comment("User ID foreign key"),
		field.Int("plan_id").
			Optional().
			Nillable().
			Comment("Plan the user is billed under, unset until the provider names a price"),
		field.String("stripe_customer_id").
			Optional().
			Nillable().
			Comment("Stripe customer ID"),
		field.String("stripe_subscription_id").
			Optional().
			Nillable().
			Unique().
			Comment("Stripe subscription ID"),
		field.Enum("status").
			Values("active", "trialing", "past_due", "unpaid", "canceled").
			Default("trialing").
			Comment("Subscription status"),
		field.Time("current_period_start").
			Optional().
			Nillable().
			Comment("Current billing period start"),
		field.Time("current_period_end").
			Optional().
			Nillable().
			Comment("Current billing period end"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last update timestamp"),
	}
}

// Edges of the Subscription.
func (Subscription) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("subscription").
			Field("user_id").
			Unique().
			Required().
			Comment("Subscription owner"),
		edge.From("plan", Plan.Type).
			Ref("subscriptions").
			Field("plan_id").
			Unique().
			Comment("Billed plan"),
	}
}

// Indexes of the Subscription.
func (Subscription) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("stripe_customer_id"),
		index.Fields("status"),
	}
}
