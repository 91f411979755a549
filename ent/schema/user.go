package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// User holds the schema definition for the User entity.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("email").
			Unique().
			NotEmpty().
			Comment("User email address, also used to match billing customers"),
		field.String("name").
			Default("").
			Comment("Display name used in notifications"),
		field.String("api_key").
			Optional().
			Nillable().
			Unique().
			Sensitive().
			Comment("Key for programmatic access"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("subscription", Subscription.Type).
			Unique().
			Comment("Billing state, at most one per user"),
		edge.To("usage_logs", UsageLog.Type).
			Comment("Daily usage counters"),
	}
}
