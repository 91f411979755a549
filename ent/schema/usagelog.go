package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UsageLog holds the schema definition for the UsageLog entity.
type UsageLog struct {
	ent.Schema
}

// Fields of the UsageLog.
func (UsageLog) Fields() []ent.Field {
	return []ent.Field{
		field.Int("user_id").
			Comment("User the counters belong to"),
		field.Time("date").
			SchemaType(map[string]string{dialect.Postgres: "date"}).
			Immutable().
			Comment("Calendar day, stored as midnight of the quota timezone"),
		field.Int("audio_generations").
			Default(0).
			NonNegative(),
		field.Int("api_calls").
			Default(0).
			NonNegative(),
		field.Int("total_duration").
			Default(0).
			NonNegative().
			Comment("Seconds of audio generated"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the UsageLog.
func (UsageLog) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("usage_logs").
			Field("user_id").
			Unique().
			Required(),
	}
}

// Indexes of the UsageLog.
func (UsageLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "date").Unique(),
		index.Fields("date"),
	}
}
