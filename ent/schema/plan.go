package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Plan holds the schema definition for the Plan entity.
type Plan struct {
	ent.Schema
}

// Fields of the Plan.
func (Plan) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			Unique().
			NotEmpty().
			Comment("Internal plan key (free, pro, enterprise)"),
		field.String("display_name").
			NotEmpty(),
		field.Text("description").
			Default(""),
		field.Float("price").
			Min(0).
			Default(0).
			Comment("Monthly price in USD"),
		field.Int("daily_audio_limit").
			NonNegative().
			Default(20).
			Comment("Audio generations allowed per calendar day"),
		field.Int("max_audio_duration").
			Range(1, 300).
			Default(30).
			Comment("Maximum seconds per generation"),
		field.Int("max_steps").
			Range(10, 500).
			Default(200).
			Comment("Maximum diffusion steps per generation"),
		field.Bool("can_use_api").
			Default(false),
		field.Bool("can_download").
			Default(true),
		field.Bool("can_edit_audio").
			Default(false),
		field.String("stripe_price_id").
			Optional().
			Nillable().
			Unique().
			Comment("Billing provider price this plan is sold under"),
		field.Bool("is_active").
			Default(true),
		field.Bool("is_popular").
			Default(false),
		field.Int("sort_order").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Plan.
func (Plan) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("subscriptions", Subscription.Type),
	}
}

// Indexes of the Plan.
func (Plan) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("is_active", "sort_order"),
	}
}
