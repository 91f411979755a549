// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/audiomint/backend/ent/plan"
)

// Plan is the model entity for the Plan schema.
type Plan struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Internal plan key (free, pro, enterprise)
	Name string `json:"name,omitempty"`
	// DisplayName holds the value of the "display_name" field.
	DisplayName string `json:"display_name,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Monthly price in USD
	Price float64 `json:"price,omitempty"`
	// Audio generations allowed per calendar day
	DailyAudioLimit int `json:"daily_audio_limit,omitempty"`
	// Maximum seconds per generation
	MaxAudioDuration int `json:"max_audio_duration,omitempty"`
	// Maximum diffusion steps per generation
	MaxSteps int `json:"max_steps,omitempty"`
	// CanUseAPI holds the value of the "can_use_api" field.
	CanUseAPI bool `json:"can_use_api,omitempty"`
	// CanDownload holds the value of the "can_download" field.
	CanDownload bool `json:"can_download,omitempty"`
	// CanEditAudio holds the value of the "can_edit_audio" field.
	CanEditAudio bool `json:"can_edit_audio,omitempty"`
	// Billing provider price this plan is sold under
	StripePriceID *string `json:"stripe_price_id,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// IsPopular holds the value of the "is_popular" field.
	IsPopular bool `json:"is_popular,omitempty"`
	// SortOrder holds the value of the "sort_order" field.
	SortOrder int `json:"sort_order,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PlanQuery when eager-loading is set.
	Edges        PlanEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PlanEdges holds the relations/edges for other nodes in the graph.
type PlanEdges struct {
	// Subscriptions holds the value of the subscriptions edge.
	Subscriptions []*Subscription `json:"subscriptions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SubscriptionsOrErr returns the Subscriptions value or an error if the edge
// was not loaded in eager-loading.
func (e PlanEdges) SubscriptionsOrErr() ([]*Subscription, error) {
	if e.loadedTypes[0] {
		return e.Subscriptions, nil
	}
	return nil, &NotLoadedError{edge: "subscriptions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Plan) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case plan.FieldCanUseAPI, plan.FieldCanDownload, plan.FieldCanEditAudio, plan.FieldIsActive, plan.FieldIsPopular:
			values[i] = new(sql.NullBool)
		case plan.FieldPrice:
			values[i] = new(sql.NullFloat64)
		case plan.FieldID, plan.FieldDailyAudioLimit, plan.FieldMaxAudioDuration, plan.FieldMaxSteps, plan.FieldSortOrder:
			values[i] = new(sql.NullInt64)
		case plan.FieldName, plan.FieldDisplayName, plan.FieldDescription, plan.FieldStripePriceID:
			values[i] = new(sql.NullString)
		case plan.FieldCreatedAt, plan.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Plan fields.
func (_m *Plan) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case plan.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case plan.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case plan.FieldDisplayName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field display_name", values[i])
			} else if value.Valid {
				_m.DisplayName = value.String
			}
		case plan.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case plan.FieldPrice:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field price", values[i])
			} else if value.Valid {
				_m.Price = value.Float64
			}
		case plan.FieldDailyAudioLimit:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field daily_audio_limit", values[i])
			} else if value.Valid {
				_m.DailyAudioLimit = int(value.Int64)
			}
		case plan.FieldMaxAudioDuration:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_audio_duration", values[i])
			} else if value.Valid {
				_m.MaxAudioDuration = int(value.Int64)
			}
		case plan.FieldMaxSteps:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_steps", values[i])
			} else if value.Valid {
				_m.MaxSteps = int(value.Int64)
			}
		case plan.FieldCanUseAPI:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field can_use_api", values[i])
			} else if value.Valid {
				_m.CanUseAPI = value.Bool
			}
		case plan.FieldCanDownload:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field can_download", values[i])
			} else if value.Valid {
				_m.CanDownload = value.Bool
			}
		case plan.FieldCanEditAudio:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field can_edit_audio", values[i])
			} else if value.Valid {
				_m.CanEditAudio = value.Bool
			}
		case plan.FieldStripePriceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stripe_price_id", values[i])
			} else if value.Valid {
				_m.StripePriceID = new(string)
				*_m.StripePriceID = value.String
			}
		case plan.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case plan.FieldIsPopular:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_popular", values[i])
			} else if value.Valid {
				_m.IsPopular = value.Bool
			}
		case plan.FieldSortOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sort_order", values[i])
			} else if value.Valid {
				_m.SortOrder = int(value.Int64)
			}
		case plan.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case plan.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Plan.
// This includes values selected through modifiers, order, etc.
func (_m *Plan) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySubscriptions queries the "subscriptions" edge of the Plan entity.
func (_m *Plan) QuerySubscriptions() *SubscriptionQuery {
	return NewPlanClient(_m.config).QuerySubscriptions(_m)
}

// Update returns a builder for updating this Plan.
// Note that you need to call Plan.Unwrap() before calling this method if this Plan
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Plan) Update() *PlanUpdateOne {
	return NewPlanClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Plan entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Plan) Unwrap() *Plan {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Plan is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Plan) String() string {
	var builder strings.Builder
	builder.WriteString("Plan(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("display_name=")
	builder.WriteString(_m.DisplayName)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("price=")
	builder.WriteString(fmt.Sprintf("%v", _m.Price))
	builder.WriteString(", ")
	builder.WriteString("daily_audio_limit=")
	builder.WriteString(fmt.Sprintf("%v", _m.DailyAudioLimit))
	builder.WriteString(", ")
	builder.WriteString("max_audio_duration=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxAudioDuration))
	builder.WriteString(", ")
	builder.WriteString("max_steps=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxSteps))
	builder.WriteString(", ")
	builder.WriteString("can_use_api=")
	builder.WriteString(fmt.Sprintf("%v", _m.CanUseAPI))
	builder.WriteString(", ")
	builder.WriteString("can_download=")
	builder.WriteString(fmt.Sprintf("%v", _m.CanDownload))
	builder.WriteString(", ")
	builder.WriteString("can_edit_audio=")
	builder.WriteString(fmt.Sprintf("%v", _m.CanEditAudio))
	builder.WriteString(", ")
	if v := _m.StripePriceID; v != nil {
		builder.WriteString("stripe_price_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	builder.WriteString("is_popular=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsPopular))
	builder.WriteString(", ")
	builder.WriteString("sort_order=")
	builder.WriteString(fmt.Sprintf("%v", _m.SortOrder))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Plans is a parsable slice of Plan.
type Plans []*Plan
