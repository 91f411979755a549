// Code generated by ent, DO NOT EDIT.

package usagelog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/audiomint/backend/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.UsageLog {
	return predicate.UsageLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.UsageLog {
	return predicate.UsageLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.UsageLog {
	return predicate.UsageLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.UsageLog {
	return predicate.UsageLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.UsageLog {
	return predicate.UsageLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.UsageLog {
	return predicate.UsageLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.UsageLog {
	return predicate.UsageLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.UsageLog {
	return predicate.UsageLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.UsageLog {
	return predicate.UsageLog(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int) predicate.UsageLog {
	return predicate.UsageLog(sql.FieldEQ(FieldUserID, v))
}

// Date applies equality check predicate on the "date" field. It's identical to DateEQ.
func Date(v time.Time) predicate.UsageLog {
	return predicate.UsageLog(sql.FieldEQ(FieldDate, v))
}

// AudioGenerations applies equality check predicate on the "audio_generations" field. It's identical to AudioGenerationsEQ.
func AudioGenerations(v int) predicate.UsageLog {
	return predicate.UsageLog(sql.FieldEQ(FieldAudioGenerations, v))
}

// APICalls applies equality check predicate on the "api_calls" field. It's identical to APICallsEQ.
func APICalls(v int) predicate.UsageLog {
	return predicate.UsageLog(sql.FieldEQ(FieldAPICalls, v))
}

// TotalDuration applies equality check predicate on the "total_duration" field. It's identical to TotalDurationEQ.
func TotalDuration(v int) predicate.UsageLog {
	return predicate.UsageLog(sql.FieldEQ(FieldTotalDuration, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.UsageLog {
	return predicate.UsageLog(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.UsageLog {
	return predicate.UsageLog(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int) predicate.UsageLog {
	return predicate.UsageLog(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int) predicate.UsageLog {
	return predicate.UsageLog(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int) predicate.UsageLog {
	return predicate.UsageLog(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int) predicate.UsageLog {
	return predicate.UsageLog(sql.FieldNotIn(FieldUserID, vs...))
}

// DateEQ applies the EQ predicate on the "date" field.
func DateEQ(v time.Time) predicate.UsageLog {
	return predicate.UsageLog(sql.FieldEQ(FieldDate, v))
}

// DateNEQ applies the NEQ predicate on the "date" field.
func DateNEQ(v time.Time) predicate.UsageLog {
	return predicate.UsageLog(sql.FieldNEQ(FieldDate, v))
}

// DateIn applies the In predicate on the "date" field.
func DateIn(vs ...time.Time) predicate.UsageLog {
	return predicate.UsageLog(sql.FieldIn(FieldDate, vs...))
}

// DateNotIn applies the NotIn predicate on the "date" field.
func DateNotIn(vs ...time.Time) predicate.UsageLog {
	return predicate.UsageLog(sql.FieldNotIn(FieldDate, vs...))
}

// DateGT applies the GT predicate on the "date" field.
func DateGT(v time.Time) predicate.UsageLog {
	return predicate.UsageLog(sql.FieldGT(FieldDate, v))
}

// DateGTE applies the GTE predicate on the "date" field.
func DateGTE(v time.Time) predicate.UsageLog {
	return predicate.UsageLog(sql.FieldGTE(FieldDate, v))
}

// DateLT applies the LT predicate on the "date" field.
func DateLT(v time.Time) predicate.UsageLog {
	return predicate.UsageLog(sql.FieldLT(FieldDate, v))
}

// DateLTE applies the LTE predicate on the "date" field.
func DateLTE(v time.Time) predicate.UsageLog {
	return predicate.UsageLog(sql.FieldLTE(FieldDate, v))
}

// AudioGenerationsEQ applies the EQ predicate on the "audio_generations" field.
func AudioGenerationsEQ(v int) predicate.UsageLog {
	return predicate.UsageLog(sql.FieldEQ(FieldAudioGenerations, v))
}

// AudioGenerationsNEQ applies the NEQ predicate on the "audio_generations" field.
func AudioGenerationsNEQ(v int) predicate.UsageLog {
	return predicate.UsageLog(sql.FieldNEQ(FieldAudioGenerations, v))
}

// AudioGenerationsIn applies the In predicate on the "audio_generations" field.
func AudioGenerationsIn(vs ...int) predicate.UsageLog {
	return predicate.UsageLog(sql.FieldIn(FieldAudioGenerations, vs...))
}

// AudioGenerationsNotIn applies the NotIn predicate on the "audio_generations" field.
func AudioGenerationsNotIn(vs ...int) predicate.UsageLog {
	return predicate.UsageLog(sql.FieldNotIn(FieldAudioGenerations, vs...))
}

// AudioGenerationsGT applies the GT predicate on the "audio_generations" field.
func AudioGenerationsGT(v int) predicate.UsageLog {
	return predicate.UsageLog(sql.FieldGT(FieldAudioGenerations, v))
}

// AudioGenerationsGTE applies the GTE predicate on the "audio_generations" field.
func AudioGenerationsGTE(v int) predicate.UsageLog {
	return predicate.UsageLog(sql.FieldGTE(FieldAudioGenerations, v))
}

// AudioGenerationsLT applies the LT predicate on the "audio_generations" field.
func AudioGenerationsLT(v int) predicate.UsageLog {
	return predicate.UsageLog(sql.FieldLT(FieldAudioGenerations, v))
}

// AudioGenerationsLTE applies the LTE predicate on the "audio_generations" field.
func AudioGenerationsLTE(v int) predicate.UsageLog {
	return predicate.UsageLog(sql.FieldLTE(FieldAudioGenerations, v))
}

// APICallsEQ applies the EQ predicate on the "api_calls" field.
func APICallsEQ(v int) predicate.UsageLog {
	return predicate.UsageLog(sql.FieldEQ(FieldAPICalls, v))
}

// APICallsNEQ applies the NEQ predicate on the "api_calls" field.
func APICallsNEQ(v int) predicate.UsageLog {
	return predicate.UsageLog(sql.FieldNEQ(FieldAPICalls, v))
}

// APICallsIn applies the In predicate on the "api_calls" field.
func APICallsIn(vs ...int) predicate.UsageLog {
	return predicate.UsageLog(sql.FieldIn(FieldAPICalls, vs...))
}

// APICallsNotIn applies the NotIn predicate on the "api_calls" field.
func APICallsNotIn(vs ...int) predicate.UsageLog {
	return predicate.UsageLog(sql.FieldNotIn(FieldAPICalls, vs...))
}

// APICallsGT applies the GT predicate on the "api_calls" field.
func APICallsGT(v int) predicate.UsageLog {
	return predicate.UsageLog(sql.FieldGT(FieldAPICalls, v))
}

// APICallsGTE applies the GTE predicate on the "api_calls" field.
func APICallsGTE(v int) predicate.UsageLog {
	return predicate.UsageLog(sql.FieldGTE(FieldAPICalls, v))
}

// APICallsLT applies the LT predicate on the "api_calls" field.
func APICallsLT(v int) predicate.UsageLog {
	return predicate.UsageLog(sql.FieldLT(FieldAPICalls, v))
}

// APICallsLTE applies the LTE predicate on the "api_calls" field.
func APICallsLTE(v int) predicate.UsageLog {
	return predicate.UsageLog(sql.FieldLTE(FieldAPICalls, v))
}

// TotalDurationEQ applies the EQ predicate on the "total_duration" field.
func TotalDurationEQ(v int) predicate.UsageLog {
	return predicate.UsageLog(sql.FieldEQ(FieldTotalDuration, v))
}

// TotalDurationNEQ applies the NEQ predicate on the "total_duration" field.
func TotalDurationNEQ(v int) predicate.UsageLog {
	return predicate.UsageLog(sql.FieldNEQ(FieldTotalDuration, v))
}

// TotalDurationIn applies the In predicate on the "total_duration" field.
func TotalDurationIn(vs ...int) predicate.UsageLog {
	return predicate.UsageLog(sql.FieldIn(FieldTotalDuration, vs...))
}

// TotalDurationNotIn applies the NotIn predicate on the "total_duration" field.
func TotalDurationNotIn(vs ...int) predicate.UsageLog {
	return predicate.UsageLog(sql.FieldNotIn(FieldTotalDuration, vs...))
}

// TotalDurationGT applies the GT predicate on the "total_duration" field.
func TotalDurationGT(v int) predicate.UsageLog {
	return predicate.UsageLog(sql.FieldGT(FieldTotalDuration, v))
}

// TotalDurationGTE applies the GTE predicate on the "total_duration" field.
func TotalDurationGTE(v int) predicate.UsageLog {
	return predicate.UsageLog(sql.FieldGTE(FieldTotalDuration, v))
}

// TotalDurationLT applies the LT predicate on the "total_duration" field.
func TotalDurationLT(v int) predicate.UsageLog {
	return predicate.UsageLog(sql.FieldLT(FieldTotalDuration, v))
}

// TotalDurationLTE applies the LTE predicate on the "total_duration" field.
func TotalDurationLTE(v int) predicate.UsageLog {
	return predicate.UsageLog(sql.FieldLTE(FieldTotalDuration, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.UsageLog {
	return predicate.UsageLog(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.UsageLog {
	return predicate.UsageLog(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.UsageLog {
	return predicate.UsageLog(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.UsageLog {
	return predicate.UsageLog(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.UsageLog {
	return predicate.UsageLog(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.UsageLog {
	return predicate.UsageLog(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.UsageLog {
	return predicate.UsageLog(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.UsageLog {
	return predicate.UsageLog(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.UsageLog {
	return predicate.UsageLog(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.UsageLog {
	return predicate.UsageLog(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.UsageLog {
	return predicate.UsageLog(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.UsageLog {
	return predicate.UsageLog(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.UsageLog {
	return predicate.UsageLog(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.UsageLog {
	return predicate.UsageLog(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.UsageLog {
	return predicate.UsageLog(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.UsageLog {
	return predicate.UsageLog(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.UsageLog {
	return predicate.UsageLog(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.UsageLog {
	return predicate.UsageLog(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UsageLog) predicate.UsageLog {
	return predicate.UsageLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UsageLog) predicate.UsageLog {
	return predicate.UsageLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UsageLog) predicate.UsageLog {
	return predicate.UsageLog(sql.NotPredicates(p))
}
