// Code generated by ent, DO NOT EDIT.

package usagelog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the usagelog type in the database.
	Label = "usage_log"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldDate holds the string denoting the date field in the database.
	FieldDate = "date"
	// FieldAudioGenerations holds the string denoting the audio_generations field in the database.
	FieldAudioGenerations = "audio_generations"
	// FieldAPICalls holds the string denoting the api_calls field in the database.
	FieldAPICalls = "api_calls"
	// FieldTotalDuration holds the string denoting the total_duration field in the database.
	FieldTotalDuration = "total_duration"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeUser holds the string denoting the user edge name in mutations.
	EdgeUser = "user"
	// Table holds the table name of the usagelog in the database.
	Table = "usage_logs"
	// UserTable is the table that holds the user relation/edge.
	UserTable = "usage_logs"
	// UserInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	UserInverseTable = "users"
	// UserColumn is the table column denoting the user relation/edge.
	UserColumn = "user_id"
)

// Columns holds all SQL columns for usagelog fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldDate,
	FieldAudioGenerations,
	FieldAPICalls,
	FieldTotalDuration,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultAudioGenerations holds the default value on creation for the "audio_generations" field.
	DefaultAudioGenerations int
	// AudioGenerationsValidator is a validator for the "audio_generations" field. It is called by the builders before save.
	AudioGenerationsValidator func(int) error
	// DefaultAPICalls holds the default value on creation for the "api_calls" field.
	DefaultAPICalls int
	// APICallsValidator is a validator for the "api_calls" field. It is called by the builders before save.
	APICallsValidator func(int) error
	// DefaultTotalDuration holds the default value on creation for the "total_duration" field.
	DefaultTotalDuration int
	// TotalDurationValidator is a validator for the "total_duration" field. It is called by the builders before save.
	TotalDurationValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the UsageLog queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByDate orders the results by the date field.
func ByDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDate, opts...).ToFunc()
}

// ByAudioGenerations orders the results by the audio_generations field.
func ByAudioGenerations(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAudioGenerations, opts...).ToFunc()
}

// ByAPICalls orders the results by the api_calls field.
func ByAPICalls(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAPICalls, opts...).ToFunc()
}

// ByTotalDuration orders the results by the total_duration field.
func ByTotalDuration(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalDuration, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByUserField orders the results by user field.
func ByUserField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUserStep(), sql.OrderByField(field, opts...))
	}
}
func newUserStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UserInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
	)
}
