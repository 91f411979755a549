// Code generated by ent, DO NOT EDIT.

package plan

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the plan type in the database.
	Label = "plan"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDisplayName holds the string denoting the display_name field in the database.
	FieldDisplayName = "display_name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldPrice holds the string denoting the price field in the database.
	FieldPrice = "price"
	// FieldDailyAudioLimit holds the string denoting the daily_audio_limit field in the database.
	FieldDailyAudioLimit = "daily_audio_limit"
	// FieldMaxAudioDuration holds the string denoting the max_audio_duration field in the database.
	FieldMaxAudioDuration = "max_audio_duration"
	// FieldMaxSteps holds the string denoting the max_steps field in the database.
	FieldMaxSteps = "max_steps"
	// FieldCanUseAPI holds the string denoting the can_use_api field in the database.
	FieldCanUseAPI = "can_use_api"
	// FieldCanDownload holds the string denoting the can_download field in the database.
	FieldCanDownload = "can_download"
	// FieldCanEditAudio holds the string denoting the can_edit_audio field in the database.
	FieldCanEditAudio = "can_edit_audio"
	// FieldStripePriceID holds the string denoting the stripe_price_id field in the database.
	FieldStripePriceID = "stripe_price_id"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// FieldIsPopular holds the string denoting the is_popular field in the database.
	FieldIsPopular = "is_popular"
	// FieldSortOrder holds the string denoting the sort_order field in the database.
	FieldSortOrder = "sort_order"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeSubscriptions holds the string denoting the subscriptions edge name in mutations.
	EdgeSubscriptions = "subscriptions"
	// Table holds the table name of the plan in the database.
	Table = "plans"
	// SubscriptionsTable is the table that holds the subscriptions relation/edge.
	SubscriptionsTable = "subscriptions"
	// SubscriptionsInverseTable is the table name for the Subscription entity.
	// It exists in this package in order to avoid circular dependency with the "subscription" package.
	SubscriptionsInverseTable = "subscriptions"
	// SubscriptionsColumn is the table column denoting the subscriptions relation/edge.
	SubscriptionsColumn = "plan_id"
)

// Columns holds all SQL columns for plan fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldDisplayName,
	FieldDescription,
	FieldPrice,
	FieldDailyAudioLimit,
	FieldMaxAudioDuration,
	FieldMaxSteps,
	FieldCanUseAPI,
	FieldCanDownload,
	FieldCanEditAudio,
	FieldStripePriceID,
	FieldIsActive,
	FieldIsPopular,
	FieldSortOrder,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DisplayNameValidator is a validator for the "display_name" field. It is called by the builders before save.
	DisplayNameValidator func(string) error
	// DefaultDescription holds the default value on creation for the "description" field.
	DefaultDescription string
	// DefaultPrice holds the default value on creation for the "price" field.
	DefaultPrice float64
	// PriceValidator is a validator for the "price" field. It is called by the builders before save.
	PriceValidator func(float64) error
	// DefaultDailyAudioLimit holds the default value on creation for the "daily_audio_limit" field.
	DefaultDailyAudioLimit int
	// DailyAudioLimitValidator is a validator for the "daily_audio_limit" field. It is called by the builders before save.
	DailyAudioLimitValidator func(int) error
	// DefaultMaxAudioDuration holds the default value on creation for the "max_audio_duration" field.
	DefaultMaxAudioDuration int
	// MaxAudioDurationValidator is a validator for the "max_audio_duration" field. It is called by the builders before save.
	MaxAudioDurationValidator func(int) error
	// DefaultMaxSteps holds the default value on creation for the "max_steps" field.
	DefaultMaxSteps int
	// MaxStepsValidator is a validator for the "max_steps" field. It is called by the builders before save.
	MaxStepsValidator func(int) error
	// DefaultCanUseAPI holds the default value on creation for the "can_use_api" field.
	DefaultCanUseAPI bool
	// DefaultCanDownload holds the default value on creation for the "can_download" field.
	DefaultCanDownload bool
	// DefaultCanEditAudio holds the default value on creation for the "can_edit_audio" field.
	DefaultCanEditAudio bool
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
	// DefaultIsPopular holds the default value on creation for the "is_popular" field.
	DefaultIsPopular bool
	// DefaultSortOrder holds the default value on creation for the "sort_order" field.
	DefaultSortOrder int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Plan queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDisplayName orders the results by the display_name field.
func ByDisplayName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDisplayName, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByPrice orders the results by the price field.
func ByPrice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrice, opts...).ToFunc()
}

// ByDailyAudioLimit orders the results by the daily_audio_limit field.
func ByDailyAudioLimit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDailyAudioLimit, opts...).ToFunc()
}

// ByMaxAudioDuration orders the results by the max_audio_duration field.
func ByMaxAudioDuration(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxAudioDuration, opts...).ToFunc()
}

// ByMaxSteps orders the results by the max_steps field.
func ByMaxSteps(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxSteps, opts...).ToFunc()
}

// ByCanUseAPI orders the results by the can_use_api field.
func ByCanUseAPI(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCanUseAPI, opts...).ToFunc()
}

// ByCanDownload orders the results by the can_download field.
func ByCanDownload(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCanDownload, opts...).ToFunc()
}

// ByCanEditAudio orders the results by the can_edit_audio field.
func ByCanEditAudio(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCanEditAudio, opts...).ToFunc()
}

// ByStripePriceID orders the results by the stripe_price_id field.
func ByStripePriceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStripePriceID, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}

// ByIsPopular orders the results by the is_popular field.
func ByIsPopular(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsPopular, opts...).ToFunc()
}

// BySortOrder orders the results by the sort_order field.
func BySortOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSortOrder, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// BySubscriptionsCount orders the results by subscriptions count.
func BySubscriptionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSubscriptionsStep(), opts...)
	}
}

// BySubscriptions orders the results by subscriptions terms.
func BySubscriptions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSubscriptionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newSubscriptionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SubscriptionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SubscriptionsTable, SubscriptionsColumn),
	)
}
