// Code generated by ent, DO NOT EDIT.

package plan

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/audiomint/backend/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Plan {
	return predicate.Plan(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Plan {
	return predicate.Plan(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Plan {
	return predicate.Plan(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Plan {
	return predicate.Plan(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Plan {
	return predicate.Plan(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Plan {
	return predicate.Plan(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Plan {
	return predicate.Plan(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldName, v))
}

// DisplayName applies equality check predicate on the "display_name" field. It's identical to DisplayNameEQ.
func DisplayName(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldDisplayName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldDescription, v))
}

// Price applies equality check predicate on the "price" field. It's identical to PriceEQ.
func Price(v float64) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldPrice, v))
}

// DailyAudioLimit applies equality check predicate on the "daily_audio_limit" field. It's identical to DailyAudioLimitEQ.
func DailyAudioLimit(v int) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldDailyAudioLimit, v))
}

// MaxAudioDuration applies equality check predicate on the "max_audio_duration" field. It's identical to MaxAudioDurationEQ.
func MaxAudioDuration(v int) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldMaxAudioDuration, v))
}

// MaxSteps applies equality check predicate on the "max_steps" field. It's identical to MaxStepsEQ.
func MaxSteps(v int) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldMaxSteps, v))
}

// CanUseAPI applies equality check predicate on the "can_use_api" field. It's identical to CanUseAPIEQ.
func CanUseAPI(v bool) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldCanUseAPI, v))
}

// CanDownload applies equality check predicate on the "can_download" field. It's identical to CanDownloadEQ.
func CanDownload(v bool) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldCanDownload, v))
}

// CanEditAudio applies equality check predicate on the "can_edit_audio" field. It's identical to CanEditAudioEQ.
func CanEditAudio(v bool) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldCanEditAudio, v))
}

// StripePriceID applies equality check predicate on the "stripe_price_id" field. It's identical to StripePriceIDEQ.
func StripePriceID(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldStripePriceID, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldIsActive, v))
}

// IsPopular applies equality check predicate on the "is_popular" field. It's identical to IsPopularEQ.
func IsPopular(v bool) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldIsPopular, v))
}

// SortOrder applies equality check predicate on the "sort_order" field. It's identical to SortOrderEQ.
func SortOrder(v int) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldSortOrder, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Plan {
	return predicate.Plan(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Plan {
	return predicate.Plan(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Plan {
	return predicate.Plan(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Plan {
	return predicate.Plan(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Plan {
	return predicate.Plan(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Plan {
	return predicate.Plan(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Plan {
	return predicate.Plan(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Plan {
	return predicate.Plan(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Plan {
	return predicate.Plan(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Plan {
	return predicate.Plan(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Plan {
	return predicate.Plan(sql.FieldContainsFold(FieldName, v))
}

// DisplayNameEQ applies the EQ predicate on the "display_name" field.
func DisplayNameEQ(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldDisplayName, v))
}

// DisplayNameNEQ applies the NEQ predicate on the "display_name" field.
func DisplayNameNEQ(v string) predicate.Plan {
	return predicate.Plan(sql.FieldNEQ(FieldDisplayName, v))
}

// DisplayNameIn applies the In predicate on the "display_name" field.
func DisplayNameIn(vs ...string) predicate.Plan {
	return predicate.Plan(sql.FieldIn(FieldDisplayName, vs...))
}

// DisplayNameNotIn applies the NotIn predicate on the "display_name" field.
func DisplayNameNotIn(vs ...string) predicate.Plan {
	return predicate.Plan(sql.FieldNotIn(FieldDisplayName, vs...))
}

// DisplayNameGT applies the GT predicate on the "display_name" field.
func DisplayNameGT(v string) predicate.Plan {
	return predicate.Plan(sql.FieldGT(FieldDisplayName, v))
}

// DisplayNameGTE applies the GTE predicate on the "display_name" field.
func DisplayNameGTE(v string) predicate.Plan {
	return predicate.Plan(sql.FieldGTE(FieldDisplayName, v))
}

// DisplayNameLT applies the LT predicate on the "display_name" field.
func DisplayNameLT(v string) predicate.Plan {
	return predicate.Plan(sql.FieldLT(FieldDisplayName, v))
}

// DisplayNameLTE applies the LTE predicate on the "display_name" field.
func DisplayNameLTE(v string) predicate.Plan {
	return predicate.Plan(sql.FieldLTE(FieldDisplayName, v))
}

// DisplayNameContains applies the Contains predicate on the "display_name" field.
func DisplayNameContains(v string) predicate.Plan {
	return predicate.Plan(sql.FieldContains(FieldDisplayName, v))
}

// DisplayNameHasPrefix applies the HasPrefix predicate on the "display_name" field.
func DisplayNameHasPrefix(v string) predicate.Plan {
	return predicate.Plan(sql.FieldHasPrefix(FieldDisplayName, v))
}

// DisplayNameHasSuffix applies the HasSuffix predicate on the "display_name" field.
func DisplayNameHasSuffix(v string) predicate.Plan {
	return predicate.Plan(sql.FieldHasSuffix(FieldDisplayName, v))
}

// DisplayNameEqualFold applies the EqualFold predicate on the "display_name" field.
func DisplayNameEqualFold(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEqualFold(FieldDisplayName, v))
}

// DisplayNameContainsFold applies the ContainsFold predicate on the "display_name" field.
func DisplayNameContainsFold(v string) predicate.Plan {
	return predicate.Plan(sql.FieldContainsFold(FieldDisplayName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Plan {
	return predicate.Plan(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Plan {
	return predicate.Plan(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Plan {
	return predicate.Plan(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Plan {
	return predicate.Plan(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Plan {
	return predicate.Plan(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Plan {
	return predicate.Plan(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Plan {
	return predicate.Plan(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Plan {
	return predicate.Plan(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Plan {
	return predicate.Plan(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Plan {
	return predicate.Plan(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Plan {
	return predicate.Plan(sql.FieldContainsFold(FieldDescription, v))
}

// PriceEQ applies the EQ predicate on the "price" field.
func PriceEQ(v float64) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldPrice, v))
}

// PriceNEQ applies the NEQ predicate on the "price" field.
func PriceNEQ(v float64) predicate.Plan {
	return predicate.Plan(sql.FieldNEQ(FieldPrice, v))
}

// PriceIn applies the In predicate on the "price" field.
func PriceIn(vs ...float64) predicate.Plan {
	return predicate.Plan(sql.FieldIn(FieldPrice, vs...))
}

// PriceNotIn applies the NotIn predicate on the "price" field.
func PriceNotIn(vs ...float64) predicate.Plan {
	return predicate.Plan(sql.FieldNotIn(FieldPrice, vs...))
}

// PriceGT applies the GT predicate on the "price" field.
func PriceGT(v float64) predicate.Plan {
	return predicate.Plan(sql.FieldGT(FieldPrice, v))
}

// PriceGTE applies the GTE predicate on the "price" field.
func PriceGTE(v float64) predicate.Plan {
	return predicate.Plan(sql.FieldGTE(FieldPrice, v))
}

// PriceLT applies the LT predicate on the "price" field.
func PriceLT(v float64) predicate.Plan {
	return predicate.Plan(sql.FieldLT(FieldPrice, v))
}

// PriceLTE applies the LTE predicate on the "price" field.
func PriceLTE(v float64) predicate.Plan {
	return predicate.Plan(sql.FieldLTE(FieldPrice, v))
}

// DailyAudioLimitEQ applies the EQ predicate on the "daily_audio_limit" field.
func DailyAudioLimitEQ(v int) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldDailyAudioLimit, v))
}

// DailyAudioLimitNEQ applies the NEQ predicate on the "daily_audio_limit" field.
func DailyAudioLimitNEQ(v int) predicate.Plan {
	return predicate.Plan(sql.FieldNEQ(FieldDailyAudioLimit, v))
}

// DailyAudioLimitIn applies the In predicate on the "daily_audio_limit" field.
func DailyAudioLimitIn(vs ...int) predicate.Plan {
	return predicate.Plan(sql.FieldIn(FieldDailyAudioLimit, vs...))
}

// DailyAudioLimitNotIn applies the NotIn predicate on the "daily_audio_limit" field.
func DailyAudioLimitNotIn(vs ...int) predicate.Plan {
	return predicate.Plan(sql.FieldNotIn(FieldDailyAudioLimit, vs...))
}

// DailyAudioLimitGT applies the GT predicate on the "daily_audio_limit" field.
func DailyAudioLimitGT(v int) predicate.Plan {
	return predicate.Plan(sql.FieldGT(FieldDailyAudioLimit, v))
}

// DailyAudioLimitGTE applies the GTE predicate on the "daily_audio_limit" field.
func DailyAudioLimitGTE(v int) predicate.Plan {
	return predicate.Plan(sql.FieldGTE(FieldDailyAudioLimit, v))
}

// DailyAudioLimitLT applies the LT predicate on the "daily_audio_limit" field.
func DailyAudioLimitLT(v int) predicate.Plan {
	return predicate.Plan(sql.FieldLT(FieldDailyAudioLimit, v))
}

// DailyAudioLimitLTE applies the LTE predicate on the "daily_audio_limit" field.
func DailyAudioLimitLTE(v int) predicate.Plan {
	return predicate.Plan(sql.FieldLTE(FieldDailyAudioLimit, v))
}

// MaxAudioDurationEQ applies the EQ predicate on the "max_audio_duration" field.
func MaxAudioDurationEQ(v int) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldMaxAudioDuration, v))
}

// MaxAudioDurationNEQ applies the NEQ predicate on the "max_audio_duration" field.
func MaxAudioDurationNEQ(v int) predicate.Plan {
	return predicate.Plan(sql.FieldNEQ(FieldMaxAudioDuration, v))
}

// MaxAudioDurationIn applies the In predicate on the "max_audio_duration" field.
func MaxAudioDurationIn(vs ...int) predicate.Plan {
	return predicate.Plan(sql.FieldIn(FieldMaxAudioDuration, vs...))
}

// MaxAudioDurationNotIn applies the NotIn predicate on the "max_audio_duration" field.
func MaxAudioDurationNotIn(vs ...int) predicate.Plan {
	return predicate.Plan(sql.FieldNotIn(FieldMaxAudioDuration, vs...))
}

// MaxAudioDurationGT applies the GT predicate on the "max_audio_duration" field.
func MaxAudioDurationGT(v int) predicate.Plan {
	return predicate.Plan(sql.FieldGT(FieldMaxAudioDuration, v))
}

// MaxAudioDurationGTE applies the GTE predicate on the "max_audio_duration" field.
func MaxAudioDurationGTE(v int) predicate.Plan {
	return predicate.Plan(sql.FieldGTE(FieldMaxAudioDuration, v))
}

// MaxAudioDurationLT applies the LT predicate on the "max_audio_duration" field.
func MaxAudioDurationLT(v int) predicate.Plan {
	return predicate.Plan(sql.FieldLT(FieldMaxAudioDuration, v))
}

// MaxAudioDurationLTE applies the LTE predicate on the "max_audio_duration" field.
func MaxAudioDurationLTE(v int) predicate.Plan {
	return predicate.Plan(sql.FieldLTE(FieldMaxAudioDuration, v))
}

// MaxStepsEQ applies the EQ predicate on the "max_steps" field.
func MaxStepsEQ(v int) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldMaxSteps, v))
}

// MaxStepsNEQ applies the NEQ predicate on the "max_steps" field.
func MaxStepsNEQ(v int) predicate.Plan {
	return predicate.Plan(sql.FieldNEQ(FieldMaxSteps, v))
}

// MaxStepsIn applies the In predicate on the "max_steps" field.
func MaxStepsIn(vs ...int) predicate.Plan {
	return predicate.Plan(sql.FieldIn(FieldMaxSteps, vs...))
}

// MaxStepsNotIn applies the NotIn predicate on the "max_steps" field.
func MaxStepsNotIn(vs ...int) predicate.Plan {
	return predicate.Plan(sql.FieldNotIn(FieldMaxSteps, vs...))
}

// MaxStepsGT applies the GT predicate on the "max_steps" field.
func MaxStepsGT(v int) predicate.Plan {
	return predicate.Plan(sql.FieldGT(FieldMaxSteps, v))
}

// MaxStepsGTE applies the GTE predicate on the "max_steps" field.
func MaxStepsGTE(v int) predicate.Plan {
	return predicate.Plan(sql.FieldGTE(FieldMaxSteps, v))
}

// MaxStepsLT applies the LT predicate on the "max_steps" field.
func MaxStepsLT(v int) predicate.Plan {
	return predicate.Plan(sql.FieldLT(FieldMaxSteps, v))
}

// MaxStepsLTE applies the LTE predicate on the "max_steps" field.
func MaxStepsLTE(v int) predicate.Plan {
	return predicate.Plan(sql.FieldLTE(FieldMaxSteps, v))
}

// CanUseAPIEQ applies the EQ predicate on the "can_use_api" field.
func CanUseAPIEQ(v bool) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldCanUseAPI, v))
}

// CanUseAPINEQ applies the NEQ predicate on the "can_use_api" field.
func CanUseAPINEQ(v bool) predicate.Plan {
	return predicate.Plan(sql.FieldNEQ(FieldCanUseAPI, v))
}

// CanDownloadEQ applies the EQ predicate on the "can_download" field.
func CanDownloadEQ(v bool) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldCanDownload, v))
}

// CanDownloadNEQ applies the NEQ predicate on the "can_download" field.
func CanDownloadNEQ(v bool) predicate.Plan {
	return predicate.Plan(sql.FieldNEQ(FieldCanDownload, v))
}

// CanEditAudioEQ applies the EQ predicate on the "can_edit_audio" field.
func CanEditAudioEQ(v bool) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldCanEditAudio, v))
}

// CanEditAudioNEQ applies the NEQ predicate on the "can_edit_audio" field.
func CanEditAudioNEQ(v bool) predicate.Plan {
	return predicate.Plan(sql.FieldNEQ(FieldCanEditAudio, v))
}

// StripePriceIDEQ applies the EQ predicate on the "stripe_price_id" field.
func StripePriceIDEQ(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldStripePriceID, v))
}

// StripePriceIDNEQ applies the NEQ predicate on the "stripe_price_id" field.
func StripePriceIDNEQ(v string) predicate.Plan {
	return predicate.Plan(sql.FieldNEQ(FieldStripePriceID, v))
}

// StripePriceIDIn applies the In predicate on the "stripe_price_id" field.
func StripePriceIDIn(vs ...string) predicate.Plan {
	return predicate.Plan(sql.FieldIn(FieldStripePriceID, vs...))
}

// StripePriceIDNotIn applies the NotIn predicate on the "stripe_price_id" field.
func StripePriceIDNotIn(vs ...string) predicate.Plan {
	return predicate.Plan(sql.FieldNotIn(FieldStripePriceID, vs...))
}

// StripePriceIDGT applies the GT predicate on the "stripe_price_id" field.
func StripePriceIDGT(v string) predicate.Plan {
	return predicate.Plan(sql.FieldGT(FieldStripePriceID, v))
}

// StripePriceIDGTE applies the GTE predicate on the "stripe_price_id" field.
func StripePriceIDGTE(v string) predicate.Plan {
	return predicate.Plan(sql.FieldGTE(FieldStripePriceID, v))
}

// StripePriceIDLT applies the LT predicate on the "stripe_price_id" field.
func StripePriceIDLT(v string) predicate.Plan {
	return predicate.Plan(sql.FieldLT(FieldStripePriceID, v))
}

// StripePriceIDLTE applies the LTE predicate on the "stripe_price_id" field.
func StripePriceIDLTE(v string) predicate.Plan {
	return predicate.Plan(sql.FieldLTE(FieldStripePriceID, v))
}

// StripePriceIDContains applies the Contains predicate on the "stripe_price_id" field.
func StripePriceIDContains(v string) predicate.Plan {
	return predicate.Plan(sql.FieldContains(FieldStripePriceID, v))
}

// StripePriceIDHasPrefix applies the HasPrefix predicate on the "stripe_price_id" field.
func StripePriceIDHasPrefix(v string) predicate.Plan {
	return predicate.Plan(sql.FieldHasPrefix(FieldStripePriceID, v))
}

// StripePriceIDHasSuffix applies the HasSuffix predicate on the "stripe_price_id" field.
func StripePriceIDHasSuffix(v string) predicate.Plan {
	return predicate.Plan(sql.FieldHasSuffix(FieldStripePriceID, v))
}

// StripePriceIDIsNil applies the IsNil predicate on the "stripe_price_id" field.
func StripePriceIDIsNil() predicate.Plan {
	return predicate.Plan(sql.FieldIsNull(FieldStripePriceID))
}

// StripePriceIDNotNil applies the NotNil predicate on the "stripe_price_id" field.
func StripePriceIDNotNil() predicate.Plan {
	return predicate.Plan(sql.FieldNotNull(FieldStripePriceID))
}

// StripePriceIDEqualFold applies the EqualFold predicate on the "stripe_price_id" field.
func StripePriceIDEqualFold(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEqualFold(FieldStripePriceID, v))
}

// StripePriceIDContainsFold applies the ContainsFold predicate on the "stripe_price_id" field.
func StripePriceIDContainsFold(v string) predicate.Plan {
	return predicate.Plan(sql.FieldContainsFold(FieldStripePriceID, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.Plan {
	return predicate.Plan(sql.FieldNEQ(FieldIsActive, v))
}

// IsPopularEQ applies the EQ predicate on the "is_popular" field.
func IsPopularEQ(v bool) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldIsPopular, v))
}

// IsPopularNEQ applies the NEQ predicate on the "is_popular" field.
func IsPopularNEQ(v bool) predicate.Plan {
	return predicate.Plan(sql.FieldNEQ(FieldIsPopular, v))
}

// SortOrderEQ applies the EQ predicate on the "sort_order" field.
func SortOrderEQ(v int) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldSortOrder, v))
}

// SortOrderNEQ applies the NEQ predicate on the "sort_order" field.
func SortOrderNEQ(v int) predicate.Plan {
	return predicate.Plan(sql.FieldNEQ(FieldSortOrder, v))
}

// SortOrderIn applies the In predicate on the "sort_order" field.
func SortOrderIn(vs ...int) predicate.Plan {
	return predicate.Plan(sql.FieldIn(FieldSortOrder, vs...))
}

// SortOrderNotIn applies the NotIn predicate on the "sort_order" field.
func SortOrderNotIn(vs ...int) predicate.Plan {
	return predicate.Plan(sql.FieldNotIn(FieldSortOrder, vs...))
}

// SortOrderGT applies the GT predicate on the "sort_order" field.
func SortOrderGT(v int) predicate.Plan {
	return predicate.Plan(sql.FieldGT(FieldSortOrder, v))
}

// SortOrderGTE applies the GTE predicate on the "sort_order" field.
func SortOrderGTE(v int) predicate.Plan {
	return predicate.Plan(sql.FieldGTE(FieldSortOrder, v))
}

// SortOrderLT applies the LT predicate on the "sort_order" field.
func SortOrderLT(v int) predicate.Plan {
	return predicate.Plan(sql.FieldLT(FieldSortOrder, v))
}

// SortOrderLTE applies the LTE predicate on the "sort_order" field.
func SortOrderLTE(v int) predicate.Plan {
	return predicate.Plan(sql.FieldLTE(FieldSortOrder, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Plan {
	return predicate.Plan(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasSubscriptions applies the HasEdge predicate on the "subscriptions" edge.
func HasSubscriptions() predicate.Plan {
	return predicate.Plan(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SubscriptionsTable, SubscriptionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSubscriptionsWith applies the HasEdge predicate on the "subscriptions" edge with a given conditions (other predicates).
func HasSubscriptionsWith(preds ...predicate.Subscription) predicate.Plan {
	return predicate.Plan(func(s *sql.Selector) {
		step := newSubscriptionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Plan) predicate.Plan {
	return predicate.Plan(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Plan) predicate.Plan {
	return predicate.Plan(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Plan) predicate.Plan {
	return predicate.Plan(sql.NotPredicates(p))
}
