// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/audiomint/backend/ent/plan"
	"github.com/audiomint/backend/ent/schema"
	"github.com/audiomint/backend/ent/subscription"
	"github.com/audiomint/backend/ent/usagelog"
	"github.com/audiomint/backend/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	planFields := schema.Plan{}.Fields()
	_ = planFields
	// planDescName is the schema descriptor for name field.
	planDescName := planFields[0].Descriptor()
	// plan.NameValidator is a validator for the "name" field. It is called by the builders before save.
	plan.NameValidator = planDescName.Validators[0].(func(string) error)
	// planDescDisplayName is the schema descriptor for display_name field.
	planDescDisplayName := planFields[1].Descriptor()
	// plan.DisplayNameValidator is a validator for the "display_name" field. It is called by the builders before save.
	plan.DisplayNameValidator = planDescDisplayName.Validators[0].(func(string) error)
	// planDescDescription is the schema descriptor for description field.
	planDescDescription := planFields[2].Descriptor()
	// plan.DefaultDescription holds the default value on creation for the description field.
	plan.DefaultDescription = planDescDescription.Default.(string)
	// planDescPrice is the schema descriptor for price field.
	planDescPrice := planFields[3].Descriptor()
	// plan.DefaultPrice holds the default value on creation for the price field.
	plan.DefaultPrice = planDescPrice.Default.(float64)
	// plan.PriceValidator is a validator for the "price" field. It is called by the builders before save.
	plan.PriceValidator = planDescPrice.Validators[0].(func(float64) error)
	// planDescDailyAudioLimit is the schema descriptor for daily_audio_limit field.
	planDescDailyAudioLimit := planFields[4].Descriptor()
	// plan.DefaultDailyAudioLimit holds the default value on creation for the daily_audio_limit field.
	plan.DefaultDailyAudioLimit = planDescDailyAudioLimit.Default.(int)
	// plan.DailyAudioLimitValidator is a validator for the "daily_audio_limit" field. It is called by the builders before save.
	plan.DailyAudioLimitValidator = planDescDailyAudioLimit.Validators[0].(func(int) error)
	// planDescMaxAudioDuration is the schema descriptor for max_audio_duration field.
	planDescMaxAudioDuration := planFields[5].Descriptor()
	// plan.DefaultMaxAudioDuration holds the default value on creation for the max_audio_duration field.
	plan.DefaultMaxAudioDuration = planDescMaxAudioDuration.Default.(int)
	// plan.MaxAudioDurationValidator is a validator for the "max_audio_duration" field. It is called by the builders before save.
	plan.MaxAudioDurationValidator = planDescMaxAudioDuration.Validators[0].(func(int) error)
	// planDescMaxSteps is the schema descriptor for max_steps field.
	planDescMaxSteps := planFields[6].Descriptor()
	// plan.DefaultMaxSteps holds the default value on creation for the max_steps field.
	plan.DefaultMaxSteps = planDescMaxSteps.Default.(int)
	// plan.MaxStepsValidator is a validator for the "max_steps" field. It is called by the builders before save.
	plan.MaxStepsValidator = planDescMaxSteps.Validators[0].(func(int) error)
	// planDescCanUseAPI is the schema descriptor for can_use_api field.
	planDescCanUseAPI := planFields[7].Descriptor()
	// plan.DefaultCanUseAPI holds the default value on creation for the can_use_api field.
	plan.DefaultCanUseAPI = planDescCanUseAPI.Default.(bool)
	// planDescCanDownload is the schema descriptor for can_download field.
	planDescCanDownload := planFields[8].Descriptor()
	// plan.DefaultCanDownload holds the default value on creation for the can_download field.
	plan.DefaultCanDownload = planDescCanDownload.Default.(bool)
	// planDescCanEditAudio is the schema descriptor for can_edit_audio field.
	planDescCanEditAudio := planFields[9].Descriptor()
	// plan.DefaultCanEditAudio holds the default value on creation for the can_edit_audio field.
	plan.DefaultCanEditAudio = planDescCanEditAudio.Default.(bool)
	// planDescIsActive is the schema descriptor for is_active field.
	planDescIsActive := planFields[11].Descriptor()
	// plan.DefaultIsActive holds the default value on creation for the is_active field.
	plan.DefaultIsActive = planDescIsActive.Default.(bool)
	// planDescIsPopular is the schema descriptor for is_popular field.
	planDescIsPopular := planFields[12].Descriptor()
	// plan.DefaultIsPopular holds the default value on creation for the is_popular field.
	plan.DefaultIsPopular = planDescIsPopular.Default.(bool)
	// planDescSortOrder is the schema descriptor for sort_order field.
	planDescSortOrder := planFields[13].Descriptor()
	// plan.DefaultSortOrder holds the default value on creation for the sort_order field.
	plan.DefaultSortOrder = planDescSortOrder.Default.(int)
	// planDescCreatedAt is the schema descriptor for created_at field.
	planDescCreatedAt := planFields[14].Descriptor()
	// plan.DefaultCreatedAt holds the default value on creation for the created_at field.
	plan.DefaultCreatedAt = planDescCreatedAt.Default.(func() time.Time)
	// planDescUpdatedAt is the schema descriptor for updated_at field.
	planDescUpdatedAt := planFields[15].Descriptor()
	// plan.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	plan.DefaultUpdatedAt = planDescUpdatedAt.Default.(func() time.Time)
	// plan.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	plan.UpdateDefaultUpdatedAt = planDescUpdatedAt.UpdateDefault.(func() time.Time)
	subscriptionFields := schema.Subscription{}.Fields()
	_ = subscriptionFields
	// subscriptionDescUserID is the schema descriptor for user_id field.
	subscriptionDescUserID := subscriptionFields[0].Descriptor()
	// subscription.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	subscription.UserIDValidator = subscriptionDescUserID.Validators[0].(func(int) error)
	// subscriptionDescCreatedAt is the schema descriptor for created_at field.
	subscriptionDescCreatedAt := subscriptionFields[7].Descriptor()
	// subscription.DefaultCreatedAt holds the default value on creation for the created_at field.
	subscription.DefaultCreatedAt = subscriptionDescCreatedAt.Default.(func() time.Time)
	// subscriptionDescUpdatedAt is the schema descriptor for updated_at field.
	subscriptionDescUpdatedAt := subscriptionFields[8].Descriptor()
	// subscription.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	subscription.DefaultUpdatedAt = subscriptionDescUpdatedAt.Default.(func() time.Time)
	// subscription.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	subscription.UpdateDefaultUpdatedAt = subscriptionDescUpdatedAt.UpdateDefault.(func() time.Time)
	usagelogFields := schema.UsageLog{}.Fields()
	_ = usagelogFields
	// usagelogDescAudioGenerations is the schema descriptor for audio_generations field.
	usagelogDescAudioGenerations := usagelogFields[2].Descriptor()
	// usagelog.DefaultAudioGenerations holds the default value on creation for the audio_generations field.
	usagelog.DefaultAudioGenerations = usagelogDescAudioGenerations.Default.(int)
	// usagelog.AudioGenerationsValidator is a validator for the "audio_generations" field. It is called by the builders before save.
	usagelog.AudioGenerationsValidator = usagelogDescAudioGenerations.Validators[0].(func(int) error)
	// usagelogDescAPICalls is the schema descriptor for api_calls field.
	usagelogDescAPICalls := usagelogFields[3].Descriptor()
	// usagelog.DefaultAPICalls holds the default value on creation for the api_calls field.
	usagelog.DefaultAPICalls = usagelogDescAPICalls.Default.(int)
	// usagelog.APICallsValidator is a validator for the "api_calls" field. It is called by the builders before save.
	usagelog.APICallsValidator = usagelogDescAPICalls.Validators[0].(func(int) error)
	// usagelogDescTotalDuration is the schema descriptor for total_duration field.
	usagelogDescTotalDuration := usagelogFields[4].Descriptor()
	// usagelog.DefaultTotalDuration holds the default value on creation for the total_duration field.
	usagelog.DefaultTotalDuration = usagelogDescTotalDuration.Default.(int)
	// usagelog.TotalDurationValidator is a validator for the "total_duration" field. It is called by the builders before save.
	usagelog.TotalDurationValidator = usagelogDescTotalDuration.Validators[0].(func(int) error)
	// usagelogDescCreatedAt is the schema descriptor for created_at field.
	usagelogDescCreatedAt := usagelogFields[5].Descriptor()
	// usagelog.DefaultCreatedAt holds the default value on creation for the created_at field.
	usagelog.DefaultCreatedAt = usagelogDescCreatedAt.Default.(func() time.Time)
	// usagelogDescUpdatedAt is the schema descriptor for updated_at field.
	usagelogDescUpdatedAt := usagelogFields[6].Descriptor()
	// usagelog.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	usagelog.DefaultUpdatedAt = usagelogDescUpdatedAt.Default.(func() time.Time)
	// usagelog.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	usagelog.UpdateDefaultUpdatedAt = usagelogDescUpdatedAt.UpdateDefault.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[0].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[1].Descriptor()
	// user.DefaultName holds the default value on creation for the name field.
	user.DefaultName = userDescName.Default.(string)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[3].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
}
