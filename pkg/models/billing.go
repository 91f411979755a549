package models

// CheckoutRequest represents a request to create a checkout session
type CheckoutRequest struct {
	PlanID int `json:"plan_id" validate:"required,gt=0"`
}

// CheckoutResponse represents a checkout session response
type CheckoutResponse struct {
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
	ExpiresAt int64  `json:"expires_at"`
}

// PortalRequest represents a request to open the billing portal
type PortalRequest struct {
	ReturnURL string `json:"return_url" validate:"omitempty,url"`
}

// CustomerPortalResponse represents a customer portal session response
type CustomerPortalResponse struct {
	URL string `json:"url"`
}

// WebhookResponse acknowledges a billing provider event
type WebhookResponse struct {
	Status string `json:"status"`
}

// PlanInfo is a purchasable plan as shown to clients
type PlanInfo struct {
	ID               int     `json:"id"`
	Name             string  `json:"name"`
	DisplayName      string  `json:"display_name"`
	Description      string  `json:"description"`
	Price            float64 `json:"price"`
	DailyAudioLimit  int     `json:"daily_audio_limit"`
	MaxAudioDuration int     `json:"max_audio_duration"`
	MaxSteps         int     `json:"max_steps"`
	CanUseAPI        bool    `json:"can_use_api"`
	CanDownload      bool    `json:"can_download"`
	CanEditAudio     bool    `json:"can_edit_audio"`
	IsPopular        bool    `json:"is_popular"`
}

// PlansResponse lists purchasable plans
type PlansResponse struct {
	Plans []PlanInfo `json:"plans"`
}

// SubscriptionStatusResponse summarises a user's billing state and today's usage
type SubscriptionStatusResponse struct {
	HasSubscription  bool          `json:"has_subscription"`
	Plan             *PlanInfo     `json:"plan"`
	Status           string        `json:"status,omitempty"`
	CurrentPeriodEnd string        `json:"current_period_end,omitempty"`
	DaysRemaining    *int          `json:"days_remaining"`
	CurrentUsage     UsageCounters `json:"current_usage"`
	UsageLimit       int           `json:"usage_limit"`
	UsagePercentage  float64       `json:"usage_percentage"`
	LimitsSource     string        `json:"limits_source"`
}
