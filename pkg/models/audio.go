package models

// Defaults applied to omitted generation parameters
const (
	DefaultDuration       = 5
	DefaultSteps          = 100
	DefaultNegativePrompt = "Low quality."
)

// GenerateAudioRequest represents a text-to-audio generation request
type GenerateAudioRequest struct {
	Prompt         string  `json:"prompt" validate:"required,max=1000"`
	NegativePrompt string  `json:"negative_prompt" validate:"max=1000"`
	Duration       int     `json:"duration" validate:"gte=1,lte=300"`
	Steps          int     `json:"steps" validate:"gte=10,lte=500"`
	CFGScale       float64 `json:"cfg_scale" validate:"omitempty,gte=1,lte=20"`
	Seed           *int64  `json:"seed,omitempty" validate:"omitempty,gte=0"`
}

// ApplyDefaults fills omitted fields
func (r *GenerateAudioRequest) ApplyDefaults() {
	if r.Duration == 0 {
		r.Duration = DefaultDuration
	}
	if r.Steps == 0 {
		r.Steps = DefaultSteps
	}
	if r.NegativePrompt == "" {
		r.NegativePrompt = DefaultNegativePrompt
	}
}

// UsageCounters are one day's counters
type UsageCounters struct {
	AudioGenerations int `json:"audio_generations"`
	APICalls         int `json:"api_calls"`
	TotalDuration    int `json:"total_duration"`
}

// UsageHistoryEntry is one day of usage
type UsageHistoryEntry struct {
	Date string `json:"date"`
	UsageCounters
}

// UsageHistoryResponse lists recent usage
type UsageHistoryResponse struct {
	Days []UsageHistoryEntry `json:"days"`
}
