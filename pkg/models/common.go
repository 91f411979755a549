package models

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// QuotaErrorResponse is returned when a generation is refused
type QuotaErrorResponse struct {
	Error        string `json:"error"`
	Message      string `json:"message"`
	CurrentUsage int    `json:"current_usage"`
	DailyLimit   int    `json:"daily_limit"`
	Remaining    int    `json:"remaining"`
	Requested    int    `json:"requested,omitempty"`
	Max          int    `json:"max,omitempty"`
}
