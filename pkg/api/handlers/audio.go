package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/audiomint/backend/ent"
	apierrors "github.com/audiomint/backend/pkg/api/errors"
	"github.com/audiomint/backend/pkg/api/middleware"
	"github.com/audiomint/backend/pkg/domain"
	"github.com/audiomint/backend/pkg/generation"
	"github.com/audiomint/backend/pkg/logger"
	"github.com/audiomint/backend/pkg/metrics"
	"github.com/audiomint/backend/pkg/models"
	"github.com/audiomint/backend/pkg/quota"
)

// QuotaGate admits generations and charges them afterwards.
type QuotaGate interface {
	Authorize(ctx context.Context, userID int, req quota.Request) (*quota.Admission, error)
	RecordUsage(ctx context.Context, userID, seconds int) (*ent.UsageLog, error)
	RecordAPICall(ctx context.Context, userID int) error
}

// AudioHandler serves text-to-audio generation
type AudioHandler struct {
	gate      QuotaGate
	generator generation.Generator
	validator *validator.Validate
	log       logger.Logger
	m         *metrics.Metrics
}

// NewAudioHandler creates a new audio handler
func NewAudioHandler(gate QuotaGate, generator generation.Generator, log logger.Logger, m *metrics.Metrics) *AudioHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &AudioHandler{
		gate:      gate,
		generator: generator,
		validator: validator.New(),
		log:       log.With("component", "audio_handler"),
		m:         m,
	}
}

// Generate handles a generation request
// @Summary Generate audio
// @Description Generate a WAV clip from a text prompt within the caller's daily plan limits
// @Tags Audio
// @Accept json
// @Produce audio/wav
// @Security BearerAuth
// @Security ApiKeyAuth
// @Param request body models.GenerateAudioRequest true "Generation parameters"
// @Success 200 {file} binary "WAV audio with X-Usage-Count, X-Usage-Limit and X-Usage-Remaining headers"
// @Failure 400 {object} models.QuotaErrorResponse "Invalid request, or duration or steps above the plan maximum"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 403 {object} models.QuotaErrorResponse "Plan does not include API access"
// @Failure 429 {object} models.QuotaErrorResponse "Daily limit reached"
// @Failure 502 {object} models.ErrorResponse "Generation failed"
// @Failure 503 {object} models.ErrorResponse "Usage store unavailable"
// @Router /audio/generate [post]
func (h *AudioHandler) Generate(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return apierrors.UnauthorizedError(c)
	}

	var req models.GenerateAudioRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	req.ApplyDefaults()
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	ctx := c.Request().Context()
	viaAPI := middleware.ViaAPIKey(c)

	adm, err := h.gate.Authorize(ctx, userID, quota.Request{
		Duration: req.Duration,
		Steps:    req.Steps,
		ViaAPI:   viaAPI,
	})
	if err != nil {
		return h.refuse(c, err)
	}

	audio, err := h.generator.Generate(ctx, generation.Params{
		Prompt:         req.Prompt,
		NegativePrompt: req.NegativePrompt,
		Duration:       req.Duration,
		Steps:          req.Steps,
		CFGScale:       req.CFGScale,
		Seed:           req.Seed,
	})
	if err != nil {
		h.m.RecordGenerationError()
		h.log.Error("Generation failed", "user_id", userID, "error", err)
		return c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error:   "generation_failed",
			Message: "Audio generation failed. You have not been charged.",
		})
	}

	// The clip exists now, so a client hanging up must not skip the charge.
	chargeCtx := context.WithoutCancel(ctx)
	duration := audio.Duration
	if duration <= 0 {
		duration = req.Duration
	}
	count := adm.CurrentUsage + 1
	if row, err := h.gate.RecordUsage(chargeCtx, userID, duration); err != nil {
		h.log.Error("Generated audio could not be charged", "user_id", userID, "duration", duration, "error", err)
	} else {
		count = row.AudioGenerations
	}
	if viaAPI {
		_ = h.gate.RecordAPICall(chargeCtx, userID)
	}

	limit := adm.Limits.DailyLimit
	remaining := limit - count
	if remaining < 0 {
		remaining = 0
	}

	header := c.Response().Header()
	header.Set("X-Usage-Count", strconv.Itoa(count))
	header.Set("X-Usage-Limit", strconv.Itoa(limit))
	header.Set("X-Usage-Remaining", strconv.Itoa(remaining))
	disposition := "inline"
	if adm.Limits.CanDownload {
		disposition = "attachment"
	}
	header.Set("Content-Disposition", fmt.Sprintf(`%s; filename="audio_%d.wav"`, disposition, audio.Seed))

	return c.Blob(http.StatusOK, audio.ContentType, audio.Data)
}

func (h *AudioHandler) refuse(c echo.Context, err error) error {
	var denial *quota.Denial
	if !errors.As(err, &denial) {
		if errors.Is(err, domain.ErrStoreUnavailable) {
			return apierrors.ServiceUnavailable(c, err)
		}
		return apierrors.InternalError(c, err)
	}

	status := http.StatusBadRequest
	switch {
	case errors.Is(denial, domain.ErrQuotaExceeded):
		status = http.StatusTooManyRequests
	case errors.Is(denial, domain.ErrAPIAccessDenied):
		status = http.StatusForbidden
	}

	return c.JSON(status, models.QuotaErrorResponse{
		Error:        denialCode(denial.Reason.Code),
		Message:      denial.Error(),
		CurrentUsage: denial.CurrentUsage,
		DailyLimit:   denial.DailyLimit,
		Remaining:    denial.Remaining,
		Requested:    denial.Requested,
		Max:          denial.Max,
	})
}

var denialCodes = map[string]string{
	domain.ErrCodeQuotaExceeded:    "quota_exceeded",
	domain.ErrCodeDurationExceeded: "duration_exceeded",
	domain.ErrCodeStepsExceeded:    "steps_exceeded",
	domain.ErrCodeAPIAccessDenied:  "api_access_denied",
}

func denialCode(code string) string {
	if c, ok := denialCodes[code]; ok {
		return c
	}
	return "forbidden"
}
