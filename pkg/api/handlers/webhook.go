package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/audiomint/backend/pkg/billing"
	"github.com/audiomint/backend/pkg/models"
)

// MaxWebhookBody caps provider payloads.
const MaxWebhookBody = 64 << 10

// WebhookProcessor verifies and applies one provider delivery.
type WebhookProcessor interface {
	Handle(ctx context.Context, payload []byte, signatureHeader string) billing.Result
}

// WebhookHandler receives billing provider events
type WebhookHandler struct {
	processor WebhookProcessor
}

// NewWebhookHandler creates a new webhook handler
func NewWebhookHandler(processor WebhookProcessor) *WebhookHandler {
	return &WebhookHandler{processor: processor}
}

// HandleStripe handles Stripe webhook events
// @Summary Handle Stripe webhook
// @Description Verify and apply a Stripe event to the subscription ledger
// @Tags Billing
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Stripe webhook signature"
// @Success 200 {object} models.WebhookResponse "Event accepted, ignored or already processed"
// @Failure 400 {object} models.ErrorResponse "Unsigned or malformed event"
// @Failure 413 {object} models.ErrorResponse "Payload too large"
// @Failure 500 {object} models.ErrorResponse "Not configured, or the event should be redelivered"
// @Router /webhook/stripe [post]
func (h *WebhookHandler) HandleStripe(c echo.Context) error {
	body, err := io.ReadAll(http.MaxBytesReader(c.Response(), c.Request().Body, MaxWebhookBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{
				Error:   "payload_too_large",
				Message: "Webhook payload exceeds the size limit",
			})
		}
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_body",
			Message: "Failed to read request body",
		})
	}

	res := h.processor.Handle(c.Request().Context(), body, c.Request().Header.Get("Stripe-Signature"))
	status := res.Outcome.HTTPStatus()

	switch res.Outcome {
	case billing.OutcomeRejected:
		return c.JSON(status, models.ErrorResponse{
			Error:   "invalid_event",
			Message: "Event signature or payload is invalid",
		})
	case billing.OutcomeMisconfigured:
		return c.JSON(status, models.ErrorResponse{
			Error:   "webhook_not_configured",
			Message: "Webhook processing is not configured",
		})
	case billing.OutcomeRetry:
		return c.JSON(status, models.ErrorResponse{
			Error:   "processing_failed",
			Message: "Event could not be processed, please retry",
		})
	}

	return c.JSON(status, models.WebhookResponse{Status: string(res.Outcome)})
}
