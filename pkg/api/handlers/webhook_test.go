package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/audiomint/backend/pkg/billing"
)

type fakeProcessor struct {
	outcome   billing.Outcome
	payload   []byte
	signature string
}

func (p *fakeProcessor) Handle(_ context.Context, payload []byte, signatureHeader string) billing.Result {
	p.payload, p.signature = payload, signatureHeader
	return billing.Result{Outcome: p.outcome}
}

func postWebhook(h *WebhookHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/webhook/stripe", strings.NewReader(body))
	req.Header.Set("Stripe-Signature", "t=1700000000,v1=abc")
	rec := httptest.NewRecorder()
	_ = h.HandleStripe(e.NewContext(req, rec))
	return rec
}

func TestWebhookHandler_HandleStripe(t *testing.T) {
	tests := []struct {
		outcome    billing.Outcome
		wantStatus int
		wantBody   string
	}{
		{outcome: billing.OutcomeAccepted, wantStatus: http.StatusOK, wantBody: `"status":"accepted"`},
		{outcome: billing.OutcomeIgnored, wantStatus: http.StatusOK, wantBody: `"status":"ignored"`},
		{outcome: billing.OutcomeDuplicate, wantStatus: http.StatusOK, wantBody: `"status":"duplicate"`},
		{outcome: billing.OutcomeRejected, wantStatus: http.StatusBadRequest, wantBody: "invalid_event"},
		{outcome: billing.OutcomeMisconfigured, wantStatus: http.StatusInternalServerError, wantBody: "webhook_not_configured"},
		{outcome: billing.OutcomeRetry, wantStatus: http.StatusInternalServerError, wantBody: "processing_failed"},
	}

	for _, tt := range tests {
		t.Run(string(tt.outcome), func(t *testing.T) {
			p := &fakeProcessor{outcome: tt.outcome}
			h := NewWebhookHandler(p)

			rec := postWebhook(h, `{"id":"evt_1"}`)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
			assert.Equal(t, `{"id":"evt_1"}`, string(p.payload), "raw body is passed through untouched")
			assert.Equal(t, "t=1700000000,v1=abc", p.signature)
		})
	}
}

func TestWebhookHandler_PayloadTooLarge(t *testing.T) {
	p := &fakeProcessor{outcome: billing.OutcomeAccepted}
	h := NewWebhookHandler(p)

	rec := postWebhook(h, strings.Repeat("x", MaxWebhookBody+1))

	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Nil(t, p.payload, "oversized bodies never reach the processor")
}
