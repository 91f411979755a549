package handlers

import (
	"context"
	"errors"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/audiomint/backend/ent"
	apierrors "github.com/audiomint/backend/pkg/api/errors"
	"github.com/audiomint/backend/pkg/api/middleware"
	"github.com/audiomint/backend/pkg/domain"
	"github.com/audiomint/backend/pkg/models"
	"github.com/audiomint/backend/pkg/plans"
)

const (
	defaultHistoryDays = 7
	maxHistoryDays     = 90
)

// CheckoutService opens provider-hosted checkout and portal pages.
type CheckoutService interface {
	CreateSession(ctx context.Context, userID, planID int) (*models.CheckoutResponse, error)
	CreatePortalSession(ctx context.Context, userID int, returnURL string) (*models.CustomerPortalResponse, error)
}

// PlanLister lists purchasable plans.
type PlanLister interface {
	ActivePlans(ctx context.Context) ([]*ent.Plan, error)
}

// SubscriptionReader loads a user's subscription with its plan, nil when none.
type SubscriptionReader interface {
	ForUser(ctx context.Context, userID int) (*ent.Subscription, error)
}

// UsageReader reports limits and counters.
type UsageReader interface {
	LimitsFor(ctx context.Context, sub *ent.Subscription) plans.Limits
	Usage(ctx context.Context, userID int) (*ent.UsageLog, error)
	History(ctx context.Context, userID, days int) ([]*ent.UsageLog, error)
}

// BillingConfig holds redirect rules for the billing portal.
type BillingConfig struct {
	DefaultReturnURL string
	AllowedHosts     []string
}

// BillingHandler handles billing endpoints
type BillingHandler struct {
	checkout  CheckoutService
	plans     PlanLister
	subs      SubscriptionReader
	usage     UsageReader
	cfg       BillingConfig
	validator *validator.Validate
	now       func() time.Time
}

// NewBillingHandler creates a new billing handler
func NewBillingHandler(checkout CheckoutService, plans PlanLister, subs SubscriptionReader, usage UsageReader, cfg BillingConfig) *BillingHandler {
	return &BillingHandler{
		checkout:  checkout,
		plans:     plans,
		subs:      subs,
		usage:     usage,
		cfg:       cfg,
		validator: validator.New(),
		now:       time.Now,
	}
}

// validateReturnURL returns returnURL when it points at an allowed host over
// http(s) without userinfo, and the default URL otherwise.
func (h *BillingHandler) validateReturnURL(returnURL string) string {
	if returnURL == "" {
		return h.cfg.DefaultReturnURL
	}

	parsed, err := url.Parse(returnURL)
	if err != nil {
		return h.cfg.DefaultReturnURL
	}

	// Only allow http and https schemes (prevents javascript:, data:, ftp:, etc.)
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return h.cfg.DefaultReturnURL
	}

	// Reject URLs with userinfo (prevents phishing: https://attacker@legitimate.com)
	if parsed.User != nil {
		return h.cfg.DefaultReturnURL
	}

	for _, allowedHost := range h.cfg.AllowedHosts {
		if parsed.Host == allowedHost {
			return returnURL
		}
	}

	return h.cfg.DefaultReturnURL
}

// CreateCheckout handles creating a checkout session
// @Summary Create Stripe checkout session
// @Description Open a Stripe checkout for a plan. The subscription is activated by the webhook.
// @Tags Billing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CheckoutRequest true "Plan to purchase"
// @Success 200 {object} models.CheckoutResponse
// @Failure 400 {object} models.ErrorResponse "Invalid request or plan not for sale"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /billing/checkout [post]
func (h *BillingHandler) CreateCheckout(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return apierrors.UnauthorizedError(c)
	}

	var req models.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	session, err := h.checkout.CreateSession(c.Request().Context(), userID, req.PlanID)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, session)
	case errors.Is(err, domain.ErrPlanUnavailable):
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "plan_unavailable",
			Message: "This plan is not available for purchase.",
		})
	case errors.Is(err, domain.ErrUnauthenticated):
		return apierrors.UnauthorizedError(c)
	case errors.Is(err, domain.ErrStoreUnavailable):
		return apierrors.ServiceUnavailable(c, err)
	default:
		return apierrors.InternalError(c, err)
	}
}

// CreatePortalSession handles creating a customer portal session
// @Summary Create Stripe customer portal session
// @Description Open the Stripe customer portal to manage payment methods and cancel
// @Tags Billing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.PortalRequest false "Return URL (validated against whitelist)"
// @Success 200 {object} models.CustomerPortalResponse
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "User has never paid"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /billing/portal [post]
func (h *BillingHandler) CreatePortalSession(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return apierrors.UnauthorizedError(c)
	}

	var req models.PortalRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if req.ReturnURL == "" {
		req.ReturnURL = c.QueryParam("return_url")
	}

	portal, err := h.checkout.CreatePortalSession(c.Request().Context(), userID, h.validateReturnURL(req.ReturnURL))
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, portal)
	case errors.Is(err, domain.ErrNoCustomer):
		return apierrors.NotFoundError(c, "No billing account found. Subscribe to a plan first.")
	case errors.Is(err, domain.ErrStoreUnavailable):
		return apierrors.ServiceUnavailable(c, err)
	default:
		return apierrors.InternalError(c, err)
	}
}

// ListPlans returns purchasable plans
// @Summary List plans
// @Tags Billing
// @Produce json
// @Success 200 {object} models.PlansResponse
// @Router /billing/plans [get]
func (h *BillingHandler) ListPlans(c echo.Context) error {
	list, err := h.plans.ActivePlans(c.Request().Context())
	if err != nil {
		return apierrors.ServiceUnavailable(c, err)
	}

	resp := models.PlansResponse{Plans: make([]models.PlanInfo, 0, len(list))}
	for _, p := range list {
		resp.Plans = append(resp.Plans, planInfo(p))
	}
	return c.JSON(http.StatusOK, resp)
}

// GetSubscriptionStatus reports the caller's plan, status and today's usage
// @Summary Subscription status
// @Tags Billing
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.SubscriptionStatusResponse
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 503 {object} models.ErrorResponse "Store unavailable"
// @Router /billing/subscription [get]
func (h *BillingHandler) GetSubscriptionStatus(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return apierrors.UnauthorizedError(c)
	}
	ctx := c.Request().Context()

	sub, err := h.subs.ForUser(ctx, userID)
	if err != nil {
		return apierrors.ServiceUnavailable(c, err)
	}
	limits := h.usage.LimitsFor(ctx, sub)
	row, err := h.usage.Usage(ctx, userID)
	if err != nil {
		return apierrors.ServiceUnavailable(c, err)
	}

	resp := models.SubscriptionStatusResponse{
		HasSubscription: sub != nil,
		CurrentUsage:    counters(row),
		UsageLimit:      limits.DailyLimit,
		LimitsSource:    string(limits.Source),
	}
	if limits.DailyLimit > 0 {
		pct := float64(row.AudioGenerations) / float64(limits.DailyLimit) * 100
		resp.UsagePercentage = math.Round(pct*10) / 10
	}
	if sub != nil {
		resp.Status = string(sub.Status)
		if p := sub.Edges.Plan; p != nil {
			info := planInfo(p)
			resp.Plan = &info
		}
		if end := sub.CurrentPeriodEnd; end != nil {
			resp.CurrentPeriodEnd = end.UTC().Format(time.RFC3339)
			days := int(math.Floor(end.Sub(h.now()).Hours() / 24))
			if days < 0 {
				days = 0
			}
			resp.DaysRemaining = &days
		}
	}

	return c.JSON(http.StatusOK, resp)
}

// GetUsageHistory lists recent daily usage
// @Summary Usage history
// @Tags Billing
// @Produce json
// @Security BearerAuth
// @Param days query int false "Number of days (1-90, default 7)"
// @Success 200 {object} models.UsageHistoryResponse
// @Router /billing/usage [get]
func (h *BillingHandler) GetUsageHistory(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return apierrors.UnauthorizedError(c)
	}

	days := defaultHistoryDays
	if raw := c.QueryParam("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxHistoryDays {
			return apierrors.ValidationError(c, errors.New("days must be between 1 and 90"))
		}
		days = n
	}

	rows, err := h.usage.History(c.Request().Context(), userID, days)
	if err != nil {
		return apierrors.ServiceUnavailable(c, err)
	}

	resp := models.UsageHistoryResponse{Days: make([]models.UsageHistoryEntry, 0, len(rows))}
	for _, row := range rows {
		resp.Days = append(resp.Days, models.UsageHistoryEntry{
			Date:          row.Date.Format("2006-01-02"),
			UsageCounters: counters(row),
		})
	}
	return c.JSON(http.StatusOK, resp)
}

func counters(row *ent.UsageLog) models.UsageCounters {
	return models.UsageCounters{
		AudioGenerations: row.AudioGenerations,
		APICalls:         row.APICalls,
		TotalDuration:    row.TotalDuration,
	}
}

func planInfo(p *ent.Plan) models.PlanInfo {
	return models.PlanInfo{
		ID:               p.ID,
		Name:             p.Name,
		DisplayName:      p.DisplayName,
		Description:      p.Description,
		Price:            p.Price,
		DailyAudioLimit:  p.DailyAudioLimit,
		MaxAudioDuration: p.MaxAudioDuration,
		MaxSteps:         p.MaxSteps,
		CanUseAPI:        p.CanUseAPI,
		CanDownload:      p.CanDownload,
		CanEditAudio:     p.CanEditAudio,
		IsPopular:        p.IsPopular,
	}
}
