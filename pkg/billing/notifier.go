package billing

import (
	"context"

	"github.com/audiomint/backend/ent/subscription"
	"github.com/audiomint/backend/pkg/logger"
	"github.com/audiomint/backend/pkg/plans"
	"github.com/audiomint/backend/pkg/subscriptions"
)

// EmailSender abstracts email sending for billing notifications.
type EmailSender interface {
	SendEmail(toEmail, toName, subject, htmlBody, plainTextBody string) error
}

// UserLimits resolves a user's effective limits after a transition.
type UserLimits interface {
	LimitsForUser(ctx context.Context, userID int) (plans.Limits, error)
}

// Notifier is told about every committed subscription transition.
type Notifier interface {
	Notify(ctx context.Context, tr *subscriptions.Transition)
}

// EmailNotifier emails users when their subscription becomes active, past due or canceled.
type EmailNotifier struct {
	sender  EmailSender
	limits  UserLimits
	baseURL string
	log     logger.Logger
}

// NewEmailNotifier creates a notifier. limits may be nil.
func NewEmailNotifier(sender EmailSender, limits UserLimits, baseURL string, log logger.Logger) *EmailNotifier {
	if log == nil {
		log = logger.Nop()
	}
	return &EmailNotifier{sender: sender, limits: limits, baseURL: baseURL, log: log}
}

// Notify sends at most one email. Failures are logged and never returned, so a
// mail outage cannot make the provider redeliver an already applied event.
func (n *EmailNotifier) Notify(ctx context.Context, tr *subscriptions.Transition) {
	if !tr.Changed() || tr.Email == "" {
		return
	}

	var subject, htmlBody, plain string
	switch tr.To {
	case subscription.StatusActive:
		planName, dailyLimit := tr.PlanName, plans.FallbackLimits.DailyLimit
		if n.limits != nil {
			if limits, err := n.limits.LimitsForUser(ctx, tr.UserID); err == nil {
				planName, dailyLimit = limits.PlanName, limits.DailyLimit
			}
		}
		subject, htmlBody, plain = buildSubscriptionActivatedEmail(tr.Name, planName, dailyLimit, n.baseURL)
	case subscription.StatusPastDue:
		subject, htmlBody, plain = buildPaymentFailedEmail(tr.Name, n.baseURL)
	case subscription.StatusCanceled:
		subject, htmlBody, plain = buildSubscriptionCancelledEmail(tr.Name, n.baseURL)
	default:
		return
	}

	if err := n.sender.SendEmail(tr.Email, tr.Name, subject, htmlBody, plain); err != nil {
		n.log.Warn("Failed to send billing email", "user_id", tr.UserID, "status", tr.To, "error", err)
		return
	}
	n.log.Info("Billing email sent", "user_id", tr.UserID, "status", tr.To)
}
