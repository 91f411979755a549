package billing

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/audiomint/backend/ent/subscription"
	"github.com/audiomint/backend/pkg/plans"
	"github.com/audiomint/backend/pkg/subscriptions"
)

type sentEmail struct {
	to, name, subject, html, text string
}

type fakeSender struct {
	sent []sentEmail
	err  error
}

func (s *fakeSender) SendEmail(toEmail, toName, subject, htmlBody, plainTextBody string) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, sentEmail{toEmail, toName, subject, htmlBody, plainTextBody})
	return nil
}

type fixedLimits plans.Limits

func (l fixedLimits) LimitsForUser(context.Context, int) (plans.Limits, error) {
	return plans.Limits(l), nil
}

func TestEmailNotifier_Notify(t *testing.T) {
	limits := fixedLimits{PlanName: "pro", DailyLimit: 100}

	tests := []struct {
		name        string
		from, to    subscription.Status
		wantSubject string
	}{
		{name: "Activation", from: subscription.StatusTrialing, to: subscription.StatusActive, wantSubject: "active"},
		{name: "Payment failure", from: subscription.StatusActive, to: subscription.StatusPastDue, wantSubject: "payment"},
		{name: "Cancellation", from: subscription.StatusActive, to: subscription.StatusCanceled, wantSubject: "cancel"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := &fakeSender{}
			n := NewEmailNotifier(sender, limits, "https://app.example.com", nil)

			n.Notify(context.Background(), &subscriptions.Transition{
				UserID: 1, Email: "ada@example.com", Name: "Ada", From: tt.from, To: tt.to,
			})

			require.Len(t, sender.sent, 1)
			assert.Equal(t, "ada@example.com", sender.sent[0].to)
			assert.Equal(t, "Ada", sender.sent[0].name)
			assert.Contains(t, strings.ToLower(sender.sent[0].subject), tt.wantSubject)
			assert.NotEmpty(t, sender.sent[0].html)
			assert.NotEmpty(t, sender.sent[0].text)
		})
	}
}

func TestEmailNotifier_SkipsQuietTransitions(t *testing.T) {
	sender := &fakeSender{}
	n := NewEmailNotifier(sender, nil, "https://app.example.com", nil)

	n.Notify(context.Background(), &subscriptions.Transition{
		UserID: 1, Email: "ada@example.com", From: subscription.StatusActive, To: subscription.StatusActive,
	})
	n.Notify(context.Background(), &subscriptions.Transition{
		UserID: 1, Email: "ada@example.com", From: "", To: subscription.StatusTrialing,
	})
	n.Notify(context.Background(), &subscriptions.Transition{
		UserID: 1, From: subscription.StatusTrialing, To: subscription.StatusActive,
	})
	n.Notify(context.Background(), nil)

	assert.Empty(t, sender.sent)
}

func TestEmailNotifier_SendFailureIsSwallowed(t *testing.T) {
	sender := &fakeSender{err: errors.New("smtp down")}
	n := NewEmailNotifier(sender, nil, "https://app.example.com", nil)

	assert.NotPanics(t, func() {
		n.Notify(context.Background(), &subscriptions.Transition{
			UserID: 1, Email: "ada@example.com", From: subscription.StatusActive, To: subscription.StatusPastDue,
		})
	})
}
