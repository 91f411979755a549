package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSubscriptionActivatedEmail(t *testing.T) {
	subject, htmlBody, plain := buildSubscriptionActivatedEmail("Ada", "pro", 100, "https://audiomint.app")

	assert.Contains(t, subject, "active")
	assert.Contains(t, htmlBody, "<strong>pro</strong>")
	assert.Contains(t, htmlBody, "Up to 100 audio generations per day")
	assert.Contains(t, htmlBody, "https://audiomint.app/studio")
	assert.Contains(t, plain, "Hi Ada,")
	assert.NotContains(t, plain, "<html>")
}

func TestBuildSubscriptionActivatedEmail_EscapesName(t *testing.T) {
	_, htmlBody, plain := buildSubscriptionActivatedEmail("<script>x</script>", "", 20, "https://audiomint.app")

	assert.NotContains(t, htmlBody, "<script>")
	assert.Contains(t, htmlBody, "&lt;script&gt;")
	assert.Contains(t, htmlBody, "<strong>paid</strong>")
	assert.Contains(t, plain, "<script>x</script>")
}

func TestBuildSubscriptionCancelledEmail(t *testing.T) {
	subject, htmlBody, plain := buildSubscriptionCancelledEmail("Ada", "https://audiomint.app")

	assert.Contains(t, subject, "cancelled")
	assert.Contains(t, htmlBody, "back on the free plan")
	assert.Contains(t, plain, "https://audiomint.app/pricing")
}

func TestBuildPaymentFailedEmail(t *testing.T) {
	subject, htmlBody, plain := buildPaymentFailedEmail("Ada", "https://audiomint.app")

	assert.Contains(t, subject, "Action required")
	assert.Contains(t, htmlBody, "https://audiomint.app/account/billing")
	assert.Contains(t, plain, "Update your payment method")
}
