package billing

import (
	"fmt"
	"html"
)

// buildSubscriptionActivatedEmail returns the email content for a subscription that became active.
func buildSubscriptionActivatedEmail(userName, planName string, dailyLimit int, baseURL string) (subject, htmlBody, plainText string) {
	subject = "Your AudioMint plan is active"
	if planName == "" {
		planName = "paid"
	}

	htmlBody = fmt.Sprintf(`
		<html>
		<body>
			<h2>Welcome aboard!</h2>
			<p>Hi %s,</p>
			<p>Your <strong>%s</strong> plan is now active.</p>
			<ul>
				<li>Up to %d audio generations per day</li>
				<li>Longer clips and more diffusion steps</li>
				<li>Downloads of everything you create</li>
			</ul>
			<p><a href="%s/studio" style="background-color: #6C5CE7; color: white; padding: 14px 20px; text-decoration: none; border-radius: 4px; display: inline-block;">Open the Studio</a></p>
			<p>Happy creating,<br>The AudioMint Team</p>
		</body>
		</html>
	`, html.EscapeString(userName), html.EscapeString(planName), dailyLimit, baseURL)

	plainText = fmt.Sprintf(`Hi %s,

Your %s plan is now active.

- Up to %d audio generations per day
- Longer clips and more diffusion steps
- Downloads of everything you create

Open the Studio: %s/studio

Happy creating,
The AudioMint Team
`, userName, planName, dailyLimit, baseURL)

	return
}

// buildSubscriptionCancelledEmail returns the email content for a cancelled subscription.
func buildSubscriptionCancelledEmail(userName, baseURL string) (subject, htmlBody, plainText string) {
	subject = "Your AudioMint subscription has been cancelled"

	htmlBody = fmt.Sprintf(`
		<html>
		<body>
			<h2>Subscription Cancelled</h2>
			<p>Hi %s,</p>
			<p>Your subscription has ended and your account is back on the free plan.</p>
			<p>Your generated audio stays in your library. You can upgrade again at any time:</p>
			<p><a href="%s/pricing" style="background-color: #2196F3; color: white; padding: 14px 20px; text-decoration: none; border-radius: 4px; display: inline-block;">See Plans</a></p>
			<p>Thanks,<br>The AudioMint Team</p>
		</body>
		</html>
	`, html.EscapeString(userName), baseURL)

	plainText = fmt.Sprintf(`Hi %s,

Your subscription has ended and your account is back on the free plan.

Your generated audio stays in your library. You can upgrade again at any time:
%s/pricing

Thanks,
The AudioMint Team
`, userName, baseURL)

	return
}

// buildPaymentFailedEmail returns the email content when a renewal charge fails.
func buildPaymentFailedEmail(userName, baseURL string) (subject, htmlBody, plainText string) {
	subject = "Action required: your AudioMint payment failed"

	htmlBody = fmt.Sprintf(`
		<html>
		<body>
			<h2>Payment Failed</h2>
			<p>Hi %s,</p>
			<p>We could not charge your card for your AudioMint subscription.</p>
			<p>Until the payment goes through you are limited to the free plan. Update your payment method to restore your limits:</p>
			<p><a href="%s/account/billing" style="background-color: #E74C3C; color: white; padding: 14px 20px; text-decoration: none; border-radius: 4px; display: inline-block;">Update Payment Method</a></p>
			<p>Thanks,<br>The AudioMint Team</p>
		</body>
		</html>
	`, html.EscapeString(userName), baseURL)

	plainText = fmt.Sprintf(`Hi %s,

We could not charge your card for your AudioMint subscription.

Until the payment goes through you are limited to the free plan. Update your payment method to restore your limits:
%s/account/billing

Thanks,
The AudioMint Team
`, userName, baseURL)

	return
}
