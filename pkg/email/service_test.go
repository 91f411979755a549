package email

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/audiomint/backend/pkg/logger"
)

type stubClient struct {
	sent   []*mail.SGMailV3
	status int
	err    error
}

func (c *stubClient) Send(m *mail.SGMailV3) (*rest.Response, error) {
	if c.err != nil {
		return nil, c.err
	}
	c.sent = append(c.sent, m)
	return &rest.Response{StatusCode: c.status, Body: "{}"}, nil
}

func TestNewService_ConsoleMode(t *testing.T) {
	svc := NewService("billing@audiomint.test", "AudioMint", "", nil)
	assert.False(t, svc.useSendGrid)
	assert.Nil(t, svc.client)
	assert.Equal(t, "billing@audiomint.test", svc.fromEmail)
	assert.Equal(t, "AudioMint", svc.fromName)
}

func TestNewService_SendGridMode(t *testing.T) {
	svc := NewService("billing@audiomint.test", "AudioMint", "SG.test-key", nil)
	assert.True(t, svc.useSendGrid)
	assert.NotNil(t, svc.client)
	assert.Equal(t, "SG.test-key", svc.sendGridKey)
}

func TestSendEmail_ConsoleMode(t *testing.T) {
	var buf bytes.Buffer
	svc := NewService("billing@audiomint.test", "AudioMint", "", logger.NewWithWriter("info", &buf))

	err := svc.SendEmail("user@example.com", "Test User", "Your plan is active", "<p>hi</p>", "hi")

	assert.NoError(t, err, "Console mode should not error")
	assert.Contains(t, buf.String(), "Your plan is active")
	assert.Contains(t, buf.String(), "user@example.com")
}

func TestSendEmail_EmptyRecipient(t *testing.T) {
	svc := NewService("billing@audiomint.test", "AudioMint", "", nil)
	assert.Error(t, svc.SendEmail("", "Nobody", "subject", "", ""))
}

func TestSendEmail_SendGrid(t *testing.T) {
	tests := []struct {
		name    string
		client  *stubClient
		wantErr bool
	}{
		{name: "Accepted", client: &stubClient{status: 202}},
		{name: "Error status", client: &stubClient{status: 401}, wantErr: true},
		{name: "Transport error", client: &stubClient{err: errors.New("dial tcp: timeout")}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService("billing@audiomint.test", "AudioMint", "SG.test-key", nil)
			svc.client = tt.client

			err := svc.SendEmail("user@example.com", "Test User", "Payment failed", "<p>oops</p>", "oops")

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Len(t, tt.client.sent, 1)
			assert.Equal(t, "Payment failed", tt.client.sent[0].Subject)
			assert.Equal(t, "AudioMint", tt.client.sent[0].From.Name)
		})
	}
}
