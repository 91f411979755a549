package secrets

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/secretsmanager"
	"github.com/aws/aws-sdk-go/service/secretsmanager/secretsmanageriface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/audiomint/backend/config"
)

type fakeSecretsManager struct {
	secretsmanageriface.SecretsManagerAPI
	values map[string]string
	err    error
	calls  int
}

func (f *fakeSecretsManager) GetSecretValueWithContext(_ aws.Context, in *secretsmanager.GetSecretValueInput, _ ...request.Option) (*secretsmanager.GetSecretValueOutput, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	v, ok := f.values[aws.StringValue(in.SecretId)]
	if !ok {
		return nil, awserr.New(secretsmanager.ErrCodeResourceNotFoundException, "not found", nil)
	}
	return &secretsmanager.GetSecretValueOutput{SecretString: aws.String(v)}, nil
}

func TestNewManager(t *testing.T) {
	m, err := NewManager(Config{Backend: "env"})
	require.NoError(t, err)
	assert.IsType(t, EnvManager{}, m)

	_, err = NewManager(Config{Backend: "vault"})
	assert.Error(t, err)
}

func TestEnvManager_Get(t *testing.T) {
	t.Setenv("AUDIOMINT_TEST_SECRET", "s3cret")

	v, err := EnvManager{}.Get(context.Background(), "AUDIOMINT_TEST_SECRET")
	require.NoError(t, err)
	assert.Equal(t, "s3cret", v)

	_, err = EnvManager{}.Get(context.Background(), "AUDIOMINT_TEST_MISSING")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAWSManager_Get(t *testing.T) {
	fake := &fakeSecretsManager{values: map[string]string{"audiomint/prod/STRIPE_SECRET_KEY": "sk_live_x"}}
	m := NewAWSManager(fake, Config{Prefix: "audiomint/prod/"})
	ctx := context.Background()

	v, err := m.Get(ctx, "STRIPE_SECRET_KEY")
	require.NoError(t, err)
	assert.Equal(t, "sk_live_x", v)

	_, err = m.Get(ctx, "STRIPE_SECRET_KEY")
	require.NoError(t, err)
	assert.Equal(t, 1, fake.calls, "second read is served from cache")

	_, err = m.Get(ctx, "JWT_SECRET")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAWSManager_BackendError(t *testing.T) {
	fake := &fakeSecretsManager{err: errors.New("throttled")}
	m := NewAWSManager(fake, Config{})

	_, err := m.Get(context.Background(), "JWT_SECRET")

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestApply(t *testing.T) {
	fake := &fakeSecretsManager{values: map[string]string{
		"STRIPE_WEBHOOK_SECRET": "whsec_aws",
		"JWT_SECRET":            "jwt_aws",
	}}
	cfg := &config.Config{JWTSecret: "from-env", StripeSecretKey: "sk_env"}

	require.NoError(t, Apply(context.Background(), NewAWSManager(fake, Config{}), cfg))

	assert.Equal(t, "jwt_aws", cfg.JWTSecret)
	assert.Equal(t, "whsec_aws", cfg.StripeWebhookSecret)
	assert.Equal(t, "sk_env", cfg.StripeSecretKey, "missing secrets keep the environment value")
}

func TestApply_FailsOnBackendError(t *testing.T) {
	fake := &fakeSecretsManager{err: errors.New("access denied")}
	cfg := &config.Config{}

	assert.Error(t, Apply(context.Background(), NewAWSManager(fake, Config{}), cfg))
}
