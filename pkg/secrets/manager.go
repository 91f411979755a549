package secrets

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/secretsmanager"
	"github.com/aws/aws-sdk-go/service/secretsmanager/secretsmanageriface"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/audiomint/backend/config"
)

// ErrNotFound is returned when a secret does not exist in the backend.
var ErrNotFound = errors.New("secret not found")

// Manager resolves secrets by name.
type Manager interface {
	Get(ctx context.Context, key string) (string, error)
}

// Config holds secrets manager configuration
type Config struct {
	Backend   string // "env" or "aws"
	AWSRegion string
	// Prefix is prepended to every key looked up in AWS, e.g. "audiomint/prod/".
	Prefix   string
	CacheTTL time.Duration
}

// ConfigFromEnv reads SECRETS_BACKEND, SECRETS_PREFIX and AWS_REGION.
func ConfigFromEnv() Config {
	cfg := Config{
		Backend:   strings.ToLower(os.Getenv("SECRETS_BACKEND")),
		AWSRegion: os.Getenv("AWS_REGION"),
		Prefix:    os.Getenv("SECRETS_PREFIX"),
		CacheTTL:  5 * time.Minute,
	}
	if cfg.Backend == "" {
		cfg.Backend = "env"
	}
	if cfg.AWSRegion == "" {
		cfg.AWSRegion = "us-east-1"
	}
	return cfg
}

// NewManager builds the manager selected by cfg.Backend.
func NewManager(cfg Config) (Manager, error) {
	switch cfg.Backend {
	case "aws", "aws-secrets-manager":
		sess, err := session.NewSession(&aws.Config{Region: aws.String(cfg.AWSRegion)})
		if err != nil {
			return nil, fmt.Errorf("failed to create AWS session: %w", err)
		}
		log.Printf("🔐 Using AWS Secrets Manager (region: %s, prefix: %q)", cfg.AWSRegion, cfg.Prefix)
		return NewAWSManager(secretsmanager.New(sess), cfg), nil
	case "env", "environment":
		return EnvManager{}, nil
	default:
		return nil, fmt.Errorf("unsupported secrets backend: %s", cfg.Backend)
	}
}

// EnvManager reads secrets from environment variables.
type EnvManager struct{}

// Get returns the variable named key.
func (EnvManager) Get(_ context.Context, key string) (string, error) {
	if v := os.Getenv(key); v != "" {
		return v, nil
	}
	return "", ErrNotFound
}

// AWSManager reads secrets from AWS Secrets Manager and caches them for CacheTTL.
type AWSManager struct {
	client secretsmanageriface.SecretsManagerAPI
	prefix string
	cache  *expirable.LRU[string, string]
}

// NewAWSManager wraps an AWS Secrets Manager client.
func NewAWSManager(client secretsmanageriface.SecretsManagerAPI, cfg Config) *AWSManager {
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &AWSManager{
		client: client,
		prefix: cfg.Prefix,
		cache:  expirable.NewLRU[string, string](64, nil, ttl),
	}
}

// Get fetches the string value of prefix+key.
func (m *AWSManager) Get(ctx context.Context, key string) (string, error) {
	if v, ok := m.cache.Get(key); ok {
		return v, nil
	}

	out, err := m.client.GetSecretValueWithContext(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(m.prefix + key),
	})
	if err != nil {
		var aerr awserr.Error
		if errors.As(err, &aerr) && aerr.Code() == secretsmanager.ErrCodeResourceNotFoundException {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to get secret %s: %w", key, err)
	}
	if out.SecretString == nil {
		return "", fmt.Errorf("secret %s has no string value", key)
	}

	m.cache.Add(key, *out.SecretString)
	return *out.SecretString, nil
}

// Apply overwrites the credential fields of cfg with values from m. Secrets
// missing from the backend keep whatever the environment already provided.
func Apply(ctx context.Context, m Manager, cfg *config.Config) error {
	fields := []struct {
		key string
		dst *string
	}{
		{"DATABASE_URL", &cfg.DatabaseURL},
		{"JWT_SECRET", &cfg.JWTSecret},
		{"STRIPE_SECRET_KEY", &cfg.StripeSecretKey},
		{"STRIPE_WEBHOOK_SECRET", &cfg.StripeWebhookSecret},
		{"SENDGRID_API_KEY", &cfg.SendGridAPIKey},
		{"INFERENCE_API_KEY", &cfg.InferenceAPIKey},
	}

	for _, f := range fields {
		v, err := m.Get(ctx, f.key)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return err
		}
		*f.dst = v
	}
	return nil
}
