package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	backoff "github.com/cenkalti/backoff/v4"

	"github.com/audiomint/backend/pkg/logger"
)

const maxAudioBytes = 64 << 20

var (
	// ErrUnavailable means the pipeline could not be initialised. It is sticky.
	ErrUnavailable = errors.New("generation pipeline unavailable")
	// ErrTimeout means generation did not finish within the configured timeout.
	ErrTimeout = errors.New("generation timed out")
)

// Params describes one generation.
type Params struct {
	Prompt         string  `json:"prompt"`
	NegativePrompt string  `json:"negative_prompt,omitempty"`
	Duration       int     `json:"duration"`
	Steps          int     `json:"steps"`
	CFGScale       float64 `json:"cfg_scale,omitempty"`
	Seed           *int64  `json:"seed,omitempty"`
}

// Audio is a finished clip.
type Audio struct {
	Data        []byte
	ContentType string
	Seed        int64
	// Duration is the clip length in seconds as reported by the service.
	Duration int
}

// Generator produces audio.
type Generator interface {
	Generate(ctx context.Context, p Params) (*Audio, error)
}

// Config configures the remote inference pipeline.
type Config struct {
	URL     string
	APIKey  string
	Timeout time.Duration
	// HTTPClient overrides the transport; nil builds one on first use.
	HTTPClient *http.Client
	// Backoff builds the retry policy for each call; nil uses an exponential policy.
	Backoff func() backoff.BackOff
}

// Pipeline calls the inference service. It is created cheaply and connects on
// first use; an initialisation failure is returned to every later caller.
type Pipeline struct {
	cfg Config
	log logger.Logger

	once     sync.Once
	endpoint string
	client   *http.Client
	initErr  error
}

var _ Generator = (*Pipeline)(nil)

// NewPipeline creates a pipeline. Nothing is dialled until Generate is called.
func NewPipeline(cfg Config, log logger.Logger) *Pipeline {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 3 * time.Minute
	}
	if cfg.Backoff == nil {
		cfg.Backoff = func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = 250 * time.Millisecond
			b.MaxInterval = 2 * time.Second
			return backoff.WithMaxRetries(b, 2)
		}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Pipeline{cfg: cfg, log: log.With("component", "generation")}
}

func (p *Pipeline) init() error {
	p.once.Do(func() {
		u, err := url.Parse(strings.TrimRight(p.cfg.URL, "/"))
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			p.initErr = fmt.Errorf("%w: invalid inference url %q", ErrUnavailable, p.cfg.URL)
			p.log.Error("Generation pipeline failed to initialise", "error", p.initErr)
			return
		}
		p.endpoint = u.String() + "/v1/generate"
		p.client = p.cfg.HTTPClient
		if p.client == nil {
			p.client = &http.Client{Transport: http.DefaultTransport.(*http.Transport).Clone()}
		}
		p.log.Info("Generation pipeline initialised", "endpoint", p.endpoint)
	})
	return p.initErr
}

// Generate runs one generation under the configured timeout. Transient failures
// (transport errors and 5xx answers) are retried within that budget.
func (p *Pipeline) Generate(ctx context.Context, params Params) (*Audio, error) {
	if err := p.init(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, p.cfg.Timeout)
	defer cancel()

	var audio *Audio
	attempt := 0
	err := backoff.Retry(func() error {
		attempt++
		a, err := p.call(ctx, params)
		if err != nil {
			p.log.Warn("Generation attempt failed", "attempt", attempt, "error", err)
			return err
		}
		audio = a
		return nil
	}, backoff.WithContext(p.cfg.Backoff(), ctx))

	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w after %s", ErrTimeout, p.cfg.Timeout)
		}
		return nil, err
	}
	return audio, nil
}

func (p *Pipeline) call(ctx context.Context, params Params) (*Audio, error) {
	body, err := json.Marshal(params)
	if err != nil {
		return nil, backoff.Permanent(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, backoff.Permanent(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "audio/wav")
	if p.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.cfg.APIKey)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("inference request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxAudioBytes))
	if err != nil {
		return nil, fmt.Errorf("reading inference response: %w", err)
	}

	switch {
	case resp.StatusCode >= 500:
		return nil, fmt.Errorf("inference service returned %d", resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return nil, backoff.Permanent(fmt.Errorf("inference service rejected request: %d %s",
			resp.StatusCode, strings.TrimSpace(string(data))))
	case len(data) == 0:
		return nil, fmt.Errorf("inference service returned no audio")
	}

	audio := &Audio{
		Data:        data,
		ContentType: audioContentType(resp.Header.Get("Content-Type")),
		Duration:    params.Duration,
	}
	if d, err := strconv.Atoi(resp.Header.Get("X-Duration")); err == nil && d > 0 {
		audio.Duration = d
	}
	if seed, err := strconv.ParseInt(resp.Header.Get("X-Seed"), 10, 64); err == nil {
		audio.Seed = seed
	}
	return audio, nil
}

// audioContentType keeps the service's media type only when it is audio.
func audioContentType(header string) string {
	mediaType, _, err := mime.ParseMediaType(header)
	if err != nil || !strings.HasPrefix(mediaType, "audio/") {
		return "audio/wav"
	}
	return header
}
