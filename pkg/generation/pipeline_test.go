package generation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quickRetries() backoff.BackOff {
	return backoff.WithMaxRetries(backoff.NewConstantBackOff(time.Millisecond), 2)
}

func newPipeline(url string, timeout time.Duration) *Pipeline {
	return NewPipeline(Config{URL: url, APIKey: "inference-key", Timeout: timeout, Backoff: quickRetries}, nil)
}

func TestPipeline_Generate(t *testing.T) {
	var got Params
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/generate", r.URL.Path)
		assert.Equal(t, "Bearer inference-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "audio/wav")
		w.Header().Set("X-Seed", "1234")
		_, _ = w.Write([]byte("RIFF....WAVE"))
	}))
	defer srv.Close()

	audio, err := newPipeline(srv.URL+"/", time.Second).Generate(context.Background(), Params{
		Prompt: "rain on a tin roof", Duration: 10, Steps: 100,
	})

	require.NoError(t, err)
	assert.Equal(t, []byte("RIFF....WAVE"), audio.Data)
	assert.Equal(t, "audio/wav", audio.ContentType)
	assert.Equal(t, int64(1234), audio.Seed)
	assert.Equal(t, 10, audio.Duration, "requested duration when the service reports none")
	assert.Equal(t, "rain on a tin roof", got.Prompt)
	assert.Equal(t, 10, got.Duration)
}

func TestPipeline_RetriesTransientFailures(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header()["Content-Type"] = nil
		_, _ = w.Write([]byte("audio"))
	}))
	defer srv.Close()

	audio, err := newPipeline(srv.URL, time.Second).Generate(context.Background(), Params{Prompt: "x", Duration: 1, Steps: 10})

	require.NoError(t, err)
	assert.Equal(t, "audio/wav", audio.ContentType, "defaults when the service sends none")
	assert.Equal(t, int32(2), hits.Load())
}

func TestPipeline_ResponseMetadata(t *testing.T) {
	tests := []struct {
		name         string
		contentType  string
		duration     string
		wantType     string
		wantDuration int
	}{
		{"audio type kept", "audio/mpeg", "", "audio/mpeg", 12},
		{"audio type with params kept", "audio/wav; rate=44100", "", "audio/wav; rate=44100", 12},
		{"text type replaced", "text/plain; charset=utf-8", "", "audio/wav", 12},
		{"json type replaced", "application/json", "", "audio/wav", 12},
		{"malformed type replaced", "audio/", "", "audio/wav", 12},
		{"reported duration used", "audio/wav", "9", "audio/wav", 9},
		{"invalid duration ignored", "audio/wav", "nine", "audio/wav", 12},
		{"zero duration ignored", "audio/wav", "0", "audio/wav", 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", tt.contentType)
				if tt.duration != "" {
					w.Header().Set("X-Duration", tt.duration)
				}
				_, _ = w.Write([]byte("audio"))
			}))
			defer srv.Close()

			audio, err := newPipeline(srv.URL, time.Second).Generate(context.Background(), Params{Prompt: "x", Duration: 12, Steps: 10})

			require.NoError(t, err)
			assert.Equal(t, tt.wantType, audio.ContentType)
			assert.Equal(t, tt.wantDuration, audio.Duration)
		})
	}
}

func TestPipeline_DoesNotRetryRejections(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.Error(w, "prompt rejected", http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	_, err := newPipeline(srv.URL, time.Second).Generate(context.Background(), Params{Prompt: "x", Duration: 1, Steps: 10})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "prompt rejected")
	assert.Equal(t, int32(1), hits.Load())
}

func TestPipeline_GivesUpAfterRetries(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newPipeline(srv.URL, time.Second).Generate(context.Background(), Params{Prompt: "x", Duration: 1, Steps: 10})

	require.Error(t, err)
	assert.Equal(t, int32(3), hits.Load())
}

func TestPipeline_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	start := time.Now()
	_, err := newPipeline(srv.URL, 50*time.Millisecond).Generate(context.Background(), Params{Prompt: "x", Duration: 1, Steps: 10})

	assert.ErrorIs(t, err, ErrTimeout)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestPipeline_InitErrorIsSticky(t *testing.T) {
	p := newPipeline("not a url", time.Second)
	assert.Nil(t, p.client, "nothing is built before first use")

	_, err1 := p.Generate(context.Background(), Params{})
	_, err2 := p.Generate(context.Background(), Params{})

	assert.ErrorIs(t, err1, ErrUnavailable)
	assert.ErrorIs(t, err2, ErrUnavailable)
	assert.Same(t, err1, err2)
}

func TestPipeline_ConcurrentFirstUse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("audio"))
	}))
	defer srv.Close()

	p := newPipeline(srv.URL, time.Second)
	done := make(chan error, 8)
	for i := 0; i < 8; i++ {
		go func() {
			_, err := p.Generate(context.Background(), Params{Prompt: "x", Duration: 1, Steps: 10})
			done <- err
		}()
	}
	for i := 0; i < 8; i++ {
		assert.NoError(t, <-done)
	}
}
