package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/audiomint/backend/ent"
	"github.com/audiomint/backend/ent/subscription"
	"github.com/audiomint/backend/pkg/models"
	"github.com/audiomint/backend/pkg/plans"
	"github.com/audiomint/backend/pkg/quota"
	"github.com/audiomint/backend/pkg/subscriptions"
	"github.com/audiomint/backend/pkg/testdata"
)

const generateBody = `{"prompt":"waves on a pebble beach","duration":10,"steps":100}`

func generate(h *AudioHandler, r request) *httptest.ResponseRecorder {
	r.method, r.target = http.MethodPost, "/api/v1/audio/generate"
	if r.body == "" {
		r.body = generateBody
	}
	c, rec := newContext(r)
	_ = h.Generate(c)
	return rec
}

func decodeQuotaError(t *testing.T, rec *httptest.ResponseRecorder) models.QuotaErrorResponse {
	t.Helper()
	var resp models.QuotaErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestAudioHandler_Generate(t *testing.T) {
	env := newTestEnv(t)
	gen := &fakeGenerator{}
	h := NewAudioHandler(env.gate, gen, nil, nil)
	user := testdata.CreateUser(t, env.client)

	rec := generate(h, request{userID: user.ID})

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "audio/wav", rec.Header().Get("Content-Type"))
	assert.Equal(t, "RIFF0000WAVE", rec.Body.String())
	assert.Equal(t, "1", rec.Header().Get("X-Usage-Count"))
	assert.Equal(t, "20", rec.Header().Get("X-Usage-Limit"))
	assert.Equal(t, "19", rec.Header().Get("X-Usage-Remaining"))
	assert.Equal(t, `attachment; filename="audio_42.wav"`, rec.Header().Get("Content-Disposition"))

	require.Len(t, gen.calls, 1)
	assert.Equal(t, models.DefaultNegativePrompt, gen.calls[0].NegativePrompt)

	usage, err := env.store.Today(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, usage.AudioGenerations)
	assert.Equal(t, 10, usage.TotalDuration)
	assert.Zero(t, usage.APICalls)
}

func TestAudioHandler_Defaults(t *testing.T) {
	env := newTestEnv(t)
	gen := &fakeGenerator{}
	h := NewAudioHandler(env.gate, gen, nil, nil)
	user := testdata.CreateUser(t, env.client)

	rec := generate(h, request{userID: user.ID, body: `{"prompt":"birdsong"}`})

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, gen.calls, 1)
	assert.Equal(t, models.DefaultDuration, gen.calls[0].Duration)
	assert.Equal(t, models.DefaultSteps, gen.calls[0].Steps)
}

func TestAudioHandler_QuotaBoundary(t *testing.T) {
	env := newTestEnv(t)
	gen := &fakeGenerator{}
	h := NewAudioHandler(env.gate, gen, nil, nil)
	user := testdata.CreateUser(t, env.client)

	env.setUsage(t, user.ID, 19)
	rec := generate(h, request{userID: user.ID})
	require.Equal(t, http.StatusOK, rec.Code, "the 20th generation is admitted")
	assert.Equal(t, "0", rec.Header().Get("X-Usage-Remaining"))

	rec = generate(h, request{userID: user.ID})
	require.Equal(t, http.StatusTooManyRequests, rec.Code, "the 21st is refused")
	resp := decodeQuotaError(t, rec)
	assert.Equal(t, "quota_exceeded", resp.Error)
	assert.Equal(t, 20, resp.CurrentUsage)
	assert.Equal(t, 20, resp.DailyLimit)
	assert.Zero(t, resp.Remaining)
	assert.Len(t, gen.calls, 1, "refused requests never reach the generator")
}

func TestAudioHandler_PlanMaximums(t *testing.T) {
	env := newTestEnv(t)
	gen := &fakeGenerator{}
	h := NewAudioHandler(env.gate, gen, nil, nil)
	user := testdata.CreateUser(t, env.client)

	tests := []struct {
		name     string
		body     string
		wantCode string
		wantMax  int
	}{
		{name: "Duration", body: `{"prompt":"x","duration":60,"steps":100}`, wantCode: "duration_exceeded", wantMax: 30},
		{name: "Steps", body: `{"prompt":"x","duration":10,"steps":250}`, wantCode: "steps_exceeded", wantMax: 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := generate(h, request{userID: user.ID, body: tt.body})

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			resp := decodeQuotaError(t, rec)
			assert.Equal(t, tt.wantCode, resp.Error)
			assert.Equal(t, tt.wantMax, resp.Max)
		})
	}
	assert.Empty(t, gen.calls)
}

func TestAudioHandler_ChargesProducedDuration(t *testing.T) {
	env := newTestEnv(t)
	h := NewAudioHandler(env.gate, &fakeGenerator{duration: 7}, nil, nil)
	user := testdata.CreateUser(t, env.client)

	rec := generate(h, request{userID: user.ID})

	require.Equal(t, http.StatusOK, rec.Code)
	usage, err := env.store.Today(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, usage.TotalDuration, "requested 10s, produced 7s")
}

func TestAudioHandler_ChargesAfterClientDisconnect(t *testing.T) {
	env := newTestEnv(t)
	user := testdata.CreateUser(t, env.client)
	testdata.CreateSubscription(t, env.client, user, testdata.SubscriptionSpec{
		Plan: env.pro, Status: subscription.StatusActive,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h := NewAudioHandler(env.gate, &fakeGenerator{after: cancel}, nil, nil)

	c, rec := newContext(request{
		method: http.MethodPost,
		target: "/api/v1/audio/generate",
		body:   generateBody,
		userID: user.ID,
		apiKey: true,
	})
	c.SetRequest(c.Request().WithContext(ctx))
	require.NoError(t, h.Generate(c))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("X-Usage-Count"))
	usage, err := env.store.Today(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, usage.AudioGenerations)
	assert.Equal(t, 10, usage.TotalDuration)
	assert.Equal(t, 1, usage.APICalls)
}

func TestAudioHandler_APIAccess(t *testing.T) {
	env := newTestEnv(t)
	gen := &fakeGenerator{}
	h := NewAudioHandler(env.gate, gen, nil, nil)

	t.Run("Free plan is refused", func(t *testing.T) {
		user := testdata.CreateUser(t, env.client)

		rec := generate(h, request{userID: user.ID, apiKey: true})

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "api_access_denied", decodeQuotaError(t, rec).Error)
	})

	t.Run("Pro plan is admitted and counted", func(t *testing.T) {
		user := testdata.CreateUser(t, env.client)
		testdata.CreateSubscription(t, env.client, user, testdata.SubscriptionSpec{
			Plan: env.pro, Status: subscription.StatusActive,
		})

		rec := generate(h, request{userID: user.ID, apiKey: true})

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "100", rec.Header().Get("X-Usage-Limit"))
		usage, err := env.store.Today(context.Background(), user.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, usage.APICalls)
	})
}

func TestAudioHandler_GenerationFailureIsFree(t *testing.T) {
	env := newTestEnv(t)
	h := NewAudioHandler(env.gate, &fakeGenerator{err: errors.New("cuda out of memory")}, nil, nil)
	user := testdata.CreateUser(t, env.client)

	rec := generate(h, request{userID: user.ID})

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.NotContains(t, rec.Body.String(), "cuda")
	usage, err := env.store.Today(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Zero(t, usage.AudioGenerations)
}

func TestAudioHandler_StoreUnavailable(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	client := ent.NewClient(ent.Driver(entsql.OpenDB(dialect.Postgres, db)))

	catalog := plans.NewCatalog(client, time.Minute, nil, nil)
	gate := quota.NewGate(quota.NewStore(client), subscriptions.NewLedger(client, catalog), catalog, nil, nil)
	gen := &fakeGenerator{}
	h := NewAudioHandler(gate, gen, nil, nil)

	rec := generate(h, request{userID: 1})

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Empty(t, gen.calls)
}

func TestAudioHandler_BadRequests(t *testing.T) {
	env := newTestEnv(t)
	h := NewAudioHandler(env.gate, &fakeGenerator{}, nil, nil)
	user := testdata.CreateUser(t, env.client)

	t.Run("Unauthenticated", func(t *testing.T) {
		rec := generate(h, request{})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	tests := []struct {
		name string
		body string
	}{
		{name: "Missing prompt", body: `{"duration":10}`},
		{name: "Duration out of range", body: `{"prompt":"x","duration":301}`},
		{name: "Steps out of range", body: `{"prompt":"x","steps":5}`},
		{name: "Malformed JSON", body: `{"prompt":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := generate(h, request{userID: user.ID, body: tt.body})
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "validation_error")
		})
	}
}
