package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/audiomint/backend/ent"
	"github.com/audiomint/backend/pkg/api/middleware"
	"github.com/audiomint/backend/pkg/generation"
	"github.com/audiomint/backend/pkg/plans"
	"github.com/audiomint/backend/pkg/quota"
	"github.com/audiomint/backend/pkg/subscriptions"
	"github.com/audiomint/backend/pkg/testdata"
)

type testEnv struct {
	client  *ent.Client
	catalog *plans.Catalog
	ledger  *subscriptions.Ledger
	store   *quota.Store
	gate    *quota.Gate
	free    *ent.Plan
	pro     *ent.Plan
}

func newTestEnv(t *testing.T) *testEnv {
	client := testdata.OpenDB(t)
	catalog := plans.NewCatalog(client, time.Minute, nil, nil)
	ledger := subscriptions.NewLedger(client, catalog)
	store := quota.NewStore(client)

	return &testEnv{
		client:  client,
		catalog: catalog,
		ledger:  ledger,
		store:   store,
		gate:    quota.NewGate(store, ledger, catalog, nil, nil),
		free:    testdata.CreatePlan(t, client, testdata.FreePlan()),
		pro:     testdata.CreatePlan(t, client, testdata.ProPlan()),
	}
}

// setUsage sets today's generation count for userID.
func (e *testEnv) setUsage(t *testing.T, userID, generations int) {
	t.Helper()
	row, err := e.store.Today(context.Background(), userID)
	if err != nil {
		t.Fatalf("load usage: %v", err)
	}
	if err := e.client.UsageLog.UpdateOne(row).SetAudioGenerations(generations).Exec(context.Background()); err != nil {
		t.Fatalf("set usage: %v", err)
	}
}

type request struct {
	method string
	target string
	body   string
	userID int
	apiKey bool
}

func newContext(r request) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if r.body != "" {
		req = httptest.NewRequest(r.method, r.target, strings.NewReader(r.body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(r.method, r.target, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if r.userID > 0 {
		c.Set(middleware.ContextUserID, r.userID)
		c.Set(middleware.ContextAuthMethod, middleware.AuthMethodJWT)
	}
	if r.apiKey {
		c.Set(middleware.ContextAuthMethod, middleware.AuthMethodAPIKey)
	}
	return c, rec
}

type fakeGenerator struct {
	calls    []generation.Params
	err      error
	duration int
	// after runs once the clip is produced, before Generate returns.
	after func()
}

func (g *fakeGenerator) Generate(_ context.Context, p generation.Params) (*generation.Audio, error) {
	g.calls = append(g.calls, p)
	if g.err != nil {
		return nil, g.err
	}
	if g.after != nil {
		g.after()
	}
	return &generation.Audio{Data: []byte("RIFF0000WAVE"), ContentType: "audio/wav", Seed: 42, Duration: g.duration}, nil
}
