package quota

import (
	"context"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/audiomint/backend/ent"
	"github.com/audiomint/backend/pkg/domain"
	"github.com/audiomint/backend/pkg/testdata"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func TestStore_Day(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	clock := &fakeClock{now: time.Date(2026, 3, 1, 16, 0, 0, 0, time.UTC)}

	t.Run("UTC by default", func(t *testing.T) {
		s := NewStore(nil, WithClock(clock.Now))
		assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), s.Day())
	})

	t.Run("Configured timezone moves the boundary", func(t *testing.T) {
		s := NewStore(nil, WithClock(clock.Now), WithLocation(tokyo))
		assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), s.Day())
	})
}

func TestStore_TodayCreatesOnce(t *testing.T) {
	client := testdata.OpenDB(t)
	user := testdata.CreateUser(t, client)
	store := NewStore(client)
	ctx := context.Background()

	first, err := store.Today(ctx, user.ID)
	require.NoError(t, err)
	assert.Zero(t, first.AudioGenerations)

	second, err := store.Today(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	count, err := client.UsageLog.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestStore_PeekDoesNotWrite(t *testing.T) {
	client := testdata.OpenDB(t)
	user := testdata.CreateUser(t, client)
	store := NewStore(client)
	ctx := context.Background()

	row, err := store.Peek(ctx, user.ID)
	require.NoError(t, err)
	assert.Zero(t, row.AudioGenerations)
	assert.Equal(t, store.Day(), row.Date)

	count, err := client.UsageLog.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count, "reading an empty day leaves no row behind")

	_, err = store.AddGeneration(ctx, user.ID, 8)
	require.NoError(t, err)

	row, err = store.Peek(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, row.AudioGenerations)
	assert.Equal(t, 8, row.TotalDuration)
}

func TestStore_AddGeneration(t *testing.T) {
	client := testdata.OpenDB(t)
	user := testdata.CreateUser(t, client)
	clock := &fakeClock{now: time.Date(2026, 3, 1, 23, 59, 0, 0, time.UTC)}
	store := NewStore(client, WithClock(clock.Now))
	ctx := context.Background()

	row, err := store.AddGeneration(ctx, user.ID, 12)
	require.NoError(t, err)
	assert.Equal(t, 1, row.AudioGenerations)
	assert.Equal(t, 12, row.TotalDuration)

	row, err = store.AddGeneration(ctx, user.ID, -4)
	require.NoError(t, err)
	assert.Equal(t, 2, row.AudioGenerations)
	assert.Equal(t, 12, row.TotalDuration)

	clock.now = clock.now.Add(2 * time.Minute)

	row, err = store.Today(ctx, user.ID)
	require.NoError(t, err)
	assert.Zero(t, row.AudioGenerations, "new day starts from zero")

	history, err := store.History(ctx, user.ID, 7)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, 2, history[1].AudioGenerations)
}

func TestStore_AddAPICall(t *testing.T) {
	client := testdata.OpenDB(t)
	user := testdata.CreateUser(t, client)
	store := NewStore(client)
	ctx := context.Background()

	require.NoError(t, store.AddAPICall(ctx, user.ID))
	require.NoError(t, store.AddAPICall(ctx, user.ID))

	row, err := store.Today(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, row.APICalls)
	assert.Zero(t, row.AudioGenerations)
}

func TestStore_Unavailable(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewStore(ent.NewClient(ent.Driver(entsql.OpenDB(dialect.Postgres, db))))
	ctx := context.Background()

	_, err = store.Today(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)

	_, err = store.Peek(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)

	_, err = store.AddGeneration(ctx, 1, 10)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)

	assert.ErrorIs(t, store.AddAPICall(ctx, 1), domain.ErrStoreUnavailable)
}
