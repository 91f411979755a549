package plans

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/audiomint/backend/ent/plan"
	"github.com/audiomint/backend/pkg/testdata"
)

func TestSeed(t *testing.T) {
	client := testdata.OpenDB(t)
	catalog := newTestCatalog(client)
	ctx := context.Background()
	defs := DefaultDefinitions(PriceIDs{"pro": "price_pro", "enterprise": "price_ent"})

	t.Run("Success - creates all default plans", func(t *testing.T) {
		created, err := catalog.Seed(ctx, defs)
		require.NoError(t, err)
		assert.Equal(t, []string{"free", "pro", "enterprise"}, created)

		free, err := catalog.DefaultPlan(ctx)
		require.NoError(t, err)
		assert.Equal(t, "free", free.Name)
		assert.Nil(t, free.StripePriceID)

		enterprise, err := catalog.PlanByPriceID(ctx, "price_ent")
		require.NoError(t, err)
		require.NotNil(t, enterprise)
		assert.Equal(t, 500, enterprise.DailyAudioLimit)
		assert.Equal(t, 120, enterprise.MaxAudioDuration)
	})

	t.Run("Idempotent - second run creates nothing", func(t *testing.T) {
		created, err := catalog.Seed(ctx, defs)
		require.NoError(t, err)
		assert.Empty(t, created)

		count, err := client.Plan.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, count)
	})

	t.Run("Error - invalid definition is rejected before writing", func(t *testing.T) {
		bad := DefaultDefinitions(nil)
		bad[0].Name = "turbo"
		bad[0].MaxDuration = 900

		_, err := catalog.Seed(ctx, bad)
		require.Error(t, err)

		exists, err := client.Plan.Query().Where(plan.Name("turbo")).Exist(ctx)
		require.NoError(t, err)
		assert.False(t, exists)
	})
}
