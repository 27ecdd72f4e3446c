package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/fitjournal-engine/internal/app"
	"github.com/comitanigiacomo/fitjournal-engine/internal/core/domain"
	"github.com/comitanigiacomo/fitjournal-engine/internal/core/services"
)

func isolateEnv(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	t.Setenv("REDIS_HOST", "")
	t.Setenv("REPORT_TZ", "UTC")
}

func run(t *testing.T, args ...string) (string, error) {
	buf := &bytes.Buffer{}
	root := NewRootCommand()
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestRootHelp(t *testing.T) {
	out, err := run(t, "--help")

	require.NoError(t, err)
	assert.Contains(t, out, "weekly")
	assert.Contains(t, out, "lookup")
	assert.Contains(t, out, "migrate")
}

func TestMigrateIdempotent(t *testing.T) {
	isolateEnv(t)
	path := filepath.Join(t.TempDir(), "journal.db")

	for i := 0; i < 2; i++ {
		out, err := run(t, "--sqlite", path, "migrate")
		require.NoError(t, err, "migrate run %d", i+1)
		assert.Contains(t, out, "Schema at version")
	}
}

func TestMigrateRejectsMemory(t *testing.T) {
	isolateEnv(t)

	_, err := run(t, "--driver", "memory", "migrate")
	assert.Error(t, err)
}

func TestWeekly(t *testing.T) {
	isolateEnv(t)
	t.Setenv("JWT_SECRET", "cli-secret")
	path := filepath.Join(t.TempDir(), "journal.db")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", path)

	ctx := context.Background()
	opts := &rootOptions{}
	require.NoError(t, opts.withApp(ctx, func(a *app.App) error {
		if _, err := a.Workout.Create(ctx, services.CreateWorkoutInput{
			UserID: "u1", Name: "Run", Type: "running", DurationMinutes: 30, CaloriesBurned: 300,
			OccurredAt: time.Date(2026, 3, 12, 8, 0, 0, 0, time.UTC),
		}); err != nil {
			return err
		}
		_, err := a.Food.Log(ctx, services.LogFoodInput{UserID: "u1", Day: "2026-03-14", Name: "Oats", ProteinG: 10, CarbsG: 20, FatG: 5})
		return err
	}))

	t.Run("JSON output", func(t *testing.T) {
		out, err := run(t, "weekly", "--user", "u1", "--date", "2026-03-14", "--json")
		require.NoError(t, err)

		var stats domain.WeeklyStats
		require.NoError(t, json.Unmarshal([]byte(out), &stats))
		assert.Equal(t, "2026-03-08", stats.StartDate)
		assert.Equal(t, 1, stats.TotalWorkouts)
		assert.Equal(t, 300.0, stats.CaloriesBurned)
		assert.Equal(t, 165.0, stats.CaloriesConsumed)
	})

	t.Run("Table output", func(t *testing.T) {
		out, err := run(t, "weekly", "--user", "u1", "--date", "2026-03-14")
		require.NoError(t, err)

		assert.Contains(t, out, "Week 2026-03-08 .. 2026-03-14")
		assert.Contains(t, out, "12/3")
		assert.Contains(t, out, "Active days: 1")
	})

	t.Run("Bad date", func(t *testing.T) {
		_, err := run(t, "weekly", "--user", "u1", "--date", "14-03-2026")
		assert.Error(t, err)
	})

	t.Run("Missing user", func(t *testing.T) {
		_, err := run(t, "weekly")
		assert.Error(t, err)
	})
}

func TestLookup(t *testing.T) {
	isolateEnv(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v2/product/3017620422003.json" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{"status":1,"product":{"product_name":"Nutella","nutriments":{"energy-kcal_100g":539,"proteins_100g":6.3,"carbohydrates_100g":57.5,"fat_100g":30.9}}}`))
	}))
	defer srv.Close()
	t.Setenv("OFF_BASE_URL", srv.URL)

	t.Run("Found", func(t *testing.T) {
		out, err := run(t, "lookup", "3017620422003")
		require.NoError(t, err)
		assert.Contains(t, out, "Food: Nutella")
		assert.Contains(t, out, "539.0 kcal")
	})

	t.Run("Not found JSON", func(t *testing.T) {
		out, err := run(t, "lookup", "4000000000000", "--json")
		require.NoError(t, err)
		assert.Contains(t, out, `"found": false`)
	})

	t.Run("Invalid barcode", func(t *testing.T) {
		_, err := run(t, "lookup", "not-a-code")
		assert.ErrorIs(t, err, domain.ErrInvalidBarcode)
	})
}
