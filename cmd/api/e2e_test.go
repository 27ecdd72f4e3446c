package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/fitjournal-engine/internal/app"
	"github.com/comitanigiacomo/fitjournal-engine/internal/config"
	"github.com/comitanigiacomo/fitjournal-engine/internal/core/domain"
)

type createResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func setupTestApp(t *testing.T, offURL string) *app.App {
	t.Setenv("DB_DRIVER", config.DriverSQLite)
	t.Setenv("SQLITE_PATH", filepath.Join(t.TempDir(), "e2e.db"))
	t.Setenv("REDIS_HOST", "")
	t.Setenv("JWT_SECRET", "e2e-secret")
	t.Setenv("OFF_BASE_URL", offURL)

	cfg, err := config.FromEnv()
	require.NoError(t, err)

	a, err := app.New(context.Background(), cfg)
	require.NoError(t, err, "Failed to wire application")
	t.Cleanup(func() { a.Close() })
	return a
}

func TestEndToEnd_JournalLifecycle(t *testing.T) {
	gin.SetMode(gin.TestMode)

	off := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v2/product/3017620422003.json" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{"status":1,"product":{"product_name":"Nutella","nutriments":{"energy-kcal_100g":539,"proteins_100g":6.3,"carbohydrates_100g":57.5,"fat_100g":30.9}}}`))
	}))
	defer off.Close()

	router := NewServerRouter(setupTestApp(t, off.URL), time.Now())

	var token, workoutID string

	send := func(method, path string, body any) *httptest.ResponseRecorder {
		var buf bytes.Buffer
		if body != nil {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
		req, _ := http.NewRequest(method, path, &buf)
		req.Header.Set("Content-Type", "application/json")
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("1. Register and Login", func(t *testing.T) {
		creds := map[string]string{"email": "e2e@fitjournal.app", "password": "CorrectHorse1"}

		w := send(http.MethodPost, "/api/v1/auth/register", creds)
		require.Equal(t, http.StatusCreated, w.Code)

		w = send(http.MethodPost, "/api/v1/auth/register", creds)
		assert.Equal(t, http.StatusConflict, w.Code)

		w = send(http.MethodPost, "/api/v1/auth/login", creds)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Token string `json:"token"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		token = resp.Token
		require.NotEmpty(t, token)
	})

	t.Run("2. Create Workout", func(t *testing.T) {
		require.NotEmpty(t, token, "Login step failed")

		w := send(http.MethodPost, "/api/v1/workouts", map[string]any{
			"name": "Morning Run", "type": "running", "duration_minutes": 35, "calories_burned": 350,
			"occurred_at": time.Now().UTC().Format(time.RFC3339),
		})
		require.Equal(t, http.StatusCreated, w.Code)

		var resp createResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		workoutID = resp.ID
		require.NotEmpty(t, workoutID)
	})

	t.Run("3. Update Workout", func(t *testing.T) {
		require.NotEmpty(t, workoutID, "Create step failed, cannot update")

		w := send(http.MethodPut, "/api/v1/workouts/"+workoutID, map[string]any{"name": "Evening Run"})
		assert.Equal(t, http.StatusOK, w.Code)

		w = send(http.MethodGet, "/api/v1/workouts", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Evening Run")
	})

	t.Run("4. Barcode prefill then log food", func(t *testing.T) {
		w := send(http.MethodGet, "/api/v1/foods/barcode/3017620422003", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var lookup struct {
			Found   bool               `json:"found"`
			Prefill domain.FoodPrefill `json:"prefill"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &lookup))
		require.True(t, lookup.Found)

		w = send(http.MethodPost, "/api/v1/foods", map[string]any{
			"name": *lookup.Prefill.Name, "calories": lookup.Prefill.Calories, "barcode": lookup.Prefill.Barcode,
		})
		require.Equal(t, http.StatusCreated, w.Code)

		w = send(http.MethodGet, "/api/v1/foods/barcode/4000000000000", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"found":false`)
	})

	t.Run("5. Weekly Stats", func(t *testing.T) {
		w := send(http.MethodGet, "/api/v1/stats/weekly", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var stats domain.WeeklyStats
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
		assert.Equal(t, 1, stats.TotalWorkouts)
		assert.Equal(t, 350.0, stats.CaloriesBurned)
		assert.Equal(t, 539.0, stats.CaloriesConsumed)
		assert.Equal(t, 1, stats.ActiveDays)
		assert.Equal(t, 539.0, stats.AverageCaloriesConsumedPerActiveDay)
	})

	t.Run("6. Delete Workout", func(t *testing.T) {
		w := send(http.MethodDelete, "/api/v1/workouts/"+workoutID, nil)
		assert.Equal(t, http.StatusNoContent, w.Code)

		w = send(http.MethodGet, "/api/v1/workouts/"+workoutID, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("7. Validation Error", func(t *testing.T) {
		w := send(http.MethodPost, "/api/v1/workouts", map[string]any{"type": "running"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("8. Auth Error", func(t *testing.T) {
		token = ""
		w := send(http.MethodGet, "/api/v1/workouts", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
