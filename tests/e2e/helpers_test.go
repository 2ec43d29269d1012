//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/yuhuh-backend/internal/adapter/postgres"
	activityrepo "github.com/heartmarshall/yuhuh-backend/internal/adapter/postgres/activity"
	"github.com/heartmarshall/yuhuh-backend/internal/adapter/postgres/assignment"
	foodrepo "github.com/heartmarshall/yuhuh-backend/internal/adapter/postgres/food"
	moodrepo "github.com/heartmarshall/yuhuh-backend/internal/adapter/postgres/mood"
	"github.com/heartmarshall/yuhuh-backend/internal/adapter/postgres/testhelper"
	userrepo "github.com/heartmarshall/yuhuh-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/yuhuh-backend/internal/config"
	"github.com/heartmarshall/yuhuh-backend/internal/service/activity"
	"github.com/heartmarshall/yuhuh-backend/internal/service/food"
	"github.com/heartmarshall/yuhuh-backend/internal/service/mood"
	usersvc "github.com/heartmarshall/yuhuh-backend/internal/service/user"
	"github.com/heartmarshall/yuhuh-backend/internal/transport/rest"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the application stack backed by a real
// PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)
	ledger := config.LedgerConfig{DefaultPageSize: 10000, MaxBatchSize: 100}

	users := userrepo.New(pool, txm)
	assignments := assignment.New(pool)

	router := rest.NewRouter(rest.Handlers{
		Health:   rest.NewHealthHandler(pool, "test-version", logger),
		Food:     rest.NewFoodHandler(food.NewService(logger, foodrepo.New(pool, txm), users, ledger), logger),
		Mood:     rest.NewMoodHandler(mood.NewService(logger, moodrepo.New(pool, txm), assignments, users, ledger), logger),
		Activity: rest.NewActivityHandler(activity.NewService(logger, activityrepo.New(pool, txm), users, ledger), logger),
		User:     rest.NewUserHandler(usersvc.NewService(logger, users), logger),
	}, config.CORSConfig{
		AllowedOrigins: "*",
		AllowedMethods: "GET,POST,OPTIONS",
		AllowedHeaders: "Content-Type,X-Request-Id",
	}, logger)

	srv := httptest.NewServer(router)
	t.Cleanup(func() { srv.Close() })

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
	}
}

// postJSON sends body as JSON and returns status + decoded object.
func (ts *testServer) postJSON(t *testing.T, path string, body any) (int, map[string]any) {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := ts.Client.Post(ts.URL+path, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	defer resp.Body.Close()

	var result map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return resp.StatusCode, result
}

// getJSON issues a GET and returns status + decoded object.
func (ts *testServer) getJSON(t *testing.T, path string) (int, map[string]any) {
	t.Helper()

	resp, err := ts.Client.Get(ts.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	var result map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return resp.StatusCode, result
}

// registerUser creates a Discord-linked user through the API.
func registerUser(t *testing.T, ts *testServer) uuid.UUID {
	t.Helper()

	discordID := int64(uuid.New().ID()) + 1
	status, body := ts.postJSON(t, "/api/v1/users", map[string]any{
		"discord_id":       discordID,
		"discord_username": "e2e-user",
		"timezone":         "UTC",
	})
	require.Equal(t, http.StatusCreated, status, "body: %v", body)

	id, err := uuid.Parse(body["user_id"].(string))
	require.NoError(t, err)
	return id
}
