//go:build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"go-content-api/internal/config"
	"go-content-api/internal/database"
	"go-content-api/internal/handler"
	"go-content-api/internal/metrics"
	"go-content-api/internal/middleware"
	"go-content-api/internal/repository"
	"go-content-api/internal/router"
	"go-content-api/internal/service"
)

type envelope struct {
	Data   json.RawMessage `json:"data"`
	Error  string          `json:"error"`
	Status int             `json:"status"`
}

// newServer runs the real stack against TEST_DATABASE_URL. Every test gets
// freshly truncated tables.
func newServer(t *testing.T) (*httptest.Server, *database.DB) {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	cfg := &config.Config{
		DatabaseURL:         dsn,
		DBMaxConns:          4,
		DBMinConns:          0,
		DBMaxConnLifetime:   time.Minute,
		DBMaxConnIdleTime:   time.Minute,
		DBHealthCheckPeriod: time.Minute,
		CORSOrigins:         []string{"*"},
		RateLimitRPM:        1000,
		AuthRateLimitRPM:    1000,
		RequestTimeout:      10 * time.Second,
	}

	ctx := context.Background()
	db, err := database.Open(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	_, err = db.Pool.Exec(ctx, `TRUNCATE users, refresh_tokens, posts, comments RESTART IDENTITY CASCADE`)
	require.NoError(t, err)

	tokens, err := service.NewTokenService("integration-secret", 15*time.Minute, 24*time.Hour)
	require.NoError(t, err)

	postRepo := repository.NewPostRepository(db.Pool)
	authService := service.NewAuthService(
		repository.NewUserRepository(db.Pool),
		repository.NewTokenRepository(db.Pool),
		service.NewBcryptHasher(bcrypt.MinCost),
		tokens,
	)
	pages := handler.Pagination{Default: 10, Max: 100}
	m := metrics.New()

	server := httptest.NewServer(router.New(cfg, middleware.NewAuthMiddleware(authService, m), m, router.Handlers{
		Auth:    handler.NewAuthHandler(authService),
		Post:    handler.NewPostHandler(service.NewPostService(postRepo), pages),
		Comment: handler.NewCommentHandler(service.NewCommentService(repository.NewCommentRepository(db.Pool), postRepo), pages),
		Health:  handler.NewHealthHandler(db),
	}))
	t.Cleanup(server.Close)

	return server, db
}

func doJSON(t *testing.T, method string, url string, body any, accessToken string) envelope {
	t.Helper()

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		require.NoError(t, err)
	}

	req, err := http.NewRequest(method, url, bytes.NewReader(payload))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	require.Equal(t, resp.StatusCode, env.Status)
	return env
}

func mustDecode[T any](t *testing.T, env envelope) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(env.Data, &out))
	return out
}
