package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"talenthub_backend/internal/services/dto"
	"talenthub_backend/test/helpers"
)

var (
	globalTestServer *helpers.TestServer
	serverOnce       sync.Once
)

// GetTestServer returns the shared test server, starting it on first use.
// The suite is skipped entirely when TEST_DATABASE_URL is unset.
func GetTestServer(t *testing.T) *helpers.TestServer {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration tests")
	}

	serverOnce.Do(func() {
		os.Setenv("DATABASE_URL", dsn)
		os.Setenv("SERVER_ENV", "test")
		os.Setenv("JWT_SECRET", "integration-test-secret")
		globalTestServer = helpers.NewTestServer(t)
	})
	return globalTestServer
}

// registerTalent registers a fresh user with a unique username and returns
// its access token and registration response.
func registerTalent(t *testing.T, ts *helpers.TestServer, prefix string) (string, dto.AuthResponse) {
	t.Helper()

	username := fmt.Sprintf("%s_%d", prefix, time.Now().UnixNano())
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", dto.RegisterRequest{
		Username:  username,
		Email:     username + "@example.com",
		FirstName: "Test",
		LastName:  "Talent",
		Password:  "password123",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, "register should succeed: %s", body)

	var auth dto.AuthResponse
	require.NoError(t, json.Unmarshal([]byte(body), &auth))
	require.NotEmpty(t, auth.Tokens.AccessToken)
	return auth.Tokens.AccessToken, auth
}
