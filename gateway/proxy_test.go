package gateway_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"stagelink/gateway"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newGatewayServer serves the gateway over a real listener; the reverse
// proxy needs a live ResponseWriter, not a bare recorder.
func newGatewayServer(t *testing.T, entries map[string]string) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	registry, err := gateway.NewRegistry(entries)
	require.NoError(t, err)
	srv := httptest.NewServer(gateway.NewRouter(registry, zap.NewNop(), 10_000))
	t.Cleanup(srv.Close)
	return srv
}

// noRedirectClient returns redirects as-is instead of following them, so a
// routing bug that bounces between gateway and backend shows up as a 307 in
// the status assertions rather than a redirect loop.
func noRedirectClient() *http.Client {
	return &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func TestProxy_ForwardsPathQueryAndAuthorization(t *testing.T) {
	var got *http.Request
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(r.Context())
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"totalCredits":100,"usedCredits":40,"availableCredits":60}`))
	}))
	defer backend.Close()

	srv := newGatewayServer(t, map[string]string{"hotels": backend.URL})

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/hotels/h-123/credits?fresh=true", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer test-token")

	resp, err := noRedirectClient().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotNil(t, got)
	assert.Equal(t, "/api/hotels/h-123/credits", got.URL.Path)
	assert.Equal(t, "fresh=true", got.URL.RawQuery)
	assert.Equal(t, "Bearer test-token", got.Header.Get("Authorization"))

	var balance struct {
		AvailableCredits int64 `json:"availableCredits"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&balance))
	assert.Equal(t, int64(60), balance.AvailableCredits)
}

func TestProxy_BareServicePathReachesBackend(t *testing.T) {
	// Backend registers the exact bare path, as the booking service does.
	gin.SetMode(gin.TestMode)
	backendRouter := gin.New()
	var hits int
	backendRouter.POST("/api/bookings", func(c *gin.Context) {
		hits++
		c.JSON(http.StatusCreated, gin.H{"success": true})
	})
	backend := httptest.NewServer(backendRouter)
	defer backend.Close()

	srv := newGatewayServer(t, map[string]string{"bookings": backend.URL})

	body := `{"hotelId":"h-1","artistId":"a-1","creditsUsed":25}`
	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/bookings", strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	// No trailing-slash redirect may occur on the way through.
	resp, err := noRedirectClient().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, 1, hits)
}

func TestProxy_ForwardsRequestBody(t *testing.T) {
	var gotBody []byte
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
	}))
	defer backend.Close()

	srv := newGatewayServer(t, map[string]string{"bookings": backend.URL})

	body := `{"hotelId":"h-1","artistId":"a-1","creditsUsed":25}`
	resp, err := noRedirectClient().Post(srv.URL+"/api/bookings/", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.JSONEq(t, body, string(gotBody))
}

func TestProxy_UnknownServiceIs404(t *testing.T) {
	srv := newGatewayServer(t, map[string]string{"hotels": "http://localhost:4002"})

	for _, path := range []string{"/api/reviews/123", "/api/reviews", "/api/", "/nope"} {
		resp, err := noRedirectClient().Get(srv.URL + path)
		require.NoError(t, err, path)
		raw, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode, path)
		assert.JSONEq(t, `{"success":false,"error":"Route not found"}`, string(raw), path)
	}
}

func TestProxy_DeadBackendIs502(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	backend.Close() // nothing is listening anymore

	srv := newGatewayServer(t, map[string]string{"artists": backend.URL})

	resp, err := noRedirectClient().Get(srv.URL + "/api/artists/a-1")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)

	var payload struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.False(t, payload.Success)
	assert.Contains(t, payload.Error, "artists service unreachable")
}

func TestRegistry_RejectsInvalidURL(t *testing.T) {
	_, err := gateway.NewRegistry(map[string]string{"hotels": "http://bad url with spaces"})
	assert.Error(t, err)
}
