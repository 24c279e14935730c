package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	accounts "freelance-market/internal/accountService"
	bids "freelance-market/internal/bidService"
	"freelance-market/internal/config"
	"freelance-market/internal/notify"
	"freelance-market/internal/repository"
	sellers "freelance-market/internal/sellerService"
	"freelance-market/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// SetupTestRouter initializes the full router with an in-memory repository
// and a live notification hub for integration testing.
func SetupTestRouter() (*gin.Engine, *notify.Hub) {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		ServerAddress: ":0",
		TokenSecret:   "integration-test-secret",
		TokenTTL:      time.Hour,
		CookieSecure:  false,
		FrontendURL:   "http://localhost:5173",
	}

	repo := repository.NewMemoryRepo()
	hub := notify.NewHub()

	accountService := accounts.NewAccountService(repo, []byte(cfg.TokenSecret), cfg.TokenTTL)
	sellerService := sellers.NewSellerService(repo)
	bidService := bids.NewBidService(repo, hub)

	router := server.SetupRouter(cfg, accountService, sellerService, bidService, hub)
	return router, hub
}

// apiClient drives the API the way a browser would: it keeps a cookie jar
// for the session and csrf cookies and echoes the csrf token back in the
// header on state-changing requests.
type apiClient struct {
	t       *testing.T
	router  *gin.Engine
	cookies map[string]string
	csrf    string
}

func NewAPIClient(t *testing.T, router *gin.Engine) *apiClient {
	return &apiClient{
		t:       t,
		router:  router,
		cookies: map[string]string{},
	}
}

// Do executes a request with the client's cookies and csrf header attached
// and parses the JSON envelope.
func (c *apiClient) Do(method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	c.t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		var err error
		reqBody, err = json.Marshal(v)
		require.NoError(c.t, err)
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	for name, value := range c.cookies {
		req.AddCookie(&http.Cookie{Name: name, Value: value})
	}
	if method != http.MethodGet && c.csrf != "" {
		req.Header.Set("X-CSRF-Token", c.csrf)
	}

	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)

	for _, cookie := range w.Result().Cookies() {
		c.cookies[cookie.Name] = cookie.Value
	}

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		require.NoError(c.t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return resp, w
}

// FetchCSRF obtains a fresh csrf token and remembers it for later requests.
func (c *apiClient) FetchCSRF() {
	c.t.Helper()

	resp, w := c.Do(http.MethodGet, "/api/csrf-token", nil)
	require.Equal(c.t, http.StatusOK, w.Code)
	c.csrf = resp["data"].(map[string]any)["csrf_token"].(string)
}

// Signup registers a user and keeps the session cookie in the jar.
func (c *apiClient) Signup(username, email, role string) map[string]any {
	c.t.Helper()

	resp, w := c.Do(http.MethodPost, "/api/signup", map[string]any{
		"username": username,
		"email":    email,
		"password": "password123",
		"role":     role,
	})
	require.Equal(c.t, http.StatusCreated, w.Code)
	return resp["data"].(map[string]any)
}

// CreateSellerProfile creates a seller profile for the logged-in user and
// returns its seller_id.
func (c *apiClient) CreateSellerProfile(name string) string {
	c.t.Helper()

	resp, w := c.Do(http.MethodPost, "/api/seller", map[string]any{
		"name":        name,
		"role":        "developer",
		"skill":       "go",
		"description": "backend work",
		"experience":  3,
		"hourly_rate": 40.0,
	})
	require.Equal(c.t, http.StatusCreated, w.Code)
	return resp["data"].(map[string]any)["seller_id"].(string)
}

// PlaceBid places a bid as the logged-in client and returns its bid_id.
func (c *apiClient) PlaceBid(sellerID string, amount float64, message string) string {
	c.t.Helper()

	resp, w := c.Do(http.MethodPost, "/api/bids", map[string]any{
		"seller_id": sellerID,
		"amount":    amount,
		"message":   message,
	})
	require.Equal(c.t, http.StatusCreated, w.Code)
	return resp["data"].(map[string]any)["bid_id"].(string)
}
