package security

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newRouter(mw gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(mw)
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func doGet(r *gin.Engine, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCORS_WhitelistedOrigin(t *testing.T) {
	t.Parallel()
	r := newRouter(CORS([]string{"https://play.example.com"}))

	w := doGet(r, "https://play.example.com")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://play.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORS_UnknownOriginGetsNoAllowHeader(t *testing.T) {
	t.Parallel()
	r := newRouter(CORS([]string{"https://play.example.com"}))

	w := doGet(r, "https://evil.example.com")
	// The request is still served; the browser blocks it for lack of Allow-Origin
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_Wildcard(t *testing.T) {
	t.Parallel()
	r := newRouter(CORS([]string{"*"}))

	w := doGet(r, "https://anywhere.example.com")
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORS_PreflightShortCircuits(t *testing.T) {
	t.Parallel()
	r := newRouter(CORS([]string{"https://play.example.com"}))

	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "https://play.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.NotEmpty(t, w.Header().Get("Access-Control-Allow-Methods"))
}

func TestSecure_SetsHeaders(t *testing.T) {
	t.Parallel()
	r := newRouter(Secure())

	w := doGet(r, "")
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	// No HSTS over plain HTTP
	assert.Empty(t, w.Header().Get("Strict-Transport-Security"))
}

func TestRateLimiter_BlocksAfterBudget(t *testing.T) {
	t.Parallel()
	r := newRouter(RateLimiter(3, time.Minute))

	for i := 0; i < 3; i++ {
		w := doGet(r, "")
		assert.Equal(t, http.StatusOK, w.Code, "request %d should pass", i+1)
	}

	w := doGet(r, "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestRateLimiter_TracksClientsSeparately(t *testing.T) {
	t.Parallel()
	r := newRouter(RateLimiter(1, time.Minute))

	first := httptest.NewRequest(http.MethodGet, "/ping", nil)
	first.RemoteAddr = "10.0.0.1:1234"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, first)
	assert.Equal(t, http.StatusOK, w.Code)

	// A second request from the same client is rejected
	second := httptest.NewRequest(http.MethodGet, "/ping", nil)
	second.RemoteAddr = "10.0.0.1:5678"
	w = httptest.NewRecorder()
	r.ServeHTTP(w, second)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	// A different client is unaffected
	other := httptest.NewRequest(http.MethodGet, "/ping", nil)
	other.RemoteAddr = "10.0.0.2:1234"
	w = httptest.NewRecorder()
	r.ServeHTTP(w, other)
	assert.Equal(t, http.StatusOK, w.Code)
}
