package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"

	"trivia_room_backend/internal/config"
	"trivia_room_backend/internal/model"
	"trivia_room_backend/pkg/database"
	"trivia_room_backend/pkg/logger"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

// testServer runs the real route table against SQLite and miniredis.
type testServer struct {
	db     *gorm.DB
	cfg    *config.Config
	router *gin.Engine
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: glogger.Default.LogMode(glogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	cfg := &config.Config{
		JWT: config.JWTConfig{
			Secret:     "test-secret",
			ExpireTime: time.Hour,
		},
		Room: config.RoomConfig{
			CodeLength:            6,
			DefaultMaxPlayers:     8,
			MaxPlayersCap:         100,
			DefaultQuestionPoints: 100,
			LeaderboardTTLSeconds: 30,
		},
		Media: config.MediaConfig{MaxUploadMB: 1},
		Storage: config.StorageConfig{
			Type:      "local",
			LocalPath: t.TempDir(),
		},
	}

	a := &App{Config: cfg, DB: db, Redis: rdb}
	repos := a.initRepositories(db)
	services := a.initServices(repos, cfg, db, rdb)
	controllers := a.initControllers(services, db, rdb)

	router := gin.New()
	a.Router = router
	a.registerRoutes(router, controllers, repos, cfg)

	return &testServer{db: db, cfg: cfg, router: router}
}

func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

type apiResponse struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) apiResponse {
	t.Helper()
	var resp apiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "body: %s", w.Body.String())
	return resp
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	resp := decode(t, w)
	require.NotNil(t, resp.Data, "expected a data payload, body: %s", w.Body.String())
	require.NoError(t, json.Unmarshal(resp.Data, dst))
}

var emailSeq atomic.Uint64

// signup registers a fresh user over HTTP and returns its id and JWT.
func (s *testServer) signup(t *testing.T, name string) (uint, string) {
	t.Helper()

	email := fmt.Sprintf("%s-%d@example.com", name, emailSeq.Add(1))
	w := s.do(t, http.MethodPost, "/api/register", "", gin.H{
		"name":     name,
		"email":    email,
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code, "register failed: %s", w.Body.String())

	w = s.do(t, http.MethodPost, "/api/login", "", gin.H{
		"email":    email,
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code, "login failed: %s", w.Body.String())

	var result struct {
		Token string     `json:"token"`
		User  model.User `json:"user"`
	}
	decodeData(t, w, &result)
	return result.User.ID, result.Token
}

// signupAdmin promotes a fresh user to admin and logs in again so the
// token carries the admin role.
func (s *testServer) signupAdmin(t *testing.T) string {
	t.Helper()

	id, _ := s.signup(t, "admin")
	require.NoError(t, s.db.Model(&model.User{}).Where("id = ?", id).Update("role", model.RoleAdmin).Error)

	var user model.User
	require.NoError(t, s.db.First(&user, id).Error)
	w := s.do(t, http.MethodPost, "/api/login", "", gin.H{
		"email":    user.Email,
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var result struct {
		Token string `json:"token"`
	}
	decodeData(t, w, &result)
	return result.Token
}

func TestHealthEndpoint(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Status     string            `json:"status"`
		Components map[string]string `json:"components"`
	}
	decodeData(t, w, &data)
	assert.Equal(t, "ok", data.Status)
	assert.Equal(t, "up", data.Components["database"])
	assert.Equal(t, "up", data.Components["redis"])
}

func TestRegisterEndpoint(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/register", "", gin.H{
		"name":     "alice",
		"email":    "alice@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	// Same email again
	w = s.do(t, http.MethodPost, "/api/register", "", gin.H{
		"name":     "alice",
		"email":    "alice@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Binding failures: malformed email, short password
	w = s.do(t, http.MethodPost, "/api/register", "", gin.H{
		"name":     "bob",
		"email":    "not-an-email",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPost, "/api/register", "", gin.H{
		"name":     "bob",
		"email":    "bob@example.com",
		"password": "short",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginEndpoint_BadCredentials(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/register", "", gin.H{
		"name":     "alice",
		"email":    "login-test@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = s.do(t, http.MethodPost, "/api/login", "", gin.H{
		"email":    "login-test@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(t, http.MethodPost, "/api/login", "", gin.H{
		"email":    "nobody@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	// No token
	w := s.do(t, http.MethodGet, "/api/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Garbage token
	w = s.do(t, http.MethodGet, "/api/profile", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	_, token := s.signup(t, "alice")
	w = s.do(t, http.MethodGet, "/api/profile", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var user model.User
	decodeData(t, w, &user)
	assert.Equal(t, "alice", user.Name)
}

func TestRoomPreviewEndpoint(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	_, host := s.signup(t, "host")
	w := s.do(t, http.MethodPost, "/api/host/rooms", host, gin.H{"title": "pub quiz"})
	require.Equal(t, http.StatusCreated, w.Code)

	var room model.Room
	decodeData(t, w, &room)

	// Preview is public, no token required
	w = s.do(t, http.MethodGet, "/api/rooms/preview/"+room.Code, "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var preview struct {
		Code   string `json:"code"`
		Title  string `json:"title"`
		Status string `json:"status"`
	}
	decodeData(t, w, &preview)
	assert.Equal(t, room.Code, preview.Code)
	assert.Equal(t, "pub quiz", preview.Title)
	assert.Equal(t, "lobby", preview.Status)

	// The preview payload never includes questions or the host id
	assert.NotContains(t, w.Body.String(), "hostId")
	assert.NotContains(t, w.Body.String(), "questions\"")

	w = s.do(t, http.MethodGet, "/api/rooms/preview/NOSUCH", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminRoutes_RequireAdminRole(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	_, token := s.signup(t, "alice")
	w := s.do(t, http.MethodGet, "/api/admin/users", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	admin := s.signupAdmin(t)
	w = s.do(t, http.MethodGet, "/api/admin/users", admin, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var page struct {
		Total int64 `json:"total"`
	}
	decodeData(t, w, &page)
	assert.GreaterOrEqual(t, page.Total, int64(2))
}

func TestAdminCanDisableUser(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	userID, userToken := s.signup(t, "alice")
	admin := s.signupAdmin(t)

	w := s.do(t, http.MethodPost, fmt.Sprintf("/api/admin/users/%d/disable", userID), admin, gin.H{"disabled": true})
	assert.Equal(t, http.StatusOK, w.Code)

	// Existing tokens keep working, but a new login is refused
	w = s.do(t, http.MethodGet, "/api/profile", userToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var user model.User
	require.NoError(t, s.db.First(&user, userID).Error)
	w = s.do(t, http.MethodPost, "/api/login", "", gin.H{
		"email":    user.Email,
		"password": "secret123",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines", "prometheus default collectors should be exposed")
}
