package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"dino-explorer/internal/bootstrap"
	"dino-explorer/internal/config"
	"dino-explorer/internal/model"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Era{},
		&model.Location{},
		&model.Dinosaur{},
		&model.Researcher{},
	))

	cfg, err := config.Load()
	require.NoError(t, err)
	cfg.App.GinMode = gin.TestMode

	return NewRouter(&bootstrap.App{
		Config:    cfg,
		DB:        db,
		StartedAt: time.Now(),
	})
}

func do(router *gin.Engine, method, path, token string, payload any) *httptest.ResponseRecorder {
	var body *bytes.Reader
	if payload != nil {
		buf, _ := json.Marshal(payload)
		body = bytes.NewReader(buf)
	} else {
		body = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func decode(t *testing.T, resp *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out), "body: %s", resp.Body.String())
	return out
}

func registerAndLogin(t *testing.T, router *gin.Engine, username, role string) string {
	t.Helper()

	payload := map[string]string{
		"username": username,
		"email":    username + "@x.io",
		"password": "abcdef",
	}
	if role != "" {
		payload["role"] = role
	}
	resp := do(router, http.MethodPost, "/api/auth/register", "", payload)
	require.Equal(t, http.StatusCreated, resp.Code, "body: %s", resp.Body.String())

	resp = do(router, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": username,
		"password": "abcdef",
	})
	require.Equal(t, http.StatusOK, resp.Code)
	token, _ := decode(t, resp)["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestRegisterLoginAndDinosaurLifecycle(t *testing.T) {
	router := newTestRouter(t)

	// Register: role defaults to user, no password in the response.
	resp := do(router, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": "rex",
		"email":    "rex@x.io",
		"password": "abcdef",
	})
	require.Equal(t, http.StatusCreated, resp.Code, "body: %s", resp.Body.String())
	body := decode(t, resp)
	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "user", user["role"])
	assert.NotContains(t, user, "password")

	// Login yields a non-empty token.
	resp = do(router, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "rex",
		"password": "abcdef",
	})
	require.Equal(t, http.StatusOK, resp.Code)
	token, _ := decode(t, resp)["token"].(string)
	require.NotEmpty(t, token)

	// Empty store lists as an empty array, not null.
	resp = do(router, http.MethodGet, "/api/dinosaurs", "", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "[]", strings.TrimSpace(resp.Body.String()))

	// Authenticated create.
	resp = do(router, http.MethodPost, "/api/dinosaurs", token, map[string]any{"name": "T-Rex"})
	require.Equal(t, http.StatusCreated, resp.Code, "body: %s", resp.Body.String())
	created := decode(t, resp)
	id := created["dinosaur_id"].(float64)
	assert.Greater(t, id, float64(0))

	// Delete with a non-admin token is forbidden.
	path := fmt.Sprintf("/api/dinosaurs/%d", int(id))
	resp = do(router, http.MethodDelete, path, token, nil)
	assert.Equal(t, http.StatusForbidden, resp.Code)

	// An admin may delete; 204 carries no body.
	adminToken := registerAndLogin(t, router, "boss", "admin")
	resp = do(router, http.MethodDelete, path, adminToken, nil)
	require.Equal(t, http.StatusNoContent, resp.Code)
	assert.Empty(t, resp.Body.String())

	resp = do(router, http.MethodGet, path, "", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestMutationsRequireToken(t *testing.T) {
	router := newTestRouter(t)

	resp := do(router, http.MethodPost, "/api/eras", "", map[string]any{"title": "Jurassic"})
	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	resp = do(router, http.MethodPut, "/api/eras/1", "", map[string]any{"title": "Jurassic"})
	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	resp = do(router, http.MethodDelete, "/api/eras/1", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestGetByIDStatusCodes(t *testing.T) {
	router := newTestRouter(t)

	resp := do(router, http.MethodGet, "/api/locations/abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, decode(t, resp), "error")

	resp = do(router, http.MethodGet, "/api/locations/-1", "", nil)
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = do(router, http.MethodGet, "/api/locations/9999", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestPartialUpdateOverHTTP(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router, "editor", "")

	resp := do(router, http.MethodPost, "/api/researchers", token, map[string]any{
		"name":        "Jack Horner",
		"discoveries": "Maiasaura",
	})
	require.Equal(t, http.StatusCreated, resp.Code)
	id := int(decode(t, resp)["researcher_id"].(float64))

	resp = do(router, http.MethodPut, fmt.Sprintf("/api/researchers/%d", id), token, map[string]any{
		"name": "John Horner",
	})
	require.Equal(t, http.StatusOK, resp.Code)
	updated := decode(t, resp)
	assert.Equal(t, "John Horner", updated["name"])
	assert.Equal(t, "Maiasaura", updated["discoveries"])

	// Empty change-set fails validation.
	resp = do(router, http.MethodPut, fmt.Sprintf("/api/researchers/%d", id), token, map[string]any{})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestBespokeReadRoutes(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router, "curator", "")

	resp := do(router, http.MethodPost, "/api/locations", token, map[string]any{
		"title":     "Gobi Desert",
		"continent": "Asia",
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	resp = do(router, http.MethodGet, "/api/locations/continent/Asia", "", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var rows []map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &rows))
	assert.Len(t, rows, 1)

	resp = do(router, http.MethodGet, "/api/locations/continent/Europe", "", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "[]", strings.TrimSpace(resp.Body.String()))

	resp = do(router, http.MethodGet, "/api/users/username/curator", "", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.NotContains(t, decode(t, resp), "password")
}

func TestDuplicateRegistrationConflicts(t *testing.T) {
	router := newTestRouter(t)

	payload := map[string]string{"username": "rex", "email": "rex@x.io", "password": "abcdef"}
	resp := do(router, http.MethodPost, "/api/auth/register", "", payload)
	require.Equal(t, http.StatusCreated, resp.Code)

	// Same username, different email: still a conflict, mapped to 400.
	resp = do(router, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": "rex", "email": "other@x.io", "password": "abcdef",
	})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, decode(t, resp)["error"], "already exists")
}

func TestLoginFailurePayloadsMatch(t *testing.T) {
	router := newTestRouter(t)

	resp := do(router, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": "rex", "email": "rex@x.io", "password": "abcdef",
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	wrongPassword := do(router, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "rex", "password": "wrong1",
	})
	unknownUser := do(router, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "ghost", "password": "abcdef",
	})

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownUser.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownUser.Body.String())
}
