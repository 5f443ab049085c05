package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/avasek/userdeck/internal/api/models"
	"github.com/avasek/userdeck/internal/config"
	"github.com/avasek/userdeck/internal/database"
	"github.com/avasek/userdeck/internal/password"
	"github.com/avasek/userdeck/internal/service"
	"github.com/avasek/userdeck/internal/storage"
)

func setupRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, db.Close())
	})

	root := filepath.Join(t.TempDir(), "static")
	store, err := storage.New(root)
	require.NoError(t, err)

	svc := service.New(db, password.NewHasher(bcrypt.MinCost), store)
	cfg := &config.Config{
		Gravatar: &config.GravatarConfig{Enabled: false},
	}
	h := New(svc, cfg)

	router := gin.New()
	api := router.Group("/api")
	api.POST("/users", h.CreateUser)
	api.GET("/users/:id", h.GetUser)
	api.GET("/users/:id/profile", h.GetProfile)
	api.PUT("/users/:id/profile", h.UpdateProfile)
	api.POST("/users/:id/profile/picture", h.AddProfilePicture)

	return router, root
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func createTestUser(t *testing.T, router *gin.Engine) {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/api/users", `{"username":"alice","email":"alice@example.com"}`)
	require.Equal(t, http.StatusCreated, w.Code)
}

func uploadPicture(t *testing.T, router *gin.Engine, path, filename string, content []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateUser(t *testing.T) {
	router, _ := setupRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/users", `{"username":"alice","email":"alice@example.com","password":"hunter2"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateUser_MissingIdentity(t *testing.T) {
	router, _ := setupRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/users", `{"password":"hunter2"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateUser_InvalidJSON(t *testing.T) {
	router, _ := setupRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/users", `{"username":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetUser(t *testing.T) {
	router, _ := setupRouter(t)
	createTestUser(t, router)

	w := doJSON(t, router, http.MethodGet, "/api/users/1", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Username)
	require.NotNil(t, resp.Email)
	assert.Equal(t, "alice", *resp.Username)
	assert.Equal(t, "alice@example.com", *resp.Email)
}

func TestGetUser_NotFound(t *testing.T) {
	router, _ := setupRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/users/42", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetUser_InvalidID(t *testing.T) {
	router, _ := setupRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/users/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetProfile_NotFound(t *testing.T) {
	router, _ := setupRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/users/42/profile", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateProfile_RoundTrip(t *testing.T) {
	router, _ := setupRouter(t)
	createTestUser(t, router)

	w := doJSON(t, router, http.MethodPut, "/api/users/1/profile", `{"dark_theme":true,"active_image":"x"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/users/1/profile", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ProfileResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.DarkTheme)
	assert.Equal(t, "x", resp.ActiveImage)
	assert.Empty(t, resp.Images)
}

func TestAddProfilePicture(t *testing.T) {
	router, root := setupRouter(t)
	createTestUser(t, router)

	w := uploadPicture(t, router, "/api/users/1/profile/picture", "a.png", []byte("picture-bytes"))
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ProfileResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Images, 1)
	// The recorded path is relative to the storage root's parent so it can
	// be served directly.
	assert.Equal(t, filepath.Join("static", "1", "a.png"), resp.Images[0])
	assert.FileExists(t, filepath.Join(root, "1", "a.png"))
}

func TestAddProfilePicture_NoProfile(t *testing.T) {
	router, _ := setupRouter(t)

	w := uploadPicture(t, router, "/api/users/42/profile/picture", "a.png", []byte("picture-bytes"))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddProfilePicture_MissingFile(t *testing.T) {
	router, _ := setupRouter(t)
	createTestUser(t, router)

	w := doJSON(t, router, http.MethodPost, "/api/users/1/profile/picture", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
