package storage

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	dir := t.TempDir()
	h := NewHandler(NewLocal(dir, MediaPrefix), nil)

	r := gin.New()
	h.RegisterRoutes(r.Group("/api/v1"), func(c *gin.Context) { c.Next() })
	h.RegisterMediaRoutes(r)
	return r, dir
}

func uploadRequest(t *testing.T, typ, filename string, content []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/files/upload?type="+typ, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestHandler_UploadServeDelete(t *testing.T) {
	router, dir := setupRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, "documents", "cv.pdf", []byte("%PDF-1.4 test")))
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		URL     string `json:"url"`
		Name    string `json:"name"`
		Storage string `json:"storage"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, DriverLocal, resp.Storage)
	assert.Equal(t, "/media/documents/"+resp.Name, resp.URL)
	assert.FileExists(t, filepath.Join(dir, "documents", resp.Name))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, resp.URL, nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "%PDF-1.4 test", w.Body.String())
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/files/documents/"+resp.Name, nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
	_, err := os.Stat(filepath.Join(dir, "documents", resp.Name))
	assert.True(t, os.IsNotExist(err))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/files/documents/"+resp.Name, nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_UploadRejects(t *testing.T) {
	router, _ := setupRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, "avatars", "a.png", []byte("x")))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/files/upload?type=projects", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ServeMissing(t *testing.T) {
	router, _ := setupRouter(t)

	for _, path := range []string{"/media/projects/nope.png", "/media/secrets/x.txt"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusNotFound, w.Code, path)
	}
}
