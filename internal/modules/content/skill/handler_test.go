package skill

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mx-space/portfolio/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func setupRouter(svc *Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(svc).RegisterRoutes(r.Group("/api/v1"), func(c *gin.Context) { c.Next() })
	return r
}

func TestHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
	}{
		{"valid skill", `{"name":"Go","category":"backend","proficiency":90}`, http.StatusCreated},
		{"proficiency too high", `{"name":"Go","category":"backend","proficiency":101}`, http.StatusUnprocessableEntity},
		{"proficiency zero", `{"name":"Go","category":"backend","proficiency":0}`, http.StatusUnprocessableEntity},
		{"missing name", `{"category":"backend","proficiency":50}`, http.StatusBadRequest},
		{"malformed json", `{"name":`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupRouter(NewService(testutil.NewDB(t)))

			req := httptest.NewRequest(http.MethodPost, "/api/v1/skills", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestHandler_DeleteMissing(t *testing.T) {
	router := setupRouter(NewService(testutil.NewDB(t)))

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/skills/unknown", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
