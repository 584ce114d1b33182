package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	redispkg "github.com/mx-space/portfolio/internal/pkg/redis"
	"github.com/stretchr/testify/assert"
)

func idempotentRouter(client *redispkg.Client, status *int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/contact/", Idempotence(client, nil), func(c *gin.Context) {
		c.Status(*status)
	})
	return r
}

func post(r *gin.Engine, key string) int {
	req := httptest.NewRequest(http.MethodPost, "/contact/", nil)
	if key != "" {
		req.Header.Set(IdempotenceHeader, key)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestIdempotence_RejectsRepeat(t *testing.T) {
	status := http.StatusCreated
	router := idempotentRouter(newRedis(t), &status)

	assert.Equal(t, http.StatusCreated, post(router, "abc"))
	assert.Equal(t, http.StatusConflict, post(router, "abc"))
	assert.Equal(t, http.StatusCreated, post(router, "other"))
}

func TestIdempotence_NoHeaderPasses(t *testing.T) {
	status := http.StatusCreated
	router := idempotentRouter(newRedis(t), &status)

	assert.Equal(t, http.StatusCreated, post(router, ""))
	assert.Equal(t, http.StatusCreated, post(router, ""))
}

func TestIdempotence_FailedRequestReleasesKey(t *testing.T) {
	status := http.StatusUnprocessableEntity
	router := idempotentRouter(newRedis(t), &status)

	assert.Equal(t, http.StatusUnprocessableEntity, post(router, "abc"))

	status = http.StatusCreated
	assert.Equal(t, http.StatusCreated, post(router, "abc"))
	assert.Equal(t, http.StatusConflict, post(router, "abc"))
}

func TestIdempotence_NilClientPasses(t *testing.T) {
	status := http.StatusCreated
	router := idempotentRouter(nil, &status)

	assert.Equal(t, http.StatusCreated, post(router, "abc"))
	assert.Equal(t, http.StatusCreated, post(router, "abc"))
}
