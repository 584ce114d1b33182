package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	redispkg "github.com/mx-space/portfolio/internal/pkg/redis"
	"github.com/mx-space/portfolio/internal/pkg/response"
	"go.uber.org/zap"
)

const (
	IdempotenceHeader = "x-idempotence"
	idempotenceTTL    = 60 * time.Second
)

// Idempotence rejects a repeated non-GET request carrying the same
// x-idempotence key within idempotenceTTL. Requests without the header pass.
func Idempotence(client *redispkg.Client, log *zap.Logger) gin.HandlerFunc {
	if log == nil {
		log = zap.NewNop()
	}
	return func(c *gin.Context) {
		if client == nil || c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead {
			c.Next()
			return
		}

		key := strings.TrimSpace(c.GetHeader(IdempotenceHeader))
		if key == "" {
			c.Next()
			return
		}

		redisKey := idempotenceKey(c, key)
		ctx := c.Request.Context()

		acquired, err := client.SetNX(ctx, redisKey, "0", idempotenceTTL)
		if err != nil {
			log.Warn("idempotence store unavailable", zap.Error(err))
			c.Next()
			return
		}
		if !acquired {
			msg := "the same request can only be sent once per minute"
			if val, _ := client.Get(ctx, redisKey); val == "0" {
				msg = "the same request is still being processed"
			}
			response.Conflict(c, msg)
			return
		}

		c.Next()

		status := c.Writer.Status()
		if status >= 200 && status < 400 {
			_ = client.Raw().SetXX(ctx, redisKey, "1", idempotenceTTL).Err()
		} else {
			_ = client.Del(ctx, redisKey)
		}
	}
}

func idempotenceKey(c *gin.Context, key string) string {
	raw := c.Request.Method + "|" + c.FullPath() + "|" + c.ClientIP() + "|" + key
	h := sha256.Sum256([]byte(raw))
	return "portfolio:idempotence:" + hex.EncodeToString(h[:])
}
