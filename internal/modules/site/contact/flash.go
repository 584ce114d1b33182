package contact

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	flashCookie = "portfolio_flash"
	flashMaxAge = 60
)

// Flash is a one-shot acknowledgment shown after a redirect.
type Flash struct {
	Level   string `json:"level"` // success | error
	Message string `json:"message"`
}

func setFlash(c *gin.Context, f Flash) {
	raw, err := json.Marshal(f)
	if err != nil {
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(flashCookie, base64.RawURLEncoding.EncodeToString(raw), flashMaxAge, "/", "", false, true)
}

// popFlash returns and clears the pending flash, if any.
func popFlash(c *gin.Context) *Flash {
	value, err := c.Cookie(flashCookie)
	if err != nil || value == "" {
		return nil
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)

	raw, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return nil
	}
	var f Flash
	if err := json.Unmarshal(raw, &f); err != nil || f.Message == "" {
		return nil
	}
	return &f
}
