package app

import (
	"net/url"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/mx-space/portfolio/internal/config"
	"github.com/mx-space/portfolio/internal/middleware"
)

// newCORSConfig allows any origin in development or when allowed_origins is
// empty. Otherwise the request origin must match one of the patterns.
func newCORSConfig(cfg *config.AppConfig) cors.Config {
	c := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.IdempotenceHeader},
		ExposeHeaders:    []string{"Content-Length", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 0 || cfg.IsDev() {
		c.AllowOriginFunc = func(string) bool { return true }
		return c
	}
	patterns := cfg.AllowedOrigins
	c.AllowOriginFunc = func(origin string) bool {
		return originAllowed(patterns, origin)
	}
	return c
}

// originAllowed matches the origin host against exact hosts, "*.domain"
// subdomain patterns and "host:*" any-port patterns. Patterns written as full
// origins are compared by host.
func originAllowed(patterns []string, origin string) bool {
	host := originHost(origin)
	if host == "" {
		return false
	}
	for _, p := range patterns {
		p = strings.ToLower(strings.TrimSpace(p))
		if strings.Contains(p, "://") {
			p = originHost(p)
		}
		switch {
		case p == "*", p == host:
			return true
		case strings.HasPrefix(p, "*."):
			if strings.HasSuffix(host, p[1:]) {
				return true
			}
		case strings.HasSuffix(p, ":*"):
			if strings.HasPrefix(host, p[:len(p)-1]) {
				return true
			}
		}
	}
	return false
}

// originHost returns the lowercased host[:port] of an origin. Bare hosts pass
// through unchanged.
func originHost(origin string) string {
	origin = strings.ToLower(strings.TrimSpace(origin))
	if u, err := url.Parse(origin); err == nil && u.Host != "" {
		return u.Host
	}
	return origin
}
