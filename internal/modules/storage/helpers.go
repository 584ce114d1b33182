package storage

import (
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// MaxUploadSize caps a single upload.
const MaxUploadSize = 20 << 20

// Upload buckets, one per kind of media the site stores.
var mediaTypes = map[string]struct{}{
	"profile":     {},
	"resume":      {},
	"projects":    {},
	"screenshots": {},
	"documents":   {},
}

// buildFileName generates a collision-resistant filename that preserves the
// original extension.
func buildFileName(original string) string {
	ext := strings.ToLower(filepath.Ext(strings.TrimSpace(original)))
	if ext == "" || len(ext) > 10 || !isSafeSegment(ext) {
		ext = ".dat"
	}
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:18] + ext
}

// normalizeType lower-cases raw and accepts only known upload buckets.
func normalizeType(raw string) string {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if _, ok := mediaTypes[raw]; !ok {
		return ""
	}
	return raw
}

// safeName returns the base name of raw only when it passes isSafeSegment.
func safeName(raw string) string {
	name := filepath.Base(strings.TrimSpace(raw))
	if name == "" || name == "." || name == ".." || name == string(filepath.Separator) {
		return ""
	}
	if !isSafeSegment(name) {
		return ""
	}
	return name
}

// isSafeSegment returns true when s contains only alphanumerics, hyphens,
// underscores, or dots.
func isSafeSegment(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9') || r == '-' || r == '_' || r == '.' {
			continue
		}
		return false
	}
	return true
}

// detectContentType prefers the client header, then the extension, then sniffing.
func detectContentType(filename string, head []byte, fallback string) string {
	if ct := strings.TrimSpace(fallback); ct != "" && ct != "application/octet-stream" {
		return ct
	}
	if ext := strings.ToLower(filepath.Ext(strings.TrimSpace(filename))); ext != "" {
		if guessed := mime.TypeByExtension(ext); guessed != "" {
			return guessed
		}
	}
	if len(head) > 0 {
		return http.DetectContentType(head)
	}
	return "application/octet-stream"
}
