package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/mx-space/portfolio/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicBaseURL(t *testing.T) {
	tests := []struct {
		name         string
		customDomain string
		endpoint     string
		pathStyle    bool
		want         string
	}{
		{"custom domain", "cdn.example.com/", "", false, "https://cdn.example.com"},
		{"aws virtual host", "", "", false, "https://media.s3.eu-west-1.amazonaws.com"},
		{"aws path style", "", "", true, "https://s3.eu-west-1.amazonaws.com/media"},
		{"custom endpoint", "", "http://minio:9000", true, "http://minio:9000/media"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, publicBaseURL(tt.customDomain, tt.endpoint, "media", "eu-west-1", tt.pathStyle))
		})
	}
}

func TestNewS3_Incomplete(t *testing.T) {
	_, err := NewS3(config.S3Options{Bucket: "media"})
	assert.Error(t, err)
}

type recordedRequest struct {
	method string
	path   string
	body   string
}

func fakeS3(t *testing.T, status int) (*httptest.Server, *[]recordedRequest) {
	t.Helper()
	var mu sync.Mutex
	var seen []recordedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		seen = append(seen, recordedRequest{method: r.Method, path: r.URL.Path, body: string(body)})
		mu.Unlock()
		if status >= 400 {
			w.Header().Set("Content-Type", "application/xml")
			w.WriteHeader(status)
			_, _ = io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?><Error><Code>NoSuchKey</Code><Message>missing</Message></Error>`)
			return
		}
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)
	return srv, &seen
}

func newTestS3(t *testing.T, endpoint string) *S3 {
	t.Helper()
	s, err := NewS3(config.S3Options{
		Endpoint:        endpoint,
		Region:          "us-east-1",
		Bucket:          "media",
		AccessKeyID:     "key",
		SecretAccessKey: "secret",
		Prefix:          "/portfolio/",
	})
	require.NoError(t, err)
	return s
}

func TestS3_Save(t *testing.T) {
	srv, seen := fakeS3(t, http.StatusOK)
	s := newTestS3(t, srv.URL)

	url, err := s.Save(context.Background(), "projects/shot.png", strings.NewReader("png-bytes"), 9, "image/png")
	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/media/portfolio/projects/shot.png", url)

	require.Len(t, *seen, 1)
	assert.Equal(t, http.MethodPut, (*seen)[0].method)
	assert.Equal(t, "/media/portfolio/projects/shot.png", (*seen)[0].path)
	assert.Equal(t, "png-bytes", (*seen)[0].body)
}

func TestS3_DeleteMissing(t *testing.T) {
	srv, _ := fakeS3(t, http.StatusNotFound)
	s := newTestS3(t, srv.URL)

	err := s.Delete(context.Background(), "projects/shot.png")
	assert.ErrorIs(t, err, ErrNotFound)
}
