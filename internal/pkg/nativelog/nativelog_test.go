package nativelog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTodayFilename(t *testing.T) {
	now := time.Date(2024, 5, 6, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "portfolio_2024-05-06.log", TodayFilename(now))
}

func TestWriter_AppendsToDailyFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	w, err := NewWriter(dir)
	require.NoError(t, err)

	day := time.Date(2024, 5, 6, 10, 0, 0, 0, time.UTC)
	w.now = func() time.Time { return day }

	_, err = w.Write([]byte("first\n"))
	require.NoError(t, err)
	_, err = w.Write([]byte("second\n"))
	require.NoError(t, err)

	day = day.Add(24 * time.Hour)
	_, err = w.Write([]byte("third\n"))
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(dir, "portfolio_2024-05-06.log"))
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\n", string(got))

	got, err = os.ReadFile(filepath.Join(dir, "portfolio_2024-05-07.log"))
	require.NoError(t, err)
	assert.Equal(t, "third\n", string(got))
}
