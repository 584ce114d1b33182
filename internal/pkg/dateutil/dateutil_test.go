package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	got, err := Parse(" 2024-02-29 ")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), got)

	for _, bad := range []string{"", "2023-02-29", "29/02/2024", "2024-2-1"} {
		_, err := Parse(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseOptional(t *testing.T) {
	got, err := ParseOptional("  ")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = ParseOptional("2020-01-15")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "2020-01-15", Format(*got))

	_, err = ParseOptional("tomorrow")
	assert.Error(t, err)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "", Format(time.Time{}))
	assert.Nil(t, FormatOptional(nil))

	d := time.Date(2021, 7, 4, 0, 0, 0, 0, time.UTC)
	require.NotNil(t, FormatOptional(&d))
	assert.Equal(t, "2021-07-04", *FormatOptional(&d))
}
