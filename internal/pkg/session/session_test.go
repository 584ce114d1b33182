package session

import (
	"testing"
	"time"

	"github.com/mx-space/portfolio/internal/models"
	"github.com/mx-space/portfolio/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestIssueAndRevoke(t *testing.T) {
	db := testutil.NewDB(t)
	user := models.UserModel{Username: "owner", Password: "x"}
	require.NoError(t, db.Create(&user).Error)

	token, s, err := Issue(db, user.ID, " 127.0.0.1 ", "agent", time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "127.0.0.1", s.IP)

	active, err := IsActive(db, user.ID, s.ID)
	require.NoError(t, err)
	assert.True(t, active)

	active, err = IsActive(db, "someone-else", s.ID)
	require.NoError(t, err)
	assert.False(t, active)

	require.NoError(t, Revoke(db, user.ID, s.ID))
	active, err = IsActive(db, user.ID, s.ID)
	require.NoError(t, err)
	assert.False(t, active)

	assert.ErrorIs(t, Revoke(db, user.ID, s.ID), gorm.ErrRecordNotFound)
}

func TestIsActive_Expired(t *testing.T) {
	db := testutil.NewDB(t)
	user := models.UserModel{Username: "owner", Password: "x"}
	require.NoError(t, db.Create(&user).Error)

	_, s, err := Issue(db, user.ID, "", "", time.Hour)
	require.NoError(t, err)
	require.NoError(t, db.Model(s).Update("expires_at", time.Now().Add(-time.Minute)).Error)

	active, err := IsActive(db, user.ID, s.ID)
	require.NoError(t, err)
	assert.False(t, active)

	active, err = IsActive(db, user.ID, "")
	require.NoError(t, err)
	assert.False(t, active)
}
