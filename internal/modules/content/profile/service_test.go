package profile

import (
	"testing"

	"github.com/mx-space/portfolio/internal/models"
	"github.com/mx-space/portfolio/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(v string) *string { return &v }

func TestService_Get_Empty(t *testing.T) {
	svc := NewService(testutil.NewDB(t))

	p, err := svc.Get()
	require.NoError(t, err)
	assert.Nil(t, p)
	assert.Nil(t, ToResponse(p))
}

func TestService_Update_Upsert(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewService(db)

	p, err := svc.Update(&UpdateProfileDTO{Name: strPtr(" Jane Doe "), Title: strPtr("Engineer")})
	require.NoError(t, err)
	assert.Equal(t, models.ProfileID, p.ID)
	assert.Equal(t, "Jane Doe", p.Name)

	p, err = svc.Update(&UpdateProfileDTO{Location: strPtr("Berlin")})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", p.Name)
	assert.Equal(t, "Engineer", p.Title)
	assert.Equal(t, "Berlin", p.Location)

	var count int64
	require.NoError(t, db.Model(&models.ProfileModel{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestService_Update_RequiresNameAndTitle(t *testing.T) {
	svc := NewService(testutil.NewDB(t))

	_, err := svc.Update(&UpdateProfileDTO{Name: strPtr("Jane")})
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = svc.Update(&UpdateProfileDTO{Name: strPtr("Jane"), Title: strPtr("Dev")})
	require.NoError(t, err)

	_, err = svc.Update(&UpdateProfileDTO{Title: strPtr("  ")})
	assert.ErrorIs(t, err, ErrInvalid)

	p, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, "Dev", p.Title)
}

func TestService_Save_ForcesSingleRow(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewService(db)

	require.NoError(t, svc.Save(&models.ProfileModel{Name: "A", Title: "B"}))
	require.NoError(t, svc.Save(&models.ProfileModel{ID: 7, Name: "C", Title: "D"}))

	var count int64
	require.NoError(t, db.Model(&models.ProfileModel{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	p, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, "C", p.Name)
}
