package contact

import (
	"context"
	"errors"
	"testing"

	"github.com/mx-space/portfolio/internal/models"
	"github.com/mx-space/portfolio/internal/pkg/mail"
	"github.com/mx-space/portfolio/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeNotifier struct {
	err   error
	calls int
	to    []string
	data  mail.ContactNotifyData
	ctx   context.Context
}

func (f *fakeNotifier) SendContactNotify(ctx context.Context, to []string, data mail.ContactNotifyData) error {
	f.calls++
	f.to = to
	f.data = data
	f.ctx = ctx
	return f.err
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) SendContactNotify(ctx context.Context, to []string, data mail.ContactNotifyData) error {
	args := m.Called(ctx, to, data)
	return args.Error(0)
}

type staticProfile struct{ p *models.ProfileModel }

func (s staticProfile) Get() (*models.ProfileModel, error) { return s.p, nil }

func validSubmission() Submission {
	return Submission{Name: "Ada", Email: "ada@example.com", Subject: "Hello", Message: "Nice work"}
}

func countMessages(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&models.ContactMessageModel{}).Count(&n).Error)
	return n
}

func TestService_Submit_Notified(t *testing.T) {
	db := testutil.NewDB(t)
	notifier := &fakeNotifier{}
	svc := NewService(db, notifier, staticProfile{&models.ProfileModel{Name: "Jane", Email: "jane@example.com"}}, nil, nil)

	result, err := svc.Submit(context.Background(), validSubmission())
	require.NoError(t, err)
	assert.Equal(t, StateNotified, result.State)
	assert.Equal(t, SuccessMessage, result.Acknowledgment())
	assert.False(t, result.Message.IsRead)

	assert.Equal(t, 1, notifier.calls)
	assert.Equal(t, []string{"jane@example.com"}, notifier.to)
	assert.Equal(t, "Jane", notifier.data.SiteOwner)
	assert.Equal(t, "Hello", notifier.data.Subject)
	assert.EqualValues(t, 1, countMessages(t, db))
}

func TestService_Submit_AdminsTakePrecedence(t *testing.T) {
	notifier := &fakeNotifier{}
	svc := NewService(testutil.NewDB(t), notifier, staticProfile{&models.ProfileModel{Email: "jane@example.com"}}, []string{"ops@example.com"}, nil)

	_, err := svc.Submit(context.Background(), validSubmission())
	require.NoError(t, err)
	assert.Equal(t, []string{"ops@example.com"}, notifier.to)
}

func TestService_Submit_NotifyFailedStillStored(t *testing.T) {
	db := testutil.NewDB(t)
	notifier := new(mockNotifier)
	notifier.On("SendContactNotify", mock.Anything, []string{"ops@example.com"},
		mock.MatchedBy(func(d mail.ContactNotifyData) bool {
			return d.Email == "ada@example.com" && d.Message == "Nice work" && !d.ReceivedAt.IsZero()
		})).Return(errors.New("smtp down")).Once()
	svc := NewService(db, notifier, nil, []string{"ops@example.com"}, nil)

	result, err := svc.Submit(context.Background(), validSubmission())
	require.NoError(t, err)
	assert.Equal(t, StateNotifyFailed, result.State)
	assert.Equal(t, FailureMessage, result.Acknowledgment())
	assert.EqualError(t, result.NotifyErr, "smtp down")
	assert.EqualValues(t, 1, countMessages(t, db))
	notifier.AssertExpectations(t)
}

func TestService_Submit_InvalidStoresNothing(t *testing.T) {
	db := testutil.NewDB(t)
	notifier := &fakeNotifier{}
	svc := NewService(db, notifier, nil, []string{"ops@example.com"}, nil)

	sub := validSubmission()
	sub.Name = "   "
	result, err := svc.Submit(context.Background(), sub)
	assert.Nil(t, result)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.True(t, verr.Has("name"))
	assert.Zero(t, notifier.calls)
	assert.Zero(t, countMessages(t, db))
}

func TestService_Submit_DetachedFromRequestCancel(t *testing.T) {
	notifier := &fakeNotifier{}
	svc := NewService(testutil.NewDB(t), notifier, nil, []string{"ops@example.com"}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	result, err := svc.Submit(ctx, validSubmission())
	require.NoError(t, err)
	cancel()

	assert.Equal(t, StateNotified, result.State)
	require.NotNil(t, notifier.ctx)
	assert.NoError(t, notifier.ctx.Err())
}

func TestService_Submit_DisabledSenderCountsAsNotified(t *testing.T) {
	svc := NewService(testutil.NewDB(t), mail.New(mail.Config{Enable: false}), nil, nil, nil)

	result, err := svc.Submit(context.Background(), validSubmission())
	require.NoError(t, err)
	assert.Equal(t, StateNotified, result.State)
}

func TestService_Submit_NoRecipients(t *testing.T) {
	svc := NewService(testutil.NewDB(t), mail.New(mail.Config{Enable: true, Host: "127.0.0.1"}), nil, nil, nil)

	result, err := svc.Submit(context.Background(), validSubmission())
	require.NoError(t, err)
	assert.Equal(t, StateNotifyFailed, result.State)
	assert.ErrorIs(t, result.NotifyErr, mail.ErrNoRecipients)
}

func TestService_ToggleRead(t *testing.T) {
	svc := NewService(testutil.NewDB(t), &fakeNotifier{}, nil, []string{"ops@example.com"}, nil)

	result, err := svc.Submit(context.Background(), validSubmission())
	require.NoError(t, err)
	id := result.Message.ID

	m, err := svc.ToggleRead(id, nil)
	require.NoError(t, err)
	assert.True(t, m.IsRead)

	unread, err := svc.ListMessages(true)
	require.NoError(t, err)
	assert.Empty(t, unread)

	off := false
	m, err = svc.ToggleRead(id, &off)
	require.NoError(t, err)
	assert.False(t, m.IsRead)

	missing, err := svc.ToggleRead("missing", nil)
	require.NoError(t, err)
	assert.Nil(t, missing)

	ok, err := svc.DeleteMessage(id)
	require.NoError(t, err)
	assert.True(t, ok)
}
