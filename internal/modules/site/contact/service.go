package contact

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mx-space/portfolio/internal/models"
	"github.com/mx-space/portfolio/internal/pkg/mail"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service stores contact submissions and notifies the owner once per
// submission, best effort.
type Service struct {
	db       *gorm.DB
	notifier Notifier
	profiles ProfileSource
	admins   []string
	log      *zap.Logger
	now      func() time.Time
}

func NewService(db *gorm.DB, notifier Notifier, profiles ProfileSource, admins []string, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		db:       db,
		notifier: notifier,
		profiles: profiles,
		admins:   admins,
		log:      log.Named("ContactService"),
		now:      time.Now,
	}
}

// Submit validates, stores and notifies. A *ValidationError means nothing
// was stored. Any other error means the message could not be stored.
// Notification failures never surface as an error; they are reported
// through Result.State.
func (s *Service) Submit(ctx context.Context, sub Submission) (*Result, error) {
	cleaned, err := ContactForm.Clean(sub.values())
	if err != nil {
		return nil, err
	}

	msg := &models.ContactMessageModel{
		Name:      cleaned["name"],
		Email:     cleaned["email"],
		Subject:   cleaned["subject"],
		Message:   cleaned["message"],
		CreatedAt: s.now(),
		IsRead:    false,
	}
	if err := s.db.WithContext(ctx).Create(msg).Error; err != nil {
		return nil, fmt.Errorf("store contact message: %w", err)
	}

	result := &Result{State: StateNotified, Message: msg}
	if err := s.notify(ctx, msg); err != nil {
		result.State = StateNotifyFailed
		result.NotifyErr = err
		s.log.Error("contact notification failed",
			zap.String("message_id", msg.ID),
			zap.String("from", msg.Email),
			zap.Error(err),
		)
	}
	return result, nil
}

func (s *Service) notify(ctx context.Context, msg *models.ContactMessageModel) (err error) {
	if s.notifier == nil {
		return errors.New("no notifier configured")
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("notifier panic: %v", r)
		}
	}()

	owner := ""
	to := s.admins
	if s.profiles != nil {
		if p, perr := s.profiles.Get(); perr == nil && p != nil {
			owner = p.Name
			if len(to) == 0 && strings.TrimSpace(p.Email) != "" {
				to = []string{strings.TrimSpace(p.Email)}
			}
		}
	}
	// The visitor hanging up must not cut the notification short; the
	// sender applies its own timeout.
	return s.notifier.SendContactNotify(context.WithoutCancel(ctx), to, mail.ContactNotifyData{
		Name:       msg.Name,
		Email:      msg.Email,
		Subject:    msg.Subject,
		Message:    msg.Message,
		SiteOwner:  owner,
		ReceivedAt: msg.CreatedAt,
	})
}

// ListMessages returns messages newest first, optionally unread only.
func (s *Service) ListMessages(unreadOnly bool) ([]models.ContactMessageModel, error) {
	tx := s.db.Order("created_at DESC")
	if unreadOnly {
		tx = tx.Where("is_read = ?", false)
	}
	var items []models.ContactMessageModel
	return items, tx.Find(&items).Error
}

func (s *Service) GetMessage(id string) (*models.ContactMessageModel, error) {
	var m models.ContactMessageModel
	if err := s.db.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

// ToggleRead flips is_read, the only mutable column of a message.
// When read is non-nil it is set instead of flipped.
func (s *Service) ToggleRead(id string, read *bool) (*models.ContactMessageModel, error) {
	m, err := s.GetMessage(id)
	if err != nil || m == nil {
		return m, err
	}
	next := !m.IsRead
	if read != nil {
		next = *read
	}
	if err := s.db.Model(m).Update("is_read", next).Error; err != nil {
		return nil, err
	}
	m.IsRead = next
	return m, nil
}

func (s *Service) DeleteMessage(id string) (bool, error) {
	res := s.db.Delete(&models.ContactMessageModel{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}
