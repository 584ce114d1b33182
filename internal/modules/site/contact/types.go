package contact

import (
	"context"
	"time"

	"github.com/mx-space/portfolio/internal/models"
	"github.com/mx-space/portfolio/internal/pkg/mail"
)

// State is where a submission ended up.
type State string

const (
	StateRejected     State = "rejected"
	StateNotified     State = "notified"
	StateNotifyFailed State = "notify_failed"
)

const (
	SuccessMessage = "Your message has been sent successfully! I will get back to you shortly."
	FailureMessage = "Sorry, there was an error sending your message. Please try again later."
)

// Notifier delivers the owner notification for a stored message.
type Notifier interface {
	SendContactNotify(ctx context.Context, to []string, data mail.ContactNotifyData) error
}

// ProfileSource supplies the fallback recipient address.
type ProfileSource interface {
	Get() (*models.ProfileModel, error)
}

// Submission is the raw visitor input.
type Submission struct {
	Name    string `json:"name"    form:"name"`
	Email   string `json:"email"   form:"email"`
	Subject string `json:"subject" form:"subject"`
	Message string `json:"message" form:"message"`
}

func (s Submission) values() map[string]string {
	return map[string]string{
		"name":    s.Name,
		"email":   s.Email,
		"subject": s.Subject,
		"message": s.Message,
	}
}

// Result describes a stored submission.
type Result struct {
	State     State
	Message   *models.ContactMessageModel
	NotifyErr error
}

// Acknowledgment is the visitor-facing text for the result.
func (r *Result) Acknowledgment() string {
	if r.State == StateNotified {
		return SuccessMessage
	}
	return FailureMessage
}

type MessageResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	IsRead    bool      `json:"is_read"`
}

func ToMessageResponse(m *models.ContactMessageModel) MessageResponse {
	return MessageResponse{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
		IsRead:    m.IsRead,
	}
}

func ToMessageResponses(items []models.ContactMessageModel) []MessageResponse {
	out := make([]MessageResponse, len(items))
	for i := range items {
		out[i] = ToMessageResponse(&items[i])
	}
	return out
}
