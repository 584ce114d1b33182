package auth

import (
	"errors"
	"time"

	"github.com/mx-space/portfolio/internal/models"
)

type LoginDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterDTO struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Password string `json:"password" binding:"required,min=8"`
	Mail     string `json:"mail"     binding:"omitempty,email"`
}

type userResponse struct {
	ID            string     `json:"id"`
	Username      string     `json:"username"`
	Mail          string     `json:"mail"`
	LastLoginTime *time.Time `json:"last_login_time"`
	LastLoginIP   string     `json:"last_login_ip"`
}

type loginResponse struct {
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expires_at"`
	User      *userResponse `json:"user"`
}

type sessionResponse struct {
	SessionID string        `json:"session_id"`
	User      *userResponse `json:"user"`
}

func toUserResponse(u *models.UserModel) *userResponse {
	return &userResponse{
		ID:            u.ID,
		Username:      u.Username,
		Mail:          u.Mail,
		LastLoginTime: u.LastLoginTime,
		LastLoginIP:   u.LastLoginIP,
	}
}

var (
	errAuthUserNotFound       = errors.New("auth user not found")
	errAuthWrongPassword      = errors.New("auth wrong password")
	errOwnerAlreadyRegistered = errors.New("owner already registered")
)
