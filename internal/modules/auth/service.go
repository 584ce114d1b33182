package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/mx-space/portfolio/internal/models"
	sessionpkg "github.com/mx-space/portfolio/internal/pkg/session"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// failedLoginDelay slows down password guessing.
var failedLoginDelay = 3 * time.Second

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

func (s *Service) IsRegistered() (bool, error) {
	var count int64
	if err := s.db.Model(&models.UserModel{}).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Register creates the owner account. Only one account may ever exist.
func (s *Service) Register(dto *RegisterDTO) (*models.UserModel, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := models.UserModel{
		Username: strings.TrimSpace(dto.Username),
		Password: string(hash),
		Mail:     strings.TrimSpace(dto.Mail),
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.UserModel{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return errOwnerAlreadyRegistered
		}
		return tx.Create(&u).Error
	})
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Login checks the password and opens a new session.
func (s *Service) Login(username, password, ip, ua string) (string, *models.UserSession, *models.UserModel, error) {
	var u models.UserModel
	if err := s.db.Where("username = ?", strings.TrimSpace(username)).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			time.Sleep(failedLoginDelay)
			return "", nil, nil, errAuthUserNotFound
		}
		return "", nil, nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		time.Sleep(failedLoginDelay)
		return "", nil, nil, errAuthWrongPassword
	}

	token, sess, err := sessionpkg.Issue(s.db, u.ID, ip, ua, sessionpkg.DefaultTTL)
	if err != nil {
		return "", nil, nil, err
	}

	now := time.Now()
	_ = s.db.Model(&u).Updates(map[string]interface{}{
		"last_login_time": now,
		"last_login_ip":   ip,
	}).Error
	u.LastLoginTime = &now
	u.LastLoginIP = ip
	return token, sess, &u, nil
}

func (s *Service) Logout(userID, sessionID string) error {
	err := sessionpkg.Revoke(s.db, userID, sessionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}

func (s *Service) GetUser(id string) (*models.UserModel, error) {
	var u models.UserModel
	if err := s.db.First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}
