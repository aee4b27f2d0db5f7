package services

import (
	"errors"
	"fmt"

	"github.com/antoniuk-oleksandr/blogs-app/internal/models"
	"gorm.io/gorm"
)

// UserService is the user collaborator of the auth subsystem: account
// creation with uniqueness enforcement and lookup by username or email.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// CreateUserCommand carries an already-hashed password; raw passwords never
// reach the user store.
type CreateUserCommand struct {
	Username     string
	Email        string
	PasswordHash string
}

// CreateUser inserts a new account, translating unique-constraint violations
// into ErrUsernameTaken / ErrEmailTaken.
func (s *UserService) CreateUser(cmd *CreateUserCommand) (*models.User, error) {
	user := models.User{
		Username:     cmd.Username,
		Email:        cmd.Email,
		PasswordHash: cmd.PasswordHash,
	}

	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, s.resolveConflict(cmd)
		}
		return nil, fmt.Errorf("%w: %v", ErrUserSaveFailed, err)
	}

	return &user, nil
}

// resolveConflict determines which unique column collided. The duplicate-key
// error carries no portable column information across drivers, so the table
// is probed instead.
func (s *UserService) resolveConflict(cmd *CreateUserCommand) error {
	var count int64
	if err := s.db.Model(&models.User{}).
		Where("username = ?", cmd.Username).
		Count(&count).Error; err == nil && count > 0 {
		return ErrUsernameTaken
	}
	return ErrEmailTaken
}

// FindByUsernameOrEmail looks up a user by either identifier.
func (s *UserService) FindByUsernameOrEmail(key string) (*models.User, error) {
	var user models.User
	err := s.db.Where("username = ? OR email = ?", key, key).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrUserLookupFailed, err)
	}
	return &user, nil
}
