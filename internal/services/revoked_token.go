package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/antoniuk-oleksandr/blogs-app/internal/models"
	"gorm.io/gorm"
)

// RevokedTokenStore persists one-way hashes of revoked refresh tokens and
// translates storage-layer failures into domain errors. It owns the
// revoked_tokens table; concurrency control is delegated to the database's
// unique constraint and statement-level atomicity.
type RevokedTokenStore struct {
	db *gorm.DB
}

func NewRevokedTokenStore(db *gorm.DB) *RevokedTokenStore {
	return &RevokedTokenStore{db: db}
}

// Save inserts a revocation record for the hashed token. A second revocation
// of the same hash loses to the unique constraint and surfaces as
// ErrTokenAlreadyRevoked rather than a silent success.
func (s *RevokedTokenStore) Save(tokenHash string, expiresAt time.Time) (*models.RevokedToken, error) {
	record := models.RevokedToken{
		TokenHash: tokenHash,
		ExpiresAt: expiresAt,
	}

	if err := s.db.Create(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrTokenAlreadyRevoked
		}
		return nil, fmt.Errorf("%w: %v", ErrRevocationSaveFailed, err)
	}

	return &record, nil
}

// IsRevoked checks membership by token hash. When the check itself fails the
// error is returned; callers must not treat it as "not revoked".
func (s *RevokedTokenStore) IsRevoked(tokenHash string) (bool, error) {
	var count int64
	err := s.db.Model(&models.RevokedToken{}).
		Where("token = ?", tokenHash).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrRevocationCheckFailed, err)
	}
	return count > 0, nil
}

// DeleteExpired removes every record whose expiry has passed and returns the
// number of rows deleted. The delete runs inside a transaction so a sweep
// racing with concurrent inserts is all-or-nothing.
func (s *RevokedTokenStore) DeleteExpired(now time.Time) (int64, error) {
	var deleted int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("expires_at < ?", now).Delete(&models.RevokedToken{})
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrRevocationCleanupFailed, err)
	}
	return deleted, nil
}
