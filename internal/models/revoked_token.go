package models

import "time"

// RevokedToken marks a refresh token as unusable before its natural expiry.
// Only the SHA-256 hash of the raw token is stored, so a leaked row cannot be
// replayed as a credential. ExpiresAt is copied from the token's own exp claim
// and indexed so the cleaner's range delete stays cheap.
type RevokedToken struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	TokenHash string    `gorm:"column:token;uniqueIndex;size:64;not null" json:"-"`
	RevokedAt time.Time `gorm:"autoCreateTime" json:"revoked_at"`
	ExpiresAt time.Time `gorm:"index;not null" json:"expires_at"`
}

func (RevokedToken) TableName() string { return "revoked_tokens" }
