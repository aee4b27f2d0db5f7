package services

import (
	"errors"
	"testing"
	"time"
)

func TestRevokedTokenStore_Save(t *testing.T) {
	store := NewRevokedTokenStore(setupTestDB(t))

	expiresAt := time.Now().Add(time.Hour)
	record, err := store.Save("a-token-hash", expiresAt)
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if record.ID == 0 {
		t.Error("record should have an id assigned")
	}
	if record.TokenHash != "a-token-hash" {
		t.Errorf("TokenHash = %q, expected %q", record.TokenHash, "a-token-hash")
	}
	if !record.ExpiresAt.Equal(expiresAt) {
		t.Errorf("ExpiresAt = %v, expected %v", record.ExpiresAt, expiresAt)
	}
	if record.RevokedAt.IsZero() {
		t.Error("RevokedAt should be set at insert time")
	}
}

func TestRevokedTokenStore_Save_Duplicate(t *testing.T) {
	store := NewRevokedTokenStore(setupTestDB(t))

	if _, err := store.Save("same-hash", time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("first Save() error = %v", err)
	}

	_, err := store.Save("same-hash", time.Now().Add(time.Hour))
	if !errors.Is(err, ErrTokenAlreadyRevoked) {
		t.Errorf("second Save() error = %v, expected ErrTokenAlreadyRevoked", err)
	}
}

func TestRevokedTokenStore_IsRevoked(t *testing.T) {
	store := NewRevokedTokenStore(setupTestDB(t))

	revoked, err := store.IsRevoked("unknown-hash")
	if err != nil {
		t.Fatalf("IsRevoked() error = %v", err)
	}
	if revoked {
		t.Error("IsRevoked() should return false before Save")
	}

	if _, err := store.Save("unknown-hash", time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	revoked, err = store.IsRevoked("unknown-hash")
	if err != nil {
		t.Fatalf("IsRevoked() error = %v", err)
	}
	if !revoked {
		t.Error("IsRevoked() should return true after Save")
	}
}

func TestRevokedTokenStore_DeleteExpired(t *testing.T) {
	store := NewRevokedTokenStore(setupTestDB(t))
	now := time.Now()

	if _, err := store.Save("expired-hash", now.Add(-24*time.Hour)); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, err := store.Save("live-hash", now.Add(24*time.Hour)); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	deleted, err := store.DeleteExpired(now)
	if err != nil {
		t.Fatalf("DeleteExpired() error = %v", err)
	}
	if deleted != 1 {
		t.Errorf("DeleteExpired() deleted %d rows, expected 1", deleted)
	}

	revoked, _ := store.IsRevoked("expired-hash")
	if revoked {
		t.Error("expired record should be gone")
	}

	revoked, _ = store.IsRevoked("live-hash")
	if !revoked {
		t.Error("unexpired record should remain")
	}
}

func TestRevokedTokenStore_DeleteExpired_Idempotent(t *testing.T) {
	store := NewRevokedTokenStore(setupTestDB(t))
	now := time.Now()

	if _, err := store.Save("expired-hash", now.Add(-time.Hour)); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if _, err := store.DeleteExpired(now); err != nil {
		t.Fatalf("first DeleteExpired() error = %v", err)
	}

	deleted, err := store.DeleteExpired(now)
	if err != nil {
		t.Fatalf("second DeleteExpired() error = %v", err)
	}
	if deleted != 0 {
		t.Errorf("second DeleteExpired() deleted %d rows, expected 0", deleted)
	}
}
