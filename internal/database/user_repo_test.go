package database

import (
	"path/filepath"
	"testing"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := NewDB(Config{Path: filepath.Join(t.TempDir(), "test.db")})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestUserRepository_CreateUser(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))

	user, err := repo.CreateUser("alice", "hash-1")
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	if user.ID == 0 {
		t.Error("Expected a non-zero user id")
	}

	retrieved, err := repo.GetUserByUsername("alice")
	if err != nil {
		t.Fatalf("Failed to retrieve user: %v", err)
	}
	if retrieved.Username != "alice" {
		t.Errorf("Expected username alice, got %s", retrieved.Username)
	}
	if retrieved.PasswordHash != "hash-1" {
		t.Errorf("Expected stored hash, got %s", retrieved.PasswordHash)
	}
}

func TestUserRepository_DuplicateUsername(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))

	if _, err := repo.CreateUser("bob", "hash-1"); err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	if _, err := repo.CreateUser("bob", "hash-2"); err == nil {
		t.Error("Expected duplicate username insert to fail")
	}
}

func TestUserRepository_GetUserByUsername_NotFound(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))

	_, err := repo.GetUserByUsername("nobody")
	if err != ErrUserNotFound {
		t.Errorf("Expected ErrUserNotFound, got %v", err)
	}
}

func TestUserRepository_GetUserID(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))

	user, err := repo.CreateUser("carol", "hash-1")
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	id, err := repo.GetUserID("carol")
	if err != nil {
		t.Fatalf("Failed to get user id: %v", err)
	}
	if id != user.ID {
		t.Errorf("Expected id %d, got %d", user.ID, id)
	}

	if _, err := repo.GetUserID("nobody"); err != ErrUserNotFound {
		t.Errorf("Expected ErrUserNotFound for unknown user, got %v", err)
	}
}
