// Package auth is the credential gate in front of the user store. Its
// surface is deliberately boolean: callers see success or failure, never a
// raw data-access error.
package auth

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/flickfinder/flickfinder/internal/database"
)

// minPasswordLength rejects throwaway passwords at registration time.
const minPasswordLength = 4

type Service struct {
	users *database.UserRepository
}

func NewService(users *database.UserRepository) *Service {
	return &Service{users: users}
}

// Authenticate checks a username/password pair against the store. Unknown
// users, wrong passwords, and store failures all come back as false.
func (s *Service) Authenticate(username, password string) bool {
	if username == "" || password == "" {
		return false
	}

	user, err := s.users.GetUserByUsername(username)
	if err != nil {
		if err != database.ErrUserNotFound {
			log.Printf("auth: lookup for %q failed: %v", username, err)
		}
		return false
	}

	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil
}

// Register creates a new user. It fails for empty input, short passwords,
// and usernames that already exist.
func (s *Service) Register(username, password string) bool {
	if username == "" || len(password) < minPasswordLength {
		return false
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("auth: hashing password failed: %v", err)
		return false
	}

	if _, err := s.users.CreateUser(username, string(hash)); err != nil {
		// Duplicate usernames land here through the UNIQUE constraint.
		return false
	}
	return true
}

// UserID resolves a username to its identifier.
func (s *Service) UserID(username string) (int, bool) {
	id, err := s.users.GetUserID(username)
	if err != nil {
		return 0, false
	}
	return id, true
}
