package common

import (
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func Password2Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hashed), err
}

func ValidatePasswordAndHash(password string, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// GetUUID returns a random identifier used for session tokens and stored
// content names.
func GetUUID() string {
	return uuid.New().String()
}
