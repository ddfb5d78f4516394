// Package auth checks the single admin identity against credentials
// sourced from the environment.
package auth

import (
	"os"

	"golang.org/x/crypto/bcrypt"
)

const defaultUsername = "admin"

// Verify reports whether the given credentials match the configured
// admin identity. The environment is re-read on every attempt so
// credentials can be rotated without a restart. Callers must surface
// any failure as the same generic message: a wrong username and a
// wrong password are indistinguishable from the outside.
func Verify(username, password string) bool {
	adminUsername := os.Getenv("ADMIN_USERNAME")
	if adminUsername == "" {
		adminUsername = defaultUsername
	}

	hash := os.Getenv("ADMIN_PASSWORD_HASH")
	if hash == "" {
		return false
	}

	if username != adminUsername {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
