package auth

import (
	"net/http"

	"github.com/ironhaven-fitness/gym-api/internal/app/apperr"
)

// Error constructors for the four client-input failure modes of the auth
// flow. Unknown email and wrong password intentionally share one error so the
// response never reveals which check failed.

func errInvalidCredentials() *apperr.Error {
	return apperr.New(http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid credentials")
}

func errRoleMismatch() *apperr.Error {
	return apperr.New(http.StatusUnauthorized, "ROLE_MISMATCH", "Invalid role for this account")
}

// An unknown role is a 401 on login, where it reads as a failed credential
// check, but a 400 on signup, where it is plain bad input.

func errInvalidLoginRole() *apperr.Error {
	return apperr.New(http.StatusUnauthorized, "INVALID_ROLE", "Invalid role specified")
}

func errInvalidRole() *apperr.Error {
	return apperr.New(http.StatusBadRequest, "INVALID_ROLE", "Invalid role specified")
}

func errEmailRegistered() *apperr.Error {
	return apperr.New(http.StatusBadRequest, "EMAIL_ALREADY_REGISTERED", "Email already registered")
}
