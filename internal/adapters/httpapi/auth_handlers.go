package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ironhaven-fitness/gym-api/internal/app/apperr"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type signupRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// sessionResponse is the auth payload shape. Token is null whenever no
// session was established.
type sessionResponse struct {
	Token   *string `json:"token"`
	Email   string  `json:"email,omitempty"`
	Role    string  `json:"role,omitempty"`
	Message string  `json:"message"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	session, err := s.Auth.Login(r.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		s.respondAuthError(w, r, "login", req.Email, req.Role, err)
		return
	}

	s.Metrics.ObserveAuth("login", "success")
	tok := session.Token
	writeJSON(w, http.StatusOK, sessionResponse{
		Token:   &tok,
		Email:   session.Email,
		Role:    session.Role,
		Message: session.Message,
	})
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, sessionResponse{Message: "email and password are required"})
		return
	}

	session, err := s.Auth.Signup(r.Context(), req.Email, req.Name, req.Password, req.Role)
	if err != nil {
		s.respondAuthError(w, r, "signup", req.Email, req.Role, err)
		return
	}

	s.Metrics.ObserveAuth("signup", "success")
	writeJSON(w, http.StatusCreated, sessionResponse{
		Email:   session.Email,
		Role:    session.Role,
		Message: session.Message,
	})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	tok := strings.TrimSpace(strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer "))
	email := r.Header.Get("X-User-Email")

	s.Auth.Logout(r.Context(), tok, email)
	s.Metrics.ObserveAuth("logout", "success")

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Logged out successfully"))
}

// respondAuthError keeps the session payload shape on failure, with the
// token explicitly null and the submitted email/role echoed back.
func (s *Server) respondAuthError(w http.ResponseWriter, r *http.Request, action, email, role string, err error) {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		s.Metrics.ObserveAuth(action, strings.ToLower(ae.Code))
		writeJSON(w, ae.Status, sessionResponse{
			Email:   email,
			Role:    role,
			Message: ae.Message,
		})
		return
	}
	s.Metrics.ObserveAuth(action, "error")
	s.respondError(w, r, err)
}
