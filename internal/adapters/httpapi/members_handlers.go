package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/nullable"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/ironhaven-fitness/gym-api/internal/app/members"
	"github.com/ironhaven-fitness/gym-api/internal/domain"
)

type createMemberRequest struct {
	Name     string              `json:"name"`
	Email    string              `json:"email"`
	Phone    string              `json:"phone"`
	Address  string              `json:"address"`
	JoinDate *openapi_types.Date `json:"joinDate"`
	Status   string              `json:"status"`
	Role     string              `json:"role"`
}

type updateMemberRequest struct {
	Name     nullable.Nullable[string]             `json:"name"`
	Email    nullable.Nullable[string]             `json:"email"`
	Phone    nullable.Nullable[string]             `json:"phone"`
	Address  nullable.Nullable[string]             `json:"address"`
	JoinDate nullable.Nullable[openapi_types.Date] `json:"joinDate"`
	Status   nullable.Nullable[string]             `json:"status"`
}

func (s *Server) handleListMembers(w http.ResponseWriter, r *http.Request) {
	ms, err := s.Members.ListMembers(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toMemberViews(ms))
}

func (s *Server) handleSearchMembers(w http.ResponseWriter, r *http.Request) {
	ms, err := s.Members.SearchMembers(r.Context(), r.URL.Query().Get("term"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toMemberViews(ms))
}

func (s *Server) handleGetMemberByEmail(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		writeError(w, r, http.StatusBadRequest, "INVALID_REQUEST", "missing email parameter", nil)
		return
	}
	m, err := s.Members.GetMemberByEmail(r.Context(), email)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toMemberView(m))
}

func (s *Server) handleCreateMember(w http.ResponseWriter, r *http.Request) {
	var req createMemberRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	in := members.CreateMemberInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		Status:  req.Status,
		Role:    req.Role,
	}
	if req.JoinDate != nil {
		in.JoinDate = &req.JoinDate.Time
	}

	m, err := s.Members.CreateMember(r.Context(), in)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toMemberView(m))
}

func (s *Server) handleUpdateMember(w http.ResponseWriter, r *http.Request) {
	var req updateMemberRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	in := members.UpdateMemberInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		Status:  req.Status,
	}
	if req.JoinDate.IsSpecified() {
		if req.JoinDate.IsNull() {
			in.JoinDate.SetNull()
		} else {
			in.JoinDate.Set(req.JoinDate.MustGet().Time)
		}
	}

	m, err := s.Members.UpdateMember(r.Context(), domain.MemberID(chi.URLParam(r, "id")), in)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toMemberView(m))
}

func (s *Server) handleDeleteMember(w http.ResponseWriter, r *http.Request) {
	if err := s.Members.DeleteMember(r.Context(), domain.MemberID(chi.URLParam(r, "id"))); err != nil {
		s.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAssignPackage(w http.ResponseWriter, r *http.Request) {
	m, err := s.Members.AssignPackage(
		r.Context(),
		domain.MemberID(chi.URLParam(r, "id")),
		domain.PackageID(chi.URLParam(r, "packageID")),
	)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toMemberView(m))
}
