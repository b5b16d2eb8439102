package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/ironhaven-fitness/gym-api/internal/app/billing"
	"github.com/ironhaven-fitness/gym-api/internal/domain"
)

type createBillRequest struct {
	MemberID    string             `json:"memberId"`
	Amount      float64            `json:"amount"`
	Description string             `json:"description"`
	DueDate     openapi_types.Date `json:"dueDate"`
	Status      string             `json:"status"`
}

func (s *Server) handleListBills(w http.ResponseWriter, r *http.Request) {
	bs, err := s.Billing.ListBills(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toBillViews(bs))
}

func (s *Server) handleListBillsForMember(w http.ResponseWriter, r *http.Request) {
	bs, err := s.Billing.ListBillsForMember(r.Context(), domain.MemberID(chi.URLParam(r, "memberID")))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toBillViews(bs))
}

func (s *Server) handleSearchBills(w http.ResponseWriter, r *http.Request) {
	bs, err := s.Billing.SearchBills(r.Context(), r.URL.Query().Get("term"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toBillViews(bs))
}

func (s *Server) handleCreateBill(w http.ResponseWriter, r *http.Request) {
	var req createBillRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	b, err := s.Billing.CreateBill(r.Context(), billing.CreateBillInput{
		MemberID:    domain.MemberID(req.MemberID),
		Amount:      req.Amount,
		Description: req.Description,
		DueDate:     req.DueDate.Time,
		Status:      req.Status,
	})
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toBillView(b))
}
