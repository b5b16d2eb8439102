package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ironhaven-fitness/gym-api/internal/app/catalog"
	"github.com/ironhaven-fitness/gym-api/internal/domain"
)

type createPackageRequest struct {
	Name           string  `json:"name"`
	Amount         float64 `json:"amount"`
	DurationMonths int     `json:"durationMonths"`
	Description    string  `json:"description"`
}

type supplementRequest struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
}

type dietPlanRequest struct {
	Title         string `json:"title"`
	Category      string `json:"category"`
	Description   string `json:"description"`
	MealPlan      string `json:"mealPlan"`
	Calories      int    `json:"calories"`
	DurationWeeks int    `json:"durationWeeks"`
}

func (s *Server) handleListPackages(w http.ResponseWriter, r *http.Request) {
	ps, err := s.Catalog.ListPackages(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	out := make([]feePackageView, 0, len(ps))
	for _, p := range ps {
		out = append(out, toFeePackageView(p))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreatePackage(w http.ResponseWriter, r *http.Request) {
	var req createPackageRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	p, err := s.Catalog.CreatePackage(r.Context(), catalog.CreatePackageInput{
		Name:           req.Name,
		Amount:         req.Amount,
		DurationMonths: req.DurationMonths,
		Description:    req.Description,
	})
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toFeePackageView(p))
}

func (s *Server) handleListSupplements(w http.ResponseWriter, r *http.Request) {
	sups, err := s.Catalog.ListSupplements(r.Context(), r.URL.Query().Get("term"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	out := make([]supplementView, 0, len(sups))
	for _, sup := range sups {
		out = append(out, toSupplementView(sup))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateSupplement(w http.ResponseWriter, r *http.Request) {
	var req supplementRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	sup, err := s.Catalog.CreateSupplement(r.Context(), supplementInput(req))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toSupplementView(sup))
}

func (s *Server) handleUpdateSupplement(w http.ResponseWriter, r *http.Request) {
	var req supplementRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	sup, err := s.Catalog.UpdateSupplement(r.Context(), domain.SupplementID(chi.URLParam(r, "id")), supplementInput(req))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSupplementView(sup))
}

func (s *Server) handleDeleteSupplement(w http.ResponseWriter, r *http.Request) {
	if err := s.Catalog.DeleteSupplement(r.Context(), domain.SupplementID(chi.URLParam(r, "id"))); err != nil {
		s.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListDietPlans(w http.ResponseWriter, r *http.Request) {
	ps, err := s.Catalog.ListDietPlans(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	out := make([]dietPlanView, 0, len(ps))
	for _, p := range ps {
		out = append(out, toDietPlanView(p))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateDietPlan(w http.ResponseWriter, r *http.Request) {
	var req dietPlanRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	p, err := s.Catalog.CreateDietPlan(r.Context(), dietPlanInput(req))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toDietPlanView(p))
}

func (s *Server) handleUpdateDietPlan(w http.ResponseWriter, r *http.Request) {
	var req dietPlanRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	p, err := s.Catalog.UpdateDietPlan(r.Context(), domain.DietPlanID(chi.URLParam(r, "id")), dietPlanInput(req))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDietPlanView(p))
}

func (s *Server) handleDeleteDietPlan(w http.ResponseWriter, r *http.Request) {
	if err := s.Catalog.DeleteDietPlan(r.Context(), domain.DietPlanID(chi.URLParam(r, "id"))); err != nil {
		s.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func supplementInput(req supplementRequest) catalog.SupplementInput {
	return catalog.SupplementInput{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
	}
}

func dietPlanInput(req dietPlanRequest) catalog.DietPlanInput {
	return catalog.DietPlanInput{
		Title:         req.Title,
		Category:      req.Category,
		Description:   req.Description,
		MealPlan:      req.MealPlan,
		Calories:      req.Calories,
		DurationWeeks: req.DurationWeeks,
	}
}
