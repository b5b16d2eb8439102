// Package httpapi is the HTTP adapter: thin chi handlers that decode
// requests, call the app services and render views.
package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ironhaven-fitness/gym-api/internal/app/auth"
	"github.com/ironhaven-fitness/gym-api/internal/app/billing"
	"github.com/ironhaven-fitness/gym-api/internal/app/catalog"
	"github.com/ironhaven-fitness/gym-api/internal/app/members"
	"github.com/ironhaven-fitness/gym-api/internal/app/notices"
	"github.com/ironhaven-fitness/gym-api/internal/platform/observability"
	activitylogport "github.com/ironhaven-fitness/gym-api/internal/ports/out/activitylog"
)

// Server bundles the app services behind the HTTP surface.
type Server struct {
	Auth    *auth.Service
	Members *members.Service
	Billing *billing.Service
	Catalog *catalog.Service
	Notices *notices.Service
	Audit   activitylogport.Log

	Logger  *slog.Logger
	Metrics *observability.Metrics
}

func (s *Server) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

// NewRouter constructs the API HTTP router.
func NewRouter(s *Server) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	if s.Metrics != nil {
		r.Use(s.Metrics.Middleware)
	}

	// Health endpoint for infra checks.
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if s.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.Metrics.Handler())
	}

	r.Route("/api", func(api chi.Router) {
		api.Route("/auth", func(ar chi.Router) {
			ar.Post("/login", s.handleLogin)
			ar.Post("/signup", s.handleSignup)
			ar.Post("/logout", s.handleLogout)
		})

		api.Route("/members", func(mr chi.Router) {
			mr.Get("/", s.handleListMembers)
			mr.Get("/search", s.handleSearchMembers)
			mr.Get("/by-email", s.handleGetMemberByEmail)
			mr.Post("/", s.handleCreateMember)
			mr.Put("/{id}", s.handleUpdateMember)
			mr.Delete("/{id}", s.handleDeleteMember)
			mr.Post("/{id}/assign-package/{packageID}", s.handleAssignPackage)
		})

		api.Route("/bills", func(br chi.Router) {
			br.Get("/", s.handleListBills)
			br.Get("/member/{memberID}", s.handleListBillsForMember)
			br.Get("/search", s.handleSearchBills)
			br.Post("/", s.handleCreateBill)
		})

		api.Route("/fee-packages", func(pr chi.Router) {
			pr.Get("/", s.handleListPackages)
			pr.Post("/", s.handleCreatePackage)
		})

		api.Route("/supplements", func(sr chi.Router) {
			sr.Get("/", s.handleListSupplements)
			sr.Post("/", s.handleCreateSupplement)
			sr.Put("/{id}", s.handleUpdateSupplement)
			sr.Delete("/{id}", s.handleDeleteSupplement)
		})

		api.Route("/diet-plans", func(dr chi.Router) {
			dr.Get("/", s.handleListDietPlans)
			dr.Post("/", s.handleCreateDietPlan)
			dr.Put("/{id}", s.handleUpdateDietPlan)
			dr.Delete("/{id}", s.handleDeleteDietPlan)
		})

		api.Route("/notifications", func(nr chi.Router) {
			nr.Get("/", s.handleListNotifications)
			nr.Post("/", s.handleCreateNotification)
			nr.Patch("/{id}/read", s.handleMarkNotificationRead)
		})

		api.Get("/reports", s.handleReports)
		api.Get("/activity-logs", s.handleListActivityLogs)
	})

	return r
}
