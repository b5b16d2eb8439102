package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ironhaven-fitness/gym-api/internal/app/notices"
	"github.com/ironhaven-fitness/gym-api/internal/domain"
)

type createNotificationRequest struct {
	Title          string `json:"title"`
	Message        string `json:"message"`
	Type           string `json:"type"`
	TargetAudience string `json:"targetAudience"`
}

func (s *Server) handleListNotifications(w http.ResponseWriter, r *http.Request) {
	ns, err := s.Notices.ListNotifications(r.Context(), r.URL.Query().Get("audience"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	out := make([]notificationView, 0, len(ns))
	for _, n := range ns {
		out = append(out, toNotificationView(n))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateNotification(w http.ResponseWriter, r *http.Request) {
	var req createNotificationRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	n, err := s.Notices.CreateNotification(r.Context(), notices.CreateNotificationInput{
		Title:          req.Title,
		Message:        req.Message,
		Type:           req.Type,
		TargetAudience: req.TargetAudience,
	})
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toNotificationView(n))
}

func (s *Server) handleMarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	n, err := s.Notices.MarkRead(r.Context(), domain.NotificationID(chi.URLParam(r, "id")))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toNotificationView(n))
}
