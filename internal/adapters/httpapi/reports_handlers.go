package httpapi

import (
	"net/http"
	"strconv"
	"time"
)

func (s *Server) handleReports(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	start, ok := parseReportDate(w, r, q.Get("startDate"), "startDate")
	if !ok {
		return
	}
	end, ok := parseReportDate(w, r, q.Get("endDate"), "endDate")
	if !ok {
		return
	}

	switch q.Get("type") {
	case "members":
		ms, err := s.Members.ReportMembers(r.Context(), start, end)
		if err != nil {
			s.respondError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toMemberViews(ms))
	case "bills":
		bs, err := s.Billing.ReportBills(r.Context(), start, end)
		if err != nil {
			s.respondError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toBillViews(bs))
	case "payments":
		bs, err := s.Billing.ReportPayments(r.Context(), start, end)
		if err != nil {
			s.respondError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toBillViews(bs))
	default:
		writeError(w, r, http.StatusBadRequest, "INVALID_REQUEST", "unsupported report type", map[string]any{
			"type": "must be one of members, bills, payments",
		})
	}
}

func (s *Server) handleListActivityLogs(w http.ResponseWriter, r *http.Request) {
	limit := 100
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, r, http.StatusBadRequest, "INVALID_REQUEST", "limit must be a positive integer", nil)
			return
		}
		limit = n
	}

	entries, err := s.Audit.ListRecent(r.Context(), limit)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	out := make([]activityEntryView, 0, len(entries))
	for _, e := range entries {
		out = append(out, toActivityEntryView(e))
	}
	writeJSON(w, http.StatusOK, out)
}

// parseReportDate accepts "2006-01-02"; empty means unbounded.
func parseReportDate(w http.ResponseWriter, r *http.Request, raw, field string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, true
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "INVALID_REQUEST", "invalid "+field, map[string]any{
			field: "must be formatted as 2006-01-02",
		})
		return time.Time{}, false
	}
	return t, true
}
