package httpapi

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestBills_CreateAndListWire(t *testing.T) {
	t.Parallel()

	h, _, _ := newTestRouter(t)
	m := createMember(t, h, `{"name":"Jane Doe","email":"jane@example.com"}`)

	rec := doJSON(t, h, http.MethodPost, "/api/bills/",
		`{"memberId":"`+m.ID+`","amount":49.99,"description":"November dues","dueDate":"2023-12-01"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create bill status=%d body=%s", rec.Code, rec.Body.String())
	}
	var bill struct {
		ID         string  `json:"id"`
		MemberID   string  `json:"memberId"`
		MemberName string  `json:"memberName"`
		Amount     float64 `json:"amount"`
		DueDate    string  `json:"dueDate"`
		Status     string  `json:"status"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &bill); err != nil {
		t.Fatalf("decode bill: %v", err)
	}
	if bill.MemberName != "Jane Doe" {
		t.Fatalf("memberName=%q", bill.MemberName)
	}
	if bill.DueDate != "2023-12-01" {
		t.Fatalf("dueDate=%q", bill.DueDate)
	}
	if bill.Status != "pending" {
		t.Fatalf("status=%q", bill.Status)
	}

	rec = doJSON(t, h, http.MethodGet, "/api/bills/member/"+m.ID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list status=%d body=%s", rec.Code, rec.Body.String())
	}
	var bills []json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &bills); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(bills) != 1 {
		t.Fatalf("bills=%d, want 1", len(bills))
	}
}

func TestBills_CreateForUnknownMember(t *testing.T) {
	t.Parallel()

	h, _, _ := newTestRouter(t)

	rec := doJSON(t, h, http.MethodPost, "/api/bills/",
		`{"memberId":"nope","amount":10,"description":"x","dueDate":"2023-12-01"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
	}
	var er errorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &er); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if er.Error.Code != "MEMBER_NOT_FOUND" {
		t.Fatalf("code=%q", er.Error.Code)
	}
}

func TestNotifications_CreateAndMarkRead(t *testing.T) {
	t.Parallel()

	h, _, _ := newTestRouter(t)

	rec := doJSON(t, h, http.MethodPost, "/api/notifications/",
		`{"title":"Holiday hours","message":"Closed Monday"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status=%d body=%s", rec.Code, rec.Body.String())
	}
	var n struct {
		ID       string `json:"id"`
		Type     string `json:"type"`
		Audience string `json:"targetAudience"`
		Read     bool   `json:"read"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &n); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if n.Type != "info" || n.Audience != "all" || n.Read {
		t.Fatalf("defaults=%+v", n)
	}

	rec = doJSON(t, h, http.MethodPatch, "/api/notifications/"+n.ID+"/read", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("mark read status=%d body=%s", rec.Code, rec.Body.String())
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &n); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !n.Read {
		t.Fatalf("read=%v, want true", n.Read)
	}

	rec = doJSON(t, h, http.MethodPatch, "/api/notifications/nope/read", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown id status=%d body=%s", rec.Code, rec.Body.String())
	}
}
