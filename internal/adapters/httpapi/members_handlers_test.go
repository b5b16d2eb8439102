package httpapi

import (
	"encoding/json"
	"net/http"
	"testing"
)

type memberBody struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	Phone    string          `json:"phone"`
	JoinDate string          `json:"joinDate"`
	Status   string          `json:"status"`
	Role     string          `json:"role"`
	Package  json.RawMessage `json:"package"`
}

func createMember(t *testing.T, h http.Handler, body string) memberBody {
	t.Helper()
	rec := doJSON(t, h, http.MethodPost, "/api/members/", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create member status=%d body=%s", rec.Code, rec.Body.String())
	}
	var m memberBody
	if err := json.Unmarshal(rec.Body.Bytes(), &m); err != nil {
		t.Fatalf("decode member: %v", err)
	}
	return m
}

func TestMembers_CreateDefaults(t *testing.T) {
	t.Parallel()

	h, _, _ := newTestRouter(t)

	m := createMember(t, h, `{"name":"  Jane   Doe ","email":"Jane@Example.com","phone":"070-1"}`)
	if m.Name != "Jane Doe" {
		t.Fatalf("name=%q", m.Name)
	}
	if m.Email != "jane@example.com" {
		t.Fatalf("email=%q", m.Email)
	}
	if m.Status != "active" || m.Role != "member" {
		t.Fatalf("status=%q role=%q", m.Status, m.Role)
	}
	// Join date defaults to the creation day, date-only.
	if m.JoinDate != "2023-11-14" {
		t.Fatalf("joinDate=%q", m.JoinDate)
	}
	if string(m.Package) != "null" {
		t.Fatalf("package=%s, want null", m.Package)
	}
}

func TestMembers_UpdatePartialAndNull(t *testing.T) {
	t.Parallel()

	h, _, _ := newTestRouter(t)
	m := createMember(t, h, `{"name":"Jane Doe","email":"jane@example.com","phone":"070-1"}`)

	// Absent fields stay untouched, present ones replace.
	rec := doJSON(t, h, http.MethodPut, "/api/members/"+m.ID, `{"phone":"070-2"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("update status=%d body=%s", rec.Code, rec.Body.String())
	}
	var got memberBody
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Name != "Jane Doe" || got.Phone != "070-2" {
		t.Fatalf("name=%q phone=%q", got.Name, got.Phone)
	}

	// Explicit null clears optional fields but the name must stay set.
	rec = doJSON(t, h, http.MethodPut, "/api/members/"+m.ID, `{"phone":null}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("null phone status=%d body=%s", rec.Code, rec.Body.String())
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Phone != "" {
		t.Fatalf("phone=%q, want cleared", got.Phone)
	}

	rec = doJSON(t, h, http.MethodPut, "/api/members/"+m.ID, `{"name":null}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("null name status=%d body=%s", rec.Code, rec.Body.String())
	}
	var er errorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &er); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if er.Error.Code != "VALIDATION_ERROR" {
		t.Fatalf("code=%q", er.Error.Code)
	}
}

func TestMembers_DuplicateEmailConflict(t *testing.T) {
	t.Parallel()

	h, _, _ := newTestRouter(t)
	createMember(t, h, `{"name":"Jane","email":"jane@example.com"}`)

	rec := doJSON(t, h, http.MethodPost, "/api/members/", `{"name":"Other","email":"JANE@example.com"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
	}
	var er errorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &er); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if er.Error.Code != "EMAIL_ALREADY_IN_USE" {
		t.Fatalf("code=%q", er.Error.Code)
	}
}

func TestMembers_DeleteThenLookup(t *testing.T) {
	t.Parallel()

	h, _, _ := newTestRouter(t)
	m := createMember(t, h, `{"name":"Jane","email":"jane@example.com"}`)

	rec := doJSON(t, h, http.MethodDelete, "/api/members/"+m.ID, "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status=%d body=%s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, h, http.MethodGet, "/api/members/by-email?email=jane@example.com", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("lookup status=%d body=%s", rec.Code, rec.Body.String())
	}
	var er errorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &er); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if er.Error.Code != "MEMBER_NOT_FOUND" {
		t.Fatalf("code=%q", er.Error.Code)
	}
	if er.Error.RequestID == "" {
		t.Fatal("requestId missing from error envelope")
	}
}

func TestMembers_AssignPackageSnapshot(t *testing.T) {
	t.Parallel()

	h, _, _ := newTestRouter(t)
	m := createMember(t, h, `{"name":"Jane","email":"jane@example.com"}`)

	rec := doJSON(t, h, http.MethodPost, "/api/fee-packages/",
		`{"name":"Basic Plan","amount":49.99,"durationMonths":1}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create package status=%d body=%s", rec.Code, rec.Body.String())
	}
	var pkg struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &pkg); err != nil {
		t.Fatalf("decode package: %v", err)
	}

	rec = doJSON(t, h, http.MethodPost, "/api/members/"+m.ID+"/assign-package/"+pkg.ID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("assign status=%d body=%s", rec.Code, rec.Body.String())
	}
	var got struct {
		Package *struct {
			PackageID     string  `json:"packageId"`
			PackageName   string  `json:"packageName"`
			PackageAmount float64 `json:"packageAmount"`
		} `json:"package"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Package == nil {
		t.Fatalf("package missing: %s", rec.Body.String())
	}
	if got.Package.PackageID != pkg.ID || got.Package.PackageName != "Basic Plan" || got.Package.PackageAmount != 49.99 {
		t.Fatalf("snapshot=%+v", got.Package)
	}

	rec = doJSON(t, h, http.MethodPost, "/api/members/"+m.ID+"/assign-package/nope", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown package status=%d body=%s", rec.Code, rec.Body.String())
	}
}

func TestReports_TypeValidation(t *testing.T) {
	t.Parallel()

	h, _, _ := newTestRouter(t)

	rec := doJSON(t, h, http.MethodGet, "/api/reports?type=bogus", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
	}
	var er errorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &er); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if er.Error.Code != "INVALID_REQUEST" {
		t.Fatalf("code=%q", er.Error.Code)
	}

	rec = doJSON(t, h, http.MethodGet, "/api/reports?type=members", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("members report status=%d body=%s", rec.Code, rec.Body.String())
	}
}
