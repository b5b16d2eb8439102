// Package billing carries the bill and report use cases.
package billing

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ironhaven-fitness/gym-api/internal/app/apperr"
	"github.com/ironhaven-fitness/gym-api/internal/domain"
	"github.com/ironhaven-fitness/gym-api/internal/ports/out/billrepo"
	clockport "github.com/ironhaven-fitness/gym-api/internal/ports/out/clock"
	"github.com/ironhaven-fitness/gym-api/internal/ports/out/memberrepo"
)

// Bill is a bill joined with the member's display name, the shape the admin
// console renders.
type Bill struct {
	domain.Bill
	MemberName string
}

// CreateBillInput captures the payload from the API layer.
type CreateBillInput struct {
	MemberID    domain.MemberID
	Amount      float64
	Description string
	DueDate     time.Time
	Status      string
}

// Service resolves bills against the member directory.
type Service struct {
	bills   billrepo.Repository
	members memberrepo.Repository
	clk     clockport.Clock

	newBillID func() domain.BillID
}

func NewService(bills billrepo.Repository, members memberrepo.Repository, clk clockport.Clock) *Service {
	return &Service{
		bills:   bills,
		members: members,
		clk:     clk,
		newBillID: func() domain.BillID {
			return domain.BillID(uuid.NewString())
		},
	}
}

func (s *Service) ListBills(ctx context.Context) ([]Bill, error) {
	bs, err := s.bills.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.withMemberNames(ctx, bs)
}

func (s *Service) ListBillsForMember(ctx context.Context, memberID domain.MemberID) ([]Bill, error) {
	bs, err := s.bills.ListByMember(ctx, memberID)
	if err != nil {
		return nil, err
	}
	return s.withMemberNames(ctx, bs)
}

func (s *Service) SearchBills(ctx context.Context, term string) ([]Bill, error) {
	bs, err := s.bills.SearchByDescription(ctx, term)
	if err != nil {
		return nil, err
	}
	return s.withMemberNames(ctx, bs)
}

func (s *Service) CreateBill(ctx context.Context, in CreateBillInput) (Bill, error) {
	m, err := s.members.GetByID(ctx, in.MemberID)
	if err != nil {
		if errors.Is(err, memberrepo.ErrNotFound) {
			return Bill{}, apperr.New(http.StatusBadRequest, "MEMBER_NOT_FOUND", "No member exists with the given id.")
		}
		return Bill{}, err
	}

	desc := strings.TrimSpace(in.Description)
	if desc == "" {
		return Bill{}, &apperr.Error{
			Status:  http.StatusUnprocessableEntity,
			Code:    "VALIDATION_ERROR",
			Message: "invalid description",
			Details: map[string]any{"description": "must be non-empty"},
		}
	}
	if in.Amount <= 0 {
		return Bill{}, &apperr.Error{
			Status:  http.StatusUnprocessableEntity,
			Code:    "VALIDATION_ERROR",
			Message: "invalid amount",
			Details: map[string]any{"amount": "must be positive"},
		}
	}

	status := strings.TrimSpace(in.Status)
	if status == "" {
		status = "pending"
	}

	b := domain.Bill{
		ID:          s.newBillID(),
		MemberID:    m.ID,
		Amount:      in.Amount,
		Description: desc,
		DueDate:     domain.DateOnly(in.DueDate),
		Status:      status,
		CreatedAt:   s.clk.Now(),
	}
	if err := s.bills.Create(ctx, b); err != nil {
		return Bill{}, err
	}
	return Bill{Bill: b, MemberName: m.Name}, nil
}

// ReportBills returns bills created inside [start, end]; zero bounds widen to
// the epoch and to now respectively. The date filter works on day bounds the
// way the original report screen expects.
func (s *Service) ReportBills(ctx context.Context, start, end time.Time) ([]Bill, error) {
	bs, err := s.bills.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.withMemberNames(ctx, filterByCreated(bs, start, end, s.clk.Now()))
}

// ReportPayments is ReportBills narrowed to bills whose status is "paid".
func (s *Service) ReportPayments(ctx context.Context, start, end time.Time) ([]Bill, error) {
	bs, err := s.bills.List(ctx)
	if err != nil {
		return nil, err
	}
	paid := make([]domain.Bill, 0, len(bs))
	for _, b := range bs {
		if strings.EqualFold(b.Status, "paid") {
			paid = append(paid, b)
		}
	}
	return s.withMemberNames(ctx, filterByCreated(paid, start, end, s.clk.Now()))
}

func filterByCreated(bs []domain.Bill, start, end, now time.Time) []domain.Bill {
	lo := time.Unix(0, 0).UTC()
	if !start.IsZero() {
		lo = domain.DateOnly(start)
	}
	hi := domain.DateOnly(now).AddDate(0, 0, 1)
	if !end.IsZero() {
		hi = domain.DateOnly(end).AddDate(0, 0, 1)
	}

	out := make([]domain.Bill, 0, len(bs))
	for _, b := range bs {
		if !b.CreatedAt.Before(lo) && b.CreatedAt.Before(hi) {
			out = append(out, b)
		}
	}
	return out
}

// withMemberNames joins bills against the member directory. Members deleted
// after billing keep their bills; the name renders empty.
func (s *Service) withMemberNames(ctx context.Context, bs []domain.Bill) ([]Bill, error) {
	names := make(map[domain.MemberID]string)
	out := make([]Bill, 0, len(bs))
	for _, b := range bs {
		name, ok := names[b.MemberID]
		if !ok {
			m, err := s.members.GetByID(ctx, b.MemberID)
			switch {
			case err == nil:
				name = m.Name
			case errors.Is(err, memberrepo.ErrNotFound):
				name = ""
			default:
				return nil, err
			}
			names[b.MemberID] = name
		}
		out = append(out, Bill{Bill: b, MemberName: name})
	}
	return out, nil
}
