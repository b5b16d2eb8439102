package members

import (
	"context"
	"errors"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ironhaven-fitness/gym-api/internal/app/apperr"
	"github.com/ironhaven-fitness/gym-api/internal/domain"
	clockport "github.com/ironhaven-fitness/gym-api/internal/ports/out/clock"
	"github.com/ironhaven-fitness/gym-api/internal/ports/out/memberrepo"
	"github.com/ironhaven-fitness/gym-api/internal/ports/out/packagerepo"
)

// Service carries the member directory use cases.
type Service struct {
	repo     memberrepo.Repository
	packages packagerepo.Repository
	clk      clockport.Clock

	newMemberID func() domain.MemberID
}

func NewService(repo memberrepo.Repository, packages packagerepo.Repository, clk clockport.Clock) *Service {
	return &Service{
		repo:     repo,
		packages: packages,
		clk:      clk,
		newMemberID: func() domain.MemberID {
			return domain.MemberID(uuid.NewString())
		},
	}
}

func (s *Service) ListMembers(ctx context.Context) ([]domain.Member, error) {
	ms, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toDomainSlice(ms), nil
}

func (s *Service) SearchMembers(ctx context.Context, term string) ([]domain.Member, error) {
	ms, err := s.repo.SearchByTerm(ctx, term)
	if err != nil {
		return nil, err
	}
	return toDomainSlice(ms), nil
}

// ReportMembers returns members who joined inside [start, end]. Zero bounds
// widen to the epoch and to today respectively; the filter works on day
// bounds like the billing reports.
func (s *Service) ReportMembers(ctx context.Context, start, end time.Time) ([]domain.Member, error) {
	ms, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	lo := time.Unix(0, 0).UTC()
	if !start.IsZero() {
		lo = domain.DateOnly(start)
	}
	hi := domain.DateOnly(s.clk.Now()).AddDate(0, 0, 1)
	if !end.IsZero() {
		hi = domain.DateOnly(end).AddDate(0, 0, 1)
	}

	out := make([]memberrepo.Member, 0, len(ms))
	for _, m := range ms {
		if !m.JoinDate.Before(lo) && m.JoinDate.Before(hi) {
			out = append(out, m)
		}
	}
	return toDomainSlice(out), nil
}

func (s *Service) GetMemberByEmail(ctx context.Context, email string) (domain.Member, error) {
	m, err := s.repo.FindByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, memberrepo.ErrNotFound) {
			return domain.Member{}, errMemberNotFound()
		}
		return domain.Member{}, err
	}
	return toDomain(m), nil
}

func (s *Service) GetMember(ctx context.Context, id domain.MemberID) (domain.Member, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, memberrepo.ErrNotFound) {
			return domain.Member{}, errMemberNotFound()
		}
		return domain.Member{}, err
	}
	return toDomain(m), nil
}

func (s *Service) CreateMember(ctx context.Context, in CreateMemberInput) (domain.Member, error) {
	name := domain.NormalizeHumanName(in.Name)
	if name == "" {
		return domain.Member{}, &apperr.Error{
			Status:  http.StatusUnprocessableEntity,
			Code:    "VALIDATION_ERROR",
			Message: "invalid name",
			Details: map[string]any{"name": "must be non-empty"},
		}
	}
	email := domain.NormalizeEmail(in.Email)
	if err := validateEmail(email); err != nil {
		return domain.Member{}, &apperr.Error{
			Status:  http.StatusUnprocessableEntity,
			Code:    "VALIDATION_ERROR",
			Message: "invalid email",
			Details: map[string]any{"email": err.Error()},
		}
	}

	now := s.clk.Now()
	joinDate := domain.DateOnly(now)
	if in.JoinDate != nil {
		joinDate = domain.DateOnly(*in.JoinDate)
	}
	status := in.Status
	if status == "" {
		status = "active"
	}
	role := in.Role
	if role == "" {
		role = "member"
	}

	m := memberrepo.Member{
		ID:        s.newMemberID(),
		Name:      name,
		Email:     email,
		Phone:     strings.TrimSpace(in.Phone),
		Address:   strings.TrimSpace(in.Address),
		JoinDate:  joinDate,
		Status:    status,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		if errors.Is(err, memberrepo.ErrEmailTaken) {
			return domain.Member{}, errEmailInUse()
		}
		return domain.Member{}, err
	}
	return toDomain(m), nil
}

func (s *Service) UpdateMember(ctx context.Context, id domain.MemberID, in UpdateMemberInput) (domain.Member, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, memberrepo.ErrNotFound) {
			return domain.Member{}, errMemberNotFound()
		}
		return domain.Member{}, err
	}

	if in.Name.IsSpecified() {
		if in.Name.IsNull() {
			return domain.Member{}, validationError("name", "cannot be null")
		}
		name := domain.NormalizeHumanName(in.Name.MustGet())
		if name == "" {
			return domain.Member{}, validationError("name", "must be non-empty")
		}
		m.Name = name
	}

	if in.Email.IsSpecified() {
		if in.Email.IsNull() {
			return domain.Member{}, validationError("email", "cannot be null")
		}
		email := domain.NormalizeEmail(in.Email.MustGet())
		if err := validateEmail(email); err != nil {
			return domain.Member{}, validationError("email", err.Error())
		}
		m.Email = email
	}

	if in.Phone.IsSpecified() {
		if in.Phone.IsNull() {
			m.Phone = ""
		} else {
			m.Phone = strings.TrimSpace(in.Phone.MustGet())
		}
	}

	if in.Address.IsSpecified() {
		if in.Address.IsNull() {
			m.Address = ""
		} else {
			m.Address = strings.TrimSpace(in.Address.MustGet())
		}
	}

	if in.JoinDate.IsSpecified() {
		if in.JoinDate.IsNull() {
			return domain.Member{}, validationError("joinDate", "cannot be null")
		}
		m.JoinDate = domain.DateOnly(in.JoinDate.MustGet())
	}

	if in.Status.IsSpecified() {
		if in.Status.IsNull() {
			return domain.Member{}, validationError("status", "cannot be null")
		}
		status := strings.TrimSpace(in.Status.MustGet())
		if status == "" {
			return domain.Member{}, validationError("status", "must be non-empty")
		}
		m.Status = status
	}

	m.UpdatedAt = s.clk.Now()
	if err := s.repo.Update(ctx, m); err != nil {
		if errors.Is(err, memberrepo.ErrEmailTaken) {
			return domain.Member{}, errEmailInUse()
		}
		return domain.Member{}, err
	}
	return toDomain(m), nil
}

func (s *Service) DeleteMember(ctx context.Context, id domain.MemberID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, memberrepo.ErrNotFound) {
			return errMemberNotFound()
		}
		return err
	}
	return nil
}

// AssignPackage copies a fee-package snapshot onto the member. The snapshot
// is denormalized on purpose: later package edits do not flow back.
func (s *Service) AssignPackage(ctx context.Context, memberID domain.MemberID, packageID domain.PackageID) (domain.Member, error) {
	m, err := s.repo.GetByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, memberrepo.ErrNotFound) {
			return domain.Member{}, errMemberNotFound()
		}
		return domain.Member{}, err
	}
	p, err := s.packages.GetByID(ctx, packageID)
	if err != nil {
		if errors.Is(err, packagerepo.ErrNotFound) {
			return domain.Member{}, &apperr.Error{
				Status:  http.StatusNotFound,
				Code:    "PACKAGE_NOT_FOUND",
				Message: "No fee package exists with the given id.",
			}
		}
		return domain.Member{}, err
	}

	now := s.clk.Now()
	m.Package = &domain.PackageAssignment{
		PackageID:     p.ID,
		PackageName:   p.Name,
		PackageAmount: p.Amount,
		AssignedAt:    now,
	}
	m.UpdatedAt = now
	if err := s.repo.Update(ctx, m); err != nil {
		return domain.Member{}, err
	}
	return toDomain(m), nil
}

func validateEmail(email string) error {
	if email == "" {
		return errors.New("must be non-empty")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return err
	}
	// Ensure no "Name <email@x>" format sneaks in.
	if addr.Address != email {
		return errors.New("must be a bare email address")
	}
	return nil
}

func validationError(field, msg string) *apperr.Error {
	return &apperr.Error{
		Status:  http.StatusUnprocessableEntity,
		Code:    "VALIDATION_ERROR",
		Message: "invalid " + field,
		Details: map[string]any{field: msg},
	}
}

func errMemberNotFound() *apperr.Error {
	return apperr.New(http.StatusNotFound, "MEMBER_NOT_FOUND", "No member exists with the given identifier.")
}

func errEmailInUse() *apperr.Error {
	return apperr.New(http.StatusConflict, "EMAIL_ALREADY_IN_USE", "email address is already in use")
}

func toDomain(m memberrepo.Member) domain.Member {
	out := domain.Member{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Address:   m.Address,
		JoinDate:  m.JoinDate,
		Status:    m.Status,
		Role:      m.Role,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.Package != nil {
		p := *m.Package
		out.Package = &p
	}
	return out
}

func toDomainSlice(ms []memberrepo.Member) []domain.Member {
	out := make([]domain.Member, 0, len(ms))
	for _, m := range ms {
		out = append(out, toDomain(m))
	}
	return out
}
