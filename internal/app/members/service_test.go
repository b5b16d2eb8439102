package members

import (
	"context"
	"testing"
	"time"

	"github.com/oapi-codegen/nullable"
	"github.com/stretchr/testify/require"

	memclock "github.com/ironhaven-fitness/gym-api/internal/adapters/memory/clock"
	memmemberrepo "github.com/ironhaven-fitness/gym-api/internal/adapters/memory/memberrepo"
	mempackagerepo "github.com/ironhaven-fitness/gym-api/internal/adapters/memory/packagerepo"
	"github.com/ironhaven-fitness/gym-api/internal/app/apperr"
	"github.com/ironhaven-fitness/gym-api/internal/domain"
)

func newService(t *testing.T) (*Service, *mempackagerepo.Repo, *memclock.ManualClock) {
	t.Helper()
	packages := mempackagerepo.NewRepo()
	clk := memclock.NewManualClock(time.Unix(1_700_000_000, 0).UTC())
	return NewService(memmemberrepo.NewRepo(), packages, clk), packages, clk
}

func TestCreateMemberDefaults(t *testing.T) {
	t.Parallel()
	svc, _, clk := newService(t)

	m, err := svc.CreateMember(context.Background(), CreateMemberInput{
		Name:  "  Alice   Smith ",
		Email: "Alice@Example.com",
	})
	require.NoError(t, err)
	require.Equal(t, "Alice Smith", m.Name)
	require.Equal(t, "alice@example.com", m.Email)
	require.Equal(t, "active", m.Status)
	require.Equal(t, "member", m.Role)
	require.Equal(t, domain.DateOnly(clk.Now()), m.JoinDate)
	require.Nil(t, m.Package)
}

func TestCreateMemberValidation(t *testing.T) {
	t.Parallel()
	svc, _, _ := newService(t)
	ctx := context.Background()

	_, err := svc.CreateMember(ctx, CreateMemberInput{Name: "", Email: "a@b.com"})
	ae := (*apperr.Error)(nil)
	require.ErrorAs(t, err, &ae)
	require.Equal(t, 422, ae.Status)
	require.Equal(t, "VALIDATION_ERROR", ae.Code)

	_, err = svc.CreateMember(ctx, CreateMemberInput{Name: "Alice", Email: "not-an-email"})
	require.ErrorAs(t, err, &ae)
	require.Equal(t, 422, ae.Status)
}

func TestCreateMemberDuplicateEmail(t *testing.T) {
	t.Parallel()
	svc, _, _ := newService(t)
	ctx := context.Background()

	_, err := svc.CreateMember(ctx, CreateMemberInput{Name: "Alice", Email: "a@example.com"})
	require.NoError(t, err)

	_, err = svc.CreateMember(ctx, CreateMemberInput{Name: "Other", Email: "a@example.com"})
	ae := (*apperr.Error)(nil)
	require.ErrorAs(t, err, &ae)
	require.Equal(t, 409, ae.Status)
	require.Equal(t, "EMAIL_ALREADY_IN_USE", ae.Code)
}

func TestUpdateMemberPartial(t *testing.T) {
	t.Parallel()
	svc, _, _ := newService(t)
	ctx := context.Background()

	created, err := svc.CreateMember(ctx, CreateMemberInput{
		Name:    "Alice",
		Email:   "a@example.com",
		Phone:   "555-0100",
		Address: "1 Main St",
	})
	require.NoError(t, err)

	in := UpdateMemberInput{}
	in.Name.Set("  Alice   Smith ")
	in.Phone.SetNull()

	updated, err := svc.UpdateMember(ctx, created.ID, in)
	require.NoError(t, err)
	require.Equal(t, "Alice Smith", updated.Name)
	require.Equal(t, "", updated.Phone)
	// Unspecified fields keep their value.
	require.Equal(t, "a@example.com", updated.Email)
	require.Equal(t, "1 Main St", updated.Address)
}

func TestUpdateMemberNullName(t *testing.T) {
	t.Parallel()
	svc, _, _ := newService(t)
	ctx := context.Background()

	created, err := svc.CreateMember(ctx, CreateMemberInput{Name: "Alice", Email: "a@example.com"})
	require.NoError(t, err)

	_, err = svc.UpdateMember(ctx, created.ID, UpdateMemberInput{Name: nullable.NewNullNullable[string]()})
	ae := (*apperr.Error)(nil)
	require.ErrorAs(t, err, &ae)
	require.Equal(t, 422, ae.Status)
}

func TestUpdateMemberNotFound(t *testing.T) {
	t.Parallel()
	svc, _, _ := newService(t)

	_, err := svc.UpdateMember(context.Background(), domain.MemberID("missing"), UpdateMemberInput{})
	ae := (*apperr.Error)(nil)
	require.ErrorAs(t, err, &ae)
	require.Equal(t, 404, ae.Status)
	require.Equal(t, "MEMBER_NOT_FOUND", ae.Code)
}

func TestDeleteMember(t *testing.T) {
	t.Parallel()
	svc, _, _ := newService(t)
	ctx := context.Background()

	created, err := svc.CreateMember(ctx, CreateMemberInput{Name: "Alice", Email: "a@example.com"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteMember(ctx, created.ID))

	err = svc.DeleteMember(ctx, created.ID)
	ae := (*apperr.Error)(nil)
	require.ErrorAs(t, err, &ae)
	require.Equal(t, 404, ae.Status)
}

func TestAssignPackageSnapshots(t *testing.T) {
	t.Parallel()
	svc, packages, clk := newService(t)
	ctx := context.Background()

	created, err := svc.CreateMember(ctx, CreateMemberInput{Name: "Alice", Email: "a@example.com"})
	require.NoError(t, err)

	p := domain.FeePackage{
		ID:             domain.PackageID("7b8e0c52-33a1-4c57-9f5e-222222222222"),
		Name:           "Basic Plan",
		Amount:         49.99,
		DurationMonths: 1,
		CreatedAt:      clk.Now(),
	}
	require.NoError(t, packages.Create(ctx, p))

	m, err := svc.AssignPackage(ctx, created.ID, p.ID)
	require.NoError(t, err)
	require.NotNil(t, m.Package)
	require.Equal(t, p.ID, m.Package.PackageID)
	require.Equal(t, "Basic Plan", m.Package.PackageName)
	require.Equal(t, 49.99, m.Package.PackageAmount)
	require.Equal(t, clk.Now(), m.Package.AssignedAt)
}

func TestAssignPackageUnknownPackage(t *testing.T) {
	t.Parallel()
	svc, _, _ := newService(t)
	ctx := context.Background()

	created, err := svc.CreateMember(ctx, CreateMemberInput{Name: "Alice", Email: "a@example.com"})
	require.NoError(t, err)

	_, err = svc.AssignPackage(ctx, created.ID, domain.PackageID("missing"))
	ae := (*apperr.Error)(nil)
	require.ErrorAs(t, err, &ae)
	require.Equal(t, 404, ae.Status)
	require.Equal(t, "PACKAGE_NOT_FOUND", ae.Code)
}

func TestReportMembersFiltersByJoinDate(t *testing.T) {
	t.Parallel()
	svc, _, clk := newService(t)
	ctx := context.Background()

	early := clk.Now().AddDate(0, -2, 0)
	late := clk.Now()

	_, err := svc.CreateMember(ctx, CreateMemberInput{Name: "Early", Email: "early@example.com", JoinDate: &early})
	require.NoError(t, err)
	_, err = svc.CreateMember(ctx, CreateMemberInput{Name: "Late", Email: "late@example.com", JoinDate: &late})
	require.NoError(t, err)

	got, err := svc.ReportMembers(ctx, clk.Now().AddDate(0, -1, 0), time.Time{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Late", got[0].Name)

	all, err := svc.ReportMembers(ctx, time.Time{}, time.Time{})
	require.NoError(t, err)
	require.Len(t, all, 2)
}
