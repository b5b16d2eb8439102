package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	memaccountrepo "github.com/ironhaven-fitness/gym-api/internal/adapters/memory/accountrepo"
	memactivitylog "github.com/ironhaven-fitness/gym-api/internal/adapters/memory/activitylog"
	memclock "github.com/ironhaven-fitness/gym-api/internal/adapters/memory/clock"
	memmemberrepo "github.com/ironhaven-fitness/gym-api/internal/adapters/memory/memberrepo"
	"github.com/ironhaven-fitness/gym-api/internal/app/apperr"
	"github.com/ironhaven-fitness/gym-api/internal/domain"
	"github.com/ironhaven-fitness/gym-api/internal/platform/token"
	"github.com/ironhaven-fitness/gym-api/internal/ports/out/memberrepo"
)

type fixture struct {
	svc      *Service
	accounts *memaccountrepo.Repo
	members  *memmemberrepo.Repo
	audit    *memactivitylog.Log
	clk      *memclock.ManualClock
	tokens   *token.Issuer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	accounts := memaccountrepo.NewRepo()
	members := memmemberrepo.NewRepo()
	audit := memactivitylog.NewLog()
	clk := memclock.NewManualClock(time.Unix(1_700_000_000, 0).UTC())

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tokens := token.NewIssuerAt(token.Config{
		Secret: "test-secret",
		Issuer: "gym-api-test",
		TTL:    time.Hour,
	}, clk.Now)

	svc := NewService(accounts, members, NewRecorder(audit, clk, logger), tokens, clk)
	svc.HashCost = bcrypt.MinCost

	return &fixture{
		svc:      svc,
		accounts: accounts,
		members:  members,
		audit:    audit,
		clk:      clk,
		tokens:   tokens,
	}
}

func (f *fixture) signup(t *testing.T, email, name, password, role string) Session {
	t.Helper()
	s, err := f.svc.Signup(context.Background(), email, name, password, role)
	require.NoError(t, err)
	return s
}

func actions(entries []domain.ActivityEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Action)
	}
	return out
}

func TestSignupThenLogin(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	created := f.signup(t, "Alice@Example.com", "  Alice   Smith ", "secret1", "member")
	require.Equal(t, "alice@example.com", created.Email)
	require.Equal(t, "member", created.Role)
	require.Empty(t, created.Token)

	session, err := f.svc.Login(ctx, "ALICE@example.com", "secret1", "MEMBER")
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", session.Email)
	require.Equal(t, "member", session.Role)
	require.NotEmpty(t, session.Token)

	claims, err := f.tokens.Parse(session.Token)
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", claims.Email)
	require.Equal(t, "member", claims.Role)
	require.Equal(t, f.clk.Now().Add(time.Hour), claims.ExpiresAt)
}

func TestSignupMemberUpsertsProfile(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	f.signup(t, "bob@example.com", "Bob Stone", "secret1", "member")

	m, err := f.members.FindByEmail(ctx, "bob@example.com")
	require.NoError(t, err)
	require.Equal(t, "Bob Stone", m.Name)
	require.Equal(t, "active", m.Status)
	require.Equal(t, "member", m.Role)
	require.Equal(t, domain.DateOnly(f.clk.Now()), m.JoinDate)
}

func TestSignupAdminSkipsMemberProfile(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	f.signup(t, "root@example.com", "Root", "secret1", "admin")

	n, err := f.members.Count(context.Background())
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestSignupReusesExistingMemberProfile(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	// Admin created the member record before the person ever signed up.
	require.NoError(t, f.members.Create(ctx, preexistingMember(f.clk.Now())))

	f.signup(t, "carol@example.com", "Carol Updated", "secret1", "member")

	m, err := f.members.FindByEmail(ctx, "carol@example.com")
	require.NoError(t, err)
	require.Equal(t, "Carol Updated", m.Name)
	require.Equal(t, "active", m.Status)

	n, err := f.members.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestSignupDuplicateEmail(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	f.signup(t, "dup@example.com", "First", "secret1", "member")
	_, err := f.svc.Signup(context.Background(), "dup@example.com", "Second", "secret2", "member")

	ae := (*apperr.Error)(nil)
	require.ErrorAs(t, err, &ae)
	require.Equal(t, 400, ae.Status)
	require.Equal(t, "EMAIL_ALREADY_REGISTERED", ae.Code)
}

func TestSignupInvalidRole(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	_, err := f.svc.Signup(context.Background(), "x@example.com", "X", "secret1", "superuser")

	ae := (*apperr.Error)(nil)
	require.ErrorAs(t, err, &ae)
	require.Equal(t, 400, ae.Status)
	require.Equal(t, "INVALID_ROLE", ae.Code)
}

func TestLoginUnknownEmailAndWrongPasswordLookAlike(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	f.signup(t, "alice@example.com", "Alice", "secret1", "member")

	_, errUnknown := f.svc.Login(ctx, "nobody@example.com", "secret1", "member")
	_, errWrongPw := f.svc.Login(ctx, "alice@example.com", "wrong", "member")

	for _, err := range []error{errUnknown, errWrongPw} {
		ae := (*apperr.Error)(nil)
		require.ErrorAs(t, err, &ae)
		require.Equal(t, 401, ae.Status)
		require.Equal(t, "INVALID_CREDENTIALS", ae.Code)
	}
	require.Equal(t, errUnknown.Error(), errWrongPw.Error())
}

func TestLoginRoleMismatch(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	f.signup(t, "alice@example.com", "Alice", "secret1", "member")
	_, err := f.svc.Login(context.Background(), "alice@example.com", "secret1", "admin")

	ae := (*apperr.Error)(nil)
	require.ErrorAs(t, err, &ae)
	require.Equal(t, 401, ae.Status)
	require.Equal(t, "ROLE_MISMATCH", ae.Code)
}

func TestLoginInvalidRole(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	_, err := f.svc.Login(context.Background(), "alice@example.com", "secret1", "superuser")

	// Unlike signup, a bad role on login reads as a failed credential check.
	ae := (*apperr.Error)(nil)
	require.ErrorAs(t, err, &ae)
	require.Equal(t, 401, ae.Status)
	require.Equal(t, "INVALID_ROLE", ae.Code)
}

func TestAuditTrailPerOutcome(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	f.signup(t, "alice@example.com", "Alice", "secret1", "member")
	require.Equal(t, []string{"SIGNUP"}, actions(f.audit.All()))

	_, err := f.svc.Login(ctx, "alice@example.com", "wrong", "member")
	require.Error(t, err)
	require.Equal(t,
		[]string{"SIGNUP", "LOGIN_ATTEMPT", "LOGIN_FAILED"},
		actions(f.audit.All()))

	_, err = f.svc.Login(ctx, "alice@example.com", "secret1", "admin")
	require.Error(t, err)
	entries := f.audit.All()
	require.Equal(t, "LOGIN_FAILED", entries[len(entries)-1].Action)
	require.Equal(t, "Role mismatch. Expected MEMBER", entries[len(entries)-1].Details)

	_, err = f.svc.Login(ctx, "alice@example.com", "secret1", "member")
	require.NoError(t, err)
	entries = f.audit.All()
	require.Equal(t, "LOGIN_ATTEMPT", entries[len(entries)-2].Action)
	require.Equal(t, "LOGIN_SUCCESS", entries[len(entries)-1].Action)
}

func TestLoginAttemptRecordedEvenForUnknownRole(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	_, err := f.svc.Login(context.Background(), "ghost@example.com", "pw", "superuser")
	require.Error(t, err)

	entries := f.audit.All()
	require.Len(t, entries, 1)
	require.Equal(t, "LOGIN_ATTEMPT", entries[0].Action)
	require.Equal(t, "ghost@example.com", entries[0].UserIdentifier)
}

func TestLogoutRecordsEntry(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	f.svc.Logout(context.Background(), "tok-123", "alice@example.com")

	entries := f.audit.All()
	require.Len(t, entries, 1)
	require.Equal(t, "LOGOUT", entries[0].Action)
	require.Equal(t, "alice@example.com", entries[0].UserIdentifier)
	require.Equal(t, "User logged out. Token: tok-123", entries[0].Details)
}

func TestLogoutWithoutEmailUsesUnknown(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	f.svc.Logout(context.Background(), "tok-123", "")

	entries := f.audit.All()
	require.Len(t, entries, 1)
	require.Equal(t, "unknown", entries[0].UserIdentifier)
}

func TestAuditFailureDoesNotFailLogin(t *testing.T) {
	t.Parallel()

	accounts := memaccountrepo.NewRepo()
	members := memmemberrepo.NewRepo()
	clk := memclock.NewManualClock(time.Unix(1_700_000_000, 0).UTC())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tokens := token.NewIssuerAt(token.Config{Secret: "s", Issuer: "i", TTL: time.Hour}, clk.Now)

	svc := NewService(accounts, members, NewRecorder(failingLog{}, clk, logger), tokens, clk)
	svc.HashCost = bcrypt.MinCost

	ctx := context.Background()
	_, err := svc.Signup(ctx, "alice@example.com", "Alice", "secret1", "member")
	require.NoError(t, err)

	session, err := svc.Login(ctx, "alice@example.com", "secret1", "member")
	require.NoError(t, err)
	require.NotEmpty(t, session.Token)
}

type failingLog struct{}

func (failingLog) Append(context.Context, domain.ActivityEntry) error {
	return errors.New("disk full")
}

func (failingLog) ListRecent(context.Context, int) ([]domain.ActivityEntry, error) {
	return nil, errors.New("disk full")
}

func preexistingMember(now time.Time) memberrepo.Member {
	return memberrepo.Member{
		ID:        domain.MemberID("5f0c30a4-8b0a-43f5-9c3a-111111111111"),
		Name:      "Carol Old",
		Email:     "carol@example.com",
		JoinDate:  domain.DateOnly(now.AddDate(0, -6, 0)),
		Status:    "inactive",
		Role:      "member",
		CreatedAt: now.AddDate(0, -6, 0),
		UpdatedAt: now.AddDate(0, -6, 0),
	}
}
