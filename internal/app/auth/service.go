package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ironhaven-fitness/gym-api/internal/domain"
	"github.com/ironhaven-fitness/gym-api/internal/platform/token"
	"github.com/ironhaven-fitness/gym-api/internal/ports/out/accountrepo"
	clockport "github.com/ironhaven-fitness/gym-api/internal/ports/out/clock"
	"github.com/ironhaven-fitness/gym-api/internal/ports/out/memberrepo"
)

// Session is the auth flow result returned to the HTTP layer.
type Session struct {
	// Token is empty for signup: no auto-login token is issued.
	Token   string
	Email   string
	Role    string
	Message string
}

// Service orchestrates login, signup and logout over the credential store,
// the member directory and the activity log.
type Service struct {
	accounts accountrepo.Repository
	members  memberrepo.Repository
	audit    *Recorder
	tokens   *token.Issuer
	clk      clockport.Clock

	newAccountID func() domain.AccountID
	newMemberID  func() domain.MemberID

	// HashCost is the bcrypt cost used for new accounts. Tests lower it.
	HashCost int
}

func NewService(accounts accountrepo.Repository, members memberrepo.Repository, audit *Recorder, tokens *token.Issuer, clk clockport.Clock) *Service {
	return &Service{
		accounts: accounts,
		members:  members,
		audit:    audit,
		tokens:   tokens,
		clk:      clk,
		newAccountID: func() domain.AccountID {
			return domain.AccountID(uuid.NewString())
		},
		newMemberID: func() domain.MemberID {
			return domain.MemberID(uuid.NewString())
		},
		HashCost: bcrypt.DefaultCost,
	}
}

// Login authenticates an email/password pair against the requested role.
//
// An attempt entry is always recorded first; failure and success paths record
// one more entry each, so a call writes 1 or 2 audit entries. Unknown email
// and wrong password produce the same error so the response never reveals
// which check failed.
func (s *Service) Login(ctx context.Context, email, password, role string) (Session, error) {
	email = domain.NormalizeEmail(email)
	s.audit.Record(ctx, email, "LOGIN_ATTEMPT", "User attempted to login with role: "+role)

	requested, err := domain.ParseRole(role)
	if err != nil {
		return Session{}, errInvalidLoginRole()
	}

	account, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, accountrepo.ErrNotFound) {
			return Session{}, errInvalidCredentials()
		}
		return Session{}, err
	}

	if account.Role != requested {
		s.audit.Record(ctx, email, "LOGIN_FAILED", "Role mismatch. Expected "+string(account.Role))
		return Session{}, errRoleMismatch()
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		s.audit.Record(ctx, email, "LOGIN_FAILED", "Incorrect password")
		return Session{}, errInvalidCredentials()
	}

	tok, err := s.tokens.Mint(account.Email, account.Role.Lower())
	if err != nil {
		return Session{}, err
	}
	s.audit.Record(ctx, email, "LOGIN_SUCCESS", "User successfully logged in with role: "+string(account.Role))

	return Session{
		Token:   tok,
		Email:   account.Email,
		Role:    account.Role.Lower(),
		Message: "Login successful",
	}, nil
}

// Signup creates an Account and, for MEMBER signups, upserts the matching
// Member record keyed on email. The two writes are not transactional; a crash
// between them leaves an Account without a Member, which the next signup or
// an administrative member creation reconciles via the upsert.
func (s *Service) Signup(ctx context.Context, email, name, password, role string) (Session, error) {
	email = domain.NormalizeEmail(email)

	resolved, err := domain.ParseRole(role)
	if err != nil {
		s.audit.Record(ctx, email, "SIGNUP_FAILED", "Invalid role: "+role)
		return Session{}, errInvalidRole()
	}

	exists, err := s.accounts.ExistsByEmail(ctx, email)
	if err != nil {
		return Session{}, err
	}
	if exists {
		s.audit.Record(ctx, email, "SIGNUP_FAILED", "Email already registered")
		return Session{}, errEmailRegistered()
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.HashCost)
	if err != nil {
		return Session{}, err
	}

	now := s.clk.Now()
	account := accountrepo.Account{
		ID:           s.newAccountID(),
		Email:        email,
		Name:         domain.NormalizeHumanName(name),
		Role:         resolved,
		Status:       "active",
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		// Lost a race with a concurrent signup: the store-level uniqueness
		// constraint is the only guard here.
		if errors.Is(err, accountrepo.ErrEmailTaken) {
			s.audit.Record(ctx, email, "SIGNUP_FAILED", "Email already registered")
			return Session{}, errEmailRegistered()
		}
		return Session{}, err
	}

	if resolved == domain.RoleMember {
		if err := s.upsertMemberProfile(ctx, email, account.Name, now); err != nil {
			return Session{}, err
		}
	}

	s.audit.Record(ctx, email, "SIGNUP", "Account created with role: "+string(resolved))

	return Session{
		Email:   email,
		Role:    resolved.Lower(),
		Message: "Account created successfully",
	}, nil
}

// Logout is a pure audit action. No token is ever persisted, so there is
// nothing to invalidate; the entry is the only effect.
func (s *Service) Logout(ctx context.Context, tok, email string) {
	user := domain.NormalizeEmail(email)
	if user == "" {
		user = "unknown"
	}
	s.audit.Record(ctx, user, "LOGOUT", "User logged out. Token: "+tok)
}

// upsertMemberProfile finds or creates the member record for a MEMBER signup
// and overwrites its name, status and role. The upsert is keyed on email, not
// on a foreign key to the account.
func (s *Service) upsertMemberProfile(ctx context.Context, email, name string, now time.Time) error {
	if name == "" {
		name = email
	}

	m, err := s.members.FindByEmail(ctx, email)
	switch {
	case err == nil:
		m.Name = name
		m.Status = "active"
		m.Role = "member"
		m.UpdatedAt = now
		return s.members.Update(ctx, m)
	case errors.Is(err, memberrepo.ErrNotFound):
		return s.members.Create(ctx, memberrepo.Member{
			ID:        s.newMemberID(),
			Name:      name,
			Email:     email,
			JoinDate:  domain.DateOnly(now),
			Status:    "active",
			Role:      "member",
			CreatedAt: now,
			UpdatedAt: now,
		})
	default:
		return err
	}
}
