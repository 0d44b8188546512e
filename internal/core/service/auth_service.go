package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/staffhub/hrms/internal/core/domain"
	"github.com/staffhub/hrms/internal/core/ports"
	"github.com/staffhub/hrms/pkg/password"
)

const minPasswordLength = 6

// AuthService implements login, registration, password reset and profile
// updates over the single account namespace.
type AuthService struct {
	repo     ports.AuthRepository
	tokens   ports.TokenService
	throttle ports.LoginThrottle
	audit    ports.AuditSink
	logger   zerolog.Logger
}

func NewAuthService(repo ports.AuthRepository, tokens ports.TokenService, throttle ports.LoginThrottle, audit ports.AuditSink, logger zerolog.Logger) *AuthService {
	if audit == nil {
		audit = ports.NopAuditSink{}
	}
	return &AuthService{repo: repo, tokens: tokens, throttle: throttle, audit: audit, logger: logger}
}

func (s *AuthService) Login(ctx context.Context, email, pass string) (*ports.LoginResult, error) {
	if email == "" || pass == "" {
		return nil, domain.ErrInvalidCredentials
	}
	email = foldEmail(email)

	if s.throttle != nil {
		blocked, err := s.throttle.Blocked(ctx, email)
		if err != nil {
			// Fail open: a dead throttle backend must not lock logins out.
			s.logger.Warn().Err(err).Msg("login throttle unavailable")
		} else if blocked {
			s.auditLogin(email, domain.AuditOutcomeThrottle)
			return nil, domain.ErrTooManyAttempts
		}
	}

	account, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			s.failLogin(ctx, email)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if account.PasswordHash == "" {
		// Same response as a wrong password; the distinction is for logs only.
		s.logger.Warn().Str("email", email).Msg("account has no password hash set")
		s.failLogin(ctx, email)
		return nil, domain.ErrInvalidCredentials
	}

	if !password.Verify(pass, account.PasswordHash) {
		s.failLogin(ctx, email)
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(domain.IdentityOf(account))
	if err != nil {
		return nil, err
	}

	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, email); err != nil {
			s.logger.Warn().Err(err).Msg("login throttle reset failed")
		}
	}

	s.auditLogin(email, domain.AuditOutcomeSuccess)
	s.logger.Info().Str("account_id", account.ID).Str("role", account.Role.String()).Msg("login succeeded")

	return &ports.LoginResult{Token: token, Account: account}, nil
}

func (s *AuthService) Register(ctx context.Context, name, email, pass, roleName string) (*ports.LoginResult, error) {
	if name == "" || email == "" || len(pass) < minPasswordLength {
		return nil, domain.ErrInvalidInput
	}

	role, err := domain.ParseRole(roleName)
	if err != nil {
		return nil, err
	}
	if !role.Registerable() {
		return nil, domain.ErrInvalidRole
	}

	hash, err := password.Hash(pass)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	account := &domain.Account{
		Name:         name,
		Email:        foldEmail(email),
		PasswordHash: hash,
		Role:         role,
		Kind:         domain.KindStaff,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, account)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(domain.IdentityOf(created))
	if err != nil {
		return nil, err
	}

	s.audit.Enqueue(domain.AuditEvent{
		Subject:   created.Email,
		Action:    domain.AuditActionRegister,
		Outcome:   domain.AuditOutcomeSuccess,
		Timestamp: time.Now().UTC(),
	})
	s.logger.Info().Str("email", created.Email).Str("role", created.Role.String()).Msg("account registered")

	return &ports.LoginResult{Token: token, Account: created}, nil
}

func (s *AuthService) ResetPassword(ctx context.Context, email, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return domain.ErrInvalidInput
	}
	email = foldEmail(email)

	account, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	hash, err := password.Hash(newPassword)
	if err != nil {
		return err
	}

	if err := s.repo.UpdatePassword(ctx, account.ID, hash); err != nil {
		return err
	}

	// Tokens already in flight stay valid until natural expiry.
	s.audit.Enqueue(domain.AuditEvent{
		Subject:   email,
		Action:    domain.AuditActionPasswordReset,
		Outcome:   domain.AuditOutcomeSuccess,
		Timestamp: time.Now().UTC(),
	})
	s.logger.Info().Str("email", email).Msg("password reset")
	return nil
}

func (s *AuthService) UpdateProfile(ctx context.Context, input ports.UpdateProfileInput) (*domain.Account, error) {
	account, err := s.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		account.Name = input.Name
	}
	if input.Email != "" {
		account.Email = foldEmail(input.Email)
	}
	if input.Image != "" {
		account.Image = input.Image
	}
	if input.Role != "" && input.Actor.Role == domain.RoleAdmin {
		role, err := domain.ParseRole(input.Role)
		if err != nil {
			return nil, err
		}
		account.Role = role
	}
	account.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.UpdateProfile(ctx, account)
	if err != nil {
		return nil, err
	}

	s.audit.Enqueue(domain.AuditEvent{
		Subject:   updated.ID,
		Action:    domain.AuditActionProfileUpdate,
		Outcome:   domain.AuditOutcomeSuccess,
		Actor:     input.Actor.ID,
		Timestamp: time.Now().UTC(),
	})
	return updated, nil
}

// EnsureAdmin provisions the break-glass admin account as a regular
// credential record. It replaces the old hardcoded login bypass: the
// seeded account goes through the same hash and verify path as everyone
// else. Safe to call on every startup.
func (s *AuthService) EnsureAdmin(ctx context.Context, email, pass string) error {
	if email == "" || pass == "" {
		s.logger.Warn().Msg("admin seed not configured, skipping")
		return nil
	}
	email = foldEmail(email)

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil
	} else if !errors.Is(err, domain.ErrAccountNotFound) {
		return err
	}

	hash, err := password.Hash(pass)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	_, err = s.repo.Create(ctx, &domain.Account{
		Name:         "Admin",
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		Kind:         domain.KindStaff,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if errors.Is(err, domain.ErrAccountExists) {
		// Another instance seeded it first.
		return nil
	}
	if err == nil {
		s.logger.Info().Str("email", email).Msg("admin account seeded")
	}
	return err
}

func (s *AuthService) failLogin(ctx context.Context, email string) {
	if s.throttle != nil {
		if err := s.throttle.RecordFailure(ctx, email); err != nil {
			s.logger.Warn().Err(err).Msg("login throttle record failed")
		}
	}
	s.auditLogin(email, domain.AuditOutcomeRejected)
}

func (s *AuthService) auditLogin(email, outcome string) {
	s.audit.Enqueue(domain.AuditEvent{
		Subject:   email,
		Action:    domain.AuditActionLogin,
		Outcome:   outcome,
		Timestamp: time.Now().UTC(),
	})
}

func foldEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
