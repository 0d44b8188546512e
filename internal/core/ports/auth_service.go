package ports

import (
	"context"

	"github.com/staffhub/hrms/internal/core/domain"
)

// LoginResult is the successful outcome of login and registration: a
// signed token plus the account summary (the hash never leaves the
// service thanks to the json:"-" tag on Account).
type LoginResult struct {
	Token   string
	Account *domain.Account
}

// UpdateProfileInput carries the mutable profile fields. Empty strings
// mean "leave unchanged". Actor is the identity performing the update;
// role changes are dropped unless the actor is an admin.
type UpdateProfileInput struct {
	ID    string
	Name  string
	Email string
	Role  string
	Image string
	Actor domain.Identity
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Register(ctx context.Context, name, email, password, role string) (*LoginResult, error)
	ResetPassword(ctx context.Context, email, newPassword string) error
	UpdateProfile(ctx context.Context, input UpdateProfileInput) (*domain.Account, error)
}

// TokenService issues and verifies the signed identity tokens carried in
// Authorization headers. Verification is storage-free: the token is the
// sole source of truth for its identity snapshot.
type TokenService interface {
	Issue(identity domain.Identity) (string, error)
	Verify(token string) (domain.Identity, error)
}

// LoginThrottle limits failed login attempts per email within a rolling
// window. Implementations must fail open: an unreachable backend should
// not lock everyone out.
type LoginThrottle interface {
	Blocked(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}
