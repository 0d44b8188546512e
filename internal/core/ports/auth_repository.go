package ports

import (
	"context"

	"github.com/staffhub/hrms/internal/core/domain"
)

// AuthRepository is the credential-facing view of the accounts collection.
type AuthRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	UpdateProfile(ctx context.Context, account *domain.Account) (*domain.Account, error)
}
