package ports

import (
	"context"

	"github.com/staffhub/hrms/internal/core/domain"
)

// DesignationCount is one bucket of a group-by-designation aggregation.
type DesignationCount struct {
	Designation string
	Count       int64
}

// CourseCount is one bucket of a group-by-course aggregation (courses are
// unwound first, so one employee can appear in several buckets).
type CourseCount struct {
	Course string
	Count  int64
}

// EmployeeRepository is the employee-facing view of the accounts
// collection (kind == employee only).
type EmployeeRepository interface {
	List(ctx context.Context) ([]*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	Create(ctx context.Context, employee *domain.Account) (*domain.Account, error)
	Update(ctx context.Context, employee *domain.Account) (*domain.Account, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, query string) ([]*domain.Account, error)
	Count(ctx context.Context) (int64, error)
	CountByGender(ctx context.Context, gender string) (int64, error)
	CountByDesignation(ctx context.Context) ([]DesignationCount, error)
	CountByCourse(ctx context.Context) ([]CourseCount, error)
	Designations(ctx context.Context) ([]string, error)
	RecentHires(ctx context.Context, limit int) ([]*domain.Account, error)
}
