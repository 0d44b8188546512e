package ports

import (
	"context"

	"github.com/staffhub/hrms/internal/core/domain"
)

// CreateEmployeeInput carries the fields accepted when HR provisions a
// new employee. The role is always forced to employee by the service.
type CreateEmployeeInput struct {
	Name        string
	Email       string
	Password    string
	Mobile      string
	Designation string
	Gender      string
	Image       string
	Courses     []string
	Actor       domain.Identity
}

// UpdateEmployeeInput carries a partial update; empty fields are left
// unchanged. Passwords are never updatable through this path.
type UpdateEmployeeInput struct {
	ID          string
	Name        string
	Email       string
	Mobile      string
	Designation string
	Gender      string
	Image       string
	Courses     []string
	Role        string
	Actor       domain.Identity
}

// EmployeeStats mirrors the original count endpoint: totals plus
// per-gender, per-designation and per-course breakdowns.
type EmployeeStats struct {
	Total         int64
	Male          int64
	Female        int64
	ByDesignation []DesignationCount
	ByCourse      []CourseCount
}

// HRStats backs the HR dashboard.
type HRStats struct {
	TotalEmployees int64
	Departments    []string
	RecentHires    []*domain.Account
}

// ManagerStats backs the manager dashboard.
type ManagerStats struct {
	TeamMembers int64
}

// CEOStats backs the CEO dashboard.
type CEOStats struct {
	TotalEmployees int64
	Departments    []string
}

type EmployeeService interface {
	List(ctx context.Context) ([]*domain.Account, error)
	Get(ctx context.Context, id string) (*domain.Account, error)
	Create(ctx context.Context, input CreateEmployeeInput) (*domain.Account, error)
	Update(ctx context.Context, input UpdateEmployeeInput) (*domain.Account, error)
	Delete(ctx context.Context, id string, actor domain.Identity) error
	Search(ctx context.Context, query string) ([]*domain.Account, error)
	Stats(ctx context.Context) (*EmployeeStats, error)
	HRStats(ctx context.Context) (*HRStats, error)
	ManagerStats(ctx context.Context) (*ManagerStats, error)
	CEOStats(ctx context.Context) (*CEOStats, error)
}
