package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/staffhub/hrms/internal/core/domain"
	"github.com/staffhub/hrms/internal/core/ports"
	"github.com/staffhub/hrms/pkg/password"
)

const recentHiresLimit = 5

// EmployeeService implements the role-gated employee CRUD and the
// per-role dashboard aggregates.
type EmployeeService struct {
	repo   ports.EmployeeRepository
	audit  ports.AuditSink
	logger zerolog.Logger
}

func NewEmployeeService(repo ports.EmployeeRepository, audit ports.AuditSink, logger zerolog.Logger) *EmployeeService {
	if audit == nil {
		audit = ports.NopAuditSink{}
	}
	return &EmployeeService{repo: repo, audit: audit, logger: logger}
}

func (s *EmployeeService) List(ctx context.Context) ([]*domain.Account, error) {
	return s.repo.List(ctx)
}

func (s *EmployeeService) Get(ctx context.Context, id string) (*domain.Account, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *EmployeeService) Create(ctx context.Context, input ports.CreateEmployeeInput) (*domain.Account, error) {
	if input.Name == "" || input.Email == "" || len(input.Password) < minPasswordLength {
		return nil, domain.ErrInvalidInput
	}

	hash, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	employee := &domain.Account{
		Name:         input.Name,
		Email:        foldEmail(input.Email),
		PasswordHash: hash,
		Role:         domain.RoleEmployee, // provisioned employees always start as plain employees
		Kind:         domain.KindEmployee,
		Mobile:       input.Mobile,
		Designation:  input.Designation,
		Gender:       input.Gender,
		Image:        input.Image,
		Courses:      input.Courses,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, employee)
	if err != nil {
		return nil, err
	}

	s.auditWrite(created.ID, input.Actor.ID)
	s.logger.Info().Str("employee_id", created.ID).Str("actor", input.Actor.ID).Msg("employee created")
	return created, nil
}

func (s *EmployeeService) Update(ctx context.Context, input ports.UpdateEmployeeInput) (*domain.Account, error) {
	employee, err := s.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		employee.Name = input.Name
	}
	if input.Email != "" {
		employee.Email = foldEmail(input.Email)
	}
	if input.Mobile != "" {
		employee.Mobile = input.Mobile
	}
	if input.Designation != "" {
		employee.Designation = input.Designation
	}
	if input.Gender != "" {
		employee.Gender = input.Gender
	}
	if input.Image != "" {
		employee.Image = input.Image
	}
	if input.Courses != nil {
		employee.Courses = input.Courses
	}
	// Only admins may move an employee to another role.
	if input.Role != "" && input.Actor.Role == domain.RoleAdmin {
		role, err := domain.ParseRole(input.Role)
		if err != nil {
			return nil, err
		}
		employee.Role = role
	}
	employee.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, employee)
	if err != nil {
		return nil, err
	}

	s.auditWrite(updated.ID, input.Actor.ID)
	return updated, nil
}

func (s *EmployeeService) Delete(ctx context.Context, id string, actor domain.Identity) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.auditWrite(id, actor.ID)
	s.logger.Info().Str("employee_id", id).Str("actor", actor.ID).Msg("employee deleted")
	return nil
}

func (s *EmployeeService) Search(ctx context.Context, query string) ([]*domain.Account, error) {
	if query == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.repo.Search(ctx, query)
}

func (s *EmployeeService) Stats(ctx context.Context) (*ports.EmployeeStats, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	male, err := s.repo.CountByGender(ctx, "Male")
	if err != nil {
		return nil, err
	}
	female, err := s.repo.CountByGender(ctx, "Female")
	if err != nil {
		return nil, err
	}
	byDesignation, err := s.repo.CountByDesignation(ctx)
	if err != nil {
		return nil, err
	}
	byCourse, err := s.repo.CountByCourse(ctx)
	if err != nil {
		return nil, err
	}

	return &ports.EmployeeStats{
		Total:         total,
		Male:          male,
		Female:        female,
		ByDesignation: byDesignation,
		ByCourse:      byCourse,
	}, nil
}

func (s *EmployeeService) HRStats(ctx context.Context) (*ports.HRStats, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	departments, err := s.repo.Designations(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := s.repo.RecentHires(ctx, recentHiresLimit)
	if err != nil {
		return nil, err
	}

	return &ports.HRStats{
		TotalEmployees: total,
		Departments:    departments,
		RecentHires:    recent,
	}, nil
}

func (s *EmployeeService) ManagerStats(ctx context.Context) (*ports.ManagerStats, error) {
	team, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &ports.ManagerStats{TeamMembers: team}, nil
}

func (s *EmployeeService) CEOStats(ctx context.Context) (*ports.CEOStats, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	departments, err := s.repo.Designations(ctx)
	if err != nil {
		return nil, err
	}
	return &ports.CEOStats{TotalEmployees: total, Departments: departments}, nil
}

func (s *EmployeeService) auditWrite(employeeID, actorID string) {
	s.audit.Enqueue(domain.AuditEvent{
		Subject:   employeeID,
		Action:    domain.AuditActionEmployeeWrite,
		Outcome:   domain.AuditOutcomeSuccess,
		Actor:     actorID,
		Timestamp: time.Now().UTC(),
	})
}
