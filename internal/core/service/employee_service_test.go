package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/staffhub/hrms/internal/core/domain"
	"github.com/staffhub/hrms/internal/core/ports"
)

type stubEmployeeRepo struct {
	employees map[string]*domain.Account
	nextID    int
}

func newStubEmployeeRepo() *stubEmployeeRepo {
	return &stubEmployeeRepo{employees: make(map[string]*domain.Account)}
}

func (r *stubEmployeeRepo) List(_ context.Context) ([]*domain.Account, error) {
	out := make([]*domain.Account, 0, len(r.employees))
	for _, e := range r.employees {
		out = append(out, cloneAccount(e))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubEmployeeRepo) FindByID(_ context.Context, id string) (*domain.Account, error) {
	e, ok := r.employees[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return cloneAccount(e), nil
}

func (r *stubEmployeeRepo) Create(_ context.Context, employee *domain.Account) (*domain.Account, error) {
	for _, e := range r.employees {
		if e.Email == employee.Email {
			return nil, domain.ErrAccountExists
		}
	}
	r.nextID++
	copy := cloneAccount(employee)
	copy.ID = fmt.Sprintf("emp_%d", r.nextID)
	r.employees[copy.ID] = cloneAccount(copy)
	return cloneAccount(copy), nil
}

func (r *stubEmployeeRepo) Update(_ context.Context, employee *domain.Account) (*domain.Account, error) {
	if _, ok := r.employees[employee.ID]; !ok {
		return nil, domain.ErrAccountNotFound
	}
	r.employees[employee.ID] = cloneAccount(employee)
	return cloneAccount(employee), nil
}

func (r *stubEmployeeRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.employees[id]; !ok {
		return domain.ErrAccountNotFound
	}
	delete(r.employees, id)
	return nil
}

func (r *stubEmployeeRepo) Search(_ context.Context, query string) ([]*domain.Account, error) {
	q := strings.ToLower(query)
	var out []*domain.Account
	for _, e := range r.employees {
		if strings.Contains(strings.ToLower(e.Name), q) ||
			strings.Contains(strings.ToLower(e.Email), q) ||
			strings.Contains(strings.ToLower(e.Designation), q) {
			out = append(out, cloneAccount(e))
		}
	}
	return out, nil
}

func (r *stubEmployeeRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.employees)), nil
}

func (r *stubEmployeeRepo) CountByGender(_ context.Context, gender string) (int64, error) {
	var n int64
	for _, e := range r.employees {
		if e.Gender == gender {
			n++
		}
	}
	return n, nil
}

func (r *stubEmployeeRepo) CountByDesignation(_ context.Context) ([]ports.DesignationCount, error) {
	counts := make(map[string]int64)
	for _, e := range r.employees {
		counts[e.Designation]++
	}
	out := make([]ports.DesignationCount, 0, len(counts))
	for d, n := range counts {
		out = append(out, ports.DesignationCount{Designation: d, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Designation < out[j].Designation })
	return out, nil
}

func (r *stubEmployeeRepo) CountByCourse(_ context.Context) ([]ports.CourseCount, error) {
	counts := make(map[string]int64)
	for _, e := range r.employees {
		for _, c := range e.Courses {
			counts[c]++
		}
	}
	out := make([]ports.CourseCount, 0, len(counts))
	for c, n := range counts {
		out = append(out, ports.CourseCount{Course: c, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Course < out[j].Course })
	return out, nil
}

func (r *stubEmployeeRepo) Designations(_ context.Context) ([]string, error) {
	seen := make(map[string]struct{})
	var out []string
	for _, e := range r.employees {
		if _, ok := seen[e.Designation]; !ok {
			seen[e.Designation] = struct{}{}
			out = append(out, e.Designation)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (r *stubEmployeeRepo) RecentHires(_ context.Context, limit int) ([]*domain.Account, error) {
	all, _ := r.List(context.Background())
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func newEmployeeService(repo ports.EmployeeRepository, audit ports.AuditSink) *EmployeeService {
	return NewEmployeeService(repo, audit, zerolog.Nop())
}

func hrActor() domain.Identity {
	return domain.Identity{ID: "hr_1", Role: domain.RoleHR}
}

func TestEmployeeService_Create_ForcesEmployeeRole(t *testing.T) {
	repo := newStubEmployeeRepo()
	svc := newEmployeeService(repo, nil)

	created, err := svc.Create(context.Background(), ports.CreateEmployeeInput{
		Name:        "Alice",
		Email:       "Alice@Example.com",
		Password:    "pass123",
		Designation: "Engineer",
		Gender:      "Female",
		Actor:       hrActor(),
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.Role != domain.RoleEmployee {
		t.Fatalf("provisioned employees must start as employee, got %q", created.Role)
	}
	if created.Kind != domain.KindEmployee {
		t.Fatalf("expected employee kind, got %q", created.Kind)
	}
	if created.Email != "alice@example.com" {
		t.Fatalf("expected folded email, got %q", created.Email)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestEmployeeService_Create_Validation(t *testing.T) {
	repo := newStubEmployeeRepo()
	svc := newEmployeeService(repo, nil)

	if _, err := svc.Create(context.Background(), ports.CreateEmployeeInput{
		Email:    "a@example.com",
		Password: "pass123",
		Actor:    hrActor(),
	}); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for missing name, got %v", err)
	}

	if _, err := svc.Create(context.Background(), ports.CreateEmployeeInput{
		Name:     "Bob",
		Email:    "b@example.com",
		Password: "short",
		Actor:    hrActor(),
	}); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for short password, got %v", err)
	}
}

func TestEmployeeService_Create_DuplicateEmail(t *testing.T) {
	repo := newStubEmployeeRepo()
	svc := newEmployeeService(repo, nil)

	input := ports.CreateEmployeeInput{Name: "Bob", Email: "bob@example.com", Password: "pass123", Actor: hrActor()}
	if _, err := svc.Create(context.Background(), input); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), input); err != domain.ErrAccountExists {
		t.Fatalf("expected ErrAccountExists, got %v", err)
	}
}

func TestEmployeeService_Update_RoleChangeRequiresAdmin(t *testing.T) {
	repo := newStubEmployeeRepo()
	svc := newEmployeeService(repo, nil)

	created, err := svc.Create(context.Background(), ports.CreateEmployeeInput{
		Name: "Carol", Email: "carol@example.com", Password: "pass123", Actor: hrActor(),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.Update(context.Background(), ports.UpdateEmployeeInput{
		ID:    created.ID,
		Role:  "manager",
		Actor: hrActor(),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Role != domain.RoleEmployee {
		t.Fatalf("hr must not change roles, got %q", updated.Role)
	}

	updated, err = svc.Update(context.Background(), ports.UpdateEmployeeInput{
		ID:    created.ID,
		Role:  "manager",
		Actor: domain.Identity{ID: "admin_1", Role: domain.RoleAdmin},
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Role != domain.RoleManager {
		t.Fatalf("admin role change not applied, got %q", updated.Role)
	}
}

func TestEmployeeService_Update_PartialFields(t *testing.T) {
	repo := newStubEmployeeRepo()
	svc := newEmployeeService(repo, nil)

	created, err := svc.Create(context.Background(), ports.CreateEmployeeInput{
		Name: "Dan", Email: "dan@example.com", Password: "pass123",
		Designation: "Engineer", Mobile: "111", Actor: hrActor(),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.Update(context.Background(), ports.UpdateEmployeeInput{
		ID:     created.ID,
		Mobile: "222",
		Actor:  hrActor(),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Mobile != "222" {
		t.Fatalf("mobile not updated: %q", updated.Mobile)
	}
	if updated.Designation != "Engineer" || updated.Name != "Dan" {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
}

func TestEmployeeService_Update_NotFound(t *testing.T) {
	repo := newStubEmployeeRepo()
	svc := newEmployeeService(repo, nil)

	if _, err := svc.Update(context.Background(), ports.UpdateEmployeeInput{
		ID: "missing", Name: "X", Actor: hrActor(),
	}); err != domain.ErrAccountNotFound {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestEmployeeService_Delete(t *testing.T) {
	repo := newStubEmployeeRepo()
	sink := &captureSink{}
	svc := newEmployeeService(repo, sink)

	created, err := svc.Create(context.Background(), ports.CreateEmployeeInput{
		Name: "Eve", Email: "eve@example.com", Password: "pass123", Actor: hrActor(),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID, hrActor()); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.Get(context.Background(), created.ID); err != domain.ErrAccountNotFound {
		t.Fatalf("expected ErrAccountNotFound after delete, got %v", err)
	}

	last := sink.events[len(sink.events)-1]
	if last.Action != domain.AuditActionEmployeeWrite || last.Actor != "hr_1" {
		t.Fatalf("unexpected audit event: %+v", last)
	}
}

func TestEmployeeService_Search_EmptyQuery(t *testing.T) {
	repo := newStubEmployeeRepo()
	svc := newEmployeeService(repo, nil)

	if _, err := svc.Search(context.Background(), ""); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestEmployeeService_Stats(t *testing.T) {
	repo := newStubEmployeeRepo()
	svc := newEmployeeService(repo, nil)

	seed := []ports.CreateEmployeeInput{
		{Name: "A", Email: "a@x.com", Password: "pass123", Gender: "Male", Designation: "Engineer", Courses: []string{"Go"}, Actor: hrActor()},
		{Name: "B", Email: "b@x.com", Password: "pass123", Gender: "Female", Designation: "Engineer", Courses: []string{"Go", "SQL"}, Actor: hrActor()},
		{Name: "C", Email: "c@x.com", Password: "pass123", Gender: "Female", Designation: "Designer", Actor: hrActor()},
	}
	for _, in := range seed {
		if _, err := svc.Create(context.Background(), in); err != nil {
			t.Fatalf("seed create failed: %v", err)
		}
	}

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats returned error: %v", err)
	}
	if stats.Total != 3 || stats.Male != 1 || stats.Female != 2 {
		t.Fatalf("unexpected totals: %+v", stats)
	}
	if len(stats.ByDesignation) != 2 {
		t.Fatalf("expected 2 designation buckets, got %d", len(stats.ByDesignation))
	}
	for _, b := range stats.ByCourse {
		if b.Course == "Go" && b.Count != 2 {
			t.Fatalf("expected 2 in Go bucket, got %d", b.Count)
		}
	}
}

func TestEmployeeService_HRStats(t *testing.T) {
	repo := newStubEmployeeRepo()
	svc := newEmployeeService(repo, nil)

	for i := 0; i < 7; i++ {
		if _, err := svc.Create(context.Background(), ports.CreateEmployeeInput{
			Name:        fmt.Sprintf("Emp %d", i),
			Email:       fmt.Sprintf("emp%d@x.com", i),
			Password:    "pass123",
			Designation: "Engineer",
			Actor:       hrActor(),
		}); err != nil {
			t.Fatalf("seed create failed: %v", err)
		}
	}

	stats, err := svc.HRStats(context.Background())
	if err != nil {
		t.Fatalf("HRStats returned error: %v", err)
	}
	if stats.TotalEmployees != 7 {
		t.Fatalf("expected 7 employees, got %d", stats.TotalEmployees)
	}
	if len(stats.RecentHires) != recentHiresLimit {
		t.Fatalf("expected %d recent hires, got %d", recentHiresLimit, len(stats.RecentHires))
	}
	if len(stats.Departments) != 1 || stats.Departments[0] != "Engineer" {
		t.Fatalf("unexpected departments: %v", stats.Departments)
	}
}
