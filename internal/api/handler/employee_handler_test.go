package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/staffhub/hrms/internal/core/domain"
	"github.com/staffhub/hrms/internal/core/ports"
)

type stubEmployeeService struct {
	listFn   func(ctx context.Context) ([]*domain.Account, error)
	getFn    func(ctx context.Context, id string) (*domain.Account, error)
	createFn func(ctx context.Context, input ports.CreateEmployeeInput) (*domain.Account, error)
	updateFn func(ctx context.Context, input ports.UpdateEmployeeInput) (*domain.Account, error)
	deleteFn func(ctx context.Context, id string, actor domain.Identity) error
	searchFn func(ctx context.Context, query string) ([]*domain.Account, error)
	statsFn  func(ctx context.Context) (*ports.EmployeeStats, error)
}

func (s *stubEmployeeService) List(ctx context.Context) ([]*domain.Account, error) {
	return s.listFn(ctx)
}

func (s *stubEmployeeService) Get(ctx context.Context, id string) (*domain.Account, error) {
	return s.getFn(ctx, id)
}

func (s *stubEmployeeService) Create(ctx context.Context, input ports.CreateEmployeeInput) (*domain.Account, error) {
	return s.createFn(ctx, input)
}

func (s *stubEmployeeService) Update(ctx context.Context, input ports.UpdateEmployeeInput) (*domain.Account, error) {
	return s.updateFn(ctx, input)
}

func (s *stubEmployeeService) Delete(ctx context.Context, id string, actor domain.Identity) error {
	return s.deleteFn(ctx, id, actor)
}

func (s *stubEmployeeService) Search(ctx context.Context, query string) ([]*domain.Account, error) {
	return s.searchFn(ctx, query)
}

func (s *stubEmployeeService) Stats(ctx context.Context) (*ports.EmployeeStats, error) {
	return s.statsFn(ctx)
}

func (s *stubEmployeeService) HRStats(context.Context) (*ports.HRStats, error) {
	return &ports.HRStats{}, nil
}

func (s *stubEmployeeService) ManagerStats(context.Context) (*ports.ManagerStats, error) {
	return &ports.ManagerStats{}, nil
}

func (s *stubEmployeeService) CEOStats(context.Context) (*ports.CEOStats, error) {
	return &ports.CEOStats{}, nil
}

func TestEmployeeHandler_List(t *testing.T) {
	stub := &stubEmployeeService{
		listFn: func(ctx context.Context) ([]*domain.Account, error) {
			return []*domain.Account{
				{ID: "emp_1", Name: "Alice", Role: domain.RoleEmployee, Kind: domain.KindEmployee},
			}, nil
		},
	}
	h := NewEmployeeHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/api/employees", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 || resp[0]["name"] != "Alice" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if _, leaked := resp[0]["password"]; leaked {
		t.Fatalf("password must never be serialized")
	}
	if courses, ok := resp[0]["courses"].([]any); !ok || courses == nil {
		t.Fatalf("courses must serialize as an array, got %v", resp[0]["courses"])
	}
}

func TestEmployeeHandler_Search_MissingQuery(t *testing.T) {
	stub := &stubEmployeeService{
		searchFn: func(ctx context.Context, query string) ([]*domain.Account, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewEmployeeHandler(stub)

	c, _ := newTestContext(t, http.MethodGet, "/api/employees/search", "")
	err := h.Search(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestEmployeeHandler_Search(t *testing.T) {
	stub := &stubEmployeeService{
		searchFn: func(ctx context.Context, query string) ([]*domain.Account, error) {
			if query != "ali" {
				t.Fatalf("unexpected query: %q", query)
			}
			return []*domain.Account{{ID: "emp_1", Name: "Alice"}}, nil
		},
	}
	h := NewEmployeeHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/api/employees/search?q=ali", "")
	if err := h.Search(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestEmployeeHandler_Create(t *testing.T) {
	stub := &stubEmployeeService{
		createFn: func(ctx context.Context, input ports.CreateEmployeeInput) (*domain.Account, error) {
			if input.Actor.ID != "hr_1" {
				t.Fatalf("actor not propagated: %+v", input.Actor)
			}
			return &domain.Account{
				ID:          "emp_1",
				Name:        input.Name,
				Email:       input.Email,
				Role:        domain.RoleEmployee,
				Kind:        domain.KindEmployee,
				Designation: input.Designation,
			}, nil
		},
	}
	h := NewEmployeeHandler(stub)

	body := `{"name":"Alice","email":"alice@example.com","password":"pass123","mobile":"12345","designation":"Engineer","gender":"Female"}`
	c, rec := newTestContext(t, http.MethodPost, "/api/employees", body)
	c.Set("identity", domain.Identity{ID: "hr_1", Role: domain.RoleHR})

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["success"] != true {
		t.Fatalf("unexpected response: %+v", resp)
	}
	employee, ok := resp["employee"].(map[string]any)
	if !ok || employee["role"] != "employee" {
		t.Fatalf("unexpected employee payload: %+v", employee)
	}
}

func TestEmployeeHandler_Create_InvalidGender(t *testing.T) {
	stub := &stubEmployeeService{
		createFn: func(ctx context.Context, input ports.CreateEmployeeInput) (*domain.Account, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewEmployeeHandler(stub)

	body := `{"name":"Alice","email":"alice@example.com","password":"pass123","mobile":"12345","designation":"Engineer","gender":"X"}`
	c, _ := newTestContext(t, http.MethodPost, "/api/employees", body)
	c.Set("identity", domain.Identity{ID: "hr_1", Role: domain.RoleHR})

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestEmployeeHandler_Update_PassesPathID(t *testing.T) {
	stub := &stubEmployeeService{
		updateFn: func(ctx context.Context, input ports.UpdateEmployeeInput) (*domain.Account, error) {
			if input.ID != "emp_7" {
				t.Fatalf("expected path id, got %q", input.ID)
			}
			return &domain.Account{ID: input.ID, Name: input.Name, Role: domain.RoleEmployee}, nil
		},
	}
	h := NewEmployeeHandler(stub)

	c, rec := newTestContext(t, http.MethodPut, "/api/employees/emp_7", `{"name":"Renamed"}`)
	c.SetParamNames("id")
	c.SetParamValues("emp_7")
	c.Set("identity", domain.Identity{ID: "hr_1", Role: domain.RoleHR})

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestEmployeeHandler_Delete(t *testing.T) {
	stub := &stubEmployeeService{
		deleteFn: func(ctx context.Context, id string, actor domain.Identity) error {
			if id != "emp_3" || actor.ID != "admin_1" {
				t.Fatalf("unexpected args: %s %s", id, actor.ID)
			}
			return nil
		},
	}
	h := NewEmployeeHandler(stub)

	c, rec := newTestContext(t, http.MethodDelete, "/api/employees/emp_3", "")
	c.SetParamNames("id")
	c.SetParamValues("emp_3")
	c.Set("identity", domain.Identity{ID: "admin_1", Role: domain.RoleAdmin})

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Employee deleted successfully" {
		t.Fatalf("unexpected message: %q", resp["message"])
	}
}

func TestEmployeeHandler_Delete_NotFound(t *testing.T) {
	stub := &stubEmployeeService{
		deleteFn: func(ctx context.Context, id string, actor domain.Identity) error {
			return domain.ErrAccountNotFound
		},
	}
	h := NewEmployeeHandler(stub)

	c, _ := newTestContext(t, http.MethodDelete, "/api/employees/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")
	c.Set("identity", domain.Identity{ID: "admin_1", Role: domain.RoleAdmin})

	if err := h.Delete(c); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound passthrough, got %v", err)
	}
}

func TestEmployeeHandler_Count(t *testing.T) {
	stub := &stubEmployeeService{
		statsFn: func(ctx context.Context) (*ports.EmployeeStats, error) {
			return &ports.EmployeeStats{
				Total:  3,
				Male:   1,
				Female: 2,
				ByDesignation: []ports.DesignationCount{
					{Designation: "Engineer", Count: 2},
				},
			}, nil
		},
	}
	h := NewEmployeeHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/api/employees/count", "")
	if err := h.Count(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["total"] != float64(3) {
		t.Fatalf("unexpected total: %v", resp["total"])
	}
	buckets, ok := resp["byDesignation"].([]any)
	if !ok || len(buckets) != 1 {
		t.Fatalf("unexpected buckets: %v", resp["byDesignation"])
	}
	bucket := buckets[0].(map[string]any)
	if bucket["_id"] != "Engineer" {
		t.Fatalf("aggregation key must serialize as _id, got %+v", bucket)
	}
}
