package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/staffhub/hrms/internal/api/metrics"
	"github.com/staffhub/hrms/internal/core/ports"
)

// EmployeeHandler handles HTTP requests for employee management.
type EmployeeHandler struct {
	service ports.EmployeeService
}

func NewEmployeeHandler(service ports.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

// List returns all employees without password hashes.
//
// @Summary      List employees
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   employeeResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /api/employees [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	employees, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEmployeeResponses(employees))
}

// Count returns head-count statistics.
func (h *EmployeeHandler) Count(c echo.Context) error {
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}

	byDesignation, byCourse := toBuckets(stats.ByDesignation, stats.ByCourse)
	return c.JSON(http.StatusOK, employeeCountResponse{
		Total:         stats.Total,
		Male:          stats.Male,
		Female:        stats.Female,
		ByDesignation: byDesignation,
		ByCourse:      byCourse,
	})
}

// Search matches name, email or designation case-insensitively.
func (h *EmployeeHandler) Search(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "search query is required")
	}

	employees, err := h.service.Search(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEmployeeResponses(employees))
}

// Create provisions a new employee account.
//
// @Summary      Create an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createEmployeeRequest  true  "Employee details"
// @Success      201   {object}  createEmployeeResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/employees [post]
func (h *EmployeeHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	employee, err := h.service.Create(c.Request().Context(), ports.CreateEmployeeInput{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		Mobile:      req.Mobile,
		Designation: req.Designation,
		Gender:      req.Gender,
		Image:       req.Image,
		Courses:     req.Courses,
		Actor:       identity,
	})
	if err != nil {
		return err
	}

	metrics.EmployeesCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, createEmployeeResponse{
		Success:  true,
		Employee: toEmployeeResponse(employee),
	})
}

// Get returns a single employee by id.
func (h *EmployeeHandler) Get(c echo.Context) error {
	employee, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEmployeeResponse(employee))
}

// Update applies a partial update. Passwords cannot be changed here, and
// role changes require the admin role.
func (h *EmployeeHandler) Update(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	employee, err := h.service.Update(c.Request().Context(), ports.UpdateEmployeeInput{
		ID:          c.Param("id"),
		Name:        req.Name,
		Email:       req.Email,
		Mobile:      req.Mobile,
		Designation: req.Designation,
		Gender:      req.Gender,
		Image:       req.Image,
		Courses:     req.Courses,
		Role:        req.Role,
		Actor:       identity,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, createEmployeeResponse{
		Success:  true,
		Employee: toEmployeeResponse(employee),
	})
}

// Delete removes an employee record.
func (h *EmployeeHandler) Delete(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), identity); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Employee deleted successfully"})
}

// HRStats backs the HR dashboard.
func (h *EmployeeHandler) HRStats(c echo.Context) error {
	stats, err := h.service.HRStats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, hrStatsResponse{
		TotalEmployees: stats.TotalEmployees,
		Departments:    stats.Departments,
		RecentHires:    toEmployeeResponses(stats.RecentHires),
	})
}

// ManagerStats backs the manager dashboard.
func (h *EmployeeHandler) ManagerStats(c echo.Context) error {
	stats, err := h.service.ManagerStats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, managerStatsResponse{
		TeamMembers: stats.TeamMembers,
		Projects:    []string{},
		Performance: map[string]any{},
	})
}

// CEOStats backs the CEO dashboard.
func (h *EmployeeHandler) CEOStats(c echo.Context) error {
	stats, err := h.service.CEOStats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ceoStatsResponse{
		TotalEmployees: stats.TotalEmployees,
		Departments:    stats.Departments,
		Performance:    map[string]any{},
		Growth:         map[string]any{},
	})
}
