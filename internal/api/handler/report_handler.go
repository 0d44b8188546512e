package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/staffhub/hrms/internal/core/ports"
)

// ReportHandler serves the dashboard report endpoints. Apart from the
// department list the data is synthesized by the report service.
type ReportHandler struct {
	service ports.ReportService
}

func NewReportHandler(service ports.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// MonthlyAttendance returns the attendance calendar for one month.
//
// @Summary      Monthly attendance
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        year   path      int  true  "Year"
// @Param        month  path      int  true  "Month (1-12)"
// @Success      200    {object}  ports.MonthlyAttendance
// @Failure      400    {object}  map[string]string
// @Router       /api/attendance/monthly/{year}/{month} [get]
func (h *ReportHandler) MonthlyAttendance(c echo.Context) error {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid year or month parameters")
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid year or month parameters")
	}

	report, err := h.service.MonthlyAttendance(c.Request().Context(), year, month)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report)
}

// TodayAttendance returns today's attendance for the calling user only.
func (h *ReportHandler) TodayAttendance(c echo.Context) error {
	userID := c.Param("userId")
	if _, err := requireSelf(c, userID); err != nil {
		return err
	}

	today, err := h.service.TodayAttendance(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, today)
}

// Leaves returns leave requests and balance for the calling user only.
func (h *ReportHandler) Leaves(c echo.Context) error {
	userID := c.Param("userId")
	if _, err := requireSelf(c, userID); err != nil {
		return err
	}

	info, err := h.service.Leaves(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, info)
}

// Payslips returns the payslip list for the calling user only.
func (h *ReportHandler) Payslips(c echo.Context) error {
	userID := c.Param("userId")
	if _, err := requireSelf(c, userID); err != nil {
		return err
	}

	payslips, err := h.service.Payslips(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, payslips)
}

func (h *ReportHandler) SalaryDetails(c echo.Context) error {
	details, err := h.service.SalaryDetails(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, details)
}

func (h *ReportHandler) ManagerPerformance(c echo.Context) error {
	report, err := h.service.ManagerPerformance(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report)
}

func (h *ReportHandler) EmployeeTasks(c echo.Context) error {
	tasks, err := h.service.EmployeeTasks(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tasks)
}

func (h *ReportHandler) Courses(c echo.Context) error {
	courses, err := h.service.Courses(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, courses)
}

func (h *ReportHandler) Projects(c echo.Context) error {
	projects, err := h.service.Projects(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projects)
}

func (h *ReportHandler) AttendanceReport(c echo.Context) error {
	report, err := h.service.AttendanceReport(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report)
}

func (h *ReportHandler) Departments(c echo.Context) error {
	departments, err := h.service.Departments(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, departments)
}

func (h *ReportHandler) DepartmentStats(c echo.Context) error {
	stats, err := h.service.DepartmentStats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
