package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/staffhub/hrms/internal/core/domain"
	"github.com/staffhub/hrms/internal/core/ports"
)

const absenceRate = 0.1

// ReportService serves the dashboard endpoints with synthesized data.
// The attendance calendar is seeded by (year, month) so repeated reads of
// the same month agree with each other and with their own summary.
type ReportService struct {
	employees ports.EmployeeRepository
	now       func() time.Time
}

func NewReportService(employees ports.EmployeeRepository) *ReportService {
	return &ReportService{employees: employees, now: time.Now}
}

func (s *ReportService) MonthlyAttendance(_ context.Context, year, month int) (*ports.MonthlyAttendance, error) {
	if year < 1 || month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: invalid year or month", domain.ErrInvalidInput)
	}

	rng := rand.New(rand.NewSource(int64(year)*100 + int64(month)))
	daysInMonth := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()

	days := make([]ports.AttendanceDay, 0, daysInMonth)
	present := 0
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		status := "present"
		if rng.Float64() < absenceRate {
			status = "absent"
		} else {
			present++
		}
		days = append(days, ports.AttendanceDay{
			Date:       date,
			Status:     status,
			ClockIn:    "09:00 AM",
			ClockOut:   "05:00 PM",
			TotalHours: 8,
		})
	}

	return &ports.MonthlyAttendance{
		Year:       year,
		Month:      month,
		Attendance: days,
		Summary: ports.AttendanceSummary{
			TotalDays: len(days),
			Present:   present,
			Absent:    len(days) - present,
			Leaves:    0,
			Holidays:  daysInMonth - len(days),
		},
	}, nil
}

func (s *ReportService) TodayAttendance(_ context.Context, _ string) (*ports.TodayAttendance, error) {
	return &ports.TodayAttendance{
		Date:    s.now().UTC(),
		Status:  "present",
		ClockIn: "09:00 AM",
	}, nil
}

func (s *ReportService) Leaves(_ context.Context, _ string) (*ports.LeaveInfo, error) {
	now := s.now().UTC()
	return &ports.LeaveInfo{
		Requests: []ports.LeaveRequest{
			{
				ID:        "1",
				Type:      "annual",
				StartDate: now,
				EndDate:   now.Add(24 * time.Hour),
				Status:    "pending",
				Reason:    "Family vacation",
			},
		},
		Balance: ports.LeaveBalance{Casual: 10, Sick: 7, Annual: 14},
	}, nil
}

func (s *ReportService) Payslips(_ context.Context, _ string) ([]ports.Payslip, error) {
	now := s.now().UTC()
	return []ports.Payslip{
		{
			ID:          "1",
			Month:       now.AddDate(0, -1, 0).Format("January 2006"),
			BasicSalary: 5000,
			Allowances:  1000,
			Deductions:  500,
			NetSalary:   5500,
			Status:      "paid",
			PaidOn:      now,
		},
	}, nil
}

func (s *ReportService) SalaryDetails(_ context.Context) (*ports.SalaryDetails, error) {
	return &ports.SalaryDetails{
		BasicSalary:     5000,
		TotalAllowances: 1000,
		NetSalary:       5500,
		Earnings:        map[string]int{"basic": 5000, "bonus": 500},
		Deductions:      map[string]int{"tax": 500, "insurance": 200},
	}, nil
}

func (s *ReportService) ManagerPerformance(_ context.Context) (*ports.PerformanceReport, error) {
	return &ports.PerformanceReport{
		Overview: ports.PerformanceOverview{AverageRating: 75},
		Metrics:  []string{},
		Trends:   []string{},
	}, nil
}

func (s *ReportService) EmployeeTasks(_ context.Context, _ string) ([]ports.TaskItem, error) {
	now := s.now().UTC()
	return []ports.TaskItem{
		{
			ID:          "1",
			Title:       "Complete Project Documentation",
			Description: "Write technical documentation for the new feature",
			Status:      "in_progress",
			Priority:    "high",
			DueDate:     now.AddDate(0, 0, 7),
		},
		{
			ID:          "2",
			Title:       "Code Review",
			Description: "Review pull requests from team members",
			Status:      "pending",
			Priority:    "medium",
			DueDate:     now.AddDate(0, 0, 3),
		},
	}, nil
}

func (s *ReportService) Courses(_ context.Context) ([]ports.Course, error) {
	return []ports.Course{
		{ID: 1, Title: "Leadership Training", Duration: "2 weeks"},
		{ID: 2, Title: "Technical Skills", Duration: "4 weeks"},
	}, nil
}

func (s *ReportService) Projects(_ context.Context) ([]ports.Project, error) {
	return []ports.Project{
		{ID: 1, Name: "Project 1", Status: "active", Progress: 75},
	}, nil
}

func (s *ReportService) AttendanceReport(_ context.Context) (*ports.AttendanceReport, error) {
	return &ports.AttendanceReport{
		Attendance: ports.AttendanceBreakdown{Present: 85, Absent: 10, Leave: 5},
		Trends:     []string{},
	}, nil
}

// Departments derives the department list from live designation counts;
// when no employees exist yet it falls back to the sample list the
// frontend expects.
func (s *ReportService) Departments(ctx context.Context) ([]ports.DepartmentSummary, error) {
	counts, err := s.employees.CountByDesignation(ctx)
	if err != nil {
		return nil, err
	}
	if len(counts) == 0 {
		return []ports.DepartmentSummary{
			{ID: "1", Name: "Engineering", EmployeeCount: 0},
			{ID: "2", Name: "HR", EmployeeCount: 0},
			{ID: "3", Name: "Marketing", EmployeeCount: 0},
		}, nil
	}

	departments := make([]ports.DepartmentSummary, 0, len(counts))
	for i, c := range counts {
		departments = append(departments, ports.DepartmentSummary{
			ID:            fmt.Sprintf("%d", i+1),
			Name:          c.Designation,
			EmployeeCount: c.Count,
		})
	}
	return departments, nil
}

func (s *ReportService) DepartmentStats(ctx context.Context) (*ports.DepartmentStats, error) {
	total, err := s.employees.Count(ctx)
	if err != nil {
		return nil, err
	}
	designations, err := s.employees.Designations(ctx)
	if err != nil {
		return nil, err
	}
	return &ports.DepartmentStats{
		TotalEmployees: total,
		Departments:    len(designations),
		Budget:         100000,
		Expenses:       75000,
	}, nil
}
