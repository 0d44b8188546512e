package ports

import (
	"context"
	"time"
)

// The report types mirror the dashboard payloads the frontend consumes.
// The data behind them is synthesized, not persisted; see ReportService.

type AttendanceDay struct {
	Date       time.Time `json:"date"`
	Status     string    `json:"status"`
	ClockIn    string    `json:"clockIn"`
	ClockOut   string    `json:"clockOut"`
	TotalHours int       `json:"totalHours"`
}

type AttendanceSummary struct {
	TotalDays int `json:"totalDays"`
	Present   int `json:"present"`
	Absent    int `json:"absent"`
	Leaves    int `json:"leaves"`
	Holidays  int `json:"holidays"`
}

type MonthlyAttendance struct {
	Year       int               `json:"year"`
	Month      int               `json:"month"`
	Attendance []AttendanceDay   `json:"attendance"`
	Summary    AttendanceSummary `json:"summary"`
}

type TodayAttendance struct {
	Date       time.Time `json:"date"`
	Status     string    `json:"status"`
	ClockIn    string    `json:"clockIn"`
	ClockOut   *string   `json:"clockOut"`
	TotalHours *int      `json:"totalHours"`
}

type LeaveRequest struct {
	ID        string    `json:"_id"`
	Type      string    `json:"type"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Status    string    `json:"status"`
	Reason    string    `json:"reason"`
}

type LeaveBalance struct {
	Casual int `json:"casual"`
	Sick   int `json:"sick"`
	Annual int `json:"annual"`
}

type LeaveInfo struct {
	Requests []LeaveRequest `json:"requests"`
	Balance  LeaveBalance   `json:"balance"`
}

type Payslip struct {
	ID          string    `json:"_id"`
	Month       string    `json:"month"`
	BasicSalary int       `json:"basicSalary"`
	Allowances  int       `json:"allowances"`
	Deductions  int       `json:"deductions"`
	NetSalary   int       `json:"netSalary"`
	Status      string    `json:"status"`
	PaidOn      time.Time `json:"paidOn"`
}

type SalaryDetails struct {
	BasicSalary     int            `json:"basicSalary"`
	TotalAllowances int            `json:"totalAllowances"`
	NetSalary       int            `json:"netSalary"`
	Earnings        map[string]int `json:"earnings"`
	Deductions      map[string]int `json:"deductions"`
}

type PerformanceOverview struct {
	AverageRating int `json:"averageRating"`
}

type PerformanceReport struct {
	Overview PerformanceOverview `json:"overview"`
	Metrics  []string            `json:"metrics"`
	Trends   []string            `json:"trends"`
}

type TaskItem struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	DueDate     time.Time `json:"dueDate"`
}

type Course struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Duration string `json:"duration"`
}

type Project struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Status   string `json:"status"`
	Progress int    `json:"progress"`
}

type AttendanceBreakdown struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Leave   int `json:"leave"`
}

type AttendanceReport struct {
	Attendance AttendanceBreakdown `json:"attendance"`
	Trends     []string            `json:"trends"`
}

type DepartmentSummary struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	EmployeeCount int64  `json:"employeeCount"`
}

type DepartmentStats struct {
	TotalEmployees int64 `json:"totalEmployees"`
	Departments    int   `json:"departments"`
	Budget         int   `json:"budget"`
	Expenses       int   `json:"expenses"`
}

// ReportService serves the dashboard endpoints. Everything except the
// department list is synthesized mock data; the department list is
// derived from live designation counts over the accounts collection.
type ReportService interface {
	MonthlyAttendance(ctx context.Context, year, month int) (*MonthlyAttendance, error)
	TodayAttendance(ctx context.Context, userID string) (*TodayAttendance, error)
	Leaves(ctx context.Context, userID string) (*LeaveInfo, error)
	Payslips(ctx context.Context, userID string) ([]Payslip, error)
	SalaryDetails(ctx context.Context) (*SalaryDetails, error)
	ManagerPerformance(ctx context.Context) (*PerformanceReport, error)
	EmployeeTasks(ctx context.Context, employeeID string) ([]TaskItem, error)
	Courses(ctx context.Context) ([]Course, error)
	Projects(ctx context.Context) ([]Project, error)
	AttendanceReport(ctx context.Context) (*AttendanceReport, error)
	Departments(ctx context.Context) ([]DepartmentSummary, error)
	DepartmentStats(ctx context.Context) (*DepartmentStats, error)
}
