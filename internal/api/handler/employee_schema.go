package handler

import (
	"time"

	"github.com/staffhub/hrms/internal/core/domain"
	"github.com/staffhub/hrms/internal/core/ports"
)

type createEmployeeRequest struct {
	Name        string   `json:"name"        validate:"required"`
	Email       string   `json:"email"       validate:"required,email"`
	Password    string   `json:"password"    validate:"required,min=6"`
	Mobile      string   `json:"mobile"      validate:"required"`
	Designation string   `json:"designation" validate:"required"`
	Gender      string   `json:"gender"      validate:"required,oneof=Male Female Other"`
	Image       string   `json:"image"`
	Courses     []string `json:"courses"`
}

type updateEmployeeRequest struct {
	Name        string   `json:"name,omitempty"`
	Email       string   `json:"email,omitempty" validate:"omitempty,email"`
	Mobile      string   `json:"mobile,omitempty"`
	Designation string   `json:"designation,omitempty"`
	Gender      string   `json:"gender,omitempty"`
	Image       string   `json:"image,omitempty"`
	Courses     []string `json:"courses,omitempty"`
	Role        string   `json:"role,omitempty"`
}

// employeeResponse is the full employee view minus the password hash.
type employeeResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	Mobile      string    `json:"mobile"`
	Designation string    `json:"designation"`
	Gender      string    `json:"gender"`
	Image       string    `json:"image,omitempty"`
	Courses     []string  `json:"courses"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toEmployeeResponse(a *domain.Account) employeeResponse {
	courses := a.Courses
	if courses == nil {
		courses = []string{}
	}
	return employeeResponse{
		ID:          a.ID,
		Name:        a.Name,
		Email:       a.Email,
		Role:        a.Role.String(),
		Mobile:      a.Mobile,
		Designation: a.Designation,
		Gender:      a.Gender,
		Image:       a.Image,
		Courses:     courses,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func toEmployeeResponses(accounts []*domain.Account) []employeeResponse {
	out := make([]employeeResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, toEmployeeResponse(a))
	}
	return out
}

// bucketResponse keeps the aggregation key under "_id" as the original
// Mongo aggregation pipeline exposed it to the frontend.
type bucketResponse struct {
	ID    string `json:"_id"`
	Count int64  `json:"count"`
}

type employeeCountResponse struct {
	Total         int64            `json:"total"`
	Male          int64            `json:"male"`
	Female        int64            `json:"female"`
	ByDesignation []bucketResponse `json:"byDesignation"`
	ByCourse      []bucketResponse `json:"byCourse"`
}

type createEmployeeResponse struct {
	Success  bool             `json:"success"`
	Employee employeeResponse `json:"employee"`
}

type hrStatsResponse struct {
	TotalEmployees int64              `json:"totalEmployees"`
	Departments    []string           `json:"departments"`
	RecentHires    []employeeResponse `json:"recentHires"`
}

type managerStatsResponse struct {
	TeamMembers int64          `json:"teamMembers"`
	Projects    []string       `json:"projects"`
	Performance map[string]any `json:"performance"`
}

type ceoStatsResponse struct {
	TotalEmployees int64          `json:"totalEmployees"`
	Departments    []string       `json:"departments"`
	Performance    map[string]any `json:"performance"`
	Growth         map[string]any `json:"growth"`
}

func toBuckets(designations []ports.DesignationCount, courses []ports.CourseCount) ([]bucketResponse, []bucketResponse) {
	byDesignation := make([]bucketResponse, 0, len(designations))
	for _, d := range designations {
		byDesignation = append(byDesignation, bucketResponse{ID: d.Designation, Count: d.Count})
	}
	byCourse := make([]bucketResponse, 0, len(courses))
	for _, c := range courses {
		byCourse = append(byCourse, bucketResponse{ID: c.Course, Count: c.Count})
	}
	return byDesignation, byCourse
}
