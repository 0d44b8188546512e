package handler

import "github.com/staffhub/hrms/internal/core/domain"

// --- Request types ---

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"     validate:"required"`
}

type resetPasswordRequest struct {
	Email       string `json:"email"       validate:"required,email"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

type updateProfileRequest struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty" validate:"omitempty,email"`
	Role  string `json:"role,omitempty"`
	Image string `json:"image,omitempty"`
}

// --- Response types ---

// userSummary is the account view returned by auth endpoints. The
// password hash is excluded by construction, not by serializer tag.
type userSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Employee bool   `json:"isEmployee"`
}

type authResponse struct {
	Success bool        `json:"success"`
	Token   string      `json:"token"`
	User    userSummary `json:"user"`
}

type ackResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type profileResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	User    userSummary `json:"user"`
}

func summarize(a *domain.Account) userSummary {
	return userSummary{
		ID:       a.ID,
		Name:     a.Name,
		Email:    a.Email,
		Role:     a.Role.String(),
		Employee: a.IsEmployee(),
	}
}
