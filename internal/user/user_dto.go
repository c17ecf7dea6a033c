package user

import "time"

type CreateUserRequest struct {
	Name       string `json:"userName" binding:"required"`
	Email      string `json:"userEmail" binding:"required,email"`
	Password   string `json:"userPassword" binding:"required,min=6"`
	Role       string `json:"userRole" binding:"required,oneof=admin worker it"`
	FullName   string `json:"userFullName" binding:"required"`
	Department string `json:"userDepartment" binding:"required"`
}

// UpdateUserRequest carries partial-field updates; nil means "leave as is".
type UpdateUserRequest struct {
	Name       *string `json:"userName"`
	Email      *string `json:"userEmail" binding:"omitempty,email"`
	Password   *string `json:"userPassword" binding:"omitempty,min=6"`
	Role       *string `json:"userRole" binding:"omitempty,oneof=admin worker it"`
	FullName   *string `json:"userFullName"`
	Department *string `json:"userDepartment"`
}

// UserResponse never carries the password hash.
type UserResponse struct {
	ID         string `json:"id"`
	Name       string `json:"userName"`
	Email      string `json:"userEmail"`
	Role       string `json:"userRole"`
	FullName   string `json:"userFullName"`
	Department string `json:"userDepartment"`
	HireDate   string `json:"userHireDate"`
	IsActive   bool   `json:"userIsActive"`
}

// Ref is the populated fragment other modules embed in their responses.
type Ref struct {
	ID       string `json:"id"`
	Name     string `json:"userName"`
	FullName string `json:"userFullName"`
	Email    string `json:"userEmail,omitempty"`
}

func MapToResponse(u User) UserResponse {
	return UserResponse{
		ID:         u.ID.String(),
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role,
		FullName:   u.FullName,
		Department: u.Department,
		HireDate:   u.HireDate.UTC().Format(time.RFC3339),
		IsActive:   u.IsActive,
	}
}

func MapToRef(u User) Ref {
	return Ref{
		ID:       u.ID.String(),
		Name:     u.Name,
		FullName: u.FullName,
	}
}
