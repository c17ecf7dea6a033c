package auth

import "rikimaka/internal/user"

type LoginRequest struct {
	Email    string `json:"userEmail" binding:"required,email"`
	Password string `json:"userPassword" binding:"required"`
}

type RegisterRequest struct {
	Name       string `json:"userName" binding:"required"`
	Email      string `json:"userEmail" binding:"required,email"`
	Password   string `json:"userPassword" binding:"required,min=6"`
	Role       string `json:"userRole" binding:"required,oneof=admin worker it"`
	FullName   string `json:"userFullName" binding:"required"`
	Department string `json:"userDepartment" binding:"required"`
}

type AuthResponse struct {
	Token string            `json:"token"`
	User  user.UserResponse `json:"user"`
}
