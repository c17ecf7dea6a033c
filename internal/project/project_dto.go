package project

import (
	"time"

	"rikimaka/internal/user"
)

type CreateProjectRequest struct {
	Name           string   `json:"projectName" binding:"required"`
	Description    string   `json:"projectDescription" binding:"required"`
	Budget         float64  `json:"projectBudget" binding:"min=0"`
	EstimatedHours float64  `json:"projectEstimatedHours" binding:"omitempty,min=0"`
	StartDate      string   `json:"projectStartDate" binding:"required"`
	EndDate        string   `json:"projectEndDate" binding:"required"`
	Status         string   `json:"projectStatus" binding:"omitempty,oneof=planning active completed cancelled"`
	AssignedUsers  []string `json:"projectAssignedUsers" binding:"omitempty,dive,uuid"`
}

type UpdateProjectRequest struct {
	Name           *string  `json:"projectName"`
	Description    *string  `json:"projectDescription"`
	Budget         *float64 `json:"projectBudget" binding:"omitempty,min=0"`
	EstimatedHours *float64 `json:"projectEstimatedHours" binding:"omitempty,min=0"`
	StartDate      *string  `json:"projectStartDate"`
	EndDate        *string  `json:"projectEndDate"`
	Status         *string  `json:"projectStatus" binding:"omitempty,oneof=planning active completed cancelled"`
}

type AssignUserRequest struct {
	UserID string `json:"userId" binding:"required,uuid"`
}

type ProjectResponse struct {
	ID             string     `json:"id"`
	Name           string     `json:"projectName"`
	Description    string     `json:"projectDescription"`
	Budget         float64    `json:"projectBudget"`
	EstimatedHours float64    `json:"projectEstimatedHours"`
	StartDate      string     `json:"projectStartDate"`
	EndDate        string     `json:"projectEndDate"`
	Status         string     `json:"projectStatus"`
	AssignedUsers  []user.Ref `json:"projectAssignedUsers"`
	CreatedBy      *user.Ref  `json:"projectCreatedBy,omitempty"`
	CreatedAt      string     `json:"createdAt"`
}

func mapToResponse(p Project) ProjectResponse {
	assigned := make([]user.Ref, len(p.AssignedUsers))
	for i, u := range p.AssignedUsers {
		assigned[i] = user.Ref{
			ID:       u.ID.String(),
			Name:     u.Name,
			FullName: u.FullName,
			Email:    u.Email,
		}
	}

	resp := ProjectResponse{
		ID:             p.ID.String(),
		Name:           p.Name,
		Description:    p.Description,
		Budget:         p.Budget,
		EstimatedHours: p.EstimatedHours,
		StartDate:      p.StartDate.Format("2006-01-02"),
		EndDate:        p.EndDate.Format("2006-01-02"),
		Status:         p.Status,
		AssignedUsers:  assigned,
		CreatedAt:      p.CreatedAt.UTC().Format(time.RFC3339),
	}
	if p.CreatedBy != nil {
		ref := user.MapToRef(*p.CreatedBy)
		resp.CreatedBy = &ref
	}
	return resp
}

func mapToListResponse(projects []Project) []ProjectResponse {
	resp := make([]ProjectResponse, len(projects))
	for i, p := range projects {
		resp[i] = mapToResponse(p)
	}
	return resp
}
