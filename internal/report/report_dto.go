package report

import "time"

type ActivityRequest struct {
	ProjectID   string  `json:"activityProject" binding:"required,uuid"`
	Description string  `json:"activityDescription" binding:"required"`
	Hours       float64 `json:"activityHours" binding:"required"`
	Status      string  `json:"activityStatus" binding:"required,oneof=completed in-progress blocked"`
}

type CreateReportRequest struct {
	// Optional: defaults to today and to the authenticated caller.
	Date       string            `json:"reportDate" binding:"omitempty"`
	UserID     string            `json:"reportUser" binding:"omitempty,uuid"`
	Activities []ActivityRequest `json:"reportActivities" binding:"required,min=1,dive"`
}

type UpdateReportRequest struct {
	Date *string `json:"reportDate"`
	// When present, replaces the full activity list.
	Activities []ActivityRequest `json:"reportActivities" binding:"omitempty,min=1,dive"`
}

type OwnerRef struct {
	ID       string `json:"id"`
	Name     string `json:"userName"`
	FullName string `json:"userFullName"`
}

type ProjectRef struct {
	ID   string `json:"id"`
	Name string `json:"projectName"`
}

type ActivityResponse struct {
	ID          string      `json:"id"`
	Project     *ProjectRef `json:"activityProject,omitempty"`
	Description string      `json:"activityDescription"`
	Hours       float64     `json:"activityHours"`
	Status      string      `json:"activityStatus"`
}

type ReportResponse struct {
	ID         string             `json:"id"`
	Date       string             `json:"reportDate"`
	Owner      *OwnerRef          `json:"reportUser,omitempty"`
	Activities []ActivityResponse `json:"reportActivities"`
	TotalHours float64            `json:"reportTotalHours"`
	CreatedAt  string             `json:"createdAt"`
}

// ProjectHours is one row of the hours-by-project aggregation.
type ProjectHours struct {
	ProjectName string  `json:"projectName"`
	TotalHours  float64 `json:"totalHours"`
	ReportCount int64   `json:"reportCount"`
}

func mapToResponse(r DailyReport) ReportResponse {
	activities := make([]ActivityResponse, len(r.Activities))
	for i, a := range r.Activities {
		activities[i] = ActivityResponse{
			ID:          a.ID.String(),
			Description: a.Description,
			Hours:       a.Hours,
			Status:      a.Status,
		}
		if a.Project != nil {
			activities[i].Project = &ProjectRef{
				ID:   a.Project.ID.String(),
				Name: a.Project.Name,
			}
		}
	}

	resp := ReportResponse{
		ID:         r.ID.String(),
		Date:       r.Date.Format("2006-01-02"),
		Activities: activities,
		TotalHours: r.TotalHours,
		CreatedAt:  r.CreatedAt.UTC().Format(time.RFC3339),
	}
	if r.User != nil {
		resp.Owner = &OwnerRef{
			ID:       r.User.ID.String(),
			Name:     r.User.Name,
			FullName: r.User.FullName,
		}
	}
	return resp
}

func mapToListResponse(reports []DailyReport) []ReportResponse {
	resp := make([]ReportResponse, len(reports))
	for i, r := range reports {
		resp[i] = mapToResponse(r)
	}
	return resp
}
