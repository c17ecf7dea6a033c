package vacation

import "time"

type CreateVacationRequest struct {
	// Optional: workers always request for themselves, admins may file on
	// behalf of someone else.
	UserID    string `json:"vacationUser" binding:"omitempty,uuid"`
	StartDate string `json:"vacationStartDate" binding:"required"`
	EndDate   string `json:"vacationEndDate" binding:"required"`
	Reason    string `json:"vacationReason" binding:"required"`
}

type UpdateVacationRequest struct {
	StartDate *string `json:"vacationStartDate"`
	EndDate   *string `json:"vacationEndDate"`
	Reason    *string `json:"vacationReason"`
}

type DecideVacationRequest struct {
	Status     string  `json:"vacationStatus" binding:"required,oneof=approved rejected"`
	ApprovedBy string  `json:"vacationApprovedBy" binding:"omitempty,uuid"`
	Comments   *string `json:"vacationComments"`
}

// OwnerRef carries the populated owner fields the dashboards render.
type OwnerRef struct {
	ID         string `json:"id"`
	Name       string `json:"userName"`
	FullName   string `json:"userFullName"`
	Department string `json:"userDepartment,omitempty"`
}

type ApproverRef struct {
	ID       string `json:"id"`
	Name     string `json:"userName"`
	FullName string `json:"userFullName"`
}

type VacationResponse struct {
	ID           string       `json:"id"`
	Owner        *OwnerRef    `json:"vacationUser,omitempty"`
	StartDate    string       `json:"vacationStartDate"`
	EndDate      string       `json:"vacationEndDate"`
	Days         int          `json:"vacationDays"`
	Reason       string       `json:"vacationReason"`
	Status       string       `json:"vacationStatus"`
	ApprovedBy   *ApproverRef `json:"vacationApprovedBy,omitempty"`
	ApprovalDate *string      `json:"vacationApprovalDate,omitempty"`
	Comments     *string      `json:"vacationComments,omitempty"`
	CreatedAt    string       `json:"createdAt"`
}

func mapToResponse(v Vacation) VacationResponse {
	resp := VacationResponse{
		ID:        v.ID.String(),
		StartDate: v.StartDate.Format("2006-01-02"),
		EndDate:   v.EndDate.Format("2006-01-02"),
		Days:      v.Days,
		Reason:    v.Reason,
		Status:    v.Status,
		Comments:  v.Comments,
		CreatedAt: v.CreatedAt.UTC().Format(time.RFC3339),
	}
	if v.User != nil {
		resp.Owner = &OwnerRef{
			ID:         v.User.ID.String(),
			Name:       v.User.Name,
			FullName:   v.User.FullName,
			Department: v.User.Department,
		}
	}
	if v.ApprovedBy != nil {
		resp.ApprovedBy = &ApproverRef{
			ID:       v.ApprovedBy.ID.String(),
			Name:     v.ApprovedBy.Name,
			FullName: v.ApprovedBy.FullName,
		}
	}
	if v.ApprovalDate != nil {
		formatted := v.ApprovalDate.UTC().Format(time.RFC3339)
		resp.ApprovalDate = &formatted
	}
	return resp
}

func mapToListResponse(vacations []Vacation) []VacationResponse {
	resp := make([]VacationResponse, len(vacations))
	for i, v := range vacations {
		resp[i] = mapToResponse(v)
	}
	return resp
}
