package vacationperiod

type CreatePeriodRequest struct {
	Name        string `json:"periodName" binding:"required"`
	StartDate   string `json:"periodStartDate" binding:"required"`
	EndDate     string `json:"periodEndDate" binding:"required"`
	Description string `json:"periodDescription"`
}

type UpdatePeriodRequest struct {
	Name        *string `json:"periodName"`
	StartDate   *string `json:"periodStartDate"`
	EndDate     *string `json:"periodEndDate"`
	Description *string `json:"periodDescription"`
}

type PeriodResponse struct {
	ID          string `json:"id"`
	Name        string `json:"periodName"`
	StartDate   string `json:"periodStartDate"`
	EndDate     string `json:"periodEndDate"`
	Description string `json:"periodDescription,omitempty"`
	IsActive    bool   `json:"periodIsActive"`
}

func mapToResponse(p VacationPeriod) PeriodResponse {
	return PeriodResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		StartDate:   p.StartDate.Format("2006-01-02"),
		EndDate:     p.EndDate.Format("2006-01-02"),
		Description: p.Description,
		IsActive:    p.IsActive,
	}
}
