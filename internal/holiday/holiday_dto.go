package holiday

import "time"

type CreateHolidayRequest struct {
	Date        string `json:"holidayDate" binding:"required"`
	Name        string `json:"holidayName" binding:"required"`
	Description string `json:"holidayDescription"`
}

type UpdateHolidayRequest struct {
	Date        *string `json:"holidayDate"`
	Name        *string `json:"holidayName"`
	Description *string `json:"holidayDescription"`
}

type HolidayResponse struct {
	ID          string `json:"id"`
	Date        string `json:"holidayDate"`
	Name        string `json:"holidayName"`
	Description string `json:"holidayDescription,omitempty"`
	IsActive    bool   `json:"holidayIsActive"`
	CreatedAt   string `json:"createdAt"`
}

func mapToResponse(h Holiday) HolidayResponse {
	return HolidayResponse{
		ID:          h.ID.String(),
		Date:        h.Date.Format("2006-01-02"),
		Name:        h.Name,
		Description: h.Description,
		IsActive:    h.IsActive,
		CreatedAt:   h.CreatedAt.UTC().Format(time.RFC3339),
	}
}
