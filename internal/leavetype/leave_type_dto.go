package leavetype

type CreateLeaveTypeRequest struct {
	Name               string  `json:"name" binding:"required,max=100"`
	DefaultDuration    float64 `json:"default_duration" binding:"gte=0"`
	RequiresAttachment bool    `json:"requires_attachment"`
	Description        string  `json:"description"`
}

type UpdateLeaveTypeRequest struct {
	Name               string  `json:"name" binding:"required,max=100"`
	DefaultDuration    float64 `json:"default_duration" binding:"gte=0"`
	RequiresAttachment bool    `json:"requires_attachment"`
	Description        string  `json:"description"`
}

type LeaveTypeResponse struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	DefaultDuration    string `json:"default_duration"`
	RequiresAttachment bool   `json:"requires_attachment"`
	Description        string `json:"description"`
	CreatedBy          string `json:"created_by"`
	UpdatedBy          string `json:"updated_by,omitempty"`
}
