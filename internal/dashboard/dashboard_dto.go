package dashboard

// UpdateWidgetRequest is the full allow-list of caller-editable widget
// fields. Pointers distinguish "leave as is" from an explicit value.
type UpdateWidgetRequest struct {
	Enabled      *bool `json:"enabled" binding:"omitempty"`
	DisplayOrder *int  `json:"display_order" binding:"omitempty,gte=0"`
}

type WidgetResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	WidgetKey    string `json:"widget_key"`
	DisplayOrder int    `json:"display_order"`
	Enabled      bool   `json:"enabled"`
	UpdatedBy    string `json:"updated_by,omitempty"`
}
