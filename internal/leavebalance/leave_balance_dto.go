package leavebalance

type BulkInitializeRequest struct {
	LeaveTypeID string `json:"leave_type_id" binding:"required,uuid"`
	Year        int    `json:"year" binding:"omitempty,min=2000,max=2100"`
}

type BulkInitializeResponse struct {
	LeaveTypeID string `json:"leave_type_id"`
	Year        int    `json:"year"`
	Created     int64  `json:"created"`
}

type LeaveBalanceResponse struct {
	ID            string `json:"id"`
	EmployeeID    string `json:"employee_id"`
	LeaveTypeID   string `json:"leave_type_id"`
	Year          int    `json:"year"`
	TotalDays     string `json:"total_days"`
	UsedDays      string `json:"used_days"`
	RemainingDays string `json:"remaining_days"`
}
