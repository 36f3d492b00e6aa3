package leaverequest

type LeaveItemInput struct {
	LeaveTypeID string  `json:"leave_type_id" binding:"required,uuid"`
	Days        float64 `json:"days" binding:"gte=0"`
}

type AttachmentInput struct {
	URL         string `json:"url" binding:"required,url"`
	Description string `json:"description"`
}

type CreateLeaveRequest struct {
	EmployeeID    string            `json:"employee_id" binding:"required,uuid"`
	StartDate     string            `json:"start_date" binding:"required"`
	EndDate       string            `json:"end_date" binding:"required"`
	Reason        string            `json:"reason"`
	Items         []LeaveItemInput  `json:"items" binding:"required,min=1,dive"`
	Attachments   []AttachmentInput `json:"attachments" binding:"omitempty,dive"`
	InitialStatus string            `json:"initial_status" binding:"omitempty,oneof=PENDING APPROVED"`

	// Paper-form audit fields, informational only.
	SupervisorApproved      bool   `json:"supervisor_approved"`
	SupervisorApprovedDate  string `json:"supervisor_approved_date" binding:"omitempty"`
	HRSiteAdminApproved     bool   `json:"hr_site_admin_approved"`
	HRSiteAdminApprovedDate string `json:"hr_site_admin_approved_date" binding:"omitempty"`
}

type UpdateLeaveItemsRequest struct {
	Items []LeaveItemInput `json:"items" binding:"required,min=1,dive"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=PENDING APPROVED DECLINED CANCELLED"`
}

type SetApprovalRequest struct {
	ApproverRole string `json:"approver_role" binding:"required,max=50"`
	ApproverName string `json:"approver_name" binding:"omitempty,max=100"`
	Status       string `json:"status" binding:"required,oneof=PENDING APPROVED DECLINED"`
}

type ListLeaveRequestsQuery struct {
	EmployeeID string `form:"employee_id" binding:"omitempty,uuid"`
	Status     string `form:"status" binding:"omitempty,oneof=PENDING APPROVED DECLINED CANCELLED"`
	Page       int    `form:"page,default=1" binding:"gte=1"`
	PageSize   int    `form:"page_size,default=20" binding:"gte=1,lte=100"`
}

type LeaveItemResponse struct {
	ID          string `json:"id"`
	LeaveTypeID string `json:"leave_type_id"`
	Days        string `json:"days"`
}

type ApprovalResponse struct {
	ID           string `json:"id"`
	ApproverRole string `json:"approver_role"`
	ApproverName string `json:"approver_name"`
	Status       string `json:"status"`
	ApprovalDate string `json:"approval_date,omitempty"`
}

type AttachmentResponse struct {
	ID          string `json:"id"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

type LeaveRequestResponse struct {
	ID          string               `json:"id"`
	EmployeeID  string               `json:"employee_id"`
	StartDate   string               `json:"start_date"`
	EndDate     string               `json:"end_date"`
	TotalDays   string               `json:"total_days"`
	Reason      string               `json:"reason"`
	Status      string               `json:"status"`
	Items       []LeaveItemResponse  `json:"items"`
	Approvals   []ApprovalResponse   `json:"approvals"`
	Attachments []AttachmentResponse `json:"attachments"`

	SupervisorApproved      bool   `json:"supervisor_approved"`
	SupervisorApprovedDate  string `json:"supervisor_approved_date,omitempty"`
	HRSiteAdminApproved     bool   `json:"hr_site_admin_approved"`
	HRSiteAdminApprovedDate string `json:"hr_site_admin_approved_date,omitempty"`

	CreatedBy string `json:"created_by"`
	UpdatedBy string `json:"updated_by,omitempty"`
}

type StatisticsResponse struct {
	Pending          int64  `json:"pending"`
	Approved         int64  `json:"approved"`
	Declined         int64  `json:"declined"`
	Cancelled        int64  `json:"cancelled"`
	ApprovedDaysYear string `json:"approved_days_year"`
	Year             int    `json:"year"`
}
