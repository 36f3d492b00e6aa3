package employment

import "github.com/EhDohWah/hrms-backend-api-v1-sub001/internal/funding"

type CreateEmploymentRequest struct {
	EmployeeID     string                      `json:"employee_id" binding:"required,uuid"`
	PositionTitle  string                      `json:"position_title" binding:"required"`
	EmploymentType string                      `json:"employment_type" binding:"required,oneof=FULL_TIME PART_TIME CONTRACT"`
	WorkLocation   string                      `json:"work_location" binding:"omitempty,max=100"`
	StartDate      string                      `json:"start_date" binding:"required"`
	EndDate        string                      `json:"end_date" binding:"omitempty"`
	Allocations    []funding.AllocationInputDTO `json:"allocations" binding:"required,min=1,dive"`
}

type UpdateEmploymentRequest struct {
	PositionTitle  string                      `json:"position_title" binding:"required"`
	EmploymentType string                      `json:"employment_type" binding:"required,oneof=FULL_TIME PART_TIME CONTRACT"`
	WorkLocation   string                      `json:"work_location" binding:"omitempty,max=100"`
	StartDate      string                      `json:"start_date" binding:"required"`
	EndDate        string                      `json:"end_date" binding:"omitempty"`
	Allocations    []funding.AllocationInputDTO `json:"allocations" binding:"omitempty,dive"`
}

type EmploymentResponse struct {
	ID             string                       `json:"id"`
	EmployeeID     string                       `json:"employee_id"`
	PositionTitle  string                       `json:"position_title"`
	EmploymentType string                       `json:"employment_type"`
	WorkLocation   string                       `json:"work_location,omitempty"`
	StartDate      string                       `json:"start_date"`
	EndDate        string                       `json:"end_date,omitempty"`
	CreatedBy      string                       `json:"created_by,omitempty"`
	UpdatedBy      string                       `json:"updated_by,omitempty"`
	Allocations    []funding.AllocationResponse `json:"allocations,omitempty"`
}
