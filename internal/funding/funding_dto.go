package funding

type AllocationInputDTO struct {
	AllocationType       string   `json:"allocation_type" binding:"required,oneof=GRANT ORG_FUNDED"`
	PositionSlotID       string   `json:"position_slot_id" binding:"omitempty,uuid"`
	GrantID              string   `json:"grant_id" binding:"omitempty,uuid"`
	DepartmentPositionID string   `json:"department_position_id" binding:"omitempty,uuid"`
	Description          string   `json:"description"`
	LevelOfEffort        float64  `json:"level_of_effort" binding:"required,gt=0,lte=100"`
	AllocatedAmount      *float64 `json:"allocated_amount" binding:"omitempty,gte=0"`
	StartDate            string   `json:"start_date" binding:"required"`
	EndDate              string   `json:"end_date" binding:"omitempty"`
}

type ReplaceAllocationsRequest struct {
	EmployeeID  string               `json:"employee_id" binding:"required,uuid"`
	Allocations []AllocationInputDTO `json:"allocations" binding:"required,min=1,dive"`
}

type CreateSlotRequest struct {
	GrantCode           string `json:"grant_code" binding:"required,max=50"`
	PositionTitle       string `json:"position_title" binding:"required,max=150"`
	GrantPositionNumber int    `json:"grant_position_number" binding:"gte=0"`
}

type SlotResponse struct {
	ID                  string `json:"id"`
	GrantCode           string `json:"grant_code"`
	PositionTitle       string `json:"position_title"`
	GrantPositionNumber int    `json:"grant_position_number"`
	CreatedBy           string `json:"created_by"`
}

type AllocationResponse struct {
	ID              string `json:"id"`
	EmployeeID      string `json:"employee_id"`
	EmploymentID    string `json:"employment_id"`
	AllocationType  string `json:"allocation_type"`
	PositionSlotID  string `json:"position_slot_id,omitempty"`
	OrgFundedID     string `json:"org_funded_id,omitempty"`
	LevelOfEffort   string `json:"level_of_effort"`
	AllocatedAmount string `json:"allocated_amount,omitempty"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date,omitempty"`
}
