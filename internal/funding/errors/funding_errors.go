package fundingerrors

import (
	"net/http"

	"github.com/EhDohWah/hrms-backend-api-v1-sub001/internal/shared/apperror"
)

var (
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidEmploymentID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employment id",
		http.StatusBadRequest,
	)
	ErrInvalidSlotID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid grant position slot id",
		http.StatusBadRequest,
	)
	ErrSlotNotFound = apperror.New(
		apperror.CodeNotFound,
		"grant position slot not found",
		http.StatusNotFound,
	)
	ErrNoAllocations = apperror.New(
		apperror.CodeInvalidInput,
		"at least one funding allocation is required",
		http.StatusBadRequest,
	)
	ErrInvalidAllocationType = apperror.New(
		apperror.CodeInvalidInput,
		"allocation type must be GRANT or ORG_FUNDED",
		http.StatusBadRequest,
	)
	ErrSlotRequired = apperror.New(
		apperror.CodeInvalidInput,
		"a grant allocation needs a position slot and no org-funded reference",
		http.StatusBadRequest,
	)
	ErrOrgFundedShape = apperror.New(
		apperror.CodeInvalidInput,
		"an org-funded allocation must not reference a grant position slot",
		http.StatusBadRequest,
	)
	ErrInvalidEffort = apperror.New(
		apperror.CodeInvalidInput,
		"level of effort must be between 0 and 100",
		http.StatusBadRequest,
	)
	ErrEffortTotalInvalid = apperror.New(
		apperror.CodeInvalidState,
		"levels of effort must sum to exactly 100",
		http.StatusBadRequest,
	)
	ErrCapacityExceeded = apperror.New(
		apperror.CodeInvalidState,
		"grant position slot is already at capacity",
		http.StatusBadRequest,
	)
	ErrActiveAllocationExists = apperror.New(
		apperror.CodeInvalidState,
		"an active funding allocation set already exists for this employment",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"allocation end date must not be before start date",
		http.StatusBadRequest,
	)
)
