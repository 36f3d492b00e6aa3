package leaverequesterrors

import (
	"net/http"

	"github.com/EhDohWah/hrms-backend-api-v1-sub001/internal/shared/apperror"
)

var (
	ErrInvalidRequestID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid leave request id",
		http.StatusBadRequest,
	)
	ErrRequestNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave request not found",
		http.StatusNotFound,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"end date must not be before start date",
		http.StatusBadRequest,
	)
	ErrCrossYearRange = apperror.New(
		apperror.CodeInvalidInput,
		"leave requests must not span multiple entitlement years",
		http.StatusBadRequest,
	)
	ErrNoItems = apperror.New(
		apperror.CodeInvalidInput,
		"a leave request needs at least one leave type item",
		http.StatusBadRequest,
	)
	ErrDuplicateLeaveType = apperror.New(
		apperror.CodeInvalidInput,
		"duplicate leave type in one request",
		http.StatusBadRequest,
	)
	ErrUnknownLeaveType = apperror.New(
		apperror.CodeInvalidInput,
		"referenced leave type does not exist",
		http.StatusBadRequest,
	)
	ErrInvalidItemDays = apperror.New(
		apperror.CodeInvalidInput,
		"item days must be positive and in steps of 0.5",
		http.StatusBadRequest,
	)
	ErrAttachmentRequired = apperror.New(
		apperror.CodeInvalidInput,
		"this leave type requires an attachment or an explanatory reason",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"status must be one of PENDING, APPROVED, DECLINED, CANCELLED",
		http.StatusBadRequest,
	)
	ErrInvalidInitialStatus = apperror.New(
		apperror.CodeInvalidInput,
		"initial status must be PENDING or APPROVED",
		http.StatusBadRequest,
	)
	ErrInvalidTransition = apperror.New(
		apperror.CodeInvalidState,
		"this status transition is not allowed",
		http.StatusBadRequest,
	)
	ErrInvalidApprovalStatus = apperror.New(
		apperror.CodeInvalidInput,
		"approval status must be one of PENDING, APPROVED, DECLINED",
		http.StatusBadRequest,
	)
	ErrApprovalRoleRequired = apperror.New(
		apperror.CodeInvalidInput,
		"approver role is required",
		http.StatusBadRequest,
	)
)
