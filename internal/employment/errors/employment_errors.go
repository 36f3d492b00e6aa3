package employmenterrors

import (
	"net/http"

	"github.com/EhDohWah/hrms-backend-api-v1-sub001/internal/shared/apperror"
)

var (
	ErrEmploymentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employment not found",
		http.StatusNotFound,
	)
	ErrInvalidEmploymentID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employment ID",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employment dates, expected YYYY-MM-DD with end_date on or after start_date",
		http.StatusBadRequest,
	)
)
