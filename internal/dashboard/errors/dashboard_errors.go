package dashboarderrors

import (
	"net/http"

	"github.com/EhDohWah/hrms-backend-api-v1-sub001/internal/shared/apperror"
)

var (
	ErrWidgetNotFound = apperror.New(
		apperror.CodeNotFound,
		"Dashboard widget not found",
		http.StatusNotFound,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrUnknownWidgetKey = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown widget key",
		http.StatusBadRequest,
	)
)
