package industryerrors

import (
	"go-biztime/internal/shared/apperror"
	"net/http"
)

var (
	ErrIndustryNotFound = apperror.New(
		apperror.CodeNotFound,
		"Industry not found",
		http.StatusNotFound,
	)

	ErrIndustryCodeEmpty = apperror.New(
		apperror.CodeInvalidInput,
		"Industry must contain at least one letter or digit",
		http.StatusBadRequest,
	)

	ErrIndustryAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Industry code already exists",
		http.StatusConflict,
	)

	ErrAssociationAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Company is already associated with this industry",
		http.StatusConflict,
	)
)
