package invoiceerrors

import (
	"go-biztime/internal/shared/apperror"
	"net/http"
)

var (
	ErrInvoiceNotFound = apperror.New(
		apperror.CodeNotFound,
		"Invoice not found",
		http.StatusNotFound,
	)

	ErrInvoiceCompanyMissing = apperror.New(
		apperror.CodeInvalidState,
		"Invoice references a missing company",
		http.StatusInternalServerError,
	)

	ErrInvoiceRenderFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to render invoice document",
		http.StatusInternalServerError,
	)
)
