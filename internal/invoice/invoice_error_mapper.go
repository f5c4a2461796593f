package invoice

import (
	"errors"

	invoiceerrors "go-biztime/internal/invoice/errors"

	"gorm.io/gorm"
)

// mapRepositoryError names the absent-row case only. A missing comp_code or
// amount, a broken company reference and a failed amount check all stay
// untyped and answer 500.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return invoiceerrors.ErrInvoiceNotFound.With(err)
	}

	return err
}
