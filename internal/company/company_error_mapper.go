package company

import (
	"errors"

	companyerrors "go-biztime/internal/company/errors"

	"gorm.io/gorm"
)

// mapRepositoryError only names the absent-row case. Constraint violations
// (missing code, duplicate code or name) stay untyped and answer 500.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return companyerrors.ErrCompanyNotFound.With(err)
	}

	return err
}
