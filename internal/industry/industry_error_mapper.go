package industry

import (
	"errors"

	industryerrors "go-biztime/internal/industry/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// mapCreateError turns a slug collision into a conflict. A missing industry
// name (not null) stays untyped.
func mapCreateError(err error) error {
	if err == nil {
		return nil
	}
	if isUniqueViolation(err) {
		return industryerrors.ErrIndustryAlreadyExists.With(err)
	}
	return err
}

// mapAssociateError names an unknown industry and a repeated link. An
// unknown company (foreign key) stays untyped.
func mapAssociateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return industryerrors.ErrIndustryNotFound.With(err)
	}
	if isUniqueViolation(err) {
		return industryerrors.ErrAssociationAlreadyExists.With(err)
	}
	return err
}
