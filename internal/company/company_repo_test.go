package company_test

import (
	"context"
	"regexp"
	"testing"

	"go-biztime/internal/company"
	"go-biztime/internal/shared/connection"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newGormMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), connection.GormConfig())
	assert.NoError(t, err)
	return db, mock
}

func strPtr(s string) *string { return &s }

func TestRepository_FindAll(t *testing.T) {
	db, mock := newGormMock(t)
	repo := company.NewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT "code","name" FROM "companies" ORDER BY name`)).
		WillReturnRows(sqlmock.NewRows([]string{"code", "name"}).
			AddRow("apple", "Apple Computer").
			AddRow("ibm", "IBM"))

	companies, err := repo.FindAll(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []company.Company{
		{Code: "apple", Name: "Apple Computer"},
		{Code: "ibm", Name: "IBM"},
	}, companies)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByCode(t *testing.T) {
	db, mock := newGormMock(t)
	repo := company.NewRepository(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT \* FROM "companies" WHERE code = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"code", "name", "description"}).
				AddRow("apple", "Apple Computer", "Maker of OSX."))

		comp, err := repo.FindByCode(ctx, "apple")

		assert.NoError(t, err)
		assert.Equal(t, "Apple Computer", comp.Name)
		assert.Equal(t, "Maker of OSX.", *comp.Description)
	})

	t.Run("missing", func(t *testing.T) {
		mock.ExpectQuery(`SELECT \* FROM "companies" WHERE code = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"code", "name", "description"}))

		comp, err := repo.FindByCode(ctx, "nope")

		assert.Nil(t, comp)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindInvoiceIDs(t *testing.T) {
	db, mock := newGormMock(t)
	repo := company.NewRepository(db)

	mock.ExpectQuery(`FROM "invoices" WHERE comp_code = \$1 ORDER BY id`).
		WithArgs("apple").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(2).AddRow(3))

	ids, err := repo.FindInvoiceIDs(context.Background(), "apple")

	assert.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create(t *testing.T) {
	db, mock := newGormMock(t)
	repo := company.NewRepository(db)

	mock.ExpectQuery(`INSERT INTO companies \(code, name, description\)`).
		WithArgs("ibm", "IBM", "Tech company").
		WillReturnRows(sqlmock.NewRows([]string{"code", "name", "description"}).
			AddRow("ibm", "IBM", "Tech company"))

	comp, err := repo.Create(context.Background(), company.CompanyFields{
		Code:        strPtr("ibm"),
		Name:        strPtr("IBM"),
		Description: strPtr("Tech company"),
	})

	assert.NoError(t, err)
	assert.Equal(t, "ibm", comp.Code)
	assert.Equal(t, "IBM", comp.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update(t *testing.T) {
	db, mock := newGormMock(t)
	repo := company.NewRepository(db)
	ctx := context.Background()

	t.Run("updated", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE companies SET name = \$1, description = \$2`).
			WithArgs("Apple Inc", "Phones", "apple").
			WillReturnRows(sqlmock.NewRows([]string{"code", "name", "description"}).
				AddRow("apple", "Apple Inc", "Phones"))

		comp, err := repo.Update(ctx, "apple", company.CompanyFields{
			Name:        strPtr("Apple Inc"),
			Description: strPtr("Phones"),
		})

		assert.NoError(t, err)
		assert.Equal(t, "Apple Inc", comp.Name)
	})

	t.Run("no row", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE companies SET name = \$1, description = \$2`).
			WithArgs("X", "Y", "nope").
			WillReturnRows(sqlmock.NewRows([]string{"code", "name", "description"}))

		comp, err := repo.Update(ctx, "nope", company.CompanyFields{
			Name:        strPtr("X"),
			Description: strPtr("Y"),
		})

		assert.Nil(t, comp)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	db, mock := newGormMock(t)
	repo := company.NewRepository(db)
	ctx := context.Background()

	t.Run("deleted", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM "companies" WHERE code = \$1`).
			WithArgs("apple").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, "apple"))
	})

	t.Run("no row", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM "companies" WHERE code = \$1`).
			WithArgs("nope").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(ctx, "nope"), gorm.ErrRecordNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
