package company

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=company_repo.go -destination=mock/company_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindAll(ctx context.Context) ([]Company, error)
	FindByCode(ctx context.Context, code string) (*Company, error)
	FindInvoiceIDs(ctx context.Context, code string) ([]int64, error)
	Create(ctx context.Context, fields CompanyFields) (*Company, error)
	Update(ctx context.Context, code string, fields CompanyFields) (*Company, error)
	Delete(ctx context.Context, code string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) FindAll(ctx context.Context) ([]Company, error) {
	var companies []Company
	err := r.db.WithContext(ctx).
		Select("code", "name").
		Order("name").
		Find(&companies).Error
	return companies, err
}

func (r *repository) FindByCode(ctx context.Context, code string) (*Company, error) {
	var company Company
	err := r.db.WithContext(ctx).
		Where("code = ?", code).
		Take(&company).Error
	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *repository) FindInvoiceIDs(ctx context.Context, code string) ([]int64, error) {
	ids := []int64{}
	err := r.db.WithContext(ctx).
		Table("invoices").
		Where("comp_code = ?", code).
		Order("id").
		Pluck("id", &ids).Error
	return ids, err
}

func (r *repository) Create(ctx context.Context, fields CompanyFields) (*Company, error) {
	var company Company
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO companies (code, name, description)
		VALUES (?, ?, ?)
		RETURNING code, name, description
	`, fields.Code, fields.Name, fields.Description).Scan(&company).Error
	if err != nil {
		return nil, err
	}
	return &company, nil
}

// Update never touches code. Zero affected rows is reported as
// gorm.ErrRecordNotFound.
func (r *repository) Update(ctx context.Context, code string, fields CompanyFields) (*Company, error) {
	var company Company
	res := r.db.WithContext(ctx).Raw(`
		UPDATE companies SET name = ?, description = ?
		WHERE code = ?
		RETURNING code, name, description
	`, fields.Name, fields.Description, code).Scan(&company)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &company, nil
}

func (r *repository) Delete(ctx context.Context, code string) error {
	res := r.db.WithContext(ctx).
		Where("code = ?", code).
		Delete(&Company{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
