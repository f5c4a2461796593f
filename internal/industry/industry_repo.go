package industry

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=industry_repo.go -destination=mock/industry_repo_mock.go -package=mock
type Repository interface {
	FindAllWithCompanies(ctx context.Context) ([]IndustryCompanies, error)
	Create(ctx context.Context, code string, name *string) (*Industry, error)
	AssociateCompany(ctx context.Context, industryCode string, compCode *string) (*CompanyIndustry, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// FindAllWithCompanies lists every industry with the sorted codes of its
// companies. An industry without companies gets an empty array.
func (r *repository) FindAllWithCompanies(ctx context.Context) ([]IndustryCompanies, error) {
	var rows []IndustryCompanies
	err := r.db.WithContext(ctx).Raw(`
		SELECT i.industry, i.code AS industry_code,
			COALESCE(
				ARRAY_AGG(ci.company_code ORDER BY ci.company_code)
					FILTER (WHERE ci.company_code IS NOT NULL),
				'{}'
			) AS company_codes
		FROM industries AS i
		LEFT JOIN companies_industries AS ci ON ci.industry_id = i.id
		GROUP BY i.id, i.code, i.industry
		ORDER BY i.industry
	`).Scan(&rows).Error
	return rows, err
}

func (r *repository) Create(ctx context.Context, code string, name *string) (*Industry, error) {
	var ind Industry
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO industries (code, industry)
		VALUES (?, ?)
		RETURNING id, code, industry
	`, code, name).Scan(&ind).Error
	if err != nil {
		return nil, err
	}
	return &ind, nil
}

// AssociateCompany links a company to the industry with the given code in
// one statement. No matching industry means no row and gorm.ErrRecordNotFound.
func (r *repository) AssociateCompany(ctx context.Context, industryCode string, compCode *string) (*CompanyIndustry, error) {
	var link CompanyIndustry
	res := r.db.WithContext(ctx).Raw(`
		INSERT INTO companies_industries (industry_id, company_code)
		SELECT id, CAST(? AS text) FROM industries WHERE code = ?
		RETURNING industry_id, company_code
	`, compCode, industryCode).Scan(&link)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &link, nil
}
