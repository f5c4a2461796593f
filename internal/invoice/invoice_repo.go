package invoice

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=invoice_repo.go -destination=mock/invoice_repo_mock.go -package=mock
type Repository interface {
	FindAll(ctx context.Context) ([]Invoice, error)
	FindDetail(ctx context.Context, id int64) (*InvoiceDetail, error)
	Create(ctx context.Context, fields InvoiceFields) (*Invoice, error)
	Update(ctx context.Context, id int64, fields InvoiceFields) (*Invoice, error)
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindAll(ctx context.Context) ([]Invoice, error) {
	var invoices []Invoice
	err := r.db.WithContext(ctx).
		Select("id", "comp_code").
		Order("id").
		Find(&invoices).Error
	return invoices, err
}

func (r *repository) FindDetail(ctx context.Context, id int64) (*InvoiceDetail, error) {
	var detail InvoiceDetail
	res := r.db.WithContext(ctx).Raw(`
		SELECT i.id, i.amt, i.paid, i.add_date, i.paid_date, c.name, c.description
		FROM invoices AS i
		LEFT JOIN companies AS c ON c.code = i.comp_code
		WHERE i.id = ?
	`, id).Scan(&detail)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &detail, nil
}

func (r *repository) Create(ctx context.Context, fields InvoiceFields) (*Invoice, error) {
	var inv Invoice
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO invoices (comp_code, amt)
		VALUES (?, ?)
		RETURNING id, comp_code, amt, paid, add_date, paid_date
	`, fields.CompCode, fields.Amt).Scan(&inv).Error
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// Update sets the amount and, when fields.Paid is set, the payment state.
// All SET expressions read the pre-update row, so paid_date is stamped only
// on an unpaid-to-paid transition.
func (r *repository) Update(ctx context.Context, id int64, fields InvoiceFields) (*Invoice, error) {
	var inv Invoice
	res := r.db.WithContext(ctx).Raw(`
		UPDATE invoices SET
			amt = @amt,
			paid_date = CASE
				WHEN CAST(@paid AS boolean) IS NULL THEN paid_date
				WHEN CAST(@paid AS boolean) AND NOT paid THEN CURRENT_DATE
				WHEN CAST(@paid AS boolean) THEN paid_date
				ELSE NULL
			END,
			paid = COALESCE(CAST(@paid AS boolean), paid)
		WHERE id = @id
		RETURNING id, comp_code, amt, paid, add_date, paid_date
	`, map[string]any{
		"amt":  fields.Amt,
		"paid": fields.Paid,
		"id":   id,
	}).Scan(&inv)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &inv, nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&Invoice{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
