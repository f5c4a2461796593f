package invoice

import "time"

type Invoice struct {
	ID       int64      `gorm:"primaryKey;autoIncrement"`
	CompCode string     `gorm:"type:text;not null;index"`
	Amt      float64    `gorm:"type:numeric;not null"`
	Paid     bool       `gorm:"not null;default:false"`
	AddDate  time.Time  `gorm:"type:date;not null;default:CURRENT_DATE"`
	PaidDate *time.Time `gorm:"type:date"`
}

func (Invoice) TableName() string {
	return "invoices"
}

// InvoiceDetail is an invoice joined to its owning company. Name is nil when
// the company row is gone.
type InvoiceDetail struct {
	ID          int64
	Amt         float64
	Paid        bool
	AddDate     time.Time
	PaidDate    *time.Time
	Name        *string
	Description *string
}

type InvoiceFields struct {
	CompCode *string
	Amt      *float64
	Paid     *bool
}
