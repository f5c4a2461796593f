package invoice

import "time"

type CreateInvoiceRequest struct {
	CompCode *string  `json:"comp_code"`
	Amt      *float64 `json:"amt"`
}

type UpdateInvoiceRequest struct {
	Amt  *float64 `json:"amt"`
	Paid *bool    `json:"paid"`
}

type InvoiceURI struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

type InvoiceSummaryResponse struct {
	ID       int64  `json:"id"`
	CompCode string `json:"comp_code"`
}

type InvoiceResponse struct {
	ID       int64      `json:"id"`
	CompCode string     `json:"comp_code"`
	Amt      float64    `json:"amt"`
	Paid     bool       `json:"paid"`
	AddDate  time.Time  `json:"add_date"`
	PaidDate *time.Time `json:"paid_date"`
}

type InvoiceDetailResponse struct {
	ID          int64      `json:"id"`
	Amt         float64    `json:"amt"`
	Paid        bool       `json:"paid"`
	AddDate     time.Time  `json:"add_date"`
	PaidDate    *time.Time `json:"paid_date"`
	Name        string     `json:"name"`
	Description *string    `json:"description"`
}
