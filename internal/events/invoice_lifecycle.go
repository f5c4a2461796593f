package events

import "time"

const InvoiceLifecycleTopic = "biztime.invoice.lifecycle.v1"

const (
	InvoiceCreated = "invoice.created"
	InvoiceUpdated = "invoice.updated"
	InvoiceDeleted = "invoice.deleted"
)

type InvoiceEvent struct {
	EventType  string    `json:"event_type"`
	InvoiceID  int64     `json:"invoice_id"`
	CompCode   string    `json:"comp_code,omitempty"`
	Amt        float64   `json:"amt,omitempty"`
	Paid       bool      `json:"paid"`
	OccurredAt time.Time `json:"occurred_at"`
}
