package events

import "time"

const IndustryLifecycleTopic = "biztime.industry.lifecycle.v1"

const (
	IndustryCreated           = "industry.created"
	IndustryCompanyAssociated = "industry.company_associated"
)

type IndustryEvent struct {
	EventType    string    `json:"event_type"`
	IndustryCode string    `json:"industry_code"`
	Industry     string    `json:"industry,omitempty"`
	CompCode     string    `json:"comp_code,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}
