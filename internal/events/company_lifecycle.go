package events

import "time"

const CompanyLifecycleTopic = "biztime.company.lifecycle.v1"

const (
	CompanyCreated = "company.created"
	CompanyUpdated = "company.updated"
	CompanyDeleted = "company.deleted"
)

type CompanyEvent struct {
	EventType  string    `json:"event_type"`
	Code       string    `json:"code"`
	Name       string    `json:"name,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
