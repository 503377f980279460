package models

import "time"

// ActivityAction classifies an audit entry
type ActivityAction string

const (
	ActionCreate ActivityAction = "CREATE"
	ActionUpdate ActivityAction = "UPDATE"
	ActionDelete ActivityAction = "DELETE"
)

// Activity is an append-only audit record of a mutating operation.
type Activity struct {
	ID         int64          `json:"id"`
	AgencyID   int64          `json:"agencyId"`
	ActorID    int64          `json:"actorId"`
	EntityType string         `json:"entityType"`
	EntityID   int64          `json:"entityId"`
	Action     ActivityAction `json:"action"`
	Detail     string         `json:"detail,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
}
