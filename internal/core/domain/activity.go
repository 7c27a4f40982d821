package domain

import "time"

type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

// Activity is one audit entry for a committed catalog write.
type Activity struct {
	Kind       Kind      `json:"kind"`
	ExternalID string    `json:"id"`
	Action     Action    `json:"action"`
	Label      string    `json:"label,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
