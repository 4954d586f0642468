package domain

import "time"

type RecordAction string

const (
	RecordCreated RecordAction = "created"
	RecordUpdated RecordAction = "updated"
)

// RecordEvent announces that a record was written.
type RecordEvent struct {
	ID         ID
	Resource   Resource
	Identifier ID
	Action     RecordAction
	OccurredAt time.Time
}
