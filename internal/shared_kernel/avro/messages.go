package avro

import (
	"time"

	"hubble-workspace/internal/shared_kernel/domain"
)

const recordEventSchema = `{
	"type": "record",
	"name": "RecordEvent",
	"namespace": "hubble.workspace",
	"fields": [
		{"name": "id", "type": "string"},
		{"name": "resource", "type": "string"},
		{"name": "identifier", "type": "string"},
		{"name": "action", "type": {"type": "enum", "name": "RecordAction", "symbols": ["created", "updated"]}},
		{"name": "occurred_at", "type": {"type": "long", "logicalType": "timestamp-millis"}}
	]
}`

type AvroRecordEvent struct {
	ID         string    `avro:"id"`
	Resource   string    `avro:"resource"`
	Identifier string    `avro:"identifier"`
	Action     string    `avro:"action"`
	OccurredAt time.Time `avro:"occurred_at"`
}

func ToAvroRecordEvent(event domain.RecordEvent) AvroRecordEvent {
	return AvroRecordEvent{
		ID:         event.ID.String(),
		Resource:   event.Resource.String(),
		Identifier: event.Identifier.String(),
		Action:     string(event.Action),
		OccurredAt: event.OccurredAt.UTC().Truncate(time.Millisecond),
	}
}

func (e AvroRecordEvent) ToDomain() domain.RecordEvent {
	return domain.RecordEvent{
		ID:         domain.ID(e.ID),
		Resource:   domain.Resource(e.Resource),
		Identifier: domain.ID(e.Identifier),
		Action:     domain.RecordAction(e.Action),
		OccurredAt: e.OccurredAt,
	}
}
