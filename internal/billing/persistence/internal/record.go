package internal

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	shareddomain "hubble-workspace/internal/shared_kernel/domain"
)

// Record is one row per stored record. Seq keeps insertion order.
type Record struct {
	Seq        uint64     `gorm:"primaryKey;autoIncrement"`
	ID         string     `gorm:"uniqueIndex;not null"`
	Resource   string     `gorm:"uniqueIndex:idx_resource_identifier;not null"`
	Identifier string     `gorm:"uniqueIndex:idx_resource_identifier;not null"`
	CreatedOn  time.Time  `gorm:"index"`
	Attributes Attributes `gorm:"type:text"`
}

func (Record) TableName() string {
	return "billing_records"
}

func FromRecord(resource shareddomain.Resource, record shareddomain.Record) Record {
	createdOn, _ := record.Time(shareddomain.FieldCreatedAt)
	return Record{
		ID:         record.String(shareddomain.FieldID),
		Resource:   resource.String(),
		Identifier: record.Identifier().String(),
		CreatedOn:  createdOn.UTC(),
		Attributes: Attributes(record),
	}
}

func (r Record) ToDomain() shareddomain.Record {
	record := shareddomain.Record(r.Attributes).Clone()
	if record == nil {
		record = shareddomain.Record{}
	}
	record[shareddomain.FieldID] = r.ID
	record[shareddomain.FieldIdentifier] = r.Identifier
	return record
}

type Attributes map[string]any

func (a Attributes) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "{}", nil
	}
	data, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (a *Attributes) Scan(src any) error {
	var data []byte

	switch val := src.(type) {
	case string:
		data = []byte(val)
	case []byte:
		data = val
	case nil:
		*a = Attributes{}
		return nil
	default:
		return errors.New("invalid type for attributes")
	}

	return json.Unmarshal(data, a)
}
