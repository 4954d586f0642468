package avro

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
	"time"

	"hubble-workspace/internal/infra/cache"
	"hubble-workspace/internal/shared_kernel/domain"

	"github.com/hamba/avro/v2"
	"github.com/riferrei/srclient"
)

const (
	magicByte     = 0
	headerSize    = 5
	subjectSuffix = "-value"
	schemaTTL     = 5 * time.Minute
)

var (
	ErrShortMessage   = errors.New("avro message too short")
	ErrMagicByte      = errors.New("unexpected magic byte")
	ErrUnknownMessage = errors.New("no avro schema for message")
)

// SchemaRegistry is the part of the Confluent registry client the codec uses.
type SchemaRegistry interface {
	GetLatestSchema(subject string) (*srclient.Schema, error)
	CreateSchema(subject string, schema string, schemaType srclient.SchemaType, references ...srclient.Reference) (*srclient.Schema, error)
	GetSchema(schemaID int) (*srclient.Schema, error)
}

func NewSchemaRegistry(url string) SchemaRegistry {
	return srclient.CreateSchemaRegistryClient(url)
}

// ConfluentAvroCodec frames Avro payloads the Confluent way: a zero byte, the
// big endian schema id, then the binary record. It satisfies goka.Codec.
type ConfluentAvroCodec struct {
	registry SchemaRegistry
	topic    string
	cache    cache.Cache
}

func NewConfluentAvroCodec(registry SchemaRegistry, topic string, c cache.Cache) *ConfluentAvroCodec {
	return &ConfluentAvroCodec{
		registry: registry,
		topic:    topic,
		cache:    c,
	}
}

func (c *ConfluentAvroCodec) Subject() string {
	return c.topic + subjectSuffix
}

func (c *ConfluentAvroCodec) Encode(value any) ([]byte, error) {
	var message any
	switch v := value.(type) {
	case domain.RecordEvent:
		message = ToAvroRecordEvent(v)
	case *domain.RecordEvent:
		message = ToAvroRecordEvent(*v)
	case AvroRecordEvent:
		message = v
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownMessage, value)
	}

	schemaID, err := c.schemaID()
	if err != nil {
		return nil, err
	}
	schema, err := c.schemaByID(schemaID)
	if err != nil {
		return nil, err
	}

	payload, err := avro.Marshal(schema, message)
	if err != nil {
		return nil, fmt.Errorf("encoding avro payload: %w", err)
	}

	data := make([]byte, headerSize, headerSize+len(payload))
	data[0] = magicByte
	binary.BigEndian.PutUint32(data[1:headerSize], uint32(schemaID))
	return append(data, payload...), nil
}

// Decode returns a domain.RecordEvent.
func (c *ConfluentAvroCodec) Decode(data []byte) (any, error) {
	if len(data) < headerSize {
		return nil, ErrShortMessage
	}
	if data[0] != magicByte {
		return nil, fmt.Errorf("%w: %d", ErrMagicByte, data[0])
	}

	schema, err := c.schemaByID(int(binary.BigEndian.Uint32(data[1:headerSize])))
	if err != nil {
		return nil, err
	}

	var event AvroRecordEvent
	if err := avro.Unmarshal(schema, data[headerSize:], &event); err != nil {
		return nil, fmt.Errorf("decoding avro payload: %w", err)
	}
	return event.ToDomain(), nil
}

// schemaID returns the registered id of the record event schema, registering
// it on first use.
func (c *ConfluentAvroCodec) schemaID() (int, error) {
	subject := c.Subject()
	id, err := c.cache.GetOrSet(context.Background(), "subject:"+subject, schemaTTL, func() (any, error) {
		if registered, err := c.registry.GetLatestSchema(subject); err == nil && registered != nil {
			return registered.ID(), nil
		}

		created, err := c.registry.CreateSchema(subject, recordEventSchema, srclient.Avro)
		if err != nil {
			return nil, fmt.Errorf("registering schema for %s: %w", subject, err)
		}
		return created.ID(), nil
	})
	if err != nil {
		return 0, err
	}
	return id.(int), nil
}

func (c *ConfluentAvroCodec) schemaByID(id int) (avro.Schema, error) {
	schema, err := c.cache.GetOrSet(context.Background(), "schema:"+strconv.Itoa(id), schemaTTL, func() (any, error) {
		registered, err := c.registry.GetSchema(id)
		if err != nil {
			return nil, fmt.Errorf("fetching schema %d: %w", id, err)
		}
		parsed, err := avro.Parse(registered.Schema())
		if err != nil {
			return nil, fmt.Errorf("parsing schema %d: %w", id, err)
		}
		return parsed, nil
	})
	if err != nil {
		return nil, err
	}
	return schema.(avro.Schema), nil
}
