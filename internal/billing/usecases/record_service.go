package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"hubble-workspace/internal/infra/pubsub"
	shareddomain "hubble-workspace/internal/shared_kernel/domain"

	"github.com/google/uuid"
)

// reference names an attribute holding another record and the attributes of
// that record copied into it.
type reference struct {
	attribute string
	resource  shareddomain.Resource
	copied    []string
}

var references = map[shareddomain.Resource][]reference{
	shareddomain.ResourceSubscriptions: {
		{attribute: "plan", resource: shareddomain.ResourcePlans, copied: []string{"name"}},
		{attribute: "account", resource: shareddomain.ResourceAccounts, copied: []string{"userName"}},
	},
	shareddomain.ResourceTransactions: {
		{attribute: "subscription", resource: shareddomain.ResourceSubscriptions, copied: []string{"plan"}},
	},
	shareddomain.ResourceInvoices: {
		{attribute: "account", resource: shareddomain.ResourceAccounts, copied: []string{"userName"}},
		{attribute: "subscription", resource: shareddomain.ResourceSubscriptions, copied: []string{"plan"}},
	},
}

func NewRecordService(repository RecordRepository, publisher pubsub.Publisher) *SimpleRecordService {
	return &SimpleRecordService{
		repository: repository,
		publisher:  publisher,
		now:        time.Now,
	}
}

var _ RecordService = &SimpleRecordService{}

type SimpleRecordService struct {
	repository RecordRepository
	publisher  pubsub.Publisher
	now        func() time.Time
}

func (s *SimpleRecordService) List(ctx context.Context, resource shareddomain.Resource, query RecordQuery) (shareddomain.PageResult, error) {
	result, err := s.repository.Find(ctx, resource, query)
	if err != nil {
		return shareddomain.PageResult{}, fmt.Errorf("listing %s: %w", resource, err)
	}
	return result, nil
}

func (s *SimpleRecordService) Get(ctx context.Context, resource shareddomain.Resource, identifier shareddomain.ID) (shareddomain.Record, error) {
	record, err := s.repository.Get(ctx, resource, identifier)
	if err != nil {
		return nil, fmt.Errorf("getting %s %s: %w", resource.Singular(), identifier, err)
	}
	return record, nil
}

// Create stores body under a fresh id. The identifier is kept when the body
// carries one and generated otherwise.
func (s *SimpleRecordService) Create(ctx context.Context, resource shareddomain.Resource, body shareddomain.Record) (shareddomain.Record, error) {
	record := body.Clone()
	if record == nil {
		record = shareddomain.Record{}
	}

	record[shareddomain.FieldID] = uuid.NewString()
	if record.Identifier() == "" {
		record[shareddomain.FieldIdentifier] = uuid.NewString()
	}
	if _, ok := record.Time(shareddomain.FieldCreatedAt); !ok {
		record[shareddomain.FieldCreatedAt] = s.now().UTC()
	}

	_, err := s.repository.Get(ctx, resource, record.Identifier())
	switch {
	case err == nil:
		return nil, fmt.Errorf("creating %s %s: %w", resource.Singular(), record.Identifier(), ErrIdentifierTaken)
	case !errors.Is(err, ErrRecordNotFound):
		return nil, fmt.Errorf("creating %s: %w", resource.Singular(), err)
	}

	if err := s.resolveReferences(ctx, resource, record); err != nil {
		return nil, fmt.Errorf("creating %s: %w", resource.Singular(), err)
	}

	if err := s.repository.Insert(ctx, resource, record); err != nil {
		return nil, fmt.Errorf("creating %s: %w", resource.Singular(), err)
	}

	slog.Info("record created", slog.String("resource", resource.String()), slog.String("identifier", record.Identifier().String()))
	s.publish(ctx, resource, record.Identifier(), shareddomain.RecordCreated)
	return record.Clone(), nil
}

// Update replaces the stored record wholesale. The identifier in the body,
// when present, has to match the one addressed.
func (s *SimpleRecordService) Update(ctx context.Context, resource shareddomain.Resource, identifier shareddomain.ID, body shareddomain.Record) (shareddomain.Record, error) {
	if bodyID := body.Identifier(); bodyID != "" && bodyID != identifier {
		return nil, fmt.Errorf("updating %s %s: %w", resource.Singular(), identifier, ErrIdentifierImmutable)
	}

	existing, err := s.repository.Get(ctx, resource, identifier)
	if err != nil {
		return nil, fmt.Errorf("updating %s %s: %w", resource.Singular(), identifier, err)
	}

	record := body.Clone()
	if record == nil {
		record = shareddomain.Record{}
	}
	record[shareddomain.FieldIdentifier] = identifier.String()
	record[shareddomain.FieldID] = existing[shareddomain.FieldID]
	if _, ok := record.Time(shareddomain.FieldCreatedAt); !ok {
		record[shareddomain.FieldCreatedAt] = existing[shareddomain.FieldCreatedAt]
	}

	if err := s.resolveReferences(ctx, resource, record); err != nil {
		return nil, fmt.Errorf("updating %s %s: %w", resource.Singular(), identifier, err)
	}

	if err := s.repository.Replace(ctx, resource, record); err != nil {
		return nil, fmt.Errorf("updating %s %s: %w", resource.Singular(), identifier, err)
	}

	s.publish(ctx, resource, identifier, shareddomain.RecordUpdated)
	return record.Clone(), nil
}

// resolveReferences replaces each reference, given as an identifier string or
// an object with an identifier, by the identifier plus the copied attributes
// of the current target record.
func (s *SimpleRecordService) resolveReferences(ctx context.Context, resource shareddomain.Resource, record shareddomain.Record) error {
	for _, ref := range references[resource] {
		target := referencedIdentifier(record[ref.attribute])
		if target == "" {
			continue
		}

		referenced, err := s.repository.Get(ctx, ref.resource, target)
		if errors.Is(err, ErrRecordNotFound) {
			return fmt.Errorf("%w: %s %s does not exist", ErrInvalidReference, ref.resource.Singular(), target)
		}
		if err != nil {
			return fmt.Errorf("resolving %s: %w", ref.attribute, err)
		}

		resolved := map[string]any{shareddomain.FieldIdentifier: target.String()}
		for _, key := range ref.copied {
			resolved[key] = referenced[key]
		}
		record[ref.attribute] = resolved
	}
	return nil
}

func referencedIdentifier(value any) shareddomain.ID {
	switch v := value.(type) {
	case string:
		return shareddomain.ID(v)
	case map[string]any:
		id, _ := v[shareddomain.FieldIdentifier].(string)
		return shareddomain.ID(id)
	case shareddomain.Record:
		return v.Identifier()
	default:
		return ""
	}
}

// publish is best effort: the record is already stored.
func (s *SimpleRecordService) publish(ctx context.Context, resource shareddomain.Resource, identifier shareddomain.ID, action shareddomain.RecordAction) {
	event := shareddomain.RecordEvent{
		ID:         shareddomain.ID(uuid.NewString()),
		Resource:   resource,
		Identifier: identifier,
		Action:     action,
		OccurredAt: s.now().UTC(),
	}

	if err := s.publisher.Publish(ctx, pubsub.Key(identifier), event); err != nil {
		slog.Error("publishing record event",
			slog.String("resource", resource.String()),
			slog.String("identifier", identifier.String()),
			slog.String("error", err.Error()))
	}
}
