package usecases

//go:generate mockgen -source=repository_port.go -destination=../../../test/unit/doubles/billing/usecases/repository_port_mock.go -package=usecases -mock_names=RecordRepository=MockRecordRepository,RecordService=MockRecordService,AnalyticsService=MockAnalyticsService

import (
	"context"
	"errors"

	"hubble-workspace/internal/billing/domain"
	"hubble-workspace/internal/infra/pubsub"
	shareddomain "hubble-workspace/internal/shared_kernel/domain"
)

var (
	ErrRecordNotFound      = errors.New("record not found")
	ErrIdentifierImmutable = errors.New("identifier cannot be changed")
	ErrIdentifierTaken     = errors.New("identifier already in use")
	ErrInvalidReference    = errors.New("invalid reference")
)

// RecordRepository stores records per resource in insertion order.
type RecordRepository interface {
	Find(ctx context.Context, resource shareddomain.Resource, query RecordQuery) (shareddomain.PageResult, error)
	Get(ctx context.Context, resource shareddomain.Resource, identifier shareddomain.ID) (shareddomain.Record, error)
	Insert(ctx context.Context, resource shareddomain.Resource, record shareddomain.Record) error
	Replace(ctx context.Context, resource shareddomain.Resource, record shareddomain.Record) error
	All(ctx context.Context, resource shareddomain.Resource) ([]shareddomain.Record, error)
}

type RecordService interface {
	List(ctx context.Context, resource shareddomain.Resource, query RecordQuery) (shareddomain.PageResult, error)
	Get(ctx context.Context, resource shareddomain.Resource, identifier shareddomain.ID) (shareddomain.Record, error)
	Create(ctx context.Context, resource shareddomain.Resource, body shareddomain.Record) (shareddomain.Record, error)
	Update(ctx context.Context, resource shareddomain.Resource, identifier shareddomain.ID, body shareddomain.Record) (shareddomain.Record, error)
}

type AnalyticsService interface {
	GetAnalytics(ctx context.Context) (domain.Analytics, error)
	Refresh(ctx context.Context) (domain.Analytics, error)
	HandleRecordEvent(ctx context.Context, key pubsub.Key, message pubsub.Message) error
}
