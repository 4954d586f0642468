package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	billingusecases "hubble-workspace/internal/billing/usecases"
	shareddomain "hubble-workspace/internal/shared_kernel/domain"
	"hubble-workspace/internal/workspace/usecases"
)

func NewRecordGateway(service billingusecases.RecordService) *RecordGateway {
	return &RecordGateway{
		service: service,
		now:     time.Now,
	}
}

var _ usecases.RecordService = &RecordGateway{}

// RecordGateway serves the workspace from a record service running in the
// same process.
type RecordGateway struct {
	service billingusecases.RecordService
	now     func() time.Time
}

func (g *RecordGateway) List(ctx context.Context, resource shareddomain.Resource, params map[string]string) (shareddomain.PageResult, error) {
	result, err := g.service.List(ctx, resource, billingusecases.ParseListQuery(params, g.now()))
	return result, translate(err)
}

func (g *RecordGateway) Get(ctx context.Context, resource shareddomain.Resource, identifier shareddomain.ID) (shareddomain.Record, error) {
	record, err := g.service.Get(ctx, resource, identifier)
	return record, translate(err)
}

func (g *RecordGateway) Create(ctx context.Context, resource shareddomain.Resource, body shareddomain.Record) (shareddomain.Record, error) {
	record, err := g.service.Create(ctx, resource, body)
	return record, translate(err)
}

func (g *RecordGateway) Update(ctx context.Context, resource shareddomain.Resource, identifier shareddomain.ID, body shareddomain.Record) (shareddomain.Record, error) {
	record, err := g.service.Update(ctx, resource, identifier, body)
	return record, translate(err)
}

func translate(err error) error {
	if errors.Is(err, billingusecases.ErrRecordNotFound) {
		return fmt.Errorf("%w: %w", usecases.ErrRecordNotFound, err)
	}
	return err
}
