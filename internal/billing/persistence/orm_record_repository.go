package persistence

import (
	"context"
	"errors"
	"fmt"

	"hubble-workspace/internal/billing/persistence/internal"
	"hubble-workspace/internal/billing/usecases"
	"hubble-workspace/internal/infra/sql"
	shareddomain "hubble-workspace/internal/shared_kernel/domain"
)

func NewORMRecordRepository(orm sql.ORM) (*ORMRecordRepository, error) {
	if err := orm.AutoMigrate(&internal.Record{}); err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &ORMRecordRepository{orm: orm}, nil
}

var _ usecases.RecordRepository = (*ORMRecordRepository)(nil)

type ORMRecordRepository struct {
	orm sql.ORM
}

// Find pages in the database unless attribute filters apply, which are
// evaluated on the decoded records.
func (r *ORMRecordRepository) Find(ctx context.Context, resource shareddomain.Resource, query usecases.RecordQuery) (shareddomain.PageResult, error) {
	scoped := r.scope(ctx, resource, query.Window)

	if len(query.Attributes) > 0 || query.Limit == 0 {
		var entities []internal.Record
		if err := scoped.Order("seq").Find(&entities).Error(); err != nil {
			return shareddomain.PageResult{}, fmt.Errorf("finding %s: %w", resource, err)
		}
		return query.Page(toDomain(entities)), nil
	}

	var total int64
	if err := scoped.Model(&internal.Record{}).Count(&total).Error(); err != nil {
		return shareddomain.PageResult{}, fmt.Errorf("counting %s: %w", resource, err)
	}

	var entities []internal.Record
	err := r.scope(ctx, resource, query.Window).
		Order("seq").
		Offset(query.Offset).
		Limit(query.Limit).
		Find(&entities).
		Error()
	if err != nil {
		return shareddomain.PageResult{}, fmt.Errorf("finding %s: %w", resource, err)
	}

	return shareddomain.PageResult{Records: toDomain(entities), TotalRecords: int(total)}, nil
}

func (r *ORMRecordRepository) Get(ctx context.Context, resource shareddomain.Resource, identifier shareddomain.ID) (shareddomain.Record, error) {
	entity, err := r.first(ctx, resource, identifier)
	if err != nil {
		return nil, err
	}
	return entity.ToDomain(), nil
}

func (r *ORMRecordRepository) Insert(ctx context.Context, resource shareddomain.Resource, record shareddomain.Record) error {
	entity := internal.FromRecord(resource, record)
	err := r.orm.WithContext(ctx).Create(&entity).Error()
	if errors.Is(err, sql.ErrDuplicateKey) {
		return fmt.Errorf("%s %s: %w", resource.Singular(), record.Identifier(), usecases.ErrIdentifierTaken)
	}
	if err != nil {
		return fmt.Errorf("inserting %s: %w", resource.Singular(), err)
	}
	return nil
}

func (r *ORMRecordRepository) Replace(ctx context.Context, resource shareddomain.Resource, record shareddomain.Record) error {
	return r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		var entity internal.Record
		err := tx.Where("resource = ? AND identifier = ?", resource.String(), record.Identifier().String()).
			First(&entity).
			Error()
		if errors.Is(err, sql.ErrRecordNotFound) {
			return usecases.ErrRecordNotFound
		}
		if err != nil {
			return fmt.Errorf("getting %s %s: %w", resource.Singular(), record.Identifier(), err)
		}

		replacement := internal.FromRecord(resource, record)
		replacement.Seq = entity.Seq
		if replacement.ID == "" {
			replacement.ID = entity.ID
		}

		if err := tx.Save(&replacement).Error(); err != nil {
			return fmt.Errorf("replacing %s: %w", resource.Singular(), err)
		}
		return nil
	})
}

func (r *ORMRecordRepository) All(ctx context.Context, resource shareddomain.Resource) ([]shareddomain.Record, error) {
	var entities []internal.Record
	if err := r.scope(ctx, resource, shareddomain.Window{}).Order("seq").Find(&entities).Error(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", resource, err)
	}
	return toDomain(entities), nil
}

func (r *ORMRecordRepository) scope(ctx context.Context, resource shareddomain.Resource, window shareddomain.Window) sql.ORM {
	scoped := r.orm.WithContext(ctx).Where("resource = ?", resource.String())
	if !window.From.IsZero() {
		scoped = scoped.Where("created_on >= ?", window.From.UTC())
	}
	if !window.To.IsZero() {
		scoped = scoped.Where("created_on <= ?", window.To.UTC())
	}
	return scoped
}

func (r *ORMRecordRepository) first(ctx context.Context, resource shareddomain.Resource, identifier shareddomain.ID) (internal.Record, error) {
	var entity internal.Record
	err := r.orm.WithContext(ctx).
		Where("resource = ? AND identifier = ?", resource.String(), identifier.String()).
		First(&entity).
		Error()
	if errors.Is(err, sql.ErrRecordNotFound) {
		return internal.Record{}, usecases.ErrRecordNotFound
	}
	if err != nil {
		return internal.Record{}, fmt.Errorf("getting %s %s: %w", resource.Singular(), identifier, err)
	}
	return entity, nil
}

func toDomain(entities []internal.Record) []shareddomain.Record {
	records := make([]shareddomain.Record, len(entities))
	for i, entity := range entities {
		records[i] = entity.ToDomain()
	}
	return records
}
