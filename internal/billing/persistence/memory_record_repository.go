package persistence

import (
	"context"
	"fmt"
	"sync"

	"hubble-workspace/internal/billing/usecases"
	shareddomain "hubble-workspace/internal/shared_kernel/domain"
)

func NewMemoryRecordRepository() *MemoryRecordRepository {
	return &MemoryRecordRepository{
		records: make(map[shareddomain.Resource][]shareddomain.Record),
		index:   make(map[shareddomain.Resource]map[shareddomain.ID]int),
	}
}

var _ usecases.RecordRepository = (*MemoryRecordRepository)(nil)

// MemoryRecordRepository keeps each resource as an ordered slice. Records go
// in and come out as copies.
type MemoryRecordRepository struct {
	mu      sync.RWMutex
	records map[shareddomain.Resource][]shareddomain.Record
	index   map[shareddomain.Resource]map[shareddomain.ID]int
}

func (r *MemoryRecordRepository) Find(_ context.Context, resource shareddomain.Resource, query usecases.RecordQuery) (shareddomain.PageResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return query.Page(r.records[resource]), nil
}

func (r *MemoryRecordRepository) Get(_ context.Context, resource shareddomain.Resource, identifier shareddomain.ID) (shareddomain.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	position, ok := r.index[resource][identifier]
	if !ok {
		return nil, usecases.ErrRecordNotFound
	}
	return r.records[resource][position].Clone(), nil
}

func (r *MemoryRecordRepository) Insert(_ context.Context, resource shareddomain.Resource, record shareddomain.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	identifier := record.Identifier()
	if _, exists := r.index[resource][identifier]; exists {
		return fmt.Errorf("%s %s: %w", resource.Singular(), identifier, usecases.ErrIdentifierTaken)
	}

	if r.index[resource] == nil {
		r.index[resource] = make(map[shareddomain.ID]int)
	}
	r.index[resource][identifier] = len(r.records[resource])
	r.records[resource] = append(r.records[resource], record.Clone())
	return nil
}

func (r *MemoryRecordRepository) Replace(_ context.Context, resource shareddomain.Resource, record shareddomain.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	position, ok := r.index[resource][record.Identifier()]
	if !ok {
		return usecases.ErrRecordNotFound
	}
	r.records[resource][position] = record.Clone()
	return nil
}

func (r *MemoryRecordRepository) All(_ context.Context, resource shareddomain.Resource) ([]shareddomain.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return usecases.RecordQuery{}.Page(r.records[resource]).Records, nil
}
