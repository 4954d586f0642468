package usecases

//go:generate mockgen -source=repository_port.go -destination=../../../test/unit/doubles/workspace/usecases/repository_port_mock.go -package=usecases -mock_names=RecordService=MockRecordService,Catalog=MockCatalog,Notifier=MockNotifier

import (
	"context"
	"errors"

	shareddomain "hubble-workspace/internal/shared_kernel/domain"
	"hubble-workspace/internal/workspace/domain"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrUnknownView    = errors.New("unknown view")
	ErrUnknownForm    = errors.New("unknown form")
	ErrStaleResponse  = errors.New("stale response")
)

// RecordService is the record API as seen from the workspace. params are the
// flat URL parameters of a list view.
type RecordService interface {
	List(ctx context.Context, resource shareddomain.Resource, params map[string]string) (shareddomain.PageResult, error)
	Get(ctx context.Context, resource shareddomain.Resource, identifier shareddomain.ID) (shareddomain.Record, error)
	Create(ctx context.Context, resource shareddomain.Resource, body shareddomain.Record) (shareddomain.Record, error)
	Update(ctx context.Context, resource shareddomain.Resource, identifier shareddomain.ID, body shareddomain.Record) (shareddomain.Record, error)
}

type Catalog interface {
	Views() []View
	View(name string) (View, error)
	Forms() []FormSpec
	Form(name string) (FormSpec, error)
	AddDialog() []AddDialogGroup
}

type Notifier interface {
	Show(ctx context.Context, message string, category domain.Category)
	Close(ctx context.Context)
}
