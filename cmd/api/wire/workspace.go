//go:build wireinject
// +build wireinject

package wire

import (
	billingusecases "hubble-workspace/internal/billing/usecases"
	"hubble-workspace/internal/infra/async"
	"hubble-workspace/internal/workspace/httpapi"
	"hubble-workspace/internal/workspace/persistence"
	"hubble-workspace/internal/workspace/usecases"

	"github.com/google/wire"
)

var RecordGatewaySet = wire.NewSet(
	persistence.NewRecordGateway,
	wire.Bind(new(usecases.RecordService), new(*persistence.RecordGateway)),
)

func InitializeViewController(records billingusecases.RecordService) (*httpapi.ViewController, error) {
	wire.Build(
		provideCatalog,
		RecordGatewaySet,
		usecases.NewViewService,
		wire.Bind(new(usecases.ViewService), new(*usecases.SimpleViewService)),
		httpapi.NewViewController,
	)
	return nil, nil
}

func InitializeFormController(records billingusecases.RecordService, broker async.InternalBroker) (*httpapi.FormController, error) {
	wire.Build(
		provideCatalog,
		RecordGatewaySet,
		usecases.NewBrokerNotifier,
		wire.Bind(new(usecases.Notifier), new(*usecases.BrokerNotifier)),
		usecases.NewFormService,
		wire.Bind(new(usecases.FormService), new(*usecases.SimpleFormService)),
		httpapi.NewFormController,
	)
	return nil, nil
}

func InitializeNotificationController(broker async.InternalBroker) (*httpapi.NotificationController, error) {
	wire.Build(
		httpapi.NewNotificationController,
	)
	return nil, nil
}
