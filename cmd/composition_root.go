package cmd

import (
	httpin "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/sessionstore"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	sessions   *sessionstore.InMemorySessionStore
	publisher  ports.OrderEventPublisher
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, publisher ports.OrderEventPublisher) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		sessions:   sessionstore.NewInMemorySessionStore(),
		publisher:  publisher,
	}
}

func (c *CompositionRoot) CreateApproveOrderCommandHandler() commands.ApproveOrderCommandHandler {
	return commands.NewApproveOrderCommandHandler(c.allocationUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateUnapproveOrderCommandHandler() commands.UnapproveOrderCommandHandler {
	return commands.NewUnapproveOrderCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateAllocateOrderCommandHandler() commands.AllocateOrderCommandHandler {
	return commands.NewAllocateOrderCommandHandler(c.allocationUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateAllocateNextOrderCommandHandler() commands.AllocateNextOrderCommandHandler {
	return commands.NewAllocateNextOrderCommandHandler(
		c.allocationUoWFactory(),
		c.CreateAllocateOrderCommandHandler(),
	)
}

func (c *CompositionRoot) CreateDeallocateOrderCommandHandler() commands.DeallocateOrderCommandHandler {
	return commands.NewDeallocateOrderCommandHandler(c.allocationUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateCreateJobCommandHandler() commands.CreateJobCommandHandler {
	return commands.NewCreateJobCommandHandler(c.pickingUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateShipOrderCommandHandler() commands.ShipOrderCommandHandler {
	return commands.NewShipOrderCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateScanConsolidationContainerCommandHandler() commands.ScanConsolidationContainerCommandHandler {
	return commands.NewScanConsolidationContainerCommandHandler(c.pickingUoWFactory(), c.sessions)
}

func (c *CompositionRoot) CreateConfirmTasksCommandHandler() commands.ConfirmTasksCommandHandler {
	return commands.NewConfirmTasksCommandHandler(c.pickingUoWFactory(), c.sessions)
}

func (c *CompositionRoot) CreateConfirmContainerCommandHandler() commands.ConfirmContainerCommandHandler {
	return commands.NewConfirmContainerCommandHandler(c.pickingUoWFactory(), c.sessions)
}

func (c *CompositionRoot) CreateUnlockContainerCommandHandler() commands.UnlockContainerCommandHandler {
	return commands.NewUnlockContainerCommandHandler(c.pickingUoWFactory(), c.sessions)
}

func (c *CompositionRoot) CreateReportShortageCommandHandler() commands.ReportShortageCommandHandler {
	return commands.NewReportShortageCommandHandler(c.exceptionUoWFactory())
}

func (c *CompositionRoot) CreateApproveShortageCommandHandler() commands.ApproveShortageCommandHandler {
	return commands.NewApproveShortageCommandHandler(c.exceptionUoWFactory())
}

func (c *CompositionRoot) CreateRejectShortageCommandHandler() commands.RejectShortageCommandHandler {
	return commands.NewRejectShortageCommandHandler(c.exceptionUoWFactory())
}

func (c *CompositionRoot) CreateSwapAndPickCommandHandler() commands.SwapAndPickCommandHandler {
	return commands.NewSwapAndPickCommandHandler(c.exceptionUoWFactory())
}

func (c *CompositionRoot) CreateCompleteJobCommandHandler() commands.CompleteJobCommandHandler {
	return commands.NewCompleteJobCommandHandler(c.pickingUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateGetJobTasksQueryHandler() queries.GetJobTasksQueryHandler {
	return queries.NewGetJobTasksQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOutstandingOrdersQueryHandler() queries.GetOutstandingOrdersQueryHandler {
	return queries.NewGetOutstandingOrdersQueryHandler(c.gormDB)
}

// CreateHTTPServer wires every use case into the HTTP adapter.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		ApproveOrder:    c.CreateApproveOrderCommandHandler(),
		UnapproveOrder:  c.CreateUnapproveOrderCommandHandler(),
		CancelOrder:     c.CreateCancelOrderCommandHandler(),
		AllocateOrder:   c.CreateAllocateOrderCommandHandler(),
		DeallocateOrder: c.CreateDeallocateOrderCommandHandler(),
		CreateJob:       c.CreateCreateJobCommandHandler(),
		ShipOrder:       c.CreateShipOrderCommandHandler(),

		ScanConsolidation: c.CreateScanConsolidationContainerCommandHandler(),
		ConfirmTasks:      c.CreateConfirmTasksCommandHandler(),
		ConfirmContainer:  c.CreateConfirmContainerCommandHandler(),
		UnlockContainer:   c.CreateUnlockContainerCommandHandler(),
		ReportShortage:    c.CreateReportShortageCommandHandler(),
		ApproveShortage:   c.CreateApproveShortageCommandHandler(),
		RejectShortage:    c.CreateRejectShortageCommandHandler(),
		SwapAndPick:       c.CreateSwapAndPickCommandHandler(),
		CompleteJob:       c.CreateCompleteJobCommandHandler(),

		GetJobTasks:          c.CreateGetJobTasksQueryHandler(),
		GetOutstandingOrders: c.CreateGetOutstandingOrdersQueryHandler(),
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) allocationUoWFactory() commands.AllocationUoWFactory {
	return FuncAllocationUoWFactory(func() commands.AllocationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) pickingUoWFactory() commands.PickingUoWFactory {
	return FuncPickingUoWFactory(func() commands.PickingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) exceptionUoWFactory() commands.ExceptionUoWFactory {
	return FuncExceptionUoWFactory(func() commands.ExceptionUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncAllocationUoWFactory func() commands.AllocationUoW

func (f FuncAllocationUoWFactory) Create() commands.AllocationUoW {
	return f()
}

type FuncPickingUoWFactory func() commands.PickingUoW

func (f FuncPickingUoWFactory) Create() commands.PickingUoW {
	return f()
}

type FuncExceptionUoWFactory func() commands.ExceptionUoW

func (f FuncExceptionUoWFactory) Create() commands.ExceptionUoW {
	return f()
}
