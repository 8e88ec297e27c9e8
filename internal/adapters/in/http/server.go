package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/approval"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/picking"
	"fulfillment/internal/core/domain/model/warehouse"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/generated/servers"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	approveOrderHandler    commands.ApproveOrderCommandHandler
	unapproveOrderHandler  commands.UnapproveOrderCommandHandler
	cancelOrderHandler     commands.CancelOrderCommandHandler
	allocateOrderHandler   commands.AllocateOrderCommandHandler
	deallocateOrderHandler commands.DeallocateOrderCommandHandler
	createJobHandler       commands.CreateJobCommandHandler
	shipOrderHandler       commands.ShipOrderCommandHandler
	scanHandler            commands.ScanConsolidationContainerCommandHandler
	confirmTasksHandler    commands.ConfirmTasksCommandHandler
	confirmContainer       commands.ConfirmContainerCommandHandler
	unlockHandler          commands.UnlockContainerCommandHandler
	reportShortageHandler  commands.ReportShortageCommandHandler
	approveShortage        commands.ApproveShortageCommandHandler
	rejectShortage         commands.RejectShortageCommandHandler
	swapHandler            commands.SwapAndPickCommandHandler
	completeJobHandler     commands.CompleteJobCommandHandler

	// Query handlers
	getJobTasksHandler        queries.GetJobTasksQueryHandler
	getOutstandingOrdersQuery queries.GetOutstandingOrdersQueryHandler
}

// Handlers bundles every use case the HTTP surface exposes, so the
// composition root does not call a sixteen-argument constructor.
type Handlers struct {
	ApproveOrder    commands.ApproveOrderCommandHandler
	UnapproveOrder  commands.UnapproveOrderCommandHandler
	CancelOrder     commands.CancelOrderCommandHandler
	AllocateOrder   commands.AllocateOrderCommandHandler
	DeallocateOrder commands.DeallocateOrderCommandHandler
	CreateJob       commands.CreateJobCommandHandler
	ShipOrder       commands.ShipOrderCommandHandler

	ScanConsolidation commands.ScanConsolidationContainerCommandHandler
	ConfirmTasks      commands.ConfirmTasksCommandHandler
	ConfirmContainer  commands.ConfirmContainerCommandHandler
	UnlockContainer   commands.UnlockContainerCommandHandler
	ReportShortage    commands.ReportShortageCommandHandler
	ApproveShortage   commands.ApproveShortageCommandHandler
	RejectShortage    commands.RejectShortageCommandHandler
	SwapAndPick       commands.SwapAndPickCommandHandler
	CompleteJob       commands.CompleteJobCommandHandler

	GetJobTasks          queries.GetJobTasksQueryHandler
	GetOutstandingOrders queries.GetOutstandingOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(h Handlers) *Server {
	return &Server{
		approveOrderHandler:       h.ApproveOrder,
		unapproveOrderHandler:     h.UnapproveOrder,
		cancelOrderHandler:        h.CancelOrder,
		allocateOrderHandler:      h.AllocateOrder,
		deallocateOrderHandler:    h.DeallocateOrder,
		createJobHandler:          h.CreateJob,
		shipOrderHandler:          h.ShipOrder,
		scanHandler:               h.ScanConsolidation,
		confirmTasksHandler:       h.ConfirmTasks,
		confirmContainer:          h.ConfirmContainer,
		unlockHandler:             h.UnlockContainer,
		reportShortageHandler:     h.ReportShortage,
		approveShortage:           h.ApproveShortage,
		rejectShortage:            h.RejectShortage,
		swapHandler:               h.SwapAndPick,
		completeJobHandler:        h.CompleteJob,
		getJobTasksHandler:        h.GetJobTasks,
		getOutstandingOrdersQuery: h.GetOutstandingOrders,
	}
}

// ApproveOrder handles POST /api/v1/orders/{orderId}/approve.
func (s *Server) ApproveOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewApproveOrderCommand(id)
	if err != nil {
		return badRequest(ctx, err)
	}

	if handleErr := s.approveOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusOK, servers.Ok{Ok: true})
}

// UnapproveOrder handles POST /api/v1/orders/{orderId}/unapprove.
func (s *Server) UnapproveOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewUnapproveOrderCommand(id)
	if err != nil {
		return badRequest(ctx, err)
	}

	if handleErr := s.unapproveOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusOK, servers.Ok{Ok: true})
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel.
func (s *Server) CancelOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(id)
	if err != nil {
		return badRequest(ctx, err)
	}

	if handleErr := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusOK, servers.Ok{Ok: true})
}

// AllocateOrder handles POST /api/v1/orders/{orderId}/allocate.
func (s *Server) AllocateOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, err)
	}

	var body servers.AllocateOrderJSONRequestBody
	if bindErr := ctx.Bind(&body); bindErr != nil {
		return badRequest(ctx, bindErr)
	}
	strategy := ""
	if body.Strategy != nil {
		strategy = *body.Strategy
	}

	cmd, err := commands.NewAllocateOrderCommand(id, strategy)
	if err != nil {
		return badRequest(ctx, err)
	}

	if handleErr := s.allocateOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusOK, servers.Ok{Ok: true})
}

// DeallocateOrder handles POST /api/v1/orders/{orderId}/deallocate.
func (s *Server) DeallocateOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewDeallocateOrderCommand(id)
	if err != nil {
		return badRequest(ctx, err)
	}

	if handleErr := s.deallocateOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusOK, servers.Ok{Ok: true})
}

// CreateJob handles POST /api/v1/orders/{orderId}/job.
func (s *Server) CreateJob(ctx echo.Context, orderId openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewCreateJobCommand(id)
	if err != nil {
		return badRequest(ctx, err)
	}

	jobID, handleErr := s.createJobHandler.Handle(ctx.Request().Context(), cmd)
	if handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, servers.JobCreated{JobId: jobID.Bytes()})
}

// ShipOrder handles POST /api/v1/orders/{orderId}/ship.
func (s *Server) ShipOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewShipOrderCommand(id)
	if err != nil {
		return badRequest(ctx, err)
	}

	if handleErr := s.shipOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusOK, servers.Ok{Ok: true})
}

// ScanConsolidationContainer handles POST /api/v1/jobs/{jobId}/consolidation-container.
func (s *Server) ScanConsolidationContainer(ctx echo.Context, jobId openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(jobId[:])
	if err != nil {
		return badRequest(ctx, err)
	}

	var body servers.ScanConsolidationContainerJSONRequestBody
	if bindErr := ctx.Bind(&body); bindErr != nil {
		return badRequest(ctx, bindErr)
	}

	cmd, err := commands.NewScanConsolidationContainerCommand(id, body.Code, body.Operator)
	if err != nil {
		return badRequest(ctx, err)
	}

	result, handleErr := s.scanHandler.Handle(ctx.Request().Context(), cmd)
	if handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusOK, servers.ConsolidationContainer{
		ContainerId: result.ContainerID.Bytes(),
		Code:        result.Code,
		ItemCount:   result.ItemCount,
	})
}

// ConfirmTasks handles POST /api/v1/jobs/{jobId}/confirm.
func (s *Server) ConfirmTasks(ctx echo.Context, jobId openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(jobId[:])
	if err != nil {
		return badRequest(ctx, err)
	}

	var body servers.ConfirmTasksJSONRequestBody
	if bindErr := ctx.Bind(&body); bindErr != nil {
		return badRequest(ctx, bindErr)
	}

	taskIDs := make([]kernel.UUID, len(body.TaskIds))
	for i, raw := range body.TaskIds {
		taskIDs[i], err = kernel.UUIDFromBytes(raw[:])
		if err != nil {
			return badRequest(ctx, err)
		}
	}

	consolidationID, err := kernel.UUIDFromBytes(body.ConsolidationContainerId[:])
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewConfirmTasksCommand(id, taskIDs, consolidationID, body.Operator)
	if err != nil {
		return badRequest(ctx, err)
	}

	processed, handleErr := s.confirmTasksHandler.Handle(ctx.Request().Context(), cmd)
	if handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusOK, servers.ConfirmResult{ProcessedCount: processed})
}

// ConfirmContainer handles POST /api/v1/jobs/{jobId}/containers/{containerId}/confirm.
func (s *Server) ConfirmContainer(ctx echo.Context, jobId openapi_types.UUID, containerId openapi_types.UUID) error {
	jID, err := kernel.UUIDFromBytes(jobId[:])
	if err != nil {
		return badRequest(ctx, err)
	}
	cID, err := kernel.UUIDFromBytes(containerId[:])
	if err != nil {
		return badRequest(ctx, err)
	}

	var body servers.ConfirmContainerJSONRequestBody
	if bindErr := ctx.Bind(&body); bindErr != nil {
		return badRequest(ctx, bindErr)
	}

	cmd, err := commands.NewConfirmContainerCommand(jID, cID, body.Operator)
	if err != nil {
		return badRequest(ctx, err)
	}

	processed, handleErr := s.confirmContainer.Handle(ctx.Request().Context(), cmd)
	if handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusOK, servers.ConfirmResult{ProcessedCount: processed})
}

// UnlockContainer handles POST /api/v1/jobs/{jobId}/containers/{containerId}/unlock.
func (s *Server) UnlockContainer(ctx echo.Context, jobId openapi_types.UUID, containerId openapi_types.UUID) error {
	jID, err := kernel.UUIDFromBytes(jobId[:])
	if err != nil {
		return badRequest(ctx, err)
	}
	cID, err := kernel.UUIDFromBytes(containerId[:])
	if err != nil {
		return badRequest(ctx, err)
	}

	var body servers.UnlockContainerJSONRequestBody
	if bindErr := ctx.Bind(&body); bindErr != nil {
		return badRequest(ctx, bindErr)
	}

	cmd, err := commands.NewUnlockContainerCommand(jID, cID, body.ScannedCode, body.Operator)
	if err != nil {
		return badRequest(ctx, err)
	}

	if handleErr := s.unlockHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusOK, servers.Ok{Ok: true})
}

// ReportShortage handles POST /api/v1/tasks/{taskId}/shortage.
func (s *Server) ReportShortage(ctx echo.Context, taskId openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(taskId[:])
	if err != nil {
		return badRequest(ctx, err)
	}

	var body servers.ReportShortageJSONRequestBody
	if bindErr := ctx.Bind(&body); bindErr != nil {
		return badRequest(ctx, bindErr)
	}

	cmd, err := commands.NewReportShortageCommand(id, body.ActualQty, body.Reason, body.Operator)
	if err != nil {
		return badRequest(ctx, err)
	}

	requestID, handleErr := s.reportShortageHandler.Handle(ctx.Request().Context(), cmd)
	if handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, servers.ShortageReported{RequestId: requestID.Bytes()})
}

// ApproveShortage handles POST /api/v1/shortages/{requestId}/approve.
func (s *Server) ApproveShortage(ctx echo.Context, requestId openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(requestId[:])
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewApproveShortageCommand(id)
	if err != nil {
		return badRequest(ctx, err)
	}

	if handleErr := s.approveShortage.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusOK, servers.Ok{Ok: true})
}

// RejectShortage handles POST /api/v1/shortages/{requestId}/reject.
func (s *Server) RejectShortage(ctx echo.Context, requestId openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(requestId[:])
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewRejectShortageCommand(id)
	if err != nil {
		return badRequest(ctx, err)
	}

	if handleErr := s.rejectShortage.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusOK, servers.Ok{Ok: true})
}

// SwapAndPick handles POST /api/v1/tasks/{taskId}/swap.
func (s *Server) SwapAndPick(ctx echo.Context, taskId openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(taskId[:])
	if err != nil {
		return badRequest(ctx, err)
	}

	var body servers.SwapAndPickJSONRequestBody
	if bindErr := ctx.Bind(&body); bindErr != nil {
		return badRequest(ctx, bindErr)
	}

	var consolidationID *kernel.UUID
	if body.ConsolidationContainerId != nil {
		cid, cidErr := kernel.UUIDFromBytes(body.ConsolidationContainerId[:])
		if cidErr != nil {
			return badRequest(ctx, cidErr)
		}
		consolidationID = &cid
	}

	cmd, err := commands.NewSwapAndPickCommand(id, body.AlternateContainerCode, consolidationID, body.Operator)
	if err != nil {
		return badRequest(ctx, err)
	}

	if handleErr := s.swapHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusOK, servers.Ok{Ok: true})
}

// CompleteJob handles POST /api/v1/jobs/{jobId}/complete.
func (s *Server) CompleteJob(ctx echo.Context, jobId openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(jobId[:])
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewCompleteJobCommand(id)
	if err != nil {
		return badRequest(ctx, err)
	}

	if handleErr := s.completeJobHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, picking.ErrJobIncomplete) {
			return ctx.JSON(http.StatusConflict, servers.CompleteJobResult{
				Ok:      false,
				Message: handleErr.Error(),
			})
		}
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusOK, servers.CompleteJobResult{
		Ok:      true,
		Message: "job completed, order packed",
	})
}

// GetJobTasks handles GET /api/v1/jobs/{jobId}/tasks.
func (s *Server) GetJobTasks(ctx echo.Context, jobId openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(jobId[:])
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetJobTasksQuery(id)
	if err != nil {
		return badRequest(ctx, err)
	}

	tasks, handleErr := s.getJobTasksHandler.Handle(ctx.Request().Context(), query)
	if handleErr != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve pick tasks",
		})
	}

	response := make([]servers.PickTask, len(tasks))
	for i, task := range tasks {
		response[i] = servers.PickTask{
			TaskId:        task.TaskID.Bytes(),
			Sequence:      task.Sequence,
			LocationCode:  task.LocationCode,
			ContainerCode: task.ContainerCode,
			Sku:           task.SKU,
			Quantity:      task.Quantity,
			PickedQty:     task.PickedQty,
			Status:        task.Status,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOutstandingOrders handles GET /api/v1/orders/outstanding.
func (s *Server) GetOutstandingOrders(ctx echo.Context) error {
	query := queries.NewGetOutstandingOrdersQuery()

	orders, handleErr := s.getOutstandingOrdersQuery.Handle(ctx.Request().Context(), query)
	if handleErr != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve outstanding orders",
		})
	}

	response := make([]servers.OutstandingOrder, len(orders))
	for i, o := range orders {
		response[i] = servers.OutstandingOrder{
			OrderId:        o.ID.Bytes(),
			Kind:           o.Kind,
			Mode:           o.Mode,
			Status:         o.Status,
			Approved:       o.Approved,
			TotalAmount:    o.TotalAmount,
			LineCount:      o.LineCount,
			RequestedUnits: o.RequestedUnits,
			PickedUnits:    o.PickedUnits,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}

// stockShortfall answers 409 with every short line, so the client sees the
// full shortfall instead of the first failing product.
func stockShortfall(ctx echo.Context, err error, missing []servers.ShortLine) error {
	return ctx.JSON(http.StatusConflict, servers.StockShortfall{
		Code:    http.StatusConflict,
		Message: err.Error(),
		Missing: missing,
	})
}

// domainError maps a use case failure onto an HTTP status. Unknown errors
// deliberately come back as 500 without their message, so storage details
// never leak to clients.
func domainError(ctx echo.Context, err error) error {
	var short *commands.InsufficientStockError
	var infeasible *services.AllocationInfeasibleError
	var alternate *commands.AlternateInsufficientStockError

	switch {
	case errors.As(err, &short):
		missing := make([]servers.ShortLine, len(short.Missing))
		for i, m := range short.Missing {
			missing[i] = servers.ShortLine{
				Product:   m.Product,
				Requested: m.Requested,
				Available: m.Available,
				Missing:   m.Missing,
			}
		}
		return stockShortfall(ctx, err, missing)

	case errors.As(err, &infeasible):
		missing := make([]servers.ShortLine, len(infeasible.Unmet))
		for i, u := range infeasible.Unmet {
			missing[i] = servers.ShortLine{
				Product:   u.SKU,
				Requested: u.Requested,
				Available: u.Available,
				Missing:   u.Missing(),
			}
		}
		return stockShortfall(ctx, err, missing)

	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})

	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return badRequest(ctx, err)

	case errors.As(err, &alternate),
		errors.Is(err, warehouse.ErrInsufficientStock),
		errors.Is(err, commands.ErrShortageAlreadyReported),
		errors.Is(err, approval.ErrShortageAlreadyResolved),
		errors.Is(err, picking.ErrJobIncomplete):
		return ctx.JSON(http.StatusConflict, servers.Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})

	case errors.Is(err, picking.ErrContainerMismatch),
		errors.Is(err, picking.ErrContainerStillLocked),
		errors.Is(err, picking.ErrConsolidationNotBound),
		errors.Is(err, picking.ErrTaskAwaitingApproval),
		errors.Is(err, picking.ErrAlreadyConfirmed),
		errors.Is(err, commands.ErrRequiresItemMode),
		errors.Is(err, commands.ErrRequiresContainerMode),
		errors.Is(err, order.ErrOrderNotApproved),
		errors.Is(err, warehouse.ErrContainerNotUsable):
		return ctx.JSON(http.StatusUnprocessableEntity, servers.Error{
			Code:    http.StatusUnprocessableEntity,
			Message: err.Error(),
		})
	}

	return ctx.JSON(http.StatusInternalServerError, servers.Error{
		Code:    http.StatusInternalServerError,
		Message: "internal error",
	})
}
