package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/approval"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/picking"
	"fulfillment/internal/core/domain/model/warehouse"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

// fakeStore is an in-memory stand-in for the relational store. Aggregates
// are shared pointers, so handler mutations are visible to assertions
// without a mapping layer.
type fakeStore struct {
	orders       map[kernel.UUID]*order.Order
	jobs         []*picking.Job
	containers   []*warehouse.Container
	entries      []*warehouse.InventoryEntry
	reservations []*warehouse.Reservation
	requests     map[kernel.UUID]*approval.ShortageRequest

	commits   int
	rollbacks int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		orders:   make(map[kernel.UUID]*order.Order),
		requests: make(map[kernel.UUID]*approval.ShortageRequest),
	}
}

func (s *fakeStore) containerByCode(code string) (*warehouse.Container, error) {
	return (&fakeStockRepo{s}).GetContainerByCode(context.Background(), code)
}

type fakeUoW struct{ store *fakeStore }

func (u *fakeUoW) Begin(context.Context) error { return nil }
func (u *fakeUoW) Commit(context.Context) error {
	u.store.commits++
	return nil
}
func (u *fakeUoW) Rollback(context.Context) error {
	u.store.rollbacks++
	return nil
}

func (u *fakeUoW) OrderRepository() ports.OrderRepository       { return &fakeOrderRepo{u.store} }
func (u *fakeUoW) JobRepository() ports.JobRepository           { return &fakeJobRepo{u.store} }
func (u *fakeUoW) StockRepository() ports.StockRepository       { return &fakeStockRepo{u.store} }
func (u *fakeUoW) ApprovalRepository() ports.ApprovalRepository { return &fakeApprovalRepo{u.store} }

type orderUoWFactory struct{ store *fakeStore }

func (f orderUoWFactory) Create() commands.OrderUoW { return &fakeUoW{f.store} }

type allocationUoWFactory struct{ store *fakeStore }

func (f allocationUoWFactory) Create() commands.AllocationUoW { return &fakeUoW{f.store} }

type pickingUoWFactory struct{ store *fakeStore }

func (f pickingUoWFactory) Create() commands.PickingUoW { return &fakeUoW{f.store} }

type exceptionUoWFactory struct{ store *fakeStore }

func (f exceptionUoWFactory) Create() commands.ExceptionUoW { return &fakeUoW{f.store} }

type fakeOrderRepo struct{ store *fakeStore }

func (r *fakeOrderRepo) Add(_ context.Context, aggregate *order.Order) error {
	r.store.orders[aggregate.ID()] = aggregate
	return nil
}

func (r *fakeOrderRepo) Update(_ context.Context, aggregate *order.Order) error {
	if _, ok := r.store.orders[aggregate.ID()]; !ok {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}
	return nil
}

func (r *fakeOrderRepo) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	if aggregate, ok := r.store.orders[id]; ok {
		return aggregate, nil
	}
	return nil, errs.NewObjectNotFoundError("order", id.String())
}

func (r *fakeOrderRepo) GetFirstApprovedPending(_ context.Context) (*order.Order, error) {
	for _, aggregate := range r.store.orders {
		if aggregate.IsApproved() && aggregate.Status() == order.StatusPending {
			return aggregate, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("order", "approved pending")
}

func (r *fakeOrderRepo) GetAllOutstanding(_ context.Context) ([]*order.Order, error) {
	var out []*order.Order
	for _, aggregate := range r.store.orders {
		switch aggregate.Status() {
		case order.StatusShipped, order.StatusCancelled:
		default:
			out = append(out, aggregate)
		}
	}
	return out, nil
}

type fakeJobRepo struct{ store *fakeStore }

func (r *fakeJobRepo) Add(_ context.Context, aggregate *picking.Job) error {
	r.store.jobs = append(r.store.jobs, aggregate)
	return nil
}

func (r *fakeJobRepo) Update(context.Context, *picking.Job) error { return nil }

func (r *fakeJobRepo) Get(_ context.Context, id kernel.UUID) (*picking.Job, error) {
	for _, job := range r.store.jobs {
		if job.ID().IsEqual(id) {
			return job, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("job", id.String())
}

func (r *fakeJobRepo) GetByTask(_ context.Context, taskID kernel.UUID) (*picking.Job, error) {
	for _, job := range r.store.jobs {
		if _, err := job.Task(taskID); err == nil {
			return job, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("job by task", taskID.String())
}

type fakeStockRepo struct{ store *fakeStore }

func (r *fakeStockRepo) GetContainer(_ context.Context, id kernel.UUID) (*warehouse.Container, error) {
	for _, c := range r.store.containers {
		if c.ID().IsEqual(id) {
			return c, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("container", id.String())
}

func (r *fakeStockRepo) GetContainerByCode(_ context.Context, code string) (*warehouse.Container, error) {
	for _, c := range r.store.containers {
		if c.MatchesScan(code) {
			return c, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("container", code)
}

func (r *fakeStockRepo) AddContainer(_ context.Context, container *warehouse.Container) error {
	r.store.containers = append(r.store.containers, container)
	return nil
}

func (r *fakeStockRepo) GetEntry(_ context.Context, containerID kernel.UUID, sku string) (*warehouse.InventoryEntry, error) {
	for _, e := range r.store.entries {
		if e.ContainerID().IsEqual(containerID) && e.SKU() == sku {
			return e, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("inventory entry", containerID.String()+"/"+sku)
}

func (r *fakeStockRepo) GetEntriesBySKUs(_ context.Context, skus []string) ([]*warehouse.InventoryEntry, error) {
	wanted := make(map[string]struct{}, len(skus))
	for _, sku := range skus {
		wanted[sku] = struct{}{}
	}
	var out []*warehouse.InventoryEntry
	for _, e := range r.store.entries {
		if _, ok := wanted[e.SKU()]; ok {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeStockRepo) AddEntry(_ context.Context, entry *warehouse.InventoryEntry) error {
	r.store.entries = append(r.store.entries, entry)
	return nil
}

func (r *fakeStockRepo) UpdateEntry(context.Context, *warehouse.InventoryEntry) error { return nil }

func (r *fakeStockRepo) AddReservations(_ context.Context, reservations []*warehouse.Reservation) error {
	r.store.reservations = append(r.store.reservations, reservations...)
	return nil
}

func (r *fakeStockRepo) GetReservationsByOrder(_ context.Context, orderID kernel.UUID) ([]*warehouse.Reservation, error) {
	var out []*warehouse.Reservation
	for _, res := range r.store.reservations {
		if res.OrderID().IsEqual(orderID) {
			out = append(out, res)
		}
	}
	return out, nil
}

func (r *fakeStockRepo) GetReservation(_ context.Context, lineID, containerID kernel.UUID) (*warehouse.Reservation, error) {
	for _, res := range r.store.reservations {
		if res.LineID().IsEqual(lineID) && res.ContainerID().IsEqual(containerID) {
			return res, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("reservation", lineID.String())
}

func (r *fakeStockRepo) DeleteReservation(_ context.Context, id kernel.UUID) error {
	for i, res := range r.store.reservations {
		if res.ID().IsEqual(id) {
			r.store.reservations = append(r.store.reservations[:i], r.store.reservations[i+1:]...)
			return nil
		}
	}
	return errs.NewObjectNotFoundError("reservation", id.String())
}

func (r *fakeStockRepo) DeleteReservationsByOrder(_ context.Context, orderID kernel.UUID) error {
	kept := r.store.reservations[:0]
	for _, res := range r.store.reservations {
		if !res.OrderID().IsEqual(orderID) {
			kept = append(kept, res)
		}
	}
	r.store.reservations = kept
	return nil
}

type fakeApprovalRepo struct{ store *fakeStore }

func (r *fakeApprovalRepo) Add(_ context.Context, request *approval.ShortageRequest) error {
	r.store.requests[request.ID()] = request
	return nil
}

func (r *fakeApprovalRepo) Update(context.Context, *approval.ShortageRequest) error { return nil }

func (r *fakeApprovalRepo) Get(_ context.Context, id kernel.UUID) (*approval.ShortageRequest, error) {
	if request, ok := r.store.requests[id]; ok {
		return request, nil
	}
	return nil, errs.NewObjectNotFoundError("shortage request", id.String())
}

func (r *fakeApprovalRepo) GetPendingByTask(_ context.Context, taskID kernel.UUID) (*approval.ShortageRequest, error) {
	for _, request := range r.store.requests {
		if request.TaskID().IsEqual(taskID) && request.Status() == approval.RequestPending {
			return request, nil
		}
	}
	return nil, nil
}

// fakeSessions keeps pick sessions in memory, one per job.
type fakeSessions struct {
	mu       sync.Mutex
	sessions map[kernel.UUID]*picking.Session
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{sessions: make(map[kernel.UUID]*picking.Session)}
}

func (s *fakeSessions) GetOrCreate(jobID kernel.UUID, operator string) (*picking.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if session, ok := s.sessions[jobID]; ok {
		return session, nil
	}
	session, err := picking.NewSession(jobID, operator)
	if err != nil {
		return nil, err
	}
	s.sessions[jobID] = session
	return session, nil
}

// seedOrder creates a sale order with one line per entry of quantities and
// registers it in the store.
func seedOrder(t *testing.T, store *fakeStore, mode order.FulfillmentMode, quantities map[string]int) *order.Order {
	t.Helper()
	var lines []*order.Line
	for _, sku := range sortedSKUs(quantities) {
		line, err := order.NewLine(kernel.NewUUID(), sku, quantities[sku], 250)
		require.NoError(t, err)
		lines = append(lines, line)
	}
	var total int64
	for _, l := range lines {
		total += int64(l.RequestedQty()) * l.UnitPrice()
	}
	aggregate, err := order.NewOrder(kernel.NewUUID(), order.KindSale, mode, lines, total)
	require.NoError(t, err)
	store.orders[aggregate.ID()] = aggregate
	return aggregate
}

func sortedSKUs(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j] < keys[j-1]; j-- {
			keys[j], keys[j-1] = keys[j-1], keys[j]
		}
	}
	return keys
}

// seedContainer registers a container with stock for the given products.
func seedContainer(t *testing.T, store *fakeStore, code, location string, stock map[string]int) *warehouse.Container {
	t.Helper()
	container, err := warehouse.NewContainer(kernel.NewUUID(), code, location)
	require.NoError(t, err)
	store.containers = append(store.containers, container)
	for _, sku := range sortedSKUs(stock) {
		entry, err := warehouse.NewInventoryEntry(kernel.NewUUID(), container.ID(), sku, stock[sku])
		require.NoError(t, err)
		store.entries = append(store.entries, entry)
	}
	return container
}

func entryFor(t *testing.T, store *fakeStore, containerID kernel.UUID, sku string) *warehouse.InventoryEntry {
	t.Helper()
	entry, err := (&fakeStockRepo{store}).GetEntry(context.Background(), containerID, sku)
	require.NoError(t, err)
	return entry
}

// approveAndAllocate drives an order through approval and allocation.
func approveAndAllocate(t *testing.T, store *fakeStore, aggregate *order.Order) {
	t.Helper()
	require.NoError(t, aggregate.Approve(time.Now()))

	handler := commands.NewAllocateOrderCommandHandler(allocationUoWFactory{store}, nil)
	cmd, err := commands.NewAllocateOrderCommand(aggregate.ID(), "")
	require.NoError(t, err)
	require.NoError(t, handler.Handle(context.Background(), cmd))
}

// buildJob drives an allocated order through job creation and returns the job.
func buildJob(t *testing.T, store *fakeStore, aggregate *order.Order) *picking.Job {
	t.Helper()
	handler := commands.NewCreateJobCommandHandler(pickingUoWFactory{store}, nil)
	cmd, err := commands.NewCreateJobCommand(aggregate.ID())
	require.NoError(t, err)
	jobID, err := handler.Handle(context.Background(), cmd)
	require.NoError(t, err)

	job, err := (&fakeJobRepo{store}).Get(context.Background(), jobID)
	require.NoError(t, err)
	return job
}
