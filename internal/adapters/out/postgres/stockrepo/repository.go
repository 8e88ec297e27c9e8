package stockrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/warehouse"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStockRepository implements StockRepository using GORM.
type GormStockRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormStockRepository creates a new GORM stock repository.
func NewGormStockRepository(db *gorm.DB, tracker aggregateTracker) *GormStockRepository {
	return &GormStockRepository{
		db:      db,
		tracker: tracker,
	}
}

// GetContainer retrieves a container by ID, locking the row for the rest
// of the transaction.
func (r *GormStockRepository) GetContainer(ctx context.Context, id kernel.UUID) (*warehouse.Container, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ContainerDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("container", id.String())
		}
		return nil, err
	}

	return containerToDomain(dto)
}

// GetContainerByCode retrieves a container by its scannable code,
// case-insensitively.
func (r *GormStockRepository) GetContainerByCode(ctx context.Context, code string) (*warehouse.Container, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, errs.NewValueIsRequiredError("code")
	}

	var dto ContainerDTO
	if err := r.db.WithContext(ctx).First(&dto, "upper(code) = upper(?)", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("container", code)
		}
		return nil, err
	}

	return containerToDomain(dto)
}

// AddContainer persists a new container.
func (r *GormStockRepository) AddContainer(ctx context.Context, container *warehouse.Container) error {
	if err := container.Validate(); err != nil {
		return err
	}

	dto := containerFromDomain(container)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(container.ID(), container)
	return nil
}

// GetEntry retrieves the inventory entry for one product in one container.
// The row is read with SELECT ... FOR UPDATE: callers load an entry to
// mutate its balances, and the lock makes concurrent read-then-write
// sequences on the same (container, product) row serialize instead of both
// computing new balances from the same stale snapshot.
func (r *GormStockRepository) GetEntry(ctx context.Context, containerID kernel.UUID, sku string) (*warehouse.InventoryEntry, error) {
	if err := containerID.Validate(); err != nil {
		return nil, err
	}

	var dto InventoryEntryDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "container_id = ? AND sku = ?", containerID.Bytes(), sku).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("inventory entry",
				fmt.Sprintf("%s/%s", containerID, sku))
		}
		return nil, err
	}

	return entryToDomain(dto)
}

// GetEntriesBySKUs retrieves every entry holding any of the given products
// in a usable container. Entries in blocked containers never feed
// allocation. The entry rows are locked FOR UPDATE so two allocations
// competing for the same shelf serialize; the second one sees the first
// one's committed reservation, not the pre-race balance.
func (r *GormStockRepository) GetEntriesBySKUs(ctx context.Context, skus []string) ([]*warehouse.InventoryEntry, error) {
	if len(skus) == 0 {
		return []*warehouse.InventoryEntry{}, nil
	}

	var dtos []InventoryEntryDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "inventory_entries"}}).
		Joins("JOIN containers ON containers.id = inventory_entries.container_id").
		Where("inventory_entries.sku IN ? AND containers.status = ?",
			skus, int(warehouse.ContainerOpen)).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	entries := make([]*warehouse.InventoryEntry, 0, len(dtos))
	for _, dto := range dtos {
		entry, entryErr := entryToDomain(dto)
		if entryErr != nil {
			return nil, entryErr
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// AddEntry persists a new inventory entry.
func (r *GormStockRepository) AddEntry(ctx context.Context, entry *warehouse.InventoryEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := entryFromDomain(entry)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(entry.ID(), entry)
	return nil
}

// UpdateEntry persists changed stock balances. Entries are read FOR
// UPDATE, so the row is already locked when this runs; the predicate still
// requires on_hand to cover the new balance as a backstop, so a write from
// a stale snapshot fails with warehouse.ErrInsufficientStock instead of
// driving the shelf negative.
func (r *GormStockRepository) UpdateEntry(ctx context.Context, entry *warehouse.InventoryEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := entryFromDomain(entry)
	result := r.db.WithContext(ctx).Model(&InventoryEntryDTO{}).
		Where("id = ? AND on_hand >= ?", dto.ID, dto.OnHand).
		Updates(map[string]any{"on_hand": dto.OnHand, "reserved": dto.Reserved})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&InventoryEntryDTO{}).
			Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("inventory entry", entry.ID().String())
		}
		return fmt.Errorf("%w: concurrent decrement on %s in container %s",
			warehouse.ErrInsufficientStock, entry.SKU(), entry.ContainerID())
	}

	r.tracker.TrackAggregate(entry.ID(), entry)
	return nil
}

// AddReservations persists the reservations produced by an allocation.
func (r *GormStockRepository) AddReservations(ctx context.Context, reservations []*warehouse.Reservation) error {
	if len(reservations) == 0 {
		return nil
	}

	dtos := make([]ReservationDTO, 0, len(reservations))
	for _, reservation := range reservations {
		if err := reservation.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, reservationFromDomain(reservation))
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}

// GetReservationsByOrder retrieves all live reservations for an order.
func (r *GormStockRepository) GetReservationsByOrder(ctx context.Context, orderID kernel.UUID) ([]*warehouse.Reservation, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ReservationDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "order_id = ?", orderID.Bytes()).Error; err != nil {
		return nil, err
	}

	reservations := make([]*warehouse.Reservation, 0, len(dtos))
	for _, dto := range dtos {
		reservation, resErr := reservationToDomain(dto)
		if resErr != nil {
			return nil, resErr
		}
		reservations = append(reservations, reservation)
	}

	return reservations, nil
}

// GetReservation retrieves the reservation binding one line to one container.
func (r *GormStockRepository) GetReservation(ctx context.Context, lineID, containerID kernel.UUID) (*warehouse.Reservation, error) {
	if err := errors.Join(lineID.Validate(), containerID.Validate()); err != nil {
		return nil, err
	}

	var dto ReservationDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "line_id = ? AND container_id = ?", lineID.Bytes(), containerID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("reservation",
				fmt.Sprintf("%s/%s", lineID, containerID))
		}
		return nil, err
	}

	return reservationToDomain(dto)
}

// DeleteReservation removes a single consumed or released reservation.
func (r *GormStockRepository) DeleteReservation(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ReservationDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("reservation", id.String())
	}

	return nil
}

// DeleteReservationsByOrder removes every reservation of an order.
func (r *GormStockRepository) DeleteReservationsByOrder(ctx context.Context, orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&ReservationDTO{}, "order_id = ?", orderID.Bytes()).Error
}
