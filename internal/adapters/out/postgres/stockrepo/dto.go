// Package stockrepo provides data transfer objects and mapping functions
// for warehouse stock persistence: containers, per-product inventory
// entries and the reservations allocation places against them.
package stockrepo

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/warehouse"

	"github.com/google/uuid"
)

// ContainerDTO represents the database structure for persisting containers.
type ContainerDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code         string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	LocationCode string    `gorm:"type:varchar(64);not null;index"`
	Status       int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for containers.
func (ContainerDTO) TableName() string {
	return "containers"
}

// InventoryEntryDTO represents the stock balance of one product in one
// container. The (container, sku) pair is unique; concurrent decrements of
// the same entry serialize on this row.
type InventoryEntryDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ContainerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_entries_container_sku"`
	SKU         string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_entries_container_sku"`
	OnHand      int       `gorm:"type:int;not null"`
	Reserved    int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for inventory entries.
func (InventoryEntryDTO) TableName() string {
	return "inventory_entries"
}

// ReservationDTO represents a line's claim on a container's stock. A line
// holds at most one reservation per container.
type ReservationDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;index"`
	LineID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reservations_line_container"`
	ContainerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reservations_line_container"`
	SKU         string    `gorm:"type:varchar(64);not null"`
	Quantity    int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for reservations.
func (ReservationDTO) TableName() string {
	return "reservations"
}

func containerFromDomain(container *warehouse.Container) ContainerDTO {
	return ContainerDTO{
		ID:           container.ID().Bytes(),
		Code:         container.Code(),
		LocationCode: container.LocationCode(),
		Status:       int(container.Status()),
	}
}

func containerToDomain(dto ContainerDTO) (*warehouse.Container, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return warehouse.RestoreContainer(id, dto.Code, dto.LocationCode,
		warehouse.ContainerStatus(dto.Status))
}

func entryFromDomain(entry *warehouse.InventoryEntry) InventoryEntryDTO {
	return InventoryEntryDTO{
		ID:          entry.ID().Bytes(),
		ContainerID: entry.ContainerID().Bytes(),
		SKU:         entry.SKU(),
		OnHand:      entry.OnHand(),
		Reserved:    entry.Reserved(),
	}
}

func entryToDomain(dto InventoryEntryDTO) (*warehouse.InventoryEntry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	containerID, err := kernel.UUIDFromBytes(dto.ContainerID[:])
	if err != nil {
		return nil, err
	}

	return warehouse.RestoreInventoryEntry(id, containerID, dto.SKU, dto.OnHand, dto.Reserved)
}

func reservationFromDomain(reservation *warehouse.Reservation) ReservationDTO {
	return ReservationDTO{
		ID:          reservation.ID().Bytes(),
		OrderID:     reservation.OrderID().Bytes(),
		LineID:      reservation.LineID().Bytes(),
		ContainerID: reservation.ContainerID().Bytes(),
		SKU:         reservation.SKU(),
		Quantity:    reservation.Quantity(),
	}
}

func reservationToDomain(dto ReservationDTO) (*warehouse.Reservation, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	lineID, err := kernel.UUIDFromBytes(dto.LineID[:])
	if err != nil {
		return nil, err
	}
	containerID, err := kernel.UUIDFromBytes(dto.ContainerID[:])
	if err != nil {
		return nil, err
	}

	return warehouse.NewReservation(id, orderID, lineID, containerID, dto.SKU, dto.Quantity)
}
