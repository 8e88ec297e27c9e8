// Package orderrepo provides data transfer objects and mapping functions
// for order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and their database rows.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order
// aggregates. Lines are stored in their own table and loaded with the
// aggregate; an order is never read or written without them.
type OrderDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Kind        int       `gorm:"type:int;not null"`
	Mode        int       `gorm:"type:int;not null"`
	Status      int       `gorm:"type:int;not null;index"`
	Approved    bool      `gorm:"not null;index"`
	TotalAmount int64     `gorm:"type:bigint;not null"`
	CreatedAt   time.Time `gorm:"not null"`
	ApprovedAt  *time.Time
	ShippedAt   *time.Time
	Lines       []LineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// LineDTO represents one product position of an order. PickedQty advances
// as pick tasks confirm against the line.
type LineDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID           uuid.UUID `gorm:"type:uuid;not null;index"`
	SKU               string    `gorm:"type:varchar(64);not null"`
	RequestedQty      int       `gorm:"type:int;not null"`
	PickedQty         int       `gorm:"type:int;not null"`
	UnitPrice         int64     `gorm:"type:bigint;not null"`
	SourceContainerID *uuid.UUID `gorm:"type:uuid"`
}

// TableName specifies the database table name for order lines.
func (LineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()
	lines := make([]LineDTO, 0, len(aggregate.Lines()))

	for _, l := range aggregate.Lines() {
		var sourceID *uuid.UUID
		if id := l.SourceContainer(); id != nil {
			raw := id.Bytes()
			sourceID = &raw
		}

		lines = append(lines, LineDTO{
			ID:                l.ID().Bytes(),
			OrderID:           orderID,
			SKU:               l.SKU(),
			RequestedQty:      l.RequestedQty(),
			PickedQty:         l.PickedQty(),
			UnitPrice:         l.UnitPrice(),
			SourceContainerID: sourceID,
		})
	}

	return OrderDTO{
		ID:          orderID,
		Kind:        int(aggregate.Kind()),
		Mode:        int(aggregate.Mode()),
		Status:      int(aggregate.Status()),
		Approved:    aggregate.IsApproved(),
		TotalAmount: aggregate.TotalAmount(),
		CreatedAt:   aggregate.CreatedAt(),
		ApprovedAt:  aggregate.ApprovedAt(),
		ShippedAt:   aggregate.ShippedAt(),
		Lines:       lines,
	}
}

// toDomain converts a database DTO to an order aggregate, reconstructing
// all lines with their picking progress via RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	lines := make([]*order.Line, 0, len(dto.Lines))
	for _, lineDto := range dto.Lines {
		line, lineErr := lineToDomain(lineDto)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(
		id,
		order.Kind(dto.Kind),
		order.FulfillmentMode(dto.Mode),
		order.Status(dto.Status),
		dto.Approved,
		lines,
		dto.TotalAmount,
		dto.CreatedAt,
		dto.ApprovedAt,
		dto.ShippedAt,
	)
}

func lineToDomain(dto LineDTO) (*order.Line, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var sourceID *kernel.UUID
	if dto.SourceContainerID != nil {
		sID, sourceErr := kernel.UUIDFromBytes((*dto.SourceContainerID)[:])
		if sourceErr != nil {
			return nil, sourceErr
		}
		sourceID = &sID
	}

	return order.RestoreLine(id, dto.SKU, dto.RequestedQty, dto.PickedQty, dto.UnitPrice, sourceID)
}
