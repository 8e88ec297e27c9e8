package postgres

import (
	"gorm.io/gorm"

	"fulfillment/internal/adapters/out/postgres/approvalrepo"
	"fulfillment/internal/adapters/out/postgres/jobrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/stockrepo"
)

// AutoMigrate creates or updates the schema for every persisted aggregate.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.LineDTO{},
		&jobrepo.JobDTO{},
		&jobrepo.TaskDTO{},
		&stockrepo.ContainerDTO{},
		&stockrepo.InventoryEntryDTO{},
		&stockrepo.ReservationDTO{},
		&approvalrepo.ShortageRequestDTO{},
	)
}
