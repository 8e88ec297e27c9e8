// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/picking"
	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends only on the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// JobRepoFactory provides access to the job repository within a transaction.
	JobRepoFactory interface {
		JobRepository() ports.JobRepository
	}

	// StockRepoFactory provides access to the stock repository within a transaction.
	StockRepoFactory interface {
		StockRepository() ports.StockRepository
	}

	// ApprovalRepoFactory provides access to the approval repository within a transaction.
	ApprovalRepoFactory interface {
		ApprovalRepository() ports.ApprovalRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// AllocationUoW manages transactions spanning orders and stock.
	// Approval, allocation and deallocation run through it.
	AllocationUoW interface {
		TxManager
		OrderRepoFactory
		StockRepoFactory
	}

	// AllocationUoWFactory creates new allocation unit of work instances.
	AllocationUoWFactory interface {
		Create() AllocationUoW
	}

	// PickingUoW manages transactions spanning orders, jobs and stock.
	// Task confirmation and job completion run through it.
	PickingUoW interface {
		TxManager
		OrderRepoFactory
		JobRepoFactory
		StockRepoFactory
	}

	// PickingUoWFactory creates new picking unit of work instances.
	PickingUoWFactory interface {
		Create() PickingUoW
	}

	// ExceptionUoW manages transactions for the shortage and swap
	// sub-workflow, which touches every aggregate type.
	ExceptionUoW interface {
		TxManager
		OrderRepoFactory
		JobRepoFactory
		StockRepoFactory
		ApprovalRepoFactory
	}

	// ExceptionUoWFactory creates new exception unit of work instances.
	ExceptionUoWFactory interface {
		Create() ExceptionUoW
	}
)

// SessionStore holds the transient pick sessions, one per (job, operator)
// pair. Sessions carry scan-unlock and consolidation state only; losing
// them costs the operator a rescan, never inventory.
type SessionStore interface {
	// GetOrCreate returns the operator's session for a job, creating it
	// on first use.
	GetOrCreate(jobID kernel.UUID, operator string) (*picking.Session, error)
}
