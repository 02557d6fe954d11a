// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"aquasphere/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// HistoryRepoFactory provides access to the status history within a transaction.
	HistoryRepoFactory interface {
		HistoryRepository() ports.HistoryRepository
	}

	// WatermarkRepoFactory provides access to notification watermarks within a transaction.
	WatermarkRepoFactory interface {
		WatermarkRepository() ports.WatermarkRepository
	}

	// OrderUoW manages transactions that change an order and record its history.
	// Every status an order enters is appended to the history in the same transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.OrderRepository().GetForUpdate(ctx, id)
	//   // ... change the order
	//   err = uow.OrderRepository().Update(ctx, o)
	//   err = uow.HistoryRepository().Append(ctx, o.PullHistory()...)
	//
	//   err = uow.Commit(ctx)
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		HistoryRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// WatermarkUoW manages transactions for notification clears.
	WatermarkUoW interface {
		TxManager
		WatermarkRepoFactory
	}

	// WatermarkUoWFactory creates new watermark unit of work instances.
	WatermarkUoWFactory interface {
		Create() WatermarkUoW
	}
)
