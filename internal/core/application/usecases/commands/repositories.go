// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, authorization,
// transaction management, and persistence.
package commands

import (
	"context"

	"github.com/PortzApp/portzapp-web-sub002/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler names the narrowest composition it needs, so tests mock only
// the repositories a command actually touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ActorRepoFactory provides access to the actor repository within a transaction.
	ActorRepoFactory interface {
		ActorRepository() ports.ActorRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ServiceRepoFactory provides access to the catalog repository within a transaction.
	ServiceRepoFactory interface {
		ServiceRepository() ports.ServiceRepository
	}

	// VesselRepoFactory provides access to the vessel repository within a transaction.
	VesselRepoFactory interface {
		VesselRepository() ports.VesselRepository
	}

	// JoinRequestRepoFactory provides access to the join request repository within a transaction.
	JoinRequestRepoFactory interface {
		JoinRequestRepository() ports.JoinRequestRepository
	}

	// WizardSessionRepoFactory provides access to the wizard session repository within a transaction.
	WizardSessionRepoFactory interface {
		WizardSessionRepository() ports.WizardSessionRepository
	}

	// ConversationRepoFactory provides access to the conversation repository within a transaction.
	ConversationRepoFactory interface {
		ConversationRepository() ports.ConversationRepository
	}

	// OrderUoW manages transactions for order group lifecycle operations.
	// Acceptance also opens the group's chat thread, so the conversation
	// repository rides along.
	OrderUoW interface {
		TxManager
		ActorRepoFactory
		OrderRepoFactory
		ConversationRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PlaceOrderUoW manages the order placement transaction, which spans
	// the catalog (price snapshots), the fleet, the wizard draft being
	// consumed, and the new order itself.
	PlaceOrderUoW interface {
		TxManager
		ActorRepoFactory
		OrderRepoFactory
		ServiceRepoFactory
		VesselRepoFactory
		WizardSessionRepoFactory
	}

	// PlaceOrderUoWFactory creates new place order unit of work instances.
	PlaceOrderUoWFactory interface {
		Create() PlaceOrderUoW
	}

	// CatalogUoW manages transactions for catalog service operations.
	CatalogUoW interface {
		TxManager
		ActorRepoFactory
		ServiceRepoFactory
	}

	// CatalogUoWFactory creates new catalog unit of work instances.
	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// FleetUoW manages transactions for vessel operations.
	FleetUoW interface {
		TxManager
		ActorRepoFactory
		VesselRepoFactory
	}

	// FleetUoWFactory creates new fleet unit of work instances.
	FleetUoWFactory interface {
		Create() FleetUoW
	}

	// MembershipUoW manages transactions for join request operations.
	MembershipUoW interface {
		TxManager
		ActorRepoFactory
		JoinRequestRepoFactory
	}

	// MembershipUoWFactory creates new membership unit of work instances.
	MembershipUoWFactory interface {
		Create() MembershipUoW
	}

	// RollupUoW manages the batch order reconciliation transaction. The
	// sweep is system-initiated, so no actor repository is needed.
	RollupUoW interface {
		TxManager
		OrderRepoFactory
	}

	// RollupUoWFactory creates new rollup unit of work instances.
	RollupUoWFactory interface {
		Create() RollupUoW
	}
)
