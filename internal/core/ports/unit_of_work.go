package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// ActorRepository returns an ActorRepository bound to the current transaction.
	ActorRepository() ActorRepository

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// ServiceRepository returns a ServiceRepository bound to the current transaction.
	ServiceRepository() ServiceRepository

	// VesselRepository returns a VesselRepository bound to the current transaction.
	VesselRepository() VesselRepository

	// JoinRequestRepository returns a JoinRequestRepository bound to the current transaction.
	JoinRequestRepository() JoinRequestRepository

	// WizardSessionRepository returns a WizardSessionRepository bound to the current transaction.
	WizardSessionRepository() WizardSessionRepository

	// ConversationRepository returns a ConversationRepository bound to the current transaction.
	ConversationRepository() ConversationRepository
}
