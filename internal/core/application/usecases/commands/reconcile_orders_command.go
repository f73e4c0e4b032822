package commands

import (
	"errors"

	"github.com/PortzApp/portzapp-web-sub002/internal/pkg/guard"
)

// ReconcileOrdersCommand triggers a rollup sweep over all orders whose stored
// status or total has drifted from their groups. Group transitions reconcile
// the parent inline, so this batch only picks up orders a crashed or raced
// writer left behind.
//
// Example:
//
//	cmd := NewReconcileOrdersCommand()
//	handler := NewReconcileOrdersCommandHandler(uowFactory)
//
//	// Run periodically from the scheduler
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Order rollup failed: %v", err)
//	}
type ReconcileOrdersCommand struct {
	guard guard.ConstructorGuard
}

var (
	ErrReconcileOrdersCommandIsNotConstructed = errors.New(
		"ReconcileOrdersCommand must be created via NewReconcileOrdersCommand constructor",
	)
)

// NewReconcileOrdersCommand creates a command to trigger the rollup sweep.
// This is a parameterless command that processes all diverged orders.
func NewReconcileOrdersCommand() ReconcileOrdersCommand {
	command := ReconcileOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
// Returns ErrReconcileOrdersCommandIsNotConstructed if validation fails.
func (c *ReconcileOrdersCommand) Validate() error {
	return c.guard.Validate(ErrReconcileOrdersCommandIsNotConstructed)
}
