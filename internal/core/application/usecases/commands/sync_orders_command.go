package commands

import (
	"errors"

	"backoffice/internal/pkg/guard"
)

var ErrSyncOrdersCommandIsNotConstructed = errors.New(
	"SyncOrdersCommand must be created via NewSyncOrdersCommand constructor",
)

// SyncOrdersCommand triggers a full refresh of the local order snapshot from
// every registered upstream source. It is a parameterless command issued by
// the periodic sync job and by on-demand refreshes.
type SyncOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewSyncOrdersCommand creates a new snapshot refresh command.
func NewSyncOrdersCommand() SyncOrdersCommand {
	return SyncOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *SyncOrdersCommand) Validate() error {
	return c.guard.Validate(
		ErrSyncOrdersCommandIsNotConstructed,
	)
}
