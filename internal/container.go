// Package internal wires the application layers together.
package internal

import (
	"go.uber.org/dig"

	"github.com/intres/repoship/internal/domain/commands"
	"github.com/intres/repoship/internal/infrastructure/repositories"
)

// RegisterProviders registers all internal providers with the DIG container.
// Layers register bottom-up: infrastructure repositories, then domain commands.
func RegisterProviders(container *dig.Container) error {
	if err := repositories.RegisterProviders(container); err != nil {
		return err
	}
	return commands.RegisterProviders(container)
}
