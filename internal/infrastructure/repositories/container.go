package repositories

import (
	"go.uber.org/dig"
)

// RegisterProviders registers the backend registry with the DIG container.
func RegisterProviders(container *dig.Container) error {
	return container.Provide(NewDefaultRegistry)
}
