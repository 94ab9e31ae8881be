//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/intres/repoship/internal/domain/entities"
)

// DescriptorBuilder helps create test repository descriptors with a fluent interface.
type DescriptorBuilder struct {
	*testkit.BaseBuilder
	owner       string
	name        string
	visibility  entities.Visibility
	description string
}

// NewDescriptorBuilder creates a new descriptor builder with sensible defaults.
func NewDescriptorBuilder() *DescriptorBuilder {
	return &DescriptorBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		owner:       "acme",
		name:        "demo-pipeline",
		visibility:  entities.VisibilityPublic,
		description: "Prototype analysis pipeline",
	}
}

// WithOwner sets the repository owner.
func (b *DescriptorBuilder) WithOwner(owner string) *DescriptorBuilder {
	b.owner = owner
	return b
}

// WithName sets the repository name.
func (b *DescriptorBuilder) WithName(name string) *DescriptorBuilder {
	b.name = name
	return b
}

// WithVisibility sets the repository visibility.
func (b *DescriptorBuilder) WithVisibility(visibility entities.Visibility) *DescriptorBuilder {
	b.visibility = visibility
	return b
}

// WithDescription sets the repository description.
func (b *DescriptorBuilder) WithDescription(description string) *DescriptorBuilder {
	b.description = description
	return b
}

// Build creates the descriptor (satisfies testkit.Builder interface).
func (b *DescriptorBuilder) Build() interface{} {
	return b.BuildDescriptor()
}

// BuildDescriptor creates the descriptor with a concrete return type.
func (b *DescriptorBuilder) BuildDescriptor() entities.RepositoryDescriptor {
	return entities.NewRepositoryDescriptor(b.owner, b.name, b.visibility, b.description)
}

// Reset clears the builder state, allowing it to be reused.
func (b *DescriptorBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.owner = "acme"
	b.name = "demo-pipeline"
	b.visibility = entities.VisibilityPublic
	b.description = "Prototype analysis pipeline"
	return b
}

// Clone creates a deep copy of the DescriptorBuilder.
func (b *DescriptorBuilder) Clone() testkit.Builder {
	return &DescriptorBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		owner:       b.owner,
		name:        b.name,
		visibility:  b.visibility,
		description: b.description,
	}
}
