//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intres/repoship/internal/domain/entities"
	"github.com/intres/repoship/test/domain/entitybuilders"
)

func TestRepositoryDescriptor(t *testing.T) {
	t.Parallel()

	t.Run("should default to public visibility", func(t *testing.T) {
		t.Parallel()

		// given
		desc := entities.NewRepositoryDescriptor("acme", "demo-pipeline", "", "demo")

		// then
		assert.Equal(t, entities.VisibilityPublic, desc.Visibility)
	})

	t.Run("should derive platform URLs from owner and name", func(t *testing.T) {
		t.Parallel()

		// given
		desc := entitybuilders.NewDescriptorBuilder().BuildDescriptor()

		// then
		assert.Equal(t, "acme/demo-pipeline", desc.FullName())
		assert.Equal(t, "https://github.com/acme/demo-pipeline", desc.HTMLURL())
		assert.Equal(t, "https://github.com/acme/demo-pipeline.git", desc.CloneURL())
	})

	t.Run("should accept dotted and dashed names", func(t *testing.T) {
		t.Parallel()

		// given
		desc := entitybuilders.NewDescriptorBuilder().
			WithOwner("acme-labs").
			WithName("demo.pipeline_v2").
			BuildDescriptor()

		// then
		require.NoError(t, desc.Validate())
	})

	t.Run("should reject empty arguments", func(t *testing.T) {
		t.Parallel()

		// given
		desc := entities.NewRepositoryDescriptor("", "", "", "")

		// when
		err := desc.Validate()

		// then
		require.Error(t, err)
		assert.Equal(t, entities.KindArgument, entities.KindOf(err))
	})

	t.Run("should reject names with path separators", func(t *testing.T) {
		t.Parallel()

		// given
		desc := entitybuilders.NewDescriptorBuilder().WithName("demo/pipeline").BuildDescriptor()

		// when
		err := desc.Validate()

		// then
		require.Error(t, err)
		assert.Equal(t, entities.KindArgument, entities.KindOf(err))
	})
}
