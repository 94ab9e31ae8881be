//go:build unit

package entities_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intres/repoship/internal/domain/entities"
)

func TestRequiredArtifacts(t *testing.T) {
	t.Parallel()

	t.Run("should list the five fixed artifacts with the README first", func(t *testing.T) {
		t.Parallel()

		// when
		artifacts := entities.RequiredArtifacts()

		// then
		require.Len(t, artifacts, 5)
		assert.Equal(t, "README.md", artifacts[0].Path)
		paths := make([]string, 0, len(artifacts))
		for _, a := range artifacts {
			paths = append(paths, a.Path)
		}
		assert.Contains(t, paths, "analyze.py")
		assert.Contains(t, paths, "requirements.txt")
		assert.Contains(t, paths, "data/test_sequences.csv")
		assert.Contains(t, paths, ".github/workflows/ci.yml")
	})
}

func TestNewPullRequestSpec(t *testing.T) {
	t.Parallel()

	t.Run("should reference the feature and primary branches", func(t *testing.T) {
		t.Parallel()

		// given
		settings := entities.DefaultSettings()

		// when
		spec := entities.NewPullRequestSpec(settings)

		// then
		assert.Equal(t, "feature/prototype-pipeline", spec.Head.Name)
		assert.Equal(t, "main", spec.Base.Name)
		require.NotNil(t, spec.Head.Base)
		assert.Equal(t, "main", spec.Head.Base.Name)
		assert.Nil(t, spec.Base.Base)
		assert.Equal(t, settings.PullRequestTitle, spec.Title)
	})

	t.Run("should list exactly the required artifacts in the body", func(t *testing.T) {
		t.Parallel()

		// given
		settings := entities.DefaultSettings()

		// when
		spec := entities.NewPullRequestSpec(settings)

		// then the body and the validator can never drift apart
		artifacts := entities.RequiredArtifacts()
		for _, artifact := range artifacts {
			assert.Contains(t, spec.Body, "`"+artifact.Path+"`")
		}
		bullets := 0
		for _, line := range strings.Split(spec.Body, "\n") {
			if strings.HasPrefix(line, "- ") {
				bullets++
			}
		}
		assert.Equal(t, len(artifacts), bullets)
	})
}
