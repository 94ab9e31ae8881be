//go:build unit

package entities_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intres/repoship/internal/domain/entities"
)

func TestDefaultSettings(t *testing.T) {
	t.Parallel()

	t.Run("should carry the fixed workflow defaults", func(t *testing.T) {
		t.Parallel()

		// when
		settings := entities.DefaultSettings()

		// then
		assert.Equal(t, "origin", settings.RemoteName)
		assert.Equal(t, "main", settings.PrimaryBranch)
		assert.Equal(t, "feature/prototype-pipeline", settings.FeatureBranch)
		assert.NotEmpty(t, settings.InitialCommitMessage)
		assert.NotEmpty(t, settings.DocsCommitMessage)
		assert.NotEmpty(t, settings.PullRequestTitle)
		assert.Empty(t, settings.Token)
	})
}

// No t.Parallel here: the env-expansion subtest uses t.Setenv, which
// panics under a parallel ancestor.
func TestLoadSettings(t *testing.T) {
	t.Run("should overlay file values on the defaults", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeSettingsFile(t, `
remote_name: upstream
pull_request_title: Ship the prototype
`)

		// when
		settings, err := entities.LoadSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "upstream", settings.RemoteName)
		assert.Equal(t, "Ship the prototype", settings.PullRequestTitle)
		assert.Equal(t, "main", settings.PrimaryBranch)
	})

	t.Run("should reject identical primary and feature branches", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeSettingsFile(t, `
primary_branch: main
feature_branch: main
`)

		// when
		_, err := entities.LoadSettings(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must differ")
	})

	t.Run("should fail for a missing file", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := entities.LoadSettings(filepath.Join(t.TempDir(), "absent.yaml"))

		// then
		require.Error(t, err)
	})

	t.Run("should expand environment variables in the token", func(t *testing.T) {
		// given
		t.Setenv("REPOSHIP_TEST_TOKEN", "tok-123")
		path := writeSettingsFile(t, `
token: ${REPOSHIP_TEST_TOKEN}
`)

		// when
		settings, err := entities.LoadSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "tok-123", settings.Token)
	})

	t.Run("should read the token from a file path", func(t *testing.T) {
		t.Parallel()

		// given
		tokenFile := filepath.Join(t.TempDir(), "token")
		require.NoError(t, os.WriteFile(tokenFile, []byte("tok-456\n"), 0o600))
		path := writeSettingsFile(t, "token: "+tokenFile+"\n")

		// when
		settings, err := entities.LoadSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "tok-456", settings.Token)
	})
}

func TestResolveToken(t *testing.T) {
	t.Run("should prefer the configured token", func(t *testing.T) {
		// given
		t.Setenv("GITHUB_TOKEN", "env-token")
		settings := entities.DefaultSettings()
		settings.Token = "file-token"

		// when
		token := settings.ResolveToken()

		// then
		assert.Equal(t, "file-token", token)
	})

	t.Run("should fall back to GITHUB_TOKEN then GH_TOKEN", func(t *testing.T) {
		// given
		t.Setenv("GITHUB_TOKEN", "")
		t.Setenv("GH_TOKEN", "gh-token")
		settings := entities.DefaultSettings()

		// when
		token := settings.ResolveToken()

		// then
		assert.Equal(t, "gh-token", token)
	})
}

func writeSettingsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "repoship.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
