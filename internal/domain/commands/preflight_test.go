//go:build unit

package commands_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intres/repoship/internal/domain/commands"
	"github.com/intres/repoship/internal/domain/entities"
	"github.com/intres/repoship/test/domain/entitybuilders"
	"github.com/intres/repoship/test/infrastructure/repositorydoubles"
)

func TestPreflightValidate(t *testing.T) {
	t.Parallel()

	t.Run("should pass when every precondition holds", func(t *testing.T) {
		t.Parallel()

		// given
		dir := artifactDir(t, allArtifactPaths()...)
		workspace := &repositorydoubles.SpyWorkspace{WorkDir: dir, IdentityOK: true}
		backend := &repositorydoubles.SpyRemoteBackend{}
		validator := commands.NewPreflight(workspace)

		// when
		err := validator.Validate(context.Background(), entitybuilders.NewDescriptorBuilder().BuildDescriptor(), backend)

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, backend.ValidateCalls)
	})

	t.Run("should reject invalid arguments before any other check", func(t *testing.T) {
		t.Parallel()

		// given
		workspace := &repositorydoubles.SpyWorkspace{WorkDir: t.TempDir(), IdentityOK: true}
		backend := &repositorydoubles.SpyRemoteBackend{}
		validator := commands.NewPreflight(workspace)
		desc := entitybuilders.NewDescriptorBuilder().WithName("").BuildDescriptor()

		// when
		err := validator.Validate(context.Background(), desc, backend)

		// then
		require.Error(t, err)
		assert.Equal(t, entities.KindArgument, entities.KindOf(err))
		assert.Zero(t, backend.ValidateCalls)
	})

	t.Run("should fail when a required tool is absent", func(t *testing.T) {
		t.Parallel()

		// given
		workspace := &repositorydoubles.SpyWorkspace{WorkDir: t.TempDir(), IdentityOK: true}
		backend := &repositorydoubles.SpyRemoteBackend{Tools: []string{"definitely-missing-tool-xyz"}}
		validator := commands.NewPreflight(workspace)

		// when
		err := validator.Validate(context.Background(), entitybuilders.NewDescriptorBuilder().BuildDescriptor(), backend)

		// then
		require.Error(t, err)
		assert.Equal(t, entities.KindMissingTool, entities.KindOf(err))
		assert.Contains(t, err.Error(), "definitely-missing-tool-xyz")
		assert.Zero(t, backend.ValidateCalls)
	})

	t.Run("should propagate a credential failure", func(t *testing.T) {
		t.Parallel()

		// given
		workspace := &repositorydoubles.SpyWorkspace{WorkDir: t.TempDir(), IdentityOK: true}
		backend := &repositorydoubles.SpyRemoteBackend{
			ValidateErr: entities.NewStageError(entities.KindNotAuthenticated, "run gh auth login"),
		}
		validator := commands.NewPreflight(workspace)

		// when
		err := validator.Validate(context.Background(), entitybuilders.NewDescriptorBuilder().BuildDescriptor(), backend)

		// then
		require.Error(t, err)
		assert.Equal(t, entities.KindNotAuthenticated, entities.KindOf(err))
	})

	t.Run("should fail on the first missing artifact", func(t *testing.T) {
		t.Parallel()

		// given a workspace missing the smoke-test dataset
		paths := allArtifactPaths()
		partial := make([]string, 0, len(paths))
		for _, p := range paths {
			if p != "data/test_sequences.csv" {
				partial = append(partial, p)
			}
		}
		dir := artifactDir(t, partial...)
		workspace := &repositorydoubles.SpyWorkspace{WorkDir: dir, IdentityOK: true}
		validator := commands.NewPreflight(workspace)

		// when
		err := validator.Validate(
			context.Background(),
			entitybuilders.NewDescriptorBuilder().BuildDescriptor(),
			&repositorydoubles.SpyRemoteBackend{},
		)

		// then
		require.Error(t, err)
		assert.Equal(t, entities.KindMissingArtifact, entities.KindOf(err))
		assert.Contains(t, err.Error(), "data/test_sequences.csv")
	})

	t.Run("should fail when the committer identity is not configured", func(t *testing.T) {
		t.Parallel()

		// given
		dir := artifactDir(t, allArtifactPaths()...)
		workspace := &repositorydoubles.SpyWorkspace{WorkDir: dir, IdentityOK: false}
		validator := commands.NewPreflight(workspace)

		// when
		err := validator.Validate(
			context.Background(),
			entitybuilders.NewDescriptorBuilder().BuildDescriptor(),
			&repositorydoubles.SpyRemoteBackend{},
		)

		// then
		require.Error(t, err)
		assert.Equal(t, entities.KindMissingIdentity, entities.KindOf(err))
	})
}

func allArtifactPaths() []string {
	artifacts := entities.RequiredArtifacts()
	paths := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		paths = append(paths, a.Path)
	}
	return paths
}

func artifactDir(t *testing.T, paths ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, p := range paths {
		full := filepath.Join(dir, p)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte("placeholder\n"), 0o644))
	}
	return dir
}
