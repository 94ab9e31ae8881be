package commands

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/intres/repoship/internal/domain/entities"
	"github.com/intres/repoship/internal/domain/repositories"
)

// Validator checks that a run can start at all. It is a separate seam
// so the orchestrator can be exercised without touching the file system.
type Validator interface {
	Validate(ctx context.Context, desc entities.RepositoryDescriptor, backend repositories.RemoteBackend) error
}

// Preflight is the precondition validator: it inspects arguments, the
// execution path, the credential, the artifact files and the committer
// identity, in that order, stopping at the first failure. It never
// mutates anything.
type Preflight struct {
	workspace repositories.Workspace
}

var _ Validator = (*Preflight)(nil)

// NewPreflight creates a validator bound to the local workspace.
func NewPreflight(workspace repositories.Workspace) *Preflight {
	return &Preflight{workspace: workspace}
}

// Validate runs all checks eagerly and returns the first failure.
func (it *Preflight) Validate(ctx context.Context, desc entities.RepositoryDescriptor, backend repositories.RemoteBackend) error {
	if err := desc.Validate(); err != nil {
		return err
	}

	for _, tool := range backend.RequiredTools() {
		if _, err := exec.LookPath(tool); err != nil {
			return entities.WrapStageError(entities.KindMissingTool, tool, err)
		}
	}

	if err := backend.ValidateCredential(ctx); err != nil {
		return err
	}

	for _, artifact := range entities.RequiredArtifacts() {
		if _, err := os.Stat(filepath.Join(it.workspace.Dir(), artifact.Path)); err != nil {
			return entities.WrapStageError(entities.KindMissingArtifact, artifact.Path, err)
		}
		logger.Debugf("Artifact present: %s", artifact.Path)
	}

	if !it.workspace.IdentityConfigured(ctx) {
		return entities.NewStageError(
			entities.KindMissingIdentity,
			"git user.name and user.email must be configured",
		)
	}

	return nil
}
