package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/intres/repoship/internal/domain/entities"
	"github.com/intres/repoship/internal/domain/repositories"
)

// Bootstrap is the interface for the full bootstrap workflow.
type Bootstrap interface {
	Execute(ctx context.Context, desc entities.RepositoryDescriptor, backend repositories.RemoteBackend) (*entities.Outcome, error)
}

// readmeSection is the documentation block commit 2 appends to the
// README artifact.
const readmeSection = `
## Prototype pipeline

Score a single guide sequence:

    python analyze.py --sequence ACGTACGTACGTACGTACGTGGG

Run the batch pipeline against the smoke-test dataset:

    python analyze.py --input data/test_sequences.csv --output results.csv

The CI workflow runs the batch pipeline on every push.
`

// BootstrapCommand runs the orchestration sequence: validate
// preconditions, create the remote repository, record two commits,
// publish two branches, open the pull request. Strictly sequential and
// fail-fast: the first failure terminates the run and nothing already
// done is rolled back.
type BootstrapCommand struct {
	settings  *entities.Settings
	workspace repositories.Workspace
	validator Validator
}

var _ Bootstrap = (*BootstrapCommand)(nil)

// NewBootstrapCommand creates the workflow with its collaborators.
func NewBootstrapCommand(
	settings *entities.Settings,
	workspace repositories.Workspace,
	validator Validator,
) *BootstrapCommand {
	return &BootstrapCommand{
		settings:  settings,
		workspace: workspace,
		validator: validator,
	}
}

// Execute runs the whole sequence against the given backend.
func (it *BootstrapCommand) Execute(
	ctx context.Context,
	desc entities.RepositoryDescriptor,
	backend repositories.RemoteBackend,
) (*entities.Outcome, error) {
	logger.Infof("Validating preconditions for %s (backend: %s)...", desc.FullName(), backend.Name())
	if err := it.validator.Validate(ctx, desc, backend); err != nil {
		return nil, err
	}

	logger.Infof("Creating repository %s...", desc.FullName())
	repoURL, err := backend.CreateRepository(ctx, desc)
	if err != nil {
		return nil, err
	}
	logger.Infof("Repository created: %s", repoURL)

	if err := it.synchronize(ctx, backend, desc); err != nil {
		return nil, err
	}

	if err := it.publish(ctx); err != nil {
		return nil, err
	}

	logger.Infof("Opening pull request %s -> %s...", it.settings.FeatureBranch, it.settings.PrimaryBranch)
	pr, err := backend.OpenPullRequest(ctx, desc, entities.NewPullRequestSpec(it.settings))
	if err != nil {
		return nil, err
	}

	logger.Infof(
		"Run complete: repository %s, pull request #%d (%s)",
		repoURL, pr.Number, pr.URL,
	)
	return &entities.Outcome{RepositoryURL: repoURL, PullRequest: pr}, nil
}

// synchronize ensures the local workspace exists, binds the remote
// endpoint and records the two commits. Binding happens before any
// commit to surface endpoint misconfiguration early.
func (it *BootstrapCommand) synchronize(
	ctx context.Context,
	backend repositories.RemoteBackend,
	desc entities.RepositoryDescriptor,
) error {
	if err := it.workspace.Init(ctx); err != nil {
		return err
	}

	logger.Debugf("Binding remote %q", it.settings.RemoteName)
	if err := it.workspace.BindRemote(ctx, it.settings.RemoteName, backend.PushURL(desc)); err != nil {
		return err
	}

	logger.Infof("Recording initial commit...")
	if err := it.record(ctx, entities.CommitSpec{Message: it.settings.InitialCommitMessage}); err != nil {
		return err
	}

	logger.Infof("Recording documentation commit...")
	readme := entities.RequiredArtifacts()[0].Path
	if err := appendToFile(filepath.Join(it.workspace.Dir(), readme), readmeSection); err != nil {
		return entities.WrapStageError(entities.KindVcsError, "append documentation: "+err.Error(), err)
	}
	return it.record(ctx, entities.CommitSpec{
		Message: it.settings.DocsCommitMessage,
		Paths:   []string{readme},
	})
}

// record stages the paths named by the spec, or the whole working tree
// when the spec names none, and commits with the spec's message.
func (it *BootstrapCommand) record(ctx context.Context, spec entities.CommitSpec) error {
	if len(spec.Paths) == 0 {
		if err := it.workspace.StageAll(ctx); err != nil {
			return err
		}
	} else if err := it.workspace.Stage(ctx, spec.Paths...); err != nil {
		return err
	}
	return it.workspace.Commit(ctx, spec.Message)
}

// publish pushes the primary branch, then cuts the feature branch from
// its tip and pushes that too. The feature push depends on the primary
// push having completed; there is no parallelism here.
func (it *BootstrapCommand) publish(ctx context.Context) error {
	logger.Infof("Pushing %s...", it.settings.PrimaryBranch)
	if err := it.workspace.RenameBranch(ctx, it.settings.PrimaryBranch); err != nil {
		return err
	}
	if err := it.workspace.Push(ctx, it.settings.RemoteName, it.settings.PrimaryBranch); err != nil {
		return err
	}

	logger.Infof("Pushing %s...", it.settings.FeatureBranch)
	if err := it.workspace.SwitchNew(ctx, it.settings.FeatureBranch); err != nil {
		return err
	}
	return it.workspace.Push(ctx, it.settings.RemoteName, it.settings.FeatureBranch)
}

func appendToFile(path, text string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := fmt.Fprint(f, text); err != nil {
		return err
	}
	return f.Sync()
}
