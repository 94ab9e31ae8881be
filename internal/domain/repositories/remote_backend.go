// Package repositories defines the seams between the orchestration flow
// and the infrastructure that talks to the hosting platform and to git.
package repositories

import (
	"context"

	"github.com/intres/repoship/internal/domain/entities"
)

// RemoteBackend is a workflow driver for the hosting platform. Two
// implementations exist: one driving the interactive gh CLI and one
// issuing direct REST calls with a bearer token. Both produce the same
// observable end state.
type RemoteBackend interface {
	// Name identifies the backend ("gh" or "api").
	Name() string

	// RequiredTools lists the external binaries this backend needs on
	// the execution path.
	RequiredTools() []string

	// ValidateCredential performs a round-trip credential check before
	// any mutating call runs.
	ValidateCredential(ctx context.Context) error

	// CreateRepository creates the remote repository exactly once and
	// returns its canonical web URL.
	CreateRepository(ctx context.Context, desc entities.RepositoryDescriptor) (string, error)

	// OpenPullRequest opens the PR referencing the two published
	// branches and returns its number and URL.
	OpenPullRequest(ctx context.Context, desc entities.RepositoryDescriptor, spec entities.PullRequestSpec) (*entities.PullRequest, error)

	// PushURL returns the remote endpoint the local workspace binds for
	// pushing. The REST backend embeds the bearer token here; see the
	// README for that trade-off.
	PushURL(desc entities.RepositoryDescriptor) string
}
