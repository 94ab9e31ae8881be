// Package ghcli implements the interactive backend on top of the gh
// CLI, which manages authentication on the operator's behalf.
package ghcli

import (
	"context"
	"fmt"
	"path"
	"strconv"
	"strings"

	gh "github.com/cli/go-gh/v2"

	"github.com/intres/repoship/internal/domain/entities"
	"github.com/intres/repoship/internal/domain/repositories"
)

const (
	backendName = "gh"
	defaultHost = "github.com"
)

// CLIBackend shells out to gh for credential checks, repository
// creation and PR creation. Pushes use the plain HTTPS endpoint and
// rely on gh's git credential helper.
type CLIBackend struct{}

var _ repositories.RemoteBackend = (*CLIBackend)(nil)

// New creates the gh-driven backend.
func New() repositories.RemoteBackend {
	return &CLIBackend{}
}

func (b *CLIBackend) Name() string { return backendName }

func (b *CLIBackend) RequiredTools() []string { return []string{"git", "gh"} }

// ValidateCredential queries the managed session status.
func (b *CLIBackend) ValidateCredential(ctx context.Context) error {
	_, stderr, err := gh.ExecContext(ctx, "auth", "status", "--hostname", defaultHost)
	if err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			detail = "gh is not authenticated; run 'gh auth login'"
		}
		return entities.WrapStageError(entities.KindNotAuthenticated, detail, err)
	}
	return nil
}

// CreateRepository probes for an existing repository first and only
// then issues the creation call: issues enabled, wiki disabled, no
// auto-initialization.
func (b *CLIBackend) CreateRepository(ctx context.Context, desc entities.RepositoryDescriptor) (string, error) {
	if _, _, err := gh.ExecContext(ctx, "repo", "view", desc.FullName(), "--json", "url"); err == nil {
		return "", entities.NewStageError(
			entities.KindAlreadyExists,
			"repository "+desc.FullName()+" already exists",
		)
	}

	args := []string{
		"repo", "create", desc.FullName(),
		"--description", desc.Description,
		"--disable-wiki",
	}
	if desc.Visibility == entities.VisibilityPrivate {
		args = append(args, "--private")
	} else {
		args = append(args, "--public")
	}

	stdout, stderr, err := gh.ExecContext(ctx, args...)
	if err != nil {
		return "", entities.WrapStageError(
			entities.KindRemoteError,
			strings.TrimSpace(stderr.String()),
			err,
		)
	}

	url := lastLine(stdout.String())
	if url == "" {
		url = desc.HTMLURL()
	}
	return url, nil
}

func (b *CLIBackend) OpenPullRequest(ctx context.Context, desc entities.RepositoryDescriptor, spec entities.PullRequestSpec) (*entities.PullRequest, error) {
	stdout, stderr, err := gh.ExecContext(ctx,
		"pr", "create",
		"--repo", desc.FullName(),
		"--title", spec.Title,
		"--body", spec.Body,
		"--head", spec.Head.Name,
		"--base", spec.Base.Name,
	)
	if err != nil {
		return nil, entities.WrapStageError(
			entities.KindRemoteError,
			strings.TrimSpace(stderr.String()),
			err,
		)
	}

	// gh prints the PR URL as the last line of stdout.
	url := lastLine(stdout.String())
	number, err := prNumberFromURL(url)
	if err != nil {
		return nil, entities.WrapStageError(
			entities.KindRemoteError,
			"unexpected pr create output: "+url,
			err,
		)
	}
	return &entities.PullRequest{
		Number: number,
		URL:    url,
	}, nil
}

// PushURL returns the plain HTTPS endpoint; gh's credential helper
// supplies auth for pushes in this variant.
func (b *CLIBackend) PushURL(desc entities.RepositoryDescriptor) string {
	return desc.CloneURL()
}

// lastLine returns the last non-empty line of command output.
func lastLine(output string) string {
	lines := strings.Split(strings.TrimSpace(output), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}

// prNumberFromURL extracts the PR number from its canonical URL,
// e.g. https://github.com/acme/demo-pipeline/pull/1.
func prNumberFromURL(url string) (int, error) {
	number, err := strconv.Atoi(path.Base(url))
	if err != nil {
		return 0, fmt.Errorf("no pull request number in %q: %w", url, err)
	}
	return number, nil
}
