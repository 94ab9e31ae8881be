//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations — no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/intres/repoship/internal/domain/entities"
	"github.com/intres/repoship/internal/domain/repositories"
)

// SpyRemoteBackend implements repositories.RemoteBackend as a configurable spy.
type SpyRemoteBackend struct {
	// --- identity ---
	BackendName string
	Tools       []string

	// --- ValidateCredential ---
	ValidateErr   error
	ValidateCalls int

	// --- CreateRepository ---
	CreatedURL   string
	CreateErr    error
	CreatedDescs []entities.RepositoryDescriptor

	// --- OpenPullRequest ---
	PR        *entities.PullRequest
	OpenPRErr error
	PRSpecs   []entities.PullRequestSpec

	// --- PushURL ---
	PushURLValue string
}

var _ repositories.RemoteBackend = (*SpyRemoteBackend)(nil)

func (b *SpyRemoteBackend) Name() string {
	if b.BackendName == "" {
		return "spy"
	}
	return b.BackendName
}

func (b *SpyRemoteBackend) RequiredTools() []string { return b.Tools }

func (b *SpyRemoteBackend) ValidateCredential(_ context.Context) error {
	b.ValidateCalls++
	return b.ValidateErr
}

func (b *SpyRemoteBackend) CreateRepository(
	_ context.Context, desc entities.RepositoryDescriptor,
) (string, error) {
	b.CreatedDescs = append(b.CreatedDescs, desc)
	if b.CreateErr != nil {
		return "", b.CreateErr
	}
	if b.CreatedURL != "" {
		return b.CreatedURL, nil
	}
	return desc.HTMLURL(), nil
}

func (b *SpyRemoteBackend) OpenPullRequest(
	_ context.Context, _ entities.RepositoryDescriptor, spec entities.PullRequestSpec,
) (*entities.PullRequest, error) {
	b.PRSpecs = append(b.PRSpecs, spec)
	if b.OpenPRErr != nil {
		return nil, b.OpenPRErr
	}
	if b.PR != nil {
		return b.PR, nil
	}
	return &entities.PullRequest{Number: 1, URL: "https://example.com/pr/1"}, nil
}

func (b *SpyRemoteBackend) PushURL(desc entities.RepositoryDescriptor) string {
	if b.PushURLValue != "" {
		return b.PushURLValue
	}
	return desc.CloneURL()
}

// SpyWorkspace implements repositories.Workspace as a configurable spy
// that records every operation in order.
type SpyWorkspace struct {
	WorkDir    string
	IdentityOK bool

	// Injectable failures
	InitErr     error
	BindErr     error
	StageAllErr error
	StageErr    error
	CommitErr   error
	RenameErr   error
	SwitchErr   error
	PushErr     error

	// --- recorded state ---
	Ops      []string
	Remotes  map[string]string
	Commits  []string
	Pushes   []string
	Branches []string
}

var _ repositories.Workspace = (*SpyWorkspace)(nil)

func (w *SpyWorkspace) Dir() string       { return w.WorkDir }
func (w *SpyWorkspace) Initialized() bool { return len(w.Ops) > 0 }

func (w *SpyWorkspace) Init(_ context.Context) error {
	w.Ops = append(w.Ops, "init")
	return w.InitErr
}

func (w *SpyWorkspace) BindRemote(_ context.Context, name, url string) error {
	w.Ops = append(w.Ops, "bind:"+name)
	if w.Remotes == nil {
		w.Remotes = make(map[string]string)
	}
	w.Remotes[name] = url
	return w.BindErr
}

func (w *SpyWorkspace) IdentityConfigured(_ context.Context) bool {
	return w.IdentityOK
}

func (w *SpyWorkspace) StageAll(_ context.Context) error {
	w.Ops = append(w.Ops, "stage-all")
	return w.StageAllErr
}

func (w *SpyWorkspace) Stage(_ context.Context, paths ...string) error {
	w.Ops = append(w.Ops, "stage:"+paths[0])
	return w.StageErr
}

func (w *SpyWorkspace) Commit(_ context.Context, message string) error {
	w.Ops = append(w.Ops, "commit")
	if w.CommitErr != nil {
		return w.CommitErr
	}
	w.Commits = append(w.Commits, message)
	return nil
}

func (w *SpyWorkspace) RenameBranch(_ context.Context, name string) error {
	w.Ops = append(w.Ops, "rename:"+name)
	if w.RenameErr != nil {
		return w.RenameErr
	}
	w.Branches = append(w.Branches, name)
	return nil
}

func (w *SpyWorkspace) SwitchNew(_ context.Context, name string) error {
	w.Ops = append(w.Ops, "switch:"+name)
	if w.SwitchErr != nil {
		return w.SwitchErr
	}
	w.Branches = append(w.Branches, name)
	return nil
}

func (w *SpyWorkspace) Push(_ context.Context, remote, branch string) error {
	w.Ops = append(w.Ops, "push:"+branch)
	if w.PushErr != nil {
		return w.PushErr
	}
	w.Pushes = append(w.Pushes, remote+"/"+branch)
	return nil
}

// DummyRemoteBackend is a no-op implementation of repositories.RemoteBackend.
type DummyRemoteBackend struct{}

var _ repositories.RemoteBackend = (*DummyRemoteBackend)(nil)

func (d *DummyRemoteBackend) Name() string                            { return "dummy" }
func (d *DummyRemoteBackend) RequiredTools() []string                 { return nil }
func (d *DummyRemoteBackend) ValidateCredential(_ context.Context) error { return nil }

func (d *DummyRemoteBackend) CreateRepository(
	_ context.Context, _ entities.RepositoryDescriptor,
) (string, error) {
	return "", nil
}

func (d *DummyRemoteBackend) OpenPullRequest(
	_ context.Context, _ entities.RepositoryDescriptor, _ entities.PullRequestSpec,
) (*entities.PullRequest, error) {
	return nil, nil //nolint:nilnil // dummy no-op
}

func (d *DummyRemoteBackend) PushURL(_ entities.RepositoryDescriptor) string { return "" }
