package repositories

import "context"

// Workspace is the local versioned working directory. The production
// implementation shells out to git; the version-control tool is
// consumed strictly through its command surface.
type Workspace interface {
	// Dir returns the absolute working directory path.
	Dir() string

	// Initialized reports whether a repository control directory exists.
	Initialized() bool

	// Init creates the repository if absent. Idempotent.
	Init(ctx context.Context) error

	// BindRemote (re)binds the named remote to url, removing any
	// existing binding of that name first. Idempotent.
	BindRemote(ctx context.Context, name, url string) error

	// IdentityConfigured reports whether a committer name and email are
	// available to git in this directory.
	IdentityConfigured(ctx context.Context) bool

	// StageAll stages every change in the working tree.
	StageAll(ctx context.Context) error

	// Stage stages the given paths only.
	Stage(ctx context.Context, paths ...string) error

	// Commit records the staged changes. Failing because nothing is
	// staged is an error: the workflow always expects changes.
	Commit(ctx context.Context, message string) error

	// RenameBranch renames the current branch.
	RenameBranch(ctx context.Context, name string) error

	// SwitchNew creates a branch at the current tip and switches to it.
	SwitchNew(ctx context.Context, name string) error

	// Push publishes branch to the named remote with upstream tracking.
	Push(ctx context.Context, remote, branch string) error
}
