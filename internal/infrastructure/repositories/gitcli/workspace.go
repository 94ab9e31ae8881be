// Package gitcli implements the local workspace on top of the git
// command surface.
package gitcli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/intres/repoship/internal/domain/entities"
	"github.com/intres/repoship/internal/domain/repositories"
)

// Workspace runs git commands in a fixed working directory.
type Workspace struct {
	dir string
}

var _ repositories.Workspace = (*Workspace)(nil)

// NewWorkspace creates a workspace rooted at dir. The directory itself
// must exist; the repository inside it may not yet.
func NewWorkspace(dir string) (*Workspace, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve path: %w", err)
	}
	return &Workspace{dir: absDir}, nil
}

func (w *Workspace) Dir() string {
	return w.dir
}

// Initialized probes for the control directory, the same check the
// original drivers used to decide whether to run init.
func (w *Workspace) Initialized() bool {
	info, err := os.Stat(filepath.Join(w.dir, ".git"))
	return err == nil && info.IsDir()
}

func (w *Workspace) Init(ctx context.Context) error {
	if w.Initialized() {
		return nil
	}
	if output, err := w.runGit(ctx, "init"); err != nil {
		return entities.WrapStageError(entities.KindVcsError, "init: "+output, err)
	}
	return nil
}

func (w *Workspace) BindRemote(ctx context.Context, name, url string) error {
	// Drop any stale binding first so re-binding is idempotent even
	// though repository creation is not.
	if _, err := w.runGit(ctx, "remote", "get-url", name); err == nil {
		if output, rmErr := w.runGit(ctx, "remote", "remove", name); rmErr != nil {
			return entities.WrapStageError(entities.KindVcsError, "remote remove: "+output, rmErr)
		}
	}
	if output, err := w.runGit(ctx, "remote", "add", name, url); err != nil {
		return entities.WrapStageError(entities.KindVcsError, "remote add: "+output, err)
	}
	return nil
}

func (w *Workspace) IdentityConfigured(ctx context.Context) bool {
	name, nameErr := w.runGit(ctx, "config", "--get", "user.name")
	email, emailErr := w.runGit(ctx, "config", "--get", "user.email")
	return nameErr == nil && emailErr == nil && name != "" && email != ""
}

func (w *Workspace) StageAll(ctx context.Context) error {
	if output, err := w.runGit(ctx, "add", "-A"); err != nil {
		return entities.WrapStageError(entities.KindVcsError, "stage all: "+output, err)
	}
	return nil
}

func (w *Workspace) Stage(ctx context.Context, paths ...string) error {
	if len(paths) == 0 {
		return nil
	}
	args := append([]string{"add", "--"}, paths...)
	if output, err := w.runGit(ctx, args...); err != nil {
		return entities.WrapStageError(entities.KindVcsError, "stage: "+output, err)
	}
	return nil
}

func (w *Workspace) Commit(ctx context.Context, message string) error {
	output, err := w.runGit(ctx, "commit", "-m", message)
	if err != nil {
		if strings.Contains(output, "nothing to commit") ||
			strings.Contains(err.Error(), "nothing to commit") {
			return entities.WrapStageError(entities.KindVcsError, "nothing to commit", err)
		}
		return entities.WrapStageError(entities.KindVcsError, "commit: "+output, err)
	}
	return nil
}

func (w *Workspace) RenameBranch(ctx context.Context, name string) error {
	if output, err := w.runGit(ctx, "branch", "-M", name); err != nil {
		return entities.WrapStageError(entities.KindVcsError, "rename branch: "+output, err)
	}
	return nil
}

func (w *Workspace) SwitchNew(ctx context.Context, name string) error {
	if output, err := w.runGit(ctx, "switch", "-c", name); err != nil {
		return entities.WrapStageError(entities.KindVcsError, "switch branch: "+output, err)
	}
	return nil
}

func (w *Workspace) Push(ctx context.Context, remote, branch string) error {
	if output, err := w.runGit(ctx, "push", "-u", remote, branch); err != nil {
		return entities.WrapStageError(entities.KindPushError, "push "+branch+": "+output, err)
	}
	return nil
}

// runGit executes a git command in the workspace and returns trimmed
// stdout, or the tool's diagnostic text on failure.
func (w *Workspace) runGit(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = w.dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		errMsg := strings.TrimSpace(stderr.String())
		if errMsg == "" {
			errMsg = strings.TrimSpace(stdout.String())
		}
		return errMsg, fmt.Errorf("git %s: %s", args[0], errMsg)
	}

	return strings.TrimSpace(stdout.String()), nil
}
