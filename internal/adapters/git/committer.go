package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/clinch-dev/clinch/internal/config"
	"github.com/clinch-dev/clinch/internal/usecase"
)

// Git-specific errors
var (
	// ErrNotGitRepo indicates the project is not inside a git work tree.
	ErrNotGitRepo = errors.New("not a git repository")

	// ErrPushRejected indicates the remote has commits we don't have.
	ErrPushRejected = errors.New("push rejected by remote")

	// ErrAuthFailed indicates git could not authenticate against the remote.
	ErrAuthFailed = errors.New("git authentication failed")

	// ErrNoNetwork indicates the remote host could not be reached.
	ErrNoNetwork = errors.New("could not reach remote")

	// ErrNoBranch indicates HEAD is detached or the branch can't be determined.
	ErrNoBranch = errors.New("could not detect current branch")
)

// Committer stages and commits the registry directory by shelling out to git.
type Committer struct {
	workDir string
	remote  string
}

// NewCommitter creates a committer operating in workDir
func NewCommitter(workDir, remote string) *Committer {
	if remote == "" {
		remote = "origin"
	}
	return &Committer{workDir: workDir, remote: remote}
}

// NewCommitterFromConfig creates a Committer from RuntimeConfig
func NewCommitterFromConfig(cfg *config.RuntimeConfig) *Committer {
	return NewCommitter(cfg.ProjectRoot, cfg.GitRemote)
}

// CommitRegistry stages dir and commits it with message. When push is set
// the current branch is pushed to the configured remote. "Nothing to commit"
// is not an error.
func (c *Committer) CommitRegistry(ctx context.Context, dir, message string, push bool) (*usecase.CommitResult, error) {
	if !c.IsGitRepo(ctx) {
		return nil, ErrNotGitRepo
	}

	rel := dir
	if filepath.IsAbs(dir) {
		if r, err := filepath.Rel(c.workDir, dir); err == nil {
			rel = r
		}
	}

	if _, err := c.run(ctx, "add", "--", rel); err != nil {
		return nil, fmt.Errorf("failed to stage %s: %w", rel, err)
	}

	result := &usecase.CommitResult{Message: message}

	// diff --quiet exits 0 when nothing under rel is staged
	if _, err := c.run(ctx, "diff", "--cached", "--quiet", "--", rel); err != nil {
		if _, err := c.run(ctx, "commit", "-m", message, "--", rel); err != nil {
			return nil, fmt.Errorf("failed to commit: %w", err)
		}
		result.Committed = true
		if hash, err := c.run(ctx, "rev-parse", "--short", "HEAD"); err == nil {
			result.Commit = hash
		}
	}

	if !push {
		return result, nil
	}

	branch, err := c.CurrentBranch(ctx)
	if err != nil {
		return result, err
	}
	result.Branch = branch

	if _, err := c.run(ctx, "push", c.remote, branch); err != nil {
		return result, fmt.Errorf("failed to push %s to %s: %w", branch, c.remote, err)
	}
	result.Pushed = true
	return result, nil
}

// IsGitRepo checks if the working directory is inside a git work tree.
func (c *Committer) IsGitRepo(ctx context.Context) bool {
	_, err := c.run(ctx, "rev-parse", "--is-inside-work-tree")
	return err == nil
}

// CurrentBranch returns the name of the current branch.
func (c *Committer) CurrentBranch(ctx context.Context) (string, error) {
	output, err := c.run(ctx, "branch", "--show-current")
	if err == nil && output != "" {
		return output, nil
	}

	// Fallback: parse symbolic-ref
	output, err = c.run(ctx, "symbolic-ref", "--short", "HEAD")
	if err != nil || output == "" {
		return "", ErrNoBranch
	}
	return output, nil
}

// run executes a git command and returns trimmed stdout.
func (c *Committer) run(ctx context.Context, args ...string) (string, error) {
	//nolint:gosec // G204: args come from controlled sources
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = c.workDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = strings.TrimSpace(stdout.String())
		}
		if msg != "" {
			return "", parseGitError(msg, err)
		}
		return "", fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
	}

	return strings.TrimSpace(stdout.String()), nil
}

// parseGitError converts git output to specific error types.
func parseGitError(output string, originalErr error) error {
	lower := strings.ToLower(output)

	switch {
	case strings.Contains(lower, "not a git repository"):
		return fmt.Errorf("%w: %s", ErrNotGitRepo, output)
	case strings.Contains(lower, "rejected") || strings.Contains(lower, "non-fast-forward"):
		return fmt.Errorf("%w: %s", ErrPushRejected, output)
	case strings.Contains(lower, "could not resolve host"):
		return fmt.Errorf("%w: %s", ErrNoNetwork, output)
	case strings.Contains(lower, "permission denied") || strings.Contains(lower, "authentication failed"):
		return fmt.Errorf("%w: %s", ErrAuthFailed, output)
	}

	return fmt.Errorf("git error: %s: %w", output, originalErr)
}

var _ usecase.VersionControl = (*Committer)(nil)
