package vcslog

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/Tiliavir/clocked/internal/model"
)

// Supported version-control systems.
const (
	VCSHg  = "hg"
	VCSGit = "git"
)

const (
	hgTemplate = Separator + "\ndate:{date}\ndesc:{desc|firstline}\nfiles:{files}\n"
	gitFormat  = "format:" + Separator + "%ndate:%at%ndesc:%s%nfiles:"
)

// Runner reads commit logs by invoking the hg or git executable.
type Runner struct {
	VCS      string
	Location *time.Location
}

// NewRunner returns a Runner for vcs ("hg" or "git").
func NewRunner(vcs string, loc *time.Location) (*Runner, error) {
	if vcs != VCSHg && vcs != VCSGit {
		return nil, fmt.Errorf("unsupported vcs %q: must be %q or %q", vcs, VCSHg, VCSGit)
	}
	if loc == nil {
		loc = time.Local
	}
	return &Runner{VCS: vcs, Location: loc}, nil
}

func (r *Runner) run(ctx context.Context, repo string, args ...string) (string, error) {
	var full []string
	if r.VCS == VCSHg {
		full = append([]string{"-R", repo}, args...)
	} else {
		full = append([]string{"-C", repo}, args...)
	}
	cmd := exec.CommandContext(ctx, r.VCS, full...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%s %s in %s: %w: %s", r.VCS, args[0], repo, err, strings.TrimSpace(stderr.String()))
	}
	return strings.TrimSpace(stdout.String()), nil
}

// RepoName returns the repository's short name: the last path component of
// its default remote, without a ".git" suffix. Repositories without a remote
// are named after their directory.
func (r *Runner) RepoName(ctx context.Context, repo string) (string, error) {
	var (
		remote string
		err    error
	)
	if r.VCS == VCSHg {
		remote, err = r.run(ctx, repo, "showconfig", "paths.default")
	} else {
		remote, err = r.run(ctx, repo, "config", "--get", "remote.origin.url")
	}
	if err != nil || remote == "" {
		abs, absErr := filepath.Abs(repo)
		if absErr != nil {
			return "", absErr
		}
		return filepath.Base(abs), nil
	}
	return shortName(remote), nil
}

func shortName(remote string) string {
	remote = strings.TrimRight(remote, "/")
	if i := strings.LastIndexAny(remote, "/:"); i >= 0 {
		remote = remote[i+1:]
	}
	return strings.TrimSuffix(remote, ".git")
}

// Log returns user's commits in repo.
func (r *Runner) Log(ctx context.Context, repo, user string) ([]model.LogEntry, error) {
	name, err := r.RepoName(ctx, repo)
	if err != nil {
		return nil, err
	}
	var out string
	if r.VCS == VCSHg {
		out, err = r.run(ctx, repo, "log", "-u", user, "--template", hgTemplate)
	} else {
		out, err = r.run(ctx, repo, "log", "--author="+user, "--name-only", "--pretty="+gitFormat)
	}
	if err != nil {
		return nil, err
	}
	return ParseLog(name, out, r.Location)
}

// DetectRepositories returns dir if it is a repository, followed by every
// direct subdirectory of dir that is one.
func DetectRepositories(dir, vcs string) ([]string, error) {
	marker := "." + vcs
	var repos []string
	if isDir(filepath.Join(dir, marker)) {
		repos = append(repos, dir)
	}
	matches, err := filepath.Glob(filepath.Join(dir, "*", marker))
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}
	for _, m := range matches {
		if isDir(m) {
			repos = append(repos, filepath.Clean(filepath.Dir(m)))
		}
	}
	return repos, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
