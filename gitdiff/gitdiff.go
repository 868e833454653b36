// Package gitdiff retrieves working-tree and staged diffs from git.
//
// It is an external collaborator of the context engine: failures here
// are propagated as hard errors, never retried, and the engine only
// wraps the literal diff text this package returns.
package gitdiff

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrGitNotFound is returned when the git binary is not on PATH.
var ErrGitNotFound = errors.New("git command not found")

var diffArgs = []string{"diff", "--no-color", "--unified=3"}

// Diff returns the project's diff text. Staged changes come first;
// unless stagedOnly is set, unstaged changes are appended. An empty
// string means no changes.
func Diff(dir string, stagedOnly bool) (string, error) {
	staged, err := run(dir, append(append([]string(nil), diffArgs...), "--cached"))
	if err != nil {
		return "", err
	}
	if stagedOnly {
		return staged, nil
	}

	unstaged, err := run(dir, diffArgs)
	if err != nil {
		return "", err
	}
	return staged + unstaged, nil
}

// HasChanges reports whether the diff text contains anything.
func HasChanges(diff string) bool {
	return strings.TrimSpace(diff) != ""
}

func run(dir string, args []string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", fmt.Errorf("%w: is git installed and in your PATH?", ErrGitNotFound)
		}
		return "", fmt.Errorf("gitdiff: git %s: %w: %s",
			strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}
