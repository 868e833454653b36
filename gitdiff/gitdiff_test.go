package gitdiff

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
}

func git(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_NAME=test", "GIT_AUTHOR_EMAIL=test@example.com",
		"GIT_COMMITTER_NAME=test", "GIT_COMMITTER_EMAIL=test@example.com",
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("git %v: %v\n%s", args, err, out)
	}
}

func TestDiff(t *testing.T) {
	requireGit(t)

	dir := t.TempDir()
	git(t, dir, "init")
	file := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(file, []byte("one\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	git(t, dir, "add", "a.txt")
	git(t, dir, "commit", "-m", "initial")

	// No changes yet.
	diff, err := Diff(dir, false)
	if err != nil {
		t.Fatal(err)
	}
	if HasChanges(diff) {
		t.Errorf("expected empty diff, got %q", diff)
	}

	// Unstaged change shows up in the default mode only.
	if err := os.WriteFile(file, []byte("one\ntwo\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	diff, err = Diff(dir, false)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(diff, "+two") {
		t.Errorf("expected unstaged change in diff, got %q", diff)
	}

	stagedOnly, err := Diff(dir, true)
	if err != nil {
		t.Fatal(err)
	}
	if HasChanges(stagedOnly) {
		t.Errorf("expected no staged changes, got %q", stagedOnly)
	}

	// After staging, both modes include it.
	git(t, dir, "add", "a.txt")
	stagedOnly, err = Diff(dir, true)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stagedOnly, "+two") {
		t.Errorf("expected staged change in --staged diff, got %q", stagedOnly)
	}
}

func TestDiffOutsideRepository(t *testing.T) {
	requireGit(t)

	if _, err := Diff(t.TempDir(), false); err == nil {
		t.Error("expected a hard failure outside a repository")
	}
}
