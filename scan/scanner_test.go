package scan

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/contextpilot/pilot/ignore"
)

// writeTree creates files under root from a map of relative path to
// content. Parent directories are created as needed.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		abs := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(abs, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func relPaths(entries []FileEntry) []string {
	paths := make([]string, len(entries))
	for i, e := range entries {
		paths[i] = e.RelPath
	}
	return paths
}

func TestScanCollectsEntriesInTreeOrder(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"main.py":      "print('hi')\n",
		"src/app.py":   "app = 1\n",
		"src/zz.py":    "z = 2\n",
		"README.md":    "# readme\n",
		"src/b/lib.py": "lib = 3\n",
	})

	snap, err := New(ignore.New()).Scan(root)
	if err != nil {
		t.Fatal(err)
	}

	// Depth-first, directories before files, lexicographic.
	want := []string{"src/b/lib.py", "src/app.py", "src/zz.py", "main.py", "README.md"}
	got := relPaths(snap.Entries)
	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestScanPrunesExcludedDirectories(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"main.py":                "x = 1\n",
		"__pycache__/a.pyc":      "junk",
		"node_modules/pkg/x.js":  "junk",
		"src/__pycache__/b.pyc":  "junk",
		"src/ok.py":              "ok = 1\n",
	})

	snap, err := New(ignore.New()).Scan(root)
	if err != nil {
		t.Fatal(err)
	}

	for _, e := range snap.Entries {
		if strings.Contains(e.RelPath, "__pycache__") || strings.Contains(e.RelPath, "node_modules") {
			t.Errorf("excluded subtree leaked into entries: %s", e.RelPath)
		}
	}
	if strings.Contains(snap.Tree, "__pycache__") || strings.Contains(snap.Tree, "node_modules") {
		t.Errorf("excluded subtree leaked into tree:\n%s", snap.Tree)
	}
	if !strings.Contains(snap.Tree, "ok.py") {
		t.Errorf("included file missing from tree:\n%s", snap.Tree)
	}
}

func TestScanNegatedRuleScenario(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"debug.log":     "dbg",
		"important.log": "keep",
	})

	f := ignore.New()
	f.Add("*.log", "!important.log")

	snap, err := New(f).Scan(root)
	if err != nil {
		t.Fatal(err)
	}

	got := relPaths(snap.Entries)
	if len(got) != 1 || got[0] != "important.log" {
		t.Fatalf("expected only important.log, got %v", got)
	}
}

func TestScanExtensionFilterAfterIgnore(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"main.py":  "x = 1\n",
		"notes.md": "# notes\n",
		"data.csv": "a,b\n",
	})

	snap, err := New(ignore.New()).WithExtensions(".py", "md").Scan(root)
	if err != nil {
		t.Fatal(err)
	}

	included := map[string]bool{}
	for _, e := range snap.Entries {
		included[e.RelPath] = e.Included
	}
	if !included["main.py"] || !included["notes.md"] {
		t.Errorf("expected .py and .md included, got %v", included)
	}
	if included["data.csv"] {
		t.Error("expected data.csv content-excluded by extension filter")
	}
	// Extension-filtered files still show up in the tree.
	if !strings.Contains(snap.Tree, "data.csv") {
		t.Errorf("data.csv missing from tree:\n%s", snap.Tree)
	}
}

func TestScanBinaryFileStaysInTreeWithoutContent(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"main.py": "x = 1\n"})
	if err := os.WriteFile(filepath.Join(root, "blob.bin"), []byte{0xff, 0xfe, 0x00, 0x80}, 0o644); err != nil {
		t.Fatal(err)
	}

	snap, err := New(ignore.New()).Scan(root)
	if err != nil {
		t.Fatal(err)
	}

	var blob *FileEntry
	for i := range snap.Entries {
		if snap.Entries[i].RelPath == "blob.bin" {
			blob = &snap.Entries[i]
		}
	}
	if blob == nil {
		t.Fatal("binary file missing from entries")
	}
	if blob.Included || blob.Content != "" {
		t.Error("binary file must not be selected for content embedding")
	}
	if !strings.Contains(snap.Tree, "blob.bin") {
		t.Errorf("binary file missing from tree:\n%s", snap.Tree)
	}
}

func TestScanTreeRendering(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"b.py":       "b",
		"a/one.py":   "1",
		"a/two.py":   "2",
	})

	snap, err := New(ignore.New()).Scan(root)
	if err != nil {
		t.Fatal(err)
	}

	want := strings.Join([]string{
		".",
		"├── a",
		"│   ├── one.py",
		"│   └── two.py",
		"└── b.py",
	}, "\n")
	if snap.Tree != want {
		t.Errorf("tree mismatch:\ngot:\n%s\nwant:\n%s", snap.Tree, want)
	}
}

func TestScanEmptyProject(t *testing.T) {
	snap, err := New(ignore.New()).Scan(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if len(snap.Entries) != 0 {
		t.Errorf("expected no entries, got %v", relPaths(snap.Entries))
	}
	if snap.Tree != "." {
		t.Errorf("expected bare root tree, got %q", snap.Tree)
	}
}

func TestScanRootMustBeDirectory(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "f.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := New(ignore.New()).Scan(file); err == nil {
		t.Error("expected error scanning a non-directory root")
	}
}
