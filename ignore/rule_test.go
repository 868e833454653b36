package ignore

import "testing"

func TestParseRule(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		pattern  string
		negated  bool
		anchored bool
		dirOnly  bool
		skip     bool
		wantErr  bool
	}{
		{
			name: "blank line",
			line: "",
			skip: true,
		},
		{
			name: "comment",
			line: "# build artifacts",
			skip: true,
		},
		{
			name:    "simple glob",
			line:    "*.log",
			pattern: "*.log",
		},
		{
			name:    "negated",
			line:    "!important.log",
			pattern: "important.log",
			negated: true,
		},
		{
			name:    "directory only",
			line:    "node_modules/",
			pattern: "node_modules",
			dirOnly: true,
		},
		{
			name:     "leading slash anchors",
			line:     "/build",
			pattern:  "build",
			anchored: true,
		},
		{
			name:     "inner slash anchors",
			line:     "docs/*.md",
			pattern:  "docs/*.md",
			anchored: true,
		},
		{
			name:    "double star stays unanchored",
			line:    "**/generated",
			pattern: "**/generated",
		},
		{
			name:    "unclosed class is malformed",
			line:    "[abc",
			wantErr: true,
		},
		{
			name:    "bare slash is malformed",
			line:    "/",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, err := ParseRule(tt.line, 0)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.line)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.skip {
				if rule != nil {
					t.Fatalf("expected nil rule for %q, got %+v", tt.line, rule)
				}
				return
			}
			if rule.Pattern != tt.pattern {
				t.Errorf("pattern: expected %q, got %q", tt.pattern, rule.Pattern)
			}
			if rule.Negated != tt.negated {
				t.Errorf("negated: expected %v, got %v", tt.negated, rule.Negated)
			}
			if rule.Anchored != tt.anchored {
				t.Errorf("anchored: expected %v, got %v", tt.anchored, rule.Anchored)
			}
			if rule.DirOnly != tt.dirOnly {
				t.Errorf("dirOnly: expected %v, got %v", tt.dirOnly, rule.DirOnly)
			}
		})
	}
}

func TestRuleMatch(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		path  string
		isDir bool
		want  bool
	}{
		{
			name: "basename glob at depth",
			line: "*.log",
			path: "logs/nested/debug.log",
			want: true,
		},
		{
			name: "basename literal at depth",
			line: "Thumbs.db",
			path: "assets/Thumbs.db",
			want: true,
		},
		{
			name:  "dir-only does not match file",
			line:  "build/",
			path:  "build",
			isDir: false,
			want:  false,
		},
		{
			name:  "dir-only matches directory",
			line:  "build/",
			path:  "build",
			isDir: true,
			want:  true,
		},
		{
			name: "anchored misses nested path",
			line: "/config.yaml",
			path: "sub/config.yaml",
			want: false,
		},
		{
			name: "anchored matches root path",
			line: "/config.yaml",
			path: "config.yaml",
			want: true,
		},
		{
			name: "anchored glob with segment wildcard",
			line: "docs/*.md",
			path: "docs/readme.md",
			want: true,
		},
		{
			name: "segment wildcard does not cross slash",
			line: "docs/*.md",
			path: "docs/api/index.md",
			want: false,
		},
		{
			name: "double star crosses segments",
			line: "**/generated",
			path: "a/b/generated",
			want: true,
		},
		{
			name: "question mark within segment",
			line: "file?.txt",
			path: "x/file1.txt",
			want: true,
		},
		{
			name: "bracket class",
			line: "[Dd]ebug.log",
			path: "Debug.log",
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, err := ParseRule(tt.line, 0)
			if err != nil || rule == nil {
				t.Fatalf("parse %q: %v", tt.line, err)
			}
			if got := rule.Match(tt.path, tt.isDir); got != tt.want {
				t.Errorf("Match(%q, %v) = %v, want %v", tt.path, tt.isDir, got, tt.want)
			}
		})
	}
}
