package activity

import "testing"

func TestRelevantPath(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/home/dev/project/main.go", true},
		{"/home/dev/project/.git/index", false},
		{"/home/dev/project/node_modules/pkg/index.js", false},
		{"/home/dev/project/notes.txt~", false},
		{"/home/dev/project/.main.go.swp", false},
		{"/home/dev/project/build.tmp", false},
		{"/home/dev/project/internal/tracker/tracker.go", true},
	}

	for _, tt := range tests {
		if got := relevantPath(tt.path); got != tt.want {
			t.Errorf("relevantPath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
