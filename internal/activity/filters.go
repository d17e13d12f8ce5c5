package activity

import (
	"path/filepath"
	"strings"
)

// Directories whose contents never count as developer activity.
var dirsToExclude = []string{".git", ".hg", ".svn", "node_modules", ".idea", ".vscode"}

func excludedDir(name string) bool {
	for _, d := range dirsToExclude {
		if name == d {
			return true
		}
	}
	return false
}

// relevantPath filters out events from excluded directories and editor
// scratch files.
func relevantPath(path string) bool {
	base := filepath.Base(path)
	if strings.HasSuffix(base, "~") || strings.HasSuffix(base, ".swp") || strings.HasSuffix(base, ".tmp") {
		return false
	}
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if excludedDir(part) {
			return false
		}
	}
	return true
}
