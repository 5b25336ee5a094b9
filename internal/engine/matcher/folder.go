package matcher

import (
	"path/filepath"
	"strings"
)

// maxContainerDepth bounds the upward walk from the executable's directory.
const maxContainerDepth = 4

// containerNames are directory names that hold binaries rather than naming
// the game itself. The walk skips past these to find the game-root folder.
var containerNames = map[string]bool{
	"bin":      true,
	"binaries": true,
	"win64":    true,
	"win32":    true,
	"x64":      true,
	"x86":      true,
	"x86_64":   true,
	"amd64":    true,
	"retail":   true,
	"shipping": true,
}

// gameRoot derives the probable game-root folder name for an executable path
// by walking upward past container directories. Returns "" when no usable
// folder name is found (e.g. the executable sits at a filesystem root).
func gameRoot(exePath string) string {
	dir := filepath.Dir(exePath)
	for i := 0; i < maxContainerDepth; i++ {
		name := filepath.Base(dir)
		if !usableFolderName(name) {
			return ""
		}
		if !containerNames[strings.ToLower(name)] {
			return name
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
	// Depth limit reached: settle for whatever directory the walk stopped at.
	if name := filepath.Base(dir); usableFolderName(name) {
		return name
	}
	return ""
}

// usableFolderName rejects names that cannot meaningfully appear in a log
// message: path roots, drive letters, and the empty string.
func usableFolderName(name string) bool {
	switch name {
	case "", ".", "/", "\\":
		return false
	}
	if len(name) == 2 && name[1] == ':' {
		return false
	}
	return true
}
