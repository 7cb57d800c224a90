package defs

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

//go:embed *.yaml
var DefsFS embed.FS

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

// Load reads a definition file, preferring a copy on disk under defs/
// over the embedded one so edits take effect without rebuilding.
func Load(name string) ([]byte, error) {
	clean := cleanDefPath(name)
	if data, err := os.ReadFile(diskDefPath(clean)); err == nil {
		return data, nil
	}
	return DefsFS.ReadFile(clean)
}

// LoadScript reads an event script, preferring the disk copy.
func LoadScript(name string) ([]byte, error) {
	clean := cleanScriptPath(name)
	if data, err := os.ReadFile(filepath.Join("defs", filepath.FromSlash(clean))); err == nil {
		return data, nil
	}
	return ScriptsFS.ReadFile(clean)
}

// ModTime reports the on-disk modification time of a definition file, and
// false when only the embedded copy exists.
func ModTime(name string) (time.Time, bool) {
	clean := cleanDefPath(name)
	info, err := os.Stat(diskDefPath(clean))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

func cleanDefPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	return strings.TrimPrefix(s, "defs/")
}

func cleanScriptPath(path string) string {
	if path == "" {
		return ""
	}

	s := filepath.ToSlash(path)

	if after, ok := strings.CutPrefix(s, "defs/scripts/"); ok {
		s = after
	}

	if after, ok := strings.CutPrefix(s, "defs/"); ok {
		s = after
	}

	if after, ok := strings.CutPrefix(s, "scripts/"); ok {
		s = after
	}

	return fmt.Sprintf("scripts/%s", s)
}

func diskDefPath(clean string) string {
	return filepath.Join("defs", filepath.FromSlash(clean))
}
