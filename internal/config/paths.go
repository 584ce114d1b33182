package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ExecutableDir returns the directory where the current executable resides.
func ExecutableDir() string {
	exe, err := os.Executable()
	if err == nil && strings.TrimSpace(exe) != "" {
		if resolved, resolveErr := filepath.EvalSymlinks(exe); resolveErr == nil && strings.TrimSpace(resolved) != "" {
			exe = resolved
		}
		return filepath.Dir(exe)
	}

	if wd, wdErr := os.Getwd(); wdErr == nil && strings.TrimSpace(wd) != "" {
		return wd
	}
	return "."
}

// ResolveRuntimePath resolves runtime directories against the executable directory.
func ResolveRuntimePath(raw string, fallbackSubdir string) string {
	target := strings.TrimSpace(raw)
	if target == "" {
		target = strings.TrimSpace(fallbackSubdir)
		if target == "" {
			return ExecutableDir()
		}
	}
	if filepath.IsAbs(target) {
		return filepath.Clean(target)
	}
	return filepath.Clean(filepath.Join(ExecutableDir(), target))
}

func (c *AppConfig) LogDir() string {
	if c == nil {
		return ResolveRuntimePath("", "logs")
	}
	return ResolveRuntimePath(c.Paths.Logs, "logs")
}

// MediaDir is where uploaded images, resumes and documents live when the
// local storage driver is active.
func (c *AppConfig) MediaDir() string {
	if c == nil {
		return ResolveRuntimePath("", "media")
	}
	return ResolveRuntimePath(c.Paths.Media, "media")
}

// SQLitePath resolves the sqlite database file, keeping ":memory:" and
// "file:" URIs untouched.
func (c DatabaseRuntimeConfig) SQLitePath() string {
	p := strings.TrimSpace(c.Path)
	if p == "" {
		p = defaultSQLitePath
	}
	if p == ":memory:" || strings.HasPrefix(p, "file:") {
		return p
	}
	return ResolveRuntimePath(p, "")
}
