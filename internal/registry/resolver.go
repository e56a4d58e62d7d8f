package registry

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/sevanssp/avm/internal/logger"
)

// MissLevel selects the log severity used when the requested application is
// not registered. The zero value logs at warning level.
type MissLevel int

const (
	// MissWarn logs unregistered applications as warnings.
	MissWarn MissLevel = iota
	// MissError logs unregistered applications as errors.
	MissError
)

func (l MissLevel) zerolog() zerolog.Level {
	if l == MissError {
		return zerolog.ErrorLevel
	}
	return zerolog.WarnLevel
}

// Options configures a Resolver. The two historical variants of this tool
// differed only in these knobs, so they are explicit options instead of
// divergent code paths.
type Options struct {
	// Quote wraps results in double quotes, for callers that splice the
	// path into a shell command line and need embedded spaces to survive.
	Quote bool
	// MissingAppLevel is the log severity for an unregistered application.
	MissingAppLevel MissLevel
}

// Resolver answers executable-path and install-directory queries against a
// Registry. All misses are soft: the result is ("", false) and a log entry,
// never an error. A stale registry pointing at uninstalled software is a
// normal condition for this tool.
type Resolver struct {
	quote     bool
	missLevel MissLevel
}

// NewResolver creates a Resolver with the given options.
func NewResolver(opts Options) *Resolver {
	return &Resolver{
		quote:     opts.Quote,
		missLevel: opts.MissingAppLevel,
	}
}

// launcherSuffixes maps application names to the path of their launcher
// relative to the installation directory. Applications listed here ignore
// the recorded ExeFilePath, which points at the GUI rather than the batch
// runner. Extend the table to register another special case.
var launcherSuffixes = map[string][]string{
	"simo":   {"simo", "bin", "rsimo.exe"},
	"riflex": {"Riflex", "bin", "riflex.bat"},
}

// Executable resolves the executable path for appName. An empty version
// selects the version flagged as default. The path must exist on the local
// filesystem or the resolution is a miss.
func (r *Resolver) Executable(reg *Registry, appName, version string) (string, bool) {
	rec, ok := r.lookup(reg, appName, version)
	if !ok {
		return "", false
	}

	path := rec.ExePath
	if suffix, special := launcherSuffixes[strings.ToLower(appName)]; special {
		path = filepath.Join(append([]string{rec.InstallDir}, suffix...)...)
	}
	return r.verify(path, appName, rec.Number)
}

// InstallDir resolves the installation directory for appName. Same control
// flow as Executable, but always the recorded InstallDir, with no launcher
// suffix applied.
func (r *Resolver) InstallDir(reg *Registry, appName, version string) (string, bool) {
	rec, ok := r.lookup(reg, appName, version)
	if !ok {
		return "", false
	}
	return r.verify(rec.InstallDir, appName, rec.Number)
}

// lookup finds the version record for the query, logging each kind of miss.
func (r *Resolver) lookup(reg *Registry, appName, version string) (Version, bool) {
	table, ok := reg.App(appName)
	if !ok {
		logger.WithLevel(r.missLevel.zerolog()).
			Str("app", appName).
			Msg("application is not registered in Application Version Manager")
		return Version{}, false
	}

	if version != "" {
		rec, ok := table.Version(version)
		if !ok {
			logger.Warn().
				Str("app", appName).
				Str("version", version).
				Msg("version is not registered in Application Version Manager")
			return Version{}, false
		}
		return rec, true
	}

	rec, ok := table.Default()
	if !ok {
		logger.Warn().
			Str("app", appName).
			Msg("no default version registered in Application Version Manager")
		return Version{}, false
	}
	return rec, true
}

// ResolveExecutable loads the registry document at sourcePath (empty means
// the default location) and resolves the executable path in one call. The
// bool is false on a soft miss; the error is non-nil only for hard failures
// locating or parsing the document.
func ResolveExecutable(appName, version, sourcePath string, opts Options) (string, bool, error) {
	reg, err := Load(sourcePath)
	if err != nil {
		return "", false, err
	}
	path, ok := NewResolver(opts).Executable(reg, appName, version)
	return path, ok, nil
}

// ResolveInstallDir is the installation-directory counterpart of
// ResolveExecutable.
func ResolveInstallDir(appName, version, sourcePath string, opts Options) (string, bool, error) {
	reg, err := Load(sourcePath)
	if err != nil {
		return "", false, err
	}
	dir, ok := NewResolver(opts).InstallDir(reg, appName, version)
	return dir, ok, nil
}

// verify gates the result on filesystem existence and applies quoting.
func (r *Resolver) verify(path, appName, versionNumber string) (string, bool) {
	if _, err := os.Stat(path); err != nil {
		logger.Warn().
			Str("app", appName).
			Str("version", versionNumber).
			Str("path", path).
			Msg("resolved path does not exist")
		return "", false
	}
	if r.quote {
		path = `"` + path + `"`
	}
	return path, true
}
