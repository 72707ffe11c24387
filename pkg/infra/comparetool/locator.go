package comparetool

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rivoric/vstsdiff/pkg/domain/interfaces"
	"github.com/rivoric/vstsdiff/pkg/domain/model"
)

// probeEnvVars are the program-files directories checked, in order, for a
// default Beyond Compare 4 installation.
var probeEnvVars = []string{
	"ProgramFiles",
	"ProgramFiles(x86)",
	"ProgramW6432",
}

// probeRelPath is the installation path of BCompare.exe below each
// program-files directory.
var probeRelPath = filepath.Join("Beyond Compare 4", "BCompare.exe")

// Locator resolves the comparison executable path
type Locator struct {
	lookupEnv func(key string) (string, bool)
	stat      func(name string) (fs.FileInfo, error)
}

// LocatorOption is a functional option for Locator configuration
type LocatorOption func(*Locator)

// WithLookupEnv overrides environment variable lookup. Intended for tests.
func WithLookupEnv(f func(key string) (string, bool)) LocatorOption {
	return func(l *Locator) {
		l.lookupEnv = f
	}
}

// WithStat overrides file existence checking. Intended for tests.
func WithStat(f func(name string) (fs.FileInfo, error)) LocatorOption {
	return func(l *Locator) {
		l.stat = f
	}
}

// NewLocator creates a new Locator
func NewLocator(opts ...LocatorOption) interfaces.ToolLocator {
	l := &Locator{
		lookupEnv: os.LookupEnv,
		stat:      os.Stat,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Resolve returns the comparison executable path. An explicit path wins
// unconditionally and skips all probing; otherwise each well-known
// installation location is checked and the first existing regular file is
// returned.
func (l *Locator) Resolve(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	for _, envVar := range probeEnvVars {
		dir, ok := l.lookupEnv(envVar)
		if !ok || dir == "" {
			continue
		}

		candidate := filepath.Join(dir, probeRelPath)
		if info, err := l.stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", model.NewExitError(model.ExitCompareToolNotFound,
		"no comparison tool found at the default locations, supply one with --compare-exe")
}
