package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvPermlyConfigDir overrides the XDG config directory for permly
	EnvPermlyConfigDir = "PERMLY_CONFIG_DIR"

	// EnvPermlyStateDir overrides the XDG state directory for permly
	EnvPermlyStateDir = "PERMLY_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// PermlyDirName is the directory name for permly-specific files
	PermlyDirName = "permly"

	// LogFileName is the name of the log file
	LogFileName = "permly.log"
)

// ConfigFileNames are the settings files looked up in ConfigDir, in order
var ConfigFileNames = []string{"config.toml", "config.yaml", "config.yml"}

// Paths provides the locations of permly's own files
type Paths interface {
	ConfigDir() string
	StateDir() string
	LogFilePath() string
	ConfigFiles() []string
}

type paths struct {
	xdgConfig string
	xdgState  string
}

// New creates a Paths instance from the environment. Directory overrides win
// over the XDG defaults.
func New() Paths {
	p := &paths{}

	if configDir := os.Getenv(EnvPermlyConfigDir); configDir != "" {
		p.xdgConfig = expandHome(configDir)
	} else {
		p.xdgConfig = filepath.Join(configHome(), PermlyDirName)
	}

	if stateDir := os.Getenv(EnvPermlyStateDir); stateDir != "" {
		p.xdgState = expandHome(stateDir)
	} else {
		p.xdgState = filepath.Join(stateHome(), PermlyDirName)
	}

	return p
}

// configHome honors XDG_CONFIG_HOME set after process start, which
// xdg.ConfigHome (resolved at init) would miss.
func configHome() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir
	}
	return xdg.ConfigHome
}

func stateHome() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return dir
	}
	return xdg.StateHome
}

func (p *paths) ConfigDir() string {
	return p.xdgConfig
}

func (p *paths) StateDir() string {
	return p.xdgState
}

func (p *paths) LogFilePath() string {
	return filepath.Join(p.xdgState, LogFileName)
}

// ConfigFiles returns the candidate settings files, most preferred first
func (p *paths) ConfigFiles() []string {
	files := make([]string, 0, len(ConfigFileNames))
	for _, name := range ConfigFileNames {
		files = append(files, filepath.Join(p.xdgConfig, name))
	}
	return files
}

// expandHome expands ~ to the home directory
func expandHome(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			// Fallback to HOME env var
			homeDir = os.Getenv(EnvHome)
			if homeDir == "" {
				// Can't expand, return as-is
				return path
			}
		}

		if len(path) == 1 {
			return homeDir
		}

		// Handle both ~/ and ~
		if path[1] == '/' || path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:])
		}

		// ~something (not the user's home)
		return path
	}

	return path
}

// ExpandHome expands a leading "~" or "~/" to the user's home directory
func ExpandHome(path string) string {
	return expandHome(path)
}

// Canonicalize returns the absolute, symlink-resolved form of path.
// It fails when path does not exist.
func Canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
