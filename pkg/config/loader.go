package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/permly/pkg/errors"
	"github.com/arthur-debert/permly/pkg/logging"
	"github.com/arthur-debert/permly/pkg/paths"
	"github.com/knadh/koanf/parsers/toml"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables mapped onto settings
const EnvPrefix = "PERMLY_"

// Load builds the settings from defaults, the user file and the environment
func Load(p paths.Paths) (*Settings, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. First user file that exists
	for _, path := range p.ConfigFiles() {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
				WithDetail("path", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded user config")
		break
	}

	// 3. Environment
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	var s Settings
	if err := k.Unmarshal("", &s); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	normalize(&s)
	if err := Validate(&s); err != nil {
		return nil, err
	}

	return &s, nil
}

// Default returns the settings from the embedded defaults only
func Default() *Settings {
	return &Settings{
		Logging: LoggingSettings{Level: "warn"},
		Output:  OutputSettings{Color: ColorAuto},
	}
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return kyaml.Parser()
	default:
		return toml.Parser()
	}
}

func normalize(s *Settings) {
	s.Logging.Level = strings.ToLower(strings.TrimSpace(s.Logging.Level))
	s.Logging.File = paths.ExpandHome(strings.TrimSpace(s.Logging.File))
	s.Output.Color = strings.ToLower(strings.TrimSpace(s.Output.Color))
}
