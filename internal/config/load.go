package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// DefaultFileName is the config file looked up in the working directory
// when no explicit path is given.
const DefaultFileName = "sheetcrop.toml"

//go:embed sample_config.toml
var sampleConfig string

// fileConfig mirrors the TOML layout. Pointer and nil-able fields
// distinguish "absent" from "zero" so absent keys keep their defaults.
type fileConfig struct {
	Targets            *string           `toml:"targets"`
	Results            *string           `toml:"results"`
	SpriteSheetPattern *string           `toml:"sprite_sheet_pattern"`
	Ignore             []string          `toml:"ignore"`
	Animations         []string          `toml:"animations"`
	AnimationsData     map[string]Region `toml:"animations_data"`
	Workers            *int              `toml:"workers"`
	Strict             *bool             `toml:"strict"`
	Verbose            *bool             `toml:"verbose"`
	Color              *string           `toml:"color"`
	LogFile            *string           `toml:"log_file"`
}

// Load starts from [DefaultConfig] and overlays the TOML file at path. An
// empty path looks for [DefaultFileName] in the working directory; a
// missing default file is not an error. It returns the resolved path and
// whether a file was actually read. The result is not validated; callers
// apply flag overrides first and then call [Config.Validate].
func Load(path string) (Config, string, bool, error) {
	cfg := DefaultConfig()

	resolved, exists, err := resolveConfigPath(path)
	if err != nil {
		return cfg, "", false, err
	}
	if !exists {
		if path != "" {
			return cfg, resolved, false, fmt.Errorf("config file not found: %s", resolved)
		}
		return cfg, resolved, false, nil
	}

	file, err := os.Open(resolved)
	if err != nil {
		return cfg, resolved, false, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	var fc fileConfig
	decoder := toml.NewDecoder(file)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&fc); err != nil {
		return cfg, resolved, true, fmt.Errorf("parse config %s: %w", resolved, err)
	}
	fc.apply(&cfg)
	return cfg, resolved, true, nil
}

// apply overlays present keys onto cfg. A present animations_data table
// replaces the default map wholesale; partial merges would silently keep
// default rectangles the user meant to drop.
func (fc *fileConfig) apply(cfg *Config) {
	if fc.Targets != nil {
		cfg.Targets = NormalizeDirArg(*fc.Targets)
	}
	if fc.Results != nil {
		cfg.Results = NormalizeDirArg(*fc.Results)
	}
	if fc.SpriteSheetPattern != nil {
		cfg.SpriteSheetPattern = *fc.SpriteSheetPattern
	}
	if fc.Ignore != nil {
		cfg.IgnorePatterns = fc.Ignore
	}
	if fc.Animations != nil {
		cfg.Animations = fc.Animations
	}
	if fc.AnimationsData != nil {
		cfg.AnimationsData = fc.AnimationsData
	}
	if fc.Workers != nil {
		cfg.Workers = *fc.Workers
	}
	if fc.Strict != nil {
		cfg.Strict = *fc.Strict
	}
	if fc.Verbose != nil {
		cfg.Verbose = *fc.Verbose
	}
	if fc.Color != nil {
		cfg.ColorMode = ColorMode(*fc.Color)
	}
	if fc.LogFile != nil {
		cfg.LogFile = *fc.LogFile
	}
}

func resolveConfigPath(path string) (string, bool, error) {
	if path == "" {
		path = DefaultFileName
	}
	abs, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return "", false, fmt.Errorf("resolve config path %q: %w", path, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return abs, false, nil
		}
		return "", false, fmt.Errorf("stat config: %w", err)
	}
	if info.IsDir() {
		return "", false, fmt.Errorf("config path is a directory: %s", abs)
	}
	return abs, true, nil
}

// CreateSample writes the sample configuration file to path. It refuses to
// overwrite an existing file.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("config file already exists: %s", path)
		}
		return fmt.Errorf("write sample config: %w", err)
	}
	if _, err := f.WriteString(sampleConfig); err != nil {
		f.Close()
		return fmt.Errorf("write sample config: %w", err)
	}
	return f.Close()
}
