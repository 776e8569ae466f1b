package xconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	koanf "github.com/knadh/koanf/v2"
	"github.com/knadh/koanf/providers/confmap"
)

// PxConfig is px's resolved configuration, read from
// <config-dir>/px/config.toml per §6.
type PxConfig struct {
	// ScanDirs lists absolute directories C6.Sync walks for repositories.
	// Absoluteness is checked separately in ValidatePx; the struct tag only
	// rejects empty-string entries, since a not-yet-created directory is a
	// valid scan root (Sync tolerates it, surfacing a diagnostic).
	ScanDirs []string `toml:"scan_dirs" validate:"dive,required"`

	// DefaultEditor is opaque to the core; the front-end uses it to open a
	// selected project.
	DefaultEditor string `toml:"default_editor"`

	// ObsidianVault is an optional opaque path to a note vault the
	// front-end may cross-reference; empty disables the feature.
	ObsidianVault string `toml:"obsidian_vault"`
}

// DefaultPxConfig returns built-in defaults: no scan dirs (the user must
// configure at least one), and no editor/vault preference.
func DefaultPxConfig() PxConfig {
	return PxConfig{}
}

// PxConfigPath returns the canonical location of px's config file.
func PxConfigPath() string {
	return filepath.Join(ConfigDir("px"), "config.toml")
}

// PxResolveOptions configures layered resolution for px.
type PxResolveOptions struct {
	// ConfigPath overrides PxConfigPath(), primarily for tests.
	ConfigPath string

	// Flags holds explicit CLI overrides, highest precedence. Recognized
	// keys: "scan_dirs", "default_editor", "obsidian_vault".
	Flags map[string]any
}

// ResolvePx runs the layered resolution pipeline for px: built-in defaults,
// then the global config file, then DEVKIT_PX_* environment variables, then
// explicit flag overrides. A missing config file is not an error; a
// malformed one is.
func ResolvePx(opts PxResolveOptions) (PxConfig, error) {
	path := opts.ConfigPath
	if path == "" {
		path = PxConfigPath()
	}

	k := koanf.New(".")

	if err := loadMap(k, pxConfigToMap(DefaultPxConfig())); err != nil {
		return PxConfig{}, fmt.Errorf("loading px defaults: %w", err)
	}

	fileMap, err := loadPxFile(path)
	if err != nil {
		return PxConfig{}, err
	}
	if fileMap != nil {
		if err := loadMap(k, fileMap); err != nil {
			return PxConfig{}, fmt.Errorf("loading px config %s: %w", path, err)
		}
	}

	if envMap := buildPxEnvMap(); len(envMap) > 0 {
		if err := loadMap(k, envMap); err != nil {
			return PxConfig{}, fmt.Errorf("loading px env overrides: %w", err)
		}
	}

	if len(opts.Flags) > 0 {
		if err := loadMap(k, opts.Flags); err != nil {
			return PxConfig{}, fmt.Errorf("loading px flag overrides: %w", err)
		}
	}

	cfg := PxConfig{
		ScanDirs:      k.Strings("scan_dirs"),
		DefaultEditor: k.String("default_editor"),
		ObsidianVault: k.String("obsidian_vault"),
	}

	if err := ValidatePx(cfg); err != nil {
		return PxConfig{}, err
	}
	return cfg, nil
}

// loadPxFile parses path as TOML and returns a flat map, or nil if the file
// does not exist.
func loadPxFile(path string) (map[string]any, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	var raw PxConfig
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return pxConfigToMap(raw), nil
}

func pxConfigToMap(c PxConfig) map[string]any {
	return map[string]any{
		"scan_dirs":      c.ScanDirs,
		"default_editor": c.DefaultEditor,
		"obsidian_vault": c.ObsidianVault,
	}
}

func loadMap(k *koanf.Koanf, m map[string]any) error {
	return k.Load(confmap.Provider(m, "."), nil)
}

var pxValidate = validator.New()

// ValidatePx checks structural constraints on a resolved PxConfig: every
// scan_dirs entry must be a non-empty absolute path. Whether the directory
// exists is not checked.
func ValidatePx(cfg PxConfig) error {
	for _, dir := range cfg.ScanDirs {
		if !filepath.IsAbs(dir) {
			return fmt.Errorf("scan_dirs entry %q is not an absolute path", dir)
		}
	}
	if err := pxValidate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid px config: %w", err)
	}
	return nil
}
