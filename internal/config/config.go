// Package config loads the optional site configuration for the wrapper.
//
// A site may drop an lldshim.toml next to the wrapper binary to rename the
// downstream linker program or to prepend extra flags. Without the file the
// built-in defaults apply.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is the site config looked up in the wrapper executable's
// directory.
const FileName = "lldshim.toml"

// DefaultProgram is the downstream linker looked up on PATH.
const DefaultProgram = "ld.lld"

// Config mirrors lldshim.toml.
type Config struct {
	Linker LinkerConfig `toml:"linker"`
	Flags  FlagsConfig  `toml:"flags"`
}

// LinkerConfig selects the downstream program.
type LinkerConfig struct {
	Program string `toml:"program"`
}

// FlagsConfig carries site-wide extra flags, placed between the platform
// customization flags and the caller's arguments.
type FlagsConfig struct {
	Prepend []string `toml:"prepend"`
}

// Default returns the configuration used when no lldshim.toml exists.
func Default() Config {
	return Config{Linker: LinkerConfig{Program: DefaultProgram}}
}

// Load reads FileName from the directory of the running executable,
// resolving symlinks first so multi-call links share one config. A missing
// file is not an error.
func Load() (Config, error) {
	exe, err := os.Executable()
	if err != nil {
		return Default(), nil
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return LoadFile(filepath.Join(filepath.Dir(exe), FileName))
}

// LoadFile parses the config at path, falling back to Default when the
// file does not exist.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if cfg.Linker.Program == "" {
		cfg.Linker.Program = DefaultProgram
	}
	return cfg, nil
}
