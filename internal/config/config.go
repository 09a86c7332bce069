package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v6"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk YAML configuration shape for luhnkit.
type FileConfig struct {
	NoColor         *bool   `yaml:"no_color"`
	StripSeparators *bool   `yaml:"strip_separators"`
	LogFile         *string `yaml:"log_file"`
	Log             *bool   `yaml:"log"`
	MaskLog         *bool   `yaml:"mask_log"`
	Workers         *int    `yaml:"workers"`
	Verbose         *bool   `yaml:"verbose"`
}

// DefaultLogFile is used when logging is enabled without an explicit path.
const DefaultLogFile = "luhnkit_log.jsonl"

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadLocal searches for a config file in dir.
// It supports .luhnkit.yml/.yaml and luhnkit.yml/.yaml.
func LoadLocal(dir string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range []string{".luhnkit.yml", ".luhnkit.yaml", "luhnkit.yml", "luhnkit.yaml"} {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, errors.New("no local config")
}

// LoadGlobal loads the global config file from XDG base directory or ~/.config.
func LoadGlobal() (FileConfig, error) {
	var cfg FileConfig
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return cfg, errors.New("no config dir")
	}
	p := filepath.Join(base, "luhnkit", "config.yml")
	if _, err := os.Stat(p); err == nil {
		return LoadFile(p)
	}
	return cfg, errors.New("no global config")
}

// Merge returns local with unset fields filled from global.
func Merge(local, global FileConfig) FileConfig {
	out := local
	if out.NoColor == nil {
		out.NoColor = global.NoColor
	}
	if out.StripSeparators == nil {
		out.StripSeparators = global.StripSeparators
	}
	if out.LogFile == nil {
		out.LogFile = global.LogFile
	}
	if out.Log == nil {
		out.Log = global.Log
	}
	if out.MaskLog == nil {
		out.MaskLog = global.MaskLog
	}
	if out.Workers == nil {
		out.Workers = global.Workers
	}
	if out.Verbose == nil {
		out.Verbose = global.Verbose
	}
	return out
}

// EnvConfig mirrors FileConfig from LUHNKIT_* environment variables.
type EnvConfig struct {
	NoColor         bool   `env:"LUHNKIT_NO_COLOR"`
	StripSeparators bool   `env:"LUHNKIT_STRIP_SEPARATORS"`
	LogFile         string `env:"LUHNKIT_LOG_FILE"`
	Log             bool   `env:"LUHNKIT_LOG"`
	MaskLog         bool   `env:"LUHNKIT_MASK_LOG"`
	Workers         int    `env:"LUHNKIT_WORKERS"`
	Verbose         bool   `env:"LUHNKIT_VERBOSE"`

	set map[string]bool
}

var envNames = []string{
	"LUHNKIT_NO_COLOR",
	"LUHNKIT_STRIP_SEPARATORS",
	"LUHNKIT_LOG_FILE",
	"LUHNKIT_LOG",
	"LUHNKIT_MASK_LOG",
	"LUHNKIT_WORKERS",
	"LUHNKIT_VERBOSE",
}

// LoadEnv parses LUHNKIT_* variables. Unset variables leave the matching
// FileConfig value alone in Apply.
func LoadEnv() (EnvConfig, error) {
	var ec EnvConfig
	if err := env.Parse(&ec); err != nil {
		return ec, err
	}
	ec.set = map[string]bool{}
	for _, name := range envNames {
		if _, ok := os.LookupEnv(name); ok {
			ec.set[name] = true
		}
	}
	return ec, nil
}

// Apply overlays the variables that were present onto fc.
func (ec EnvConfig) Apply(fc FileConfig) FileConfig {
	if ec.set["LUHNKIT_NO_COLOR"] {
		fc.NoColor = &ec.NoColor
	}
	if ec.set["LUHNKIT_STRIP_SEPARATORS"] {
		fc.StripSeparators = &ec.StripSeparators
	}
	if ec.set["LUHNKIT_LOG_FILE"] {
		fc.LogFile = &ec.LogFile
	}
	if ec.set["LUHNKIT_LOG"] {
		fc.Log = &ec.Log
	}
	if ec.set["LUHNKIT_MASK_LOG"] {
		fc.MaskLog = &ec.MaskLog
	}
	if ec.set["LUHNKIT_WORKERS"] {
		fc.Workers = &ec.Workers
	}
	if ec.set["LUHNKIT_VERBOSE"] {
		fc.Verbose = &ec.Verbose
	}
	return fc
}

// GetLogFile returns the configured log path or DefaultLogFile.
func (fc FileConfig) GetLogFile() string {
	if fc.LogFile == nil || *fc.LogFile == "" {
		return DefaultLogFile
	}
	return *fc.LogFile
}
