package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Environment variables read by genmodule.
const (
	envPrefix = "GENMODULE"

	// EnvConfig overrides the config file path.
	EnvConfig = "GENMODULE_CONFIG"

	// EnvOutputDir overrides the output directory.
	EnvOutputDir = "GENMODULE_OUTPUT_DIR"
)

// Loader handles loading and merging configuration from multiple sources.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults register the keys so AutomaticEnv can override them
	// (GENMODULE_DATEFORMAT_LONG, GENMODULE_DATEFORMAT_YEAR, GENMODULE_LOG_TIMESTAMPS).
	defaults := DefaultConfig()
	v.SetDefault("dateFormat.long", defaults.DateFormat.Long)
	v.SetDefault("dateFormat.year", defaults.DateFormat.Year)
	_ = v.BindEnv("log.timestamps", "GENMODULE_LOG_TIMESTAMPS")

	return &Loader{v: v}
}

// Load loads configuration from the given file path.
// If configFile is empty, it uses the default config file path.
// A missing file is not an error.
func (l *Loader) Load(configFile string) (*Config, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return nil, fmt.Errorf("getting config file path: %w", err)
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}

	l.v.SetConfigFile(expandedPath)
	l.v.SetConfigType("yaml")

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// LoadWithDefaults loads configuration, applies defaults and validates it.
func (l *Loader) LoadWithDefaults(configFile string) (*Config, error) {
	cfg, err := l.Load(configFile)
	if err != nil {
		return nil, err
	}

	cfg = cfg.WithDefaults()
	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ConfigFileExists checks if the config file exists.
func ConfigFileExists(configFile string) (bool, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return false, err
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return false, err
	}

	_, err = os.Stat(expandedPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// ErrConfigExists is returned by WriteDefault when the file exists and force is not set.
var ErrConfigExists = errors.New("config file already exists")

// WriteDefault writes DefaultConfig as YAML to configFile and returns the
// expanded path it wrote to.
func WriteDefault(configFile string, force bool) (string, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return "", fmt.Errorf("getting config file path: %w", err)
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return "", fmt.Errorf("expanding config path: %w", err)
	}

	exists, err := ConfigFileExists(expandedPath)
	if err != nil {
		return "", fmt.Errorf("checking config file: %w", err)
	}
	if exists && !force {
		return expandedPath, fmt.Errorf("%w at %s (use --force to overwrite)", ErrConfigExists, expandedPath)
	}

	if err := os.MkdirAll(filepath.Dir(expandedPath), 0o755); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("# genmodule configuration\n" +
		"# outputDir: directory for generated files (default: Desktop)\n\n")

	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(DefaultConfig()); err != nil {
		return "", fmt.Errorf("marshaling config: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return "", fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(expandedPath, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("writing config file: %w", err)
	}

	return expandedPath, nil
}
