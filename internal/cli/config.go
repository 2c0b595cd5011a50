package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/syssam/cppent/compiler/gen"
	"github.com/syssam/cppent/internal/logger"
	"github.com/syssam/cppent/schema/field"
)

const (
	maxWalkDepth = 25
)

// ConfigNames are the file names looked up by the config discovery, in order.
var ConfigNames = []string{"cppent.yaml", "cppent.yml"}

// Config represents the cppent configuration from cppent.yaml.
type Config struct {
	// Schemas are the schema files or directories.
	Schemas []string `mapstructure:"schemas" yaml:"schemas"`
	// Output is the directory the documents are written to.
	Output string `mapstructure:"output" yaml:"output"`

	Profile     string   `mapstructure:"profile" yaml:"profile"`
	BaseType    string   `mapstructure:"base_type" yaml:"base_type"`
	ClassSuffix string   `mapstructure:"class_suffix" yaml:"class_suffix"`
	BindPrefix  string   `mapstructure:"bind_prefix" yaml:"bind_prefix"`
	Header      string   `mapstructure:"header" yaml:"header"`
	Includes    []string `mapstructure:"includes" yaml:"includes"`
	// Templates is a directory of *.tmpl files overriding the built-in ones.
	Templates string `mapstructure:"templates" yaml:"templates"`
	Workers   int    `mapstructure:"workers" yaml:"workers"`

	Log LogConfig `mapstructure:"log" yaml:"log"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	JSON  bool   `mapstructure:"json" yaml:"json"`
}

// LoadConfig discovers and loads configuration with proper precedence:
// flags > env > config file > defaults.
//
// Returns the loaded config, the path to the config file (empty if none found),
// and any error encountered.
func LoadConfig(explicitConfigPath string) (*Config, string, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("CPPENT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configPath, err := findConfigFile(explicitConfigPath)
	if err != nil {
		return nil, "", err
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, configPath, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, configPath, fmt.Errorf("unmarshaling config: %w", err)
	}

	// Relative paths of the config file are relative to its directory.
	if configPath != "" {
		base := filepath.Dir(configPath)
		for i, s := range cfg.Schemas {
			cfg.Schemas[i] = rebase(base, s)
		}
		cfg.Output = rebase(base, cfg.Output)
		cfg.Templates = rebase(base, cfg.Templates)
	}

	return &cfg, configPath, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("schemas", []string{})
	v.SetDefault("output", "")
	v.SetDefault("profile", field.ProfileStd)
	v.SetDefault("base_type", gen.DefaultBaseType)
	v.SetDefault("class_suffix", gen.DefaultClassSuffix)
	v.SetDefault("bind_prefix", gen.DefaultBindPrefix)
	v.SetDefault("header", "")
	v.SetDefault("includes", []string{})
	v.SetDefault("templates", "")
	v.SetDefault("workers", 0)

	v.SetDefault("log.level", string(logger.InfoLevel))
	v.SetDefault("log.json", false)
}

// findConfigFile finds the config file to use.
// If explicitPath is provided, it validates the file exists.
// Otherwise, it walks up from cwd looking for cppent.yaml or cppent.yml,
// stopping at a .git directory or after maxWalkDepth levels.
func findConfigFile(explicitPath string) (string, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return "", fmt.Errorf("config file not found: %s", explicitPath)
		}
		return explicitPath, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting cwd: %w", err)
	}

	dir := cwd
	for range maxWalkDepth {
		for _, name := range ConfigNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}

		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			break
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", nil
}

func rebase(base, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}

// GenOptions returns the generation options described by the config.
func (c *Config) GenOptions() ([]gen.Option, error) {
	opts := []gen.Option{
		gen.WithClassSuffix(c.ClassSuffix),
		gen.WithBindPrefix(c.BindPrefix),
		gen.WithHeader(c.Header),
	}
	if c.Profile != "" {
		opts = append(opts, gen.WithProfile(c.Profile))
	}
	if c.BaseType != "" {
		opts = append(opts, gen.WithBaseType(c.BaseType))
	}
	if len(c.Includes) > 0 {
		opts = append(opts, gen.WithIncludes(c.Includes...))
	}
	if c.Templates != "" {
		info, err := os.Stat(c.Templates)
		if err != nil {
			return nil, fmt.Errorf("templates: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("templates: %s is not a directory", c.Templates)
		}
		lib, err := gen.NewLibrary(os.DirFS(c.Templates))
		if err != nil {
			return nil, err
		}
		opts = append(opts, gen.WithLibrary(lib))
	}
	// Report every invalid key at once rather than the first one.
	if err := gen.DefaultConfig().ApplyAll(opts...); err != nil {
		return nil, err
	}
	return opts, nil
}

// LoggerConfig returns the logger settings described by the config.
func (c *Config) LoggerConfig() *logger.Config {
	lc := logger.DefaultConfig()
	if c.Log.Level != "" {
		lc.Level = logger.LogLevel(strings.ToLower(c.Log.Level))
	}
	lc.JSON = c.Log.JSON
	return lc
}
