// Package config loads the optional user configuration of create-up-web-vue.
//
// The file is YAML, looked up at $UP_WEB_VUE_CONFIG or
// <user config dir>/up-web-vue/config.yaml:
//
//	defaultProjectName: my-vue-app
//	accessible: true
//
// A missing file yields the defaults. The document is validated against an
// embedded JSON schema before it is decoded, and UP_WEB_VUE_DEFAULT_NAME
// overrides defaultProjectName.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"unicode"

	"github.com/goccy/go-yaml"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/up-web-vue/create-up-web-vue/pkg/logger"
	"github.com/up-web-vue/create-up-web-vue/pkg/stringutil"
	"github.com/up-web-vue/create-up-web-vue/pkg/wizard"
)

var configLog = logger.New("config:load")

// Environment variables read by Load.
const (
	EnvConfigPath  = "UP_WEB_VUE_CONFIG"
	EnvDefaultName = "UP_WEB_VUE_DEFAULT_NAME"
)

//go:embed config.schema.json
var schemaJSON []byte

const schemaURL = "https://up-web-vue.dev/schemas/config.schema.json"

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// Config holds user preferences.
type Config struct {
	DefaultProjectName string `yaml:"defaultProjectName"`
	Accessible         bool   `yaml:"accessible"`
	// Path is the file the configuration was read from, empty when none was found.
	Path string `yaml:"-"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{DefaultProjectName: wizard.DefaultProjectName}
}

// Load reads the configuration from the default location and applies environment overrides.
func Load() (Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return Config{}, err
	}
	return LoadFile(path)
}

// DefaultPath returns $UP_WEB_VUE_CONFIG or the per-user config file location.
func DefaultPath() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(dir, "up-web-vue", "config.yaml"), nil
}

// LoadFile reads path. A missing file is not an error.
func LoadFile(path string) (Config, error) {
	cfg := Default()

	content, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		configLog.Printf("No config file at %s, using defaults", path)
	case err != nil:
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	default:
		if err := Parse(content, &cfg); err != nil {
			return Config{}, fmt.Errorf("invalid config file %s: %w", path, err)
		}
		cfg.Path = path
		configLog.Printf("Loaded config from %s: %+v", path, cfg)
	}

	if name := os.Getenv(EnvDefaultName); name != "" {
		if stringutil.ContainsPathSeparator(name) {
			return Config{}, fmt.Errorf("%s must not contain path separators: %q", EnvDefaultName, name)
		}
		if strings.TrimSpace(name) == "" || strings.TrimLeftFunc(name, unicode.IsSpace) != name {
			return Config{}, fmt.Errorf("%s must not be blank or start with whitespace: %q", EnvDefaultName, name)
		}
		cfg.DefaultProjectName = name
	}
	return cfg, nil
}

// Parse validates a YAML document against the schema and decodes it into cfg.
// Keys absent from the document keep their current value in cfg.
func Parse(content []byte, cfg *Config) error {
	if len(bytes.TrimSpace(content)) == 0 {
		return nil
	}

	empty, err := validate(content)
	if err != nil {
		return err
	}
	if empty {
		return nil
	}
	if err := yaml.Unmarshal(content, cfg); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	return nil
}

// validate checks content against the schema. empty is true for a document
// with no value, such as one holding only comments.
func validate(content []byte) (empty bool, err error) {
	schema, err := loadSchema()
	if err != nil {
		return false, err
	}

	var raw any
	if err := yaml.Unmarshal(content, &raw); err != nil {
		return false, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if raw == nil {
		return true, nil
	}

	jsonContent, err := yaml.YAMLToJSON(content)
	if err != nil {
		return false, fmt.Errorf("failed to parse YAML: %w", err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonContent))
	if err != nil {
		return false, fmt.Errorf("failed to convert config to JSON: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return false, fmt.Errorf("schema validation failed: %w", err)
	}
	return false, nil
}

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
		if err != nil {
			schemaErr = fmt.Errorf("failed to parse config schema: %w", err)
			return
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaURL, doc); err != nil {
			schemaErr = fmt.Errorf("failed to add config schema: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}
