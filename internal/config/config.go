package config

import (
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"diabetesrisk/internal/schema"
)

type Config struct {
	Server ServerConfig           `yaml:"server"`
	Model  ModelConfig            `yaml:"model"`
	Schema SchemaConfig           `yaml:"schema"`
	Log    LogConfig              `yaml:"log"`
	Texts  map[string]schema.Text `yaml:"texts"`
}

type ServerConfig struct {
	Addr string `yaml:"addr" validate:"required"`
	// Mode is gin's run mode.
	Mode string `yaml:"mode" validate:"oneof=debug release test"`
}

type ModelConfig struct {
	Path string `yaml:"path" validate:"required"`
}

type SchemaConfig struct {
	Layout string `yaml:"layout" validate:"oneof=compact full"`
	// Strict aborts startup when the model declares a feature the layout
	// never places.
	Strict bool `yaml:"strict"`
}

type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
	File  string `yaml:"file"`
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{Addr: ":8080", Mode: "release"},
		Model:  ModelConfig{Path: "models/diabetes_model.gob"},
		Schema: SchemaConfig{Layout: schema.LayoutCompact, Strict: true},
		Log:    LogConfig{Level: "info"},
	}
}

// Load layers the YAML file at path (if any) and the environment over the
// defaults, then validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "read config")
		}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, errors.Wrapf(err, "parse config %s", path)
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("PORT"); ok && v != "" {
		c.Server.Addr = ":" + v
	}
	if v, ok := lookup("MODEL_PATH"); ok && v != "" {
		c.Model.Path = v
	}
	if v, ok := lookup("LOG_FILE"); ok {
		c.Log.File = v
	}
	if v, ok := lookup("LOG_LEVEL"); ok && v != "" {
		c.Log.Level = v
	}
	if v, ok := lookup("SCHEMA_LAYOUT"); ok && v != "" {
		c.Schema.Layout = v
	}
	if v, ok := lookup("SCHEMA_STRICT"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrap(err, "SCHEMA_STRICT")
		}
		c.Schema.Strict = b
	}
	return nil
}

var validate = validator.New()

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	var out error
	for _, fe := range verrs {
		out = multierr.Append(out, errors.Errorf("config: %s failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return out
}
