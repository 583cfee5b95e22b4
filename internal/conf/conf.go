package conf

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

type Conf struct {
	Log     Log     `yaml:"log"`
	Profile Profile `yaml:"profile"`
}

func LoadFromFile(path string) (*Conf, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	c, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Load parses a YAML profile, applies environment overrides and defaults, and
// validates the result. All validation failures are reported together.
func Load(data []byte) (*Conf, error) {
	var c Conf
	if err := yaml.UnmarshalWithOptions(data, &c, yaml.DisallowUnknownField()); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	c.ApplyEnv()
	c.setDefaults()
	if errs := c.validate(); len(errs) > 0 {
		return nil, fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return &c, nil
}

func (c *Conf) setDefaults() {
	c.Log.setDefaults()
	c.Profile.setDefaults()
}

func (c *Conf) validate() []error {
	var errors []error
	errors = append(errors, c.Log.validate()...)
	errors = append(errors, c.Profile.validate()...)
	return errors
}
