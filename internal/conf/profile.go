package conf

import (
	"fmt"
	"proxyconf/internal/endpoint"
	"proxyconf/internal/proxycfg"
)

// Profile is the desired state of the three connection settings.
type Profile struct {
	AutoDetect bool       `yaml:"auto_detect"`
	AutoConfig AutoConfig `yaml:"auto_config"`
	Proxy      Proxy      `yaml:"proxy"`
}

type AutoConfig struct {
	Enabled bool `yaml:"enabled"`
	// Address of the configuration script. Not stored in the blob yet.
	Address string `yaml:"address"`
}

type Proxy struct {
	Enabled bool `yaml:"enabled"`
	// Server is "host:port". Not stored in the blob yet.
	Server_ string            `yaml:"server"`
	Server  endpoint.Endpoint `yaml:"-"`
}

func (p *Profile) setDefaults() {}

func (p *Profile) validate() []error {
	var errors []error

	if p.AutoConfig.Address != "" {
		if err := endpoint.Encodable(p.AutoConfig.Address); err != nil {
			errors = append(errors, fmt.Errorf("auto_config address: %w", err))
		}
	}

	if p.Proxy.Server_ != "" {
		p.Proxy.Server = endpoint.ParseText(p.Proxy.Server_)
		if _, err := p.Proxy.Server.Bytes(); err != nil {
			errors = append(errors, fmt.Errorf("proxy server '%s': %w", p.Proxy.Server_, err))
		}
	}

	return errors
}

// Build produces a settings blob for the profile. The returned warnings name
// profile values that could not be stored.
func (c *Conf) Build() (*proxycfg.Config, []string) {
	p := &c.Profile
	cfg := proxycfg.New()
	cfg.AutoDetect().Set(p.AutoDetect)
	cfg.AutoConfig().Set(p.AutoConfig.Enabled)
	cfg.UseProxy().Set(p.Proxy.Enabled)

	var warnings []string
	if p.AutoConfig.Address != "" {
		if _, err := cfg.AutoConfig().SetAddress(p.AutoConfig.Address); err != nil {
			warnings = append(warnings, err.Error())
		}
	} else if p.AutoConfig.Enabled {
		warnings = append(warnings, "auto_config is enabled without an address")
	}

	if p.Proxy.Server_ != "" {
		if _, err := cfg.UseProxy().SetProxy(p.Proxy.Server); err != nil {
			warnings = append(warnings, err.Error())
		}
	} else if p.Proxy.Enabled {
		warnings = append(warnings, "proxy is enabled without a server")
	}

	return cfg, warnings
}
