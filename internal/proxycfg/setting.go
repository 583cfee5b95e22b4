package proxycfg

import (
	"fmt"
	"proxyconf/internal/endpoint"
	"proxyconf/internal/flog"
)

// Setting is a view over the bits of the flags byte selected by mask. It is
// only valid when obtained from a Config accessor; the zero value panics.
type Setting struct {
	owner *Config
	mask  byte
}

func (s *Setting) Enable() *Config {
	s.owner.buf[FlagsOffset] |= s.mask
	flog.Debugf("proxycfg: set mask 0x%02x, flags now 0x%02x", s.mask, s.owner.buf[FlagsOffset])
	return s.owner
}

// Set enables the setting when enabled is true and disables it otherwise.
func (s *Setting) Set(enabled bool) *Config {
	if !enabled {
		return s.Disable()
	}
	return s.Enable()
}

func (s *Setting) Disable() *Config {
	s.owner.buf[FlagsOffset] &^= s.mask
	flog.Debugf("proxycfg: cleared mask 0x%02x, flags now 0x%02x", s.mask, s.owner.buf[FlagsOffset])
	return s.owner
}

func (s *Setting) Enabled() bool {
	return s.owner.buf[FlagsOffset]&s.mask == s.mask
}

func (s *Setting) Owner() *Config { return s.owner }

func (s *Setting) Mask() byte { return s.mask }

// AutoDetectSetting is "Automatically detect settings".
type AutoDetectSetting struct {
	Setting
}

// AutoConfigSetting is "Use automatic configuration script". The script address
// is not part of the flags byte and its storage layout is still undecided.
type AutoConfigSetting struct {
	Setting
}

func (s *AutoConfigSetting) Address() (string, error) {
	return "", fmt.Errorf("proxycfg: auto-config address: %w", ErrNotImplemented)
}

func (s *AutoConfigSetting) SetAddress(address string) (*Config, error) {
	return s.owner, fmt.Errorf("proxycfg: set auto-config address %q: %w", address, ErrNotImplemented)
}

// UseProxySetting is "Use a proxy server for your LAN". Like the script address,
// the proxy endpoint has no agreed storage layout yet.
type UseProxySetting struct {
	Setting
}

func (s *UseProxySetting) Proxy() (endpoint.Endpoint, error) {
	return endpoint.Endpoint{}, fmt.Errorf("proxycfg: proxy endpoint: %w", ErrNotImplemented)
}

func (s *UseProxySetting) SetProxy(e endpoint.Endpoint) (*Config, error) {
	return s.owner, fmt.Errorf("proxycfg: set proxy endpoint %s: %w", e, ErrNotImplemented)
}
