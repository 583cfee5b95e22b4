package proxycfg

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
)

// Size is the length of a connection settings blob. It never changes.
const Size = 12

// FlagsOffset is the index of the flags byte inside the blob.
const FlagsOffset = 8

const (
	AutoDetectMask byte = 0x08
	AutoConfigMask byte = 0x04
	UseProxyMask   byte = 0x02
)

var (
	ErrNotImplemented = errors.New("not yet implemented")
	ErrInvalidLength  = errors.New("invalid blob length")
)

// Layout:
//
//	[0]     0x46
//	[1-7]   reserved, 0x00
//	[8]     flags (0x08 auto-detect, 0x04 auto-config script, 0x02 use proxy,
//	        0x01 unknown, set by default and preserved)
//	[9-11]  reserved, 0x00
var defaultBytes = [Size]byte{
	0x46, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00,
	0x01, 0x00, 0x00, 0x00,
}

func DefaultBytes() []byte {
	b := defaultBytes
	return b[:]
}

// Config owns a settings blob. The three setting views share its storage, so a
// Config must always be handled through the pointer returned by New or FromBytes.
//
// Config does no locking. Callers mutating one Config from several goroutines
// must serialize access themselves.
type Config struct {
	buf [Size]byte

	autoDetect AutoDetectSetting
	autoConfig AutoConfigSetting
	useProxy   UseProxySetting
}

func New() *Config {
	c := &Config{buf: defaultBytes}
	c.autoDetect = AutoDetectSetting{Setting{owner: c, mask: AutoDetectMask}}
	c.autoConfig = AutoConfigSetting{Setting{owner: c, mask: AutoConfigMask}}
	c.useProxy = UseProxySetting{Setting{owner: c, mask: UseProxyMask}}
	return c
}

// FromBytes adopts an existing blob. b is copied.
func FromBytes(b []byte) (*Config, error) {
	if len(b) != Size {
		return nil, fmt.Errorf("proxycfg: got %d bytes, want %d: %w", len(b), Size, ErrInvalidLength)
	}
	c := New()
	copy(c.buf[:], b)
	return c, nil
}

// Bytes returns a copy of the blob.
func (c *Config) Bytes() []byte {
	b := c.buf
	return b[:]
}

func (c *Config) Flags() byte { return c.buf[FlagsOffset] }

func (c *Config) AutoDetect() *AutoDetectSetting { return &c.autoDetect }
func (c *Config) AutoConfig() *AutoConfigSetting { return &c.autoConfig }
func (c *Config) UseProxy() *UseProxySetting     { return &c.useProxy }

func (c *Config) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(c.buf[:])
	return int64(n), err
}

// ReadFrom replaces the blob with exactly Size bytes read from r. On a short
// read the Config is left unchanged.
func (c *Config) ReadFrom(r io.Reader) (int64, error) {
	var b [Size]byte
	n, err := io.ReadFull(r, b[:])
	if err != nil {
		return int64(n), fmt.Errorf("proxycfg: read blob: %w", err)
	}
	c.buf = b
	return int64(n), nil
}

func (c *Config) String() string {
	return hex.EncodeToString(c.buf[:])
}

// Summary is a decoded, serializable view of a blob.
type Summary struct {
	Hex        string `json:"hex" yaml:"hex"`
	Flags      byte   `json:"flags" yaml:"flags"`
	AutoDetect bool   `json:"auto_detect" yaml:"auto_detect"`
	AutoConfig bool   `json:"auto_config" yaml:"auto_config"`
	UseProxy   bool   `json:"use_proxy" yaml:"use_proxy"`
}

func (c *Config) Summary() Summary {
	return Summary{
		Hex:        c.String(),
		Flags:      c.Flags(),
		AutoDetect: c.autoDetect.Enabled(),
		AutoConfig: c.autoConfig.Enabled(),
		UseProxy:   c.useProxy.Enabled(),
	}
}
