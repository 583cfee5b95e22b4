package proxycfg

import (
	"bytes"
	"io"
	"testing"

	"proxyconf/internal/endpoint"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var wantDefault = []byte{
	0x46, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00,
	0x01, 0x00, 0x00, 0x00,
}

func allSettings(c *Config) map[string]*Setting {
	return map[string]*Setting{
		"auto-detect": &c.AutoDetect().Setting,
		"auto-config": &c.AutoConfig().Setting,
		"use-proxy":   &c.UseProxy().Setting,
	}
}

func TestNew_Default(t *testing.T) {
	c := New()
	assert.Equal(t, wantDefault, c.Bytes())
	assert.Len(t, c.Bytes(), Size)
	assert.Equal(t, byte(0x01), c.Flags())

	assert.False(t, c.AutoDetect().Enabled())
	assert.False(t, c.AutoConfig().Enabled())
	assert.False(t, c.UseProxy().Enabled())

	assert.Equal(t, wantDefault, DefaultBytes())
}

func TestAutoDetect_EnableDisable(t *testing.T) {
	c := New()

	got := c.AutoDetect().Enable()
	require.Same(t, c, got)
	if b := c.Bytes()[FlagsOffset]; b != 0x09 {
		t.Fatalf("flags after enable=0x%02x, want 0x09", b)
	}

	c.AutoDetect().Disable()
	if b := c.Bytes()[FlagsOffset]; b != 0x01 {
		t.Fatalf("flags after disable=0x%02x, want 0x01", b)
	}
}

func TestSetting_Masks(t *testing.T) {
	c := New()
	assert.Equal(t, AutoDetectMask, c.AutoDetect().Mask())
	assert.Equal(t, AutoConfigMask, c.AutoConfig().Mask())
	assert.Equal(t, UseProxyMask, c.UseProxy().Mask())
}

func TestSetting_PreservesOtherBits(t *testing.T) {
	wantMask := map[string]byte{
		"auto-detect": AutoDetectMask,
		"auto-config": AutoConfigMask,
		"use-proxy":   UseProxyMask,
	}

	for initial := 0; initial < 256; initial++ {
		for name := range wantMask {
			blob := append([]byte(nil), wantDefault...)
			blob[FlagsOffset] = byte(initial)
			c, err := FromBytes(blob)
			require.NoError(t, err)

			s := allSettings(c)[name]
			mask := wantMask[name]
			if s.Mask() != mask {
				t.Fatalf("%s: mask=0x%02x, want 0x%02x", name, s.Mask(), mask)
			}

			s.Enable()
			if !s.Enabled() {
				t.Fatalf("initial=0x%02x mask=0x%02x: not enabled after Enable", initial, mask)
			}
			if got, want := c.Flags()&^mask, byte(initial)&^mask; got != want {
				t.Fatalf("initial=0x%02x mask=0x%02x: other bits 0x%02x after Enable, want 0x%02x", initial, mask, got, want)
			}

			s.Disable()
			if s.Enabled() {
				t.Fatalf("initial=0x%02x mask=0x%02x: enabled after Disable", initial, mask)
			}
			if got, want := c.Flags()&^mask, byte(initial)&^mask; got != want {
				t.Fatalf("initial=0x%02x mask=0x%02x: other bits 0x%02x after Disable, want 0x%02x", initial, mask, got, want)
			}

			b := c.Bytes()
			b[FlagsOffset] = blob[FlagsOffset]
			assert.Equal(t, blob, b, "bytes outside the flags byte changed")
		}
	}
}

func TestSetting_Independent(t *testing.T) {
	for name := range allSettings(New()) {
		c := New()
		settings := allSettings(c)
		settings[name].Enable()

		for other, s := range settings {
			assert.Equal(t, other == name, s.Enabled(), "enable %s: %s", name, other)
		}
	}
}

func TestSetting_Set(t *testing.T) {
	c := New()

	require.Same(t, c, c.UseProxy().Set(true))
	assert.True(t, c.UseProxy().Enabled())
	assert.Equal(t, byte(0x03), c.Flags())

	require.Same(t, c, c.UseProxy().Set(false))
	assert.False(t, c.UseProxy().Enabled())
	assert.Equal(t, byte(0x01), c.Flags())
}

func TestSetting_Chaining(t *testing.T) {
	c := New().AutoDetect().Enable().AutoConfig().Enable().UseProxy().Enable()
	assert.Equal(t, byte(0x0f), c.Flags())

	c.AutoConfig().Disable().AutoDetect().Disable()
	assert.Equal(t, byte(0x03), c.Flags())
}

func TestSetting_Owner(t *testing.T) {
	c := New()
	for name, s := range allSettings(c) {
		assert.Same(t, c, s.Owner(), name)
	}
}

func TestSetting_SharedView(t *testing.T) {
	c := New()
	a := c.UseProxy()
	b := c.UseProxy()

	a.Enable()
	assert.True(t, b.Enabled())
	assert.True(t, c.Summary().UseProxy)
}

func TestBytes_ReturnsCopy(t *testing.T) {
	c := New()
	b1 := c.Bytes()
	b1[FlagsOffset] = 0xff
	b1[0] = 0x00

	assert.Equal(t, wantDefault, c.Bytes())
	assert.False(t, c.AutoDetect().Enabled())
	assert.False(t, c.AutoConfig().Enabled())
	assert.False(t, c.UseProxy().Enabled())

	d := DefaultBytes()
	d[0] = 0x00
	assert.Equal(t, wantDefault, DefaultBytes())
}

func TestFromBytes(t *testing.T) {
	blob := append([]byte(nil), wantDefault...)
	blob[FlagsOffset] = 0x0b

	c, err := FromBytes(blob)
	require.NoError(t, err)
	assert.True(t, c.AutoDetect().Enabled())
	assert.False(t, c.AutoConfig().Enabled())
	assert.True(t, c.UseProxy().Enabled())

	blob[FlagsOffset] = 0x00
	assert.Equal(t, byte(0x0b), c.Flags(), "FromBytes must copy its input")

	for _, n := range []int{0, 11, 13} {
		_, err := FromBytes(make([]byte, n))
		require.ErrorIs(t, err, ErrInvalidLength, "len=%d", n)
	}
}

func TestWriteToReadFrom(t *testing.T) {
	src := New().AutoConfig().Enable()

	var buf bytes.Buffer
	n, err := src.WriteTo(&buf)
	require.NoError(t, err)
	assert.EqualValues(t, Size, n)

	dst := New()
	n, err = dst.ReadFrom(&buf)
	require.NoError(t, err)
	assert.EqualValues(t, Size, n)
	assert.Equal(t, src.Bytes(), dst.Bytes())
	assert.True(t, dst.AutoConfig().Enabled())
}

func TestReadFrom_Short(t *testing.T) {
	c := New()
	_, err := c.ReadFrom(bytes.NewReader([]byte{0x46, 0x00, 0x00}))
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Equal(t, wantDefault, c.Bytes())
}

func TestSummary(t *testing.T) {
	c := New().AutoDetect().Enable()
	s := c.Summary()
	assert.Equal(t, Summary{
		Hex:        "460000000000000009000000",
		Flags:      0x09,
		AutoDetect: true,
	}, s)
	assert.Equal(t, s.Hex, c.String())
}

func TestNotImplemented(t *testing.T) {
	c := New()

	_, err := c.AutoConfig().Address()
	require.ErrorIs(t, err, ErrNotImplemented)

	owner, err := c.AutoConfig().SetAddress("http://wpad/wpad.dat")
	require.ErrorIs(t, err, ErrNotImplemented)
	assert.Same(t, c, owner)

	_, err = c.UseProxy().Proxy()
	require.ErrorIs(t, err, ErrNotImplemented)

	owner, err = c.UseProxy().SetProxy(endpoint.New("proxy", "8080"))
	require.ErrorIs(t, err, ErrNotImplemented)
	assert.Same(t, c, owner)

	assert.Equal(t, wantDefault, c.Bytes(), "unimplemented setters must not touch the blob")
}

func TestMasksDisjoint(t *testing.T) {
	masks := []byte{AutoDetectMask, AutoConfigMask, UseProxyMask}
	for i := range masks {
		for j := range masks {
			if i != j && masks[i]&masks[j] != 0 {
				t.Fatalf("masks 0x%02x and 0x%02x overlap", masks[i], masks[j])
			}
		}
		if masks[i]&0x01 != 0 {
			t.Fatalf("mask 0x%02x overlaps the reserved bit", masks[i])
		}
	}
}
