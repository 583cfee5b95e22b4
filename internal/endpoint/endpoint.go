package endpoint

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// Delimiter separates host and port in both the text and the byte form.
const Delimiter byte = 0x3a

var (
	ErrMalformedInput = errors.New("malformed input")
	ErrEncoding       = errors.New("character not representable in a single byte")
)

// Characters in the byte form are single-byte codes 0-255, which is exactly ISO-8859-1.
var latin1 = charmap.ISO8859_1

// Endpoint is a host:port pair. Both halves are kept verbatim as strings so
// whatever was supplied round-trips without loss.
type Endpoint struct {
	Host string
	Port string
}

func New(host, port string) Endpoint {
	return Endpoint{Host: host, Port: port}
}

// ParseText splits on the first ':'. Without a ':' the whole input is the host
// and the port is empty.
func ParseText(text string) Endpoint {
	host, port, _ := strings.Cut(text, string(Delimiter))
	return Endpoint{Host: host, Port: port}
}

// Byte form:
//
//	[N bytes] host, one byte per character
//	[1 byte]  0x3a
//	[M bytes] port, one byte per character
//
// There is no length prefix and no terminator.

func ParseBytes(b []byte) (Endpoint, error) {
	i := bytes.IndexByte(b, Delimiter)
	if i < 0 {
		return Endpoint{}, fmt.Errorf("endpoint: no 0x3a delimiter in %d bytes: %w", len(b), ErrMalformedInput)
	}
	dec := latin1.NewDecoder()
	host, err := dec.Bytes(b[:i])
	if err != nil {
		return Endpoint{}, fmt.Errorf("endpoint: decode host: %w", err)
	}
	port, err := dec.Bytes(b[i+1:])
	if err != nil {
		return Endpoint{}, fmt.Errorf("endpoint: decode port: %w", err)
	}
	return Endpoint{Host: string(host), Port: string(port)}, nil
}

// Encodable reports, wrapping ErrEncoding, whether s fits the single-byte form.
func Encodable(s string) error {
	if _, err := latin1.NewEncoder().String(s); err != nil {
		return fmt.Errorf("endpoint: %q: %w", s, ErrEncoding)
	}
	return nil
}

func ToBytes(e Endpoint) ([]byte, error) {
	return e.Bytes()
}

func (e Endpoint) Bytes() ([]byte, error) {
	enc := latin1.NewEncoder()
	host, err := enc.String(e.Host)
	if err != nil {
		return nil, fmt.Errorf("endpoint: host %q: %w", e.Host, ErrEncoding)
	}
	port, err := enc.String(e.Port)
	if err != nil {
		return nil, fmt.Errorf("endpoint: port %q: %w", e.Port, ErrEncoding)
	}

	out := make([]byte, 0, len(host)+1+len(port))
	out = append(out, host...)
	out = append(out, Delimiter)
	out = append(out, port...)
	return out, nil
}

func (e Endpoint) WriteTo(w io.Writer) (int64, error) {
	b, err := e.Bytes()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(b)
	return int64(n), err
}

func (e Endpoint) String() string {
	return e.Host + string(Delimiter) + e.Port
}
