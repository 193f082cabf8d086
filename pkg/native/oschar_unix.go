//go:build unix

package native

import (
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/justyntemme/akgo/pkg/ak"
)

// OSChar is the engine's path character type: 8-bit outside Windows.
type OSChar = byte

// OSString is a NUL-terminated engine path string.
type OSString []OSChar

// NewOSString converts s for the engine. Interior NUL bytes are rejected
// with ak.InvalidParameter.
func NewOSString(s string) (OSString, error) {
	b, err := unix.ByteSliceFromString(s)
	if err != nil {
		return nil, fmt.Errorf("native: string %q contains NUL: %w", s, ak.InvalidParameter)
	}
	return OSString(b), nil
}

// Ptr returns the address of the first character, or nil for an empty value.
func (s OSString) Ptr() *OSChar {
	if len(s) == 0 {
		return nil
	}
	return &s[0]
}

func (s OSString) String() string {
	return unix.ByteSliceToString(s)
}

// GoOSString copies an engine path string.
func GoOSString(p *OSChar) string {
	if p == nil {
		return ""
	}
	return unix.BytePtrToString(p)
}

// CString converts a name to a NUL-terminated 8-bit string.
func CString(s string) ([]byte, error) {
	b, err := unix.ByteSliceFromString(s)
	if err != nil {
		return nil, fmt.Errorf("native: name %q contains NUL: %w", s, ak.InvalidParameter)
	}
	return b, nil
}

// GoString copies a NUL-terminated engine string.
func GoString(p *byte) string {
	if p == nil {
		return ""
	}
	return unix.BytePtrToString(p)
}
