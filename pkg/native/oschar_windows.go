//go:build windows

package native

import (
	"fmt"

	"golang.org/x/sys/windows"

	"github.com/justyntemme/akgo/pkg/ak"
)

// OSChar is the engine's path character type: UTF-16 on Windows.
type OSChar = uint16

// OSString is a NUL-terminated engine path string.
type OSString []OSChar

// NewOSString converts s for the engine. Interior NUL bytes are rejected
// with ak.InvalidParameter.
func NewOSString(s string) (OSString, error) {
	u, err := windows.UTF16FromString(s)
	if err != nil {
		return nil, fmt.Errorf("native: string %q contains NUL: %w", s, ak.InvalidParameter)
	}
	return OSString(u), nil
}

// Ptr returns the address of the first character, or nil for an empty value.
func (s OSString) Ptr() *OSChar {
	if len(s) == 0 {
		return nil
	}
	return &s[0]
}

func (s OSString) String() string {
	return windows.UTF16ToString(s)
}

// GoOSString copies an engine path string.
func GoOSString(p *OSChar) string {
	if p == nil {
		return ""
	}
	return windows.UTF16PtrToString(p)
}

// CString converts a name to a NUL-terminated 8-bit string.
func CString(s string) ([]byte, error) {
	b, err := windows.ByteSliceFromString(s)
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
	return windows.BytePtrToString(p)
}
