// Package texture decodes image files and describes how they are sampled.
package texture

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownWrapMode is returned when parsing an unrecognized wrap mode.
var ErrUnknownWrapMode = errors.New("unknown wrap mode")

// Handle identifies an uploaded texture.
type Handle uint32

// WrapMode controls how texture coordinates outside [0,1] are resolved.
type WrapMode int

const (
	// ClampToEdge repeats the border texel.
	ClampToEdge WrapMode = iota
	// Repeat tiles the texture.
	Repeat
)

func (w WrapMode) String() string {
	switch w {
	case ClampToEdge:
		return "clamp_to_edge"
	case Repeat:
		return "repeat"
	}
	return fmt.Sprintf("WrapMode(%d)", int(w))
}

// ParseWrapMode parses "clamp_to_edge" or "repeat". Dashes are accepted for underscores.
func ParseWrapMode(s string) (WrapMode, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_") {
	case "clamp_to_edge", "clamp":
		return ClampToEdge, nil
	case "repeat":
		return Repeat, nil
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownWrapMode)
}

// MarshalText implements encoding.TextMarshaler.
func (w WrapMode) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (w *WrapMode) UnmarshalText(text []byte) error {
	parsed, err := ParseWrapMode(string(text))
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}
