package terrain

import (
	"fmt"
	"strings"
)

// Mode selects the grid construction strategy.
type Mode int

const (
	// ModeIndexed builds a shared vertex grid with a triangle-list index buffer.
	ModeIndexed Mode = iota
	// ModeStrip builds an unindexed zig-zag triangle strip.
	ModeStrip
)

func (m Mode) String() string {
	switch m {
	case ModeIndexed:
		return "indexed"
	case ModeStrip:
		return "strip"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode parses "indexed" or "strip".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "indexed", "":
		return ModeIndexed, nil
	case "strip":
		return ModeStrip, nil
	}
	return 0, fmt.Errorf("unknown mesh mode %q: %w", s, ErrInvalidArgument)
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Build dispatches to BuildGrid or BuildStrip.
func Build(mode Mode, p GridParameters) (*Mesh, error) {
	switch mode {
	case ModeIndexed:
		return BuildGrid(p)
	case ModeStrip:
		return BuildStrip(p)
	}
	return nil, fmt.Errorf("mesh mode %v: %w", mode, ErrInvalidArgument)
}
