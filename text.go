package priority

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidName is returned when text does not name a priority.
	ErrInvalidName = errors.New("invalid priority name")

	// ErrInvalidPriority is returned when encoding a value outside the named set.
	ErrInvalidPriority = errors.New("invalid priority value")
)

// Parse parses a priority name, case-insensitive.
// It accepts the names produced by String for valid priorities.
func Parse(s string) (Priority, error) {
	name := strings.TrimSpace(s)
	for _, p := range All() {
		if strings.EqualFold(name, p.String()) {
			return p, nil
		}
	}
	return Unknown, fmt.Errorf("%w: %q", ErrInvalidName, s)
}

// MarshalText implements encoding.TextMarshaler.
func (p Priority) MarshalText() ([]byte, error) {
	if !p.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPriority, uint8(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Priority) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
