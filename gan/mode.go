// SPDX-License-Identifier: MIT

package gan

import (
	"fmt"
	"strings"
)

// Mode selects which value curve Evaluate produces.
// The zero Mode is Minimax.
type Mode int

const (
	// Minimax is the cross-entropy objective of the original adversarial game.
	Minimax Mode = iota

	// JensenShannon is Minimax shifted by -2·log ½ so that G = T reads 0.
	JensenShannon

	// NonSaturating is the generator objective p_G·log D.
	NonSaturating
)

var modeNames = [...]string{
	Minimax:       "minimax",
	JensenShannon: "jensen-shannon",
	NonSaturating: "non-saturating",
}

// Modes lists every valid Mode in declaration order.
func Modes() []Mode {
	return []Mode{Minimax, JensenShannon, NonSaturating}
}

// Valid reports whether m is one of the declared modes.
func (m Mode) Valid() bool {
	return m >= Minimax && m <= NonSaturating
}

// String returns the canonical name, or "Mode(n)" for invalid values.
func (m Mode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Mode(%d)", int(m))
	}

	return modeNames[m]
}

// Next returns the following mode, wrapping around after NonSaturating.
func (m Mode) Next() Mode {
	if !m.Valid() {
		return Minimax
	}

	return (m + 1) % Mode(len(modeNames))
}

// ParseMode accepts the canonical names plus the short aliases "js" and "ns".
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "minimax":
		return Minimax, nil
	case "jensen-shannon", "js":
		return JensenShannon, nil
	case "non-saturating", "ns":
		return NonSaturating, nil
	}

	return Minimax, fmt.Errorf("ParseMode(%q): %w", s, ErrUnknownMode)
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("MarshalText(%d): %w", int(m), ErrUnknownMode)
	}

	return []byte(modeNames[m]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(b []byte) error {
	parsed, err := ParseMode(string(b))
	if err != nil {
		return err
	}
	*m = parsed

	return nil
}
