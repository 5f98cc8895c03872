// SPDX-License-Identifier: MIT

package scene

import "fmt"

// Param names one of the four slider-bound parameters.
type Param int

const (
	TrueMean Param = iota
	TrueVariance
	GenMean
	GenVariance
)

var paramNames = [...]string{
	TrueMean:     "true-mean",
	TrueVariance: "true-variance",
	GenMean:      "gen-mean",
	GenVariance:  "gen-variance",
}

// Params lists the parameters in slider order.
func Params() []Param {
	return []Param{TrueMean, TrueVariance, GenMean, GenVariance}
}

// Valid reports whether p is declared.
func (p Param) Valid() bool { return p >= TrueMean && p <= GenVariance }

// IsVariance reports whether p is a variance slider.
func (p Param) IsVariance() bool { return p == TrueVariance || p == GenVariance }

func (p Param) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Param(%d)", int(p))
	}

	return paramNames[p]
}

// ParseParam maps a slider name back to its Param.
func ParseParam(s string) (Param, error) {
	for i, n := range paramNames {
		if n == s {
			return Param(i), nil
		}
	}

	return TrueMean, fmt.Errorf("ParseParam(%q): %w", s, ErrUnknownParam)
}
