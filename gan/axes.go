// SPDX-License-Identifier: MIT

package gan

// AxisRange is a closed plotting interval [Min, Max].
type AxisRange struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// Span returns Max - Min.
func (a AxisRange) Span() float64 { return a.Max - a.Min }

// Contains reports whether v lies inside the closed range.
func (a AxisRange) Contains(v float64) bool { return v >= a.Min && v <= a.Max }

// Axis scales used by the demos.
var (
	// DensityAxis is the left axis shared by both densities and the discriminator.
	DensityAxis = AxisRange{Min: -0.05, Max: 1.05}

	// SymmetricValueAxis is the right axis for Minimax and JensenShannon.
	SymmetricValueAxis = AxisRange{Min: -3.05, Max: 3.05}

	// NonSaturatingValueAxis is the right axis for NonSaturating.
	NonSaturatingValueAxis = AxisRange{Min: -8.2, Max: 0.2}
)

// Axes returns the left (density/discriminator) and right (value curve)
// ranges for mode.
func Axes(mode Mode) (left, right AxisRange) {
	if mode == NonSaturating {
		return DensityAxis, NonSaturatingValueAxis
	}

	return DensityAxis, SymmetricValueAxis
}
