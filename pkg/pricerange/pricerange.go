// Package pricerange maps the listing price slider to rupee amounts.
//
// The slider domain [0, 1000] is split into three linear bands so that low values keep a usable
// resolution: up to 10 Cr on the first third, 10 Cr to 500 Cr on the second and 500 Cr to the
// observed maximum on the last. When the maximum is below a band edge, that edge is lowered to
// the maximum, so the right end of the slider is always the maximum.
package pricerange

import "math"

const (
	// SliderMin and SliderMax bound a handle position.
	SliderMin = 0
	SliderMax = 1000

	band1End = 333
	band2End = 666

	// Band1Upper is the currency value at the end of the first band (10 Cr).
	Band1Upper int64 = 100_000_000
	// Band2Upper is the currency value at the end of the second band (500 Cr).
	Band2Upper int64 = 5_000_000_000
)

// Mapper converts between slider positions and currency for one maximum value.
type Mapper struct {
	maxValue int64
	edge1    int64
	edge2    int64
}

// New returns a mapper for the given maximum tender value. Band edges above the maximum are
// lowered to it; a negative maximum is treated as zero.
func New(maxValue int64) Mapper {
	if maxValue < 0 {
		maxValue = 0
	}
	return Mapper{
		maxValue: maxValue,
		edge1:    min(Band1Upper, maxValue),
		edge2:    min(Band2Upper, maxValue),
	}
}

// MaxValue returns the currency value at the right end of the slider.
func (m Mapper) MaxValue() int64 {
	return m.maxValue
}

// Forward converts a slider position to a rupee amount.
func (m Mapper) Forward(slider int) int64 {
	s := float64(clampPos(slider))

	var v float64
	switch {
	case s <= band1End:
		v = s / band1End * float64(m.edge1)
	case s <= band2End:
		v = float64(m.edge1) + (s-band1End)/(band2End-band1End)*float64(m.edge2-m.edge1)
	default:
		v = float64(m.edge2) + (s-band2End)/(SliderMax-band2End)*float64(m.maxValue-m.edge2)
	}

	if v < 0 {
		return 0
	}
	return int64(math.Round(v))
}

// Inverse converts a rupee amount back to the slider position whose band it falls in.
func (m Mapper) Inverse(value int64) int {
	if value <= 0 {
		return SliderMin
	}
	if value >= m.maxValue {
		return SliderMax
	}

	v := float64(value)
	var pos float64
	switch {
	case value <= m.edge1:
		pos = v / float64(m.edge1) * band1End
	case value <= m.edge2:
		pos = band1End + (v-float64(m.edge1))/float64(m.edge2-m.edge1)*(band2End-band1End)
	default:
		pos = band2End + (v-float64(m.edge2))/float64(m.maxValue-m.edge2)*(SliderMax-band2End)
	}

	return clampPos(int(math.Round(pos)))
}

// LinearInverse is the single-scale approximation used by older bookmarked URLs.
func LinearInverse(value, maxValue int64) int {
	if maxValue <= 0 || value <= 0 {
		return SliderMin
	}
	return clampPos(int(math.Round(float64(value) / float64(maxValue) * SliderMax)))
}

// Range returns the currency bounds selected by a pair of handles.
func (m Mapper) Range(p Position) (int64, int64) {
	return m.Forward(p.Min), m.Forward(p.Max)
}

// Positions restores handles from currency bounds.
func (m Mapper) Positions(minValue, maxValue int64) Position {
	return Clamp(m.Inverse(minValue), m.Inverse(maxValue))
}

func clampPos(v int) int {
	if v < SliderMin {
		return SliderMin
	}
	if v > SliderMax {
		return SliderMax
	}
	return v
}
