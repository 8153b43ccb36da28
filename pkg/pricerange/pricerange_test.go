package pricerange

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const tenThousandCrore int64 = 10_000_000_000

func TestForwardBandBoundaries(t *testing.T) {
	m := New(tenThousandCrore)

	tests := []struct {
		slider int
		want   int64
	}{
		{0, 0},
		{333, 100_000_000},
		{666, 5_000_000_000},
		{1000, tenThousandCrore},
		{-10, 0},
		{1500, tenThousandCrore},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, m.Forward(tt.slider), "slider %d", tt.slider)
	}
}

func TestForwardIsMonotonic(t *testing.T) {
	m := New(tenThousandCrore)
	prev := m.Forward(0)
	for s := 1; s <= SliderMax; s++ {
		cur := m.Forward(s)
		assert.Greater(t, cur, prev, "slider %d", s)
		prev = cur
	}
}

func TestInverseRoundTrips(t *testing.T) {
	for _, maxValue := range []int64{tenThousandCrore, 12_345_678_901, Band2Upper + 334} {
		m := New(maxValue)
		for s := SliderMin; s <= SliderMax; s++ {
			assert.Equal(t, s, m.Inverse(m.Forward(s)), "max %d slider %d", maxValue, s)
		}
	}
}

func TestInverseOutOfRange(t *testing.T) {
	m := New(tenThousandCrore)
	assert.Equal(t, 0, m.Inverse(-5))
	assert.Equal(t, 1000, m.Inverse(tenThousandCrore*2))
}

func TestLinearInverseDiffersFromExact(t *testing.T) {
	m := New(tenThousandCrore)

	assert.Equal(t, 10, LinearInverse(100_000_000, tenThousandCrore))
	assert.Equal(t, 333, m.Inverse(100_000_000))
	assert.Equal(t, 0, LinearInverse(100, 0))
	assert.Equal(t, 1000, LinearInverse(tenThousandCrore*3, tenThousandCrore))
}

func TestSmallMaxValueCompressesBands(t *testing.T) {
	tests := []struct {
		name     string
		maxValue int64
		want333  int64
		want666  int64
	}{
		{"below second band", 200_000_000, Band1Upper, 200_000_000},
		{"below first band", 50_000_000, 50_000_000, 50_000_000},
		{"zero", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(tt.maxValue)
			assert.Equal(t, tt.maxValue, m.MaxValue())
			assert.Equal(t, int64(0), m.Forward(SliderMin))
			assert.Equal(t, tt.want333, m.Forward(333))
			assert.Equal(t, tt.want666, m.Forward(666))
			assert.Equal(t, tt.maxValue, m.Forward(SliderMax))

			prev := m.Forward(SliderMin)
			for s := 1; s <= SliderMax; s++ {
				cur := m.Forward(s)
				assert.GreaterOrEqual(t, cur, prev, "slider %d", s)
				prev = cur
			}

			assert.Equal(t, SliderMax, m.Inverse(tt.maxValue+1))
		})
	}
}

func TestSmallMaxValueInverse(t *testing.T) {
	m := New(200_000_000)
	assert.Equal(t, 333, m.Inverse(Band1Upper))
	assert.Equal(t, 500, m.Inverse(150_000_000))
	assert.Equal(t, SliderMax, m.Inverse(200_000_000))
	assert.Equal(t, int64(150_150_150), m.Forward(500))
}

func TestNegativeMaxValue(t *testing.T) {
	m := New(-1)
	assert.Equal(t, int64(0), m.MaxValue())
	assert.Equal(t, int64(0), m.Forward(SliderMax))
	assert.Equal(t, SliderMin, m.Inverse(0))
	assert.Equal(t, SliderMax, m.Inverse(10))
}

func TestSliderScenario(t *testing.T) {
	m := New(tenThousandCrore)

	pos := Full()
	lo, hi := m.Range(pos)
	assert.Equal(t, int64(0), lo)
	assert.Equal(t, tenThousandCrore, hi)

	pos = pos.MoveMin(333)
	lo, _ = m.Range(pos)
	assert.Equal(t, int64(100_000_000), lo)
}

func TestHandlesNeverCross(t *testing.T) {
	p := Position{Min: 200, Max: 500}

	assert.Equal(t, Position{Min: 499, Max: 500}, p.MoveMin(800))
	assert.Equal(t, Position{Min: 200, Max: 201}, p.MoveMax(100))
	assert.Equal(t, Position{Min: 0, Max: 500}, p.MoveMin(-3))
	assert.Equal(t, Position{Min: 200, Max: 1000}, p.MoveMax(4000))

	assert.Equal(t, Position{Min: 699, Max: 700}, Clamp(900, 700))
	assert.Equal(t, Position{Min: 0, Max: 1}, Clamp(0, 0))
	assert.Equal(t, Position{Min: 999, Max: 1000}, Clamp(1000, 1000))
}

func TestPositionsFromCurrency(t *testing.T) {
	m := New(tenThousandCrore)
	assert.Equal(t, Position{Min: 333, Max: 666}, m.Positions(100_000_000, 5_000_000_000))
	assert.Equal(t, Position{Min: 999, Max: 1000}, m.Positions(tenThousandCrore, tenThousandCrore))
}
