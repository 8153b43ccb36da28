package pricerange

// Position is a pair of slider handles. Min is always strictly below Max.
type Position struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Full selects the whole slider.
func Full() Position {
	return Position{Min: SliderMin, Max: SliderMax}
}

// Clamp builds a valid position from arbitrary handle values. When the handles cross, the min
// handle is pulled to one step below max.
func Clamp(minPos, maxPos int) Position {
	maxPos = clampPos(maxPos)
	if maxPos == SliderMin {
		maxPos = SliderMin + 1
	}
	minPos = clampPos(minPos)
	if minPos >= maxPos {
		minPos = maxPos - 1
	}
	return Position{Min: minPos, Max: maxPos}
}

// MoveMin moves the min handle, stopping one step short of the max handle.
func (p Position) MoveMin(v int) Position {
	v = clampPos(v)
	if v >= p.Max {
		v = p.Max - 1
	}
	p.Min = v
	return p
}

// MoveMax moves the max handle, stopping one step past the min handle.
func (p Position) MoveMax(v int) Position {
	v = clampPos(v)
	if v <= p.Min {
		v = p.Min + 1
	}
	p.Max = v
	return p
}
