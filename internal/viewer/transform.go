package viewer

import (
	"fmt"
	"math"
	"strconv"
)

const (
	// MinScale is the smallest zoom factor
	MinScale = 0.5
	// MaxScale is the largest zoom factor
	MaxScale = 5.0
	// ButtonStep is the zoom change of the toolbar buttons
	ButtonStep = 0.2
	// WheelStep is the zoom change of one wheel notch
	WheelStep = 0.1
)

// Transform is the translate + scale applied to the displayed layout.
// It is a value type; every operation returns a new Transform.
type Transform struct {
	Scale   float64
	OffsetX float64
	OffsetY float64
}

// Identity returns scale 1 with no offset
func Identity() Transform {
	return Transform{Scale: 1}
}

// ZoomIn increases the scale by step, saturating at MaxScale
func (t Transform) ZoomIn(step float64) Transform {
	t.Scale = clampScale(t.Scale + step)
	return t
}

// ZoomOut decreases the scale by step, saturating at MinScale
func (t Transform) ZoomOut(step float64) Transform {
	t.Scale = clampScale(t.Scale - step)
	return t
}

// Wheel zooms out for a positive deltaY and in otherwise
func (t Transform) Wheel(deltaY float64) Transform {
	if deltaY > 0 {
		return t.ZoomOut(WheelStep)
	}
	return t.ZoomIn(WheelStep)
}

// Pan shifts the offset
func (t Transform) Pan(dx, dy float64) Transform {
	t.OffsetX += dx
	t.OffsetY += dy
	return t
}

// CSS renders the transform as a CSS transform value
func (t Transform) CSS() string {
	return fmt.Sprintf("translate(%spx, %spx) scale(%s)", num(t.OffsetX), num(t.OffsetY), num(t.Scale))
}

// rounding to two decimals keeps repeated 0.1/0.2 steps on exact values
func clampScale(s float64) float64 {
	s = math.Round(s*100) / 100
	return math.Min(MaxScale, math.Max(MinScale, s))
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
