package viewer

// Drag tracks a pointer drag. The zero value is an inactive drag.
type Drag struct {
	Active  bool
	OriginX float64
	OriginY float64
}

// StartDrag begins a drag at the pointer position. The origin is stored
// relative to the current offset so the layout follows the pointer.
func StartDrag(t Transform, px, py float64) Drag {
	return Drag{
		Active:  true,
		OriginX: px - t.OffsetX,
		OriginY: py - t.OffsetY,
	}
}

// Move returns t with its offset following the pointer.
// An inactive drag leaves t unchanged.
func (d Drag) Move(t Transform, px, py float64) Transform {
	if !d.Active {
		return t
	}
	t.OffsetX = px - d.OriginX
	t.OffsetY = py - d.OriginY
	return t
}

// End stops the drag. Pointer release and pointer leave both end it.
func (d Drag) End() Drag {
	return Drag{}
}
