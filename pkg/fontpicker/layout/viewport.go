package layout

// Viewport is the scroll window over a list of fixed-height rows. Only rows
// inside the visible range are realized when rendering.
type Viewport struct {
	rowHeight int32
	height    int32
	rows      int
	offset    int32
}

func NewViewport(rowHeight, height int32, rows int) *Viewport {
	if rowHeight < 1 {
		rowHeight = 1
	}
	return &Viewport{
		rowHeight: rowHeight,
		height:    max(height, 0),
		rows:      max(rows, 0),
	}
}

// Offset is the number of pixels scrolled past the first row.
func (v *Viewport) Offset() int32 {
	return v.offset
}

func (v *Viewport) ContentHeight() int32 {
	return int32(v.rows) * v.rowHeight
}

func (v *Viewport) maxOffset() int32 {
	return max(v.ContentHeight()-v.height, 0)
}

// ScrollBy moves the viewport by dy pixels, clamped to the content.
func (v *Viewport) ScrollBy(dy int32) {
	v.offset = min(max(v.offset+dy, 0), v.maxOffset())
}

// ScrollToVisible scrolls the minimum amount needed to fully show row index.
func (v *Viewport) ScrollToVisible(index int) {
	if index < 0 || index >= v.rows {
		return
	}

	top := int32(index) * v.rowHeight
	bottom := top + v.rowHeight

	if top < v.offset {
		v.offset = top
	} else if bottom > v.offset+v.height {
		v.offset = bottom - v.height
	}

	v.offset = min(max(v.offset, 0), v.maxOffset())
}

// VisibleRange returns the half-open range of rows intersecting the viewport.
func (v *Viewport) VisibleRange() (first, last int) {
	if v.rows == 0 || v.height == 0 {
		return 0, 0
	}

	first = int(v.offset / v.rowHeight)
	last = int((v.offset + v.height + v.rowHeight - 1) / v.rowHeight)

	return first, min(last, v.rows)
}

// RowY returns the top of row index relative to the top of the list region.
func (v *Viewport) RowY(index int) int32 {
	return int32(index)*v.rowHeight - v.offset
}

// RowAt returns the row under y, measured from the top of the list region.
func (v *Viewport) RowAt(y int32) (int, bool) {
	if y < 0 || y >= v.height {
		return 0, false
	}

	index := int((y + v.offset) / v.rowHeight)
	if index >= v.rows {
		return 0, false
	}
	return index, true
}
