package entity

// Mask is a per-pixel collision layer, the same shape of data the level
// editor exports as a collision image. Out of bounds is occupied.
type Mask struct {
	width, height int
	solid         []bool
}

// NewMask creates an empty w x h mask
func NewMask(w, h int) *Mask {
	return &Mask{width: w, height: h, solid: make([]bool, w*h)}
}

// Fill marks the rectangle as solid, clipped to the mask
func (m *Mask) Fill(x, y, w, h int) {
	m.set(x, y, w, h, true)
}

// Clear marks the rectangle as empty, clipped to the mask
func (m *Mask) Clear(x, y, w, h int) {
	m.set(x, y, w, h, false)
}

func (m *Mask) set(x, y, w, h int, v bool) {
	for py := max(y, 0); py < min(y+h, m.height); py++ {
		for px := max(x, 0); px < min(x+w, m.width); px++ {
			m.solid[py*m.width+px] = v
		}
	}
}

// IsOccupied returns true for solid pixels and anything out of bounds
func (m *Mask) IsOccupied(x, y int) bool {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return true
	}
	return m.solid[y*m.width+x]
}

// Bounds returns the mask size in pixels
func (m *Mask) Bounds() (width, height int) {
	return m.width, m.height
}
