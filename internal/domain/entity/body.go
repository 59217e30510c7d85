package entity

// Point is a pixel position
type Point struct {
	X, Y int
}

// Add returns p translated by q
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// DistSq returns the squared euclidean distance between p and q
func (p Point) DistSq(q Point) int {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

// Velocity is measured in pixels per tick
type Velocity struct {
	X, Y int
}

// Size is the sprite frame size in pixels
type Size struct {
	W, H int
}

// Shape is the collision rectangle, offset from the entity position.
// It does not mirror with facing.
type Shape struct {
	OffsetX int
	OffsetY int
	Width   int
	Height  int
}

// At returns the shape placed at the given entity position
func (s Shape) At(p Point) Rect {
	return Rect{X: p.X + s.OffsetX, Y: p.Y + s.OffsetY, W: s.Width, H: s.Height}
}

// Valid reports whether both dimensions are non-negative
func (s Shape) Valid() bool {
	return s.Width >= 0 && s.Height >= 0
}

// Crouched returns the shape with its height halved and anchored at the feet
func (s Shape) Crouched() Shape {
	h := s.Height / 2
	return Shape{
		OffsetX: s.OffsetX,
		OffsetY: s.OffsetY + (s.Height - h),
		Width:   s.Width,
		Height:  h,
	}
}

// Rect is an axis-aligned rectangle in world pixels
type Rect struct {
	X, Y int
	W, H int
}

// Right returns the x-coordinate one past the right edge
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the y-coordinate one past the bottom edge
func (r Rect) Bottom() int { return r.Y + r.H }

// Intersects returns true if the rectangles overlap
func (r Rect) Intersects(o Rect) bool {
	if r.W <= 0 || r.H <= 0 || o.W <= 0 || o.H <= 0 {
		return false
	}
	if r.X >= o.Right() || o.X >= r.Right() {
		return false
	}
	if r.Y >= o.Bottom() || o.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point lies inside the rectangle
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}
