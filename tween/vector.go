package tween

// Vec2 is a two component vector.
type Vec2 struct {
	X, Y float64
}

// Tween blends each component independently.
func (v Vec2) Tween(to Vec2, t float64) Vec2 {
	return Vec2{
		X: Float(v.X, to.X, t),
		Y: Float(v.Y, to.Y, t),
	}
}

// Vec3 is a three component vector.
type Vec3 struct {
	X, Y, Z float64
}

// Tween blends each component independently.
func (v Vec3) Tween(to Vec3, t float64) Vec3 {
	return Vec3{
		X: Float(v.X, to.X, t),
		Y: Float(v.Y, to.Y, t),
		Z: Float(v.Z, to.Z, t),
	}
}

// Vec4 is a four component vector.
type Vec4 struct {
	X, Y, Z, W float64
}

// Tween blends each component independently.
func (v Vec4) Tween(to Vec4, t float64) Vec4 {
	return Vec4{
		X: Float(v.X, to.X, t),
		Y: Float(v.Y, to.Y, t),
		Z: Float(v.Z, to.Z, t),
		W: Float(v.W, to.W, t),
	}
}

// Point2 is a position in the plane.
type Point2 struct {
	X, Y float64
}

// Tween moves along the straight line from p to to.
func (p Point2) Tween(to Point2, t float64) Point2 {
	return Point2{
		X: Float(p.X, to.X, t),
		Y: Float(p.Y, to.Y, t),
	}
}

// Point3 is a position in space.
type Point3 struct {
	X, Y, Z float64
}

// Tween moves along the straight line from p to to.
func (p Point3) Tween(to Point3, t float64) Point3 {
	return Point3{
		X: Float(p.X, to.X, t),
		Y: Float(p.Y, to.Y, t),
		Z: Float(p.Z, to.Z, t),
	}
}
