package particles

import "math"

//Vec is a 3d offset or position in world units
type Vec struct {
	X, Y, Z float64
}

func (v Vec) Add(o Vec) Vec {
	return Vec{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec) Scale(s float64) Vec {
	return Vec{v.X * s, v.Y * s, v.Z * s}
}

func (v Vec) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

//Location is a position inside a named world
type Location struct {
	World string `yaml:"World"`
	Vec   `yaml:",inline"`
}

//Point is a single emission point handed to the dispatcher. Offset is relative to
//the origin the style was generated for. Direction and Speed only carry meaning when
//Directional is set; otherwise Direction is a spread hint for the renderer.
type Point struct {
	Offset      Vec
	Direction   Vec
	Speed       float64
	Directional bool
}

//At returns the absolute position of the point for the given origin
func (p Point) At(origin Vec) Vec {
	return origin.Add(p.Offset)
}
