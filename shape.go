package solid

import "math"

// Shape represents a geometric shape.
type Shape interface {
	// Area returns the area of the shape for its own dimensions.
	Area() float64
}

// ShapeArea returns the area of s. The calculation depends on the concrete
// type of s.
func ShapeArea(s Shape) float64 {
	return s.Area()
}

// Base is the placeholder Shape. Its area is always zero.
type Base struct{}

// Area returns 0.
func (Base) Area() float64 {
	return 0
}

// Rectangle is an axis-aligned rectangle. Dimensions are fixed at construction.
type Rectangle struct {
	width  float64
	height float64
}

// NewRectangle returns a Rectangle with the given width and height.
// Negative values are accepted as is.
func NewRectangle(width, height float64) Rectangle {
	return Rectangle{width: width, height: height}
}

// Width returns the rectangle's width.
func (r Rectangle) Width() float64 { return r.width }

// Height returns the rectangle's height.
func (r Rectangle) Height() float64 { return r.height }

// Area returns width × height.
func (r Rectangle) Area() float64 {
	return r.width * r.height
}

// Circle is a circle of fixed radius.
type Circle struct {
	radius float64
}

// NewCircle returns a Circle with the given radius.
// A negative radius is accepted as is.
func NewCircle(radius float64) Circle {
	return Circle{radius: radius}
}

// Radius returns the circle's radius.
func (c Circle) Radius() float64 { return c.radius }

// Area returns π × radius².
func (c Circle) Area() float64 {
	return math.Pi * c.radius * c.radius
}
