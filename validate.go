package solid

import (
	"fmt"
	"math"
)

// Validator is implemented by shapes that can check their own dimensions.
type Validator interface {
	Validate() error
}

// Validate reports whether s has usable dimensions. It returns an error
// wrapping ErrInvalidArgument when a dimension is negative or NaN.
// Base and shapes that neither are a known variant nor implement Validator
// are always valid.
func Validate(s Shape) error {
	switch v := s.(type) {
	case Rectangle:
		return checkDims("rectangle", dim{"width", v.width}, dim{"height", v.height})
	case *Rectangle:
		return checkDims("rectangle", dim{"width", v.width}, dim{"height", v.height})
	case Circle:
		return checkDims("circle", dim{"radius", v.radius})
	case *Circle:
		return checkDims("circle", dim{"radius", v.radius})
	case Validator:
		return v.Validate()
	}
	return nil
}

type dim struct {
	name  string
	value float64
}

func checkDims(kind string, dims ...dim) error {
	for _, d := range dims {
		if err := CheckDimension(d.name, d.value); err != nil {
			return fmt.Errorf("solid: %s: %w", kind, err)
		}
	}
	return nil
}

// CheckDimension returns an error wrapping ErrInvalidArgument if value is
// negative or NaN.
func CheckDimension(name string, value float64) error {
	if math.IsNaN(value) || value < 0 {
		return fmt.Errorf("%s %v: %w", name, value, ErrInvalidArgument)
	}
	return nil
}
