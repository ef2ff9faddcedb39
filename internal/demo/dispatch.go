package demo

import (
	"fmt"

	"vecmath/internal/config"
	"vecmath/internal/vector"
)

func apply2(op string, v *vector.Vector2, o vector.Operand) (vector.Vector, error) {
	switch op {
	case config.OpAdd:
		return value2(v.Add(o))
	case config.OpSub:
		return value2(v.Sub(o))
	case config.OpMul:
		return value2(v.Mul(o))
	case config.OpDiv:
		return value2(v.Div(o))
	case config.OpFloorDiv:
		return value2(v.FloorDiv(o))
	case config.OpIAdd:
		return ref2(v.AddAssign(o))
	case config.OpISub:
		return ref2(v.SubAssign(o))
	case config.OpIMul:
		return ref2(v.MulAssign(o))
	case config.OpIDiv:
		return ref2(v.DivAssign(o))
	case config.OpIFloorDiv:
		return ref2(v.FloorDivAssign(o))
	}
	return nil, fmt.Errorf("unknown op %q", op)
}

func apply3(op string, v *vector.Vector3, o vector.Operand) (vector.Vector, error) {
	switch op {
	case config.OpAdd:
		return value3(v.Add(o))
	case config.OpSub:
		return value3(v.Sub(o))
	case config.OpMul:
		return value3(v.Mul(o))
	case config.OpDiv:
		return value3(v.Div(o))
	case config.OpFloorDiv:
		return value3(v.FloorDiv(o))
	case config.OpIAdd:
		return ref3(v.AddAssign(o))
	case config.OpISub:
		return ref3(v.SubAssign(o))
	case config.OpIMul:
		return ref3(v.MulAssign(o))
	case config.OpIDiv:
		return ref3(v.DivAssign(o))
	case config.OpIFloorDiv:
		return ref3(v.FloorDivAssign(o))
	}
	return nil, fmt.Errorf("unknown op %q", op)
}

func value2(v vector.Vector2, err error) (vector.Vector, error) {
	if err != nil {
		return nil, err
	}
	return v, nil
}

func value3(v vector.Vector3, err error) (vector.Vector, error) {
	if err != nil {
		return nil, err
	}
	return v, nil
}

func ref2(v *vector.Vector2, err error) (vector.Vector, error) {
	if err != nil {
		return nil, err
	}
	return v, nil
}

func ref3(v *vector.Vector3, err error) (vector.Vector, error) {
	if err != nil {
		return nil, err
	}
	return v, nil
}

func magnitude(v vector.Vector) float64 {
	switch t := v.(type) {
	case *vector.Vector2:
		return t.Magnitude()
	case *vector.Vector3:
		return t.Magnitude()
	case vector.Vector2:
		return t.Magnitude()
	case vector.Vector3:
		return t.Magnitude()
	}
	return 0
}

func norm(v vector.Vector) (vector.Vector, error) {
	switch t := v.(type) {
	case *vector.Vector2:
		return value2(t.Norm())
	case *vector.Vector3:
		return value3(t.Norm())
	}
	return nil, fmt.Errorf("cannot normalise %T", v)
}

func axis(v vector.Vector, name string) (float64, error) {
	p, err := axisRef(v, name)
	if err != nil {
		return 0, err
	}
	return *p, nil
}

// shift adds delta to one coordinate in place and returns the new value.
func shift(v vector.Vector, name string, delta float64) (float64, error) {
	p, err := axisRef(v, name)
	if err != nil {
		return 0, err
	}
	*p += delta
	return *p, nil
}

func axisRef(v vector.Vector, name string) (*float64, error) {
	switch t := v.(type) {
	case *vector.Vector2:
		switch name {
		case "x":
			return &t.X, nil
		case "y":
			return &t.Y, nil
		}
	case *vector.Vector3:
		switch name {
		case "x":
			return &t.X, nil
		case "y":
			return &t.Y, nil
		case "z":
			return &t.Z, nil
		}
	}
	return nil, fmt.Errorf("%s has no axis %q", v, name)
}
