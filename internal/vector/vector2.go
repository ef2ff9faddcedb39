package vector

import (
	"fmt"
	"math"
)

type Vector2 struct {
	X, Y float64
}

// NewVector2 builds a vector from any values ParseCoord accepts.
func NewVector2(x, y any) (Vector2, error) {
	fx, ok := ParseCoord(x)
	if !ok {
		return Vector2{}, newInvalidCoordinateError(x)
	}
	fy, ok := ParseCoord(y)
	if !ok {
		return Vector2{}, newInvalidCoordinateError(y)
	}
	return Vector2{X: fx, Y: fy}, nil
}

func MustVector2(x, y any) Vector2 {
	v, err := NewVector2(x, y)
	if err != nil {
		panic(err)
	}
	return v
}

func Zero2() Vector2 { return Vector2{0, 0} }
func One2() Vector2  { return Vector2{1, 1} }
func Two2() Vector2  { return Vector2{2, 2} }

func (v Vector2) sealed() {}

func (v Vector2) Dim() int { return 2 }

func (v Vector2) Components() []float64 { return []float64{v.X, v.Y} }

func (v Vector2) String() string {
	return fmt.Sprintf("(%s, %s)", FormatCoord(v.X), FormatCoord(v.Y))
}

func (v Vector2) Plus(w Vector2) Vector2     { return Vector2{v.X + w.X, v.Y + w.Y} }
func (v Vector2) Minus(w Vector2) Vector2    { return Vector2{v.X - w.X, v.Y - w.Y} }
func (v Vector2) Hadamard(w Vector2) Vector2 { return Vector2{v.X * w.X, v.Y * w.Y} }
func (v Vector2) Scale(s float64) Vector2    { return Vector2{v.X * s, v.Y * s} }

// additive resolves the right-hand side of + and -: a Vector2 or a
// sequence of exactly two numbers.
func (v Vector2) additive(op string, o Operand) (Vector2, error) {
	if w, ok := o.vector2(); ok {
		return w, nil
	}
	if o.kind == OperandSequence && len(o.seq) == 2 {
		return Vector2{o.seq[0], o.seq[1]}, nil
	}
	return Vector2{}, newUnsupportedOperandError(op, "Vector2", o)
}

// multiplicative resolves the right-hand side of *, / and //: a Vector2 or
// a scalar broadcast to both axes.
func (v Vector2) multiplicative(op string, o Operand) (Vector2, error) {
	if w, ok := o.vector2(); ok {
		return w, nil
	}
	if o.kind == OperandScalar {
		return Vector2{o.scalar, o.scalar}, nil
	}
	return Vector2{}, newUnsupportedOperandError(op, "Vector2", o)
}

func (v Vector2) add(op string, o Operand) (Vector2, error) {
	w, err := v.additive(op, o)
	if err != nil {
		return Vector2{}, err
	}
	return v.Plus(w), nil
}

func (v Vector2) sub(op string, o Operand) (Vector2, error) {
	w, err := v.additive(op, o)
	if err != nil {
		return Vector2{}, err
	}
	return v.Minus(w), nil
}

func (v Vector2) mul(op string, o Operand) (Vector2, error) {
	w, err := v.multiplicative(op, o)
	if err != nil {
		return Vector2{}, err
	}
	return v.Hadamard(w), nil
}

func (v Vector2) div(op string, o Operand) (Vector2, error) {
	w, err := v.multiplicative(op, o)
	if err != nil {
		return Vector2{}, err
	}
	return Vector2{v.X / w.X, v.Y / w.Y}, nil
}

func (v Vector2) floorDiv(op string, o Operand) (Vector2, error) {
	w, err := v.multiplicative(op, o)
	if err != nil {
		return Vector2{}, err
	}
	return Vector2{floorDiv(v.X, w.X), floorDiv(v.Y, w.Y)}, nil
}

func (v Vector2) Add(o Operand) (Vector2, error)      { return v.add("+", o) }
func (v Vector2) Sub(o Operand) (Vector2, error)      { return v.sub("-", o) }
func (v Vector2) Mul(o Operand) (Vector2, error)      { return v.mul("*", o) }
func (v Vector2) Div(o Operand) (Vector2, error)      { return v.div("/", o) }
func (v Vector2) FloorDiv(o Operand) (Vector2, error) { return v.floorDiv("//", o) }

// The Assign variants update v in place and return it. On error v is left
// unchanged.

func (v *Vector2) AddAssign(o Operand) (*Vector2, error)      { return v.assign(v.add("+=", o)) }
func (v *Vector2) SubAssign(o Operand) (*Vector2, error)      { return v.assign(v.sub("-=", o)) }
func (v *Vector2) MulAssign(o Operand) (*Vector2, error)      { return v.assign(v.mul("*=", o)) }
func (v *Vector2) DivAssign(o Operand) (*Vector2, error)      { return v.assign(v.div("/=", o)) }
func (v *Vector2) FloorDivAssign(o Operand) (*Vector2, error) { return v.assign(v.floorDiv("//=", o)) }

func (v *Vector2) assign(r Vector2, err error) (*Vector2, error) {
	if err != nil {
		return nil, err
	}
	*v = r
	return v, nil
}

func (v Vector2) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Norm returns v scaled to unit length.
func (v Vector2) Norm() (Vector2, error) {
	m := v.Magnitude()
	if m == 0 {
		return Vector2{}, ErrZeroVector
	}
	return Vector2{v.X / m, v.Y / m}, nil
}

func (v Vector2) Normalise() (Vector2, error) { return v.Norm() }

// Lerp returns v + (w - v) * factor. factor is not clamped, so values
// outside [0, 1] extrapolate.
func (v Vector2) Lerp(w Vector2, factor float64) Vector2 {
	return v.Plus(w.Minus(v).Scale(factor))
}

func (v Vector2) DistanceTo(w Vector2) float64 {
	dx, dy := w.X-v.X, w.Y-v.Y
	return math.Sqrt(dx*dx + dy*dy)
}

func (v Vector2) Dot(w Vector2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Equal reports whether v and w match on every axis within Epsilon.
func (v Vector2) Equal(w Vector2) bool { return v.ApproxEqual(w, Epsilon) }

func (v Vector2) ApproxEqual(w Vector2, eps float64) bool {
	return approxEqual(v.X, w.X, eps) && approxEqual(v.Y, w.Y, eps)
}
