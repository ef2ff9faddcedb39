package vector

import (
	"fmt"
	"math"
)

type Vector3 struct {
	X, Y, Z float64
}

func NewVector3(x, y, z any) (Vector3, error) {
	fx, ok := ParseCoord(x)
	if !ok {
		return Vector3{}, newInvalidCoordinateError(x)
	}
	fy, ok := ParseCoord(y)
	if !ok {
		return Vector3{}, newInvalidCoordinateError(y)
	}
	fz, ok := ParseCoord(z)
	if !ok {
		return Vector3{}, newInvalidCoordinateError(z)
	}
	return Vector3{X: fx, Y: fy, Z: fz}, nil
}

func MustVector3(x, y, z any) Vector3 {
	v, err := NewVector3(x, y, z)
	if err != nil {
		panic(err)
	}
	return v
}

func Zero3() Vector3 { return Vector3{0, 0, 0} }
func One3() Vector3  { return Vector3{1, 1, 1} }
func Two3() Vector3  { return Vector3{2, 2, 2} }

func (v Vector3) sealed() {}

func (v Vector3) Dim() int { return 3 }

func (v Vector3) Components() []float64 { return []float64{v.X, v.Y, v.Z} }

func (v Vector3) String() string {
	return fmt.Sprintf("(%s, %s, %s)", FormatCoord(v.X), FormatCoord(v.Y), FormatCoord(v.Z))
}

func (v Vector3) Plus(w Vector3) Vector3     { return Vector3{v.X + w.X, v.Y + w.Y, v.Z + w.Z} }
func (v Vector3) Minus(w Vector3) Vector3    { return Vector3{v.X - w.X, v.Y - w.Y, v.Z - w.Z} }
func (v Vector3) Hadamard(w Vector3) Vector3 { return Vector3{v.X * w.X, v.Y * w.Y, v.Z * w.Z} }
func (v Vector3) Scale(s float64) Vector3    { return Vector3{v.X * s, v.Y * s, v.Z * s} }

// additive resolves the right-hand side of + and -. Besides a Vector3 or a
// three-number sequence, a two-number sequence is accepted and only touches
// X and Y; keepZ reports that case.
func (v Vector3) additive(op string, o Operand) (w Vector3, keepZ bool, err error) {
	if u, ok := o.vector3(); ok {
		return u, false, nil
	}
	if o.kind == OperandSequence {
		switch len(o.seq) {
		case 3:
			return Vector3{o.seq[0], o.seq[1], o.seq[2]}, false, nil
		case 2:
			return Vector3{o.seq[0], o.seq[1], 0}, true, nil
		}
	}
	return Vector3{}, false, newUnsupportedOperandError(op, "Vector3", o)
}

func (v Vector3) multiplicative(op string, o Operand) (Vector3, error) {
	if w, ok := o.vector3(); ok {
		return w, nil
	}
	if o.kind == OperandScalar {
		return Vector3{o.scalar, o.scalar, o.scalar}, nil
	}
	return Vector3{}, newUnsupportedOperandError(op, "Vector3", o)
}

func (v Vector3) add(op string, o Operand) (Vector3, error) {
	w, keepZ, err := v.additive(op, o)
	if err != nil {
		return Vector3{}, err
	}
	r := v.Plus(w)
	if keepZ {
		r.Z = v.Z
	}
	return r, nil
}

func (v Vector3) sub(op string, o Operand) (Vector3, error) {
	w, keepZ, err := v.additive(op, o)
	if err != nil {
		return Vector3{}, err
	}
	r := v.Minus(w)
	if keepZ {
		r.Z = v.Z
	}
	return r, nil
}

func (v Vector3) mul(op string, o Operand) (Vector3, error) {
	w, err := v.multiplicative(op, o)
	if err != nil {
		return Vector3{}, err
	}
	return v.Hadamard(w), nil
}

func (v Vector3) div(op string, o Operand) (Vector3, error) {
	w, err := v.multiplicative(op, o)
	if err != nil {
		return Vector3{}, err
	}
	return Vector3{v.X / w.X, v.Y / w.Y, v.Z / w.Z}, nil
}

func (v Vector3) floorDiv(op string, o Operand) (Vector3, error) {
	w, err := v.multiplicative(op, o)
	if err != nil {
		return Vector3{}, err
	}
	return Vector3{floorDiv(v.X, w.X), floorDiv(v.Y, w.Y), floorDiv(v.Z, w.Z)}, nil
}

func (v Vector3) Add(o Operand) (Vector3, error)      { return v.add("+", o) }
func (v Vector3) Sub(o Operand) (Vector3, error)      { return v.sub("-", o) }
func (v Vector3) Mul(o Operand) (Vector3, error)      { return v.mul("*", o) }
func (v Vector3) Div(o Operand) (Vector3, error)      { return v.div("/", o) }
func (v Vector3) FloorDiv(o Operand) (Vector3, error) { return v.floorDiv("//", o) }

func (v *Vector3) AddAssign(o Operand) (*Vector3, error)      { return v.assign(v.add("+=", o)) }
func (v *Vector3) SubAssign(o Operand) (*Vector3, error)      { return v.assign(v.sub("-=", o)) }
func (v *Vector3) MulAssign(o Operand) (*Vector3, error)      { return v.assign(v.mul("*=", o)) }
func (v *Vector3) DivAssign(o Operand) (*Vector3, error)      { return v.assign(v.div("/=", o)) }
func (v *Vector3) FloorDivAssign(o Operand) (*Vector3, error) { return v.assign(v.floorDiv("//=", o)) }

func (v *Vector3) assign(r Vector3, err error) (*Vector3, error) {
	if err != nil {
		return nil, err
	}
	*v = r
	return v, nil
}

func (v Vector3) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

func (v Vector3) Norm() (Vector3, error) {
	m := v.Magnitude()
	if m == 0 {
		return Vector3{}, ErrZeroVector
	}
	return Vector3{v.X / m, v.Y / m, v.Z / m}, nil
}

func (v Vector3) Normalise() (Vector3, error) { return v.Norm() }

func (v Vector3) Lerp(w Vector3, factor float64) Vector3 {
	return v.Plus(w.Minus(v).Scale(factor))
}

func (v Vector3) DistanceTo(w Vector3) float64 {
	dx, dy, dz := w.X-v.X, w.Y-v.Y, w.Z-v.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

func (v Vector3) Dot(w Vector3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

func (v Vector3) Equal(w Vector3) bool { return v.ApproxEqual(w, Epsilon) }

func (v Vector3) ApproxEqual(w Vector3, eps float64) bool {
	return approxEqual(v.X, w.X, eps) && approxEqual(v.Y, w.Y, eps) && approxEqual(v.Z, w.Z, eps)
}
