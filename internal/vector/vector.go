// Package vector provides 2D and 3D float64 vectors with component-wise
// arithmetic, magnitude, normalisation, interpolation and dot products.
package vector

import "fmt"

// Vector is implemented by Vector2 and Vector3 only. A nil *Vector2 or
// *Vector3 also satisfies it, but its methods panic; Distance, Lerp, Dot and
// VectorOperand treat such a value as an unrecognised vector instead of
// calling it.
type Vector interface {
	Dim() int
	Components() []float64
	String() string
	sealed()
}

type OperandKind int

const (
	OperandNone OperandKind = iota
	OperandVector
	OperandSequence
	OperandScalar
)

// Operand is the right-hand side of an arithmetic operation. The zero value
// is an operand of unrecognised type and is rejected by every operation.
type Operand struct {
	kind   OperandKind
	vec    Vector
	seq    []float64
	scalar float64
}

func VectorOperand(v Vector) Operand {
	if v == nil {
		return Operand{}
	}
	return Operand{kind: OperandVector, vec: v}
}

func SequenceOperand(xs ...float64) Operand {
	return Operand{kind: OperandSequence, seq: append([]float64(nil), xs...)}
}

func ScalarOperand(s float64) Operand {
	return Operand{kind: OperandScalar, scalar: s}
}

func (o Operand) Kind() OperandKind { return o.kind }

// TypeName describes the operand in error messages.
func (o Operand) TypeName() string {
	switch o.kind {
	case OperandVector:
		return typeName(o.vec)
	case OperandSequence:
		return fmt.Sprintf("sequence[%d]", len(o.seq))
	case OperandScalar:
		return "float64"
	}
	return "<nil>"
}

func (o Operand) vector2() (Vector2, bool) {
	if o.kind != OperandVector {
		return Vector2{}, false
	}
	return as2(o.vec)
}

func (o Operand) vector3() (Vector3, bool) {
	if o.kind != OperandVector {
		return Vector3{}, false
	}
	return as3(o.vec)
}

func as2(v Vector) (Vector2, bool) {
	switch t := v.(type) {
	case Vector2:
		return t, true
	case *Vector2:
		if t != nil {
			return *t, true
		}
	}
	return Vector2{}, false
}

func as3(v Vector) (Vector3, bool) {
	switch t := v.(type) {
	case Vector3:
		return t, true
	case *Vector3:
		if t != nil {
			return *t, true
		}
	}
	return Vector3{}, false
}

func typeName(v Vector) string {
	switch v.(type) {
	case Vector2, *Vector2:
		return "Vector2"
	case Vector3, *Vector3:
		return "Vector3"
	}
	return "<nil>"
}

// Distance returns the Euclidean distance between a and b, which must share
// a dimensionality.
func Distance(a, b Vector) (float64, error) {
	if a2, b2, ok := pair2(a, b); ok {
		return a2.DistanceTo(b2), nil
	}
	if a3, b3, ok := pair3(a, b); ok {
		return a3.DistanceTo(b3), nil
	}
	return 0, newMismatchedDimensionalityError("distance", a, b)
}

// Lerp interpolates from a to b by factor. The result has the same
// dimensionality as the inputs.
func Lerp(a, b Vector, factor float64) (Vector, error) {
	if a2, b2, ok := pair2(a, b); ok {
		return a2.Lerp(b2, factor), nil
	}
	if a3, b3, ok := pair3(a, b); ok {
		return a3.Lerp(b3, factor), nil
	}
	return nil, newMismatchedDimensionalityError("lerp", a, b)
}

func Dot(a, b Vector) (float64, error) {
	if a2, b2, ok := pair2(a, b); ok {
		return a2.Dot(b2), nil
	}
	if a3, b3, ok := pair3(a, b); ok {
		return a3.Dot(b3), nil
	}
	return 0, newMismatchedDimensionalityError("dot", a, b)
}

func pair2(a, b Vector) (Vector2, Vector2, bool) {
	a2, ok := as2(a)
	if !ok {
		return Vector2{}, Vector2{}, false
	}
	b2, ok := as2(b)
	return a2, b2, ok
}

func pair3(a, b Vector) (Vector3, Vector3, bool) {
	a3, ok := as3(a)
	if !ok {
		return Vector3{}, Vector3{}, false
	}
	b3, ok := as3(b)
	return a3, b3, ok
}
