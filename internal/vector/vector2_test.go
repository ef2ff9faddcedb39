package vector

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVector2StoresFloats(t *testing.T) {
	cases := []struct {
		x, y   any
		wx, wy float64
	}{
		{3, 4, 3, 4},
		{int64(-2), uint8(7), -2, 7},
		{"1.5", " 2 ", 1.5, 2},
		{float32(0.5), true, 0.5, 1},
	}
	for _, c := range cases {
		v, err := NewVector2(c.x, c.y)
		require.NoError(t, err)
		assert.Equal(t, c.wx, v.X)
		assert.Equal(t, c.wy, v.Y)
	}
}

func TestNewVector2RejectsNonNumeric(t *testing.T) {
	_, err := NewVector2("abc", 1)
	require.Error(t, err)
	assert.True(t, IsInvalidCoordinate(err))
	assert.True(t, errors.Is(err, ErrInvalidCoordinate))
	assert.Contains(t, err.Error(), "cannot convert value 'abc' to float")

	_, err = NewVector2(1, nil)
	assert.True(t, IsInvalidCoordinate(err))

	assert.Panics(t, func() { MustVector2([]int{1}, 2) })
}

func TestNamedConstructors2(t *testing.T) {
	assert.Equal(t, Vector2{0, 0}, Zero2())
	assert.Equal(t, Vector2{1, 1}, One2())
	assert.Equal(t, Vector2{2, 2}, Two2())

	sum, err := Zero2().Add(VectorOperand(Zero2()))
	require.NoError(t, err)
	assert.True(t, sum.Equal(Zero2()))

	doubled, err := One2().Mul(ScalarOperand(2))
	require.NoError(t, err)
	assert.True(t, doubled.Equal(Two2()))
}

func TestVector2AddAcceptedShapes(t *testing.T) {
	v := Vector2{1, 1}

	r, err := v.Add(VectorOperand(Vector2{2, 3}))
	require.NoError(t, err)
	assert.Equal(t, Vector2{3, 4}, r)

	r, err = v.Add(SequenceOperand(2, 3))
	require.NoError(t, err)
	assert.Equal(t, Vector2{3, 4}, r)

	r, err = v.Sub(SequenceOperand(2, 3))
	require.NoError(t, err)
	assert.Equal(t, Vector2{-1, -2}, r)

	p := &Vector2{5, 5}
	r, err = v.Add(VectorOperand(p))
	require.NoError(t, err)
	assert.Equal(t, Vector2{6, 6}, r)
}

func TestVector2RejectedOperands(t *testing.T) {
	v := Vector2{1, 1}
	cases := []struct {
		name string
		call func() error
	}{
		{"add seq3", func() error { _, err := v.Add(SequenceOperand(2, 3, 4)); return err }},
		{"sub seq1", func() error { _, err := v.Sub(SequenceOperand(2)); return err }},
		{"add scalar", func() error { _, err := v.Add(ScalarOperand(2)); return err }},
		{"add vector3", func() error { _, err := v.Add(VectorOperand(Vector3{})); return err }},
		{"add none", func() error { _, err := v.Add(Operand{}); return err }},
		{"mul seq", func() error { _, err := v.Mul(SequenceOperand(2, 3)); return err }},
		{"div seq", func() error { _, err := v.Div(SequenceOperand(2, 3)); return err }},
		{"floordiv seq", func() error { _, err := v.FloorDiv(SequenceOperand(2, 3)); return err }},
		{"mul vector3", func() error { _, err := v.Mul(VectorOperand(One3())); return err }},
		{"add nil vector", func() error { _, err := v.Add(VectorOperand(nil)); return err }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.call()
			require.Error(t, err)
			assert.True(t, IsUnsupportedOperand(err))
			assert.True(t, errors.Is(err, ErrUnsupportedOperand))
		})
	}
}

func TestVector2UnsupportedOperandMessage(t *testing.T) {
	_, err := Vector2{}.Add(SequenceOperand(1, 2, 3))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported operand type(s) for +: 'Vector2' and 'sequence[3]'")

	v := Vector2{}
	_, err = v.MulAssign(VectorOperand(Vector3{}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "for *=: 'Vector2' and 'Vector3'")
}

func TestVector2MulDiv(t *testing.T) {
	v := Vector2{6, 8}

	r, err := v.Mul(VectorOperand(Vector2{2, 0.5}))
	require.NoError(t, err)
	assert.Equal(t, Vector2{12, 4}, r)

	r, err = v.Div(ScalarOperand(2))
	require.NoError(t, err)
	assert.Equal(t, Vector2{3, 4}, r)

	r, err = v.Div(VectorOperand(Vector2{3, 4}))
	require.NoError(t, err)
	assert.Equal(t, Vector2{2, 2}, r)
}

func TestVector2DivideByZeroFollowsIEEE(t *testing.T) {
	r, err := Vector2{1, -1}.Div(ScalarOperand(0))
	require.NoError(t, err)
	assert.True(t, math.IsInf(r.X, 1))
	assert.True(t, math.IsInf(r.Y, -1))

	r, err = Vector2{0, 1}.Div(VectorOperand(Vector2{0, 2}))
	require.NoError(t, err)
	assert.True(t, math.IsNaN(r.X))
	assert.Equal(t, 0.5, r.Y)
}

func TestVector2FloorDiv(t *testing.T) {
	r, err := Vector2{7, -7}.FloorDiv(ScalarOperand(2))
	require.NoError(t, err)
	assert.Equal(t, Vector2{3, -4}, r)

	r, err = Vector2{7, 8}.FloorDiv(VectorOperand(Vector2{2, 3}))
	require.NoError(t, err)
	assert.Equal(t, Vector2{3, 2}, r)

	r, err = Vector2{1, 1}.FloorDiv(ScalarOperand(0.1))
	require.NoError(t, err)
	assert.Equal(t, Vector2{9, 9}, r)

	r, err = Vector2{1, 0}.FloorDiv(ScalarOperand(0))
	require.NoError(t, err)
	assert.True(t, math.IsInf(r.X, 1))
	assert.True(t, math.IsNaN(r.Y))
}

func TestVector2AssignMutatesReceiver(t *testing.T) {
	v := Vector2{1, 1}
	p, err := v.AddAssign(VectorOperand(Vector2{1, 1}))
	require.NoError(t, err)
	assert.Same(t, &v, p)
	assert.Equal(t, Vector2{2, 2}, v)

	_, err = v.SubAssign(SequenceOperand(0.5, 0.5))
	require.NoError(t, err)
	_, err = v.MulAssign(ScalarOperand(4))
	require.NoError(t, err)
	_, err = v.DivAssign(VectorOperand(Vector2{2, 3}))
	require.NoError(t, err)
	assert.Equal(t, Vector2{3, 2}, v)

	_, err = v.FloorDivAssign(ScalarOperand(2))
	require.NoError(t, err)
	assert.Equal(t, Vector2{1, 1}, v)
}

func TestVector2NonMutatingLeavesOperandsAlone(t *testing.T) {
	a, b := Vector2{1, 2}, Vector2{3, 4}
	_, err := a.Add(VectorOperand(&b))
	require.NoError(t, err)
	assert.Equal(t, Vector2{1, 2}, a)
	assert.Equal(t, Vector2{3, 4}, b)
}

func TestVector2FailedAssignKeepsReceiver(t *testing.T) {
	v := Vector2{1, 1}
	p, err := v.MulAssign(SequenceOperand(2, 3))
	require.Error(t, err)
	assert.Nil(t, p)
	assert.Equal(t, Vector2{1, 1}, v)
}

func TestVector2SelfAssign(t *testing.T) {
	v := Vector2{1, 2}
	_, err := v.AddAssign(VectorOperand(&v))
	require.NoError(t, err)
	assert.Equal(t, Vector2{2, 4}, v)
}

func TestVector2Magnitude(t *testing.T) {
	assert.Equal(t, 0.0, Zero2().Magnitude())
	assert.Equal(t, 5.0, Vector2{3, 4}.Magnitude())
	assert.Equal(t, 5.0, Vector2{-3, -4}.Magnitude())
}

func TestVector2Norm(t *testing.T) {
	n, err := Vector2{3, 4}.Norm()
	require.NoError(t, err)
	assert.True(t, n.Equal(Vector2{0.6, 0.8}))
	assert.InDelta(t, 1.0, n.Magnitude(), 1e-12)

	alias, err := Vector2{3, 4}.Normalise()
	require.NoError(t, err)
	assert.Equal(t, n, alias)

	_, err = Zero2().Norm()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrZeroVector))
	assert.True(t, IsZeroVector(err))
}

func TestVector2Lerp(t *testing.T) {
	a, b := Vector2{0, 0}, Vector2{10, 10}
	assert.True(t, a.Lerp(b, 0.5).Equal(Vector2{5, 5}))
	assert.True(t, a.Lerp(b, 0).Equal(a))
	assert.True(t, a.Lerp(b, 1).Equal(b))
	assert.True(t, a.Lerp(b, 1.5).Equal(Vector2{15, 15}))
	assert.True(t, a.Lerp(b, -1).Equal(Vector2{-10, -10}))
	assert.True(t, Vector2{1, 1}.Lerp(Vector2{2, 2}, 0.5).Equal(Vector2{1.5, 1.5}))
}

func TestVector2DotAndDistance(t *testing.T) {
	assert.Equal(t, 0.0, Vector2{1, 0}.Dot(Vector2{0, 1}))
	assert.Equal(t, 11.0, Vector2{1, 2}.Dot(Vector2{3, 4}))
	assert.Equal(t, 5.0, Vector2{0, 0}.DistanceTo(Vector2{3, 4}))
	assert.Equal(t, 5.0, Vector2{3, 4}.DistanceTo(Vector2{0, 0}))
}

func TestVector2String(t *testing.T) {
	assert.Equal(t, "(1.0, 2.0)", Vector2{1, 2}.String())
	assert.Equal(t, "(0.5, -3.25)", Vector2{0.5, -3.25}.String())
	assert.Equal(t, "(inf, nan)", Vector2{math.Inf(1), math.NaN()}.String())
}

func TestVector2Equal(t *testing.T) {
	assert.True(t, Vector2{0.1 + 0.2, 1}.Equal(Vector2{0.3, 1}))
	assert.False(t, Vector2{0.3, 1}.Equal(Vector2{0.31, 1}))
	assert.False(t, Vector2{math.NaN(), 0}.Equal(Vector2{math.NaN(), 0}))
	assert.True(t, Vector2{math.Inf(1), 0}.Equal(Vector2{math.Inf(1), 0}))
	assert.True(t, Vector2{1, 1}.ApproxEqual(Vector2{1.01, 0.99}, 0.02))
}
