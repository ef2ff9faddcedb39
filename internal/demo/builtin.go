package demo

import "vecmath/internal/config"

func scalar(f float64) *float64 { return &f }

// BuiltinScenario walks through the library's main operations on a pair of
// 2D vectors and two 3D vectors, including in-place arithmetic and a vector
// built from a quoted coordinate.
func BuiltinScenario() *config.Scenario {
	return &config.Scenario{
		Name: "builtin",
		Note: "default walkthrough",
		Seed: 12345,
		Vectors: []config.VectorDef{
			{Name: "v1", Coords: []any{0, 0}},
			{Name: "v2", Coords: []any{2, 2}},
			{Name: "v3", Coords: []any{2, 2, 2}},
			{Name: "one3", Coords: []any{1, 1, 1}},
			{Name: "tenth3", Coords: []any{.1, .1, .1}},
			{Name: "v4", Coords: []any{12.2, 4, "0"}},
		},
		Steps: []config.StepDef{
			{Op: config.OpDistance, Label: "distance(v1, v2)", A: "v1", B: "v2"},
			{Op: config.OpLerp, Label: "lerp(v1, v2, 0.5)", A: "v1", B: "v2", Factor: 0.5},
			{Op: config.OpMagnitude, Label: "v1.magnitude()", A: "v1"},
			{Op: config.OpDot, Label: "dot(v1, v2)", A: "v1", B: "v2"},
			{Op: config.OpNorm, Label: "v2.norm()", A: "v2"},
			{Op: config.OpIAdd, Label: "v3 += one3", A: "v3", B: "one3"},
			{Op: config.OpISub, Label: "v3 -= tenth3", A: "v3", B: "tenth3"},
			{Op: config.OpIMul, Label: "v3 *= 3", A: "v3", Scalar: scalar(3)},
			{Op: config.OpIDiv, Label: "v3 /= 0.5", A: "v3", Scalar: scalar(0.5)},
			{Op: config.OpPrint, Label: "v3", A: "v3"},
			{Op: config.OpShift, Label: "v4.y += 3", A: "v4", Axis: "y", Delta: 3},
			{Op: config.OpPrint, Label: "v4 X", A: "v4", Axis: "x"},
			{Op: config.OpPrint, Label: "v4 Y", A: "v4", Axis: "y"},
			{Op: config.OpPrint, Label: "v4 Z", A: "v4", Axis: "z"},
		},
	}
}
