package config

import (
	"errors"
	"fmt"
)

const (
	OpAdd       = "add"
	OpSub       = "sub"
	OpMul       = "mul"
	OpDiv       = "div"
	OpFloorDiv  = "floordiv"
	OpIAdd      = "iadd"
	OpISub      = "isub"
	OpIMul      = "imul"
	OpIDiv      = "idiv"
	OpIFloorDiv = "ifloordiv"
	OpDistance  = "distance"
	OpDot       = "dot"
	OpLerp      = "lerp"
	OpMagnitude = "magnitude"
	OpNorm      = "norm"
	OpShift     = "shift"
	OpPrint     = "print"
	OpRandom    = "random"
)

var ErrInvalidScenario = errors.New("invalid scenario")

type Scenario struct {
	Name    string      `yaml:"name"`
	Note    string      `yaml:"note"`
	Seed    int64       `yaml:"seed"`
	Vectors []VectorDef `yaml:"vectors"`
	Steps   []StepDef   `yaml:"steps"`
}

// VectorDef keeps coordinates untyped; they are converted when the vector
// is built, so quoted numbers such as "0" are allowed.
type VectorDef struct {
	Name   string `yaml:"name"`
	Coords []any  `yaml:"coords"`
}

type StepDef struct {
	Op     string    `yaml:"op"`
	Label  string    `yaml:"label"`
	Target string    `yaml:"target"`
	A      string    `yaml:"a"`
	B      string    `yaml:"b"`
	Seq    []float64 `yaml:"seq"`
	Scalar *float64  `yaml:"scalar"`
	Factor float64   `yaml:"factor"`
	Axis   string    `yaml:"axis"`
	Delta  float64   `yaml:"delta"`
	Span   float64   `yaml:"span"`
	Dim    int       `yaml:"dim"`
}

// Validate checks the scenario's structure. Numeric problems such as a
// coordinate that is not a number are left to the runner, which reports them
// per step.
func (sc *Scenario) Validate() error {
	if sc.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidScenario)
	}
	seen := map[string]bool{}
	for i, v := range sc.Vectors {
		if v.Name == "" {
			return fmt.Errorf("%w: vector %d has no name", ErrInvalidScenario, i)
		}
		if seen[v.Name] {
			return fmt.Errorf("%w: duplicate vector %q", ErrInvalidScenario, v.Name)
		}
		seen[v.Name] = true
		if n := len(v.Coords); n != 2 && n != 3 {
			return fmt.Errorf("%w: vector %q has %d coords", ErrInvalidScenario, v.Name, n)
		}
	}
	for i, st := range sc.Steps {
		if err := st.validate(); err != nil {
			return fmt.Errorf("%w: step %d (%s): %v", ErrInvalidScenario, i, st.Op, err)
		}
	}
	return nil
}

func (st StepDef) validate() error {
	switch st.Op {
	case OpAdd, OpSub, OpMul, OpDiv, OpFloorDiv, OpIAdd, OpISub, OpIMul, OpIDiv, OpIFloorDiv:
		if st.A == "" {
			return errors.New("missing a")
		}
		n := 0
		if st.B != "" {
			n++
		}
		if st.Seq != nil {
			n++
		}
		if st.Scalar != nil {
			n++
		}
		if n != 1 {
			return errors.New("exactly one of b, seq, scalar is required")
		}
	case OpDistance, OpDot, OpLerp:
		if st.A == "" || st.B == "" {
			return errors.New("a and b are required")
		}
	case OpMagnitude, OpNorm, OpPrint:
		if st.A == "" {
			return errors.New("missing a")
		}
	case OpShift:
		if st.A == "" {
			return errors.New("missing a")
		}
		switch st.Axis {
		case "x", "y", "z":
		default:
			return fmt.Errorf("unknown axis %q", st.Axis)
		}
	case OpRandom:
		if st.Target == "" {
			return errors.New("missing target")
		}
		if st.Dim != 2 && st.Dim != 3 {
			return fmt.Errorf("dim must be 2 or 3, got %d", st.Dim)
		}
	default:
		return fmt.Errorf("unknown op %q", st.Op)
	}
	return nil
}
