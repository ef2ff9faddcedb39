package demo

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"vecmath/internal/config"
	"vecmath/internal/util"
	"vecmath/internal/vector"
)

type Event struct {
	Step   int    `json:"step"`
	Op     string `json:"op"`
	Label  string `json:"label"`
	Result string `json:"result,omitempty"`
	Err    string `json:"error,omitempty"`
}

// Runner executes scenario steps against a registry of named vectors. The
// registry holds *vector.Vector2 and *vector.Vector3 so in-place steps are
// visible to later steps.
type Runner struct {
	vectors map[string]vector.Vector
	rng     *rand.Rand
	emit    func(Event)
	log     *logrus.Entry
}

func NewRunner(seed int64, emit func(Event)) *Runner {
	if emit == nil {
		emit = func(Event) {}
	}
	return &Runner{
		vectors: map[string]vector.Vector{},
		rng:     util.New(seed),
		emit:    emit,
		log:     logrus.WithField("component", "demo"),
	}
}

// Define builds a vector from raw coordinates and registers it under name,
// replacing any previous vector of that name.
func (r *Runner) Define(name string, coords []any) error {
	switch len(coords) {
	case 2:
		v, err := vector.NewVector2(coords[0], coords[1])
		if err != nil {
			return err
		}
		r.vectors[name] = &v
	case 3:
		v, err := vector.NewVector3(coords[0], coords[1], coords[2])
		if err != nil {
			return err
		}
		r.vectors[name] = &v
	default:
		return fmt.Errorf("vector %q: want 2 or 3 coords, got %d", name, len(coords))
	}
	return nil
}

func (r *Runner) Vector(name string) (vector.Vector, bool) {
	v, ok := r.vectors[name]
	return v, ok
}

func (r *Runner) lookup(name string) (vector.Vector, error) {
	v, ok := r.vectors[name]
	if !ok {
		return nil, fmt.Errorf("unknown vector %q", name)
	}
	return v, nil
}

// Step runs one step and emits its event. A failed step is reported in the
// event; the registry is left as it was.
func (r *Runner) Step(i int, st config.StepDef) Event {
	ev := Event{Step: i, Op: st.Op, Label: st.Label}
	if ev.Label == "" {
		ev.Label = defaultLabel(st)
	}
	res, err := r.exec(st)
	if err != nil {
		ev.Err = err.Error()
		r.log.WithFields(logrus.Fields{
			"step":  i,
			"op":    st.Op,
			"error": err,
		}).Warn("step failed")
	} else {
		ev.Result = res
		r.log.WithFields(logrus.Fields{
			"step":   i,
			"op":     st.Op,
			"result": res,
		}).Debug("step done")
	}
	r.emit(ev)
	return ev
}

func (r *Runner) exec(st config.StepDef) (string, error) {
	switch st.Op {
	case config.OpAdd, config.OpSub, config.OpMul, config.OpDiv, config.OpFloorDiv,
		config.OpIAdd, config.OpISub, config.OpIMul, config.OpIDiv, config.OpIFloorDiv:
		return r.arith(st)
	case config.OpDistance:
		a, b, err := r.pair(st)
		if err != nil {
			return "", err
		}
		d, err := vector.Distance(a, b)
		if err != nil {
			return "", err
		}
		return vector.FormatCoord(d), nil
	case config.OpDot:
		a, b, err := r.pair(st)
		if err != nil {
			return "", err
		}
		d, err := vector.Dot(a, b)
		if err != nil {
			return "", err
		}
		return vector.FormatCoord(d), nil
	case config.OpLerp:
		a, b, err := r.pair(st)
		if err != nil {
			return "", err
		}
		v, err := vector.Lerp(a, b, st.Factor)
		if err != nil {
			return "", err
		}
		r.store(st.Target, v)
		return v.String(), nil
	case config.OpMagnitude:
		a, err := r.lookup(st.A)
		if err != nil {
			return "", err
		}
		return vector.FormatCoord(magnitude(a)), nil
	case config.OpNorm:
		a, err := r.lookup(st.A)
		if err != nil {
			return "", err
		}
		v, err := norm(a)
		if err != nil {
			return "", err
		}
		r.store(st.Target, v)
		return v.String(), nil
	case config.OpShift:
		a, err := r.lookup(st.A)
		if err != nil {
			return "", err
		}
		c, err := shift(a, st.Axis, st.Delta)
		if err != nil {
			return "", err
		}
		return vector.FormatCoord(c), nil
	case config.OpPrint:
		a, err := r.lookup(st.A)
		if err != nil {
			return "", err
		}
		if st.Axis == "" {
			return a.String(), nil
		}
		c, err := axis(a, st.Axis)
		if err != nil {
			return "", err
		}
		return vector.FormatCoord(c), nil
	case config.OpRandom:
		span := st.Span
		if span == 0 {
			span = 1
		}
		var v vector.Vector
		switch st.Dim {
		case 2:
			v = util.RandVector2(r.rng, span)
		case 3:
			v = util.RandVector3(r.rng, span)
		default:
			return "", fmt.Errorf("dim must be 2 or 3, got %d", st.Dim)
		}
		r.store(st.Target, v)
		return v.String(), nil
	}
	return "", fmt.Errorf("unknown op %q", st.Op)
}

func (r *Runner) pair(st config.StepDef) (vector.Vector, vector.Vector, error) {
	a, err := r.lookup(st.A)
	if err != nil {
		return nil, nil, err
	}
	b, err := r.lookup(st.B)
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

func (r *Runner) operand(st config.StepDef) (vector.Operand, error) {
	switch {
	case st.B != "":
		b, err := r.lookup(st.B)
		if err != nil {
			return vector.Operand{}, err
		}
		return vector.VectorOperand(b), nil
	case st.Seq != nil:
		return vector.SequenceOperand(st.Seq...), nil
	case st.Scalar != nil:
		return vector.ScalarOperand(*st.Scalar), nil
	}
	return vector.Operand{}, nil
}

func (r *Runner) arith(st config.StepDef) (string, error) {
	a, err := r.lookup(st.A)
	if err != nil {
		return "", err
	}
	o, err := r.operand(st)
	if err != nil {
		return "", err
	}
	var res vector.Vector
	switch v := a.(type) {
	case *vector.Vector2:
		res, err = apply2(st.Op, v, o)
	case *vector.Vector3:
		res, err = apply3(st.Op, v, o)
	default:
		err = fmt.Errorf("vector %q has unexpected type %T", st.A, a)
	}
	if err != nil {
		return "", err
	}
	if !inPlace(st.Op) {
		r.store(st.Target, res)
	}
	return res.String(), nil
}

// store registers a copy of v under name. An empty name discards it.
func (r *Runner) store(name string, v vector.Vector) {
	if name == "" {
		return
	}
	switch t := v.(type) {
	case vector.Vector2:
		r.vectors[name] = &t
	case *vector.Vector2:
		c := *t
		r.vectors[name] = &c
	case vector.Vector3:
		r.vectors[name] = &t
	case *vector.Vector3:
		c := *t
		r.vectors[name] = &c
	}
}

func inPlace(op string) bool {
	switch op {
	case config.OpIAdd, config.OpISub, config.OpIMul, config.OpIDiv, config.OpIFloorDiv:
		return true
	}
	return false
}

func defaultLabel(st config.StepDef) string {
	switch {
	case st.B != "":
		return fmt.Sprintf("%s(%s, %s)", st.Op, st.A, st.B)
	case st.A != "":
		return fmt.Sprintf("%s(%s)", st.Op, st.A)
	}
	return st.Op
}
