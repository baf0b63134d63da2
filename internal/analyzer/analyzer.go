// Package analyzer turns an ordered list of shot steps into plottable
// temperature, pressure and flow traces.
//
// Time runs along x in seconds; each step advances it by its nominal
// duration. Only the channel named by a step's pump is driven during that
// step. The other channel's trace stays where it was until the pump hands
// back, at which point it drops to zero.
package analyzer

import (
	"fmt"

	"github.com/hammamikhairi/shotgraph/internal/domain"
)

// trace accumulates one channel's segments.
type trace struct {
	segs []domain.Segment
}

func (t *trace) push(x1, y1, x2, y2 float64) {
	t.segs = append(t.segs, domain.Segment{X1: x1, Y1: y1, X2: x2, Y2: y2})
}

// last returns the most recently emitted segment.
func (t *trace) last() (domain.Segment, bool) {
	if len(t.segs) == 0 {
		return domain.Segment{}, false
	}
	return t.segs[len(t.segs)-1], true
}

// hold emits a vertical jump from prev to v at x, then a flat run to x+d.
func (t *trace) hold(x, d, prev, v float64) {
	t.push(x, prev, x, v)
	t.push(x, v, x+d, v)
}

// drop closes the trace with a vertical segment down to zero at its
// current end point.
func (t *trace) drop() {
	if s, ok := t.last(); ok {
		t.push(s.X2, s.Y2, s.X2, 0)
	}
}

// drive moves a pumped channel to v over the step starting at x.
func (t *trace) drive(x, d float64, prev *float64, v float64, tr domain.Transition) {
	if prev == nil {
		t.hold(x, d, 0, v)
		return
	}
	switch tr {
	case domain.TransitionSmooth:
		t.push(x, *prev, x+d, v)
	default:
		t.hold(x, d, *prev, v)
	}
}

// state is carried from one step to the next.
type state struct {
	elapsed  float64
	prevPump *domain.Pump
	exitFlow *float64

	temperature, pressure, flow trace
}

// Analyze walks steps in order and synthesizes the three traces. It is
// pure: the same steps always produce the same profile. A step missing
// its seconds, transition or pump fails the whole call with an error
// wrapping domain.ErrMissingRequiredProp.
func Analyze(steps []domain.Step) (*domain.AnalyzedProfile, error) {
	var st state
	for i, step := range steps {
		if err := st.apply(step); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return &domain.AnalyzedProfile{
		Temperature: st.temperature.segs,
		Pressure:    st.pressure.segs,
		Flow:        st.flow.segs,
		ElapsedTime: st.elapsed,
		Steps:       len(steps),
	}, nil
}

func (st *state) apply(step domain.Step) error {
	d, err := step.Seconds()
	if err != nil {
		return err
	}
	tr, err := step.Transition()
	if err != nil {
		return err
	}
	pump, err := step.Pump()
	if err != nil {
		return err
	}

	x := st.elapsed
	for _, p := range step.Props {
		v, ok := p.Number()
		if !ok {
			continue
		}
		switch p.Key {
		case domain.PropTemperature:
			if s, ok := st.temperature.last(); ok {
				st.temperature.hold(x, d, s.Y2, v)
			} else {
				st.temperature.push(x, v, x+d, v)
			}

		case domain.PropPressure:
			if pump != domain.PumpPressure {
				continue
			}
			if st.handoffFrom(domain.PumpFlow) {
				st.flow.drop()
			}
			st.pressure.drive(x, d, lastValue(&st.pressure), v, tr)

		case domain.PropFlow:
			if pump != domain.PumpFlow {
				continue
			}
			if st.handoffFrom(domain.PumpPressure) {
				st.pressure.drop()
			}
			prev := lastValue(&st.flow)
			if prev != nil && st.exitFlow != nil {
				// The previous step ended early at its exit threshold, so
				// the trace restarts from there instead of its last target.
				st.flow.push(x, *prev, x, *st.exitFlow)
				prev = st.exitFlow
			}
			st.flow.drive(x, d, prev, v, tr)
		}
	}

	st.elapsed += d
	st.prevPump = &pump
	st.exitFlow = nil
	if f, ok := step.ExitFlow(); ok {
		st.exitFlow = &f
	}
	return nil
}

func (st *state) handoffFrom(p domain.Pump) bool {
	return st.prevPump != nil && *st.prevPump == p
}

func lastValue(t *trace) *float64 {
	s, ok := t.last()
	if !ok {
		return nil
	}
	return &s.Y2
}
