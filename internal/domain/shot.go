// Package domain defines the core types and interfaces for shot profiles.
// All other packages depend on domain; domain depends on nothing.
package domain

import "fmt"

// PropKey identifies what a Prop inside a Step means.
type PropKey int

const (
	// PropUnknown is a well-formed prop whose key is not recognised.
	// Its raw key is kept in Prop.Ident and its value as Text.
	PropUnknown PropKey = iota
	PropExitIf
	PropFlow
	PropVolume
	PropMaxFlowOrPressureRange
	PropTransition
	PropExitFlowUnder
	PropTemperature
	PropName
	PropPressure
	PropSensor
	PropPump
	PropExitType
	PropExitFlowOver
	PropExitPressureOver
	PropMaxFlowOrPressure
	PropExitPressureUnder
	PropSeconds
	PropWeight
)

var propKeyNames = [...]string{
	PropUnknown:                "unknown",
	PropExitIf:                 "exit_if",
	PropFlow:                   "flow",
	PropVolume:                 "volume",
	PropMaxFlowOrPressureRange: "max_flow_or_pressure_range",
	PropTransition:             "transition",
	PropExitFlowUnder:          "exit_flow_under",
	PropTemperature:            "temperature",
	PropName:                   "name",
	PropPressure:               "pressure",
	PropSensor:                 "sensor",
	PropPump:                   "pump",
	PropExitType:               "exit_type",
	PropExitFlowOver:           "exit_flow_over",
	PropExitPressureOver:       "exit_pressure_over",
	PropMaxFlowOrPressure:      "max_flow_or_pressure",
	PropExitPressureUnder:      "exit_pressure_under",
	PropSeconds:                "seconds",
	PropWeight:                 "weight",
}

// String returns the key as written in profile documents.
func (k PropKey) String() string {
	if k < 0 || int(k) >= len(propKeyNames) {
		return "unknown"
	}
	return propKeyNames[k]
}

// Prop is one key/value pair inside a Step.
type Prop struct {
	Key   PropKey
	Ident string // raw key, set only when Key is PropUnknown
	Value Value
}

// Name returns the key as written in the source document.
func (p Prop) Name() string {
	if p.Key == PropUnknown {
		return p.Ident
	}
	return p.Key.String()
}

func (p Prop) String() string {
	return fmt.Sprintf("%s %s", p.Name(), p.Value)
}

// Number returns the prop's numeric value, if it has one.
func (p Prop) Number() (float64, bool) {
	n, ok := p.Value.(Number)
	return float64(n), ok
}

// Step is one timed phase of a shot: an ordered list of props exactly as
// they appeared in the source. Duplicated keys are kept; lookups resolve
// to the first occurrence.
type Step struct {
	Props []Prop
}

// Lookup returns the first prop with the given key.
func (s Step) Lookup(key PropKey) (Prop, bool) {
	for _, p := range s.Props {
		if p.Key == key {
			return p, true
		}
	}
	return Prop{}, false
}

// Name returns the step's display name, or "" when it has none.
func (s Step) Name() string {
	if p, ok := s.Lookup(PropName); ok {
		return p.Value.String()
	}
	return ""
}

// Seconds returns the nominal duration of the step.
func (s Step) Seconds() (float64, error) {
	if p, ok := s.Lookup(PropSeconds); ok {
		if n, ok := p.Number(); ok {
			return n, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrMissingRequiredProp, PropSeconds)
}

// Transition returns how the driven channel approaches its target.
func (s Step) Transition() (Transition, error) {
	if p, ok := s.Lookup(PropTransition); ok {
		if t, ok := p.Value.(Transition); ok {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrMissingRequiredProp, PropTransition)
}

// Pump returns which channel the step drives.
func (s Step) Pump() (Pump, error) {
	if p, ok := s.Lookup(PropPump); ok {
		if v, ok := p.Value.(Pump); ok {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrMissingRequiredProp, PropPump)
}

// ExitFlow returns the flow threshold the step exits on, if it exits
// early on a flow condition. Pressure exits report false.
func (s Step) ExitFlow() (float64, bool) {
	exitIf, ok := s.Lookup(PropExitIf)
	if !ok || exitIf.Value != Bool(true) {
		return 0, false
	}
	exitType, ok := s.Lookup(PropExitType)
	if !ok {
		return 0, false
	}

	var threshold PropKey
	switch exitType.Value {
	case ExitFlowOver:
		threshold = PropExitFlowOver
	case ExitFlowUnder:
		threshold = PropExitFlowUnder
	default:
		return 0, false
	}

	p, ok := s.Lookup(threshold)
	if !ok {
		return 0, false
	}
	return p.Number()
}
