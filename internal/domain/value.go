package domain

import "strconv"

// Value is one typed token read from a profile document. The set of
// variants is closed: Bool, Number, Text and the enum tag types below.
type Value interface {
	// String returns the value spelled the way profile documents write it.
	String() string
	isValue()
}

// Bool is a 0/1 flag.
type Bool bool

// Number is a numeric value. Integer tokens are widened to float64.
type Number float64

// Text is a string value, either unquoted or brace-delimited in the source.
type Text string

func (Bool) isValue()   {}
func (Number) isValue() {}
func (Text) isValue()   {}

func (b Bool) String() string {
	if b {
		return "1"
	}
	return "0"
}

func (n Number) String() string { return strconv.FormatFloat(float64(n), 'f', -1, 64) }

func (t Text) String() string { return string(t) }

// Transition controls how a channel reaches its target within a step.
type Transition int

const (
	// TransitionFast jumps to the target and holds it.
	TransitionFast Transition = iota
	// TransitionSmooth ramps linearly to the target over the step.
	TransitionSmooth
)

func (Transition) isValue() {}

func (t Transition) String() string {
	switch t {
	case TransitionFast:
		return "fast"
	case TransitionSmooth:
		return "smooth"
	default:
		return "unknown"
	}
}

// Sensor selects which temperature probe a step regulates against.
type Sensor int

const (
	SensorCoffee Sensor = iota
	SensorWater
)

func (Sensor) isValue() {}

func (s Sensor) String() string {
	switch s {
	case SensorCoffee:
		return "coffee"
	case SensorWater:
		return "water"
	default:
		return "unknown"
	}
}

// Pump is the channel actively driven during a step. The other channel
// is left alone for the duration of that step.
type Pump int

const (
	PumpFlow Pump = iota
	PumpPressure
)

func (Pump) isValue() {}

func (p Pump) String() string {
	switch p {
	case PumpFlow:
		return "flow"
	case PumpPressure:
		return "pressure"
	default:
		return "unknown"
	}
}

// ExitType names the condition that ends a step early.
type ExitType int

const (
	ExitPressureUnder ExitType = iota
	ExitPressureOver
	ExitFlowUnder
	ExitFlowOver
)

func (ExitType) isValue() {}

func (e ExitType) String() string {
	switch e {
	case ExitPressureUnder:
		return "pressure_under"
	case ExitPressureOver:
		return "pressure_over"
	case ExitFlowUnder:
		return "flow_under"
	case ExitFlowOver:
		return "flow_over"
	default:
		return "unknown"
	}
}

// BeverageType is the drink a profile is meant for.
type BeverageType int

const (
	BeverageCalibrate BeverageType = iota
	BeverageCleaning
	BeverageEspresso
	BeverageFilter
	BeverageManual
	BeveragePourover
	BeverageTeaPortafilter
)

func (BeverageType) isValue() {}

func (b BeverageType) String() string {
	switch b {
	case BeverageCalibrate:
		return "calibrate"
	case BeverageCleaning:
		return "cleaning"
	case BeverageEspresso:
		return "espresso"
	case BeverageFilter:
		return "filter"
	case BeverageManual:
		return "manual"
	case BeveragePourover:
		return "pourover"
	case BeverageTeaPortafilter:
		return "tea_portafilter"
	default:
		return "unknown"
	}
}

// ProfileType is the machine's editor mode a profile was saved from.
type ProfileType int

const (
	ProfileSettings1 ProfileType = iota
	ProfileSettings2
	ProfileSettings2A
	ProfileSettings2B
	ProfileSettings2C
	ProfileSettings2C2
)

// AdvancedProfileType is the only profile type whose step sequence is
// stored as an advanced shot and can be charted.
const AdvancedProfileType = ProfileSettings2C

func (ProfileType) isValue() {}

func (p ProfileType) String() string {
	switch p {
	case ProfileSettings1:
		return "settings_1"
	case ProfileSettings2:
		return "settings_2"
	case ProfileSettings2A:
		return "settings_2a"
	case ProfileSettings2B:
		return "settings_2b"
	case ProfileSettings2C:
		return "settings_2c"
	case ProfileSettings2C2:
		return "settings_2c2"
	default:
		return "unknown"
	}
}
