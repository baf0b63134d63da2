package domain

import "encoding/json"

// Segment is one straight line piece of a trace in (time, value) space.
type Segment struct {
	X1, Y1, X2, Y2 float64
}

// MarshalJSON encodes the segment as [x1, y1, x2, y2].
func (s Segment) MarshalJSON() ([]byte, error) {
	return json.Marshal([4]float64{s.X1, s.Y1, s.X2, s.Y2})
}

// UnmarshalJSON decodes a [x1, y1, x2, y2] array.
func (s *Segment) UnmarshalJSON(b []byte) error {
	var v [4]float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*s = Segment{X1: v[0], Y1: v[1], X2: v[2], Y2: v[3]}
	return nil
}

// MarshalYAML encodes the segment as a flow sequence of four numbers.
func (s Segment) MarshalYAML() (interface{}, error) {
	return []float64{s.X1, s.Y1, s.X2, s.Y2}, nil
}

// AnalyzedProfile holds the three plottable traces of a shot and its
// total nominal duration in seconds.
type AnalyzedProfile struct {
	Temperature []Segment `json:"temperature" yaml:"temperature"`
	Pressure    []Segment `json:"pressure" yaml:"pressure"`
	Flow        []Segment `json:"flow" yaml:"flow"`
	ElapsedTime float64   `json:"elapsed_time" yaml:"elapsed_time"`
	Steps       int       `json:"steps" yaml:"steps"`
}

// Clone returns a deep copy so the receiver can be shared read-only.
func (a *AnalyzedProfile) Clone() *AnalyzedProfile {
	if a == nil {
		return nil
	}
	return &AnalyzedProfile{
		Temperature: append([]Segment(nil), a.Temperature...),
		Pressure:    append([]Segment(nil), a.Pressure...),
		Flow:        append([]Segment(nil), a.Flow...),
		ElapsedTime: a.ElapsedTime,
		Steps:       a.Steps,
	}
}
