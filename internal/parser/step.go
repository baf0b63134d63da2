package parser

import "github.com/hammamikhairi/shotgraph/internal/domain"

// step reads one brace-delimited step: `{ props }`.
func step(in string) (domain.Step, string, error) {
	rest, err := char(in, '{')
	if err != nil {
		return domain.Step{}, in, err
	}
	ps, rest, err := props(space0(rest))
	if err != nil {
		return domain.Step{}, in, err
	}
	if rest, err = char(space0(rest), '}'); err != nil {
		return domain.Step{}, in, err
	}
	return domain.Step{Props: ps}, rest, nil
}

// Steps reads a run of steps separated by optional whitespace. It stops
// before the first non-space byte that does not open a step, leaving any
// whitespace in front of it unconsumed.
func Steps(in string) ([]domain.Step, string, error) {
	var out []domain.Step
	for {
		next := in
		if len(out) > 0 {
			next = space0(in)
		}
		if next == "" || next[0] != '{' {
			return out, in, nil
		}
		s, rest, err := step(next)
		if err != nil {
			return nil, in, err
		}
		out = append(out, s)
		in = rest
	}
}

// ParseSteps parses advanced shot text, such as Preset.Data, into its
// ordered steps. The whole input must be consumed.
func ParseSteps(text string) ([]domain.Step, error) {
	steps, rest, err := Steps(space0(text))
	if err == nil {
		err = trailing(rest)
	}
	if err != nil {
		return nil, locate(err, text)
	}
	return steps, nil
}
