package parser

import (
	"sort"
	"strconv"
	"strings"

	"github.com/hammamikhairi/shotgraph/internal/domain"
)

// boolValue reads a 0/1 flag.
func boolValue(in string) (domain.Value, string, error) {
	if in != "" {
		switch in[0] {
		case '0':
			return domain.Bool(false), in[1:], nil
		case '1':
			return domain.Bool(true), in[1:], nil
		}
	}
	return nil, in, fail(domain.ErrMalformedValue, in, "expected 0 or 1")
}

func digits(in string) int {
	i := 0
	for i < len(in) && '0' <= in[i] && in[i] <= '9' {
		i++
	}
	return i
}

// unsignedFloat reads D., D.D or .D. A literal dot is required.
func unsignedFloat(in string) (float64, string, bool) {
	whole := digits(in)
	if whole == len(in) || in[whole] != '.' {
		return 0, in, false
	}
	end := whole + 1 + digits(in[whole+1:])
	if whole == 0 && end == 1 {
		return 0, in, false
	}
	f, err := strconv.ParseFloat(in[:end], 64)
	if err != nil {
		return 0, in, false
	}
	return f, in[end:], true
}

// numberValue reads an unsigned number. The float forms are tried first;
// a bare integer is read only by the fallback and widened to float64.
func numberValue(in string) (domain.Value, string, error) {
	if f, rest, ok := unsignedFloat(in); ok {
		return domain.Number(f), rest, nil
	}
	n := digits(in)
	if n == 0 {
		return nil, in, fail(domain.ErrMalformedValue, in, "expected number")
	}
	u, err := strconv.ParseUint(in[:n], 10, 64)
	if err != nil {
		return nil, in, fail(domain.ErrMalformedValue, in, "number %s out of range", in[:n])
	}
	return domain.Number(float64(u)), in[n:], nil
}

// braceText reads a brace-delimited string. Nested braces are kept in the
// result; only the `}` that brings the depth back to zero closes it.
func braceText(in string) (string, string, error) {
	body, err := char(in, '{')
	if err != nil {
		return "", in, err
	}
	depth := 0
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '{':
			depth++
		case '}':
			if depth == 0 {
				return body[:i], body[i+1:], nil
			}
			depth--
		}
	}
	return "", in, fail(domain.ErrUnterminatedString, in, "missing closing brace")
}

// plainText reads an unquoted run up to the next whitespace.
func plainText(in string) (string, string, error) {
	i := 0
	for i < len(in) && !isSpace(in[i]) {
		i++
	}
	if i == 0 {
		return "", in, fail(domain.ErrMalformedValue, in, "expected string")
	}
	return in[:i], in[i:], nil
}

// stepWord reads an unquoted run inside a step, which ends at whitespace
// or at the `}` closing the step.
func stepWord(in string) (string, string, error) {
	i := 0
	for i < len(in) && !isSpace(in[i]) && in[i] != '}' {
		i++
	}
	if i == 0 {
		return "", in, fail(domain.ErrMalformedValue, in, "expected value")
	}
	return in[:i], in[i:], nil
}

// stepUnknownValue reads the value of a step key that has no table entry.
func stepUnknownValue(in string) (domain.Value, string, error) {
	read := stepWord
	if in != "" && in[0] == '{' {
		read = braceText
	}
	s, rest, err := read(in)
	if err != nil {
		return nil, in, err
	}
	return domain.Text(s), rest, nil
}

// textValue reads a string in either quoting form.
func textValue(in string) (domain.Value, string, error) {
	read := plainText
	if in != "" && in[0] == '{' {
		read = braceText
	}
	s, rest, err := read(in)
	if err != nil {
		return nil, in, err
	}
	return domain.Text(s), rest, nil
}

type tagEntry struct {
	tag   string
	value domain.Value
}

// tagsOf builds a tag table from enum values, spelled by their String
// method, plus any aliases.
func tagsOf(aliases map[string]domain.Value, values ...domain.Value) []tagEntry {
	out := make([]tagEntry, 0, len(values)+len(aliases))
	for _, v := range values {
		out = append(out, tagEntry{tag: v.String(), value: v})
	}
	for tag, v := range aliases {
		out = append(out, tagEntry{tag: tag, value: v})
	}
	return out
}

// tagValue reads one tag out of a closed set. Longer tags are tried
// before shorter ones so settings_2c2 is not read as settings_2c.
func tagValue(entries []tagEntry, foldCase bool) parseFunc[domain.Value] {
	sorted := append([]tagEntry(nil), entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if len(sorted[i].tag) != len(sorted[j].tag) {
			return len(sorted[i].tag) > len(sorted[j].tag)
		}
		return sorted[i].tag < sorted[j].tag
	})

	match := strings.HasPrefix
	if foldCase {
		match = hasPrefixFold
	}

	return func(in string) (domain.Value, string, error) {
		for _, e := range sorted {
			if match(in, e.tag) {
				return e.value, in[len(e.tag):], nil
			}
		}
		return nil, in, fail(domain.ErrUnrecognizedTag, in, "unrecognized tag %q", token(in))
	}
}

var (
	transitionValue = tagValue(tagsOf(nil,
		domain.TransitionFast, domain.TransitionSmooth), false)

	sensorValue = tagValue(tagsOf(nil,
		domain.SensorCoffee, domain.SensorWater), false)

	pumpValue = tagValue(tagsOf(nil,
		domain.PumpFlow, domain.PumpPressure), false)

	exitTypeValue = tagValue(tagsOf(nil,
		domain.ExitPressureUnder, domain.ExitPressureOver,
		domain.ExitFlowUnder, domain.ExitFlowOver), false)

	beverageTypeValue = tagValue(tagsOf(
		map[string]domain.Value{"tea": domain.BeverageTeaPortafilter},
		domain.BeverageCalibrate, domain.BeverageCleaning, domain.BeverageEspresso,
		domain.BeverageFilter, domain.BeverageManual, domain.BeveragePourover,
		domain.BeverageTeaPortafilter), true)

	profileTypeValue = tagValue(tagsOf(nil,
		domain.ProfileSettings1, domain.ProfileSettings2, domain.ProfileSettings2A,
		domain.ProfileSettings2B, domain.ProfileSettings2C, domain.ProfileSettings2C2), false)
)
