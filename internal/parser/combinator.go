package parser

import (
	"strings"

	"github.com/hammamikhairi/shotgraph/internal/domain"
)

// parseFunc consumes a prefix of its input and returns the parsed value
// along with the remaining input.
type parseFunc[T any] func(in string) (T, string, error)

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isIdent(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}

func startsWithSpace(in string) bool { return in != "" && isSpace(in[0]) }

func startsWithIdent(in string) bool { return in != "" && isIdent(in[0]) }

// space0 skips any run of whitespace, including newlines.
func space0(in string) string {
	i := 0
	for i < len(in) && isSpace(in[i]) {
		i++
	}
	return in[i:]
}

// space1 skips a run of at least one whitespace byte.
func space1(in string) (string, error) {
	if !startsWithSpace(in) {
		return in, fail(domain.ErrMalformedValue, in, "expected whitespace")
	}
	return space0(in), nil
}

// ident reads a key: a run of letters, digits and underscores.
func ident(in string) (string, string, error) {
	i := 0
	for i < len(in) && isIdent(in[i]) {
		i++
	}
	if i == 0 {
		return "", in, fail(domain.ErrMalformedValue, in, "expected key")
	}
	return in[:i], in[i:], nil
}

// char consumes the single byte c.
func char(in string, c byte) (string, error) {
	if in == "" || in[0] != c {
		return in, fail(domain.ErrMalformedValue, in, "expected %q", c)
	}
	return in[1:], nil
}

// token returns the run up to the next whitespace or closing brace, for
// error reporting.
func token(in string) string {
	i := 0
	for i < len(in) && !isSpace(in[i]) && in[i] != '}' {
		i++
	}
	return in[:i]
}

// list parses a maximal whitespace-separated run of items. The run ends,
// without consuming the trailing whitespace, when the next byte cannot
// start a key. Once an item has started, its errors are returned as is.
func list[T any](item parseFunc[T]) parseFunc[[]T] {
	return func(in string) ([]T, string, error) {
		var out []T
		for len(out) == 0 || startsWithSpace(in) {
			next := in
			if len(out) > 0 {
				next = space0(in)
			}
			if !startsWithIdent(next) {
				break
			}
			v, rest, err := item(next)
			if err != nil {
				return nil, in, err
			}
			out = append(out, v)
			in = rest
		}
		return out, in, nil
	}
}

// entry binds a known key to its variant and the kind of value it takes.
type entry[K any] struct {
	key   K
	value parseFunc[domain.Value]
}

// pair is a parsed `key value` whose key may or may not be known.
type pair[K any] struct {
	key   K
	ident string
	value domain.Value
	known bool
}

// keyed parses `key <ws> value`. Known keys use the value parser from
// table; any other well-formed key reads its value with unknown and comes
// back with known == false so the caller can keep it as an unknown entry.
func keyed[K any](table map[string]entry[K], unknown parseFunc[domain.Value]) parseFunc[pair[K]] {
	return func(in string) (pair[K], string, error) {
		name, rest, err := ident(in)
		if err != nil {
			return pair[K]{}, in, err
		}
		if rest, err = space1(rest); err != nil {
			return pair[K]{}, in, err
		}

		e, known := table[name]
		valueOf := unknown
		if known {
			valueOf = e.value
		}
		v, rest, err := valueOf(rest)
		if err != nil {
			return pair[K]{}, in, err
		}
		return pair[K]{key: e.key, ident: name, value: v, known: known}, rest, nil
	}
}

// trailing reports an error unless only whitespace is left.
func trailing(rest string) error {
	if rest = space0(rest); rest != "" {
		return fail(domain.ErrMalformedValue, rest, "unexpected input %q", token(rest))
	}
	return nil
}

// hasPrefixFold is strings.HasPrefix with ASCII case folding.
func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
