// Package parser reads shot profile documents.
//
// A profile document is a whitespace-separated list of top-level commands,
// each a key followed by a value:
//
//	profile_title {Blooming espresso}
//	settings_profile_type settings_2c
//	advanced_shot {{exit_if 1 flow 8 ... seconds 25} {...}}
//
// The advanced_shot value is itself a list of brace-delimited steps, each a
// list of props in the same key/value form. Values are one of four kinds:
// a 0/1 flag, an unsigned number, an enum tag from a closed set, or a
// string that is either an unquoted run or a brace-delimited block with
// balanced nested braces.
//
// The parser is written in combinator style: every piece has the shape
//
//	func(in string) (value, rest string, err error)
//
// consuming a prefix of in and returning what is left. Keys not known to
// the grammar still parse, as Unknown props or commands, so newer documents
// keep loading.
package parser
