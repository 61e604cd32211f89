package parser

import "fmt"

// wrapParseError renders a parser error in the `Kind:\n\tmessage` form
// used throughout Helium (recovered from original_source/src/error.rs,
// SPEC_FULL.md §5) so parse errors read consistently with runtime ones.
func wrapParseError(line int, format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("ParseError:\n\tline %d: %s", line, msg)
}
