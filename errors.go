package timestring

import "fmt"

// InvalidFormatError reports an input that contains no numeric+unit
// segments after normalization, such as an empty string or plain prose.
type InvalidFormatError struct {
	// Input is the original value passed to the parser.
	Input string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid duration %q: no parsable segments", e.Input)
}

// MalformedSegmentError reports a scanned segment whose numeric value or
// unit token could not be extracted. The scan pattern makes this rare, but
// numeric text like "1.2.3" still survives scanning and fails here.
type MalformedSegmentError struct {
	// Segment is the raw segment as it appeared in the normalized input.
	Segment string
}

func (e *MalformedSegmentError) Error() string {
	return fmt.Sprintf("malformed duration segment %q", e.Segment)
}

// UnsupportedUnitError reports a unit token, from a segment or a requested
// return unit, that no alias list resolves.
type UnsupportedUnitError struct {
	// Unit is the unresolvable token.
	Unit string
}

func (e *UnsupportedUnitError) Error() string {
	return fmt.Sprintf("unsupported time unit %q", e.Unit)
}
