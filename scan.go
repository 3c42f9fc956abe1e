package timestring

import (
	"iter"
	"regexp"
	"strconv"
	"strings"
)

var (
	// bareNumber recognizes inputs that are a whole number of seconds.
	bareNumber = regexp.MustCompile(`^[-+]?[0-9]+$`)
	// nonToken matches everything normalization removes.
	nonToken = regexp.MustCompile(`[^.\w+-]+`)
	// segmentPattern matches one signed number followed by its unit letters.
	segmentPattern = regexp.MustCompile(`[-+]?[0-9.]+[a-z]+`)

	segmentNumber  = regexp.MustCompile(`[-+]?[0-9.]+`)
	segmentLetters = regexp.MustCompile(`[a-z]+`)
)

// normalizeInput prepares a raw value for scanning. A value that is only an
// optionally signed run of digits is a bare count of seconds and gets the
// canonical seconds unit appended. Everything else is lowercased and
// stripped of characters that cannot appear in a segment, which is what
// lets separators like spaces and commas sit between segments.
func normalizeInput(value string) string {
	if bareNumber.MatchString(value) {
		value += "s"
	}
	return nonToken.ReplaceAllString(strings.ToLower(value), "")
}

// segments yields each raw segment of a normalized string from left to
// right. The scan is a single forward pass over the input; nothing is
// buffered and matches never overlap.
func segments(s string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for pos := 0; pos < len(s); {
			loc := segmentPattern.FindStringIndex(s[pos:])
			if loc == nil {
				return
			}
			if !yield(s[pos+loc[0] : pos+loc[1]]) {
				return
			}
			pos += loc[1]
		}
	}
}

// splitSegment divides a raw segment into its numeric value and unit token.
// Both parts are mandatory. The scan pattern nearly guarantees them, but
// numeric text it admits, like "1.2.3", still fails float parsing and is
// reported as malformed rather than let through.
func splitSegment(seg string) (float64, string, error) {
	num := segmentNumber.FindString(seg)
	unit := segmentLetters.FindString(seg)
	if num == "" || unit == "" {
		return 0, "", &MalformedSegmentError{Segment: seg}
	}
	value, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, "", &MalformedSegmentError{Segment: seg}
	}
	return value, unit, nil
}
