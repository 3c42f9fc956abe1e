// Package timestring parses lenient, human-readable duration strings such
// as "1h30m", "2.5d", or "1 hour 20 minutes" into numeric durations.
//
// Input is segmented into signed number+unit pairs. Separators between
// segments are ignored, unit spellings resolve through an alias table, and
// the segments accumulate into a float64 total expressed in seconds or in a
// caller-chosen return unit. Units of a day and larger derive from
// configurable calendar constants, so "1d" can mean an 8 hour workday just
// as well as 24 hours. A bare integer input is taken as a count of seconds.
//
// Parsing never coerces: inputs with no recognizable segments, segments
// with broken numbers, and unit spellings the alias table does not know all
// fail with a typed error.
package timestring

import (
	"strconv"
	"strings"
	"time"
)

// Options configure a Parser. The zero value selects the default calendar
// and the default alias table.
type Options struct {
	// Calendar overrides the calendar constants used to derive conversion
	// factors. Zero-valued fields keep their defaults.
	Calendar Calendar

	// Units extends or overrides the unit alias table, key by key.
	Units UnitTable
}

// Parser converts duration strings using a fixed calendar and alias table.
// Building one up front amortizes table construction across calls. A Parser
// is immutable and safe for concurrent use; the zero-configuration form is
// available through the package-level functions.
type Parser struct {
	units   []unitEntry
	factors map[string]float64
}

// New builds a Parser from opts. Construction never fails: unset options
// fall back to the defaults, and the caller's maps are copied, never
// retained or written to.
func New(opts Options) *Parser {
	return &Parser{
		units:   mergeUnits(opts.Units),
		factors: opts.Calendar.factors(),
	}
}

// Parse converts a duration string into seconds.
func (p *Parser) Parse(value string) (float64, error) {
	return p.ParseUnit(value, "")
}

// ParseUnit converts a duration string into the given unit. The unit may be
// a canonical key or any alias the parser accepts; the empty string means
// seconds.
func (p *Parser) ParseUnit(value, returnUnit string) (float64, error) {
	total, err := p.total(value)
	if err != nil {
		return 0, err
	}
	if returnUnit == "" {
		return total, nil
	}
	factor, err := p.Factor(returnUnit)
	if err != nil {
		return 0, err
	}
	return total / factor, nil
}

// ParseDuration converts a duration string into a time.Duration. Fractional
// seconds are preserved at nanosecond resolution; totals beyond the int64
// nanosecond range overflow as ordinary duration arithmetic does.
func (p *Parser) ParseDuration(value string) (time.Duration, error) {
	seconds, err := p.Parse(value)
	if err != nil {
		return 0, err
	}
	return time.Duration(seconds * float64(time.Second)), nil
}

// FromSeconds expresses a count of seconds in the given unit. The empty
// string returns the count unchanged.
func (p *Parser) FromSeconds(n int64, returnUnit string) (float64, error) {
	return p.ParseUnit(strconv.FormatInt(n, 10), returnUnit)
}

// Resolve maps a unit spelling to its canonical key. When alias lists
// overlap, the first key in table order wins: the canonical units in their
// fixed order, then custom keys in sorted order.
func (p *Parser) Resolve(unit string) (string, error) {
	return resolveUnit(p.units, strings.ToLower(unit))
}

// Factor reports how many seconds one of the given unit represents. The
// unit may be a canonical key or any alias.
func (p *Parser) Factor(unit string) (float64, error) {
	key, err := p.Resolve(unit)
	if err != nil {
		return 0, err
	}
	factor, ok := p.factors[key]
	if !ok {
		// Alias tables can introduce keys the conversion table has no
		// factor for; segments using them are unsupported, not zero.
		return 0, &UnsupportedUnitError{Unit: unit}
	}
	return factor, nil
}

// total runs the scan+resolve+accumulate pipeline, returning seconds.
func (p *Parser) total(value string) (float64, error) {
	var total float64
	matched := false
	for seg := range segments(normalizeInput(value)) {
		matched = true
		v, unit, err := splitSegment(seg)
		if err != nil {
			return 0, err
		}
		factor, err := p.Factor(unit)
		if err != nil {
			return 0, err
		}
		total += v * factor
	}
	if !matched {
		return 0, &InvalidFormatError{Input: value}
	}
	return total, nil
}

// defaultParser backs the package-level functions.
var defaultParser = New(Options{})

// Parse converts a duration string into seconds using the default calendar
// and alias table.
func Parse(value string) (float64, error) {
	return defaultParser.Parse(value)
}

// ParseUnit converts a duration string into the given unit using the
// default calendar and alias table.
func ParseUnit(value, returnUnit string) (float64, error) {
	return defaultParser.ParseUnit(value, returnUnit)
}

// ParseDuration converts a duration string into a time.Duration using the
// default calendar and alias table.
func ParseDuration(value string) (time.Duration, error) {
	return defaultParser.ParseDuration(value)
}

// FromSeconds expresses a count of seconds in the given unit using the
// default alias table.
func FromSeconds(n int64, returnUnit string) (float64, error) {
	return defaultParser.FromSeconds(n, returnUnit)
}
