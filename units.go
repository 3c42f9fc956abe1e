package timestring

import (
	"slices"
	"strings"
)

// UnitTable maps canonical unit keys to the spellings that resolve to them.
// A table passed to New extends or overrides the defaults key by key:
// supplying a key replaces that key's alias list wholesale, keys left out
// keep their default aliases, and unknown keys extend the table.
type UnitTable map[string][]string

// unitEntry pairs a canonical key with its accepted spellings. Resolution
// scans entries in order, so entry order decides ties between overlapping
// alias lists.
type unitEntry struct {
	key     string
	aliases []string
}

// The canonical units, in resolution order. Every key appears in its own
// alias list so canonical keys always resolve to themselves.
var defaultUnits = []unitEntry{
	{key: "ms", aliases: []string{"ms", "milli", "millisecond", "milliseconds"}},
	{key: "s", aliases: []string{"s", "sec", "secs", "second", "seconds"}},
	{key: "m", aliases: []string{"m", "min", "mins", "minute", "minutes"}},
	{key: "h", aliases: []string{"h", "hr", "hrs", "hour", "hours"}},
	{key: "d", aliases: []string{"d", "day", "days"}},
	{key: "w", aliases: []string{"w", "week", "weeks"}},
	{key: "mth", aliases: []string{"mon", "mth", "mths", "month", "months"}},
	{key: "y", aliases: []string{"y", "yr", "yrs", "year", "years"}},
}

// DefaultUnits returns a copy of the built-in unit alias table.
func DefaultUnits() UnitTable {
	table := make(UnitTable, len(defaultUnits))
	for _, e := range defaultUnits {
		table[e.key] = slices.Clone(e.aliases)
	}
	return table
}

// mergeUnits overlays custom alias lists onto the defaults, producing a
// fresh table that shares no storage with either source. Unknown keys sort
// after the canonical units so resolution order stays deterministic.
func mergeUnits(custom UnitTable) []unitEntry {
	entries := make([]unitEntry, 0, len(defaultUnits)+len(custom))
	for _, e := range defaultUnits {
		aliases := e.aliases
		if replacement, ok := custom[e.key]; ok {
			aliases = replacement
		}
		entries = append(entries, unitEntry{key: e.key, aliases: lowerAll(aliases)})
	}

	extra := make([]string, 0, len(custom))
	for key := range custom {
		if !canonicalKey(key) {
			extra = append(extra, key)
		}
	}
	slices.Sort(extra)
	for _, key := range extra {
		entries = append(entries, unitEntry{key: strings.ToLower(key), aliases: lowerAll(custom[key])})
	}
	return entries
}

// resolveUnit maps a lowercase unit token to its canonical key. The first
// entry whose alias list contains the token wins.
func resolveUnit(entries []unitEntry, token string) (string, error) {
	for _, e := range entries {
		if slices.Contains(e.aliases, token) {
			return e.key, nil
		}
	}
	return "", &UnsupportedUnitError{Unit: token}
}

func lowerAll(aliases []string) []string {
	out := make([]string, len(aliases))
	for i, a := range aliases {
		out[i] = strings.ToLower(a)
	}
	return out
}

func canonicalKey(key string) bool {
	for _, e := range defaultUnits {
		if e.key == key {
			return true
		}
	}
	return false
}
