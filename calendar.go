package timestring

// Calendar defines the constants that give day-and-larger units their
// length in seconds. The zero value of any field means "use the default",
// so a partial Calendar only overrides the fields it sets. Negative values
// are not rejected; they produce negative conversion factors and the
// results that follow from them.
type Calendar struct {
	HoursPerDay   int     // hours in a day (default 24)
	DaysPerWeek   int     // days in a week (default 7)
	WeeksPerMonth int     // weeks in a month (default 4; part of the contract, unused in derivation)
	MonthsPerYear int     // months in a year (default 12)
	DaysPerYear   float64 // mean days in a year (default 365.25)
}

// DefaultCalendar returns the standard calendar constants.
func DefaultCalendar() Calendar {
	return Calendar{
		HoursPerDay:   24,
		DaysPerWeek:   7,
		WeeksPerMonth: 4,
		MonthsPerYear: 12,
		DaysPerYear:   365.25,
	}
}

// withDefaults fills zero-valued fields from the default calendar.
func (c Calendar) withDefaults() Calendar {
	def := DefaultCalendar()
	if c.HoursPerDay == 0 {
		c.HoursPerDay = def.HoursPerDay
	}
	if c.DaysPerWeek == 0 {
		c.DaysPerWeek = def.DaysPerWeek
	}
	if c.WeeksPerMonth == 0 {
		c.WeeksPerMonth = def.WeeksPerMonth
	}
	if c.MonthsPerYear == 0 {
		c.MonthsPerYear = def.MonthsPerYear
	}
	if c.DaysPerYear == 0 {
		c.DaysPerYear = def.DaysPerYear
	}
	return c
}

// factors derives the seconds-per-unit table for the canonical units.
// Identical calendars always produce identical tables; months average out
// to daysPerYear/monthsPerYear days.
func (c Calendar) factors() map[string]float64 {
	c = c.withDefaults()

	f := map[string]float64{
		"ms": 0.001,
		"s":  1,
		"m":  60,
		"h":  3600,
	}
	f["d"] = float64(c.HoursPerDay) * f["h"]
	f["w"] = float64(c.DaysPerWeek) * f["d"]
	f["mth"] = c.DaysPerYear / float64(c.MonthsPerYear) * f["d"]
	f["y"] = c.DaysPerYear * f["d"]
	return f
}
