package timestring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultCalendar(t *testing.T) {
	cal := DefaultCalendar()
	assert.Equal(t, 24, cal.HoursPerDay)
	assert.Equal(t, 7, cal.DaysPerWeek)
	assert.Equal(t, 4, cal.WeeksPerMonth)
	assert.Equal(t, 12, cal.MonthsPerYear)
	assert.Equal(t, 365.25, cal.DaysPerYear)
}

func TestCalendarFactors(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		assert.Equal(t, map[string]float64{
			"ms":  0.001,
			"s":   1,
			"m":   60,
			"h":   3600,
			"d":   86400,
			"w":   604800,
			"mth": 2629800,
			"y":   31557600,
		}, Calendar{}.factors())
	})

	t.Run("partial override", func(t *testing.T) {
		f := Calendar{HoursPerDay: 8}.factors()
		assert.Equal(t, float64(28800), f["d"])
		assert.Equal(t, float64(201600), f["w"], "derived units follow the override")
		assert.Equal(t, float64(3600), f["h"], "fixed units ignore the calendar")
	})

	t.Run("deterministic", func(t *testing.T) {
		cal := Calendar{HoursPerDay: 8, DaysPerWeek: 5, DaysPerYear: 260}
		assert.Equal(t, cal.factors(), cal.factors())
	})

	t.Run("weeksPerMonth is not part of the derivation", func(t *testing.T) {
		assert.Equal(t, Calendar{}.factors(), Calendar{WeeksPerMonth: 40}.factors())
	})
}

func TestCalendarWithDefaults(t *testing.T) {
	t.Run("zero value fills everything", func(t *testing.T) {
		assert.Equal(t, DefaultCalendar(), Calendar{}.withDefaults())
	})

	t.Run("set fields survive", func(t *testing.T) {
		cal := Calendar{HoursPerDay: 8, DaysPerYear: 260}.withDefaults()
		assert.Equal(t, 8, cal.HoursPerDay)
		assert.Equal(t, 260.0, cal.DaysPerYear)
		assert.Equal(t, 7, cal.DaysPerWeek)
		assert.Equal(t, 12, cal.MonthsPerYear)
	})
}
