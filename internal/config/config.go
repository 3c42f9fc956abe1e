// Package config loads calendar constants and unit aliases from a YAML
// document so they can be shared across invocations instead of repeated as
// flags.
package config

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/jparise/timestring"
)

// File is the on-disk configuration: a calendar section holding the named
// numeric knobs and a units section extending the unit alias table.
//
//	calendar:
//	  hoursPerDay: 8
//	  daysPerWeek: 5
//	units:
//	  s: [s, sek, sekunde]
type File struct {
	Calendar map[string]any      `mapstructure:"calendar"`
	Units    map[string][]string `mapstructure:"units"`
}

// Load reads and decodes the YAML config file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes a YAML config document.
func Parse(data []byte) (*File, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	f := &File{}
	if raw == nil {
		return f, nil
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           f,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, err
	}
	return f, nil
}

// Options converts the file into parser options. Calendar knobs are matched
// by name and coerced to their numeric types; unknown names are ignored.
func (f *File) Options() timestring.Options {
	var cal timestring.Calendar
	for name, value := range f.Calendar {
		switch name {
		case "hoursPerDay":
			cal.HoursPerDay = cast.ToInt(value)
		case "daysPerWeek":
			cal.DaysPerWeek = cast.ToInt(value)
		case "weeksPerMonth":
			cal.WeeksPerMonth = cast.ToInt(value)
		case "monthsPerYear":
			cal.MonthsPerYear = cast.ToInt(value)
		case "daysPerYear":
			cal.DaysPerYear = cast.ToFloat64(value)
		}
	}
	return timestring.Options{
		Calendar: cal,
		Units:    timestring.UnitTable(f.Units),
	}
}
