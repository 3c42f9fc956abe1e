// Package cli implements the timestring command line interface.
package cli

import (
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hako/durafmt"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/jparise/timestring"
	"github.com/jparise/timestring/internal/config"
)

// colorMode represents when to use colored output.
type colorMode string

const (
	colorAuto   colorMode = "auto"
	colorAlways colorMode = "always"
	colorNever  colorMode = "never"
)

// String is used both by fmt.Print and by Cobra in help text.
func (c *colorMode) String() string {
	return string(*c)
}

// Set must have pointer receiver to validate and set the value.
func (c *colorMode) Set(v string) error {
	switch v {
	case "auto", "always", "never":
		*c = colorMode(v)
		return nil
	default:
		return fmt.Errorf("must be one of \"auto\", \"always\", or \"never\"")
	}
}

// Type is only used in help text.
func (c *colorMode) Type() string {
	return "colorMode"
}

var (
	version = "dev"

	// Flags.
	color      = colorAuto
	returnUnit string
	aliases    []string
	configPath string
	human      bool

	hoursPerDay   int
	daysPerWeek   int
	weeksPerMonth int
	monthsPerYear int
	daysPerYear   float64
)

var rootCmd = &cobra.Command{
	Use:   "timestring [flags] <duration>...",
	Short: "Parse human-readable duration strings",
	Long: `timestring converts human-readable duration strings into numbers.

A duration is one or more signed <number><unit> segments. Separators
between segments are ignored, so "1h30m", "1h 30m", and "1h, 30m" are
all the same duration. Unit spellings are resolved through an alias
table (h, hr, hours, ...), and a bare integer is a count of seconds.

Results are printed in seconds unless --unit selects another unit. Days
and larger units derive from calendar constants that can be overridden
with flags or a config file, so "1d" can just as well be an 8 hour
workday.

Examples:
  timestring 1h30m
  timestring "2 days 12 hours"
  timestring -u minutes 1h
  timestring --hours-per-day 8 1d
  timestring -a "s=s,sek,sekunde" 5sek
  timestring --human 9000
  timestring -c calendar.yml 1d 1w`,
	Version: version,
	Args:    cobra.MinimumNArgs(1),
	RunE:    run,
}

func init() {
	def := timestring.DefaultCalendar()

	rootCmd.Flags().StringVarP(&returnUnit, "unit", "u", "",
		"unit to express results in (canonical key or alias)")
	rootCmd.Flags().StringArrayVarP(&aliases, "alias", "a", nil,
		"extra unit aliases as key=spelling[,spelling...] (can be specified multiple times)")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "",
		"YAML config file with calendar and units sections")
	rootCmd.Flags().BoolVar(&human, "human", false,
		"also print the spelled-out form of each duration")
	rootCmd.Flags().Var(&color, "color",
		"colorize output: auto, always, never")

	rootCmd.Flags().IntVar(&hoursPerDay, "hours-per-day", def.HoursPerDay,
		"hours in a day")
	rootCmd.Flags().IntVar(&daysPerWeek, "days-per-week", def.DaysPerWeek,
		"days in a week")
	rootCmd.Flags().IntVar(&weeksPerMonth, "weeks-per-month", def.WeeksPerMonth,
		"weeks in a month")
	rootCmd.Flags().IntVar(&monthsPerYear, "months-per-year", def.MonthsPerYear,
		"months in a year")
	rootCmd.Flags().Float64Var(&daysPerYear, "days-per-year", def.DaysPerYear,
		"mean days in a year")

	// Errors are printed by main so cobra must not double them up.
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		_ = cmd.Usage()
		return err
	})
}

func Execute() error {
	return rootCmd.Execute()
}

// parseAliases parses repeated --alias values of the form
// "key=spelling[,spelling...]" into a unit table.
func parseAliases(entries []string) (timestring.UnitTable, error) {
	if len(entries) == 0 {
		return nil, nil
	}

	table := make(timestring.UnitTable, len(entries))
	for _, entry := range entries {
		key, list, ok := strings.Cut(entry, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid alias %q: expected key=spelling[,spelling...]", entry)
		}

		var spellings []string
		for _, s := range strings.Split(list, ",") {
			if s = strings.TrimSpace(s); s != "" {
				spellings = append(spellings, s)
			}
		}
		if len(spellings) == 0 {
			return nil, fmt.Errorf("invalid alias %q: no spellings given", entry)
		}
		table[key] = spellings
	}
	return table, nil
}

// buildOptions merges the config file (lowest precedence), the calendar
// flags, and --alias values (highest) into parser options.
func buildOptions(cmd *cobra.Command) (timestring.Options, error) {
	var opts timestring.Options
	units := timestring.UnitTable{}

	if configPath != "" {
		f, err := config.Load(configPath)
		if err != nil {
			return opts, err
		}
		fileOpts := f.Options()
		opts.Calendar = fileOpts.Calendar
		for key, spellings := range fileOpts.Units {
			units[key] = spellings
		}
	}

	// Explicit calendar flags win over config file values.
	flags := cmd.Flags()
	if flags.Changed("hours-per-day") {
		opts.Calendar.HoursPerDay = hoursPerDay
	}
	if flags.Changed("days-per-week") {
		opts.Calendar.DaysPerWeek = daysPerWeek
	}
	if flags.Changed("weeks-per-month") {
		opts.Calendar.WeeksPerMonth = weeksPerMonth
	}
	if flags.Changed("months-per-year") {
		opts.Calendar.MonthsPerYear = monthsPerYear
	}
	if flags.Changed("days-per-year") {
		opts.Calendar.DaysPerYear = daysPerYear
	}

	custom, err := parseAliases(aliases)
	if err != nil {
		return opts, err
	}
	for key, spellings := range custom {
		units[key] = spellings
	}
	if len(units) > 0 {
		opts.Units = units
	}
	return opts, nil
}

func run(cmd *cobra.Command, args []string) error {
	opts, err := buildOptions(cmd)
	if err != nil {
		return err
	}
	p := timestring.New(opts)

	var colorize bool
	switch color {
	case colorAlways:
		colorize = true
	case colorNever:
		colorize = false
	case colorAuto:
		colorize = os.Getenv("NO_COLOR") == "" && isatty.IsTerminal(os.Stdout.Fd())
	}
	out := NewOutput(cmd.OutOrStdout(), cmd.ErrOrStderr(), colorize)

	// A custom alias that an earlier table entry already claims can never
	// take effect; say so rather than resolving it silently.
	for key, spellings := range opts.Units {
		for _, alias := range spellings {
			if resolved, err := p.Resolve(alias); err == nil && resolved != strings.ToLower(key) {
				out.Warningf("alias %q of unit %q is shadowed by unit %q", alias, key, resolved)
			}
		}
	}

	unitFactor := 1.0
	if returnUnit != "" {
		if unitFactor, err = p.Factor(returnUnit); err != nil {
			return err
		}
	}

	labeled := len(args) > 1
	failed := 0
	for _, arg := range args {
		seconds, err := p.Parse(arg)
		if err != nil {
			if !labeled {
				return err
			}
			out.Errorf("%s: %v", arg, err)
			failed++
			continue
		}

		value := humanize.Ftoa(seconds / unitFactor)
		var long string
		if human {
			d := time.Duration(math.Abs(seconds) * float64(time.Second))
			long = durafmt.Parse(d).String()
			if seconds < 0 {
				long = "-" + long
			}
		}

		var label string
		if labeled {
			label = arg
		}
		out.Result(label, value, long)
	}

	if failed > 0 {
		return fmt.Errorf("failed to parse %d of %d durations", failed, len(args))
	}
	return nil
}
