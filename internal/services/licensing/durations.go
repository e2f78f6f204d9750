package licensing

import "time"

type offset struct{ years, months int }

// durationOffsets maps a license duration to the calendar span it covers.
// Perpetual licenses get a 99 year term.
var durationOffsets = map[string]offset{
	"1_month":   {months: 1},
	"3_months":  {months: 3},
	"6_months":  {months: 6},
	"1_year":    {years: 1},
	"2_years":   {years: 2},
	"3_years":   {years: 3},
	"5_years":   {years: 5},
	"perpetual": {years: 99},
}

// EndDate returns the end of a license of the given duration starting at
// start. Unknown durations run for one year.
func EndDate(start time.Time, duration string) time.Time {
	o, ok := durationOffsets[normalizeKey(duration)]
	if !ok {
		o = offset{years: 1}
	}
	return start.AddDate(o.years, o.months, 0)
}
