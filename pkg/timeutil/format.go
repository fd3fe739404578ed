// Package timeutil provides the countdown arithmetic and display
// helpers shared by the renderers and the CLI.
//
// Calendar math is approximate on purpose: a year is 365.25 days and a
// month is 30.44 days. Both constants must stay exactly as they are so
// the rendered output does not drift.
package timeutil

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	Day   = 24 * time.Hour
	Hour  = time.Hour
	Year  = 365.25 // days
	Month = 30.44  // days
)

// Expired is the Home countdown text once the target has passed.
const Expired = "Time's Up!"

// Breakdown is a target-minus-now difference split into approximate
// calendar units. It is derived on every tick and never stored.
type Breakdown struct {
	Years     int
	Months    int
	Days      int
	Hours     int
	TotalDays int
	Elapsed   bool
}

// Decompose splits target-now into years, months, days and hours.
// If the target is not in the future the result has Elapsed set and
// every other field zero.
func Decompose(target, now time.Time) Breakdown {
	diff := target.Sub(now)
	if diff <= 0 {
		return Breakdown{Elapsed: true}
	}

	totalDays := int(diff / Day)
	years := int(math.Floor(float64(totalDays) / Year))
	remaining := math.Floor(float64(totalDays) - float64(years)*Year)
	months := int(math.Floor(remaining / Month))
	days := int(math.Floor(remaining - float64(months)*Month))

	return Breakdown{
		Years:     years,
		Months:    months,
		Days:      days,
		Hours:     int((diff % Day) / Hour),
		TotalDays: totalDays,
	}
}

// FormatHome renders the tiered Home countdown phrase.
//
//	"1 year, 1 month and 3 days"
//	"1 month, 9 days"
//	"5 days"
//
// The month tier recomputes months from the total day count instead of
// reusing Breakdown.Months. The two tiers are intentionally not derived
// from one decomposition; keep them separate.
func FormatHome(target, now time.Time) string {
	b := Decompose(target, now)
	if b.Elapsed {
		return Expired
	}

	if b.Years > 0 {
		return fmt.Sprintf("%s, %s and %s",
			Quantity(b.Years, "year", "years"),
			Quantity(b.Months, "month", "months"),
			Quantity(b.Days, "day", "days"))
	}

	totalMonths := int(math.Floor(float64(b.TotalDays) / Month))
	if totalMonths > 0 {
		daysAfterMonths := int(math.Floor(float64(b.TotalDays) - float64(totalMonths)*Month))
		return fmt.Sprintf("%s, %s",
			Quantity(totalMonths, "month", "months"),
			Quantity(daysAfterMonths, "day", "days"))
	}

	return Quantity(b.TotalDays, "day", "days")
}

// Pluralize returns singular for exactly 1 and plural for anything else,
// including 0.
func Pluralize(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}

// Quantity formats "n noun" with the singular/plural noun chosen by
// Pluralize.
func Quantity(n int, singular, plural string) string {
	return strconv.Itoa(n) + " " + Pluralize(n, singular, plural)
}

// PadTwo left-pads n with zeros to width 2. Values of 100 and above keep
// their natural width.
func PadTwo(n int) string {
	s := strconv.Itoa(n)
	if len(s) >= 2 {
		return s
	}
	return strings.Repeat("0", 2-len(s)) + s
}

// FormatTimestampFull formats a target instant for display.
// Format: "2006-01-02 15:04 -07:00"
func FormatTimestampFull(t time.Time) string {
	return t.Format("2006-01-02 15:04 -07:00")
}

// ParseTarget parses an ISO-8601 timestamp with an explicit UTC offset.
func ParseTarget(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("parse target %q: %w", s, err)
	}
	return t, nil
}
