// Package recurrence enumerates the occurrences of a recurring payment
// inside an observation window. Occurrence identities are a pure function
// of (series seed, occurrence date), so re-running the engine with the same
// configuration and window always yields the same ids and dates.
package recurrence

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stubbank/stubbank/internal/sampling"
)

// DefaultRatio is the jitter ratio applied when a config leaves it unset.
const DefaultRatio = 0.30

// seriesNamespace is the fixed namespace for name-based occurrence ids.
var seriesNamespace = uuid.MustParse("f2b4ad1e-8c3a-44d0-9db7-5a4be3f0c21d")

// Unit is a recurrence step unit.
type Unit string

const (
	UnitDay   Unit = "day"
	UnitWeek  Unit = "week"
	UnitMonth Unit = "month"
	UnitYear  Unit = "year"
)

// Config describes one recurring payment series.
type Config struct {
	// Seed is the stable series identity occurrence ids derive from.
	Seed  string
	Label string

	// Amount is the signed base amount; Ratio the symmetric jitter
	// applied to it. A nil Ratio means DefaultRatio; zero means no jitter.
	Amount decimal.Decimal
	Ratio  *float64

	Unit     Unit
	Interval int

	Start time.Time
	// End bounds the series; zero means open-ended.
	End time.Time

	// StartMonth/EndMonth restrict which calendar months materialize an
	// occurrence (inclusive, no wrap). Zero means unrestricted.
	StartMonth time.Month
	EndMonth   time.Month
}

// Occurrence is one scheduled materialization of a series.
type Occurrence struct {
	ID     string
	Date   time.Time
	Amount decimal.Decimal
}

// OccurrenceID derives the deterministic identity for a series occurrence.
func OccurrenceID(seed string, date time.Time) string {
	name := seed + ":" + date.Format("2006-01-02")
	return uuid.NewSHA1(seriesNamespace, []byte(name)).String()
}

// Occurrences enumerates the surviving occurrences of cfg within
// [windowStart, windowEnd]. Occurrences in excluded months are skipped
// entirely, not shifted. An empty result is not an error.
func Occurrences(cfg Config, windowStart, windowEnd time.Time, s *sampling.Sampler) ([]Occurrence, error) {
	if cfg.Interval < 1 {
		return nil, fmt.Errorf("recurrence interval must be >= 1, got %d", cfg.Interval)
	}
	switch cfg.Unit {
	case UnitDay, UnitWeek, UnitMonth, UnitYear:
	default:
		return nil, fmt.Errorf("unknown recurrence unit %q", cfg.Unit)
	}

	end := windowEnd
	if !cfg.End.IsZero() && cfg.End.Before(end) {
		end = cfg.End
	}

	var out []Occurrence
	for step := 0; ; step++ {
		date := stepDate(cfg.Start, cfg.Unit, cfg.Interval*step)
		if date.After(end) {
			break
		}
		if date.Before(windowStart) || date.Before(cfg.Start) {
			continue
		}
		if !monthAllowed(date.Month(), cfg.StartMonth, cfg.EndMonth) {
			continue
		}
		out = append(out, Occurrence{
			ID:     OccurrenceID(cfg.Seed, date),
			Date:   date,
			Amount: occurrenceAmount(cfg, s),
		})
	}
	return out, nil
}

// stepDate advances start by n units. Month and year steps land on the
// start's day-of-month, clamped to the last valid day when the target
// month is shorter.
func stepDate(start time.Time, unit Unit, n int) time.Time {
	switch unit {
	case UnitDay:
		return start.AddDate(0, 0, n)
	case UnitWeek:
		return start.AddDate(0, 0, 7*n)
	case UnitMonth:
		return addMonthsClamped(start, n)
	case UnitYear:
		return addMonthsClamped(start, 12*n)
	}
	return start
}

func addMonthsClamped(start time.Time, months int) time.Time {
	year := start.Year()
	month := int(start.Month()) - 1 + months
	year += month / 12
	month = month % 12
	if month < 0 {
		month += 12
		year--
	}
	targetMonth := time.Month(month + 1)
	day := start.Day()
	if last := daysInMonth(year, targetMonth); day > last {
		day = last
	}
	return time.Date(year, targetMonth, day,
		start.Hour(), start.Minute(), start.Second(), start.Nanosecond(), start.Location())
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func monthAllowed(m, startMonth, endMonth time.Month) bool {
	if startMonth != 0 && m < startMonth {
		return false
	}
	if endMonth != 0 && m > endMonth {
		return false
	}
	return true
}

func occurrenceAmount(cfg Config, s *sampling.Sampler) decimal.Decimal {
	ratio := DefaultRatio
	if cfg.Ratio != nil {
		ratio = *cfg.Ratio
	}
	if ratio == 0 {
		return cfg.Amount
	}
	return s.Jitter(cfg.Amount, ratio)
}
