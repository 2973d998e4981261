package schedule

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidRule = errors.New("invalid recurrence rule")

type RuleKind int

const (
	RuleDaily RuleKind = iota
	RuleEveryNDays
	RuleMonthly
)

// Rule is the parsed form of a recurrence rule string. Parsing once at the
// boundary keeps the matcher a plain switch over the closed set of kinds.
type Rule struct {
	Kind RuleKind
	// Interval is the day spacing for RuleEveryNDays, counted from the
	// task's anchor date.
	Interval int
	// DayOfMonth is the matching day for RuleMonthly, in [1,31].
	DayOfMonth int
}

const (
	ruleDaily         = "DAILY"
	ruleEveryNPrefix  = "EVERY_N_DAYS:"
	ruleMonthlyPrefix = "MONTHLY:"
)

// ParseRule parses the rule grammar: "DAILY", "EVERY_N_DAYS:<n>" with n > 0,
// or "MONTHLY:<d>" with d in [1,31]. Anything else is ErrInvalidRule.
func ParseRule(raw string) (Rule, error) {
	switch {
	case raw == ruleDaily:
		return Rule{Kind: RuleDaily}, nil
	case strings.HasPrefix(raw, ruleEveryNPrefix):
		n, err := strconv.Atoi(raw[len(ruleEveryNPrefix):])
		if err != nil || n <= 0 {
			return Rule{}, fmt.Errorf("%w: %q", ErrInvalidRule, raw)
		}
		return Rule{Kind: RuleEveryNDays, Interval: n}, nil
	case strings.HasPrefix(raw, ruleMonthlyPrefix):
		day, err := strconv.Atoi(raw[len(ruleMonthlyPrefix):])
		if err != nil || day < 1 || day > 31 {
			return Rule{}, fmt.Errorf("%w: %q", ErrInvalidRule, raw)
		}
		return Rule{Kind: RuleMonthly, DayOfMonth: day}, nil
	default:
		return Rule{}, fmt.Errorf("%w: %q", ErrInvalidRule, raw)
	}
}

// Matches reports whether the rule fires on date. anchor is the task's
// creation date; only EVERY_N_DAYS reads it, and dates before the anchor
// never match.
func (r Rule) Matches(anchor, date time.Time) bool {
	switch r.Kind {
	case RuleDaily:
		return true
	case RuleEveryNDays:
		days := daysBetween(DateOnly(anchor), DateOnly(date))
		return days >= 0 && days%r.Interval == 0
	case RuleMonthly:
		// Months shorter than DayOfMonth never match; there is no clamping
		// to the last day of the month.
		return date.Day() == r.DayOfMonth
	default:
		return false
	}
}

// DateOnly drops the time-of-day and pins the date to UTC midnight. All date
// comparisons in the engine go through this.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from) / (24 * time.Hour))
}
