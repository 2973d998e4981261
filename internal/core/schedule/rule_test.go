package schedule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"mychecklist/internal/core/schedule"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestParseRule_Daily(t *testing.T) {
	rule, err := schedule.ParseRule("DAILY")
	require.NoError(t, err)
	require.Equal(t, schedule.RuleDaily, rule.Kind)
}

func TestParseRule_EveryNDays(t *testing.T) {
	rule, err := schedule.ParseRule("EVERY_N_DAYS:3")
	require.NoError(t, err)
	require.Equal(t, schedule.RuleEveryNDays, rule.Kind)
	require.Equal(t, 3, rule.Interval)
}

func TestParseRule_Monthly(t *testing.T) {
	rule, err := schedule.ParseRule("MONTHLY:25")
	require.NoError(t, err)
	require.Equal(t, schedule.RuleMonthly, rule.Kind)
	require.Equal(t, 25, rule.DayOfMonth)
}

func TestParseRule_Invalid(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"unknown token", "WEEKLY"},
		{"lowercase daily", "daily"},
		{"interval zero", "EVERY_N_DAYS:0"},
		{"interval negative", "EVERY_N_DAYS:-2"},
		{"interval not numeric", "EVERY_N_DAYS:abc"},
		{"interval missing", "EVERY_N_DAYS:"},
		{"monthly day zero", "MONTHLY:0"},
		{"monthly day too large", "MONTHLY:32"},
		{"monthly not numeric", "MONTHLY:first"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := schedule.ParseRule(tc.raw)
			require.ErrorIs(t, err, schedule.ErrInvalidRule)
		})
	}
}

func TestRuleMatches_Daily(t *testing.T) {
	rule, err := schedule.ParseRule("DAILY")
	require.NoError(t, err)

	anchor := date(2024, time.January, 1)
	require.True(t, rule.Matches(anchor, date(2024, time.January, 1)))
	require.True(t, rule.Matches(anchor, date(2024, time.July, 19)))
	require.True(t, rule.Matches(anchor, date(2023, time.December, 31)))
}

func TestRuleMatches_EveryNDays(t *testing.T) {
	rule, err := schedule.ParseRule("EVERY_N_DAYS:3")
	require.NoError(t, err)

	anchor := date(2024, time.January, 1)
	require.True(t, rule.Matches(anchor, date(2024, time.January, 1)))
	require.False(t, rule.Matches(anchor, date(2024, time.January, 2)))
	require.False(t, rule.Matches(anchor, date(2024, time.January, 3)))
	require.True(t, rule.Matches(anchor, date(2024, time.January, 4)))
	require.True(t, rule.Matches(anchor, date(2024, time.January, 7)))
	// Dates before the anchor never match, even at interval spacing.
	require.False(t, rule.Matches(anchor, date(2023, time.December, 29)))
}

func TestRuleMatches_EveryNDays_AnchorKeepsDateOnly(t *testing.T) {
	rule, err := schedule.ParseRule("EVERY_N_DAYS:2")
	require.NoError(t, err)

	// Anchor carries a time-of-day, as a creation timestamp does.
	anchor := time.Date(2024, time.March, 10, 23, 59, 58, 0, time.UTC)
	require.True(t, rule.Matches(anchor, date(2024, time.March, 10)))
	require.False(t, rule.Matches(anchor, date(2024, time.March, 11)))
	require.True(t, rule.Matches(anchor, date(2024, time.March, 12)))
}

func TestRuleMatches_Monthly(t *testing.T) {
	rule, err := schedule.ParseRule("MONTHLY:25")
	require.NoError(t, err)

	anchor := date(2024, time.January, 1)
	require.True(t, rule.Matches(anchor, date(2024, time.January, 25)))
	require.True(t, rule.Matches(anchor, date(2024, time.February, 25)))
	require.False(t, rule.Matches(anchor, date(2024, time.January, 24)))
}

func TestRuleMatches_Monthly_NoEndOfMonthClamping(t *testing.T) {
	rule, err := schedule.ParseRule("MONTHLY:31")
	require.NoError(t, err)

	anchor := date(2024, time.January, 1)
	require.True(t, rule.Matches(anchor, date(2024, time.January, 31)))
	// February has no day 31 and the last day of the month does not stand
	// in for it.
	require.False(t, rule.Matches(anchor, date(2024, time.February, 29)))
	require.False(t, rule.Matches(anchor, date(2024, time.April, 30)))
}

func TestDateOnly(t *testing.T) {
	got := schedule.DateOnly(time.Date(2024, time.June, 5, 17, 30, 12, 99, time.UTC))
	require.Equal(t, date(2024, time.June, 5), got)
}
