package cron_test

import (
	"testing"
	"time"

	"github.com/reugn/go-cron/cron"
	"github.com/reugn/go-cron/internal/assert"
)

func TestNextAfter(t *testing.T) {
	t.Parallel()
	tests := []struct {
		expression string
		from       int64
		expected   int64
	}{
		{
			// Later the same minute field.
			"*/15 * * * *",
			unix(2021, time.January, 1, 0, 0, 0),
			unix(2021, time.January, 1, 0, 15, 0),
		},
		{
			// Into the next hour.
			"*/15 * * * *",
			unix(2021, time.January, 1, 0, 45, 0),
			unix(2021, time.January, 1, 1, 0, 0),
		},
		{
			// Into the next day.
			"30 8 * * *",
			unix(2021, time.January, 1, 9, 0, 0),
			unix(2021, time.January, 2, 8, 30, 0),
		},
		{
			// Into the next month.
			"0 12 1 * *",
			unix(2021, time.January, 1, 12, 0, 0),
			unix(2021, time.February, 1, 12, 0, 0),
		},
		{
			// Into the next year.
			"0 0 1 1 *",
			unix(2021, time.May, 1, 0, 0, 0),
			unix(2022, time.January, 1, 0, 0, 0),
		},
		{
			"0 0 1 1 *",
			unix(2022, time.January, 1, 0, 0, 0),
			unix(2023, time.January, 1, 0, 0, 0),
		},
		{
			// The day after a short month.
			"0 0 31 * *",
			unix(2021, time.April, 1, 0, 0, 0),
			unix(2021, time.May, 31, 0, 0, 0),
		},
		{
			// A leap day is several years out.
			"0 0 29 2 *",
			unix(2021, time.January, 1, 0, 0, 0),
			unix(2024, time.February, 29, 0, 0, 0),
		},
		{
			// The century rule: 2100 is not a leap year.
			"0 0 29 2 *",
			unix(2096, time.March, 1, 0, 0, 0),
			unix(2104, time.February, 29, 0, 0, 0),
		},
		{
			// Weekday search across a month boundary; 2026-08-31 was a
			// Monday.
			"0 9 * * 1",
			unix(2026, time.August, 31, 10, 0, 0),
			unix(2026, time.September, 7, 9, 0, 0),
		},
		{
			// Union of day fields picks the earlier candidate.
			"0 0 13 * 5",
			unix(2021, time.August, 13, 0, 0, 0),
			unix(2021, time.August, 20, 0, 0, 0),
		},
		{
			"0 0 13 * 5",
			unix(2021, time.September, 10, 0, 0, 0),
			unix(2021, time.September, 13, 0, 0, 0),
		},
		{
			// Wrapped minute range rolls into the next hour's tail.
			"50-10 * * * *",
			unix(2021, time.June, 15, 8, 10, 0),
			unix(2021, time.June, 15, 8, 50, 0),
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.expression, func(t *testing.T) {
			t.Parallel()
			s := cron.MustParse(tt.expression)
			next, ok := s.NextAfter(tt.from)
			assert.True(t, ok)
			assert.Equal(t, next, tt.expected)
		})
	}
}

func TestNextFromInclusive(t *testing.T) {
	t.Parallel()
	s := cron.MustParse("30 8 * * *")
	ts := unix(2021, time.January, 1, 8, 30, 0)

	// A matching bound is returned as is; any second within the matching
	// minute resolves to the start of that minute.
	next, ok := s.NextFrom(ts)
	assert.True(t, ok)
	assert.Equal(t, next, ts)

	next, ok = s.NextFrom(ts + 59)
	assert.True(t, ok)
	assert.Equal(t, next, ts)

	next, ok = s.NextAfter(ts + 59)
	assert.True(t, ok)
	assert.Equal(t, next, unix(2021, time.January, 2, 8, 30, 0))

	next, ok = s.NextFrom(ts + 60)
	assert.True(t, ok)
	assert.Equal(t, next, unix(2021, time.January, 2, 8, 30, 0))
}

func TestNextNoMatch(t *testing.T) {
	t.Parallel()
	for _, expression := range []string{
		"0 0 30 2 *",
		"0 0 31 4 *",
		"* * 31 11 *",
	} {
		s := cron.MustParse(expression)
		_, ok := s.NextFrom(unix(2021, time.January, 1, 0, 0, 0))
		assert.False(t, ok)
	}
}

func TestNextDomainLimits(t *testing.T) {
	t.Parallel()
	s := cron.MustParse("* * * * *")

	// The last matching minute of the domain starts 59 seconds before
	// MaxTimestamp.
	next, ok := s.NextFrom(cron.MaxTimestamp)
	assert.True(t, ok)
	assert.Equal(t, next, cron.MaxTimestamp-59)

	_, ok = s.NextAfter(cron.MaxTimestamp)
	assert.False(t, ok)

	next, ok = s.NextFrom(cron.MinTimestamp)
	assert.True(t, ok)
	assert.Equal(t, next, cron.MinTimestamp)

	_, ok = s.NextFrom(cron.MinTimestamp - 1)
	assert.False(t, ok)
	_, ok = s.NextAfter(cron.MaxTimestamp + 1)
	assert.False(t, ok)
}

func TestNextNegativeTimestamps(t *testing.T) {
	t.Parallel()
	s := cron.MustParse("0 0 1 1 *")

	// 1960-01-01 00:00:00 UTC.
	next, ok := s.NextAfter(unix(1959, time.June, 1, 0, 0, 0))
	assert.True(t, ok)
	assert.Equal(t, next, unix(1960, time.January, 1, 0, 0, 0))

	// Truncation rounds toward the start of the minute for timestamps
	// before the epoch as well.
	minute := cron.MustParse("* * * * *")
	next, ok = minute.NextFrom(-61)
	assert.True(t, ok)
	assert.Equal(t, next, int64(-120))
}
