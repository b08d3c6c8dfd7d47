// Package cron implements a five-field cron expression engine operating on
// Unix timestamps: parsing, membership testing and forward search for the
// next matching minute.
package cron

import (
	"github.com/reugn/go-cron/internal/date"
)

// Timestamp domain limits. Every operation taking a timestamp accepts
// values in [MinTimestamp, MaxTimestamp], covering the proleptic Gregorian
// years -262144 through 262143.
const (
	MinTimestamp int64 = date.MinTimestamp
	MaxTimestamp int64 = date.MaxTimestamp
)

// A Schedule is a compiled cron expression. Each field is a bit set over
// the field's domain, so membership tests are single mask probes.
//
// The zero Schedule matches nothing; obtain values via Parse or
// Expr.Schedule.
type Schedule struct {
	expression string

	minutes     uint64
	hours       uint32
	daysOfMonth uint32
	months      uint16
	daysOfWeek  uint8

	// domStar and dowStar record whether the day fields were written as
	// the literal "*", which changes how the two combine; see containsDay.
	domStar bool
	dowStar bool
}

// MustParse is like Parse but panics on an invalid expression. It
// simplifies initialization of package-level schedules.
func MustParse(expression string) *Schedule {
	s, err := Parse(expression)
	if err != nil {
		panic(err)
	}
	return s
}

// String returns the source text the schedule was compiled from.
func (s *Schedule) String() string {
	return s.expression
}

// Contains reports whether the minute containing ts matches the schedule.
// Seconds are ignored, so any two timestamps within the same minute give
// the same answer. Timestamps outside [MinTimestamp, MaxTimestamp] never
// match.
func (s *Schedule) Contains(ts int64) bool {
	if ts < MinTimestamp || ts > MaxTimestamp {
		return false
	}
	dt := date.FromUnix(ts)
	return s.minutes&(1<<uint(dt.Minute)) != 0 &&
		s.hours&(1<<uint(dt.Hour)) != 0 &&
		s.containsDate(dt)
}

// containsDate tests the date fields only.
func (s *Schedule) containsDate(dt date.DateTime) bool {
	return s.months&(1<<uint(dt.Month-1)) != 0 && s.containsDay(dt)
}

// containsDay combines the day-of-month and day-of-week fields. When both
// were written as "*" every day matches; when exactly one is "*" the other
// alone decides; when both are restricted a day matches if it satisfies
// either.
func (s *Schedule) containsDay(dt date.DateTime) bool {
	dom := s.daysOfMonth&(1<<uint(dt.Day-1)) != 0
	dow := s.daysOfWeek&(1<<uint(dt.Weekday)) != 0
	switch {
	case s.domStar && s.dowStar:
		return true
	case s.domStar:
		return dow
	case s.dowStar:
		return dom
	default:
		return dom || dow
	}
}

// Any reports whether the schedule matches at least one timestamp in the
// supported domain. Expressions like "* * 30 2 *" are syntactically valid
// yet can never fire.
func (s *Schedule) Any() bool {
	_, ok := s.NextFrom(MinTimestamp)
	return ok
}
