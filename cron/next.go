package cron

import (
	"github.com/reugn/go-cron/internal/date"
)

// searchCapYears bounds the date scan. Month, day and weekday patterns all
// repeat with the 400-year Gregorian cycle, so a schedule with no match
// within this horizon has no match at all.
const searchCapYears = 2000

// NextFrom returns the earliest matching timestamp at or after ts. The
// second result is false when ts is outside [MinTimestamp, MaxTimestamp] or
// no match exists before the end of the domain.
//
// The bound is resolved at minute granularity: ts is truncated to the start
// of its minute before the comparison, so a timestamp inside a matching
// minute yields that minute.
func (s *Schedule) NextFrom(ts int64) (int64, bool) {
	if ts < MinTimestamp || ts > MaxTimestamp {
		return 0, false
	}
	ts -= floorMod(ts, 60)
	if s.Contains(ts) {
		return ts, true
	}
	return s.findNext(ts)
}

// NextAfter returns the earliest matching timestamp strictly after the
// minute containing ts. The second result is false when ts is outside
// [MinTimestamp, MaxTimestamp] or no later match exists.
func (s *Schedule) NextAfter(ts int64) (int64, bool) {
	if ts < MinTimestamp || ts > MaxTimestamp {
		return 0, false
	}
	ts -= floorMod(ts, 60)
	return s.findNext(ts)
}

// findNext returns the earliest match strictly after the minute-aligned ts.
func (s *Schedule) findNext(ts int64) (int64, bool) {
	dt := date.FromUnix(ts)

	// Later the same day.
	if s.containsDate(dt) {
		if t, ok := s.nextTimeOfDay(dt, dt.Hour, dt.Minute+1); ok {
			return t, true
		}
	}

	// Scan subsequent days month by month. The first candidate day is the
	// day after ts; every later month starts at day one.
	year, month, day := dt.Year, dt.Month, dt.Day+1
	limit := dt.Year + searchCapYears
	if limit > date.MaxYear {
		limit = date.MaxYear
	}
	for ; year <= limit; year++ {
		for ; month <= 12; month++ {
			from := day
			day = 1
			if s.months&(1<<uint(month-1)) == 0 {
				continue
			}
			d, ok := s.nextDayInMonth(year, month, from)
			if !ok {
				continue
			}
			next := date.DateTime{Year: year, Month: month, Day: d}
			if t, ok := s.nextTimeOfDay(next, 0, 0); ok {
				return t, true
			}
		}
		month = 1
	}
	return 0, false
}

// nextTimeOfDay returns the timestamp of the first matching (hour, minute)
// pair on dt's date at or after the given time of day.
func (s *Schedule) nextTimeOfDay(dt date.DateTime, hour, minute int) (int64, bool) {
	if minute > 59 {
		hour++
		minute = 0
	}
	for h := hour; h <= 23; h++ {
		if s.hours&(1<<uint(h)) == 0 {
			continue
		}
		from := 0
		if h == hour {
			from = minute
		}
		m := nextSetBit(s.minutes, from)
		if m < 0 {
			continue
		}
		found := date.DateTime{
			Year: dt.Year, Month: dt.Month, Day: dt.Day,
			Hour: h, Minute: m,
		}
		return found.Unix(), true
	}
	return 0, false
}

// nextDayInMonth returns the first day of the given month at or after from
// that satisfies the day fields, honoring the wildcard combination rule.
func (s *Schedule) nextDayInMonth(year, month, from int) (int, bool) {
	last := date.DaysInMonth(year, month)
	if from > last {
		return 0, false
	}
	switch {
	case s.domStar && s.dowStar:
		return from, true
	case s.dowStar:
		return s.nextMonthday(from, last)
	case s.domStar:
		return s.nextWeekday(year, month, from, last)
	default:
		dom, domOK := s.nextMonthday(from, last)
		dow, dowOK := s.nextWeekday(year, month, from, last)
		switch {
		case domOK && dowOK:
			if dom < dow {
				return dom, true
			}
			return dow, true
		case domOK:
			return dom, true
		default:
			return dow, dowOK
		}
	}
}

// nextMonthday returns the first day in [from, last] set in the
// day-of-month mask.
func (s *Schedule) nextMonthday(from, last int) (int, bool) {
	d := nextSetBit(uint64(s.daysOfMonth), from-1)
	if d < 0 || d+1 > last {
		return 0, false
	}
	return d + 1, true
}

// nextWeekday returns the first day in [from, last] whose weekday is set in
// the day-of-week mask.
func (s *Schedule) nextWeekday(year, month, from, last int) (int, bool) {
	wd := date.Weekday(year, month, from)
	offset := nextSetBit(uint64(s.daysOfWeek), wd)
	if offset < 0 {
		offset = nextSetBit(uint64(s.daysOfWeek), 0)
		if offset < 0 {
			return 0, false
		}
		offset += 7
	}
	d := from + offset - wd
	if d > last {
		return 0, false
	}
	return d, true
}
