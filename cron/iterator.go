package cron

import "strconv"

// An Iterator yields the matching timestamps of a schedule in ascending
// order. It is not safe for concurrent use.
type Iterator struct {
	schedule  *Schedule
	cursor    int64
	inclusive bool
	exhausted bool
}

// IterFrom returns an iterator over the schedule's matches starting at the
// minute containing ts. It returns an error when ts is outside
// [MinTimestamp, MaxTimestamp].
func (s *Schedule) IterFrom(ts int64) (*Iterator, error) {
	return s.newIterator(ts, true)
}

// IterAfter returns an iterator over the schedule's matches strictly after
// the minute containing ts. It returns an error when ts is outside
// [MinTimestamp, MaxTimestamp].
func (s *Schedule) IterAfter(ts int64) (*Iterator, error) {
	return s.newIterator(ts, false)
}

func (s *Schedule) newIterator(ts int64, inclusive bool) (*Iterator, error) {
	if ts < MinTimestamp || ts > MaxTimestamp {
		return nil, illegalArgumentError("timestamp out of range: " +
			strconv.FormatInt(ts, 10))
	}
	return &Iterator{
		schedule:  s,
		cursor:    ts - floorMod(ts, 60),
		inclusive: inclusive,
	}, nil
}

// Next returns the next matching timestamp. The second result is false once
// the sequence is exhausted; after that every call returns false.
func (it *Iterator) Next() (int64, bool) {
	if it.exhausted {
		return 0, false
	}
	var ts int64
	var ok bool
	if it.inclusive {
		it.inclusive = false
		ts, ok = it.schedule.NextFrom(it.cursor)
	} else {
		ts, ok = it.schedule.NextAfter(it.cursor)
	}
	if !ok {
		it.exhausted = true
		return 0, false
	}
	it.cursor = ts
	return ts, true
}
