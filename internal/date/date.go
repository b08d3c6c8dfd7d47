// Package date implements proleptic Gregorian calendar conversions between
// UTC non-leap second timestamps and broken-down civil time. The conversions
// are pure integer arithmetic and are exact over the entire supported
// timestamp domain, including negative years.
package date

const (
	// MinTimestamp is the earliest supported timestamp,
	// -262144-01-01T00:00:00Z.
	MinTimestamp int64 = -8334632851200

	// MaxTimestamp is the latest supported timestamp,
	// 262143-12-31T23:59:59Z.
	MaxTimestamp int64 = 8210298412799

	// MinYear and MaxYear are the calendar years of MinTimestamp and
	// MaxTimestamp.
	MinYear = -262144
	MaxYear = 262143
)

const (
	secondsPerDay = 86400

	// Days from 0000-03-01 to the epoch, 1970-01-01.
	epochShiftDays = 719468

	// Days in a 400-year Gregorian era.
	daysPerEra = 146097
)

// A DateTime is a broken-down UTC instant.
type DateTime struct {
	Year    int
	Month   int // 1-12
	Day     int // 1-31
	Hour    int // 0-23
	Minute  int // 0-59
	Second  int // 0-59
	Weekday int // 0-6, Sunday = 0
}

// FromUnix converts a timestamp in [MinTimestamp, MaxTimestamp] to its
// calendar representation.
func FromUnix(ts int64) DateTime {
	days := floorDiv(ts, secondsPerDay)
	rem := ts - days*secondsPerDay

	year, month, day := civilFromDays(days)
	return DateTime{
		Year:    year,
		Month:   month,
		Day:     day,
		Hour:    int(rem / 3600),
		Minute:  int(rem / 60 % 60),
		Second:  int(rem % 60),
		Weekday: weekdayFromDays(days),
	}
}

// Unix converts the calendar representation back to a timestamp. It is the
// exact inverse of FromUnix over the supported domain.
func (dt DateTime) Unix() int64 {
	days := daysFromCivil(dt.Year, dt.Month, dt.Day)
	return days*secondsPerDay +
		int64(dt.Hour)*3600 + int64(dt.Minute)*60 + int64(dt.Second)
}

// IsLeapYear reports whether the year is a leap year under the proleptic
// Gregorian rule.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given month, 28-31.
func DaysInMonth(year, month int) int {
	switch month {
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 31
	}
}

// Weekday returns the day of the week for the given civil date,
// with Sunday = 0.
func Weekday(year, month, day int) int {
	return weekdayFromDays(daysFromCivil(year, month, day))
}

// civilFromDays converts a count of days since the epoch to a civil date.
// The algorithm works on eras of 400 years (146097 days), within which the
// year starts on March 1 so that the leap day is the last day of the year.
func civilFromDays(z int64) (year, month, day int) {
	z += epochShiftDays
	era := floorDiv(z, daysPerEra)
	doe := z - era*daysPerEra                                   // [0, 146096]
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365      // [0, 399]
	doy := doe - (365*yoe + yoe/4 - yoe/100)                    // [0, 365]
	mp := (5*doy + 2) / 153                                     // [0, 11]
	day = int(doy - (153*mp+2)/5 + 1)                           // [1, 31]
	month = int(mp)
	if month < 10 {
		month += 3
	} else {
		month -= 9
	}
	y := yoe + era*400
	if month <= 2 {
		y++
	}
	return int(y), month, day
}

// daysFromCivil is the inverse of civilFromDays.
func daysFromCivil(year, month, day int) int64 {
	y := int64(year)
	if month <= 2 {
		y--
	}
	era := floorDiv(y, 400)
	yoe := y - era*400 // [0, 399]
	mp := int64(month) + 9
	if month > 2 {
		mp = int64(month) - 3
	}
	doy := (153*mp+2)/5 + int64(day) - 1  // [0, 365]
	doe := yoe*365 + yoe/4 - yoe/100 + doy // [0, 146096]
	return era*daysPerEra + doe - epochShiftDays
}

// weekdayFromDays maps a day count to a weekday; day 0 (1970-01-01) was a
// Thursday.
func weekdayFromDays(days int64) int {
	return int(((days+4)%7 + 7) % 7)
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
