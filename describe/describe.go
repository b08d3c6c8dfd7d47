// Package describe renders parsed cron expressions as human-readable
// sentences, e.g. "0 9-17 * * 1-5" becomes "At 0 minutes past the hour,
// between 9:00 AM and 5:59 PM on Monday through Friday".
package describe

import (
	"strconv"
	"strings"

	"github.com/reugn/go-cron/cron"
)

// Language renders a parsed cron expression in a natural language.
type Language interface {
	Describe(expr *cron.Expr) string
}

// HourFormat selects between a 12 hour and a 24 hour clock in rendered
// times.
type HourFormat int

const (
	// Hour12 formats times like 6:30 PM.
	Hour12 HourFormat = iota
	// Hour24 formats times like 18:30.
	Hour24
)

// English renders expressions in English. The zero value uses a 12 hour
// clock.
type English struct {
	Hour HourFormat
}

var _ Language = English{}

// Describe returns an English sentence equivalent to the expression.
func (e English) Describe(expr *cron.Expr) string {
	var b strings.Builder
	e.writeTime(&b, expr)
	e.writeDays(&b, expr)
	e.writeMonths(&b, expr)
	return b.String()
}

// writeTime renders the minute and hour fields.
func (e English) writeTime(b *strings.Builder, expr *cron.Expr) {
	switch {
	case expr.Minutes.Star && expr.Hours.Star:
		b.WriteString("Every minute")
	case expr.Minutes.Star:
		b.WriteString("Every minute ")
		b.WriteString(list(expr.Hours.Terms, e.hourTerm))
	case expr.Hours.Star:
		e.writeMinutesOfHour(b, expr.Minutes.Terms)
	default:
		// A plain value in each field reads as a time of day.
		if len(expr.Minutes.Terms) == 1 && len(expr.Hours.Terms) == 1 {
			m := expr.Minutes.Terms[0].Normalize()
			h := expr.Hours.Terms[0].Normalize()
			if m.Kind == cron.TermOne && h.Kind == cron.TermOne {
				b.WriteString("At " + e.clock(h.From, m.From))
				return
			}
		}
		b.WriteString("At " + list(expr.Minutes.Terms, e.minuteTerm) +
			" minutes past the hour, ")
		b.WriteString(list(expr.Hours.Terms, e.hourTerm))
	}
}

// writeMinutesOfHour renders a restricted minute field against a wildcard
// hour field.
func (e English) writeMinutesOfHour(b *strings.Builder, terms []cron.Term) {
	if len(terms) == 1 {
		switch t := terms[0].Normalize(); t.Kind {
		case cron.TermOne:
			switch t.From {
			case 0:
				b.WriteString("Every hour")
			case 1:
				b.WriteString("At 1 minute past the hour")
			default:
				b.WriteString("At " + strconv.Itoa(t.From) +
					" minutes past the hour")
			}
		case cron.TermRange:
			b.WriteString("Minutes " + strconv.Itoa(t.From) + " through " +
				strconv.Itoa(t.To) + " past the hour")
		case cron.TermStep:
			b.WriteString("Every " + ordinal(t.Step) +
				" minute starting from minute " + strconv.Itoa(t.From) +
				" to minute " + strconv.Itoa(t.To) + " past the hour")
		}
		return
	}
	b.WriteString("At " + list(terms, e.minuteTerm) + " minutes past the hour")
}

// writeDays renders the day-of-month and day-of-week fields.
func (e English) writeDays(b *strings.Builder, expr *cron.Expr) {
	if !expr.DaysOfMonth.Star {
		b.WriteString(" on the ")
		b.WriteString(list(expr.DaysOfMonth.Terms, e.domTerm))
	}
	if !expr.DaysOfMonth.Star && !expr.DaysOfWeek.Star {
		b.WriteString(" and")
	}
	if !expr.DaysOfWeek.Star {
		b.WriteString(" on ")
		b.WriteString(list(expr.DaysOfWeek.Terms, e.dowTerm))
	}
}

// writeMonths renders the month field, phrased to read naturally after the
// day clauses.
func (e English) writeMonths(b *strings.Builder, expr *cron.Expr) {
	switch {
	case expr.Months.Star:
		if !expr.DaysOfMonth.Star {
			b.WriteString(" of every month")
		}
	case expr.DaysOfMonth.Star && expr.DaysOfWeek.Star:
		b.WriteString(" every day in ")
		b.WriteString(list(expr.Months.Terms, e.monthTerm))
	default:
		b.WriteString(" of ")
		b.WriteString(list(expr.Months.Terms, e.monthTerm))
	}
}

func (e English) minuteTerm(t cron.Term) string {
	switch t.Kind {
	case cron.TermRange:
		return strconv.Itoa(t.From) + " through " + strconv.Itoa(t.To)
	case cron.TermStep:
		return "every " + ordinal(t.Step) + " minute from " +
			strconv.Itoa(t.From) + " through " + strconv.Itoa(t.To)
	default:
		return strconv.Itoa(t.From)
	}
}

func (e English) hourTerm(t cron.Term) string {
	switch t.Kind {
	case cron.TermRange:
		return "between " + e.clock(t.From, 0) + " and " + e.clock(t.To, 59)
	case cron.TermStep:
		return "every " + ordinal(t.Step) + " hour between " +
			e.clock(t.From, 0) + " and " + e.clock(t.To, 59)
	default:
		return "between " + e.clock(t.From, 0) + " and " + e.clock(t.From, 59)
	}
}

func (e English) domTerm(t cron.Term) string {
	switch t.Kind {
	case cron.TermRange:
		return ordinal(t.From) + " to " + ordinal(t.To)
	case cron.TermStep:
		return "every " + ordinal(t.Step) + " day from the " +
			ordinal(t.From) + " to the " + ordinal(t.To)
	default:
		return ordinal(t.From)
	}
}

func (e English) monthTerm(t cron.Term) string {
	switch t.Kind {
	case cron.TermRange:
		return monthNames[t.From-1] + " to " + monthNames[t.To-1]
	case cron.TermStep:
		return "every " + ordinal(t.Step) + " month from " +
			monthNames[t.From-1] + " to " + monthNames[t.To-1]
	default:
		return monthNames[t.From-1]
	}
}

func (e English) dowTerm(t cron.Term) string {
	switch t.Kind {
	case cron.TermRange:
		return weekdayNames[t.From] + " through " + weekdayNames[t.To]
	case cron.TermStep:
		return "every " + ordinal(t.Step) + " weekday " +
			weekdayNames[t.From] + " through " + weekdayNames[t.To]
	default:
		return weekdayNames[t.From]
	}
}

// clock formats a time of day in the configured hour format.
func (e English) clock(hour, minute int) string {
	if e.Hour == Hour24 {
		return pad2(hour) + ":" + pad2(minute)
	}
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	h := hour % 12
	if h == 0 {
		h = 12
	}
	return strconv.Itoa(h) + ":" + pad2(minute) + " " + period
}

// list joins the rendered terms with English list punctuation: "a",
// "a and b", or "a, b, and c".
func list(terms []cron.Term, render func(cron.Term) string) string {
	parts := make([]string, len(terms))
	for i, t := range terms {
		parts[i] = render(t.Normalize())
	}
	switch len(parts) {
	case 1:
		return parts[0]
	case 2:
		return parts[0] + " and " + parts[1]
	default:
		return strings.Join(parts[:len(parts)-1], ", ") +
			", and " + parts[len(parts)-1]
	}
}

// ordinal returns the number with its English ordinal suffix, e.g. 1st,
// 2nd, 11th, 23rd.
func ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 1:
		suffix = "st"
	case 2:
		suffix = "nd"
	case 3:
		suffix = "rd"
	default:
		if n%100 >= 20 {
			switch n % 10 {
			case 1:
				suffix = "st"
			case 2:
				suffix = "nd"
			case 3:
				suffix = "rd"
			}
		}
	}
	return strconv.Itoa(n) + suffix
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

var weekdayNames = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday",
	"Saturday",
}

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June", "July",
	"August", "September", "October", "November", "December",
}
