package cron

import (
	"strings"
	"unicode/utf8"
)

// fieldCount is the number of whitespace-separated fields in an expression:
// minute, hour, day of month, month, day of week.
const fieldCount = 5

// bounds describes the numeric domain of a field, plus an optional map of
// name tokens to values.
type bounds struct {
	min, max int
	names    map[string]int
}

func (b bounds) bit(value int) uint64 {
	return 1 << uint(value-b.min)
}

// value resolves a single field token, either a name from the field's
// dictionary or a plain decimal integer within the field's domain.
func (b bounds) value(s string) (int, error) {
	if b.names != nil {
		if v, ok := b.names[strings.ToLower(s)]; ok {
			return v, nil
		}
	}
	i, err := parseUint(s)
	if err != nil {
		return 0, err
	}
	if i < b.min || i > b.max {
		return 0, cronParseError("value " + s + " out of range")
	}
	return i, nil
}

// The bounds for each field.
var (
	minuteBounds = bounds{0, 59, nil}
	hourBounds   = bounds{0, 23, nil}
	domBounds    = bounds{1, 31, nil}
	monthBounds  = bounds{1, 12, map[string]int{
		"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
		"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
	}}
	dowBounds = bounds{0, 6, map[string]int{
		"sun": 0, "mon": 1, "tue": 2, "wed": 3, "thu": 4, "fri": 5, "sat": 6,
	}}
)

// Predefined cron expressions.
var macros = map[string]string{
	"@yearly":   "0 0 1 1 *",
	"@annually": "0 0 1 1 *",
	"@monthly":  "0 0 1 * *",
	"@weekly":   "0 0 * * 0",
	"@daily":    "0 0 * * *",
	"@hourly":   "0 * * * *",
}

// Parse parses a standard five-field cron expression into an immutable
// Schedule. Each field is a wildcard, a single value, an inclusive range
// a-b, a stepped range a-b/c, a/c or */c, or a comma-separated list of
// those; months and days of the week may be written as three-letter names.
// The predefined @hourly, @daily, @weekly, @monthly and @yearly expressions
// are supported. On any malformed or out-of-range input, Parse returns an
// error unwrapping to ErrCronParse.
func Parse(expression string) (*Schedule, error) {
	expr, err := ParseExpr(expression)
	if err != nil {
		return nil, err
	}
	return expr.Schedule(), nil
}

// ParseBytes parses a raw byte buffer, validating that it is well-formed
// UTF-8 before interpreting it as a cron expression.
func ParseBytes(buf []byte) (*Schedule, error) {
	if !utf8.Valid(buf) {
		return nil, cronParseError("input is not valid UTF-8")
	}
	return Parse(string(buf))
}

// ParseExpr parses an expression into its structural form without compiling
// the field bit sets. Parsing is atomic: on failure no partial result is
// returned.
func ParseExpr(expression string) (*Expr, error) {
	trimmed := strings.TrimSpace(expression)
	if macro, ok := macros[trimmed]; ok {
		trimmed = macro
	}
	fields := strings.Fields(trimmed)
	if len(fields) != fieldCount {
		return nil, cronParseError("invalid expression length")
	}

	expr := &Expr{source: strings.Join(fields, " ")}
	for i, field := range []struct {
		target *FieldExpr
		bounds bounds
	}{
		{&expr.Minutes, minuteBounds},
		{&expr.Hours, hourBounds},
		{&expr.DaysOfMonth, domBounds},
		{&expr.Months, monthBounds},
		{&expr.DaysOfWeek, dowBounds},
	} {
		fe, err := parseField(fields[i], field.bounds)
		if err != nil {
			return nil, err
		}
		*field.target = fe
	}
	return expr, nil
}

func parseField(field string, b bounds) (FieldExpr, error) {
	if field == "*" {
		return FieldExpr{Star: true}, nil
	}
	var fe FieldExpr
	for _, item := range strings.Split(field, ",") {
		term, err := parseTerm(item, b)
		if err != nil {
			return FieldExpr{}, err
		}
		fe.Terms = append(fe.Terms, term)
	}
	return fe, nil
}

func parseTerm(item string, b bounds) (Term, error) {
	if item == "" {
		return Term{}, cronParseError("empty list item")
	}

	base, stepText, hasStep := strings.Cut(item, "/")
	step := 1
	if hasStep {
		v, err := parseUint(stepText)
		if err != nil {
			return Term{}, err
		}
		if v < 1 || v > b.max-b.min {
			return Term{}, cronParseError("step " + stepText + " out of range")
		}
		step = v
	}

	switch {
	case base == "*":
		// A bare "*" is only valid as the entire field.
		if !hasStep {
			return Term{}, cronParseError("misplaced wildcard in " + item)
		}
		return Term{Kind: TermStep, From: b.min, To: b.max, Step: step}, nil
	case strings.Contains(base, "-"):
		fromText, toText, _ := strings.Cut(base, "-")
		from, err := b.value(fromText)
		if err != nil {
			return Term{}, err
		}
		to, err := b.value(toText)
		if err != nil {
			return Term{}, err
		}
		if hasStep {
			return Term{Kind: TermStep, From: from, To: to, Step: step}, nil
		}
		return Term{Kind: TermRange, From: from, To: to}, nil
	default:
		value, err := b.value(base)
		if err != nil {
			return Term{}, err
		}
		if hasStep {
			// "a/c" steps from a to the end of the domain.
			return Term{Kind: TermStep, From: value, To: b.max, Step: step}, nil
		}
		return Term{Kind: TermOne, From: value, To: value}, nil
	}
}
