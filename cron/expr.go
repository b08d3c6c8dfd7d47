package cron

// TermKind discriminates the forms a single list item of a cron field can
// take.
type TermKind int

const (
	// TermOne is a single value, e.g. "5".
	TermOne TermKind = iota
	// TermRange is an inclusive range, e.g. "5-10". A reversed range wraps
	// around the end of the field's domain.
	TermRange
	// TermStep is a stepped range, e.g. "5-30/10", "5/10" or "*/10".
	TermStep
)

// A Term is one comma-separated item of a cron field. From and To hold
// values in the field's natural domain (e.g. days 1-31, weekdays 0-6).
type Term struct {
	Kind TermKind
	From int
	To   int
	Step int
}

// Normalize simplifies the term: a range with equal endpoints becomes a
// single value, a step with equal endpoints becomes a single value, and a
// step of one becomes a plain range.
func (t Term) Normalize() Term {
	switch t.Kind {
	case TermRange:
		if t.From == t.To {
			return Term{Kind: TermOne, From: t.From, To: t.From}
		}
	case TermStep:
		if t.From == t.To {
			return Term{Kind: TermOne, From: t.From, To: t.From}
		}
		if t.Step == 1 {
			return Term{Kind: TermRange, From: t.From, To: t.To}
		}
	}
	return t
}

// A FieldExpr is one parsed cron field: either the wildcard token or a
// non-empty list of terms. Star is set only when the field source text is
// exactly "*"; a field that enumerates its entire domain is not a wildcard.
type FieldExpr struct {
	Star  bool
	Terms []Term
}

// An Expr is the parsed form of a cron expression, preserving the structure
// of the source text. It is produced by ParseExpr and consumed by Schedule
// compilation and by description rendering.
type Expr struct {
	Minutes     FieldExpr
	Hours       FieldExpr
	DaysOfMonth FieldExpr
	Months      FieldExpr
	DaysOfWeek  FieldExpr

	source string
}

// Schedule compiles the expression into its compact bit-set form.
func (e *Expr) Schedule() *Schedule {
	return &Schedule{
		expression:  e.source,
		minutes:     compileField(e.Minutes, minuteBounds),
		hours:       uint32(compileField(e.Hours, hourBounds)),
		daysOfMonth: uint32(compileField(e.DaysOfMonth, domBounds)),
		months:      uint16(compileField(e.Months, monthBounds)),
		daysOfWeek:  uint8(compileField(e.DaysOfWeek, dowBounds)),
		domStar:     e.DaysOfMonth.Star,
		dowStar:     e.DaysOfWeek.Star,
	}
}

// compileField reduces a field to a bit mask where bit i represents the
// domain value min+i.
func compileField(fe FieldExpr, b bounds) uint64 {
	if fe.Star {
		return rangeMask(b.min, b.max, b)
	}
	var mask uint64
	for _, t := range fe.Terms {
		switch t.Kind {
		case TermOne:
			mask |= b.bit(t.From)
		case TermRange:
			mask |= rangeMask(t.From, t.To, b)
		case TermStep:
			mask |= stepMask(t.From, t.To, t.Step, b)
		}
	}
	return mask
}
