package date

// Range represents a range of dates, boundaries included.
type Range struct{ From, To Date }

// NewRange return the period containing d.
func NewRange(d Date, period Period) Range {
	return Range{From: d.StartOf(period), To: d.EndOf(period)}
}

// LastDays returns the range of the n days before today and today.
func LastDays(today Date, n int) Range { return Range{From: today.Add(-n), To: today} }

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// Days lists every day of the range in ascending order.
func (r Range) Days() []Date { return Between(r.From, r.To) }

// Len is the number of days in the range, 0 for an inverted range.
func (r Range) Len() int { return len(r.Days()) }

func (r Range) String() string {
	if r.From == r.To {
		return r.From.String()
	}
	return r.From.String() + ".." + r.To.String()
}
