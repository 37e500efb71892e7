package datemath

// Range is an inclusive calendar-date window. A nil bound means unbounded.
type Range struct {
	From *string
	To   *string
}

// IsZero reports whether neither bound is set.
func (r Range) IsZero() bool {
	return r.From == nil && r.To == nil
}
