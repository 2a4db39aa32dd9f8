package shared

// Filter carries optional list constraints shared by repository
// implementations. Zero values mean "no constraint".
type Filter struct {
	Limit   int
	Offset  int
	OrderBy string
	// Conditions maps column names to exact-match values.
	Conditions map[string]any
}

// NewFilter returns an empty filter
func NewFilter() Filter {
	return Filter{Conditions: make(map[string]any)}
}

// WithCondition adds an exact-match condition
func (f Filter) WithCondition(column string, value any) Filter {
	if f.Conditions == nil {
		f.Conditions = make(map[string]any)
	}
	f.Conditions[column] = value
	return f
}

// WithPagination sets limit and offset
func (f Filter) WithPagination(limit, offset int) Filter {
	f.Limit = limit
	f.Offset = offset
	return f
}
