package parallel

// Range is a half-open index interval [Lo, Hi).
type Range struct {
	Lo, Hi int
}

// Len returns the number of indices in r (never negative).
func (r Range) Len() int {
	if r.Hi <= r.Lo {
		return 0
	}

	return r.Hi - r.Lo
}

// Empty reports whether r holds no index.
func (r Range) Empty() bool { return r.Len() == 0 }

// Partition splits [lo, hi) into exactly units contiguous ranges.
//
// With count = hi-lo, every unit receives count/units indices and the first
// count%units units receive one more, in ascending order. Trailing ranges
// are empty when count < units. units < 1 is treated as 1; hi < lo yields
// empty ranges anchored at lo.
//
// The formula is fixed: floating-point summation order inside a kernel
// depends on it, so all backends must agree on it.
func Partition(lo, hi, units int) []Range {
	if units < 1 {
		units = 1
	}
	count := hi - lo
	if count < 0 {
		count = 0
	}
	per := count / units
	extra := count % units

	parts := make([]Range, units)
	start := lo
	for t := 0; t < units; t++ {
		size := per
		if t < extra {
			size++
		}
		parts[t] = Range{Lo: start, Hi: start + size}
		start += size
	}

	return parts
}
