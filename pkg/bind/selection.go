package bind

// ToRange converts a native selection bound pair into the selected index
// sequence. A min of -1 is the native "no selection" sentinel and yields an
// empty, non-nil slice, as does max < min.
func ToRange(min, max int) []int {
	if min < 0 || max < min {
		return []int{}
	}
	out := make([]int, 0, max-min+1)
	for i := min; i <= max; i++ {
		out = append(out, i)
	}
	return out
}
