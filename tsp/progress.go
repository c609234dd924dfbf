package tsp

// reporter forwards distances to a ProgressFunc only when they are strictly
// below everything forwarded before. Both LocalSearch acceptances and VNS
// best updates go through one reporter per run, so the sink observes a
// strictly decreasing sequence with no repeats.
type reporter struct {
	last float64
	sink ProgressFunc
}

func newReporter(sink ProgressFunc) *reporter {
	return &reporter{last: infDistance, sink: sink}
}

// report forwards d if it improves on the last forwarded value.
func (r *reporter) report(d float64) {
	if !(d < r.last) {
		return
	}
	r.last = d
	if r.sink != nil {
		r.sink(d)
	}
}
