package recurrence

import "time"

// Occurrences returns every occurrence of rec between start and end that also
// falls inside the query window [winStart, winEnd], in ascending order. The
// walk begins at start, advances one period at a time, and stops as soon as a
// candidate passes end or winEnd, so the result is finite for any validated
// input. A None recurrence occurs exactly once, at start, if start is inside
// the window.
//
// The function is stateless: identical inputs always yield identical output.
func Occurrences(rec Type, stride int, start, end, winStart, winEnd time.Time) []time.Time {
	unit, ok := rec.PeriodUnit()
	if !ok {
		if !start.Before(winStart) && !start.After(winEnd) {
			return []time.Time{start}
		}
		return nil
	}

	var out []time.Time
	for cand := start; !cand.After(end) && !cand.After(winEnd); cand = unit.Add(cand, stride) {
		if !cand.Before(winStart) {
			out = append(out, cand)
		}
	}
	return out
}
