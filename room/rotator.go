// room/rotator.go
package room

// Rotator picks the next player in insertion order, wrapping after the
// last. It recomputes against the live member list on every call instead of
// holding an iterator, so members leaving between calls never strand it.
type Rotator struct {
	pos int
}

// Next returns the member id following current within order. When current
// has already left the room, the rotator falls back to its last position,
// clamped to the list that still exists.
func (r *Rotator) Next(order []string, current string) string {
	if len(order) == 0 {
		return ""
	}

	found := -1
	for i, id := range order {
		if id == current {
			found = i
			break
		}
	}

	if found >= 0 {
		r.pos = (found + 1) % len(order)
	} else {
		r.pos = r.pos % len(order)
	}
	return order[r.pos]
}
