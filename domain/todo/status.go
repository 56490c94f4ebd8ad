package todo

// Count returns the number of items in the list.
func (l *List) Count() int {
	return len(l.Items)
}

// Remaining returns the number of items not yet completed.
func (l *List) Remaining() int {
	n := 0
	for _, i := range l.Items {
		if !i.Completed {
			n++
		}
	}
	return n
}

// IsComplete reports whether the list has at least one item and every item
// is completed. An empty list is never complete.
func (l *List) IsComplete() bool {
	return l.Count() > 0 && l.Remaining() == 0
}
