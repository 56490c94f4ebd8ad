package todo

// Lists is the ordered collection of lists held in a session.
type Lists []*List

// FindByID returns the list with the given id or ErrListNotFound.
func (ls Lists) FindByID(id int) (*List, error) {
	for _, l := range ls {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, ErrListNotFound
}

// Append adds l to the end of the collection.
func (ls *Lists) Append(l *List) {
	*ls = append(*ls, l)
}

// RemoveByID removes the list with the given id. Removing an unknown id is a no-op.
func (ls *Lists) RemoveByID(id int) {
	kept := (*ls)[:0]
	for _, l := range *ls {
		if l.ID != id {
			kept = append(kept, l)
		}
	}
	*ls = kept
}

// Rename sets the name of the list with the given id. Unknown ids are ignored.
func (ls Lists) Rename(id int, name string) {
	if l, err := ls.FindByID(id); err == nil {
		l.Name = name
	}
}
