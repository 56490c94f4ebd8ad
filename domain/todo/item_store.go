package todo

// Items is the ordered collection of todos within a list.
type Items []*Item

// FindByID returns the item with the given id or ErrItemNotFound.
func (is Items) FindByID(id int) (*Item, error) {
	for _, i := range is {
		if i.ID == id {
			return i, nil
		}
	}
	return nil, ErrItemNotFound
}

// Append adds i to the end of the collection.
func (is *Items) Append(i *Item) {
	*is = append(*is, i)
}

// RemoveByID removes the item with the given id. Removing an unknown id is a no-op.
func (is *Items) RemoveByID(id int) {
	kept := (*is)[:0]
	for _, i := range *is {
		if i.ID != id {
			kept = append(kept, i)
		}
	}
	*is = kept
}

// SetCompleted updates the completion flag of the item with the given id.
// Unknown ids are ignored.
func (is Items) SetCompleted(id int, completed bool) {
	if i, err := is.FindByID(id); err == nil {
		i.Completed = completed
	}
}

// CompleteAll marks every item completed.
func (is Items) CompleteAll() {
	for _, i := range is {
		i.Completed = true
	}
}
