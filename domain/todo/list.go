// Package todo holds the list and todo item model: identifier allocation,
// name validation and the ordered collections kept in a session.
package todo

// List is a named, ordered collection of todo items.
type List struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Items Items  `json:"items"`
	// LastItemID is the highest item id ever assigned in this list.
	LastItemID int `json:"last_item_id"`
}

// GetID implements Identified.
func (l *List) GetID() int { return l.ID }

// Item is a single todo entry within a list.
type Item struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

// GetID implements Identified.
func (i *Item) GetID() int { return i.ID }

// AddItem allocates the next item id, appends a new incomplete item and
// returns it. The name must already be validated.
func (l *List) AddItem(name string) *Item {
	item := &Item{ID: NextID(l.Items, l.LastItemID), Name: name}
	l.Items.Append(item)
	l.LastItemID = item.ID
	return item
}
