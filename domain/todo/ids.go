package todo

// Identified is implemented by entities that carry a collection-scoped integer id.
type Identified interface {
	GetID() int
}

// NextID returns the identifier to assign to the next entity inserted into
// entries. It is one past the larger of the highest current id and highWater,
// the largest id ever handed out by the collection. Passing highWater keeps
// ids from being reused after the newest entity is deleted.
func NextID[T Identified](entries []T, highWater int) int {
	maxID := highWater
	for _, e := range entries {
		if id := e.GetID(); id > maxID {
			maxID = id
		}
	}
	return maxID + 1
}
