// Package session defines the per-user state that request handlers operate on.
package session

import "todolists/domain/todo"

// FlashKind distinguishes success notices from error notices.
type FlashKind string

const (
	FlashSuccess FlashKind = "success"
	FlashError   FlashKind = "error"
)

// Flash is a one-shot message shown on the next rendered view only.
type Flash struct {
	Kind    FlashKind `json:"kind"`
	Message string    `json:"message"`
}

// State is everything a single session holds: its lists and at most one
// pending flash message. A zero State is an empty, usable session.
type State struct {
	Lists todo.Lists `json:"lists"`
	// LastListID is the highest list id ever assigned in this session.
	LastListID int    `json:"last_list_id"`
	Flash      *Flash `json:"flash,omitempty"`
}

// New returns an empty session state.
func New() *State {
	return &State{Lists: todo.Lists{}}
}

// AddList allocates the next list id, appends an empty list and returns it.
// The name must already be validated.
func (s *State) AddList(name string) *todo.List {
	list := &todo.List{
		ID:    todo.NextID(s.Lists, s.LastListID),
		Name:  name,
		Items: todo.Items{},
	}
	s.Lists.Append(list)
	s.LastListID = list.ID
	return list
}

// SetSuccess replaces any pending flash with a success message.
func (s *State) SetSuccess(msg string) {
	s.Flash = &Flash{Kind: FlashSuccess, Message: msg}
}

// SetError replaces any pending flash with an error message.
func (s *State) SetError(msg string) {
	s.Flash = &Flash{Kind: FlashError, Message: msg}
}

// TakeFlash returns the pending flash, if any, and clears it.
func (s *State) TakeFlash() *Flash {
	f := s.Flash
	s.Flash = nil
	return f
}
