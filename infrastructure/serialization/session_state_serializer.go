package serialization

import (
	"encoding/json"
	"fmt"

	"todolists/domain/session"
	"todolists/domain/todo"
)

// SessionStateSerializer handles JSON serialization/deserialization of session state.
type SessionStateSerializer struct{}

// NewSessionStateSerializer creates a new session state serializer.
func NewSessionStateSerializer() *SessionStateSerializer {
	return &SessionStateSerializer{}
}

// SerializeState converts session state to a JSON string.
func (s *SessionStateSerializer) SerializeState(state *session.State) (string, error) {
	if state == nil {
		state = session.New()
	}
	data, err := json.Marshal(state)
	if err != nil {
		return "", fmt.Errorf("failed to marshal session state: %w", err)
	}
	return string(data), nil
}

// DeserializeState converts a JSON string to session state. An empty string
// yields an empty session.
func (s *SessionStateSerializer) DeserializeState(jsonStr string) (*session.State, error) {
	if jsonStr == "" {
		return session.New(), nil
	}

	var state session.State
	if err := json.Unmarshal([]byte(jsonStr), &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session state: %w", err)
	}

	// JSON null decodes to nil slices; views and appends expect empty collections.
	if state.Lists == nil {
		state.Lists = todo.Lists{}
	}
	for _, l := range state.Lists {
		if l.Items == nil {
			l.Items = todo.Items{}
		}
	}

	return &state, nil
}
