package todo

import (
	"fmt"
	"unicode/utf8"
)

const (
	// MinNameLength and MaxNameLength bound list and todo names, in characters.
	MinNameLength = 1
	MaxNameLength = 100
)

// Subject names the kind of entity a validation error refers to.
type Subject string

const (
	SubjectList Subject = "list"
	SubjectTodo Subject = "todo"
)

// ValidationError is a user-correctable input problem. Its message is
// suitable for showing directly to the user.
type ValidationError struct {
	Kind    error
	Subject Subject
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case ErrDuplicateName:
		return fmt.Sprintf("The %s name must be unique.", e.Subject)
	default:
		return fmt.Sprintf("The %s name must be between %d and %d characters.", e.Subject, MinNameLength, MaxNameLength)
	}
}

// Unwrap exposes the kind so errors.Is(err, ErrNameLength) works.
func (e *ValidationError) Unwrap() error {
	return e.Kind
}

// ValidateListName checks a trimmed list name against the length bounds and
// the names of existing lists. The list with id exceptID is ignored for the
// uniqueness check so a list can be saved under its current name; pass 0 when
// creating. Length is checked first.
func ValidateListName(name string, existing Lists, exceptID int) error {
	if !validLength(name) {
		return &ValidationError{Kind: ErrNameLength, Subject: SubjectList}
	}
	for _, l := range existing {
		if l.ID != exceptID && l.Name == name {
			return &ValidationError{Kind: ErrDuplicateName, Subject: SubjectList}
		}
	}
	return nil
}

// ValidateItemName checks a trimmed todo name against the length bounds.
func ValidateItemName(name string) error {
	if !validLength(name) {
		return &ValidationError{Kind: ErrNameLength, Subject: SubjectTodo}
	}
	return nil
}

func validLength(name string) bool {
	n := utf8.RuneCountInString(name)
	return n >= MinNameLength && n <= MaxNameLength
}
