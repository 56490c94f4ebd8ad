package application

import (
	"fmt"
	"strings"

	"todolists/domain/session"
	"todolists/domain/todo"
	"todolists/logging"
)

// Flash messages shown after successful transitions.
const (
	MsgListCreated   = "The list has been created."
	MsgListUpdated   = "The list has been updated."
	MsgListDeleted   = "The list has been deleted."
	MsgAllCompleted  = "All todos were completed."
	MsgTodoAdded     = "The todo was added."
	MsgTodoDeleted   = "The todo has been deleted."
	MsgTodoUpdated   = "The todo has been updated."
	ListsPath        = "/lists"
	listPathTemplate = "/lists/%d"
)

// ListPath returns the detail path of a list.
func ListPath(id int) string {
	return fmt.Sprintf(listPathTemplate, id)
}

// TodoService holds the request transitions for lists and todos. Every method
// mutates only the state it is given and reports what to respond with; it
// performs no I/O, so callers own loading and saving the session.
type TodoService struct {
	logger *logging.Logger
}

// NewTodoService creates the todo transition service.
func NewTodoService() *TodoService {
	return &TodoService{
		logger: logging.Default().WithComponent("todo_service"),
	}
}

// Home sends visitors to the list collection.
func (s *TodoService) Home(_ *session.State) Outcome {
	return Redirect(ListsPath)
}

// ShowLists renders the list collection.
func (s *TodoService) ShowLists(_ *session.State) Outcome {
	return Render(ViewLists, ViewData{})
}

// NewListForm renders the empty list creation form.
func (s *TodoService) NewListForm(_ *session.State) Outcome {
	return Render(ViewNewList, ViewData{})
}

// ShowList renders a single list.
func (s *TodoService) ShowList(st *session.State, listID int) Outcome {
	if _, err := st.Lists.FindByID(listID); err != nil {
		return s.listNotFound(st, listID)
	}
	return Render(ViewList, ViewData{ListID: listID})
}

// EditListForm renders the rename form of a list.
func (s *TodoService) EditListForm(st *session.State, listID int) Outcome {
	list, err := st.Lists.FindByID(listID)
	if err != nil {
		return s.listNotFound(st, listID)
	}
	return Render(ViewEditList, ViewData{ListID: listID, Input: list.Name})
}

// CreateList validates and appends a new list.
func (s *TodoService) CreateList(st *session.State, rawName string) Outcome {
	name := strings.TrimSpace(rawName)

	if err := todo.ValidateListName(name, st.Lists, 0); err != nil {
		st.SetError(err.Error())
		return Render(ViewNewList, ViewData{Input: name})
	}

	list := st.AddList(name)
	s.logger.Debug("List created", "list_id", list.ID)
	st.SetSuccess(MsgListCreated)
	return Redirect(ListsPath)
}

// RenameList validates and applies a new name to an existing list. The list
// itself is excluded from the uniqueness check.
func (s *TodoService) RenameList(st *session.State, listID int, rawName string) Outcome {
	if _, err := st.Lists.FindByID(listID); err != nil {
		return s.listNotFound(st, listID)
	}

	name := strings.TrimSpace(rawName)
	if err := todo.ValidateListName(name, st.Lists, listID); err != nil {
		st.SetError(err.Error())
		return Render(ViewEditList, ViewData{ListID: listID, Input: name})
	}

	st.Lists.Rename(listID, name)
	st.SetSuccess(MsgListUpdated)
	return Redirect(ListPath(listID))
}

// DeleteList removes a list. Deleting an unknown list still succeeds.
// Asynchronous requests get a bare 204 and no flash.
func (s *TodoService) DeleteList(st *session.State, listID int, async bool) Outcome {
	st.Lists.RemoveByID(listID)
	s.logger.Debug("List deleted", "list_id", listID, "async", async)

	if async {
		return NoContent()
	}
	st.SetSuccess(MsgListDeleted)
	return Redirect(ListsPath)
}

// CompleteAll marks every todo of a list completed.
func (s *TodoService) CompleteAll(st *session.State, listID int) Outcome {
	list, err := st.Lists.FindByID(listID)
	if err != nil {
		return s.listNotFound(st, listID)
	}

	list.Items.CompleteAll()
	st.SetSuccess(MsgAllCompleted)
	return Redirect(ListPath(listID))
}

// AddItem validates and appends a todo to a list.
func (s *TodoService) AddItem(st *session.State, listID int, rawName string) Outcome {
	list, err := st.Lists.FindByID(listID)
	if err != nil {
		return s.listNotFound(st, listID)
	}

	name := strings.TrimSpace(rawName)
	if err := todo.ValidateItemName(name); err != nil {
		st.SetError(err.Error())
		return Render(ViewList, ViewData{ListID: listID, Input: name})
	}

	item := list.AddItem(name)
	s.logger.Debug("Todo added", "list_id", listID, "todo_id", item.ID)
	st.SetSuccess(MsgTodoAdded)
	return Redirect(ListPath(listID))
}

// DeleteItem removes a todo from a list. Deleting an unknown todo still
// succeeds; an unknown list does not.
func (s *TodoService) DeleteItem(st *session.State, listID, itemID int, async bool) Outcome {
	list, err := st.Lists.FindByID(listID)
	if err != nil {
		return s.listNotFound(st, listID)
	}

	list.Items.RemoveByID(itemID)

	if async {
		return NoContent()
	}
	st.SetSuccess(MsgTodoDeleted)
	return Redirect(ListPath(listID))
}

// UpdateItemStatus sets the completion flag of a todo. Only the literal
// "true" marks it completed.
func (s *TodoService) UpdateItemStatus(st *session.State, listID, itemID int, completed string) Outcome {
	list, err := st.Lists.FindByID(listID)
	if err != nil {
		return s.listNotFound(st, listID)
	}

	if _, err := list.Items.FindByID(itemID); err != nil {
		return s.itemNotFound(st, listID, itemID)
	}

	list.Items.SetCompleted(itemID, completed == "true")
	st.SetSuccess(MsgTodoUpdated)
	return Redirect(ListPath(listID))
}

func (s *TodoService) listNotFound(st *session.State, listID int) Outcome {
	s.logger.Debug("List lookup failed", "list_id", listID)
	st.SetError(capitalize(todo.ErrListNotFound))
	return Redirect(ListsPath)
}

func (s *TodoService) itemNotFound(st *session.State, listID, itemID int) Outcome {
	s.logger.Debug("Todo lookup failed", "list_id", listID, "todo_id", itemID)
	st.SetError(capitalize(todo.ErrItemNotFound))
	return Redirect(ListPath(listID))
}

// capitalize turns a lowercase sentinel error into a flash sentence.
func capitalize(err error) string {
	msg := err.Error()
	if msg == "" {
		return msg
	}
	return strings.ToUpper(msg[:1]) + msg[1:] + "."
}
