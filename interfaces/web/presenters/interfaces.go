package presenters

import (
	"todolists/domain/session"
	"todolists/domain/todo"
)

// ListPresenterInterface defines the contract for list presentation logic.
type ListPresenterInterface interface {
	ToFlashVM(f *session.Flash) *FlashVM
	ToListsPageVM(lists todo.Lists) *ListsPageVM
	ToListPageVM(list *todo.List, input string) *ListPageVM
	ToEditListVM(list *todo.List, input string) *EditListVM
	ToNewListVM(input string) *NewListVM
}

// Ensure ListPresenter implements the interface.
var _ ListPresenterInterface = (*ListPresenter)(nil)
