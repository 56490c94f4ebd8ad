// Package presenters transforms domain data into UI-ready view models.
package presenters

import (
	"fmt"
	"sort"

	"todolists/application"
	"todolists/domain/session"
	"todolists/domain/todo"
)

// FlashVM is a flash message ready for display.
type FlashVM struct {
	Kind    string
	Message string
}

// ListSummary is one row of the list collection page.
type ListSummary struct {
	ID         int
	Name       string
	Path       string
	Remaining  int
	Total      int
	Complete   bool
	CSSClass   string
	CountLabel string
}

// ItemVM is one todo row of the list page.
type ItemVM struct {
	ID          int
	Name        string
	Completed   bool
	CSSClass    string
	TogglePath  string
	ToggleValue string
	DeletePath  string
}

// ListsPageVM is the view model for the list collection page.
type ListsPageVM struct {
	Lists []ListSummary
}

// ListPageVM is the view model for a single list page.
type ListPageVM struct {
	List         ListSummary
	Items        []ItemVM
	ItemInput    string
	AddItemPath  string
	EditPath     string
	CompletePath string
}

// EditListVM is the view model for the rename form.
type EditListVM struct {
	ID          int
	CurrentName string
	Input       string
	UpdatePath  string
	DestroyPath string
	BackPath    string
}

// NewListVM is the view model for the creation form.
type NewListVM struct {
	Input      string
	CreatePath string
}

// ListPresenter derives display data, completion styling and ordering for
// lists and todos.
type ListPresenter struct{}

// NewListPresenter creates a list presenter.
func NewListPresenter() *ListPresenter {
	return &ListPresenter{}
}

// ToFlashVM converts a taken flash message. Returns nil when there is none.
func (p *ListPresenter) ToFlashVM(f *session.Flash) *FlashVM {
	if f == nil {
		return nil
	}
	return &FlashVM{Kind: string(f.Kind), Message: f.Message}
}

// ToListsPageVM lists incomplete lists first, then complete ones, each group
// in creation order.
func (p *ListPresenter) ToListsPageVM(lists todo.Lists) *ListsPageVM {
	ordered := p.SortLists(lists)
	vm := &ListsPageVM{Lists: make([]ListSummary, len(ordered))}
	for i, l := range ordered {
		vm.Lists[i] = p.summary(l)
	}
	return vm
}

// ToListPageVM builds the single list page. input pre-fills the todo form
// after a rejected submission.
func (p *ListPresenter) ToListPageVM(list *todo.List, input string) *ListPageVM {
	ordered := p.SortItems(list.Items)
	items := make([]ItemVM, len(ordered))
	for i, item := range ordered {
		items[i] = p.item(list.ID, item)
	}

	base := application.ListPath(list.ID)
	return &ListPageVM{
		List:         p.summary(list),
		Items:        items,
		ItemInput:    input,
		AddItemPath:  base + "/todos",
		EditPath:     base + "/edit",
		CompletePath: base + "/complete",
	}
}

// ToEditListVM builds the rename form. input is the value to show in the
// name field; the heading keeps the stored name.
func (p *ListPresenter) ToEditListVM(list *todo.List, input string) *EditListVM {
	base := application.ListPath(list.ID)
	return &EditListVM{
		ID:          list.ID,
		CurrentName: list.Name,
		Input:       input,
		UpdatePath:  base,
		DestroyPath: base + "/destroy",
		BackPath:    base,
	}
}

// ToNewListVM builds the creation form.
func (p *ListPresenter) ToNewListVM(input string) *NewListVM {
	return &NewListVM{Input: input, CreatePath: application.ListsPath}
}

// SortLists returns lists with incomplete ones first, keeping relative order.
func (p *ListPresenter) SortLists(lists todo.Lists) todo.Lists {
	out := make(todo.Lists, len(lists))
	copy(out, lists)
	sort.SliceStable(out, func(i, j int) bool {
		return !out[i].IsComplete() && out[j].IsComplete()
	})
	return out
}

// SortItems returns items with incomplete ones first, keeping relative order.
func (p *ListPresenter) SortItems(items todo.Items) todo.Items {
	out := make(todo.Items, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return !out[i].Completed && out[j].Completed
	})
	return out
}

func (p *ListPresenter) summary(l *todo.List) ListSummary {
	return ListSummary{
		ID:         l.ID,
		Name:       l.Name,
		Path:       application.ListPath(l.ID),
		Remaining:  l.Remaining(),
		Total:      l.Count(),
		Complete:   l.IsComplete(),
		CSSClass:   completeClass(l.IsComplete()),
		CountLabel: fmt.Sprintf("%d / %d", l.Remaining(), l.Count()),
	}
}

func (p *ListPresenter) item(listID int, i *todo.Item) ItemVM {
	toggle := "true"
	if i.Completed {
		toggle = "false"
	}
	path := fmt.Sprintf("%s/todos/%d", application.ListPath(listID), i.ID)
	return ItemVM{
		ID:          i.ID,
		Name:        i.Name,
		Completed:   i.Completed,
		CSSClass:    completeClass(i.Completed),
		TogglePath:  path,
		ToggleValue: toggle,
		DeletePath:  path + "/delete",
	}
}

func completeClass(complete bool) string {
	if complete {
		return "complete"
	}
	return ""
}
