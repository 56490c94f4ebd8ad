package handlers

import (
	"errors"
	"net/http"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"todolists/application"
	"todolists/domain/session"
	"todolists/infrastructure/sessions"
	"todolists/interfaces/web/presenters"
	"todolists/interfaces/web/templates/pages"
	"todolists/logging"
)

var errNoSession = errors.New("request has no session")

// TodoHandlers serves the list and todo pages on top of the session bound by
// sessions.Manager.Middleware.
type TodoHandlers struct {
	service   *application.TodoService
	sessions  *sessions.Manager
	presenter *presenters.ListPresenter
	logger    *logging.Logger
}

// NewTodoHandlers creates the list and todo handlers.
func NewTodoHandlers(
	service *application.TodoService,
	manager *sessions.Manager,
	presenter *presenters.ListPresenter,
) *TodoHandlers {
	return &TodoHandlers{
		service:   service,
		sessions:  manager,
		presenter: presenter,
		logger:    logging.Default().WithComponent("todo_handlers"),
	}
}

// RegisterRoutes mounts every list and todo route on r.
func (h *TodoHandlers) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Home)

	r.Get("/lists", h.ShowLists)
	r.Get("/lists/new", h.NewListForm)
	r.Post("/lists", h.CreateList)

	r.Get("/lists/{id}", h.ShowList)
	r.Get("/lists/{id}/edit", h.EditListForm)
	r.Post("/lists/{id}", h.RenameList)
	r.Post("/lists/{id}/complete", h.CompleteAll)
	r.Post("/lists/{id}/destroy", h.DeleteList)

	r.Post("/lists/{list_id}/todos", h.AddItem)
	r.Post("/lists/{list_id}/todos/{id}/delete", h.DeleteItem)
	r.Post("/lists/{list_id}/todos/{id}", h.UpdateItemStatus)
}

// Home handles GET /.
func (h *TodoHandlers) Home(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, h.service.Home)
}

// ShowLists handles GET /lists.
func (h *TodoHandlers) ShowLists(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, h.service.ShowLists)
}

// NewListForm handles GET /lists/new.
func (h *TodoHandlers) NewListForm(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, h.service.NewListForm)
}

// CreateList handles POST /lists.
func (h *TodoHandlers) CreateList(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, func(st *session.State) application.Outcome {
		return h.service.CreateList(st, r.FormValue("list_name"))
	})
}

// ShowList handles GET /lists/{id}.
func (h *TodoHandlers) ShowList(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, func(st *session.State) application.Outcome {
		return h.service.ShowList(st, pathID(r, "id"))
	})
}

// EditListForm handles GET /lists/{id}/edit.
func (h *TodoHandlers) EditListForm(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, func(st *session.State) application.Outcome {
		return h.service.EditListForm(st, pathID(r, "id"))
	})
}

// RenameList handles POST /lists/{id}.
func (h *TodoHandlers) RenameList(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, func(st *session.State) application.Outcome {
		return h.service.RenameList(st, pathID(r, "id"), r.FormValue("list_name"))
	})
}

// DeleteList handles POST /lists/{id}/destroy.
func (h *TodoHandlers) DeleteList(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, func(st *session.State) application.Outcome {
		return h.service.DeleteList(st, pathID(r, "id"), IsAsyncRequest(r))
	})
}

// CompleteAll handles POST /lists/{id}/complete.
func (h *TodoHandlers) CompleteAll(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, func(st *session.State) application.Outcome {
		return h.service.CompleteAll(st, pathID(r, "id"))
	})
}

// AddItem handles POST /lists/{list_id}/todos.
func (h *TodoHandlers) AddItem(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, func(st *session.State) application.Outcome {
		return h.service.AddItem(st, pathID(r, "list_id"), r.FormValue("todo"))
	})
}

// DeleteItem handles POST /lists/{list_id}/todos/{id}/delete.
func (h *TodoHandlers) DeleteItem(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, func(st *session.State) application.Outcome {
		return h.service.DeleteItem(st, pathID(r, "list_id"), pathID(r, "id"), IsAsyncRequest(r))
	})
}

// UpdateItemStatus handles POST /lists/{list_id}/todos/{id}.
func (h *TodoHandlers) UpdateItemStatus(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, func(st *session.State) application.Outcome {
		return h.service.UpdateItemStatus(st, pathID(r, "list_id"), pathID(r, "id"), r.FormValue("completed"))
	})
}

// handle runs a transition against the request's session, persists the
// result and writes the response. State is always saved before anything is
// written, so the next request observes the mutation and the flash.
func (h *TodoHandlers) handle(w http.ResponseWriter, r *http.Request, transition func(*session.State) application.Outcome) {
	ctx := r.Context()
	sess, ok := sessions.FromContext(ctx)
	if !ok {
		h.fail(w, r, errNoSession)
		return
	}

	out := transition(sess.State)

	switch out.Kind {
	case application.OutcomeRender:
		// The flash is shown by this render, so it is consumed before saving.
		flash := h.presenter.ToFlashVM(sess.State.TakeFlash())
		component, err := h.view(sess.State, out, flash)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		if err := h.sessions.Save(ctx, sess); err != nil {
			h.fail(w, r, err)
			return
		}
		RenderResponse(ctx, w, out.Status, component)

	case application.OutcomeRedirect:
		if err := h.sessions.Save(ctx, sess); err != nil {
			h.fail(w, r, err)
			return
		}
		http.Redirect(w, r, out.Path, out.Status)

	default:
		if err := h.sessions.Save(ctx, sess); err != nil {
			h.fail(w, r, err)
			return
		}
		w.WriteHeader(out.Status)
	}
}

func (h *TodoHandlers) view(st *session.State, out application.Outcome, flash *presenters.FlashVM) (templ.Component, error) {
	switch out.View {
	case application.ViewLists:
		return pages.ListsPage(flash, h.presenter.ToListsPageVM(st.Lists)), nil
	case application.ViewNewList:
		return pages.NewListPage(flash, h.presenter.ToNewListVM(out.Data.Input)), nil
	case application.ViewList:
		list, err := st.Lists.FindByID(out.Data.ListID)
		if err != nil {
			return nil, err
		}
		return pages.ListPage(flash, h.presenter.ToListPageVM(list, out.Data.Input)), nil
	case application.ViewEditList:
		list, err := st.Lists.FindByID(out.Data.ListID)
		if err != nil {
			return nil, err
		}
		return pages.EditListPage(flash, h.presenter.ToEditListVM(list, out.Data.Input)), nil
	default:
		return nil, errors.New("unknown view: " + string(out.View))
	}
}

func (h *TodoHandlers) fail(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.WithContext(r.Context()).Error("Request failed", "path", r.URL.Path, "error", err)
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}
