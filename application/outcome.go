package application

import "net/http"

// OutcomeKind is the shape of a transition result.
type OutcomeKind int

const (
	// OutcomeRender renders a named view with bound data and the pending flash.
	OutcomeRender OutcomeKind = iota
	// OutcomeRedirect sends the client to another path.
	OutcomeRedirect
	// OutcomeStatus replies with a bare status code and no body.
	OutcomeStatus
)

// View names the pages a transition can ask to render.
type View string

const (
	ViewLists    View = "lists"
	ViewNewList  View = "new_list"
	ViewList     View = "list"
	ViewEditList View = "edit_list"
)

// ViewData is the data bound to a rendered view. Only the fields relevant to
// View are set.
type ViewData struct {
	ListID int
	// Input is a rejected form value to pre-fill on re-render.
	Input string
}

// Outcome is what a transition asks the transport layer to do.
type Outcome struct {
	Kind   OutcomeKind
	View   View
	Data   ViewData
	Path   string
	Status int
}

// Render builds a render outcome.
func Render(view View, data ViewData) Outcome {
	return Outcome{Kind: OutcomeRender, View: view, Data: data, Status: http.StatusOK}
}

// Redirect builds a redirect outcome. 303 makes browsers follow POSTs with GET.
func Redirect(path string) Outcome {
	return Outcome{Kind: OutcomeRedirect, Path: path, Status: http.StatusSeeOther}
}

// NoContent builds a bare success outcome used for asynchronous deletes.
func NoContent() Outcome {
	return Outcome{Kind: OutcomeStatus, Status: http.StatusNoContent}
}
