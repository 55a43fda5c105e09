// Package viewstate holds the list-page state machine shared by the
// dashboard pages: fetch on mount, one dialog at a time, and local list
// patching after a successful write.
package viewstate

// Record is anything with a stable identifier.
type Record interface {
	RecordID() string
}

// Phase is the loading phase of a page.
type Phase int

const (
	PhaseFetching Phase = iota
	PhaseLoaded
	PhaseSubmitting
)

func (p Phase) String() string {
	switch p {
	case PhaseFetching:
		return "fetching"
	case PhaseLoaded:
		return "loaded"
	case PhaseSubmitting:
		return "submitting"
	default:
		return "unknown"
	}
}

// DialogKind tags the Dialog union.
type DialogKind int

const (
	DialogClosed DialogKind = iota
	DialogEditing
	DialogConfirmingDelete
)

// Dialog is the single dialog a page can show. In DialogEditing a nil Record
// means a new record is being created.
type Dialog[T Record] struct {
	Kind   DialogKind
	Record *T
}

// Closed returns the closed dialog.
func Closed[T Record]() Dialog[T] { return Dialog[T]{Kind: DialogClosed} }

// Editing opens the form dialog; pass nil to create.
func Editing[T Record](record *T) Dialog[T] { return Dialog[T]{Kind: DialogEditing, Record: record} }

// ConfirmingDelete asks for confirmation before deleting record.
func ConfirmingDelete[T Record](record T) Dialog[T] {
	return Dialog[T]{Kind: DialogConfirmingDelete, Record: &record}
}

// IsCreate reports whether the dialog is the empty create form.
func (d Dialog[T]) IsCreate() bool { return d.Kind == DialogEditing && d.Record == nil }

// NoticeLevel is the severity of a transient notification.
type NoticeLevel int

const (
	NoticeSuccess NoticeLevel = iota
	NoticeError
)

// Notice is a transient notification shown until dismissed.
type Notice struct {
	Level   NoticeLevel
	Message string
}

// State is the whole view state of one list page.
type State[T Record] struct {
	Phase       Phase
	Items       []T
	Dialog      Dialog[T]
	Notice      *Notice
	FieldErrors map[string]string
}

// Initial is the state before mount: fetching, no items.
func Initial[T Record]() State[T] {
	return State[T]{Phase: PhaseFetching, Items: []T{}, Dialog: Closed[T]()}
}

// Find returns the item with id.
func (s State[T]) Find(id string) (T, bool) {
	for _, item := range s.Items {
		if item.RecordID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}
