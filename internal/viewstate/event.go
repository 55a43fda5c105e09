package viewstate

// EventKind identifies what happened.
type EventKind int

const (
	EventMounted EventKind = iota
	EventFetchSucceeded
	EventFetchFailed
	EventOpenCreate
	EventOpenEdit
	EventCancel
	EventSubmitStarted
	EventValidationFailed
	EventCreated
	EventUpdated
	EventWriteFailed
	EventRequestDelete
	EventDeleteConfirmed
	EventDeleted
	EventDeleteFailed
	EventDismissNotice
)

// Event is the input of Reduce. Only the fields relevant to Kind are set.
type Event[T Record] struct {
	Kind    EventKind
	HasUser bool
	Items   []T
	Record  *T
	ID      string
	Message string
	Fields  map[string]string
}

func Mounted[T Record](hasUser bool) Event[T] { return Event[T]{Kind: EventMounted, HasUser: hasUser} }

func FetchSucceeded[T Record](items []T) Event[T] {
	return Event[T]{Kind: EventFetchSucceeded, Items: items}
}

func FetchFailed[T Record](message string) Event[T] {
	return Event[T]{Kind: EventFetchFailed, Message: message}
}

func OpenCreate[T Record]() Event[T] { return Event[T]{Kind: EventOpenCreate} }

func OpenEdit[T Record](record T) Event[T] { return Event[T]{Kind: EventOpenEdit, Record: &record} }

func Cancel[T Record]() Event[T] { return Event[T]{Kind: EventCancel} }

func SubmitStarted[T Record]() Event[T] { return Event[T]{Kind: EventSubmitStarted} }

func ValidationFailed[T Record](fields map[string]string) Event[T] {
	return Event[T]{Kind: EventValidationFailed, Fields: fields}
}

// Created carries the stored record; message, when set, becomes a success notice.
func Created[T Record](record T, message string) Event[T] {
	return Event[T]{Kind: EventCreated, Record: &record, Message: message}
}

func Updated[T Record](record T, message string) Event[T] {
	return Event[T]{Kind: EventUpdated, Record: &record, Message: message}
}

func WriteFailed[T Record](message string) Event[T] {
	return Event[T]{Kind: EventWriteFailed, Message: message}
}

func RequestDelete[T Record](record T) Event[T] {
	return Event[T]{Kind: EventRequestDelete, Record: &record}
}

func DeleteConfirmed[T Record]() Event[T] { return Event[T]{Kind: EventDeleteConfirmed} }

func Deleted[T Record](id, message string) Event[T] {
	return Event[T]{Kind: EventDeleted, ID: id, Message: message}
}

func DeleteFailed[T Record](message string) Event[T] {
	return Event[T]{Kind: EventDeleteFailed, Message: message}
}

func DismissNotice[T Record]() Event[T] { return Event[T]{Kind: EventDismissNotice} }
