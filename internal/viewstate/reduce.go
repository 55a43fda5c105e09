package viewstate

// Reduce returns the state after ev. It never mutates s.Items; events that do
// not apply to the current state return s unchanged.
func Reduce[T Record](s State[T], ev Event[T]) State[T] {
	switch ev.Kind {
	case EventMounted:
		if !ev.HasUser {
			return State[T]{Phase: PhaseLoaded, Items: []T{}, Dialog: Closed[T]()}
		}
		return Initial[T]()

	case EventFetchSucceeded:
		if s.Phase != PhaseFetching {
			return s
		}
		s.Phase = PhaseLoaded
		s.Items = clone(ev.Items)
		return s

	case EventFetchFailed:
		if s.Phase != PhaseFetching {
			return s
		}
		s.Phase = PhaseLoaded
		s.Items = []T{}
		s.Notice = errorNotice(ev.Message)
		return s

	case EventOpenCreate:
		if s.Phase != PhaseLoaded {
			return s
		}
		s.Dialog = Editing[T](nil)
		s.FieldErrors = nil
		return s

	case EventOpenEdit:
		if s.Phase != PhaseLoaded || ev.Record == nil {
			return s
		}
		record := *ev.Record
		s.Dialog = Editing(&record)
		s.FieldErrors = nil
		return s

	case EventCancel:
		if s.Phase == PhaseSubmitting {
			return s
		}
		s.Dialog = Closed[T]()
		s.FieldErrors = nil
		return s

	case EventSubmitStarted:
		if s.Phase != PhaseLoaded || s.Dialog.Kind != DialogEditing {
			return s
		}
		s.Phase = PhaseSubmitting
		s.FieldErrors = nil
		return s

	case EventValidationFailed:
		if s.Dialog.Kind != DialogEditing {
			return s
		}
		s.Phase = PhaseLoaded
		s.FieldErrors = ev.Fields
		return s

	case EventCreated:
		if s.Phase != PhaseSubmitting || ev.Record == nil {
			return s
		}
		items := make([]T, 0, len(s.Items)+1)
		items = append(items, *ev.Record)
		s.Items = append(items, s.Items...)
		return afterWrite(s, ev.Message)

	case EventUpdated:
		if s.Phase != PhaseSubmitting || ev.Record == nil {
			return s
		}
		id := (*ev.Record).RecordID()
		items := clone(s.Items)
		for i := range items {
			if items[i].RecordID() == id {
				items[i] = *ev.Record
			}
		}
		s.Items = items
		return afterWrite(s, ev.Message)

	case EventWriteFailed:
		if s.Phase != PhaseSubmitting {
			return s
		}
		s.Phase = PhaseLoaded
		s.Notice = errorNotice(ev.Message)
		return s

	case EventRequestDelete:
		if s.Phase != PhaseLoaded || ev.Record == nil {
			return s
		}
		s.Dialog = ConfirmingDelete(*ev.Record)
		return s

	case EventDeleteConfirmed:
		if s.Phase != PhaseLoaded || s.Dialog.Kind != DialogConfirmingDelete {
			return s
		}
		s.Phase = PhaseSubmitting
		return s

	case EventDeleted:
		if s.Phase != PhaseSubmitting || s.Dialog.Kind != DialogConfirmingDelete {
			return s
		}
		items := make([]T, 0, len(s.Items))
		for _, item := range s.Items {
			if item.RecordID() != ev.ID {
				items = append(items, item)
			}
		}
		s.Items = items
		return afterWrite(s, ev.Message)

	case EventDeleteFailed:
		if s.Phase != PhaseSubmitting || s.Dialog.Kind != DialogConfirmingDelete {
			return s
		}
		s.Phase = PhaseLoaded
		s.Dialog = Closed[T]()
		s.Notice = errorNotice(ev.Message)
		return s

	case EventDismissNotice:
		s.Notice = nil
		return s
	}
	return s
}

func afterWrite[T Record](s State[T], message string) State[T] {
	s.Phase = PhaseLoaded
	s.Dialog = Closed[T]()
	s.FieldErrors = nil
	if message != "" {
		s.Notice = &Notice{Level: NoticeSuccess, Message: message}
	}
	return s
}

func errorNotice(message string) *Notice {
	return &Notice{Level: NoticeError, Message: message}
}

func clone[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}
