package viewstate

import (
	"bizdesk_backend/internal/models"
	"bizdesk_backend/internal/validation"
)

// NewClientsPage is the clients table.
func NewClientsPage(source Source[models.Client], session models.Session, onChange func(State[models.Client])) *Controller[models.Client] {
	return NewController(source, session, Options[models.Client]{
		Labels:   Labels{Singular: "client", Plural: "clients"},
		Validate: ValidateClient,
		OnChange: onChange,
	})
}

// NewNotesPage is the personal notes page.
func NewNotesPage(source Source[models.Note], session models.Session, onChange func(State[models.Note])) *Controller[models.Note] {
	return NewController(source, session, Options[models.Note]{
		Labels:   Labels{Singular: "note", Plural: "notes"},
		Validate: ValidateNote,
		OnChange: onChange,
	})
}

// NewClientNotesPanel is the notes panel of one client's detail view.
func NewClientNotesPanel(source Source[models.ClientNote], session models.Session, onChange func(State[models.ClientNote])) *Controller[models.ClientNote] {
	return NewController(source, session, Options[models.ClientNote]{
		Labels:   Labels{Singular: "note", Plural: "notes"},
		Validate: ValidateClientNote,
		OnChange: onChange,
	})
}

// ValidateClient checks a draft with the add form, or the edit form once the
// draft has an id.
func ValidateClient(c models.Client) error {
	if c.ID == "" {
		form := validation.ClientUpdateFormFrom(c).ClientForm
		return validation.Struct(&form)
	}
	form := validation.ClientUpdateFormFrom(c)
	return validation.Struct(&form)
}

func ValidateNote(n models.Note) error {
	form := validation.NoteForm{Title: n.Title, Content: n.Content}
	return validation.Struct(&form)
}

func ValidateClientNote(n models.ClientNote) error {
	form := validation.ClientNoteForm{Text: n.Text}
	return validation.Struct(&form)
}
