package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"bizdesk_backend/internal/models"
	"bizdesk_backend/internal/validation"
)

// The session argument of every source method is informational: the
// server derives the user from the bearer token.

// ClientSource serves /clients.
type ClientSource struct{ c *Client }

// Clients returns the clients source.
func (c *Client) Clients() ClientSource { return ClientSource{c: c} }

func (s ClientSource) List(ctx context.Context, _ models.Session) ([]models.Client, error) {
	var env listEnvelope[models.Client]
	if err := s.c.do(ctx, http.MethodGet, "/clients", nil, &env); err != nil {
		return nil, err
	}
	if env.Data == nil {
		env.Data = []models.Client{}
	}
	return env.Data, nil
}

func (s ClientSource) Create(ctx context.Context, _ models.Session, draft models.Client) (models.Client, error) {
	var out models.Client
	form := validation.ClientUpdateFormFrom(draft).ClientForm
	err := s.c.do(ctx, http.MethodPost, "/clients", form, &out)
	return out, err
}

func (s ClientSource) Update(ctx context.Context, _ models.Session, record models.Client) (models.Client, error) {
	var out models.Client
	err := s.c.do(ctx, http.MethodPut, "/clients/"+url.PathEscape(record.ID), validation.ClientUpdateFormFrom(record), &out)
	return out, err
}

func (s ClientSource) Delete(ctx context.Context, _ models.Session, id string) error {
	return s.c.do(ctx, http.MethodDelete, "/clients/"+url.PathEscape(id), nil, nil)
}

// NoteSource serves /notes.
type NoteSource struct{ c *Client }

// Notes returns the personal notes source.
func (c *Client) Notes() NoteSource { return NoteSource{c: c} }

func (s NoteSource) List(ctx context.Context, _ models.Session) ([]models.Note, error) {
	var env listEnvelope[models.Note]
	if err := s.c.do(ctx, http.MethodGet, "/notes", nil, &env); err != nil {
		return nil, err
	}
	if env.Data == nil {
		env.Data = []models.Note{}
	}
	return env.Data, nil
}

func (s NoteSource) Create(ctx context.Context, _ models.Session, draft models.Note) (models.Note, error) {
	var out models.Note
	err := s.c.do(ctx, http.MethodPost, "/notes", validation.NoteForm{Title: draft.Title, Content: draft.Content}, &out)
	return out, err
}

func (s NoteSource) Update(ctx context.Context, _ models.Session, record models.Note) (models.Note, error) {
	var out models.Note
	form := validation.NoteForm{Title: record.Title, Content: record.Content}
	err := s.c.do(ctx, http.MethodPut, "/notes/"+url.PathEscape(record.ID), form, &out)
	return out, err
}

func (s NoteSource) Delete(ctx context.Context, _ models.Session, id string) error {
	return s.c.do(ctx, http.MethodDelete, "/notes/"+url.PathEscape(id), nil, nil)
}

// ClientNoteSource serves the notes of one client. Notes are never edited.
type ClientNoteSource struct {
	c        *Client
	clientID string
}

// ClientNotes returns the notes source of clientID.
func (c *Client) ClientNotes(clientID string) ClientNoteSource {
	return ClientNoteSource{c: c, clientID: clientID}
}

func (s ClientNoteSource) base() string { return "/clients/" + url.PathEscape(s.clientID) + "/notes" }

func (s ClientNoteSource) List(ctx context.Context, _ models.Session) ([]models.ClientNote, error) {
	var notes []models.ClientNote
	if err := s.c.do(ctx, http.MethodGet, s.base(), nil, &notes); err != nil {
		return nil, err
	}
	if notes == nil {
		notes = []models.ClientNote{}
	}
	return notes, nil
}

func (s ClientNoteSource) Create(ctx context.Context, _ models.Session, draft models.ClientNote) (models.ClientNote, error) {
	var out models.ClientNote
	err := s.c.do(ctx, http.MethodPost, s.base(), validation.ClientNoteForm{Text: draft.Text}, &out)
	return out, err
}

func (s ClientNoteSource) Update(context.Context, models.Session, models.ClientNote) (models.ClientNote, error) {
	return models.ClientNote{}, errClientNotesReadOnly
}

func (s ClientNoteSource) Delete(ctx context.Context, _ models.Session, id string) error {
	return s.c.do(ctx, http.MethodDelete, s.base()+"/"+url.PathEscape(id), nil, nil)
}
