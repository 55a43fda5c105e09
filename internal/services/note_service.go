package services

import (
	"context"
	"errors"
	"fmt"

	"bizdesk_backend/internal/models"
	"bizdesk_backend/internal/repositories"
	"bizdesk_backend/internal/validation"
)

var ErrNoteNotFound = errors.New("note not found")

// NoteService manages personal notes.
type NoteService interface {
	AddNote(ctx context.Context, session models.Session, form validation.NoteForm) (*models.Note, error)
	GetNotes(ctx context.Context, session models.Session) ([]models.Note, error)
	GetNote(ctx context.Context, session models.Session, id string) (*models.Note, error)
	UpdateNote(ctx context.Context, session models.Session, id string, form validation.NoteForm) (*models.Note, error)
	DeleteNote(ctx context.Context, session models.Session, id string) error
}

type noteService struct {
	repo repositories.NoteRepository
}

// NewNoteService creates a new instance of NoteService.
func NewNoteService(repo repositories.NoteRepository) NoteService {
	return &noteService{repo: repo}
}

func (s *noteService) AddNote(ctx context.Context, session models.Session, form validation.NoteForm) (*models.Note, error) {
	if !session.Authenticated() {
		return nil, ErrUnauthenticated
	}
	if err := validation.Struct(&form); err != nil {
		return nil, err
	}
	note := &models.Note{UserID: session.UserID, Title: form.Title, Content: form.Content}
	if err := s.repo.CreateNote(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}
	return note, nil
}

func (s *noteService) GetNotes(ctx context.Context, session models.Session) ([]models.Note, error) {
	if !session.Authenticated() {
		return []models.Note{}, nil
	}
	notes, err := s.repo.GetNotesByUser(ctx, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get notes: %w", err)
	}
	return notes, nil
}

func (s *noteService) GetNote(ctx context.Context, session models.Session, id string) (*models.Note, error) {
	if !session.Authenticated() {
		return nil, ErrNoteNotFound
	}
	note, err := s.repo.GetNoteByID(ctx, id, session.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, fmt.Errorf("failed to get note: %w", err)
	}
	return note, nil
}

func (s *noteService) UpdateNote(ctx context.Context, session models.Session, id string, form validation.NoteForm) (*models.Note, error) {
	if !session.Authenticated() {
		return nil, ErrUnauthenticated
	}
	if err := validation.Struct(&form); err != nil {
		return nil, err
	}
	note := &models.Note{ID: id, UserID: session.UserID, Title: form.Title, Content: form.Content}
	if err := s.repo.UpdateNote(ctx, note); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, fmt.Errorf("failed to update note: %w", err)
	}
	return s.GetNote(ctx, session, id)
}

func (s *noteService) DeleteNote(ctx context.Context, session models.Session, id string) error {
	if !session.Authenticated() {
		return ErrUnauthenticated
	}
	err := s.repo.DeleteNote(ctx, id, session.UserID)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	return nil
}
