package services

import (
	"context"
	"errors"
	"fmt"

	"bizdesk_backend/internal/models"
	"bizdesk_backend/internal/repositories"
	"bizdesk_backend/internal/validation"
)

// --- Custom Service Errors for Client ---
var ErrClientNotFound = errors.New("client not found")

// --- ClientService Interface ---
type ClientService interface {
	AddClient(ctx context.Context, session models.Session, form validation.ClientForm) (*models.Client, error)
	GetClients(ctx context.Context, session models.Session) ([]models.Client, error)
	GetClient(ctx context.Context, session models.Session, id string) (*models.Client, error)
	UpdateClient(ctx context.Context, session models.Session, id string, form validation.ClientUpdateForm) (*models.Client, error)
	DeleteClient(ctx context.Context, session models.Session, id string) error

	AddClientNote(ctx context.Context, session models.Session, clientID string, form validation.ClientNoteForm) (*models.ClientNote, error)
	GetClientNotes(ctx context.Context, session models.Session, clientID string) ([]models.ClientNote, error)
	DeleteClientNote(ctx context.Context, session models.Session, clientID, noteID string) error
}

// --- clientService Implementation ---
type clientService struct {
	clientRepo repositories.ClientRepository
	noteRepo   repositories.ClientNoteRepository
}

// NewClientService creates a new instance of ClientService.
func NewClientService(clientRepo repositories.ClientRepository, noteRepo repositories.ClientNoteRepository) ClientService {
	return &clientService{clientRepo: clientRepo, noteRepo: noteRepo}
}

// AddClient stores a new Active client owned by the session user.
func (s *clientService) AddClient(ctx context.Context, session models.Session, form validation.ClientForm) (*models.Client, error) {
	if !session.Authenticated() {
		return nil, ErrUnauthenticated
	}
	if err := validation.Struct(&form); err != nil {
		return nil, err
	}

	client := &models.Client{
		Name:                form.Name,
		Email:               form.Email,
		Phone:               form.Phone,
		Address:             form.Address,
		PostalCode:          form.PostalCode,
		Nationality:         form.Nationality,
		DateOfBirth:         form.DateOfBirth,
		AppointmentDateTime: form.AppointmentDateTime,
		Status:              models.ClientStatusActive,
		UserID:              session.UserID,
	}
	if _, err := s.clientRepo.CreateClient(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to create client in repository: %w", err)
	}
	return client, nil
}

// GetClients lists the session user's clients, newest first. Anonymous
// sessions get an empty list.
func (s *clientService) GetClients(ctx context.Context, session models.Session) ([]models.Client, error) {
	if !session.Authenticated() {
		return []models.Client{}, nil
	}
	clients, err := s.clientRepo.GetClientsByUser(ctx, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get clients: %w", err)
	}
	return clients, nil
}

func (s *clientService) GetClient(ctx context.Context, session models.Session, id string) (*models.Client, error) {
	if !session.Authenticated() {
		return nil, ErrClientNotFound
	}
	client, err := s.clientRepo.GetClientByID(ctx, id, session.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to get client by ID: %w", err)
	}
	return client, nil
}

// UpdateClient replaces every mutable field of the client.
func (s *clientService) UpdateClient(ctx context.Context, session models.Session, id string, form validation.ClientUpdateForm) (*models.Client, error) {
	if !session.Authenticated() {
		return nil, ErrUnauthenticated
	}
	if err := validation.Struct(&form); err != nil {
		return nil, err
	}

	client := &models.Client{
		ID:                  id,
		Name:                form.Name,
		Email:               form.Email,
		Phone:               form.Phone,
		Address:             form.Address,
		PostalCode:          form.PostalCode,
		Nationality:         form.Nationality,
		DateOfBirth:         form.DateOfBirth,
		AppointmentDateTime: form.AppointmentDateTime,
		Status:              models.ClientStatus(form.Status),
		UserID:              session.UserID,
	}
	if err := s.clientRepo.UpdateClient(ctx, client); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to update client in repository: %w", err)
	}
	return s.GetClient(ctx, session, id)
}

// DeleteClient hard-deletes the client. Its notes are not removed, and an
// unknown id is treated as already deleted.
func (s *clientService) DeleteClient(ctx context.Context, session models.Session, id string) error {
	if !session.Authenticated() {
		return ErrUnauthenticated
	}
	err := s.clientRepo.DeleteClient(ctx, id, session.UserID)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	return nil
}

func (s *clientService) AddClientNote(ctx context.Context, session models.Session, clientID string, form validation.ClientNoteForm) (*models.ClientNote, error) {
	if !session.Authenticated() {
		return nil, ErrUnauthenticated
	}
	if err := validation.Struct(&form); err != nil {
		return nil, err
	}
	if _, err := s.GetClient(ctx, session, clientID); err != nil {
		return nil, err
	}

	note := &models.ClientNote{ClientID: clientID, Text: form.Text, UserID: session.UserID}
	if err := s.noteRepo.CreateClientNote(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to create client note: %w", err)
	}
	return note, nil
}

func (s *clientService) GetClientNotes(ctx context.Context, session models.Session, clientID string) ([]models.ClientNote, error) {
	if !session.Authenticated() {
		return []models.ClientNote{}, nil
	}
	if _, err := s.GetClient(ctx, session, clientID); err != nil {
		return nil, err
	}
	notes, err := s.noteRepo.GetClientNotes(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to get client notes: %w", err)
	}
	return notes, nil
}

func (s *clientService) DeleteClientNote(ctx context.Context, session models.Session, clientID, noteID string) error {
	if !session.Authenticated() {
		return ErrUnauthenticated
	}
	if _, err := s.GetClient(ctx, session, clientID); err != nil {
		return err
	}
	err := s.noteRepo.DeleteClientNote(ctx, clientID, noteID)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return fmt.Errorf("failed to delete client note: %w", err)
	}
	return nil
}
