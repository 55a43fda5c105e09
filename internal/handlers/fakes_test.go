package handlers

import (
	"context"
	"time"

	"bizdesk_backend/internal/models"
	"bizdesk_backend/internal/validation"
)

type fakeClientService struct {
	clients   []models.Client
	err       error
	lastForm  validation.ClientUpdateForm
	lastUser  string
	deletedID string
}

func (f *fakeClientService) AddClient(_ context.Context, s models.Session, form validation.ClientForm) (*models.Client, error) {
	if f.err != nil {
		return nil, f.err
	}
	if err := validation.Struct(&form); err != nil {
		return nil, err
	}
	f.lastUser = s.UserID
	return &models.Client{ID: "c-new", Name: form.Name, Email: form.Email, Status: models.ClientStatusActive, UserID: s.UserID}, nil
}

func (f *fakeClientService) GetClients(_ context.Context, s models.Session) ([]models.Client, error) {
	f.lastUser = s.UserID
	return f.clients, f.err
}

func (f *fakeClientService) GetClient(_ context.Context, _ models.Session, id string) (*models.Client, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, c := range f.clients {
		if c.ID == id {
			c := c
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeClientService) UpdateClient(_ context.Context, _ models.Session, id string, form validation.ClientUpdateForm) (*models.Client, error) {
	f.lastForm = form
	if f.err != nil {
		return nil, f.err
	}
	return &models.Client{ID: id, Name: form.Name, Email: form.Email, Status: models.ClientStatus(form.Status)}, nil
}

func (f *fakeClientService) DeleteClient(_ context.Context, _ models.Session, id string) error {
	f.deletedID = id
	return f.err
}

func (f *fakeClientService) AddClientNote(_ context.Context, _ models.Session, clientID string, form validation.ClientNoteForm) (*models.ClientNote, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.ClientNote{ID: "n1", ClientID: clientID, Text: form.Text, CreatedAt: time.Unix(0, 0).UTC()}, nil
}

func (f *fakeClientService) GetClientNotes(context.Context, models.Session, string) ([]models.ClientNote, error) {
	return []models.ClientNote{}, f.err
}

func (f *fakeClientService) DeleteClientNote(context.Context, models.Session, string, string) error {
	return f.err
}

type fakeTeamService struct {
	err  error
	team *models.Team
}

func (f *fakeTeamService) FindUserByEmail(_ context.Context, _ models.Session, email string) (*models.TeamMember, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.TeamMember{UID: "u2", Email: email, Name: "Bo"}, nil
}

func (f *fakeTeamService) CreateTeam(context.Context, models.Session) (*models.Team, error) {
	return f.team, f.err
}

func (f *fakeTeamService) GetTeam(context.Context, models.Session, string) (*models.Team, error) {
	return f.team, f.err
}

func (f *fakeTeamService) AddTeamMember(context.Context, models.Session, string, validation.TeamMemberForm) (*models.Team, error) {
	return f.team, f.err
}

func (f *fakeTeamService) RemoveTeamMember(context.Context, models.Session, string, string) (*models.Team, error) {
	return f.team, f.err
}

type fakeChatService struct {
	err error
}

func (f *fakeChatService) Complete(_ context.Context, _ models.Session, form validation.ChatForm) ([]models.ChatMessage, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.ChatMessage, 0, len(form.Messages)+1)
	for _, m := range form.Messages {
		out = append(out, models.ChatMessage{Role: m.Role, Content: m.Content})
	}
	return append(out, models.ChatMessage{Role: "assistant", Content: "hi"}), nil
}

func (f *fakeChatService) Models() []string     { return []string{"a/one", "b/two"} }
func (f *fakeChatService) DefaultModel() string { return "a/one" }
