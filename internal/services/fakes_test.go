package services

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"sync"
	"time"

	"bizdesk_backend/internal/models"
	"bizdesk_backend/internal/repositories"
)

// clock hands out strictly increasing timestamps.
type clock struct {
	mu sync.Mutex
	t  time.Time
}

func newClock() *clock { return &clock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)} }

func (c *clock) next() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(time.Second)
	return c.t
}

type fakeIDs struct {
	mu sync.Mutex
	n  int
}

func (f *fakeIDs) next(prefix string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.n++
	return prefix + strconv.Itoa(f.n)
}

var errBackend = errors.New("backend unavailable")

// --- clients ---

type fakeClientRepo struct {
	clock   *clock
	ids     fakeIDs
	clients map[string]models.Client
	fail    bool
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clock: newClock(), clients: map[string]models.Client{}}
}

func (r *fakeClientRepo) CreateClient(_ context.Context, c *models.Client) (string, error) {
	if r.fail {
		return "", errBackend
	}
	c.ID = r.ids.next("c")
	c.CreatedAt = r.clock.next()
	r.clients[c.ID] = *c
	return c.ID, nil
}

func (r *fakeClientRepo) GetClientByID(_ context.Context, id, userID string) (*models.Client, error) {
	c, ok := r.clients[id]
	if !ok || c.UserID != userID {
		return nil, repositories.ErrNotFound
	}
	return &c, nil
}

func (r *fakeClientRepo) GetClientsByUser(_ context.Context, userID string) ([]models.Client, error) {
	if r.fail {
		return nil, errBackend
	}
	out := []models.Client{}
	for _, c := range r.clients {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeClientRepo) UpdateClient(_ context.Context, c *models.Client) error {
	stored, ok := r.clients[c.ID]
	if !ok || stored.UserID != c.UserID {
		return repositories.ErrNotFound
	}
	updated := *c
	updated.CreatedAt = stored.CreatedAt
	r.clients[c.ID] = updated
	return nil
}

func (r *fakeClientRepo) DeleteClient(_ context.Context, id, userID string) error {
	c, ok := r.clients[id]
	if !ok || c.UserID != userID {
		return repositories.ErrNotFound
	}
	delete(r.clients, id)
	return nil
}

type fakeClientNoteRepo struct {
	clock *clock
	ids   fakeIDs
	notes map[string]models.ClientNote
}

func newFakeClientNoteRepo() *fakeClientNoteRepo {
	return &fakeClientNoteRepo{clock: newClock(), notes: map[string]models.ClientNote{}}
}

func (r *fakeClientNoteRepo) CreateClientNote(_ context.Context, n *models.ClientNote) error {
	n.ID = r.ids.next("cn")
	n.CreatedAt = r.clock.next()
	r.notes[n.ID] = *n
	return nil
}

func (r *fakeClientNoteRepo) GetClientNotes(_ context.Context, clientID string) ([]models.ClientNote, error) {
	out := []models.ClientNote{}
	for _, n := range r.notes {
		if n.ClientID == clientID {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeClientNoteRepo) DeleteClientNote(_ context.Context, clientID, noteID string) error {
	n, ok := r.notes[noteID]
	if !ok || n.ClientID != clientID {
		return repositories.ErrNotFound
	}
	delete(r.notes, noteID)
	return nil
}

// --- personal notes ---

type fakeNoteRepo struct {
	clock *clock
	ids   fakeIDs
	notes map[string]models.Note
}

func newFakeNoteRepo() *fakeNoteRepo {
	return &fakeNoteRepo{clock: newClock(), notes: map[string]models.Note{}}
}

func (r *fakeNoteRepo) CreateNote(_ context.Context, n *models.Note) error {
	n.ID = r.ids.next("n")
	n.CreatedAt = r.clock.next()
	r.notes[n.ID] = *n
	return nil
}

func (r *fakeNoteRepo) GetNoteByID(_ context.Context, id, userID string) (*models.Note, error) {
	n, ok := r.notes[id]
	if !ok || n.UserID != userID {
		return nil, repositories.ErrNotFound
	}
	return &n, nil
}

func (r *fakeNoteRepo) GetNotesByUser(_ context.Context, userID string) ([]models.Note, error) {
	out := []models.Note{}
	for _, n := range r.notes {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeNoteRepo) UpdateNote(_ context.Context, n *models.Note) error {
	stored, ok := r.notes[n.ID]
	if !ok || stored.UserID != n.UserID {
		return repositories.ErrNotFound
	}
	stored.Title, stored.Content = n.Title, n.Content
	r.notes[n.ID] = stored
	return nil
}

func (r *fakeNoteRepo) DeleteNote(_ context.Context, id, userID string) error {
	n, ok := r.notes[id]
	if !ok || n.UserID != userID {
		return repositories.ErrNotFound
	}
	delete(r.notes, id)
	return nil
}

// --- settings ---

type fakeSettingsRepo struct {
	rows map[string]models.UserSettings
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{rows: map[string]models.UserSettings{}}
}

func (r *fakeSettingsRepo) GetUserSettings(_ context.Context, userID string) (*models.UserSettings, error) {
	s, ok := r.rows[userID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &s, nil
}

func (r *fakeSettingsRepo) UpsertUserSettings(_ context.Context, in *models.UserSettings) (*models.UserSettings, error) {
	s := r.rows[in.UserID]
	s.UserID = in.UserID
	if in.CompanyName != nil {
		s.CompanyName = in.CompanyName
	}
	if in.Timezone != nil {
		s.Timezone = in.Timezone
	}
	if in.BusinessType != nil {
		s.BusinessType = in.BusinessType
	}
	s.UpdatedAt = time.Now()
	r.rows[in.UserID] = s
	return &s, nil
}

// --- teams and users ---

type fakeTeamRepo struct {
	ids   fakeIDs
	teams map[string]models.Team
	// beforeRemove runs between the service's read and the removal.
	beforeRemove func()
}

func newFakeTeamRepo() *fakeTeamRepo { return &fakeTeamRepo{teams: map[string]models.Team{}} }

func (r *fakeTeamRepo) CreateTeam(_ context.Context, t *models.Team) error {
	t.ID = r.ids.next("t")
	t.CreatedAt = time.Now()
	stored := *t
	stored.Members = append([]models.TeamMember(nil), t.Members...)
	r.teams[t.ID] = stored
	return nil
}

func (r *fakeTeamRepo) GetTeamByID(_ context.Context, id string) (*models.Team, error) {
	t, ok := r.teams[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	t.Members = append([]models.TeamMember{}, t.Members...)
	return &t, nil
}

func (r *fakeTeamRepo) AddMember(_ context.Context, teamID string, m models.TeamMember) error {
	t, ok := r.teams[teamID]
	if !ok {
		return repositories.ErrNotFound
	}
	for _, existing := range t.Members {
		if existing == m {
			return nil
		}
	}
	t.Members = append(t.Members, m)
	r.teams[teamID] = t
	return nil
}

func (r *fakeTeamRepo) RemoveMember(_ context.Context, teamID string, m models.TeamMember) (bool, error) {
	if r.beforeRemove != nil {
		r.beforeRemove()
	}
	t, ok := r.teams[teamID]
	if !ok {
		return false, nil
	}
	kept := []models.TeamMember{}
	for _, existing := range t.Members {
		if existing != m {
			kept = append(kept, existing)
		}
	}
	removed := len(kept) != len(t.Members)
	t.Members = kept
	r.teams[teamID] = t
	return removed, nil
}

type fakeUserRepo struct {
	ids   fakeIDs
	users map[string]models.User
}

func newFakeUserRepo() *fakeUserRepo { return &fakeUserRepo{users: map[string]models.User{}} }

func (r *fakeUserRepo) CreateUser(_ context.Context, u *models.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return repositories.ErrDuplicateKey
		}
	}
	u.ID = r.ids.next("u")
	u.CreatedAt = time.Now()
	r.users[u.ID] = *u
	return nil
}

func (r *fakeUserRepo) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeUserRepo) FindUserByID(_ context.Context, id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &u, nil
}

// --- feedback and mail ---

type fakeFeedbackRepo struct {
	items []models.Feedback
}

func (r *fakeFeedbackRepo) CreateFeedback(_ context.Context, f *models.Feedback) error {
	f.ID = "f" + strconv.Itoa(len(r.items)+1)
	f.CreatedAt = time.Now()
	r.items = append([]models.Feedback{*f}, r.items...)
	return nil
}

func (r *fakeFeedbackRepo) ListFeedback(_ context.Context) ([]models.Feedback, error) {
	return r.items, nil
}

type fakeMailRepo struct {
	queued []models.MailMessage
	fail   bool
}

func (r *fakeMailRepo) EnqueueMail(_ context.Context, m *models.MailMessage) error {
	if r.fail {
		return errBackend
	}
	m.ID = "m" + strconv.Itoa(len(r.queued)+1)
	r.queued = append(r.queued, *m)
	return nil
}

type publishedEvent struct {
	key     string
	payload any
}

type fakePublisher struct {
	events []publishedEvent
	err    error
}

func (p *fakePublisher) PublishJSON(_ context.Context, key string, v any) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, publishedEvent{key: key, payload: v})
	return nil
}
