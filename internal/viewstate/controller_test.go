package viewstate

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizdesk_backend/internal/models"
	"bizdesk_backend/internal/validation"
)

type fakeSource struct {
	mu        sync.Mutex
	items     []models.Client
	listErr   error
	writeErr  error
	listCalls int
	creates   int
	deletes   int
	// block, when set, is waited on inside List.
	block chan struct{}
	// deleteGate, when set, is waited on inside Delete.
	deleteGate chan struct{}
}

func (f *fakeSource) List(ctx context.Context, _ models.Session) ([]models.Client, error) {
	f.mu.Lock()
	f.listCalls++
	block := f.block
	f.mu.Unlock()
	if block != nil {
		<-block
	}
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]models.Client(nil), f.items...), nil
}

func (f *fakeSource) Create(_ context.Context, s models.Session, draft models.Client) (models.Client, error) {
	if f.writeErr != nil {
		return models.Client{}, f.writeErr
	}
	f.creates++
	draft.ID = "new"
	draft.UserID = s.UserID
	draft.Status = models.ClientStatusActive
	return draft, nil
}

func (f *fakeSource) Update(_ context.Context, _ models.Session, c models.Client) (models.Client, error) {
	return c, f.writeErr
}

func (f *fakeSource) Delete(_ context.Context, _ models.Session, _ string) error {
	f.mu.Lock()
	f.deletes++
	gate := f.deleteGate
	f.mu.Unlock()
	if gate != nil {
		<-gate
	}
	return f.writeErr
}

func (f *fakeSource) deleteCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.deletes
}

const (
	timeout = time.Second
	tick    = 5 * time.Millisecond
)

var alice = models.Session{UserID: "u1", Email: "alice@x.io"}

func TestController_MountWithoutUserSkipsSource(t *testing.T) {
	src := &fakeSource{}
	c := NewClientsPage(src, models.Session{}, nil)
	c.Mount(context.Background())

	assert.Equal(t, PhaseLoaded, c.State().Phase)
	assert.Zero(t, src.listCalls)
}

func TestController_FetchFailureIsNotRetried(t *testing.T) {
	src := &fakeSource{listErr: errors.New("boom")}
	c := NewClientsPage(src, alice, nil)
	c.Mount(context.Background())

	s := c.State()
	assert.Empty(t, s.Items)
	require.NotNil(t, s.Notice)
	assert.Equal(t, "Could not fetch clients.", s.Notice.Message)
	assert.Equal(t, 1, src.listCalls)
}

func TestController_InvalidDraftNeverReachesSource(t *testing.T) {
	src := &fakeSource{}
	c := NewClientsPage(src, alice, nil)
	c.Mount(context.Background())
	c.OpenCreate()

	require.NoError(t, c.Submit(models.Client{Name: "J", Email: "not-an-email"}))

	s := c.State()
	assert.Zero(t, src.creates)
	assert.Equal(t, DialogEditing, s.Dialog.Kind)
	assert.Contains(t, s.FieldErrors, "name")
	assert.Contains(t, s.FieldErrors, "email")
}

func TestController_CreateAddsToHead(t *testing.T) {
	src := &fakeSource{items: []models.Client{{ID: "old", Name: "Old", Email: "o@x.io"}}}
	var changes int
	c := NewClientsPage(src, alice, func(State[models.Client]) { changes++ })
	c.Mount(context.Background())
	c.OpenCreate()

	require.NoError(t, c.Submit(models.Client{Name: "Jo", Email: "jo@x.io"}))

	s := c.State()
	require.Len(t, s.Items, 2)
	assert.Equal(t, "new", s.Items[0].ID)
	assert.Equal(t, models.ClientStatusActive, s.Items[0].Status)
	assert.Equal(t, DialogClosed, s.Dialog.Kind)
	assert.Equal(t, 1, src.listCalls)
	assert.Positive(t, changes)
}

func TestController_WriteFailureKeepsDialog(t *testing.T) {
	src := &fakeSource{writeErr: errors.New("backend down")}
	c := NewClientsPage(src, alice, nil)
	c.Mount(context.Background())
	c.OpenCreate()

	require.NoError(t, c.Submit(models.Client{Name: "Jo", Email: "jo@x.io"}))

	s := c.State()
	assert.Equal(t, DialogEditing, s.Dialog.Kind)
	require.NotNil(t, s.Notice)
	assert.Equal(t, "Could not add client.", s.Notice.Message)
}

func TestController_DeleteFlow(t *testing.T) {
	existing := models.Client{ID: "c1", Name: "Ann", Email: "ann@x.io"}
	src := &fakeSource{items: []models.Client{existing}}
	c := NewClientsPage(src, alice, nil)
	c.Mount(context.Background())

	c.RequestDelete(existing)
	require.NoError(t, c.ConfirmDelete())
	assert.Empty(t, c.State().Items)
}

func TestController_ConfirmDeleteWhileDeletingIsIgnored(t *testing.T) {
	existing := models.Client{ID: "c1", Name: "Ann", Email: "ann@x.io"}
	src := &fakeSource{items: []models.Client{existing}, deleteGate: make(chan struct{})}
	c := NewClientsPage(src, alice, nil)
	c.Mount(context.Background())
	c.RequestDelete(existing)

	done := make(chan error, 1)
	go func() { done <- c.ConfirmDelete() }()

	require.Eventually(t, func() bool { return src.deleteCount() == 1 }, timeout, tick)
	assert.Equal(t, PhaseSubmitting, c.State().Phase)

	require.NoError(t, c.ConfirmDelete())
	close(src.deleteGate)
	require.NoError(t, <-done)

	assert.Equal(t, 1, src.deleteCount())
	assert.Empty(t, c.State().Items)
}

func TestController_SourceFieldErrorsShownPerField(t *testing.T) {
	rejected := errors.New("email taken")
	src := &fakeSource{writeErr: rejected}
	c := NewClientsPage(src, alice, nil).MapSourceErrors(func(err error) (validation.FieldErrors, bool) {
		if errors.Is(err, rejected) {
			return validation.FieldErrors{"email": "This email is already in use."}, true
		}
		return nil, false
	})
	c.Mount(context.Background())
	c.OpenCreate()

	require.NoError(t, c.Submit(models.Client{Name: "Jo", Email: "jo@x.io"}))

	s := c.State()
	assert.Equal(t, PhaseLoaded, s.Phase)
	assert.Equal(t, DialogEditing, s.Dialog.Kind)
	assert.Equal(t, "This email is already in use.", s.FieldErrors["email"])
	assert.Nil(t, s.Notice)
}

func TestController_ResponseAfterUnmountIsDropped(t *testing.T) {
	src := &fakeSource{items: []models.Client{{ID: "c1"}}, block: make(chan struct{})}
	c := NewClientsPage(src, alice, nil)

	done := make(chan struct{})
	go func() {
		c.Mount(context.Background())
		close(done)
	}()

	require.Eventually(t, func() bool {
		src.mu.Lock()
		defer src.mu.Unlock()
		return src.listCalls == 1
	}, timeout, tick)

	c.Unmount()
	close(src.block)
	<-done

	s := c.State()
	assert.Equal(t, PhaseFetching, s.Phase)
	assert.Empty(t, s.Items)
	assert.ErrorIs(t, c.Submit(models.Client{}), ErrNotMounted)
}
