package viewstate

import (
	"context"
	"errors"
	"sync"

	"bizdesk_backend/internal/models"
	"bizdesk_backend/internal/validation"
)

// ErrNotMounted is returned by actions issued before Mount or after Unmount.
var ErrNotMounted = errors.New("view is not mounted")

// Source is the data-access side of a page, scoped by the session's user.
type Source[T Record] interface {
	List(ctx context.Context, session models.Session) ([]T, error)
	Create(ctx context.Context, session models.Session, draft T) (T, error)
	Update(ctx context.Context, session models.Session, record T) (T, error)
	Delete(ctx context.Context, session models.Session, id string) error
}

// Labels names the record kind in notices, e.g. {"client", "clients"}.
type Labels struct {
	Singular string
	Plural   string
}

// Options configures a Controller.
type Options[T Record] struct {
	Labels Labels
	// Validate checks a draft before any Source call. A validation.FieldErrors
	// result is shown per field; any other error becomes a notice.
	Validate func(T) error
	// SourceFieldErrors, when set, maps a failed Create or Update back to
	// per-field errors. Unmapped failures become a generic notice.
	SourceFieldErrors func(error) (validation.FieldErrors, bool)
	// OnChange, when set, receives every new state.
	OnChange func(State[T])
}

// Controller drives Reduce against a Source for one mounted page.
type Controller[T Record] struct {
	source  Source[T]
	session models.Session
	opts    Options[T]

	mu         sync.Mutex
	state      State[T]
	generation uint64
	mounted    bool
	ctx        context.Context
	cancel     context.CancelFunc
}

// NewController builds a controller for the given session.
func NewController[T Record](source Source[T], session models.Session, opts Options[T]) *Controller[T] {
	return &Controller[T]{
		source:  source,
		session: session,
		opts:    opts,
		state:   Initial[T](),
	}
}

// MapSourceErrors sets Options.SourceFieldErrors and returns c.
func (c *Controller[T]) MapSourceErrors(fn func(error) (validation.FieldErrors, bool)) *Controller[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.opts.SourceFieldErrors = fn
	return c
}

// State returns a snapshot of the current state.
func (c *Controller[T]) State() State[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.state
	s.Items = clone(c.state.Items)
	return s
}

// Mount fetches the list. Without an authenticated session the page is
// loaded empty and the source is never called.
func (c *Controller[T]) Mount(parent context.Context) {
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	c.generation++
	gen := c.generation
	c.ctx, c.cancel = context.WithCancel(parent)
	ctx := c.ctx
	c.mounted = true
	c.applyLocked(Mounted[T](c.session.Authenticated()))
	hasUser := c.session.Authenticated()
	c.mu.Unlock()

	if !hasUser {
		return
	}

	items, err := c.source.List(ctx, c.session)
	if err != nil {
		c.apply(gen, FetchFailed[T]("Could not fetch "+c.opts.Labels.Plural+"."))
		return
	}
	c.apply(gen, FetchSucceeded(items))
}

// Unmount cancels in-flight calls; their results are dropped.
func (c *Controller[T]) Unmount() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	c.mounted = false
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

func (c *Controller[T]) OpenCreate()       { c.dispatch(OpenCreate[T]()) }
func (c *Controller[T]) OpenEdit(record T) { c.dispatch(OpenEdit(record)) }
func (c *Controller[T]) Cancel()           { c.dispatch(Cancel[T]()) }
func (c *Controller[T]) DismissNotice()    { c.dispatch(DismissNotice[T]()) }

// RequestDelete opens the confirmation dialog for record.
func (c *Controller[T]) RequestDelete(record T) { c.dispatch(RequestDelete(record)) }

// Submit validates draft and creates or updates it depending on the open
// dialog. Updates keep the identity of the record being edited; the caller
// is expected to copy it onto draft.
func (c *Controller[T]) Submit(draft T) error {
	c.mu.Lock()
	if !c.mounted {
		c.mu.Unlock()
		return ErrNotMounted
	}
	if c.state.Phase != PhaseLoaded || c.state.Dialog.Kind != DialogEditing {
		c.mu.Unlock()
		return nil
	}
	creating := c.state.Dialog.IsCreate()
	gen, ctx := c.generation, c.ctx

	if c.opts.Validate != nil {
		if err := c.opts.Validate(draft); err != nil {
			if fields, ok := validation.AsFieldErrors(err); ok {
				c.applyLocked(ValidationFailed[T](fields))
				c.mu.Unlock()
				return nil
			}
			c.applyLocked(SubmitStarted[T]())
			c.applyLocked(WriteFailed[T](err.Error()))
			c.mu.Unlock()
			return nil
		}
	}
	c.applyLocked(SubmitStarted[T]())
	c.mu.Unlock()

	verb := "update"
	if creating {
		verb = "add"
	}
	if !c.session.Authenticated() {
		c.apply(gen, WriteFailed[T]("You must be signed in to "+verb+" a "+c.opts.Labels.Singular+"."))
		return nil
	}

	if creating {
		stored, err := c.source.Create(ctx, c.session, draft)
		if err != nil {
			c.writeFailed(gen, err, "Could not add "+c.opts.Labels.Singular+".")
			return nil
		}
		c.apply(gen, Created(stored, capitalize(c.opts.Labels.Singular)+" added."))
		return nil
	}

	stored, err := c.source.Update(ctx, c.session, draft)
	if err != nil {
		c.writeFailed(gen, err, "Could not update "+c.opts.Labels.Singular+".")
		return nil
	}
	c.apply(gen, Updated(stored, capitalize(c.opts.Labels.Singular)+" updated."))
	return nil
}

// ConfirmDelete deletes the record awaiting confirmation.
func (c *Controller[T]) ConfirmDelete() error {
	c.mu.Lock()
	if !c.mounted {
		c.mu.Unlock()
		return ErrNotMounted
	}
	if c.state.Phase != PhaseLoaded || c.state.Dialog.Kind != DialogConfirmingDelete || c.state.Dialog.Record == nil {
		c.mu.Unlock()
		return nil
	}
	id := (*c.state.Dialog.Record).RecordID()
	gen, ctx := c.generation, c.ctx
	c.applyLocked(DeleteConfirmed[T]())
	c.mu.Unlock()

	if !c.session.Authenticated() {
		c.apply(gen, DeleteFailed[T]("You must be signed in to delete a "+c.opts.Labels.Singular+"."))
		return nil
	}
	if err := c.source.Delete(ctx, c.session, id); err != nil {
		c.apply(gen, DeleteFailed[T]("Could not delete "+c.opts.Labels.Singular+"."))
		return nil
	}
	c.apply(gen, Deleted[T](id, capitalize(c.opts.Labels.Singular)+" deleted."))
	return nil
}

// writeFailed keeps the dialog open, with field errors when the source
// rejected the draft field by field.
func (c *Controller[T]) writeFailed(gen uint64, err error, notice string) {
	c.mu.Lock()
	mapFields := c.opts.SourceFieldErrors
	c.mu.Unlock()
	if mapFields != nil {
		if fields, ok := mapFields(err); ok {
			c.apply(gen, ValidationFailed[T](fields))
			return
		}
	}
	c.apply(gen, WriteFailed[T](notice))
}

func (c *Controller[T]) dispatch(ev Event[T]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.mounted {
		return
	}
	c.applyLocked(ev)
}

// apply reduces ev unless the view was unmounted or remounted since gen.
func (c *Controller[T]) apply(gen uint64, ev Event[T]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		return
	}
	c.applyLocked(ev)
}

func (c *Controller[T]) applyLocked(ev Event[T]) {
	c.state = Reduce(c.state, ev)
	if c.opts.OnChange != nil {
		s := c.state
		s.Items = clone(c.state.Items)
		c.opts.OnChange(s)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}
