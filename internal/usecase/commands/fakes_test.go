//go:build unit

package commands_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"event-booking-engine/internal/domain/availability"
	"event-booking-engine/internal/domain/event"
	"event-booking-engine/internal/infra"
	"event-booking-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

// fakeStore is a shared in-memory backend for the fake unit of work. It
// tracks write counts so tests can assert zero-write behavior.
type fakeStore struct {
	mu sync.Mutex

	events map[uuid.UUID]*event.Event
	avail  map[string]*availability.Record

	lockCalls   [][]string
	createCount int
	updateCount int
	upsertCount int
	deleteCount int
	txCount     int

	createErr error
	deleteErr map[string]error // keyed by date "2006-01-02"
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		events:    make(map[uuid.UUID]*event.Event),
		avail:     make(map[string]*availability.Record),
		deleteErr: make(map[string]error),
	}
}

func availKey(department, requirementID string, date time.Time) string {
	return department + "\x00" + requirementID + "\x00" + event.Date(date).Format("2006-01-02")
}

func (s *fakeStore) addEvent(e *event.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[e.ID()] = e
}

func (s *fakeStore) addAvailability(rec *availability.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.avail[availKey(rec.Department(), rec.RequirementID(), rec.DateOf())] = rec
}

type fakeUoW struct {
	store *fakeStore
	// reruns executes each closure that many extra times before the final
	// run, the way the real unit of work re-runs on serialization failures.
	reruns int
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.store.mu.Lock()
	u.store.txCount++
	u.store.mu.Unlock()
	for i := 0; i < u.reruns; i++ {
		if err := fn(ctx, &fakeTx{store: u.store}); err != nil {
			return err
		}
	}
	return fn(ctx, &fakeTx{store: u.store})
}

func (u *fakeUoW) Reads() shared.CommandReads {
	return &fakeReads{store: u.store}
}

type fakeTx struct {
	store *fakeStore
}

func (t *fakeTx) Events() shared.EventRepository              { return &fakeEventRepo{store: t.store} }
func (t *fakeTx) Availability() shared.AvailabilityRepository { return &fakeAvailRepo{store: t.store} }
func (t *fakeTx) Reads() shared.CommandReads                  { return &fakeReads{store: t.store} }

func (t *fakeTx) LockSchedule(_ context.Context, keys ...string) error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	t.store.lockCalls = append(t.store.lockCalls, keys)
	return nil
}

type fakeEventRepo struct {
	store *fakeStore
}

func (r *fakeEventRepo) Create(_ context.Context, e *event.Event) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.createErr != nil {
		return r.store.createErr
	}
	r.store.createCount++
	r.store.events[e.ID()] = e
	return nil
}

func (r *fakeEventRepo) FindByID(_ context.Context, id uuid.UUID) (*event.Event, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	e, ok := r.store.events[id]
	if !ok {
		return nil, infra.WrapRepoErr("event not found", errors.New("no rows"), infra.KindNotFound)
	}
	return e, nil
}

func (r *fakeEventRepo) UpdateStatus(_ context.Context, e *event.Event) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.updateCount++
	r.store.events[e.ID()] = e
	return nil
}

func (r *fakeEventRepo) ActiveOn(_ context.Context, date time.Time) ([]*event.Event, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	day := event.Date(date)
	var out []*event.Event
	for _, e := range r.store.events {
		if e.Status().IsActive() && e.DateOf().Equal(day) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeEventRepo) ApprovedEndedBefore(_ context.Context, cutoff time.Time) ([]*event.Event, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*event.Event
	for _, e := range r.store.events {
		if e.Status() == event.StatusApproved && e.HasEnded(cutoff) {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeAvailRepo struct {
	store *fakeStore
}

func (r *fakeAvailRepo) Upsert(_ context.Context, rec *availability.Record) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.upsertCount++
	r.store.avail[availKey(rec.Department(), rec.RequirementID(), rec.DateOf())] = rec
	return nil
}

func (r *fakeAvailRepo) Delete(_ context.Context, department, requirementID string, date time.Time) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if err, ok := r.store.deleteErr[event.Date(date).Format("2006-01-02")]; ok {
		return err
	}
	r.store.deleteCount++
	delete(r.store.avail, availKey(department, requirementID, date))
	return nil
}

func (r *fakeAvailRepo) FindOne(_ context.Context, department, requirementID string, date time.Time) (*availability.Record, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	rec, ok := r.store.avail[availKey(department, requirementID, date)]
	if !ok {
		return nil, infra.WrapRepoErr("availability record not found", errors.New("no rows"), infra.KindNotFound)
	}
	return rec, nil
}

func (r *fakeAvailRepo) ListRange(_ context.Context, department string, from, to time.Time) ([]*availability.Record, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*availability.Record
	for _, rec := range r.store.avail {
		if rec.Department() != department {
			continue
		}
		if rec.DateOf().Before(event.Date(from)) || rec.DateOf().After(event.Date(to)) {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

type fakeReads struct {
	store *fakeStore
}

func (r *fakeReads) ActiveEventsOn(ctx context.Context, date time.Time) ([]*event.Event, error) {
	return (&fakeEventRepo{store: r.store}).ActiveOn(ctx, date)
}

func (r *fakeReads) AvailabilityOn(_ context.Context, department, requirementID string, date time.Time) (*availability.Record, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.avail[availKey(department, requirementID, date)], nil
}

type fakeCatalog struct {
	requirements map[string][]shared.CatalogRequirement
}

func (c *fakeCatalog) ListDepartments(context.Context) ([]shared.Department, error) {
	var out []shared.Department
	for name := range c.requirements {
		out = append(out, shared.Department{ID: uuid.New(), Name: name})
	}
	return out, nil
}

func (c *fakeCatalog) DepartmentRequirements(_ context.Context, department string) ([]shared.CatalogRequirement, error) {
	return c.requirements[department], nil
}
