package memstore

import (
	"context"
	"sort"
	"sync"

	"barbershop-booking/internal/domain/appointment"
	"barbershop-booking/internal/infra"
	"barbershop-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

const entityName = "appointment"

// AppointmentStore keeps appointments in process memory. Each appointment has
// its own lock, so updates to one id are serialized without blocking others.
type AppointmentStore struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]*entry
}

type entry struct {
	mu   sync.Mutex
	appt appointment.Appointment
}

func NewAppointmentStore() *AppointmentStore {
	return &AppointmentStore{
		entries: make(map[uuid.UUID]*entry),
	}
}

func (s *AppointmentStore) Create(ctx context.Context, a appointment.Appointment) error {
	if err := ctx.Err(); err != nil {
		return infra.Failure("create", entityName, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[a.ID()]; ok {
		return infra.Duplicate(entityName, a.ID().String())
	}
	s.entries[a.ID()] = &entry{appt: a}
	return nil
}

// Update runs fn on the stored appointment while holding its lock and stores
// the result. When fn fails nothing is written and fn's error is returned as is.
func (s *AppointmentStore) Update(
	ctx context.Context,
	id uuid.UUID,
	fn func(appointment.Appointment) (appointment.Appointment, error),
) (appointment.Appointment, error) {
	if err := ctx.Err(); err != nil {
		return appointment.Appointment{}, infra.Failure("update", entityName, err)
	}

	e, ok := s.lookup(id)
	if !ok {
		return appointment.Appointment{}, infra.NotFound(entityName, id.String())
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	next, err := fn(e.appt)
	if err != nil {
		return e.appt, err
	}
	e.appt = next
	return next, nil
}

func (s *AppointmentStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AppointmentView, error) {
	e, ok := s.lookup(id)
	if !ok {
		return nil, infra.NotFound(entityName, id.String())
	}
	return queries.NewAppointmentView(e.snapshot()), nil
}

// List returns every appointment, newest first.
func (s *AppointmentStore) List(ctx context.Context) ([]*queries.AppointmentView, error) {
	s.mu.RLock()
	snapshots := make([]appointment.Appointment, 0, len(s.entries))
	for _, e := range s.entries {
		snapshots = append(snapshots, e.snapshot())
	}
	s.mu.RUnlock()

	sort.Slice(snapshots, func(i, j int) bool {
		ci, cj := snapshots[i].CreatedAt(), snapshots[j].CreatedAt()
		if ci.Equal(cj) {
			return snapshots[i].ID().String() < snapshots[j].ID().String()
		}
		return ci.After(cj)
	})

	result := make([]*queries.AppointmentView, len(snapshots))
	for i, a := range snapshots {
		result[i] = queries.NewAppointmentView(a)
	}
	return result, nil
}

func (s *AppointmentStore) lookup(id uuid.UUID) (*entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[id]
	return e, ok
}

func (e *entry) snapshot() appointment.Appointment {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.appt
}
