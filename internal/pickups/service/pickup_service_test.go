package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecotrack-iot/ecotrack-backend/internal/pickups/domain"
)

type fakePickupStore struct {
	pickups map[int64]*domain.Pickup
}

func (f *fakePickupStore) GetByID(_ context.Context, id int64) (*domain.Pickup, error) {
	p, ok := f.pickups[id]
	if !ok {
		return nil, domain.ErrPickupNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakePickupStore) ListByWorker(_ context.Context, workerID int64) ([]domain.Pickup, error) {
	out := make([]domain.Pickup, 0)
	for _, p := range f.pickups {
		if p.WorkerID == workerID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePickupStore) MarkCollected(_ context.Context, id int64) (*domain.Pickup, error) {
	p, ok := f.pickups[id]
	if !ok || p.Status != domain.StatusPending {
		return nil, domain.ErrPickupNotFound
	}
	p.Status = domain.StatusCollected
	cp := *p
	return &cp, nil
}

func newStore() *fakePickupStore {
	return &fakePickupStore{pickups: map[int64]*domain.Pickup{
		1: {ID: 1, HouseholdID: 10, WorkerID: 30, Status: domain.StatusPending, Date: time.Now().UTC()},
	}}
}

func TestConfirm_AssignedWorker(t *testing.T) {
	store := newStore()
	svc := NewPickupService(store)

	p, err := svc.Confirm(context.Background(), 1, 30)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCollected, p.Status)
	assert.Equal(t, domain.StatusCollected, store.pickups[1].Status)
}

func TestConfirm_Idempotent(t *testing.T) {
	store := newStore()
	svc := NewPickupService(store)

	first, err := svc.Confirm(context.Background(), 1, 30)
	require.NoError(t, err)

	second, err := svc.Confirm(context.Background(), 1, 30)
	require.NoError(t, err)
	assert.Equal(t, first.Status, second.Status)
	assert.Equal(t, domain.StatusCollected, second.Status)
}

func TestConfirm_WrongWorker(t *testing.T) {
	store := newStore()
	svc := NewPickupService(store)

	_, err := svc.Confirm(context.Background(), 1, 99)
	require.ErrorIs(t, err, domain.ErrNotAssignedWorker)
	assert.Equal(t, domain.StatusPending, store.pickups[1].Status)
}

func TestConfirm_UnknownPickup(t *testing.T) {
	svc := NewPickupService(newStore())

	_, err := svc.Confirm(context.Background(), 42, 30)
	require.ErrorIs(t, err, domain.ErrPickupNotFound)
}

func TestListForWorker(t *testing.T) {
	store := newStore()
	store.pickups[2] = &domain.Pickup{ID: 2, HouseholdID: 11, WorkerID: 31, Status: domain.StatusPending}
	svc := NewPickupService(store)

	got, err := svc.ListForWorker(context.Background(), 30)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
}
