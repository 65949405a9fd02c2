package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeStaleMarker struct {
	cutoff time.Time
	n      int64
	err    error
	calls  int
}

func (f *fakeStaleMarker) MarkStaleOffline(_ context.Context, cutoff time.Time) (int64, error) {
	f.calls++
	f.cutoff = cutoff
	return f.n, f.err
}

func TestSweep_UsesConfiguredWindow(t *testing.T) {
	fake := &fakeStaleMarker{n: 2}
	s := NewSweeper(fake, 24*time.Hour, "0 */15 * * * *")

	before := time.Now().UTC().Add(-24 * time.Hour)
	s.Sweep(context.Background())
	after := time.Now().UTC().Add(-24 * time.Hour)

	assert.Equal(t, 1, fake.calls)
	assert.False(t, fake.cutoff.Before(before))
	assert.False(t, fake.cutoff.After(after))
}

func TestSweep_RepositoryErrorIsSwallowed(t *testing.T) {
	fake := &fakeStaleMarker{err: errors.New("db down")}
	s := NewSweeper(fake, time.Hour, "0 */15 * * * *")

	assert.NotPanics(t, func() {
		s.Sweep(context.Background())
	})
	assert.Equal(t, 1, fake.calls)
}
