package service

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// StaleMarker is implemented by the device repository.
type StaleMarker interface {
	MarkStaleOffline(ctx context.Context, cutoff time.Time) (int64, error)
}

// Sweeper periodically marks devices offline when they have not reported
// telemetry within the configured window.
type Sweeper struct {
	devices      StaleMarker
	offlineAfter time.Duration
	spec         string
	cron         *cron.Cron
}

func NewSweeper(devices StaleMarker, offlineAfter time.Duration, spec string) *Sweeper {
	return &Sweeper{
		devices:      devices,
		offlineAfter: offlineAfter,
		spec:         spec,
	}
}

// Start schedules the sweep and returns. Stop shuts the scheduler down.
func (s *Sweeper) Start() error {
	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc(s.spec, func() {
		s.Sweep(context.Background())
	})
	if err != nil {
		return err
	}

	log.Printf("Device liveness sweep scheduled (%s, offline after %s)", s.spec, s.offlineAfter)
	c.Start()
	s.cron = c
	return nil
}

func (s *Sweeper) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// Sweep runs one pass immediately.
func (s *Sweeper) Sweep(ctx context.Context) {
	cutoff := time.Now().UTC().Add(-s.offlineAfter)

	n, err := s.devices.MarkStaleOffline(ctx, cutoff)
	if err != nil {
		log.Printf("Device sweep failed: %v", err)
		return
	}
	if n > 0 {
		log.Printf("Device sweep marked %d device(s) offline", n)
	}
}
