package manager

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/MrJamesThe3rd/conectando/internal/lock"
)

const sweepLock = "manager-sweep"

type Sweeper interface {
	Sweep(ctx context.Context) (SweepResult, error)
}

// Locker is satisfied by *lock.Redis. A nil Locker runs every tick locally.
type Locker interface {
	TryAcquire(ctx context.Context, name string, ttl time.Duration) (*lock.Lease, bool, error)
}

// Scheduler runs the sweep on a cron schedule with seconds precision.
type Scheduler struct {
	cron    *cron.Cron
	sweeper Sweeper
	locker  Locker
	lockTTL time.Duration
}

func NewScheduler(sweeper Sweeper, locker Locker, lockTTL time.Duration) *Scheduler {
	return &Scheduler{
		cron:    cron.New(cron.WithSeconds()),
		sweeper: sweeper,
		locker:  locker,
		lockTTL: lockTTL,
	}
}

// Start registers the sweep under spec and starts the cron loop in the background.
func (s *Scheduler) Start(spec string) error {
	if _, err := s.cron.AddFunc(spec, func() { s.RunOnce(context.Background()) }); err != nil {
		return fmt.Errorf("scheduling sweep %q: %w", spec, err)
	}

	s.cron.Start()
	slog.Info("sweep scheduler started", "schedule", spec, "distributed_lock", s.locker != nil)

	return nil
}

// Stop waits for a running sweep to finish or ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
	}
}

// RunOnce runs a single sweep if this instance gets the lock. It reports whether the sweep ran.
func (s *Scheduler) RunOnce(ctx context.Context) bool {
	if s.locker != nil {
		lease, ok, err := s.locker.TryAcquire(ctx, sweepLock, s.lockTTL)
		if err != nil {
			slog.Error("sweep lock failed", "error", err)
			return false
		}

		if !ok {
			slog.Info("sweep skipped, another instance holds the lock")
			return false
		}

		defer func() {
			if err := lease.Release(ctx); err != nil {
				slog.Warn("sweep lock release failed", "error", err)
			}
		}()
	}

	if _, err := s.sweeper.Sweep(ctx); err != nil {
		slog.Error("scheduled sweep failed", "error", err)
		return false
	}

	return true
}
