package manager_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/conectando/internal/lock"
	"github.com/MrJamesThe3rd/conectando/internal/manager"
)

type fakeSweeper struct {
	calls int
	err   error
}

func (f *fakeSweeper) Sweep(context.Context) (manager.SweepResult, error) {
	f.calls++
	return manager.SweepResult{}, f.err
}

func TestScheduler_RunOnce_WithoutLocker(t *testing.T) {
	sweeper := &fakeSweeper{}
	s := manager.NewScheduler(sweeper, nil, time.Minute)

	assert.True(t, s.RunOnce(context.Background()))
	assert.Equal(t, 1, sweeper.calls)
}

func TestScheduler_RunOnce_SweepError(t *testing.T) {
	sweeper := &fakeSweeper{err: errors.New("boom")}
	s := manager.NewScheduler(sweeper, nil, time.Minute)

	assert.False(t, s.RunOnce(context.Background()))
	assert.Equal(t, 1, sweeper.calls)
}

func TestScheduler_RunOnce_Lock(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	locker := lock.NewRedis(client)
	sweeper := &fakeSweeper{}
	s := manager.NewScheduler(sweeper, locker, time.Minute)

	t.Run("runs and releases the lock", func(t *testing.T) {
		assert.True(t, s.RunOnce(ctx))
		assert.Equal(t, 1, sweeper.calls)

		lease, ok, err := locker.TryAcquire(ctx, "manager-sweep", time.Minute)
		require.NoError(t, err)
		require.True(t, ok)
		require.NoError(t, lease.Release(ctx))
	})

	t.Run("skips while another instance holds the lock", func(t *testing.T) {
		lease, ok, err := locker.TryAcquire(ctx, "manager-sweep", time.Minute)
		require.NoError(t, err)
		require.True(t, ok)

		assert.False(t, s.RunOnce(ctx))
		assert.Equal(t, 1, sweeper.calls)

		require.NoError(t, lease.Release(ctx))
	})
}

func TestScheduler_Start_InvalidSpec(t *testing.T) {
	s := manager.NewScheduler(&fakeSweeper{}, nil, time.Minute)

	assert.Error(t, s.Start("not a cron spec"))
}
