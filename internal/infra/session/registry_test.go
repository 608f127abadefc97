//go:build unit

package session_test

import (
	"context"
	"testing"
	"time"

	"room-booking/internal/infra/session"
	"room-booking/internal/pkg/clock"
	"room-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

var epoch = time.Date(2024, 3, 25, 9, 0, 0, 0, time.UTC)

func TestRegistryGet(t *testing.T) {
	r := session.NewRegistry(clock.NewMockClock(epoch), time.Hour, nil)
	id := uuid.New()

	_, ok := r.Lookup(id)
	require.False(t, ok)

	s := r.Get(id)
	assert.Equal(t, id, s.ID)
	assert.Same(t, s, r.Get(id))
	assert.Equal(t, 1, r.Len())

	found, ok := r.Lookup(id)
	require.True(t, ok)
	assert.Same(t, s, found)
}

func TestRegistryIsolation(t *testing.T) {
	r := session.NewRegistry(clock.NewMockClock(epoch), time.Hour, nil)
	a, b := r.Get(uuid.New()), r.Get(uuid.New())

	a.Reservations.Add(builder.NewReservationBuilder().BuildDraft())

	assert.Equal(t, 1, a.Reservations.Len())
	assert.Equal(t, 0, b.Reservations.Len())
	assert.NotSame(t, a.Profile, b.Profile)
}

func TestRegistryDrop(t *testing.T) {
	r := session.NewRegistry(clock.NewMockClock(epoch), time.Hour, nil)
	id := uuid.New()
	r.Get(id).Reservations.Add(builder.NewReservationBuilder().BuildDraft())

	r.Drop(id)
	assert.Equal(t, 0, r.Len())
	assert.Equal(t, 0, r.Get(id).Reservations.Len(), "dropped session starts over")
}

func TestRegistrySweep(t *testing.T) {
	t.Run("アイドル期間を超えたセッションだけ消える", func(t *testing.T) {
		clk := clock.NewMockClock(epoch)
		r := session.NewRegistry(clk, 30*time.Minute, nil)
		idle, active := uuid.New(), uuid.New()
		r.Get(idle)
		r.Get(active)

		clk.Add(20 * time.Minute)
		r.Get(active)
		clk.Add(15 * time.Minute)

		assert.Equal(t, 1, r.Sweep())
		_, ok := r.Lookup(idle)
		assert.False(t, ok)
		_, ok = r.Lookup(active)
		assert.True(t, ok)
	})

	t.Run("タイムアウト0は期限切れなし", func(t *testing.T) {
		clk := clock.NewMockClock(epoch)
		r := session.NewRegistry(clk, 0, nil)
		r.Get(uuid.New())
		clk.Add(24 * time.Hour)

		assert.Equal(t, 0, r.Sweep())
		assert.Equal(t, 1, r.Len())
	})
}

func TestRegistryRunSweeper(t *testing.T) {
	defer goleak.VerifyNone(t)

	clk := clock.NewMockClock(epoch)
	r := session.NewRegistry(clk, time.Minute, nil)
	r.Get(uuid.New())
	clk.Add(time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		r.RunSweeper(ctx, time.Millisecond)
	}()

	require.Eventually(t, func() bool { return r.Len() == 0 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop")
	}
}
