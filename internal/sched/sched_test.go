package sched_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hyunwoopark/podomarket/internal/sched"
)

func TestSchedule_Fires(t *testing.T) {
	var fired atomic.Int32
	sched.Schedule(10*time.Millisecond, func() { fired.Add(1) })

	assert.Eventually(t, func() bool { return fired.Load() == 1 },
		time.Second, 5*time.Millisecond)
}

func TestSchedule_Cancel(t *testing.T) {
	var fired atomic.Int32
	task := sched.Schedule(50*time.Millisecond, func() { fired.Add(1) })

	assert.True(t, task.Cancel())
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(0), fired.Load(), "cancelled task must not fire")
	assert.False(t, task.Cancel(), "second cancel reports nothing to stop")
}

func TestDebouncer_CoalescesBurst(t *testing.T) {
	var fired atomic.Int32
	db := sched.NewDebouncer(30 * time.Millisecond)

	for i := 0; i < 5; i++ {
		db.Trigger(func() { fired.Add(1) })
		time.Sleep(5 * time.Millisecond)
	}

	assert.Eventually(t, func() bool { return fired.Load() == 1 },
		time.Second, 5*time.Millisecond)

	// Quiet period over; no further callbacks.
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(1), fired.Load(), "burst must collapse to one callback")
}

func TestDebouncer_LastTriggerWins(t *testing.T) {
	var got atomic.Int32
	db := sched.NewDebouncer(20 * time.Millisecond)

	db.Trigger(func() { got.Store(1) })
	db.Trigger(func() { got.Store(2) })

	assert.Eventually(t, func() bool { return got.Load() == 2 },
		time.Second, 5*time.Millisecond)
}

func TestDebouncer_StopCancelsPending(t *testing.T) {
	var fired atomic.Int32
	db := sched.NewDebouncer(30 * time.Millisecond)

	db.Trigger(func() { fired.Add(1) })
	db.Stop()

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(0), fired.Load(), "no callback may run after teardown")

	db.Trigger(func() { fired.Add(1) })
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(0), fired.Load(), "triggers after Stop are ignored")
}
