package scheduler

import (
	"bytes"
	"context"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/diegoclair/game-reminder-bot/internal/domain"
	"github.com/diegoclair/game-reminder-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScheduler(t *testing.T, loc *time.Location) *Scheduler {
	t.Helper()

	s := New(loc, nil)
	s.Start()
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		s.Stop(ctx)
	})
	return s
}

func TestScheduler_ScheduleRecurring(t *testing.T) {
	t.Run("Should reject out of range values", func(t *testing.T) {
		s := New(time.UTC, nil)

		tests := []struct {
			name string
			spec entity.RecurringSpec
		}{
			{name: "weekday", spec: entity.RecurringSpec{Weekday: 7}},
			{name: "hour", spec: entity.RecurringSpec{Hour: 24}},
			{name: "minute", spec: entity.RecurringSpec{Minute: 60}},
			{name: "second", spec: entity.RecurringSpec{Second: -1}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := s.ScheduleRecurring(tt.spec, "weekly", func() {})
				assert.ErrorIs(t, err, domain.ErrInvalidSpec)
			})
		}
		assert.Empty(t, s.Jobs())
	})

	t.Run("Should first run at the start instant", func(t *testing.T) {
		s := newTestScheduler(t, time.UTC)

		startAt := time.Now().In(time.UTC).Add(time.Hour)
		tick := entity.WeeklyTickAt(startAt)

		handle, err := s.ScheduleRecurring(tick.Spec(), "weekly", func() {})
		require.NoError(t, err)
		assert.Equal(t, entity.JobKindRecurring, handle.Kind)
		assert.Equal(t, "weekly", handle.Name)

		jobs := s.Jobs()
		require.Len(t, jobs, 1)
		assert.Equal(t, handle, jobs[0].Handle)
		assert.True(t, startAt.Truncate(time.Second).Equal(jobs[0].Next), "got %s", jobs[0].Next)
	})
}

func TestScheduler_ScheduleRecurring_StartingNow(t *testing.T) {
	s := newTestScheduler(t, time.UTC)

	now := time.Now()
	tick := entity.WeeklyTickAt(now.In(time.UTC))

	fired := make(chan struct{}, 1)
	_, err := s.ScheduleRecurring(tick.Spec(), "weekly", func() {
		select {
		case fired <- struct{}{}:
		default:
		}
	})
	require.NoError(t, err)

	select {
	case <-fired:
	case <-time.After(3 * time.Second):
		t.Fatal("weekly job starting now did not run")
	}

	// Once run, the job waits for the same slot next week
	jobs := s.Jobs()
	require.Len(t, jobs, 1)
	want := now.Truncate(time.Second).AddDate(0, 0, 7)
	assert.WithinDuration(t, want, jobs[0].Next, time.Second)
}

func TestScheduler_ScheduleOnce(t *testing.T) {
	t.Run("Should reject a wall clock time that does not exist", func(t *testing.T) {
		ny, err := time.LoadLocation("America/New_York")
		require.NoError(t, err)

		s := New(ny, nil)

		// Clocks jump from 02:00 to 03:00 that night
		spec := entity.OnceSpec{Year: 2022, Month: time.March, Day: 13, Hour: 2, Minute: 30}
		_, err = s.ScheduleOnce(spec, "reminder-1", func() {})
		assert.ErrorIs(t, err, domain.ErrInvalidSpec)
	})

	t.Run("Should warn when the wall clock time occurs twice", func(t *testing.T) {
		ny, err := time.LoadLocation("America/New_York")
		require.NoError(t, err)

		tests := []struct {
			name     string
			spec     entity.OnceSpec
			wantWarn bool
		}{
			{
				// Clocks go back from 02:00 EDT to 01:00 EST that night
				name:     "repeated hour",
				spec:     entity.OnceSpec{Year: 2022, Month: time.November, Day: 6, Hour: 1, Minute: 30},
				wantWarn: true,
			},
			{
				name: "regular hour",
				spec: entity.OnceSpec{Year: 2022, Month: time.November, Day: 6, Hour: 3, Minute: 30},
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				var logs bytes.Buffer
				s := New(ny, slog.New(slog.NewTextHandler(&logs, nil)))

				handle, err := s.ScheduleOnce(tt.spec, "reminder-1", func() {})
				require.NoError(t, err)
				assert.Equal(t, entity.JobKindOnce, handle.Kind)

				if tt.wantWarn {
					assert.Contains(t, logs.String(), "occurs twice")
					assert.Contains(t, logs.String(), "first=2022-11-06T01:30:00-04:00")
					assert.Contains(t, logs.String(), "second=2022-11-06T01:30:00-05:00")
				} else {
					assert.NotContains(t, logs.String(), "occurs twice")
				}
			})
		}
	})

	t.Run("Should reject an out of range date", func(t *testing.T) {
		s := New(time.UTC, nil)

		spec := entity.OnceSpec{Year: 2022, Month: time.February, Day: 30, Hour: 10}
		_, err := s.ScheduleOnce(spec, "reminder-1", func() {})
		assert.ErrorIs(t, err, domain.ErrInvalidSpec)
	})

	t.Run("Should list a pending job until it is cancelled", func(t *testing.T) {
		s := newTestScheduler(t, time.UTC)

		at := time.Now().In(time.UTC).Add(2 * time.Hour)
		spec := entity.OnceSpecAt(at, time.UTC)

		var calls atomic.Int32
		handle, err := s.ScheduleOnce(spec, "reminder-1", func() { calls.Add(1) })
		require.NoError(t, err)
		assert.Equal(t, entity.JobKindOnce, handle.Kind)

		jobs := s.Jobs()
		require.Len(t, jobs, 1)
		assert.True(t, spec.Time(time.UTC).Equal(jobs[0].Next))

		s.Cancel(handle)
		assert.Empty(t, s.Jobs())

		// Cancelling twice is harmless
		s.Cancel(handle)
		assert.Equal(t, int32(0), calls.Load())
	})

	t.Run("Should fire an overdue job right away and only once", func(t *testing.T) {
		s := newTestScheduler(t, time.UTC)

		spec := entity.OnceSpecAt(time.Now().Add(-2*time.Minute), time.UTC)

		var calls atomic.Int32
		fired := make(chan struct{}, 1)
		_, err := s.ScheduleOnce(spec, "reminder-1", func() {
			calls.Add(1)
			fired <- struct{}{}
		})
		require.NoError(t, err)

		select {
		case <-fired:
		case <-time.After(3 * time.Second):
			t.Fatal("one-shot job did not fire")
		}

		assert.Eventually(t, func() bool {
			return len(s.Jobs()) == 0
		}, 2*time.Second, 20*time.Millisecond)

		time.Sleep(1100 * time.Millisecond)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("Should keep running after a job panics", func(t *testing.T) {
		s := newTestScheduler(t, time.UTC)

		past := entity.OnceSpecAt(time.Now().Add(-time.Minute), time.UTC)

		_, err := s.ScheduleOnce(past, "reminder-1", func() { panic("boom") })
		require.NoError(t, err)

		fired := make(chan struct{}, 1)
		_, err = s.ScheduleOnce(past, "reminder-2", func() { fired <- struct{}{} })
		require.NoError(t, err)

		select {
		case <-fired:
		case <-time.After(3 * time.Second):
			t.Fatal("job after panic did not fire")
		}
	})
}
