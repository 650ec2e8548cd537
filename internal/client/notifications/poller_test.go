package notifications

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yuyuwang/yuyu-cli/internal/client/models"
	"github.com/yuyuwang/yuyu-cli/internal/notify"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestStartPolling_FetchesImmediatelyThenOnInterval(t *testing.T) {
	api := &fakeAPI{NotificationsRet: [][]*models.Notification{{notif(1, false)}}}
	s := NewStore(api, 20*time.Millisecond, testLogger(), notify.Discard{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s.StartPolling(ctx)
	waitFor(t, func() bool { return api.fetches() >= 2 })
	require.True(t, s.Polling())
	require.Len(t, s.Items(), 1)

	s.StopPolling()
	require.False(t, s.Polling())
}

func TestStartPolling_ReentrantStartIsNoop(t *testing.T) {
	api := &fakeAPI{}
	s := NewStore(api, time.Hour, testLogger(), notify.Discard{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s.StartPolling(ctx)
	s.StartPolling(ctx)
	s.StartPolling(ctx)

	// Only the first start schedules a loop, so exactly one immediate fetch.
	waitFor(t, func() bool { return api.fetches() == 1 })
	time.Sleep(30 * time.Millisecond)
	require.Equal(t, 1, api.fetches())

	s.StopPolling()
}

func TestStopPolling_Idempotent(t *testing.T) {
	api := &fakeAPI{}
	s := NewStore(api, time.Hour, testLogger(), notify.Discard{})

	s.StopPolling() // never started

	ctx := context.Background()
	s.StartPolling(ctx)
	s.StopPolling()
	s.StopPolling()
	require.False(t, s.Polling())
}

func TestStartPolling_RestartsAfterStop(t *testing.T) {
	api := &fakeAPI{}
	s := NewStore(api, time.Hour, testLogger(), notify.Discard{})
	ctx := context.Background()

	s.StartPolling(ctx)
	waitFor(t, func() bool { return api.fetches() == 1 })
	s.StopPolling()

	s.StartPolling(ctx)
	waitFor(t, func() bool { return api.fetches() == 2 })
	s.StopPolling()
}

func TestStartPolling_ParentContextCancelReleasesLoop(t *testing.T) {
	api := &fakeAPI{}
	s := NewStore(api, time.Hour, testLogger(), notify.Discard{})

	ctx, cancel := context.WithCancel(context.Background())
	s.StartPolling(ctx)
	waitFor(t, func() bool { return api.fetches() == 1 })

	cancel()
	waitFor(t, func() bool { return !s.Polling() })

	// Can start again after the parent died.
	s.StartPolling(context.Background())
	waitFor(t, func() bool { return api.fetches() == 2 })
	s.StopPolling()
}

func TestClearNotifications_StopsPolling(t *testing.T) {
	api := &fakeAPI{NotificationsRet: [][]*models.Notification{{notif(1, false)}}}
	s := NewStore(api, time.Hour, testLogger(), notify.Discard{})

	s.StartPolling(context.Background())
	waitFor(t, func() bool { return len(s.Items()) == 1 })

	s.ClearNotifications()
	require.False(t, s.Polling())
	require.Empty(t, s.Items())
}
