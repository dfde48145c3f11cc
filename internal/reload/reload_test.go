package reload

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"bell-lookup/internal/catalog"
	"bell-lookup/internal/channel"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type scriptedSource struct {
	mu    sync.Mutex
	calls int
	fail  bool
}

func (s *scriptedSource) FetchChannels(context.Context) ([]channel.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.fail {
		return nil, errors.New("backend down")
	}
	name := "TSN"
	return []channel.Record{{Index: s.calls, Name: &name}}, nil
}

func (s *scriptedSource) setFail(v bool) {
	s.mu.Lock()
	s.fail = v
	s.mu.Unlock()
}

func (s *scriptedSource) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func TestRunOnceReplaces(t *testing.T) {
	cat, err := catalog.New()
	require.NoError(t, err)
	src := &scriptedSource{}
	r := New(src, cat, "@every 1h")

	require.NoError(t, r.RunOnce(context.Background()))
	snap, err := cat.Snapshot()
	require.NoError(t, err)
	assert.False(t, snap.Loading)
	require.Len(t, snap.Channels, 1)
	assert.Equal(t, 1, snap.Channels[0].ID)
}

func TestRunOnceFailureKeepsCatalog(t *testing.T) {
	cat, err := catalog.New()
	require.NoError(t, err)
	src := &scriptedSource{}
	r := New(src, cat, "@every 1h")
	require.NoError(t, r.RunOnce(context.Background()))

	src.setFail(true)
	assert.Error(t, r.RunOnce(context.Background()))
	snap, err := cat.Snapshot()
	require.NoError(t, err)
	require.Len(t, snap.Channels, 1)
	assert.Equal(t, 1, snap.Channels[0].ID)
}

func TestRunInitialFailureClearsLoading(t *testing.T) {
	cat, err := catalog.New()
	require.NoError(t, err)
	src := &scriptedSource{fail: true}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- New(src, cat, "@every 1h").Run(ctx) }()

	require.Eventually(t, func() bool { return src.count() >= 1 }, time.Second, 5*time.Millisecond)
	require.Eventually(t, func() bool {
		snap, err := cat.Snapshot()
		return err == nil && !snap.Loading
	}, time.Second, 5*time.Millisecond)
	cancel()
	require.NoError(t, <-done)
}

func TestRunSchedules(t *testing.T) {
	cat, err := catalog.New()
	require.NoError(t, err)
	src := &scriptedSource{}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- New(src, cat, "@every 1s").Run(ctx) }()

	require.Eventually(t, func() bool { return src.count() >= 2 }, 3*time.Second, 20*time.Millisecond)
	cancel()
	require.NoError(t, <-done)
}

func TestRunBadSchedule(t *testing.T) {
	cat, err := catalog.New()
	require.NoError(t, err)
	err = New(&scriptedSource{}, cat, "every now and then").Run(context.Background())
	assert.ErrorContains(t, err, "bad schedule")
}
