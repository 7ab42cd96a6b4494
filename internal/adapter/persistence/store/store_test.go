package store

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	mu    sync.Mutex
	calls []string
	errs  int
}

func (o *recordingObserver) StoreRefreshed(store string, _ time.Duration, _ int, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.calls = append(o.calls, store)
	if err != nil {
		o.errs++
	}
}

func TestStore_RefreshAndSnapshotCopy(t *testing.T) {
	s := New[int]("numbers", func(context.Context) ([]int, error) { return []int{3, 1, 2}, nil }, nil)
	assert.False(t, s.Loaded())
	assert.Empty(t, s.Snapshot())

	require.NoError(t, s.Refresh(context.Background()))
	assert.True(t, s.Loaded())
	assert.False(t, s.LoadedAt().IsZero())

	snap := s.Snapshot()
	snap[0] = 99
	assert.Equal(t, []int{3, 1, 2}, s.Snapshot(), "mutating a snapshot must not leak into the cache")
}

func TestStore_FailedRefreshKeepsPreviousSnapshot(t *testing.T) {
	fail := false
	obs := &recordingObserver{}
	s := New[string]("names", func(context.Context) ([]string, error) {
		if fail {
			return nil, errors.New("dynamo down")
		}
		return []string{"a"}, nil
	}, obs)

	require.NoError(t, s.Refresh(context.Background()))
	fail = true
	require.Error(t, s.Refresh(context.Background()))

	assert.Equal(t, []string{"a"}, s.Snapshot())
	assert.Equal(t, []string{"names", "names"}, obs.calls)
	assert.Equal(t, 1, obs.errs)
}

func TestStore_ConcurrentRefreshSharesOneLoad(t *testing.T) {
	var loads atomic.Int32
	release := make(chan struct{})
	s := New[int]("slow", func(context.Context) ([]int, error) {
		loads.Add(1)
		<-release
		return []int{1}, nil
	}, nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Refresh(context.Background())
		}()
	}
	require.Eventually(t, func() bool { return loads.Load() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), loads.Load())
	assert.Equal(t, []int{1}, s.Snapshot())
}

func TestStore_Replace(t *testing.T) {
	s := New[int]("manual", nil, nil)
	items := []int{1, 2}
	s.Replace(items)
	items[0] = 42

	assert.True(t, s.Loaded())
	assert.Equal(t, []int{1, 2}, s.Snapshot())
}

func TestStore_CancelledCallerDoesNotAbortSharedLoad(t *testing.T) {
	var loads atomic.Int32
	release := make(chan struct{})
	loadErr := make(chan error, 1)
	s := New[int]("shared", func(ctx context.Context) ([]int, error) {
		loads.Add(1)
		<-release
		loadErr <- ctx.Err()
		return []int{7}, nil
	}, nil)

	first, cancel := context.WithCancel(context.Background())
	firstDone := make(chan error, 1)
	go func() { firstDone <- s.Refresh(first) }()
	require.Eventually(t, func() bool { return loads.Load() == 1 }, time.Second, 5*time.Millisecond)

	secondDone := make(chan error, 1)
	go func() { secondDone <- s.Refresh(context.Background()) }()
	time.Sleep(20 * time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-firstDone, context.Canceled)

	close(release)
	require.NoError(t, <-secondDone)
	assert.NoError(t, <-loadErr, "the shared load must not see the first caller's cancellation")
	assert.Equal(t, int32(1), loads.Load())
	assert.Equal(t, []int{7}, s.Snapshot())
}

func TestStore_LoadTimeout(t *testing.T) {
	s := New[int]("stuck", func(ctx context.Context) ([]int, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}, nil).WithLoadTimeout(20 * time.Millisecond)

	err := s.Refresh(context.Background())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, s.Loaded())
}
