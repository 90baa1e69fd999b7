package future

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNew_PendingUntilFulfilled(t *testing.T) {
	promise, fut := New[string]()
	require.False(t, fut.Done())

	promise.Fulfill("ready")
	require.True(t, fut.Done())
	require.Equal(t, "ready", fut.Await())
}

func TestFulfill_FirstValueWins(t *testing.T) {
	promise, fut := New[int]()
	promise.Fulfill(1)
	require.NotPanics(t, func() { promise.Fulfill(2) })
	require.Equal(t, 1, fut.Await())
}

func TestAwait_ManyWaitersSeeSameValue(t *testing.T) {
	promise, fut := New[int]()

	var wg sync.WaitGroup
	got := make([]int, 8)
	for i := range got {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got[i] = fut.Await()
		}()
	}

	promise.Fulfill(7)
	wg.Wait()
	for _, v := range got {
		require.Equal(t, 7, v)
	}
	require.Equal(t, 7, fut.Await(), "a resolved future can be awaited again")
}

func TestResolved_DoesNotBlock(t *testing.T) {
	fut := Resolved([]string{"a"})
	require.True(t, fut.Done())
	require.Equal(t, []string{"a"}, fut.Await())
}

func TestZeroFuture_ResolvedWithZeroValue(t *testing.T) {
	var fut Future[int]
	require.True(t, fut.Done())
	require.Zero(t, fut.Await())
	require.NotPanics(t, fut.Wait)
}

func TestGo_WaitReturnsAfterSideEffect(t *testing.T) {
	var finished atomic.Bool
	var pending Awaitable = Go(func() struct{} {
		time.Sleep(10 * time.Millisecond)
		finished.Store(true)
		return struct{}{}
	})

	pending.Wait()
	require.True(t, finished.Load())
}

func TestThen_ChainsTransformations(t *testing.T) {
	promise, words := New[[]string]()
	count := Then(words, func(w []string) int { return len(w) })
	label := Then(count, func(n int) bool { return n > 2 })

	promise.Fulfill([]string{"x", "y", "z"})
	require.Equal(t, 3, count.Await())
	require.True(t, label.Await())
}
