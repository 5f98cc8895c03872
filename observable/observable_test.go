// SPDX-License-Identifier: MIT

package observable_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/katalvlaran/ganvalue/observable"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestValue_GetSet(t *testing.T) {
	v := observable.New(1.5)
	assert.Equal(t, 1.5, v.Get())
	v.Set(2)
	assert.Equal(t, 2.0, v.Get())

	var zero observable.Value[string]
	assert.Equal(t, "", zero.Get())
	zero.Set("x")
	assert.Equal(t, "x", zero.Get())
}

// TestValue_NotifiesEveryWrite: every Set notifies, including no-op writes,
// in subscription order with (prev, next).
func TestValue_NotifiesEveryWrite(t *testing.T) {
	v := observable.New(0)
	var log []string
	v.Subscribe(func(prev, next int) { log = append(log, "a") })
	v.Subscribe(func(prev, next int) {
		log = append(log, "b")
		assert.Equal(t, next, v.Get(), "value is stored before notification")
	})

	v.Set(1)
	v.Set(1)
	assert.Equal(t, []string{"a", "b", "a", "b"}, log)

	var pairs [][2]int
	v.Subscribe(func(prev, next int) { pairs = append(pairs, [2]int{prev, next}) })
	v.Set(5)
	v.Update(func(x int) int { return x * 2 })
	assert.Equal(t, [][2]int{{1, 5}, {5, 10}}, pairs)
}

func TestValue_Unsubscribe(t *testing.T) {
	v := observable.New("a")
	var calls int
	s1 := v.Subscribe(func(_, _ string) { calls++ })
	s2 := v.Subscribe(func(_, _ string) { calls += 10 })
	require.NotEqual(t, uuid.Nil, s1.ID)
	require.NotEqual(t, s1.ID, s2.ID)
	require.Equal(t, 2, v.Len())

	assert.True(t, v.Unsubscribe(s1))
	assert.False(t, v.Unsubscribe(s1), "second removal is a no-op")
	v.Set("b")
	assert.Equal(t, 10, calls)

	assert.Equal(t, observable.Subscription{}, v.Subscribe(nil))
	assert.Equal(t, 1, v.Len())
}

// TestValue_ReentrantCallback: a callback may write other cells and read its own.
func TestValue_ReentrantCallback(t *testing.T) {
	src := observable.New(1)
	dst := observable.New(0)
	src.Subscribe(func(_, n int) { dst.Set(n * src.Get()) })

	src.Set(3)
	assert.Equal(t, 9, dst.Get())
}

func TestValue_Concurrent(t *testing.T) {
	v := observable.New(0)
	var notified atomic.Int64
	v.Subscribe(func(_, _ int) { notified.Add(1) })

	const n = 200
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			v.Update(func(x int) int { return x + 1 })
			_ = v.Get()
		}()
	}
	wg.Wait()

	assert.Equal(t, n, v.Get())
	assert.Equal(t, int64(n), notified.Load())
}
