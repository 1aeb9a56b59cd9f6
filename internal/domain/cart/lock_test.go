package cart

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionLocksSerialiseReadModifyWrite(t *testing.T) {
	ctx := context.Background()
	locks := NewSessionLocks()
	slots := NewMemorySlots()
	p := newProduct(1, "Mug", 1000)
	log, _ := testLogger()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock, err := locks.Lock(ctx, "s1")
			if !assert.NoError(t, err) {
				return
			}
			defer unlock()

			store := NewStore(ctx, slots.ForSession("s1"), log)
			time.Sleep(time.Millisecond)
			store.AddItem(ctx, p, 1)
		}()
	}
	wg.Wait()

	store := NewStore(ctx, slots.ForSession("s1"), log)
	assert.Equal(t, 20, store.ItemQuantity(1))
	assert.Equal(t, 0, locks.size())
}

func TestSessionLocksAreIndependentPerSession(t *testing.T) {
	ctx := context.Background()
	locks := NewSessionLocks()

	unlockA, err := locks.Lock(ctx, "a")
	require.NoError(t, err)
	defer unlockA()

	unlockB, err := locks.Lock(ctx, "b")
	require.NoError(t, err)
	unlockB()
}

func TestSessionLocksHonourContext(t *testing.T) {
	locks := NewSessionLocks()

	unlock, err := locks.Lock(context.Background(), "s1")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = locks.Lock(ctx, "s1")
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	unlock()
	unlock()
	assert.Equal(t, 0, locks.size())

	again, err := locks.Lock(context.Background(), "s1")
	require.NoError(t, err)
	again()
}
