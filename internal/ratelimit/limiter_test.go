package ratelimit_test

import (
	"sync"
	"testing"
	"time"

	"github.com/rcatalasan0/491-Project/internal/ratelimit"
	"github.com/stretchr/testify/assert"
)

func TestAllow_UpToMaxThenDenied(t *testing.T) {
	limiter := ratelimit.New(10, time.Minute)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 10; i++ {
		assert.True(t, limiter.Allow("1.2.3.4", now.Add(time.Duration(i)*time.Second)), "attempt %d should be allowed", i+1)
	}

	// The 11th attempt inside the window is the first denial.
	assert.False(t, limiter.Allow("1.2.3.4", now.Add(10*time.Second)))
	assert.False(t, limiter.Allow("1.2.3.4", now.Add(11*time.Second)))
}

func TestAllow_WindowExpiryFreesSlots(t *testing.T) {
	limiter := ratelimit.New(10, time.Minute)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 10; i++ {
		assert.True(t, limiter.Allow("key", now))
	}
	assert.False(t, limiter.Allow("key", now.Add(time.Second)))

	// Once the earlier attempts age out, requests flow again.
	assert.True(t, limiter.Allow("key", now.Add(2*time.Minute)))
}

func TestAllow_DeniedAttemptConsumesSlot(t *testing.T) {
	limiter := ratelimit.New(1, time.Minute)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	assert.True(t, limiter.Allow("key", now))
	assert.False(t, limiter.Allow("key", now.Add(2*time.Second)))

	// The denied attempt at +2s was recorded, so the window is still
	// occupied after the allowed attempt at +0s has aged out.
	assert.False(t, limiter.Allow("key", now.Add(61*time.Second)))

	// Once every recorded attempt has aged out, requests flow again.
	assert.True(t, limiter.Allow("key", now.Add(3*time.Minute)))
}

func TestAllow_KeysAreIndependent(t *testing.T) {
	limiter := ratelimit.New(1, time.Minute)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	assert.True(t, limiter.Allow("alice", now))
	assert.False(t, limiter.Allow("alice", now.Add(time.Second)))

	assert.True(t, limiter.Allow("bob", now.Add(2*time.Second)))
}

func TestAllow_ConcurrentAccessDoesNotLoseAttempts(t *testing.T) {
	const workers = 50

	limiter := ratelimit.New(workers, time.Minute)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			limiter.Allow("shared", now)
		}()
	}
	wg.Wait()

	// All workers' attempts must have been recorded: the window holds
	// exactly `workers` timestamps, so the next attempt is denied.
	assert.False(t, limiter.Allow("shared", now.Add(time.Second)))
}
