package keylock

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSerializesSameKey(t *testing.T) {
	s := New()
	const workers = 20

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Lock("a")
			defer s.Unlock("a")
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, workers, counter)
}

func TestIndependentKeys(t *testing.T) {
	s := New()
	s.Lock("a")

	done := make(chan struct{})
	go func() {
		s.Lock("b")
		s.Unlock("b")
		close(done)
	}()

	// Locking "b" must not block on the held "a" lock.
	<-done
	s.Unlock("a")
}

func TestUnlockUnknownKeyPanics(t *testing.T) {
	s := New()
	assert.Panics(t, func() { s.Unlock("never-locked") })
}
