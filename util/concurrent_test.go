package util

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripedMutexSameKeySameStripe(t *testing.T) {
	assert := assert.New(t)
	m := NewStripedMutex(16)
	assert.Equal(16, m.Len())
	for i := 0; i < 100; i++ {
		key := "cert-" + strconv.Itoa(i)
		assert.True(m.For(key) == m.For(key))
	}
}

func TestStripedMutexNonPositiveStripes(t *testing.T) {
	assert.Equal(t, 1, NewStripedMutex(0).Len())
	assert.Equal(t, 1, NewStripedMutex(-5).Len())
}

func TestStripedMutexSerializes(t *testing.T) {
	m := NewStripedMutex(4)
	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer LockUnlock(m.For("shared"))()
			counter++
		}()
	}
	wg.Wait()
	assert.Equal(t, 64, counter)
}

func TestErrorString(t *testing.T) {
	const err = ErrorString("boom")
	assert.EqualError(t, err, "boom")
	assert.Panics(t, func() { PanicOn(err) })
	assert.NotPanics(t, func() { PanicOn(nil) })
}
