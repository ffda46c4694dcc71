package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSystem(t *testing.T) {
	before := uint64(time.Now().Unix())
	now := System{}.Now()
	assert.True(t, now >= before && now <= before+1)
}

func TestManual(t *testing.T) {
	assert := assert.New(t)
	c := NewManual(100)
	assert.Equal(uint64(100), c.Now())
	assert.Equal(uint64(105), c.Advance(5))
	c.Set(7)
	assert.Equal(uint64(7), c.Now())
}
