package batch

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheck(t *testing.T) {
	assert := assert.New(t)
	assert.NoError(Check(0))
	assert.NoError(Check(MaxSize))
	err := Check(MaxSize + 1)
	assert.True(errors.Is(err, ErrTooLarge))
	assert.EqualError(err, "batch size exceeds maximum: 51 > 50")
}
