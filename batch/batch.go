// Package batch holds the limits shared by the batch verifiers.
package batch

import (
	"fmt"

	"github.com/Taraxa-project/taraxa-certs/util"
)

// MaxSize is the largest number of items a single batch call accepts.
const MaxSize = 50

const ErrTooLarge = util.ErrorString("batch size exceeds maximum")

// Check rejects batches larger than MaxSize.
func Check(n int) error {
	if n > MaxSize {
		return fmt.Errorf("%w: %d > %d", ErrTooLarge, n, MaxSize)
	}
	return nil
}
