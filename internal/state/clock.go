package state

import (
	"sync/atomic"

	"github.com/google/uuid"
)

var sequence uint64

func nextSequence() uint64 {
	return atomic.AddUint64(&sequence, 1)
}

// NextID returns a time-ordered unique identifier for a new body
func NextID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
