package majority

import (
	"errors"
)

var (
	ErrClosed      = errors.New("closed")
	ErrConsistency = errors.New("consistency not satisfied")
	ErrNotFound    = errors.New("not found")
	ErrNoMajority  = errors.New("no majority element")
)
