package util

import "github.com/google/uuid"

// NewID returns a new random identifier suitable for task ids.
func NewID() string { return uuid.NewString() }
