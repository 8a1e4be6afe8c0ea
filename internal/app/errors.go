package app

import "errors"

// ErrDeckNotFound reports a deck lookup miss from any repository.
var ErrDeckNotFound = errors.New("deck not found")
