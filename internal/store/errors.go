package store

import "errors"

// ErrWrongType is returned when a command targets a key holding a value
// of a different kind than the command expects.
var ErrWrongType = errors.New("wrong type")

// ErrNotInteger is returned when a string value can't be parsed as a
// signed 64-bit integer, or overflows one, during INCR/DECR.
var ErrNotInteger = errors.New("value is not an integer or out of range")
