package command

import "errors"

// ErrSyntax marks a malformed request the dispatcher itself rejects
// before ever calling into the store (e.g. an odd HSET field/value
// count).
var ErrSyntax = errors.New("syntax error")
