package ir

import "errors"

// MaxDepth bounds container nesting in the recursive algorithms so that
// adversarially deep input reports ErrTooDeep instead of exhausting the
// call stack.
const MaxDepth = 512

var ErrTooDeep = errors.New("nesting too deep")
