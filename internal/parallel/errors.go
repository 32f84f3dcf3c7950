package parallel

import "errors"

// ErrClosed is returned by Run on a pool that has been closed.
var ErrClosed = errors.New("parallel: pool closed")
