package restate

import "errors"

// ErrStoreClosed is returned by every store operation once the store has
// been closed, or once its worker has terminated. Operations never hang on
// a dead worker.
var ErrStoreClosed = errors.New("restate: store closed")
