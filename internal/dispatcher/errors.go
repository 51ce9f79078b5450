package dispatcher

import "errors"

// ErrNoHandler indicates no handler is registered for an action.
var ErrNoHandler = errors.New("no handler registered for action")
