package exposure

import "github.com/pkg/errors"

// ErrUnknownModel is returned when a route/name pair does not resolve to a
// catalog entry.
var ErrUnknownModel = errors.New("unknown model")
