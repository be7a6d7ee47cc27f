package feed

import "errors"

var ErrMissingChannel = errors.New("missing channel in RSS input")
