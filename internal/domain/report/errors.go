package report

import "errors"

// ErrUnknownDimension marks an aggregate request over an unsupported axis.
var ErrUnknownDimension = errors.New("unknown aggregate dimension")
