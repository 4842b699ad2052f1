package intake

import "errors"

var (
	ErrInvalidBatchSize = errors.New("import batch size must be positive")
	ErrCursorStuck      = errors.New("import cursor cannot advance")
)
