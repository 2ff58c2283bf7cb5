package browse

import "errors"

// Sentinel errors.
var ErrEmptyDocument = errors.New("result document has no variables")
