package suggestion

import "errors"

var (
	ErrEmptyContext = errors.New("suggestion context must not be empty")
	ErrEmptyQuery   = errors.New("music query must not be empty")
)
