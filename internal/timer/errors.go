package timer

import "errors"

var ErrUnknownPreset = errors.New("unknown timer preset")
