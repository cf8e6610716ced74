package music

import "errors"

var ErrSoundscapeNotFound = errors.New("soundscape not found")
