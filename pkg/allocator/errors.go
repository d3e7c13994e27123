package allocator

import "errors"

var ErrDoubleFree = errors.New("double free")
var ErrInvalidPointer = errors.New("invalid pointer")
