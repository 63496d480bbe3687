package tapmap

import "errors"

// Sentinel errors returned by configuration and setter calls. Runtime input
// handling never returns errors; it degrades to doing nothing.
var (
	ErrInvalidMode     = errors.New("invalid interaction mode")
	ErrInvalidZoom     = errors.New("zoom must be finite and greater than zero")
	ErrNoCamera        = errors.New("no camera")
	ErrNoPointerSource = errors.New("no pointer source")
	ErrNoSurface       = errors.New("no render surface")
)
