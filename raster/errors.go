package raster

import "errors"

// ErrIO wraps any failure opening, decoding, encoding, or writing an
// image file. The core pipeline never raises this itself; it only
// surfaces from this package's collaborators.
var ErrIO = errors.New("raster: I/O error")
