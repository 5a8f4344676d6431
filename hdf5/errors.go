// Package hdf5 writes and reads the scientific-data containers produced by
// the product formatter. Files use a V3 superblock and V2 object headers;
// datasets reference their pixel data as external raw-binary files rather
// than embedding a copy.
package hdf5

import "errors"

// Common errors
var (
	ErrNotHDF5    = errors.New("not an HDF5 file")
	ErrNotFound   = errors.New("object not found")
	ErrNotDataset = errors.New("object is not a dataset")
	ErrClosed     = errors.New("file is closed")
	ErrReadOnly   = errors.New("file is not writable")
	ErrExists     = errors.New("object already exists")
	ErrUnsupported = errors.New("unsupported feature")
)
