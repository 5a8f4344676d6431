// Package dtype provides HDF5 datatype handling and Go type conversion.
//
// This package bridges the gap between HDF5's type system and Go's type system,
// providing functionality to:
//
//   - Create HDF5 datatypes from Go types
//   - Encode Go values to HDF5 data bytes
//   - Decode raw HDF5 data bytes to Go values
//
// # Type Mapping Strategy
//
// HDF5 datatypes are mapped to Go types as follows:
//
//	HDF5 Class        | Go Type
//	------------------|------------------
//	Fixed-point (int) | int8/16/32/64 or uint8/16/32/64 based on size and signedness
//	Floating-point    | float32 (4 bytes) or float64 (8 bytes)
//	String (fixed)    | string
//
// Only the classes the writer emits are supported for decoding; datasets
// reference external raw data, so variable-length and compound types never
// occur in the files this codec produces.
//
// # Reading Data
//
// Use [Decode] to convert raw bytes to Go values:
//
//	value, err := dtype.Decode(datatype, rawBytes, numElements, isScalar)
//
// # Writing Data
//
// Use [Encode] to convert Go values to raw bytes:
//
//	data, err := dtype.Encode(datatype, []int32{1, 2, 3})
//
// Use [GoTypeToDatatype] to create an HDF5 datatype from a Go type:
//
//	dt, err := dtype.GoTypeToDatatype(reflect.TypeOf([]float64{}))
//
// # Key Functions
//
//   - [Decode]: Converts HDF5 bytes to Go values
//   - [Encode]: Converts Go values to HDF5 bytes
//   - [GoTypeToDatatype]: Creates HDF5 datatype from Go type
//   - [ByteOrder]: Returns the binary.ByteOrder for a datatype
//   - [DataSize]: Returns the total size of n elements in bytes
package dtype
