// Package object handles reading and writing of HDF5 object headers.
//
// Every HDF5 object (group, dataset) has an object header that contains
// metadata in the form of header messages. This package provides
// functionality to read V2 object headers and write new ones.
//
// # Object Header Version
//
// Only version 2 headers (signature "OHDR") are supported, matching the
// V3 superblock files this codec produces. V2 headers provide variable-size
// message headers and a Jenkins lookup3 checksum over the header bytes.
//
// # Header Structure
//
// An object header contains:
//
//   - Version and flags (timestamps, attribute hints)
//   - Sequence of header messages (dataspace, datatype, layout, etc.)
//   - Optional continuation blocks for overflow messages
//
// # Usage
//
// Read an object header at a known address:
//
//	header, err := object.Read(reader, objectAddress)
//
// Access specific messages:
//
//	dataspace := header.Dataspace()
//	datatype := header.Datatype()
//	layout := header.DataLayout()
//	external := header.ExternalDataFiles()
//
// Or use generic message access:
//
//	msg := header.GetMessage(message.TypeDataspace)
//	allAttrs := header.GetMessages(message.TypeAttribute)
//
// Write a header with [WriteHeader] or [WriteHeaderWithMinChunk]; size it
// first with [HeaderSize] so the caller can allocate file space.
//
// # Key Types
//
//   - [Header]: Parsed object header with version, flags, and messages
//   - [Read]: Parses an object header at a given file address
//
// # Errors
//
//   - [ErrInvalidHeader]: Header format not recognized
//   - [ErrUnsupportedVersion]: Header version not supported
//   - [ErrChecksumMismatch]: Header checksum verification failed
package object
