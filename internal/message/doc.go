// Package message handles parsing and serialization of HDF5 object header
// messages.
//
// Object headers contain a sequence of messages that describe the properties
// of HDF5 objects (groups, datasets). Each message has a type, flags, and
// type-specific content.
//
// # Message Types
//
// This package defines constants for all HDF5 message types and implements
// parsing for the following:
//
//   - Dataspace (0x0001): Describes the dimensions of a dataset. See [Dataspace].
//   - Datatype (0x0003): Describes the data type of elements. See [Datatype].
//   - Fill Value (0x0005): Specifies the fill value for unwritten data.
//   - Link (0x0006): Describes a link to another object. See [Link].
//   - External Data Files (0x0007): Binds dataset data to external raw
//     files. See [ExternalDataFiles].
//   - Data Layout (0x0008): Describes how dataset data is stored. See [DataLayout].
//   - Attribute (0x000C): Stores an attribute name, datatype, and value. See [Attribute].
//   - Continuation (0x0010): Points to additional header data. See [Continuation].
//
// Unrecognized message types are wrapped in [Unknown] for forward compatibility.
//
// # Datatype Classes
//
// The [Datatype] message supports the following HDF5 type classes:
//
//   - ClassFixedPoint (0): Integers (signed/unsigned, various sizes)
//   - ClassFloatPoint (1): IEEE floating-point numbers
//   - ClassString (3): Fixed-length strings
//
// # Layout Classes
//
// The [DataLayout] message describes one of three storage layouts:
//
//   - LayoutCompact (0): Data stored in the object header
//   - LayoutContiguous (1): Data in a single contiguous block
//   - LayoutChunked (2): Data in indexed chunks
//
// Datasets whose data lives in external files carry a contiguous layout with
// an undefined address alongside an [ExternalDataFiles] message.
//
// # Parsing
//
// Use [Parse] to parse a message from raw bytes:
//
//	msg, err := message.Parse(msgType, msgData, msgFlags, reader)
//
// The returned [Message] interface can be type-asserted to the specific
// message type based on its Type() method.
//
// # Writing
//
// Messages implementing [Serializable] produce the raw bytes for embedding
// in object headers via their Serialize and SerializedSize methods.
package message
