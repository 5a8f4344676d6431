// Package heap implements the HDF5 local heap used for variable-length
// names.
//
// The [LocalHeap] (signature "HEAP") stores null-terminated strings that
// other structures reference by byte offset into the heap's data segment.
// In this codec it holds the external file names that External Data Files
// messages point at.
//
// Local heap structure:
//   - Fixed header with data segment size, free list offset, and data address
//   - Data segment containing null-terminated strings
//
// Reading:
//
//	heap, err := heap.ReadLocalHeap(reader, heapAddress)
//	name := heap.GetString(nameOffset)
//
// Writing: build the data segment with [PackNames], size the header with
// [HeaderSize], then emit both with [WriteLocalHeap]. The data segment is
// written directly after the header.
package heap
