package heap

import (
	"github.com/meerestier/espa-product-formatter/internal/binary"
)

// PackNames builds a local heap data segment holding the given
// null-terminated names and returns the segment plus the offset of each
// name within it. Offset 0 holds a reserved empty string, matching the
// convention the HDF5 library uses, so the first real name starts at 8.
// The segment is padded to an 8-byte boundary.
func PackNames(names []string) (data []byte, offsets []uint64) {
	data = make([]byte, 8) // reserved zero region; offset 0 = empty name
	offsets = make([]uint64, 0, len(names))

	for _, name := range names {
		offsets = append(offsets, uint64(len(data)))
		data = append(data, name...)
		data = append(data, 0)
	}

	if pad := len(data) % 8; pad != 0 {
		data = append(data, make([]byte, 8-pad)...)
	}
	return data, offsets
}

// HeaderSize returns the size of a local heap header for the writer's
// offset/length configuration.
func HeaderSize(w *binary.Writer) int {
	// signature(4) + version(1) + reserved(3) + data size(L) + free list(L) + data address(O)
	return 8 + 2*w.LengthSize() + w.OffsetSize()
}

// WriteLocalHeap writes a local heap header at the writer's current
// position with the data segment immediately following it. dataAddr must
// be the file address directly after the header.
func WriteLocalHeap(w *binary.Writer, dataAddr uint64, data []byte) error {
	if err := w.WriteBytes(localHeapSignature); err != nil {
		return err
	}

	// Version
	if err := w.WriteUint8(0); err != nil {
		return err
	}

	// Reserved (3 bytes)
	if err := w.WriteZeros(3); err != nil {
		return err
	}

	// Data segment size
	if err := w.WriteLength(uint64(len(data))); err != nil {
		return err
	}

	// Free list head offset (undefined = no free list)
	if err := w.WriteUndefinedLength(); err != nil {
		return err
	}

	// Data segment address
	if err := w.WriteOffset(dataAddr); err != nil {
		return err
	}

	return w.WriteBytes(data)
}
