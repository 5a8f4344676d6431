package message

import (
	"fmt"

	binpkg "github.com/meerestier/espa-product-formatter/internal/binary"
)

// ExternalSlot describes one externally stored data segment.
// The name of the external file lives in a local heap; NameOffset is the
// byte offset of the null-terminated name within that heap's data segment.
type ExternalSlot struct {
	NameOffset uint64 // Offset of the file name in the local heap
	Offset     uint64 // Byte offset of the data within the external file
	Size       uint64 // Size of the data in the external file
}

// ExternalDataFiles represents an external data files message (type 0x0007).
// It binds a dataset's raw data to one or more segments stored outside the
// HDF5 file itself.
type ExternalDataFiles struct {
	Version     uint8
	Allocated   uint16 // Number of allocated slots
	Used        uint16 // Number of used slots
	HeapAddress uint64 // Address of the local heap holding file names
	Slots       []ExternalSlot
}

func (m *ExternalDataFiles) Type() Type { return TypeExternalDataFiles }

// NewExternalDataFiles creates an external data files message for the given
// heap address and slots. Allocated and used slot counts are set equal.
func NewExternalDataFiles(heapAddr uint64, slots []ExternalSlot) *ExternalDataFiles {
	return &ExternalDataFiles{
		Version:     1,
		Allocated:   uint16(len(slots)),
		Used:        uint16(len(slots)),
		HeapAddress: heapAddr,
		Slots:       slots,
	}
}

func parseExternalDataFiles(data []byte, r *binpkg.Reader) (*ExternalDataFiles, error) {
	if len(data) < 8 {
		return nil, fmt.Errorf("external data files message too short")
	}

	m := &ExternalDataFiles{
		Version: data[0],
	}
	if m.Version != 1 {
		return nil, fmt.Errorf("unsupported external data files version: %d", m.Version)
	}

	// Bytes 1-3 are reserved
	order := r.ByteOrder()
	m.Allocated = uint16(decodeUint(data[4:6], 2, order))
	m.Used = uint16(decodeUint(data[6:8], 2, order))

	offsetSize := r.OffsetSize()
	lengthSize := r.LengthSize()
	offset := 8

	if offset+offsetSize > len(data) {
		return nil, fmt.Errorf("external data files heap address truncated")
	}
	m.HeapAddress = decodeUint(data[offset:], offsetSize, order)
	offset += offsetSize

	m.Slots = make([]ExternalSlot, 0, m.Used)
	for i := 0; i < int(m.Used); i++ {
		if offset+3*lengthSize > len(data) {
			return nil, fmt.Errorf("external data files slot %d truncated", i)
		}
		var slot ExternalSlot
		slot.NameOffset = decodeUint(data[offset:], lengthSize, order)
		offset += lengthSize
		slot.Offset = decodeUint(data[offset:], lengthSize, order)
		offset += lengthSize
		slot.Size = decodeUint(data[offset:], lengthSize, order)
		offset += lengthSize
		m.Slots = append(m.Slots, slot)
	}

	return m, nil
}

// Serialize writes the ExternalDataFiles message to the writer.
func (m *ExternalDataFiles) Serialize(w *binpkg.Writer) error {
	if err := w.WriteUint8(m.Version); err != nil {
		return err
	}

	// Reserved (3 bytes)
	if err := w.WriteZeros(3); err != nil {
		return err
	}

	if err := w.WriteUint16(m.Allocated); err != nil {
		return err
	}
	if err := w.WriteUint16(m.Used); err != nil {
		return err
	}

	if err := w.WriteOffset(m.HeapAddress); err != nil {
		return err
	}

	for _, slot := range m.Slots {
		if err := w.WriteLength(slot.NameOffset); err != nil {
			return err
		}
		if err := w.WriteLength(slot.Offset); err != nil {
			return err
		}
		if err := w.WriteLength(slot.Size); err != nil {
			return err
		}
	}

	return nil
}

// SerializedSize returns the size in bytes when serialized.
func (m *ExternalDataFiles) SerializedSize(w *binpkg.Writer) int {
	// version(1) + reserved(3) + allocated(2) + used(2) + heap address
	// + 3 length-sized fields per slot
	return 8 + w.OffsetSize() + len(m.Slots)*3*w.LengthSize()
}
