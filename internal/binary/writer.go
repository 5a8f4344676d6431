package binary

import (
	"encoding/binary"
	"io"
)

// Writer encodes binary fields into an io.WriterAt, tracking its own
// position the same way Reader does.
type Writer struct {
	w          io.WriterAt
	order      binary.ByteOrder
	offsetSize int
	lengthSize int
	pos        int64
}

// NewWriter returns a writer positioned at offset zero.
func NewWriter(w io.WriterAt, cfg Config) *Writer {
	return &Writer{
		w:          w,
		order:      cfg.ByteOrder,
		offsetSize: cfg.OffsetSize,
		lengthSize: cfg.LengthSize,
	}
}

// At returns a writer over the same file positioned at offset. The two
// writers advance independently.
func (w *Writer) At(offset int64) *Writer {
	clone := *w
	clone.pos = offset
	return &clone
}

// Pos returns the current write position.
func (w *Writer) Pos() int64 { return w.pos }

// Skip advances the position by n bytes without writing.
func (w *Writer) Skip(n int64) { w.pos += n }

// WriteBytes writes data at the current position and advances it.
func (w *Writer) WriteBytes(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	n, err := w.w.WriteAt(data, w.pos)
	w.pos += int64(n)
	return err
}

// WriteZeros writes n zero bytes.
func (w *Writer) WriteZeros(n int) error {
	if n <= 0 {
		return nil
	}
	return w.WriteBytes(make([]byte, n))
}

func (w *Writer) WriteUint8(v uint8) error {
	return w.WriteBytes([]byte{v})
}

func (w *Writer) WriteUint16(v uint16) error {
	buf := make([]byte, 2)
	w.order.PutUint16(buf, v)
	return w.WriteBytes(buf)
}

func (w *Writer) WriteUint32(v uint32) error {
	buf := make([]byte, 4)
	w.order.PutUint32(buf, v)
	return w.WriteBytes(buf)
}

func (w *Writer) WriteUint64(v uint64) error {
	buf := make([]byte, 8)
	w.order.PutUint64(buf, v)
	return w.WriteBytes(buf)
}

// WriteUintN writes an unsigned integer of n bytes.
func (w *Writer) WriteUintN(v uint64, n int) error {
	buf := make([]byte, n)
	switch n {
	case 1:
		buf[0] = uint8(v)
	case 2:
		w.order.PutUint16(buf, uint16(v))
	case 4:
		w.order.PutUint32(buf, uint32(v))
	case 8:
		w.order.PutUint64(buf, v)
	default:
		for i := 0; i < n; i++ {
			buf[i] = byte(v >> (8 * i))
		}
	}
	return w.WriteBytes(buf)
}

// WriteOffset writes a file address at the configured offset width.
func (w *Writer) WriteOffset(v uint64) error {
	return w.WriteUintN(v, w.offsetSize)
}

// WriteLength writes a length field at the configured length width.
func (w *Writer) WriteLength(v uint64) error {
	return w.WriteUintN(v, w.lengthSize)
}

// UndefinedOffset returns the all-ones sentinel marking an undefined file
// address at the configured offset width.
func (w *Writer) UndefinedOffset() uint64 {
	if w.offsetSize >= 8 {
		return ^uint64(0)
	}
	return uint64(1<<(w.offsetSize*8)) - 1
}

// WriteUndefinedLength writes the all-ones undefined sentinel as a length
// field.
func (w *Writer) WriteUndefinedLength() error {
	if w.lengthSize >= 8 {
		return w.WriteLength(^uint64(0))
	}
	return w.WriteLength(uint64(1<<(w.lengthSize*8)) - 1)
}

// OffsetSize returns the configured offset width in bytes.
func (w *Writer) OffsetSize() int { return w.offsetSize }

// LengthSize returns the configured length width in bytes.
func (w *Writer) LengthSize() int { return w.lengthSize }

// ByteOrder returns the configured byte order.
func (w *Writer) ByteOrder() binary.ByteOrder { return w.order }
