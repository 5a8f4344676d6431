// Package binary reads and writes the container's low-level binary fields:
// fixed-width integers plus the variable-width offset and length fields
// whose sizes the superblock declares.
package binary

import (
	"encoding/binary"
	"io"
)

// Config carries the field sizes and byte order a Reader or Writer encodes
// with. The sizes come from the superblock once it has been parsed.
type Config struct {
	ByteOrder  binary.ByteOrder
	OffsetSize int // 2, 4, or 8 bytes
	LengthSize int // 2, 4, or 8 bytes
}

// DefaultConfig is the bootstrap configuration used before the superblock
// is available: little-endian, 8-byte offsets and lengths.
func DefaultConfig() Config {
	return Config{
		ByteOrder:  binary.LittleEndian,
		OffsetSize: 8,
		LengthSize: 8,
	}
}

// Reader decodes binary fields from an io.ReaderAt, tracking its own
// position so derived readers can parse independent regions of the file.
type Reader struct {
	r          io.ReaderAt
	order      binary.ByteOrder
	offsetSize int
	lengthSize int
	pos        int64
}

// NewReader returns a reader positioned at offset zero.
func NewReader(r io.ReaderAt, cfg Config) *Reader {
	return &Reader{
		r:          r,
		order:      cfg.ByteOrder,
		offsetSize: cfg.OffsetSize,
		lengthSize: cfg.LengthSize,
	}
}

// At returns a reader over the same file positioned at offset. The two
// readers advance independently.
func (r *Reader) At(offset int64) *Reader {
	clone := *r
	clone.pos = offset
	return &clone
}

// Pos returns the current read position.
func (r *Reader) Pos() int64 { return r.pos }

// Skip advances the position by n bytes without reading.
func (r *Reader) Skip(n int64) { r.pos += n }

// ReadBytes reads exactly n bytes and advances the position.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n <= 0 {
		return nil, nil
	}
	buf := make([]byte, n)
	if _, err := r.r.ReadAt(buf, r.pos); err != nil {
		return nil, err
	}
	r.pos += int64(n)
	return buf, nil
}

// Peek reads n bytes without advancing the position.
func (r *Reader) Peek(n int) ([]byte, error) {
	if n <= 0 {
		return nil, nil
	}
	buf := make([]byte, n)
	if _, err := r.r.ReadAt(buf, r.pos); err != nil {
		return nil, err
	}
	return buf, nil
}

func (r *Reader) ReadUint8() (uint8, error) {
	buf, err := r.ReadBytes(1)
	if err != nil {
		return 0, err
	}
	return buf[0], nil
}

func (r *Reader) ReadUint16() (uint16, error) {
	buf, err := r.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return r.order.Uint16(buf), nil
}

func (r *Reader) ReadUint32() (uint32, error) {
	buf, err := r.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return r.order.Uint32(buf), nil
}

func (r *Reader) ReadUint64() (uint64, error) {
	buf, err := r.ReadBytes(8)
	if err != nil {
		return 0, err
	}
	return r.order.Uint64(buf), nil
}

// ReadUintN reads an unsigned integer of n bytes.
func (r *Reader) ReadUintN(n int) (uint64, error) {
	buf, err := r.ReadBytes(n)
	if err != nil {
		return 0, err
	}
	return r.decodeUint(buf, n), nil
}

// ReadOffset reads a file address at the configured offset width.
func (r *Reader) ReadOffset() (uint64, error) {
	return r.ReadUintN(r.offsetSize)
}

// ReadLength reads a length field at the configured length width.
func (r *Reader) ReadLength() (uint64, error) {
	return r.ReadUintN(r.lengthSize)
}

func (r *Reader) decodeUint(buf []byte, size int) uint64 {
	switch size {
	case 1:
		return uint64(buf[0])
	case 2:
		return uint64(r.order.Uint16(buf))
	case 4:
		return uint64(r.order.Uint32(buf))
	case 8:
		return r.order.Uint64(buf)
	}
	// Odd widths are little-endian in the format.
	var v uint64
	for i := size - 1; i >= 0; i-- {
		v = v<<8 | uint64(buf[i])
	}
	return v
}

// OffsetSize returns the configured offset width in bytes.
func (r *Reader) OffsetSize() int { return r.offsetSize }

// LengthSize returns the configured length width in bytes.
func (r *Reader) LengthSize() int { return r.lengthSize }

// ByteOrder returns the configured byte order.
func (r *Reader) ByteOrder() binary.ByteOrder { return r.order }
