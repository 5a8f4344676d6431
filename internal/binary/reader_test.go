package binary

import (
	"bytes"
	"encoding/binary"
	"testing"
)

type bytesReaderAt []byte

func (b bytesReaderAt) ReadAt(p []byte, off int64) (int, error) {
	if off >= int64(len(b)) {
		return 0, nil
	}
	return copy(p, b[off:]), nil
}

func TestReaderFixedWidths(t *testing.T) {
	data := bytesReaderAt{
		0x42,
		0x02, 0x01,
		0x78, 0x56, 0x34, 0x12,
		0xF0, 0xDE, 0xBC, 0x9A, 0x78, 0x56, 0x34, 0x12,
	}
	r := NewReader(data, DefaultConfig())

	if v, err := r.ReadUint8(); err != nil || v != 0x42 {
		t.Fatalf("ReadUint8 = 0x%02x, %v; want 0x42", v, err)
	}
	if v, err := r.ReadUint16(); err != nil || v != 0x0102 {
		t.Fatalf("ReadUint16 = 0x%04x, %v; want 0x0102", v, err)
	}
	if v, err := r.ReadUint32(); err != nil || v != 0x12345678 {
		t.Fatalf("ReadUint32 = 0x%08x, %v; want 0x12345678", v, err)
	}
	if v, err := r.ReadUint64(); err != nil || v != 0x123456789ABCDEF0 {
		t.Fatalf("ReadUint64 = 0x%016x, %v; want 0x123456789ABCDEF0", v, err)
	}
	if r.Pos() != 15 {
		t.Errorf("Pos = %d, want 15", r.Pos())
	}
}

func TestReaderOffsetWidths(t *testing.T) {
	tests := []struct {
		name string
		size int
		data []byte
		want uint64
	}{
		{"2-byte", 2, []byte{0x34, 0x12}, 0x1234},
		{"4-byte", 4, []byte{0x78, 0x56, 0x34, 0x12}, 0x12345678},
		{"8-byte", 8, []byte{0xF0, 0xDE, 0xBC, 0x9A, 0x78, 0x56, 0x34, 0x12}, 0x123456789ABCDEF0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{ByteOrder: binary.LittleEndian, OffsetSize: tt.size, LengthSize: tt.size}
			r := NewReader(bytesReaderAt(tt.data), cfg)

			v, err := r.ReadOffset()
			if err != nil {
				t.Fatalf("ReadOffset failed: %v", err)
			}
			if v != tt.want {
				t.Errorf("ReadOffset = 0x%x, want 0x%x", v, tt.want)
			}
		})
	}
}

func TestReaderAtIsIndependent(t *testing.T) {
	data := bytesReaderAt{0x00, 0x01, 0x02, 0x03, 0x04, 0x05}
	r := NewReader(data, DefaultConfig())

	r2 := r.At(3)
	if v, _ := r2.ReadUint8(); v != 0x03 {
		t.Errorf("derived reader read 0x%02x, want 0x03", v)
	}
	if v, _ := r.ReadUint8(); v != 0x00 {
		t.Errorf("original reader read 0x%02x, want 0x00", v)
	}
}

func TestReaderSkip(t *testing.T) {
	r := NewReader(bytesReaderAt{0x00, 0x01, 0x02}, DefaultConfig())
	r.Skip(2)
	if v, _ := r.ReadUint8(); v != 0x02 {
		t.Errorf("read after Skip = 0x%02x, want 0x02", v)
	}
}

func TestReaderPeekDoesNotAdvance(t *testing.T) {
	r := NewReader(bytesReaderAt{0x00, 0x01, 0x02, 0x03}, DefaultConfig())

	peeked, err := r.Peek(2)
	if err != nil {
		t.Fatalf("Peek failed: %v", err)
	}
	if r.Pos() != 0 {
		t.Errorf("Peek advanced position to %d", r.Pos())
	}

	read, err := r.ReadBytes(2)
	if err != nil {
		t.Fatalf("ReadBytes failed: %v", err)
	}
	if !bytes.Equal(read, peeked) {
		t.Errorf("read %v after peeking %v", read, peeked)
	}
}
