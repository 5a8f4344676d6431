package hdf5

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/meerestier/espa-product-formatter/internal/alloc"
	binpkg "github.com/meerestier/espa-product-formatter/internal/binary"
	"github.com/meerestier/espa-product-formatter/internal/message"
	"github.com/meerestier/espa-product-formatter/internal/object"
	"github.com/meerestier/espa-product-formatter/internal/superblock"
)

// Create creates a new container file at the given path, truncating any
// existing file. Datasets and global attributes are accumulated in memory
// order and the root group is finalized on Close.
func Create(path string, opts ...FileOption) (*File, error) {
	options := defaultFileOptions()
	for _, opt := range opts {
		opt(options)
	}

	osFile, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating file: %w", err)
	}

	cfg := binpkg.Config{
		ByteOrder:  binary.LittleEndian,
		OffsetSize: options.offsetSize,
		LengthSize: options.lengthSize,
	}
	writer := binpkg.NewWriter(osFile, cfg)

	sb := superblock.NewSuperblock()
	sb.OffsetSize = uint8(options.offsetSize)
	sb.LengthSize = uint8(options.lengthSize)

	// Object data starts right after the superblock; the superblock itself
	// is written with final addresses when the file is closed.
	allocator := alloc.New(uint64(sb.Size()))

	return &File{
		path:       path,
		file:       osFile,
		superblock: sb,
		writable:   true,
		writer:     writer,
		allocator:  allocator,
	}, nil
}

// SetAttribute records a global (root group) attribute. Attributes are
// written to the root group header in the order of SetAttribute calls.
// Supported values: string, integer and float scalars, and slices or
// arrays of them.
func (f *File) SetAttribute(name string, value interface{}) error {
	if f.closed {
		return ErrClosed
	}
	if !f.writable {
		return ErrReadOnly
	}

	attr, err := createAttributeMessage(name, value)
	if err != nil {
		return fmt.Errorf("creating attribute %q: %w", name, err)
	}
	f.rootAttrs = append(f.rootAttrs, attr)
	return nil
}

// finalize writes the root group header (dataset links followed by global
// attributes) and the superblock.
func (f *File) finalize() error {
	messages := make([]message.Message, 0, len(f.links)+len(f.rootAttrs)+2)
	messages = append(messages, message.NewLinkInfo())
	messages = append(messages, message.NewGroupInfo())
	for _, link := range f.links {
		messages = append(messages, link)
	}
	for _, attr := range f.rootAttrs {
		messages = append(messages, attr)
	}

	headerSize := object.HeaderSizeWithMinChunk(f.writer, messages, object.MinGroupChunkSize)
	rootAddr := f.allocate(int64(headerSize))

	w := f.writer.At(int64(rootAddr))
	if _, err := object.WriteHeaderWithMinChunk(w, messages, object.MinGroupChunkSize); err != nil {
		return fmt.Errorf("writing root group header: %w", err)
	}

	f.superblock.RootGroupAddress = rootAddr
	f.superblock.EOFAddress = f.allocator.EOFAddr()

	sw := f.writer.At(0)
	if _, err := f.superblock.Write(sw); err != nil {
		return fmt.Errorf("writing superblock: %w", err)
	}

	return f.file.Sync()
}

// allocate reserves space in the file and returns the address.
func (f *File) allocate(size int64) uint64 {
	return f.allocator.Alloc(uint64(size))
}

// AllocStats returns allocation statistics (for debugging/testing).
func (f *File) AllocStats() alloc.Stats {
	if f.allocator == nil {
		return alloc.Stats{}
	}
	return f.allocator.Stats()
}
