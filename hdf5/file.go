package hdf5

import (
	"fmt"
	"os"

	"github.com/meerestier/espa-product-formatter/internal/alloc"
	"github.com/meerestier/espa-product-formatter/internal/binary"
	"github.com/meerestier/espa-product-formatter/internal/message"
	"github.com/meerestier/espa-product-formatter/internal/object"
	"github.com/meerestier/espa-product-formatter/internal/superblock"
)

// File represents an open container file.
type File struct {
	path       string
	file       *os.File
	reader     *binary.Reader
	superblock *superblock.Superblock
	closed     bool

	// Read support
	rootHeader *object.Header

	// Write support
	writable  bool
	writer    *binary.Writer
	allocator *alloc.Allocator
	links     []*message.Link      // dataset links, creation order
	rootAttrs []*message.Attribute // global attributes, call order
}

// Open opens a container file for reading.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}

	sb, err := superblock.Read(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("reading superblock: %w", err)
	}

	reader := binary.NewReader(f, sb.ReaderConfig())

	root, err := object.Read(reader, sb.RootGroupAddress)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("reading root group header: %w", err)
	}

	return &File{
		path:       path,
		file:       f,
		reader:     reader,
		superblock: sb,
		rootHeader: root,
	}, nil
}

// Close closes the file, finalizing the root group and superblock for
// writable files.
func (f *File) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true

	if f.writable {
		if err := f.finalize(); err != nil {
			f.file.Close()
			return err
		}
	}

	return f.file.Close()
}

// Path returns the file path.
func (f *File) Path() string {
	return f.path
}

// Version returns the superblock version.
func (f *File) Version() int {
	return int(f.superblock.Version)
}

// Datasets returns the names of all datasets in the file, in the order
// they were created.
func (f *File) Datasets() ([]string, error) {
	if f.closed {
		return nil, ErrClosed
	}
	if f.writable {
		names := make([]string, 0, len(f.links))
		for _, link := range f.links {
			names = append(names, link.Name)
		}
		return names, nil
	}

	var names []string
	for _, msg := range f.rootHeader.GetMessages(message.TypeLink) {
		names = append(names, msg.(*message.Link).Name)
	}
	return names, nil
}

// Dataset opens a dataset by name.
func (f *File) Dataset(name string) (*Dataset, error) {
	if f.closed {
		return nil, ErrClosed
	}
	if f.rootHeader == nil {
		return nil, fmt.Errorf("dataset %q: %w", name, ErrNotFound)
	}

	for _, msg := range f.rootHeader.GetMessages(message.TypeLink) {
		link := msg.(*message.Link)
		if link.Name != name {
			continue
		}
		header, err := object.Read(f.reader, link.ObjectAddress)
		if err != nil {
			return nil, fmt.Errorf("reading dataset %q header: %w", name, err)
		}
		return newDataset(f, name, header)
	}

	return nil, fmt.Errorf("dataset %q: %w", name, ErrNotFound)
}

// Attributes returns the names of the file's global attributes in the
// order they were written.
func (f *File) Attributes() []string {
	var names []string
	if f.writable {
		for _, attr := range f.rootAttrs {
			names = append(names, attr.Name)
		}
		return names
	}
	if f.rootHeader == nil {
		return nil
	}
	for _, msg := range f.rootHeader.GetMessages(message.TypeAttribute) {
		names = append(names, msg.(*message.Attribute).Name)
	}
	return names
}

// Attribute returns a global attribute by name, or nil if not found.
func (f *File) Attribute(name string) *Attribute {
	if f.rootHeader == nil {
		return nil
	}
	for _, msg := range f.rootHeader.GetMessages(message.TypeAttribute) {
		attr := msg.(*message.Attribute)
		if attr.Name == name {
			return &Attribute{msg: attr}
		}
	}
	return nil
}

// IsWritable returns true if the file was opened for writing.
func (f *File) IsWritable() bool {
	return f.writable
}
