package hdf5

import (
	"fmt"

	"github.com/meerestier/espa-product-formatter/internal/heap"
	"github.com/meerestier/espa-product-formatter/internal/message"
	"github.com/meerestier/espa-product-formatter/internal/object"
)

// Dataset represents a dataset in a container file. Pixel data lives in an
// external raw-binary file referenced by the dataset, never in the
// container itself.
type Dataset struct {
	file      *File
	name      string
	header    *object.Header
	dataspace *message.Dataspace
	datatype  *message.Datatype
}

// ExternalFile describes one external data segment bound to a dataset.
type ExternalFile struct {
	Name   string // Path of the external raw file
	Offset uint64 // Byte offset of the data within that file
	Size   uint64 // Size of the data in bytes
}

// newDataset creates a Dataset from a parsed object header.
func newDataset(f *File, name string, header *object.Header) (*Dataset, error) {
	ds := &Dataset{
		file:   f,
		name:   name,
		header: header,
	}

	ds.dataspace = header.Dataspace()
	if ds.dataspace == nil {
		return nil, fmt.Errorf("dataset %q: missing dataspace message", name)
	}

	ds.datatype = header.Datatype()
	if ds.datatype == nil {
		return nil, fmt.Errorf("dataset %q: missing datatype message", name)
	}

	return ds, nil
}

// Name returns the dataset name.
func (d *Dataset) Name() string {
	return d.name
}

// Dims returns the dimensions of the dataset.
func (d *Dataset) Dims() []uint64 {
	if d.dataspace.IsScalar() {
		return nil
	}
	return d.dataspace.Dimensions
}

// Rank returns the number of dimensions.
func (d *Dataset) Rank() int {
	return d.dataspace.Rank
}

// Datatype returns the element type.
func (d *Dataset) Datatype() (Datatype, error) {
	return datatypeFromMessage(d.datatype)
}

// ExternalFiles returns the external data segments bound to this dataset,
// resolving file names through the dataset's name heap.
func (d *Dataset) ExternalFiles() ([]ExternalFile, error) {
	ext := d.header.ExternalDataFiles()
	if ext == nil {
		return nil, nil
	}

	localHeap, err := heap.ReadLocalHeap(d.file.reader, ext.HeapAddress)
	if err != nil {
		return nil, fmt.Errorf("dataset %q: reading name heap: %w", d.name, err)
	}

	files := make([]ExternalFile, 0, len(ext.Slots))
	for _, slot := range ext.Slots {
		files = append(files, ExternalFile{
			Name:   localHeap.GetString(slot.NameOffset),
			Offset: slot.Offset,
			Size:   slot.Size,
		})
	}
	return files, nil
}

// Attributes returns the attribute names in the order they were written.
func (d *Dataset) Attributes() []string {
	var names []string
	for _, msg := range d.header.GetMessages(message.TypeAttribute) {
		names = append(names, msg.(*message.Attribute).Name)
	}
	return names
}

// Attribute returns an attribute by name, or nil if not found.
func (d *Dataset) Attribute(name string) *Attribute {
	for _, msg := range d.header.GetMessages(message.TypeAttribute) {
		attr := msg.(*message.Attribute)
		if attr.Name == name {
			return &Attribute{msg: attr}
		}
	}
	return nil
}

// HasAttribute returns true if the dataset has an attribute with the
// given name.
func (d *Dataset) HasAttribute(name string) bool {
	return d.Attribute(name) != nil
}
