package hdf5

import (
	"fmt"

	"github.com/meerestier/espa-product-formatter/internal/heap"
	"github.com/meerestier/espa-product-formatter/internal/message"
	"github.com/meerestier/espa-product-formatter/internal/object"
)

// CreateExternalDataset creates a 2D dataset whose raw data lives in an
// external file. The container stores only the object header and the name
// heap; no pixel data is copied. The dataset size is dims[0]*dims[1]
// elements of dt starting at extOffset within extFile.
func (f *File) CreateExternalDataset(name string, dt Datatype, dims [2]uint64, extFile string, extOffset uint64, opts ...DatasetOption) (*Dataset, error) {
	if f.closed {
		return nil, ErrClosed
	}
	if !f.writable {
		return nil, ErrReadOnly
	}
	if name == "" {
		return nil, fmt.Errorf("dataset name cannot be empty")
	}
	if extFile == "" {
		return nil, fmt.Errorf("dataset %q: external file name cannot be empty", name)
	}
	if dims[0] == 0 || dims[1] == 0 {
		return nil, fmt.Errorf("dataset %q: dimensions must be positive, got %dx%d", name, dims[0], dims[1])
	}
	for _, link := range f.links {
		if link.Name == name {
			return nil, fmt.Errorf("dataset %q: %w", name, ErrExists)
		}
	}

	options := defaultDatasetOptions()
	for _, opt := range opts {
		opt(options)
	}

	datatype, err := dt.encode()
	if err != nil {
		return nil, fmt.Errorf("dataset %q: %w", name, err)
	}

	dataspace := message.NewDataspace(dims[:], nil)
	dataSize := dims[0] * dims[1] * uint64(dt.Size())

	// Write the name heap for the external file reference.
	heapData, nameOffsets := heap.PackNames([]string{extFile})
	heapHeaderSize := heap.HeaderSize(f.writer)
	heapAddr := f.allocate(int64(heapHeaderSize + len(heapData)))
	heapDataAddr := heapAddr + uint64(heapHeaderSize)

	hw := f.writer.At(int64(heapAddr))
	if err := heap.WriteLocalHeap(hw, heapDataAddr, heapData); err != nil {
		return nil, fmt.Errorf("dataset %q: writing name heap: %w", name, err)
	}

	external := message.NewExternalDataFiles(heapAddr, []message.ExternalSlot{{
		NameOffset: nameOffsets[0],
		Offset:     extOffset,
		Size:       dataSize,
	}})

	// Contiguous layout with an undefined address: the data is external.
	layout := message.NewContiguousLayout(message.UndefinedAddress, dataSize)

	messages := []message.Message{dataspace, datatype, external, layout}

	// Dimension names come first so readers see them before user attributes.
	if len(options.dimNames) > 0 {
		dimAttr, err := createAttributeMessage("DIMENSION_NAMES", options.dimNames)
		if err != nil {
			return nil, fmt.Errorf("dataset %q: creating dimension names: %w", name, err)
		}
		messages = append(messages, dimAttr)
	}

	for _, attr := range options.attributes {
		attrMsg, err := createAttributeMessage(attr.name, attr.value)
		if err != nil {
			return nil, fmt.Errorf("dataset %q: creating attribute %q: %w", name, attr.name, err)
		}
		messages = append(messages, attrMsg)
	}

	headerSize := object.HeaderSize(f.writer, messages)
	datasetAddr := f.allocate(int64(headerSize))

	dw := f.writer.At(int64(datasetAddr))
	if _, err := object.WriteHeader(dw, messages); err != nil {
		return nil, fmt.Errorf("dataset %q: writing object header: %w", name, err)
	}

	f.links = append(f.links, message.NewHardLink(name, datasetAddr))

	return &Dataset{
		file:      f,
		name:      name,
		dataspace: dataspace,
		datatype:  datatype,
	}, nil
}
