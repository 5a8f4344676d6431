package hdf5

import (
	"fmt"

	"github.com/meerestier/espa-product-formatter/internal/message"
)

// Datatype identifies the element type of a dataset.
type Datatype int

const (
	Int8 Datatype = iota
	Uint8
	Int16
	Uint16
	Int32
	Uint32
	Float32
	Float64
)

var datatypeNames = map[Datatype]string{
	Int8:    "int8",
	Uint8:   "uint8",
	Int16:   "int16",
	Uint16:  "uint16",
	Int32:   "int32",
	Uint32:  "uint32",
	Float32: "float32",
	Float64: "float64",
}

func (d Datatype) String() string {
	if s, ok := datatypeNames[d]; ok {
		return s
	}
	return fmt.Sprintf("Datatype(%d)", int(d))
}

// Size returns the size of one element in bytes.
func (d Datatype) Size() uint32 {
	switch d {
	case Int8, Uint8:
		return 1
	case Int16, Uint16:
		return 2
	case Int32, Uint32, Float32:
		return 4
	case Float64:
		return 8
	}
	return 0
}

// encode returns the datatype message for this element type.
func (d Datatype) encode() (*message.Datatype, error) {
	switch d {
	case Int8:
		return message.NewFixedPointDatatype(1, true, message.OrderLE), nil
	case Uint8:
		return message.NewFixedPointDatatype(1, false, message.OrderLE), nil
	case Int16:
		return message.NewFixedPointDatatype(2, true, message.OrderLE), nil
	case Uint16:
		return message.NewFixedPointDatatype(2, false, message.OrderLE), nil
	case Int32:
		return message.NewFixedPointDatatype(4, true, message.OrderLE), nil
	case Uint32:
		return message.NewFixedPointDatatype(4, false, message.OrderLE), nil
	case Float32:
		return message.NewFloatDatatype(4, message.OrderLE), nil
	case Float64:
		return message.NewFloatDatatype(8, message.OrderLE), nil
	default:
		return nil, fmt.Errorf("%w: datatype %d", ErrUnsupported, int(d))
	}
}

// datatypeFromMessage maps a parsed datatype message back to the enum.
func datatypeFromMessage(dt *message.Datatype) (Datatype, error) {
	switch dt.Class {
	case message.ClassFixedPoint:
		switch {
		case dt.Size == 1 && dt.Signed:
			return Int8, nil
		case dt.Size == 1:
			return Uint8, nil
		case dt.Size == 2 && dt.Signed:
			return Int16, nil
		case dt.Size == 2:
			return Uint16, nil
		case dt.Size == 4 && dt.Signed:
			return Int32, nil
		case dt.Size == 4:
			return Uint32, nil
		}
	case message.ClassFloatPoint:
		switch dt.Size {
		case 4:
			return Float32, nil
		case 8:
			return Float64, nil
		}
	}
	return 0, fmt.Errorf("%w: datatype class %d size %d", ErrUnsupported, dt.Class, dt.Size)
}
