package hdf5

import (
	"fmt"
	"reflect"

	"github.com/meerestier/espa-product-formatter/internal/dtype"
	"github.com/meerestier/espa-product-formatter/internal/message"
)

// createAttributeMessage creates an attribute message from a name and value.
// Strings become fixed-length string attributes; numeric scalars and slices
// are encoded at their Go width.
func createAttributeMessage(name string, value interface{}) (*message.Attribute, error) {
	val := reflect.ValueOf(value)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	if val.Kind() == reflect.String {
		return createStringAttribute(name, val.String())
	}

	if val.Kind() == reflect.Slice && val.Type().Elem().Kind() == reflect.String {
		return createStringArrayAttribute(name, val)
	}

	// Determine if scalar or array
	var dims []uint64
	var elemType reflect.Type

	switch val.Kind() {
	case reflect.Slice, reflect.Array:
		dims = []uint64{uint64(val.Len())}
		if val.Len() > 0 {
			elemType = val.Index(0).Type()
		} else {
			elemType = val.Type().Elem()
		}
	default:
		dims = nil // scalar dataspace
		elemType = val.Type()
	}

	datatype, err := dtype.GoTypeToDatatype(elemType)
	if err != nil {
		return nil, fmt.Errorf("unsupported attribute type %v: %w", elemType, err)
	}

	var dataspace *message.Dataspace
	if dims == nil {
		dataspace = message.NewScalarDataspace()
	} else {
		dataspace = message.NewDataspace(dims, nil)
	}

	data, err := dtype.Encode(datatype, value)
	if err != nil {
		return nil, fmt.Errorf("encoding attribute value: %w", err)
	}

	return message.NewAttribute(name, datatype, dataspace, data), nil
}

// createStringAttribute creates an attribute with a fixed-length string value.
func createStringAttribute(name string, s string) (*message.Attribute, error) {
	// Fixed-length string, +1 for the null terminator
	strLen := len(s) + 1

	datatype := message.NewStringDatatype(uint32(strLen), message.PadNullTerm, message.CharsetASCII)
	dataspace := message.NewScalarDataspace()

	data := make([]byte, strLen)
	copy(data, s)
	data[len(s)] = 0

	return message.NewAttribute(name, datatype, dataspace, data), nil
}

// createStringArrayAttribute creates an attribute with an array of
// fixed-length strings, sized to the longest element.
func createStringArrayAttribute(name string, val reflect.Value) (*message.Attribute, error) {
	n := val.Len()
	if n == 0 {
		return nil, fmt.Errorf("empty string array not supported")
	}

	maxLen := 0
	for i := 0; i < n; i++ {
		s := val.Index(i).String()
		if len(s) > maxLen {
			maxLen = len(s)
		}
	}
	strLen := maxLen + 1

	datatype := message.NewStringDatatype(uint32(strLen), message.PadNullTerm, message.CharsetASCII)
	dataspace := message.NewDataspace([]uint64{uint64(n)}, nil)

	data := make([]byte, n*strLen)
	for i := 0; i < n; i++ {
		s := val.Index(i).String()
		offset := i * strLen
		copy(data[offset:], s)
		data[offset+len(s)] = 0
	}

	return message.NewAttribute(name, datatype, dataspace, data), nil
}
