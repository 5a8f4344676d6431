package hdf5

import (
	"fmt"

	"github.com/meerestier/espa-product-formatter/internal/dtype"
	"github.com/meerestier/espa-product-formatter/internal/message"
)

// Attribute represents an attribute attached to a dataset or to the file
// itself.
type Attribute struct {
	msg *message.Attribute
}

// Name returns the attribute name.
func (a *Attribute) Name() string {
	return a.msg.Name
}

// Shape returns the dimensions of the attribute value, or nil for scalars.
func (a *Attribute) Shape() []uint64 {
	if a.msg.Dataspace == nil || a.msg.Dataspace.IsScalar() {
		return nil
	}
	return a.msg.Dataspace.Dimensions
}

// NumElements returns the total number of elements.
func (a *Attribute) NumElements() uint64 {
	if a.msg.Dataspace == nil {
		return 1
	}
	return a.msg.Dataspace.NumElements()
}

// IsScalar returns true if the attribute is a scalar value.
func (a *Attribute) IsScalar() bool {
	if a.msg.Dataspace == nil {
		return true
	}
	return a.msg.Dataspace.IsScalar()
}

// Value decodes the attribute and returns an auto-typed Go value: the
// element itself for scalars, a slice of the element type otherwise.
// Integers come back at their stored width (int16, int32, ...), floats as
// float32/float64, fixed-length strings as string.
func (a *Attribute) Value() (interface{}, error) {
	if a.msg.Datatype == nil {
		return nil, fmt.Errorf("attribute %q has no datatype", a.msg.Name)
	}
	return dtype.Decode(a.msg.Datatype, a.msg.Data, a.NumElements(), a.IsScalar())
}

// StringValue decodes a scalar string attribute.
func (a *Attribute) StringValue() (string, error) {
	v, err := a.Value()
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("attribute %q is not a scalar string (got %T)", a.msg.Name, v)
	}
	return s, nil
}
