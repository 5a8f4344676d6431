package dtype

import (
	"fmt"
	"math"

	"github.com/meerestier/espa-product-formatter/internal/message"
)

// Decode converts raw HDF5 bytes to a Go value. For n == 1 with a scalar
// dataspace the element itself is returned; otherwise a slice of the
// element type. Only the classes this codec writes are supported:
// fixed-point integers, IEEE floats, and fixed-length strings.
func Decode(dt *message.Datatype, data []byte, n uint64, scalar bool) (interface{}, error) {
	if dt == nil {
		return nil, fmt.Errorf("nil datatype")
	}

	switch dt.Class {
	case message.ClassFixedPoint:
		return decodeFixedPoint(dt, data, n, scalar)
	case message.ClassFloatPoint:
		return decodeFloatPoint(dt, data, n, scalar)
	case message.ClassString:
		return decodeString(dt, data, n, scalar)
	default:
		return nil, fmt.Errorf("unsupported datatype class for decoding: %d", dt.Class)
	}
}

func decodeFixedPoint(dt *message.Datatype, data []byte, n uint64, scalar bool) (interface{}, error) {
	order := ByteOrder(dt)
	size := int(dt.Size)
	if uint64(len(data)) < n*uint64(size) {
		return nil, fmt.Errorf("fixed-point data truncated: have %d bytes, need %d", len(data), n*uint64(size))
	}

	switch {
	case size == 1 && dt.Signed:
		out := make([]int8, n)
		for i := range out {
			out[i] = int8(data[i])
		}
		return scalarOrSlice(out, scalar), nil
	case size == 1:
		out := make([]uint8, n)
		copy(out, data[:n])
		return scalarOrSlice(out, scalar), nil
	case size == 2 && dt.Signed:
		out := make([]int16, n)
		for i := range out {
			out[i] = int16(order.Uint16(data[i*2:]))
		}
		return scalarOrSlice(out, scalar), nil
	case size == 2:
		out := make([]uint16, n)
		for i := range out {
			out[i] = order.Uint16(data[i*2:])
		}
		return scalarOrSlice(out, scalar), nil
	case size == 4 && dt.Signed:
		out := make([]int32, n)
		for i := range out {
			out[i] = int32(order.Uint32(data[i*4:]))
		}
		return scalarOrSlice(out, scalar), nil
	case size == 4:
		out := make([]uint32, n)
		for i := range out {
			out[i] = order.Uint32(data[i*4:])
		}
		return scalarOrSlice(out, scalar), nil
	case size == 8 && dt.Signed:
		out := make([]int64, n)
		for i := range out {
			out[i] = int64(order.Uint64(data[i*8:]))
		}
		return scalarOrSlice(out, scalar), nil
	case size == 8:
		out := make([]uint64, n)
		for i := range out {
			out[i] = order.Uint64(data[i*8:])
		}
		return scalarOrSlice(out, scalar), nil
	default:
		return nil, fmt.Errorf("unsupported fixed-point size: %d", size)
	}
}

func decodeFloatPoint(dt *message.Datatype, data []byte, n uint64, scalar bool) (interface{}, error) {
	order := ByteOrder(dt)
	size := int(dt.Size)
	if uint64(len(data)) < n*uint64(size) {
		return nil, fmt.Errorf("float data truncated: have %d bytes, need %d", len(data), n*uint64(size))
	}

	switch size {
	case 4:
		out := make([]float32, n)
		for i := range out {
			out[i] = math.Float32frombits(order.Uint32(data[i*4:]))
		}
		return scalarOrSlice(out, scalar), nil
	case 8:
		out := make([]float64, n)
		for i := range out {
			out[i] = math.Float64frombits(order.Uint64(data[i*8:]))
		}
		return scalarOrSlice(out, scalar), nil
	default:
		return nil, fmt.Errorf("unsupported float size: %d", size)
	}
}

func decodeString(dt *message.Datatype, data []byte, n uint64, scalar bool) (interface{}, error) {
	size := int(dt.Size)
	if uint64(len(data)) < n*uint64(size) {
		return nil, fmt.Errorf("string data truncated: have %d bytes, need %d", len(data), n*uint64(size))
	}

	out := make([]string, n)
	for i := uint64(0); i < n; i++ {
		chunk := data[i*uint64(size) : (i+1)*uint64(size)]
		end := 0
		for end < len(chunk) && chunk[end] != 0 {
			end++
		}
		out[i] = string(chunk[:end])
	}
	return scalarOrSlice(out, scalar), nil
}

func scalarOrSlice[T any](vals []T, scalar bool) interface{} {
	if scalar && len(vals) == 1 {
		return vals[0]
	}
	return vals
}
