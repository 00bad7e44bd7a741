package math

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"reflect"

	collcodec "cosmossdk.io/collections/codec"
)

var PerbillValue collcodec.ValueCodec[Perbill] = perbillValueCodec{}

type perbillValueCodec struct{}

func (i perbillValueCodec) Encode(value Perbill) ([]byte, error) {
	return binary.BigEndian.AppendUint32(nil, value.parts), nil
}

func (i perbillValueCodec) Decode(b []byte) (Perbill, error) {
	if len(b) != 4 {
		return Perbill{}, fmt.Errorf("invalid perbill encoding length %d", len(b))
	}
	return NewPerbill(binary.BigEndian.Uint32(b))
}

func (i perbillValueCodec) EncodeJSON(value Perbill) ([]byte, error) {
	return value.MarshalJSON()
}

func (i perbillValueCodec) DecodeJSON(b []byte) (Perbill, error) {
	var v Perbill
	err := v.UnmarshalJSON(b)
	return v, err
}

func (i perbillValueCodec) Stringify(value Perbill) string {
	return value.String()
}

func (i perbillValueCodec) ValueType() string {
	return "Perbill"
}

// NewJSONValue returns a value codec storing T as canonical JSON. Module
// records in this repository are plain Go structs, so the binary and the JSON
// encodings are the same bytes.
func NewJSONValue[T any]() collcodec.ValueCodec[T] {
	var zero T
	return jsonValueCodec[T]{name: reflect.TypeOf(zero).String()}
}

type jsonValueCodec[T any] struct {
	name string
}

func (c jsonValueCodec[T]) Encode(value T) ([]byte, error) {
	return json.Marshal(value)
}

func (c jsonValueCodec[T]) Decode(b []byte) (T, error) {
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return v, fmt.Errorf("decoding %s: %w", c.name, err)
	}
	return v, nil
}

func (c jsonValueCodec[T]) EncodeJSON(value T) ([]byte, error) {
	return c.Encode(value)
}

func (c jsonValueCodec[T]) DecodeJSON(b []byte) (T, error) {
	return c.Decode(b)
}

func (c jsonValueCodec[T]) Stringify(value T) string {
	bz, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}
	return string(bz)
}

func (c jsonValueCodec[T]) ValueType() string {
	return "json/" + c.name
}
