package serializer

import (
	"github.com/ugorji/go/codec"

	"github.com/hyp3rd/ewrap"
)

// Shared handle; safe for concurrent encoders/decoders.
//
//nolint:gochecknoglobals
var cborHandle = &codec.CborHandle{}

// CborSerializer leverages ugorji's codec to serialize memoized results as
// CBOR before handing them to a backend.
type CborSerializer struct{}

// Marshal serializes the given value into a byte slice.
func (*CborSerializer) Marshal(v any) ([]byte, error) {
	var data []byte

	err := codec.NewEncoderBytes(&data, cborHandle).Encode(v)
	if err != nil {
		return nil, ewrap.Wrap(err, "failed to marshal cbor")
	}

	return data, nil
}

// Unmarshal deserializes the given byte slice into the given value.
func (*CborSerializer) Unmarshal(data []byte, v any) error {
	err := codec.NewDecoderBytes(data, cborHandle).Decode(v)
	if err != nil {
		return ewrap.Wrap(err, "failed to unmarshal cbor")
	}

	return nil
}
