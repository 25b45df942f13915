package serializer

import (
	"errors"
	"testing"

	"github.com/longbridgeapp/assert"

	"github.com/hazelutf8/approx-pearson-skew/internal/sentinel"
)

type payload struct {
	Skew  float64 `json:"skew"`
	Count int     `json:"count"`
}

func TestSerializer_RoundTrip(t *testing.T) {
	tests := []struct {
		name           string
		serializerType string
	}{
		{name: "json round trip", serializerType: "json"},
		{name: "default round trip", serializerType: "default"},
		{name: "msgpack round trip", serializerType: "msgpack"},
		{name: "cbor round trip", serializerType: "cbor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sz, err := New(tt.serializerType)
			assert.NoError(t, err)

			in := payload{Skew: 2.25, Count: 5}

			data, err := sz.Marshal(&in)
			assert.NoError(t, err)

			var out payload
			err = sz.Unmarshal(data, &out)
			assert.NoError(t, err)

			assert.Equal(t, in, out)
		})
	}
}

func TestSerializer_Unknown(t *testing.T) {
	_, err := New("does-not-exist")
	if !errors.Is(err, sentinel.ErrSerializerNotFound) {
		t.Error("expected ErrSerializerNotFound, got", err)
	}
}

func TestSerializer_EmptyType(t *testing.T) {
	_, err := New("")
	if !errors.Is(err, sentinel.ErrParamCannotBeEmpty) {
		t.Error("expected ErrParamCannotBeEmpty, got", err)
	}
}

func TestSerializer_RegistryRegister(t *testing.T) {
	registry := NewEmptySerializerRegistry()
	registry.Register("custom", func() ISerializer { return &MsgpackSerializer{} })

	sz, err := registry.New("custom")
	assert.NoError(t, err)

	if _, ok := sz.(*MsgpackSerializer); !ok {
		t.Errorf("expected a MsgpackSerializer, got %T", sz)
	}
}
