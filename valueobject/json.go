package valueobject

import (
	"fmt"
	"reflect"

	"github.com/go-leo/gox/reflectx"
	jsoniter "github.com/json-iterator/go"
)

var (
	encodeAPI = jsoniter.ConfigCompatibleWithStandardLibrary
	decodeAPI = jsoniter.Config{
		EscapeHTML:             true,
		SortMapKeys:            true,
		ValidateJsonRawMessage: true,
		UseNumber:              true,
	}.Froze()
)

// MarshalJSON encodes the raw field values as a JSON object in Keys order.
func (o *Object) MarshalJSON() ([]byte, error) {
	stream := encodeAPI.BorrowStream(nil)
	defer encodeAPI.ReturnStream(stream)
	stream.WriteObjectStart()
	more := false
	for _, name := range o.Keys() {
		raw := o.fields[name].GetValue()
		if f, ok := o.schema.Field(name); ok && f.OmitEmpty && isEmpty(raw) {
			continue
		}
		if more {
			stream.WriteMore()
		}
		more = true
		stream.WriteObjectField(name)
		stream.WriteVal(raw)
	}
	stream.WriteObjectEnd()
	if stream.Error != nil {
		return nil, fmt.Errorf("valueobject: encode: %w", stream.Error)
	}
	return append([]byte(nil), stream.Buffer()...), nil
}

// Decode reads a JSON object into raw values. Numbers are kept as json.Number
// so integers survive the round trip.
func Decode(data []byte) (map[string]any, error) {
	var m map[string]any
	if err := decodeAPI.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("valueobject: decode: %w", err)
	}
	return m, nil
}

func isEmpty(raw any) bool {
	return raw == nil || reflectx.IsEmptyValue(reflect.ValueOf(raw))
}
