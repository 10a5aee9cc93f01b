package value

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// fromProto unwraps the well-known protobuf wrapper messages into raw Go values.
func fromProto(m proto.Message) (any, error) {
	switch m := m.(type) {
	case *wrapperspb.Int64Value:
		return m.GetValue(), nil
	case *wrapperspb.Int32Value:
		return int64(m.GetValue()), nil
	case *wrapperspb.UInt64Value:
		return m.GetValue(), nil
	case *wrapperspb.UInt32Value:
		return uint64(m.GetValue()), nil
	case *wrapperspb.DoubleValue:
		return m.GetValue(), nil
	case *wrapperspb.FloatValue:
		return float64(m.GetValue()), nil
	case *wrapperspb.StringValue:
		return m.GetValue(), nil
	case *wrapperspb.BoolValue:
		return m.GetValue(), nil
	case *wrapperspb.BytesValue:
		return m.GetValue(), nil
	case *structpb.Value:
		return m.AsInterface(), nil
	}
	return nil, fmt.Errorf("%w, message %s", ErrUnsupported, m.ProtoReflect().Descriptor().FullName())
}
