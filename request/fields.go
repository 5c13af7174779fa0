package request

import (
	"fmt"
	"math"

	"google.golang.org/protobuf/types/known/structpb"
)

// Typed accessors over a Struct; every failure wraps ErrMalformed.

func field(s *structpb.Struct, key string) (*structpb.Value, error) {
	v, ok := s.GetFields()[key]
	if !ok {
		return nil, fmt.Errorf("%w: missing %q", ErrMalformed, key)
	}
	return v, nil
}

func stringField(s *structpb.Struct, key string) (string, error) {
	v, err := field(s, key)
	if err != nil {
		return "", err
	}
	str, ok := v.GetKind().(*structpb.Value_StringValue)
	if !ok {
		return "", fmt.Errorf("%w: %q is not a string", ErrMalformed, key)
	}
	return str.StringValue, nil
}

func numberField(s *structpb.Struct, key string) (float64, error) {
	v, err := field(s, key)
	if err != nil {
		return 0, err
	}
	return number(v, key)
}

func number(v *structpb.Value, what string) (float64, error) {
	n, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return 0, fmt.Errorf("%w: %s is not a number", ErrMalformed, what)
	}
	return n.NumberValue, nil
}

func intField(s *structpb.Struct, key string) (int64, error) {
	n, err := numberField(s, key)
	if err != nil {
		return 0, err
	}
	if n != math.Trunc(n) {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrMalformed, key)
	}
	if n < math.MinInt64 || n >= math.MaxInt64 {
		return 0, fmt.Errorf("%w: %q is out of range", ErrMalformed, key)
	}
	return int64(n), nil
}

func boolField(s *structpb.Struct, key string) (bool, error) {
	v, err := field(s, key)
	if err != nil {
		return false, err
	}
	b, ok := v.GetKind().(*structpb.Value_BoolValue)
	if !ok {
		return false, fmt.Errorf("%w: %q is not a bool", ErrMalformed, key)
	}
	return b.BoolValue, nil
}

func listField(s *structpb.Struct, key string) ([]*structpb.Value, error) {
	v, err := field(s, key)
	if err != nil {
		return nil, err
	}
	l, ok := v.GetKind().(*structpb.Value_ListValue)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not an array", ErrMalformed, key)
	}
	return l.ListValue.GetValues(), nil
}

func objectField(s *structpb.Struct, key string) (*structpb.Struct, error) {
	v, err := field(s, key)
	if err != nil {
		return nil, err
	}
	return object(v, fmt.Sprintf("%q", key))
}

func object(v *structpb.Value, what string) (*structpb.Struct, error) {
	o, ok := v.GetKind().(*structpb.Value_StructValue)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not an object", ErrMalformed, what)
	}
	return o.StructValue, nil
}

func has(s *structpb.Struct, key string) bool {
	_, ok := s.GetFields()[key]
	return ok
}
