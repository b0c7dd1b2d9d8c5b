package signing

import "strings"

// Field is one key=value pair of a canonical string. The position of a Field in its
// slice is its position in the signed text.
type Field struct {
	Key      string
	Value    string
	Optional bool
}

func required(key, value string) Field {
	return Field{Key: key, Value: value}
}

func optional(key, value string) Field {
	return Field{Key: key, Value: value, Optional: true}
}

// KeyValue renders fields as key=value pairs joined by '&', in slice order.
// Optional fields render as "key=" when empty.
func KeyValue(fields ...Field) (string, error) {
	if err := checkRequired(fields); err != nil {
		return "", err
	}

	var b strings.Builder
	for i, f := range fields {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(f.Key)
		b.WriteByte('=')
		b.WriteString(f.Value)
	}
	return b.String(), nil
}

// Values renders only the values of fields joined by sep, in slice order.
func Values(sep string, fields ...Field) (string, error) {
	if err := checkRequired(fields); err != nil {
		return "", err
	}

	values := make([]string, len(fields))
	for i, f := range fields {
		values[i] = f.Value
	}
	return strings.Join(values, sep), nil
}

func checkRequired(fields []Field) error {
	for _, f := range fields {
		if !f.Optional && f.Value == "" {
			return &SigningError{Field: f.Key}
		}
	}
	return nil
}
