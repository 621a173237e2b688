package jdict

import (
	"bytes"
	"encoding/json"

	"github.com/buger/jsonparser"
)

// ToJSON returns the dict as a compact JSON object, keys in insertion
// order. A value the standard encoder cannot represent fails with an
// *EncodeError wrapping the encoder's error.
func (d *Dict) ToJSON() (string, error) {
	b, err := d.MarshalJSON()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// MarshalJSON implements json.Marshaler, preserving insertion order.
func (d *Dict) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range d.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, &EncodeError{Err: err}
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(d.store[k])
		if err != nil {
			return nil, &EncodeError{Err: err}
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// FromJSON builds a Dict from a JSON object, preserving the document's
// key order. Scalar values follow encoding/json conventions (numbers
// become float64); nested objects and arrays are decoded with
// encoding/json and so lose any inner key order.
func FromJSON(data []byte) (*Dict, error) {
	d := New()
	err := jsonparser.ObjectEach(data, func(key, value []byte, dataType jsonparser.ValueType, _ int) error {
		k, err := jsonparser.ParseString(key)
		if err != nil {
			return err
		}
		v, err := decodeValue(value, dataType)
		if err != nil {
			return err
		}
		d.Set(k, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return d, nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Dict) UnmarshalJSON(data []byte) error {
	nd, err := FromJSON(data)
	if err != nil {
		return err
	}
	*d = *nd
	return nil
}

func decodeValue(value []byte, dataType jsonparser.ValueType) (any, error) {
	switch dataType {
	case jsonparser.String:
		return jsonparser.ParseString(value)
	case jsonparser.Number:
		return jsonparser.ParseFloat(value)
	case jsonparser.Boolean:
		return jsonparser.ParseBoolean(value)
	case jsonparser.Null:
		return nil, nil
	default:
		var v any
		if err := json.Unmarshal(value, &v); err != nil {
			return nil, err
		}
		return v, nil
	}
}
