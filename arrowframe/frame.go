// Package arrowframe implements jdict.FrameBuilder on top of Apache
// Arrow. A blank import registers the builder with jdict:
//
//	import _ "github.com/jonathangjertsen/jdict/arrowframe"
//
// Every representation is an arrow.Record. The caller owns the returned
// record and should release it when done.
package arrowframe

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/pkg/errors"
	"github.com/spf13/cast"

	"github.com/jonathangjertsen/jdict"
)

func init() {
	jdict.RegisterFrameBuilder(Builder{})
}

// Builder builds arrow Records from ordered keys and values. The zero
// value allocates with the Go allocator; set Mem to use another one.
type Builder struct {
	Mem memory.Allocator
}

var _ jdict.FrameBuilder = Builder{}

func (b Builder) mem() memory.Allocator {
	if b.Mem != nil {
		return b.Mem
	}
	return memory.NewGoAllocator()
}

// Series builds a two-column record with one row per entry: an "index"
// column holding the keys and a "value" column holding the values.
func (b Builder) Series(index []string, data []any) (any, error) {
	rec, err := b.indexed("value", index, data)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// DataCol builds the same shape as Series. It exists separately so the
// jdict surface keeps its series/datacol split.
func (b Builder) DataCol(index []string, data []any) (any, error) {
	rec, err := b.indexed("0", index, data)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// DataRow builds a one-row record with one column per key.
func (b Builder) DataRow(keys []string, data []any) (any, error) {
	fields := make([]arrow.Field, len(keys))
	for i, k := range keys {
		fields[i] = arrow.Field{Name: k, Type: columnType(data[i : i+1]), Nullable: true}
	}
	rb := array.NewRecordBuilder(b.mem(), arrow.NewSchema(fields, nil))
	defer rb.Release()
	for i := range keys {
		if err := appendColumn(rb.Field(i), data[i:i+1]); err != nil {
			return nil, errors.Wrapf(err, "column %q", keys[i])
		}
	}
	return rb.NewRecord(), nil
}

func (b Builder) indexed(name string, index []string, data []any) (arrow.Record, error) {
	schema := arrow.NewSchema([]arrow.Field{
		{Name: "index", Type: arrow.BinaryTypes.String},
		{Name: name, Type: columnType(data), Nullable: true},
	}, nil)
	rb := array.NewRecordBuilder(b.mem(), schema)
	defer rb.Release()
	rb.Field(0).(*array.StringBuilder).AppendValues(index, nil)
	if err := appendColumn(rb.Field(1), data); err != nil {
		return nil, errors.Wrapf(err, "column %q", name)
	}
	return rb.NewRecord(), nil
}

// columnType picks an arrow type every value in data fits. A homogeneous
// bool/integer/float/string set maps to the matching arrow type; a mixed
// or otherwise unsupported set is represented as strings. Nils are
// ignored here and become nulls on append.
func columnType(data []any) arrow.DataType {
	var dt arrow.DataType
	for _, v := range data {
		var vt arrow.DataType
		switch v.(type) {
		case nil:
			continue
		case bool:
			vt = arrow.FixedWidthTypes.Boolean
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
			vt = arrow.PrimitiveTypes.Int64
		case float32, float64:
			vt = arrow.PrimitiveTypes.Float64
		case string:
			vt = arrow.BinaryTypes.String
		default:
			vt = arrow.BinaryTypes.String
		}
		if dt == nil {
			dt = vt
		} else if !arrow.TypeEqual(dt, vt) {
			return arrow.BinaryTypes.String
		}
	}
	if dt == nil {
		dt = arrow.BinaryTypes.String
	}
	return dt
}

func appendColumn(fb array.Builder, data []any) error {
	switch ab := fb.(type) {
	case *array.BooleanBuilder:
		for _, v := range data {
			if v == nil {
				ab.AppendNull()
				continue
			}
			ab.Append(v.(bool))
		}
	case *array.Int64Builder:
		for _, v := range data {
			if v == nil {
				ab.AppendNull()
				continue
			}
			ab.Append(cast.ToInt64(v))
		}
	case *array.Float64Builder:
		for _, v := range data {
			if v == nil {
				ab.AppendNull()
				continue
			}
			ab.Append(cast.ToFloat64(v))
		}
	case *array.StringBuilder:
		for i, v := range data {
			if v == nil {
				ab.AppendNull()
				continue
			}
			s, err := cast.ToStringE(v)
			if err != nil {
				return errors.Wrapf(err, "value %d", i)
			}
			ab.Append(s)
		}
	default:
		return errors.Errorf("unsupported column type %s", fb.Type())
	}
	return nil
}
