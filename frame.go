package jdict

// FrameBuilder builds tabular representations from a dict's ordered keys
// and values. Implementations live outside this package so the core
// carries no dependency on any particular columnar library; the
// arrowframe subpackage provides one backed by Apache Arrow.
type FrameBuilder interface {
	// Series builds a single column of data indexed by index.
	Series(index []string, data []any) (any, error)
	// DataCol builds a single-column frame indexed by index.
	DataCol(index []string, data []any) (any, error)
	// DataRow builds a single-row frame with one column per key.
	DataRow(keys []string, data []any) (any, error)
}

var frameBuilder FrameBuilder

// RegisterFrameBuilder installs the builder used by Series, DataCol and
// DataRow. A blank import of the arrowframe package registers its
// builder:
//
//	import _ "github.com/jonathangjertsen/jdict/arrowframe"
//
// Registering nil removes the current builder.
func RegisterFrameBuilder(b FrameBuilder) {
	frameBuilder = b
}

// Series returns a single-column representation of the dict, indexed by
// its keys. Fails with ErrNoFrameBuilder when no builder is registered.
func (d *Dict) Series() (any, error) {
	if frameBuilder == nil {
		return nil, ErrNoFrameBuilder
	}
	return frameBuilder.Series(d.KeyList(), d.ValueList())
}

// DataCol returns a single-column frame representation of the dict,
// indexed by its keys. Fails with ErrNoFrameBuilder when no builder is
// registered.
func (d *Dict) DataCol() (any, error) {
	if frameBuilder == nil {
		return nil, ErrNoFrameBuilder
	}
	return frameBuilder.DataCol(d.KeyList(), d.ValueList())
}

// DataRow returns a single-row frame representation with one column per
// key. Fails with ErrNoFrameBuilder when no builder is registered.
func (d *Dict) DataRow() (any, error) {
	if frameBuilder == nil {
		return nil, ErrNoFrameBuilder
	}
	return frameBuilder.DataRow(d.KeyList(), d.ValueList())
}
