package jdict

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFrameBuilder struct {
	calls  []string
	index  []string
	data   []any
	result any
	err    error
}

func (s *stubFrameBuilder) Series(index []string, data []any) (any, error) {
	s.calls = append(s.calls, "series")
	s.index, s.data = index, data
	return s.result, s.err
}

func (s *stubFrameBuilder) DataCol(index []string, data []any) (any, error) {
	s.calls = append(s.calls, "datacol")
	s.index, s.data = index, data
	return s.result, s.err
}

func (s *stubFrameBuilder) DataRow(keys []string, data []any) (any, error) {
	s.calls = append(s.calls, "datarow")
	s.index, s.data = keys, data
	return s.result, s.err
}

func TestFrame_NoBuilderRegistered(t *testing.T) {
	RegisterFrameBuilder(nil)

	d := FromItems(Item{Key: "a", Value: 1})

	_, err := d.Series()
	require.ErrorIs(t, err, ErrNoFrameBuilder)
	_, err = d.DataCol()
	require.ErrorIs(t, err, ErrNoFrameBuilder)
	_, err = d.DataRow()
	require.ErrorIs(t, err, ErrNoFrameBuilder)
}

func TestFrame_DelegatesOrderedKeysAndValues(t *testing.T) {
	stub := &stubFrameBuilder{result: "frame"}
	RegisterFrameBuilder(stub)
	defer RegisterFrameBuilder(nil)

	d := FromItems(
		Item{Key: "b", Value: 2},
		Item{Key: "a", Value: 1},
	)

	res, err := d.Series()
	require.NoError(t, err)
	assert.Equal(t, "frame", res)
	assert.Equal(t, []string{"b", "a"}, stub.index)
	assert.Equal(t, []any{2, 1}, stub.data)

	_, err = d.DataCol()
	require.NoError(t, err)
	_, err = d.DataRow()
	require.NoError(t, err)

	assert.Equal(t, []string{"series", "datacol", "datarow"}, stub.calls)
}

func TestFrame_BuilderErrorPropagates(t *testing.T) {
	want := errors.New("boom")
	RegisterFrameBuilder(&stubFrameBuilder{err: want})
	defer RegisterFrameBuilder(nil)

	d := FromItems(Item{Key: "a", Value: 1})
	_, err := d.Series()
	require.ErrorIs(t, err, want)
}
