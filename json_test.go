package jdict

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToJSON_CompactInsertionOrder(t *testing.T) {
	d := FromItems(
		Item{Key: "a", Value: 1},
		Item{Key: "b", Value: 2},
		Item{Key: "c", Value: 3},
	)

	s, err := d.ToJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"a":1,"b":2,"c":3}`, s)
}

func TestToJSON_Empty(t *testing.T) {
	s, err := New().ToJSON()
	require.NoError(t, err)
	assert.Equal(t, `{}`, s)
}

func TestToJSON_KeepsLaterInsertionsLast(t *testing.T) {
	d := New()
	d.Set("z", 1)
	d.Set("a", 2)

	s, err := d.ToJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"z":1,"a":2}`, s)
}

func TestToJSON_NestedValues(t *testing.T) {
	d := FromItems(
		Item{Key: "list", Value: []int{1, 2}},
		Item{Key: "obj", Value: map[string]int{"x": 1}},
		Item{Key: "null", Value: nil},
	)

	s, err := d.ToJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"list":[1,2],"obj":{"x":1},"null":null}`, s)
}

func TestToJSON_Unencodable(t *testing.T) {
	d := FromItems(Item{Key: "ch", Value: make(chan int)})

	_, err := d.ToJSON()
	require.Error(t, err)

	var eerr *EncodeError
	require.True(t, errors.As(err, &eerr))

	var uerr *json.UnsupportedTypeError
	assert.True(t, errors.As(err, &uerr))
}

func TestMarshalJSON_ViaEncodingJSON(t *testing.T) {
	d := FromItems(
		Item{Key: "b", Value: "x"},
		Item{Key: "a", Value: true},
	)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `{"b":"x","a":true}`, string(b))
}

func TestFromJSON_PreservesDocumentOrder(t *testing.T) {
	d, err := FromJSON([]byte(`{"z":1,"a":"two","m":true,"n":null}`))
	require.NoError(t, err)

	require.Equal(t, []string{"z", "a", "m", "n"}, d.KeyList())
	require.Equal(t, []any{float64(1), "two", true, nil}, d.ValueList())
}

func TestFromJSON_Nested(t *testing.T) {
	d, err := FromJSON([]byte(`{"obj":{"x":1},"arr":[1,"a"]}`))
	require.NoError(t, err)

	v, err := d.Get("obj")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"x": float64(1)}, v)

	v, err = d.Get("arr")
	require.NoError(t, err)
	assert.Equal(t, []any{float64(1), "a"}, v)
}

func TestFromJSON_Invalid(t *testing.T) {
	_, err := FromJSON([]byte(`[1,2,3]`))
	require.Error(t, err)

	_, err = FromJSON([]byte(`{"a":`))
	require.Error(t, err)
}

func TestJSON_RoundTrip(t *testing.T) {
	d := FromItems(
		Item{Key: "a", Value: float64(1)},
		Item{Key: "b", Value: "two"},
		Item{Key: "c", Value: true},
	)

	s, err := d.ToJSON()
	require.NoError(t, err)

	back, err := FromJSON([]byte(s))
	require.NoError(t, err)

	require.Equal(t, d.KeyList(), back.KeyList())
	require.Equal(t, d.ValueList(), back.ValueList())
}

func TestUnmarshalJSON(t *testing.T) {
	var d Dict
	require.NoError(t, json.Unmarshal([]byte(`{"b":2,"a":1}`), &d))
	require.Equal(t, []string{"b", "a"}, d.KeyList())

	v, err := d.GetFloat64("a")
	require.NoError(t, err)
	assert.Equal(t, float64(1), v)
}
