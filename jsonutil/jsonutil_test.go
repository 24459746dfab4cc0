package jsonutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cssb/jsonutil"
	"cssb/shapes"
)

func TestToJSON(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"array", []int{1, 2, 3}, "[1,2,3]"},
		{"nested array", [][]string{{"a", "b"}, {"c"}}, `[["a","b"],["c"]]`},
		{"rect", shapes.NewRect(10, 20), `{"width":10,"height":20}`},
		{"number", 42, "42"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := jsonutil.ToJSON(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromPrototype_RoundTrip(t *testing.T) {
	orig := shapes.NewRect(10, 20)

	data, err := jsonutil.ToJSON(orig)
	require.NoError(t, err)

	got, err := jsonutil.FromPrototype(shapes.Rect{}, data)
	require.NoError(t, err)

	r, ok := got.(shapes.Rect)
	require.True(t, ok, "expected a shapes.Rect, got %T", got)
	assert.Equal(t, orig.Width, r.Width)
	assert.Equal(t, orig.Height, r.Height)
	assert.Equal(t, orig.Area(), r.Area())
}

func TestFromPrototype_PointerPrototype(t *testing.T) {
	got, err := jsonutil.FromPrototype(&shapes.Rect{}, `{"width":3,"height":4}`)
	require.NoError(t, err)

	r, ok := got.(shapes.Rect)
	require.True(t, ok)
	assert.Equal(t, 12.0, r.Area())
}

func TestFromPrototype_Errors(t *testing.T) {
	_, err := jsonutil.FromPrototype(nil, "{}")
	assert.Error(t, err)

	_, err = jsonutil.FromPrototype(shapes.Rect{}, "not json")
	assert.Error(t, err)
}
