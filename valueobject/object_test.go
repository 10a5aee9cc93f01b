package valueobject_test

import (
	"testing"

	"github.com/go-leo/valueobject/value"
	"github.com/go-leo/valueobject/valueobject"
	"github.com/kinbiko/jsonassert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pointSchema = valueobject.MustSchema(
	valueobject.Field{Name: "x", Kind: value.KindInt, Required: true},
	valueobject.Field{Name: "y", Kind: value.KindInt, Default: 0},
	valueobject.Field{Name: "label", Kind: value.KindString, OmitEmpty: true},
)

func TestNewSchema(t *testing.T) {
	_, err := valueobject.NewSchema(valueobject.Field{Name: "a"}, valueobject.Field{Name: "a"})
	assert.ErrorIs(t, err, valueobject.ErrDuplicateField)

	_, err = valueobject.NewSchema(valueobject.Field{})
	assert.ErrorIs(t, err, valueobject.ErrEmptyFieldName)

	assert.Equal(t, []string{"x", "y", "label"}, pointSchema.Names())
	assert.Equal(t, 3, pointSchema.Len())
	assert.True(t, pointSchema.Has("x"))
	assert.False(t, pointSchema.Has("z"))

	extended, err := pointSchema.With(valueobject.Field{Name: "z", Kind: value.KindInt})
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y", "label", "z"}, extended.Names())
	assert.Equal(t, 3, pointSchema.Len())

	_, err = pointSchema.With(valueobject.Field{Name: "x"})
	assert.ErrorIs(t, err, valueobject.ErrDuplicateField)
}

func TestNew(t *testing.T) {
	o, err := valueobject.New(pointSchema, map[string]any{"x": 1, "label": "origin"})
	require.NoError(t, err)
	assert.True(t, o.Constructed())

	x, ok := o.Get("x")
	require.True(t, ok)
	assert.Equal(t, value.Int(1), x)

	y, ok := o.Get("y")
	require.True(t, ok)
	assert.Equal(t, int64(0), y.GetValue())

	assert.Equal(t, []string{"x", "y", "label"}, o.Keys())
	assert.Equal(t, map[string]any{"x": int64(1), "y": int64(0), "label": "origin"}, o.ToMap())

	_, err = valueobject.New(pointSchema, map[string]any{"y": 1})
	assert.ErrorIs(t, err, valueobject.ErrMissingField)

	_, err = valueobject.New(pointSchema, map[string]any{"x": 1, "z": 2})
	assert.ErrorIs(t, err, valueobject.ErrUnknownField)

	_, err = valueobject.New(pointSchema, map[string]any{"x": "one"})
	var castErr *value.CastError
	assert.ErrorAs(t, err, &castErr)
}

func TestImmutable(t *testing.T) {
	o, err := valueobject.New(pointSchema, map[string]any{"x": 1})
	require.NoError(t, err)

	err = o.Set("x", 2)
	assert.ErrorIs(t, err, valueobject.ErrImmutable)
	x, _ := o.Get("x")
	assert.Equal(t, int64(1), x.GetValue())
}

func TestCastingHooks(t *testing.T) {
	o := valueobject.Build(pointSchema)
	assert.False(t, o.Constructed())

	assert.True(t, o.NeedCasting("x", 1))
	assert.False(t, o.NeedCasting("x", value.Int(1)))
	assert.True(t, o.NeedCasting("x", value.String("1")))
	assert.True(t, o.NeedCasting("nope", value.Int(1)))

	v, err := o.InnerCast("label", 12)
	require.NoError(t, err)
	assert.Equal(t, value.String("12"), v)

	_, err = o.InnerCast("nope", 1)
	assert.ErrorIs(t, err, valueobject.ErrUnknownField)

	o.InnerSet("x", value.Int(5))
	assert.Equal(t, 1, o.Len())
	o.InnerSet("x", nil)
	assert.Equal(t, 0, o.Len())

	require.NoError(t, o.Set("x", 3))
	require.NoError(t, o.Seal())
	assert.True(t, o.Constructed())
	require.NoError(t, o.Seal())
}

func TestIsSame(t *testing.T) {
	a, err := valueobject.New(pointSchema, map[string]any{"x": 1, "y": 2})
	require.NoError(t, err)
	b, err := valueobject.New(pointSchema, map[string]any{"x": 1, "y": 2})
	require.NoError(t, err)
	c, err := valueobject.New(pointSchema, map[string]any{"x": 1, "y": 3})
	require.NoError(t, err)

	assert.True(t, a.IsSame(a))
	assert.True(t, a.IsSame(b))
	assert.True(t, b.IsSame(a))
	assert.False(t, a.IsSame(c))
	assert.False(t, a.IsSame(nil))

	otherSchema := valueobject.MustSchema(pointSchema.Fields()...)
	d, err := valueobject.New(otherSchema, map[string]any{"x": 1, "y": 2})
	require.NoError(t, err)
	assert.False(t, a.IsSame(d))
}

func TestJSON(t *testing.T) {
	ja := jsonassert.New(t)

	o, err := valueobject.New(pointSchema, map[string]any{"x": 1, "y": 2})
	require.NoError(t, err)
	data, err := o.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"x":1,"y":2}`, string(data))

	o, err = valueobject.NewFromJSON(pointSchema, []byte(`{"label":"a","x":9007199254740993}`))
	require.NoError(t, err)
	x, _ := o.Get("x")
	assert.Equal(t, int64(9007199254740993), x.GetValue())
	data, err = o.MarshalJSON()
	require.NoError(t, err)
	ja.Assertf(string(data), `{"x":9007199254740993,"y":0,"label":"a"}`)

	_, err = valueobject.NewFromJSON(pointSchema, []byte(`{"x":`))
	assert.Error(t, err)
}
