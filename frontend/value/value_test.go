package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type person struct {
	Name string
	age  int
}

func TestClassification(t *testing.T) {
	fn := func() {}
	cases := []struct {
		name string
		v    any
		is   func(any) bool
		want bool
	}{
		{"string is string", "a", IsString, true},
		{"number is not string", 1, IsString, false},
		{"int is number", 1, IsNumber, true},
		{"float is number", 1.5, IsNumber, true},
		{"uint is number", uint8(3), IsNumber, true},
		{"bool is not number", true, IsNumber, false},
		{"bool is bool", false, IsBool, true},
		{"nil is null", nil, IsNull, true},
		{"nil map is null", map[string]any(nil), IsNull, true},
		{"nil pointer is null", (*person)(nil), IsNull, true},
		{"zero is not null", 0, IsNull, false},
		{"absent is absent", Absent, IsAbsent, true},
		{"nil is not absent", nil, IsAbsent, false},
		{"func is callable", fn, IsCallable, true},
		{"string is not callable", "f", IsCallable, false},
		{"map is object", map[string]any{}, IsObject, true},
		{"struct is object", person{}, IsObject, true},
		{"struct pointer is object", &person{}, IsObject, true},
		{"nil map is not object", map[string]any(nil), IsObject, false},
		{"slice is not object", []any{}, IsObject, false},
		{"absent is not object", Absent, IsObject, false},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.is(tt.v))
		})
	}
}

func TestFieldReadsMissingKeyAsAbsent(t *testing.T) {
	assert.Equal(t, 1, Field(map[string]any{"x": 1}, "x"))
	assert.True(t, IsAbsent(Field(map[string]any{"x": 1}, "y")))
	assert.True(t, IsAbsent(Field(map[string]any{}, "x")))
}

func TestFieldOnStructs(t *testing.T) {
	p := person{Name: "ada", age: 36}
	assert.Equal(t, "ada", Field(p, "Name"))
	assert.Equal(t, "ada", Field(&p, "Name"))
	// unexported fields read as absent
	assert.True(t, IsAbsent(Field(p, "age")))
	assert.True(t, IsAbsent(Field(p, "Missing")))
}

func TestElems(t *testing.T) {
	elems, ok := Elems([]any{1, "a"})
	assert.True(t, ok)
	assert.Equal(t, []any{1, "a"}, elems)

	elems, ok = Elems([]int{1, 2})
	assert.True(t, ok)
	assert.Equal(t, []any{1, 2}, elems)

	_, ok = Elems("not an array")
	assert.False(t, ok)
	_, ok = Elems(nil)
	assert.False(t, ok)
}

func TestEqualNormalisesNumbers(t *testing.T) {
	assert.True(t, Equal(1, 1.0))
	assert.True(t, Equal(uint8(2), int64(2)))
	assert.False(t, Equal(1, 2))
	assert.True(t, Equal("a", "a"))
	assert.False(t, Equal("a", "b"))
	assert.False(t, Equal("1", 1))
	assert.True(t, Equal(nil, nil))
	assert.False(t, Equal(nil, 0))
}

func TestTypeNameOf(t *testing.T) {
	assert.Equal(t, "person", TypeNameOf(person{}))
	assert.Equal(t, "person", TypeNameOf(&person{}))
	assert.Equal(t, "", TypeNameOf(nil))
	assert.Equal(t, "", TypeNameOf(map[string]any{}))
}
