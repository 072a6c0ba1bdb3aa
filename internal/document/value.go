package document

import "encoding/json"

// Kind classifies a parsed value.
type Kind int

const (
	KindObject Kind = iota
	KindArray
	KindScalar
)

func (k Kind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return "primitive"
	}
}

// ScalarType classifies the payload of a scalar value.
type ScalarType int

const (
	ScalarNull ScalarType = iota
	ScalarBool
	ScalarNumber
	ScalarString
)

// Scalar is a typed leaf payload. Numbers keep their source text so that
// "1.50" and "1.5" stay distinguishable.
type Scalar struct {
	Type   ScalarType
	Bool   bool
	Number string
	Str    string
}

// Value is one node of a parsed document. Exactly one of Fields, Items or
// Scalar is meaningful, selected by Kind. Object fields keep the source
// iteration order; they are never routed through a Go map.
type Value struct {
	Kind   Kind
	Fields []Field
	Items  []*Value
	Scalar Scalar
}

// Field is one ordered entry of an object value.
type Field struct {
	Name  string
	Value *Value
}

// Null returns the null scalar.
func Null() *Value {
	return &Value{Kind: KindScalar, Scalar: Scalar{Type: ScalarNull}}
}

// Bool returns a boolean scalar.
func Bool(b bool) *Value {
	return &Value{Kind: KindScalar, Scalar: Scalar{Type: ScalarBool, Bool: b}}
}

// Number returns a numeric scalar from its source text.
func Number(text string) *Value {
	return &Value{Kind: KindScalar, Scalar: Scalar{Type: ScalarNumber, Number: text}}
}

// String returns a string scalar.
func String(s string) *Value {
	return &Value{Kind: KindScalar, Scalar: Scalar{Type: ScalarString, Str: s}}
}

// Object returns an object value with the given ordered fields.
func Object(fields ...Field) *Value {
	return &Value{Kind: KindObject, Fields: fields}
}

// Array returns an array value with the given items.
func Array(items ...*Value) *Value {
	return &Value{Kind: KindArray, Items: items}
}

// ScalarText renders a scalar value the way it appears in a document:
// quoted strings, raw number text, true/false, null. Containers render as
// their opening bracket.
func (v *Value) ScalarText() string {
	switch v.Kind {
	case KindObject:
		return "{"
	case KindArray:
		return "["
	}
	switch v.Scalar.Type {
	case ScalarNull:
		return "null"
	case ScalarBool:
		if v.Scalar.Bool {
			return "true"
		}
		return "false"
	case ScalarNumber:
		return v.Scalar.Number
	default:
		quoted, err := json.Marshal(v.Scalar.Str)
		if err != nil {
			return v.Scalar.Str
		}
		return string(quoted)
	}
}

// Equal reports deep value equality. Object comparison ignores key order;
// arrays compare by index; number scalars compare by source text, so
// formatting differences count as changes.
func Equal(a, b *Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindObject:
		if len(a.Fields) != len(b.Fields) {
			return false
		}
		byName := make(map[string]*Value, len(b.Fields))
		for _, f := range b.Fields {
			byName[f.Name] = f.Value
		}
		for _, f := range a.Fields {
			other, ok := byName[f.Name]
			if !ok || !Equal(f.Value, other) {
				return false
			}
		}
		return true
	case KindArray:
		if len(a.Items) != len(b.Items) {
			return false
		}
		for i := range a.Items {
			if !Equal(a.Items[i], b.Items[i]) {
				return false
			}
		}
		return true
	default:
		if a.Scalar.Type != b.Scalar.Type {
			return false
		}
		switch a.Scalar.Type {
		case ScalarBool:
			return a.Scalar.Bool == b.Scalar.Bool
		case ScalarNumber:
			return a.Scalar.Number == b.Scalar.Number
		case ScalarString:
			return a.Scalar.Str == b.Scalar.Str
		default:
			return true
		}
	}
}
