package document

import (
	"strings"
	"testing"
)

func TestParse_EmptyInputIsAbsentDocument(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t\n"} {
		res := Parse(text, FormatAuto)
		if !res.Valid {
			t.Errorf("%q: expected valid, got error %q", text, res.Err)
		}
		if res.Doc != nil {
			t.Errorf("%q: expected absent document, got %+v", text, res.Doc)
		}
	}
}

func TestParse_NullIsPresentDocument(t *testing.T) {
	res := Parse("null", FormatJSON)
	if !res.Valid || res.Doc == nil {
		t.Fatalf("expected a parsed null scalar, got %+v", res)
	}
	if res.Doc.Kind != KindScalar || res.Doc.Scalar.Type != ScalarNull {
		t.Errorf("expected null scalar, got %+v", res.Doc)
	}
}

func TestParse_JSONKeyOrderPreserved(t *testing.T) {
	res := Parse(`{"zebra": 1, "apple": 2, "mango": 3}`, FormatJSON)
	if !res.Valid {
		t.Fatalf("parse failed: %s", res.Err)
	}
	want := []string{"zebra", "apple", "mango"}
	for i, name := range want {
		if res.Doc.Fields[i].Name != name {
			t.Errorf("field %d: expected %q, got %q", i, name, res.Doc.Fields[i].Name)
		}
	}
}

func TestParse_YAMLKeyOrderPreserved(t *testing.T) {
	res := Parse("zebra: 1\napple: 2\nmango: 3\n", FormatYAML)
	if !res.Valid {
		t.Fatalf("parse failed: %s", res.Err)
	}
	want := []string{"zebra", "apple", "mango"}
	for i, name := range want {
		if res.Doc.Fields[i].Name != name {
			t.Errorf("field %d: expected %q, got %q", i, name, res.Doc.Fields[i].Name)
		}
	}
}

func TestParse_JSONNumberKeepsSourceText(t *testing.T) {
	res := Parse(`[1.50, 1e3, -0]`, FormatJSON)
	if !res.Valid {
		t.Fatalf("parse failed: %s", res.Err)
	}
	want := []string{"1.50", "1e3", "-0"}
	for i, text := range want {
		if got := res.Doc.Items[i].Scalar.Number; got != text {
			t.Errorf("item %d: expected %q, got %q", i, text, got)
		}
	}
}

func TestParse_JSONScalarTypes(t *testing.T) {
	res := Parse(`{"s": "hi", "b": true, "n": null, "f": 1.5}`, FormatJSON)
	if !res.Valid {
		t.Fatalf("parse failed: %s", res.Err)
	}
	types := []ScalarType{ScalarString, ScalarBool, ScalarNull, ScalarNumber}
	for i, st := range types {
		if got := res.Doc.Fields[i].Value.Scalar.Type; got != st {
			t.Errorf("field %q: expected scalar type %v, got %v", res.Doc.Fields[i].Name, st, got)
		}
	}
}

func TestParse_InvalidJSON(t *testing.T) {
	for _, text := range []string{`{"a":`, `{"a": 1} extra`, `[1,]`} {
		res := Parse(text, FormatJSON)
		if res.Valid {
			t.Errorf("%q: expected parse failure", text)
		}
		if res.Err == "" {
			t.Errorf("%q: expected a diagnostic message", text)
		}
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	res := Parse("a: [1, 2\nb: oops", FormatYAML)
	if res.Valid {
		t.Fatal("expected parse failure")
	}
}

func TestParse_YAMLScalars(t *testing.T) {
	res := Parse("s: plain\nb: true\nn: ~\ni: 42\nf: 1.5\n", FormatYAML)
	if !res.Valid {
		t.Fatalf("parse failed: %s", res.Err)
	}
	fields := res.Doc.Fields
	if fields[0].Value.Scalar.Str != "plain" {
		t.Errorf("expected plain string, got %+v", fields[0].Value.Scalar)
	}
	if !fields[1].Value.Scalar.Bool {
		t.Error("expected true")
	}
	if fields[2].Value.Scalar.Type != ScalarNull {
		t.Errorf("expected null, got %+v", fields[2].Value.Scalar)
	}
	if fields[3].Value.Scalar.Number != "42" || fields[4].Value.Scalar.Number != "1.5" {
		t.Errorf("expected numeric source text, got %+v and %+v",
			fields[3].Value.Scalar, fields[4].Value.Scalar)
	}
}

func TestParse_YAMLCommentOnlyIsAbsent(t *testing.T) {
	res := Parse("# nothing here\n", FormatYAML)
	if !res.Valid || res.Doc != nil {
		t.Errorf("expected absent document, got %+v", res)
	}
}

func TestParse_AutoFallsBackToYAML(t *testing.T) {
	res := Parse("key: value\n", FormatAuto)
	if !res.Valid {
		t.Fatalf("parse failed: %s", res.Err)
	}
	if res.Doc.Kind != KindObject || res.Doc.Fields[0].Name != "key" {
		t.Errorf("unexpected document: %+v", res.Doc)
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"config.json", FormatJSON},
		{"values.yaml", FormatYAML},
		{"values.YML", FormatYAML},
		{"notes.txt", FormatAuto},
		{"noext", FormatAuto},
	}
	for _, tt := range tests {
		if got := DetectFormat(tt.path); got != tt.want {
			t.Errorf("%s: expected %v, got %v", tt.path, tt.want, got)
		}
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b *Value
		want bool
	}{
		{"identical scalars", Number("1"), Number("1"), true},
		{"number text differs", Number("1.0"), Number("1"), false},
		{"strings", String("a"), String("a"), true},
		{"string vs number", String("1"), Number("1"), false},
		{"null vs null", Null(), Null(), true},
		{
			"object key order ignored",
			Object(Field{"a", Number("1")}, Field{"b", Number("2")}),
			Object(Field{"b", Number("2")}, Field{"a", Number("1")}),
			true,
		},
		{
			"array order matters",
			Array(Number("1"), Number("2")),
			Array(Number("2"), Number("1")),
			false,
		},
		{"nil vs value", nil, Null(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestScalarText(t *testing.T) {
	tests := []struct {
		v    *Value
		want string
	}{
		{Null(), "null"},
		{Bool(true), "true"},
		{Bool(false), "false"},
		{Number("1.50"), "1.50"},
		{String("hi"), `"hi"`},
		{String(`with "quotes"`), `"with \"quotes\""`},
		{Object(), "{"},
		{Array(), "["},
	}
	for _, tt := range tests {
		if got := tt.v.ScalarText(); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}

func TestParse_DeepNesting(t *testing.T) {
	var b strings.Builder
	const depth = 50
	for range depth {
		b.WriteString(`{"x":`)
	}
	b.WriteString("1")
	for range depth {
		b.WriteString("}")
	}
	res := Parse(b.String(), FormatJSON)
	if !res.Valid {
		t.Fatalf("parse failed: %s", res.Err)
	}
	v := res.Doc
	for range depth {
		v = v.Fields[0].Value
	}
	if v.Scalar.Number != "1" {
		t.Errorf("expected innermost 1, got %+v", v.Scalar)
	}
}
