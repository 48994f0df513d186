package importer

import (
	"testing"

	"github.com/jfranklin9000/ucg/internal/value"
)

func TestDecodeJSONPreservesFieldOrder(t *testing.T) {
	r := NewRegistry()
	v, err := r.Decode("json", []byte(`{"b": 1, "a": 2, "c": [1,2,3]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tup, ok := v.(*value.Tuple)
	if !ok {
		t.Fatalf("expected a tuple, got %T", v)
	}
	gotOrder := []string{tup.Fields[0].Name, tup.Fields[1].Name, tup.Fields[2].Name}
	want := []string{"b", "a", "c"}
	for i := range want {
		if gotOrder[i] != want[i] {
			t.Fatalf("field order = %v, want %v", gotOrder, want)
		}
	}
}

func TestDecodeYAMLPreservesFieldOrder(t *testing.T) {
	r := NewRegistry()
	v, err := r.Decode("yaml", []byte("b: 1\na: 2\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tup, ok := v.(*value.Tuple)
	if !ok {
		t.Fatalf("expected a tuple, got %T", v)
	}
	if tup.Fields[0].Name != "b" || tup.Fields[1].Name != "a" {
		t.Fatalf("unexpected order: %+v", tup.Fields)
	}
}

func TestDecodeUnknownImporter(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Decode("toml", []byte("x = 1")); err == nil {
		t.Fatalf("expected an Unsupported error")
	}
}

func TestDecodeEmptyJSON(t *testing.T) {
	r := NewRegistry()
	v, err := r.Decode("json", []byte(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := v.(value.Empty); !ok {
		t.Fatalf("expected Empty for empty input, got %T", v)
	}
}
