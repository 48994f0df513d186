package scope

import (
	"testing"

	"github.com/jfranklin9000/ucg/internal/value"
)

func TestBindAndLookup(t *testing.T) {
	s := New(false)
	if !s.Bind("x", value.Int{Value: 1}) {
		t.Fatalf("first bind should succeed")
	}
	if s.Bind("x", value.Int{Value: 2}) {
		t.Fatalf("rebinding in the same scope must fail")
	}
	v, ok := s.LookupSym("x", false)
	if !ok || v.(value.Int).Value != 1 {
		t.Fatalf("got %v, %v", v, ok)
	}
}

func TestChildInheritsBindings(t *testing.T) {
	parent := New(false)
	parent.Bind("x", value.Int{Value: 1})
	child := parent.SpawnChild()
	v, ok := child.LookupSym("x", false)
	if !ok || v.(value.Int).Value != 1 {
		t.Fatalf("child should see parent binding, got %v %v", v, ok)
	}
	child.Bind("y", value.Int{Value: 2})
	if _, ok := parent.LookupSym("y", false); ok {
		t.Fatalf("parent must not see child bindings")
	}
}

func TestSpawnCleanHasNoBindings(t *testing.T) {
	parent := New(true)
	parent.Bind("x", value.Int{Value: 1})
	clean := parent.SpawnClean()
	if _, ok := clean.LookupSym("x", false); ok {
		t.Fatalf("clean child must not inherit bindings")
	}
	if !clean.Strict() {
		t.Fatalf("clean child must inherit strictness policy")
	}
}

func TestCurrentValSearchedFirst(t *testing.T) {
	s := New(false)
	s.Bind("a", value.Int{Value: 100})
	tup := value.NewTuple([]value.Field{{Name: "a", Value: value.Int{Value: 1}}})
	child := s.SpawnChild()
	child.SetCurrVal(tup)
	v, ok := child.LookupSym("a", true)
	if !ok || v.(value.Int).Value != 1 {
		t.Fatalf("current-value field should shadow lexical binding, got %v %v", v, ok)
	}
	v, ok = child.LookupSym("a", false)
	if !ok || v.(value.Int).Value != 100 {
		t.Fatalf("without searchCurrVal should resolve lexically, got %v %v", v, ok)
	}
}

func TestLookupIdx(t *testing.T) {
	s := New(false)
	s.SetCurrVal(&value.List{Elements: []value.Value{value.Int{Value: 9}, value.Int{Value: 8}}})
	v, ok := s.LookupIdx(1)
	if !ok || v.(value.Int).Value != 8 {
		t.Fatalf("got %v %v", v, ok)
	}
	if _, ok := s.LookupIdx(5); ok {
		t.Fatalf("out of range index should fail")
	}
}

func TestImportStackPushAndDetect(t *testing.T) {
	s := New(false)
	if s.OnImportStack("/a") {
		t.Fatalf("empty stack should not contain /a")
	}
	s2 := s.PushImport("/a")
	if !s2.OnImportStack("/a") {
		t.Fatalf("pushed path should be detected")
	}
	if s.OnImportStack("/a") {
		t.Fatalf("pushing must not mutate the original scope's stack")
	}
}
