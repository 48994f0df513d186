package eval

import (
	"testing"

	"github.com/jfranklin9000/ucg/internal/ast"
	"github.com/jfranklin9000/ucg/internal/evalerr"
	"github.com/jfranklin9000/ucg/internal/value"
)

func override(name string, v ast.Expression) ast.CopyOverride {
	return ast.CopyOverride{Name: name, Value: v}
}

func copyExpr(selector ast.Expression, overrides ...ast.CopyOverride) *ast.CopyExpr {
	return &ast.CopyExpr{Selector: selector, Overrides: overrides}
}

// spec §8 scenario 2 / invariant 2: overriding a field preserves field order.
func TestCopyPreservesFieldOrder(t *testing.T) {
	e := newTestEvaluator(false)
	sc := rootScope()
	src := tuple(field("a", intLit(1)), field("b", intLit(2)), field("c", intLit(3)))
	cp := copyExpr(src, override("b", intLit(20)))
	v := mustEval(e, cp, sc)
	tup := v.(*value.Tuple)
	if len(tup.Fields) != 3 {
		t.Fatalf("expected 3 fields, got %d", len(tup.Fields))
	}
	wantOrder := []string{"a", "b", "c"}
	for i, f := range tup.Fields {
		if f.Name != wantOrder[i] {
			t.Fatalf("field %d = %s, want %s", i, f.Name, wantOrder[i])
		}
	}
	if tup.Fields[1].Value.(value.Int).Value != 20 {
		t.Fatalf("b override did not apply")
	}
}

// spec §8 scenario 3 / invariant 3: overriding with a new field appends it.
func TestCopyAppendsNewField(t *testing.T) {
	e := newTestEvaluator(false)
	sc := rootScope()
	src := tuple(field("a", intLit(1)))
	cp := copyExpr(src, override("z", intLit(9)))
	v := mustEval(e, cp, sc)
	tup := v.(*value.Tuple)
	if len(tup.Fields) != 2 || tup.Fields[1].Name != "z" {
		t.Fatalf("expected appended z field, got %#v", tup.Fields)
	}
}

func TestCopyOverrideTypeMismatchFails(t *testing.T) {
	e := newTestEvaluator(false)
	sc := rootScope()
	src := tuple(field("a", intLit(1)))
	cp := copyExpr(src, override("a", strLit("nope")))
	_, err := e.Eval(cp, sc)
	if kindOf(err) != evalerr.TypeFail {
		t.Fatalf("expected TypeFail on type-changing override, got %v", err)
	}
}

func TestCopyOverrideEmptySkipsTypeCheck(t *testing.T) {
	e := newTestEvaluator(false)
	sc := rootScope()
	src := tuple(field("a", &ast.NullLiteral{}))
	cp := copyExpr(src, override("a", intLit(1)))
	v := mustEval(e, cp, sc)
	tup := v.(*value.Tuple)
	if tup.Fields[0].Value.(value.Int).Value != 1 {
		t.Fatalf("overriding an Empty field should be allowed regardless of new type")
	}
}

// spec §4.F copy-with-overrides step 1: a source tuple with a duplicate
// field name fails with TypeFail. Reachable via internal/importer's
// decodeJSON, which (unlike evalTupleLiteral) does not dedupe object keys,
// so a *value.Tuple built directly (bypassing the AST-level literal
// check) is the realistic shape to exercise here.
func TestCopyWithDuplicateSourceFieldFailsTypeFail(t *testing.T) {
	e := newTestEvaluator(false)
	sc := rootScope()
	dup := value.NewTuple([]value.Field{
		{Name: "a", Value: value.Int{Value: 1}},
		{Name: "a", Value: value.Int{Value: 2}},
	})
	_, err := e.copyWithOverrides(copyExpr(intLit(0), override("b", intLit(1))), dup, sc)
	if kindOf(err) != evalerr.TypeFail {
		t.Fatalf("expected TypeFail on duplicate source field name, got %v", err)
	}
}

func TestTupleIndexRejectsDuplicateFieldName(t *testing.T) {
	dup := value.NewTuple([]value.Field{
		{Name: "a", Value: value.Int{Value: 1}},
		{Name: "a", Value: value.Int{Value: 2}},
	})
	_, _, err := tupleIndex(pos(), dup)
	if kindOf(err) != evalerr.TypeFail {
		t.Fatalf("expected TypeFail on duplicate source field name, got %v", err)
	}
}

func TestCopyOnNonTupleNonModuleFails(t *testing.T) {
	e := newTestEvaluator(false)
	sc := rootScope()
	cp := copyExpr(intLit(1), override("a", intLit(1)))
	_, err := e.Eval(cp, sc)
	if kindOf(err) != evalerr.TypeFail {
		t.Fatalf("expected TypeFail copying a non-Tuple/Module, got %v", err)
	}
}
