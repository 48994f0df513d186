package eval

import (
	"testing"

	"github.com/jfranklin9000/ucg/internal/ast"
	"github.com/jfranklin9000/ucg/internal/evalerr"
	"github.com/jfranklin9000/ucg/internal/value"
)

func TestRangeInclusiveBothEnds(t *testing.T) {
	e := newTestEvaluator(false)
	sc := rootScope()
	r := &ast.RangeExpr{Start: intLit(1), End: intLit(4)}
	v := mustEval(e, r, sc)
	l := v.(*value.List)
	want := []int64{1, 2, 3, 4}
	if len(l.Elements) != len(want) {
		t.Fatalf("got %d elements, want %d", len(l.Elements), len(want))
	}
	for i, w := range want {
		if l.Elements[i].(value.Int).Value != w {
			t.Fatalf("elem %d = %v, want %d", i, l.Elements[i], w)
		}
	}
}

func TestRangeDescendingStep(t *testing.T) {
	e := newTestEvaluator(false)
	sc := rootScope()
	r := &ast.RangeExpr{Start: intLit(10), Step: intLit(-2), End: intLit(4)}
	v := mustEval(e, r, sc)
	l := v.(*value.List)
	want := []int64{10, 8, 6, 4}
	if len(l.Elements) != len(want) {
		t.Fatalf("got %d elements, want %d", len(l.Elements), len(want))
	}
	for i, w := range want {
		if l.Elements[i].(value.Int).Value != w {
			t.Fatalf("elem %d = %v, want %d", i, l.Elements[i], w)
		}
	}
}

func TestRangeZeroStepRejected(t *testing.T) {
	e := newTestEvaluator(false)
	sc := rootScope()
	r := &ast.RangeExpr{Start: intLit(1), Step: intLit(0), End: intLit(4)}
	_, err := e.Eval(r, sc)
	if kindOf(err) != evalerr.Unsupported {
		t.Fatalf("expected Unsupported for zero step, got %v", err)
	}
}

func TestRangeBoundsMustBeInt(t *testing.T) {
	e := newTestEvaluator(false)
	sc := rootScope()
	r := &ast.RangeExpr{Start: floatLit(1.0), End: intLit(4)}
	_, err := e.Eval(r, sc)
	if kindOf(err) != evalerr.TypeFail {
		t.Fatalf("expected TypeFail for a Float bound, got %v", err)
	}
}

func TestRangeStartEqualsEndSingleElement(t *testing.T) {
	e := newTestEvaluator(false)
	sc := rootScope()
	r := &ast.RangeExpr{Start: intLit(3), End: intLit(3)}
	v := mustEval(e, r, sc)
	l := v.(*value.List)
	if len(l.Elements) != 1 || l.Elements[0].(value.Int).Value != 3 {
		t.Fatalf("got %#v, want [3]", l.Elements)
	}
}
