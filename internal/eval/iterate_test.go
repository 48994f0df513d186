package eval

import (
	"testing"

	"github.com/jfranklin9000/ucg/internal/ast"
	"github.com/jfranklin9000/ucg/internal/evalerr"
	"github.com/jfranklin9000/ucg/internal/value"
)

func funcOp(kind ast.FuncOpKind, f, acc, target ast.Expression) *ast.FuncOpExpr {
	return &ast.FuncOpExpr{Kind: kind, Func: f, Acc: acc, Target: target}
}

// spec §8 scenario 4: map doubling each element of a list.
func TestMapOverList(t *testing.T) {
	e := newTestEvaluator(false)
	sc := rootScope()
	double := fn([]string{"x"}, bin("*", sym("x"), intLit(2)))
	v := mustEval(e, funcOp(ast.FuncOpMap, double, nil, list(intLit(1), intLit(2), intLit(3))), sc)
	l := v.(*value.List)
	want := []int64{2, 4, 6}
	for i, w := range want {
		if l.Elements[i].(value.Int).Value != w {
			t.Fatalf("elem %d = %v, want %d", i, l.Elements[i], w)
		}
	}
}

// spec §8 scenario 5: filter keeping only even elements.
func TestFilterOverList(t *testing.T) {
	e := newTestEvaluator(false)
	sc := rootScope()
	isEven := fn([]string{"x"}, bin("==", bin("%", sym("x"), intLit(2)), intLit(0)))
	v := mustEval(e, funcOp(ast.FuncOpFilter, isEven, nil, list(intLit(1), intLit(2), intLit(3), intLit(4))), sc)
	l := v.(*value.List)
	if len(l.Elements) != 2 || l.Elements[0].(value.Int).Value != 2 || l.Elements[1].(value.Int).Value != 4 {
		t.Fatalf("got %#v, want [2,4]", l.Elements)
	}
}

func TestReduceOverList(t *testing.T) {
	e := newTestEvaluator(false)
	sc := rootScope()
	sum := fn([]string{"acc", "x"}, bin("+", sym("acc"), sym("x")))
	v := mustEval(e, funcOp(ast.FuncOpReduce, sum, intLit(0), list(intLit(1), intLit(2), intLit(3))), sc)
	if v.(value.Int).Value != 6 {
		t.Fatalf("got %v, want 6", v)
	}
}

func TestMapOverTupleRequiresNameValuePair(t *testing.T) {
	e := newTestEvaluator(false)
	sc := rootScope()
	bad := fn([]string{"k", "v"}, sym("v"))
	_, err := e.Eval(funcOp(ast.FuncOpMap, bad, nil, tuple(field("a", intLit(1)))), sc)
	if kindOf(err) != evalerr.TypeFail {
		t.Fatalf("expected TypeFail when map callback doesn't return [Str, value], got %v", err)
	}
}

func TestMapOverTuplePreservesFieldValues(t *testing.T) {
	e := newTestEvaluator(false)
	sc := rootScope()
	double := fn([]string{"k", "v"}, list(sym("k"), bin("*", sym("v"), intLit(2))))
	v := mustEval(e, funcOp(ast.FuncOpMap, double, nil, tuple(field("a", intLit(1)), field("b", intLit(2)))), sc)
	tup := v.(*value.Tuple)
	a, _ := tup.Get("a")
	b, _ := tup.Get("b")
	if a.(value.Int).Value != 2 || b.(value.Int).Value != 4 {
		t.Fatalf("got a=%v b=%v, want a=2 b=4", a, b)
	}
}

func TestFilterOverTuple(t *testing.T) {
	e := newTestEvaluator(false)
	sc := rootScope()
	keepB := fn([]string{"k", "v"}, bin("==", sym("k"), strLit("b")))
	v := mustEval(e, funcOp(ast.FuncOpFilter, keepB, nil, tuple(field("a", intLit(1)), field("b", intLit(2)))), sc)
	tup := v.(*value.Tuple)
	if len(tup.Fields) != 1 || tup.Fields[0].Name != "b" {
		t.Fatalf("expected only field b to survive, got %#v", tup.Fields)
	}
}

func TestReduceOverTuple(t *testing.T) {
	e := newTestEvaluator(false)
	sc := rootScope()
	sum := fn([]string{"acc", "k", "v"}, bin("+", sym("acc"), sym("v")))
	v := mustEval(e, funcOp(ast.FuncOpReduce, sum, intLit(0), tuple(field("a", intLit(1)), field("b", intLit(2)))), sc)
	if v.(value.Int).Value != 3 {
		t.Fatalf("got %v, want 3", v)
	}
}

// spec §8 scenario 6: map over a string iterates grapheme clusters, not
// bytes or runes — a base letter plus combining accent stays one element.
func TestMapOverStringIteratesGraphemes(t *testing.T) {
	e := newTestEvaluator(false)
	sc := rootScope()
	identity := fn([]string{"g"}, sym("g"))
	input := "éa" // base "e" + combining acute, then "a" -> 2 clusters
	s := strLit(input)
	v := mustEval(e, funcOp(ast.FuncOpMap, identity, nil, s), sc)
	if v.(value.Str).Value != input {
		t.Fatalf("got %q", v.(value.Str).Value)
	}
}

func TestGraphemesSegmentsCombiningMarkWithBase(t *testing.T) {
	g := graphemes("éa")
	if len(g) != 2 || g[0] != "é" || g[1] != "a" {
		t.Fatalf("got %#v, want [\"e\\u0301\", \"a\"]", g)
	}
}

func TestFilterOverStringKeepsMatchingGraphemes(t *testing.T) {
	e := newTestEvaluator(false)
	sc := rootScope()
	isVowel := fn([]string{"g"}, bin("in", sym("g"), list(strLit("a"), strLit("e"), strLit("i"), strLit("o"), strLit("u"))))
	v := mustEval(e, funcOp(ast.FuncOpFilter, isVowel, nil, strLit("hello")), sc)
	if v.(value.Str).Value != "eo" {
		t.Fatalf("got %q, want %q", v.(value.Str).Value, "eo")
	}
}

func TestReduceOverString(t *testing.T) {
	e := newTestEvaluator(false)
	sc := rootScope()
	count := fn([]string{"acc", "g"}, bin("+", sym("acc"), intLit(1)))
	v := mustEval(e, funcOp(ast.FuncOpReduce, count, intLit(0), strLit("hello")), sc)
	if v.(value.Int).Value != 5 {
		t.Fatalf("got %v, want 5", v)
	}
}

func TestFuncOpFuncMustBeFunc(t *testing.T) {
	e := newTestEvaluator(false)
	sc := rootScope()
	_, err := e.Eval(funcOp(ast.FuncOpMap, intLit(1), nil, list(intLit(1))), sc)
	if kindOf(err) != evalerr.TypeFail {
		t.Fatalf("expected TypeFail when func arg isn't a Func, got %v", err)
	}
}
