package eval

import (
	"testing"

	"github.com/jfranklin9000/ucg/internal/ast"
	"github.com/jfranklin9000/ucg/internal/evalerr"
	"github.com/jfranklin9000/ucg/internal/value"
)

func TestFormatPositionalSubstitutesArgs(t *testing.T) {
	e := newTestEvaluator(false)
	sc := rootScope()
	f := &ast.FormatExpr{Template: "@ + @ = @", Args: []ast.Expression{intLit(1), intLit(2), intLit(3)}}
	v := mustEval(e, f, sc)
	if v.(value.Str).Value != "1 + 2 = 3" {
		t.Fatalf("got %q", v.(value.Str).Value)
	}
}

func TestFormatPositionalCountMismatchFails(t *testing.T) {
	e := newTestEvaluator(false)
	sc := rootScope()
	f := &ast.FormatExpr{Template: "@ @", Args: []ast.Expression{intLit(1)}}
	_, err := e.Eval(f, sc)
	if kindOf(err) != evalerr.FormatError {
		t.Fatalf("expected FormatError on placeholder/arg count mismatch, got %v", err)
	}
}

func TestFormatExpressionModeBindsItem(t *testing.T) {
	e := newTestEvaluator(false)
	sc := rootScope()
	f := &ast.FormatExpr{
		Args: []ast.Expression{intLit(5)},
		Sections: []ast.FormatSection{
			{Literal: "value: "},
			{Expr: bin("*", sym("item"), intLit(2))},
		},
	}
	v := mustEval(e, f, sc)
	if v.(value.Str).Value != "value: 10" {
		t.Fatalf("got %q", v.(value.Str).Value)
	}
}

func TestFormatExpressionModeRequiresExactlyOneArg(t *testing.T) {
	e := newTestEvaluator(false)
	sc := rootScope()
	f := &ast.FormatExpr{
		Args:     []ast.Expression{intLit(1), intLit(2)},
		Sections: []ast.FormatSection{{Literal: "x"}},
	}
	_, err := e.Eval(f, sc)
	if kindOf(err) != evalerr.FormatError {
		t.Fatalf("expected FormatError for wrong arg count in expression mode, got %v", err)
	}
}
