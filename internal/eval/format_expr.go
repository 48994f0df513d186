// FormatExpr evaluation: positional `@` templates and expression-mode
// `@{expr}@` templates, per spec §4.E. Template splitting/placeholder
// counting is delegated to internal/format; this file supplies the
// argument values and the `item`-bound child scope for expression mode.
package eval

import (
	"strings"

	"github.com/jfranklin9000/ucg/internal/ast"
	"github.com/jfranklin9000/ucg/internal/evalerr"
	"github.com/jfranklin9000/ucg/internal/format"
	"github.com/jfranklin9000/ucg/internal/scope"
	"github.com/jfranklin9000/ucg/internal/value"
)

func (e *Evaluator) evalFormat(n *ast.FormatExpr, sc *scope.Scope) (value.Value, error) {
	if n.Sections != nil {
		return e.evalFormatExpressionMode(n, sc)
	}
	return e.evalFormatPositional(n, sc)
}

func (e *Evaluator) evalFormatPositional(n *ast.FormatExpr, sc *scope.Scope) (value.Value, error) {
	args := make([]string, 0, len(n.Args))
	for _, argExpr := range n.Args {
		v, err := e.Eval(argExpr, sc)
		if err != nil {
			return nil, err
		}
		args = append(args, render(v))
	}
	rendered, err := format.RenderPositional(n.Template, args)
	if err != nil {
		return nil, annotateFormat(n, err)
	}
	return value.Str{Value: rendered}, nil
}

func (e *Evaluator) evalFormatExpressionMode(n *ast.FormatExpr, sc *scope.Scope) (value.Value, error) {
	if len(n.Args) != 1 {
		return nil, evalerr.At(evalerr.FormatError, n.Pos(), "expression-mode format expects exactly one argument, got %d", len(n.Args))
	}
	item, err := e.Eval(n.Args[0], sc)
	if err != nil {
		return nil, err
	}
	itemScope := sc.SpawnChild()
	itemScope.Bind("item", item)

	var out strings.Builder
	for _, section := range n.Sections {
		if section.Expr == nil {
			out.WriteString(section.Literal)
			continue
		}
		v, err := e.Eval(section.Expr, itemScope)
		if err != nil {
			return nil, err
		}
		out.WriteString(render(v))
	}
	return value.Str{Value: out.String()}, nil
}

func annotateFormat(n *ast.FormatExpr, err error) error {
	if ee, ok := err.(*evalerr.Error); ok && ee.Pos == nil {
		pos := n.Pos()
		ee.Pos = &pos
	}
	return err
}
