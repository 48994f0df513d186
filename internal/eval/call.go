// Function literal capture and call. Grounded on spec §4.F's "Function
// call" subsection and the teacher's ApplyFunction calling convention
// (_examples/funvibe-funxy/internal/evaluator/apply.go): new enclosed
// environment, parameters bound positionally, body evaluated in it.
package eval

import (
	"github.com/jfranklin9000/ucg/internal/ast"
	"github.com/jfranklin9000/ucg/internal/evalerr"
	"github.com/jfranklin9000/ucg/internal/scope"
	"github.com/jfranklin9000/ucg/internal/value"
)

func (e *Evaluator) evalFuncLiteral(n *ast.FuncLiteral, sc *scope.Scope) value.Value {
	return value.Func{
		Def:      &value.FuncDef{Params: n.Params, Body: n.Body},
		Captured: sc,
	}
}

func (e *Evaluator) evalCall(n *ast.CallExpr, sc *scope.Scope) (value.Value, error) {
	calleeVal, err := e.Eval(n.Func, sc)
	if err != nil {
		return nil, err
	}
	fn, ok := calleeVal.(value.Func)
	if !ok {
		return nil, evalerr.At(evalerr.TypeFail, n.Pos(), "called value is not a Func (got %s)", value.TypeName(calleeVal))
	}

	args := make([]value.Value, 0, len(n.Args))
	for _, argExpr := range n.Args {
		v, err := e.Eval(argExpr, sc)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	return e.applyFunction(n.Pos(), fn, args)
}

// applyFunction implements spec §4.F's arity rule verbatim, including the
// documented open question (§9): passing more arguments than the function
// declares is BadArgLen; passing fewer is accepted, and the unbound
// trailing parameters simply raise NoSuchSymbol if the body ever refers to
// them. This is reproduced as-is, not "fixed", per the spec's instruction
// to document rather than resolve it.
func (e *Evaluator) applyFunction(pos ast.Position, fn value.Func, args []value.Value) (value.Value, error) {
	if len(args) > len(fn.Def.Params) {
		return nil, evalerr.At(evalerr.BadArgLen, pos, "function expects at most %d argument(s), got %d", len(fn.Def.Params), len(args))
	}
	captured, ok := fn.Captured.(*scope.Scope)
	if !ok {
		return nil, evalerr.At(evalerr.Unsupported, pos, "function has no captured scope")
	}
	callScope := captured.SpawnChild()
	for i, v := range args {
		callScope.Bind(fn.Def.Params[i], v)
	}
	return e.Eval(fn.Def.Body, callScope)
}
