package eval

import (
	"github.com/jfranklin9000/ucg/internal/ast"
	"github.com/jfranklin9000/ucg/internal/config"
	"github.com/jfranklin9000/ucg/internal/evalerr"
	"github.com/jfranklin9000/ucg/internal/scope"
	"github.com/jfranklin9000/ucg/internal/value"
)

// Run evaluates stmts in sc in order, stopping at the first error (except
// that an AssertStatement never propagates one — see evalAssert).
func (e *Evaluator) Run(stmts []ast.Statement, sc *scope.Scope) error {
	for _, stmt := range stmts {
		if _, err := e.Eval(stmt, sc); err != nil {
			return err
		}
	}
	return nil
}

func (e *Evaluator) evalLet(n *ast.LetStatement, sc *scope.Scope) error {
	if config.IsReserved(n.Name) {
		return evalerr.At(evalerr.ReservedWord, n.Pos(), "%q is a reserved word", n.Name)
	}
	if sc.HasLocal(n.Name) {
		return evalerr.At(evalerr.DuplicateBinding, n.Pos(), "%q is already bound in this scope", n.Name)
	}
	v, err := e.Eval(n.Value, sc)
	if err != nil {
		return err
	}
	sc.Bind(n.Name, v)
	return nil
}

// evalAssert is a no-op outside validate mode. In validate mode it
// evaluates n.Expr, expects a Tuple with Bool field `ok` and Str field
// `desc`, and records one pass/fail line — any evaluation error (including
// a malformed result shape) is itself recorded as a failure, never
// propagated (spec §4.F).
func (e *Evaluator) evalAssert(n *ast.AssertStatement, sc *scope.Scope) {
	if !e.Validate {
		return
	}
	desc, ok := e.runAssertion(n, sc)
	e.Assertions.Record(desc, ok)
}

func (e *Evaluator) runAssertion(n *ast.AssertStatement, sc *scope.Scope) (desc string, ok bool) {
	v, err := e.Eval(n.Expr, sc)
	if err != nil {
		return err.Error(), false
	}
	tup, isTuple := v.(*value.Tuple)
	if !isTuple {
		return "assertion result is not a tuple (got " + string(v.Kind()) + ")", false
	}
	okField, hasOk := tup.Get("ok")
	descField, hasDesc := tup.Get("desc")
	if !hasOk || !hasDesc {
		return "assertion tuple missing ok/desc field", false
	}
	okBool, isBool := okField.(value.Bool)
	descStr, isStr := descField.(value.Str)
	if !isBool || !isStr {
		return "assertion tuple's ok/desc fields have the wrong type", false
	}
	return descStr.Value, okBool.Value
}

func (e *Evaluator) evalOutput(n *ast.OutputStatement, sc *scope.Scope) error {
	if e.outputSet {
		return evalerr.At(evalerr.Unsupported, n.Pos(), "output already locked for this file")
	}
	v, err := e.Eval(n.Expr, sc)
	if err != nil {
		return err
	}
	e.outputSet = true
	e.outputTag = n.TypeTag
	e.outputVal = v
	return nil
}
