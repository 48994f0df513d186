package eval

import (
	"github.com/jfranklin9000/ucg/internal/ast"
	"github.com/jfranklin9000/ucg/internal/evalerr"
	"github.com/jfranklin9000/ucg/internal/scope"
	"github.com/jfranklin9000/ucg/internal/value"
)

// evalRange implements spec §4.F item 4: `start..end` (inclusive, step 1)
// or `start:step:end` (inclusive, explicit step). All three bounds must be
// Int; the result is a List(Int).
func (e *Evaluator) evalRange(n *ast.RangeExpr, sc *scope.Scope) (value.Value, error) {
	start, err := e.evalRangeBound(n.Start, sc)
	if err != nil {
		return nil, err
	}
	end, err := e.evalRangeBound(n.End, sc)
	if err != nil {
		return nil, err
	}
	step := int64(1)
	if n.Step != nil {
		step, err = e.evalRangeBound(n.Step, sc)
		if err != nil {
			return nil, err
		}
		if step == 0 {
			return nil, evalerr.At(evalerr.Unsupported, n.Pos(), "range step must not be zero")
		}
	}

	var elems []value.Value
	if step > 0 {
		for i := start; i <= end; i += step {
			elems = append(elems, value.Int{Value: i})
		}
	} else {
		for i := start; i >= end; i += step {
			elems = append(elems, value.Int{Value: i})
		}
	}
	return &value.List{Elements: elems}, nil
}

func (e *Evaluator) evalRangeBound(expr ast.Expression, sc *scope.Scope) (int64, error) {
	v, err := e.Eval(expr, sc)
	if err != nil {
		return 0, err
	}
	i, ok := v.(value.Int)
	if !ok {
		return 0, evalerr.At(evalerr.TypeFail, expr.Pos(), "range bounds must be Int, got %s", value.TypeName(v))
	}
	return i.Value, nil
}
