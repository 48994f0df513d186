// Tuple copy-with-overrides and the CopyExpr dispatch that decides between
// it and module instantiation. Grounded on spec §4.F's five-step
// algorithm and the teacher's closest analogue, record-update evaluation in
// expressions_records.go, adapted from the teacher's sort-by-key
// RecordInstance to the insertion-order-preserving value.Tuple this module
// uses instead.
package eval

import (
	"github.com/jfranklin9000/ucg/internal/ast"
	"github.com/jfranklin9000/ucg/internal/evalerr"
	"github.com/jfranklin9000/ucg/internal/scope"
	"github.com/jfranklin9000/ucg/internal/value"
)

func (e *Evaluator) evalCopy(n *ast.CopyExpr, sc *scope.Scope) (value.Value, error) {
	selector, err := e.Eval(n.Selector, sc)
	if err != nil {
		return nil, err
	}
	switch s := selector.(type) {
	case *value.Tuple:
		return e.copyWithOverrides(n, s, sc)
	case value.Module:
		return e.instantiateModule(n, &s, sc)
	}
	return nil, evalerr.At(evalerr.TypeFail, n.Pos(), "copy-with-overrides target must be a Tuple or Module, got %s", value.TypeName(selector))
}

// copyWithOverrides implements spec §4.F's five-step algorithm: evaluate
// each override expression (current value set to the source tuple), then
// merge via mergeOverride.
func (e *Evaluator) copyWithOverrides(n *ast.CopyExpr, source *value.Tuple, sc *scope.Scope) (value.Value, error) {
	order, byName, err := tupleIndex(n.Pos(), source)
	if err != nil {
		return nil, err
	}

	overrideSc := sc.SpawnChild()
	overrideSc.SetCurrVal(source)
	for _, ov := range n.Overrides {
		newVal, err := e.Eval(ov.Value, overrideSc)
		if err != nil {
			return nil, err
		}
		var mergeErr error
		order, mergeErr = mergeOverride(n.Pos(), order, byName, ov.Name, newVal)
		if mergeErr != nil {
			return nil, mergeErr
		}
	}
	return buildTuple(order, byName), nil
}

// tupleIndex is copy-with-overrides step 1: an insertion-order map from the
// source tuple's fields. Duplicate source field names fail with TypeFail.
func tupleIndex(pos ast.Position, source *value.Tuple) ([]string, map[string]value.Value, error) {
	order := make([]string, 0, len(source.Fields))
	byName := make(map[string]value.Value, len(source.Fields))
	for _, f := range source.Fields {
		if _, dup := byName[f.Name]; dup {
			return nil, nil, evalerr.At(evalerr.TypeFail, pos, "duplicate field %q in copy source tuple", f.Name)
		}
		order = append(order, f.Name)
		byName[f.Name] = f.Value
	}
	return order, byName, nil
}

// mergeOverride applies steps 3-4 of copy-with-overrides for one already-
// evaluated (name, value) override, returning the updated field order.
func mergeOverride(pos ast.Position, order []string, byName map[string]value.Value, name string, newVal value.Value) ([]string, error) {
	oldVal, existed := byName[name]
	if !existed {
		order = append(order, name)
		byName[name] = newVal
		return order, nil
	}
	if !value.IsEmpty(oldVal) && !value.IsEmpty(newVal) && !value.TypeEqual(oldVal, newVal) {
		return order, evalerr.At(evalerr.TypeFail, pos, "expected type %s for field %s but got %s", value.TypeName(oldVal), name, value.TypeName(newVal))
	}
	byName[name] = newVal
	return order, nil
}

// buildTuple is copy-with-overrides step 5: emit fields in ascending
// insertion-index order.
func buildTuple(order []string, byName map[string]value.Value) *value.Tuple {
	fields := make([]value.Field, len(order))
	for i, name := range order {
		fields[i] = value.Field{Name: name, Value: byName[name]}
	}
	return value.NewTuple(fields)
}
