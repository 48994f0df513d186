// Binary operator evaluation: arithmetic, comparison, boolean
// short-circuit, regex match, `in`, `is`, and dot-lookup. Grounded on the
// operator table in spec §4.F and the teacher's evalInfixExpression
// dispatch-by-operator-string shape
// (_examples/funvibe-funxy/internal/evaluator/expressions_operators.go),
// adapted to UCG's stricter no-implicit-coercion numeric rule.
package eval

import (
	"regexp"

	"github.com/jfranklin9000/ucg/internal/ast"
	"github.com/jfranklin9000/ucg/internal/evalerr"
	"github.com/jfranklin9000/ucg/internal/scope"
	"github.com/jfranklin9000/ucg/internal/value"
)

func (e *Evaluator) evalBinary(n *ast.BinaryExpr, sc *scope.Scope) (value.Value, error) {
	switch n.Op {
	case "&&":
		return e.evalAnd(n, sc)
	case "||":
		return e.evalOr(n, sc)
	case ".":
		return e.evalDot(n, sc)
	case "in":
		return e.evalIn(n, sc)
	case "is":
		return e.evalIs(n, sc)
	}

	left, err := e.Eval(n.Left, sc)
	if err != nil {
		return nil, err
	}
	right, err := e.Eval(n.Right, sc)
	if err != nil {
		return nil, err
	}

	switch n.Op {
	case "+":
		return evalPlus(n, left, right)
	case "-", "*", "/", "%":
		return evalArith(n, left, right)
	case "==", "!=":
		return evalEquality(n, left, right)
	case "<", "<=", ">", ">=":
		return evalCompare(n, left, right)
	case "~", "!~":
		return evalRegex(n, left, right)
	}
	return nil, evalerr.At(evalerr.Unsupported, n.Pos(), "unknown binary operator %q", n.Op)
}

func evalPlus(n *ast.BinaryExpr, left, right value.Value) (value.Value, error) {
	switch l := left.(type) {
	case value.Int:
		r, ok := right.(value.Int)
		if !ok {
			return nil, typeMismatch(n, left, right)
		}
		return value.Int{Value: l.Value + r.Value}, nil
	case value.Float:
		r, ok := right.(value.Float)
		if !ok {
			return nil, typeMismatch(n, left, right)
		}
		return value.Float{Value: l.Value + r.Value}, nil
	case value.Str:
		r, ok := right.(value.Str)
		if !ok {
			return nil, typeMismatch(n, left, right)
		}
		return value.Str{Value: l.Value + r.Value}, nil
	case *value.List:
		r, ok := right.(*value.List)
		if !ok {
			return nil, typeMismatch(n, left, right)
		}
		elems := make([]value.Value, 0, len(l.Elements)+len(r.Elements))
		elems = append(elems, l.Elements...)
		elems = append(elems, r.Elements...)
		return &value.List{Elements: elems}, nil
	}
	return nil, evalerr.At(evalerr.TypeFail, n.Pos(), "+ is not supported for %s", value.TypeName(left))
}

func evalArith(n *ast.BinaryExpr, left, right value.Value) (value.Value, error) {
	switch l := left.(type) {
	case value.Int:
		r, ok := right.(value.Int)
		if !ok {
			return nil, typeMismatch(n, left, right)
		}
		switch n.Op {
		case "-":
			return value.Int{Value: l.Value - r.Value}, nil
		case "*":
			return value.Int{Value: l.Value * r.Value}, nil
		case "/":
			if r.Value == 0 {
				return nil, evalerr.At(evalerr.Unsupported, n.Pos(), "division by zero")
			}
			return value.Int{Value: l.Value / r.Value}, nil
		case "%":
			if r.Value == 0 {
				return nil, evalerr.At(evalerr.Unsupported, n.Pos(), "division by zero")
			}
			return value.Int{Value: l.Value % r.Value}, nil
		}
	case value.Float:
		r, ok := right.(value.Float)
		if !ok {
			return nil, typeMismatch(n, left, right)
		}
		switch n.Op {
		case "-":
			return value.Float{Value: l.Value - r.Value}, nil
		case "*":
			return value.Float{Value: l.Value * r.Value}, nil
		case "/":
			return value.Float{Value: l.Value / r.Value}, nil
		case "%":
			return nil, evalerr.At(evalerr.Unsupported, n.Pos(), "%% is not supported for Float")
		}
	}
	return nil, evalerr.At(evalerr.TypeFail, n.Pos(), "%s expects two Int or two Float operands, got %s and %s", n.Op, value.TypeName(left), value.TypeName(right))
}

func evalEquality(n *ast.BinaryExpr, left, right value.Value) (value.Value, error) {
	eq, err := value.Equal(left, right)
	if err != nil {
		return nil, annotate(n, err)
	}
	if n.Op == "!=" {
		eq = !eq
	}
	return value.Bool{Value: eq}, nil
}

func evalCompare(n *ast.BinaryExpr, left, right value.Value) (value.Value, error) {
	var cmp int
	switch l := left.(type) {
	case value.Int:
		r, ok := right.(value.Int)
		if !ok {
			return nil, typeMismatch(n, left, right)
		}
		cmp = compareInt64(l.Value, r.Value)
	case value.Float:
		r, ok := right.(value.Float)
		if !ok {
			return nil, typeMismatch(n, left, right)
		}
		cmp = compareFloat64(l.Value, r.Value)
	default:
		return nil, evalerr.At(evalerr.TypeFail, n.Pos(), "%s expects two Int or two Float operands, got %s", n.Op, value.TypeName(left))
	}
	var result bool
	switch n.Op {
	case "<":
		result = cmp < 0
	case "<=":
		result = cmp <= 0
	case ">":
		result = cmp > 0
	case ">=":
		result = cmp >= 0
	}
	return value.Bool{Value: result}, nil
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareFloat64(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func evalRegex(n *ast.BinaryExpr, left, right value.Value) (value.Value, error) {
	target, ok := left.(value.Str)
	if !ok {
		return nil, evalerr.At(evalerr.TypeFail, n.Pos(), "%s expects a Str target, got %s", n.Op, value.TypeName(left))
	}
	pattern, ok := right.(value.Str)
	if !ok {
		return nil, evalerr.At(evalerr.TypeFail, n.Pos(), "%s expects a Str pattern, got %s", n.Op, value.TypeName(right))
	}
	re, err := regexp.Compile(pattern.Value)
	if err != nil {
		return nil, evalerr.Wrap(evalerr.TypeFail, n.Pos(), err, "invalid regex pattern %q", pattern.Value)
	}
	matched := re.MatchString(target.Value)
	if n.Op == "!~" {
		matched = !matched
	}
	return value.Bool{Value: matched}, nil
}

func (e *Evaluator) evalAnd(n *ast.BinaryExpr, sc *scope.Scope) (value.Value, error) {
	left, err := e.Eval(n.Left, sc)
	if err != nil {
		return nil, err
	}
	lb, ok := left.(value.Bool)
	if !ok {
		return nil, evalerr.At(evalerr.TypeFail, n.Pos(), "&& expects a Bool left operand, got %s", value.TypeName(left))
	}
	if !lb.Value {
		return value.Bool{Value: false}, nil
	}
	right, err := e.Eval(n.Right, sc)
	if err != nil {
		return nil, err
	}
	rb, ok := right.(value.Bool)
	if !ok {
		return nil, evalerr.At(evalerr.TypeFail, n.Pos(), "&& expects a Bool right operand, got %s", value.TypeName(right))
	}
	return value.Bool{Value: rb.Value}, nil
}

func (e *Evaluator) evalOr(n *ast.BinaryExpr, sc *scope.Scope) (value.Value, error) {
	left, err := e.Eval(n.Left, sc)
	if err != nil {
		return nil, err
	}
	lb, ok := left.(value.Bool)
	if !ok {
		return nil, evalerr.At(evalerr.TypeFail, n.Pos(), "|| expects a Bool left operand, got %s", value.TypeName(left))
	}
	if lb.Value {
		return value.Bool{Value: true}, nil
	}
	right, err := e.Eval(n.Right, sc)
	if err != nil {
		return nil, err
	}
	rb, ok := right.(value.Bool)
	if !ok {
		return nil, evalerr.At(evalerr.TypeFail, n.Pos(), "|| expects a Bool right operand, got %s", value.TypeName(right))
	}
	return value.Bool{Value: rb.Value}, nil
}

func (e *Evaluator) evalIn(n *ast.BinaryExpr, sc *scope.Scope) (value.Value, error) {
	needle, err := e.Eval(n.Left, sc)
	if err != nil {
		return nil, err
	}
	haystack, err := e.Eval(n.Right, sc)
	if err != nil {
		return nil, err
	}
	switch h := haystack.(type) {
	case *value.List:
		for _, elem := range h.Elements {
			if eq, err := value.Equal(needle, elem); err == nil && eq {
				return value.Bool{Value: true}, nil
			}
		}
		return value.Bool{Value: false}, nil
	case *value.Tuple:
		name, ok := needle.(value.Str)
		if !ok {
			return nil, evalerr.At(evalerr.TypeFail, n.Pos(), "in expects a Str field name against a Tuple, got %s", value.TypeName(needle))
		}
		return value.Bool{Value: h.Has(name.Value)}, nil
	}
	return nil, evalerr.At(evalerr.TypeFail, n.Pos(), "in expects a List or Tuple right operand, got %s", value.TypeName(haystack))
}

var typeTags = map[string]value.Kind{
	"str":    value.KindStr,
	"bool":   value.KindBool,
	"null":   value.KindEmpty,
	"int":    value.KindInt,
	"float":  value.KindFloat,
	"tuple":  value.KindTuple,
	"list":   value.KindList,
	"func":   value.KindFunc,
	"module": value.KindModule,
}

func (e *Evaluator) evalIs(n *ast.BinaryExpr, sc *scope.Scope) (value.Value, error) {
	left, err := e.Eval(n.Left, sc)
	if err != nil {
		return nil, err
	}
	right, err := e.Eval(n.Right, sc)
	if err != nil {
		return nil, err
	}
	tag, ok := right.(value.Str)
	if !ok {
		return nil, evalerr.At(evalerr.TypeFail, n.Pos(), "is expects a Str type tag, got %s", value.TypeName(right))
	}
	kind, known := typeTags[tag.Value]
	if !known {
		return nil, evalerr.At(evalerr.TypeFail, n.Pos(), "unknown type tag %q", tag.Value)
	}
	return value.Bool{Value: left.Kind() == kind}, nil
}

// evalDot implements field/index access: the left operand becomes the
// current-value slot of a child scope, and the right operand is then
// resolved within it.
func (e *Evaluator) evalDot(n *ast.BinaryExpr, sc *scope.Scope) (value.Value, error) {
	left, err := e.Eval(n.Left, sc)
	if err != nil {
		return nil, err
	}
	child := sc.SpawnChild()
	child.SetCurrVal(left)

	switch right := n.Right.(type) {
	case *ast.Symbol:
		switch l := left.(type) {
		case *value.Tuple:
			if v, ok := l.Get(right.Name); ok {
				return v, nil
			}
			return nil, evalerr.At(evalerr.NoSuchSymbol, n.Pos(), "no such field: %s", right.Name)
		case value.Env:
			if v, ok := l.Get(right.Name); ok {
				return value.Str{Value: v}, nil
			}
			return nil, evalerr.At(evalerr.NoSuchSymbol, n.Pos(), "no such environment variable: %s", right.Name)
		}
		return nil, evalerr.At(evalerr.NoSuchSymbol, n.Pos(), "%s is not a Tuple or Env", value.TypeName(left))
	case *ast.StrLiteral:
		if l, ok := left.(*value.Tuple); ok {
			if v, ok := l.Get(right.Value); ok {
				return v, nil
			}
			return nil, evalerr.At(evalerr.NoSuchSymbol, n.Pos(), "no such field: %s", right.Value)
		}
		return nil, evalerr.At(evalerr.NoSuchSymbol, n.Pos(), "%s is not a Tuple", value.TypeName(left))
	case *ast.IntLiteral:
		list, ok := left.(*value.List)
		if !ok {
			return nil, evalerr.At(evalerr.NoSuchSymbol, n.Pos(), "%s is not a List", value.TypeName(left))
		}
		if right.Value < 0 || right.Value >= int64(len(list.Elements)) {
			return nil, evalerr.At(evalerr.NoSuchSymbol, n.Pos(), "index %d out of range", right.Value)
		}
		return list.Elements[right.Value], nil
	case *ast.CallExpr, *ast.CopyExpr:
		return e.Eval(right, child)
	}
	return nil, evalerr.At(evalerr.NoSuchSymbol, n.Pos(), "unsupported dot-lookup right operand %T", n.Right)
}

func typeMismatch(n *ast.BinaryExpr, left, right value.Value) error {
	return evalerr.At(evalerr.TypeFail, n.Pos(), "%s expects matching operand types, got %s and %s", n.Op, value.TypeName(left), value.TypeName(right))
}

func annotate(n *ast.BinaryExpr, err error) error {
	if ee, ok := err.(*evalerr.Error); ok && ee.Pos == nil {
		pos := n.Pos()
		ee.Pos = &pos
	}
	return err
}
