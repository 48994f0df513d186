// The three higher-order iteration protocols (map/filter/reduce) uniform
// over List, Tuple, and grapheme-segmented Str, per spec §4.F "Iteration
// protocols". No teacher analogue (funxy's map/filter/reduce are
// monomorphic over its typed container values); grapheme segmentation
// hand-rolls a simplified UAX-29 breaker over stdlib `unicode` Mn/Mc/Me
// combining-mark categories, since no grapheme-cluster library appears
// anywhere in the retrieved example pack (see DESIGN.md).
package eval

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jfranklin9000/ucg/internal/ast"
	"github.com/jfranklin9000/ucg/internal/evalerr"
	"github.com/jfranklin9000/ucg/internal/scope"
	"github.com/jfranklin9000/ucg/internal/value"
)

func (e *Evaluator) evalFuncOp(n *ast.FuncOpExpr, sc *scope.Scope) (value.Value, error) {
	fnVal, err := e.Eval(n.Func, sc)
	if err != nil {
		return nil, err
	}
	fn, ok := fnVal.(value.Func)
	if !ok {
		return nil, evalerr.At(evalerr.TypeFail, n.Pos(), "%s expects a Func as its first argument, got %s", funcOpName(n.Kind), value.TypeName(fnVal))
	}

	var acc value.Value
	if n.Kind == ast.FuncOpReduce {
		acc, err = e.Eval(n.Acc, sc)
		if err != nil {
			return nil, err
		}
	}

	target, err := e.Eval(n.Target, sc)
	if err != nil {
		return nil, err
	}

	switch t := target.(type) {
	case *value.List:
		return e.funcOpList(n, fn, acc, t)
	case *value.Tuple:
		return e.funcOpTuple(n, fn, acc, t)
	case value.Str:
		return e.funcOpString(n, fn, acc, t)
	}
	return nil, evalerr.At(evalerr.TypeFail, n.Pos(), "%s target must be a List, Tuple, or Str, got %s", funcOpName(n.Kind), value.TypeName(target))
}

func funcOpName(k ast.FuncOpKind) string {
	switch k {
	case ast.FuncOpMap:
		return "map"
	case ast.FuncOpFilter:
		return "filter"
	default:
		return "reduce"
	}
}

func (e *Evaluator) funcOpList(n *ast.FuncOpExpr, fn value.Func, acc value.Value, l *value.List) (value.Value, error) {
	switch n.Kind {
	case ast.FuncOpMap:
		out := make([]value.Value, len(l.Elements))
		for i, elem := range l.Elements {
			v, err := e.applyFunction(n.Pos(), fn, []value.Value{elem})
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return &value.List{Elements: out}, nil
	case ast.FuncOpFilter:
		var out []value.Value
		for _, elem := range l.Elements {
			v, err := e.applyFunction(n.Pos(), fn, []value.Value{elem})
			if err != nil {
				return nil, err
			}
			if keep(v) {
				out = append(out, elem)
			}
		}
		return &value.List{Elements: out}, nil
	default: // reduce
		for _, elem := range l.Elements {
			v, err := e.applyFunction(n.Pos(), fn, []value.Value{acc, elem})
			if err != nil {
				return nil, err
			}
			acc = v
		}
		return acc, nil
	}
}

func (e *Evaluator) funcOpTuple(n *ast.FuncOpExpr, fn value.Func, acc value.Value, t *value.Tuple) (value.Value, error) {
	switch n.Kind {
	case ast.FuncOpMap:
		fields := make([]value.Field, len(t.Fields))
		for i, f := range t.Fields {
			v, err := e.applyFunction(n.Pos(), fn, []value.Value{value.Str{Value: f.Name}, f.Value})
			if err != nil {
				return nil, err
			}
			pair, ok := v.(*value.List)
			if !ok || len(pair.Elements) != 2 {
				return nil, evalerr.At(evalerr.TypeFail, n.Pos(), "map over a tuple expects the callback to return a 2-element list [Str, value]")
			}
			name, ok := pair.Elements[0].(value.Str)
			if !ok {
				return nil, evalerr.At(evalerr.TypeFail, n.Pos(), "map over a tuple expects the callback's first return element to be Str")
			}
			fields[i] = value.Field{Name: name.Value, Value: pair.Elements[1]}
		}
		return value.NewTuple(fields), nil
	case ast.FuncOpFilter:
		var fields []value.Field
		for _, f := range t.Fields {
			v, err := e.applyFunction(n.Pos(), fn, []value.Value{value.Str{Value: f.Name}, f.Value})
			if err != nil {
				return nil, err
			}
			if keep(v) {
				fields = append(fields, f)
			}
		}
		return value.NewTuple(fields), nil
	default: // reduce
		for _, f := range t.Fields {
			v, err := e.applyFunction(n.Pos(), fn, []value.Value{acc, value.Str{Value: f.Name}, f.Value})
			if err != nil {
				return nil, err
			}
			acc = v
		}
		return acc, nil
	}
}

func (e *Evaluator) funcOpString(n *ast.FuncOpExpr, fn value.Func, acc value.Value, s value.Str) (value.Value, error) {
	clusters := graphemes(s.Value)
	switch n.Kind {
	case ast.FuncOpMap:
		var sb strings.Builder
		for _, g := range clusters {
			v, err := e.applyFunction(n.Pos(), fn, []value.Value{value.Str{Value: g}})
			if err != nil {
				return nil, err
			}
			str, ok := v.(value.Str)
			if !ok {
				return nil, evalerr.At(evalerr.TypeFail, n.Pos(), "map over a string expects the callback to return a Str")
			}
			sb.WriteString(str.Value)
		}
		return value.Str{Value: sb.String()}, nil
	case ast.FuncOpFilter:
		var sb strings.Builder
		for _, g := range clusters {
			v, err := e.applyFunction(n.Pos(), fn, []value.Value{value.Str{Value: g}})
			if err != nil {
				return nil, err
			}
			switch rv := v.(type) {
			case value.Bool:
				if rv.Value {
					sb.WriteString(g)
				}
			case value.Empty:
				// dropped
			default:
				return nil, evalerr.At(evalerr.TypeFail, n.Pos(), "filter over a string only accepts Bool or Empty from the callback")
			}
		}
		return value.Str{Value: sb.String()}, nil
	default: // reduce
		for _, g := range clusters {
			v, err := e.applyFunction(n.Pos(), fn, []value.Value{acc, value.Str{Value: g}})
			if err != nil {
				return nil, err
			}
			acc = v
		}
		return acc, nil
	}
}

// keep implements the map/filter inclusion rule shared by list and tuple
// filter: Empty and Bool(false) drop the element, anything else keeps it.
func keep(v value.Value) bool {
	switch t := v.(type) {
	case value.Empty:
		return false
	case value.Bool:
		return t.Value
	default:
		return true
	}
}

// graphemes segments s into Unicode extended grapheme clusters (UAX-29),
// simplified: a new cluster starts at each rune that is not itself a
// combining mark (Unicode category Mn, Mc, or Me); a combining mark
// attaches to the preceding cluster's base rune. This covers the common
// case (spec §8 scenario 6: a base letter followed by a combining accent)
// without implementing the full UAX-29 state machine (no rune in the
// retrieved example pack covers ZWJ emoji sequences or regional
// indicators, so they are not specially handled here).
func graphemes(s string) []string {
	var clusters []string
	var current []byte
	for i, w := 0, 0; i < len(s); i += w {
		r, size := utf8.DecodeRuneInString(s[i:])
		w = size
		if isCombiningMark(r) && len(current) > 0 {
			current = append(current, s[i:i+size]...)
			continue
		}
		if len(current) > 0 {
			clusters = append(clusters, string(current))
		}
		current = append([]byte(nil), s[i:i+size]...)
	}
	if len(current) > 0 {
		clusters = append(clusters, string(current))
	}
	return clusters
}

func isCombiningMark(r rune) bool {
	return unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Mc, r) || unicode.Is(unicode.Me, r)
}
