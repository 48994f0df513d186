package eval

import (
	"strconv"

	"github.com/jfranklin9000/ucg/internal/ast"
	"github.com/jfranklin9000/ucg/internal/evalerr"
	"github.com/jfranklin9000/ucg/internal/scope"
	"github.com/jfranklin9000/ucg/internal/value"
)

// evalSelect implements spec §4.F item 10: evaluate the discriminator
// (Str or Bool), pick the matching case by its string form, falling back
// to Default if present.
func (e *Evaluator) evalSelect(n *ast.SelectExpr, sc *scope.Scope) (value.Value, error) {
	disc, err := e.Eval(n.Discriminator, sc)
	if err != nil {
		return nil, err
	}
	key, err := discriminatorKey(n, disc)
	if err != nil {
		return nil, err
	}
	for _, c := range n.Cases {
		if c.Case == key {
			return e.Eval(c.Value, sc)
		}
	}
	if n.Default != nil {
		return e.Eval(n.Default, sc)
	}
	return nil, evalerr.At(evalerr.Unsupported, n.Pos(), "no select case matches %q and no default is given", key)
}

func discriminatorKey(n *ast.SelectExpr, disc value.Value) (string, error) {
	switch d := disc.(type) {
	case value.Str:
		return d.Value, nil
	case value.Bool:
		return strconv.FormatBool(d.Value), nil
	}
	return "", evalerr.At(evalerr.TypeFail, n.Pos(), "select discriminator must be Str or Bool, got %s", value.TypeName(disc))
}
