// render produces the human-readable string form of a value used by
// positional/expression-mode formatting and debug traces. Not part of the
// evaluated value domain itself — purely a rendering convenience, the
// evaluator-side analogue of the teacher's Object.Inspect().
package eval

import (
	"strconv"
	"strings"

	"github.com/jfranklin9000/ucg/internal/value"
)

func render(v value.Value) string {
	switch t := v.(type) {
	case value.Empty:
		return "NULL"
	case value.Bool:
		return strconv.FormatBool(t.Value)
	case value.Int:
		return strconv.FormatInt(t.Value, 10)
	case value.Float:
		return strconv.FormatFloat(t.Value, 'g', -1, 64)
	case value.Str:
		return t.Value
	case *value.List:
		parts := make([]string, len(t.Elements))
		for i, e := range t.Elements {
			parts[i] = render(e)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case *value.Tuple:
		parts := make([]string, len(t.Fields))
		for i, f := range t.Fields {
			parts[i] = f.Name + " = " + render(f.Value)
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case value.Func:
		return "<func>"
	case value.Module:
		return "<module>"
	case value.Env:
		return "<env>"
	}
	return value.TypeName(v)
}
