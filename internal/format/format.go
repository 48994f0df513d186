// Package format implements component E's positional-placeholder
// templating, grounded verbatim on the scan-loop shape of the teacher's
// CountFormatVerbs (_examples/funvibe-funxy/internal/evaluator/format.go),
// adapted from printf-style "%verb" counting to UCG's bare "@" placeholder
// counting.
//
// Expression mode (`@{expr}@`) needs no template splitting here: the
// external parser already delivers ast.FormatExpr.Sections pre-split, with
// each section's expression already parsed into an ast.Expression — see
// internal/eval/format_expr.go.
package format

import (
	"strings"

	"github.com/jfranklin9000/ucg/internal/evalerr"
)

// CountPlaceholders counts the number of unescaped "@" placeholders in
// tmpl. "@@" is an escaped literal "@" and does not count.
func CountPlaceholders(tmpl string) int {
	count := 0
	for i := 0; i < len(tmpl); i++ {
		if tmpl[i] != '@' {
			continue
		}
		if i+1 < len(tmpl) && tmpl[i+1] == '@' {
			i++
			continue
		}
		count++
	}
	return count
}

// RenderPositional replaces each unescaped "@" in tmpl with the
// corresponding entry of args (already converted to their string form by
// the caller), in order. "@@" renders as a literal "@". Fails with
// FormatError if the placeholder count doesn't match len(args).
func RenderPositional(tmpl string, args []string) (string, error) {
	want := CountPlaceholders(tmpl)
	if want != len(args) {
		return "", evalerr.New(evalerr.FormatError, "format expects %d argument(s), got %d", want, len(args))
	}
	var out strings.Builder
	next := 0
	for i := 0; i < len(tmpl); i++ {
		if tmpl[i] == '@' {
			if i+1 < len(tmpl) && tmpl[i+1] == '@' {
				out.WriteByte('@')
				i++
				continue
			}
			out.WriteString(args[next])
			next++
			continue
		}
		out.WriteByte(tmpl[i])
	}
	return out.String(), nil
}
