// Package ast defines the node types the evaluator consumes. The lexer and
// parser that build these trees are external collaborators (see spec §1);
// this package only fixes the contract between them and the evaluator.
package ast

// Position identifies where a node came from in source, for diagnostics
// only — never consulted for evaluation semantics.
type Position struct {
	File   string
	Line   int
	Column int
}

// Node is the base interface for every statement and expression.
type Node interface {
	Pos() Position
}

// Statement is a top-level or module-body statement.
type Statement interface {
	Node
	statementNode()
}

// Expression is anything that reduces to a value.
type Expression interface {
	Node
	expressionNode()
}

type base struct {
	Position Position
}

func (b base) Pos() Position { return b.Position }

// ---- Statements -----------------------------------------------------------

// LetStatement binds the result of Value to Name in the current scope.
type LetStatement struct {
	base
	Name  string
	Value Expression
}

func (*LetStatement) statementNode() {}

// ExpressionStatement evaluates Expr and discards the result.
type ExpressionStatement struct {
	base
	Expr Expression
}

func (*ExpressionStatement) statementNode() {}

// AssertStatement records a pass/fail in validate mode; a no-op otherwise.
type AssertStatement struct {
	base
	Expr Expression
}

func (*AssertStatement) statementNode() {}

// OutputStatement declares the file's single output value.
type OutputStatement struct {
	base
	TypeTag string
	Expr    Expression
}

func (*OutputStatement) statementNode() {}

// ---- Expressions ------------------------------------------------------------

// NullLiteral is the `NULL` literal.
type NullLiteral struct{ base }

func (*NullLiteral) expressionNode() {}

// BoolLiteral is `true`/`false`.
type BoolLiteral struct {
	base
	Value bool
}

func (*BoolLiteral) expressionNode() {}

// IntLiteral is a 64-bit integer literal.
type IntLiteral struct {
	base
	Value int64
}

func (*IntLiteral) expressionNode() {}

// FloatLiteral is a 64-bit float literal.
type FloatLiteral struct {
	base
	Value float64
}

func (*FloatLiteral) expressionNode() {}

// StrLiteral is a plain string literal (no interpolation).
type StrLiteral struct {
	base
	Value string
}

func (*StrLiteral) expressionNode() {}

// Symbol is a bare-name reference, resolved via scope lookup.
type Symbol struct {
	base
	Name string
}

func (*Symbol) expressionNode() {}

// ListLiteral builds a List value from Elements in order.
type ListLiteral struct {
	base
	Elements []Expression
}

func (*ListLiteral) expressionNode() {}

// TupleField is one `name = expr` entry of a tuple literal.
type TupleField struct {
	Name  string
	Value Expression
}

// TupleLiteral builds a Tuple value, fields in declaration order.
type TupleLiteral struct {
	base
	Fields []TupleField
}

func (*TupleLiteral) expressionNode() {}

// BinaryExpr is any of the binary operators in spec §4.F's operator table,
// including `.` (dot-lookup), `in`, and `is`.
type BinaryExpr struct {
	base
	Op    string
	Left  Expression
	Right Expression
}

func (*BinaryExpr) expressionNode() {}

// NotExpr negates a boolean expression.
type NotExpr struct {
	base
	Expr Expression
}

func (*NotExpr) expressionNode() {}

// CopyOverride is one `name = expr` entry in a `t{ ... }` copy expression.
type CopyOverride struct {
	Name  string
	Value Expression
}

// CopyExpr is `selector{ overrides... }`: tuple copy-with-overrides when
// Selector evaluates to a Tuple, module instantiation when it evaluates to
// a Module.
type CopyExpr struct {
	base
	Selector  Expression
	Overrides []CopyOverride
}

func (*CopyExpr) expressionNode() {}

// RangeExpr is `start..end` (Step == nil) or `start:step:end`, both bounds
// inclusive.
type RangeExpr struct {
	base
	Start Expression
	Step  Expression // nil for the two-bound form
	End   Expression
}

func (*RangeExpr) expressionNode() {}

// GroupedExpr is a parenthesized expression, kept as a distinct node only
// so position information survives for diagnostics.
type GroupedExpr struct {
	base
	Inner Expression
}

func (*GroupedExpr) expressionNode() {}

// FormatSection is one piece of a Format expression's expression-mode
// template: either a literal run of source text (Expr == nil) or an
// embedded `@{expr}@` (Expr != nil).
type FormatSection struct {
	Literal string
	Expr    Expression
}

// FormatExpr renders Template against Args. Positional mode (Sections is
// nil) replaces each `@` in Template with the string form of the next
// argument in Args. Expression mode (Sections non-nil) evaluates each
// embedded expression in a child scope binding `item` to Args[0].
type FormatExpr struct {
	base
	Template string
	Args     []Expression
	Sections []FormatSection
}

func (*FormatExpr) expressionNode() {}

// CallExpr invokes Func (which must evaluate to a Func value) with Args
// evaluated left to right.
type CallExpr struct {
	base
	Func Expression
	Args []Expression
}

func (*CallExpr) expressionNode() {}

// FuncLiteral captures the defining scope and yields a Func value.
type FuncLiteral struct {
	base
	Params []string
	Body   Expression
}

func (*FuncLiteral) expressionNode() {}

// ModuleLiteral yields a Module value. When the literal is evaluated, the
// relative import paths in Statements are rewritten to absolute ones rooted
// at File's directory.
type ModuleLiteral struct {
	base
	Args       *TupleLiteral
	Output     Expression // nil if the module has no explicit output
	Statements []Statement
	File       string
}

func (*ModuleLiteral) expressionNode() {}

// SelectCase is one `case = expr` entry of a Select expression.
type SelectCase struct {
	Case  string
	Value Expression
}

// SelectExpr picks the Cases entry whose name equals the string/bool form
// of Discriminator, falling back to Default if present.
type SelectExpr struct {
	base
	Discriminator Expression
	Cases         []SelectCase
	Default       Expression // nil if absent
}

func (*SelectExpr) expressionNode() {}

// FuncOpKind distinguishes the three higher-order iteration protocols.
type FuncOpKind int

const (
	FuncOpMap FuncOpKind = iota
	FuncOpFilter
	FuncOpReduce
)

// FuncOpExpr is `map(f, xs)`, `filter(f, xs)`, or `reduce(f, acc, xs)`.
type FuncOpExpr struct {
	base
	Kind    FuncOpKind
	Func    Expression
	Acc     Expression // only set when Kind == FuncOpReduce
	Target  Expression
}

func (*FuncOpExpr) expressionNode() {}

// IncludeExpr reads Path from disk and decodes it with the Importer named
// Importer.
type IncludeExpr struct {
	base
	Importer string
	Path     string
}

func (*IncludeExpr) expressionNode() {}

// ImportExpr loads another UCG file (or a std/ module) and evaluates it to
// its output tuple.
type ImportExpr struct {
	base
	Path string
}

func (*ImportExpr) expressionNode() {}

// FailExpr evaluates Message (must be a Str) and raises a UserDefined error.
type FailExpr struct {
	base
	Message Expression
}

func (*FailExpr) expressionNode() {}

// DebugExpr evaluates Inner, traces it to the diagnostic channel, and
// returns it unchanged.
type DebugExpr struct {
	base
	Inner Expression
}

func (*DebugExpr) expressionNode() {}
