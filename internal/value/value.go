// Package value implements component A, the value domain: a tagged sum of
// Empty/Bool/Int/Float/Str/List/Tuple/Env/Func/Module, with structural
// equality and type predicates. Modeled on the teacher's Object interface
// (_examples/funvibe-funxy/internal/evaluator/object.go) but with one
// struct per variant rather than a single runtime-type enum, matching the
// teacher's own object_collections.go / object_data.go convention.
package value

import "github.com/jfranklin9000/ucg/internal/ast"

// Kind is the stable, human-readable type tag spec §4.A calls type_name.
type Kind string

const (
	KindEmpty  Kind = "null"
	KindBool   Kind = "bool"
	KindInt    Kind = "int"
	KindFloat  Kind = "float"
	KindStr    Kind = "str"
	KindList   Kind = "list"
	KindTuple  Kind = "tuple"
	KindEnv    Kind = "env"
	KindFunc   Kind = "func"
	KindModule Kind = "module"
)

// Value is the common interface every UCG runtime value implements.
// Values are immutable once constructed; sharing is always by reference.
type Value interface {
	Kind() Kind
}

// Empty is the `NULL` value.
type Empty struct{}

func (Empty) Kind() Kind { return KindEmpty }

// Bool wraps a boolean.
type Bool struct{ Value bool }

func (Bool) Kind() Kind { return KindBool }

// Int wraps a 64-bit integer.
type Int struct{ Value int64 }

func (Int) Kind() Kind { return KindInt }

// Float wraps a 64-bit float.
type Float struct{ Value float64 }

func (Float) Kind() Kind { return KindFloat }

// Str wraps a UTF-8 string.
type Str struct{ Value string }

func (Str) Kind() Kind { return KindStr }

// List is an ordered, heterogeneous sequence.
type List struct{ Elements []Value }

func (List) Kind() Kind { return KindList }

// Field is one named entry of a Tuple, in insertion order.
type Field struct {
	Name  string
	Value Value
}

// Tuple is an ordered sequence of named fields. Field order is observable
// and must be preserved across every operation that returns a tuple,
// including copy-with-overrides (invariant in spec §3/§8).
//
// Grounded on the *shape* of the teacher's RecordInstance.Fields
// []RecordField, but deliberately NOT sorted by key the way RecordInstance
// is (object_advanced.go sorts by Key) — that would violate the
// order-preservation invariant this value type exists to satisfy.
type Tuple struct {
	Fields []Field
	index  map[string]int // name -> position in Fields, built lazily
}

// NewTuple builds a Tuple from fields already in their final order.
func NewTuple(fields []Field) *Tuple {
	return &Tuple{Fields: fields}
}

func (t *Tuple) ensureIndex() {
	if t.index != nil && len(t.index) == len(t.Fields) {
		return
	}
	t.index = make(map[string]int, len(t.Fields))
	for i, f := range t.Fields {
		t.index[f.Name] = i
	}
}

// Get returns the field's value and whether it exists.
func (t *Tuple) Get(name string) (Value, bool) {
	t.ensureIndex()
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	return t.Fields[i].Value, true
}

// Has reports whether name is a field of t.
func (t *Tuple) Has(name string) bool {
	_, ok := t.Get(name)
	return ok
}

func (*Tuple) Kind() Kind { return KindTuple }

// EnvVar is one `name=value` entry of the process environment snapshot.
type EnvVar struct {
	Name  string
	Value string
}

// Env is the process environment snapshot taken at evaluator construction.
// Lookups against it never observe later changes to the real environment
// (spec §3 invariant).
type Env struct{ Vars []EnvVar }

func (Env) Kind() Kind { return KindEnv }

// Get returns the named environment variable's value and whether it was
// present in the snapshot.
func (e Env) Get(name string) (string, bool) {
	for _, v := range e.Vars {
		if v.Name == name {
			return v.Value, true
		}
	}
	return "", false
}

// FuncDef is a function literal's static shape: ordered parameter names and
// an unevaluated body expression.
type FuncDef struct {
	Params []string
	Body   ast.Expression
}

// Func is a closure: a FuncDef plus the scope captured when the `func`
// literal was evaluated. Captured is typed as interface{} (rather than
// *scope.Scope) solely to avoid an import cycle between this package and
// internal/scope (a Scope's current-value slot holds a Value, and a Func's
// captured scope must in turn be a Scope) — the eval package is the only
// code that ever type-asserts it back to *scope.Scope.
type Func struct {
	Def      *FuncDef
	Captured interface{}
}

// ModuleDef is a module literal's static shape.
type ModuleDef struct {
	// Args is the module's default argument tuple literal, evaluated once
	// per Module value (not per instantiation) to produce DefaultArgs.
	Args       *ast.TupleLiteral
	Output     ast.Expression // nil if the module has no explicit output
	Statements []ast.Statement
	File       string // defining file, used for pkg/self-import
}

// Module is an uninstantiated module: its static definition plus the
// already-evaluated default argument tuple (spec §3: "ModuleDef + default
// arg tuple").
type Module struct {
	Def         *ModuleDef
	DefaultArgs *Tuple
}

func (Func) Kind() Kind   { return KindFunc }
func (Module) Kind() Kind { return KindModule }
