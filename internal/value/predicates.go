package value

// TypeName returns the stable, human-readable tag used by `is` and error
// messages — spec §4.A's type_name.
func TypeName(v Value) string { return string(v.Kind()) }

func IsEmpty(v Value) bool  { return v.Kind() == KindEmpty }
func IsBool(v Value) bool   { return v.Kind() == KindBool }
func IsInt(v Value) bool    { return v.Kind() == KindInt }
func IsFloat(v Value) bool  { return v.Kind() == KindFloat }
func IsStr(v Value) bool    { return v.Kind() == KindStr }
func IsList(v Value) bool   { return v.Kind() == KindList }
func IsTuple(v Value) bool  { return v.Kind() == KindTuple }
func IsFunc(v Value) bool   { return v.Kind() == KindFunc }
func IsModule(v Value) bool { return v.Kind() == KindModule }

// TypeEqual reports whether a and b share the same variant, used by
// copy-with-overrides (spec §4.F step 4) to decide whether an override is
// allowed. Empty is handled by the caller (either side may be Empty without
// a type check); TypeEqual itself is a strict same-Kind check.
func TypeEqual(a, b Value) bool {
	return a.Kind() == b.Kind()
}

// Flattenable reports whether v is a shape a flags-style converter would
// keep when flattening a top-level tuple: scalars, Empty, and tuples, but
// not List/Func/Env/Module (spec §6: "Flag conversion ... skips nested
// List, Func, Env, and Module values with a diagnostic notice"). This
// module doesn't implement the converter (it's out of scope), but exposes
// the predicate so a host converter's behavior is testable from here —
// see SPEC_FULL.md §9.
func Flattenable(v Value) bool {
	switch v.Kind() {
	case KindList, KindFunc, KindEnv, KindModule:
		return false
	default:
		return true
	}
}
