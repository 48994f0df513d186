package value

import "github.com/jfranklin9000/ucg/internal/evalerr"

// Equal implements spec §4.A: deep structural equality. Succeeds only when
// both sides share the same variant (lists/tuples recurse, order-sensitive
// both ways); Empty compared with any other variant yields false without
// error; any other variant mismatch is a TypeFail.
func Equal(a, b Value) (bool, error) {
	if IsEmpty(a) || IsEmpty(b) {
		return IsEmpty(a) && IsEmpty(b), nil
	}
	if a.Kind() != b.Kind() {
		return false, evalerr.New(evalerr.TypeFail, "cannot compare %s with %s", TypeName(a), TypeName(b))
	}
	switch av := a.(type) {
	case Bool:
		return av.Value == b.(Bool).Value, nil
	case Int:
		return av.Value == b.(Int).Value, nil
	case Float:
		return av.Value == b.(Float).Value, nil
	case Str:
		return av.Value == b.(Str).Value, nil
	case *List:
		bv := b.(*List)
		if len(av.Elements) != len(bv.Elements) {
			return false, nil
		}
		for i := range av.Elements {
			ok, err := Equal(av.Elements[i], bv.Elements[i])
			if err != nil {
				return false, err
			}
			if !ok {
				return false, nil
			}
		}
		return true, nil
	case *Tuple:
		bv := b.(*Tuple)
		if len(av.Fields) != len(bv.Fields) {
			return false, nil
		}
		for i := range av.Fields {
			if av.Fields[i].Name != bv.Fields[i].Name {
				return false, nil
			}
			ok, err := Equal(av.Fields[i].Value, bv.Fields[i].Value)
			if err != nil {
				return false, err
			}
			if !ok {
				return false, nil
			}
		}
		return true, nil
	case Func:
		return false, evalerr.New(evalerr.TypeFail, "func values are not comparable")
	case Module:
		return false, evalerr.New(evalerr.TypeFail, "module values are not comparable")
	case Env:
		return false, evalerr.New(evalerr.TypeFail, "env values are not comparable")
	default:
		return false, evalerr.New(evalerr.TypeFail, "cannot compare values of type %s", TypeName(a))
	}
}
