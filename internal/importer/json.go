package importer

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/jfranklin9000/ucg/internal/evalerr"
	"github.com/jfranklin9000/ucg/internal/value"
)

// decodeJSON decodes JSON bytes into a value.Value, preserving object key
// order (encoding/json's default map[string]interface{} decode does not,
// since Go maps are unordered — so this walks json.Decoder tokens by
// hand instead of unmarshaling into a map). No third-party, order-
// preserving JSON decoder appears anywhere in the retrieved pack, so
// stdlib is used here; see DESIGN.md.
func decodeJSON(data []byte) (value.Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := decodeJSONValue(dec)
	if err != nil {
		return nil, evalerr.New(evalerr.IncludeError, "decoding json: %v", err)
	}
	return v, nil
}

func decodeJSONValue(dec *json.Decoder) (value.Value, error) {
	tok, err := dec.Token()
	if err != nil {
		if err == io.EOF {
			return value.Empty{}, nil
		}
		return nil, err
	}
	return jsonValueFromToken(dec, tok)
}

func jsonValueFromToken(dec *json.Decoder, tok json.Token) (value.Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeJSONObject(dec)
		case '[':
			return decodeJSONArray(dec)
		}
		return nil, evalerr.New(evalerr.IncludeError, "unexpected json delimiter %v", t)
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return value.Int{Value: i}, nil
		}
		f, err := t.Float64()
		if err != nil {
			return nil, err
		}
		return value.Float{Value: f}, nil
	case string:
		return value.Str{Value: t}, nil
	case bool:
		return value.Bool{Value: t}, nil
	case nil:
		return value.Empty{}, nil
	default:
		return nil, evalerr.New(evalerr.IncludeError, "unsupported json token %v", tok)
	}
}

func decodeJSONObject(dec *json.Decoder) (value.Value, error) {
	var fields []value.Field
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, evalerr.New(evalerr.IncludeError, "json object key must be a string")
		}
		v, err := decodeJSONValue(dec)
		if err != nil {
			return nil, err
		}
		fields = append(fields, value.Field{Name: key, Value: v})
	}
	if _, err := dec.Token(); err != nil { // consume closing '}'
		return nil, err
	}
	return value.NewTuple(fields), nil
}

func decodeJSONArray(dec *json.Decoder) (value.Value, error) {
	var elems []value.Value
	for dec.More() {
		v, err := decodeJSONValue(dec)
		if err != nil {
			return nil, err
		}
		elems = append(elems, v)
	}
	if _, err := dec.Token(); err != nil { // consume closing ']'
		return nil, err
	}
	return &value.List{Elements: elems}, nil
}
