package importer

import (
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/jfranklin9000/ucg/internal/evalerr"
	"github.com/jfranklin9000/ucg/internal/value"
)

// decodeYAML decodes YAML bytes into a value.Value via yaml.Node rather
// than a plain map[string]any, specifically to preserve mapping key
// order — a Go map cannot. gopkg.in/yaml.v3 is the teacher's own direct
// dependency (_examples/funvibe-funxy/go.mod).
func decodeYAML(data []byte) (value.Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, evalerr.New(evalerr.IncludeError, "decoding yaml: %v", err)
	}
	if len(doc.Content) == 0 {
		return value.Empty{}, nil
	}
	return yamlNodeToValue(doc.Content[0])
}

func yamlNodeToValue(n *yaml.Node) (value.Value, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return value.Empty{}, nil
		}
		return yamlNodeToValue(n.Content[0])
	case yaml.MappingNode:
		var fields []value.Field
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i].Value
			v, err := yamlNodeToValue(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			fields = append(fields, value.Field{Name: key, Value: v})
		}
		return value.NewTuple(fields), nil
	case yaml.SequenceNode:
		elems := make([]value.Value, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := yamlNodeToValue(c)
			if err != nil {
				return nil, err
			}
			elems = append(elems, v)
		}
		return &value.List{Elements: elems}, nil
	case yaml.ScalarNode:
		return yamlScalarToValue(n), nil
	case yaml.AliasNode:
		return yamlNodeToValue(n.Alias)
	default:
		return nil, evalerr.New(evalerr.IncludeError, "unsupported yaml node kind %v", n.Kind)
	}
}

func yamlScalarToValue(n *yaml.Node) value.Value {
	switch n.Tag {
	case "!!null":
		return value.Empty{}
	case "!!bool":
		b, _ := strconv.ParseBool(n.Value)
		return value.Bool{Value: b}
	case "!!int":
		i, err := strconv.ParseInt(n.Value, 10, 64)
		if err == nil {
			return value.Int{Value: i}
		}
		f, _ := strconv.ParseFloat(n.Value, 64)
		return value.Float{Value: f}
	case "!!float":
		f, _ := strconv.ParseFloat(n.Value, 64)
		return value.Float{Value: f}
	default:
		return value.Str{Value: n.Value}
	}
}
