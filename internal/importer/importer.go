// Package importer implements component D: a registry of named decoders
// that turn raw file bytes into a value.Value, used by the `include`
// expression. Grounded on the *pattern* of the teacher's named-lookup
// virtual package registry (_examples/funvibe-funxy/internal/modules/
// virtual_init.go's RegisterVirtualPackage(name, ...) at init time),
// repurposed here from "virtual package" to "byte decoder".
package importer

import (
	"github.com/jfranklin9000/ucg/internal/evalerr"
	"github.com/jfranklin9000/ucg/internal/value"
)

// Decoder turns raw bytes into a value.Value.
type Decoder func(data []byte) (value.Value, error)

// Registry maps importer names (e.g. "json", "yaml") to decoders.
type Registry struct {
	decoders map[string]Decoder
}

// NewRegistry builds a Registry pre-populated with the built-in "json" and
// "yaml" decoders.
func NewRegistry() *Registry {
	r := &Registry{decoders: make(map[string]Decoder)}
	r.Register("json", decodeJSON)
	r.Register("yaml", decodeYAML)
	return r
}

// Register adds or replaces the decoder for name.
func (r *Registry) Register(name string, d Decoder) {
	r.decoders[name] = d
}

// Decode looks up name and applies it to data. Unknown names yield an
// Unsupported error (spec §4.D).
func (r *Registry) Decode(name string, data []byte) (value.Value, error) {
	d, ok := r.decoders[name]
	if !ok {
		return nil, evalerr.New(evalerr.Unsupported, "unsupported importer %q", name)
	}
	return d(data)
}
