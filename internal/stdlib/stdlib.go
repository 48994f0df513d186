// Package stdlib implements component H: the in-memory name-to-source
// registry for `std/` imports. Grounded on the teacher's virtual-package
// registry (internal/modules/virtual_init.go, virtual_packages_*.go),
// which maps package names to in-memory objects built once at process
// start rather than reading them from disk — adapted here so that the
// "objects" are plain UCG source text (this module doesn't parse or
// execute UCG; that's the evaluator's and the external parser's job) and
// loaded via Go's //go:embed instead of a hand-written Go literal table,
// since the teacher's own packages are Go-native builtins with no
// embedded source to draw from.
package stdlib

import (
	"embed"
	"sort"
	"sync"

	"github.com/jfranklin9000/ucg/internal/config"
	"github.com/jfranklin9000/ucg/internal/evalerr"
)

//go:embed src/*.ucg
var src embed.FS

var (
	once     sync.Once
	registry map[string]string
)

func build() {
	registry = make(map[string]string)
	entries, err := src.ReadDir("src")
	if err != nil {
		panic(err) // embedded FS, a read failure here is a build error
	}
	for _, e := range entries {
		data, err := src.ReadFile("src/" + e.Name())
		if err != nil {
			panic(err)
		}
		name := e.Name()[:len(e.Name())-len(".ucg")]
		registry[config.StdlibPrefix+name] = string(data)
	}
}

// Lookup returns the UCG source text registered under the given `std/`
// qualified name, e.g. "std/list".
func Lookup(name string) (string, error) {
	once.Do(build)
	src, ok := registry[name]
	if !ok {
		return "", evalerr.New(evalerr.ImportError, "no such standard library module: %s", name)
	}
	return src, nil
}

// Names returns every registered `std/` module name, sorted, matching the
// teacher's GetLibSubPackages determinism guarantee.
func Names() []string {
	once.Do(build)
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
