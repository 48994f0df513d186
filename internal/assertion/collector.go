// Package assertion implements component G: the validate-mode assertion
// collector. The teacher has no equivalent harness, so this is grounded
// directly on spec §4.G/§8 and the original Rust assertion-test output
// format preserved in original_source/src/build/test.rs.
package assertion

import (
	"fmt"
	"strings"
)

// Collector accumulates pass/fail records during validate mode.
type Collector struct {
	count    int
	success  bool
	summary  strings.Builder
	failures strings.Builder
}

// NewCollector returns a Collector whose success flag starts true; it
// flips to false on the first recorded failure and never returns to true
// (spec §4.G).
func NewCollector() *Collector {
	return &Collector{success: true}
}

// Record appends one line in the form "<n> - OK: <desc>" or
// "<n> - NOT OK: <desc>" and updates the success flag.
func (c *Collector) Record(desc string, ok bool) {
	c.count++
	if ok {
		fmt.Fprintf(&c.summary, "%d - OK: %s\n", c.count, desc)
		return
	}
	c.success = false
	line := fmt.Sprintf("%d - NOT OK: %s\n", c.count, desc)
	c.summary.WriteString(line)
	c.failures.WriteString(line)
}

// Count returns the number of assertions recorded so far.
func (c *Collector) Count() int { return c.count }

// Success reports whether every assertion recorded so far passed.
func (c *Collector) Success() bool { return c.success }

// Summary returns every recorded line, pass and fail, in order.
func (c *Collector) Summary() string { return c.summary.String() }

// Failures returns only the failing lines, in order.
func (c *Collector) Failures() string { return c.failures.String() }
