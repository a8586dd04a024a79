// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for text rendering.
// This file defines:
//   - RenderOption / renderOptions (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherRenderOptions helper (internal) that applies them over defaults.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each option changes Render output and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultDelimiter separates elements inside a rendered row.
	DefaultDelimiter = " "

	// DefaultPrecision selects the shortest %g representation (strconv precision -1).
	DefaultPrecision = -1

	// DefaultRowBrackets wraps each rendered row in "[" and "]" when true.
	DefaultRowBrackets = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicDelimiterEmpty   = "matrix: WithDelimiter: delimiter must be non-empty"
	panicPrecisionInvalid = "matrix: WithPrecision: precision must be >= -1"
)

// RenderOption mutates internal render options. Safe to apply repeatedly.
type RenderOption func(*renderOptions)

// renderOptions stores the effective configuration after applying options.
type renderOptions struct {
	delimiter string // DefaultDelimiter
	precision int    // DefaultPrecision
	brackets  bool   // DefaultRowBrackets
}

// WithDelimiter sets the element separator used inside a row.
// Panics if delim is empty: an empty separator makes rows unreadable.
func WithDelimiter(delim string) RenderOption {
	if delim == "" {
		panic(panicDelimiterEmpty)
	}

	return func(o *renderOptions) { o.delimiter = delim }
}

// WithPrecision sets the number of significant digits for %g formatting.
// -1 means "shortest representation that round-trips".
func WithPrecision(p int) RenderOption {
	if p < -1 {
		panic(panicPrecisionInvalid)
	}

	return func(o *renderOptions) { o.precision = p }
}

// WithRowBrackets wraps every row in "[" ... "]".
func WithRowBrackets() RenderOption {
	return func(o *renderOptions) { o.brackets = true }
}

// defaultRenderOptions returns the documented defaults.
func defaultRenderOptions() renderOptions {
	return renderOptions{
		delimiter: DefaultDelimiter,
		precision: DefaultPrecision,
		brackets:  DefaultRowBrackets,
	}
}

// gatherRenderOptions applies opts in order over the defaults; nil entries are skipped.
func gatherRenderOptions(opts ...RenderOption) renderOptions {
	o := defaultRenderOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
